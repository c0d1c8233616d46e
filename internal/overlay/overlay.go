// Package overlay models the lifecycle of a modal UI element (drawer, dialog)
// as an explicit state machine with entry and exit animation phases, so that
// interruption (close during opening) is well-defined instead of accidental.
package overlay

// State is the lifecycle phase of an overlay.
type State int

const (
	Closed State = iota
	Opening
	Open
	Closing
)

// String returns the lowercase phase name.
func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Opening:
		return "opening"
	case Open:
		return "open"
	case Closing:
		return "closing"
	default:
		return "unknown"
	}
}

// Animating reports whether the state is an animation-in-flight phase.
func (s State) Animating() bool {
	return s == Opening || s == Closing
}

// Manager drives one overlay instance through
// closed -> opening -> open -> closing -> closed.
//
// Each entry into an animating phase issues a sequence number; the animation
// driver reports completion with Complete(seq). A stale sequence (from an
// entry phase that was interrupted by Close) is ignored when it eventually
// arrives. The payload attaches at the opening transition and is retained
// until closed is reached, so exit-animation content stays stable.
//
// Contract-misuse calls (Open while open, Close while closed, Complete in a
// non-animating phase) are no-ops; the manager never corrupts state.
type Manager[T any] struct {
	state   State
	seq     int
	payload T
	pending *T
}

// New returns a manager in the closed state.
func New[T any]() *Manager[T] {
	return &Manager[T]{}
}

// State returns the current lifecycle phase.
func (m *Manager[T]) State() State { return m.state }

// Seq returns the sequence number of the current animating phase. Only
// meaningful while State().Animating().
func (m *Manager[T]) Seq() int { return m.seq }

// Payload returns the attached payload. Valid only while not closed.
func (m *Manager[T]) Payload() T { return m.payload }

// Open requests the overlay with the given payload. From closed it begins
// the entry phase and returns (seq, true); in any other state it is a no-op.
// Use Replace to show different content while the overlay is live.
func (m *Manager[T]) Open(payload T) (seq int, started bool) {
	if m.state != Closed {
		return m.seq, false
	}
	m.state = Opening
	m.payload = payload
	m.pending = nil
	m.seq++
	return m.seq, true
}

// Replace shows payload, fully closing any live content first. From closed
// it behaves exactly like Open. Otherwise the payload is queued, the current
// overlay is asked to close, and the queued payload begins its entry phase
// once closed is reached (surfaced by Complete). Content is never swapped
// inside a live overlay.
func (m *Manager[T]) Replace(payload T) (seq int, started bool) {
	if m.state == Closed {
		return m.Open(payload)
	}
	m.pending = &payload
	s, _ := m.Close()
	return s, false
}

// Close requests dismissal. While closed it is a no-op. While opening it
// interrupts the entry phase and proceeds directly to closing; the
// interrupted entry's completion signal is ignored when it arrives.
func (m *Manager[T]) Close() (seq int, started bool) {
	switch m.state {
	case Open, Opening:
		m.state = Closing
		m.seq++
		return m.seq, true
	}
	return m.seq, false
}

// Complete reports that the animation for phase seq finished. A stale or
// out-of-phase signal is ignored. Completing the entry phase lands on open;
// completing the exit phase lands on closed, clears the payload, and, if a
// payload was queued by Replace, immediately begins its entry phase, returning
// the new sequence with reopened=true.
func (m *Manager[T]) Complete(seq int) (next int, reopened bool) {
	if seq != m.seq || !m.state.Animating() {
		return m.seq, false
	}
	if m.state == Opening {
		m.state = Open
		return m.seq, false
	}
	// Closing finished.
	m.state = Closed
	var zero T
	m.payload = zero
	if m.pending != nil {
		p := *m.pending
		m.pending = nil
		s, _ := m.Open(p)
		return s, true
	}
	return m.seq, false
}
