// Package monitor derives viewport state from scroll and resize event
// streams, throttled so that rapid-fire events coalesce instead of thrashing
// downstream consumers. It is the single owner of the "is this a narrow
// viewport" and "has the page scrolled" thresholds; consumers read the
// derived Snapshot by reference instead of recomputing their own.
package monitor

import (
	"fmt"
	"sync"
	"time"

	"grazebox/internal/throttle"
)

// Snapshot is the derived, read-only viewport state. Recomputed on every
// admitted event; never persisted.
type Snapshot struct {
	ScrollOffset int
	IsNarrow     bool
	IsScrolled   bool
}

// Size is a viewport measurement.
type Size struct {
	Width  int
	Height int
}

// Config sets the throttle windows and derivation thresholds. Zero values
// take the defaults below.
type Config struct {
	// ScrollInterval coalesces scroll jank; kept short.
	ScrollInterval time.Duration
	// ResizeInterval coalesces layout thrash; kept longer.
	ResizeInterval time.Duration
	// ScrollThreshold is the offset above which IsScrolled flips true.
	// Crossing the boundary in either direction flips state immediately.
	ScrollThreshold int
	// NarrowWidth is the breakpoint below which IsNarrow is true.
	NarrowWidth int
}

const (
	DefaultScrollInterval  = 80 * time.Millisecond
	DefaultResizeInterval  = 250 * time.Millisecond
	DefaultScrollThreshold = 2
	DefaultNarrowWidth     = 80
)

func (c Config) withDefaults() Config {
	if c.ScrollInterval == 0 {
		c.ScrollInterval = DefaultScrollInterval
	}
	if c.ResizeInterval == 0 {
		c.ResizeInterval = DefaultResizeInterval
	}
	if c.ScrollThreshold == 0 {
		c.ScrollThreshold = DefaultScrollThreshold
	}
	if c.NarrowWidth == 0 {
		c.NarrowWidth = DefaultNarrowWidth
	}
	return c
}

// Monitor owns the scroll/resize event streams for one page view. Events go
// through per-kind throttle dispatchers; each admitted event recomputes the
// Snapshot and hands it to the emit callback. When a resize transitions the
// viewport from narrow to wide while the navigation drawer is reported open,
// the closeDrawer hook fires (a wide viewport must never show the drawer).
type Monitor struct {
	cfg         Config
	emit        func(Snapshot)
	closeDrawer func()
	scroll      *throttle.Dispatcher[int]
	resize      *throttle.Dispatcher[Size]

	mu         sync.Mutex
	snap       Snapshot
	drawerOpen bool
	closed     bool
}

// New creates a monitor delivering snapshots to emit. closeDrawer may be nil
// when no drawer exists.
func New(cfg Config, emit func(Snapshot), closeDrawer func()) (*Monitor, error) {
	if emit == nil {
		return nil, fmt.Errorf("monitor: emit callback must not be nil")
	}
	cfg = cfg.withDefaults()
	m := &Monitor{cfg: cfg, emit: emit, closeDrawer: closeDrawer}
	var err error
	m.scroll, err = throttle.New(cfg.ScrollInterval, m.admitScroll)
	if err != nil {
		return nil, err
	}
	m.resize, err = throttle.New(cfg.ResizeInterval, m.admitResize)
	if err != nil {
		m.scroll.Stop()
		return nil, err
	}
	return m, nil
}

// OnScroll feeds a scroll offset into the throttled scroll stream.
func (m *Monitor) OnScroll(offset int) {
	m.scroll.Call(offset)
}

// OnResize feeds a viewport measurement into the throttled resize stream.
func (m *Monitor) OnResize(width, height int) {
	m.resize.Call(Size{Width: width, Height: height})
}

// SetDrawerOpen records whether the navigation drawer is currently
// non-closed, so the narrow-to-wide transition can force it shut.
func (m *Monitor) SetDrawerOpen(open bool) {
	m.mu.Lock()
	m.drawerOpen = open
	m.mu.Unlock()
}

// Snapshot returns the current derived state.
func (m *Monitor) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap
}

// Close tears down both dispatchers. Idempotent; no snapshot is emitted
// after it returns, even if events were pending.
func (m *Monitor) Close() {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	m.scroll.Stop()
	m.resize.Stop()
}

func (m *Monitor) admitScroll(offset int) {
	if offset < 0 {
		offset = 0 // malformed measurements are clamped, not rejected
	}
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.snap.ScrollOffset = offset
	m.snap.IsScrolled = offset > m.cfg.ScrollThreshold
	snap := m.snap
	m.mu.Unlock()
	m.emit(snap)
}

func (m *Monitor) admitResize(size Size) {
	if size.Width < 0 {
		size.Width = 0
	}
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	wasNarrow := m.snap.IsNarrow
	m.snap.IsNarrow = size.Width < m.cfg.NarrowWidth
	forceClose := wasNarrow && !m.snap.IsNarrow && m.drawerOpen && m.closeDrawer != nil
	snap := m.snap
	m.mu.Unlock()
	if forceClose {
		m.closeDrawer()
	}
	m.emit(snap)
}
