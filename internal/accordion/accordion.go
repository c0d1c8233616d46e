// Package accordion holds single-open-at-a-time expandable list state.
package accordion

// None is the open index when every panel is collapsed.
const None = -1

// Accordion tracks which panel of a fixed ordered list is expanded.
// At most one index is ever open; Toggle swaps atomically, so there is no
// intermediate state with two panels expanded.
type Accordion struct {
	count int
	open  int
}

// New creates an accordion over count panels with initial as the open index.
// Pass None to start fully collapsed; an out-of-range initial collapses too.
func New(count, initial int) *Accordion {
	a := &Accordion{count: count, open: None}
	if initial >= 0 && initial < count {
		a.open = initial
	}
	return a
}

// Toggle closes panel i if it is open, otherwise opens it (closing whatever
// was open before). Out-of-range indexes are no-ops.
func (a *Accordion) Toggle(i int) {
	if i < 0 || i >= a.count {
		return
	}
	if a.open == i {
		a.open = None
		return
	}
	a.open = i
}

// OpenIndex returns the open panel index, or None.
func (a *Accordion) OpenIndex() int { return a.open }

// IsOpen reports whether panel i is expanded.
func (a *Accordion) IsOpen(i int) bool { return i != None && a.open == i }

// Len returns the panel count.
func (a *Accordion) Len() int { return a.count }
