package ui

import (
	"testing"

	"grazebox/internal/overlay"
)

// runAnim drives an animation phase to completion by simulating the tick
// stream. Returns the number of ticks delivered.
func runDrawerAnim(t *testing.T, d *Drawer) int {
	t.Helper()
	seq := d.mgr.Seq()
	ticks := 0
	for d.mgr.State().Animating() && ticks < overlayFrames*2 {
		d.HandleAnim(drawerAnimMsg{seq: seq})
		ticks++
	}
	return ticks
}

func TestDrawerAnimationCompletes(t *testing.T) {
	d := NewDrawer()
	if cmd := d.Toggle(); cmd == nil {
		t.Fatal("Toggle from closed should schedule ticks")
	}
	runDrawerAnim(t, d)
	if d.State() != overlay.Open {
		t.Fatalf("state = %v, want open", d.State())
	}

	d.Toggle()
	runDrawerAnim(t, d)
	if d.State() != overlay.Closed {
		t.Fatalf("state = %v, want closed", d.State())
	}
}

func TestStaleTickDropped(t *testing.T) {
	d := NewDrawer()
	d.Toggle()
	entrySeq := d.mgr.Seq()
	d.HandleAnim(drawerAnimMsg{seq: entrySeq}) // partial entry

	// Forced close mid-opening; the old tick stream is now stale.
	d.ForceClose()
	if d.State() != overlay.Closing {
		t.Fatalf("state = %v, want closing", d.State())
	}
	if cmd := d.HandleAnim(drawerAnimMsg{seq: entrySeq}); cmd != nil {
		t.Error("stale tick must not schedule further frames")
	}
	if d.State() != overlay.Closing {
		t.Fatalf("stale tick changed state to %v", d.State())
	}

	runDrawerAnim(t, d)
	if d.State() != overlay.Closed {
		t.Fatalf("state = %v, want closed", d.State())
	}
}

func TestDrawerViewScalesWithProgress(t *testing.T) {
	d := NewDrawer()
	if d.View(24) != "" {
		t.Error("closed drawer should render nothing")
	}
	d.Toggle()
	runDrawerAnim(t, d)
	if d.View(24) == "" {
		t.Error("open drawer should render the panel")
	}
}

func TestDrawerSelection(t *testing.T) {
	d := NewDrawer()
	if d.Selected().ID == "" {
		t.Fatal("drawer should select the first nav item by default")
	}
}
