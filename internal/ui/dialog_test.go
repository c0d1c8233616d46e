package ui

import (
	"testing"

	"grazebox/internal/menu"
	"grazebox/internal/overlay"
)

func dishA(t *testing.T) menu.Dish {
	t.Helper()
	return menu.Dishes[0]
}

func dishB(t *testing.T) menu.Dish {
	t.Helper()
	return menu.Dishes[1]
}

func runDialogAnim(t *testing.T, d *Dialog) {
	t.Helper()
	seq := d.mgr.Seq()
	for i := 0; d.mgr.State().Animating() && d.mgr.Seq() == seq && i < overlayFrames*2; i++ {
		d.HandleAnim(dialogAnimMsg{seq: seq})
	}
}

func TestDialogShowAndDismiss(t *testing.T) {
	d := NewDialog()
	if cmd := d.Show(dishA(t)); cmd == nil {
		t.Fatal("Show should start the entry animation")
	}
	runDialogAnim(t, d)
	if d.State() != overlay.Open || d.Dish().ID != dishA(t).ID {
		t.Fatalf("state = %v dish = %q", d.State(), d.Dish().ID)
	}

	if cmd := d.Dismiss(); cmd == nil {
		t.Fatal("Dismiss should start the exit animation")
	}
	// Content stays stable while fading out.
	if d.Dish().ID != dishA(t).ID {
		t.Errorf("payload dropped during closing: %q", d.Dish().ID)
	}
	runDialogAnim(t, d)
	if d.State() != overlay.Closed {
		t.Fatalf("state = %v, want closed", d.State())
	}
}

func TestShowSameDishIsNoop(t *testing.T) {
	d := NewDialog()
	d.Show(dishA(t))
	runDialogAnim(t, d)
	if cmd := d.Show(dishA(t)); cmd != nil {
		t.Error("re-showing the visible dish must be a no-op")
	}
	if d.State() != overlay.Open {
		t.Fatalf("state = %v, want open", d.State())
	}
}

func TestSecondDishWaitsForFullClose(t *testing.T) {
	d := NewDialog()
	d.Show(dishA(t))
	runDialogAnim(t, d)

	// Requesting B closes A first; B is not shown until A reaches closed.
	d.Show(dishB(t))
	if d.State() != overlay.Closing || d.Dish().ID != dishA(t).ID {
		t.Fatalf("state = %v dish = %q, want closing A", d.State(), d.Dish().ID)
	}

	// Drive A's exit to completion; the manager rolls straight into B's
	// entry with a fresh tick stream.
	closingSeq := d.mgr.Seq()
	var reopened bool
	for i := 0; i < overlayFrames*2 && !reopened; i++ {
		if cmd := d.HandleAnim(dialogAnimMsg{seq: closingSeq}); cmd != nil && d.mgr.Seq() != closingSeq {
			reopened = true
		}
	}
	if d.State() != overlay.Opening || d.Dish().ID != dishB(t).ID {
		t.Fatalf("state = %v dish = %q, want opening B", d.State(), d.Dish().ID)
	}

	runDialogAnim(t, d)
	if d.State() != overlay.Open || d.Dish().ID != dishB(t).ID {
		t.Fatalf("state = %v dish = %q, want open B", d.State(), d.Dish().ID)
	}
}

func TestDialogViewEmptyWhenClosed(t *testing.T) {
	d := NewDialog()
	if d.View(80, 24) != "" {
		t.Error("closed dialog should render nothing")
	}
	d.Show(dishA(t))
	if d.View(80, 24) == "" {
		t.Error("opening dialog should render the card")
	}
}
