package accordion

import "testing"

func TestToggle(t *testing.T) {
	a := New(4, None)
	if a.OpenIndex() != None {
		t.Fatalf("initial open = %d, want none", a.OpenIndex())
	}

	a.Toggle(2)
	if a.OpenIndex() != 2 || !a.IsOpen(2) {
		t.Fatalf("open = %d, want 2", a.OpenIndex())
	}

	// Toggling another panel swaps; the first closes in the same step.
	a.Toggle(0)
	if a.OpenIndex() != 0 || a.IsOpen(2) {
		t.Fatalf("open = %d, want 0 with 2 closed", a.OpenIndex())
	}

	// Toggling the open panel collapses it.
	a.Toggle(0)
	if a.OpenIndex() != None {
		t.Fatalf("open = %d, want none", a.OpenIndex())
	}
}

func TestDefaultOpenIndex(t *testing.T) {
	if a := New(3, 0); a.OpenIndex() != 0 {
		t.Errorf("open = %d, want 0", a.OpenIndex())
	}
	if a := New(3, 7); a.OpenIndex() != None {
		t.Errorf("out-of-range initial: open = %d, want none", a.OpenIndex())
	}
}

func TestOutOfRangeToggleIsNoop(t *testing.T) {
	a := New(3, 1)
	a.Toggle(-1)
	a.Toggle(3)
	if a.OpenIndex() != 1 {
		t.Errorf("open = %d, want 1", a.OpenIndex())
	}
}

// Mutual exclusion holds across arbitrary toggle sequences.
func TestAtMostOneOpen(t *testing.T) {
	a := New(5, 0)
	seq := []int{1, 1, 2, 4, 0, 3, 3, 2, -1, 5, 4}
	for _, i := range seq {
		a.Toggle(i)
		open := 0
		for p := 0; p < a.Len(); p++ {
			if a.IsOpen(p) {
				open++
			}
		}
		if open > 1 {
			t.Fatalf("after Toggle(%d): %d panels open", i, open)
		}
	}
}
