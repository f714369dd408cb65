package entity

import (
	"errors"
	"testing"

	"worm-game/game/types"
)

func pos(row, col int) types.Position {
	return types.Position{Row: row, Col: col}
}

func TestNewWorm(t *testing.T) {
	w, err := NewWorm(5, 2, pos(5, 5), types.Right)
	if err != nil {
		t.Fatal(err)
	}
	if w.Length() != 2 || w.Capacity() != 5 {
		t.Errorf("length/capacity = %d/%d, want 2/5", w.Length(), w.Capacity())
	}
	if w.HeadPosition() != pos(5, 5) {
		t.Errorf("head = %v", w.HeadPosition())
	}
	if w.Heading() != (types.Heading{DX: 1}) {
		t.Errorf("heading = %+v", w.Heading())
	}
	if _, live := w.TailPosition(); live {
		t.Error("tail slot should still be empty")
	}
	if segs := w.Segments(); len(segs) != 1 {
		t.Errorf("segments = %v, want only the head", segs)
	}
}

func TestNewWormRejectsBadLengths(t *testing.T) {
	tests := []struct {
		name             string
		capacity, length int
	}{
		{"zero capacity", 0, 1},
		{"zero length", 5, 0},
		{"longer than capacity", 3, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWorm(tt.capacity, tt.length, pos(0, 0), types.Right)
			if !errors.Is(err, ErrInvalidLength) {
				t.Errorf("NewWorm(%d, %d) = %v, want ErrInvalidLength", tt.capacity, tt.length, err)
			}
		})
	}
}

func TestWormGrowSaturates(t *testing.T) {
	w, _ := NewWorm(5, 1, pos(0, 0), types.Right)
	w.Grow(3)
	if w.Length() != 4 {
		t.Errorf("length = %d, want 4", w.Length())
	}
	w.Grow(10)
	if w.Length() != 5 {
		t.Errorf("length = %d, want capacity 5", w.Length())
	}
	w.Grow(0)
	w.Grow(-2)
	if w.Length() != 5 {
		t.Errorf("non-positive growth changed length to %d", w.Length())
	}
}

func TestWormAdvanceHeadRing(t *testing.T) {
	w, _ := NewWorm(5, 3, pos(0, 0), types.Right)

	w.AdvanceHead(pos(0, 1))
	w.AdvanceHead(pos(0, 2))
	if tail, live := w.TailPosition(); !live || tail != pos(0, 0) {
		t.Errorf("tail = %v/%v, want (0,0)", tail, live)
	}

	// The ring wraps: slot 0 is reused for the fourth position
	w.AdvanceHead(pos(0, 3))
	if w.HeadPosition() != pos(0, 3) {
		t.Errorf("head = %v", w.HeadPosition())
	}
	if w.IsOccupiedAt(pos(0, 0)) {
		t.Error("(0,0) should have been overwritten")
	}
	want := []types.Position{pos(0, 3), pos(0, 2), pos(0, 1)}
	got := w.Segments()
	if len(got) != len(want) {
		t.Fatalf("segments = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segments[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWormIsOccupiedAfterMidRingGrowth(t *testing.T) {
	w, _ := NewWorm(10, 3, pos(0, 0), types.Right)
	for col := 1; col <= 4; col++ {
		w.AdvanceHead(pos(0, col))
	}
	// Ring of 3 holds (0,3),(0,4),(0,2) with the head in the middle slot.
	// After growing, the new head overwrites the oldest slot and the slot
	// right after it is still empty; the segments in slots 0 and 1 must
	// still be found.
	w.Grow(3)
	w.AdvanceHead(pos(0, 5))

	for col := 3; col <= 5; col++ {
		if !w.IsOccupiedAt(pos(0, col)) {
			t.Errorf("(0,%d) should be occupied", col)
		}
	}
	for _, col := range []int{1, 2} {
		if w.IsOccupiedAt(pos(0, col)) {
			t.Errorf("(0,%d) should be free", col)
		}
	}
	if got := len(w.Segments()); got != 3 {
		t.Errorf("live segments = %d, want 3", got)
	}

	// Idempotent: the query does not move anything
	first := w.IsOccupiedAt(pos(0, 3))
	if second := w.IsOccupiedAt(pos(0, 3)); first != second {
		t.Error("IsOccupiedAt not idempotent")
	}
}

func TestWormSetHeadingIgnoresNone(t *testing.T) {
	w, _ := NewWorm(3, 1, pos(0, 0), types.Up)
	w.SetHeading(types.None)
	if w.Direction() != types.Up {
		t.Errorf("direction = %v, want up", w.Direction())
	}
	// No reversal check at this layer
	w.SetHeading(types.Down)
	if w.Heading() != (types.Heading{DY: 1}) {
		t.Errorf("heading = %+v, want down", w.Heading())
	}
}
