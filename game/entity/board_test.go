package entity

import (
	"errors"
	"testing"

	"worm-game/game/types"
)

type write struct {
	pos  types.Position
	code types.CellCode
	kind types.Kind
}

type recordingSink struct {
	writes []write
}

func (s *recordingSink) Place(pos types.Position, code types.CellCode, kind types.Kind) {
	s.writes = append(s.writes, write{pos, code, kind})
}

var testDims = Dimensions{MinRows: 10, MinCols: 20, ReservedRows: 2}

func TestBoardInitialize(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		wantErr    bool
	}{
		{"exact fit", 12, 20, false},
		{"larger window", 40, 100, false},
		{"too few columns", 12, 19, true},
		{"no room for messages", 10, 20, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(testDims, nil)
			err := b.Initialize(tt.rows, tt.cols)
			if tt.wantErr {
				if !errors.Is(err, ErrDimensionTooSmall) {
					t.Fatalf("Initialize(%d, %d) = %v, want ErrDimensionTooSmall", tt.rows, tt.cols, err)
				}
				var dimErr *DimensionError
				if !errors.As(err, &dimErr) || dimErr.NeedRows != 12 || dimErr.NeedCols != 20 {
					t.Errorf("DimensionError = %+v", dimErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Initialize(%d, %d) = %v", tt.rows, tt.cols, err)
			}
			if b.LastRow() != 9 || b.LastCol() != 19 {
				t.Errorf("last row/col = %d/%d, want 9/19", b.LastRow(), b.LastCol())
			}
		})
	}
}

func TestBoardResetLevel(t *testing.T) {
	sink := &recordingSink{}
	b := NewBoard(testDims, sink)
	if err := b.Initialize(12, 20); err != nil {
		t.Fatal(err)
	}

	stamps := []Stamp{
		{types.Position{Row: 0, Col: 0}, types.Barrier},
		{types.Position{Row: 1, Col: 1}, types.Food1},
		{types.Position{Row: 2, Col: 2}, types.Food3},
		{types.Position{Row: 2, Col: 2}, types.Food2}, // overwrites, still one item
	}
	if err := b.ResetLevel(stamps); err != nil {
		t.Fatal(err)
	}

	if got := b.FoodItems(); got != 2 {
		t.Errorf("FoodItems() = %d, want 2", got)
	}
	if got := b.ContentAt(types.Position{Row: 0, Col: 0}); got != types.Barrier {
		t.Errorf("(0,0) = %v, want barrier", got)
	}
	if got := b.ContentAt(types.Position{Row: 2, Col: 2}); got != types.Food2 {
		t.Errorf("(2,2) = %v, want food2", got)
	}
	if want := 10*20 + len(stamps); len(sink.writes) != want {
		t.Errorf("sink saw %d writes, want %d", len(sink.writes), want)
	}
	if last := sink.writes[len(sink.writes)-1]; last.kind != types.KindFood {
		t.Errorf("last write kind = %v, want food", last.kind)
	}

	// A second reset starts from a clean board
	if err := b.ResetLevel(nil); err != nil {
		t.Fatal(err)
	}
	if b.FoodItems() != 0 || b.ContentAt(types.Position{Row: 0, Col: 0}) != types.Free {
		t.Error("reset did not clear the board")
	}
}

func TestBoardResetLevelRejectsOutOfBounds(t *testing.T) {
	b := NewBoard(testDims, nil)
	if err := b.Initialize(12, 20); err != nil {
		t.Fatal(err)
	}
	err := b.ResetLevel([]Stamp{{types.Position{Row: 10, Col: 0}, types.Barrier}})
	if !errors.Is(err, ErrStampOutOfBounds) {
		t.Errorf("ResetLevel = %v, want ErrStampOutOfBounds", err)
	}
}

func TestBoardContainsAndFood(t *testing.T) {
	b := NewBoard(testDims, nil)
	if err := b.Initialize(12, 20); err != nil {
		t.Fatal(err)
	}
	for _, p := range []types.Position{{Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: 10, Col: 0}, {Row: 0, Col: 20}} {
		if b.Contains(p) {
			t.Errorf("Contains(%v) = true", p)
		}
	}
	if !b.Contains(types.Position{Row: 9, Col: 19}) {
		t.Error("corner not contained")
	}

	if err := b.ResetLevel([]Stamp{{types.Position{Row: 3, Col: 3}, types.Food1}}); err != nil {
		t.Fatal(err)
	}
	b.DecrementFood()
	if b.FoodItems() != 0 {
		t.Errorf("FoodItems() = %d after decrement, want 0", b.FoodItems())
	}
}
