package types

import "testing"

func TestDirectionHeading(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Heading
	}{
		{Up, Heading{DX: 0, DY: -1}},
		{Down, Heading{DX: 0, DY: 1}},
		{Left, Heading{DX: -1, DY: 0}},
		{Right, Heading{DX: 1, DY: 0}},
		{None, Heading{}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := tt.dir.Heading(); got != tt.want {
				t.Errorf("%v.Heading() = %+v, want %+v", tt.dir, got, tt.want)
			}
			if tt.dir != None {
				if back := DirectionOf(tt.want); back != tt.dir {
					t.Errorf("DirectionOf(%+v) = %v, want %v", tt.want, back, tt.dir)
				}
			}
		})
	}
}

func TestDirectionTurns(t *testing.T) {
	for _, d := range []Direction{Up, Right, Down, Left} {
		if got := d.TurnLeft().TurnRight(); got != d {
			t.Errorf("%v left then right = %v", d, got)
		}
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("%v opposite twice = %v", d, got)
		}
		if got := d.TurnRight().TurnRight(); got != d.Opposite() {
			t.Errorf("%v right twice = %v, want %v", d, got, d.Opposite())
		}
	}
}

func TestDirectionUnmarshalText(t *testing.T) {
	var d Direction
	if err := d.UnmarshalText([]byte(" Left ")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if d != Left {
		t.Errorf("got %v, want left", d)
	}
	if err := d.UnmarshalText([]byte("sideways")); err == nil {
		t.Error("expected error for unknown direction")
	}
	if err := d.UnmarshalText([]byte("none")); err == nil {
		t.Error("expected error for none")
	}
}

func TestPositionAdd(t *testing.T) {
	p := Position{Row: 5, Col: 5}
	if got := p.Add(Right.Heading()); got != (Position{Row: 5, Col: 6}) {
		t.Errorf("right of %v = %v", p, got)
	}
	if got := p.Add(Up.Heading()); got != (Position{Row: 4, Col: 5}) {
		t.Errorf("up of %v = %v", p, got)
	}
}

func TestCellCodeFood(t *testing.T) {
	for k := FoodKind(1); k <= 3; k++ {
		c := k.Code()
		if !c.IsFood() || c.FoodKind() != k {
			t.Errorf("kind %d -> %v -> kind %d", k, c, c.FoodKind())
		}
		if KindOf(c) != KindFood {
			t.Errorf("KindOf(%v) = %v", c, KindOf(c))
		}
	}
	for _, c := range []CellCode{Free, Barrier, UsedByWorm} {
		if c.IsFood() || c.FoodKind() != 0 {
			t.Errorf("%v reported as food", c)
		}
	}
	if FoodKind(4).Code() != Free {
		t.Error("unknown food kind should map to free")
	}
}

func TestStatusIsTerminal(t *testing.T) {
	if Ongoing.IsTerminal() {
		t.Error("ongoing must not be terminal")
	}
	for _, s := range []Status{OutOfBounds, Crash, Crossing} {
		if !s.IsTerminal() {
			t.Errorf("%v must be terminal", s)
		}
	}
}
