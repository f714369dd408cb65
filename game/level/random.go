package level

import (
	"fmt"

	"golang.org/x/exp/rand"

	"worm-game/game/types"
)

// RandomOptions controls the generated layout
type RandomOptions struct {
	Seed     uint64
	Rows     int
	Cols     int
	Food     int
	Barriers int
}

// clearAhead is the run of cells in front of the worm kept free of barriers
const clearAhead = 5

// Random builds a level with short barrier lines and food scattered over
// free cells. The same options always produce the same level.
func Random(opts RandomOptions) (*Level, error) {
	if opts.Rows < 4 || opts.Cols < 4 {
		return nil, fmt.Errorf("random level needs at least 4x4 cells, got %dx%d", opts.Cols, opts.Rows)
	}

	r := rand.New(rand.NewSource(opts.Seed))
	lvl := &Level{
		Name: fmt.Sprintf("random-%d", opts.Seed),
		Worm: Start{Row: opts.Rows / 2, Col: 1, Heading: types.Right},
	}

	taken := make(map[types.Position]bool)
	head := types.Position{Row: lvl.Worm.Row, Col: lvl.Worm.Col}
	for i := 0; i <= clearAhead; i++ {
		taken[types.Position{Row: head.Row, Col: head.Col + i}] = true
	}

	for i := 0; i < opts.Barriers; i++ {
		from := types.Position{Row: r.Intn(opts.Rows), Col: r.Intn(opts.Cols)}
		length := 2 + r.Intn(6)
		step := types.Heading{DX: 1}
		if r.Intn(2) == 0 {
			step = types.Heading{DY: 1}
		}

		// Walk the line and stop before leaving the board or touching a taken cell
		to := from
		if taken[from] {
			continue
		}
		for n := 1; n < length; n++ {
			next := to.Add(step)
			if next.Row >= opts.Rows || next.Col >= opts.Cols || taken[next] {
				break
			}
			to = next
		}
		for p := from; ; p = p.Add(step) {
			taken[p] = true
			if p == to {
				break
			}
		}
		lvl.Barriers = append(lvl.Barriers, Line{From: from, To: to})
	}

	free := opts.Rows*opts.Cols - len(taken)
	want := opts.Food
	if want > free {
		want = free
	}
	for len(lvl.Food) < want {
		p := types.Position{Row: r.Intn(opts.Rows), Col: r.Intn(opts.Cols)}
		if taken[p] {
			continue
		}
		taken[p] = true
		lvl.Food = append(lvl.Food, Food{Row: p.Row, Col: p.Col, Kind: types.FoodKind(1 + r.Intn(3))})
	}

	return lvl, nil
}
