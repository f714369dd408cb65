package ai

import (
	"testing"

	"worm-game/game"
	"worm-game/game/entity"
	"worm-game/game/level"
	"worm-game/game/types"
	"worm-game/session"
)

func newGame(t *testing.T, lvl *level.Level) *game.Game {
	t.Helper()
	g := game.NewGame(game.Options{
		Dimensions:    entity.Dimensions{MinRows: 10, MinCols: 10},
		Capacity:      10,
		InitialLength: 1,
	}, nil)
	if err := g.Initialize(10, 10); err != nil {
		t.Fatal(err)
	}
	if err := g.StartLevel(lvl); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestAutopilotAvoidsBarrier(t *testing.T) {
	g := newGame(t, &level.Level{
		Name:     "wall",
		Worm:     level.Start{Row: 5, Col: 5, Heading: types.Right},
		Barriers: []level.Line{{From: types.Position{Row: 0, Col: 6}, To: types.Position{Row: 9, Col: 6}}},
		Food:     []level.Food{{Row: 0, Col: 0, Kind: 1}},
	})

	for seed := uint64(0); seed < 20; seed++ {
		if dir := NewAutopilot(g, seed).Choose(); dir == types.Right {
			t.Fatalf("seed %d steered into the barrier", seed)
		}
	}
}

func TestAutopilotTakesAdjacentFood(t *testing.T) {
	g := newGame(t, &level.Level{
		Name: "snack",
		Worm: level.Start{Row: 5, Col: 5, Heading: types.Right},
		Food: []level.Food{{Row: 4, Col: 5, Kind: 2}},
	})

	cmds := NewAutopilot(g, 1).Poll()
	want := []session.Command{{Kind: session.Turn, Dir: types.Up}}
	if len(cmds) != 1 || cmds[0] != want[0] {
		t.Errorf("Poll() = %+v, want %+v", cmds, want)
	}
}

func TestAutopilotKeepsHeading(t *testing.T) {
	g := newGame(t, &level.Level{
		Name: "ahead",
		Worm: level.Start{Row: 5, Col: 2, Heading: types.Right},
		Food: []level.Food{{Row: 5, Col: 3, Kind: 1}},
	})

	if cmds := NewAutopilot(g, 7).Poll(); len(cmds) != 0 {
		t.Errorf("Poll() = %+v, want no turn", cmds)
	}
}

func TestNearest(t *testing.T) {
	p := types.Position{Row: 2, Col: 2}
	if _, ok := nearest(p, nil); ok {
		t.Error("nearest of no targets reported a distance")
	}
	targets := []types.Position{{Row: 9, Col: 9}, {Row: 2, Col: 5}, {Row: 0, Col: 0}}
	if d, _ := nearest(p, targets); d != 3 {
		t.Errorf("nearest = %d, want 3", d)
	}
}
