package ai

import "worm-game/game/types"

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// manhattanDistance between two cells; the board does not wrap
func manhattanDistance(p1, p2 types.Position) int {
	return abs(p2.Row-p1.Row) + abs(p2.Col-p1.Col)
}

// nearest returns the distance from p to the closest target
func nearest(p types.Position, targets []types.Position) (int, bool) {
	best, found := 0, false
	for _, t := range targets {
		if d := manhattanDistance(p, t); !found || d < best {
			best, found = d, true
		}
	}
	return best, found
}
