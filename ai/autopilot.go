// Package ai steers the worm without a player. The autopilot is an input
// source like the keyboard: it only proposes headings between ticks.
package ai

import (
	"golang.org/x/exp/rand"

	"worm-game/game/entity"
	"worm-game/game/manager"
	"worm-game/game/types"
	"worm-game/session"
)

// View is the read-only part of the game the autopilot looks at
type View interface {
	Board() *entity.Board
	Worm() *entity.Worm
}

type Autopilot struct {
	view      View
	collision *manager.CollisionManager
	board     *entity.Board
	rng       *rand.Rand
}

func NewAutopilot(view View, seed uint64) *Autopilot {
	return &Autopilot{
		view: view,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Poll proposes the heading for the next tick
func (a *Autopilot) Poll() []session.Command {
	if a.view.Worm() == nil {
		return nil
	}
	dir := a.Choose()
	if dir == a.view.Worm().Direction() {
		return nil
	}
	return []session.Command{{Kind: session.Turn, Dir: dir}}
}

// Choose picks straight, left or right. Unsafe cells are never chosen while
// a safe one exists; among safe cells the one closer to food and with more
// room around it wins, ties broken at random.
func (a *Autopilot) Choose() types.Direction {
	worm := a.view.Worm()
	cm := a.collisionManager()
	head := worm.HeadPosition()
	current := worm.Direction()

	food := a.foodCells()
	best, bestScore := current, -1<<31
	for _, dir := range []types.Direction{current, current.TurnLeft(), current.TurnRight()} {
		next := head.Add(dir.Heading())
		if !cm.IsSafe(next) {
			continue
		}

		score := 10 * a.freeNeighbours(cm, next, head)
		if d, ok := nearest(next, food); ok {
			score -= d
		}
		if _, ok := cm.IsFoodCollision(next); ok {
			score += 100
		}
		score = score*4 + a.rng.Intn(4)

		if score > bestScore {
			best, bestScore = dir, score
		}
	}
	return best
}

// collisionManager rebuilds the checker when a new level swapped the board
func (a *Autopilot) collisionManager() *manager.CollisionManager {
	if b := a.view.Board(); a.collision == nil || b != a.board {
		a.board = b
		a.collision = manager.NewCollisionManager(b)
	}
	return a.collision
}

// freeNeighbours counts the safe cells around pos, not counting from
func (a *Autopilot) freeNeighbours(cm *manager.CollisionManager, pos, from types.Position) int {
	n := 0
	for _, dir := range []types.Direction{types.Up, types.Right, types.Down, types.Left} {
		p := pos.Add(dir.Heading())
		if p != from && cm.IsSafe(p) {
			n++
		}
	}
	return n
}

func (a *Autopilot) foodCells() []types.Position {
	b := a.view.Board()
	var cells []types.Position
	for row := 0; row <= b.LastRow(); row++ {
		for col := 0; col <= b.LastCol(); col++ {
			p := types.Position{Row: row, Col: col}
			if b.ContentAt(p).IsFood() {
				cells = append(cells, p)
			}
		}
	}
	return cells
}
