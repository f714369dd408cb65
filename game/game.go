package game

import (
	"fmt"

	"worm-game/game/entity"
	"worm-game/game/level"
	"worm-game/game/manager"
	"worm-game/game/types"
)

// Options fixes the board size, worm capacity and food bonuses
type Options struct {
	Dimensions    entity.Dimensions
	Capacity      int
	InitialLength int
	Bonus         manager.Bonus
}

// Event describes what a single tick did, for the session's logs and trace
type Event struct {
	Status  types.Status
	Head    types.Position
	Ate     types.FoodKind
	Grew    int
	Vacated bool
}

// Game is the tick controller. It owns the board and the worm for the
// length of a level and is the only code that writes worm occupancy into
// the board.
type Game struct {
	opts Options

	board *entity.Board
	worm  *entity.Worm
	level *level.Level

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager

	last Event
}

func NewGame(opts Options, sink types.Sink) *Game {
	board := entity.NewBoard(opts.Dimensions, sink)
	return &Game{
		opts:         opts,
		board:        board,
		collisionMgr: manager.NewCollisionManager(board),
		foodMgr:      manager.NewFoodManager(board, opts.Bonus),
		stateMgr:     manager.NewStateManager(),
	}
}

// Initialize validates the display size. It fails with
// entity.ErrDimensionTooSmall when the window cannot hold the board.
func (g *Game) Initialize(rows, cols int) error {
	return g.board.Initialize(rows, cols)
}

// StartLevel resets the board to the level's layout and places a new worm
func (g *Game) StartLevel(lvl *level.Level) error {
	lastRow, lastCol := g.board.LastRow(), g.board.LastCol()
	if lastRow < 0 {
		return fmt.Errorf("starting level %q: board not initialized", lvl.Name)
	}

	stamps, err := lvl.Stamps(lastRow, lastCol)
	if err != nil {
		return fmt.Errorf("starting level %q: %w", lvl.Name, err)
	}
	if err := g.board.ResetLevel(stamps); err != nil {
		return fmt.Errorf("starting level %q: %w", lvl.Name, err)
	}

	head := lvl.HeadPosition(lastRow, lastCol)
	if !g.board.Contains(head) || g.board.ContentAt(head) != types.Free {
		return fmt.Errorf("starting level %q: worm start %s is not a free cell", lvl.Name, head)
	}

	length := lvl.Worm.Length
	if length == 0 {
		length = g.opts.InitialLength
	}
	worm, err := entity.NewWorm(g.opts.Capacity, length, head, lvl.Worm.Heading)
	if err != nil {
		return fmt.Errorf("starting level %q: %w", lvl.Name, err)
	}

	g.worm = worm
	g.level = lvl
	g.foodMgr.Reset()
	g.stateMgr.Reset()
	g.last = Event{Status: types.Ongoing, Head: head}
	g.board.SetCell(head, types.UsedByWorm, types.KindHead)
	return nil
}

// SetHeading applies a direction change; it takes effect on the next tick
func (g *Game) SetHeading(dir types.Direction) {
	g.worm.SetHeading(dir)
}

// Tick advances the worm along its current heading
func (g *Game) Tick() types.Status {
	return g.Step(g.worm.Heading())
}

// Step advances the worm one cell along heading and returns the new status.
// Terminal outcomes leave the board and the worm untouched; once the game is
// over every further step returns the same status.
func (g *Game) Step(heading types.Heading) types.Status {
	if g.stateMgr.IsOver() {
		return g.stateMgr.Status()
	}

	prevHead := g.worm.HeadPosition()
	candidate := prevHead.Add(heading)
	ev := Event{Head: prevHead}

	status := g.collisionMgr.CheckCollision(candidate)
	if status == types.Ongoing {
		// Growth first: it changes the ring size and therefore the tail slot
		if kind, ok := g.collisionMgr.IsFoodCollision(candidate); ok {
			ev.Ate = kind
			ev.Grew = g.foodMgr.Consume(g.worm, kind)
		}

		if tail, live := g.worm.TailPosition(); live {
			g.board.SetCell(tail, types.Free, types.KindFree)
			ev.Vacated = true
		}
		g.worm.AdvanceHead(candidate)
		ev.Head = candidate

		g.board.SetCell(candidate, types.UsedByWorm, types.KindHead)
		if g.worm.Length() > 1 {
			g.board.SetCell(prevHead, types.UsedByWorm, types.KindInner)
		}
		if tail, live := g.worm.TailPosition(); live && tail != candidate {
			g.board.SetCell(tail, types.UsedByWorm, types.KindTail)
		}
	}

	ev.Status = g.stateMgr.Update(status)
	g.last = ev
	return ev.Status
}

func (g *Game) Status() types.Status {
	return g.stateMgr.Status()
}

// Cleared reports whether every food item of the level has been eaten
func (g *Game) Cleared() bool {
	return g.board.FoodItems() == 0
}

func (g *Game) Ticks() int {
	return g.stateMgr.Ticks()
}

func (g *Game) FoodEaten() int {
	return g.foodMgr.TotalEaten()
}

func (g *Game) LastEvent() Event {
	return g.last
}

func (g *Game) Board() *entity.Board {
	return g.board
}

func (g *Game) Worm() *entity.Worm {
	return g.worm
}

func (g *Game) Level() *level.Level {
	return g.level
}
