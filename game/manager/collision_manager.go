package manager

import (
	"worm-game/game/entity"
	"worm-game/game/types"
)

type CollisionManager struct {
	board *entity.Board
}

func NewCollisionManager(board *entity.Board) *CollisionManager {
	return &CollisionManager{
		board: board,
	}
}

// CheckCollision classifies the cell the head would move into.
// Food and free cells leave the game ongoing.
func (cm *CollisionManager) CheckCollision(pos types.Position) types.Status {
	if cm.isWallCollision(pos) {
		return types.OutOfBounds
	}

	switch cm.board.ContentAt(pos) {
	case types.Barrier:
		return types.Crash
	case types.UsedByWorm:
		return types.Crossing
	default:
		return types.Ongoing
	}
}

// isWallCollision checks if a position is off the playfield
func (cm *CollisionManager) isWallCollision(pos types.Position) bool {
	return !cm.board.Contains(pos)
}

// IsSafe reports whether moving into pos keeps the game going
func (cm *CollisionManager) IsSafe(pos types.Position) bool {
	return cm.CheckCollision(pos) == types.Ongoing
}

// IsFoodCollision checks if a position holds a food item
func (cm *CollisionManager) IsFoodCollision(pos types.Position) (types.FoodKind, bool) {
	if cm.isWallCollision(pos) {
		return 0, false
	}
	c := cm.board.ContentAt(pos)
	return c.FoodKind(), c.IsFood()
}
