package manager

import (
	"worm-game/game/entity"
	"worm-game/game/types"
)

// Bonus maps a food kind to the number of segments it adds
type Bonus map[types.FoodKind]int

// DefaultBonus is used when no bonus table is configured
var DefaultBonus = Bonus{1: 3, 2: 5, 3: 10}

type FoodManager struct {
	board *entity.Board
	bonus Bonus
	eaten map[types.FoodKind]int
}

func NewFoodManager(board *entity.Board, bonus Bonus) *FoodManager {
	if len(bonus) == 0 {
		bonus = DefaultBonus
	}
	return &FoodManager{
		board: board,
		bonus: bonus,
		eaten: make(map[types.FoodKind]int),
	}
}

// BonusFor returns the growth granted by kind
func (fm *FoodManager) BonusFor(kind types.FoodKind) int {
	return fm.bonus[kind]
}

// Consume grows the worm by the item's bonus and takes the item off the
// board's counter. The cell itself is overwritten by the worm's head.
func (fm *FoodManager) Consume(worm *entity.Worm, kind types.FoodKind) int {
	amount := fm.BonusFor(kind)
	worm.Grow(amount)
	fm.board.DecrementFood()
	fm.eaten[kind]++
	return amount
}

// Remaining is the number of uncollected food items
func (fm *FoodManager) Remaining() int {
	return fm.board.FoodItems()
}

// Eaten returns how many items of kind were consumed since the last reset
func (fm *FoodManager) Eaten(kind types.FoodKind) int {
	return fm.eaten[kind]
}

// TotalEaten sums Eaten over all kinds
func (fm *FoodManager) TotalEaten() int {
	total := 0
	for _, n := range fm.eaten {
		total += n
	}
	return total
}

func (fm *FoodManager) Reset() {
	fm.eaten = make(map[types.FoodKind]int)
}
