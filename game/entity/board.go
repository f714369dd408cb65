package entity

import (
	"errors"
	"fmt"

	"worm-game/game/types"
)

var (
	ErrDimensionTooSmall = errors.New("display too small")
	ErrStampOutOfBounds  = errors.New("stamp outside the board")
)

// DimensionError reports the display size a board needs
type DimensionError struct {
	NeedRows, NeedCols int
	HaveRows, HaveCols int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("display too small: need %dx%d, have %dx%d",
		e.NeedCols, e.NeedRows, e.HaveCols, e.HaveRows)
}

func (e *DimensionError) Unwrap() error {
	return ErrDimensionTooSmall
}

// Dimensions fixes the playfield size and the rows kept free for messages
type Dimensions struct {
	MinRows      int
	MinCols      int
	ReservedRows int
}

// Stamp places one barrier or food item when a level is reset
type Stamp struct {
	Pos  types.Position
	Code types.CellCode
}

// Board is the cell-occupancy grid
type Board struct {
	dims      Dimensions
	cells     [][]types.CellCode
	lastRow   int
	lastCol   int
	foodItems int
	sink      types.Sink
}

// NewBoard creates a board that reports cell writes to sink
func NewBoard(dims Dimensions, sink types.Sink) *Board {
	if sink == nil {
		sink = types.NopSink{}
	}
	return &Board{dims: dims, sink: sink, lastRow: -1, lastCol: -1}
}

// Initialize validates the available display area and fixes the board size.
// The playfield is always MinRows x MinCols; the extra rows are the message area.
func (b *Board) Initialize(rows, cols int) error {
	needRows := b.dims.MinRows + b.dims.ReservedRows
	if cols < b.dims.MinCols || rows < needRows {
		return &DimensionError{
			NeedRows: needRows, NeedCols: b.dims.MinCols,
			HaveRows: rows, HaveCols: cols,
		}
	}

	b.lastRow = b.dims.MinRows - 1
	b.lastCol = b.dims.MinCols - 1
	b.cells = make([][]types.CellCode, b.dims.MinRows)
	for i := range b.cells {
		b.cells[i] = make([]types.CellCode, b.dims.MinCols)
	}
	return nil
}

// ResetLevel clears the board and stamps the level's barriers and food.
// foodItems is counted from the cells after stamping, so overlapping stamps
// cannot leave the counter out of step with the board.
func (b *Board) ResetLevel(stamps []Stamp) error {
	for _, s := range stamps {
		if !b.Contains(s.Pos) {
			return fmt.Errorf("%w: %s %s", ErrStampOutOfBounds, s.Code, s.Pos)
		}
	}

	for row := 0; row <= b.lastRow; row++ {
		for col := 0; col <= b.lastCol; col++ {
			b.SetCell(types.Position{Row: row, Col: col}, types.Free, types.KindFree)
		}
	}
	for _, s := range stamps {
		b.SetCell(s.Pos, s.Code, types.KindOf(s.Code))
	}

	b.foodItems = 0
	for _, row := range b.cells {
		for _, c := range row {
			if c.IsFood() {
				b.foodItems++
			}
		}
	}
	return nil
}

// Contains reports whether pos lies on the playfield
func (b *Board) Contains(pos types.Position) bool {
	return pos.Row >= 0 && pos.Row <= b.lastRow && pos.Col >= 0 && pos.Col <= b.lastCol
}

// ContentAt looks up a cell. pos must be on the board.
func (b *Board) ContentAt(pos types.Position) types.CellCode {
	return b.cells[pos.Row][pos.Col]
}

// SetCell stores code at pos and forwards the write to the sink
func (b *Board) SetCell(pos types.Position, code types.CellCode, kind types.Kind) {
	b.cells[pos.Row][pos.Col] = code
	b.sink.Place(pos, code, kind)
}

func (b *Board) DecrementFood() {
	b.foodItems--
}

func (b *Board) FoodItems() int {
	return b.foodItems
}

func (b *Board) LastRow() int {
	return b.lastRow
}

func (b *Board) LastCol() int {
	return b.lastCol
}

func (b *Board) Dimensions() Dimensions {
	return b.dims
}
