package types

import (
	"fmt"
	"strings"
)

// Position is a board coordinate
type Position struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Add returns the position one heading step away
func (p Position) Add(h Heading) Position {
	return Position{Row: p.Row + h.DY, Col: p.Col + h.DX}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Heading is a unit step: DX moves columns, DY moves rows
type Heading struct {
	DX, DY int
}

// Direction is one of the four symbolic headings the input side can ask for
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// Heading converts a Direction into its step vector
func (d Direction) Heading() Heading {
	switch d {
	case Up:
		return Heading{DX: 0, DY: -1}
	case Right:
		return Heading{DX: 1, DY: 0}
	case Down:
		return Heading{DX: 0, DY: 1}
	case Left:
		return Heading{DX: -1, DY: 0}
	default:
		return Heading{}
	}
}

// Opposite returns the 180 degree turn of d
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return None
	}
}

// TurnLeft returns the direction after a quarter turn counter-clockwise
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Right:
		return Up
	case Down:
		return Right
	case Left:
		return Down
	default:
		return d
	}
}

// TurnRight returns the direction after a quarter turn clockwise
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		return d
	}
}

// DirectionOf interprets a step vector back into a Direction
func DirectionOf(h Heading) Direction {
	switch {
	case h.DY < 0:
		return Up
	case h.DX > 0:
		return Right
	case h.DY > 0:
		return Down
	case h.DX < 0:
		return Left
	default:
		return None
	}
}

var directionNames = map[Direction]string{
	None:  "none",
	Up:    "up",
	Right: "right",
	Down:  "down",
	Left:  "left",
}

func (d Direction) String() string {
	if s, ok := directionNames[d]; ok {
		return s
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// UnmarshalText lets level and config files spell headings as words
func (d *Direction) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for dir, s := range directionNames {
		if s == name && dir != None {
			*d = dir
			return nil
		}
	}
	return fmt.Errorf("unknown direction %q", string(text))
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// CellCode is the content of one board cell
type CellCode uint8

const (
	Free CellCode = iota
	Barrier
	Food1
	Food2
	Food3
	UsedByWorm
)

// IsFood reports whether the cell holds a food item
func (c CellCode) IsFood() bool {
	return c >= Food1 && c <= Food3
}

// FoodKind returns k in {1,2,3} for food cells and 0 otherwise
func (c CellCode) FoodKind() FoodKind {
	if !c.IsFood() {
		return 0
	}
	return FoodKind(c - Food1 + 1)
}

func (c CellCode) String() string {
	switch c {
	case Free:
		return "free"
	case Barrier:
		return "barrier"
	case Food1, Food2, Food3:
		return fmt.Sprintf("food%d", c.FoodKind())
	case UsedByWorm:
		return "worm"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// FoodKind identifies one of the three food items
type FoodKind int

// Code returns the cell code that stores this kind on the board
func (k FoodKind) Code() CellCode {
	if k < 1 || k > 3 {
		return Free
	}
	return Food1 + CellCode(k-1)
}

// Status is the outcome of one tick
type Status int

const (
	Ongoing Status = iota
	OutOfBounds
	Crash
	Crossing
)

// IsTerminal reports whether the game is over
func (s Status) IsTerminal() bool {
	return s != Ongoing
}

func (s Status) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case OutOfBounds:
		return "out_of_bounds"
	case Crash:
		return "crash"
	case Crossing:
		return "crossing"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Kind is a presentation hint passed along with every cell write
type Kind int

const (
	KindFree Kind = iota
	KindBarrier
	KindFood
	KindHead
	KindInner
	KindTail
)

// KindOf returns the default presentation of a non-worm cell code
func KindOf(c CellCode) Kind {
	switch {
	case c == Barrier:
		return KindBarrier
	case c.IsFood():
		return KindFood
	case c == UsedByWorm:
		return KindInner
	default:
		return KindFree
	}
}

// Sink receives every board cell write. Renderers implement it.
type Sink interface {
	Place(pos Position, code CellCode, kind Kind)
}

// NopSink discards cell writes
type NopSink struct{}

func (NopSink) Place(Position, CellCode, Kind) {}
