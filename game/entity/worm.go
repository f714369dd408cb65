package entity

import (
	"errors"
	"fmt"

	"worm-game/game/types"
)

var ErrInvalidLength = errors.New("invalid worm length")

// segment is one ring slot. live is false until the worm has grown into it.
type segment struct {
	pos  types.Position
	live bool
}

// Worm is the body: a fixed-capacity ring buffer of positions.
// headIndex holds the newest segment; the ring currently spans
// slots 0..curLastIndex and can grow up to maxIndex.
type Worm struct {
	segments     []segment
	maxIndex     int
	curLastIndex int
	headIndex    int
	dir          types.Direction
	heading      types.Heading
}

// NewWorm places the head at slot 0 and leaves every other slot empty, so the
// body appears element by element over the first ticks of a level.
func NewWorm(capacity, initialLength int, head types.Position, dir types.Direction) (*Worm, error) {
	if capacity < 1 || initialLength < 1 || initialLength > capacity {
		return nil, fmt.Errorf("%w: length %d, capacity %d", ErrInvalidLength, initialLength, capacity)
	}

	w := &Worm{
		segments:     make([]segment, capacity),
		maxIndex:     capacity - 1,
		curLastIndex: initialLength - 1,
		headIndex:    0,
	}
	w.segments[0] = segment{pos: head, live: true}
	if dir == types.None {
		dir = types.Right
	}
	w.SetHeading(dir)
	return w, nil
}

// SetHeading changes the step vector. Reversal checks belong to the input side.
func (w *Worm) SetHeading(dir types.Direction) {
	if dir == types.None {
		return
	}
	w.dir = dir
	w.heading = dir.Heading()
}

func (w *Worm) Heading() types.Heading {
	return w.heading
}

func (w *Worm) Direction() types.Direction {
	return w.dir
}

func (w *Worm) HeadPosition() types.Position {
	return w.segments[w.headIndex].pos
}

func (w *Worm) Length() int {
	return w.curLastIndex + 1
}

func (w *Worm) Capacity() int {
	return w.maxIndex + 1
}

// Grow extends the active ring, saturating at capacity
func (w *Worm) Grow(amount int) {
	if amount <= 0 {
		return
	}
	if w.curLastIndex+amount <= w.maxIndex {
		w.curLastIndex += amount
	} else {
		w.curLastIndex = w.maxIndex
	}
}

// AdvanceHead moves the head index one slot forward and stores pos there
func (w *Worm) AdvanceHead(pos types.Position) {
	w.headIndex = (w.headIndex + 1) % (w.curLastIndex + 1)
	w.segments[w.headIndex] = segment{pos: pos, live: true}
}

// TailPosition returns the segment the next move would vacate.
// ok is false while the worm is still growing into that slot.
func (w *Worm) TailPosition() (types.Position, bool) {
	s := w.segments[(w.headIndex+1)%(w.curLastIndex+1)]
	return s.pos, s.live
}

// IsOccupiedAt walks the ring from the head over all slots and skips the
// empty ones, so slots added by a growth in the middle of the ring are not
// mistaken for the end of the body.
func (w *Worm) IsOccupiedAt(pos types.Position) bool {
	n := w.maxIndex + 1
	for i, k := w.headIndex, 0; k < n; i, k = (i+1)%n, k+1 {
		if s := w.segments[i]; s.live && s.pos == pos {
			return true
		}
	}
	return false
}

// Segments returns the live positions, newest first
func (w *Worm) Segments() []types.Position {
	n := w.curLastIndex + 1
	out := make([]types.Position, 0, n)
	for k := 0; k < n; k++ {
		i := (w.headIndex - k + n) % n
		if s := w.segments[i]; s.live {
			out = append(out, s.pos)
		}
	}
	return out
}
