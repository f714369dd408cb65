// Package level describes the fixed layout of a level: barrier lines, food
// items and where the worm starts. Levels are plain YAML documents; a few
// are built in and a seeded random layout can be generated on demand.
package level

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"worm-game/game/entity"
	"worm-game/game/types"
)

//go:embed levels/*.yaml
var builtin embed.FS

var (
	ErrUnknownLevel = errors.New("unknown level")
	ErrBadLine      = errors.New("barrier line must be horizontal or vertical")
	ErrBadFood      = errors.New("food kind must be 1, 2 or 3")
)

// Level is one level descriptor
type Level struct {
	Name     string `yaml:"name"`
	Worm     Start  `yaml:"worm"`
	Barriers []Line `yaml:"barriers"`
	Food     []Food `yaml:"food"`
}

// Start is the worm's initial head position and heading.
// Length 0 means the configured initial length.
type Start struct {
	Row     int             `yaml:"row"`
	Col     int             `yaml:"col"`
	Heading types.Direction `yaml:"heading"`
	Length  int             `yaml:"length"`
}

// Line is a horizontal or vertical run of barrier cells, ends included
type Line struct {
	From types.Position `yaml:"from"`
	To   types.Position `yaml:"to"`
}

type Food struct {
	Row  int            `yaml:"row"`
	Col  int            `yaml:"col"`
	Kind types.FoodKind `yaml:"kind"`
}

// Parse decodes a level document
func Parse(data []byte) (*Level, error) {
	lvl := &Level{}
	if err := yaml.Unmarshal(data, lvl); err != nil {
		return nil, fmt.Errorf("parsing level: %w", err)
	}
	if lvl.Worm.Heading == types.None {
		lvl.Worm.Heading = types.Right
	}
	return lvl, nil
}

// Load reads a level from a YAML file
func Load(filename string) (*Level, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading level file: %w", err)
	}
	return Parse(data)
}

// Builtin returns one of the embedded levels by name
func Builtin(name string) (*Level, error) {
	data, err := builtin.ReadFile(path.Join("levels", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownLevel, name, strings.Join(Names(), ", "))
	}
	return Parse(data)
}

// Names lists the embedded levels
func Names() []string {
	entries, _ := builtin.ReadDir("levels")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// resolve maps negative indices onto the board, -1 being the last index
func resolve(p types.Position, lastRow, lastCol int) types.Position {
	if p.Row < 0 {
		p.Row += lastRow + 1
	}
	if p.Col < 0 {
		p.Col += lastCol + 1
	}
	return p
}

// HeadPosition is the worm's start on a board with the given last indices
func (l *Level) HeadPosition(lastRow, lastCol int) types.Position {
	return resolve(types.Position{Row: l.Worm.Row, Col: l.Worm.Col}, lastRow, lastCol)
}

// Stamps expands the descriptor into board stamps, barriers first
func (l *Level) Stamps(lastRow, lastCol int) ([]entity.Stamp, error) {
	var stamps []entity.Stamp

	for _, ln := range l.Barriers {
		from := resolve(ln.From, lastRow, lastCol)
		to := resolve(ln.To, lastRow, lastCol)
		if from.Row != to.Row && from.Col != to.Col {
			return nil, fmt.Errorf("%w: %s-%s", ErrBadLine, from, to)
		}
		step := types.Heading{DX: sign(to.Col - from.Col), DY: sign(to.Row - from.Row)}
		for p := from; ; p = p.Add(step) {
			stamps = append(stamps, entity.Stamp{Pos: p, Code: types.Barrier})
			if p == to {
				break
			}
		}
	}

	for _, f := range l.Food {
		if f.Kind < 1 || f.Kind > 3 {
			return nil, fmt.Errorf("%w: got %d at (%d,%d)", ErrBadFood, f.Kind, f.Row, f.Col)
		}
		pos := resolve(types.Position{Row: f.Row, Col: f.Col}, lastRow, lastCol)
		stamps = append(stamps, entity.Stamp{Pos: pos, Code: f.Kind.Code()})
	}

	return stamps, nil
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}
