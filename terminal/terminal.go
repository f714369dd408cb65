// Package terminal is the tcell front-end: it draws board cells as
// characters and turns key presses into session commands.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"worm-game/game/types"
	"worm-game/session"
)

// Layout is the size of the playfield in cells
type Layout struct {
	Rows int
	Cols int
}

type glyph struct {
	r     rune
	style tcell.Style
}

var (
	styleFree    = tcell.StyleDefault
	styleBarrier = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleWorm    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDialog  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

var foodGlyphs = map[types.CellCode]glyph{
	types.Food1: {'1', tcell.StyleDefault.Foreground(tcell.ColorYellow)},
	types.Food2: {'2', tcell.StyleDefault.Foreground(tcell.ColorPurple)},
	types.Food3: {'3', tcell.StyleDefault.Foreground(tcell.ColorRed)},
}

// glyphFor maps a cell write to the character drawn for it
func glyphFor(code types.CellCode, kind types.Kind) glyph {
	switch {
	case code == types.Barrier:
		return glyph{'#', styleBarrier}
	case code.IsFood():
		return foodGlyphs[code]
	case code == types.UsedByWorm:
		switch kind {
		case types.KindHead:
			return glyph{'0', styleWorm.Bold(true)}
		case types.KindTail:
			return glyph{'`', styleWorm}
		default:
			return glyph{'o', styleWorm}
		}
	default:
		return glyph{' ', styleFree}
	}
}

type Terminal struct {
	screen tcell.Screen
	layout Layout
	events chan tcell.Event
}

// New opens the terminal screen
func New(layout Layout) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return NewWithScreen(screen, layout), nil
}

// NewWithScreen wraps an initialised screen and starts reading its events
func NewWithScreen(screen tcell.Screen, layout Layout) *Terminal {
	t := &Terminal{
		screen: screen,
		layout: layout,
		events: make(chan tcell.Event, 100),
	}
	screen.HideCursor()
	screen.Clear()

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(t.events)
				return
			}
			t.events <- ev
		}
	}()
	return t
}

func (t *Terminal) Size() (rows, cols int) {
	w, h := t.screen.Size()
	return h, w
}

func (t *Terminal) Place(pos types.Position, code types.CellCode, kind types.Kind) {
	g := glyphFor(code, kind)
	t.screen.SetContent(pos.Col, pos.Row, g.r, nil, g.style)
}

// Present draws the separator and status line below the board and flushes
func (t *Terminal) Present(hud session.HUD) {
	for col := 0; col < t.layout.Cols; col++ {
		t.screen.SetContent(col, t.layout.Rows, '#', nil, styleBarrier)
	}

	line := fmt.Sprintf("%s  tick %d  length %d/%d  food left %d",
		hud.Level, hud.Tick, hud.Length, hud.Capacity, hud.FoodLeft)
	if hud.Paused {
		line += "  [paused: space resumes, s steps]"
	}
	t.text(t.layout.Rows+1, line, styleHUD)
	t.screen.Show()
}

// Dialog shows msg in the message area and waits for a key press
func (t *Terminal) Dialog(msg string) {
	t.text(t.layout.Rows+1, msg, styleDialog)
	t.text(t.layout.Rows+2, "Press any key", styleHUD)
	t.screen.Show()

	for ev := range t.events {
		if _, ok := ev.(*tcell.EventKey); ok {
			return
		}
	}
}

// text writes a full message-area line, blanking what was there before
func (t *Terminal) text(row int, s string, style tcell.Style) {
	w, _ := t.screen.Size()
	runes := []rune(s)
	for col := 0; col < w; col++ {
		r := ' '
		if col < len(runes) {
			r = runes[col]
		}
		t.screen.SetContent(col, row, r, nil, style)
	}
}

// Poll drains pending key events without blocking
func (t *Terminal) Poll() []session.Command {
	var cmds []session.Command
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return append(cmds, session.Command{Kind: session.Quit})
			}
			if cmd, ok := commandFor(ev); ok {
				cmds = append(cmds, cmd)
			}
		default:
			return cmds
		}
	}
}

func commandFor(ev tcell.Event) (session.Command, bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return session.Command{}, false
	}

	switch key.Key() {
	case tcell.KeyUp:
		return session.Command{Kind: session.Turn, Dir: types.Up}, true
	case tcell.KeyDown:
		return session.Command{Kind: session.Turn, Dir: types.Down}, true
	case tcell.KeyLeft:
		return session.Command{Kind: session.Turn, Dir: types.Left}, true
	case tcell.KeyRight:
		return session.Command{Kind: session.Turn, Dir: types.Right}, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return session.Command{Kind: session.Quit}, true
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q':
			return session.Command{Kind: session.Quit}, true
		case ' ':
			return session.Command{Kind: session.Pause}, true
		case 's':
			return session.Command{Kind: session.StepOnce}, true
		}
	}
	return session.Command{}, false
}

func (t *Terminal) Close() {
	t.screen.Fini()
}
