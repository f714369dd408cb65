package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"worm-game/game/types"
	"worm-game/session"
)

const (
	borderPadding = 10 // Padding around game area
	fontSize      = 20
)

var (
	wormColor    = rl.Color{R: 60, G: 180, B: 75, A: 255}
	barrierColor = rl.Color{R: 70, G: 90, B: 200, A: 255}
	foodColors   = map[types.CellCode]rl.Color{
		types.Food1: rl.Yellow,
		types.Food2: rl.Purple,
		types.Food3: rl.Red,
	}
)

type cell struct {
	code types.CellCode
	kind types.Kind
}

// Renderer draws the board in a raylib window and reads the keyboard.
// raylib draws in immediate mode, so cell writes are buffered and the whole
// board is drawn on every Present.
type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	rows, cols   int
	cells        [][]cell
	offsetX      int32
	offsetY      int32
}

// NewRenderer opens the window; boardRows x boardCols is the playfield size
func NewRenderer(width, height, targetFPS, cellSize, boardRows, boardCols int) *Renderer {
	rl.InitWindow(int32(width), int32(height), "Worm")
	rl.SetTargetFPS(int32(targetFPS))

	r := &Renderer{
		cellSize: int32(cellSize),
		rows:     boardRows,
		cols:     boardCols,
		offsetX:  borderPadding,
		offsetY:  borderPadding,
	}
	r.cells = make([][]cell, boardRows)
	for i := range r.cells {
		r.cells[i] = make([]cell, boardCols)
	}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// Size reports how many cells fit in the window
func (r *Renderer) Size() (rows, cols int) {
	r.UpdateDimensions()
	return int((r.screenHeight - borderPadding*2) / r.cellSize),
		int((r.screenWidth - borderPadding*2) / r.cellSize)
}

func (r *Renderer) Place(pos types.Position, code types.CellCode, kind types.Kind) {
	if pos.Row < 0 || pos.Row >= r.rows || pos.Col < 0 || pos.Col >= r.cols {
		return
	}
	r.cells[pos.Row][pos.Col] = cell{code: code, kind: kind}
}

func (r *Renderer) colorOf(c cell) (rl.Color, bool) {
	switch {
	case c.code == types.Barrier:
		return barrierColor, true
	case c.code.IsFood():
		return foodColors[c.code], true
	case c.code == types.UsedByWorm:
		switch c.kind {
		case types.KindHead:
			return rl.Color{
				R: uint8(float32(wormColor.R) * 1.3),
				G: uint8(float32(wormColor.G) * 1.3),
				B: uint8(float32(wormColor.B) * 1.3),
				A: 255,
			}, true
		case types.KindTail:
			return rl.White, true
		default:
			return wormColor, true
		}
	default:
		return rl.Color{}, false
	}
}

func (r *Renderer) drawBoard() {
	totalGridWidth := r.cellSize * int32(r.cols)
	totalGridHeight := r.cellSize * int32(r.rows)

	// Draw grid background
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, totalGridWidth+2, totalGridHeight+2, rl.DarkGray)
	rl.DrawRectangle(r.offsetX, r.offsetY, totalGridWidth, totalGridHeight, rl.Black)

	for row := range r.cells {
		for col, c := range r.cells[row] {
			color, ok := r.colorOf(c)
			if !ok {
				continue
			}
			rl.DrawRectangle(
				r.offsetX+int32(col)*r.cellSize,
				r.offsetY+int32(row)*r.cellSize,
				r.cellSize, r.cellSize, color)
		}
	}
}

// Present draws one frame: the board and the status line below it
func (r *Renderer) Present(hud session.HUD) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	r.drawBoard()

	yOffset := r.offsetY + r.cellSize*int32(r.rows) + borderPadding
	label := fmt.Sprintf("%s   Tick: %d   Length: %d/%d   Food left: %d",
		hud.Level, hud.Tick, hud.Length, hud.Capacity, hud.FoodLeft)
	rl.DrawText(label, r.offsetX, yOffset, fontSize, rl.White)
	if hud.Paused {
		rl.DrawText("PAUSED  (space resumes, s steps)", r.offsetX, yOffset+fontSize+4, fontSize, rl.Yellow)
	}

	rl.EndDrawing()
}

// Dialog shows msg in a message box over the board until it is dismissed
func (r *Renderer) Dialog(msg string) {
	const boxW, boxH = 420, 140
	bounds := rl.Rectangle{
		X:      float32(r.screenWidth-boxW) / 2,
		Y:      float32(r.screenHeight-boxH) / 2,
		Width:  boxW,
		Height: boxH,
	}

	for !rl.WindowShouldClose() {
		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		r.drawBoard()
		result := gui.MessageBox(bounds, "Worm", msg, "OK")
		rl.EndDrawing()

		if result >= 0 || rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace) {
			return
		}
	}
}

// Poll reads the keys pressed since the last frame
func (r *Renderer) Poll() []session.Command {
	if rl.WindowShouldClose() {
		return []session.Command{{Kind: session.Quit}}
	}

	var cmds []session.Command
	keys := []struct {
		key int32
		cmd session.Command
	}{
		{rl.KeyUp, session.Command{Kind: session.Turn, Dir: types.Up}},
		{rl.KeyDown, session.Command{Kind: session.Turn, Dir: types.Down}},
		{rl.KeyLeft, session.Command{Kind: session.Turn, Dir: types.Left}},
		{rl.KeyRight, session.Command{Kind: session.Turn, Dir: types.Right}},
		{rl.KeySpace, session.Command{Kind: session.Pause}},
		{rl.KeyS, session.Command{Kind: session.StepOnce}},
		{rl.KeyQ, session.Command{Kind: session.Quit}},
	}
	for _, k := range keys {
		if rl.IsKeyPressed(k.key) {
			cmds = append(cmds, k.cmd)
		}
	}
	return cmds
}

func (r *Renderer) Close() {
	rl.CloseWindow()
}
