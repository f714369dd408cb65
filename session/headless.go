package session

import "worm-game/game/types"

// Headless is a Display without output. It reports a fixed size and keeps
// the last HUD and dialog messages, so runs can be inspected afterwards.
type Headless struct {
	Rows, Cols int
	LastHUD    HUD
	Messages   []string
	Writes     int
}

func (h *Headless) Place(types.Position, types.CellCode, types.Kind) {
	h.Writes++
}

func (h *Headless) Size() (rows, cols int) {
	return h.Rows, h.Cols
}

func (h *Headless) Present(hud HUD) {
	h.LastHUD = hud
}

func (h *Headless) Dialog(msg string) {
	h.Messages = append(h.Messages, msg)
}

func (h *Headless) Close() {}
