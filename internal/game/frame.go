package game

import "github.com/vancomm/minesweeper-tui/internal/mines"

type Point struct {
	X, Y int
}

// Frame is what a renderer gets after every handled event. Board is the
// live board owned by the driver; renderers must only read from it.
type Frame struct {
	Board  *mines.Board
	Cursor Point
	State  State
	Event  Event
}

// ShowMines reports whether every mine should be drawn, which is the
// case once the game is lost.
func (f Frame) ShowMines() bool {
	return f.State == StateLost
}

type Renderer interface {
	Render(Frame) error
}

type RendererFunc func(Frame) error

// [RendererFunc] implements [Renderer]
func (fn RendererFunc) Render(f Frame) error {
	return fn(f)
}
