package game

import (
	"errors"
	"io"
	"os"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-tui/internal/mines"
)

func TestMain(m *testing.M) {
	Log.SetOutput(io.Discard)
	mines.Log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

type recorder struct {
	frames []Frame
	err    error
}

func (r *recorder) Render(f Frame) error {
	r.frames = append(r.frames, f)
	return r.err
}

func (r *recorder) last() Frame {
	return r.frames[len(r.frames)-1]
}

// newGame lays mines from literal rows, '*' for a mine and '.' for a safe
// cell.
func newGame(t *testing.T, rows ...string) *mines.Game {
	t.Helper()
	width := len(rows[0])
	var mined, safe []int
	for y, row := range rows {
		require.Len(t, row, width)
		for x, c := range row {
			if c == '*' {
				mined = append(mined, y*width+x)
			} else {
				safe = append(safe, y*width+x)
			}
		}
	}
	params := mines.GameParams{Width: width, Height: len(rows), MineCount: len(mined)}
	g, err := mines.NewGameFromPermutation(params, append(mined, safe...))
	require.NoError(t, err)
	return g
}

func TestCursorClamping(t *testing.T) {
	rec := &recorder{}
	d := NewDriver(newGame(t, ".....", ".....", ".....", ".....", "....*"), rec)

	for range 5 {
		assert.Equal(t, StateRunning, d.Handle(MoveLeft))
	}
	assert.Equal(t, Point{0, 0}, d.Cursor())
	assert.Len(t, rec.frames, 5)

	for range 7 {
		d.Handle(MoveDown)
		d.Handle(MoveRight)
	}
	assert.Equal(t, Point{4, 4}, d.Cursor())

	d.Handle(MoveUp)
	assert.Equal(t, Point{4, 3}, d.Cursor())
	assert.Equal(t, Point{4, 3}, rec.last().Cursor)
}

func TestRevealWin(t *testing.T) {
	rec := &recorder{}
	d := NewDriver(newGame(t, ".*"), rec)

	assert.Equal(t, StateWon, d.Handle(Reveal))
	require.Len(t, rec.frames, 1)
	assert.Equal(t, StateWon, rec.last().State)
	assert.Equal(t, mines.Cleared, rec.last().Board.StatusAt(0, 0))
	assert.False(t, rec.last().ShowMines())
}

func TestMineHitLoses(t *testing.T) {
	rec := &recorder{}
	d := NewDriver(newGame(t, "*..", "...", "..*"), rec)

	d.Handle(MoveRight)
	assert.Equal(t, StateRunning, d.Handle(Reveal))
	d.Handle(MoveLeft)
	assert.Equal(t, StateLost, d.Handle(Reveal))

	f := rec.last()
	assert.Equal(t, StateLost, f.State)
	assert.True(t, f.ShowMines())
	assert.Equal(t, "x 1 #\n# # #\n# # x\n", f.Board.Text(f.ShowMines()))
}

func TestFirstRevealOnMineIsSafe(t *testing.T) {
	rec := &recorder{}
	d := NewDriver(newGame(t, "*.", ".."), rec)

	assert.Equal(t, StateRunning, d.Handle(Reveal))
	b := d.Game().Board()
	assert.False(t, b.CellAt(0, 0).Mine)
	assert.Equal(t, 1, b.MineCount())
	assert.Equal(t, mines.Cleared, b.StatusAt(0, 0))
}

func TestFlagThenReveal(t *testing.T) {
	rec := &recorder{}
	d := NewDriver(newGame(t, "*..", "...", "..*"), rec)

	assert.Equal(t, StateRunning, d.Handle(ToggleFlag))
	assert.Equal(t, StateRunning, d.Handle(Reveal))
	assert.Equal(t, mines.Flagged, d.Game().Board().StatusAt(0, 0))
	assert.True(t, d.Game().FirstMove())
	assert.Len(t, rec.frames, 2)
}

func TestQuitStopsConsumingEvents(t *testing.T) {
	rec := &recorder{}
	d := NewDriver(newGame(t, "...", "..*"), rec)

	events := []Event{MoveRight, Quit, MoveRight, Reveal}
	assert.Equal(t, StateQuit, d.Run(slices.Values(events)))
	assert.Len(t, rec.frames, 2)
	assert.Equal(t, Point{1, 0}, d.Cursor())
	assert.Equal(t, 0, d.Game().Board().ClearedCount())

	assert.Equal(t, StateQuit, d.Handle(MoveLeft))
	assert.Len(t, rec.frames, 2)
}

func TestRunStopsOnWin(t *testing.T) {
	rec := &recorder{}
	d := NewDriver(newGame(t, "...", "...", "..*"), rec)

	events := []Event{Reveal, MoveRight, MoveRight}
	assert.Equal(t, StateWon, d.Run(slices.Values(events)))
	assert.Len(t, rec.frames, 1)
}

func TestRunExhaustsEvents(t *testing.T) {
	rec := &recorder{}
	d := NewDriver(newGame(t, "...", "...", "..*"), rec)

	events := []Event{MoveDown, None, ToggleFlag, ToggleFlag}
	assert.Equal(t, StateRunning, d.Run(slices.Values(events)))
	assert.Len(t, rec.frames, 4)
	assert.Equal(t, None, rec.frames[1].Event)
	assert.Equal(t, mines.Unknown, d.Game().Board().StatusAt(0, 1))
}

func TestRenderErrorSkipsFrame(t *testing.T) {
	rec := &recorder{err: errors.New("terminal too small")}
	d := NewDriver(newGame(t, "...", "..*"), rec)

	assert.Equal(t, StateRunning, d.Handle(MoveRight))
	assert.Equal(t, StateRunning, d.Handle(Reveal))
	assert.Len(t, rec.frames, 2)
}

func TestRefresh(t *testing.T) {
	var got []Frame
	d := NewDriver(newGame(t, "...", "..*"), RendererFunc(func(f Frame) error {
		got = append(got, f)
		return nil
	}))
	d.Refresh()
	require.Len(t, got, 1)
	assert.Equal(t, StateRunning, got[0].State)
	assert.Equal(t, None, got[0].Event)
}

func TestParseEvent(t *testing.T) {
	for e := None + 1; e < LAST_EVENT; e++ {
		parsed, err := ParseEvent(e.String())
		require.NoError(t, err)
		assert.Equal(t, e, parsed)
	}
	e, err := ParseEvent("REVEAL")
	assert.NoError(t, err)
	assert.Equal(t, Reveal, e)

	_, err = ParseEvent("jump")
	assert.ErrorIs(t, err, ErrBadEvent)
}

func TestParseEvents(t *testing.T) {
	events, err := ParseEvents("right, right\tdown,reveal  flag quit")
	require.NoError(t, err)
	assert.Equal(t, []Event{MoveRight, MoveRight, MoveDown, Reveal, ToggleFlag, Quit}, events)

	events, err = ParseEvents("")
	require.NoError(t, err)
	assert.Empty(t, events)

	_, err = ParseEvents("up, dig")
	assert.ErrorIs(t, err, ErrBadEvent)
	assert.ErrorContains(t, err, `event #2 "dig"`)
}
