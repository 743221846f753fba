package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func naiveAdjacency(b *Board, x, y int) (n int) {
	for yy := y - 1; yy <= y+1; yy++ {
		for xx := x - 1; xx <= x+1; xx++ {
			if (xx != x || yy != y) && b.InBounds(xx, yy) && b.CellAt(xx, yy).Mine {
				n++
			}
		}
	}
	return
}

func TestAdjacencyMatchesNeighbourhood(t *testing.T) {
	r := newRand()
	for _, params := range []GameParams{
		{Width: 1, Height: 1, MineCount: 0},
		{Width: 1, Height: 7, MineCount: 3},
		{Width: 5, Height: 5, MineCount: 12},
		{Width: 21, Height: 11, MineCount: 20},
		{Width: 8, Height: 8, MineCount: 63},
	} {
		for range 10 {
			g, err := NewGame(params, r)
			assert.NoError(t, err)
			b := g.Board()
			for y := range b.Height() {
				for x := range b.Width() {
					assert.Equal(t, naiveAdjacency(b, x, y), b.AdjAt(x, y), "%s @ %d:%d", params.Seed(), x, y)
				}
			}
		}
	}
}

func TestAdjacencyExcludesSelf(t *testing.T) {
	b := NewBoard(3, 3)
	for y := range 3 {
		for x := range 3 {
			b.SetMine(x, y, true)
		}
	}
	b.RecomputeAdjacency()
	assert.Equal(t, 8, b.AdjAt(1, 1))
	assert.Equal(t, 3, b.AdjAt(0, 0))
	assert.Equal(t, 5, b.AdjAt(1, 0))
	assert.Equal(t, "353\n585\n353\n", b.adjText())

	g := fixture(t,
		"***",
		"*.*",
		"***",
	)
	assert.Equal(t, 8, g.Board().AdjAt(1, 1))
	assert.Equal(t, 2, g.Board().AdjAt(0, 0))
}

func TestBoardAccessors(t *testing.T) {
	b := NewBoard(3, 2)
	assert.Equal(t, 3, b.Width())
	assert.Equal(t, 2, b.Height())
	assert.Equal(t, 6, b.Size())

	b.SetMine(2, 1, true)
	b.SetStatus(0, 1, Flagged)
	b.SetStatus(1, 1, Cleared)
	b.RecomputeAdjacency()

	assert.Equal(t, Cell{Mine: true, Status: Unknown}, b.CellAt(2, 1))
	assert.Equal(t, Flagged, b.StatusAt(0, 1))
	assert.Equal(t, 1, b.AdjAt(1, 0))
	assert.Equal(t, 0, b.AdjAt(0, 0))
	assert.Equal(t, 1, b.MineCount())
	assert.Equal(t, 1, b.FlagCount())
	assert.Equal(t, 1, b.ClearedCount())
	assert.False(t, b.AllSafeCleared())
}

func TestBoardOutOfBoundsPanics(t *testing.T) {
	b := NewBoard(3, 2)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}} {
		assert.PanicsWithError(t, "point "+itoa(p[0])+":"+itoa(p[1])+" is out of 3x2 board", func() {
			b.StatusAt(p[0], p[1])
		})
	}
	assert.Panics(t, func() { NewBoard(0, 1) })
}

func TestNeighbors(t *testing.T) {
	b := NewBoard(3, 3)
	count := func(x, y int, corners bool) (n int) {
		b.neighbors(x, y, corners, func(int, int) { n++ })
		return
	}
	assert.Equal(t, 2, count(0, 0, false))
	assert.Equal(t, 3, count(0, 0, true))
	assert.Equal(t, 4, count(1, 1, false))
	assert.Equal(t, 8, count(1, 1, true))
	assert.Equal(t, 3, count(1, 0, false))
	assert.Equal(t, 5, count(1, 0, true))
}

func TestGlyphs(t *testing.T) {
	g := fixture(t,
		".*.",
		"...",
		"...",
	)
	b := g.Board()
	b.SetStatus(0, 0, Cleared)
	b.SetStatus(0, 2, Cleared)
	b.SetStatus(2, 2, Flagged)
	b.SetStatus(1, 0, Flagged)

	assert.Equal(t, '1', b.Glyph(0, 0, false))
	assert.Equal(t, '.', b.Glyph(0, 2, false))
	assert.Equal(t, 'F', b.Glyph(2, 2, false))
	assert.Equal(t, '#', b.Glyph(1, 1, false))
	assert.Equal(t, 'F', b.Glyph(1, 0, false))
	assert.Equal(t, 'x', b.Glyph(1, 0, true))

	assert.Equal(t, "1 F #\n# # #\n. # F\n", b.String())
	assert.Equal(t, "1 x #\n# # #\n. # F\n", b.Text(true))
	assert.Equal(t, ".*.\n...\n...\n", b.MineMap())
}
