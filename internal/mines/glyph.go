package mines

import (
	"strconv"
	"strings"
)

const (
	GlyphUnknown = '#'
	GlyphFlagged = 'F'
	GlyphEmpty   = '.'
	GlyphMine    = 'x'
)

// Glyph is the player-facing character for x:y. With showMines set, as on
// a lost game, every mine is drawn as [GlyphMine] whatever its status.
func (b *Board) Glyph(x, y int, showMines bool) rune {
	i := b.index(x, y)
	c := b.cells[i]
	switch {
	case showMines && c.Mine:
		return GlyphMine
	case c.Status == Flagged:
		return GlyphFlagged
	case c.Status == Unknown:
		return GlyphUnknown
	case b.adj[i] == 0:
		return GlyphEmpty
	default:
		return rune('0' + b.adj[i])
	}
}

// Text renders the board one row per line, cells separated by a space.
func (b *Board) Text(showMines bool) string {
	var sb strings.Builder
	for y := range b.height {
		for x := range b.width {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(b.Glyph(x, y, showMines))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) String() string {
	return b.Text(false)
}

// MineMap renders the real mine layout with '*' for mines and '.' for
// safe cells, the inverse of the fixtures used by tests.
func (b *Board) MineMap() string {
	var sb strings.Builder
	for y := range b.height {
		for x := range b.width {
			if b.cells[y*b.width+x].Mine {
				sb.WriteByte('*')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) adjText() string {
	var sb strings.Builder
	for y := range b.height {
		for x := range b.width {
			sb.WriteString(strconv.Itoa(int(b.adj[y*b.width+x])))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
