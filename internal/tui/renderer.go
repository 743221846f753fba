package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vancomm/minesweeper-tui/internal/game"
	"github.com/vancomm/minesweeper-tui/internal/mines"
)

const (
	BannerLost = "oops you hit the mine"
	BannerWon  = "hooray you're a winner!!!"
	BannerHelp = "arrow keys / hjkl: move cursor      d / enter: dig     f: flag"
)

// footerLines is the number of lines drawn under the board: a blank line,
// the counters and the banner.
const footerLines = 3

type SizeError struct {
	Width, Height         int
	NeedWidth, NeedHeight int
}

// [SizeError] implements [error]
func (e *SizeError) Error() string {
	return fmt.Sprintf(
		"terminal too small: %dx%d, need at least %dx%d",
		e.Width, e.Height, e.NeedWidth, e.NeedHeight,
	)
}

// Renderer draws frames into a string that the bubbletea model returns
// from View. It implements [game.Renderer].
type Renderer struct {
	styles        Styles
	width, height int /* terminal size, zero until known */
	view          string
	plain         string
}

func NewRenderer() *Renderer {
	return &Renderer{styles: DefaultStyles()}
}

func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
}

// Render draws f. When the terminal is known to be smaller than the frame
// it draws a diagnostic instead and returns a [*SizeError].
func (r *Renderer) Render(f game.Frame) error {
	r.plain = plainFrame(f)

	needWidth, needHeight := frameSize(f.Board)
	if r.width > 0 && (r.width < needWidth || r.height < needHeight) {
		err := &SizeError{
			Width: r.width, Height: r.height,
			NeedWidth: needWidth, NeedHeight: needHeight,
		}
		r.view = r.styles.Error.Render(err.Error())
		return err
	}

	r.view = lipgloss.JoinVertical(
		lipgloss.Left,
		r.board(f),
		"",
		r.styles.Status.Render(counters(f.Board)),
		r.banner(f.State),
	)
	return nil
}

func (r *Renderer) View() string {
	return r.view
}

// Plain is the last frame without styling or cursor, suitable for
// printing once the terminal has been released.
func (r *Renderer) Plain() string {
	return r.plain
}

func (r *Renderer) board(f game.Frame) string {
	b := f.Board
	showMines := f.ShowMines()

	var sb strings.Builder
	for y := range b.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range b.Width() {
			if x > 0 {
				sb.WriteByte(' ')
			}
			glyph := string(b.Glyph(x, y, showMines))
			if x == f.Cursor.X && y == f.Cursor.Y {
				sb.WriteString(r.styles.Cursor.Render(glyph))
			} else {
				sb.WriteString(r.cellStyle(b, x, y, showMines).Render(glyph))
			}
		}
	}
	return sb.String()
}

func (r *Renderer) cellStyle(b *mines.Board, x, y int, showMines bool) lipgloss.Style {
	c := b.CellAt(x, y)
	switch {
	case showMines && c.Mine:
		return r.styles.Mine
	case c.Status == mines.Flagged:
		return r.styles.Flag
	case c.Status == mines.Unknown:
		return r.styles.Unknown
	case b.AdjAt(x, y) == 0:
		return r.styles.Empty
	default:
		return r.styles.Number[b.AdjAt(x, y)]
	}
}

func (r *Renderer) banner(s game.State) string {
	style := r.styles.Help
	switch s {
	case game.StateLost:
		style = r.styles.Lost
	case game.StateWon:
		style = r.styles.Won
	}
	return style.Render(bannerText(s))
}

func bannerText(s game.State) string {
	switch s {
	case game.StateLost:
		return BannerLost
	case game.StateWon:
		return BannerWon
	default:
		return BannerHelp
	}
}

func counters(b *mines.Board) string {
	return fmt.Sprintf("mines: %d  flags: %d", b.MineCount(), b.FlagCount())
}

func frameSize(b *mines.Board) (width, height int) {
	return 2*b.Width() - 1, b.Height() + footerLines
}

func plainFrame(f game.Frame) string {
	return f.Board.Text(f.ShowMines()) + "\n" + counters(f.Board) + "\n" + bannerText(f.State)
}
