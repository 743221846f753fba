package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vancomm/minesweeper-tui/internal/game"
)

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Reveal key.Binding
	Flag   key.Binding
	Quit   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "move right"),
		),
		Reveal: key.NewBinding(
			key.WithKeys("enter", "d"),
			key.WithHelp("d/enter", "dig"),
		),
		Flag: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "flag"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// Event maps a key press to a game event. Unbound keys map to
// [game.None], which the driver still answers with a frame.
func (k KeyMap) Event(msg tea.KeyMsg) game.Event {
	switch {
	case key.Matches(msg, k.Up):
		return game.MoveUp
	case key.Matches(msg, k.Down):
		return game.MoveDown
	case key.Matches(msg, k.Left):
		return game.MoveLeft
	case key.Matches(msg, k.Right):
		return game.MoveRight
	case key.Matches(msg, k.Reveal):
		return game.Reveal
	case key.Matches(msg, k.Flag):
		return game.ToggleFlag
	case key.Matches(msg, k.Quit):
		return game.Quit
	}
	return game.None
}
