package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vancomm/minesweeper-tui/internal/game"
)

// Model adapts a [game.Driver] to a bubbletea program: key presses become
// game events and the renderer's last frame is the view.
type Model struct {
	driver   *game.Driver
	renderer *Renderer
	keys     KeyMap
}

func NewModel(driver *game.Driver, renderer *Renderer) Model {
	driver.Refresh()
	return Model{
		driver:   driver,
		renderer: renderer,
		keys:     DefaultKeyMap(),
	}
}

// [Model] implements [tea.Model]
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.renderer.Resize(msg.Width, msg.Height)
		m.driver.Refresh()
	case tea.KeyMsg:
		if m.driver.Handle(m.keys.Event(msg)).Terminal() {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	return m.renderer.View()
}

func (m Model) State() game.State {
	return m.driver.State()
}

// FinalFrame is the last frame in plain text.
func (m Model) FinalFrame() string {
	return m.renderer.Plain()
}
