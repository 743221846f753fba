package tui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Cursor  lipgloss.Style
	Unknown lipgloss.Style
	Flag    lipgloss.Style
	Empty   lipgloss.Style
	Number  [9]lipgloss.Style
	Mine    lipgloss.Style
	Status  lipgloss.Style
	Help    lipgloss.Style
	Lost    lipgloss.Style
	Won     lipgloss.Style
	Error   lipgloss.Style
}

func DefaultStyles() Styles {
	s := Styles{
		Cursor:  lipgloss.NewStyle().Reverse(true),
		Unknown: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Flag:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Empty:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Mine:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
		Lost:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Won:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
	colors := [...]string{"", "12", "10", "9", "4", "1", "6", "5", "8"}
	for n, c := range colors {
		s.Number[n] = lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return s
}
