package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the widget
type Styles struct {
	Label       lipgloss.Style
	LabelOpen   lipgloss.Style
	Placeholder lipgloss.Style
	Caret       lipgloss.Style
	Option      lipgloss.Style
	Focused     lipgloss.Style
	Selected    lipgloss.Style
	GroupHeader lipgloss.Style
	Match       lipgloss.Style
	Empty       lipgloss.Style
	Scroll      lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Label:       lipgloss.NewStyle().Bold(true),
		LabelOpen:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Placeholder: lipgloss.NewStyle().Faint(true).Italic(true),
		Caret:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Option:      lipgloss.NewStyle().PaddingLeft(2),
		Focused: lipgloss.NewStyle().
			PaddingLeft(2).
			Background(lipgloss.Color("238")).
			Foreground(lipgloss.Color("226")),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		GroupHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Match:       lipgloss.NewStyle().Underline(true),
		Empty:       lipgloss.NewStyle().Faint(true).PaddingLeft(2),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Help:        lipgloss.NewStyle().Faint(true),
	}
}
