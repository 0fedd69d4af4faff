package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"combo/internal/combo/input/types"
)

// keyMap defines the key bindings of the widget
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Close  key.Binding
	Tab    key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "prev"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←/→", "open"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Close, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left},
		{k.Select, k.Close, k.Quit},
	}
}

// translateKey converts a terminal key into the widget's key event
func (k keyMap) translateKey(msg tea.KeyMsg) types.KeyEvent {
	switch {
	case key.Matches(msg, k.Up):
		return types.KeyEvent{Key: types.KeyUp}
	case key.Matches(msg, k.Down):
		return types.KeyEvent{Key: types.KeyDown}
	case key.Matches(msg, k.Left):
		return types.KeyEvent{Key: types.KeyLeft}
	case key.Matches(msg, k.Right):
		return types.KeyEvent{Key: types.KeyRight}
	case key.Matches(msg, k.Select):
		return types.KeyEvent{Key: types.KeyEnter}
	case key.Matches(msg, k.Close):
		return types.KeyEvent{Key: types.KeyEscape}
	case key.Matches(msg, k.Tab):
		return types.KeyEvent{Key: types.KeyTab}
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt {
		return types.KeyEvent{Key: types.KeyRune, Rune: msg.Runes[0]}
	}
	return types.KeyEvent{Key: types.KeyOther}
}
