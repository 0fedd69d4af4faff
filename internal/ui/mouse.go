package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// cell is a terminal position
type cell struct {
	x, y int
}

// handleMouse routes mouse input: a press on the label toggles, motion over
// an option focuses it, a release on an option selects it, and a press or
// release anywhere else notifies the outside listeners. A release on the
// cell of the label press that opened the panel is part of that click, even
// when a north panel moved an option under the pointer.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if tea.MouseEvent(msg).IsWheel() {
		return
	}

	hit := m.hitTest(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		switch hit.kind {
		case regionOutside:
			m.notifyOutside()
		case regionLabel:
			m.combo.Toggle()
			m.labelPress = &cell{x: msg.X, y: msg.Y}
		}

	case tea.MouseActionRelease:
		origin := m.labelPress
		m.labelPress = nil
		switch hit.kind {
		case regionOutside:
			m.notifyOutside()
		case regionOption:
			if origin != nil && *origin == (cell{x: msg.X, y: msg.Y}) {
				return
			}
			m.combo.Select(hit.value)
		}

	case tea.MouseActionMotion:
		if hit.kind == regionOption {
			m.combo.SetFocus(hit.value)
		}
	}
}

func (m *Model) notifyOutside() {
	if len(m.outside) == 0 {
		return
	}
	m.log.V(1).Info("outside interaction")

	listeners := make([]func(), 0, len(m.outside))
	for _, fn := range m.outside {
		listeners = append(listeners, fn)
	}
	for _, fn := range listeners {
		fn()
	}
}
