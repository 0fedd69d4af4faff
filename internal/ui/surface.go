package ui

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"combo/internal/combo/services/placement"
	"combo/internal/ui/views"
)

// FocusRoot takes keyboard focus away from the filter input
func (m *Model) FocusRoot() {
	m.input.Blur()
}

// FocusInput gives keyboard focus to the filter input
func (m *Model) FocusInput() {
	m.pending = append(m.pending, m.input.Focus())
}

// SeedInput replaces the filter text
func (m *Model) SeedInput(text string) {
	m.input.SetValue(text)
	m.input.CursorEnd()
}

// ScrollIntoView moves the panel window so value's row is visible
func (m *Model) ScrollIntoView(value string) {
	entries := m.entries()
	for i, e := range entries {
		if e.Kind == views.EntryOption && e.Value == value {
			m.offset = views.ScrollTo(m.offset, i, 1, m.opts.ListHeight)
			return
		}
	}
}

// ListenOutside registers fn for mouse presses and releases outside the
// widget
func (m *Model) ListenOutside(fn func()) func() {
	id := m.nextListener
	m.nextListener++
	m.outside[id] = fn
	return func() {
		delete(m.outside, id)
	}
}

// Schedule runs task when its deferredMsg comes back through the program
// loop
func (m *Model) Schedule(task func()) func() {
	token := m.nextToken
	m.nextToken++
	m.tasks[token] = task
	m.pending = append(m.pending, func() tea.Msg {
		return deferredMsg{token: token}
	})
	return func() {
		delete(m.tasks, token)
	}
}

// Geometry measures the widget in terminal rows
func (m *Model) Geometry() placement.Geometry {
	viewport := m.height - helpHeight
	if m.height == 0 {
		// size unknown until the first WindowSizeMsg
		viewport = math.MaxInt32
	}
	panel, _ := m.panel()
	return placement.Geometry{
		ScrollTop:      0,
		ViewportHeight: viewport,
		Top:            m.opts.Top,
		LabelHeight:    1,
		PanelHeight:    len(panel),
	}
}
