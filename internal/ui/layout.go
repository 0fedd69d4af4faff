package ui

import (
	"fmt"

	"combo/internal/domain"
	"combo/internal/ui/views"
)

// rows below the widget taken by the help line and its spacer
const helpHeight = 2

type regionKind int

const (
	regionOutside regionKind = iota
	regionLabel
	regionInput
	regionOption
	regionPanel // inside the widget but not interactive
)

// region is what a rendered row belongs to
type region struct {
	kind  regionKind
	value string
}

// entries returns the visible panel rows: eligible ungrouped options, then
// each group with at least one eligible option under its header
func (m *Model) entries() []views.Entry {
	focused, _ := m.combo.Focused()
	selected, _ := m.combo.Value()

	labels := make(map[domain.GroupID]string)
	for _, g := range m.combo.Groups() {
		labels[g.ID] = g.Label
	}

	var out []views.Entry
	last := domain.NoGroup
	for _, opt := range m.combo.Options() {
		if !m.combo.IsEligible(opt.Value) {
			continue
		}
		if opt.Group != last && opt.Group != domain.NoGroup && !m.combo.GroupEmpty(opt.Group) {
			out = append(out, views.Entry{Kind: views.EntryGroup, Text: labels[opt.Group]})
		}
		last = opt.Group
		out = append(out, views.Entry{
			Kind:     views.EntryOption,
			Value:    opt.Value,
			Text:     opt.Text,
			Focused:  opt.Value == focused,
			Selected: opt.Value == selected,
		})
	}
	return out
}

// panel renders the open panel: filter input when searchable, the visible
// window of entries, and a position hint when the list scrolls
func (m *Model) panel() ([]string, []region) {
	width := m.opts.Width
	var lines []string
	var regions []region

	if m.combo.Searchable() {
		lines = append(lines, m.input.View())
		regions = append(regions, region{kind: regionInput})
	}

	entries := m.entries()
	if len(entries) == 0 {
		lines = append(lines, m.renderer.RenderEmpty(width))
		regions = append(regions, region{kind: regionPanel})
		return lines, regions
	}

	listHeight := m.opts.ListHeight
	m.offset = views.ClampOffset(m.offset, len(entries), listHeight)
	end := m.offset + listHeight
	if end > len(entries) {
		end = len(entries)
	}

	query := m.combo.Query()
	for _, e := range entries[m.offset:end] {
		lines = append(lines, m.renderer.RenderEntry(e, query, width))
		if e.Kind == views.EntryOption {
			regions = append(regions, region{kind: regionOption, value: e.Value})
		} else {
			regions = append(regions, region{kind: regionPanel})
		}
	}

	if len(entries) > listHeight {
		hint := fmt.Sprintf("%d-%d of %d", m.offset+1, end, len(entries))
		lines = append(lines, m.renderer.RenderScrollHint(hint, width))
		regions = append(regions, region{kind: regionPanel})
	}
	return lines, regions
}

// layout renders the whole screen and records what each row belongs to
func (m *Model) layout() ([]string, []region) {
	var lines []string
	var regions []region
	pad := func(n int) {
		for i := 0; i < n; i++ {
			lines = append(lines, "")
			regions = append(regions, region{kind: regionOutside})
		}
	}

	_, hasValue := m.combo.Value()
	label := m.renderer.RenderLabel(m.combo.Label(), !hasValue, m.combo.IsOpen(), m.opts.Width)

	if !m.combo.IsOpen() {
		pad(m.opts.Top)
		lines = append(lines, label)
		regions = append(regions, region{kind: regionLabel})
	} else {
		panelLines, panelRegions := m.panel()
		if m.combo.Placement() == domain.PlacementNorth {
			lead := m.opts.Top - len(panelLines)
			if lead < 0 {
				lead = 0
			}
			pad(lead)
			lines = append(lines, panelLines...)
			regions = append(regions, panelRegions...)
			lines = append(lines, label)
			regions = append(regions, region{kind: regionLabel})
		} else {
			pad(m.opts.Top)
			lines = append(lines, label)
			regions = append(regions, region{kind: regionLabel})
			lines = append(lines, panelLines...)
			regions = append(regions, panelRegions...)
		}
	}

	pad(1)
	lines = append(lines, m.renderer.RenderHelp(m.help.View(m.keys)))
	regions = append(regions, region{kind: regionOutside})

	return lines, regions
}

// hitTest resolves a terminal cell to the region rendered there
func (m *Model) hitTest(x, y int) region {
	if x < 0 || x >= m.opts.Width {
		return region{kind: regionOutside}
	}
	_, regions := m.layout()
	if y < 0 || y >= len(regions) {
		return region{kind: regionOutside}
	}
	return regions[y]
}
