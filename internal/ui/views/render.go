package views

import (
	"strings"

	runewidth "github.com/mattn/go-runewidth"
)

// EntryKind tells a panel row's content apart
type EntryKind int

const (
	EntryOption EntryKind = iota
	EntryGroup
)

// Entry is one visible row of the option panel
type Entry struct {
	Kind     EntryKind
	Value    string // option value, empty for group headers
	Text     string // option text or group label
	Focused  bool
	Selected bool
}

const (
	caretClosed    = "▾"
	caretOpen      = "▴"
	selectedMarker = "✓ "
	emptyText      = "no matches"
)

// Renderer handles all widget rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// RenderLabel renders the always visible label row: the selected text, or
// the placeholder when isPlaceholder is set, followed by a caret
func (r *Renderer) RenderLabel(text string, isPlaceholder, open bool, width int) string {
	caret := caretClosed
	style := r.styles.Label
	if open {
		caret = caretOpen
		style = r.styles.LabelOpen
	}

	text = Truncate(text, width-2)
	rendered := style.Render(text)
	if isPlaceholder {
		rendered = r.styles.Placeholder.Render(text)
	}

	gap := width - 1 - runewidth.StringWidth(text)
	if gap < 1 {
		gap = 1
	}
	return rendered + strings.Repeat(" ", gap) + r.styles.Caret.Render(caret)
}

// RenderEntry renders a panel row, underlining the part of an option's
// text that matched query
func (r *Renderer) RenderEntry(e Entry, query string, width int) string {
	if e.Kind == EntryGroup {
		return r.styles.GroupHeader.Render(Truncate(e.Text, width))
	}

	prefix := "  "
	if e.Selected {
		prefix = selectedMarker
	}
	text := Truncate(e.Text, width-2-runewidth.StringWidth(prefix))

	if e.Focused {
		return r.styles.Focused.Width(width).Render(prefix + text)
	}

	body := r.highlight(text, query)
	if e.Selected {
		prefix = r.styles.Selected.Render(prefix)
	}
	return r.styles.Option.Render(prefix + body)
}

// RenderEmpty renders the row shown when no option matches
func (r *Renderer) RenderEmpty(width int) string {
	return r.styles.Empty.Render(Truncate(emptyText, width-2))
}

// RenderScrollHint renders the position indicator below a scrolled list
func (r *Renderer) RenderScrollHint(hint string, width int) string {
	return r.styles.Scroll.Render(Truncate(hint, width))
}

// RenderHelp renders the key help line
func (r *Renderer) RenderHelp(help string) string {
	return r.styles.Help.Render(help)
}

func (r *Renderer) highlight(text, query string) string {
	if query == "" {
		return text
	}
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)
	// byte offsets only line up when lowercasing kept the length
	if len(lowerText) != len(text) {
		return text
	}
	idx := strings.Index(lowerText, lowerQuery)
	if idx < 0 || idx+len(lowerQuery) > len(text) {
		return text
	}
	end := idx + len(lowerQuery)
	return text[:idx] + r.styles.Match.Render(text[idx:end]) + text[end:]
}

// Truncate cuts s to at most width display cells, marking the cut with an
// ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
