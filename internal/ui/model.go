package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"

	"combo/internal/combo"
	"combo/internal/domain"
	"combo/internal/eventbus"
	"combo/internal/ui/views"
)

const (
	defaultWidth      = 40
	defaultListHeight = 8
)

// Options configures the terminal binding
type Options struct {
	Top          int // blank rows above the widget
	Width        int // widget width in cells
	ListHeight   int // maximum visible panel entries
	QuitOnSelect bool
	Logger       logr.Logger
}

// Model represents the UI state. It is the surface a combo.Combo is
// mounted on.
type Model struct {
	combo    *combo.Combo
	opts     Options
	keys     keyMap
	help     help.Model
	input    textinput.Model
	renderer *views.Renderer

	// terminal size
	width  int
	height int
	// first visible panel entry
	offset int

	// scheduled tasks and outside listeners, keyed by token
	tasks        map[uint64]func()
	nextToken    uint64
	outside      map[uint64]func()
	nextListener uint64

	// commands produced by surface calls during the current Update
	pending []tea.Cmd

	// where the last label press happened, until the next release
	labelPress *cell

	aborted  bool
	quitting bool
	log      logr.Logger
}

// NewModel creates a model and mounts c on it
func NewModel(c *combo.Combo, opts Options) *Model {
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.ListHeight <= 0 {
		opts.ListHeight = defaultListHeight
	}
	if opts.Top < 0 {
		opts.Top = 0
	}
	log := opts.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "type to filter"
	ti.Width = opts.Width - 3

	m := &Model{
		combo:    c,
		opts:     opts,
		keys:     defaultKeyMap(),
		help:     help.New(),
		input:    ti,
		renderer: views.NewRenderer(),
		tasks:    make(map[uint64]func()),
		outside:  make(map[uint64]func()),
		log:      log.WithName("ui"),
	}

	c.Mount(m)
	c.On(domain.EventSelected, func(e eventbus.DomainEvent) {
		m.log.V(1).Info("selected", "value", e.(domain.SelectedEvent).Value)
		if m.opts.QuitOnSelect {
			m.quitting = true
		}
	})

	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return m.drain()
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.log.V(1).Info("resize", "width", msg.Width, "height", msg.Height)
		m.combo.Reposition()

	case deferredMsg:
		if task, ok := m.tasks[msg.token]; ok {
			delete(m.tasks, msg.token)
			task()
		}

	case tea.KeyMsg:
		m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	default:
		// cursor blink and other input internals
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.pending = append(m.pending, cmd)
	}

	if m.quitting {
		m.combo.Dispose()
		m.pending = append(m.pending, tea.Quit)
	}
	return m, m.drain()
}

// View implements tea.Model
func (m *Model) View() string {
	lines, _ := m.layout()
	return strings.Join(lines, "\n")
}

// Result returns the value to report once the program has ended. Nothing
// is reported when the user aborted.
func (m *Model) Result() (string, bool) {
	if m.aborted {
		return "", false
	}
	return m.combo.Value()
}

// Aborted reports whether the user quit without choosing
func (m *Model) Aborted() bool {
	return m.aborted
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	if key.Matches(msg, m.keys.Quit) {
		m.aborted = true
		m.quitting = true
		return
	}
	if !m.combo.IsOpen() && key.Matches(msg, m.keys.Close) {
		// keep-open sessions end on escape with whatever is selected
		m.aborted = m.opts.QuitOnSelect
		m.quitting = true
		return
	}

	res := m.combo.HandleKey(m.keys.translateKey(msg))
	if res.Command != "" || res.SuppressDefault {
		return
	}

	if m.combo.IsOpen() && m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.pending = append(m.pending, cmd)
		if value := m.input.Value(); value != m.combo.Query() {
			m.combo.Filter(value)
		}
	}
}

// drain hands the commands queued by surface calls to the program
func (m *Model) drain() tea.Cmd {
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}
