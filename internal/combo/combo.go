package combo

import (
	"github.com/go-logr/logr"

	"combo/internal/combo/input"
	"combo/internal/combo/input/types"
	"combo/internal/combo/services/filter"
	"combo/internal/combo/services/focus"
	"combo/internal/combo/services/openstate"
	"combo/internal/combo/services/placement"
	"combo/internal/combo/services/registry"
	"combo/internal/combo/services/selection"
	"combo/internal/domain"
	"combo/internal/eventbus"
)

// Options configures a new Combo
type Options struct {
	Placeholder string // label shown while nothing is selected; suppresses default selection
	Searchable  bool   // the filter input receives focus on open
	Logger      logr.Logger
}

// Result reports what HandleKey did
type Result struct {
	Command         string // executed command type, empty when the key was not mapped
	SuppressDefault bool   // the platform default action for the key must not run
}

// Combo is a single-select combobox. It is not safe for concurrent use;
// every method must be called from the platform's event loop.
type Combo struct {
	registry  *registry.Service
	filter    *filter.Service
	focus     *focus.Service
	selection *selection.Service
	open      *openstate.Service
	placer    *placement.Service

	searchable bool
	surface    Surface
	bus        eventbus.EventBus
	log        logr.Logger
}

// New creates an unmounted, closed Combo
func New(opts Options) *Combo {
	log := opts.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	bus := eventbus.New(log.WithName("events"))

	c := &Combo{
		registry:   registry.NewService(bus),
		filter:     filter.NewService(bus, log.WithName("filter")),
		focus:      focus.NewService(bus),
		selection:  selection.NewService(bus, opts.Placeholder),
		open:       openstate.NewService(bus, log.WithName("open")),
		placer:     placement.NewService(bus),
		searchable: opts.Searchable,
		surface:    nopSurface{},
		bus:        bus,
		log:        log,
	}

	c.wireServices()

	return c
}

// wireServices connects services with their dependencies
func (c *Combo) wireServices() {
	// Registry commits default and forced selections, and keeps
	// eligibility in sync with the option set
	c.registry.SetSelectFunction(c.selection.Select)
	c.registry.SetShouldSelectFunction(func() bool {
		if c.selection.Placeholder() != "" {
			return false
		}
		_, ok := c.selection.Value()
		return !ok
	})
	c.registry.SetChangedFunction(func(change registry.Change) {
		c.filter.Recompute()
		if change == registry.ChangeAdded {
			c.focus.Repair()
		}
	})

	// Filter reads the registry and repairs focus after every query
	c.filter.SetOptionsFunction(c.registry.Options)
	c.filter.SetGroupsFunction(c.registry.Groups)
	c.filter.SetRepairFunction(c.focus.Repair)

	// Focus moves within the eligible set
	c.focus.SetExistsFunction(c.registry.Has)
	c.focus.SetEligibleFunction(c.filter.Eligible)
	c.focus.SetScrollFunction(func(value string) {
		c.surface.ScrollIntoView(value)
	})

	// Selection resolves through the registry and closes on commit
	c.selection.SetLookupFunction(c.registry.Lookup)
	c.selection.SetCloseFunction(c.open.Close)

	c.open.SetHooks(openstate.Hooks{
		ListenOutside: func(fn func()) func() { return c.surface.ListenOutside(fn) },
		Schedule:      func(task func()) func() { return c.surface.Schedule(task) },
		FocusInput:    func() { c.surface.FocusInput() },
		FocusRoot:     func() { c.surface.FocusRoot() },
		Opened: func() {
			if value, ok := c.selection.Value(); ok {
				c.focus.SetFocus(value)
			}
			c.placer.Reposition()
		},
		Searchable: func() bool { return c.searchable },
	})

	c.placer.SetOpenFunction(c.open.IsOpen)
	c.placer.SetGeometryFunction(func() placement.Geometry {
		return c.surface.Geometry()
	})
}

// Mount attaches the widget to a surface
func (c *Combo) Mount(s Surface) {
	if s == nil {
		s = nopSurface{}
	}
	c.surface = s
	c.log.V(1).Info("mounted")
}

// Add registers an option in the current group, see registry.InGroup and
// registry.Selected for per-call options. value is coerced with domain.Key.
func (c *Combo) Add(value any, text string, opts ...registry.AddOption) {
	c.registry.Add(domain.Key(value), text, opts...)
}

// Remove deletes an option. Focus and selection are left as they are and
// resolve as absent if they pointed at it.
func (c *Combo) Remove(value any) {
	c.registry.Remove(domain.Key(value))
}

// Group starts a new option group; later Add calls go into it
func (c *Combo) Group(label string) domain.GroupID {
	return c.registry.Group(label)
}

// Select commits value and closes the widget
func (c *Combo) Select(value any) {
	c.selection.Select(domain.Key(value))
}

// SetFocus highlights value
func (c *Combo) SetFocus(value any) {
	c.focus.SetFocus(domain.Key(value))
}

// ClearFocus removes the highlight
func (c *Combo) ClearFocus() {
	c.focus.Clear()
}

// Navigate moves the highlight by delta within the eligible options
func (c *Combo) Navigate(delta int) {
	if delta == 0 {
		return
	}
	c.focus.Navigate(focus.Direction(delta))
}

// Filter applies a query to the option list
func (c *Combo) Filter(query string) {
	c.filter.Filter(query)
}

// Open shows the option panel
func (c *Combo) Open() { c.open.Open() }

// Close hides the option panel
func (c *Combo) Close() { c.open.Close() }

// Toggle opens a closed widget and closes an open one
func (c *Combo) Toggle() { c.open.Toggle() }

// Reposition re-decides placement from the surface geometry while open
func (c *Combo) Reposition() {
	c.placer.Reposition()
}

// Dispose releases everything the widget holds on its surface. The widget
// cannot be opened afterwards.
func (c *Combo) Dispose() {
	c.open.Dispose()
	c.log.V(1).Info("disposed")
}

// HandleKey dispatches a key to the matching command and executes it
func (c *Combo) HandleKey(ev types.KeyEvent) Result {
	cmd, suppress := input.HandleKey(ev, c)
	if cmd == nil {
		return Result{SuppressDefault: suppress}
	}

	c.log.V(1).Info("key command", "key", ev.Key.String(), "command", cmd.Type())
	c.execute(cmd)

	return Result{Command: cmd.Type(), SuppressDefault: suppress}
}

// execute applies a dispatched command
func (c *Combo) execute(cmd types.Command) {
	switch cmd := cmd.(type) {
	case types.CloseCommand:
		c.Close()
	case types.OpenCommand:
		c.Open()
	case types.CommitCommand:
		if value, ok := c.focus.Current(); ok {
			c.Select(value)
		} else if value, ok := c.selection.Raw(); ok {
			c.Select(value)
		}
	case types.NavigateCommand:
		c.Navigate(cmd.Delta)
	case types.SeedFilterCommand:
		c.surface.SeedInput(cmd.Query)
		c.Open()
		c.Filter(cmd.Query)
	}
}

// On subscribes to one event type
func (c *Combo) On(eventType domain.EventType, handler eventbus.EventHandler) eventbus.Subscription {
	return c.bus.On(eventType, handler)
}

// OnAny subscribes to every event
func (c *Combo) OnAny(handler eventbus.EventHandler) eventbus.Subscription {
	return c.bus.OnAny(handler)
}

// Off removes a subscription
func (c *Combo) Off(sub eventbus.Subscription) {
	c.bus.Off(sub)
}

// IsOpen reports whether the option panel is open
func (c *Combo) IsOpen() bool { return c.open.IsOpen() }

// Value returns the committed value if it still resolves to an option
func (c *Combo) Value() (string, bool) { return c.selection.Value() }

// Focused returns the highlighted value if it still resolves to an option
func (c *Combo) Focused() (string, bool) {
	value, ok := c.focus.Current()
	if !ok || !c.registry.Has(value) {
		return "", false
	}
	return value, true
}

// Label returns the text shown in the closed widget
func (c *Combo) Label() string { return c.selection.Label() }

// Query returns the active filter text
func (c *Combo) Query() string { return c.filter.Query() }

// Eligible returns the values matching the query in display order
func (c *Combo) Eligible() []string { return c.filter.Eligible() }

// IsEligible reports whether value matches the query
func (c *Combo) IsEligible(value string) bool { return c.filter.IsEligible(value) }

// GroupEmpty reports whether no option of the group matches the query
func (c *Combo) GroupEmpty(id domain.GroupID) bool { return c.filter.GroupEmpty(id) }

// Options returns every option in display order
func (c *Combo) Options() []domain.Option { return c.registry.Options() }

// Groups returns the groups in creation order
func (c *Combo) Groups() []domain.Group { return c.registry.Groups() }

// Placeholder returns the label shown while nothing is selected
func (c *Combo) Placeholder() string { return c.selection.Placeholder() }

// Searchable reports whether the filter input takes focus on open
func (c *Combo) Searchable() bool { return c.searchable }

// Placement returns the last decided panel placement
func (c *Combo) Placement() domain.Placement { return c.placer.Placement() }
