package domain

// EventType represents the type of widget event
type EventType string

// Event types
const (
	EventOptionAdded   EventType = "option-added"
	EventOptionRemoved EventType = "option-removed"
	EventGroupAdded    EventType = "group-added"
	EventFiltered      EventType = "filtered"
	EventFocused       EventType = "focused"
	EventSelected      EventType = "selected"
	EventOpened        EventType = "opened"
	EventClosed        EventType = "closed"
	EventPosition      EventType = "position"
)

// Event is the interface for all widget events
type Event interface {
	Type() EventType
}

// OptionAddedEvent is emitted when an option is inserted or overwritten
type OptionAddedEvent struct {
	Value    string
	Text     string
	Selected bool // true if adding it committed the selection
}

func (e OptionAddedEvent) Type() EventType { return EventOptionAdded }

// OptionRemovedEvent is emitted when an option is deleted
type OptionRemovedEvent struct {
	Value string
}

func (e OptionRemovedEvent) Type() EventType { return EventOptionRemoved }

// GroupAddedEvent is emitted when a new group is created
type GroupAddedEvent struct {
	ID    GroupID
	Label string
}

func (e GroupAddedEvent) Type() EventType { return EventGroupAdded }

// FilteredEvent is emitted after the eligible set was recomputed for a query
type FilteredEvent struct {
	Query string
}

func (e FilteredEvent) Type() EventType { return EventFiltered }

// FocusedEvent is emitted when the highlighted option changes.
// Cleared is set when focus was removed (Value is empty then).
type FocusedEvent struct {
	Value   string
	Cleared bool
}

func (e FocusedEvent) Type() EventType { return EventFocused }

// SelectedEvent is emitted when a value is committed
type SelectedEvent struct {
	Value string
}

func (e SelectedEvent) Type() EventType { return EventSelected }

// OpenedEvent is emitted on the closed to open transition
type OpenedEvent struct{}

func (e OpenedEvent) Type() EventType { return EventOpened }

// ClosedEvent is emitted on the open to closed transition
type ClosedEvent struct{}

func (e ClosedEvent) Type() EventType { return EventClosed }

// PositionEvent is emitted every time placement is evaluated while open
type PositionEvent struct {
	Placement Placement
}

func (e PositionEvent) Type() EventType { return EventPosition }
