package eventbus

import (
	"runtime/debug"

	"github.com/go-logr/logr"

	"combo/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.Event
type EventType = domain.EventType

// EventHandler is a function that handles widget events
type EventHandler func(DomainEvent)

// Subscription identifies a registered handler so it can be removed with Off
type Subscription struct {
	id        uint64
	eventType EventType
	any       bool
}

// EventBus is the observable capability of a widget. Emission is synchronous:
// every handler has returned by the time Emit returns.
type EventBus interface {
	Emit(event DomainEvent)
	On(eventType EventType, handler EventHandler) Subscription
	OnAny(handler EventHandler) Subscription
	Off(sub Subscription)
}

type entry struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus. It is owned by a single
// widget and takes no locks.
type bus struct {
	handlers map[EventType][]entry
	wildcard []entry
	nextID   uint64
	log      logr.Logger
}

// New creates a new event bus
func New(log logr.Logger) EventBus {
	return &bus{
		handlers: make(map[EventType][]entry),
		log:      log,
	}
}

// Emit calls every handler subscribed to the event's type in subscription
// order, then every wildcard handler.
func (b *bus) Emit(event DomainEvent) {
	b.log.V(2).Info("emit", "event", string(event.Type()))

	// Copy so handlers may subscribe or unsubscribe while we iterate
	handlers := make([]entry, 0, len(b.handlers[event.Type()])+len(b.wildcard))
	handlers = append(handlers, b.handlers[event.Type()]...)
	handlers = append(handlers, b.wildcard...)

	for _, e := range handlers {
		b.call(e.handler, event)
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error(nil, "event handler panic", "event", string(event.Type()), "panic", r, "stack", string(debug.Stack()))
		}
	}()
	h(event)
}

// On registers a handler for one event type
func (b *bus) On(eventType EventType, handler EventHandler) Subscription {
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], entry{id: b.nextID, handler: handler})
	return Subscription{id: b.nextID, eventType: eventType}
}

// OnAny registers a handler for every event type
func (b *bus) OnAny(handler EventHandler) Subscription {
	b.nextID++
	b.wildcard = append(b.wildcard, entry{id: b.nextID, handler: handler})
	return Subscription{id: b.nextID, any: true}
}

// Off removes a handler. Unknown or already removed subscriptions are ignored.
func (b *bus) Off(sub Subscription) {
	if sub.any {
		b.wildcard = without(b.wildcard, sub.id)
		return
	}
	handlers := without(b.handlers[sub.eventType], sub.id)
	if len(handlers) == 0 {
		delete(b.handlers, sub.eventType)
		return
	}
	b.handlers[sub.eventType] = handlers
}

func without(entries []entry, id uint64) []entry {
	for i, e := range entries {
		if e.id == id {
			out := make([]entry, 0, len(entries)-1)
			out = append(out, entries[:i]...)
			return append(out, entries[i+1:]...)
		}
	}
	return entries
}
