package eventbus

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"

	"combo/internal/domain"
)

func TestEmitIsSynchronousAndOrdered(t *testing.T) {
	b := New(logr.Discard())
	var got []string

	b.On(domain.EventSelected, func(e DomainEvent) { got = append(got, "first") })
	b.On(domain.EventSelected, func(e DomainEvent) { got = append(got, "second") })
	b.OnAny(func(e DomainEvent) { got = append(got, "any:"+string(e.Type())) })

	b.Emit(domain.SelectedEvent{Value: "a"})

	assert.Equal(t, []string{"first", "second", "any:selected"}, got)
}

func TestOffRemovesOnlyThatHandler(t *testing.T) {
	b := New(logr.Discard())
	calls := map[string]int{}

	keep := b.On(domain.EventOpened, func(e DomainEvent) { calls["keep"]++ })
	drop := b.On(domain.EventOpened, func(e DomainEvent) { calls["drop"]++ })
	b.Off(drop)
	b.Off(drop) // second removal is ignored

	b.Emit(domain.OpenedEvent{})
	assert.Equal(t, 1, calls["keep"])
	assert.Equal(t, 0, calls["drop"])

	b.Off(keep)
	b.Emit(domain.OpenedEvent{})
	assert.Equal(t, 1, calls["keep"])
}

func TestOffWildcard(t *testing.T) {
	b := New(logr.Discard())
	n := 0
	sub := b.OnAny(func(e DomainEvent) { n++ })
	b.Emit(domain.ClosedEvent{})
	b.Off(sub)
	b.Emit(domain.ClosedEvent{})
	assert.Equal(t, 1, n)
}

func TestHandlerPanicDoesNotStopDelivery(t *testing.T) {
	b := New(logr.Discard())
	delivered := false
	b.On(domain.EventClosed, func(e DomainEvent) { panic("boom") })
	b.On(domain.EventClosed, func(e DomainEvent) { delivered = true })

	assert.NotPanics(t, func() { b.Emit(domain.ClosedEvent{}) })
	assert.True(t, delivered)
}

func TestHandlerMaySubscribeDuringEmit(t *testing.T) {
	b := New(logr.Discard())
	late := 0
	b.On(domain.EventOpened, func(e DomainEvent) {
		b.On(domain.EventOpened, func(e DomainEvent) { late++ })
	})

	b.Emit(domain.OpenedEvent{})
	assert.Equal(t, 0, late, "handler added during emit is not called for that emit")

	b.Emit(domain.OpenedEvent{})
	assert.Equal(t, 1, late)
}
