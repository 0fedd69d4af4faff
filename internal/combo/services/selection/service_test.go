package selection

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"

	"combo/internal/domain"
	"combo/internal/eventbus"
)

func newTestService(t *testing.T, options map[string]string) (*Service, *[]string) {
	t.Helper()
	bus := eventbus.New(logr.Discard())
	var trace []string
	bus.OnAny(func(e eventbus.DomainEvent) { trace = append(trace, string(e.Type())) })

	s := NewService(bus, "Pick one")
	s.SetLookupFunction(func(v string) (domain.Option, bool) {
		text, ok := options[v]
		return domain.Option{Value: v, Text: text}, ok
	})
	s.SetCloseFunction(func() { trace = append(trace, "close") })
	return s, &trace
}

func TestSelectCommitsThenCloses(t *testing.T) {
	s, trace := newTestService(t, map[string]string{"a": "Apple"})

	assert.True(t, s.Select("a"))
	v, ok := s.Value()
	assert.True(t, ok)
	assert.Equal(t, "a", v)
	assert.Equal(t, []string{"selected", "close"}, *trace)
	assert.Equal(t, "Apple", s.Label())
}

func TestSelectUnknownIsNoop(t *testing.T) {
	s, trace := newTestService(t, map[string]string{"a": "Apple"})
	s.Select("a")
	*trace = nil

	assert.False(t, s.Select("missing"))
	v, _ := s.Value()
	assert.Equal(t, "a", v)
	assert.Empty(t, *trace)
}

func TestSelectSameValueAgainStillCloses(t *testing.T) {
	s, trace := newTestService(t, map[string]string{"a": "Apple"})
	s.Select("a")
	s.Select("a")
	assert.Equal(t, []string{"selected", "close", "selected", "close"}, *trace)
}

func TestPlaceholderLabel(t *testing.T) {
	s, _ := newTestService(t, map[string]string{"a": "Apple"})
	assert.Equal(t, "Pick one", s.Label())
}

func TestDanglingSelectionResolvesAsAbsent(t *testing.T) {
	options := map[string]string{"a": "Apple"}
	s, _ := newTestService(t, options)
	s.Select("a")
	delete(options, "a")

	_, ok := s.Value()
	assert.False(t, ok)
	raw, had := s.Raw()
	assert.True(t, had)
	assert.Equal(t, "a", raw)
	assert.Equal(t, "Pick one", s.Label())
}
