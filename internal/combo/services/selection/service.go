package selection

import (
	"combo/internal/domain"
	"combo/internal/eventbus"
)

// Service mediates commits of the single selected value
type Service struct {
	state *State
	bus   eventbus.EventBus

	lookupFn func(value string) (domain.Option, bool)
	closeFn  func() // selecting always closes the widget
}

// NewService creates a new selection service
func NewService(bus eventbus.EventBus, placeholder string) *Service {
	return &Service{
		state: &State{Placeholder: placeholder},
		bus:   bus,
	}
}

// SetLookupFunction sets the function resolving values to options
func (s *Service) SetLookupFunction(fn func(value string) (domain.Option, bool)) {
	s.lookupFn = fn
}

// SetCloseFunction sets the close transition run after every commit
func (s *Service) SetCloseFunction(fn func()) {
	s.closeFn = fn
}

// Select commits value and closes the widget. Values that do not resolve to
// a live option are ignored. Reports whether the value was committed.
func (s *Service) Select(value string) bool {
	if _, ok := s.lookup(value); !ok {
		return false
	}
	s.state.Value = value
	s.state.HasValue = true

	s.bus.Emit(domain.SelectedEvent{Value: value})

	if s.closeFn != nil {
		s.closeFn()
	}
	return true
}

// Raw returns the committed value even if its option was removed since
func (s *Service) Raw() (string, bool) {
	return s.state.Value, s.state.HasValue
}

// Value returns the committed value if it still resolves to a live option
func (s *Service) Value() (string, bool) {
	if !s.state.HasValue {
		return "", false
	}
	if _, ok := s.lookup(s.state.Value); !ok {
		return "", false
	}
	return s.state.Value, true
}

// Placeholder returns the text shown while nothing is selected
func (s *Service) Placeholder() string {
	return s.state.Placeholder
}

// Label returns the selected option's text, or the placeholder
func (s *Service) Label() string {
	if !s.state.HasValue {
		return s.state.Placeholder
	}
	opt, ok := s.lookup(s.state.Value)
	if !ok {
		return s.state.Placeholder
	}
	return opt.Text
}

func (s *Service) lookup(value string) (domain.Option, bool) {
	if s.lookupFn == nil {
		return domain.Option{}, false
	}
	return s.lookupFn(value)
}
