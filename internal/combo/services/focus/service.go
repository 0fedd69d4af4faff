package focus

import (
	"combo/internal/domain"
	"combo/internal/eventbus"
)

// Service tracks the highlighted option, independent of the selection
type Service struct {
	state *State
	bus   eventbus.EventBus

	existsFn   func(value string) bool // value resolves to a live option
	eligibleFn func() []string         // eligible values in order
	scrollFn   func(value string)      // bring value into view
}

// NewService creates a new focus service
func NewService(bus eventbus.EventBus) *Service {
	return &Service{
		state: &State{},
		bus:   bus,
	}
}

// SetExistsFunction sets the function resolving values to live options
func (s *Service) SetExistsFunction(fn func(value string) bool) {
	s.existsFn = fn
}

// SetEligibleFunction sets the function returning the eligible set
func (s *Service) SetEligibleFunction(fn func() []string) {
	s.eligibleFn = fn
}

// SetScrollFunction sets the scroll-into-view intent
func (s *Service) SetScrollFunction(fn func(value string)) {
	s.scrollFn = fn
}

// Current returns the focused value. The value may no longer resolve if
// its option was removed after it was focused.
func (s *Service) Current() (string, bool) {
	return s.state.Value, s.state.HasFocus
}

// SetFocus highlights value; unknown values are ignored
func (s *Service) SetFocus(value string) {
	if s.existsFn == nil || !s.existsFn(value) {
		return
	}
	s.state.Value = value
	s.state.HasFocus = true
	s.scroll(value)

	s.bus.Emit(domain.FocusedEvent{Value: value})
}

// Clear removes focus without scrolling
func (s *Service) Clear() {
	s.state.Value = ""
	s.state.HasFocus = false

	s.bus.Emit(domain.FocusedEvent{Cleared: true})
}

// Navigate moves focus by direction steps within the eligible set. Moving past
// either end, or from a value that is not eligible, does nothing. Without
// any focus the cursor counts as sitting before the first value.
func (s *Service) Navigate(direction Direction) {
	eligible := s.eligible()

	index := -1
	if s.state.HasFocus {
		index = indexOf(eligible, s.state.Value)
		if index < 0 {
			return
		}
	}

	target := index + int(direction)
	if target < 0 || target >= len(eligible) {
		return
	}
	s.SetFocus(eligible[target])
}

// Repair restores the focus invariant after the eligible set changed: keep
// and re-scroll a still eligible focus, otherwise move to the first eligible
// value, or clear when nothing is eligible.
func (s *Service) Repair() {
	eligible := s.eligible()

	if s.state.HasFocus && indexOf(eligible, s.state.Value) >= 0 {
		s.scroll(s.state.Value)
		return
	}
	if len(eligible) == 0 {
		s.Clear()
		return
	}
	s.SetFocus(eligible[0])
}

func (s *Service) eligible() []string {
	if s.eligibleFn == nil {
		return nil
	}
	return s.eligibleFn()
}

func (s *Service) scroll(value string) {
	if s.scrollFn != nil {
		s.scrollFn(value)
	}
}

func indexOf(values []string, value string) int {
	for i, v := range values {
		if v == value {
			return i
		}
	}
	return -1
}
