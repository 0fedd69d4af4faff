package openstate

import (
	"github.com/go-logr/logr"

	"combo/internal/domain"
	"combo/internal/eventbus"
)

// Service tracks open/closed visibility and owns the resources that only
// exist while the widget is open
type Service struct {
	state *State
	bus   eventbus.EventBus
	hooks Hooks
	log   logr.Logger
}

// NewService creates a closed open-state service
func NewService(bus eventbus.EventBus, log logr.Logger) *Service {
	return &Service{
		state: &State{},
		bus:   bus,
		log:   log,
	}
}

// SetHooks installs the open/close side effects
func (s *Service) SetHooks(h Hooks) {
	s.hooks = h
}

// IsOpen reports whether the widget is open
func (s *Service) IsOpen() bool {
	return s.state.Open
}

// Open runs the closed to open transition; no-op when already open
func (s *Service) Open() {
	if s.state.Open || s.state.Disposed {
		return
	}
	s.state.Open = true
	s.log.V(1).Info("opening")

	if s.hooks.ListenOutside != nil {
		s.state.release = s.hooks.ListenOutside(s.Close)
	}
	if s.hooks.Opened != nil {
		s.hooks.Opened()
	}
	if s.hooks.Schedule != nil && s.hooks.FocusInput != nil && s.searchable() {
		focusInput := s.hooks.FocusInput
		s.state.cancel = s.hooks.Schedule(func() {
			s.state.cancel = nil
			focusInput()
		})
	}

	s.bus.Emit(domain.OpenedEvent{})
}

// Close runs the open to closed transition; no-op when already closed
func (s *Service) Close() {
	if !s.state.Open {
		return
	}
	s.state.Open = false
	s.log.V(1).Info("closing")

	s.teardown()
	if s.hooks.FocusRoot != nil {
		s.hooks.FocusRoot()
	}

	s.bus.Emit(domain.ClosedEvent{})
}

// Toggle flips the state through Open or Close
func (s *Service) Toggle() {
	if s.state.Open {
		s.Close()
		return
	}
	s.Open()
}

// Dispose releases everything held while open without emitting events.
// The widget stays closed afterwards.
func (s *Service) Dispose() {
	s.teardown()
	s.state.Open = false
	s.state.Disposed = true
}

// teardown is the single release path for open-only resources
func (s *Service) teardown() {
	if s.state.cancel != nil {
		s.state.cancel()
		s.state.cancel = nil
	}
	if s.state.release != nil {
		s.state.release()
		s.state.release = nil
	}
}

func (s *Service) searchable() bool {
	return s.hooks.Searchable == nil || s.hooks.Searchable()
}
