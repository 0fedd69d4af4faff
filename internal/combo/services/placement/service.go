package placement

import (
	"combo/internal/domain"
	"combo/internal/eventbus"
)

// Decide places the panel south of the label when it fits entirely inside
// the visible viewport below the label, north otherwise.
func Decide(g Geometry) domain.Placement {
	viewportBottom := g.ScrollTop + g.ViewportHeight
	if g.Top+g.LabelHeight+g.PanelHeight <= viewportBottom {
		return domain.PlacementSouth
	}
	return domain.PlacementNorth
}

// Service evaluates placement while the widget is open
type Service struct {
	state *State
	bus   eventbus.EventBus

	geometryFn func() Geometry
	isOpenFn   func() bool
}

// NewService creates a placement service, initially south
func NewService(bus eventbus.EventBus) *Service {
	return &Service{
		state: &State{Placement: domain.PlacementSouth},
		bus:   bus,
	}
}

// SetGeometryFunction sets the geometry source
func (s *Service) SetGeometryFunction(fn func() Geometry) {
	s.geometryFn = fn
}

// SetOpenFunction sets the function reporting open state
func (s *Service) SetOpenFunction(fn func() bool) {
	s.isOpenFn = fn
}

// Placement returns the last decided placement
func (s *Service) Placement() domain.Placement {
	return s.state.Placement
}

// Reposition re-decides placement and emits a position event on every call
// while open. Does nothing while closed.
func (s *Service) Reposition() {
	if s.isOpenFn == nil || !s.isOpenFn() || s.geometryFn == nil {
		return
	}
	s.state.Placement = Decide(s.geometryFn())

	s.bus.Emit(domain.PositionEvent{Placement: s.state.Placement})
}
