package filter

import (
	"strings"

	"github.com/go-logr/logr"

	"combo/internal/domain"
	"combo/internal/eventbus"
)

// Service derives the eligible option subset for a text query
type Service struct {
	state *State
	bus   eventbus.EventBus
	log   logr.Logger

	optionsFn func() []domain.Option // options in registry order
	groupsFn  func() []domain.Group
	repairFn  func() // focus repair pass run after every Filter
}

// NewService creates a new filter service
func NewService(bus eventbus.EventBus, log logr.Logger) *Service {
	return &Service{
		state: &State{
			EligibleSet: make(map[string]bool),
			EmptyGroups: make(map[domain.GroupID]bool),
		},
		bus: bus,
		log: log,
	}
}

// SetOptionsFunction sets the function returning options in registry order
func (s *Service) SetOptionsFunction(fn func() []domain.Option) {
	s.optionsFn = fn
}

// SetGroupsFunction sets the function returning all groups
func (s *Service) SetGroupsFunction(fn func() []domain.Group) {
	s.groupsFn = fn
}

// SetRepairFunction sets the focus repair pass run after Filter
func (s *Service) SetRepairFunction(fn func()) {
	s.repairFn = fn
}

// Filter applies query, repairs focus and emits a filtered event
func (s *Service) Filter(query string) {
	s.state.Query = query
	s.Recompute()

	s.log.V(1).Info("filter applied", "query", query, "eligible", len(s.state.Eligible))

	if s.repairFn != nil {
		s.repairFn()
	}

	s.bus.Emit(domain.FilteredEvent{Query: query})
}

// Recompute re-derives the eligible set and group flags for the current
// query without emitting anything
func (s *Service) Recompute() {
	var options []domain.Option
	if s.optionsFn != nil {
		options = s.optionsFn()
	}
	var groups []domain.Group
	if s.groupsFn != nil {
		groups = s.groupsFn()
	}

	eligible, empty := Match(options, groups, s.state.Query)
	s.state.Eligible = eligible
	s.state.EligibleSet = make(map[string]bool, len(eligible))
	for _, v := range eligible {
		s.state.EligibleSet[v] = true
	}
	s.state.EmptyGroups = empty
}

// Query returns the active query
func (s *Service) Query() string {
	return s.state.Query
}

// Eligible returns a copy of the eligible values in registry order
func (s *Service) Eligible() []string {
	out := make([]string, len(s.state.Eligible))
	copy(out, s.state.Eligible)
	return out
}

// IsEligible reports whether value is in the eligible set
func (s *Service) IsEligible(value string) bool {
	return s.state.EligibleSet[value]
}

// GroupEmpty reports whether a group has no eligible options
func (s *Service) GroupEmpty(id domain.GroupID) bool {
	return s.state.EmptyGroups[id]
}

// Match is the pure filter: options whose text contains query, compared
// case-insensitively, and the groups left without any match.
func Match(options []domain.Option, groups []domain.Group, query string) ([]string, map[domain.GroupID]bool) {
	needle := strings.ToLower(query)
	eligible := make([]string, 0, len(options))
	populated := make(map[domain.GroupID]bool, len(groups))

	for _, opt := range options {
		if needle == "" || strings.Contains(strings.ToLower(opt.Text), needle) {
			eligible = append(eligible, opt.Value)
			populated[opt.Group] = true
		}
	}

	empty := make(map[domain.GroupID]bool, len(groups))
	for _, g := range groups {
		if !populated[g.ID] {
			empty[g.ID] = true
		}
	}
	return eligible, empty
}
