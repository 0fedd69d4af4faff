package registry

import (
	"sort"

	"combo/internal/domain"
	"combo/internal/eventbus"
)

// Service owns the set of options and groups
type Service struct {
	state *State
	bus   eventbus.EventBus

	selectFn       func(value string) bool // commits a value, reports whether it was committed
	shouldSelectFn func() bool             // whether a plain Add becomes the default selection
	changedFn      func(Change)            // called after the option set changed
}

// NewService creates a new registry service
func NewService(bus eventbus.EventBus) *Service {
	return &Service{
		state: &State{
			Options: make(map[string]*domain.Option),
			Seq:     make(map[string]int),
			Current: domain.NoGroup,
		},
		bus: bus,
	}
}

// SetSelectFunction sets the function used to commit a newly added option
func (s *Service) SetSelectFunction(fn func(value string) bool) {
	s.selectFn = fn
}

// SetShouldSelectFunction sets the function deciding default selection on Add
func (s *Service) SetShouldSelectFunction(fn func() bool) {
	s.shouldSelectFn = fn
}

// SetChangedFunction sets the function notified after every mutation
func (s *Service) SetChangedFunction(fn func(Change)) {
	s.changedFn = fn
}

// Add inserts or overwrites an option. Overwriting keeps the option's
// position. An InGroup referencing an unknown group makes Add a no-op.
func (s *Service) Add(value, text string, opts ...AddOption) {
	cfg := addConfig{group: s.state.Current}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.hasGroup && !s.hasGroup(cfg.group) {
		return
	}

	if _, exists := s.state.Options[value]; !exists {
		s.state.Seq[value] = s.state.NextSeq
		s.state.NextSeq++
	}
	s.state.Options[value] = &domain.Option{
		Value: value,
		Text:  text,
		Group: cfg.group,
	}
	s.state.ordered = nil

	selected := false
	if cfg.selected || (s.shouldSelectFn != nil && s.shouldSelectFn()) {
		if s.selectFn != nil {
			selected = s.selectFn(value)
		}
	}

	s.bus.Emit(domain.OptionAddedEvent{
		Value:    value,
		Text:     text,
		Selected: selected,
	})

	s.notify(ChangeAdded)
}

// Remove deletes an option; unknown values are ignored
func (s *Service) Remove(value string) {
	if _, exists := s.state.Options[value]; !exists {
		return
	}
	delete(s.state.Options, value)
	delete(s.state.Seq, value)
	s.state.ordered = nil

	s.bus.Emit(domain.OptionRemovedEvent{Value: value})

	s.notify(ChangeRemoved)
}

// Group creates a new group after the existing ones and makes it the
// target of subsequent Add calls
func (s *Service) Group(label string) domain.GroupID {
	id := domain.GroupID(len(s.state.Groups) + 1)
	s.state.Groups = append(s.state.Groups, domain.Group{
		ID:    id,
		Label: label,
		Order: len(s.state.Groups),
	})
	s.state.Current = id
	s.state.ordered = nil

	s.bus.Emit(domain.GroupAddedEvent{ID: id, Label: label})

	s.notify(ChangeGroupAdded)
	return id
}

// Lookup returns the option registered under value
func (s *Service) Lookup(value string) (domain.Option, bool) {
	opt, ok := s.state.Options[value]
	if !ok {
		return domain.Option{}, false
	}
	return *opt, true
}

// Has reports whether value resolves to a live option
func (s *Service) Has(value string) bool {
	_, ok := s.state.Options[value]
	return ok
}

// Len returns the number of registered options
func (s *Service) Len() int {
	return len(s.state.Options)
}

// Values returns option values in display order: ungrouped first, then each
// group in creation order, insertion order within a section.
func (s *Service) Values() []string {
	if s.state.ordered == nil {
		s.state.ordered = s.buildOrder()
	}
	out := make([]string, len(s.state.ordered))
	copy(out, s.state.ordered)
	return out
}

// Options returns copies of all options in display order
func (s *Service) Options() []domain.Option {
	values := s.Values()
	out := make([]domain.Option, 0, len(values))
	for _, v := range values {
		out = append(out, *s.state.Options[v])
	}
	return out
}

// Groups returns all groups in creation order
func (s *Service) Groups() []domain.Group {
	out := make([]domain.Group, len(s.state.Groups))
	copy(out, s.state.Groups)
	return out
}

// LookupGroup returns the group with the given id
func (s *Service) LookupGroup(id domain.GroupID) (domain.Group, bool) {
	for _, g := range s.state.Groups {
		if g.ID == id {
			return g, true
		}
	}
	return domain.Group{}, false
}

// CurrentGroup returns the group targeted by Add without InGroup
func (s *Service) CurrentGroup() domain.GroupID {
	return s.state.Current
}

func (s *Service) hasGroup(id domain.GroupID) bool {
	if id == domain.NoGroup {
		return true
	}
	_, ok := s.LookupGroup(id)
	return ok
}

func (s *Service) buildOrder() []string {
	order := make([]string, 0, len(s.state.Options))
	for v := range s.state.Options {
		order = append(order, v)
	}

	groupRank := make(map[domain.GroupID]int, len(s.state.Groups)+1)
	groupRank[domain.NoGroup] = -1
	for _, g := range s.state.Groups {
		groupRank[g.ID] = g.Order
	}

	sort.Slice(order, func(i, j int) bool {
		a, b := s.state.Options[order[i]], s.state.Options[order[j]]
		if ra, rb := groupRank[a.Group], groupRank[b.Group]; ra != rb {
			return ra < rb
		}
		return s.state.Seq[order[i]] < s.state.Seq[order[j]]
	})
	return order
}

func (s *Service) notify(change Change) {
	if s.changedFn != nil {
		s.changedFn(change)
	}
}
