package filter

import "combo/internal/domain"

// State holds filter state
type State struct {
	Query       string
	Eligible    []string        // values matching Query, registry order
	EligibleSet map[string]bool // membership index for Eligible
	EmptyGroups map[domain.GroupID]bool
}
