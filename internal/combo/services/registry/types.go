package registry

import "combo/internal/domain"

// State holds the registered options and groups
type State struct {
	Options map[string]*domain.Option
	Seq     map[string]int // insertion sequence, survives overwrites
	Groups  []domain.Group
	Current domain.GroupID // group targeted by Add without InGroup
	NextSeq int

	ordered []string // display order cache, nil when stale
}

// Change describes what happened to the option set
type Change int

const (
	ChangeAdded Change = iota
	ChangeRemoved
	ChangeGroupAdded
)

func (c Change) String() string {
	switch c {
	case ChangeAdded:
		return "added"
	case ChangeRemoved:
		return "removed"
	case ChangeGroupAdded:
		return "group-added"
	default:
		return "unknown"
	}
}

// AddOption customizes a single Add call
type AddOption func(*addConfig)

type addConfig struct {
	group    domain.GroupID
	hasGroup bool
	selected bool
}

// InGroup places the option in the given group instead of the current one
func InGroup(id domain.GroupID) AddOption {
	return func(c *addConfig) {
		c.group = id
		c.hasGroup = true
	}
}

// Selected commits the option as the selection even if another value is selected
func Selected() AddOption {
	return func(c *addConfig) {
		c.selected = true
	}
}
