package domain

import "fmt"

// GroupID identifies an option group. Zero means the option is ungrouped.
type GroupID int

// NoGroup is the GroupID of ungrouped options
const NoGroup GroupID = 0

// Option represents a single selectable entry
type Option struct {
	Value string  // canonical identity
	Text  string  // display text, matched by the filter
	Group GroupID // NoGroup if ungrouped
}

// Group represents a labeled partition of options
type Group struct {
	ID    GroupID
	Label string
	Order int // creation index, groups render in this order
}

// Placement tells whether the option panel renders below or above the label
type Placement string

const (
	PlacementSouth Placement = "south"
	PlacementNorth Placement = "north"
)

// Key coerces an identifier to the canonical string key options are
// compared by. Nil maps to the empty key.
func Key(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}
