package selection

// State holds the committed selection
type State struct {
	Value       string
	HasValue    bool
	Placeholder string // label shown while nothing is selected
}
