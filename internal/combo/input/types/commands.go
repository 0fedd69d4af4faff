package types

// Visibility commands
type OpenCommand struct{}

func (c OpenCommand) Type() string { return "open" }

type CloseCommand struct{}

func (c CloseCommand) Type() string { return "close" }

// CommitCommand selects the focused option, or re-commits the current selection
type CommitCommand struct{}

func (c CommitCommand) Type() string { return "commit" }

// Navigation commands
type NavigateCommand struct {
	Delta int // -1 up, +1 down
}

func (c NavigateCommand) Type() string { return "navigate" }

// SeedFilterCommand opens the widget with the typed character as the query
type SeedFilterCommand struct {
	Query string
}

func (c SeedFilterCommand) Type() string { return "seed_filter" }
