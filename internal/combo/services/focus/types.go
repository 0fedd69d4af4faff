package focus

// State holds the focus cursor
type State struct {
	Value    string
	HasFocus bool
}

// Direction is a navigation step through the eligible set
type Direction int

const (
	DirectionUp   Direction = -1
	DirectionDown Direction = 1
)
