package types

// Key identifies a platform-independent key
type Key int

const (
	KeyOther Key = iota
	KeyTab
	KeyEscape
	KeyEnter
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyRune // printable character, see KeyEvent.Rune
)

func (k Key) String() string {
	switch k {
	case KeyTab:
		return "tab"
	case KeyEscape:
		return "esc"
	case KeyEnter:
		return "enter"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyRune:
		return "rune"
	default:
		return "other"
	}
}

// KeyEvent is a key press as seen by the widget
type KeyEvent struct {
	Key  Key
	Rune rune
}

// Command represents something the widget should execute in response to a key
type Command interface {
	Type() string
}

// Context provides read-only access to widget state needed for dispatch
type Context interface {
	IsOpen() bool
}
