package input

import (
	"unicode"

	"combo/internal/combo/input/types"
)

// HandleKey maps a key to at most one command. The second return value
// reports whether the platform default action for the key should be
// suppressed. Unmapped keys return a nil command and no suppression.
func HandleKey(ev types.KeyEvent, ctx types.Context) (types.Command, bool) {
	switch ev.Key {
	case types.KeyTab, types.KeyEscape:
		return types.CloseCommand{}, false

	case types.KeyEnter:
		return types.CommitCommand{}, true

	case types.KeyLeft, types.KeyRight:
		if ctx.IsOpen() {
			return nil, false
		}
		return types.OpenCommand{}, false

	case types.KeyUp, types.KeyDown:
		if !ctx.IsOpen() {
			return types.OpenCommand{}, true
		}
		delta := 1
		if ev.Key == types.KeyUp {
			delta = -1
		}
		return types.NavigateCommand{Delta: delta}, true

	case types.KeyRune:
		if ctx.IsOpen() || !IsWordRune(ev.Rune) {
			return nil, false
		}
		return types.SeedFilterCommand{Query: string(ev.Rune)}, true
	}

	return nil, false
}

// IsWordRune reports whether r is a letter, digit or underscore
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
