package openstate

// State holds visibility and the resources held while open
type State struct {
	Open     bool
	Disposed bool

	release func() // drops the outside-interaction listener
	cancel  func() // cancels the deferred input focus
}

// Hooks are the side effects of opening and closing
type Hooks struct {
	// ListenOutside starts delivering outside pointer interactions to fn
	// and returns the function that stops it.
	ListenOutside func(fn func()) (release func())
	// Schedule runs task on a later tick of the event loop and returns a
	// function that cancels it if it has not run yet.
	Schedule func(task func()) (cancel func())

	FocusInput func()
	FocusRoot  func()

	// Opened runs after the state flipped to open, before the opened event
	Opened func()
	// Searchable reports whether the filter input should receive focus
	Searchable func() bool
}
