package ui

// deferredMsg carries a scheduled task's token back through the program
// loop. The task runs unless it was cancelled in the meantime.
type deferredMsg struct {
	token uint64
}
