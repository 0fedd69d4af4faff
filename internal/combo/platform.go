package combo

import "combo/internal/combo/services/placement"

// Surface is the platform the widget is mounted on. It owns rendering,
// input focus, pointer listening and geometry; the widget only tells it
// what to do.
type Surface interface {
	// FocusRoot gives input focus back to the widget's root control
	FocusRoot()
	// FocusInput moves input focus into the filter input
	FocusInput()
	// SeedInput replaces the filter input's text
	SeedInput(text string)
	// ScrollIntoView makes the option with value visible in the panel
	ScrollIntoView(value string)
	// ListenOutside delivers pointer presses and releases outside the
	// widget to fn until release is called
	ListenOutside(fn func()) (release func())
	// Schedule runs task on a later turn of the event loop unless cancelled
	Schedule(task func()) (cancel func())
	// Geometry measures the widget for a placement decision
	Geometry() placement.Geometry
}

// nopSurface is used until the widget is mounted
type nopSurface struct{}

func (nopSurface) FocusRoot() {}
func (nopSurface) FocusInput() {}
func (nopSurface) SeedInput(string) {}
func (nopSurface) ScrollIntoView(string) {}
func (nopSurface) ListenOutside(func()) func() { return func() {} }
func (nopSurface) Schedule(func()) func() { return func() {} }
func (nopSurface) Geometry() placement.Geometry { return placement.Geometry{} }
