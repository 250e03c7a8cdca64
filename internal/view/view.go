// Package view holds the plumbing shared by every view the host draws.
package view

// Drawer is what the host needs from a view each frame.
type Drawer interface {
	Name() string
	DrawMenu()
	DrawContent()
	WindowOpenState() *bool
}

// View carries the state common to all views: the unlocalized name and
// the window-open flag the host uses to track visible views.
type View struct {
	name       string
	windowOpen bool
}

// New creates a View named by its localization key.
func New(name string) View {
	return View{name: name}
}

// Name returns the unlocalized name of the view.
func (v *View) Name() string {
	return v.name
}

// WindowOpenState exposes the window-open flag for reading and writing by
// both the view and the host.
func (v *View) WindowOpenState() *bool {
	return &v.windowOpen
}

// WindowName builds a popup or window identifier whose visible part is the
// localized title and whose identity stays stable across languages.
func WindowName(title, key string) string {
	return title + "###" + key
}
