package imui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type popup struct {
	id      ID
	title   string
	open    *bool
	width   int
	height  int
	closing bool
	win     *window
}

// OpenPopup marks the popup named name as open. It is shown by the next
// BeginPopupModal call with the same name.
func (c *Context) OpenPopup(name string) {
	_, key := splitLabel(name)
	id := ID(key)
	if _, ok := c.popups[id]; ok {
		return
	}
	c.popups[id] = &popup{id: id}
	c.popupOrder = append(c.popupOrder, id)
}

// IsPopupOpen reports whether the popup named name is open.
func (c *Context) IsPopupOpen(name string) bool {
	_, key := splitLabel(name)
	_, ok := c.popups[ID(key)]
	return ok
}

// SetNextWindowSize fixes the size, in cells, of the next popup.
func (c *Context) SetNextWindowSize(width, height int) {
	c.nextWidth = width
	c.nextHeight = height
}

// BeginPopupModal begins the modal popup named name and reports whether it
// is visible. When open is non-nil the popup shows a close button, a false
// *open closes the popup and closing the popup writes false to *open.
// EndPopup must only be called when BeginPopupModal returns true.
func (c *Context) BeginPopupModal(name string, open *bool) bool {
	width, height := c.nextWidth, c.nextHeight
	c.nextWidth, c.nextHeight = 0, 0

	display, key := splitLabel(name)
	id := ID(key)
	p, ok := c.popups[id]
	if !ok {
		return false
	}
	if open != nil && !*open {
		c.removePopup(id)
		return false
	}

	if width <= 0 {
		width = c.width * 3 / 4
	}
	if height <= 0 {
		height = c.height * 3 / 4
	}
	// Room for the border, title line and padding.
	width = clamp(width, 10, max(c.width-2, 10))
	height = clamp(height, 4, max(c.height-2, 4))

	p.title = display
	p.open = open
	p.width = width
	p.height = height
	p.closing = false
	p.win = newWindow(string(id), width-4, height-3)
	c.pushWindow(p.win)
	return true
}

// CloseCurrentPopup closes the popup being drawn once EndPopup is reached.
func (c *Context) CloseCurrentPopup() {
	if p := c.currentPopup(); p != nil {
		p.closing = true
	}
}

// EndPopup finishes the popup begun by BeginPopupModal.
func (c *Context) EndPopup() {
	p := c.currentPopup()
	if p == nil {
		return
	}
	if p.open != nil {
		c.sameLine = false
		if c.Button("[x]##close") {
			p.closing = true
		}
		// The close button lives in the title bar, not in the body.
		p.win.lines = p.win.lines[:len(p.win.lines)-1]
	}
	c.popWindow()

	if p.closing {
		if p.open != nil {
			*p.open = false
		}
		c.removePopup(p.id)
		return
	}
	c.drawn = append(c.drawn, p.win)
}

func (c *Context) currentPopup() *popup {
	if c.current == nil {
		return nil
	}
	return c.popups[ID(c.current.layer)]
}

func (c *Context) removePopup(id ID) {
	delete(c.popups, id)
	for i, other := range c.popupOrder {
		if other == id {
			c.popupOrder = append(c.popupOrder[:i], c.popupOrder[i+1:]...)
			break
		}
	}
}

func (c *Context) renderPopup(w *window) string {
	p := c.popups[ID(w.layer)]
	if p == nil {
		return ""
	}
	title := popupTitleStyle.Render(p.title)
	if p.open != nil {
		closeLabel := buttonStyle.Render("[x]")
		if c.focused == ID(w.layer+"/"+"[x]##close") {
			closeLabel = buttonFocusedStyle.Render("[x]")
		}
		gap := max(w.width-lipgloss.Width(title)-lipgloss.Width(closeLabel), 1)
		title += strings.Repeat(" ", gap) + closeLabel
	}
	lines := append([]string{fit(title, w.width)}, w.body()...)
	return popupStyle.Render(strings.Join(lines, "\n"))
}
