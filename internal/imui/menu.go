package imui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type menuBar struct {
	headers []string
	width   int
	active  bool
}

// BeginMainMenuBar starts the menu bar at the top of the screen.
func (c *Context) BeginMainMenuBar() bool {
	c.bar.active = true
	c.firstMenu = ""
	return true
}

// EndMainMenuBar finishes the menu bar.
func (c *Context) EndMainMenuBar() {
	c.bar.active = false
}

// BeginMenu draws a menu header and reports whether its dropdown is open.
// Items must only be submitted, followed by EndMenu, when it returns true.
func (c *Context) BeginMenu(label string) bool {
	if !c.bar.active {
		return false
	}
	display, key := splitLabel(label)
	id := ID("##menubar/" + key)
	if c.firstMenu == "" {
		c.firstMenu = id
	}

	focused, activated := false, false
	if c.activeLayer() == baseLayer {
		c.ring = append(c.ring, id)
		focused, activated = id == c.focused, id == c.activate
	}
	if activated {
		c.menuOpen = id
	}

	open := c.menuOpen == id
	header := " " + display + " "
	x := c.bar.width
	if open || focused {
		c.bar.headers = append(c.bar.headers, menuHeaderFocused.Render(header))
	} else {
		c.bar.headers = append(c.bar.headers, header)
	}
	c.bar.width += ansi.StringWidth(header)
	if !open {
		return false
	}

	c.dropdown = newWindow(menuLayer, 0, 0)
	c.dropdown.x = x
	c.pushWindow(c.dropdown)
	return true
}

// EndMenu closes a menu opened by BeginMenu.
func (c *Context) EndMenu() {
	c.popWindow()
}

// MenuItem draws an entry in the open dropdown and reports whether it was
// chosen. Choosing an item closes the menu.
func (c *Context) MenuItem(label, shortcut string) bool {
	display, key := splitLabel(label)
	id := ID(menuLayer + "/" + string(c.menuOpen) + "/" + key)
	focused, activated := c.interact(id)

	style := menuItemStyle
	if focused {
		style = menuItemFocusedStyle
	}
	text := style.Render(" " + display + " ")
	if shortcut != "" {
		text += " " + shortcutStyle.Render(shortcut)
	}
	c.current.add(text, false)

	if activated {
		c.menuOpen = ""
	}
	return activated
}

func (c *Context) renderMenuBar() string {
	line := strings.Join(c.bar.headers, "")
	return menuBarStyle.Width(c.width).Render(fit(line, c.width))
}

func (c *Context) renderDropdown() string {
	if c.dropdown == nil || len(c.dropdown.lines) == 0 {
		return ""
	}
	width := 0
	for _, line := range c.dropdown.lines {
		width = max(width, ansi.StringWidth(line))
	}
	lines := make([]string, len(c.dropdown.lines))
	for i, line := range c.dropdown.lines {
		lines[i] = fit(line, width)
	}
	return dropdownStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
