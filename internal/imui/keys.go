package imui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Key is a logical key a widget or view can query for the current frame.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyEnter
	KeyLeft
	KeyRight
	KeyLineUp
	KeyLineDown
	KeyPageUp
	KeyPageDown
)

// KeyMap binds terminal keys to navigation actions.
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Escape   key.Binding
	Menu     key.Binding
	TabLeft  key.Binding
	TabRight key.Binding
	LineUp   key.Binding
	LineDown key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:     key.NewBinding(key.WithKeys("tab", "down", "j"), key.WithHelp("tab/j", "next")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab", "up", "k"), key.WithHelp("S-tab/k", "previous")),
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Menu:     key.NewBinding(key.WithKeys("f10", "alt+m"), key.WithHelp("F10", "menu")),
		TabLeft:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("h/←", "previous tab")),
		TabRight: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("l/→", "next tab")),
		LineUp:   key.NewBinding(key.WithKeys("shift+up", "K"), key.WithHelp("K", "scroll up")),
		LineDown: key.NewBinding(key.WithKeys("shift+down", "J"), key.WithHelp("J", "scroll down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("ctrl+u", "half page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("ctrl+d", "half page down")),
	}
}

// ShortHelp lists the bindings worth advertising in a status line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Menu, k.Next, k.Activate, k.TabRight, k.PageDown, k.Escape}
}

func (c *Context) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, c.keys.Escape):
		if c.menuOpen != "" {
			c.menuOpen = ""
			return
		}
		c.pressed = KeyEscape
	case key.Matches(msg, c.keys.Menu):
		if c.menuOpen != "" {
			c.menuOpen = ""
			return
		}
		if len(c.popupOrder) == 0 && c.firstMenu != "" {
			c.menuOpen = c.firstMenu
		}
	case key.Matches(msg, c.keys.Activate):
		c.activate = c.focused
		c.pressed = KeyEnter
	case key.Matches(msg, c.keys.Next):
		c.moveFocus(1)
	case key.Matches(msg, c.keys.Prev):
		c.moveFocus(-1)
	case key.Matches(msg, c.keys.TabLeft):
		c.pressed = KeyLeft
	case key.Matches(msg, c.keys.TabRight):
		c.pressed = KeyRight
	case key.Matches(msg, c.keys.LineUp):
		c.pressed = KeyLineUp
	case key.Matches(msg, c.keys.LineDown):
		c.pressed = KeyLineDown
	case key.Matches(msg, c.keys.PageUp):
		c.pressed = KeyPageUp
	case key.Matches(msg, c.keys.PageDown):
		c.pressed = KeyPageDown
	}
}

func (c *Context) moveFocus(delta int) {
	ring := c.prevRing
	if len(ring) == 0 {
		return
	}
	idx := -1
	for i, id := range ring {
		if id == c.focused {
			idx = i
			break
		}
	}
	if idx < 0 {
		if delta > 0 {
			c.focused = ring[0]
		} else {
			c.focused = ring[len(ring)-1]
		}
		return
	}
	c.focused = ring[(idx+delta+len(ring))%len(ring)]
}
