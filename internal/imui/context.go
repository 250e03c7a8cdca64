// Package imui is a small immediate-mode widget layer for Bubble Tea.
//
// Every message handed to the program is one frame: the host calls
// BeginFrame, issues widget calls that describe the screen and report this
// frame's interactions, then EndFrame. Screen returns what was composed.
// Widget state the caller does not own (focus, selected tabs, open popups,
// scroll offsets) lives in the Context between frames.
package imui

import (
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	baseLayer = ""
	menuLayer = "##menu"
)

// ID identifies a widget across frames.
type ID string

// Context holds the toolkit state for one program.
type Context struct {
	width  int
	height int
	keys   KeyMap

	pressed Key

	focused  ID
	activate ID
	ring     []ID
	prevRing []ID

	sameLine bool
	current  *window
	stack    []*window
	base     *window
	bar      *menuBar
	dropdown *window

	menuOpen  ID
	firstMenu ID

	popups     map[ID]*popup
	popupOrder []ID
	drawn      []*window
	nextWidth  int
	nextHeight int

	tabBars  map[ID]*tabBarState
	curTabs  *tabBar
	tables   map[ID]*tableState
	curTable *tableFrame

	styles []styleEntry

	renderers map[int]*glamour.TermRenderer
	screen    string
}

// New creates a Context using the default key map.
func New() *Context {
	return &Context{
		width:     defaultWidth,
		height:    defaultHeight,
		keys:      DefaultKeyMap(),
		popups:    make(map[ID]*popup),
		tabBars:   make(map[ID]*tabBarState),
		tables:    make(map[ID]*tableState),
		renderers: make(map[int]*glamour.TermRenderer),
	}
}

// Keys returns the key map in use.
func (c *Context) Keys() KeyMap {
	return c.keys
}

// Resize sets the terminal size used for layout.
func (c *Context) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.width = width
	c.height = height
}

// BeginFrame starts a frame driven by msg.
func (c *Context) BeginFrame(msg tea.Msg) {
	c.pressed = KeyNone
	c.activate = ""
	c.prevRing = c.ring
	c.ring = nil
	c.sameLine = false
	c.drawn = nil
	c.dropdown = nil
	c.curTabs = nil
	c.curTable = nil

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.Resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		c.handleKey(msg)
	}

	c.base = newWindow(baseLayer, c.width, c.height-1)
	c.bar = &menuBar{}
	c.stack = nil
	c.current = c.base
}

// EndFrame composes the screen for the frame.
func (c *Context) EndFrame() {
	if n := len(c.styles); n > 0 {
		log.Printf("imui: %d style colors still pushed at end of frame", n)
		c.styles = nil
	}
	if len(c.stack) > 0 {
		log.Printf("imui: %d windows still open at end of frame", len(c.stack))
		c.stack = nil
	}
	if c.menuOpen != "" && c.dropdown == nil {
		c.menuOpen = ""
	}
	c.fixFocus()
	c.screen = c.compose()
}

// Screen returns the output of the last completed frame.
func (c *Context) Screen() string {
	return c.screen
}

// IsKeyPressed reports whether k was pressed in this frame.
func (c *Context) IsKeyPressed(k Key) bool {
	return k != KeyNone && c.pressed == k
}

// Focused returns the widget that currently has keyboard focus.
func (c *Context) Focused() ID {
	return c.focused
}

// AnyPopupOpen reports whether a popup currently captures input.
func (c *Context) AnyPopupOpen() bool {
	return len(c.popupOrder) > 0
}

// MenuOpen reports whether a menu dropdown is showing.
func (c *Context) MenuOpen() bool {
	return c.menuOpen != ""
}

func (c *Context) activeLayer() string {
	if c.menuOpen != "" {
		return menuLayer
	}
	if n := len(c.popupOrder); n > 0 {
		return string(c.popupOrder[n-1])
	}
	return baseLayer
}

// interact registers id as focusable when its window receives input and
// reports whether it has focus and whether it was activated this frame.
func (c *Context) interact(id ID) (focused, activated bool) {
	if c.current == nil || c.current.layer != c.activeLayer() {
		return false, false
	}
	// Widgets sharing an ID act as one for focus.
	if indexOf(c.ring, id) < 0 {
		c.ring = append(c.ring, id)
	}
	activated = id == c.activate
	if activated {
		// One press activates one widget, even when IDs repeat.
		c.activate = ""
	}
	return id == c.focused, activated
}

func (c *Context) widgetID(label string) (string, ID) {
	display, key := splitLabel(label)
	prefix := baseLayer
	if c.current != nil {
		prefix = c.current.layer
	}
	if c.curTabs != nil && c.curTabs.selected != "" {
		prefix += "/" + string(c.curTabs.selected)
	}
	return display, ID(prefix + "/" + key)
}

func (c *Context) fixFocus() {
	for _, id := range c.ring {
		if id == c.focused {
			return
		}
	}
	if len(c.ring) > 0 {
		c.focused = c.ring[0]
		return
	}
	c.focused = ""
}

// splitLabel separates the visible part of a label from its identity.
// "Text##id" shows Text and hashes the whole label, "Text###id" shows Text
// and hashes only id.
func splitLabel(label string) (display, key string) {
	if i := strings.Index(label, "###"); i >= 0 {
		return label[:i], label[i+3:]
	}
	if i := strings.Index(label, "##"); i >= 0 {
		return label[:i], label
	}
	return label, label
}
