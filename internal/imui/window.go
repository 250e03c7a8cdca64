package imui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// window accumulates the lines drawn into one layer.
type window struct {
	layer  string
	width  int
	height int
	x      int
	lines  []string
}

func newWindow(layer string, width, height int) *window {
	return &window{layer: layer, width: max(width, 1), height: max(height, 1)}
}

// add appends text; joined continues the last line instead of starting a
// new one.
func (w *window) add(text string, joined bool) {
	parts := strings.Split(text, "\n")
	if joined && len(w.lines) > 0 {
		last := len(w.lines) - 1
		w.lines[last] += " " + parts[0]
		parts = parts[1:]
	}
	w.lines = append(w.lines, parts...)
}

// remaining is how many rows are still free.
func (w *window) remaining() int {
	return max(w.height-len(w.lines), 1)
}

// body returns exactly height lines, each exactly width cells wide.
func (w *window) body() []string {
	out := make([]string, w.height)
	for i := range out {
		line := ""
		if i < len(w.lines) {
			line = w.lines[i]
		}
		out[i] = fit(line, w.width)
	}
	return out
}

func (c *Context) pushWindow(w *window) {
	c.stack = append(c.stack, c.current)
	c.current = w
	c.sameLine = false
}

func (c *Context) popWindow() {
	if n := len(c.stack); n > 0 {
		c.current = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
	c.sameLine = false
}

// fit truncates or pads s to exactly width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) > width {
		s = ansi.Truncate(s, width, "…")
	}
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
