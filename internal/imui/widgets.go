package imui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	styles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

// Text draws a single unformatted item.
func (c *Context) Text(text string) {
	c.emit(text)
}

// TextWrapped draws text wrapped to the width of the current window.
func (c *Context) TextWrapped(text string) {
	width := c.contentWidth()
	c.emit(lipgloss.NewStyle().Width(width).Render(text))
}

// Markdown renders text through glamour, wrapped to the current window.
// Text that fails to render is drawn wrapped instead.
func (c *Context) Markdown(text string) {
	width := c.contentWidth()
	renderer, err := c.markdownRenderer(width)
	if err != nil {
		c.TextWrapped(text)
		return
	}
	out, err := renderer.Render(text)
	if err != nil {
		c.TextWrapped(text)
		return
	}
	c.emit(strings.Trim(out, "\n"))
}

// Hyperlink draws a focusable link and reports whether it was activated.
func (c *Context) Hyperlink(label string) bool {
	display, id := c.widgetID(label)
	focused, activated := c.interact(id)
	style := linkStyle
	if focused {
		style = linkFocusedStyle
	}
	c.emit(style.Render(display))
	return activated
}

// BulletHyperlink is a Hyperlink preceded by a bullet.
func (c *Context) BulletHyperlink(label string) bool {
	c.emit(bulletStyle.Render("•"))
	c.SameLine()
	return c.Hyperlink(label)
}

// Button draws a focusable button and reports whether it was activated.
func (c *Context) Button(label string) bool {
	display, id := c.widgetID(label)
	focused, activated := c.interact(id)
	style := buttonStyle
	if focused {
		style = buttonFocusedStyle
	}
	c.emit(style.Render(display))
	return activated
}

// SameLine places the next item on the line of the previous one.
func (c *Context) SameLine() {
	c.sameLine = true
}

// NewLine inserts an empty line.
func (c *Context) NewLine() {
	c.sameLine = false
	c.emit("")
}

// Separator draws a horizontal rule across the current window.
func (c *Context) Separator() {
	c.sameLine = false
	c.emit(separatorStyle.Render(strings.Repeat("─", c.contentWidth())))
}

func (c *Context) emit(text string) {
	joined := c.sameLine
	c.sameLine = false
	if t := c.curTable; t != nil && t.inCell() {
		t.add(text, joined)
		return
	}
	if c.current == nil {
		return
	}
	c.current.add(c.applyStyle(text), joined)
}

func (c *Context) contentWidth() int {
	if c.current == nil {
		return c.width
	}
	return c.current.width
}

func (c *Context) markdownRenderer(width int) (*glamour.TermRenderer, error) {
	if r, ok := c.renderers[width]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styles.TokyoNightStyle),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	c.renderers[width] = r
	return r, nil
}
