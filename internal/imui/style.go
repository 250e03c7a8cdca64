package imui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Col selects which color a PushStyleColor call overrides.
type Col int

const (
	ColText Col = iota
	ColChildBg
)

// RGBA is a color with components in [0, 1].
type RGBA struct {
	R, G, B, A float32
}

type styleEntry struct {
	col   Col
	color lipgloss.Color
}

var (
	windowBg = RGBA{R: 0x1a / 255.0, G: 0x1b / 255.0, B: 0x26 / 255.0, A: 1}

	menuBarStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#a9b1d6")).Background(lipgloss.Color("#1f2335"))
	menuHeaderFocused    = lipgloss.NewStyle().Foreground(lipgloss.Color("#1a1b26")).Background(lipgloss.Color("#7aa2f7")).Bold(true)
	menuItemStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#c0caf5"))
	menuItemFocusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#c0caf5")).Background(lipgloss.Color("#283457"))
	shortcutStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
	dropdownStyle        = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#3b4261")).Background(lipgloss.Color("#1f2335"))
	popupStyle           = lipgloss.NewStyle().Padding(0, 1).BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#7aa2f7"))
	popupTitleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7aa2f7"))
	linkStyle            = lipgloss.NewStyle().Foreground(lipgloss.Color("#7dcfff")).Underline(true)
	linkFocusedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#1a1b26")).Background(lipgloss.Color("#7dcfff"))
	bulletStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
	buttonStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("#a9b1d6"))
	buttonFocusedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#1a1b26")).Background(lipgloss.Color("#f7768e"))
	separatorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#3b4261"))
	tabStyle             = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#565f89"))
	tabActiveStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#c0caf5")).Bold(true).Underline(true)
	tabFocusedStyle      = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#1a1b26")).Background(lipgloss.Color("#7aa2f7"))
	tableBorderColor     = lipgloss.Color("#3b4261")
	tableHeaderStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7aa2f7")).Padding(0, 1)
	tableCellStyle       = lipgloss.NewStyle().Padding(0, 1)
	tableCellAltStyle    = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#a9b1d6"))
)

// PushStyleColor overrides col until the matching PopStyleColor.
func (c *Context) PushStyleColor(col Col, color RGBA) {
	c.styles = append(c.styles, styleEntry{col: col, color: color.over(windowBg)})
}

// PopStyleColor removes the last n pushed colors.
func (c *Context) PopStyleColor(n int) {
	if n > len(c.styles) {
		n = len(c.styles)
	}
	c.styles = c.styles[:len(c.styles)-n]
}

// StyleDepth returns how many colors are currently pushed.
func (c *Context) StyleDepth() int {
	return len(c.styles)
}

func (c *Context) applyStyle(text string) string {
	if len(c.styles) == 0 || text == "" {
		return text
	}
	style := lipgloss.NewStyle()
	for _, entry := range c.styles {
		switch entry.col {
		case ColText:
			style = style.Foreground(entry.color)
		case ColChildBg:
			style = style.Background(entry.color)
		}
	}
	return style.Render(text)
}

// over blends the color onto bg and returns an opaque terminal color.
func (rgba RGBA) over(bg RGBA) lipgloss.Color {
	blend := func(fg, back float32) uint8 {
		v := rgba.A*fg + (1-rgba.A)*back
		return uint8(clamp(int(v*255+0.5), 0, 255))
	}
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", blend(rgba.R, bg.R), blend(rgba.G, bg.G), blend(rgba.B, bg.B)))
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
