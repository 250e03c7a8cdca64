package imui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

func (c *Context) compose() string {
	lines := append([]string{c.renderMenuBar()}, c.base.body()...)
	screen := strings.Join(lines, "\n")

	for _, w := range c.drawn {
		box := c.renderPopup(w)
		if box == "" {
			continue
		}
		boxW, boxH := blockSize(box)
		x := max((c.width-boxW)/2, 0)
		y := max((c.height-boxH)/2, 1)
		screen = overlayAt(screen, box, x, y, c.width, c.height)
	}

	if dropdown := c.renderDropdown(); dropdown != "" {
		screen = overlayAt(screen, dropdown, c.dropdown.x, 1, c.width, c.height)
	}
	return screen
}

// overlayAt composites overlay on top of base with its top-left corner at
// cell (x, y).
func overlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")
	overlayWidth, _ := blockSize(overlay)
	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		target := padRight(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}

		overlayLine := padRight(line, overlayWidth)
		right := ansi.TruncateLeft(target, x+ansi.StringWidth(overlayLine), "")
		baseLines[row] = ansi.Truncate(left+overlayLine+right, width, "")
	}
	return strings.Join(baseLines, "\n")
}

func blockSize(s string) (int, int) {
	lines := strings.Split(s, "\n")
	width := 0
	for _, line := range lines {
		width = max(width, ansi.StringWidth(line))
	}
	return width, len(lines)
}

func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
