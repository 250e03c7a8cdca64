package imui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// TableFlags adjust how a table is drawn.
type TableFlags int

const (
	TableScrollY TableFlags = 1 << iota
	TableBorders
	TableRowBg
	TableSizingFixedFit
)

type tableState struct {
	vp viewport.Model
}

type tableFrame struct {
	id        ID
	flags     TableFlags
	columns   int
	freeze    int
	headers   []string
	showHeads bool
	rows      [][]string
	col       int
}

// BeginTable starts a table with the given number of columns. EndTable
// must only be called when it returns true.
func (c *Context) BeginTable(id string, columns int, flags TableFlags) bool {
	if columns <= 0 || c.current == nil {
		return false
	}
	_, key := splitLabel(id)
	tableID := ID(c.current.layer + "/" + key)
	if _, ok := c.tables[tableID]; !ok {
		c.tables[tableID] = &tableState{vp: viewport.New(0, 0)}
	}
	c.sameLine = false
	c.curTable = &tableFrame{id: tableID, flags: flags, columns: columns, col: -1}
	return true
}

// TableSetupScrollFreeze keeps the first rows visible while scrolling.
// Only frozen header rows are supported, frozen columns are ignored.
func (c *Context) TableSetupScrollFreeze(columns, rows int) {
	if t := c.curTable; t != nil {
		t.freeze = rows
	}
}

// TableSetupColumn declares the next column.
func (c *Context) TableSetupColumn(label string) {
	if t := c.curTable; t != nil {
		display, _ := splitLabel(label)
		t.headers = append(t.headers, display)
	}
}

// TableHeadersRow submits the header row built from the declared columns.
func (c *Context) TableHeadersRow() {
	if t := c.curTable; t != nil {
		t.showHeads = true
	}
}

// TableNextRow starts a new body row.
func (c *Context) TableNextRow() {
	if t := c.curTable; t != nil {
		t.rows = append(t.rows, make([]string, t.columns))
		t.col = -1
	}
}

// TableNextColumn moves to the next cell, starting a new row after the
// last column.
func (c *Context) TableNextColumn() bool {
	t := c.curTable
	if t == nil {
		return false
	}
	if len(t.rows) == 0 || t.col+1 >= t.columns {
		c.TableNextRow()
	}
	t.col++
	c.sameLine = false
	return true
}

// TableRowCount returns the number of body rows submitted so far.
func (c *Context) TableRowCount() int {
	if t := c.curTable; t != nil {
		return len(t.rows)
	}
	return 0
}

// EndTable draws the table into the current window.
func (c *Context) EndTable() {
	t := c.curTable
	if t == nil {
		return
	}
	c.curTable = nil
	state := c.tables[t.id]

	width := c.contentWidth()
	tbl := table.New().
		BorderStyle(lipgloss.NewStyle().Foreground(tableBorderColor)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeaderStyle
			case t.flags&TableRowBg != 0 && row%2 == 1:
				return tableCellAltStyle
			default:
				return tableCellStyle
			}
		})
	if t.flags&TableBorders == 0 {
		tbl = tbl.Border(lipgloss.HiddenBorder())
	} else {
		tbl = tbl.Border(lipgloss.NormalBorder()).BorderRow(true)
	}
	if t.flags&TableSizingFixedFit == 0 {
		tbl = tbl.Width(width)
	}
	if t.showHeads {
		tbl = tbl.Headers(t.headers...)
	}
	for _, row := range t.rows {
		tbl = tbl.Row(row...)
	}

	lines := strings.Split(tbl.String(), "\n")
	for i, line := range lines {
		lines[i] = fit(line, width)
	}

	frozen := 0
	if t.showHeads && t.freeze > 0 {
		// top border, header and the separator beneath it
		frozen = min(3, len(lines))
	}
	avail := c.current.remaining()
	if t.flags&TableScrollY == 0 || len(lines) <= avail {
		state.vp.SetYOffset(0)
		c.emitLines(lines)
		return
	}

	head, body := lines[:frozen], lines[frozen:]
	state.vp.Width = width
	state.vp.Height = max(avail-len(head), 1)
	state.vp.SetContent(strings.Join(body, "\n"))
	if c.current.layer == c.activeLayer() {
		switch {
		case c.IsKeyPressed(KeyLineDown):
			state.vp.ScrollDown(1)
		case c.IsKeyPressed(KeyLineUp):
			state.vp.ScrollUp(1)
		case c.IsKeyPressed(KeyPageDown):
			state.vp.HalfPageDown()
		case c.IsKeyPressed(KeyPageUp):
			state.vp.HalfPageUp()
		}
	}
	c.emitLines(append(append([]string(nil), head...), strings.Split(state.vp.View(), "\n")...))
}

// TableScrollOffset returns the vertical scroll offset of the table named
// id inside layer.
func (c *Context) TableScrollOffset(layer, id string) int {
	_, key := splitLabel(id)
	if state, ok := c.tables[ID(layer+"/"+key)]; ok {
		return state.vp.YOffset
	}
	return 0
}

func (c *Context) emitLines(lines []string) {
	c.sameLine = false
	c.current.add(strings.Join(lines, "\n"), false)
}

func (t *tableFrame) inCell() bool {
	return len(t.rows) > 0 && t.col >= 0
}

func (t *tableFrame) add(text string, joined bool) {
	row := t.rows[len(t.rows)-1]
	cell := row[t.col]
	switch {
	case cell == "":
		row[t.col] = text
	case joined:
		row[t.col] = cell + " " + text
	default:
		row[t.col] = cell + "\n" + text
	}
}
