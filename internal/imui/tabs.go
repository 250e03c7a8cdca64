package imui

import "strings"

type tabBarState struct {
	selected ID
	tabs     []ID
}

type tabBar struct {
	id       ID
	state    *tabBarState
	selected ID
	tabs     []ID
	headers  []string
	focused  []bool
	line     int
	win      *window
	parent   *tabBar
}

// BeginTabBar starts a tab bar. Tabs are submitted with BeginTabItem and
// the bar is finished with EndTabBar.
func (c *Context) BeginTabBar(id string) bool {
	if c.current == nil {
		return false
	}
	_, key := splitLabel(id)
	barID := ID(c.current.layer + "/" + key)
	state, ok := c.tabBars[barID]
	if !ok {
		state = &tabBarState{}
		c.tabBars[barID] = state
	}

	if c.current.layer == c.activeLayer() && len(state.tabs) > 0 {
		switch {
		case c.IsKeyPressed(KeyLeft):
			state.selected = state.tabs[(indexOf(state.tabs, state.selected)-1+len(state.tabs))%len(state.tabs)]
		case c.IsKeyPressed(KeyRight):
			state.selected = state.tabs[(indexOf(state.tabs, state.selected)+1)%len(state.tabs)]
		}
	}

	c.sameLine = false
	c.current.add("", false)
	c.curTabs = &tabBar{
		id:       barID,
		state:    state,
		selected: state.selected,
		line:     len(c.current.lines) - 1,
		win:      c.current,
		parent:   c.curTabs,
	}
	return true
}

// BeginTabItem submits a tab and reports whether it is the selected one.
// EndTabItem must only be called when it returns true.
func (c *Context) BeginTabItem(label string) bool {
	bar := c.curTabs
	if bar == nil {
		return false
	}
	display, key := splitLabel(label)
	id := ID(string(bar.id) + "/" + key)

	focused, activated := false, false
	if bar.win.layer == c.activeLayer() {
		c.ring = append(c.ring, id)
		focused, activated = id == c.focused, id == c.activate
	}
	if activated {
		bar.state.selected = id
	}
	if bar.state.selected == "" {
		bar.state.selected = id
	}

	bar.tabs = append(bar.tabs, id)
	bar.headers = append(bar.headers, display)
	bar.focused = append(bar.focused, focused)
	bar.selected = bar.state.selected
	return bar.selected == id
}

// EndTabItem finishes the selected tab's content.
func (c *Context) EndTabItem() {
	c.sameLine = false
}

// EndTabBar draws the tab headers and finishes the bar.
func (c *Context) EndTabBar() {
	bar := c.curTabs
	if bar == nil {
		return
	}
	if indexOf(bar.tabs, bar.state.selected) < 0 && len(bar.tabs) > 0 {
		bar.state.selected = bar.tabs[0]
	}
	bar.state.tabs = bar.tabs

	headers := make([]string, len(bar.headers))
	for i, header := range bar.headers {
		switch {
		case bar.focused[i]:
			headers[i] = tabFocusedStyle.Render(header)
		case bar.tabs[i] == bar.state.selected:
			headers[i] = tabActiveStyle.Render(header)
		default:
			headers[i] = tabStyle.Render(header)
		}
	}
	bar.win.lines[bar.line] = strings.Join(headers, separatorStyle.Render("│"))
	c.curTabs = bar.parent
	c.sameLine = false
}

// SelectedTab returns the label identity of the selected tab of the bar
// named id inside the popup or window layer.
func (c *Context) SelectedTab(layer, id string) string {
	_, key := splitLabel(id)
	state, ok := c.tabBars[ID(layer+"/"+key)]
	if !ok {
		return ""
	}
	return strings.TrimPrefix(string(state.selected), layer+"/"+key+"/")
}

func indexOf(ids []ID, id ID) int {
	for i, other := range ids {
		if other == id {
			return i
		}
	}
	return -1
}
