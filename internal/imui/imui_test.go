package imui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyF10   = tea.KeyMsg{Type: tea.KeyF10}
	keyPgDn  = tea.KeyMsg{Type: tea.KeyPgDown}
)

func frame(c *Context, msg tea.Msg, draw func()) {
	c.BeginFrame(msg)
	draw()
	c.EndFrame()
}

func plain(c *Context) string {
	return ansi.Strip(c.Screen())
}

func TestHyperlinkActivatesOnEnter(t *testing.T) {
	c := New()
	clicks := 0
	draw := func() {
		if c.Hyperlink("first") {
			clicks++
		}
		if c.Hyperlink("second") {
			t.Fatal("second link should not activate")
		}
	}

	frame(c, nil, draw)
	require.Equal(t, ID("/first"), c.Focused())
	frame(c, keyEnter, draw)
	require.Equal(t, 1, clicks)
	frame(c, nil, draw)
	require.Equal(t, 1, clicks, "activation must last a single frame")
}

func TestFocusMovesThroughRing(t *testing.T) {
	c := New()
	var hit string
	draw := func() {
		for _, label := range []string{"a", "b", "c"} {
			if c.Hyperlink(label) {
				hit = label
			}
		}
	}
	frame(c, nil, draw)
	frame(c, keyTab, draw)
	frame(c, keyTab, draw)
	frame(c, keyEnter, draw)
	require.Equal(t, "c", hit)
	frame(c, keyTab, draw)
	require.Equal(t, ID("/a"), c.Focused())
}

func TestFocusPassesRepeatedLabels(t *testing.T) {
	c := New()
	var hits []string
	draw := func() {
		for _, label := range []string{"a", "dup", "dup", "b"} {
			if c.Hyperlink(label) {
				hits = append(hits, label)
			}
		}
	}
	frame(c, nil, draw)
	frame(c, keyTab, draw)
	require.Equal(t, ID("/dup"), c.Focused())

	frame(c, keyEnter, draw)
	require.Equal(t, []string{"dup"}, hits, "one press activates one widget")

	frame(c, keyTab, draw)
	require.Equal(t, ID("/b"), c.Focused())
}

func TestMenuOpensAndItemCloses(t *testing.T) {
	c := New()
	chosen := 0
	draw := func() {
		if c.BeginMainMenuBar() {
			if c.BeginMenu("Help") {
				if c.MenuItem("About", "") {
					chosen++
				}
				c.EndMenu()
			}
			c.EndMainMenuBar()
		}
	}

	frame(c, nil, draw)
	require.False(t, c.MenuOpen())
	frame(c, keyF10, draw)
	require.True(t, c.MenuOpen())
	require.Contains(t, plain(c), "About")

	frame(c, nil, draw)
	frame(c, keyEnter, draw)
	require.Equal(t, 1, chosen)
	require.False(t, c.MenuOpen())
}

func TestEscapeClosesMenuWithoutReachingWidgets(t *testing.T) {
	c := New()
	draw := func() {
		if c.BeginMainMenuBar() {
			if c.BeginMenu("Help") {
				c.MenuItem("About", "")
				c.EndMenu()
			}
			c.EndMainMenuBar()
		}
	}
	frame(c, nil, draw)
	frame(c, keyF10, draw)
	require.True(t, c.MenuOpen())

	c.BeginFrame(keyEsc)
	require.False(t, c.IsKeyPressed(KeyEscape))
	draw()
	c.EndFrame()
	require.False(t, c.MenuOpen())
}

func TestPopupFlagBinding(t *testing.T) {
	c := New()
	open := true
	visible := false
	draw := func() {
		visible = false
		if c.BeginPopupModal("About###about", &open) {
			visible = true
			c.Text("body")
			c.EndPopup()
		}
	}

	frame(c, nil, draw)
	require.False(t, visible, "popup not opened yet")

	c.BeginFrame(nil)
	c.OpenPopup("About###about")
	draw()
	c.EndFrame()
	require.True(t, visible)
	require.True(t, c.AnyPopupOpen())
	require.Contains(t, plain(c), "body")
	require.Contains(t, plain(c), "About")

	open = false
	frame(c, nil, draw)
	require.False(t, visible)
	require.False(t, c.IsPopupOpen("about"))
}

func TestCloseCurrentPopupClearsFlag(t *testing.T) {
	c := New()
	open := true
	draw := func() {
		if c.BeginPopupModal("modal", &open) {
			if c.IsKeyPressed(KeyEscape) {
				c.CloseCurrentPopup()
			}
			c.EndPopup()
		}
	}
	c.OpenPopup("modal")
	frame(c, nil, draw)
	require.True(t, open)

	frame(c, keyEsc, draw)
	require.False(t, open)
	require.False(t, c.AnyPopupOpen())
}

func TestCloseButtonClearsFlag(t *testing.T) {
	c := New()
	open := true
	draw := func() {
		if c.BeginPopupModal("modal", &open) {
			c.EndPopup()
		}
	}
	c.OpenPopup("modal")
	frame(c, nil, draw)
	require.Equal(t, ID("modal/[x]##close"), c.Focused())

	frame(c, keyEnter, draw)
	require.False(t, open)
}

func TestModalBlocksBaseWidgets(t *testing.T) {
	c := New()
	open := true
	baseClicks := 0
	draw := func() {
		if c.Hyperlink("base") {
			baseClicks++
		}
		if c.BeginPopupModal("modal", &open) {
			c.Hyperlink("inside")
			c.EndPopup()
		}
	}
	frame(c, nil, draw)
	require.Equal(t, ID("/base"), c.Focused())

	c.OpenPopup("modal")
	frame(c, nil, draw)
	require.Equal(t, ID("modal/inside"), c.Focused())

	frame(c, keyEnter, draw)
	require.Zero(t, baseClicks)
}

func TestTabsSwitchWithArrowsAndOnlySelectedDraws(t *testing.T) {
	c := New()
	var drawn []string
	draw := func() {
		drawn = nil
		if c.BeginTabBar("bar") {
			for _, label := range []string{"One", "Two", "Three"} {
				if c.BeginTabItem(label) {
					drawn = append(drawn, label)
					c.EndTabItem()
				}
			}
			c.EndTabBar()
		}
	}
	frame(c, nil, draw)
	require.Equal(t, []string{"One"}, drawn)
	require.Equal(t, "One", c.SelectedTab("", "bar"))

	frame(c, keyRight, draw)
	require.Equal(t, []string{"Two"}, drawn)

	frame(c, tea.KeyMsg{Type: tea.KeyLeft}, draw)
	frame(c, tea.KeyMsg{Type: tea.KeyLeft}, draw)
	require.Equal(t, []string{"Three"}, drawn)
	require.Contains(t, plain(c), "One")
	require.Contains(t, plain(c), "Three")
}

func TestStyleStackIsResetAtEndOfFrame(t *testing.T) {
	c := New()
	frame(c, nil, func() {
		c.PushStyleColor(ColChildBg, RGBA{0.2, 0.2, 0.2, 0.3})
		require.Equal(t, 1, c.StyleDepth())
	})
	require.Zero(t, c.StyleDepth())

	frame(c, nil, func() {
		c.PushStyleColor(ColChildBg, RGBA{0.2, 0.2, 0.2, 0.3})
		c.PushStyleColor(ColText, RGBA{1, 1, 1, 1})
		c.PopStyleColor(5)
		require.Zero(t, c.StyleDepth())
	})
}

func TestRGBABlend(t *testing.T) {
	require.Equal(t, "#ffffff", string(RGBA{1, 1, 1, 1}.over(RGBA{0, 0, 0, 1})))
	require.Equal(t, "#808080", string(RGBA{1, 1, 1, 0.5}.over(RGBA{0, 0, 0, 1})))
}

func TestTableRowsAndEmptyCells(t *testing.T) {
	c := New()
	c.Resize(60, 40)
	rows := 0
	frame(c, nil, func() {
		if c.BeginTable("##t", 2, TableBorders|TableSizingFixedFit) {
			c.TableSetupColumn("Type")
			c.TableSetupColumn("Paths")
			c.TableHeadersRow()
			for _, row := range [][]string{{"A", "/a1", "/a2"}, {"B"}} {
				c.TableNextRow()
				c.TableNextColumn()
				c.Text(row[0])
				c.TableNextColumn()
				for _, p := range row[1:] {
					c.Text(p)
				}
			}
			rows = c.TableRowCount()
			c.EndTable()
		}
	})
	require.Equal(t, 2, rows)
	out := plain(c)
	for _, want := range []string{"Type", "Paths", "/a1", "/a2", "A", "B"} {
		require.Contains(t, out, want)
	}
}

func TestScrollingTableKeepsHeader(t *testing.T) {
	c := New()
	c.Resize(40, 12)
	draw := func() {
		if c.BeginTable("##t", 1, TableScrollY|TableBorders|TableSizingFixedFit) {
			c.TableSetupScrollFreeze(0, 1)
			c.TableSetupColumn("Header")
			c.TableHeadersRow()
			for i := 0; i < 30; i++ {
				c.TableNextRow()
				c.TableNextColumn()
				c.Text(strings.Repeat("x", i%5+1))
			}
			c.EndTable()
		}
	}
	frame(c, nil, draw)
	require.Zero(t, c.TableScrollOffset("", "##t"))

	frame(c, keyPgDn, draw)
	require.Positive(t, c.TableScrollOffset("", "##t"))
	require.Contains(t, plain(c), "Header")
}

func TestMarkdownRenders(t *testing.T) {
	c := New()
	frame(c, nil, func() {
		c.Markdown("Thanks a lot **<3**")
	})
	require.Contains(t, plain(c), "Thanks")
}

func TestSameLineJoinsItems(t *testing.T) {
	c := New()
	frame(c, nil, func() {
		c.Text("left")
		c.SameLine()
		c.Hyperlink("right")
		c.NewLine()
		c.Separator()
	})
	lines := strings.Split(plain(c), "\n")
	require.Contains(t, lines[1], "left right")
	require.Contains(t, lines[3], "───")
}

func TestSplitLabel(t *testing.T) {
	cases := []struct{ label, display, key string }{
		{"plain", "plain", "plain"},
		{"Shown##hidden", "Shown", "Shown##hidden"},
		{"Über###about", "Über", "about"},
		{"##imhex_paths", "", "##imhex_paths"},
	}
	for _, tc := range cases {
		display, key := splitLabel(tc.label)
		require.Equal(t, tc.display, display, tc.label)
		require.Equal(t, tc.key, key, tc.label)
	}
}
