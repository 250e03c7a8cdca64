package help

import (
	"github.com/kyaoi/hexhelp/internal/imui"
	"github.com/kyaoi/hexhelp/internal/paths"
)

// fakeUI records what the view draws and answers interactions from its
// clicks set, one frame at a time.
type fakeUI struct {
	calls []string

	menuOpen    bool
	clicks      map[string]bool
	keys        map[imui.Key]bool
	selectedTab string

	popups  map[string]bool
	popup   string
	open    *bool
	closing bool

	texts      []string
	links      []string
	styleDepth int
	panicOn    string

	inTable bool
	rows    [][][]string
	col     int
}

func newFakeUI() *fakeUI {
	return &fakeUI{
		clicks:      make(map[string]bool),
		keys:        make(map[imui.Key]bool),
		popups:      make(map[string]bool),
		selectedTab: "ImHex",
	}
}

// nextFrame clears per-frame input and output.
func (f *fakeUI) nextFrame() {
	f.calls = nil
	f.clicks = make(map[string]bool)
	f.keys = make(map[imui.Key]bool)
	f.texts = nil
	f.links = nil
	f.rows = nil
}

func (f *fakeUI) record(call string) { f.calls = append(f.calls, call) }

func (f *fakeUI) count(call string) int {
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeUI) BeginMenu(label string) bool {
	f.record("BeginMenu")
	return f.menuOpen
}

func (f *fakeUI) MenuItem(label, shortcut string) bool {
	f.record("MenuItem")
	return f.clicks[label]
}

func (f *fakeUI) EndMenu() { f.record("EndMenu") }

func (f *fakeUI) OpenPopup(name string) {
	f.record("OpenPopup")
	f.popups[name] = true
}

func (f *fakeUI) SetNextWindowSize(width, height int) { f.record("SetNextWindowSize") }

func (f *fakeUI) BeginPopupModal(name string, open *bool) bool {
	f.record("BeginPopupModal")
	if !f.popups[name] {
		return false
	}
	if open != nil && !*open {
		delete(f.popups, name)
		return false
	}
	f.popup, f.open, f.closing = name, open, false
	return true
}

func (f *fakeUI) CloseCurrentPopup() {
	f.record("CloseCurrentPopup")
	f.closing = true
}

func (f *fakeUI) EndPopup() {
	f.record("EndPopup")
	if f.closing {
		if f.open != nil {
			*f.open = false
		}
		delete(f.popups, f.popup)
	}
}

func (f *fakeUI) IsKeyPressed(k imui.Key) bool { return f.keys[k] }

func (f *fakeUI) BeginTabBar(id string) bool {
	f.record("BeginTabBar")
	return true
}

func (f *fakeUI) BeginTabItem(label string) bool {
	f.record("BeginTabItem")
	return label == f.selectedTab
}

func (f *fakeUI) EndTabItem() { f.record("EndTabItem") }
func (f *fakeUI) EndTabBar()  { f.record("EndTabBar") }

func (f *fakeUI) Text(text string) {
	if f.inTable && len(f.rows) > 0 {
		row := f.rows[len(f.rows)-1]
		row[f.col] = append(row[f.col], text)
		return
	}
	f.texts = append(f.texts, text)
}

func (f *fakeUI) Markdown(text string) { f.texts = append(f.texts, text) }

func (f *fakeUI) Hyperlink(label string) bool {
	f.record("Hyperlink")
	f.links = append(f.links, label)
	return f.clicks[label]
}

func (f *fakeUI) BulletHyperlink(label string) bool {
	if f.panicOn != "" && label == f.panicOn {
		panic("draw interrupted")
	}
	f.record("BulletHyperlink")
	f.links = append(f.links, label)
	return f.clicks[label]
}

func (f *fakeUI) SameLine()  {}
func (f *fakeUI) NewLine()   {}
func (f *fakeUI) Separator() {}

func (f *fakeUI) PushStyleColor(col imui.Col, color imui.RGBA) {
	f.record("PushStyleColor")
	f.styleDepth++
}

func (f *fakeUI) PopStyleColor(n int) {
	f.record("PopStyleColor")
	f.styleDepth -= n
}

func (f *fakeUI) BeginTable(id string, columns int, flags imui.TableFlags) bool {
	f.record("BeginTable")
	f.inTable = true
	return true
}

func (f *fakeUI) TableSetupScrollFreeze(columns, rows int) {}
func (f *fakeUI) TableSetupColumn(label string)            {}
func (f *fakeUI) TableHeadersRow()                         {}

func (f *fakeUI) TableNextRow() {
	f.rows = append(f.rows, make([][]string, 2))
	f.col = -1
}

func (f *fakeUI) TableNextColumn() bool {
	f.col++
	return true
}

func (f *fakeUI) EndTable() {
	f.record("EndTable")
	f.inTable = false
}

type fakeLang struct{}

func (fakeLang) Get(key string) string {
	switch key {
	case "hex.menu.help":
		return "Help"
	case "hex.builtin.view.help.about.name":
		return "About"
	case "hex.builtin.view.help.documentation":
		return "Documentation"
	case "hex.builtin.view.help.about.contributor":
		return "Contributors"
	case "hex.builtin.view.help.about.libs":
		return "Libraries"
	case "hex.builtin.view.help.about.paths":
		return "Paths"
	}
	return key
}

type fakePaths map[paths.Category][]string

func (f fakePaths) Paths(category paths.Category) []string { return f[category] }

type fakeOpener struct {
	urls []string
}

func (o *fakeOpener) Open(url string) { o.urls = append(o.urls, url) }
