// Package help implements the Help menu and the About popup.
package help

import (
	"fmt"

	"github.com/kyaoi/hexhelp/internal/buildinfo"
	"github.com/kyaoi/hexhelp/internal/imui"
	"github.com/kyaoi/hexhelp/internal/paths"
	"github.com/kyaoi/hexhelp/internal/view"
)

const (
	nameKey = "hex.builtin.view.help.about.name"

	aboutWidth  = 75
	aboutHeight = 22
)

// UI is the part of the widget toolkit the view draws with.
type UI interface {
	BeginMenu(label string) bool
	MenuItem(label, shortcut string) bool
	EndMenu()

	OpenPopup(name string)
	SetNextWindowSize(width, height int)
	BeginPopupModal(name string, open *bool) bool
	CloseCurrentPopup()
	EndPopup()
	IsKeyPressed(k imui.Key) bool

	BeginTabBar(id string) bool
	BeginTabItem(label string) bool
	EndTabItem()
	EndTabBar()

	Text(text string)
	Markdown(text string)
	Hyperlink(label string) bool
	BulletHyperlink(label string) bool
	SameLine()
	NewLine()
	Separator()

	PushStyleColor(col imui.Col, color imui.RGBA)
	PopStyleColor(n int)

	BeginTable(id string, columns int, flags imui.TableFlags) bool
	TableSetupScrollFreeze(columns, rows int)
	TableSetupColumn(label string)
	TableHeadersRow()
	TableNextRow()
	TableNextColumn() bool
	EndTable()
}

// Translator resolves localization keys.
type Translator interface {
	Get(key string) string
}

// PathResolver lists the directories configured for a category.
type PathResolver interface {
	Paths(category paths.Category) []string
}

// Opener opens a web page in the user's browser.
type Opener interface {
	Open(url string)
}

// Options wires the view to its collaborators.
type Options struct {
	UI       UI
	Lang     Translator
	Paths    PathResolver
	Browser  Opener
	Build    buildinfo.Info
	Deferred *view.Deferred
	// Scale returns the current UI scale. Nil means 1.
	Scale func() float64
}

// View is the Help menu together with the About popup.
type View struct {
	view.View

	ui       UI
	lang     Translator
	paths    PathResolver
	browser  Opener
	build    buildinfo.Info
	deferred *view.Deferred
	scale    func() float64

	aboutOpen bool
}

// New creates the help view.
func New(opts Options) *View {
	scale := opts.Scale
	if scale == nil {
		scale = func() float64 { return 1 }
	}
	deferred := opts.Deferred
	if deferred == nil {
		deferred = &view.Deferred{}
	}
	return &View{
		View:     view.New(nameKey),
		ui:       opts.UI,
		lang:     opts.Lang,
		paths:    opts.Paths,
		browser:  opts.Browser,
		build:    opts.Build,
		deferred: deferred,
		scale:    scale,
	}
}

// AboutOpen reports whether the About popup is requested.
func (v *View) AboutOpen() bool {
	return v.aboutOpen
}

// Open requests the About popup from outside the menu.
func (v *View) Open() {
	windowName := v.windowName()
	v.deferred.Later(func() { v.ui.OpenPopup(windowName) })
	v.aboutOpen = true
	*v.WindowOpenState() = true
}

// DrawMenu draws the Help menu.
func (v *View) DrawMenu() {
	if !v.ui.BeginMenu(v.lang.Get("hex.menu.help")) {
		return
	}
	if v.ui.MenuItem(v.lang.Get(nameKey), "") {
		// Opening a modal while the menu still owns this frame's input
		// breaks focus, so the popup opens on the next frame.
		v.Open()
	}
	if v.ui.MenuItem(v.lang.Get("hex.builtin.view.help.documentation"), "") {
		v.browser.Open(documentationURL)
	}
	v.ui.EndMenu()
}

// DrawContent draws the About popup while it is open.
func (v *View) DrawContent() {
	if !v.aboutOpen {
		*v.WindowOpenState() = false
		return
	}
	v.drawAboutPopup()
}

func (v *View) windowName() string {
	return view.WindowName(v.lang.Get(nameKey), nameKey)
}

func (v *View) drawAboutPopup() {
	scale := v.scale()
	v.ui.SetNextWindowSize(int(aboutWidth*scale), int(aboutHeight*scale))
	if !v.ui.BeginPopupModal(v.windowName(), &v.aboutOpen) {
		return
	}

	if v.ui.IsKeyPressed(imui.KeyEscape) {
		v.ui.CloseCurrentPopup()
	}

	if v.ui.BeginTabBar("about_tab_bar") {
		tabs := []struct {
			label string
			draw  func()
		}{
			{"ImHex", v.drawMainPage},
			{v.lang.Get("hex.builtin.view.help.about.contributor"), v.drawContributorPage},
			{v.lang.Get("hex.builtin.view.help.about.libs"), v.drawLibraryCreditsPage},
			{v.lang.Get("hex.builtin.view.help.about.paths"), v.drawPathsPage},
		}
		for _, tab := range tabs {
			if v.ui.BeginTabItem(tab.label) {
				v.ui.NewLine()
				tab.draw()
				v.ui.EndTabItem()
			}
		}
		v.ui.EndTabBar()
	}

	v.ui.EndPopup()
}

func (v *View) link(l Link) {
	if v.ui.BulletHyperlink(l.Label) {
		v.browser.Open(l.URL)
	}
}

func (v *View) drawMainPage() {
	v.ui.Text(fmt.Sprintf("ImHex Hex Editor v%s by WerWolv - %s", v.build.Version, branchIcon))
	if v.build.HasCommit() {
		v.ui.SameLine()
		if v.ui.Hyperlink(fmt.Sprintf("%s@%s", v.build.Branch, v.build.Commit)) {
			v.browser.Open(commitURLPrefix + v.build.Commit)
		}
	}

	v.ui.Text(v.lang.Get("hex.builtin.view.help.about.translator"))

	v.ui.Text(v.lang.Get("hex.builtin.view.help.about.source"))
	v.ui.SameLine()
	if v.ui.Hyperlink("WerWolv/ImHex") {
		v.browser.Open(repositoryURL)
	}
	v.ui.NewLine()

	v.ui.Text(v.lang.Get("hex.builtin.view.help.about.donations"))
	v.ui.Separator()
	v.ui.Markdown(v.lang.Get("hex.builtin.view.help.about.thanks"))
	v.ui.NewLine()

	for _, url := range donationLinks {
		if v.ui.Hyperlink(url) {
			v.browser.Open(url)
		}
	}
}

func (v *View) drawContributorPage() {
	for _, c := range contributors {
		v.link(c)
	}
}

func (v *View) drawLibraryCreditsPage() {
	v.ui.PushStyleColor(imui.ColChildBg, imui.RGBA{R: 0.2, G: 0.2, B: 0.2, A: 0.3})
	defer v.ui.PopStyleColor(1)

	for _, l := range libraries {
		v.link(l)
	}
	v.ui.NewLine()
	for _, l := range systemLibraries {
		v.link(l)
	}
}

func (v *View) drawPathsPage() {
	flags := imui.TableScrollY | imui.TableBorders | imui.TableRowBg | imui.TableSizingFixedFit
	if !v.ui.BeginTable("##imhex_paths", 2, flags) {
		return
	}
	v.ui.TableSetupScrollFreeze(0, 1)
	v.ui.TableSetupColumn("Type")
	v.ui.TableSetupColumn("Paths")
	v.ui.TableHeadersRow()

	for _, category := range paths.Categories {
		v.ui.TableNextRow()
		v.ui.TableNextColumn()
		v.ui.Text(category.Label())

		v.ui.TableNextColumn()
		for _, p := range v.paths.Paths(category) {
			v.ui.Text(p)
		}
	}

	v.ui.EndTable()
}
