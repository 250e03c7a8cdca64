package ui

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"github.com/kyaoi/hexhelp/internal/imui"
	"github.com/kyaoi/hexhelp/internal/view"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7aa2f7"))
	openStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a"))
	closedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6b6b"))
)

// Model implements the Bubble Tea program hosting the views. Every
// message is one frame.
type Model struct {
	ctx      *imui.Context
	deferred *view.Deferred
	views    []view.Drawer
	lang     Translator
	help     help.Model
	err      error
	quitting bool

	configPath       string
	onConfigChange   func() error
	watcher          *fsnotify.Watcher
	watchDir         string
	watchedFile      string
	watchChan        chan tea.Msg
	initialWatchPath string
}

type fileEventMsg struct {
	path string
	op   fsnotify.Op
}

type fileWatchErrMsg struct {
	err error
}

// frameMsg asks for another frame without any input.
type frameMsg struct{}

// settled captures the state a follow-up frame may still change.
type settled struct {
	popup bool
	open  []bool
}

// NewModel constructs the host model with the provided initial state.
func NewModel(state State) *Model {
	ctx := state.Context
	if ctx == nil {
		ctx = imui.New()
	}
	deferred := state.Deferred
	if deferred == nil {
		deferred = &view.Deferred{}
	}
	m := &Model{
		ctx:              ctx,
		deferred:         deferred,
		views:            state.Views,
		lang:             state.Lang,
		help:             help.New(),
		configPath:       state.ConfigPath,
		onConfigChange:   state.OnConfigChange,
		initialWatchPath: state.ConfigPath,
	}
	m.frame(nil)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.initialWatchPath != "" {
		path := m.initialWatchPath
		m.initialWatchPath = ""
		cmds = append(cmds, m.startWatching(path))
	}
	if m.deferred.Len() > 0 {
		cmds = append(cmds, nextFrame)
	}
	return tea.Batch(cmds...)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return m.ctx.Screen()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case fileEventMsg:
		cmd = m.handleFileEvent(msg)
	case fileWatchErrMsg:
		m.err = msg.err
		cmd = m.waitForFileEvent()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m.quit()
		case "q":
			if !m.ctx.AnyPopupOpen() && !m.ctx.MenuOpen() && m.deferred.Len() == 0 {
				return m.quit()
			}
		}
	}

	before := m.settledState()
	m.frame(msg)
	if m.deferred.Len() > 0 || !m.settledState().equal(before) {
		cmd = tea.Batch(cmd, nextFrame)
	}
	return m, cmd
}

func nextFrame() tea.Msg {
	return frameMsg{}
}

func (m *Model) settledState() settled {
	s := settled{popup: m.ctx.AnyPopupOpen(), open: make([]bool, len(m.views))}
	for i, v := range m.views {
		s.open[i] = *v.WindowOpenState()
	}
	return s
}

func (s settled) equal(other settled) bool {
	return s.popup == other.popup && slices.Equal(s.open, other.open)
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.closeWatcher()
	return m, tea.Quit
}

// frame runs one pass over every view: deferred work first, then the menu
// bar, the host's own screen, and each view's content.
func (m *Model) frame(msg tea.Msg) {
	m.ctx.BeginFrame(msg)
	m.deferred.Drain()

	if m.ctx.BeginMainMenuBar() {
		for _, v := range m.views {
			v.DrawMenu()
		}
		m.ctx.EndMainMenuBar()
	}

	m.drawBase()

	for _, v := range m.views {
		v.DrawContent()
	}
	m.ctx.EndFrame()
}

func (m *Model) drawBase() {
	m.ctx.NewLine()
	m.ctx.Text(titleStyle.Render("hexhelp"))
	m.ctx.NewLine()
	for _, v := range m.views {
		state := closedStyle.Render("closed")
		if *v.WindowOpenState() {
			state = openStyle.Render("open")
		}
		m.ctx.Text(fmt.Sprintf("  %-24s %s", m.translate(v.Name()), state))
	}
	m.ctx.NewLine()
	if m.err != nil {
		m.ctx.Text(errStyle.Render(m.err.Error()))
	}
	m.ctx.Text(m.help.ShortHelpView(m.ctx.Keys().ShortHelp()))
}

func (m *Model) translate(key string) string {
	if m.lang == nil {
		return key
	}
	return m.lang.Get(key)
}

func (m *Model) startWatching(path string) tea.Cmd {
	if path == "" {
		return nil
	}
	path = filepath.Clean(path)
	if err := m.ensureWatcher(); err != nil {
		m.err = err
		return nil
	}

	dir := filepath.Dir(path)
	if dir != m.watchDir {
		if m.watchDir != "" {
			_ = m.watcher.Remove(m.watchDir)
		}
		if err := m.watcher.Add(dir); err != nil {
			m.err = err
			return nil
		}
		m.watchDir = dir
	}

	m.watchedFile = path
	return m.waitForFileEvent()
}

func (m *Model) ensureWatcher() error {
	if m.watcher != nil {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	m.watcher = watcher
	m.watchChan = make(chan tea.Msg, 10)

	go m.watchLoop(watcher, m.watchChan)
	return nil
}

func (m *Model) closeWatcher() {
	if m.watcher != nil {
		_ = m.watcher.Close()
	}
}

func (m *Model) watchLoop(watcher *fsnotify.Watcher, out chan<- tea.Msg) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			out <- fileEventMsg{path: event.Name, op: event.Op}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			out <- fileWatchErrMsg{err: err}
		}
	}
}

func (m *Model) waitForFileEvent() tea.Cmd {
	if m.watchChan == nil {
		return nil
	}
	ch := m.watchChan
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

func (m *Model) handleFileEvent(msg fileEventMsg) tea.Cmd {
	if m.watchedFile == "" {
		return m.waitForFileEvent()
	}

	if filepath.Clean(msg.path) != filepath.Clean(m.watchedFile) {
		return m.waitForFileEvent()
	}

	m.reloadConfig()
	return m.waitForFileEvent()
}

func (m *Model) reloadConfig() {
	if m.onConfigChange == nil {
		return
	}
	if err := m.onConfigChange(); err != nil {
		m.err = fmt.Errorf("reload %s: %w", filepath.Base(m.watchedFile), err)
		return
	}
	m.err = nil
}
