package app

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyaoi/hexhelp/internal/ui"
)

// Options are the command line settings.
type Options struct {
	ConfigPath string
	OpenAbout  bool
	LogPath    string
}

// ParseArgs reads the command line. Only --about and --config=<path> are
// understood.
func ParseArgs(args []string) (Options, error) {
	var opts Options
	for _, arg := range args {
		if arg == "--about" {
			opts.OpenAbout = true
			continue
		}
		if path, ok := strings.CutPrefix(arg, "--config="); ok && path != "" {
			opts.ConfigPath = path
			continue
		}
		return Options{}, fmt.Errorf("unknown argument %q", arg)
	}
	opts.LogPath = os.Getenv("HEXHELP_LOG")
	return opts, nil
}

// Run executes the Bubble Tea program hosting the help view.
func Run(opts Options) error {
	// The alt screen owns the terminal until Run returns.
	defer log.SetOutput(os.Stderr)
	if opts.LogPath != "" {
		f, err := tea.LogToFile(opts.LogPath, "hexhelp")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	state, err := LoadInitialState(opts)
	if err != nil {
		return err
	}
	return runProgram(state)
}

func runProgram(state ui.State) error {
	program := tea.NewProgram(ui.NewModel(state), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
