package ui

import (
	"github.com/kyaoi/hexhelp/internal/imui"
	"github.com/kyaoi/hexhelp/internal/view"
)

// Translator resolves localization keys.
type Translator interface {
	Get(key string) string
}

// State contains the data required to bootstrap the Bubble Tea model.
type State struct {
	Context  *imui.Context
	Deferred *view.Deferred
	Views    []view.Drawer
	Lang     Translator

	// ConfigPath is watched for changes; OnConfigChange is called after
	// each write to it.
	ConfigPath     string
	OnConfigChange func() error
}
