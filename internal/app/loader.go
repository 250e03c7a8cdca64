package app

import (
	"log"
	"strings"

	"github.com/kyaoi/hexhelp/internal/browser"
	"github.com/kyaoi/hexhelp/internal/buildinfo"
	"github.com/kyaoi/hexhelp/internal/config"
	"github.com/kyaoi/hexhelp/internal/imui"
	"github.com/kyaoi/hexhelp/internal/lang"
	"github.com/kyaoi/hexhelp/internal/paths"
	"github.com/kyaoi/hexhelp/internal/ui"
	"github.com/kyaoi/hexhelp/internal/view"
	"github.com/kyaoi/hexhelp/internal/view/help"
)

// LoadInitialState reads the configuration and wires the views.
func LoadInitialState(opts Options) (ui.State, error) {
	return loadState(opts, paths.DefaultBases(), browser.New())
}

func loadState(opts Options, bases paths.Bases, opener help.Opener) (ui.State, error) {
	configPath := opts.ConfigPath
	if configPath == "" {
		p, err := config.Path()
		if err != nil {
			return ui.State{}, err
		}
		configPath = p
		if err := config.WriteDefault(configPath); err != nil {
			log.Printf("default config: %v", err)
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return ui.State{}, err
	}

	settings := &liveSettings{
		lang:     loadLanguage(cfg.UI.Language),
		language: cfg.UI.Language,
		scale:    cfg.UI.Scale,
	}
	resolver := paths.NewResolver(bases)
	logUnknownCategories(resolver.SetExtra(cfg.Paths))

	ctx := imui.New()
	deferred := &view.Deferred{}
	about := help.New(help.Options{
		UI:       ctx,
		Lang:     settings,
		Paths:    resolver,
		Browser:  opener,
		Build:    buildinfo.Current(),
		Deferred: deferred,
		Scale:    settings.Scale,
	})
	if opts.OpenAbout {
		about.Open()
	}

	return ui.State{
		Context:    ctx,
		Deferred:   deferred,
		Views:      []view.Drawer{about},
		Lang:       settings,
		ConfigPath: configPath,
		OnConfigChange: func() error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			settings.apply(cfg)
			logUnknownCategories(resolver.SetExtra(cfg.Paths))
			return nil
		},
	}, nil
}

// liveSettings holds the settings a config reload may change while the
// program runs.
type liveSettings struct {
	lang     *lang.Pack
	language string
	scale    float64
}

func (s *liveSettings) Get(key string) string {
	return s.lang.Get(key)
}

func (s *liveSettings) Scale() float64 {
	return s.scale
}

func (s *liveSettings) apply(cfg config.Config) {
	s.scale = cfg.UI.Scale
	if cfg.UI.Language != s.language {
		s.lang = loadLanguage(cfg.UI.Language)
		s.language = cfg.UI.Language
	}
}

func loadLanguage(code string) *lang.Pack {
	pack, err := lang.Load(code)
	if err != nil {
		log.Printf("language %s: %v (available: %s)", code, err, strings.Join(lang.Available(), ", "))
	}
	return pack
}

func logUnknownCategories(keys []string) {
	for _, key := range keys {
		log.Printf("config: unknown path category %q", key)
	}
}
