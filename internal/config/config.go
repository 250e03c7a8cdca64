package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI    UIConfig
	Paths map[string][]string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Scale    float64
	Language string
}

const (
	envPrefix    = "HEXHELP"
	minScale     = 0.5
	maxScale     = 3.0
	defaultScale = 1.0
)

// Path returns the location of the config file: $HEXHELP_CONFIG when set,
// otherwise config.toml in the user config directory.
func Path() (string, error) {
	if p := os.Getenv(envPrefix + "_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "hexhelp", "config.toml"), nil
}

// Load reads configuration from path and the environment. A missing file
// yields the defaults. Env var overrides use prefix HEXHELP_.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.scale", defaultScale)
	v.SetDefault("ui.language", "en-US")
	v.SetDefault("paths", map[string][]string{})

	v.SetConfigType("toml")
	v.SetConfigFile(path)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.UI.Scale = clampScale(c.UI.Scale)
	return c, nil
}

// WriteDefault creates path with the default settings unless it exists.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	defaults := struct {
		UI struct {
			Scale    float64 `toml:"scale"`
			Language string  `toml:"language"`
		} `toml:"ui"`
		Paths map[string][]string `toml:"paths"`
	}{}
	defaults.UI.Scale = defaultScale
	defaults.UI.Language = "en-US"
	defaults.Paths = map[string][]string{}

	var buf bytes.Buffer
	buf.WriteString("# hexhelp configuration\n")
	buf.WriteString("# Extra directories per category go into [paths], e.g. plugins = [\"/opt/plugins\"]\n\n")
	if err := toml.NewEncoder(&buf).Encode(defaults); err != nil {
		return fmt.Errorf("encode default config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func clampScale(scale float64) float64 {
	switch {
	case scale <= 0:
		return defaultScale
	case scale < minScale:
		return minScale
	case scale > maxScale:
		return maxScale
	default:
		return scale
	}
}
