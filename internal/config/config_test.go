package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	require.Equal(t, 1.0, cfg.UI.Scale)
	require.Equal(t, "en-US", cfg.UI.Language)
	require.Empty(t, cfg.Paths)
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := []byte(`
[ui]
scale = 1.5
language = "de-DE"

[paths]
plugins = ["/opt/plugins", "/srv/plugins"]
yara = []
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1.5, cfg.UI.Scale)
	require.Equal(t, "de-DE", cfg.UI.Language)
	require.Equal(t, []string{"/opt/plugins", "/srv/plugins"}, cfg.Paths["plugins"])
}

func TestLoadClampsScale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\nscale = 10\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, maxScale, cfg.UI.Scale)
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui\nscale ="), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestWriteDefaultRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	require.NoError(t, WriteDefault(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1.0, cfg.UI.Scale)
	require.Equal(t, "en-US", cfg.UI.Language)

	require.NoError(t, os.WriteFile(path, []byte("[ui]\nscale = 2.0\n"), 0o644))
	require.NoError(t, WriteDefault(path))
	cfg, err = Load(path)
	require.NoError(t, err)
	require.Equal(t, 2.0, cfg.UI.Scale)
}

func TestPathHonoursEnv(t *testing.T) {
	t.Setenv("HEXHELP_CONFIG", "/tmp/custom.toml")
	p, err := Path()
	require.NoError(t, err)
	require.Equal(t, "/tmp/custom.toml", p)
}
