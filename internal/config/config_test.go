package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.WatchContent)
	assert.False(t, cfg.ReducedMotion)
	assert.Equal(t, 900, cfg.SplashMs)
	assert.Empty(t, cfg.ContentFile)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigReadsValues(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "stay"), 0o750))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "stay", "config.yaml"),
		[]byte("theme: Dusk\ncontent_file: /tmp/listing.yaml\nwatch_content: off\nreduced_motion: yes\nsplash_ms: 250\n"),
		0o600,
	))

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "dusk", cfg.Theme, "theme names normalize to lowercase")
	assert.Equal(t, "/tmp/listing.yaml", cfg.ContentFile)
	assert.False(t, cfg.WatchContent)
	assert.True(t, cfg.ReducedMotion)
	assert.Equal(t, 250, cfg.SplashMs)
}

func TestLoadConfigExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("splash_ms: 0\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.SplashMs)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: [oops"), 0o600))

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg, "broken config still yields usable defaults")
}

func TestCoercions(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"bool true", true, true},
		{"string yes", "yes", true},
		{"string off", "off", false},
		{"int nonzero", 1, true},
		{"garbage keeps default", "maybe", false},
		{"nil keeps default", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, coerceBool(tt.value, false))
		})
	}

	assert.Equal(t, 250, coerceInt("250", 0))
	assert.Equal(t, 7, coerceInt(nil, 7))
	assert.Equal(t, 7, coerceInt("not a number", 7))
}

func TestNegativeSplashClampsToZero(t *testing.T) {
	cfg := parseConfig(map[string]any{"splash_ms": -100})
	assert.Equal(t, 0, cfg.SplashMs)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandPath("~/listing.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "listing.yaml"), got)
}
