package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dhruv5290/stay/internal/config"
)

func TestApplyThemeConfig(t *testing.T) {
	tests := []struct {
		name      string
		cfgTheme  string
		flagTheme string
		want      string
		wantErr   bool
	}{
		{name: "defaults to dusk", want: "dusk"},
		{name: "config theme", cfgTheme: "harbor", want: "harbor"},
		{name: "flag wins over config", cfgTheme: "harbor", flagTheme: "daylight", want: "daylight"},
		{name: "case folded", flagTheme: " Linen ", want: "linen"},
		{name: "unknown theme errors", flagTheme: "neon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Theme = tt.cfgTheme
			err := applyThemeConfig(cfg, tt.flagTheme)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Theme)
		})
	}
}

func TestApplyContentConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listing.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: Test\n"), 0o600))

	cfg := config.DefaultConfig()
	require.NoError(t, applyContentConfig(cfg, path))
	assert.Equal(t, path, cfg.ContentFile)

	cfg = config.DefaultConfig()
	require.NoError(t, applyContentConfig(cfg, ""))
	assert.Empty(t, cfg.ContentFile)

	cfg = config.DefaultConfig()
	err := applyContentConfig(cfg, filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestGlobalFlagsHaveUniqueNames(t *testing.T) {
	seen := map[string]bool{}
	for _, f := range globalFlags() {
		for _, name := range f.Names() {
			assert.False(t, seen[name], "duplicate flag name %q", name)
			seen[name] = true
		}
	}
}
