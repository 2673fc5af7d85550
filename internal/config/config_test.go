package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "freq", cfg.Compare.Format)
	assert.Equal(t, 3, cfg.Compare.MaxLengthDelta)
	assert.Equal(t, 1, cfg.Compare.ShortThreshold)
	assert.Equal(t, 2, cfg.Compare.LongThreshold)
	assert.Equal(t, 8, cfg.Compare.LongFormLength)
	assert.True(t, cfg.Compare.ShowFrequencies)
	assert.False(t, cfg.Compare.MergeLinked)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lemmerge.toml")
	content := `
[compare]
format = "plain"
long_threshold = 3
show_frequencies = false
workers = 4

[cache]
dir = "/tmp/lemmerge-cache"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "plain", cfg.Compare.Format)
	assert.Equal(t, 3, cfg.Compare.LongThreshold)
	assert.False(t, cfg.Compare.ShowFrequencies)
	assert.Equal(t, 4, cfg.Compare.Workers)
	assert.Equal(t, "/tmp/lemmerge-cache", cfg.Cache.Dir)
	// Untouched keys keep their defaults.
	assert.Equal(t, 3, cfg.Compare.MaxLengthDelta)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lemmerge.toml")
	require.NoError(t, os.WriteFile(path, []byte("[compare]\nformat = \"xml\"\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown input format")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"negative gate", func(c *Config) { c.Compare.MaxLengthDelta = -1 }, false},
		{"negative threshold", func(c *Config) { c.Compare.ShortThreshold = -1 }, false},
		{"zero long form length", func(c *Config) { c.Compare.LongFormLength = 0 }, false},
		{"negative workers", func(c *Config) { c.Compare.Workers = -2 }, false},
		{"auto workers", func(c *Config) { c.Compare.Workers = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
