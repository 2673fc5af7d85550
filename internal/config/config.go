// Package config holds the runtime configuration: defaults, a TOML file
// loader, and validation. CLI flags override file values in the command
// layer.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the root configuration.
type Config struct {
	Compare Compare `toml:"compare"`
	Cache   Cache   `toml:"cache"`
}

// Compare tunes the clustering sweep and the output format.
type Compare struct {
	// Format is the input parsing mode: "freq" or "plain".
	Format string `toml:"format"`
	// MaxLengthDelta is the pairwise length gate in runes.
	MaxLengthDelta int `toml:"max_length_delta"`
	// ShortThreshold and LongThreshold are the maximum accepted edit
	// distances below and at/above LongFormLength runes.
	ShortThreshold int `toml:"short_threshold"`
	LongThreshold  int `toml:"long_threshold"`
	LongFormLength int `toml:"long_form_length"`
	// ShowFrequencies appends corpus frequencies to output labels.
	ShowFrequencies bool `toml:"show_frequencies"`
	// MergeLinked enables the transitive candidate merge. Off by default:
	// weak links can chain unrelated lemmas.
	MergeLinked bool `toml:"merge_linked"`
	// Workers sets sweep parallelism; 0 means auto-detect.
	Workers int `toml:"workers"`
	// Quiet suppresses the progress bar and the comparison banner.
	Quiet bool `toml:"quiet"`
}

// Cache configures reuse of clustering results across runs.
type Cache struct {
	// Dir is where fingerprint-keyed result files live. Empty disables the
	// cache.
	Dir string `toml:"dir"`
}

// DefaultPath is where Load looks when no --config flag is given.
const DefaultPath = ".lemmerge.toml"

// Default returns the configuration tuned for Oracc lemma lists.
func Default() *Config {
	return &Config{
		Compare: Compare{
			Format:          "freq",
			MaxLengthDelta:  3,
			ShortThreshold:  1,
			LongThreshold:   2,
			LongFormLength:  8,
			ShowFrequencies: true,
		},
	}
}

// Load reads a TOML config file on top of the defaults. A missing file is
// not an error: the defaults apply unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the sweep cannot run with.
func (c *Config) Validate() error {
	cmp := c.Compare
	if cmp.Format != "freq" && cmp.Format != "plain" {
		return fmt.Errorf("unknown input format %q (want freq or plain)", cmp.Format)
	}
	if cmp.MaxLengthDelta < 0 {
		return fmt.Errorf("max_length_delta must be >= 0, got %d", cmp.MaxLengthDelta)
	}
	if cmp.ShortThreshold < 0 || cmp.LongThreshold < 0 {
		return fmt.Errorf("thresholds must be >= 0, got %d/%d", cmp.ShortThreshold, cmp.LongThreshold)
	}
	if cmp.LongFormLength < 1 {
		return fmt.Errorf("long_form_length must be >= 1, got %d", cmp.LongFormLength)
	}
	if cmp.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", cmp.Workers)
	}
	return nil
}
