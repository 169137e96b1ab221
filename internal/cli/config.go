package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds the optional TOML-file defaults for a run. Flags set on the
// command line always override file values.
//
// Example:
//
//	origin = 1
//	starts = [1]
//	max_distance = 25.0
type Config struct {
	// Origin is the index origin of the connectivity table; nil means infer.
	Origin *int `toml:"origin"`

	// Starts lists the start vertices, in the connectivity's index origin.
	Starts []int `toml:"starts"`

	// MaxDistance bounds the search radius when positive and finite.
	MaxDistance float64 `toml:"max_distance"`
}

// loadConfig decodes the TOML file at path. Unknown keys are rejected so
// typos surface instead of silently falling back to defaults.
func loadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}

	return cfg, nil
}
