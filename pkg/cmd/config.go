package cmd

import (
	"github.com/BurntSushi/toml"

	"github.com/SpectralDragon/Yams"
)

// FileConfig is the shape of a .yams.toml file: defaults for Options
// that flags can still override.
type FileConfig struct {
	Canonical bool `toml:"canonical"`
	SortKeys  bool `toml:"sort_keys"`
	Indent    int  `toml:"indent"`
	Width     int  `toml:"width"`
}

// LoadFileConfig decodes path into a FileConfig. A file that cannot be
// read or decoded is an error; callers only call this when a --config
// flag was given.
func LoadFileConfig(path string) (FileConfig, error) {
	var cfg FileConfig
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}

// ApplyTo merges the file config into opts wherever the caller hasn't
// already set a more specific flag (flagSet reports which flags were
// explicitly passed on the command line).
func (c FileConfig) ApplyTo(opts *yams.Options, flagSet func(name string) bool) {
	if !flagSet("canonical") {
		opts.Canonical = c.Canonical
	}
	if !flagSet("sort-keys") {
		opts.SortKeys = c.SortKeys
	}
	if !flagSet("indent") && c.Indent != 0 {
		opts.Indent = c.Indent
	}
	if !flagSet("width") && c.Width != 0 {
		opts.Width = c.Width
	}
}
