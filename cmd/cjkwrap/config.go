package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
	"pkt.systems/cjkwrap"
)

// fileConfig is the --config file. Command line flags win over it; the
// cjkwrap section has the same shape as document front matter.
type fileConfig struct {
	Format  string                  `toml:"format" yaml:"format" json:"format"`
	Theme   string                  `toml:"theme" yaml:"theme" json:"theme"`
	Width   int                     `toml:"width" yaml:"width" json:"width"`
	OSC8    string                  `toml:"osc8" yaml:"osc8" json:"osc8"`
	CJKWrap cjkwrap.OptionOverrides `toml:"cjkwrap" yaml:"cjkwrap" json:"cjkwrap"`
}

func loadConfig(path string) (*fileConfig, error) {
	clean := normalizePath(path)
	data, err := os.ReadFile(clean)
	if err != nil {
		return nil, err
	}
	var cfg fileConfig
	switch ext := strings.ToLower(filepath.Ext(clean)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".json":
		err = json.Unmarshal(data, &cfg)
	default:
		return nil, fmt.Errorf("%s: unsupported config extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// apply copies the config values into the flag targets the user did not
// set explicitly.
func (c *fileConfig) apply(flags *pflag.FlagSet, format, theme *string, width *int, osc8 *string) {
	if c.Format != "" && !flags.Changed("format") {
		*format = c.Format
	}
	if c.Theme != "" && !flags.Changed("theme") {
		*theme = c.Theme
	}
	if c.Width > 0 && !flags.Changed("width") {
		*width = c.Width
	}
	if c.OSC8 != "" && !flags.Changed("osc8") {
		*osc8 = c.OSC8
	}
}
