// Package config loads optional user defaults from a TOML file.
//
// dataplot looks for $XDG_CONFIG_HOME/dataplot/config.toml (falling back to
// ~/.config/dataplot/config.toml). The file may preset style and figure
// defaults; flags given on the command line always win.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/dataplot/pkg/errors"
	"github.com/matzehuels/dataplot/pkg/pipeline"
)

// appName is the application name used for the config directory.
const appName = "dataplot"

// File is the set of defaults a user may preset. Zero values mean
// "not set" and leave the built-in default in place.
type File struct {
	Outfile   string  `toml:"outfile"`
	Colors    string  `toml:"colors"`
	Shapes    string  `toml:"shapes"`
	AddStyle  string  `toml:"addstyle"`
	Legend    string  `toml:"legend"`
	NumRegex  string  `toml:"num_regex"`
	FigWidth  float64 `toml:"fig_width"`
	FigHeight float64 `toml:"fig_height"`
}

// Path returns the config file location using the XDG convention.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the config file at path. A missing file is not an error and
// returns nil; a file that does not parse is a usage error.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileRead, err, "read config %s", path)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeUsage, err, "parse config %s", path)
	}
	return &f, nil
}

// Apply copies set config values into opts for every flag the user left
// untouched. set reports whether the named flag was given on the command
// line.
func (f *File) Apply(opts *pipeline.Options, set func(flag string) bool) {
	if f == nil {
		return
	}
	if f.Outfile != "" && !set("outfile") {
		opts.Outfile = f.Outfile
	}
	if f.Colors != "" && !set("colors") {
		opts.Colors = f.Colors
	}
	if f.Shapes != "" && !set("shapes") {
		opts.Shapes = f.Shapes
	}
	if f.AddStyle != "" && !set("addstyle") {
		opts.AddStyle = f.AddStyle
	}
	if f.Legend != "" && !set("legend") {
		opts.Legend = f.Legend
	}
	if f.NumRegex != "" && !set("num-regex") {
		opts.NumRegex = f.NumRegex
	}
	if f.FigWidth != 0 && !set("fig-width") {
		opts.FigW = f.FigWidth
	}
	if f.FigHeight != 0 && !set("fig-height") {
		opts.FigH = f.FigHeight
	}
}
