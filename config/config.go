// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of a graphics
// object manager, read from TOML or YAML files.
package config

import (
	"fmt"
	"log/slog"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/graphics/base/errors"
	"cogentcore.org/graphics/base/iox/tomlx"
	"cogentcore.org/graphics/base/iox/yamlx"
	"cogentcore.org/graphics/base/logx"
	"github.com/mitchellh/go-homedir"
)

// Config is the configuration of a graphics object manager.
type Config struct {

	// Toolkit is the name of the default graphics toolkit. It is
	// registered as available when it is not in Toolkits.
	Toolkit string `toml:"toolkit" yaml:"toolkit"`

	// Toolkits are the names of the toolkits registered as available.
	Toolkits []string `toml:"toolkits" yaml:"toolkits"`

	// HandleFraction adds a random fractional part to the handles of
	// objects other than figures, so that they are visually distinct
	// from figure numbers.
	HandleFraction bool `toml:"handle_fraction" yaml:"handle_fraction"`

	// LogLevel is the name of the minimum level of log messages,
	// such as "debug" or "warn".
	LogLevel string `toml:"log_level" yaml:"log_level"`

	// Defaults are the default property values set on the root object.
	// Keys are either type tables, as in [defaults.line] linewidth = 2,
	// or flat names, as in "linelinewidth" or "line.linewidth".
	Defaults map[string]any `toml:"defaults" yaml:"defaults"`
}

// Defaults returns a new config with the default values.
func Defaults() *Config {
	return &Config{
		Toolkit:  "trace",
		LogLevel: "warn",
		Defaults: map[string]any{},
	}
}

// DefaultPath returns the path of the user config file,
// ~/.config/gfx/config.toml.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gfx", "config.toml"), nil
}

func isYAML(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Open reads a config from the given file, starting from [Defaults].
// Files ending in .yaml or .yml are read as YAML, and others as TOML.
// A leading ~ in the filename is expanded to the home directory.
func Open(filename string) (*Config, error) {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	c := Defaults()
	if isYAML(fn) {
		err = yamlx.Open(c, fn)
	} else {
		err = tomlx.Open(c, fn)
	}
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", filename, err)
	}
	if c.Defaults == nil {
		c.Defaults = map[string]any{}
	}
	return c, nil
}

// Save writes the config to the given file, in the format
// given by its extension as in [Open].
func (c *Config) Save(filename string) error {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	if isYAML(fn) {
		return yamlx.Save(c, fn)
	}
	return tomlx.Save(c, fn)
}

// Level returns the log level of the config. An unknown level
// is logged and gives [slog.LevelWarn].
func (c *Config) Level() slog.Level {
	l, err := logx.ParseLevel(c.LogLevel, slog.LevelWarn)
	errors.Log(err)
	return l
}

// AvailableToolkits returns the names of the toolkits to register,
// including the default toolkit.
func (c *Config) AvailableToolkits() []string {
	names := slices.Clone(c.Toolkits)
	if c.Toolkit != "" && !slices.Contains(names, c.Toolkit) {
		names = append(names, c.Toolkit)
	}
	return names
}

// Default is a default property value of the root object.
type Default struct {

	// Name is the property name, of the form "default.<type>.<prop>"
	// or "default<type><prop>".
	Name string

	Value any
}

// RootDefaults returns the defaults as root property names and
// values, sorted by name. Integers are converted to float64 and lists
// of numbers to []float64, as the property values expect.
func (c *Config) RootDefaults() []Default {
	var ds []Default
	for _, k := range slices.Sorted(maps.Keys(c.Defaults)) {
		v := c.Defaults[k]
		if tbl, ok := v.(map[string]any); ok {
			for _, p := range slices.Sorted(maps.Keys(tbl)) {
				ds = append(ds, Default{Name: "default." + k + "." + p, Value: normalize(tbl[p])})
			}
			continue
		}
		ds = append(ds, Default{Name: "default" + k, Value: normalize(v)})
	}
	return ds
}

func normalize(v any) any {
	switch x := v.(type) {
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case []any:
		fs := make([]float64, len(x))
		for i, e := range x {
			f, ok := normalize(e).(float64)
			if !ok {
				return x
			}
			fs[i] = f
		}
		return fs
	}
	return v
}
