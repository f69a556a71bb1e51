// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	. "cogentcore.org/graphics/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := Defaults()
	assert.Equal(t, "trace", c.Toolkit)
	assert.Equal(t, slog.LevelWarn, c.Level())
	assert.False(t, c.HandleFraction)
	assert.Equal(t, []string{"trace"}, c.AvailableToolkits())
}

func TestSaveOpen(t *testing.T) {
	for _, ext := range []string{".toml", ".yaml"} {
		t.Run(ext, func(t *testing.T) {
			c := Defaults()
			c.Toolkit = "other"
			c.Toolkits = []string{"trace"}
			c.HandleFraction = true
			c.LogLevel = "debug"
			c.Defaults["linelinewidth"] = 2.5
			fn := filepath.Join(t.TempDir(), "config"+ext)
			require.NoError(t, c.Save(fn))

			o, err := Open(fn)
			require.NoError(t, err)
			assert.Equal(t, "other", o.Toolkit)
			assert.Equal(t, []string{"trace", "other"}, o.AvailableToolkits())
			assert.True(t, o.HandleFraction)
			assert.Equal(t, slog.LevelDebug, o.Level())
			assert.Equal(t, []Default{{Name: "defaultlinelinewidth", Value: 2.5}}, o.RootDefaults())
		})
	}
}

func TestRootDefaults(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "gfx.toml")
	data := `toolkit = "trace"

[defaults]
figurecolor = "none"

[defaults.line]
linewidth = 2
color = [1, 0, 0]
`
	require.NoError(t, os.WriteFile(fn, []byte(data), 0666))
	c, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, []Default{
		{Name: "defaultfigurecolor", Value: "none"},
		{Name: "default.line.color", Value: []float64{1, 0, 0}},
		{Name: "default.line.linewidth", Value: 2.0},
	}, c.RootDefaults())
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
