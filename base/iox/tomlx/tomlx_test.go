// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	Toolkit string
	Depth   int
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, Save(&settings{Toolkit: "trace", Depth: 3}, fn))

	s := &settings{}
	require.NoError(t, Open(s, fn))
	assert.Equal(t, settings{Toolkit: "trace", Depth: 3}, *s)
}

func TestOpenFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.toml")
	b := filepath.Join(dir, "b.toml")
	require.NoError(t, Save(&settings{Toolkit: "trace", Depth: 1}, a))
	require.NoError(t, ReadBytes(&settings{}, []byte(`Depth = 2`)))
	b2, err := WriteBytes(map[string]any{"Depth": 2})
	require.NoError(t, err)
	s := &settings{}
	require.NoError(t, ReadBytes(s, b2))
	assert.Equal(t, 2, s.Depth)

	s = &settings{}
	require.NoError(t, OpenFiles(s, a, b))
	assert.Equal(t, "trace", s.Toolkit)
	assert.Equal(t, 1, s.Depth)
}
