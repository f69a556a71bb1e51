// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props_test

import (
	"testing"

	. "cogentcore.org/graphics/props"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	p, err := Create("mylabel", -1, "string", "hello")
	require.NoError(t, err)
	assert.Equal(t, KindString, p.Kind())
	assert.Equal(t, "hello", p.Get())
	assert.Equal(t, -1, p.ID())

	p, err = Create("mode", -1, "radio", "{fast}|slow")
	require.NoError(t, err)
	assert.Equal(t, "fast", p.Get())

	p, err = Create("edge", -1, "color", "r", "none|auto")
	require.NoError(t, err)
	_, err = p.Set("auto")
	require.NoError(t, err)
	assert.Equal(t, "auto", p.Get())

	p, err = Create("weight", -1, "DoubleRadio", 0.5, "light|heavy")
	require.NoError(t, err)
	assert.Equal(t, 0.5, p.Get())

	p, err = Create("flag", -1, "bool", true)
	require.NoError(t, err)
	assert.Equal(t, "on", p.Get())

	p, err = Create("blob", -1, "any", []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, p.Get())

	p, err = Create("pts", -1, "data", []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, KindArray, p.Kind())
}

func TestCreateErrors(t *testing.T) {
	_, err := Create("x", -1, "matrix")
	assert.Error(t, err)
	_, err = Create("x", -1, "radio")
	assert.Error(t, err)
	_, err = Create("x", -1, "children")
	assert.Error(t, err)
	_, err = Create("x", -1, "double", "notanumber")
	assert.ErrorIs(t, err, ErrInvalidValue)
	_, err = Create("x", -1, "color", "r", 3)
	assert.Error(t, err)
}
