// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props_test

import (
	"testing"

	"cogentcore.org/graphics/array"
	. "cogentcore.org/graphics/props"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	c, err := ParseColor("r")
	require.NoError(t, err)
	assert.Equal(t, RGB{1, 0, 0}, c)

	c, err = ParseColor("Green")
	require.NoError(t, err)
	assert.Equal(t, RGB{0, 1, 0}, c)

	c, err = ParseColor("#f00")
	require.NoError(t, err)
	assert.Equal(t, RGB{1, 0, 0}, c)

	c, err = ParseColor("#0000ff")
	require.NoError(t, err)
	assert.Equal(t, RGB{0, 0, 1}, c)

	c, err = ParseColor("orange")
	require.NoError(t, err)
	assert.InDelta(t, 165.0/255, c[1], 1e-9)

	_, err = ParseColor("notacolor")
	assert.ErrorIs(t, err, ErrInvalidValue)
	_, err = ParseColor("#12")
	assert.Error(t, err)
}

func TestColor(t *testing.T) {
	p := New("color", -1, NewColor(RGB{1, 1, 1}, "none"))
	assert.True(t, array.Row(1, 1, 1).Equal(p.Get().(*array.Array)))

	_, err := p.Set([]float64{0, 0.5, 1})
	require.NoError(t, err)
	assert.True(t, array.Row(0, 0.5, 1).Equal(p.Get().(*array.Array)))

	changed, err := p.Set("none")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "none", p.Get())

	changed, err = p.Set("b")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, array.Row(0, 0, 1).Equal(p.Get().(*array.Array)))

	// rejected values leave the color unchanged
	_, err = p.Set([]float64{0, 2, 0})
	assert.ErrorIs(t, err, ErrInvalidValue)
	_, err = p.Set([]float64{0, 1})
	assert.ErrorIs(t, err, ErrInvalidValue)
	_, err = p.Set("auto")
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.True(t, array.Row(0, 0, 1).Equal(p.Get().(*array.Array)))
}

func TestColorRadio(t *testing.T) {
	v := NewColorRadio("{auto}|none")
	assert.Equal(t, "auto", v.Get())
	assert.True(t, v.IsRadio())

	_, err := v.Set("k")
	require.NoError(t, err)
	assert.False(t, v.IsRadio())
	assert.Equal(t, RGB{0, 0, 0}, v.RGB())
	assert.Equal(t, "", v.Current())

	_, err = v.Set("no")
	require.NoError(t, err)
	assert.Equal(t, "none", v.Current())
}

func TestColorAmbiguous(t *testing.T) {
	p := New("edgecolor", -1, NewColor(RGB{0, 0, 0}, "none|flat|faceted"))
	_, err := p.Set("f")
	assert.ErrorIs(t, err, ErrAmbiguousValue)
	assert.True(t, array.Row(0, 0, 0).Equal(p.Get().(*array.Array)))

	_, err = p.Set("fl")
	require.NoError(t, err)
	assert.Equal(t, "flat", p.Get())
}

func TestDoubleRadio(t *testing.T) {
	p := New("facealpha", -1, NewDoubleRadio(1, "flat|interp"))
	assert.Equal(t, 1.0, p.Get())

	_, err := p.Set("interp")
	require.NoError(t, err)
	assert.Equal(t, "interp", p.Get())

	changed, err := p.Set(0.5)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 0.5, p.Get())

	_, err = p.Set("opaque")
	assert.Error(t, err)
	_, err = p.Set([]float64{1, 2})
	assert.Error(t, err)
	assert.Equal(t, 0.5, p.Get())
}
