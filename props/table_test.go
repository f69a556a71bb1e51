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

func TestTable(t *testing.T) {
	tb := NewTable()
	tb.Add(New("Color", -1, NewString("a")))
	tb.Add(New("LineWidth", -1, NewDouble(1)))
	tb.Add(New("__hidden__", -1, NewDouble(1)).SetHidden(true))

	assert.Equal(t, 3, tb.Len())
	p, ok := tb.Get("color")
	require.True(t, ok)
	assert.Equal(t, "Color", p.Name())
	assert.True(t, tb.Has("LINEWIDTH"))
	assert.Equal(t, []string{"Color", "LineWidth"}, tb.Names(false))
	assert.Equal(t, []string{"Color", "LineWidth", "__hidden__"}, tb.Names(true))

	old, _ := tb.Get("color")
	tb.Add(New("color", -1, NewString("b")))
	assert.False(t, old.IsValid())
	assert.Equal(t, 3, tb.Len())
	p, _ = tb.Get("Color")
	assert.Equal(t, "b", p.Get())

	assert.True(t, tb.Delete("color"))
	assert.False(t, tb.Delete("color"))
	assert.Equal(t, []string{"LineWidth", "__hidden__"}, tb.Names(true))
	p, ok = tb.Get("__hidden__")
	require.True(t, ok)
	assert.True(t, p.Hidden())

	tb.Release()
	assert.Equal(t, 0, tb.Len())
}

func TestMatchName(t *testing.T) {
	names := []string{"xlim", "xlimmode", "xtick", "ylim", "linewidth"}

	n, err := MatchName("XLim", "axes", names)
	require.NoError(t, err)
	assert.Equal(t, "xlim", n)

	n, err = MatchName("linew", "axes", names)
	require.NoError(t, err)
	assert.Equal(t, "linewidth", n)

	_, err = MatchName("xt", "axes", names)
	require.NoError(t, err)

	_, err = MatchName("x", "axes", names)
	assert.ErrorIs(t, err, ErrUnknownProperty)
	assert.Contains(t, err.Error(), "ambiguous")

	_, err = MatchName("linewidht", "axes", names)
	assert.ErrorIs(t, err, ErrUnknownProperty)
	assert.Contains(t, err.Error(), `did you mean "linewidth"`)

	_, err = MatchName("qqq", "axes", names)
	assert.ErrorIs(t, err, ErrUnknownProperty)
	assert.NotContains(t, err.Error(), "did you mean")
}
