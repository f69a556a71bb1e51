// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props_test

import (
	"math"
	"testing"

	"cogentcore.org/graphics/array"
	"cogentcore.org/graphics/handle"
	. "cogentcore.org/graphics/props"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setGet sets v on a fresh property and returns the result of Get.
func setGet(t *testing.T, val Value, v any) any {
	t.Helper()
	p := New("p", -1, val)
	_, err := p.Set(v)
	require.NoError(t, err)
	return p.Get()
}

// rejects asserts that setting v fails and leaves the value unchanged.
func rejects(t *testing.T, val Value, v any) {
	t.Helper()
	p := New("p", -1, val)
	before := p.Get()
	changed, err := p.Set(v)
	assert.False(t, changed)
	assert.Error(t, err)
	assert.Equal(t, before, p.Get())
}

func TestString(t *testing.T) {
	assert.Equal(t, "hello", setGet(t, NewString(""), "hello"))
	rejects(t, NewString("a"), 3.0)
}

func TestStringArray(t *testing.T) {
	assert.Equal(t, "-|--|:", setGet(t, NewStringArray("-", ""), "-|--|:"))
	assert.Equal(t, []string{"a", "b"}, setGet(t, NewStringArray("-", ""), []string{"a", "b"}))
	assert.Equal(t, []string{"a", "b"}, setGet(t, NewStringArray("-", ""), []any{"a", "b"}))
	rejects(t, NewStringArray("-", ""), []any{"a", 1})
	rejects(t, NewStringArray("-", ""), 1.0)

	v := NewStringArray("", ";")
	_, err := v.Set("x;y")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, v.Strings())

	// same strings, other representation, is a change
	changed, err := v.Set([]string{"x", "y"})
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestTextLabel(t *testing.T) {
	assert.Equal(t, "title", setGet(t, NewTextLabel(""), "title"))
	assert.Equal(t, "a\nb", setGet(t, NewTextLabel(""), "a\nb"))
	assert.Equal(t, []string{"a", "b"}, setGet(t, NewTextLabel(""), []string{"a", "b"}))
	assert.Equal(t, []string{"a", "2.5"}, setGet(t, NewTextLabel(""), []any{"a", 2.5}))
	assert.Equal(t, "1\n2\n30", setGet(t, NewTextLabel(""), array.Row(1, 2, 30)))
	assert.Equal(t, "0.5", setGet(t, NewTextLabel(""), 0.5))
	rejects(t, NewTextLabel("a"), map[string]int{})

	v := NewTextLabel("")
	assert.True(t, v.IsEmpty())
	_, err := v.Set("x")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, v.Lines())
}

func TestDouble(t *testing.T) {
	assert.Equal(t, 2.5, setGet(t, NewDouble(0), 2.5))
	assert.Equal(t, 3.0, setGet(t, NewDouble(0), 3))
	assert.Equal(t, 4.0, setGet(t, NewDouble(0), array.Scalar(4)))
	rejects(t, NewDouble(1), "a")
	rejects(t, NewDouble(1), array.Row(1, 2))

	v := NewDouble(math.NaN())
	changed, err := v.Set(math.NaN())
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestAny(t *testing.T) {
	m := map[string]int{"a": 1}
	assert.Equal(t, m, setGet(t, NewAny(nil), m))

	v := NewAny(3)
	changed, err := v.Set(3)
	require.NoError(t, err)
	assert.False(t, changed)
	changed, _ = v.Set("x")
	assert.True(t, changed)
}

func TestAnyClone(t *testing.T) {
	data := []float64{1, 2, 3}
	p := New("userdata", -1, NewAny(data))
	c := p.Clone()
	data[0] = 100
	assert.Equal(t, []float64{1, 2, 3}, c.Get())
	assert.Equal(t, 100.0, p.Get().([]float64)[0])
}

func TestHandle(t *testing.T) {
	live := map[handle.Handle]bool{1: true, -3: true}
	valid := func(h handle.Handle) bool { return live[h] }

	assert.Equal(t, handle.Handle(1), setGet(t, NewHandle(handle.Invalid, valid), 1))
	assert.Equal(t, handle.Handle(-3), setGet(t, NewHandle(handle.Invalid, valid), handle.Handle(-3)))
	h := setGet(t, NewHandle(1, valid), array.Empty()).(handle.Handle)
	assert.False(t, h.IsValid())
	h = setGet(t, NewHandle(1, valid), nil).(handle.Handle)
	assert.False(t, h.IsValid())

	p := New("currentaxes", -1, NewHandle(1, valid))
	_, err := p.Set(7)
	assert.ErrorIs(t, err, ErrInvalidHandle)
	assert.Equal(t, handle.Handle(1), p.Get())
	rejects(t, NewHandle(1, valid), "x")

	v := NewHandle(handle.Invalid, nil)
	changed, err := v.Set(nil)
	require.NoError(t, err)
	assert.False(t, changed)
}
