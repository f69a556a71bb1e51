// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props_test

import (
	"bytes"
	"log/slog"
	"testing"

	. "cogentcore.org/graphics/props"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRadioValues(t *testing.T) {
	rv := ParseRadioValues("{bottom}|top|zero")
	assert.Equal(t, "bottom", rv.Default)
	assert.Equal(t, []string{"bottom", "top", "zero"}, rv.Options)
	assert.Equal(t, "{bottom}|top|zero", rv.String())
	assert.Equal(t, "[ {bottom} | top | zero ]", rv.ValuesString())

	rv = ParseRadioValues("new|{add}|replacechildren|replace")
	assert.Equal(t, "add", rv.Default)
	assert.Equal(t, 4, rv.Len())

	rv = ParseRadioValues("on|off")
	assert.Equal(t, "on", rv.Default)
}

func TestRadioMatch(t *testing.T) {
	p := New("xaxislocation", -1, NewRadio("{bottom}|top|zero"))

	changed, err := p.Set("t")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "top", p.Get())

	_, err = p.Set("b")
	require.NoError(t, err)
	assert.Equal(t, "bottom", p.Get())

	_, err = p.Set("ZERO")
	require.NoError(t, err)
	assert.Equal(t, "zero", p.Get())

	_, err = p.Set("left")
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Equal(t, "zero", p.Get())
}

func TestRadioAmbiguous(t *testing.T) {
	p := New("nextplot", -1, NewRadio("new|add|replacechildren|{replace}"))

	// an exact match wins over a longer option with the same prefix
	_, err := p.Set("add")
	require.NoError(t, err)
	_, err = p.Set("replace")
	require.NoError(t, err)
	assert.Equal(t, "replace", p.Get())

	_, err = p.Set("replacec")
	require.NoError(t, err)
	assert.Equal(t, "replacechildren", p.Get())

	q := New("x", -1, NewRadio("{top}|tight|zero"))
	_, err = q.Set("t")
	assert.ErrorIs(t, err, ErrAmbiguousValue)
	assert.Equal(t, "top", q.Get())
	_, err = q.Set(1.0)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestBool(t *testing.T) {
	p := New("visible", -1, NewBool(true))
	assert.Equal(t, "on", p.Get())

	changed, err := p.Set(false)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "off", p.Get())

	_, err = p.Set("on")
	require.NoError(t, err)
	b, _ := As[*BoolValue](p)
	assert.True(t, b.IsOn())
	assert.True(t, b.Is("ON"))

	changed, err = p.Set(true)
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = p.Set("maybe")
	assert.Error(t, err)

	// "o" is a prefix of both keywords
	_, err = p.Set("o")
	assert.ErrorIs(t, err, ErrAmbiguousValue)
}

// captureLog sends the default logger to the returned buffer
// until the test ends.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(buf, nil)))
	t.Cleanup(func() { slog.SetDefault(old) })
	return buf
}

func TestRadioAbbreviationWarning(t *testing.T) {
	buf := captureLog(t)
	p := New("xaxislocation", -1, NewRadio("{bottom}|top|zero"))

	_, err := p.Set("top")
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	_, err = p.Set("b")
	require.NoError(t, err)
	assert.Equal(t, "bottom", p.Get())
	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "allowing abbreviated property value")
	assert.Contains(t, out, "value=b")
	assert.Contains(t, out, "match=bottom")

	buf.Reset()
	_, err = p.Set("ZERO")
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	buf.Reset()
	_, err = p.Set("x")
	assert.Error(t, err)
	assert.Empty(t, buf.String())
}
