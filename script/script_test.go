// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package script_test

import (
	"bytes"
	"strings"
	"testing"

	"cogentcore.org/graphics/array"
	"cogentcore.org/graphics/handle"
	"cogentcore.org/graphics/manager"
	. "cogentcore.org/graphics/script"
	"cogentcore.org/graphics/toolkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScript(t *testing.T) (*Script, *bytes.Buffer) {
	t.Helper()
	reg := toolkit.NewRegistry()
	require.NoError(t, reg.Load(toolkit.NewTrace("trace")))
	m, err := manager.New(nil, manager.WithRegistry(reg))
	require.NoError(t, err)
	t.Cleanup(func() { m.Shutdown() })
	out := &bytes.Buffer{}
	return New(m, out), out
}

func TestSplit(t *testing.T) {
	stmts, err := Split("a = line $ax; set $a color red")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "=", "line", "$ax"}, {"set", "$a", "color", "red"}}, stmts)

	stmts, err = Split("set 1 xdata [1 2; 3 4]")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"set", "1", "xdata", "[1", "2", ";", "3", "4]"}}, stmts)

	stmts, err = Split(`echo 'a;b' "c d"`)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"echo", "a;b", "c d"}}, stmts)

	stmts, err = Split("  # a comment")
	require.NoError(t, err)
	assert.Empty(t, stmts)

	_, err = Split("get 1 tag | more")
	assert.Error(t, err)
}

func TestValue(t *testing.T) {
	s, _ := newScript(t)
	v, err := s.Value("3.5")
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)

	v, err = s.Value("[1", "2", ";", "3", "4]")
	require.NoError(t, err)
	a := v.(*array.Array)
	assert.Equal(t, 2, a.Rows())
	assert.Equal(t, 3.0, a.At2(1, 0))

	v, err = s.Value("{a,", "b}")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, v)

	v, err = s.Value("hello", "world")
	require.NoError(t, err)
	assert.Equal(t, "hello world", v)

	_, err = s.Value("[1 2; 3]")
	assert.Error(t, err)
	_, err = s.Value("$nope")
	assert.Error(t, err)

	e, err := ParseMatrix("[]")
	require.NoError(t, err)
	assert.True(t, e.IsEmpty())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "[1 2]", Format(array.Row(1, 2)))
	assert.Equal(t, "{a,b}", Format([]string{"a", "b"}))
	assert.Equal(t, "NaN", Format(handle.Invalid))
	assert.Equal(t, "2.5", Format(2.5))
	assert.Equal(t, "[]", Format(nil))
	assert.Equal(t, "<function>", Format(func() {}))
}

func TestRun(t *testing.T) {
	s, out := newScript(t)
	src := `# a line plot
f = figure
ax = axes $f
l = line $ax
set $l xdata [0 1 2]; set $l ydata [0 1 4]
set $l tag "my line"
get $l tag
echo figure $f
`
	require.NoError(t, s.Run(strings.NewReader(src)))
	assert.Equal(t, "my line\nfigure 1\n", out.String())

	m := s.Manager
	l := s.Vars["l"]
	assert.Equal(t, l, s.Last)
	assert.Equal(t, s.Vars["ax"], m.CurrentAxes())
	v, err := m.Get(l, "ydata")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 4}, v.(*array.Array).Values())

	out.Reset()
	require.NoError(t, s.Exec("tree"))
	assert.Contains(t, out.String(), "root 0\n  figure 1\n    axes -1\n")
	assert.Contains(t, out.String(), `line -6 "my line"`)

	out.Reset()
	require.NoError(t, s.Exec("dump $l"))
	assert.Contains(t, out.String(), "type: line\n")
	assert.Contains(t, out.String(), "tag: my line\n")

	err = s.Run(strings.NewReader("f = figure\nset $f nosuchproperty 1\n"))
	assert.ErrorContains(t, err, "line 2")
}

func TestImplicitParents(t *testing.T) {
	s, _ := newScript(t)
	require.NoError(t, s.Exec("line"))
	m := s.Manager
	ln := m.Object(s.Last)
	require.NotNil(t, ln)
	assert.Equal(t, "line", ln.Type())
	assert.Equal(t, m.CurrentAxes(), ln.Parent())
	assert.Equal(t, handle.Handle(1), m.CurrentFigure())

	require.NoError(t, s.Exec("l2 = line"))
	assert.Equal(t, ln.Parent(), m.Object(s.Vars["l2"]).Parent())
}

func TestTextCallbacks(t *testing.T) {
	s, out := newScript(t)
	require.NoError(t, s.Exec("f = figure"))
	require.NoError(t, s.Exec(`set $f buttondownfcn "set gcbo tag clicked; echo in gcbo"`))
	require.NoError(t, s.Exec("post $f buttondownfcn"))
	tag, err := s.Manager.Get(s.Vars["f"], "tag")
	require.NoError(t, err)
	assert.Equal(t, "", tag)

	require.NoError(t, s.Exec("flush"))
	tag, err = s.Manager.Get(s.Vars["f"], "tag")
	require.NoError(t, err)
	assert.Equal(t, "clicked", tag)
	assert.Equal(t, "in 1\n", out.String())

	require.NoError(t, s.Exec("close"))
	assert.False(t, s.Manager.IsValidHandle(s.Vars["f"]))
	assert.False(t, s.Manager.CurrentFigure().IsValid())
}

func TestErrors(t *testing.T) {
	s, _ := newScript(t)
	assert.ErrorContains(t, s.Exec("nope"), "unknown command")
	assert.Error(t, s.Exec("set $nope tag x"))
	assert.Error(t, s.Exec("get 42 tag"))
	assert.Error(t, s.Exec("set root"))
	assert.Error(t, s.Exec("delete"))
	assert.Error(t, s.Exec("x = 42"))
}

func TestToolkits(t *testing.T) {
	s, out := newScript(t)
	require.NoError(t, s.Exec("toolkits"))
	assert.Equal(t, "* trace (loaded)\n", out.String())
}
