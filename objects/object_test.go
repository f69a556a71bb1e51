// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objects_test

import (
	"math"
	"testing"

	"cogentcore.org/graphics/array"
	"cogentcore.org/graphics/handle"
	. "cogentcore.org/graphics/objects"
	"cogentcore.org/graphics/props"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, o *Object, name string) any {
	t.Helper()
	v, err := o.Get(name)
	require.NoError(t, err)
	return v
}

func values(t *testing.T, o *Object, name string) []float64 {
	t.Helper()
	a, ok := get(t, o, name).(*array.Array)
	require.True(t, ok, "%s is not an array", name)
	return a.Values()
}

// plot returns a figure, axes, and line in a new environment.
func plot(t *testing.T) (*testEnv, *Object, *Object, *Object) {
	e, _ := newTestEnv(t)
	fig := e.create(t, "figure", e.root())
	ax := e.create(t, "axes", fig)
	ln := e.create(t, "line", ax)
	return e, fig, ax, ln
}

func TestNullObject(t *testing.T) {
	var o *Object
	assert.False(t, o.IsValid())
	assert.Equal(t, KindInvalid, o.Kind())
	assert.False(t, o.Handle().IsValid())
	_, err := o.Get("type")
	assert.ErrorIs(t, err, ErrInvalidObject)
	assert.ErrorIs(t, o.Set("tag", "x"), ErrInvalidObject)
	assert.Nil(t, o.Children())

	e, _ := newTestEnv(t)
	o = New(KindInvalid, -1, handle.Root, e)
	assert.False(t, o.IsValid())
	assert.ErrorIs(t, o.Set("tag", "x"), ErrInvalidObject)
}

func TestSchema(t *testing.T) {
	assert.Nil(t, SchemaOf(KindInvalid))
	sc := SchemaOf(KindLine)
	require.NotNil(t, sc)
	assert.Contains(t, sc.Names(false), "xdata")
	assert.NotContains(t, sc.Names(false), "__modified__")
	assert.Contains(t, sc.Names(true), "__modified__")

	_, id, ok := sc.Lookup("__MODIFIED__")
	assert.True(t, ok)
	assert.Equal(t, -1, id)
	_, id, ok = sc.Lookup("linewidth")
	assert.True(t, ok)
	assert.GreaterOrEqual(t, id, 0)

	k, ok := KindFromName("HGGROUP")
	assert.True(t, ok)
	assert.Equal(t, KindGroup, k)
}

func TestSetGet(t *testing.T) {
	_, _, ax, ln := plot(t)
	assert.Equal(t, "line", get(t, ln, "type"))
	assert.Equal(t, ax.Handle(), get(t, ln, "parent"))

	require.NoError(t, ln.Set("linewidth", 2.0))
	assert.Equal(t, 2.0, get(t, ln, "LineWidth"))

	require.NoError(t, ln.Set("linew", 3))
	assert.Equal(t, 3.0, get(t, ln, "linew"))

	err := ln.Set("line", 1.0)
	assert.ErrorIs(t, err, props.ErrUnknownProperty)

	err = ln.Set("nosuchproperty", 1.0)
	assert.ErrorIs(t, err, props.ErrUnknownProperty)

	err = ln.Set("linewidth", "wide")
	assert.ErrorIs(t, err, props.ErrInvalidValue)
	assert.Equal(t, 3.0, get(t, ln, "linewidth"))

	err = ln.Set("type", "axes")
	assert.ErrorIs(t, err, props.ErrReadOnly)
}

func TestGetAll(t *testing.T) {
	_, _, _, ln := plot(t)
	fs, err := ln.GetAll(false)
	require.NoError(t, err)
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = f.Name
	}
	assert.Equal(t, "beingdeleted", names[0])
	assert.Contains(t, names, "linewidth")
	assert.NotContains(t, names, "__modified__")

	all, err := ln.GetAll(true)
	require.NoError(t, err)
	assert.Greater(t, len(all), len(fs))
}

func TestModeFlag(t *testing.T) {
	_, _, ax, _ := plot(t)
	assert.Equal(t, "auto", get(t, ax, "xtickmode"))
	require.NoError(t, ax.Set("xtick", []float64{0, 0.5, 1}))
	assert.Equal(t, "manual", get(t, ax, "xtickmode"))
	assert.Equal(t, []float64{0, 0.5, 1}, values(t, ax, "xtick"))

	require.NoError(t, ax.Set("xlim", []float64{0, 10}))
	assert.Equal(t, "manual", get(t, ax, "xlimmode"))
	assert.Equal(t, []float64{0, 0.5, 1}, values(t, ax, "xtick"))
}

func TestAutoLimits(t *testing.T) {
	_, _, ax, ln := plot(t)
	require.NoError(t, ln.Set("xdata", []float64{0, 3.7}))
	assert.Equal(t, "auto", get(t, ax, "xlimmode"))
	xl := values(t, ax, "xlim")
	require.Len(t, xl, 2)
	assert.LessOrEqual(t, xl[0], 0.0)
	assert.GreaterOrEqual(t, xl[1], 3.7)
	assert.LessOrEqual(t, xl[1], 5.0)

	require.NoError(t, ax.Set("xlim", []float64{-1, 1}))
	require.NoError(t, ln.Set("xdata", []float64{0, 10}))
	assert.Equal(t, []float64{-1, 1}, values(t, ax, "xlim"))

	require.NoError(t, ax.Set("xlimmode", "auto"))
	xl = values(t, ax, "xlim")
	assert.GreaterOrEqual(t, xl[1], 10.0)

	require.NoError(t, ax.Set("xlim", []float64{2, 1}))
	assert.Equal(t, []float64{0, 1}, values(t, ax, "xlim"))
	require.NoError(t, ax.Set("xlim", []float64{3, 3}))
	assert.Equal(t, []float64{2.5, 3.5}, values(t, ax, "xlim"))
	require.NoError(t, ax.Set("clim", []float64{4, 4}))
	assert.Equal(t, []float64{3.5, 4.5}, values(t, ax, "clim"))

	require.NoError(t, ax.Set("xlim", []float64{math.Inf(-1), 5}))
	assert.Equal(t, []float64{math.Inf(-1), 5}, values(t, ax, "xlim"))
	assert.Empty(t, values(t, ax, "xtick"))
	require.NoError(t, ax.Set("yscale", "log"))
	require.NoError(t, ax.Set("ylim", []float64{1, math.Inf(1)}))
	assert.Empty(t, values(t, ax, "ytick"))

	assert.Error(t, ax.Set("xlim", []float64{math.NaN(), 1}))
	assert.Equal(t, []float64{math.Inf(-1), 5}, values(t, ax, "xlim"))
}

func TestGroupLimits(t *testing.T) {
	e, _, ax, _ := plot(t)
	g := e.create(t, "hggroup", ax)
	ln := e.create(t, "line", g)
	require.NoError(t, ln.Set("xdata", []float64{5, 20}))

	gl := values(t, g, "xlim")
	require.Len(t, gl, 4)
	assert.Equal(t, 5.0, gl[0])
	assert.Equal(t, 20.0, gl[1])
	assert.GreaterOrEqual(t, values(t, ax, "xlim")[1], 20.0)

	require.NoError(t, e.Free(g.Handle()))
	assert.Less(t, values(t, ax, "xlim")[1], 20.0)
}

func TestTicks(t *testing.T) {
	_, _, ax, _ := plot(t)
	require.NoError(t, ax.Set("xlim", []float64{0, 10}))
	ticks := values(t, ax, "xtick")
	require.GreaterOrEqual(t, len(ticks), 2)
	assert.GreaterOrEqual(t, ticks[0], 0.0)
	assert.LessOrEqual(t, ticks[len(ticks)-1], 10.0)
	labels, ok := get(t, ax, "xticklabel").([]string)
	require.True(t, ok)
	assert.Len(t, labels, len(ticks))
	assert.NotEmpty(t, values(t, ax, "xmtick"))

	require.NoError(t, ax.Set("yscale", "log"))
	require.NoError(t, ax.Set("ylim", []float64{1, 1000}))
	assert.Equal(t, []float64{1, 10, 100, 1000}, values(t, ax, "ytick"))
	assert.Equal(t, []string{"10^{0}", "10^{1}", "10^{2}", "10^{3}"}, get(t, ax, "yticklabel"))
}

func TestZoom(t *testing.T) {
	_, _, ax, _ := plot(t)
	before := values(t, ax, "xlim")
	require.NoError(t, ax.Zoom([]float64{0.2, 0.3}, []float64{0.4, 0.5}))
	assert.Equal(t, []float64{0.2, 0.3}, values(t, ax, "xlim"))
	assert.Equal(t, []float64{0.4, 0.5}, values(t, ax, "ylim"))
	assert.Equal(t, 1, ax.ZoomStackLen())

	require.NoError(t, ax.Unzoom())
	assert.Equal(t, before, values(t, ax, "xlim"))
	assert.Equal(t, "auto", get(t, ax, "xlimmode"))
	assert.Equal(t, 0, ax.ZoomStackLen())
	assert.NoError(t, ax.Unzoom())

	require.NoError(t, ax.Zoom([]float64{0.2, 0.3}, []float64{0.4, 0.5}))
	ax.ClearZoomStack()
	assert.Equal(t, 0, ax.ZoomStackLen())
}

func TestDefaults(t *testing.T) {
	e, _ := newTestEnv(t)
	root := e.root()
	require.NoError(t, root.Set("defaultlinelinewidth", 2))
	assert.Equal(t, 2.0, get(t, root, "defaultlinelinewidth"))
	assert.Equal(t, 2.0, get(t, root, "default.line.linewidth"))
	assert.Equal(t, 0.5, get(t, root, "factorylinelinewidth"))
	assert.ErrorIs(t, root.Set("factorylinelinewidth", 1), props.ErrReadOnly)
	assert.Error(t, root.Set("defaultlinelinewidth", "wide"))

	fig := e.create(t, "figure", root)
	require.NoError(t, fig.Set("defaultlinemarkersize", 9))
	ax := e.create(t, "axes", fig)
	ln := e.create(t, "line", ax)
	assert.Equal(t, 2.0, get(t, ln, "linewidth"))
	assert.Equal(t, 9.0, get(t, ln, "markersize"))

	require.NoError(t, ln.Set("linewidth", "factory"))
	assert.Equal(t, 0.5, get(t, ln, "linewidth"))
	require.NoError(t, ln.Set("linewidth", "default"))
	assert.Equal(t, 2.0, get(t, ln, "linewidth"))

	require.NoError(t, root.Set("defaultlinelinewidth", "remove"))
	assert.Equal(t, 0.5, get(t, root, "defaultlinelinewidth"))
	assert.Error(t, ln.Set("defaultlinelinewidth", 1))
}

func TestListeners(t *testing.T) {
	_, _, _, ln := plot(t)
	n := 0
	id, err := ln.AddListener("linewidth", props.PostSet, func(p props.Property) error {
		n++
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, ln.Set("linewidth", 2))
	require.NoError(t, ln.Set("linewidth", 2))
	assert.Equal(t, 1, n)

	require.NoError(t, ln.DeleteListener("linewidth", props.PostSet, id))
	require.NoError(t, ln.Set("linewidth", 3))
	assert.Equal(t, 1, n)
	assert.Error(t, ln.DeleteListener("linewidth", props.PostSet, id))

	deleted := false
	_, err = ln.AddListener("tag", props.PreDelete, func(p props.Property) error {
		deleted = true
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, ln.PrepareDelete())
	assert.True(t, deleted)
}

func TestToolkitNotify(t *testing.T) {
	e, tk := newTestEnv(t)
	fig := e.create(t, "figure", e.root())
	ax := e.create(t, "axes", fig)
	ln := e.create(t, "line", ax)
	assert.True(t, ln.IsToolkitInitialized())
	assert.Equal(t, 1, tk.Count("initialize", ln.Handle()))

	lbl, ok := get(t, ax, "title").(handle.Handle)
	require.True(t, ok)
	assert.Equal(t, 1, tk.Count("initialize", lbl))
	assert.NotContains(t, ax.VisibleChildren(), lbl)
	assert.Contains(t, ax.Children(), lbl)

	require.NoError(t, ln.Set("linewidth", 2))
	assert.Equal(t, 1, tk.Count("update", ln.Handle()))
	require.NoError(t, ln.SetWith("linewidth", 3, false))
	assert.Equal(t, 1, tk.Count("update", ln.Handle()))

	ln.FinalizeToolkit()
	assert.False(t, ln.IsToolkitInitialized())
	assert.Equal(t, 1, tk.Count("finalize", ln.Handle()))
	require.NoError(t, ln.Set("linewidth", 4))
	assert.Equal(t, 1, tk.Count("update", ln.Handle()))
}

func TestFigureToolkit(t *testing.T) {
	e, tk := newTestEnv(t)
	other := toolkitTrace(t, e, "other")
	fig := e.create(t, "figure", e.root())
	ax := e.create(t, "axes", fig)
	assert.Equal(t, "trace", get(t, fig, "__graphics_toolkit__"))

	require.NoError(t, fig.Set("__graphics_toolkit__", "other"))
	assert.Equal(t, 1, tk.Count("finalize", fig.Handle()))
	assert.Equal(t, 1, tk.Count("finalize", ax.Handle()))
	assert.Equal(t, 1, other.Count("initialize", fig.Handle()))
	assert.Equal(t, 1, other.Count("initialize", ax.Handle()))
	assert.Equal(t, "other", ax.Toolkit().Name())

	assert.Error(t, fig.Set("__graphics_toolkit__", "nope"))
	assert.Error(t, fig.Set("__graphics_toolkit__", 1))
	assert.Equal(t, "other", get(t, fig, "__graphics_toolkit__"))
}

func TestReparent(t *testing.T) {
	e, fig, ax, ln := plot(t)
	ax2 := e.create(t, "axes", fig)
	require.NoError(t, ln.Set("parent", ax2.Handle()))
	assert.False(t, ax.HasChild(ln.Handle()))
	assert.True(t, ax2.HasChild(ln.Handle()))
	assert.Equal(t, ln.Handle(), ax2.VisibleChildren()[0])

	assert.Error(t, ax2.Set("parent", ln.Handle()))
	assert.Error(t, ax2.Set("parent", ax2.Handle()))
	assert.ErrorIs(t, ln.Set("parent", -100), props.ErrInvalidHandle)
	assert.Error(t, e.root().Set("parent", fig.Handle()))
}

func TestCurrentObjects(t *testing.T) {
	e, fig, ax, ln := plot(t)
	require.NoError(t, fig.Set("currentaxes", ax.Handle()))
	assert.Equal(t, ax.Handle(), get(t, fig, "currentaxes"))
	assert.Error(t, fig.Set("currentaxes", ln.Handle()))

	require.NoError(t, e.root().Set("currentfigure", fig.Handle()))
	assert.Error(t, e.root().Set("currentfigure", ax.Handle()))

	require.NoError(t, e.Free(ax.Handle()))
	assert.False(t, get(t, fig, "currentaxes").(handle.Handle).IsValid())
	require.NoError(t, e.Free(fig.Handle()))
	assert.False(t, get(t, e.root(), "currentfigure").(handle.Handle).IsValid())
}

func TestRootGetters(t *testing.T) {
	e, _ := newTestEnv(t)
	assert.Equal(t, []float64{1, 1, 1920, 1080}, values(t, e.root(), "screensize"))
	assert.Equal(t, 96.0, get(t, e.root(), "screenpixelsperinch"))
	assert.False(t, get(t, e.root(), "callbackobject").(handle.Handle).IsValid())
	assert.ErrorIs(t, e.root().Set("screensize", []float64{1, 1, 2, 2}), props.ErrReadOnly)
}

func TestTextExtent(t *testing.T) {
	e, _, ax, _ := plot(t)
	txt := e.create(t, "text", ax)
	require.NoError(t, txt.Set("string", "abc"))
	ext := values(t, txt, "extent")
	require.Len(t, ext, 4)
	assert.InDelta(t, 18, ext[2], 1e-9)
	assert.InDelta(t, 12, ext[3], 1e-9)

	require.NoError(t, txt.Set("rotation", 90))
	ext = values(t, txt, "extent")
	assert.InDelta(t, 12, ext[2], 1e-9)
	assert.InDelta(t, 18, ext[3], 1e-9)
	assert.Equal(t, "manual", get(t, txt, "rotationmode"))

	require.NoError(t, txt.Set("position", []float64{2, 3}))
	assert.Equal(t, []float64{2, 3, 0}, values(t, txt, "position"))
	assert.Equal(t, 2.0, values(t, txt, "extent")[0])
}

func TestTransform(t *testing.T) {
	_, _, ax, _ := plot(t)
	require.NoError(t, ax.Set("xlim", []float64{0, 1}))
	require.NoError(t, ax.Set("ylim", []float64{0, 1}))

	x, y := ax.DataToPixel(0, 0)
	assert.InDelta(t, 72.8, x, 1e-3)
	assert.InDelta(t, 373.8, y, 1e-3)
	x, y = ax.DataToPixel(1, 1)
	assert.InDelta(t, 506.8, x, 1e-3)
	assert.InDelta(t, 31.5, y, 1e-3)

	require.NoError(t, ax.Set("xdir", "reverse"))
	x, _ = ax.DataToPixel(0, 0)
	assert.InDelta(t, 506.8, x, 1e-3)
}

func TestAxesPosition(t *testing.T) {
	_, _, ax, _ := plot(t)
	require.NoError(t, ax.Set("outerposition", []float64{0, 0, 0.5, 0.5}))
	assert.Equal(t, "outerposition", get(t, ax, "activepositionproperty"))
	pos := values(t, ax, "position")
	assert.InDelta(t, 0.065, pos[0], 1e-9)
	assert.InDelta(t, 0.055, pos[1], 1e-9)

	require.NoError(t, ax.Set("position", []float64{0.1, 0.1, 0.5, 0.5}))
	assert.Equal(t, "position", get(t, ax, "activepositionproperty"))
	op := values(t, ax, "outerposition")
	assert.Greater(t, op[2], 0.5)
}

func TestDynamicProperty(t *testing.T) {
	_, _, _, ln := plot(t)
	require.NoError(t, ln.AddProperty("myprop", "string", "hi"))
	assert.Equal(t, "hi", get(t, ln, "myprop"))
	require.NoError(t, ln.Set("myprop", "there"))
	assert.Equal(t, "there", get(t, ln, "myprop"))
	assert.Error(t, ln.AddProperty("myprop", "string", "again"))
	assert.Error(t, ln.AddProperty("linewidth", "double", 1))
	assert.Contains(t, ln.Names(false), "myprop")
}
