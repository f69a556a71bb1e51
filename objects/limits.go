// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objects

import (
	"math"
	"strings"

	"cogentcore.org/graphics/array"
	"cogentcore.org/graphics/props"
)

// limitAxes are the limit properties of axes.
var limitAxes = []string{"xlim", "ylim", "zlim", "clim", "alim"}

// limitAxis returns the axis limit property that a change of the
// named property affects, or "".
func limitAxis(name string) string {
	name = strings.ToLower(name)
	switch {
	case len(name) >= 4 && name[1:4] == "lim" && strings.IndexByte("xyzca", name[0]) >= 0:
		return name[:4]
	case len(name) == 6 && strings.HasSuffix(name, "scale") && strings.IndexByte("xyz", name[0]) >= 0:
		return name[:1] + "lim"
	case name == "cdatamapping":
		return "clim"
	case name == "alphadatamapping":
		return "alim"
	}
	return ""
}

// propagateLimits updates the axis limits after a change of the
// named property: those of the object itself for axes, and those of
// its parent otherwise.
func (o *Object) propagateLimits(name string) {
	axis := limitAxis(name)
	if axis == "" {
		return
	}
	if o.kind == KindAxes {
		o.UpdateAxisLimits(axis)
		return
	}
	if p := o.ParentObject(); p != nil {
		p.childLimitsChanged(axis)
	}
}

// childLimitsChanged updates the object after the data limits of one
// of its children changed on the given axis.
func (o *Object) childLimitsChanged(axis string) {
	switch o.kind {
	case KindAxes:
		o.UpdateAxisLimits(axis)
	case KindGroup:
		lims := o.childLimits(axis)
		if o.store(axis, lims.Vector()) {
			o.propagateLimits(axis)
		}
	}
}

// childLimits merges the data limits of the children that are
// included in the automatic limits of the given axis.
func (o *Object) childLimits(axis string) array.Limits {
	lims := array.NewLimits()
	for _, c := range o.childObjects() {
		if !c.kind.HasDataLimits() || !c.boolProp(axis+"include") {
			continue
		}
		lims.Merge(array.LimitsFromVector(c.arrayProp(axis)))
	}
	return lims
}

// UpdateAxisLimits recomputes the given limit property of axes from
// the data of its children, when its mode is auto.
func (o *Object) UpdateAxisLimits(axis string) {
	if !o.IsValid() || o.kind != KindAxes || !o.radioIs(axis+"mode", "auto") {
		return
	}
	lo, hi := o.autoLimits(axis, o.childLimits(axis))
	o.setAxisLimit(axis, array.Row(lo, hi))
}

// setAxisLimit sets a limit property of axes as the result of a data
// change: the toolkit is notified and listeners run, but the mode
// stays auto.
func (o *Object) setAxisLimit(axis string, lim *array.Array) {
	p := o.prop(axis)
	changed, err := p.SetWith(lim, false, true)
	if err != nil || !changed {
		return
	}
	if fn := hookFor(o.kind, axis); fn != nil {
		fn(o, axis)
	}
	p.RunListeners(props.PostSet)
}

// autoLimits returns the automatic limits for the given axis
// and data limits.
func (o *Object) autoLimits(axis string, l array.Limits) (float64, float64) {
	switch axis {
	case "clim", "alim":
		if !l.IsValid() {
			return 0, 1
		}
		if l.Min == l.Max {
			return l.Min - 1, l.Max + 1
		}
		return l.Min, l.Max
	}
	if o.radioIs(axis[:1]+"scale", "log") {
		return logLimits(l)
	}
	if !l.IsValid() {
		return 0, 1
	}
	lo, hi := l.Min, l.Max
	if lo == hi {
		if lo == 0 {
			lo, hi = -1, 1
		} else {
			lo, hi = lo-0.1*math.Abs(lo), hi+0.1*math.Abs(hi)
		}
	}
	ticks, _ := talbotLinHanrahan(lo, hi, wantTicks, containData)
	if len(ticks) >= 2 && ticks[0] <= lo && ticks[len(ticks)-1] >= hi {
		return ticks[0], ticks[len(ticks)-1]
	}
	return lo, hi
}

// logLimits returns whole decades containing the positive data, or
// the negative data when there is none.
func logLimits(l array.Limits) (float64, float64) {
	switch {
	case !math.IsInf(l.MinPos, 0) && l.Max > 0:
		lo := math.Pow(10, math.Floor(math.Log10(l.MinPos)))
		hi := math.Pow(10, math.Ceil(math.Log10(l.Max)))
		if lo == hi {
			hi *= 10
		}
		return lo, hi
	case !math.IsInf(l.MaxNeg, 0):
		lo := -math.Pow(10, math.Ceil(math.Log10(-l.Min)))
		hi := -math.Pow(10, math.Floor(math.Log10(-l.MaxNeg)))
		if lo == hi {
			lo *= 10
		}
		return lo, hi
	}
	return 1, 10
}

// setDataLimits stores the data limits vector of the given axis and
// updates the parent when it changed.
func (o *Object) setDataLimits(axis string, l array.Limits) {
	if o.store(axis, l.Vector()) {
		o.propagateLimits(axis)
	}
}

func hookLineData(o *Object, name string) {
	axis := name[:1] + "lim"
	a := o.arrayProp(name)
	if name == "zdata" {
		if o.store("zliminclude", !a.IsEmpty()) {
			o.propagateLimits("zlim")
		}
	}
	o.setDataLimits(axis, a.Limits())
}

func hookImageData(o *Object, name string) {
	cdata := o.arrayProp("cdata")
	o.setDataLimits("xlim", imageLimits(o.values("xdata"), cdata.Cols()))
	o.setDataLimits("ylim", imageLimits(o.values("ydata"), cdata.Rows()))
	o.setDataLimits("clim", o.colorLimits(cdata))
}

// imageLimits returns the extent of n pixels centered on the
// coordinates of the first and last pixel in data, padded by
// half a pixel.
func imageLimits(data []float64, n int) array.Limits {
	l := array.NewLimits()
	if n == 0 {
		return l
	}
	lo, hi := 1.0, float64(n)
	if len(data) > 0 {
		lo, hi = data[0], data[len(data)-1]
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	half := 0.5
	if n > 1 {
		half = (hi - lo) / float64(n-1) / 2
	}
	l.Add(lo - half)
	l.Add(hi + half)
	return l
}

// colorLimits returns the limits of color data that is scaled
// into the colormap, and no limits for direct color data.
func (o *Object) colorLimits(cdata *array.Array) array.Limits {
	if !o.radioIs("cdatamapping", "scaled") {
		return array.NewLimits()
	}
	return cdata.Limits()
}

func hookSurfaceData(o *Object, name string) {
	switch name {
	case "xdata", "ydata", "zdata":
		o.setDataLimits(name[:1]+"lim", o.arrayProp(name).Limits())
	case "vertices":
		v := o.arrayProp("vertices")
		for c, axis := range []string{"xlim", "ylim", "zlim"} {
			if c < v.Cols() {
				o.setDataLimits(axis, columnLimits(v, c))
			}
		}
	case "cdata", "facevertexcdata", "cdatamapping":
		cdata := o.arrayProp("cdata")
		if cdata.IsEmpty() && o.kind == KindPatch {
			cdata = o.arrayProp("facevertexcdata")
		}
		o.setDataLimits("clim", o.colorLimits(cdata))
	case "alphadata", "facevertexalphadata", "alphadatamapping":
		adata := "alphadata"
		if o.kind == KindPatch {
			adata = "facevertexalphadata"
		}
		l := array.NewLimits()
		if o.radioIs("alphadatamapping", "scaled") {
			l = o.arrayProp(adata).Limits()
		}
		o.setDataLimits("alim", l)
	}
}

func columnLimits(a *array.Array, c int) array.Limits {
	l := array.NewLimits()
	for r := range a.Rows() {
		l.Add(a.At2(r, c))
	}
	return l
}
