// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objects

import (
	"fmt"
	"math"

	"cogentcore.org/graphics/array"
	"cogentcore.org/graphics/props"
)

// axesState is the derived state of axes.
type axesState struct {

	// fontSize is the font size in points.
	fontSize float64

	zoom []zoomState
}

type zoomState struct {
	xlim, ylim   *array.Array
	xmode, ymode string
}

func newAxesState() *axesState {
	return &axesState{fontSize: 10}
}

func init() {
	addHook(hookAxesLimits, KindAxes, "xlim", "ylim", "zlim")
	addHook(hookFixLimits, KindAxes, "clim", "alim")
	addHook(hookAxesLimits, KindAxes, "xscale", "yscale", "zscale")
	addHook(hookAxesTicks, KindAxes,
		"xtick", "ytick", "ztick",
		"xtickmode", "ytickmode", "ztickmode",
		"xticklabelmode", "yticklabelmode", "zticklabelmode")
	addHook(hookAxesTransform, KindAxes, "xdir", "ydir", "zdir", "view")
	addHook(hookAxesPosition, KindAxes, "position", "outerposition", "looseinset")
	addHook(hookAxesFont, KindAxes, "fontsize", "fontunits")
}

func hookAxesLimits(o *Object, name string) {
	o.fixLimits(name[:1] + "lim")
	o.updateTicks(name[:1])
	o.updateTransform()
}

func hookFixLimits(o *Object, name string) {
	o.fixLimits(name)
}

// fixLimits replaces inverted limits with [0 1] and
// widens equal limits to one unit around them.
func (o *Object) fixLimits(name string) {
	l := o.values(name)
	if len(l) != 2 {
		return
	}
	switch {
	case l[0] > l[1]:
		o.store(name, []float64{0, 1})
	case l[0] == l[1]:
		o.store(name, []float64{l[0] - 0.5, l[1] + 0.5})
	}
}

func hookAxesTicks(o *Object, name string) {
	o.updateTicks(name[:1])
}

func hookAxesTransform(o *Object, name string) {
	o.updateTransform()
}

// hookAxesPosition keeps position and outerposition consistent
// through the loose inset, and records which one was set last.
func hookAxesPosition(o *Object, name string) {
	li := o.values("looseinset")
	if len(li) != 4 {
		return
	}
	wf, hf := 1-li[0]-li[2], 1-li[1]-li[3]
	if wf <= 0 || hf <= 0 {
		return
	}
	switch name {
	case "position":
		o.store("activepositionproperty", "position")
		p := o.values("position")
		ow, oh := p[2]/wf, p[3]/hf
		o.store("outerposition", []float64{p[0] - li[0]*ow, p[1] - li[1]*oh, ow, oh})
	default:
		if name == "outerposition" {
			o.store("activepositionproperty", "outerposition")
		}
		if !o.radioIs("activepositionproperty", "outerposition") {
			break
		}
		op := o.values("outerposition")
		o.store("position", []float64{op[0] + li[0]*op[2], op[1] + li[1]*op[3], op[2] * wf, op[3] * hf})
	}
	o.updateTransform()
}

func hookAxesFont(o *Object, name string) {
	fs := o.floatProp("fontsize")
	switch o.stringProp("fontunits") {
	case "inches":
		fs *= 72
	case "centimeters":
		fs *= 72 / 2.54
	case "pixels":
		fs *= 72.0 / 96
	case "normalized":
		_, h := o.pixelSize()
		fs *= float64(h) * 72 / 96
	}
	o.axes.fontSize = fs
}

// FontSize returns the font size of axes in points.
func (o *Object) FontSize() float64 {
	if !o.IsValid() || o.axes == nil {
		return 0
	}
	return o.axes.fontSize
}

// updateTicks recomputes the ticks of the given axis ("x", "y" or "z")
// when they are automatic, along with the minor ticks and the labels.
func (o *Object) updateTicks(ax string) {
	lim := o.values(ax + "lim")
	if len(lim) != 2 {
		return
	}
	if math.IsInf(lim[0], 0) || math.IsInf(lim[1], 0) {
		// no ticks on an unbounded axis
		if o.radioIs(ax+"tickmode", "auto") {
			o.store(ax+"tick", []float64{})
		}
		o.store(ax+"mtick", []float64{})
		if o.radioIs(ax+"ticklabelmode", "auto") {
			o.store(ax+"ticklabel", []string{})
		}
		return
	}
	isLog := o.radioIs(ax+"scale", "log") && lim[0] > 0
	if o.radioIs(ax+"tickmode", "auto") {
		var ticks []float64
		if isLog {
			ticks = logTicks(lim[0], lim[1])
		} else {
			ticks, _ = talbotLinHanrahan(lim[0], lim[1], wantTicks, withinData)
		}
		o.store(ax+"tick", ticks)
	}
	major := o.values(ax + "tick")
	var minor []float64
	if isLog {
		minor = logMinorTicks(lim[0], lim[1])
	} else {
		minor = minorTicks(major, 5)
	}
	o.store(ax+"mtick", minor)
	if o.radioIs(ax+"ticklabelmode", "auto") {
		o.store(ax+"ticklabel", tickLabels(major, isLog))
	}
}

func tickLabels(ticks []float64, isLog bool) []string {
	labels := make([]string, len(ticks))
	for i, t := range ticks {
		if isLog {
			labels[i] = fmt.Sprintf("10^{%d}", int(math.Round(math.Log10(t))))
			continue
		}
		labels[i] = props.FormatNumber(t)
	}
	return labels
}

// logMinorTicks returns 2..9 times every decade within [lo, hi].
func logMinorTicks(lo, hi float64) []float64 {
	var minor []float64
	for e := math.Floor(math.Log10(lo)); e <= math.Ceil(math.Log10(hi)); e++ {
		d := math.Pow(10, e)
		for m := 2.0; m <= 9; m++ {
			if v := m * d; v >= lo && v <= hi {
				minor = append(minor, v)
			}
		}
	}
	return minor
}

// Zoom sets the x and y limits of axes, saving the current ones on
// the zoom stack.
func (o *Object) Zoom(xlim, ylim []float64) error {
	if !o.IsValid() || o.kind != KindAxes {
		return fmt.Errorf("zoom: %w", ErrInvalidObject)
	}
	zs := zoomState{
		xlim: o.arrayProp("xlim"), ylim: o.arrayProp("ylim"),
		xmode: o.stringProp("xlimmode"), ymode: o.stringProp("ylimmode"),
	}
	if err := o.Set("xlim", xlim); err != nil {
		return err
	}
	if err := o.Set("ylim", ylim); err != nil {
		o.Set("xlim", zs.xlim)
		o.Set("xlimmode", zs.xmode)
		return err
	}
	o.axes.zoom = append(o.axes.zoom, zs)
	return nil
}

// Unzoom restores the limits saved by the last [Object.Zoom].
// It does nothing when the zoom stack is empty.
func (o *Object) Unzoom() error {
	if !o.IsValid() || o.kind != KindAxes {
		return fmt.Errorf("unzoom: %w", ErrInvalidObject)
	}
	n := len(o.axes.zoom)
	if n == 0 {
		return nil
	}
	zs := o.axes.zoom[n-1]
	o.axes.zoom = o.axes.zoom[:n-1]
	if err := o.Set("xlim", zs.xlim); err != nil {
		return err
	}
	if err := o.Set("ylim", zs.ylim); err != nil {
		return err
	}
	if err := o.Set("xlimmode", zs.xmode); err != nil {
		return err
	}
	return o.Set("ylimmode", zs.ymode)
}

// ClearZoomStack forgets all saved zoom limits.
func (o *Object) ClearZoomStack() {
	if o.IsValid() && o.axes != nil {
		o.axes.zoom = nil
	}
}

// ZoomStackLen returns the number of saved zoom limits.
func (o *Object) ZoomStackLen() int {
	if !o.IsValid() || o.axes == nil {
		return 0
	}
	return len(o.axes.zoom)
}

var labelAlignments = map[string][3]any{
	"xlabel": {"center", "top", 0.0},
	"ylabel": {"center", "bottom", 90.0},
	"zlabel": {"right", "middle", 0.0},
	"title":  {"center", "bottom", 0.0},
}

// constructAxes creates the label and title text objects of new axes
// and computes their initial ticks and transform.
func (o *Object) constructAxes() error {
	for _, name := range []string{"xlabel", "ylabel", "zlabel", "title"} {
		h, err := o.env.MakeObject("text", o.h)
		if err != nil {
			return fmt.Errorf("axes: creating %s: %w", name, err)
		}
		lbl := o.env.Object(h)
		al := labelAlignments[name]
		lbl.store("handlevisibility", "off")
		lbl.store("autopos_tag", name)
		lbl.store("horizontalalignment", al[0])
		lbl.store("verticalalignment", al[1])
		lbl.store("rotation", al[2])
		lbl.updateExtent()
		o.store(name, h)
	}
	hookAxesFont(o, "fontsize")
	for _, ax := range []string{"x", "y", "z"} {
		o.updateTicks(ax)
	}
	o.updateTransform()
	return nil
}
