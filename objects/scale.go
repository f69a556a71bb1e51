// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objects

import (
	"github.com/chewxy/math32"
)

// scaler maps the data values of an axis onto the linear
// scale that is drawn.
type scaler int32

const (
	linearScaler scaler = iota

	// logScaler is the scale of log axes with positive limits.
	logScaler

	// negLogScaler is the scale of log axes with negative limits.
	negLogScaler
)

func (s scaler) scale(v float32) float32 {
	switch s {
	case logScaler:
		return math32.Log10(v)
	case negLogScaler:
		return -math32.Log10(-v)
	}
	return v
}

func (o *Object) scalerOf(ax string) scaler {
	if !o.radioIs(ax+"scale", "log") {
		return linearScaler
	}
	if lim := o.values(ax + "lim"); len(lim) == 2 && lim[1] <= 0 {
		return negLogScaler
	}
	return logScaler
}

// pixelSize returns the size of the figure canvas of the object,
// from the figure position.
func (o *Object) pixelSize() (float32, float32) {
	if fig := o.Figure(); fig != nil {
		if p := fig.values("position"); len(p) == 4 && p[2] > 0 && p[3] > 0 {
			return float32(p[2]), float32(p[3])
		}
	}
	return 560, 420
}

// updateTransform recomputes the transform from scaled data
// coordinates to figure pixels, with y growing downward, and stores
// it in x_rendertransform.
func (o *Object) updateTransform() {
	w, h := o.pixelSize()
	pos := o.values("position")
	xl, yl := o.values("xlim"), o.values("ylim")
	if len(pos) != 4 || len(xl) != 2 || len(yl) != 2 {
		return
	}
	x0, y0 := float32(pos[0])*w, float32(pos[1])*h
	pw, ph := float32(pos[2])*w, float32(pos[3])*h

	xs, ys := o.scalerOf("x"), o.scalerOf("y")
	lx0, lx1 := xs.scale(float32(xl[0])), xs.scale(float32(xl[1]))
	ly0, ly1 := ys.scale(float32(yl[0])), ys.scale(float32(yl[1]))
	if o.radioIs("xdir", "reverse") {
		lx0, lx1 = lx1, lx0
	}
	if o.radioIs("ydir", "reverse") {
		ly0, ly1 = ly1, ly0
	}
	sx := pw / (lx1 - lx0)
	tx := x0 - lx0*sx
	sy := -ph / (ly1 - ly0)
	ty := h - y0 - ly0*sy
	for _, v := range [...]float32{sx, tx, sy, ty} {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return
		}
	}
	m := [][]float64{
		{float64(sx), 0, 0, float64(tx)},
		{0, float64(sy), 0, float64(ty)},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	o.store("x_rendertransform", m)
}

// DataToPixel maps a point in the data coordinates of axes to
// figure pixels, with the origin at the top left.
func (o *Object) DataToPixel(x, y float64) (float32, float32) {
	if !o.IsValid() || o.kind != KindAxes {
		return math32.NaN(), math32.NaN()
	}
	m := o.arrayProp("x_rendertransform")
	if m.Rows() != 4 || m.Cols() != 4 {
		return math32.NaN(), math32.NaN()
	}
	sx := o.scalerOf("x").scale(float32(x))
	sy := o.scalerOf("y").scale(float32(y))
	return float32(m.At2(0, 0))*sx + float32(m.At2(0, 3)), float32(m.At2(1, 1))*sy + float32(m.At2(1, 3))
}
