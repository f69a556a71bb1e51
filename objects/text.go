// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objects

import (
	"math"
	"unicode/utf8"

	"cogentcore.org/graphics/array"
	"cogentcore.org/graphics/props"
)

func init() {
	addHook(hookTextPosition, KindText, "position")
	addHook(hookExtent, KindText, "string", "fontsize", "fontname", "fontangle", "fontweight", "fontunits", "rotation", "interpreter")
	addHook(hookExtent, KindUIControl, "string", "fontsize", "fontname", "fontunits", "style")
}

// hookTextPosition pads a 2D position to 3D and updates the
// data limits of the text.
func hookTextPosition(o *Object, name string) {
	pos := o.values("position")
	for len(pos) < 3 {
		pos = append(pos, 0)
	}
	o.store("position", pos[:3])
	for i, axis := range []string{"xlim", "ylim", "zlim"} {
		l := array.NewLimits()
		l.Add(pos[i])
		o.setDataLimits(axis, l)
	}
	o.updateExtent()
}

func hookExtent(o *Object, name string) {
	o.updateExtent()
}

// updateExtent stores a nominal extent of the text of text and
// uicontrol objects, from the number of characters and lines at
// the font size.
func (o *Object) updateExtent() {
	var lines []string
	var x, y float64
	switch v := o.prop("string").Value().(type) {
	case *props.TextLabelValue:
		lines = v.Lines()
	case *props.StringArrayValue:
		lines = v.Strings()
	}
	if o.kind == KindText {
		if pos := o.values("position"); len(pos) >= 2 {
			x, y = pos[0], pos[1]
		}
	}
	w, h := textExtent(lines, o.floatProp("fontsize"), o.floatProp("rotation"))
	o.store("extent", []float64{x, y, w, h})
}

// textExtent returns the bounding box size of lines of text at
// the given font size, rotated by the given angle in degrees.
func textExtent(lines []string, fontSize, rotation float64) (float64, float64) {
	chars := 0
	for _, l := range lines {
		chars = max(chars, utf8.RuneCountInString(l))
	}
	w := float64(chars) * 0.6 * fontSize
	h := float64(len(lines)) * 1.2 * fontSize
	if rotation == 0 {
		return w, h
	}
	s, c := math.Sincos(rotation * math.Pi / 180)
	s, c = math.Abs(s), math.Abs(c)
	return w*c + h*s, w*s + h*c
}
