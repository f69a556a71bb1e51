// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"fmt"
	"strings"

	"cogentcore.org/graphics/array"
	"golang.org/x/image/colornames"
)

// RGB is a color with components in [0, 1].
type RGB [3]float64

// baseColors are the single-letter and full color names,
// which take precedence over the CSS names.
var baseColors = map[string]RGB{
	"y": {1, 1, 0}, "yellow": {1, 1, 0},
	"m": {1, 0, 1}, "magenta": {1, 0, 1},
	"c": {0, 1, 1}, "cyan": {0, 1, 1},
	"r": {1, 0, 0}, "red": {1, 0, 0},
	"g": {0, 1, 0}, "green": {0, 1, 0},
	"b": {0, 0, 1}, "blue": {0, 0, 1},
	"w": {1, 1, 1}, "white": {1, 1, 1},
	"k": {0, 0, 0}, "black": {0, 0, 0},
}

// ParseColor parses a color name into an [RGB]. It accepts the
// single letters y m c r g b w k and their full names, the CSS
// color names, and #rgb or #rrggbb hex forms.
func ParseColor(s string) (RGB, error) {
	low := strings.ToLower(strings.TrimSpace(s))
	if c, ok := baseColors[low]; ok {
		return c, nil
	}
	if strings.HasPrefix(low, "#") {
		return parseHex(low)
	}
	if nc, ok := colornames.Map[low]; ok {
		return RGB{float64(nc.R) / 255, float64(nc.G) / 255, float64(nc.B) / 255}, nil
	}
	return RGB{}, fmt.Errorf("%w: invalid color specification %q", ErrInvalidValue, s)
}

func parseHex(x string) (RGB, error) {
	x = strings.TrimPrefix(x, "#")
	var r, g, b int
	switch len(x) {
	case 3:
		if _, err := fmt.Sscanf(x, "%1x%1x%1x", &r, &g, &b); err != nil {
			return RGB{}, fmt.Errorf("%w: invalid hex color %q", ErrInvalidValue, x)
		}
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		if _, err := fmt.Sscanf(x, "%02x%02x%02x", &r, &g, &b); err != nil {
			return RGB{}, fmt.Errorf("%w: invalid hex color %q", ErrInvalidValue, x)
		}
	default:
		return RGB{}, fmt.Errorf("%w: invalid hex color %q", ErrInvalidValue, x)
	}
	return RGB{float64(r) / 255, float64(g) / 255, float64(b) / 255}, nil
}

// Array returns the color as a 1x3 array.
func (c RGB) Array() *array.Array {
	return array.Row(c[0], c[1], c[2])
}

func rgbFrom(val any) (RGB, bool, error) {
	a, ok := array.From(val)
	if !ok {
		return RGB{}, false, nil
	}
	if a.Len() != 3 {
		return RGB{}, true, fmt.Errorf("%w: a color must have 3 components, got %d", ErrInvalidValue, a.Len())
	}
	var c RGB
	for i := range 3 {
		f := a.At(i)
		if !(f >= 0 && f <= 1) {
			return RGB{}, true, fmt.Errorf("%w: color component %v out of range [0, 1]", ErrInvalidValue, f)
		}
		c[i] = f
	}
	return c, true, nil
}

// ColorValue is a [Value] holding either an [RGB] color or one of
// a set of keywords such as "none" or "auto".
type ColorValue struct {
	name    string
	rgb     RGB
	radio   RadioValues
	current string
	isRadio bool
}

// NewColor returns a new color value set to the given color, which
// also accepts the keywords of the given radio specification.
func NewColor(c RGB, radio string) *ColorValue {
	return &ColorValue{rgb: c, radio: ParseRadioValues(radio)}
}

// NewColorRadio returns a new color value set to the default
// keyword of the given radio specification.
func NewColorRadio(radio string) *ColorValue {
	rv := ParseRadioValues(radio)
	return &ColorValue{radio: rv, current: rv.Default, isRadio: true}
}

func (v *ColorValue) setName(name string) { v.name = name }

func (v *ColorValue) Kind() Kind { return KindColor }

// Get returns the keyword as a string, or the color as a 1x3 array.
func (v *ColorValue) Get() any {
	if v.isRadio {
		return v.current
	}
	return v.rgb.Array()
}

// IsRadio returns whether the value is currently a keyword.
func (v *ColorValue) IsRadio() bool { return v.isRadio }

// Current returns the current keyword, or "" when the value is a color.
func (v *ColorValue) Current() string {
	if v.isRadio {
		return v.current
	}
	return ""
}

// RGB returns the color, valid when not [ColorValue.IsRadio].
func (v *ColorValue) RGB() RGB { return v.rgb }

// Values returns the allowed keywords.
func (v *ColorValue) Values() RadioValues { return v.radio }

func (v *ColorValue) Set(val any) (bool, error) {
	if s, ok := val.(string); ok {
		m, ok := v.radio.Match(s)
		if ok {
			if len(m) != len(s) {
				warnAbbreviated(v.name, s, m)
			}
			changed := !v.isRadio || m != v.current
			v.isRadio, v.current = true, m
			return changed, nil
		}
		if m != "" {
			_, err := v.radio.Validate(s)
			return false, err
		}
		c, err := ParseColor(s)
		if err != nil {
			return false, err
		}
		return v.setRGB(c), nil
	}
	c, ok, err := rgbFrom(val)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, fmt.Errorf("%w: expected a color or a keyword, got %T", ErrInvalidValue, val)
	}
	return v.setRGB(c), nil
}

func (v *ColorValue) setRGB(c RGB) bool {
	changed := v.isRadio || c != v.rgb
	v.isRadio, v.rgb = false, c
	return changed
}

func (v *ColorValue) Clone() Value {
	c := *v
	c.radio.Options = append([]string(nil), v.radio.Options...)
	return &c
}

// DoubleRadioValue is a [Value] holding either a real scalar or one
// of a set of keywords.
type DoubleRadioValue struct {
	name    string
	f       float64
	radio   RadioValues
	current string
	isRadio bool
}

// NewDoubleRadio returns a new value set to the given scalar, which
// also accepts the keywords of the given radio specification.
func NewDoubleRadio(f float64, radio string) *DoubleRadioValue {
	return &DoubleRadioValue{f: f, radio: ParseRadioValues(radio)}
}

func (v *DoubleRadioValue) setName(name string) { v.name = name }

func (v *DoubleRadioValue) Kind() Kind { return KindDoubleRadio }

// Get returns the keyword as a string, or the scalar as a float64.
func (v *DoubleRadioValue) Get() any {
	if v.isRadio {
		return v.current
	}
	return v.f
}

// IsRadio returns whether the value is currently a keyword.
func (v *DoubleRadioValue) IsRadio() bool { return v.isRadio }

// Float returns the scalar, valid when not [DoubleRadioValue.IsRadio].
func (v *DoubleRadioValue) Float() float64 { return v.f }

func (v *DoubleRadioValue) Set(val any) (bool, error) {
	if s, ok := val.(string); ok {
		m, err := v.radio.Validate(s)
		if err != nil {
			return false, err
		}
		if len(m) != len(s) {
			warnAbbreviated(v.name, s, m)
		}
		changed := !v.isRadio || m != v.current
		v.isRadio, v.current = true, m
		return changed, nil
	}
	f, ok := array.ToFloat(val)
	if !ok {
		return false, fmt.Errorf("%w: expected a real scalar or a keyword, got %T", ErrInvalidValue, val)
	}
	changed := v.isRadio || !sameFloat(f, v.f)
	v.isRadio, v.f = false, f
	return changed, nil
}

func (v *DoubleRadioValue) Clone() Value {
	c := *v
	c.radio.Options = append([]string(nil), v.radio.Options...)
	return &c
}
