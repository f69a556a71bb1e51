// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/graphics/array"
	"cogentcore.org/graphics/handle"
	"github.com/jinzhu/copier"
)

// StringValue is a [Value] holding text.
type StringValue struct {
	s string
}

// NewString returns a new string value.
func NewString(s string) *StringValue { return &StringValue{s: s} }

func (v *StringValue) Kind() Kind { return KindString }

func (v *StringValue) Get() any { return v.s }

// String returns the text.
func (v *StringValue) String() string { return v.s }

func (v *StringValue) Set(val any) (bool, error) {
	s, ok := val.(string)
	if !ok {
		return false, fmt.Errorf("%w: expected a string, got %T", ErrInvalidValue, val)
	}
	if s == v.s {
		return false, nil
	}
	v.s = s
	return true, nil
}

func (v *StringValue) Clone() Value { c := *v; return &c }

// StringArrayValue is a [Value] holding a list of strings. It can be
// set from text split on a separator or from a list, and Get returns
// the form that was last set.
type StringArrayValue struct {
	sep      string
	strs     []string
	isString bool
}

// NewStringArray returns a new string array value set from
// text split on sep, which defaults to "|".
func NewStringArray(s, sep string) *StringArrayValue {
	if sep == "" {
		sep = "|"
	}
	return &StringArrayValue{sep: sep, strs: strings.Split(s, sep), isString: true}
}

func (v *StringArrayValue) Kind() Kind { return KindStringArray }

func (v *StringArrayValue) Get() any {
	if v.isString {
		return strings.Join(v.strs, v.sep)
	}
	return slices.Clone(v.strs)
}

// Strings returns a copy of the list of strings.
func (v *StringArrayValue) Strings() []string { return slices.Clone(v.strs) }

// Separator returns the separator used for the text form.
func (v *StringArrayValue) Separator() string { return v.sep }

func (v *StringArrayValue) Set(val any) (bool, error) {
	var strs []string
	isString := false
	switch x := val.(type) {
	case string:
		strs = strings.Split(x, v.sep)
		isString = true
	case []string:
		strs = slices.Clone(x)
	case []any:
		for _, e := range x {
			s, ok := e.(string)
			if !ok {
				return false, fmt.Errorf("%w: list element %v is not a string", ErrInvalidValue, e)
			}
			strs = append(strs, s)
		}
	default:
		return false, fmt.Errorf("%w: expected a string or a list of strings, got %T", ErrInvalidValue, val)
	}
	if isString == v.isString && slices.Equal(strs, v.strs) {
		return false, nil
	}
	v.strs = strs
	v.isString = isString
	return true, nil
}

func (v *StringArrayValue) Clone() Value {
	c := *v
	c.strs = slices.Clone(v.strs)
	return &c
}

// TextLabelValue is a [Value] holding a text label: text, a list
// of strings, or numbers that are converted to text. Get returns
// text (lines joined by newlines) or a list, following the kind
// of value that was set.
type TextLabelValue struct {
	lines  []string
	isList bool
}

// NewTextLabel returns a new text label value.
func NewTextLabel(s string) *TextLabelValue {
	return &TextLabelValue{lines: splitLines(s)}
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// FormatNumber formats a number for display in text.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (v *TextLabelValue) Kind() Kind { return KindTextLabel }

func (v *TextLabelValue) Get() any {
	if v.isList {
		return slices.Clone(v.lines)
	}
	return strings.Join(v.lines, "\n")
}

// Lines returns a copy of the lines of the label.
func (v *TextLabelValue) Lines() []string { return slices.Clone(v.lines) }

// IsEmpty returns whether the label has no text.
func (v *TextLabelValue) IsEmpty() bool {
	return len(v.lines) == 0 || (len(v.lines) == 1 && v.lines[0] == "")
}

func (v *TextLabelValue) Set(val any) (bool, error) {
	var lines []string
	isList := false
	switch x := val.(type) {
	case string:
		lines = splitLines(x)
	case []string:
		lines = slices.Clone(x)
		isList = true
	case []any:
		isList = true
		for _, e := range x {
			if s, ok := e.(string); ok {
				lines = append(lines, s)
				continue
			}
			f, ok := array.ToFloat(e)
			if !ok {
				return false, fmt.Errorf("%w: list element %v is not text or a number", ErrInvalidValue, e)
			}
			lines = append(lines, FormatNumber(f))
		}
	default:
		a, ok := array.From(val)
		if !ok {
			return false, fmt.Errorf("%w: expected text, a list or numbers, got %T", ErrInvalidValue, val)
		}
		for _, f := range a.Values() {
			lines = append(lines, FormatNumber(f))
		}
	}
	if isList == v.isList && slices.Equal(lines, v.lines) {
		return false, nil
	}
	v.lines = lines
	v.isList = isList
	return true, nil
}

func (v *TextLabelValue) Clone() Value {
	c := *v
	c.lines = slices.Clone(v.lines)
	return &c
}

// DoubleValue is a [Value] holding a real scalar.
type DoubleValue struct {
	f float64
}

// NewDouble returns a new double value.
func NewDouble(f float64) *DoubleValue { return &DoubleValue{f: f} }

func (v *DoubleValue) Kind() Kind { return KindDouble }

func (v *DoubleValue) Get() any { return v.f }

// Float returns the value.
func (v *DoubleValue) Float() float64 { return v.f }

func (v *DoubleValue) Set(val any) (bool, error) {
	f, ok := array.ToFloat(val)
	if !ok {
		return false, fmt.Errorf("%w: expected a real scalar, got %v", ErrInvalidValue, val)
	}
	if sameFloat(f, v.f) {
		return false, nil
	}
	v.f = f
	return true, nil
}

func sameFloat(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

func (v *DoubleValue) Clone() Value { c := *v; return &c }

// AnyValue is a [Value] that holds an arbitrary value without
// validation. Every set counts as a change unless the new value
// is deeply equal to the old one.
type AnyValue struct {
	v any
}

// NewAny returns a new passthrough value.
func NewAny(v any) *AnyValue { return &AnyValue{v: v} }

func (v *AnyValue) Kind() Kind { return KindAny }

func (v *AnyValue) Get() any { return v.v }

func (v *AnyValue) Set(val any) (bool, error) {
	if isComparableEqual(val, v.v) {
		return false, nil
	}
	v.v = val
	return true, nil
}

func isComparableEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if aa, ok := a.(*array.Array); ok {
		ba, ok := b.(*array.Array)
		return ok && aa.Equal(ba)
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// Clone deep copies the held value: arrays are cloned, and slices,
// maps and structs are copied with [copier].
func (v *AnyValue) Clone() Value {
	return &AnyValue{v: deepCopy(v.v)}
}

func deepCopy(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case *array.Array:
		return x.Clone()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Struct:
		dst := reflect.New(rv.Type())
		if err := copier.CopyWithOption(dst.Interface(), v, copier.Option{DeepCopy: true}); err != nil {
			return v
		}
		return dst.Elem().Interface()
	}
	return v
}

// HandleValue is a [Value] holding a graphics object handle.
// It accepts a [handle.Handle], a real scalar, or nil or an empty
// array for an invalid handle. An optional validator rejects handles
// that are not live.
type HandleValue struct {
	h     handle.Handle
	valid func(h handle.Handle) bool
}

// NewHandle returns a new handle value. valid may be nil.
func NewHandle(h handle.Handle, valid func(h handle.Handle) bool) *HandleValue {
	return &HandleValue{h: h, valid: valid}
}

func (v *HandleValue) Kind() Kind { return KindHandle }

func (v *HandleValue) Get() any { return v.h }

// Handle returns the handle.
func (v *HandleValue) Handle() handle.Handle { return v.h }

// SetValidator sets the function used to check that a new
// handle is live.
func (v *HandleValue) SetValidator(valid func(h handle.Handle) bool) { v.valid = valid }

func (v *HandleValue) Set(val any) (bool, error) {
	h, ok := handle.FromValue(val)
	if !ok {
		if a, isa := val.(*array.Array); isa && a.IsEmpty() {
			h, ok = handle.Invalid, true
		} else if f, isf := array.ToFloat(val); isf {
			h, ok = handle.Handle(f), true
		}
	}
	if !ok {
		return false, fmt.Errorf("%w: expected a graphics handle, got %v", ErrInvalidValue, val)
	}
	if h.IsValid() && v.valid != nil && !v.valid(h) {
		return false, fmt.Errorf("%w (= %v)", ErrInvalidHandle, h)
	}
	if h.Equal(v.h) || (!h.IsValid() && !v.h.IsValid()) {
		return false, nil
	}
	v.h = h
	return true, nil
}

func (v *HandleValue) Clone() Value { c := *v; return &c }
