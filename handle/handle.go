// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package handle provides the identifier of a live graphics object,
// and the allocator that issues and recycles those identifiers.
//
// A Handle is a real number so that a NaN sentinel can stand for an
// invalid or unassigned handle. Figures are numbered with small positive
// integers, the root is 0, and every other object gets a negative handle.
package handle

import (
	"math"
	"strconv"
)

// Handle identifies a graphics object.
type Handle float64

// Invalid is the sentinel for an unassigned or unknown handle.
var Invalid = Handle(math.NaN())

// Root is the handle of the root object.
const Root Handle = 0

// IsValid returns whether h is not the [Invalid] sentinel.
func (h Handle) IsValid() bool {
	return !math.IsNaN(float64(h))
}

// Value returns h as a float64.
func (h Handle) Value() float64 {
	return float64(h)
}

// Equal returns whether h and o are the same valid handle.
// An invalid handle is never equal to anything, itself included.
func (h Handle) Equal(o Handle) bool {
	return h.IsValid() && o.IsValid() && h == o
}

// Less orders handles numerically. Invalid handles sort
// before every valid handle.
func (h Handle) Less(o Handle) bool {
	return Compare(h, o) < 0
}

// Compare returns -1, 0 or +1 comparing a and b, with invalid handles
// ordered before all valid ones and equal to each other.
// It can be used with [slices.SortFunc].
func Compare(a, b Handle) int {
	av, bv := a.IsValid(), b.IsValid()
	switch {
	case !av && !bv:
		return 0
	case !av:
		return -1
	case !bv:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// IsFigureNumber returns whether h is a positive integer,
// the numbering used for integer figure handles.
func (h Handle) IsFigureNumber() bool {
	v := float64(h)
	return v > 0 && v == math.Trunc(v) && !math.IsInf(v, 0)
}

func (h Handle) String() string {
	if !h.IsValid() {
		return "NaN"
	}
	return strconv.FormatFloat(float64(h), 'g', -1, 64)
}

// FromValue converts a Go value holding a handle number into a
// Handle. It accepts a Handle, any real scalar type, and nil
// (which converts to [Invalid]).
func FromValue(v any) (Handle, bool) {
	switch x := v.(type) {
	case nil:
		return Invalid, true
	case Handle:
		return x, true
	case float64:
		return Handle(x), true
	case float32:
		return Handle(x), true
	case int:
		return Handle(x), true
	case int32:
		return Handle(x), true
	case int64:
		return Handle(x), true
	case uint:
		return Handle(x), true
	}
	return Invalid, false
}

// Parse parses a handle from its string form, accepting "NaN".
func Parse(s string) (Handle, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Invalid, err
	}
	return Handle(v), nil
}
