// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package array

import "math"

const (
	MaxFloat64 float64 = 1.7976931348623158e+308
	MinFloat64 float64 = 2.2250738585072014e-308
)

// Range represents a min / max range for float64 values.
type Range struct {
	Min float64
	Max float64
}

// Set sets the min and max values
func (mr *Range) Set(mn, mx float64) {
	mr.Min = mn
	mr.Max = mx
}

// SetInfinity sets the Min to +MaxFloat, Max to -MaxFloat -- suitable for
// iteratively calling Fit*InRange
func (mr *Range) SetInfinity() {
	mr.Min = MaxFloat64
	mr.Max = -MaxFloat64
}

// IsValid returns true if Min <= Max
func (mr *Range) IsValid() bool {
	return mr.Min <= mr.Max
}

// InRange tests whether value is within the range (>= Min and <= Max)
func (mr *Range) InRange(val float64) bool {
	return val >= mr.Min && val <= mr.Max
}

// Range returns Max - Min
func (mr *Range) Range() float64 {
	return mr.Max - mr.Min
}

// Midpoint returns point halfway between Min and Max
func (mr *Range) Midpoint() float64 {
	return 0.5 * (mr.Max + mr.Min)
}

// FitValueInRange adjusts our Min, Max to fit given value within Min, Max range
// returns true if we had to adjust to fit.
func (mr *Range) FitValueInRange(val float64) bool {
	adj := false
	if val < mr.Min {
		mr.Min = val
		adj = true
	}
	if val > mr.Max {
		mr.Max = val
		adj = true
	}
	return adj
}

// FitInRange adjusts our Min, Max to fit within those of other Range
// returns true if we had to adjust to fit.
func (mr *Range) FitInRange(oth Range) bool {
	adj := false
	if oth.Min < mr.Min {
		mr.Min = oth.Min
		adj = true
	}
	if oth.Max > mr.Max {
		mr.Max = oth.Max
		adj = true
	}
	return adj
}

// Limits holds the extreme values of an array used for axis limit
// computation: the minimum and maximum, the smallest positive value
// (for log scales) and the largest negative value (for negative log
// scales). Non-finite values are ignored. A field with no
// contributing value is +Inf (Min, MinPos) or -Inf (Max, MaxNeg).
type Limits struct {
	Min    float64
	Max    float64
	MinPos float64
	MaxNeg float64
}

// NewLimits returns Limits with no contributing values.
func NewLimits() Limits {
	return Limits{Min: math.Inf(1), Max: math.Inf(-1), MinPos: math.Inf(1), MaxNeg: math.Inf(-1)}
}

// IsValid returns whether at least one finite value contributed.
func (l Limits) IsValid() bool {
	return l.Min <= l.Max
}

// Add includes v in the limits, ignoring non-finite values.
func (l *Limits) Add(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	l.Min = math.Min(l.Min, v)
	l.Max = math.Max(l.Max, v)
	if v > 0 && v < l.MinPos {
		l.MinPos = v
	}
	if v < 0 && v > l.MaxNeg {
		l.MaxNeg = v
	}
}

// Merge includes all of o in the limits.
func (l *Limits) Merge(o Limits) {
	if !o.IsValid() {
		return
	}
	l.Min = math.Min(l.Min, o.Min)
	l.Max = math.Max(l.Max, o.Max)
	l.MinPos = math.Min(l.MinPos, o.MinPos)
	l.MaxNeg = math.Max(l.MaxNeg, o.MaxNeg)
}

// Vector returns the limits as the 1x4 row [Min Max MinPos MaxNeg],
// or an empty array when no value contributed.
func (l Limits) Vector() *Array {
	if !l.IsValid() {
		return Empty()
	}
	return Row(l.Min, l.Max, l.MinPos, l.MaxNeg)
}

// LimitsFromVector is the inverse of [Limits.Vector]. Vectors of
// length 2 hold only Min and Max.
func LimitsFromVector(a *Array) Limits {
	l := NewLimits()
	if a == nil {
		return l
	}
	switch a.Len() {
	case 2:
		l.Add(a.At(0))
		l.Add(a.At(1))
	case 4:
		l.Min, l.Max, l.MinPos, l.MaxNeg = a.At(0), a.At(1), a.At(2), a.At(3)
	}
	return l
}

// Limits computes the limits of all elements of a.
func (a *Array) Limits() Limits {
	l := NewLimits()
	for _, v := range a.data {
		l.Add(v)
	}
	return l
}
