// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package array

// From converts a Go value into an [Array]. It accepts arrays,
// real scalars, bools, and slices of them. One-dimensional slices
// become row vectors, and [][]float64 values are taken as rows.
// The returned array is always a copy.
func From(v any) (*Array, bool) {
	switch x := v.(type) {
	case *Array:
		if x == nil {
			return nil, false
		}
		return x.Clone(), true
	case Array:
		return x.Clone(), true
	case float64:
		return Scalar(x), true
	case float32:
		return scalarOf(Single, float64(x)), true
	case int:
		return Scalar(float64(x)), true
	case int8:
		return scalarOf(Int8, float64(x)), true
	case int16:
		return scalarOf(Int16, float64(x)), true
	case int32:
		return scalarOf(Int32, float64(x)), true
	case int64:
		return scalarOf(Int64, float64(x)), true
	case uint8:
		return scalarOf(Uint8, float64(x)), true
	case uint16:
		return scalarOf(Uint16, float64(x)), true
	case uint32:
		return scalarOf(Uint32, float64(x)), true
	case uint64:
		return scalarOf(Uint64, float64(x)), true
	case bool:
		if x {
			return scalarOf(Logical, 1), true
		}
		return scalarOf(Logical, 0), true
	case []float64:
		return Row(x...), true
	case [2]float64:
		return Row(x[:]...), true
	case [3]float64:
		return Row(x[:]...), true
	case [4]float64:
		return Row(x[:]...), true
	case []float32:
		a := New(Single, 1, len(x))
		for i, f := range x {
			a.data[i] = float64(f)
		}
		return a, true
	case []int:
		a := New(Double, 1, len(x))
		for i, n := range x {
			a.data[i] = float64(n)
		}
		return a, true
	case []bool:
		a := New(Logical, 1, len(x))
		for i, b := range x {
			if b {
				a.data[i] = 1
			}
		}
		return a, true
	case [][]float64:
		a, err := Matrix(x)
		return a, err == nil
	}
	return nil, false
}

func scalarOf(c Class, v float64) *Array {
	a := Scalar(v)
	a.class = c
	return a
}

// ToFloat converts a real scalar value, including a 1x1 [Array],
// into a float64.
func ToFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case *Array:
		if x != nil && x.IsScalar() {
			return x.At(0), true
		}
	case Array:
		if x.IsScalar() {
			return x.At(0), true
		}
	}
	return 0, false
}
