// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"fmt"
	"slices"

	"cogentcore.org/graphics/array"
)

// ArrayValue is a [Value] holding a numeric array, validated against
// lists of allowed classes and shapes. A shape constraint may use -1
// for "any size" in a dimension. An empty array is always accepted.
// The limits of the data are cached on every change.
type ArrayValue struct {
	data    *array.Array
	classes []array.Class
	shapes  [][]int
	check   func(a *array.Array) error
	limits  array.Limits
}

// NewArray returns a new array value holding a copy of a
// (an empty array when nil).
func NewArray(a *array.Array) *ArrayValue {
	if a == nil {
		a = array.Empty()
	}
	v := &ArrayValue{data: a.Clone()}
	v.limits = v.data.Limits()
	return v
}

// AddClass adds allowed classes. With none, any class is allowed.
func (v *ArrayValue) AddClass(classes ...array.Class) *ArrayValue {
	v.classes = append(v.classes, classes...)
	return v
}

// AddShape adds an allowed shape. With none, any shape is allowed.
func (v *ArrayValue) AddShape(dims ...int) *ArrayValue {
	v.shapes = append(v.shapes, slices.Clone(dims))
	return v
}

// SetCheck sets an additional validation function, called for
// non-empty arrays that pass the class and shape constraints.
func (v *ArrayValue) SetCheck(check func(a *array.Array) error) *ArrayValue {
	v.check = check
	return v
}

func (v *ArrayValue) Kind() Kind { return KindArray }

// Get returns a copy of the array.
func (v *ArrayValue) Get() any { return v.data.Clone() }

// Array returns a copy of the array.
func (v *ArrayValue) Array() *array.Array { return v.data.Clone() }

// Limits returns the cached limits of the data.
func (v *ArrayValue) Limits() array.Limits { return v.limits }

// Len returns the number of elements.
func (v *ArrayValue) Len() int { return v.data.Len() }

// At returns the i-th element in column-major order.
func (v *ArrayValue) At(i int) float64 { return v.data.At(i) }

// IsEmpty returns whether the array has no elements.
func (v *ArrayValue) IsEmpty() bool { return v.data.IsEmpty() }

func (v *ArrayValue) Set(val any) (bool, error) {
	a, err := v.validate(val)
	if err != nil {
		return false, err
	}
	return v.store(a), nil
}

func (v *ArrayValue) store(a *array.Array) bool {
	if a.Equal(v.data) {
		return false
	}
	v.data = a
	v.limits = a.Limits()
	return true
}

func (v *ArrayValue) validate(val any) (*array.Array, error) {
	a, ok := array.From(val)
	if !ok {
		return nil, fmt.Errorf("%w: expected a numeric array, got %T", ErrInvalidValue, val)
	}
	if a.IsEmpty() {
		return a, nil
	}
	if len(v.classes) > 0 && !slices.Contains(v.classes, a.Class()) {
		return nil, fmt.Errorf("%w: class %s not allowed, expected one of %v", ErrInvalidValue, a.Class(), v.classes)
	}
	if len(v.shapes) > 0 && !slices.ContainsFunc(v.shapes, func(s []int) bool { return shapeMatches(s, a.Dims()) }) {
		return nil, fmt.Errorf("%w: shape %v not allowed, expected one of %v", ErrInvalidValue, a.Dims(), v.shapes)
	}
	if v.check != nil {
		if err := v.check(a); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
	}
	return a, nil
}

func shapeMatches(shape, dims []int) bool {
	if len(shape) != len(dims) {
		return false
	}
	for i, s := range shape {
		if s != -1 && s != dims[i] {
			return false
		}
	}
	return true
}

func (v *ArrayValue) Clone() Value {
	c := *v
	c.data = v.data.Clone()
	c.classes = slices.Clone(v.classes)
	c.shapes = make([][]int, len(v.shapes))
	for i, s := range v.shapes {
		c.shapes[i] = slices.Clone(s)
	}
	return &c
}

// RowVectorValue is an [ArrayValue] restricted to vectors, which are
// always stored as 1xN rows: an Nx1 column is transposed.
type RowVectorValue struct {
	ArrayValue
}

// NewRowVector returns a new row vector value holding vals.
func NewRowVector(vals ...float64) *RowVectorValue {
	v := &RowVectorValue{ArrayValue: *NewArray(array.Row(vals...))}
	if len(vals) == 0 {
		v.data = array.Empty()
	}
	v.AddShape(-1, 1)
	v.AddShape(1, -1)
	return v
}

func (v *RowVectorValue) Kind() Kind { return KindRowVector }

// SetLength restricts the vector to exactly n elements.
func (v *RowVectorValue) SetLength(n int) *RowVectorValue {
	v.shapes = [][]int{{1, n}, {n, 1}}
	return v
}

// SetCheck sets an additional validation function. See [ArrayValue.SetCheck].
func (v *RowVectorValue) SetCheck(check func(a *array.Array) error) *RowVectorValue {
	v.check = check
	return v
}

// Values returns a copy of the elements.
func (v *RowVectorValue) Values() []float64 { return v.data.Values() }

func (v *RowVectorValue) Set(val any) (bool, error) {
	a, err := v.validate(val)
	if err != nil {
		return false, err
	}
	if !a.IsEmpty() && a.Cols() == 1 && a.Rows() != 1 {
		a, err = a.Transpose()
		if err != nil {
			return false, err
		}
	}
	return v.store(a), nil
}

func (v *RowVectorValue) Clone() Value {
	return &RowVectorValue{ArrayValue: *v.ArrayValue.Clone().(*ArrayValue)}
}
