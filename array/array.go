// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package array provides the numeric n-dimensional buffer used to store
// coordinate, color and other numeric property data of graphics objects.
//
// Values are stored as float64 in column-major order, tagged with the
// numeric [Class] they were created as, so that type constraints on
// properties can be checked.
package array

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Class is the numeric class of an [Array].
type Class string

const (
	Double  Class = "double"
	Single  Class = "single"
	Logical Class = "logical"
	Int8    Class = "int8"
	Int16   Class = "int16"
	Int32   Class = "int32"
	Int64   Class = "int64"
	Uint8   Class = "uint8"
	Uint16  Class = "uint16"
	Uint32  Class = "uint32"
	Uint64  Class = "uint64"
)

// Classes lists all of the known classes.
var Classes = []Class{Double, Single, Logical, Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64}

// IsInteger returns whether the class holds integer values.
func (c Class) IsInteger() bool {
	switch c {
	case Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64:
		return true
	}
	return false
}

// Array is an n-dimensional numeric buffer with at least two dimensions.
// The zero value is an empty 0x0 double array.
type Array struct {
	class Class
	dims  []int
	data  []float64
}

// New returns a zero-filled array of the given class and dimensions.
// Fewer than two dimensions are padded with 1s.
func New(class Class, dims ...int) *Array {
	dims = normDims(dims)
	return &Array{class: class, dims: dims, data: make([]float64, numel(dims))}
}

// Empty returns an empty 0x0 double array.
func Empty() *Array {
	return New(Double, 0, 0)
}

// Scalar returns a 1x1 double array holding v.
func Scalar(v float64) *Array {
	return &Array{class: Double, dims: []int{1, 1}, data: []float64{v}}
}

// Row returns a 1xN double array holding vals.
func Row(vals ...float64) *Array {
	return &Array{class: Double, dims: []int{1, len(vals)}, data: cloneData(vals)}
}

// Column returns an Nx1 double array holding vals.
func Column(vals ...float64) *Array {
	return &Array{class: Double, dims: []int{len(vals), 1}, data: cloneData(vals)}
}

// Matrix returns a double array from the given rows, which must
// all have the same length.
func Matrix(rows [][]float64) (*Array, error) {
	nr := len(rows)
	nc := 0
	if nr > 0 {
		nc = len(rows[0])
	}
	a := New(Double, nr, nc)
	for r, row := range rows {
		if len(row) != nc {
			return nil, fmt.Errorf("array.Matrix: row %d has %d columns, expected %d", r, len(row), nc)
		}
		for c, v := range row {
			a.data[c*nr+r] = v
		}
	}
	return a, nil
}

// FromData returns an array of the given class and dimensions
// using data in column-major order.
func FromData(class Class, data []float64, dims ...int) (*Array, error) {
	dims = normDims(dims)
	if n := numel(dims); n != len(data) {
		return nil, fmt.Errorf("array.FromData: %d values do not fit dimensions %v", len(data), dims)
	}
	return &Array{class: class, dims: dims, data: cloneData(data)}, nil
}

func normDims(dims []int) []int {
	d := slices.Clone(dims)
	for len(d) < 2 {
		d = append(d, 1)
	}
	for len(d) > 2 && d[len(d)-1] == 1 {
		d = d[:len(d)-1]
	}
	return d
}

func numel(dims []int) int {
	n := 1
	for _, d := range dims {
		n *= d
	}
	return n
}

// Class returns the numeric class of the array.
func (a *Array) Class() Class {
	if a.class == "" {
		return Double
	}
	return a.class
}

// Dims returns a copy of the dimensions of the array.
func (a *Array) Dims() []int {
	if len(a.dims) == 0 {
		return []int{0, 0}
	}
	return slices.Clone(a.dims)
}

// NDims returns the number of dimensions.
func (a *Array) NDims() int {
	return max(2, len(a.dims))
}

// Rows returns the size of the first dimension.
func (a *Array) Rows() int {
	if len(a.dims) == 0 {
		return 0
	}
	return a.dims[0]
}

// Cols returns the size of the second dimension.
func (a *Array) Cols() int {
	if len(a.dims) < 2 {
		return 0
	}
	return a.dims[1]
}

// Len returns the total number of elements.
func (a *Array) Len() int {
	return len(a.data)
}

// IsEmpty returns whether the array has no elements.
func (a *Array) IsEmpty() bool {
	return len(a.data) == 0
}

// IsScalar returns whether the array is 1x1.
func (a *Array) IsScalar() bool {
	return len(a.data) == 1
}

// IsVector returns whether the array is 1xN or Nx1.
func (a *Array) IsVector() bool {
	return len(a.dims) <= 2 && (a.Rows() == 1 || a.Cols() == 1)
}

// At returns the i-th element in column-major order.
func (a *Array) At(i int) float64 {
	return a.data[i]
}

// At2 returns the element at row r and column c.
func (a *Array) At2(r, c int) float64 {
	return a.data[c*a.Rows()+r]
}

// Set sets the i-th element in column-major order.
func (a *Array) Set(i int, v float64) {
	a.data[i] = v
}

// Values returns a copy of the elements in column-major order.
func (a *Array) Values() []float64 {
	return cloneData(a.data)
}

// Clone returns a deep copy of the array.
func (a *Array) Clone() *Array {
	return &Array{class: a.Class(), dims: a.Dims(), data: cloneData(a.data)}
}

// AsClass returns a copy of the array with the given class.
func (a *Array) AsClass(c Class) *Array {
	b := a.Clone()
	b.class = c
	return b
}

// Reshape returns a copy of the array with the given dimensions,
// which must hold the same number of elements.
func (a *Array) Reshape(dims ...int) (*Array, error) {
	dims = normDims(dims)
	if numel(dims) != a.Len() {
		return nil, fmt.Errorf("array.Reshape: cannot reshape %v array to %v", a.Dims(), dims)
	}
	return &Array{class: a.Class(), dims: dims, data: cloneData(a.data)}, nil
}

// Transpose returns the transpose of a two-dimensional array.
func (a *Array) Transpose() (*Array, error) {
	if a.NDims() > 2 {
		return nil, fmt.Errorf("array.Transpose: not defined for %d-dimensional arrays", a.NDims())
	}
	nr, nc := a.Rows(), a.Cols()
	b := &Array{class: a.Class(), dims: []int{nc, nr}, data: make([]float64, len(a.data))}
	for r := range nr {
		for c := range nc {
			b.data[r*nc+c] = a.data[c*nr+r]
		}
	}
	return b, nil
}

// Equal returns whether a and b have the same class, dimensions and
// values. NaN values compare equal to each other.
func (a *Array) Equal(b *Array) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Class() != b.Class() || !slices.Equal(a.Dims(), b.Dims()) {
		return false
	}
	return slices.EqualFunc(a.data, b.data, func(x, y float64) bool {
		return x == y || (math.IsNaN(x) && math.IsNaN(y))
	})
}

// String returns the array in bracketed row form, such as "[1 2; 3 4]".
// Arrays with more than two dimensions are shown flattened.
func (a *Array) String() string {
	sb := &strings.Builder{}
	sb.WriteByte('[')
	if a.NDims() > 2 {
		for i, v := range a.data {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		sb.WriteByte(']')
		return sb.String()
	}
	for r := range a.Rows() {
		if r > 0 {
			sb.WriteString("; ")
		}
		for c := range a.Cols() {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(a.At2(r, c), 'g', -1, 64))
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// cloneData copies d, always returning a non-nil slice.
func cloneData(d []float64) []float64 {
	c := make([]float64, len(d))
	copy(c, d)
	return c
}
