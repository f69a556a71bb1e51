// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package array

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	a := New(Uint8, 3)
	assert.Equal(t, []int{3, 1}, a.Dims())
	assert.Equal(t, Uint8, a.Class())
	assert.Equal(t, 3, a.Len())

	b := New(Double, 2, 3, 1)
	assert.Equal(t, []int{2, 3}, b.Dims())

	var z Array
	assert.True(t, z.IsEmpty())
	assert.Equal(t, []int{0, 0}, z.Dims())
	assert.Equal(t, Double, z.Class())
}

func TestMatrix(t *testing.T) {
	a, err := Matrix([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, 2, a.Rows())
	assert.Equal(t, 3, a.Cols())
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, a.Values())
	assert.Equal(t, 6.0, a.At2(1, 2))
	assert.Equal(t, "[1 2 3; 4 5 6]", a.String())

	_, err = Matrix([][]float64{{1, 2}, {3}})
	assert.Error(t, err)
}

func TestReshapeTranspose(t *testing.T) {
	a := Row(1, 2, 3, 4)
	b, err := a.Reshape(2, 2)
	require.NoError(t, err)
	assert.Equal(t, "[1 3; 2 4]", b.String())

	_, err = a.Reshape(3, 2)
	assert.Error(t, err)

	c, err := Column(1, 2, 3).Transpose()
	require.NoError(t, err)
	assert.True(t, c.Equal(Row(1, 2, 3)))

	m, err := Matrix([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	mt, err := m.Transpose()
	require.NoError(t, err)
	assert.Equal(t, "[1 4; 2 5; 3 6]", mt.String())

	_, err = New(Double, 2, 2, 2).Transpose()
	assert.Error(t, err)
}

func TestEqual(t *testing.T) {
	assert.True(t, Row(1, math.NaN()).Equal(Row(1, math.NaN())))
	assert.False(t, Row(1, 2).Equal(Column(1, 2)))
	assert.False(t, Row(1, 2).Equal(Row(1, 2).AsClass(Single)))
	assert.True(t, Empty().Equal(&Array{}))
	assert.False(t, Row(1).Equal(nil))
}

func TestClone(t *testing.T) {
	a := Row(1, 2)
	b := a.Clone()
	b.Set(0, 5)
	assert.Equal(t, 1.0, a.At(0))
	assert.Equal(t, 5.0, b.At(0))
}

func TestFrom(t *testing.T) {
	a, ok := From([]float64{0, 10})
	require.True(t, ok)
	assert.True(t, a.Equal(Row(0, 10)))

	a, ok = From(true)
	require.True(t, ok)
	assert.Equal(t, Logical, a.Class())

	a, ok = From(uint8(7))
	require.True(t, ok)
	assert.Equal(t, Uint8, a.Class())

	a, ok = From([][]float64{{1, 2}, {3, 4}})
	require.True(t, ok)
	assert.Equal(t, []int{2, 2}, a.Dims())

	_, ok = From("text")
	assert.False(t, ok)

	f, ok := ToFloat(Scalar(3))
	assert.True(t, ok)
	assert.Equal(t, 3.0, f)
	_, ok = ToFloat(Row(1, 2))
	assert.False(t, ok)
}

func TestLimits(t *testing.T) {
	a := Row(-3, -0.5, math.NaN(), 2, math.Inf(1), 0.25)
	l := a.Limits()
	assert.Equal(t, Limits{Min: -3, Max: 2, MinPos: 0.25, MaxNeg: -0.5}, l)
	assert.True(t, LimitsFromVector(l.Vector()) == l)

	e := Empty().Limits()
	assert.False(t, e.IsValid())
	assert.True(t, l.Vector().Len() == 4)
	assert.True(t, e.Vector().IsEmpty())

	m := NewLimits()
	m.Merge(e)
	assert.False(t, m.IsValid())
	m.Merge(Row(5, 6).Limits())
	m.Merge(l)
	assert.Equal(t, Limits{Min: -3, Max: 6, MinPos: 0.25, MaxNeg: -0.5}, m)

	r := LimitsFromVector(Row(1, 4))
	assert.Equal(t, 1.0, r.Min)
	assert.Equal(t, 4.0, r.Max)
}

func TestRange(t *testing.T) {
	var r Range
	r.SetInfinity()
	assert.False(t, r.IsValid())
	r.FitValueInRange(2)
	r.FitValueInRange(-1)
	assert.Equal(t, Range{Min: -1, Max: 2}, r)
	assert.Equal(t, 3.0, r.Range())
	assert.Equal(t, 0.5, r.Midpoint())
	assert.True(t, r.FitInRange(Range{Min: -5, Max: 0}))
	assert.True(t, r.InRange(-5))
}
