// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package handle

import (
	"math"
	"math/rand/v2"
	"slices"
)

// Allocator issues negative handles for non-figure objects.
// Released handles go onto a free set, and the smallest free
// handle is always reused before the counter advances.
// It is not safe for concurrent use; the owner serializes access.
type Allocator struct {

	// Fraction adds a random fractional part to every issued handle,
	// so that handles are visually distinct from figure numbers.
	Fraction bool

	next Handle
	free []Handle
	rand *rand.Rand
}

// NewAllocator returns a new [Allocator] whose first handle is -1
// (plus a fraction when fraction is on).
func NewAllocator(fraction bool) *Allocator {
	a := &Allocator{Fraction: fraction}
	if fraction {
		a.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	a.next = -1 - a.fraction()
	return a
}

func (a *Allocator) fraction() Handle {
	if !a.Fraction || a.rand == nil {
		return 0
	}
	return Handle(a.rand.Float64())
}

// Next returns the smallest free handle, or the next counter
// value when the free set is empty.
func (a *Allocator) Next() Handle {
	if len(a.free) > 0 {
		h := a.free[0]
		a.free = a.free[1:]
		return h
	}
	h := a.next
	a.next = Handle(math.Ceil(float64(h))) - 1 - a.fraction()
	return h
}

// Release puts h back on the free set. Only negative handles
// are recycled: figure numbers and the root never are.
func (a *Allocator) Release(h Handle) {
	if !h.IsValid() || h >= 0 {
		return
	}
	h = Handle(math.Ceil(float64(h))) - a.fraction()
	i, found := slices.BinarySearchFunc(a.free, h, Compare)
	if found {
		return
	}
	a.free = slices.Insert(a.free, i, h)
}

// IsFree returns whether h is currently on the free set.
func (a *Allocator) IsFree(h Handle) bool {
	_, found := slices.BinarySearchFunc(a.free, h, Compare)
	return found
}

// Free returns a copy of the free set, smallest first.
func (a *Allocator) Free() []Handle {
	return slices.Clone(a.free)
}

// Reset forgets all issued and freed handles.
func (a *Allocator) Reset() {
	a.free = nil
	a.next = -1 - a.fraction()
}
