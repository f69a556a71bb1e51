// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"fmt"
	"slices"

	"cogentcore.org/graphics/array"
	"cogentcore.org/graphics/handle"
)

// ChildrenValue is a [Value] holding the ordered list of the child
// handles of an object, most recently adopted first. A visibility
// function splits the list into visible and hidden children; Get
// returns the visible ones, and Set only accepts a reordering of them.
type ChildrenValue struct {
	kids    []handle.Handle
	visible func(h handle.Handle) bool
}

// NewChildren returns a new, empty children value.
// visible may be nil, in which case all children are visible.
func NewChildren(visible func(h handle.Handle) bool) *ChildrenValue {
	return &ChildrenValue{visible: visible}
}

// SetVisibility sets the function deciding which children are visible.
func (v *ChildrenValue) SetVisibility(visible func(h handle.Handle) bool) {
	v.visible = visible
}

func (v *ChildrenValue) Kind() Kind { return KindChildren }

// Get returns the visible children.
func (v *ChildrenValue) Get() any { return v.Visible() }

func (v *ChildrenValue) isVisible(h handle.Handle) bool {
	return v.visible == nil || v.visible(h)
}

// Visible returns the visible children in order.
func (v *ChildrenValue) Visible() []handle.Handle {
	vis := []handle.Handle{}
	for _, h := range v.kids {
		if v.isVisible(h) {
			vis = append(vis, h)
		}
	}
	return vis
}

// Hidden returns the hidden children in order.
func (v *ChildrenValue) Hidden() []handle.Handle {
	hid := []handle.Handle{}
	for _, h := range v.kids {
		if !v.isVisible(h) {
			hid = append(hid, h)
		}
	}
	return hid
}

// All returns all of the children in order.
func (v *ChildrenValue) All() []handle.Handle {
	return slices.Clone(v.kids)
}

// Len returns the number of children, visible or not.
func (v *ChildrenValue) Len() int { return len(v.kids) }

// Contains returns whether h is a child.
func (v *ChildrenValue) Contains(h handle.Handle) bool {
	return slices.IndexFunc(v.kids, h.Equal) >= 0
}

// Set reorders the visible children. val must be a permutation of
// the visible children; the hidden children follow them in their
// current order.
func (v *ChildrenValue) Set(val any) (bool, error) {
	nk, err := toHandles(val)
	if err != nil {
		return false, err
	}
	vis := v.Visible()
	if len(nk) != len(vis) {
		return false, ErrNotPermutation
	}
	a, b := slices.Clone(vis), slices.Clone(nk)
	slices.SortFunc(a, handle.Compare)
	slices.SortFunc(b, handle.Compare)
	if !slices.EqualFunc(a, b, handle.Handle.Equal) {
		return false, ErrNotPermutation
	}
	kids := append(nk, v.Hidden()...)
	if slices.EqualFunc(kids, v.kids, handle.Handle.Equal) {
		return false, nil
	}
	v.kids = kids
	return true, nil
}

func toHandles(val any) ([]handle.Handle, error) {
	switch x := val.(type) {
	case []handle.Handle:
		return slices.Clone(x), nil
	case []float64:
		hs := make([]handle.Handle, len(x))
		for i, f := range x {
			hs[i] = handle.Handle(f)
		}
		return hs, nil
	case *array.Array:
		return toHandles(x.Values())
	}
	return nil, fmt.Errorf("%w: expected a list of handles, got %T", ErrInvalidValue, val)
}

// Adopt adds h as the first child.
func (v *ChildrenValue) Adopt(h handle.Handle) {
	v.kids = slices.Insert(v.kids, 0, h)
}

// Remove removes h from the children, returning whether it was found.
func (v *ChildrenValue) Remove(h handle.Handle) bool {
	i := slices.IndexFunc(v.kids, h.Equal)
	if i < 0 {
		return false
	}
	v.kids = slices.Delete(v.kids, i, i+1)
	return true
}

// Renumber replaces the child old with new in place.
func (v *ChildrenValue) Renumber(old, new handle.Handle) error {
	i := slices.IndexFunc(v.kids, old.Equal)
	if i < 0 {
		return fmt.Errorf("children: invalid child handle %v", old)
	}
	v.kids[i] = new
	return nil
}

func (v *ChildrenValue) Clone() Value {
	c := *v
	c.kids = slices.Clone(v.kids)
	return &c
}
