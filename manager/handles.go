// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manager

import (
	"maps"
	"slices"

	"cogentcore.org/graphics/handle"
	"cogentcore.org/graphics/objects"
)

// nextFigureNumber returns the lowest positive integer that is not
// a live handle. It must be called with the lock held.
func (m *Manager) nextFigureNumber() handle.Handle {
	for n := handle.Handle(1); ; n++ {
		if _, ok := m.objs[n]; !ok {
			return n
		}
	}
}

// allocate returns a new handle for an object of kind k. It must be
// called with the lock held.
func (m *Manager) allocate(k objects.Kind, integerFigure bool) handle.Handle {
	if k == objects.KindFigure && integerFigure {
		return m.nextFigureNumber()
	}
	return m.alloc.Next()
}

// IsFreeHandle returns whether h has been freed and
// is waiting to be reused.
func (m *Manager) IsFreeHandle(h handle.Handle) bool {
	if !m.ok() {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alloc.IsFree(h)
}

// Object returns the live object with handle h, or nil. The nil
// object answers every operation with [objects.ErrInvalidObject].
func (m *Manager) Object(h handle.Handle) *objects.Object {
	if !m.ok() || !h.IsValid() {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.objs[h]
}

// Lookup converts v to the handle of a live object, returning
// [handle.Invalid] if it is not one.
func (m *Manager) Lookup(v any) handle.Handle {
	h, ok := handle.FromValue(v)
	if !ok || m.Object(h) == nil {
		return handle.Invalid
	}
	return h
}

// IsValidHandle returns whether h is the handle of a live object.
func (m *Manager) IsValidHandle(h handle.Handle) bool {
	return m.Object(h) != nil
}

// Root returns the root object.
func (m *Manager) Root() *objects.Object {
	return m.Object(handle.Root)
}

// IsHandleVisible returns whether h is a live handle that is visible:
// the root shows hidden handles, its handlevisibility is on, or it is
// callback and a callback is running.
func (m *Manager) IsHandleVisible(h handle.Handle) bool {
	if !m.ok() {
		return false
	}
	m.objMu.Lock()
	defer m.objMu.Unlock()
	o := m.Object(h)
	if o == nil {
		return false
	}
	if v, _ := m.Root().Get("showhiddenhandles"); v == "on" {
		return true
	}
	switch v, _ := o.Get("handlevisibility"); v {
	case "on":
		return true
	case "callback":
		return m.CallbackObject().IsValid()
	}
	return false
}

// HandleList returns the handles of the live objects in increasing
// order, leaving out those that are not visible unless showHidden.
func (m *Manager) HandleList(showHidden bool) []handle.Handle {
	if !m.ok() {
		return nil
	}
	m.mu.Lock()
	hs := slices.SortedFunc(maps.Keys(m.objs), handle.Compare)
	m.mu.Unlock()
	if showHidden {
		return hs
	}
	return m.visible(hs)
}

// FigureHandleList returns the figure stack, most recent first,
// leaving out figures that are not visible unless showHidden.
func (m *Manager) FigureHandleList(showHidden bool) []handle.Handle {
	if !m.ok() {
		return nil
	}
	m.mu.Lock()
	hs := slices.Clone(m.figures)
	m.mu.Unlock()
	if showHidden {
		return hs
	}
	return m.visible(hs)
}

// visible removes the handles that are not visible from hs.
func (m *Manager) visible(hs []handle.Handle) []handle.Handle {
	m.objMu.Lock()
	defer m.objMu.Unlock()
	return slices.DeleteFunc(hs, func(h handle.Handle) bool { return !m.IsHandleVisible(h) })
}
