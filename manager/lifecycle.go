// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manager

import (
	"fmt"
	"slices"

	"cogentcore.org/graphics/base/errors"
	"cogentcore.org/graphics/handle"
	"cogentcore.org/graphics/objects"
	"cogentcore.org/graphics/props"
)

// MakeHandle creates a new object of the given type below parent and
// returns its handle. Figures get the lowest unused positive integer
// handle when integerFigure is set. The new object takes the defaults
// of its ancestors; it is then offered to its toolkit when notify is
// set, and its createfcn is run when runCreate is set.
func (m *Manager) MakeHandle(typeName string, parent handle.Handle, integerFigure, runCreate, notify bool) (handle.Handle, error) {
	if !m.ok() {
		return handle.Invalid, ErrNoManager
	}
	m.objMu.Lock()
	defer m.objMu.Unlock()
	k, ok := objects.KindFromName(typeName)
	if !ok || k == objects.KindRoot {
		return handle.Invalid, fmt.Errorf("makehandle: invalid object type %q", typeName)
	}
	m.mu.Lock()
	p := m.objs[parent]
	if p == nil || !parent.IsValid() {
		m.mu.Unlock()
		return handle.Invalid, fmt.Errorf("makehandle: %w (= %v) for the parent of a new %s", props.ErrInvalidHandle, parent, typeName)
	}
	h := m.allocate(k, integerFigure)
	return m.construct(k, h, p, integerFigure, runCreate, notify)
}

// MakeFigureHandle creates a new figure with the figure number n,
// which must not be in use.
func (m *Manager) MakeFigureHandle(n int, notify bool) (handle.Handle, error) {
	if !m.ok() {
		return handle.Invalid, ErrNoManager
	}
	m.objMu.Lock()
	defer m.objMu.Unlock()
	h := handle.Handle(n)
	m.mu.Lock()
	if _, used := m.objs[h]; used || n < 1 {
		m.mu.Unlock()
		return handle.Invalid, fmt.Errorf("makehandle: figure number %d is not available", n)
	}
	return m.construct(objects.KindFigure, h, m.objs[handle.Root], true, false, notify)
}

// construct makes the object of kind k with handle h below p. It is
// called with the lock held, which it releases once the object is in
// the handle map, before touching the object.
func (m *Manager) construct(k objects.Kind, h handle.Handle, p *objects.Object, integerFigure, runCreate, notify bool) (handle.Handle, error) {
	obj := objects.New(k, h, p.Handle(), m.env)
	m.objs[h] = obj
	if k == objects.KindFigure {
		m.figures = append([]handle.Handle{h}, m.figures...)
	}
	m.mu.Unlock()

	p.Adopt(h)
	obj.ApplyDefaults()
	if k == objects.KindFigure && !integerFigure {
		errors.Log(obj.SetWith("integerhandle", false, false))
	}
	if err := obj.Construct(); err != nil {
		errors.Log(m.Free(h))
		return handle.Invalid, fmt.Errorf("makehandle: %w", err)
	}
	p.ChildAdded(obj)
	switch k {
	case objects.KindFigure:
		m.syncCurrentFigure()
	case objects.KindAxes:
		if p.Kind() == objects.KindFigure {
			if ca, _ := p.Get("currentaxes"); !m.Lookup(ca).IsValid() {
				errors.Log(p.SetWith("currentaxes", h, false))
			}
		}
	}
	if notify {
		obj.InitializeToolkit()
	}
	m.logger.Debug("graphics object created", "type", k, "handle", h)
	if runCreate {
		errors.Log(m.ExecuteCallback(h, "createfcn", nil))
	}
	return h, nil
}

// Free deletes the object h and all of its children. The PreDelete
// listeners run first; then the object is marked as being deleted, its
// children are freed, its deletefcn runs and its toolkit finalizes it,
// before it is detached from its parent and its handle is freed.
// Freeing an object that is already being deleted does nothing.
func (m *Manager) Free(h handle.Handle) error {
	if !m.ok() {
		return ErrNoManager
	}
	if h.Equal(handle.Root) {
		return fmt.Errorf("free: the root object cannot be deleted")
	}
	m.objMu.Lock()
	defer m.objMu.Unlock()
	obj := m.Object(h)
	if obj == nil {
		return fmt.Errorf("free: %w (= %v)", props.ErrInvalidHandle, h)
	}
	if obj.IsBeingDeleted() {
		return nil
	}
	var errs []error
	errs = append(errs, obj.PrepareDelete())
	obj.MarkBeingDeleted()
	for _, c := range obj.Children() {
		errs = append(errs, m.Free(c))
	}
	errs = append(errs, m.ExecuteCallback(h, "deletefcn", nil))
	obj.FinalizeToolkit()

	if p := obj.ParentObject(); p != nil {
		p.RemoveChild(h)
		p.ChildRemoved(h)
	}
	m.mu.Lock()
	delete(m.objs, h)
	isFigure := slices.ContainsFunc(m.figures, h.Equal)
	m.figures = slices.DeleteFunc(m.figures, h.Equal)
	m.alloc.Release(h)
	m.mu.Unlock()
	if isFigure {
		m.syncCurrentFigure()
	}
	obj.Release()
	m.logger.Debug("graphics object deleted", "handle", h)
	return errors.Join(errs...)
}
