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

// pushFigure moves h to the top of the figure stack.
func (m *Manager) pushFigure(h handle.Handle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objs[h]; !ok {
		return
	}
	m.figures = slices.DeleteFunc(m.figures, h.Equal)
	m.figures = append([]handle.Handle{h}, m.figures...)
}

// syncCurrentFigure records the current figure on the root.
func (m *Manager) syncCurrentFigure() {
	m.Root().TrackCurrentFigure(m.CurrentFigure())
}

// PushFigure makes the figure h the current figure.
func (m *Manager) PushFigure(h handle.Handle) error {
	if !m.ok() {
		return ErrNoManager
	}
	m.objMu.Lock()
	defer m.objMu.Unlock()
	if o := m.Object(h); o == nil || o.Kind() != objects.KindFigure {
		return fmt.Errorf("pushfigure: %w (= %v) is not a figure", props.ErrInvalidHandle, h)
	}
	m.pushFigure(h)
	m.syncCurrentFigure()
	return nil
}

// PopFigure removes h from the figure stack. The figure itself
// stays alive.
func (m *Manager) PopFigure(h handle.Handle) {
	if !m.ok() {
		return
	}
	m.objMu.Lock()
	defer m.objMu.Unlock()
	m.mu.Lock()
	m.figures = slices.DeleteFunc(m.figures, h.Equal)
	m.mu.Unlock()
	m.syncCurrentFigure()
}

// CurrentFigure returns the most recent figure on the stack whose
// handle is visible, or [handle.Invalid] if there is none.
func (m *Manager) CurrentFigure() handle.Handle {
	if !m.ok() {
		return handle.Invalid
	}
	m.objMu.Lock()
	defer m.objMu.Unlock()
	for _, h := range m.FigureHandleList(true) {
		if m.IsHandleVisible(h) {
			return h
		}
	}
	return handle.Invalid
}

// CurrentAxes returns the current axes of the current figure: its
// currentaxes when that is visible, or else its first axes whose
// handle is visible. It returns [handle.Invalid] if there is none.
func (m *Manager) CurrentAxes() handle.Handle {
	if !m.ok() {
		return handle.Invalid
	}
	m.objMu.Lock()
	defer m.objMu.Unlock()
	fig := m.Object(m.CurrentFigure())
	if fig == nil {
		return handle.Invalid
	}
	if v, err := fig.Get("currentaxes"); err == nil {
		if h, ok := v.(handle.Handle); ok && m.IsHandleVisible(h) {
			return h
		}
	}
	for _, c := range fig.Children() {
		if o := m.Object(c); o != nil && o.Kind() == objects.KindAxes && m.IsHandleVisible(c) {
			return c
		}
	}
	return handle.Invalid
}

// RenumberFigure gives the figure old a new handle: the lowest unused
// figure number when integer is set, or else a new negative handle.
// The figure keeps its place on the stack and its children are
// reparented to the new handle.
func (m *Manager) RenumberFigure(old handle.Handle, integer bool) (handle.Handle, error) {
	if !m.ok() {
		return handle.Invalid, ErrNoManager
	}
	m.objMu.Lock()
	defer m.objMu.Unlock()
	m.mu.Lock()
	obj := m.objs[old]
	if obj == nil || obj.Kind() != objects.KindFigure {
		m.mu.Unlock()
		return handle.Invalid, fmt.Errorf("renumber: %w (= %v) is not a figure", props.ErrInvalidHandle, old)
	}
	var nh handle.Handle
	if integer {
		nh = m.nextFigureNumber()
	} else {
		nh = m.alloc.Next()
	}
	m.objs[nh] = obj
	delete(m.objs, old)
	if i := slices.IndexFunc(m.figures, old.Equal); i >= 0 {
		m.figures[i] = nh
	}
	m.alloc.Release(old)
	m.mu.Unlock()

	obj.Renumber(nh)
	errors.Log(m.Root().RenumberChild(old, nh))
	for _, c := range obj.Children() {
		m.Object(c).ParentRenumbered(nh)
	}
	if v, _ := obj.Get("integerhandle"); v != nil {
		if on := v == "on"; on != integer {
			errors.Log(obj.SetWith("integerhandle", integer, false))
		}
	}
	m.syncCurrentFigure()
	m.logger.Debug("figure renumbered", "old", old, "new", nh)
	return nh, nil
}

// CloseAllFigures deletes all of the figures.
func (m *Manager) CloseAllFigures() error {
	if !m.ok() {
		return ErrNoManager
	}
	m.objMu.Lock()
	defer m.objMu.Unlock()
	var errs []error
	for _, h := range m.FigureHandleList(true) {
		errs = append(errs, m.Free(h))
	}
	return errors.Join(errs...)
}

// Drawnow redraws the figure h, or every figure when h is
// [handle.Invalid], if it changed since it was last drawn.
func (m *Manager) Drawnow(h handle.Handle) error {
	if !m.ok() {
		return ErrNoManager
	}
	m.objMu.Lock()
	defer m.objMu.Unlock()
	figs := []handle.Handle{h}
	if !h.IsValid() {
		figs = m.FigureHandleList(true)
	}
	var errs []error
	for _, fh := range figs {
		fig := m.Object(fh)
		if fig == nil || fig.Kind() != objects.KindFigure {
			errs = append(errs, fmt.Errorf("drawnow: %w (= %v) is not a figure", props.ErrInvalidHandle, fh))
			continue
		}
		if !fig.IsModified() {
			continue
		}
		errs = append(errs, fig.Toolkit().Redraw(fig))
		m.clearModified(fig)
	}
	return errors.Join(errs...)
}

// clearModified clears the modified flag of o and its subtree.
func (m *Manager) clearModified(o *objects.Object) {
	o.ClearModified()
	for _, c := range o.Children() {
		if co := m.Object(c); co != nil {
			m.clearModified(co)
		}
	}
}

// Print renders the figure h to dest in the given format
// through its toolkit.
func (m *Manager) Print(h handle.Handle, format, dest string, mono bool) error {
	if !m.ok() {
		return ErrNoManager
	}
	m.objMu.Lock()
	defer m.objMu.Unlock()
	fig := m.Object(h)
	if fig == nil || fig.Kind() != objects.KindFigure {
		return fmt.Errorf("print: %w (= %v) is not a figure", props.ErrInvalidHandle, h)
	}
	return fig.Toolkit().Print(fig, format, dest, mono)
}
