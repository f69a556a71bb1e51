// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manager

import (
	"fmt"

	"cogentcore.org/graphics/handle"
	"cogentcore.org/graphics/objects"
	"cogentcore.org/graphics/props"
)

// Get returns the named property of the object h.
func (m *Manager) Get(h handle.Handle, name string) (any, error) {
	if !m.ok() {
		return nil, ErrNoManager
	}
	m.objMu.Lock()
	defer m.objMu.Unlock()
	return m.Object(h).Get(name)
}

// Set sets the named property of the object h to v,
// notifying its toolkit.
func (m *Manager) Set(h handle.Handle, name string, v any) error {
	if !m.ok() {
		return ErrNoManager
	}
	m.objMu.Lock()
	defer m.objMu.Unlock()
	return m.Object(h).Set(name, v)
}

// SetMany sets properties of the object h from name, value pairs,
// in order. It stops at the first error.
func (m *Manager) SetMany(h handle.Handle, pairs ...any) error {
	if !m.ok() {
		return ErrNoManager
	}
	if len(pairs)%2 != 0 {
		return fmt.Errorf("set: %w: property names and values must come in pairs", props.ErrInvalidValue)
	}
	m.objMu.Lock()
	defer m.objMu.Unlock()
	obj := m.Object(h)
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			return fmt.Errorf("set: %w: a property name must be a string, got %T", props.ErrInvalidValue, pairs[i])
		}
		if err := obj.Set(name, pairs[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// GetAll returns the properties of the object h, including
// hidden ones when all is set.
func (m *Manager) GetAll(h handle.Handle, all bool) ([]objects.Field, error) {
	if !m.ok() {
		return nil, ErrNoManager
	}
	m.objMu.Lock()
	defer m.objMu.Unlock()
	return m.Object(h).GetAll(all)
}

// AddProperty adds a dynamic property to the object h.
func (m *Manager) AddProperty(h handle.Handle, name, typeName string, args ...any) error {
	if !m.ok() {
		return ErrNoManager
	}
	m.objMu.Lock()
	defer m.objMu.Unlock()
	return m.Object(h).AddProperty(name, typeName, args...)
}

// AddListener adds a listener to the named property of the object h.
func (m *Manager) AddListener(h handle.Handle, name string, phase props.ListenerPhases, fn props.Listener) (props.ListenerID, error) {
	if !m.ok() {
		return 0, ErrNoManager
	}
	m.objMu.Lock()
	defer m.objMu.Unlock()
	return m.Object(h).AddListener(name, phase, fn)
}

// DeleteListener removes a listener of the named property
// of the object h.
func (m *Manager) DeleteListener(h handle.Handle, name string, phase props.ListenerPhases, id props.ListenerID) error {
	if !m.ok() {
		return ErrNoManager
	}
	m.objMu.Lock()
	defer m.objMu.Unlock()
	return m.Object(h).DeleteListener(name, phase, id)
}
