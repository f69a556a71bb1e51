// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manager

import (
	"cogentcore.org/graphics/toolkit"
)

// Toolkits returns the toolkit registry of the manager.
func (m *Manager) Toolkits() *toolkit.Registry {
	if m == nil {
		return toolkit.NewRegistry()
	}
	return m.reg
}

// RegisterToolkit advertises the toolkit name as available.
func (m *Manager) RegisterToolkit(name string) {
	if m.ok() {
		m.reg.Register(name)
	}
}

// UnregisterToolkit removes the toolkit name from the available ones.
func (m *Manager) UnregisterToolkit(name string) {
	if m.ok() {
		m.reg.Unregister(name)
	}
}

// LoadToolkit binds the given toolkit under its name.
func (m *Manager) LoadToolkit(tk toolkit.Toolkit) error {
	if !m.ok() {
		return ErrNoManager
	}
	return m.reg.Load(tk)
}

// UnloadToolkit unbinds the toolkit with the given name. Figures that
// use it get an invalid toolkit until it is loaded again.
func (m *Manager) UnloadToolkit(name string) {
	if m.ok() {
		m.reg.Unload(name)
	}
}

// FindToolkit returns the toolkit with the given name, which is
// invalid if it cannot be loaded.
func (m *Manager) FindToolkit(name string) toolkit.Toolkit {
	return m.Toolkits().Find(name)
}

// DefaultToolkit returns the toolkit of new figures.
func (m *Manager) DefaultToolkit() toolkit.Toolkit {
	return m.Toolkits().DefaultToolkit()
}

// SetDefaultToolkit sets the toolkit of new figures, which must
// be available.
func (m *Manager) SetDefaultToolkit(name string) error {
	if !m.ok() {
		return ErrNoManager
	}
	return m.reg.SetDefault(name)
}
