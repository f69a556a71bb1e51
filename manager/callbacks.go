// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manager

import (
	"fmt"

	"cogentcore.org/graphics/handle"
	"cogentcore.org/graphics/props"
)

// callbackFrame is an entry of the callback stack.
type callbackFrame struct {
	h             handle.Handle
	name          string
	interruptible bool
}

// ExecuteCallback runs the named callback of the object h right away
// with the given event data. The object is the callback object while
// the callback runs. A callback that is already running is not
// started again.
func (m *Manager) ExecuteCallback(h handle.Handle, name string, data any) error {
	if !m.ok() {
		return ErrNoManager
	}
	m.objMu.Lock()
	defer m.objMu.Unlock()
	obj := m.Object(h)
	if obj == nil {
		return fmt.Errorf("callback: %w (= %v)", props.ErrInvalidHandle, h)
	}
	cb, ok := obj.Callback(name)
	if !ok {
		return fmt.Errorf("callback: %w %q of %s objects", props.ErrUnknownProperty, name, obj.Type())
	}
	return m.executeCallback(h, name, cb, data)
}

// executeCallback runs cb as the named callback of h, with h pushed
// on the callback stack.
func (m *Manager) executeCallback(h handle.Handle, name string, cb *props.CallbackValue, data any) error {
	if cb.IsEmpty() {
		return nil
	}
	interruptible := true
	if obj := m.Object(h); obj != nil {
		if v, err := obj.Get("interruptible"); err == nil {
			interruptible = v == "on"
		}
	}
	m.mu.Lock()
	m.cbStack = append(m.cbStack, callbackFrame{h: h, name: name, interruptible: interruptible})
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		m.cbStack = m.cbStack[:len(m.cbStack)-1]
		m.mu.Unlock()
	}()
	err := cb.Execute(h, data, m.interp)
	if err != nil {
		err = fmt.Errorf("%s of %v: %w", name, h, err)
	}
	return err
}

// CallbackObject returns the object whose callback is running,
// or [handle.Invalid] if there is none.
func (m *Manager) CallbackObject() handle.Handle {
	if !m.ok() {
		return handle.Invalid
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.cbStack) == 0 {
		return handle.Invalid
	}
	return m.cbStack[len(m.cbStack)-1].h
}

// canInterrupt returns whether a new event may run now: no callback
// is running, or the running one is interruptible. It must be called
// with the lock held.
func (m *Manager) canInterrupt() bool {
	return len(m.cbStack) == 0 || m.cbStack[len(m.cbStack)-1].interruptible
}
