// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package props provides the typed, validated property cells that
// make up the state of graphics objects, and the tables that hold them.
//
// A [Property] is a shared cell: copying the Property value shares the
// cell, so that a change made through one copy is seen by all of them,
// until one side calls [Property.Clone] to get an independent deep copy.
// The cell carries a reference count maintained by [Property.Ref] and
// [Property.Release]; it is destroyed when the count reaches zero.
//
// Each property holds a [Value] variant that validates and coerces the
// values it is given: see the New* functions for the available kinds.
package props

import (
	"fmt"
	"sync/atomic"

	"cogentcore.org/graphics/handle"
)

// Value is the variant payload of a [Property]. Set validates and
// stores v, reporting whether the stored value changed; on error the
// stored value must be left unchanged. Get returns the canonical
// current value.
type Value interface {
	Kind() Kind
	Get() any
	Set(v any) (bool, error)
	Clone() Value
}

// Notifier receives the change notifications of the properties of
// an object. It is implemented by the owning graphics object.
type Notifier interface {

	// MarkModified marks the owner as modified.
	MarkModified()

	// NotifyToolkit tells the rendering toolkit that the property
	// with the given id changed.
	NotifyToolkit(id int)
}

// Property is a named, typed value cell belonging to a graphics object.
// The zero Property is invalid.
type Property struct {
	c *cell
}

type cell struct {
	refs      atomic.Int32
	id        int
	name      string
	owner     handle.Handle
	notifier  Notifier
	hidden    bool
	value     Value
	listeners Listeners
}

// New returns a new property with the given name, owner and value,
// holding one reference. Its id is -1 until set with [Property.SetID].
func New(name string, owner handle.Handle, v Value) Property {
	c := &cell{id: -1, name: name, owner: owner, value: v}
	c.refs.Store(1)
	if nv, ok := v.(interface{ setName(string) }); ok {
		nv.setName(name)
	}
	return Property{c: c}
}

// IsValid returns whether the property refers to a live cell.
func (p Property) IsValid() bool {
	return p.c != nil && p.c.refs.Load() > 0
}

// Ref adds a reference to the shared cell and returns p.
func (p Property) Ref() Property {
	if p.c != nil {
		p.c.refs.Add(1)
	}
	return p
}

// Release drops a reference to the shared cell. When the last
// reference is dropped the cell is destroyed: its value and
// listeners are cleared.
func (p Property) Release() {
	if p.c == nil {
		return
	}
	if p.c.refs.Add(-1) == 0 {
		p.c.value = nil
		p.c.listeners = nil
		p.c.notifier = nil
	}
}

// Refs returns the number of references to the shared cell.
func (p Property) Refs() int {
	if p.c == nil {
		return 0
	}
	return int(p.c.refs.Load())
}

// Clone returns a deep copy of the property in a new cell with one
// reference. Listeners and the notifier are not copied.
func (p Property) Clone() Property {
	if !p.IsValid() {
		return Property{}
	}
	c := &cell{id: p.c.id, name: p.c.name, owner: p.c.owner, hidden: p.c.hidden, value: p.c.value.Clone()}
	c.refs.Store(1)
	return Property{c: c}
}

// Name returns the name of the property.
func (p Property) Name() string {
	if p.c == nil {
		return ""
	}
	return p.c.name
}

// ID returns the stable integer id used for toolkit notification,
// or -1 for properties that are never forwarded to the toolkit.
func (p Property) ID() int {
	if p.c == nil {
		return -1
	}
	return p.c.id
}

// SetID sets the toolkit id of the property.
func (p Property) SetID(id int) Property {
	p.c.id = id
	return p
}

// Owner returns the handle of the owning object.
func (p Property) Owner() handle.Handle {
	if p.c == nil {
		return handle.Invalid
	}
	return p.c.owner
}

// SetOwner sets the owning object handle and the notifier that
// receives the change notifications of the property.
func (p Property) SetOwner(h handle.Handle, n Notifier) Property {
	p.c.owner = h
	p.c.notifier = n
	return p
}

// Hidden returns whether the property is hidden from enumeration.
func (p Property) Hidden() bool {
	return p.c != nil && p.c.hidden
}

// SetHidden sets whether the property is hidden from enumeration.
func (p Property) SetHidden(hidden bool) Property {
	p.c.hidden = hidden
	return p
}

// Kind returns the kind of the property value.
func (p Property) Kind() Kind {
	if !p.IsValid() {
		return KindAny
	}
	return p.c.value.Kind()
}

// Value returns the variant payload of the property,
// for access to kind-specific operations. See [As].
func (p Property) Value() Value {
	if !p.IsValid() {
		return nil
	}
	return p.c.value
}

// As returns the payload of p as the given variant type.
func As[T Value](p Property) (T, bool) {
	v, ok := p.Value().(T)
	return v, ok
}

// Get returns the canonical current value of the property.
func (p Property) Get() any {
	if !p.IsValid() {
		return nil
	}
	return p.c.value.Get()
}

// Set sets the property to v, running the PostSet listeners and
// notifying the toolkit. See [Property.SetWith].
func (p Property) Set(v any) (bool, error) {
	return p.SetWith(v, true, true)
}

// SetWith validates and stores v. On a change, it marks the owner
// modified, then notifies the toolkit if notify is set and the
// property has an id, then runs the PostSet listeners if run is set,
// in that order. It returns whether the value changed. A value that
// fails validation leaves the property unchanged.
func (p Property) SetWith(v any, run, notify bool) (bool, error) {
	if !p.IsValid() {
		return false, fmt.Errorf("set: %w", ErrReleased)
	}
	changed, err := p.c.value.Set(v)
	if err != nil {
		return false, fmt.Errorf("set: %s property %q: %w", p.c.value.Kind(), p.c.name, err)
	}
	if !changed {
		return false, nil
	}
	if n := p.c.notifier; n != nil {
		n.MarkModified()
		if notify && p.c.id >= 0 {
			n.NotifyToolkit(p.c.id)
		}
	}
	if run {
		return true, p.RunListeners(PostSet)
	}
	return true, nil
}

// AddListener adds a listener for the given phase. Adding a
// [Persistent] listener also adds it as a [PostSet] listener.
func (p Property) AddListener(phase ListenerPhases, fn Listener) ListenerID {
	if !p.IsValid() {
		return 0
	}
	if phase == Persistent {
		id := p.c.listeners.Add(PostSet, fn)
		p.c.listeners.add(Persistent, listener{id: id, fn: fn})
		return id
	}
	return p.c.listeners.Add(phase, fn)
}

// DeleteListener removes the listener with the given id from the
// given phase, returning whether it was found.
func (p Property) DeleteListener(phase ListenerPhases, id ListenerID) bool {
	if !p.IsValid() {
		return false
	}
	return p.c.listeners.Delete(phase, id)
}

// DeleteListeners removes all listeners of the given phase,
// keeping persistent ones unless phase is [Persistent].
func (p Property) DeleteListeners(phase ListenerPhases) {
	if !p.IsValid() {
		return
	}
	p.c.listeners.DeleteAll(phase)
}

// NumListeners returns the number of listeners of the given phase.
func (p Property) NumListeners(phase ListenerPhases) int {
	if !p.IsValid() {
		return 0
	}
	return p.c.listeners.Len(phase)
}

// RunListeners runs the listeners of the given phase in
// registration order, stopping at the first error.
func (p Property) RunListeners(phase ListenerPhases) error {
	if !p.IsValid() {
		return nil
	}
	return p.c.listeners.Call(phase, p)
}

func (p Property) String() string {
	if !p.IsValid() {
		return "<invalid property>"
	}
	return fmt.Sprintf("%s = %v", p.c.name, p.c.value.Get())
}
