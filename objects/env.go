// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objects

import (
	"cogentcore.org/graphics/handle"
	"cogentcore.org/graphics/toolkit"
)

// Env is what a graphics object needs from the manager that owns it:
// access to the other objects and the few lifecycle services that
// update hooks use. An object never holds the manager lock; every
// Env method is called with the lock released.
type Env interface {

	// Object returns the live object with the given handle, or nil.
	Object(h handle.Handle) *Object

	// IsHandleVisible returns whether h is visible in the children
	// lists of its parent, according to its handlevisibility.
	IsHandleVisible(h handle.Handle) bool

	// Toolkits returns the toolkit registry.
	Toolkits() *toolkit.Registry

	// MakeObject creates a new object of the given type below parent,
	// without notifying the toolkit or running its create callback.
	MakeObject(typeName string, parent handle.Handle) (handle.Handle, error)

	// Free deletes the object h and its children.
	Free(h handle.Handle) error

	// PushFigure makes the figure h the top of the figure stack.
	PushFigure(h handle.Handle)

	// RenumberFigure gives the figure old a new handle, an integer
	// one when integer is set, and returns it.
	RenumberFigure(old handle.Handle, integer bool) (handle.Handle, error)

	// CallbackObject returns the object whose callback is running.
	CallbackObject() handle.Handle
}
