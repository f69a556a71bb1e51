// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manager

import (
	"cogentcore.org/graphics/handle"
	"cogentcore.org/graphics/objects"
	"cogentcore.org/graphics/toolkit"
)

// objectEnv is the [objects.Env] of the objects of a manager.
type objectEnv struct {
	m *Manager
}

func (e objectEnv) Object(h handle.Handle) *objects.Object { return e.m.Object(h) }

func (e objectEnv) IsHandleVisible(h handle.Handle) bool { return e.m.IsHandleVisible(h) }

func (e objectEnv) Toolkits() *toolkit.Registry { return e.m.reg }

func (e objectEnv) MakeObject(typeName string, parent handle.Handle) (handle.Handle, error) {
	return e.m.MakeHandle(typeName, parent, false, false, false)
}

func (e objectEnv) Free(h handle.Handle) error { return e.m.Free(h) }

// PushFigure only reorders the stack: the root already
// holds the new currentfigure.
func (e objectEnv) PushFigure(h handle.Handle) { e.m.pushFigure(h) }

func (e objectEnv) RenumberFigure(old handle.Handle, integer bool) (handle.Handle, error) {
	return e.m.RenumberFigure(old, integer)
}

func (e objectEnv) CallbackObject() handle.Handle { return e.m.CallbackObject() }
