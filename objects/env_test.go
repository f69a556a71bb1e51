// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objects_test

import (
	"fmt"
	"slices"
	"testing"

	"cogentcore.org/graphics/handle"
	. "cogentcore.org/graphics/objects"
	"cogentcore.org/graphics/toolkit"
	"github.com/stretchr/testify/require"
)

// testEnv is a minimal single-threaded Env backed by a map.
type testEnv struct {
	objs  map[handle.Handle]*Object
	alloc *handle.Allocator
	reg   *toolkit.Registry
	figs  []handle.Handle
	cbo   handle.Handle
}

func newTestEnv(t *testing.T) (*testEnv, *toolkit.Trace) {
	reg := toolkit.NewRegistry()
	tk := toolkit.NewTrace("trace")
	require.NoError(t, reg.Load(tk))
	e := &testEnv{
		objs:  map[handle.Handle]*Object{},
		alloc: handle.NewAllocator(false),
		reg:   reg,
		cbo:   handle.Invalid,
	}
	e.objs[handle.Root] = New(KindRoot, handle.Root, handle.Invalid, e)
	return e, tk
}

func (e *testEnv) root() *Object { return e.objs[handle.Root] }

// create makes a new object and offers it to the toolkit.
func (e *testEnv) create(t *testing.T, typeName string, parent *Object) *Object {
	h, err := e.MakeObject(typeName, parent.Handle())
	require.NoError(t, err)
	o := e.Object(h)
	o.InitializeToolkit()
	return o
}

func (e *testEnv) Object(h handle.Handle) *Object { return e.objs[h] }

func (e *testEnv) IsHandleVisible(h handle.Handle) bool {
	o := e.objs[h]
	if o == nil {
		return false
	}
	v, _ := o.Get("handlevisibility")
	return v == "on"
}

func (e *testEnv) Toolkits() *toolkit.Registry { return e.reg }

func (e *testEnv) MakeObject(typeName string, parent handle.Handle) (handle.Handle, error) {
	k, ok := KindFromName(typeName)
	if !ok || k == KindRoot {
		return handle.Invalid, fmt.Errorf("invalid object type %q", typeName)
	}
	p := e.objs[parent]
	if p == nil {
		return handle.Invalid, fmt.Errorf("no parent %v", parent)
	}
	h := e.alloc.Next()
	if k == KindFigure {
		h = handle.Handle(len(e.figs) + 1)
		e.figs = append(e.figs, h)
	}
	o := New(k, h, parent, e)
	e.objs[h] = o
	p.Adopt(h)
	o.ApplyDefaults()
	if err := o.Construct(); err != nil {
		return handle.Invalid, err
	}
	p.ChildAdded(o)
	return h, nil
}

func (e *testEnv) Free(h handle.Handle) error {
	o := e.objs[h]
	if o == nil {
		return fmt.Errorf("no object %v", h)
	}
	err := o.PrepareDelete()
	o.MarkBeingDeleted()
	for _, c := range o.Children() {
		e.Free(c)
	}
	o.FinalizeToolkit()
	if p := o.ParentObject(); p != nil {
		p.RemoveChild(h)
		p.ChildRemoved(h)
	}
	delete(e.objs, h)
	e.alloc.Release(h)
	o.Release()
	return err
}

func (e *testEnv) PushFigure(h handle.Handle) {
	e.figs = slices.DeleteFunc(e.figs, h.Equal)
	e.figs = append([]handle.Handle{h}, e.figs...)
}

func (e *testEnv) RenumberFigure(old handle.Handle, integer bool) (handle.Handle, error) {
	return handle.Invalid, fmt.Errorf("renumbering is not supported")
}

func (e *testEnv) CallbackObject() handle.Handle { return e.cbo }

// toolkitTrace loads a new trace toolkit with the given name.
func toolkitTrace(t *testing.T, e *testEnv, name string) *toolkit.Trace {
	tk := toolkit.NewTrace(name)
	require.NoError(t, e.reg.Load(tk))
	return tk
}
