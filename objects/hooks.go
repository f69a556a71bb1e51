// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objects

import (
	"fmt"
	"strings"

	"cogentcore.org/graphics/handle"
	"cogentcore.org/graphics/props"
)

// hookFunc is an update hook, run after a user set changed the named
// property. Hooks update derived properties with [Object.store], so
// they never notify the toolkit themselves.
type hookFunc func(o *Object, name string)

// setterFunc replaces the plain set of a property: it validates and
// stores v in p, with the side effects the property needs, and
// reports whether the value changed.
type setterFunc func(o *Object, p props.Property, v any, notify bool) (bool, error)

// getterFunc computes the value of a property on get.
type getterFunc func(o *Object) any

// the tables are indexed by kind, with KindInvalid holding the
// entries shared by all kinds. Keys are lower case property names.
var (
	hooks   [KindN]map[string]hookFunc
	setters [KindN]map[string]setterFunc
	getters [KindN]map[string]getterFunc
)

func addHook(fn hookFunc, k Kind, names ...string) {
	if hooks[k] == nil {
		hooks[k] = map[string]hookFunc{}
	}
	for _, n := range names {
		hooks[k][n] = fn
	}
}

func addSetter(fn setterFunc, k Kind, names ...string) {
	if setters[k] == nil {
		setters[k] = map[string]setterFunc{}
	}
	for _, n := range names {
		setters[k][n] = fn
	}
}

func addGetter(fn getterFunc, k Kind, names ...string) {
	if getters[k] == nil {
		getters[k] = map[string]getterFunc{}
	}
	for _, n := range names {
		getters[k][n] = fn
	}
}

func hookFor(k Kind, name string) hookFunc {
	if fn := hooks[k][name]; fn != nil {
		return fn
	}
	return hooks[KindInvalid][name]
}

func setterFor(k Kind, name string) setterFunc {
	name = strings.ToLower(name)
	if fn := setters[k][name]; fn != nil {
		return fn
	}
	return setters[KindInvalid][name]
}

func getterFor(k Kind, name string) getterFunc {
	name = strings.ToLower(name)
	if fn := getters[k][name]; fn != nil {
		return fn
	}
	return getters[KindInvalid][name]
}

func init() {
	addSetter(setParent, KindInvalid, "parent")

	addHook(hookLineData, KindLine, "xdata", "ydata", "zdata")
	addHook(hookImageData, KindImage, "xdata", "ydata", "cdata", "cdatamapping")
	for _, k := range []Kind{KindPatch, KindSurface} {
		addHook(hookSurfaceData, k, "xdata", "ydata", "zdata", "cdata", "cdatamapping", "alphadata", "facevertexalphadata", "facevertexcdata", "alphadatamapping", "vertices")
	}
}

// setParent moves the object below a new parent.
func setParent(o *Object, p props.Property, v any, notify bool) (bool, error) {
	h, ok := handle.FromValue(v)
	if !ok || !h.IsValid() {
		return false, fmt.Errorf("set: %w: parent must be a graphics handle, got %v", props.ErrInvalidValue, v)
	}
	np := o.env.Object(h)
	switch {
	case !np.IsValid():
		return false, fmt.Errorf("set: %w (= %v)", props.ErrInvalidHandle, h)
	case o.IsAncestorOf(h):
		return false, fmt.Errorf("set: an object cannot be its own ancestor")
	case o.kind == KindRoot:
		return false, fmt.Errorf("set: the root object has no parent")
	}
	old := o.ParentObject()
	changed, err := p.SetWith(h, false, notify)
	if err != nil || !changed {
		return changed, err
	}
	if old != nil {
		old.RemoveChild(o.h)
		old.ChildRemoved(o.h)
	}
	np.Adopt(o.h)
	np.ChildAdded(o)
	return true, nil
}

// ChildAdded updates the object after c was adopted.
func (o *Object) ChildAdded(c *Object) {
	if !o.IsValid() || !c.kind.HasDataLimits() {
		return
	}
	for _, axis := range limitAxes {
		o.childLimitsChanged(axis)
	}
}

// ChildRemoved updates the object after the child h was removed.
func (o *Object) ChildRemoved(h handle.Handle) {
	if !o.IsValid() {
		return
	}
	switch o.kind {
	case KindAxes, KindGroup:
		if o.kind == KindAxes {
			for _, name := range []string{"xlabel", "ylabel", "zlabel", "title"} {
				if o.handleProp(name).Equal(h) {
					o.store(name, handle.Invalid)
				}
			}
		}
		for _, axis := range limitAxes {
			o.childLimitsChanged(axis)
		}
	case KindFigure:
		if o.handleProp("currentaxes").Equal(h) {
			o.store("currentaxes", o.firstChild(KindAxes))
		}
	case KindRoot:
		if o.handleProp("currentfigure").Equal(h) {
			o.store("currentfigure", handle.Invalid)
		}
	}
}

// firstChild returns the most recent child of the given kind.
func (o *Object) firstChild(k Kind) handle.Handle {
	for _, c := range o.childObjects() {
		if c.kind == k {
			return c.h
		}
	}
	return handle.Invalid
}
