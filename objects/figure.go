// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objects

import (
	"fmt"

	"cogentcore.org/graphics/array"
	"cogentcore.org/graphics/base/errors"
	"cogentcore.org/graphics/handle"
	"cogentcore.org/graphics/props"
)

func init() {
	addSetter(setFigureToolkit, KindFigure, "__graphics_toolkit__")
	addSetter(setCurrentAxes, KindFigure, "currentaxes")
	addSetter(setCurrentFigure, KindRoot, "currentfigure")

	addHook(hookFigureVisible, KindFigure, "visible")
	addHook(hookFigureIntegerHandle, KindFigure, "integerhandle")
	addHook(hookFigurePosition, KindFigure, "position")

	addGetter(getCallbackObject, KindRoot, "callbackobject")
	addGetter(getScreenSize, KindRoot, "screensize")
	addGetter(getScreenResolution, KindRoot, "screenpixelsperinch")
}

// setFigureToolkit moves a figure and all of its children to another
// toolkit, which must be loadable.
func setFigureToolkit(o *Object, p props.Property, v any, notify bool) (bool, error) {
	name, ok := v.(string)
	if !ok {
		return false, fmt.Errorf("set: %w: the graphics toolkit must be a string, got %T", props.ErrInvalidValue, v)
	}
	if name == p.Get() {
		return false, nil
	}
	tk := o.env.Toolkits().Find(name)
	if !tk.IsValid() {
		return false, fmt.Errorf("set: invalid graphics toolkit %q", name)
	}
	o.finalizeTree()
	changed, err := p.SetWith(name, false, false)
	if err != nil {
		return false, err
	}
	o.InitializeToolkit()
	return changed, nil
}

func setCurrentAxes(o *Object, p props.Property, v any, notify bool) (bool, error) {
	h, ok := handle.FromValue(v)
	if ok && h.IsValid() {
		if c := o.env.Object(h); !c.IsValid() || c.kind != KindAxes || !o.HasChild(h) {
			return false, fmt.Errorf("set: %w: currentaxes must be an axes object of the figure", props.ErrInvalidValue)
		}
	}
	return p.SetWith(v, false, notify)
}

func setCurrentFigure(o *Object, p props.Property, v any, notify bool) (bool, error) {
	h, ok := handle.FromValue(v)
	if ok && h.IsValid() {
		if c := o.env.Object(h); !c.IsValid() || c.kind != KindFigure {
			return false, fmt.Errorf("set: %w: currentfigure must be a figure", props.ErrInvalidValue)
		}
	}
	changed, err := p.SetWith(v, false, notify)
	if changed && h.IsValid() {
		o.env.PushFigure(h)
	}
	return changed, err
}

// hookFigureVisible makes a figure that becomes visible the
// current figure.
func hookFigureVisible(o *Object, name string) {
	if !o.boolProp("visible") {
		return
	}
	if root := o.ParentObject(); root != nil {
		errors.Log(root.Set("currentfigure", o.h))
	}
}

func hookFigureIntegerHandle(o *Object, name string) {
	integer := o.boolProp("integerhandle")
	if o.h.IsFigureNumber() == integer {
		return
	}
	_, err := o.env.RenumberFigure(o.h, integer)
	errors.Log(err)
}

func hookFigurePosition(o *Object, name string) {
	for _, c := range o.childObjects() {
		if c.kind == KindAxes {
			if c.radioIs("fontunits", "normalized") {
				hookAxesFont(c, "fontunits")
			}
			c.updateTransform()
		}
	}
}

func getCallbackObject(o *Object) any {
	return o.env.CallbackObject()
}

// getScreenSize returns the screen size of the default toolkit,
// or the stored value when it has none.
func getScreenSize(o *Object) any {
	sz, err := o.env.Toolkits().DefaultToolkit().ScreenSize()
	if err != nil || sz.X <= 0 || sz.Y <= 0 {
		return o.prop("screensize").Get()
	}
	return array.Row(1, 1, float64(sz.X), float64(sz.Y))
}

func getScreenResolution(o *Object) any {
	dpi, err := o.env.Toolkits().DefaultToolkit().ScreenResolution()
	if err != nil || dpi <= 0 {
		return o.prop("screenpixelsperinch").Get()
	}
	return dpi
}

// TrackCurrentFigure records h as the currentfigure of the root,
// without reordering the figure stack or notifying the toolkit.
func (o *Object) TrackCurrentFigure(h handle.Handle) {
	if o.IsValid() && o.kind == KindRoot {
		o.store("currentfigure", h)
	}
}
