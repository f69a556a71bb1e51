// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objects

import (
	"fmt"
	"log/slog"

	"cogentcore.org/graphics/base/errors"
	"cogentcore.org/graphics/toolkit"
)

// Toolkit returns the toolkit of the object: the one named by
// __graphics_toolkit__ for figures, that of the figure for the
// objects in it, and the default toolkit otherwise. The result
// is never nil, but it may be invalid.
func (o *Object) Toolkit() toolkit.Toolkit {
	if !o.IsValid() {
		return toolkit.NewBase("")
	}
	reg := o.env.Toolkits()
	fig := o.Figure()
	if fig == nil {
		return reg.DefaultToolkit()
	}
	name := fig.stringProp("__graphics_toolkit__")
	if name == "" {
		return reg.DefaultToolkit()
	}
	return reg.Find(name)
}

// IsToolkitInitialized returns whether the toolkit accepted the object.
func (o *Object) IsToolkitInitialized() bool {
	return o.IsValid() && o.tkInit
}

// InitializeToolkit offers the object to its toolkit, and then the
// children that the toolkit has not accepted yet, so that a figure
// whose toolkit comes back takes its whole tree along.
func (o *Object) InitializeToolkit() {
	if !o.IsValid() {
		return
	}
	if !o.tkInit {
		ok, err := o.Toolkit().Initialize(o)
		o.logToolkitError("initialize", err)
		o.tkInit = ok && err == nil
		if !o.tkInit {
			return
		}
	}
	for _, c := range o.childObjects() {
		if !c.tkInit {
			c.InitializeToolkit()
		}
	}
}

// FinalizeToolkit tells the toolkit that the object goes away.
// It does nothing if the toolkit never accepted the object.
func (o *Object) FinalizeToolkit() {
	if !o.IsValid() || !o.tkInit {
		return
	}
	o.logToolkitError("finalize", o.Toolkit().Finalize(o))
	o.tkInit = false
}

// finalizeTree finalizes the children of the object and then the
// object itself.
func (o *Object) finalizeTree() {
	for _, c := range o.childObjects() {
		c.finalizeTree()
	}
	o.FinalizeToolkit()
}

// logToolkitError logs an error of a toolkit operation. Calls to an
// invalid toolkit are expected when no toolkit is loaded, and are
// only logged at the debug level.
func (o *Object) logToolkitError(op string, err error) {
	switch {
	case err == nil:
	case errors.Is(err, toolkit.ErrInvalidToolkit):
		slog.Debug("toolkit", "op", op, "object", o.String(), "err", err)
	default:
		errors.Log(fmt.Errorf("%s %s: %w", op, o, err))
	}
}
