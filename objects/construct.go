// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objects

// Construct computes the derived state of a new object after its
// defaults have been applied: the data limits of plot objects, the
// labels and ticks of axes, the toolkit of figures, and the text
// extent of text and controls. It is called once by the manager,
// after the object has been adopted by its parent.
func (o *Object) Construct() error {
	if !o.IsValid() {
		return ErrInvalidObject
	}
	switch o.kind {
	case KindFigure:
		if o.stringProp("__graphics_toolkit__") == "" {
			o.store("__graphics_toolkit__", o.env.Toolkits().Default())
		}
	case KindAxes:
		return o.constructAxes()
	case KindLine:
		for _, name := range []string{"xdata", "ydata", "zdata"} {
			hookLineData(o, name)
		}
	case KindImage:
		hookImageData(o, "cdata")
	case KindPatch, KindSurface:
		for _, name := range []string{"xdata", "ydata", "zdata", "cdata", "alphadatamapping"} {
			hookSurfaceData(o, name)
		}
	case KindText:
		hookTextPosition(o, "position")
	case KindUIControl:
		o.updateExtent()
	}
	return nil
}
