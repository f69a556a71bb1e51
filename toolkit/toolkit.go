// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package toolkit defines the interface between graphics objects and
// the rendering backends (toolkits) that draw them, along with the
// registry of available and loaded toolkits.
package toolkit

import (
	"fmt"
	"image"

	"cogentcore.org/graphics/base/errors"
	"cogentcore.org/graphics/handle"
)

// ErrInvalidToolkit is returned by every operation of a toolkit
// that is not bound to a live backend.
var ErrInvalidToolkit = errors.New("invalid graphics toolkit")

// Object is the view of a graphics object that a toolkit gets.
type Object interface {

	// Handle returns the handle of the object.
	Handle() handle.Handle

	// Type returns the type name of the object, such as "figure".
	Type() string

	// Get returns the value of the named property.
	Get(name string) (any, error)
}

// Toolkit is a rendering backend. The object manager calls Initialize
// once after an object is constructed, Update once for each property
// change that is forwarded to the toolkit, and Finalize once before the
// object is deleted.
type Toolkit interface {

	// Name returns the name of the toolkit.
	Name() string

	// IsValid returns whether the toolkit is bound to a live backend.
	IsValid() bool

	// Initialize is called once for each new object. It returns
	// whether the toolkit accepted the object; if not, the object is
	// not finalized or updated, and Initialize may be tried again.
	Initialize(obj Object) (bool, error)

	// Update is called when the property with the given id changes.
	Update(obj Object, id int) error

	// Finalize is called once before an initialized object is deleted.
	Finalize(obj Object) error

	// Redraw redraws the given figure.
	Redraw(fig Object) error

	// Print renders the given figure to dest in the given format.
	Print(fig Object, format, dest string, mono bool) error

	// CanvasSize returns the size in pixels of the canvas of the
	// figure with the given handle.
	CanvasSize(h handle.Handle) (image.Point, error)

	// ScreenResolution returns the resolution of the screen in pixels per inch.
	ScreenResolution() (float64, error)

	// ScreenSize returns the size of the screen in pixels.
	ScreenSize() (image.Point, error)

	// Close releases the backend.
	Close() error
}

// Base is a [Toolkit] that is not bound to any backend: it answers
// every operation with [ErrInvalidToolkit]. It is returned for
// toolkits that are not loaded, and can be embedded by toolkits
// that only implement some of the operations.
type Base struct {
	name string
}

// NewBase returns a new invalid toolkit with the given name.
func NewBase(name string) *Base {
	return &Base{name: name}
}

func invalid(op string) error {
	return fmt.Errorf("%s: %w", op, ErrInvalidToolkit)
}

func (tk *Base) Name() string { return tk.name }

func (tk *Base) IsValid() bool { return false }

func (tk *Base) Initialize(obj Object) (bool, error) {
	return false, invalid("initialize")
}

func (tk *Base) Update(obj Object, id int) error { return invalid("update") }

func (tk *Base) Finalize(obj Object) error { return invalid("finalize") }

func (tk *Base) Redraw(fig Object) error { return invalid("redraw") }

func (tk *Base) Print(fig Object, format, dest string, mono bool) error {
	return invalid("print")
}

func (tk *Base) CanvasSize(h handle.Handle) (image.Point, error) {
	return image.Point{}, invalid("canvas_size")
}

func (tk *Base) ScreenResolution() (float64, error) {
	return 0, invalid("screen_resolution")
}

func (tk *Base) ScreenSize() (image.Point, error) {
	return image.Point{}, invalid("screen_size")
}

func (tk *Base) Close() error { return invalid("close") }
