// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"fmt"
	"slices"

	"cogentcore.org/graphics/array"
	"cogentcore.org/graphics/handle"
)

// Func is a callback function. It is called with the handle of the
// object whose callback runs, the event data, and any extra arguments
// stored with the callback.
type Func func(h handle.Handle, data any, args ...any) error

// Interpreter evaluates callbacks given as source text.
type Interpreter interface {
	Eval(src string, h handle.Handle, data any) error
}

// CallbackValue is a [Value] holding a callback: nothing, a [Func],
// source text for an [Interpreter], or a list whose first element is
// a Func and whose other elements are extra arguments. Every set
// counts as a change.
type CallbackValue struct {
	fn        Func
	src       string
	args      []any
	raw       any
	executing bool
}

// NewCallback returns a new callback value. v may be nil.
func NewCallback(v any) *CallbackValue {
	cb := &CallbackValue{}
	cb.Set(v)
	return cb
}

func (v *CallbackValue) Kind() Kind { return KindCallback }

// Get returns the value the callback was set to.
func (v *CallbackValue) Get() any { return v.raw }

// IsEmpty returns whether there is no callback.
func (v *CallbackValue) IsEmpty() bool { return v.fn == nil && v.src == "" }

// IsExecuting returns whether the callback is running.
func (v *CallbackValue) IsExecuting() bool { return v.executing }

func (v *CallbackValue) Set(val any) (bool, error) {
	var fn Func
	var src string
	var args []any
	switch x := val.(type) {
	case nil:
	case Func:
		fn = x
	case func(handle.Handle, any, ...any) error:
		fn = x
	case func(handle.Handle, any) error:
		fn = func(h handle.Handle, data any, _ ...any) error { return x(h, data) }
	case func():
		fn = func(handle.Handle, any, ...any) error { x(); return nil }
	case string:
		src = x
	case []any:
		if len(x) == 0 {
			break
		}
		switch f := x[0].(type) {
		case Func:
			fn = f
		case func(handle.Handle, any, ...any) error:
			fn = f
		default:
			return false, fmt.Errorf("%w: the first element of a callback list must be a function, got %T", ErrInvalidValue, x[0])
		}
		args = slices.Clone(x[1:])
	case *array.Array:
		if !x.IsEmpty() {
			return false, fmt.Errorf("%w: expected a callback, got a numeric array", ErrInvalidValue)
		}
	default:
		return false, fmt.Errorf("%w: expected a callback, got %T", ErrInvalidValue, val)
	}
	v.fn, v.src, v.args, v.raw = fn, src, args, val
	return true, nil
}

// Execute runs the callback for the object h with the given event
// data. Source text is evaluated with interp. While the callback runs,
// a further call to Execute is a no-op that returns nil.
func (v *CallbackValue) Execute(h handle.Handle, data any, interp Interpreter) error {
	if v.executing || v.IsEmpty() {
		return nil
	}
	v.executing = true
	defer func() { v.executing = false }()
	if v.fn != nil {
		return v.fn(h, data, v.args...)
	}
	if interp == nil {
		return fmt.Errorf("callback: no interpreter to evaluate %q", v.src)
	}
	return interp.Eval(v.src, h, data)
}

func (v *CallbackValue) Clone() Value {
	c := *v
	c.args = slices.Clone(v.args)
	c.executing = false
	return &c
}
