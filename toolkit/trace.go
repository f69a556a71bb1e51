// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package toolkit

import (
	"image"
	"log/slog"
	"sync"

	"cogentcore.org/graphics/handle"
)

// Call is a toolkit operation recorded by [Trace].
type Call struct {
	Op     string
	Handle handle.Handle
	Type   string

	// ID is the property id of an update, and -1 otherwise.
	ID int
}

// Trace is a valid in-memory toolkit that draws nothing and records
// every call made to it. It is the toolkit used when no rendering
// backend is wanted, and by tests of the object lifecycle.
type Trace struct {

	// Screen is the reported screen size.
	Screen image.Point

	// DPI is the reported screen resolution.
	DPI float64

	// Canvas is the reported canvas size of every figure.
	Canvas image.Point

	// OnClose, if set, is called by Close.
	OnClose func()

	mu     sync.Mutex
	name   string
	calls  []Call
	counts map[string]map[handle.Handle]int
	closed bool
}

// NewTrace returns a new trace toolkit with the given name.
func NewTrace(name string) *Trace {
	return &Trace{
		name:   name,
		Screen: image.Pt(1920, 1080),
		DPI:    96,
		Canvas: image.Pt(560, 420),
		counts: map[string]map[handle.Handle]int{},
	}
}

func (tk *Trace) record(op string, obj Object, id int) {
	c := Call{Op: op, Handle: handle.Invalid, ID: id}
	if obj != nil {
		c.Handle, c.Type = obj.Handle(), obj.Type()
	}
	tk.mu.Lock()
	tk.calls = append(tk.calls, c)
	m := tk.counts[op]
	if m == nil {
		m = map[handle.Handle]int{}
		tk.counts[op] = m
	}
	m[c.Handle]++
	tk.mu.Unlock()
	slog.Debug("toolkit call", "toolkit", tk.name, "op", op, "handle", c.Handle, "type", c.Type, "id", id)
}

// Calls returns a copy of the recorded calls in order.
func (tk *Trace) Calls() []Call {
	tk.mu.Lock()
	defer tk.mu.Unlock()
	return append([]Call(nil), tk.calls...)
}

// Count returns the number of times op was called for the object h.
func (tk *Trace) Count(op string, h handle.Handle) int {
	tk.mu.Lock()
	defer tk.mu.Unlock()
	return tk.counts[op][h]
}

// Reset forgets the recorded calls.
func (tk *Trace) Reset() {
	tk.mu.Lock()
	defer tk.mu.Unlock()
	tk.calls = nil
	tk.counts = map[string]map[handle.Handle]int{}
}

// IsClosed returns whether Close has been called.
func (tk *Trace) IsClosed() bool {
	tk.mu.Lock()
	defer tk.mu.Unlock()
	return tk.closed
}

func (tk *Trace) Name() string { return tk.name }

func (tk *Trace) IsValid() bool { return true }

func (tk *Trace) Initialize(obj Object) (bool, error) {
	tk.record("initialize", obj, -1)
	return true, nil
}

func (tk *Trace) Update(obj Object, id int) error {
	tk.record("update", obj, id)
	return nil
}

func (tk *Trace) Finalize(obj Object) error {
	tk.record("finalize", obj, -1)
	return nil
}

func (tk *Trace) Redraw(fig Object) error {
	tk.record("redraw", fig, -1)
	return nil
}

func (tk *Trace) Print(fig Object, format, dest string, mono bool) error {
	tk.record("print", fig, -1)
	return nil
}

func (tk *Trace) CanvasSize(h handle.Handle) (image.Point, error) {
	return tk.Canvas, nil
}

func (tk *Trace) ScreenResolution() (float64, error) {
	return tk.DPI, nil
}

func (tk *Trace) ScreenSize() (image.Point, error) {
	return tk.Screen, nil
}

func (tk *Trace) Close() error {
	tk.record("close", nil, -1)
	tk.mu.Lock()
	tk.closed = true
	tk.mu.Unlock()
	if tk.OnClose != nil {
		tk.OnClose()
	}
	return nil
}
