// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manager

import (
	"context"
	"fmt"
	"strings"

	"cogentcore.org/graphics/base/errors"
	"cogentcore.org/graphics/handle"
	"cogentcore.org/graphics/objects"
	"cogentcore.org/graphics/props"
)

// eventKinds are the kinds of deferred events.
type eventKinds int32

const (
	// callbackEvent runs a named callback property of an object.
	callbackEvent eventKinds = iota

	// callbackValueEvent runs a callback value given directly.
	callbackValueEvent

	// functionEvent calls a function.
	functionEvent

	// setEvent sets a property.
	setEvent
)

// event is a deferred operation posted to the event queue.
type event struct {
	kind eventKinds
	h    handle.Handle
	name string
	data any

	cb *props.CallbackValue
	fn func(data any)

	value  any
	notify bool

	// cancel is whether the event is dropped when it
	// cannot run right away.
	cancel bool
}

// busyAction returns whether the named callback of obj is dropped
// rather than queued while a non-interruptible callback runs.
func busyAction(obj *objects.Object, name string) bool {
	switch strings.ToLower(name) {
	case "createfcn", "deletefcn", "closerequestfcn":
		return false
	case "resizefcn", "sizechangedfcn":
		if k := obj.Kind(); k == objects.KindFigure || k == objects.KindUIPanel {
			return false
		}
	}
	v, err := obj.Get("busyaction")
	return err == nil && v == "cancel"
}

// post adds ev to the event queue, unless it is dropped because a
// non-interruptible callback runs and the object asked for busy
// callbacks to be canceled.
func (m *Manager) post(ev *event) error {
	if !m.ok() {
		return ErrNoManager
	}
	m.mu.Lock()
	if ev.cancel && !m.canInterrupt() {
		m.mu.Unlock()
		m.logger.Debug("busy callback canceled", "handle", ev.h, "name", ev.name)
		return nil
	}
	m.queue.Send(ev)
	m.mu.Unlock()
	select {
	case m.wake <- struct{}{}:
	default:
	}
	return nil
}

// PostCallback posts the named callback of the object h, to be run
// with the given event data on the next drain of the queue.
func (m *Manager) PostCallback(h handle.Handle, name string, data any) error {
	if !m.ok() {
		return ErrNoManager
	}
	m.objMu.Lock()
	defer m.objMu.Unlock()
	obj := m.Object(h)
	if obj == nil {
		return fmt.Errorf("postcallback: %w (= %v)", props.ErrInvalidHandle, h)
	}
	if _, ok := obj.Callback(name); !ok {
		return fmt.Errorf("postcallback: %w %q of %s objects", props.ErrUnknownProperty, name, obj.Type())
	}
	return m.post(&event{kind: callbackEvent, h: h, name: name, data: data, cancel: busyAction(obj, name)})
}

// PostCallbackValue posts a callback value, which may be anything a
// callback property accepts, to be run for the object h.
func (m *Manager) PostCallbackValue(h handle.Handle, v any, data any) error {
	cb := props.NewCallback(nil)
	if _, err := cb.Set(v); err != nil {
		return fmt.Errorf("postcallback: %w", err)
	}
	return m.post(&event{kind: callbackValueEvent, h: h, cb: cb, data: data})
}

// PostFunction posts a function, to be called with data.
func (m *Manager) PostFunction(fn func(data any), data any) error {
	if fn == nil {
		return fmt.Errorf("postfunction: %w: nil function", props.ErrInvalidValue)
	}
	return m.post(&event{kind: functionEvent, fn: fn, data: data})
}

// PostSet posts setting the named property of the object h to v.
func (m *Manager) PostSet(h handle.Handle, name string, v any, notify bool) error {
	return m.post(&event{kind: setEvent, h: h, name: name, value: v, notify: notify})
}

// ProcessEvents runs the queued events in the order they were
// posted and returns how many ran. Events posted while it runs are
// run too. Each event runs with the object lock held. While a
// non-interruptible callback runs, nothing runs and the events that
// asked to be canceled are dropped.
func (m *Manager) ProcessEvents() int {
	return m.process(false)
}

// FlushEvents is [Manager.ProcessEvents] that runs every queued
// event, even while a non-interruptible callback runs.
func (m *Manager) FlushEvents() int {
	return m.process(true)
}

func (m *Manager) process(force bool) int {
	n := 0
	for m.ok() && m.processNext(force) {
		n++
	}
	return n
}

// processNext runs the next queued event with the object lock held,
// and reports whether there was one it could run.
func (m *Manager) processNext(force bool) bool {
	m.objMu.Lock()
	defer m.objMu.Unlock()
	ev, ok := m.nextEvent(force)
	if ok {
		m.execute(ev)
	}
	return ok
}

// nextEvent pops the next event that may run now.
func (m *Manager) nextEvent(force bool) (*event, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !force && !m.canInterrupt() {
		if dropped := m.queue.Filter(func(ev *event) bool { return !ev.cancel }); dropped > 0 {
			m.logger.Debug("busy callbacks canceled", "count", dropped)
		}
		return nil, false
	}
	return m.queue.Next()
}

// execute runs ev, with the table mutex released. Errors are logged.
func (m *Manager) execute(ev *event) {
	var err error
	switch ev.kind {
	case callbackEvent:
		err = m.ExecuteCallback(ev.h, ev.name, ev.data)
	case callbackValueEvent:
		err = m.executeCallback(ev.h, "callback", ev.cb, ev.data)
	case functionEvent:
		ev.fn(ev.data)
	case setEvent:
		obj := m.Object(ev.h)
		if obj == nil {
			err = fmt.Errorf("set: %w (= %v)", props.ErrInvalidHandle, ev.h)
		} else {
			err = obj.SetWith(ev.name, ev.value, ev.notify)
		}
	}
	errors.Log(err)
}

// EnableEventProcessing turns the draining of the queue by
// [Manager.Run] on or off.
func (m *Manager) EnableEventProcessing(on bool) {
	if m == nil {
		return
	}
	m.eventsEnabled.Store(on)
	if on {
		select {
		case m.wake <- struct{}{}:
		default:
		}
	}
}

// Run drains the event queue whenever an event is posted, while
// event processing is enabled, until ctx is done or the manager is
// shut down. It is meant to run on the goroutine that owns the
// objects.
func (m *Manager) Run(ctx context.Context) error {
	if !m.ok() {
		return ErrNoManager
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-m.done:
			return nil
		case <-m.wake:
			if m.eventsEnabled.Load() {
				m.ProcessEvents()
			}
		}
	}
}
