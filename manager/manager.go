// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package manager provides the [Manager], which owns the graphics
// objects: it allocates and frees their handles, keeps the figure
// stack and the callback stack, and runs the queue of deferred events
// that rendering backends post.
package manager

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"cogentcore.org/graphics/base/errors"
	"cogentcore.org/graphics/config"
	"cogentcore.org/graphics/handle"
	"cogentcore.org/graphics/objects"
	"cogentcore.org/graphics/props"
	"cogentcore.org/graphics/toolkit"
)

// ErrNoManager is returned by every operation of a nil
// or shut down [Manager].
var ErrNoManager = errors.New("graphics manager is not running")

// Manager owns the graphics objects of a session. Every operation on
// the objects holds the object lock, which the goroutine holding it may
// take again, so callbacks and listeners can use the manager. The
// handle map, the free handles, the figure stack, the event queue and
// the callback stack are also guarded by a table mutex, held only for
// the duration of each table operation, so that events can be posted
// while the objects are locked.
type Manager struct {
	cfg    *config.Config
	logger *slog.Logger
	reg    *toolkit.Registry
	interp props.Interpreter
	env    objectEnv

	objMu objectLock

	mu      sync.Mutex
	objs    map[handle.Handle]*objects.Object
	alloc   *handle.Allocator
	figures []handle.Handle
	queue   queue[*event]
	cbStack []callbackFrame

	// wake is signaled when an event is posted.
	wake chan struct{}

	done   chan struct{}
	closed atomic.Bool

	eventsEnabled atomic.Bool
}

// Option is an option for [New].
type Option func(m *Manager)

// WithLogger sets the logger of the manager.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithRegistry makes the manager use the given toolkit registry.
func WithRegistry(r *toolkit.Registry) Option {
	return func(m *Manager) {
		if r != nil {
			m.reg = r
		}
	}
}

// WithInterpreter sets the interpreter of callbacks given as source text.
func WithInterpreter(in props.Interpreter) Option {
	return func(m *Manager) { m.interp = in }
}

// New returns a new manager holding only the root object, configured
// by cfg, which may be nil for [config.Defaults]. The toolkits named by
// the config are registered, and its defaults are set on the root.
func New(cfg *config.Config, opts ...Option) (*Manager, error) {
	if cfg == nil {
		cfg = config.Defaults()
	}
	m := &Manager{
		cfg:    cfg,
		logger: slog.Default(),
		objs:   map[handle.Handle]*objects.Object{},
		alloc:  handle.NewAllocator(cfg.HandleFraction),
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	m.env = objectEnv{m: m}
	for _, o := range opts {
		o(m)
	}
	if m.reg == nil {
		m.reg = toolkit.NewRegistry()
		m.reg.SetLoader(builtinToolkit)
	}
	for _, name := range cfg.AvailableToolkits() {
		m.reg.Register(name)
	}
	if cfg.Toolkit != "" {
		if err := m.reg.SetDefault(cfg.Toolkit); err != nil {
			return nil, err
		}
	}

	root := objects.New(objects.KindRoot, handle.Root, handle.Invalid, m.env)
	m.objs[handle.Root] = root
	for _, d := range cfg.RootDefaults() {
		if err := root.SetWith(d.Name, d.Value, false); err != nil {
			return nil, fmt.Errorf("config defaults: %w", err)
		}
	}
	m.eventsEnabled.Store(true)
	m.logger.Debug("graphics manager started", "toolkit", m.reg.Default(), "fraction", cfg.HandleFraction)
	return m, nil
}

// builtinToolkit is the loader of the toolkits that
// come with the package.
func builtinToolkit(name string) (toolkit.Toolkit, error) {
	if name == "trace" {
		return toolkit.NewTrace(name), nil
	}
	return nil, fmt.Errorf("no built-in graphics toolkit %q", name)
}

// ok returns whether the manager is running.
func (m *Manager) ok() bool {
	return m != nil && !m.closed.Load()
}

// Config returns the config of the manager.
func (m *Manager) Config() *config.Config {
	if m == nil {
		return config.Defaults()
	}
	return m.cfg
}

// Logger returns the logger of the manager.
func (m *Manager) Logger() *slog.Logger {
	if m == nil {
		return slog.Default()
	}
	return m.logger
}

// SetInterpreter sets the interpreter of callbacks given as
// source text.
func (m *Manager) SetInterpreter(in props.Interpreter) {
	if m != nil {
		m.interp = in
	}
}

// Shutdown deletes all of the figures, closes all of the toolkits,
// and stops the manager. Every later operation fails with
// [ErrNoManager].
func (m *Manager) Shutdown() error {
	if !m.ok() {
		return ErrNoManager
	}
	m.objMu.Lock()
	defer m.objMu.Unlock()
	err := m.CloseAllFigures()
	m.reg.CloseAll()
	m.closed.Store(true)
	close(m.done)

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.objs {
		o.Release()
	}
	m.objs = map[handle.Handle]*objects.Object{}
	m.figures = nil
	m.cbStack = nil
	m.queue.Clear()
	m.logger.Debug("graphics manager stopped")
	return err
}

// Lock locks the objects, so that a sequence of operations runs
// without events or other goroutines changing them in between.
// Manager methods may be called with it held; each Lock must be
// matched by an [Manager.Unlock] on the same goroutine.
func (m *Manager) Lock() {
	if m != nil {
		m.objMu.Lock()
	}
}

// TryLock locks the objects if no other goroutine holds them,
// and reports whether it did.
func (m *Manager) TryLock() bool {
	return m != nil && m.objMu.TryLock()
}

// Unlock unlocks the objects.
func (m *Manager) Unlock() {
	if m != nil {
		m.objMu.Unlock()
	}
}
