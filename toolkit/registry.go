// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package toolkit

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"cogentcore.org/graphics/base/errors"
)

// Loader binds a live toolkit for an available name,
// for loading toolkits on first use.
type Loader func(name string) (Toolkit, error)

// Registry keeps track of the names of the toolkits that are
// available, separately from the toolkit instances that are loaded,
// and of the default toolkit for new figures.
type Registry struct {
	mu        sync.Mutex
	available map[string]bool
	loaded    map[string]Toolkit
	def       string
	loader    Loader
}

// NewRegistry returns a new, empty registry.
func NewRegistry() *Registry {
	return &Registry{available: map[string]bool{}, loaded: map[string]Toolkit{}}
}

// SetLoader sets the function used by [Registry.Find] to load an
// available toolkit that is not loaded yet.
func (r *Registry) SetLoader(l Loader) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loader = l
}

// Register advertises the toolkit name as available. The first
// registered toolkit becomes the default.
func (r *Registry) Register(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.available[name] = true
	if r.def == "" {
		r.def = name
	}
}

// Unregister removes the toolkit name from the available ones.
// If it was the default, the first remaining name in sorted
// order becomes the default.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.available, name)
	if r.def != name {
		return
	}
	r.def = ""
	if names := slices.Sorted(maps.Keys(r.available)); len(names) > 0 {
		r.def = names[0]
	}
}

// Load binds the given toolkit instance under its name, replacing any
// toolkit loaded under the same name. The name is registered as
// available if it wasn't.
func (r *Registry) Load(tk Toolkit) error {
	if tk == nil || !tk.IsValid() {
		name := ""
		if tk != nil {
			name = tk.Name()
		}
		return fmt.Errorf("load_toolkit %q: %w", name, ErrInvalidToolkit)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	name := tk.Name()
	r.loaded[name] = tk
	r.available[name] = true
	if r.def == "" {
		r.def = name
	}
	slog.Debug("toolkit loaded", "toolkit", name)
	return nil
}

// Unload removes the toolkit loaded under the given name, if any.
// It does not close the toolkit.
func (r *Registry) Unload(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.loaded, name)
}

// IsLoaded returns whether a toolkit is loaded under the given name.
func (r *Registry) IsLoaded(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.loaded[name]
	return ok
}

// IsAvailable returns whether the given name has been registered.
func (r *Registry) IsAvailable(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.available[name]
}

// Find returns the toolkit loaded under the given name. An available
// toolkit that is not loaded is loaded with the [Loader] if there is
// one. Otherwise it returns an invalid [Base] toolkit with the name,
// so the result is never nil.
func (r *Registry) Find(name string) Toolkit {
	r.mu.Lock()
	tk, ok := r.loaded[name]
	loader := r.loader
	avail := r.available[name]
	r.mu.Unlock()
	if ok {
		return tk
	}
	if loader != nil && avail {
		ltk, err := loader(name)
		if errors.Log(err) == nil && ltk != nil {
			if errors.Log(r.Load(ltk)) == nil {
				return ltk
			}
		}
	}
	return NewBase(name)
}

// Available returns the sorted names of the available toolkits.
func (r *Registry) Available() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Sorted(maps.Keys(r.available))
}

// Loaded returns the sorted names of the loaded toolkits.
func (r *Registry) Loaded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Sorted(maps.Keys(r.loaded))
}

// Default returns the name of the default toolkit,
// or "" when no toolkit is available.
func (r *Registry) Default() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.def
}

// SetDefault sets the default toolkit, which must be available.
func (r *Registry) SetDefault(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.available[name] {
		return fmt.Errorf("default toolkit %q is not available", name)
	}
	r.def = name
	return nil
}

// DefaultToolkit returns the default toolkit, as returned by [Registry.Find].
func (r *Registry) DefaultToolkit() Toolkit {
	return r.Find(r.Default())
}

// CloseAll closes and unloads every loaded toolkit. A toolkit may
// unload itself while closing.
func (r *Registry) CloseAll() {
	for {
		r.mu.Lock()
		names := slices.Sorted(maps.Keys(r.loaded))
		if len(names) == 0 {
			r.mu.Unlock()
			return
		}
		name := names[0]
		tk := r.loaded[name]
		r.mu.Unlock()

		errors.Log(tk.Close())
		r.Unload(name)
	}
}
