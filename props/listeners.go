// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"slices"
	"sync/atomic"
)

// ListenerPhases are the points in the life of a property
// at which listeners are run.
type ListenerPhases int32

const (
	// PostSet listeners run after every successful change of the value.
	PostSet ListenerPhases = iota

	// Persistent marks listeners that survive a bulk removal of the
	// PostSet or PreDelete listeners. Every persistent listener is
	// also registered as a PostSet listener.
	Persistent

	// PreDelete listeners run before the owning object is deleted.
	PreDelete

	ListenerPhasesN
)

func (lp ListenerPhases) String() string {
	switch lp {
	case PostSet:
		return "postset"
	case Persistent:
		return "persistent"
	case PreDelete:
		return "predelete"
	}
	return "unknown"
}

// Listener is a function called with the property at a given phase.
type Listener func(p Property) error

// ListenerID identifies a registered listener, for removal.
type ListenerID uint64

var lastListenerID atomic.Uint64

type listener struct {
	id ListenerID
	fn Listener
}

// Listeners registers lists of listener functions for
// the different phases. Listeners are called in the order added.
type Listeners map[ListenerPhases][]listener

// Init ensures that map is constructed
func (ls *Listeners) Init() {
	if *ls != nil {
		return
	}
	*ls = make(map[ListenerPhases][]listener)
}

// Add adds a function for the given phase, returning its id.
func (ls *Listeners) Add(phase ListenerPhases, fun Listener) ListenerID {
	id := ListenerID(lastListenerID.Add(1))
	ls.add(phase, listener{id: id, fn: fun})
	return id
}

func (ls *Listeners) add(phase ListenerPhases, l listener) {
	ls.Init()
	(*ls)[phase] = append((*ls)[phase], l)
}

// Delete removes the listener with the given id from the given phase,
// returning whether it was found.
func (ls *Listeners) Delete(phase ListenerPhases, id ListenerID) bool {
	ets := (*ls)[phase]
	i := slices.IndexFunc(ets, func(l listener) bool { return l.id == id })
	if i < 0 {
		return false
	}
	(*ls)[phase] = slices.Delete(ets, i, i+1)
	return true
}

// DeleteAll removes all of the listeners of the given phase.
// For phases other than [Persistent], listeners that are also
// registered as persistent are kept.
func (ls *Listeners) DeleteAll(phase ListenerPhases) {
	if *ls == nil {
		return
	}
	if phase == Persistent {
		delete(*ls, Persistent)
		return
	}
	pers := (*ls)[Persistent]
	(*ls)[phase] = slices.DeleteFunc((*ls)[phase], func(l listener) bool {
		return !slices.ContainsFunc(pers, func(p listener) bool { return p.id == l.id })
	})
}

// Len returns the number of listeners for the given phase.
func (ls *Listeners) Len(phase ListenerPhases) int {
	return len((*ls)[phase])
}

// Call calls all functions for the given phase in the order they
// were added, on a snapshot of the list so that listeners may add
// or remove listeners. It stops at and returns the first error.
func (ls *Listeners) Call(phase ListenerPhases, p Property) error {
	ets := slices.Clone((*ls)[phase])
	for _, l := range ets {
		if err := l.fn(p); err != nil {
			return err
		}
	}
	return nil
}
