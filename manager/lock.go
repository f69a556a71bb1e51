// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manager

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
)

// objectLock is the lock of the graphics objects. The goroutine that
// holds it may lock it again: callbacks, listeners and update hooks
// run with it held and call back into the manager.
type objectLock struct {
	mu    sync.Mutex
	owner atomic.Int64

	// depth is the number of times the owner locked it.
	// Only the owner touches it.
	depth int
}

// Lock locks l, waiting unless the calling goroutine holds it.
func (l *objectLock) Lock() {
	id := goroutineID()
	if l.owner.Load() == id {
		l.depth++
		return
	}
	l.mu.Lock()
	l.owner.Store(id)
	l.depth = 1
}

// TryLock locks l if it is free or the calling goroutine
// holds it, and reports whether it did.
func (l *objectLock) TryLock() bool {
	id := goroutineID()
	if l.owner.Load() == id {
		l.depth++
		return true
	}
	if !l.mu.TryLock() {
		return false
	}
	l.owner.Store(id)
	l.depth = 1
	return true
}

// Unlock undoes one Lock of the calling goroutine.
func (l *objectLock) Unlock() {
	if l.owner.Load() != goroutineID() {
		panic("manager: unlock of an object lock held by another goroutine")
	}
	l.depth--
	if l.depth == 0 {
		l.owner.Store(0)
		l.mu.Unlock()
	}
}

var goroutinePrefix = []byte("goroutine ")

// goroutineID returns the id of the calling goroutine, read from the
// header of its stack trace, which starts with "goroutine <id> [".
func goroutineID() int64 {
	var buf [64]byte
	b := buf[:runtime.Stack(buf[:], false)]
	b = bytes.TrimPrefix(b, goroutinePrefix)
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	id, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		panic("manager: cannot read goroutine id: " + err.Error())
	}
	return id
}
