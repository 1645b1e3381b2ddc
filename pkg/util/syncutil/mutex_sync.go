// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package syncutil

import "sync"

// A Mutex is a mutual exclusion lock.
type Mutex struct {
	sync.Mutex
}

// AssertHeld panics if the mutex is not locked.
//
// Note that we do not require the lock to be held by any particular goroutine,
// just that some goroutine holds the lock. A mutex locked in one goroutine and
// asserted in another passes.
func (m *Mutex) AssertHeld() {
	if m.TryLock() {
		m.Unlock()
		panic("mutex is not held")
	}
}

// An RWMutex is a reader/writer mutual exclusion lock.
type RWMutex struct {
	sync.RWMutex
}

// AssertHeld panics if the mutex is not locked at all. A mutex that is only
// read-locked is not detected; callers that need the exclusive lock should
// not rely on this to tell the two apart.
func (rw *RWMutex) AssertHeld() {
	if rw.TryLock() {
		rw.Unlock()
		panic("mutex is not held")
	}
}

// AssertRHeld panics if the mutex is locked neither for reading nor for
// writing. If the mutex is locked for writing, it is also considered to be
// locked for reading.
func (rw *RWMutex) AssertRHeld() {
	if rw.TryLock() {
		rw.Unlock()
		panic("mutex is not held for reading")
	}
}
