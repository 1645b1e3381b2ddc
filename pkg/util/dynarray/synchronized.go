// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package dynarray

import (
	"iter"

	"github.com/cockroachdb/dynarray/pkg/util/syncutil"
)

// Synchronized guards a DynamicArray with a reader/writer lock so that it can
// be shared between goroutines. Readers share the lock; mutators hold it
// exclusively.
//
// Notifications are delivered while the lock is held. Subscribers must not
// call back into the Synchronized that notified them.
type Synchronized[T comparable] struct {
	mu struct {
		syncutil.RWMutex
		a *DynamicArray[T]
	}
}

// NewSynchronized wraps a. The caller must not use a directly afterwards
// except through Do.
func NewSynchronized[T comparable](a *DynamicArray[T]) *Synchronized[T] {
	s := &Synchronized[T]{}
	s.mu.a = a
	return s
}

// Do calls fn with exclusive access to the underlying array. fn must not
// retain the array.
func (s *Synchronized[T]) Do(fn func(a *DynamicArray[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.mu.a)
}

// Add is DynamicArray.Add under the exclusive lock.
func (s *Synchronized[T]) Add(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mu.a.Add(item)
}

// AddRange is DynamicArray.AddRange under the exclusive lock. The sequence is
// consumed while the lock is held.
func (s *Synchronized[T]) AddRange(seq iter.Seq[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mu.a.AddRange(seq)
}

// Insert is DynamicArray.Insert under the exclusive lock.
func (s *Synchronized[T]) Insert(i int, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mu.a.Insert(i, item)
}

// Set is DynamicArray.Set under the exclusive lock.
func (s *Synchronized[T]) Set(i int, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mu.a.Set(i, item)
}

// RemoveAt is DynamicArray.RemoveAt under the exclusive lock.
func (s *Synchronized[T]) RemoveAt(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mu.a.RemoveAt(i)
}

// Remove is DynamicArray.Remove under the exclusive lock.
func (s *Synchronized[T]) Remove(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mu.a.Remove(item)
}

// Clear is DynamicArray.Clear under the exclusive lock.
func (s *Synchronized[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mu.a.Clear()
}

// At is DynamicArray.At under the shared lock.
func (s *Synchronized[T]) At(i int) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mu.a.At(i)
}

// Len is DynamicArray.Len under the shared lock.
func (s *Synchronized[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mu.a.Len()
}

// IndexOf is DynamicArray.IndexOf under the shared lock.
func (s *Synchronized[T]) IndexOf(item T) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mu.a.IndexOf(item)
}

// Contains is DynamicArray.Contains under the shared lock.
func (s *Synchronized[T]) Contains(item T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mu.a.Contains(item)
}

// Slice returns a copy of the elements, taken under the shared lock.
func (s *Synchronized[T]) Slice() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sliceRLocked()
}

func (s *Synchronized[T]) sliceRLocked() []T {
	s.mu.AssertRHeld()
	return s.mu.a.Slice()
}
