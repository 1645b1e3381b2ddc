// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package dynarray provides DynamicArray, a growable array that doubles its
// backing buffer when it runs out of room and notifies subscribers about
// every item added, item removed and buffer resize.
//
// A DynamicArray is not safe for concurrent use. Wrap it in a Synchronized
// when it has to be shared between goroutines.
package dynarray

import (
	"iter"
	"slices"

	"github.com/cockroachdb/errors"
)

// DefaultCapacity is the number of slots allocated by New when no capacity is
// specified, and by Clear.
const DefaultCapacity = 16

// DynamicArray is a contiguous, indexable sequence of elements backed by a
// buffer that grows geometrically.
//
// Elements [0, Len()) are live. The remaining slots of the buffer are
// zeroed. The zero value is an empty array with no capacity, ready to use.
type DynamicArray[T comparable] struct {
	// items is the backing buffer; len(items) is the capacity.
	items []T
	size  int

	added   handlers[ItemEvent[T]]
	removed handlers[ItemEvent[T]]
	resized handlers[ResizeEvent]
}

// Option configures a DynamicArray created with New.
type Option func(*options)

type options struct {
	capacity int
}

// WithCapacity sets the initial capacity of the array. A capacity of zero
// defers allocation until the first element is added.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		o.capacity = capacity
	}
}

// New returns an empty array. Without options, the array has
// DefaultCapacity slots.
func New[T comparable](opts ...Option) (*DynamicArray[T], error) {
	o := options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	if o.capacity < 0 {
		return nil, errors.Mark(
			errors.Newf("capacity %d must be non-negative", o.capacity), ErrOutOfRange)
	}
	return &DynamicArray[T]{items: make([]T, o.capacity)}, nil
}

// NewFromSeq returns an array holding the elements of seq, in order. The
// sequence is consumed exactly once and the capacity is set to the number of
// elements it produced.
func NewFromSeq[T comparable](seq iter.Seq[T]) (*DynamicArray[T], error) {
	if seq == nil {
		return nil, newNullArgumentError("sequence")
	}
	items := slices.Collect(seq)
	a := &DynamicArray[T]{items: make([]T, len(items))}
	for _, item := range items {
		a.Add(item)
	}
	return a, nil
}

// NewFromSlice is like NewFromSeq for a slice. A nil slice is rejected with
// ErrNullArgument; pass an empty slice for an empty array.
func NewFromSlice[T comparable](items []T) (*DynamicArray[T], error) {
	if items == nil {
		return nil, newNullArgumentError("items")
	}
	return NewFromSeq(slices.Values(items))
}

// Len returns the number of elements in the array.
func (a *DynamicArray[T]) Len() int {
	return a.size
}

// Cap returns the number of slots in the backing buffer.
func (a *DynamicArray[T]) Cap() int {
	return len(a.items)
}

// IsReadOnly always returns false.
func (a *DynamicArray[T]) IsReadOnly() bool {
	return false
}

// At returns the element at index i.
func (a *DynamicArray[T]) At(i int) (T, error) {
	if i < 0 || i >= a.size {
		var zero T
		return zero, newIndexOutOfRangeError(i, a.size)
	}
	return a.items[i], nil
}

// Set replaces the element at index i. It never grows the array.
func (a *DynamicArray[T]) Set(i int, item T) error {
	if i < 0 || i >= a.size {
		return errors.Mark(
			errors.Newf("cannot set index %d of an array of length %d", i, a.size),
			ErrInvalidArgument)
	}
	a.items[i] = item
	return nil
}

// Add appends item, doubling the buffer first if it is full.
func (a *DynamicArray[T]) Add(item T) {
	if a.size >= len(a.items) {
		a.grow()
	}
	i := a.size
	a.items[i] = item
	a.size++
	a.added.notify(ItemEvent[T]{Item: item, Index: i})
}

// AddRange appends every element of seq, in order.
func (a *DynamicArray[T]) AddRange(seq iter.Seq[T]) error {
	if seq == nil {
		return newNullArgumentError("sequence")
	}
	for item := range seq {
		a.Add(item)
	}
	return nil
}

// Insert places item at index i, shifting the elements at [i, Len()) one
// slot to the right. i == Len() appends.
func (a *DynamicArray[T]) Insert(i int, item T) error {
	if i < 0 || i > a.size {
		return errors.Mark(
			errors.Newf("cannot insert at index %d of an array of length %d", i, a.size),
			ErrInvalidOperation)
	}
	if a.size == len(a.items) {
		a.grow()
	}
	copy(a.items[i+1:a.size+1], a.items[i:a.size])
	a.items[i] = item
	a.size++
	a.added.notify(ItemEvent[T]{Item: item, Index: i})
	return nil
}

// RemoveAt removes the element at index i, shifting the elements after it
// one slot to the left.
func (a *DynamicArray[T]) RemoveAt(i int) error {
	if i < 0 || i >= a.size {
		return newIndexOutOfRangeError(i, a.size)
	}
	a.removeAt(i)
	return nil
}

// removeAt requires 0 <= i < a.size.
func (a *DynamicArray[T]) removeAt(i int) {
	item := a.items[i]
	copy(a.items[i:a.size-1], a.items[i+1:a.size])
	a.size--
	var zero T
	a.items[a.size] = zero
	a.removed.notify(ItemEvent[T]{Item: item, Index: i})
}

// Remove removes the first element equal to item and reports whether one was
// found.
func (a *DynamicArray[T]) Remove(item T) bool {
	i := a.IndexOf(item)
	if i < 0 {
		return false
	}
	a.removeAt(i)
	return true
}

// IndexOf returns the index of the first element equal to item, or -1.
func (a *DynamicArray[T]) IndexOf(item T) int {
	return slices.Index(a.items[:a.size], item)
}

// Contains reports whether an element equal to item is present.
func (a *DynamicArray[T]) Contains(item T) bool {
	return a.IndexOf(item) >= 0
}

// Clear removes every element and replaces the buffer with a fresh one of
// DefaultCapacity slots. Subscribers are not notified.
func (a *DynamicArray[T]) Clear() {
	a.items = make([]T, DefaultCapacity)
	a.size = 0
}

// CopyTo copies the elements of the array into dst starting at dst[offset]
// and returns the number of elements copied.
func (a *DynamicArray[T]) CopyTo(dst []T, offset int) (int, error) {
	if offset < 0 {
		return 0, errors.Mark(
			errors.Newf("offset %d must be non-negative", offset), ErrOutOfRange)
	}
	if len(dst)-offset < a.size {
		return 0, errors.Mark(
			errors.Newf("destination of length %d cannot hold %d elements at offset %d",
				len(dst), a.size, offset),
			ErrInvalidArgument)
	}
	return copy(dst[offset:], a.items[:a.size]), nil
}

// Slice returns a copy of the elements of the array.
func (a *DynamicArray[T]) Slice() []T {
	return slices.Clone(a.items[:a.size])
}

// grow doubles the capacity. An empty buffer grows to a single slot.
func (a *DynamicArray[T]) grow() {
	oldCap := len(a.items)
	newCap := 2 * oldCap
	if newCap == 0 {
		newCap = 1
	}
	items := make([]T, newCap)
	copy(items, a.items[:a.size])
	a.items = items
	a.resized.notify(ResizeEvent{OldCapacity: oldCap, NewCapacity: newCap})
}
