// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package dynarray

import "iter"

// Iterator is a forward cursor over the elements of a DynamicArray.
//
// The iterator does not take a snapshot: every call to Next reads the current
// length and contents of the array, so mutations made during iteration are
// observed. This is not guarded against and may skip or repeat elements.
//
//	it := a.MakeIter()
//	for it.Next() {
//		fmt.Println(it.Cur())
//	}
type Iterator[T comparable] struct {
	a   *DynamicArray[T]
	pos int
	cur T
}

// MakeIter returns an iterator positioned before the first element.
func (a *DynamicArray[T]) MakeIter() Iterator[T] {
	return Iterator[T]{a: a}
}

// Next advances the iterator and reports whether it is positioned at an
// element.
func (it *Iterator[T]) Next() bool {
	if it.pos < it.a.size {
		it.cur = it.a.items[it.pos]
		it.pos++
		return true
	}
	var zero T
	it.cur = zero
	return false
}

// Cur returns the element the iterator is positioned at. It returns the zero
// value before the first call to Next and after Next has returned false.
func (it *Iterator[T]) Cur() T {
	return it.cur
}

// Reset repositions the iterator before the first element.
func (it *Iterator[T]) Reset() {
	var zero T
	it.pos = 0
	it.cur = zero
}

// Values returns an iterator over the elements of the array, for use with
// range. Like Iterator, it reads the live state of the array on every step.
func (a *DynamicArray[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(a.items[i]) {
				return
			}
		}
	}
}

// All returns an iterator over the index-element pairs of the array.
func (a *DynamicArray[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, a.items[i]) {
				return
			}
		}
	}
}
