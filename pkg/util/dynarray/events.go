// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package dynarray

import (
	"slices"

	"github.com/cockroachdb/redact"
)

// EventKind identifies one of the notification channels of a DynamicArray.
type EventKind int8

const (
	// ItemAdded is fired by Add, AddRange and Insert.
	ItemAdded EventKind = iota + 1
	// ItemRemoved is fired by RemoveAt and Remove.
	ItemRemoved
	// Resized is fired whenever the backing buffer grows.
	Resized
)

// SafeFormat implements the redact.SafeFormatter interface.
func (k EventKind) SafeFormat(w redact.SafePrinter, _ rune) {
	switch k {
	case ItemAdded:
		w.SafeString("item-added")
	case ItemRemoved:
		w.SafeString("item-removed")
	case Resized:
		w.SafeString("resized")
	default:
		w.Printf("EventKind(%d)", redact.Safe(int8(k)))
	}
}

func (k EventKind) String() string { return redact.StringWithoutMarkers(k) }

// ItemEvent describes an element that was added to or removed from an array,
// together with the index it occupied.
type ItemEvent[T any] struct {
	Item  T
	Index int
}

// SafeFormat implements the redact.SafeFormatter interface. The item itself
// is treated as unsafe.
func (e ItemEvent[T]) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("%v at index %d", e.Item, redact.Safe(e.Index))
}

func (e ItemEvent[T]) String() string { return redact.StringWithoutMarkers(e) }

// ResizeEvent describes a growth of the backing buffer.
type ResizeEvent struct {
	OldCapacity int
	NewCapacity int
}

// SafeFormat implements the redact.SafeFormatter interface.
func (e ResizeEvent) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("capacity %d -> %d", redact.Safe(e.OldCapacity), redact.Safe(e.NewCapacity))
}

func (e ResizeEvent) String() string { return redact.StringWithoutMarkers(e) }

// Subscription identifies a registered subscriber. The zero value identifies
// no subscriber.
type Subscription struct {
	kind EventKind
	id   uint64
}

// Kind returns the channel the subscriber listens on.
func (s Subscription) Kind() EventKind { return s.kind }

type subscriber[E any] struct {
	id uint64
	fn func(E)
}

// handlers is an ordered list of subscribers for one channel. Subscribing
// and unsubscribing replace the slice rather than modify it, so a handler
// may unsubscribe while a notification is being delivered.
type handlers[E any] struct {
	nextID uint64
	subs   []subscriber[E]
}

func (h *handlers[E]) add(fn func(E)) uint64 {
	h.nextID++
	subs := make([]subscriber[E], len(h.subs), len(h.subs)+1)
	copy(subs, h.subs)
	h.subs = append(subs, subscriber[E]{id: h.nextID, fn: fn})
	return h.nextID
}

func (h *handlers[E]) remove(id uint64) bool {
	i := slices.IndexFunc(h.subs, func(s subscriber[E]) bool { return s.id == id })
	if i < 0 {
		return false
	}
	subs := make([]subscriber[E], 0, len(h.subs)-1)
	subs = append(subs, h.subs[:i]...)
	h.subs = append(subs, h.subs[i+1:]...)
	return true
}

// notify calls every subscriber, in subscription order.
func (h *handlers[E]) notify(e E) {
	for _, s := range h.subs {
		s.fn(e)
	}
}

// OnItemAdded registers fn to be called synchronously after every element
// added to the array.
func (a *DynamicArray[T]) OnItemAdded(fn func(ItemEvent[T])) Subscription {
	return Subscription{kind: ItemAdded, id: a.added.add(fn)}
}

// OnItemRemoved registers fn to be called synchronously after every element
// removed from the array.
func (a *DynamicArray[T]) OnItemRemoved(fn func(ItemEvent[T])) Subscription {
	return Subscription{kind: ItemRemoved, id: a.removed.add(fn)}
}

// OnResized registers fn to be called synchronously after every growth of the
// backing buffer.
func (a *DynamicArray[T]) OnResized(fn func(ResizeEvent)) Subscription {
	return Subscription{kind: Resized, id: a.resized.add(fn)}
}

// Unsubscribe removes the subscriber identified by s. It returns false if the
// subscriber was not registered with this array.
func (a *DynamicArray[T]) Unsubscribe(s Subscription) bool {
	switch s.kind {
	case ItemAdded:
		return a.added.remove(s.id)
	case ItemRemoved:
		return a.removed.remove(s.id)
	case Resized:
		return a.resized.remove(s.id)
	default:
		return false
	}
}
