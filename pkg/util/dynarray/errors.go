// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package dynarray

import "github.com/cockroachdb/errors"

// Errors returned by DynamicArray operations are marked with one of these
// sentinels. Test for them with errors.Is.
var (
	// ErrNullArgument is returned when a required sequence is nil.
	ErrNullArgument = errors.New("null argument")
	// ErrOutOfRange is returned when a numeric argument lies outside its
	// valid domain, such as a negative capacity or a read past the end.
	ErrOutOfRange = errors.New("out of range")
	// ErrInvalidArgument is returned for structurally wrong arguments, such
	// as a write past the end or a destination that is too small.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidOperation is returned when the operation cannot be applied to
	// the array in its current state, such as inserting past the end.
	ErrInvalidOperation = errors.New("invalid operation")
)

func newNullArgumentError(what string) error {
	return errors.Mark(errors.Newf("%s must not be nil", errors.Safe(what)), ErrNullArgument)
}

func newIndexOutOfRangeError(i, size int) error {
	return errors.Mark(errors.Newf("index %d out of range [0,%d)", i, size), ErrOutOfRange)
}
