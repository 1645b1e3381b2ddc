// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package echotest compares the output of a test against a golden file.
package echotest

import (
	"path/filepath"
	"testing"

	"github.com/cockroachdb/datadriven"
)

// TestDataPath joins the components to the testdata directory of the package
// under test.
func TestDataPath(t testing.TB, relative ...string) string {
	t.Helper()
	return filepath.Join(append([]string{"testdata"}, relative...)...)
}

// Require checks that the string matches what is found in the file located at
// the provided path. The file must follow the datadriven format:
//
//	echo
//	----
//	<output of exp>
//
// The contents of the file can be updated automatically using datadriven's
// -rewrite flag.
func Require(t *testing.T, act, path string) {
	t.Helper()
	var ran bool
	datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
		if d.Cmd != "echo" {
			return "only 'echo' is supported"
		}
		ran = true
		return act
	})
	if !ran {
		// A file seeded without an echo directive is not rewritten by
		// -rewrite, and would otherwise pass without checking anything.
		t.Errorf("no tests run for %s, is the file empty?", path)
	}
}
