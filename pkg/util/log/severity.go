// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import "strings"

// Severity is the severity level of a log entry.
type Severity int32

// Severity levels, ordered from least to most severe.
const (
	Severity_UNKNOWN Severity = iota
	Severity_INFO
	Severity_WARNING
	Severity_ERROR
)

var severityNames = [...]string{
	Severity_UNKNOWN: "UNKNOWN",
	Severity_INFO:    "INFO",
	Severity_WARNING: "WARNING",
	Severity_ERROR:   "ERROR",
}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return severityNames[Severity_UNKNOWN]
	}
	return severityNames[s]
}

// SeverityByName looks up a severity by its case-insensitive name.
func SeverityByName(name string) (Severity, bool) {
	for i, n := range severityNames {
		if Severity(i) != Severity_UNKNOWN && strings.EqualFold(n, name) {
			return Severity(i), true
		}
	}
	return Severity_UNKNOWN, false
}

// char returns the one-letter prefix used by the crdb-v1 format.
func (s Severity) char() byte {
	return s.String()[0]
}
