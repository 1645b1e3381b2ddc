// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package log implements context-aware logging. Every logging call takes a
// context.Context; the logtags attached to it are rendered in front of the
// message:
//
//	ctx = logtags.AddTag(ctx, "arr", "demo")
//	log.Infof(ctx, "grew to %d slots", n)
//
// Messages are built with redact.Sprintf, so arguments are treated as
// unsafe unless they implement redact.SafeValue or redact.SafeFormatter.
// Redaction markers are only kept in the output after SetRedactable(true).
package log

import (
	"context"
	"io"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/dynarray/pkg/util/syncutil"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/redact"
)

type loggingT struct {
	mu struct {
		syncutil.Mutex
		out       io.Writer
		formatter logFormatter
	}
	verbosity  atomic.Int32
	redactable atomic.Bool
}

var logging = func() *loggingT {
	l := &loggingT{}
	l.mu.out = OrigStderr
	l.mu.formatter = defaultFormatter()
	return l
}()

// timeNow is overridden in tests.
var timeNow = time.Now

type logEntry struct {
	sev     Severity
	time    time.Time
	file    string
	line    int
	tags    *logtags.Buffer
	payload redact.RedactableString
}

// makeEntry captures the caller that is depth frames above makeEntry's
// caller.
func makeEntry(
	ctx context.Context, sev Severity, depth int, format string, args []interface{},
) logEntry {
	_, file, line, ok := runtime.Caller(depth + 1)
	if !ok {
		file, line = "???", 1
	}
	return logEntry{
		sev:     sev,
		time:    timeNow(),
		file:    shortFile(file),
		line:    line,
		tags:    logtags.FromContext(ctx),
		payload: redact.Sprintf(format, args...),
	}
}

// shortFile keeps the last directory and the file name.
func shortFile(file string) string {
	if i := strings.LastIndexByte(file, '/'); i >= 0 {
		if j := strings.LastIndexByte(file[:i], '/'); j >= 0 {
			return file[j+1:]
		}
	}
	return file
}

func addStructured(
	ctx context.Context, sev Severity, depth int, format string, args []interface{},
) {
	entry := makeEntry(ctx, sev, depth+1, format, args)
	logging.outputLogEntry(entry)
}

func (l *loggingT) outputLogEntry(entry logEntry) {
	redactable := l.redactable.Load()
	l.mu.Lock()
	defer l.mu.Unlock()
	buf := l.mu.formatter.formatEntry(entry, redactable)
	// There is nowhere to report a failed write to the log sink.
	_, _ = l.mu.out.Write(buf)
}

// Infof logs to the INFO severity.
func Infof(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, Severity_INFO, 1, format, args)
}

// Info logs a message without format arguments to the INFO severity.
func Info(ctx context.Context, msg string) {
	addStructured(ctx, Severity_INFO, 1, "%s", []interface{}{msg})
}

// InfofDepth logs to the INFO severity, attributing the entry to the caller
// depth frames above the caller of InfofDepth.
func InfofDepth(ctx context.Context, depth int, format string, args ...interface{}) {
	addStructured(ctx, Severity_INFO, depth+1, format, args)
}

// Warningf logs to the WARNING severity.
func Warningf(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, Severity_WARNING, 1, format, args)
}

// Errorf logs to the ERROR severity.
func Errorf(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, Severity_ERROR, 1, format, args)
}

// V returns true if the logging verbosity is set to the specified level or
// higher.
func V(level int32) bool {
	return logging.verbosity.Load() >= level
}

// VEventf logs to the INFO severity if the verbosity is at least level.
func VEventf(ctx context.Context, level int32, format string, args ...interface{}) {
	if V(level) {
		addStructured(ctx, Severity_INFO, 1, format, args)
	}
}

// SetVerbosity changes the verbosity threshold used by V and VEventf and
// returns a function that restores the previous value.
func SetVerbosity(level int32) (restore func()) {
	prev := logging.verbosity.Swap(level)
	return func() { logging.verbosity.Store(prev) }
}

// SetRedactable controls whether redaction markers are kept in the output.
func SetRedactable(redactable bool) (restore func()) {
	prev := logging.redactable.Swap(redactable)
	return func() { logging.redactable.Store(prev) }
}

// SetOutput redirects log entries to w and returns a function that restores
// the previous sink.
func SetOutput(w io.Writer) (restore func()) {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	prev := logging.mu.out
	logging.mu.out = w
	return func() {
		logging.mu.Lock()
		defer logging.mu.Unlock()
		logging.mu.out = prev
	}
}

// SetFormat selects the output format by name ("crdb-v1" or "crdb-v1-tty").
func SetFormat(name string) (restore func(), _ error) {
	f, ok := formatters[name]
	if !ok {
		return nil, errors.Newf("unknown log format %q", name)
	}
	logging.mu.Lock()
	defer logging.mu.Unlock()
	prev := logging.mu.formatter
	logging.mu.formatter = f
	return func() {
		logging.mu.Lock()
		defer logging.mu.Unlock()
		logging.mu.formatter = prev
	}, nil
}
