// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/redact"
)

type logFormatter interface {
	formatterName() string
	// formatEntry renders a logEntry, including the trailing newline.
	formatEntry(entry logEntry, redactable bool) []byte
}

var formatters = func() map[string]logFormatter {
	m := make(map[string]logFormatter)
	r := func(f logFormatter) {
		m[f.formatterName()] = f
	}
	r(formatCrdbV1{})
	r(formatCrdbV1TTY{})
	return m
}()

func defaultFormatter() logFormatter {
	if stderrColorProfile != nil {
		return formatCrdbV1TTY{}
	}
	return formatCrdbV1{}
}

// formatCrdbV1 is the plain-text single-line format:
//
//	I261016 14:03:05.123456 dynarray/metrics.go:57 [n1,arr=demo] message
type formatCrdbV1 struct{}

func (formatCrdbV1) formatterName() string { return "crdb-v1" }

func (formatCrdbV1) formatEntry(entry logEntry, redactable bool) []byte {
	return formatLogEntry(entry, redactable, nil /* cp */)
}

// formatCrdbV1TTY is crdb-v1 with terminal colors, when supported.
type formatCrdbV1TTY struct{}

func (formatCrdbV1TTY) formatterName() string { return "crdb-v1-tty" }

func (formatCrdbV1TTY) formatEntry(entry logEntry, redactable bool) []byte {
	return formatLogEntry(entry, redactable, stderrColorProfile)
}

func formatLogEntry(entry logEntry, redactable bool, cp *colorProfile) []byte {
	var buf bytes.Buffer
	if cp != nil {
		buf.Write(cp.severityPrefix(entry.sev))
	}
	buf.WriteByte(entry.sev.char())
	if cp != nil {
		buf.Write(colorReset)
		buf.Write(cp.timePrefix)
	}
	buf.WriteString(entry.time.UTC().Format("060102 15:04:05.000000"))
	if cp != nil {
		buf.Write(colorReset)
	}
	buf.WriteByte(' ')
	buf.WriteString(entry.file)
	buf.WriteByte(':')
	buf.WriteString(strconv.Itoa(entry.line))
	buf.WriteByte(' ')
	if redactable {
		// Marks the remainder of the line as carrying redaction markers.
		buf.WriteString("⋮ ")
	}
	if entry.tags != nil {
		formatTags(&buf, entry.tags, redactable)
		buf.WriteByte(' ')
	}
	if redactable {
		buf.WriteString(string(entry.payload))
	} else {
		buf.WriteString(entry.payload.StripMarkers())
	}
	buf.WriteByte('\n')
	return buf.Bytes()
}

// formatTags writes the tags as [k1=v1,k2,...]. Single-letter keys are
// concatenated with their value, so that node 1 renders as "n1".
func formatTags(buf *bytes.Buffer, tags *logtags.Buffer, redactable bool) {
	buf.WriteByte('[')
	for i, t := range tags.Get() {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(t.Key())
		v := t.Value()
		if v == nil {
			continue
		}
		if len(t.Key()) > 1 {
			buf.WriteByte('=')
		}
		if redactable {
			buf.WriteString(string(redact.Sprint(v)))
		} else {
			fmt.Fprint(buf, v)
		}
	}
	buf.WriteByte(']')
}

// FormatWithContextTags formats the string and prepends the context
// tags.
//
// Redaction markers are *not* inserted. The resulting
// string is generally unsafe for reporting.
func FormatWithContextTags(ctx context.Context, format string, args ...interface{}) string {
	var buf bytes.Buffer
	if tags := logtags.FromContext(ctx); tags != nil {
		formatTags(&buf, tags, false /* redactable */)
		buf.WriteByte(' ')
	}
	buf.WriteString(redact.Sprintf(format, args...).StripMarkers())
	return strings.TrimRight(buf.String(), " ")
}
