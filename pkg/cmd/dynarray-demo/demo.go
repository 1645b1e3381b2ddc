// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/dynarray/pkg/util/dynarray"
	"github.com/cockroachdb/dynarray/pkg/util/log"
	"github.com/cockroachdb/dynarray/pkg/util/metric"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

type demoConfig struct {
	capacity         int
	name             string
	printMetrics     bool
	metricsFile      string
	graphiteEndpoint string
	verbosity        int32
	redactableLogs   bool
}

// elemSize is the in-memory size of one int64 slot.
const elemSize = 8

func runDemo(ctx context.Context, w io.Writer, cfg demoConfig) error {
	if ctx == nil {
		ctx = context.Background()
	}
	name := cfg.name
	if name == "" {
		name = uuid.NewString()
	}
	ctx = logtags.AddTag(ctx, "arr", name)

	list, err := dynarray.New[int64](dynarray.WithCapacity(cfg.capacity))
	if err != nil {
		return errors.Wrap(err, "creating array")
	}
	registry := metric.NewRegistry()
	m := dynarray.MakeMetrics()
	registry.AddMetricStruct(m)
	defer dynarray.Instrument(ctx, list, m)()
	log.Infof(ctx, "created array with capacity %d", list.Cap())

	for i := int64(1); i <= 5; i++ {
		list.Add(i)
	}

	fmt.Fprintln(w, "Iterate:")
	printList(w, list)

	fmt.Fprintln(w, "Indexers:")
	var vals []string
	for i := 0; i < 5; i++ {
		v, err := list.At(i)
		if err != nil {
			return errors.Wrapf(err, "reading index %d", i)
		}
		vals = append(vals, strconv.FormatInt(v, 10))
	}
	fmt.Fprintln(w, strings.Join(vals, " "))

	fmt.Fprintln(w, "Remove at index 1:")
	if err := list.RemoveAt(1); err != nil {
		return err
	}
	printList(w, list)

	fmt.Fprintln(w, "Remove element 3:")
	list.Remove(3)
	printList(w, list)

	fmt.Fprintln(w, "Add 6, 7, 8:")
	list.Add(6)
	list.Add(7)
	list.Add(8)
	printList(w, list)

	fmt.Fprintln(w, "Insert 9 at index 2:")
	if err := list.Insert(2, 9); err != nil {
		return err
	}
	printList(w, list)

	fmt.Fprintln(w, "Contains 9:")
	if list.Contains(9) {
		fmt.Fprintln(w, "Yes")
	} else {
		fmt.Fprintln(w, "No")
	}

	fmt.Fprintln(w, "Index of 9:")
	fmt.Fprintln(w, list.IndexOf(9))

	fmt.Fprintln(w, "Second array:")
	list2, err := dynarray.NewFromSlice([]int64{1, 2, 3, 4, 5, 6})
	if err != nil {
		return err
	}
	printList(w, list2)

	list.OnItemAdded(func(ev dynarray.ItemEvent[int64]) {
		fmt.Fprintf(w, "item %d added at index %d (array %s)\n", ev.Item, ev.Index, name)
	})
	list.OnItemRemoved(func(ev dynarray.ItemEvent[int64]) {
		fmt.Fprintf(w, "item %d removed from index %d (array %s)\n", ev.Item, ev.Index, name)
	})
	list.OnResized(func(ev dynarray.ResizeEvent) {
		fmt.Fprintf(w, "array %s resized from capacity %d to %d (%s)\n",
			name, ev.OldCapacity, ev.NewCapacity,
			humanize.IBytes(uint64(ev.NewCapacity*elemSize)))
	})

	fmt.Fprintln(w, "Add range 100..105:")
	if err := list.AddRange(func(yield func(int64) bool) {
		for v := int64(100); v <= 105; v++ {
			if !yield(v) {
				return
			}
		}
	}); err != nil {
		return err
	}

	fmt.Fprintln(w, "Remove element 102:")
	list.Remove(102)
	printList(w, list)

	log.Infof(ctx, "done: %d items, capacity %d", list.Len(), list.Cap())
	return exportMetrics(ctx, w, registry, cfg)
}

func printList(w io.Writer, list *dynarray.DynamicArray[int64]) {
	var buf strings.Builder
	for v := range list.Values() {
		if buf.Len() > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(strconv.FormatInt(v, 10))
	}
	fmt.Fprintln(w, buf.String())
}

func exportMetrics(
	ctx context.Context, w io.Writer, registry *metric.Registry, cfg demoConfig,
) error {
	if cfg.printMetrics {
		fmt.Fprintln(w, "Metrics:")
		if err := registry.PrintAsText(w); err != nil {
			return errors.Wrap(err, "printing metrics")
		}
	}
	if cfg.metricsFile != "" {
		if err := registry.WriteToTextfile(cfg.metricsFile); err != nil {
			return errors.Wrapf(err, "writing metrics to %s", cfg.metricsFile)
		}
		log.Infof(ctx, "wrote metrics to %s", cfg.metricsFile)
	}
	if cfg.graphiteEndpoint != "" {
		exporter := metric.MakeGraphiteExporter(registry)
		if err := exporter.Push(ctx, cfg.graphiteEndpoint); err != nil {
			return errors.Wrap(err, "pushing metrics to graphite")
		}
	}
	return nil
}
