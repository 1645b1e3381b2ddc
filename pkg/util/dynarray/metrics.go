// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package dynarray

import (
	"context"

	"github.com/cockroachdb/dynarray/pkg/util/log"
	"github.com/cockroachdb/dynarray/pkg/util/metric"
)

var (
	metaItemsAdded = metric.Metadata{
		Name:        "dynarray.items.added",
		Help:        "Number of items added to instrumented arrays",
		Measurement: "Items",
		Unit:        metric.Unit_COUNT,
	}
	metaItemsRemoved = metric.Metadata{
		Name:        "dynarray.items.removed",
		Help:        "Number of items removed from instrumented arrays",
		Measurement: "Items",
		Unit:        metric.Unit_COUNT,
	}
	metaResizes = metric.Metadata{
		Name:        "dynarray.resizes",
		Help:        "Number of times the backing buffer of an instrumented array grew",
		Measurement: "Resizes",
		Unit:        metric.Unit_COUNT,
	}
	metaCapacity = metric.Metadata{
		Name:        "dynarray.capacity",
		Help:        "Capacity reported by the most recent resize of an instrumented array",
		Measurement: "Slots",
		Unit:        metric.Unit_COUNT,
	}
)

// Metrics counts the mutations of one or more arrays.
type Metrics struct {
	ItemsAdded   *metric.Counter
	ItemsRemoved *metric.Counter
	Resizes      *metric.Counter
	Capacity     *metric.Gauge
}

// MetricStruct implements the metric.Struct interface.
func (Metrics) MetricStruct() {}

var _ metric.Struct = Metrics{}

// MakeMetrics instantiates the metrics for dynamic arrays.
func MakeMetrics() Metrics {
	return Metrics{
		ItemsAdded:   metric.NewCounter(metaItemsAdded),
		ItemsRemoved: metric.NewCounter(metaItemsRemoved),
		Resizes:      metric.NewCounter(metaResizes),
		Capacity:     metric.NewGauge(metaCapacity),
	}
}

// Instrument subscribes to the notifications of a so that m reflects its
// mutations, and logs every resize at verbosity level 2. The returned
// function removes the subscriptions.
func Instrument[T comparable](
	ctx context.Context, a *DynamicArray[T], m Metrics,
) (unsubscribe func()) {
	m.Capacity.Update(int64(a.Cap()))
	subs := []Subscription{
		a.OnItemAdded(func(ItemEvent[T]) {
			m.ItemsAdded.Inc(1)
		}),
		a.OnItemRemoved(func(ItemEvent[T]) {
			m.ItemsRemoved.Inc(1)
		}),
		a.OnResized(func(ev ResizeEvent) {
			m.Resizes.Inc(1)
			m.Capacity.Update(int64(ev.NewCapacity))
			log.VEventf(ctx, 2, "dynamic array resized: %s", ev)
		}),
	}
	return func() {
		for _, s := range subs {
			a.Unsubscribe(s)
		}
	}
}
