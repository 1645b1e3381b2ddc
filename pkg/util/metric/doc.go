// Copyright 2016 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

/*
Package metric provides in-process metrics (a.k.a. transient stats) that can be
exported in the Prometheus text exposition format or pushed to Graphite.

Adding a new metric

First, describe the metric with a Metadata and create it:

	var metaItemsAdded = metric.Metadata{
		Name:        "dynarray.items.added",
		Help:        "Number of items added to dynamic arrays",
		Measurement: "Items",
		Unit:        metric.Unit_COUNT,
	}

	added := metric.NewCounter(metaItemsAdded)

Next, add it to a Registry. Metrics are usually grouped in a struct that
implements Struct, which lets the registry pick up every exported metric
field in one call:

	type Metrics struct {
		ItemsAdded *metric.Counter
	}

	func (Metrics) MetricStruct() {}

	registry := metric.NewRegistry()
	registry.AddMetricStruct(m)

Exporting

A Registry implements prometheus.Gatherer, so it can be handed to anything in
the Prometheus client library that scrapes a gatherer. PrintAsText writes the
text exposition format directly; metric names have every character that
Prometheus does not accept replaced by an underscore, so
"dynarray.items.added" is exported as "dynarray_items_added".

Testing

Tests usually read the metric directly (Counter.Count, Gauge.Value) rather
than scraping the registry.
*/
package metric
