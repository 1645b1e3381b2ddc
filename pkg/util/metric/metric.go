// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package metric

import (
	"sync/atomic"

	"github.com/gogo/protobuf/proto"
	prometheusgo "github.com/prometheus/client_model/go"
)

// Unit describes what a metric measures.
type Unit int32

// Supported units.
const (
	Unit_UNSET Unit = iota
	Unit_COUNT
	Unit_BYTES
)

// Metadata holds metadata about a metric.
type Metadata struct {
	Name        string
	Help        string
	Measurement string
	Unit        Unit
}

// GetName returns the metric's name.
func (m *Metadata) GetName() string {
	return m.Name
}

// GetHelp returns the metric's help string.
func (m *Metadata) GetHelp() string {
	return m.Help
}

// GetMeasurement returns the label for the metric's measurement.
func (m *Metadata) GetMeasurement() string {
	return m.Measurement
}

// GetUnit returns the metric's unit.
func (m *Metadata) GetUnit() Unit {
	return m.Unit
}

// Iterable provides a method for synchronized access to interior objects.
type Iterable interface {
	// GetName returns the fully-qualified name of the metric.
	GetName() string
	// GetHelp returns the help text for the metric.
	GetHelp() string
	// Inspect calls the given closure with each contained item.
	Inspect(func(interface{}))
}

// PrometheusExportable is the standard interface for an individual metric
// that can be exported to prometheus.
type PrometheusExportable interface {
	// GetName is a method on Metadata
	GetName() string
	// GetHelp is a method on Metadata
	GetHelp() string
	// GetType returns the prometheus type enum for this metric.
	GetType() *prometheusgo.MetricType
	// ToPrometheusMetric returns a filled-in prometheus metric of the right type.
	ToPrometheusMetric() *prometheusgo.Metric
}

// Struct can be implemented by the types of members of a metric
// container so that the members get automatically registered.
type Struct interface {
	MetricStruct()
}

// A Counter holds a single mutable atomic value that only goes up.
type Counter struct {
	Metadata
	count atomic.Int64
}

var _ Iterable = (*Counter)(nil)
var _ PrometheusExportable = (*Counter)(nil)

// NewCounter creates a counter.
func NewCounter(metadata Metadata) *Counter {
	return &Counter{Metadata: metadata}
}

// Inc atomically increments the counter by the given value.
func (c *Counter) Inc(v int64) {
	c.count.Add(v)
}

// Count returns the current value of the counter.
func (c *Counter) Count() int64 {
	return c.count.Load()
}

// Inspect calls the given closure with itself.
func (c *Counter) Inspect(f func(interface{})) { f(c) }

// GetType returns the prometheus type enum for this metric.
func (c *Counter) GetType() *prometheusgo.MetricType {
	return prometheusgo.MetricType_COUNTER.Enum()
}

// ToPrometheusMetric returns a filled-in prometheus metric of the right type.
func (c *Counter) ToPrometheusMetric() *prometheusgo.Metric {
	return &prometheusgo.Metric{
		Counter: &prometheusgo.Counter{Value: proto.Float64(float64(c.Count()))},
	}
}

// A Gauge atomically stores a single integer value.
type Gauge struct {
	Metadata
	value atomic.Int64
}

var _ Iterable = (*Gauge)(nil)
var _ PrometheusExportable = (*Gauge)(nil)

// NewGauge creates a Gauge.
func NewGauge(metadata Metadata) *Gauge {
	return &Gauge{Metadata: metadata}
}

// Update updates the gauge's value.
func (g *Gauge) Update(v int64) {
	g.value.Store(v)
}

// Inc increments the gauge's value.
func (g *Gauge) Inc(i int64) {
	g.value.Add(i)
}

// Dec decrements the gauge's value.
func (g *Gauge) Dec(i int64) {
	g.value.Add(-i)
}

// Value returns the gauge's current value.
func (g *Gauge) Value() int64 {
	return g.value.Load()
}

// Inspect calls the given closure with itself.
func (g *Gauge) Inspect(f func(interface{})) { f(g) }

// GetType returns the prometheus type enum for this metric.
func (g *Gauge) GetType() *prometheusgo.MetricType {
	return prometheusgo.MetricType_GAUGE.Enum()
}

// ToPrometheusMetric returns a filled-in prometheus metric of the right type.
func (g *Gauge) ToPrometheusMetric() *prometheusgo.Metric {
	return &prometheusgo.Metric{
		Gauge: &prometheusgo.Gauge{Value: proto.Float64(float64(g.Value()))},
	}
}
