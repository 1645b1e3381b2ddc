// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package metric

import (
	"io"
	"reflect"
	"regexp"
	"slices"
	"strings"

	"github.com/cockroachdb/dynarray/pkg/util/syncutil"
	"github.com/cockroachdb/errors"
	"github.com/gogo/protobuf/proto"
	"github.com/prometheus/client_golang/prometheus"
	prometheusgo "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

// A Registry is a list of metrics. It provides a simple way of iterating
// over them and of exporting them to Prometheus.
type Registry struct {
	mu struct {
		syncutil.Mutex
		tracked map[string]Iterable
	}
}

var _ prometheus.Gatherer = (*Registry)(nil)

// NewRegistry creates a new Registry.
func NewRegistry() *Registry {
	r := &Registry{}
	r.mu.tracked = map[string]Iterable{}
	return r
}

// AddMetric adds the passed-in metric to the registry. Registering two
// metrics under the same name is a programming error.
func (r *Registry) AddMetric(metric Iterable) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := metric.GetName()
	if _, ok := r.mu.tracked[name]; ok {
		panic(errors.AssertionFailedf("metric %q registered twice", name))
	}
	r.mu.tracked[name] = metric
}

// AddMetricStruct examines all fields of metricStruct and adds
// all Iterable or Struct objects to the registry.
func (r *Registry) AddMetricStruct(metricStruct interface{}) {
	v := reflect.ValueOf(metricStruct)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		vfield, tfield := v.Field(i), t.Field(i)
		if !tfield.IsExported() {
			continue
		}
		if (vfield.Kind() == reflect.Ptr || vfield.Kind() == reflect.Interface) && vfield.IsNil() {
			continue
		}
		switch typ := vfield.Interface().(type) {
		case Iterable:
			r.AddMetric(typ)
		case Struct:
			r.AddMetricStruct(typ)
		}
	}
}

// Each calls the given closure for all metrics, ordered by name.
func (r *Registry) Each(f func(name string, val interface{})) {
	r.mu.Lock()
	names := make([]string, 0, len(r.mu.tracked))
	metrics := make(map[string]Iterable, len(r.mu.tracked))
	for name, metric := range r.mu.tracked {
		names = append(names, name)
		metrics[name] = metric
	}
	r.mu.Unlock()

	slices.Sort(names)
	for _, name := range names {
		metrics[name].Inspect(func(v interface{}) {
			f(name, v)
		})
	}
}

// Gather implements prometheus.Gatherer. Families are sorted by their
// exported name.
func (r *Registry) Gather() ([]*prometheusgo.MetricFamily, error) {
	var families []*prometheusgo.MetricFamily
	r.Each(func(name string, v interface{}) {
		pm, ok := v.(PrometheusExportable)
		if !ok {
			return
		}
		families = append(families, &prometheusgo.MetricFamily{
			Name:   proto.String(exportedName(name)),
			Help:   proto.String(pm.GetHelp()),
			Type:   pm.GetType(),
			Metric: []*prometheusgo.Metric{pm.ToPrometheusMetric()},
		})
	})
	slices.SortFunc(families, func(a, b *prometheusgo.MetricFamily) int {
		return strings.Compare(a.GetName(), b.GetName())
	})
	return families, nil
}

// PrintAsText writes all metrics in the registry to w using the Prometheus
// text exposition format.
func (r *Registry) PrintAsText(w io.Writer) error {
	families, err := r.Gather()
	if err != nil {
		return err
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return errors.Wrapf(err, "writing metric %s", family.GetName())
		}
	}
	return nil
}

// WriteToTextfile writes the registry's metrics to path in the text format
// read by the node exporter's textfile collector.
func (r *Registry) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r)
}

var prometheusNameReplaceRE = regexp.MustCompile("^[^a-zA-Z_:]|[^a-zA-Z0-9_:]")

// exportedName takes a metric name and generates a valid prometheus name.
func exportedName(name string) string {
	return prometheusNameReplaceRE.ReplaceAllString(name, "_")
}
