// Copyright 2018 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package metric

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cockroachdb/dynarray/pkg/util/log"
	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus/graphite"
)

var errNoEndpoint = errors.New("graphite endpoint is not set")

// GraphiteExporter scrapes a Registry for metrics and pushes them to a
// Graphite or Carbon server.
type GraphiteExporter struct {
	registry *Registry
}

// MakeGraphiteExporter returns an initialized graphite exporter.
func MakeGraphiteExporter(registry *Registry) GraphiteExporter {
	return GraphiteExporter{registry: registry}
}

type loggerFunc func(...interface{})

// Println implements graphite.Logger.
func (lf loggerFunc) Println(v ...interface{}) {
	lf(v...)
}

// Push metrics scraped from the registry to Graphite or Carbon server.
// It converts the same metrics that are pulled by Prometheus into
// Graphite-format.
func (ge *GraphiteExporter) Push(ctx context.Context, endpoint string) error {
	if endpoint == "" {
		return errNoEndpoint
	}
	h, err := os.Hostname()
	if err != nil {
		return err
	}
	// Make the bridge.
	var b *graphite.Bridge
	if b, err = graphite.NewBridge(&graphite.Config{
		URL:           endpoint,
		Gatherer:      ge.registry,
		Prefix:        fmt.Sprintf("%s.dynarray", h),
		Timeout:       10 * time.Second,
		ErrorHandling: graphite.AbortOnError,
		Logger: loggerFunc(func(args ...interface{}) {
			log.InfofDepth(ctx, 1, "%s", fmt.Sprint(args...))
		}),
	}); err != nil {
		return errors.Wrap(err, "creating graphite bridge")
	}
	return errors.Wrapf(b.Push(), "pushing metrics to %s", endpoint)
}
