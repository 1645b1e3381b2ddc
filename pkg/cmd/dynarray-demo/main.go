// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// dynarray-demo walks through the operations of a DynamicArray and prints
// the notifications it delivers.
package main

import (
	"os"

	"github.com/cockroachdb/dynarray/pkg/util/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newRootCmd() *cobra.Command {
	cfg := demoConfig{capacity: 5}
	flags := pflag.NewFlagSet("dynarray-demo", pflag.ContinueOnError)
	flags.IntVar(&cfg.capacity, "capacity", cfg.capacity,
		"initial capacity of the demonstrated array")
	flags.StringVar(&cfg.name, "name", "",
		"label of the array in event lines and log tags (random when empty)")
	flags.BoolVar(&cfg.printMetrics, "metrics", false,
		"print the collected metrics in the Prometheus text format")
	flags.StringVar(&cfg.metricsFile, "metrics-file", "",
		"write the collected metrics to a Prometheus textfile")
	flags.StringVar(&cfg.graphiteEndpoint, "graphite-endpoint", "",
		"push the collected metrics to this Graphite host:port")
	flags.Int32VarP(&cfg.verbosity, "verbosity", "v", 0,
		"log verbosity; resizes are logged at level 2")
	flags.BoolVar(&cfg.redactableLogs, "redactable-logs", false,
		"keep redaction markers in the log output")

	cmd := &cobra.Command{
		Use:          "dynarray-demo",
		Short:        "Demonstrate the operations and notifications of a dynamic array",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer log.SetVerbosity(cfg.verbosity)()
			defer log.SetRedactable(cfg.redactableLogs)()
			return runDemo(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}
	cmd.Flags().AddFlagSet(flags)
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
