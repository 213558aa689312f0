// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026-present Datadog, Inc.

// Package command implements the trace-storage-sim commands.
package command

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/DataDog/trace-storage/pkg/trace/config"
)

// GlobalParams contains the values of global Cobra flags.
type GlobalParams struct {
	ConfigFilePath string
}

type runParams struct {
	traces      int
	concurrency int
	events      int
	workers     int
	eventDelay  time.Duration
	slowEvery   int
	statsd      bool
}

// RootCommand returns the root command
func RootCommand() *cobra.Command {
	var globalParams GlobalParams
	parent := &cobra.Command{
		Use:          "trace-storage-sim [command]",
		Short:        "Drives the span event storage with simulated traces.",
		SilenceUsage: true,
	}
	parent.PersistentFlags().StringVarP(&globalParams.ConfigFilePath, "config", "c", config.DefaultConfigPath, "path to the configuration yaml file")
	parent.AddCommand(runCommand(&globalParams))
	return parent
}

func runCommand(globalParams *GlobalParams) *cobra.Command {
	var params runParams
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Runs a simulation and prints the storage stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), globalParams, &params)
		},
	}
	cmd.Flags().IntVar(&params.traces, "traces", 100, "number of traces to simulate")
	cmd.Flags().IntVar(&params.concurrency, "concurrency", 1, "number of traces in flight")
	cmd.Flags().IntVar(&params.events, "events", 30, "number of span events per trace")
	cmd.Flags().IntVar(&params.workers, "workers", 4, "number of goroutines storing the span events of one trace")
	cmd.Flags().DurationVar(&params.eventDelay, "event-delay", time.Millisecond, "delay between two span events of a goroutine")
	cmd.Flags().IntVar(&params.slowEvery, "slow-every", 10, "make every n-th trace outlive the elapsed threshold (0 disables)")
	cmd.Flags().BoolVar(&params.statsd, "statsd", false, "publish the storage stats to dogstatsd")
	return cmd
}
