// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026-present Datadog, Inc.

// Package config provides the trace storage configuration and logger as fx
// components.
package config

import (
	"context"
	"io"
	"os"
	"time"

	"go.uber.org/fx"

	tracecfg "github.com/DataDog/trace-storage/pkg/trace/config"
	"github.com/DataDog/trace-storage/pkg/trace/log"
)

// team: agent-apm

const (
	throttledLines    = 10
	throttledInterval = time.Second
)

// LogOutput is the destination of the log lines. It defaults to stderr.
type LogOutput struct {
	io.Writer
}

// Requires defines the dependencies of the logger.
type Requires struct {
	fx.In

	Lc     fx.Lifecycle
	Config *tracecfg.AgentConfig
	Output *LogOutput `optional:"true"`
}

// NewConfig loads the configuration from params.ConfFilePath.
func NewConfig(params Params) (*tracecfg.AgentConfig, error) {
	path := params.ConfFilePath
	if path == "" {
		path = tracecfg.DefaultConfigPath
	}
	return tracecfg.Load(path)
}

// NewLogger builds the seelog logger for the configured level. It is flushed
// when the application stops.
func NewLogger(deps Requires) (log.Logger, error) {
	var w io.Writer = os.Stderr
	if deps.Output != nil && deps.Output.Writer != nil {
		w = deps.Output.Writer
	}
	l, err := log.New(deps.Config.LogLevel, w)
	if err != nil {
		return nil, err
	}
	deps.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			l.Flush()
			return nil
		},
	})
	if deps.Config.LogThrottling {
		return log.NewThrottled(l, throttledLines, throttledInterval), nil
	}
	return l, nil
}

// Module defines the fx options for this component.
func Module() fx.Option {
	return fx.Module("trace-config",
		fx.Provide(NewConfig),
		fx.Provide(NewLogger),
	)
}
