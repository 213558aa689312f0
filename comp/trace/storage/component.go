// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026-present Datadog, Inc.

// Package storage implements the component building the span event
// storages, along with the queued writer they send to.
package storage

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/fx"

	"github.com/DataDog/trace-storage/pkg/trace/config"
	"github.com/DataDog/trace-storage/pkg/trace/info"
	"github.com/DataDog/trace-storage/pkg/trace/log"
	"github.com/DataDog/trace-storage/pkg/trace/model"
	pkgstorage "github.com/DataDog/trace-storage/pkg/trace/storage"
	"github.com/DataDog/trace-storage/pkg/trace/writer"
)

// team: agent-apm

// Params defines the parameters of the storage component.
type Params struct {
	// Downstream receives the spans and chunks out of the queued writer,
	// along with the debug log sender.
	Downstream pkgstorage.Sender
	// Telemetry is used by the queued writer. It defaults to writer.DefaultTelemetry().
	Telemetry *writer.Telemetry
}

// Requires declares the input types to the storage component constructor
type Requires struct {
	fx.In

	Lc     fx.Lifecycle
	Params Params
	Config *config.AgentConfig
	Logger log.Logger

	Clock clock.Clock `optional:"true"`
}

// Provides defines the output of the storage component
type Provides struct {
	fx.Out

	Factory *pkgstorage.Factory
	Writer  *writer.QueuedSender
	Stats   *info.StorageStats
}

// NewComponent creates the storage factory and its queued writer using the provided config
func NewComponent(deps Requires) (Provides, error) {
	stats := info.NewStorageStats()
	tel := deps.Params.Telemetry
	if tel == nil {
		tel = writer.DefaultTelemetry()
	}
	// payloads are always logged at debug level, and forwarded to the
	// downstream sender when one is given
	var downstream pkgstorage.Sender = writer.NewLogSender(deps.Logger)
	if deps.Params.Downstream != nil {
		downstream = writer.NewMultiSender(deps.Params.Downstream, downstream)
	}
	qw := writer.NewQueuedSender(downstream, deps.Config.WriterQueueSize, tel)

	opts := []pkgstorage.Option{
		pkgstorage.WithConfig(deps.Config.Storage),
		pkgstorage.WithLogger(deps.Logger),
		pkgstorage.WithStats(stats),
	}
	if deps.Clock != nil {
		opts = append(opts, pkgstorage.WithClock(deps.Clock))
	}
	chunks := model.NewChunkFactory(deps.Config.AgentID, deps.Config.ApplicationName, time.Now())
	factory, err := pkgstorage.NewFactory(qw, chunks, opts...)
	if err != nil {
		return Provides{}, err
	}

	deps.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			deps.Logger.Infof("Starting span event storage (capacity:%d, headroom:%d, elapsed threshold:%s, policy:%s)",
				deps.Config.Storage.Capacity, deps.Config.Storage.Headroom, deps.Config.Storage.ElapsedThreshold, factory.Policy())
			qw.Start()
			return nil
		},
		OnStop: func(context.Context) error {
			qw.Stop()
			stats.LogStats(deps.Logger)
			return nil
		},
	})
	return Provides{Factory: factory, Writer: qw, Stats: stats}, nil
}

// Module defines the fx options for this component.
func Module() fx.Option {
	return fx.Module("trace-storage", fx.Provide(NewComponent))
}
