// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026-present Datadog, Inc.

package storage

import (
	"fmt"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/DataDog/trace-storage/pkg/trace/config"
	"github.com/DataDog/trace-storage/pkg/trace/info"
	"github.com/DataDog/trace-storage/pkg/trace/log"
	pkgstorage "github.com/DataDog/trace-storage/pkg/trace/storage"
	"github.com/DataDog/trace-storage/pkg/trace/testutil"
	"github.com/DataDog/trace-storage/pkg/trace/writer"
)

func TestComponent(t *testing.T) {
	cfg := config.New()
	cfg.Storage.Capacity = 2
	downstream := &testutil.RecordingSender{}
	logger := &testutil.RecordingLogger{}
	mock := clock.NewMock()

	var (
		factory *pkgstorage.Factory
		stats   *info.StorageStats
	)
	app := fxtest.New(t,
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Supply(Params{Downstream: downstream, Telemetry: writer.NewTelemetry(prometheus.NewRegistry())}),
		fx.Provide(func() log.Logger { return logger }),
		fx.Provide(func() clock.Clock { return mock }),
		Module(),
		fx.Populate(&factory, &stats),
	)
	app.RequireStart()

	span := testutil.RandomSpan(mock.Now())
	mock.Add(2 * time.Second)
	s := factory.NewStorage()
	for _, ev := range testutil.SpanEvents(span, 0, 3) {
		s.StoreEvent(ev)
	}
	s.StoreSpan(span)
	app.RequireStop()

	assert.Len(t, downstream.Chunks(), 1)
	require.Len(t, downstream.Spans(), 1)
	assert.Len(t, downstream.Spans()[0].SpanEvents, 1)
	assert.Equal(t, int64(3), stats.EventsStored.Load())
	assert.NotEmpty(t, logger.Lines("info"))

	var debug []string
	for _, l := range logger.Lines("debug") {
		debug = append(debug, l.Message)
	}
	assert.Contains(t, debug, fmt.Sprintf("chunk: t_id:%d s_id:%d agent:%s events:2", span.TraceID, span.SpanID, cfg.AgentID))
	assert.Contains(t, debug, "span: "+span.String())
}

func TestComponentInvalidConfig(t *testing.T) {
	cfg := config.New()
	cfg.Storage.Capacity = 0

	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Supply(Params{Telemetry: writer.NewTelemetry(prometheus.NewRegistry())}),
		fx.Provide(func() log.Logger { return log.NoopLogger{} }),
		Module(),
		fx.Invoke(func(*pkgstorage.Factory) {}),
	)
	assert.ErrorContains(t, app.Err(), config.ErrInvalidCapacity.Error())
}
