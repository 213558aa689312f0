// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026-present Datadog, Inc.

package writer

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	telemetryNamespace = "trace_storage"

	kindSpan  = "span"
	kindChunk = "chunk"
)

// Telemetry holds the prometheus metrics of the writers.
type Telemetry struct {
	payloads  *prometheus.CounterVec
	dropped   *prometheus.CounterVec
	queueFill prometheus.Histogram
}

// NewTelemetry returns a Telemetry registered on reg.
func NewTelemetry(reg prometheus.Registerer) *Telemetry {
	t := &Telemetry{
		payloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: telemetryNamespace,
			Name:      "writer_payloads_total",
			Help:      "Number of spans and chunks forwarded by the queued writer",
		}, []string{"kind"}),
		dropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: telemetryNamespace,
			Name:      "writer_dropped_total",
			Help:      "Number of spans and chunks dropped by the queued writer",
		}, []string{"kind"}),
		queueFill: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: telemetryNamespace,
			Name:      "writer_queue_fill_ratio",
			Help:      "Queue fill ratio of the queued writer",
			Buckets:   []float64{0.25, 0.5, 0.75, 0.9, 1},
		}),
	}
	reg.MustRegister(t.payloads, t.dropped, t.queueFill)
	return t
}

// Prometheus uses a global registry which panics on duplicate registration:
// the default Telemetry is registered once per process.
var (
	defaultTelemetry     *Telemetry
	defaultTelemetryOnce sync.Once
)

// DefaultTelemetry returns the Telemetry registered on the default prometheus registry.
func DefaultTelemetry() *Telemetry {
	defaultTelemetryOnce.Do(func() {
		defaultTelemetry = NewTelemetry(prometheus.DefaultRegisterer)
	})
	return defaultTelemetry
}
