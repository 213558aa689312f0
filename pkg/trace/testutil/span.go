// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026-present Datadog, Inc.

// Package testutil provides helpers to build spans and span events and to
// observe what the storage sends.
package testutil

import (
	"math/rand"
	"time"

	"github.com/DataDog/trace-storage/pkg/trace/model"
)

// RandomSpan returns a span with random identifiers starting at start.
func RandomSpan(start time.Time) *model.Span {
	traceID := rand.Uint64()
	return &model.Span{
		TraceID:  traceID,
		SpanID:   traceID,
		Service:  "django",
		Name:     "django.controller",
		Resource: "GET /some/raclette",
		Start:    start,
	}
}

// SpanEvents returns n span events of span with increasing sequence numbers
// starting at first.
func SpanEvents(span *model.Span, first, n int) []*model.SpanEvent {
	events := make([]*model.SpanEvent, n)
	for i := range events {
		seq := first + i
		events[i] = &model.SpanEvent{
			Span:         span,
			Sequence:     int32(seq),
			Depth:        1 + int32(seq%3),
			Name:         "sql.query",
			Resource:     "SELECT * FROM raclette",
			StartElapsed: time.Duration(seq) * time.Millisecond,
			EndElapsed:   time.Duration(seq+1) * time.Millisecond,
		}
	}
	return events
}
