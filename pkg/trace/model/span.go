// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026-present Datadog, Inc.

// Package model holds the records handled by the span event storage: spans,
// the span events nested inside them and the chunks flushed ahead of a span.
package model

import (
	"fmt"
	"time"
)

// Span is the root record of one unit of traced work. It is handed to the
// storage exactly once, when the work completes.
type Span struct {
	TraceID      uint64
	SpanID       uint64
	ParentSpanID uint64

	Service  string
	Name     string
	Resource string

	Start    time.Time
	Duration time.Duration
	Error    int32

	// SpanEvents is set by the storage at completion, when the buffered
	// events were kept.
	SpanEvents []*SpanEvent
}

// String implements fmt.Stringer.
func (s *Span) String() string {
	return fmt.Sprintf("Span[t_id:%d,s_id:%d,p_id:%d,svc:%s,name:%s,events:%d]",
		s.TraceID, s.SpanID, s.ParentSpanID, s.Service, s.Name, len(s.SpanEvents))
}

// SpanEvent is one operation nested inside a span.
type SpanEvent struct {
	// Span is the span owning this event. Its start time drives the elapsed
	// time checks of the storage.
	Span *Span

	Sequence int32
	Depth    int32
	Name     string
	Resource string

	// StartElapsed and EndElapsed are offsets from the owning span start.
	StartElapsed time.Duration
	EndElapsed   time.Duration
}

// String implements fmt.Stringer.
func (e *SpanEvent) String() string {
	var traceID, spanID uint64
	if e.Span != nil {
		traceID, spanID = e.Span.TraceID, e.Span.SpanID
	}
	return fmt.Sprintf("SpanEvent[t_id:%d,s_id:%d,seq:%d,depth:%d,name:%s]",
		traceID, spanID, e.Sequence, e.Depth, e.Name)
}
