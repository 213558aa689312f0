// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026-present Datadog, Inc.

package testutil

import (
	"sync"

	"github.com/DataDog/trace-storage/pkg/trace/model"
)

// RecordingSender keeps every span and chunk it is sent. It is safe for
// concurrent use.
type RecordingSender struct {
	mu     sync.Mutex
	spans  []*model.Span
	chunks []*model.SpanChunk
}

// SendSpan records span.
func (r *RecordingSender) SendSpan(span *model.Span) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spans = append(r.spans, span)
}

// SendChunk records chunk.
func (r *RecordingSender) SendChunk(chunk *model.SpanChunk) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chunks = append(r.chunks, chunk)
}

// Spans returns the spans received so far.
func (r *RecordingSender) Spans() []*model.Span {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*model.Span(nil), r.spans...)
}

// Chunks returns the chunks received so far.
func (r *RecordingSender) Chunks() []*model.SpanChunk {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*model.SpanChunk(nil), r.chunks...)
}

// DeliveredEvents returns every span event received, inside chunks first
// then attached to spans.
func (r *RecordingSender) DeliveredEvents() []*model.SpanEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var events []*model.SpanEvent
	for _, c := range r.chunks {
		events = append(events, c.SpanEvents...)
	}
	for _, s := range r.spans {
		events = append(events, s.SpanEvents...)
	}
	return events
}
