// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026-present Datadog, Inc.

// Package storage buffers the span events of an in-flight span and decides,
// as events arrive and when the span completes, whether to keep
// accumulating, flush a chunk early, attach the events to the span or drop
// them altogether.
package storage

import (
	"errors"

	"github.com/DataDog/trace-storage/pkg/trace/model"
)

var (
	// ErrNilSender is returned when a storage is built without a Sender.
	ErrNilSender = errors.New("storage: sender must not be nil")
	// ErrNilChunkFactory is returned when a storage is built without a ChunkFactory.
	ErrNilChunkFactory = errors.New("storage: chunk factory must not be nil")
)

// Storage receives the span events of one span and, exactly once, the span
// itself when it completes. Implementations never block on I/O and never
// fail: telemetry must not affect the traced application.
type Storage interface {
	// StoreEvent stores a span event of the span.
	StoreEvent(event *model.SpanEvent)
	// StoreSpan stores the completed span. It is the last call made on a
	// Storage.
	StoreSpan(span *model.Span)
}

// Sender transmits spans and chunks out of process. Calls are fire-and-forget:
// failures, retries and backpressure are the Sender's concern.
type Sender interface {
	SendSpan(span *model.Span)
	SendChunk(chunk *model.SpanChunk)
}

// ChunkFactory builds a chunk from buffered span events. It is never called
// with an empty slice.
type ChunkFactory interface {
	Create(events []*model.SpanEvent) *model.SpanChunk
}

var _ ChunkFactory = (*model.ChunkFactory)(nil)
