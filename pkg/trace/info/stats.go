// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026-present Datadog, Inc.

// Package info keeps the internal statistics of the span event storage.
package info

import (
	"fmt"
	"sort"
	"strings"

	"github.com/DataDog/datadog-go/v5/statsd"
	"go.uber.org/atomic"

	"github.com/DataDog/trace-storage/pkg/trace/log"
)

const metricPrefix = "datadog.trace_storage."

// StorageStats counts what the storages did with the spans and span events
// they were given. It is shared by every storage built by one factory and is
// safe for concurrent use.
type StorageStats struct {
	// EventsStored is the number of span events appended to a buffer.
	EventsStored *atomic.Int64
	// EventsLate is the number of span events dropped because their storage
	// was already closed.
	EventsLate *atomic.Int64
	// EventsDiscarded is the number of buffered span events dropped because
	// their span completed fast.
	EventsDiscarded *atomic.Int64
	// EventsFlushed is the number of span events sent inside chunks.
	EventsFlushed *atomic.Int64
	// ChunksFlushed is the number of chunks sent ahead of their span.
	ChunksFlushed *atomic.Int64
	// SpansSent is the number of spans sent with their events attached, if any.
	SpansSent *atomic.Int64
	// SpansDiscarded is the number of spans sent bare after their events
	// were discarded.
	SpansDiscarded *atomic.Int64
	// SpansLate is the number of spans dropped because their storage was
	// already closed.
	SpansLate *atomic.Int64
}

// NewStorageStats returns a zeroed StorageStats.
func NewStorageStats() *StorageStats {
	return &StorageStats{
		EventsStored:    atomic.NewInt64(0),
		EventsLate:      atomic.NewInt64(0),
		EventsDiscarded: atomic.NewInt64(0),
		EventsFlushed:   atomic.NewInt64(0),
		ChunksFlushed:   atomic.NewInt64(0),
		SpansSent:       atomic.NewInt64(0),
		SpansDiscarded:  atomic.NewInt64(0),
		SpansLate:       atomic.NewInt64(0),
	}
}

// Snapshot returns the current values keyed by metric name.
func (s *StorageStats) Snapshot() map[string]int64 {
	return map[string]int64{
		"events_stored":    s.EventsStored.Load(),
		"events_late":      s.EventsLate.Load(),
		"events_discarded": s.EventsDiscarded.Load(),
		"events_flushed":   s.EventsFlushed.Load(),
		"chunks_flushed":   s.ChunksFlushed.Load(),
		"spans_sent":       s.SpansSent.Load(),
		"spans_discarded":  s.SpansDiscarded.Load(),
		"spans_late":       s.SpansLate.Load(),
	}
}

// swap returns the current values keyed by metric name and resets them.
func (s *StorageStats) swap() map[string]int64 {
	return map[string]int64{
		"events_stored":    s.EventsStored.Swap(0),
		"events_late":      s.EventsLate.Swap(0),
		"events_discarded": s.EventsDiscarded.Swap(0),
		"events_flushed":   s.EventsFlushed.Swap(0),
		"chunks_flushed":   s.ChunksFlushed.Swap(0),
		"spans_sent":       s.SpansSent.Swap(0),
		"spans_discarded":  s.SpansDiscarded.Swap(0),
		"spans_late":       s.SpansLate.Swap(0),
	}
}

// Publish sends the counts accumulated since the last call to statsd and
// resets them. It returns the counts sent.
func (s *StorageStats) Publish(client statsd.ClientInterface, tags []string) map[string]int64 {
	counts := s.swap()
	for name, v := range counts {
		_ = client.Count(metricPrefix+name, v, tags, 1)
	}
	return counts
}

// LogStats logs a one-line summary. Late span events are reported as a
// warning, as they mean spans are completed before their events.
func (s *StorageStats) LogStats(logger log.Logger) {
	snap := s.Snapshot()
	logger.Infof("Storage stats: %s", mapToString(snap))
	if late := snap["events_late"]; late > 0 {
		_ = logger.Warnf("%d span event(s) arrived after their span completed and were dropped", late)
	}
}

// mapToString serializes m into "key1:value1, key2:value2", sorted by key.
// Only non-zero values are included.
func mapToString(m map[string]int64) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var results []string
	for _, key := range keys {
		if value := m[key]; value > 0 {
			results = append(results, fmt.Sprintf("%s:%d", key, value))
		}
	}
	if len(results) == 0 {
		return "no data"
	}
	return strings.Join(results, ", ")
}
