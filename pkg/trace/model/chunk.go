// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026-present Datadog, Inc.

package model

import "time"

// SpanChunk is a snapshot of span events flushed before their span completed.
// It must not be modified once created.
type SpanChunk struct {
	TraceID uint64
	SpanID  uint64

	AgentID         string
	ApplicationName string
	AgentStartTime  time.Time

	SpanEvents []*SpanEvent
}

// Len returns the number of span events in the chunk.
func (c *SpanChunk) Len() int {
	if c == nil {
		return 0
	}
	return len(c.SpanEvents)
}

// ChunkFactory builds span chunks stamped with the identity of the agent.
type ChunkFactory struct {
	agentID         string
	applicationName string
	agentStartTime  time.Time
}

// NewChunkFactory returns a ChunkFactory for the given agent.
func NewChunkFactory(agentID, applicationName string, agentStartTime time.Time) *ChunkFactory {
	return &ChunkFactory{
		agentID:         agentID,
		applicationName: applicationName,
		agentStartTime:  agentStartTime,
	}
}

// Create returns a chunk holding events, in order. The trace identity is
// taken from the span owning the first event. It returns nil when events is
// empty.
func (f *ChunkFactory) Create(events []*SpanEvent) *SpanChunk {
	if len(events) == 0 {
		return nil
	}
	c := &SpanChunk{
		AgentID:         f.agentID,
		ApplicationName: f.applicationName,
		AgentStartTime:  f.agentStartTime,
		SpanEvents:      events,
	}
	if s := events[0].Span; s != nil {
		c.TraceID = s.TraceID
		c.SpanID = s.SpanID
	}
	return c
}
