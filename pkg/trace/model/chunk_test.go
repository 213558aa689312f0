// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026-present Datadog, Inc.

package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkFactory(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	f := NewChunkFactory("agent-1", "checkout", start)

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, f.Create(nil))
		assert.Nil(t, f.Create([]*SpanEvent{}))
	})

	t.Run("identity", func(t *testing.T) {
		span := &Span{TraceID: 42, SpanID: 7}
		events := []*SpanEvent{
			{Span: span, Sequence: 0},
			{Span: span, Sequence: 1},
		}
		c := f.Create(events)
		require.NotNil(t, c)
		assert.Equal(t, uint64(42), c.TraceID)
		assert.Equal(t, uint64(7), c.SpanID)
		assert.Equal(t, "agent-1", c.AgentID)
		assert.Equal(t, "checkout", c.ApplicationName)
		assert.Equal(t, start, c.AgentStartTime)
		assert.Equal(t, events, c.SpanEvents)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("orphan", func(t *testing.T) {
		c := f.Create([]*SpanEvent{{Sequence: 3}})
		require.NotNil(t, c)
		assert.Zero(t, c.TraceID)
		assert.Equal(t, 1, c.Len())
	})
}

func TestSpanChunkLenNil(t *testing.T) {
	var c *SpanChunk
	assert.Equal(t, 0, c.Len())
}

func TestStringers(t *testing.T) {
	span := &Span{TraceID: 1, SpanID: 2, Service: "web", Name: "http.request"}
	assert.Equal(t, "Span[t_id:1,s_id:2,p_id:0,svc:web,name:http.request,events:0]", span.String())

	ev := &SpanEvent{Span: span, Sequence: 4, Depth: 1, Name: "sql.query"}
	assert.Equal(t, "SpanEvent[t_id:1,s_id:2,seq:4,depth:1,name:sql.query]", ev.String())
	assert.Equal(t, "SpanEvent[t_id:0,s_id:0,seq:0,depth:0,name:]", (&SpanEvent{}).String())
}
