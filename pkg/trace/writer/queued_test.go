// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026-present Datadog, Inc.

package writer

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/DataDog/trace-storage/pkg/trace/model"
	"github.com/DataDog/trace-storage/pkg/trace/testutil"
)

func chunk(seq int) *model.SpanChunk {
	return &model.SpanChunk{SpanEvents: []*model.SpanEvent{{Sequence: int32(seq)}}}
}

func TestQueuedSender(t *testing.T) {
	t.Run("forward", func(t *testing.T) {
		assert := assert.New(t)
		out := &testutil.RecordingSender{}
		tel := NewTelemetry(prometheus.NewRegistry())
		q := NewQueuedSender(out, 16, tel)
		q.Start()

		span := &model.Span{TraceID: 1}
		q.SendChunk(chunk(0))
		q.SendChunk(chunk(1))
		q.SendSpan(span)
		q.Stop()

		assert.Equal([]*model.SpanChunk{chunk(0), chunk(1)}, out.Chunks())
		assert.Equal([]*model.Span{span}, out.Spans())
		assert.Equal(int64(3), q.Sent())
		assert.Zero(q.Dropped())
		assert.Equal(2.0, promtestutil.ToFloat64(tel.payloads.WithLabelValues(kindChunk)))
		assert.Equal(1.0, promtestutil.ToFloat64(tel.payloads.WithLabelValues(kindSpan)))
	})

	t.Run("drop-oldest", func(t *testing.T) {
		assert := assert.New(t)
		out := &testutil.RecordingSender{}
		tel := NewTelemetry(prometheus.NewRegistry())
		q := NewQueuedSender(out, 4, tel)

		// not started: the queue fills up
		for i := 0; i < 8; i++ {
			q.SendChunk(chunk(i))
		}
		assert.Equal(int64(4), q.Dropped())

		q.Start()
		q.Stop()
		assert.Equal([]*model.SpanChunk{chunk(4), chunk(5), chunk(6), chunk(7)}, out.Chunks())
		assert.Equal(4.0, promtestutil.ToFloat64(tel.dropped.WithLabelValues(kindChunk)))
	})

	t.Run("stopped", func(t *testing.T) {
		out := &testutil.RecordingSender{}
		q := NewQueuedSender(out, 4, nil)
		q.Start()
		q.Stop()
		q.Stop()

		q.SendSpan(&model.Span{})
		assert.Empty(t, out.Spans())
		assert.Equal(t, int64(1), q.Dropped())
	})

	t.Run("never-started", func(t *testing.T) {
		out := &testutil.RecordingSender{}
		q := NewQueuedSender(out, 4, nil)
		q.SendChunk(chunk(0))
		q.SendChunk(chunk(1))
		q.Stop()

		assert.Empty(t, out.Chunks())
		assert.Zero(t, q.Sent())
		assert.Equal(t, int64(2), q.Dropped())
	})

	t.Run("stop-while-sending", func(t *testing.T) {
		const senders, perSender = 8, 200
		for i := 0; i < 50; i++ {
			out := &testutil.RecordingSender{}
			q := NewQueuedSender(out, 16, nil)
			q.Start()

			var wg sync.WaitGroup
			for s := 0; s < senders; s++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for j := 0; j < perSender; j++ {
						q.SendChunk(chunk(j))
					}
				}()
			}
			q.Stop()
			wg.Wait()

			// every payload is either forwarded or counted as dropped
			assert.Equal(t, int64(senders*perSender), q.Sent()+q.Dropped())
			assert.Len(t, out.Chunks(), int(q.Sent()))
		}
	})
}

func TestMultiSender(t *testing.T) {
	a, b := &testutil.RecordingSender{}, &testutil.RecordingSender{}
	assert.Same(t, a, NewMultiSender(a))

	m := NewMultiSender(a, b)
	span, c := &model.Span{TraceID: 3}, chunk(1)
	m.SendSpan(span)
	m.SendChunk(c)
	for _, r := range []*testutil.RecordingSender{a, b} {
		assert.Equal(t, []*model.Span{span}, r.Spans())
		assert.Equal(t, []*model.SpanChunk{c}, r.Chunks())
	}
}

func TestLogSender(t *testing.T) {
	logger := &testutil.RecordingLogger{}
	l := NewLogSender(logger)
	l.SendSpan(&model.Span{TraceID: 1, SpanID: 2, Service: "web", Name: "req"})
	l.SendChunk(&model.SpanChunk{TraceID: 1, SpanID: 2, AgentID: "a", SpanEvents: make([]*model.SpanEvent, 3)})

	lines := logger.Lines("debug")
	assert.Equal(t, []testutil.LogLine{
		{Level: "debug", Message: "span: Span[t_id:1,s_id:2,p_id:0,svc:web,name:req,events:0]"},
		{Level: "debug", Message: "chunk: t_id:1 s_id:2 agent:a events:3"},
	}, lines)
}

func TestDefaultTelemetry(t *testing.T) {
	assert.Same(t, DefaultTelemetry(), DefaultTelemetry())
}
