// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026-present Datadog, Inc.

package info

import (
	"bytes"
	"testing"

	"github.com/DataDog/datadog-go/v5/statsd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DataDog/trace-storage/pkg/trace/log"
)

type mockStatsd struct {
	statsd.NoOpClient
	mock.Mock
}

func (m *mockStatsd) Count(name string, value int64, tags []string, rate float64) error {
	args := m.Called(name, value, tags, rate)
	return args.Error(0)
}

func TestPublish(t *testing.T) {
	s := NewStorageStats()
	s.EventsStored.Add(5)
	s.ChunksFlushed.Inc()

	client := &mockStatsd{}
	tags := []string{"env:test"}
	client.On("Count", "datadog.trace_storage.events_stored", int64(5), tags, 1.0).Return(nil).Once()
	client.On("Count", "datadog.trace_storage.chunks_flushed", int64(1), tags, 1.0).Return(nil).Once()
	client.On("Count", mock.Anything, int64(0), tags, 1.0).Return(nil)

	sent := s.Publish(client, tags)
	client.AssertExpectations(t)
	assert.Equal(t, int64(5), sent["events_stored"])
	assert.Equal(t, int64(1), sent["chunks_flushed"])

	for name, v := range s.Snapshot() {
		assert.Zero(t, v, name)
	}
}

func TestLogStats(t *testing.T) {
	var buf bytes.Buffer
	logger, err := log.New("info", &buf)
	require.NoError(t, err)

	s := NewStorageStats()
	s.LogStats(logger)
	s.EventsStored.Add(3)
	s.EventsLate.Inc()
	s.LogStats(logger)
	logger.Flush()

	out := buf.String()
	assert.Contains(t, out, "Storage stats: no data")
	assert.Contains(t, out, "Storage stats: events_late:1, events_stored:3")
	assert.Contains(t, out, "1 span event(s) arrived after their span completed")
}

func TestMapToString(t *testing.T) {
	assert.Equal(t, "a:1, c:3", mapToString(map[string]int64{"c": 3, "b": 0, "a": 1}))
	assert.Equal(t, "no data", mapToString(nil))
}
