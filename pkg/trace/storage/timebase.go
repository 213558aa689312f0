// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026-present Datadog, Inc.

package storage

import (
	"sync"
	"time"

	"github.com/DataDog/trace-storage/pkg/trace/model"
)

// Phase is the state of a TimeBase storage.
type Phase int

const (
	// Accumulating is the initial phase: the span is younger than the elapsed
	// threshold and span events are only buffered.
	Accumulating Phase = iota
	// Overflowing means the span outlived the elapsed threshold: a chunk is
	// flushed every time the buffer reaches capacity.
	Overflowing
	// Closed is terminal: the span completed and nothing is buffered anymore.
	Closed
)

func (p Phase) String() string {
	switch p {
	case Accumulating:
		return "accumulating"
	case Overflowing:
		return "overflowing"
	case Closed:
		return "closed"
	}
	return "unknown"
}

// buffer is the mutable state of a TimeBase. The flag and the events always
// change together, under TimeBase.mu.
type buffer struct {
	// exceeded only ever goes from false to true.
	exceeded bool
	// events is nil once closed.
	events []*model.SpanEvent
}

// TimeBase is a Storage flushing span events depending on the age of their
// span. Events of a span younger than the elapsed threshold are buffered.
// Once the span is older, a chunk is sent every time capacity events are
// buffered. When the span completes, the remaining events are attached to it,
// or dropped if the completion policy says so.
//
// A TimeBase serves a single span and is safe for concurrent use.
type TimeBase struct {
	sender  Sender
	factory ChunkFactory
	opts    options

	mu  sync.Mutex
	buf buffer
}

var _ Storage = (*TimeBase)(nil)

// NewTimeBase returns a TimeBase storage sending to sender and building
// chunks with factory.
func NewTimeBase(sender Sender, factory ChunkFactory, opts ...Option) (*TimeBase, error) {
	if sender == nil {
		return nil, ErrNilSender
	}
	if factory == nil {
		return nil, ErrNilChunkFactory
	}
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return newTimeBase(sender, factory, o), nil
}

func newTimeBase(sender Sender, factory ChunkFactory, o options) *TimeBase {
	s := &TimeBase{
		sender:  sender,
		factory: factory,
		opts:    o,
	}
	s.buf.events = s.newEvents()
	return s
}

func (s *TimeBase) newEvents() []*model.SpanEvent {
	return make([]*model.SpanEvent, 0, s.opts.cfg.Capacity+s.opts.cfg.Headroom)
}

// exceeded reports whether now is past start plus the elapsed threshold.
func (s *TimeBase) exceeded(start time.Time) bool {
	return s.opts.clock.Now().After(start.Add(s.opts.cfg.ElapsedThreshold))
}

// StoreEvent implements Storage.
func (s *TimeBase) StoreEvent(event *model.SpanEvent) {
	if event == nil {
		return
	}
	flushed, ok := s.add(event)
	if !ok {
		s.opts.stats.EventsLate.Inc()
		// the span was already stored: events are reported out of order.
		_ = s.opts.logger.Errorf("storage is closed, dropping span event: %s", event)
		return
	}
	s.opts.stats.EventsStored.Inc()
	if flushed == nil {
		return
	}
	chunk := s.factory.Create(flushed)
	s.opts.stats.ChunksFlushed.Inc()
	s.opts.stats.EventsFlushed.Add(int64(len(flushed)))
	s.sender.SendChunk(chunk)
}

// add appends event to the buffer. It returns the events to flush, if the
// buffer reached capacity, and false if the storage is closed.
func (s *TimeBase) add(event *model.SpanEvent) ([]*model.SpanEvent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buf.events == nil {
		return nil, false
	}
	s.buf.events = append(s.buf.events, event)
	// The flag must be updated before the capacity check: the event making
	// the span slow can itself trigger the flush.
	if !s.buf.exceeded && event.Span != nil {
		s.buf.exceeded = s.exceeded(event.Span.Start)
	}
	if !s.buf.exceeded || len(s.buf.events) < s.opts.cfg.Capacity {
		return nil, true
	}
	flushed := s.buf.events
	s.buf.events = s.newEvents()
	return flushed, true
}

// StoreSpan implements Storage.
func (s *TimeBase) StoreSpan(span *model.Span) {
	if span == nil {
		return
	}
	exceeded := s.exceeded(span.Start)
	events, ok := s.close(exceeded)
	if !ok {
		s.opts.stats.SpansLate.Inc()
		_ = s.opts.logger.Errorf("storage is closed, dropping span: %s", span)
		return
	}
	if !s.opts.policy.KeepEvents(exceeded) {
		s.opts.stats.EventsDiscarded.Add(int64(len(events)))
		s.opts.stats.SpansDiscarded.Inc()
		s.opts.logger.Debugf("discarding %d span event(s) of %s (policy: %s)", len(events), span, s.opts.policy)
		s.sender.SendSpan(span)
		return
	}
	if len(events) > 0 {
		span.SpanEvents = events
	}
	s.opts.stats.SpansSent.Inc()
	s.sender.SendSpan(span)
}

// close captures the buffered events and closes the storage. It returns
// false if the storage was already closed.
func (s *TimeBase) close(exceeded bool) ([]*model.SpanEvent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.buf.events
	if events == nil {
		return nil, false
	}
	s.buf.exceeded = s.buf.exceeded || exceeded
	s.buf.events = nil
	return events, true
}

// Phase returns the current phase of the storage.
func (s *TimeBase) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.buf.events == nil:
		return Closed
	case s.buf.exceeded:
		return Overflowing
	}
	return Accumulating
}

// Buffered returns the number of span events currently buffered.
func (s *TimeBase) Buffered() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buf.events)
}
