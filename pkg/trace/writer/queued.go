// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026-present Datadog, Inc.

// Package writer implements in-process senders for the spans and chunks
// produced by the storages.
package writer

import (
	"sync"

	"go.uber.org/atomic"

	"github.com/DataDog/trace-storage/pkg/trace/model"
	"github.com/DataDog/trace-storage/pkg/trace/storage"
)

var _ storage.Sender = (*QueuedSender)(nil)

// payload is either a span or a chunk.
type payload struct {
	span  *model.Span
	chunk *model.SpanChunk
}

func (p payload) kind() string {
	if p.chunk != nil {
		return kindChunk
	}
	return kindSpan
}

// QueuedSender decouples the storages from the downstream sender. Sends never
// block: payloads are queued and forwarded by a single worker. When the queue
// is full, the oldest payload is dropped.
type QueuedSender struct {
	out       storage.Sender
	queue     chan payload
	telemetry *Telemetry

	sent    *atomic.Int64
	dropped *atomic.Int64

	// mu orders pushes with Stop: no payload is queued once the worker
	// may have returned.
	mu      sync.RWMutex
	stopped bool

	exit chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

// NewQueuedSender returns a QueuedSender forwarding to out through a queue of
// size payloads. Start must be called for payloads to flow.
func NewQueuedSender(out storage.Sender, size int, t *Telemetry) *QueuedSender {
	if size <= 0 {
		size = 1
	}
	return &QueuedSender{
		out:       out,
		queue:     make(chan payload, size),
		telemetry: t,
		sent:      atomic.NewInt64(0),
		dropped:   atomic.NewInt64(0),
		exit:      make(chan struct{}),
	}
}

// Start starts the worker.
func (q *QueuedSender) Start() {
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		q.run()
	}()
}

func (q *QueuedSender) run() {
	for {
		select {
		case p := <-q.queue:
			q.forward(p)
		case <-q.exit:
			// drain what is left
			for {
				select {
				case p := <-q.queue:
					q.forward(p)
				default:
					return
				}
			}
		}
	}
}

func (q *QueuedSender) forward(p payload) {
	if p.chunk != nil {
		q.out.SendChunk(p.chunk)
	} else {
		q.out.SendSpan(p.span)
	}
	q.sent.Inc()
	if q.telemetry != nil {
		q.telemetry.payloads.WithLabelValues(p.kind()).Inc()
	}
}

// Stop forwards the queued payloads and stops the worker. Payloads sent
// afterwards are dropped.
func (q *QueuedSender) Stop() {
	q.once.Do(func() {
		q.mu.Lock()
		q.stopped = true
		q.mu.Unlock()
		close(q.exit)
		q.wg.Wait()
		// left over when the worker was never started
		for {
			select {
			case p := <-q.queue:
				q.drop(p)
			default:
				return
			}
		}
	})
}

// SendSpan implements storage.Sender.
func (q *QueuedSender) SendSpan(span *model.Span) {
	q.push(payload{span: span})
}

// SendChunk implements storage.Sender.
func (q *QueuedSender) SendChunk(chunk *model.SpanChunk) {
	q.push(payload{chunk: chunk})
}

// push queues p, dropping the oldest payload when the queue is full.
func (q *QueuedSender) push(p payload) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.stopped {
		q.drop(p)
		return
	}
	if q.telemetry != nil {
		q.telemetry.queueFill.Observe(float64(len(q.queue)) / float64(cap(q.queue)))
	}
	for {
		select {
		case q.queue <- p:
			return
		default:
			select {
			case old := <-q.queue:
				q.drop(old)
			default:
			}
		}
	}
}

func (q *QueuedSender) drop(p payload) {
	q.dropped.Inc()
	if q.telemetry != nil {
		q.telemetry.dropped.WithLabelValues(p.kind()).Inc()
	}
}

// Sent returns the number of payloads forwarded downstream.
func (q *QueuedSender) Sent() int64 { return q.sent.Load() }

// Dropped returns the number of payloads dropped.
func (q *QueuedSender) Dropped() int64 { return q.dropped.Load() }
