// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026-present Datadog, Inc.

package writer

import (
	"github.com/DataDog/trace-storage/pkg/trace/model"
	"github.com/DataDog/trace-storage/pkg/trace/storage"
)

var _ storage.Sender = (*MultiSender)(nil)

// MultiSender is an implementation of storage.Sender which forwards any
// received span or chunk to multiple senders.
type MultiSender struct {
	senders []storage.Sender
}

// NewMultiSender returns a storage.Sender forwarding to all the given senders.
func NewMultiSender(senders ...storage.Sender) storage.Sender {
	if len(senders) == 1 {
		return senders[0]
	}
	return &MultiSender{senders: senders}
}

// SendSpan forwards the span to all registered senders.
func (m *MultiSender) SendSpan(span *model.Span) {
	for _, s := range m.senders {
		s.SendSpan(span)
	}
}

// SendChunk forwards the chunk to all registered senders.
func (m *MultiSender) SendChunk(chunk *model.SpanChunk) {
	for _, s := range m.senders {
		s.SendChunk(chunk)
	}
}
