// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026-present Datadog, Inc.

package writer

import (
	"github.com/DataDog/trace-storage/pkg/trace/log"
	"github.com/DataDog/trace-storage/pkg/trace/model"
	"github.com/DataDog/trace-storage/pkg/trace/storage"
)

var _ storage.Sender = (*LogSender)(nil)

// LogSender writes a debug line for every span and chunk.
type LogSender struct {
	logger log.Logger
}

// NewLogSender returns a LogSender writing to logger.
func NewLogSender(logger log.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// SendSpan implements storage.Sender.
func (l *LogSender) SendSpan(span *model.Span) {
	l.logger.Debugf("span: %s", span)
}

// SendChunk implements storage.Sender.
func (l *LogSender) SendChunk(chunk *model.SpanChunk) {
	l.logger.Debugf("chunk: t_id:%d s_id:%d agent:%s events:%d", chunk.TraceID, chunk.SpanID, chunk.AgentID, chunk.Len())
}
