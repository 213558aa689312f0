// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026-present Datadog, Inc.

// Package log provides the logger injected into the trace storage components.
package log

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cihub/seelog"
)

const logFormat = "%Date(2006-01-02 15:04:05 MST) | TRACE-STORAGE | %LEVEL | %Msg%n"

// Logger is the logging capability the storage components depend on. It is
// satisfied by seelog.LoggerInterface.
type Logger interface {
	Debugf(format string, params ...interface{})
	Infof(format string, params ...interface{})
	Warnf(format string, params ...interface{}) error
	Errorf(format string, params ...interface{}) error
}

var _ Logger = (seelog.LoggerInterface)(nil)

// New returns a seelog backed Logger writing lines at or above level to w.
func New(level string, w io.Writer) (seelog.LoggerInterface, error) {
	lvl, ok := seelog.LogLevelFromString(strings.ToLower(level))
	if !ok {
		return nil, fmt.Errorf("unknown log level: %q", level)
	}
	l, err := seelog.LoggerFromWriterWithMinLevelAndFormat(w, lvl, logFormat)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// NoopLogger discards everything.
type NoopLogger struct{}

var errDiscarded = errors.New("log line discarded")

// Debugf implements Logger.
func (NoopLogger) Debugf(string, ...interface{}) {}

// Infof implements Logger.
func (NoopLogger) Infof(string, ...interface{}) {}

// Warnf implements Logger.
func (NoopLogger) Warnf(format string, params ...interface{}) error { return errDiscarded }

// Errorf implements Logger.
func (NoopLogger) Errorf(format string, params ...interface{}) error { return errDiscarded }
