// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026-present Datadog, Inc.

package log

import (
	"errors"
	"time"

	"go.uber.org/atomic"
	"golang.org/x/time/rate"
)

var errThrottled = errors.New("log line throttled")

// ThrottledLogger limits the rate of warning and error lines forwarded to
// the wrapped Logger. Debug and info lines are never throttled.
type ThrottledLogger struct {
	Logger
	limiter    *rate.Limiter
	suppressed *atomic.Int64
}

// NewThrottled returns a ThrottledLogger letting at most n warning or error
// lines through per interval.
func NewThrottled(l Logger, n int, interval time.Duration) *ThrottledLogger {
	if n <= 0 {
		n = 1
	}
	return &ThrottledLogger{
		Logger:     l,
		limiter:    rate.NewLimiter(rate.Every(interval/time.Duration(n)), n),
		suppressed: atomic.NewInt64(0),
	}
}

// Warnf implements Logger.
func (t *ThrottledLogger) Warnf(format string, params ...interface{}) error {
	if !t.limiter.Allow() {
		t.suppressed.Inc()
		return errThrottled
	}
	return t.Logger.Warnf(format, params...)
}

// Errorf implements Logger.
func (t *ThrottledLogger) Errorf(format string, params ...interface{}) error {
	if !t.limiter.Allow() {
		t.suppressed.Inc()
		return errThrottled
	}
	return t.Logger.Errorf(format, params...)
}

// Suppressed returns the number of lines dropped so far.
func (t *ThrottledLogger) Suppressed() int64 {
	return t.suppressed.Load()
}
