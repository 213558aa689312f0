// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026-present Datadog, Inc.

package testutil

import (
	"fmt"
	"sync"
)

// LogLine is a line recorded by a RecordingLogger.
type LogLine struct {
	Level   string
	Message string
}

// RecordingLogger keeps every line it is given. It is safe for concurrent use.
type RecordingLogger struct {
	mu    sync.Mutex
	lines []LogLine
}

func (r *RecordingLogger) add(level, format string, params ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, LogLine{Level: level, Message: fmt.Sprintf(format, params...)})
}

// Debugf records a debug line.
func (r *RecordingLogger) Debugf(format string, params ...interface{}) {
	r.add("debug", format, params...)
}

// Infof records an info line.
func (r *RecordingLogger) Infof(format string, params ...interface{}) {
	r.add("info", format, params...)
}

// Warnf records a warning line.
func (r *RecordingLogger) Warnf(format string, params ...interface{}) error {
	r.add("warn", format, params...)
	return nil
}

// Errorf records an error line.
func (r *RecordingLogger) Errorf(format string, params ...interface{}) error {
	r.add("error", format, params...)
	return nil
}

// Lines returns the lines recorded at level, or all of them if level is empty.
func (r *RecordingLogger) Lines(level string) []LogLine {
	r.mu.Lock()
	defer r.mu.Unlock()
	var lines []LogLine
	for _, l := range r.lines {
		if level == "" || l.Level == level {
			lines = append(lines, l)
		}
	}
	return lines
}
