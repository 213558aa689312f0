// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026-present Datadog, Inc.

package config

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Environment variables overriding the configuration file.
const (
	EnvLogLevel         = "DD_LOG_LEVEL"
	EnvAgentID          = "DD_APM_AGENT_ID"
	EnvApplicationName  = "DD_APM_APPLICATION_NAME"
	EnvCapacity         = "DD_APM_STORAGE_CAPACITY"
	EnvHeadroom         = "DD_APM_STORAGE_HEADROOM"
	EnvDiscard          = "DD_APM_STORAGE_DISCARD"
	EnvElapsedThreshold = "DD_APM_STORAGE_ELAPSED_THRESHOLD_MS"
	EnvWriterQueueSize  = "DD_APM_WRITER_QUEUE_SIZE"
	EnvStatsdHost       = "DD_DOGSTATSD_HOST"
	EnvStatsdPort       = "DD_DOGSTATSD_PORT"
)

type lookupFunc func(key string) (string, bool)

func (c *AgentConfig) applyEnv(lookup lookupFunc) error {
	if v, ok := lookup(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvAgentID); ok {
		c.AgentID = v
	}
	if v, ok := lookup(EnvApplicationName); ok {
		c.ApplicationName = v
	}
	if v, ok := lookup(EnvStatsdHost); ok {
		c.StatsdHost = v
	}
	for _, e := range []struct {
		key string
		dst *int
	}{
		{EnvCapacity, &c.Storage.Capacity},
		{EnvHeadroom, &c.Storage.Headroom},
		{EnvWriterQueueSize, &c.WriterQueueSize},
		{EnvStatsdPort, &c.StatsdPort},
	} {
		v, ok := lookup(e.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "invalid value for %s", e.key)
		}
		*e.dst = n
	}
	if v, ok := lookup(EnvDiscard); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "invalid value for %s", EnvDiscard)
		}
		c.Storage.DiscardOnFastCompletion = b
	}
	if v, ok := lookup(EnvElapsedThreshold); ok {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "invalid value for %s", EnvElapsedThreshold)
		}
		c.Storage.ElapsedThreshold = time.Duration(ms) * time.Millisecond
	}
	return nil
}
