// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026-present Datadog, Inc.

// Package config holds the configuration of the span event storage and of
// the components around it.
package config

import (
	"net"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

const (
	// DefaultCapacity is the number of span events held before a chunk is
	// flushed, once the span outlived the elapsed threshold.
	DefaultCapacity = 20
	// DefaultHeadroom is the extra room allocated on top of the capacity for
	// each buffer.
	DefaultHeadroom = 2
	// DefaultElapsedThreshold is the time after which a span is considered slow.
	DefaultElapsedThreshold = 1000 * time.Millisecond
	// DefaultWriterQueueSize is the number of payloads the queued writer holds.
	DefaultWriterQueueSize = 256

	// DefaultConfigPath is the default location of the configuration file.
	DefaultConfigPath = "/opt/datadog-agent/etc/trace-storage.yaml"
)

var (
	// ErrInvalidCapacity is returned when the storage capacity is not positive.
	ErrInvalidCapacity = errors.New("storage capacity must be greater than 0")
	// ErrInvalidHeadroom is returned when the storage headroom is negative.
	ErrInvalidHeadroom = errors.New("storage headroom must not be negative")
	// ErrInvalidElapsedThreshold is returned when the elapsed threshold is negative.
	ErrInvalidElapsedThreshold = errors.New("storage elapsed threshold must not be negative")
)

// StorageConfig configures one span event storage. It is fixed for the
// lifetime of a storage.
type StorageConfig struct {
	// Capacity is the number of buffered span events that forces a chunk
	// flush once the span is slow.
	Capacity int
	// Headroom is extra slack allocated with every buffer.
	Headroom int
	// DiscardOnFastCompletion drops the buffered span events of spans
	// completing within ElapsedThreshold.
	DiscardOnFastCompletion bool
	// ElapsedThreshold is the span age past which it is considered slow.
	ElapsedThreshold time.Duration
}

// NewStorageConfig returns a StorageConfig with the default values.
func NewStorageConfig() StorageConfig {
	return StorageConfig{
		Capacity:                DefaultCapacity,
		Headroom:                DefaultHeadroom,
		DiscardOnFastCompletion: true,
		ElapsedThreshold:        DefaultElapsedThreshold,
	}
}

// Validate reports whether c can be used to build a storage.
func (c StorageConfig) Validate() error {
	switch {
	case c.Capacity <= 0:
		return ErrInvalidCapacity
	case c.Headroom < 0:
		return ErrInvalidHeadroom
	case c.ElapsedThreshold < 0:
		return ErrInvalidElapsedThreshold
	}
	return nil
}

// AgentConfig handles the interpretation of the configuration (with default
// behaviors) in one place. Use New() to create an instance.
type AgentConfig struct {
	ConfigPath string // the source of this config, if any

	// Identity stamped on every flushed chunk.
	AgentID         string
	ApplicationName string

	Storage StorageConfig

	// Writer
	WriterQueueSize int

	// logging
	LogLevel      string
	LogThrottling bool

	// internal telemetry
	StatsdHost    string
	StatsdPort    int
	StatsInterval time.Duration
}

// New returns a configuration with the default values.
func New() *AgentConfig {
	return &AgentConfig{
		AgentID:         "trace-storage",
		ApplicationName: "unknown",
		Storage:         NewStorageConfig(),
		WriterQueueSize: DefaultWriterQueueSize,
		LogLevel:        "info",
		LogThrottling:   true,
		StatsdHost:      "localhost",
		StatsdPort:      8125,
		StatsInterval:   10 * time.Second,
	}
}

// StatsdAddr returns the address of the statsd server.
func (c *AgentConfig) StatsdAddr() string {
	return net.JoinHostPort(c.StatsdHost, strconv.Itoa(c.StatsdPort))
}

// Validate validates if the current configuration is good for the storage to start with.
func (c *AgentConfig) Validate() error {
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	if c.WriterQueueSize <= 0 {
		return errors.New("writer queue size must be greater than 0")
	}
	if c.AgentID == "" {
		return errors.New("agent id must not be empty")
	}
	return nil
}

// Load returns a new configuration based on the given path. The path must not necessarily exist
// and a valid configuration can be returned based on defaults and environment variables. If a
// valid configuration can not be obtained, an error is returned.
func Load(path string) (*AgentConfig, error) {
	cfg := New()
	if path != "" {
		if err := cfg.loadYAML(path); err != nil {
			if !os.IsNotExist(errors.Cause(err)) {
				return nil, err
			}
		} else {
			cfg.ConfigPath = path
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}
