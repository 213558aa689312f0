// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026-present Datadog, Inc.

package storage

import (
	"github.com/benbjohnson/clock"

	"github.com/DataDog/trace-storage/pkg/trace/config"
	"github.com/DataDog/trace-storage/pkg/trace/info"
	"github.com/DataDog/trace-storage/pkg/trace/log"
)

// Option configures a TimeBase storage or a Factory.
type Option func(*options)

type options struct {
	cfg    config.StorageConfig
	policy CompletionPolicy
	clock  clock.Clock
	logger log.Logger
	stats  *info.StorageStats
}

func newOptions(opts []Option) (options, error) {
	o := options{cfg: config.NewStorageConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.cfg.Validate(); err != nil {
		return o, err
	}
	if o.policy == nil {
		o.policy = PolicyFor(o.cfg.DiscardOnFastCompletion)
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.logger == nil {
		o.logger = log.NoopLogger{}
	}
	if o.stats == nil {
		o.stats = info.NewStorageStats()
	}
	return o, nil
}

// WithConfig sets the storage configuration. Unless WithPolicy is given, the
// completion policy follows cfg.DiscardOnFastCompletion.
func WithConfig(cfg config.StorageConfig) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithPolicy overrides the completion policy.
func WithPolicy(p CompletionPolicy) Option {
	return func(o *options) { o.policy = p }
}

// WithClock sets the clock used for elapsed time checks.
func WithClock(c clock.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithLogger sets the logger reporting anomalies.
func WithLogger(l log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithStats sets the stats updated by the storage.
func WithStats(s *info.StorageStats) Option {
	return func(o *options) { o.stats = s }
}
