// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026-present Datadog, Inc.

package storage

// Factory hands out one TimeBase storage per span. All storages share the
// sender, the chunk factory and the options given to NewFactory.
type Factory struct {
	sender  Sender
	factory ChunkFactory
	opts    options
}

// NewFactory returns a Factory. It fails for the same reasons NewTimeBase does.
func NewFactory(sender Sender, factory ChunkFactory, opts ...Option) (*Factory, error) {
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
	return &Factory{sender: sender, factory: factory, opts: o}, nil
}

// NewStorage returns a new storage for one span.
func (f *Factory) NewStorage() Storage {
	return newTimeBase(f.sender, f.factory, f.opts)
}

// Policy returns the completion policy of the storages built by f.
func (f *Factory) Policy() CompletionPolicy {
	return f.opts.policy
}
