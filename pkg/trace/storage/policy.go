// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026-present Datadog, Inc.

package storage

// CompletionPolicy decides, when a span completes, whether its buffered span
// events are delivered with it. It trades completeness for volume.
type CompletionPolicy interface {
	// KeepEvents reports whether the buffered events must be attached to the
	// span. exceeded reports whether the span outlived the elapsed threshold.
	KeepEvents(exceeded bool) bool
	// String returns the policy name.
	String() string
}

var (
	// DiscardFast drops the buffered events of spans completing within the
	// elapsed threshold.
	DiscardFast CompletionPolicy = discardFast{}
	// KeepAll always delivers the buffered events.
	KeepAll CompletionPolicy = keepAll{}
)

// PolicyFor returns DiscardFast when discard is set and KeepAll otherwise.
func PolicyFor(discard bool) CompletionPolicy {
	if discard {
		return DiscardFast
	}
	return KeepAll
}

type discardFast struct{}

func (discardFast) KeepEvents(exceeded bool) bool { return exceeded }
func (discardFast) String() string { return "discard_fast" }

type keepAll struct{}

func (keepAll) KeepEvents(bool) bool { return true }
func (keepAll) String() string { return "keep_all" }
