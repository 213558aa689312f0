// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026-present Datadog, Inc.

// Package trace implements the "trace" bundle, providing components for the
// span event storage.
//
// This bundle does not depend on any other bundles.
package trace

import (
	"go.uber.org/fx"

	"github.com/DataDog/trace-storage/comp/trace/config"
	"github.com/DataDog/trace-storage/comp/trace/storage"
)

// team: agent-apm

// Bundle defines the fx options for this bundle.
func Bundle() fx.Option {
	return fx.Options(
		config.Module(),
		storage.Module(),
	)
}
