// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026-present Datadog, Inc.

// Package main implements trace-storage-sim, which drives the span event
// storage with simulated traces.
package main

import (
	"os"

	"github.com/DataDog/trace-storage/cmd/trace-storage-sim/command"
)

func main() {
	if err := command.RootCommand().Execute(); err != nil {
		os.Exit(-1)
	}
}
