// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026-present Datadog, Inc.

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	tracecfg "github.com/DataDog/trace-storage/pkg/trace/config"
	"github.com/DataDog/trace-storage/pkg/trace/log"
)

func TestConfigComponent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace-storage.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\nlog_throttling: false\napm_config:\n  storage:\n    capacity: 7\n"), 0o600))

	var (
		out    bytes.Buffer
		cfg    *tracecfg.AgentConfig
		logger log.Logger
	)
	app := fxtest.New(t,
		fx.NopLogger,
		fx.Supply(Params{ConfFilePath: path}),
		fx.Supply(&LogOutput{Writer: &out}),
		Module(),
		fx.Populate(&cfg, &logger),
	)
	app.RequireStart()

	assert.Equal(t, 7, cfg.Storage.Capacity)
	logger.Infof("hidden")
	_ = logger.Warnf("shown")
	app.RequireStop()

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "| WARN | shown")
}

func TestConfigComponentThrottled(t *testing.T) {
	var logger log.Logger
	app := fxtest.New(t,
		fx.NopLogger,
		fx.Supply(Params{ConfFilePath: filepath.Join(t.TempDir(), "absent.yaml")}),
		fx.Supply(&LogOutput{Writer: &bytes.Buffer{}}),
		Module(),
		fx.Populate(&logger),
	)
	app.RequireStart()
	defer app.RequireStop()

	_, ok := logger.(*log.ThrottledLogger)
	assert.True(t, ok)
}
