// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026-present Datadog, Inc.

package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// yamlConfig mirrors the configuration file. Pointers tell unset keys apart
// from zero values.
type yamlConfig struct {
	LogLevel      *string `yaml:"log_level"`
	LogThrottling *bool   `yaml:"log_throttling"`

	APM struct {
		AgentID         *string `yaml:"agent_id"`
		ApplicationName *string `yaml:"application_name"`

		Storage struct {
			Capacity                *int  `yaml:"capacity"`
			Headroom                *int  `yaml:"headroom"`
			DiscardOnFastCompletion *bool `yaml:"discard_on_fast_completion"`
			ElapsedThresholdMs      *int  `yaml:"elapsed_threshold_ms"`
		} `yaml:"storage"`

		Writer struct {
			QueueSize *int `yaml:"queue_size"`
		} `yaml:"writer"`

		StatsIntervalSeconds *int `yaml:"stats_interval_seconds"`
	} `yaml:"apm_config"`

	Dogstatsd struct {
		Host *string `yaml:"host"`
		Port *int    `yaml:"port"`
	} `yaml:"dogstatsd"`
}

func (c *AgentConfig) loadYAML(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}
	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return errors.Wrapf(err, "parsing %s", path)
	}
	c.applyYAML(&y)
	return nil
}

func (c *AgentConfig) applyYAML(y *yamlConfig) {
	setString(&c.LogLevel, y.LogLevel)
	setBool(&c.LogThrottling, y.LogThrottling)
	setString(&c.AgentID, y.APM.AgentID)
	setString(&c.ApplicationName, y.APM.ApplicationName)
	setInt(&c.Storage.Capacity, y.APM.Storage.Capacity)
	setInt(&c.Storage.Headroom, y.APM.Storage.Headroom)
	setBool(&c.Storage.DiscardOnFastCompletion, y.APM.Storage.DiscardOnFastCompletion)
	if ms := y.APM.Storage.ElapsedThresholdMs; ms != nil {
		c.Storage.ElapsedThreshold = time.Duration(*ms) * time.Millisecond
	}
	setInt(&c.WriterQueueSize, y.APM.Writer.QueueSize)
	if s := y.APM.StatsIntervalSeconds; s != nil {
		c.StatsInterval = time.Duration(*s) * time.Second
	}
	setString(&c.StatsdHost, y.Dogstatsd.Host)
	setInt(&c.StatsdPort, y.Dogstatsd.Port)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
