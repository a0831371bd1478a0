// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cast"

	"github.com/traverse-labs/traverse/utils"
)

const (
	defaultLogLevel           = "info"
	defaultLogJSONFormat      = false
	defaultMetricsEnabled     = true
	defaultWallTimeEnabled    = true
	defaultWallTimeStaleAfter = 0
)

// Config is the node configuration of the extension layer, passed to
// [evm.VM.Initialize] as JSON.
type Config struct {
	// Log
	LogLevel      string `json:"log-level"`
	LogJSONFormat bool   `json:"log-json-format"`

	// Metrics
	MetricsEnabled bool `json:"metrics-enabled"`

	// Wall time tracking
	WallTimeEnabled    bool     `json:"wall-time-enabled"`
	WallTimeStaleAfter Duration `json:"wall-time-stale-after"`
}

// Duration accepts either a duration string ("1m30s") or a number of
// nanoseconds.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(data []byte) (err error) {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	d.Duration, err = cast.ToDurationE(v)
	return err
}

// String implements the stringer interface.
func (d Duration) String() string {
	return d.Duration.String()
}

// MarshalJSON returns the JSON encoding of the duration string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Duration.String())
}

// SetDefaults applies the default values to the config.
func (c *Config) SetDefaults() {
	c.LogLevel = defaultLogLevel
	c.LogJSONFormat = defaultLogJSONFormat
	c.MetricsEnabled = defaultMetricsEnabled
	c.WallTimeEnabled = defaultWallTimeEnabled
	c.WallTimeStaleAfter.Duration = defaultWallTimeStaleAfter
}

// Validate returns an error if the config cannot be used to start the node.
func (c *Config) Validate() error {
	if _, err := utils.LvlFromString(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log-level: %w", err)
	}
	if c.WallTimeStaleAfter.Duration < 0 {
		return fmt.Errorf("wall-time-stale-after is %s but must be non-negative", c.WallTimeStaleAfter)
	}
	return nil
}

// GetConfig returns the defaults overridden by [configBytes]. Empty input
// yields the defaults.
func GetConfig(configBytes []byte) (Config, error) {
	var c Config
	c.SetDefaults()
	if len(configBytes) > 0 {
		if err := json.Unmarshal(configBytes, &c); err != nil {
			return Config{}, fmt.Errorf("failed to unmarshal config %s: %w", string(configBytes), err)
		}
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
