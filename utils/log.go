// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"fmt"
	"strings"

	"github.com/ava-labs/libevm/log"
	"golang.org/x/exp/slog"
)

// LvlFromString returns the appropriate slog.Level from a string name.
// Useful for parsing command line args and configuration files.
func LvlFromString(lvlString string) (slog.Level, error) {
	switch strings.ToLower(lvlString) {
	case "trace", "trce":
		return log.LevelTrace, nil
	case "debug", "dbug":
		return log.LevelDebug, nil
	case "info":
		return log.LevelInfo, nil
	case "warn":
		return log.LevelWarn, nil
	case "error", "eror":
		return log.LevelError, nil
	case "crit":
		return log.LevelCrit, nil
	default:
		return log.LevelDebug, fmt.Errorf("unknown level: %v", lvlString)
	}
}
