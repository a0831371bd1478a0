// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package evm

import (
	"context"
	"io"

	"github.com/ava-labs/libevm/log"
	"golang.org/x/exp/slog"

	"github.com/traverse-labs/traverse/utils"
)

type TraverseLogger struct {
	log.Logger

	logLevel *slog.LevelVar
}

// InitLogger initializes logger with alias and sets the log level and format
// of the handler writing to [writer].
func InitLogger(alias string, level string, jsonFormat bool, writer io.Writer) (TraverseLogger, error) {
	logLevel := &slog.LevelVar{}

	var handler slog.Handler
	if jsonFormat {
		handler = &withLevel{
			Handler: log.JSONHandler(writer),
			level:   logLevel,
		}
	} else {
		useColor := false
		handler = &withLevel{
			Handler: log.NewTerminalHandler(writer, useColor),
			level:   logLevel,
		}
	}

	c := TraverseLogger{
		Logger:   log.NewLogger(handler).With("chain", alias),
		logLevel: logLevel,
	}

	if err := c.SetLogLevel(level); err != nil {
		return TraverseLogger{}, err
	}
	return c, nil
}

// SetLogLevel sets the log level of initialized log handler.
func (c *TraverseLogger) SetLogLevel(level string) error {
	logLevel, err := utils.LvlFromString(level)
	if err != nil {
		return err
	}
	c.logLevel.Set(logLevel)
	return nil
}

type withLevel struct {
	slog.Handler
	level slog.Leveler
}

func (h *withLevel) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *withLevel) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &withLevel{Handler: h.Handler.WithAttrs(attrs), level: h.level}
}

func (h *withLevel) WithGroup(name string) slog.Handler {
	return &withLevel{Handler: h.Handler.WithGroup(name), level: h.level}
}
