// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package logger

import (
	"go.uber.org/zap"
)

// New builds a zap logger for the given environment.
// "production" gets JSON output at info level, anything else the development console encoder.
func New(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}

	return zap.NewDevelopment()
}

// Install builds a logger and makes it the process-wide zap logger.
// The returned func flushes buffered entries and restores the previous globals.
func Install(env string) (func(), error) {
	l, err := New(env)
	if err != nil {
		return nil, err
	}

	restore := zap.ReplaceGlobals(l)
	return func() {
		_ = l.Sync()
		restore()
	}, nil
}
