// SPDX-License-Identifier: MIT

// Package logging builds the zap logger shared by the stochrank command.
package logging

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrUnknownFormat is returned for a format other than "console" or "json".
var ErrUnknownFormat = errors.New("logging: unknown format")

// New returns a logger writing to stderr at the given level.
//
// "json" uses the production encoder; "console" uses the development encoder
// with coloured level names. Stdout stays free for command output.
func New(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	var cfg zap.Config
	switch format {
	case "json":
		cfg = zap.NewProductionConfig()
	case "console", "":
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build(zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}

// Must is New that panics on error.
func Must(level, format string) *zap.Logger {
	l, err := New(level, format)
	if err != nil {
		panic(err)
	}

	return l
}
