// Package logging builds the zap loggers used by the lvcolor command.
//
// Library packages never construct loggers; they accept a *zap.Logger option
// and default to zap.NewNop().
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a development logger (console, debug level) when verbose is
// set and a production logger (JSON, info level) otherwise. Both write to
// stderr so command output on stdout stays parseable.
func New(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger { return zap.NewNop() }
