// Package logger bootstraps the zap logger used by keyhaven binaries. The
// SDK itself takes an injected *zap.Logger and defaults to a no-op; this
// package exists for the CLI and for applications that want a ready-made
// configuration.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// Init initializes the global logger. verbose switches to the development
// config with colored levels and debug output.
func Init(verbose bool) {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}

	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	built, err := cfg.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	log = built
}

// L returns the global logger, initializing a quiet default if needed.
func L() *zap.Logger {
	if log == nil {
		Init(false)
	}
	return log
}

// Sync flushes any buffered logs (defer this in main()).
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
