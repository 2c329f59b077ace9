// Package logging builds the zap logger the when binary logs with.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/amonks/when/internal/config"
)

// New returns a logger for cfg. With a file set, JSON lines are appended to
// it; otherwise human-readable lines go to stderr.
func New(cfg config.Log) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.File != "" {
		zapConfig = zap.NewProductionConfig()
		zapConfig.OutputPaths = []string{cfg.File}
		zapConfig.Sampling = nil
	} else {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.OutputPaths = []string{"stderr"}
		zapConfig.DisableStacktrace = true
		zapConfig.DisableCaller = true
		zapConfig.EncoderConfig.TimeKey = ""
	}
	zapConfig.ErrorOutputPaths = []string{"stderr"}
	zapConfig.Level = zap.NewAtomicLevelAt(Level(cfg.Level))

	return zapConfig.Build()
}

// Level maps a config level name to a zap level. Unknown names are warn.
func Level(name string) zapcore.Level {
	switch name {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.WarnLevel
	}
}
