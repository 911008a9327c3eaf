package config

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a configured zap logger from the logging settings.
// Level is one of debug, info, warn, error (default info); format is json
// or console (default json). verbose forces debug level.
func NewLogger(lc LoggingConfig, verbose bool) (*zap.Logger, error) {
	level := lc.Level
	if level == "" {
		level = "info"
	}
	if verbose {
		level = "debug"
	}

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var cfg zap.Config
	switch lc.Format {
	case LogConsole:
		cfg = zap.NewDevelopmentConfig()
	case LogJSON, "":
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format %q: must be \"json\" or \"console\"", lc.Format)
	}

	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	return cfg.Build()
}
