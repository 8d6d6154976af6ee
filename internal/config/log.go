package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`

	// Development switches to the human-readable console encoder.
	Development bool `mapstructure:"development"`

	// Path receives the log instead of stderr when set.
	Path string `mapstructure:"path"`
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{Level: "info"}
}

// ZapLevel parses Level.
func (c LogConfig) ZapLevel() (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return lvl, errors.Wrapf(errors.ErrInvalidConfig, "log level %q", c.Level)
	}
	return lvl, nil
}

// NewLogger builds the logger for the whole configuration. Verbosity 2
// lowers the level to debug so that every activation is logged.
func (c *Config) NewLogger() (*zap.Logger, error) {
	lc := c.Log
	if c.Verbosity >= 2 {
		lc.Level = zapcore.DebugLevel.String()
	}
	return lc.NewLogger()
}

// NewLogger builds the logger described by the configuration.
func (c LogConfig) NewLogger() (*zap.Logger, error) {
	lvl, err := c.ZapLevel()
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	if c.Path != "" {
		zc.OutputPaths = []string{c.Path}
	}
	return zc.Build()
}
