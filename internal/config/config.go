// Package config provides configuration for chess-replay.
package config

import (
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// 0=failed scripts only, 1=every script, 2=also log every activation
	// (forces the debug log level)
	Verbosity int `mapstructure:"verbosity"`

	Log    LogConfig    `mapstructure:"log"`
	Replay ReplayConfig `mapstructure:"replay"`
	Output OutputConfig `mapstructure:"output"`

	// Output streams
	OutputFile io.Writer `mapstructure:"-"`
	LogFile    io.Writer `mapstructure:"-"`
}

// ReplayConfig holds settings for driving games from activation scripts.
type ReplayConfig struct {
	// Workers is the number of scripts replayed in parallel.
	Workers int `mapstructure:"workers"`

	// BufferSize is the queue length between the reader and the workers.
	BufferSize int `mapstructure:"buffer_size"`

	// Strict makes a rejected or deselecting activation fail the script.
	Strict bool `mapstructure:"strict"`

	// FailFast abandons the remaining scripts once one has failed.
	FailFast bool `mapstructure:"fail_fast"`
}

// OutputConfig holds settings for the replay report.
type OutputConfig struct {
	// HistoryLimit is how many of the latest move records are printed (0 = all).
	HistoryLimit int `mapstructure:"history_limit"`

	// ShowGameID prints the controller id next to each script name.
	ShowGameID bool `mapstructure:"show_game_id"`

	Format OutputFormat `mapstructure:"format"`
}

// OutputFormat selects how the replay report is written.
type OutputFormat string

// Report formats.
const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// DefaultHistoryLimit matches the length of the on-screen move log.
const DefaultHistoryLimit = 20

// NewReplayConfig creates a ReplayConfig with default values.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{
		Workers:    1,
		BufferSize: 10,
	}
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		HistoryLimit: DefaultHistoryLimit,
		Format:       FormatText,
	}
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Log:        *NewLogConfig(),
		Replay:     *NewReplayConfig(),
		Output:     *NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks the configuration for consistency.
// Every failure wraps errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d out of range 0-2", c.Verbosity)
	}
	if c.Replay.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers must be at least 1, got %d", c.Replay.Workers)
	}
	if c.Replay.BufferSize < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "buffer size must be at least 1, got %d", c.Replay.BufferSize)
	}
	if c.Output.HistoryLimit < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "history limit cannot be negative, got %d", c.Output.HistoryLimit)
	}
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown output format %q", c.Output.Format)
	}
	if _, err := c.Log.ZapLevel(); err != nil {
		return err
	}
	return nil
}
