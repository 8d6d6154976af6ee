package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// FromConfig starts a builder from an existing configuration, e.g. one
// returned by Load, so that command line flags can override it.
func FromConfig(cfg *Config) *ConfigBuilder {
	return &ConfigBuilder{cfg: cfg}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithWorkers sets the number of parallel replays.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Replay.Workers = n
	return b
}

// WithBufferSize sets the replay queue length.
func (b *ConfigBuilder) WithBufferSize(n int) *ConfigBuilder {
	b.cfg.Replay.BufferSize = n
	return b
}

// WithStrict makes rejected activations fail a script.
func (b *ConfigBuilder) WithStrict(strict bool) *ConfigBuilder {
	b.cfg.Replay.Strict = strict
	return b
}

// WithFailFast stops the run at the first failed script.
func (b *ConfigBuilder) WithFailFast(failFast bool) *ConfigBuilder {
	b.cfg.Replay.FailFast = failFast
	return b
}

// WithHistoryLimit sets how many move records are printed per script.
func (b *ConfigBuilder) WithHistoryLimit(n int) *ConfigBuilder {
	b.cfg.Output.HistoryLimit = n
	return b
}

// WithGameIDs prints controller ids in the report.
func (b *ConfigBuilder) WithGameIDs(show bool) *ConfigBuilder {
	b.cfg.Output.ShowGameID = show
	return b
}

// WithFormat sets the report format.
func (b *ConfigBuilder) WithFormat(f OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = f
	return b
}

// WithLogLevel sets the log level (debug, info, warn, error).
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithDevelopmentLogging switches to the console log encoder.
func (b *ConfigBuilder) WithDevelopmentLogging(dev bool) *ConfigBuilder {
	b.cfg.Log.Development = dev
	return b
}

// WithLogPath sends the log to a file.
func (b *ConfigBuilder) WithLogPath(path string) *ConfigBuilder {
	b.cfg.Log.Path = path
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the writer for diagnostics that bypass the logger.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
