package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// EnvPrefix is the prefix of environment variables read by Load,
// e.g. CHESSREPLAY_REPLAY_WORKERS.
const EnvPrefix = "CHESSREPLAY"

// Load builds a Config from defaults, an optional config file and the
// environment, in increasing priority. An empty path skips the file. The file
// format follows its extension (yaml, toml, json).
func Load(path string) (*Config, error) {
	cfg := NewConfig()

	v := viper.New()
	setDefaults(v, cfg)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", path)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "decoding config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers every key so that environment variables are seen by
// Unmarshal even when no file mentions them.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("verbosity", cfg.Verbosity)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.development", cfg.Log.Development)
	v.SetDefault("log.path", cfg.Log.Path)
	v.SetDefault("replay.workers", cfg.Replay.Workers)
	v.SetDefault("replay.buffer_size", cfg.Replay.BufferSize)
	v.SetDefault("replay.strict", cfg.Replay.Strict)
	v.SetDefault("replay.fail_fast", cfg.Replay.FailFast)
	v.SetDefault("output.history_limit", cfg.Output.HistoryLimit)
	v.SetDefault("output.show_game_id", cfg.Output.ShowGameID)
	v.SetDefault("output.format", string(cfg.Output.Format))
}
