// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Configuration file, overridden by the flags below
	configFile = flag.String("config", "", "Config file (yaml, toml or json)")

	// Replay options
	workers    = flag.Int("workers", 1, "Number of scripts replayed in parallel")
	bufferSize = flag.Int("buffer", 10, "Queue length between the reader and the workers")
	strict     = flag.Bool("strict", false, "Fail a script at its first rejected activation")
	failFast   = flag.Bool("fail-fast", false, "Stop replaying scripts after the first failure")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	historyLimit = flag.Int("history", config.DefaultHistoryLimit, "Move records printed per script (0 = all)")
	showIDs      = flag.Bool("ids", false, "Print the game id of every script")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")

	// Logging
	logLevel = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	logFile  = flag.String("l", "", "Write the log to this file instead of stderr")
	devLog   = flag.Bool("dev", false, "Human readable log output")

	// Verbosity
	quiet   = flag.Bool("s", false, "Silent mode: only report failed scripts")
	verbose = flag.Bool("v", false, "Log every activation")

	// Info
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags overrides cfg with the flags named in set, so that flags left
// at their defaults do not replace values from the config file.
func applyFlags(cfg *config.Config, set map[string]bool) {
	b := config.FromConfig(cfg)

	if set["workers"] {
		b.WithWorkers(*workers)
	}
	if set["buffer"] {
		b.WithBufferSize(*bufferSize)
	}
	if set["strict"] {
		b.WithStrict(*strict)
	}
	if set["fail-fast"] {
		b.WithFailFast(*failFast)
	}
	if set["history"] {
		b.WithHistoryLimit(*historyLimit)
	}
	if set["ids"] {
		b.WithGameIDs(*showIDs)
	}
	if set["J"] && *jsonOutput {
		b.WithFormat(config.FormatJSON)
	}
	if set["log-level"] {
		b.WithLogLevel(*logLevel)
	}
	if set["l"] {
		b.WithLogPath(*logFile)
	}
	if set["dev"] {
		b.WithDevelopmentLogging(*devLog)
	}

	switch {
	case *quiet:
		b.WithVerbosity(0)
	case *verbose:
		b.WithVerbosity(2)
	}
}

// setFlags returns the names of the flags given on the command line.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}
