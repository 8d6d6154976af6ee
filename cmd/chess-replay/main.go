// chess-replay plays activation scripts against the chess rules engine and
// reports the move log and final status of every game.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/lgbarn/chessrules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-replay version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg, setFlags(flag.CommandLine))
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	setupOutputFile(cfg)

	logger, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}

	code := run(cfg, logger, flag.Args())
	logger.Sync() //nolint:errcheck,gosec // stderr sync fails on some platforms
	os.Exit(code)
}

// run replays every script named in args, or stdin when there are none,
// and returns the process exit code.
func run(cfg *config.Config, logger *zap.Logger, args []string) int {
	scripts, err := loadScripts(args, os.Stdin)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 2
	}

	failed, err := replayScripts(scripts, cfg, logger)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error writing report: %v\n", err)
		return 2
	}

	logger.Info("replay finished", zap.Int("scripts", len(scripts)), zap.Int("failed", failed))
	if failed > 0 {
		return 1
	}
	return 0
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-replay [options] [script-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays board activations against the chess rules and reports each game.\n")
	fmt.Fprintf(os.Stderr, "Scripts hold whitespace separated squares (e2 e4, e2e4 or e2-e4); # starts a comment.\n")
	fmt.Fprintf(os.Stderr, "Standard input is read when no files are given.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
	fmt.Fprintf(os.Stderr, "  %s_<SECTION>_<KEY> overrides the config file, e.g. %s_REPLAY_WORKERS=4\n",
		config.EnvPrefix, config.EnvPrefix)
}
