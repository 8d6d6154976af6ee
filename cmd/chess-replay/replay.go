package main

import (
	"io"

	"go.uber.org/zap"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/script"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// loadScripts parses every named file, or stdin when names is empty.
func loadScripts(names []string, stdin io.Reader) ([]*script.Script, error) {
	if len(names) == 0 {
		s, err := script.Parse(stdin, "stdin")
		if err != nil {
			return nil, err
		}
		return []*script.Script{s}, nil
	}

	scripts := make([]*script.Script, 0, len(names))
	for _, name := range names {
		s, err := script.ParseFile(name)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, s)
	}
	return scripts, nil
}

// replayScripts plays the scripts on a worker pool and writes one report
// entry per script, in input order. It returns the number of scripts that
// ended with an error.
//
// Workers finish out of order; results are collected by the single consumer
// below and written once all of them are in. With fail-fast set, the first
// failed script stops the pool and scripts not yet replayed are left out of
// the report.
func replayScripts(scripts []*script.Script, cfg *config.Config, logger *zap.Logger) (int, error) {
	pool := worker.NewPool(
		worker.NewReplayFunc(worker.ReplayOptions{
			Logger:       logger,
			Strict:       cfg.Replay.Strict,
			HistoryLimit: cfg.Output.HistoryLimit,
		}),
		worker.WithWorkers(cfg.Replay.Workers),
		worker.WithBufferSize(cfg.Replay.BufferSize),
	)
	pool.Start()

	go func() {
		for i, s := range scripts {
			if pool.IsStopped() {
				break
			}
			pool.Submit(worker.WorkItem{Name: s.Name, Activations: s.Squares(), Index: i})
		}
		pool.Close()
	}()

	results := make([]*worker.ProcessResult, len(scripts))
	for res := range pool.Results() {
		res := res
		results[res.Index] = &res
		if res.Error != nil && cfg.Replay.FailFast {
			pool.Stop()
		}
	}

	failed, skipped := 0, 0
	writer := output.NewReportWriter(cfg.OutputFile, cfg)
	for _, res := range results {
		if res == nil {
			skipped++
			continue
		}
		if res.Error != nil {
			failed++
			logger.Warn("script failed", zap.String("script", res.Name), zap.Error(res.Error))
		}
		if err := writer.WriteResult(*res); err != nil {
			return failed, errors.Wrap(err, "writing report")
		}
	}
	if skipped > 0 {
		logger.Warn("scripts skipped after failure",
			zap.Int("skipped", skipped),
			zap.Int("dropped_from_queue", pool.Skipped()))
	}
	return failed, errors.Wrap(writer.Close(), "flushing report")
}
