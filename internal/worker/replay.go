package worker

import (
	"go.uber.org/zap"

	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// ReplayOptions controls how NewReplayFunc drives a game.
type ReplayOptions struct {
	// Logger is handed to every controller. Nil discards logs.
	Logger *zap.Logger

	// Strict stops a script at the first activation that is rejected or
	// that deselects without moving, and reports it as the result error.
	Strict bool

	// HistoryLimit keeps only the newest move records in the result
	// (0 keeps all of them).
	HistoryLimit int
}

// NewReplayFunc returns a ProcessFunc that plays a script's activations on a
// fresh controller and reports the final game state.
func NewReplayFunc(opts ReplayOptions) ProcessFunc {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(item WorkItem) ProcessResult {
		c := game.NewController(game.WithLogger(logger.With(zap.String("script", item.Name))))
		res := ProcessResult{Index: item.Index, Name: item.Name, GameID: c.ID()}

		for _, sq := range item.Activations {
			r := c.Activate(sq)
			switch r.Outcome {
			case game.Moved:
				res.Moves++
				continue
			case game.Selected:
				continue
			}

			res.Rejected++
			if !opts.Strict {
				continue
			}
			cause := errors.ErrIllegalMove
			if c.Status().IsOver() {
				cause = errors.ErrGameOver
			}
			res.Error = &errors.GameError{
				Err:    cause,
				GameID: c.ID(),
				PlyNum: len(c.History()) + 1,
				Square: sq.String(),
				File:   item.Name,
			}
			break
		}

		if opts.HistoryLimit > 0 {
			res.History = c.RecentHistory(opts.HistoryLimit)
		} else {
			res.History = c.History()
		}
		res.Status = c.Status()
		res.StatusText = c.StatusText()
		return res
	}
}
