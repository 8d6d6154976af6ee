// Package game drives a chess game from square activations: selecting a piece,
// moving it, and keeping turn, history and status.
package game

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Outcome is what a single activation did.
type Outcome int

const (
	Deselected Outcome = iota
	Selected
	Moved
	Rejected
)

// String returns the name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Deselected:
		return "Deselected"
	case Selected:
		return "Selected"
	case Moved:
		return "Moved"
	case Rejected:
		return "Rejected"
	}
	return "Unknown"
}

// Result reports the effect of Activate. Notation and Move are only set when
// Outcome is Moved; Status is always the status after the activation.
type Result struct {
	Outcome  Outcome
	Notation string
	Move     chess.Move
	Status   Status
}

// Controller is the selection/move state machine for one game.
// It is not safe for concurrent use.
type Controller struct {
	id     uuid.UUID
	board  *chess.Board
	turn   chess.Colour
	status Status

	selected    chess.Square
	hasSelected bool

	moves   []chess.Move
	history []string

	logger *zap.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithPosition starts the game from a copy of board with toMove to play.
func WithPosition(board *chess.Board, toMove chess.Colour) Option {
	return func(c *Controller) {
		if board != nil {
			c.board = board.Copy()
			c.turn = toMove
		}
	}
}

// WithID sets the game id instead of generating a random one.
func WithID(id uuid.UUID) Option {
	return func(c *Controller) {
		c.id = id
	}
}

// NewController creates a game in the standard starting position, White to move.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		id:     uuid.New(),
		board:  chess.NewInitialBoard(),
		turn:   chess.White,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(zap.Stringer("game_id", c.id))
	c.status = Evaluate(c.board, c.turn)
	return c
}

// Activate feeds one square activation into the state machine.
func (c *Controller) Activate(sq chess.Square) Result {
	if c.status.IsOver() {
		c.logger.Debug("activation after game end", zap.Stringer("square", sq))
		return c.result(Rejected)
	}

	if !c.hasSelected {
		if !c.ownPiece(sq) {
			c.logger.Debug("activation rejected", zap.Stringer("square", sq))
			return c.result(Rejected)
		}
		c.selectSquare(sq)
		return c.result(Selected)
	}

	from := c.selected
	switch {
	case sq == from:
		c.clearSelection()
		c.logger.Debug("piece deselected", zap.Stringer("square", sq))
		return c.result(Deselected)

	case slices.Contains(engine.LegalMoves(c.board, from), sq):
		return c.move(from, sq)

	case c.ownPiece(sq):
		c.selectSquare(sq)
		return c.result(Selected)

	default:
		c.clearSelection()
		c.logger.Debug("not a legal destination", zap.Stringer("from", from), zap.Stringer("square", sq))
		return c.result(Deselected)
	}
}

// Play selects from and moves it to to in one step. Unlike Activate it reports
// a refused move as an error: a *errors.GameError wrapping errors.ErrGameOver
// or errors.ErrIllegalMove. The selection is cleared either way.
func (c *Controller) Play(from, to chess.Square) (Result, error) {
	if c.status.IsOver() {
		return c.result(Rejected), c.gameError(errors.ErrGameOver, to)
	}
	c.clearSelection()
	if !c.ownPiece(from) || !slices.Contains(engine.LegalMoves(c.board, from), to) {
		return c.result(Rejected), c.gameError(errors.ErrIllegalMove, to)
	}
	c.selectSquare(from)
	return c.move(from, to), nil
}

// move applies a legal move and advances the game.
func (c *Controller) move(from, to chess.Square) Result {
	m, ok := applyMove(c.board, from, to)
	if !ok {
		c.clearSelection()
		return c.result(Deselected)
	}
	notation := Notation(m)
	c.moves = append(c.moves, m)
	c.history = append(c.history, notation)
	c.turn = c.turn.Opposite()
	c.status = Evaluate(c.board, c.turn)
	c.clearSelection()

	c.logger.Debug("move applied",
		zap.String("notation", notation),
		zap.Stringer("class", m.Class),
		zap.Int("ply", len(c.moves)))
	if c.status.Kind != InProgress {
		c.logger.Info("status changed", zap.Stringer("status", c.status))
	}

	res := c.result(Moved)
	res.Notation = notation
	res.Move = m
	return res
}

func (c *Controller) ownPiece(sq chess.Square) bool {
	p, ok := c.board.Get(sq)
	return ok && p.Colour == c.turn
}

func (c *Controller) selectSquare(sq chess.Square) {
	c.selected = sq
	c.hasSelected = true
	c.logger.Debug("piece selected", zap.Stringer("square", sq))
}

func (c *Controller) clearSelection() {
	c.selected = chess.Square{}
	c.hasSelected = false
}

func (c *Controller) result(o Outcome) Result {
	return Result{Outcome: o, Status: c.status}
}

func (c *Controller) gameError(err error, sq chess.Square) error {
	return &errors.GameError{
		Err:    err,
		GameID: c.id,
		PlyNum: len(c.moves) + 1,
		Square: sq.String(),
	}
}

// LegalMoves returns the legal destinations of the piece on sq, whoever's turn it is.
func (c *Controller) LegalMoves(sq chess.Square) []chess.Square {
	return engine.LegalMoves(c.board, sq)
}

// Highlights returns the squares to mark for the current selection: its legal
// destinations and the selected square itself. Nil without a selection.
func (c *Controller) Highlights() []chess.Square {
	if !c.hasSelected {
		return nil
	}
	return append(engine.LegalMoves(c.board, c.selected), c.selected)
}

// Status returns the status for the side to move.
func (c *Controller) Status() Status {
	return c.status
}

// StatusText returns the status line shown to players, e.g. "White's Turn".
func (c *Controller) StatusText() string {
	if c.status.IsOver() {
		return c.status.String()
	}
	return c.turn.String() + "'s Turn"
}

// History returns every move record so far, oldest first.
func (c *Controller) History() []string {
	return slices.Clone(c.history)
}

// RecentHistory returns at most the last n move records, oldest first.
func (c *Controller) RecentHistory(n int) []string {
	if n <= 0 {
		return nil
	}
	start := len(c.history) - n
	if start < 0 {
		start = 0
	}
	return slices.Clone(c.history[start:])
}

// Moves returns the applied moves, oldest first.
func (c *Controller) Moves() []chess.Move {
	return slices.Clone(c.moves)
}

// BoardSnapshot returns a copy of the piece placement.
func (c *Controller) BoardSnapshot() map[chess.Square]chess.Piece {
	return c.board.Snapshot()
}

// Turn returns the colour to move.
func (c *Controller) Turn() chess.Colour {
	return c.turn
}

// Selection returns the selected square, if any.
func (c *Controller) Selection() (chess.Square, bool) {
	return c.selected, c.hasSelected
}

// ID returns the game id.
func (c *Controller) ID() uuid.UUID {
	return c.id
}
