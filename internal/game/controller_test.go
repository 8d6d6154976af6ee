package game

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// activateAll feeds square names to the controller and returns the last result.
func activateAll(t *testing.T, c *Controller, names ...string) Result {
	t.Helper()
	var res Result
	for _, n := range names {
		res = c.Activate(chess.MustParseSquare(n))
	}
	return res
}

// playMoves plays "e2e4"-style moves, failing the test if any is refused.
func playMoves(t *testing.T, c *Controller, moves ...string) Result {
	t.Helper()
	var res Result
	for _, m := range moves {
		var err error
		res, err = c.Play(chess.MustParseSquare(m[:2]), chess.MustParseSquare(m[2:]))
		if err != nil {
			t.Fatalf("Play(%s): %v", m, err)
		}
	}
	return res
}

func TestNewController(t *testing.T) {
	c := NewController()

	testutil.AssertEqual(t, c.Turn(), chess.White)
	testutil.AssertEqual(t, c.Status(), Status{Kind: InProgress})
	testutil.AssertEqual(t, c.StatusText(), "White's Turn")
	testutil.AssertEqual(t, len(c.BoardSnapshot()), 32)
	testutil.AssertEqual(t, len(c.History()), 0)
	testutil.AssertTrue(t, c.ID() != uuid.Nil, "id generated")

	_, selected := c.Selection()
	testutil.AssertFalse(t, selected, "selection")
}

func TestNewController_Options(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	board := testutil.MustBoard(t, "wKe1", "bKe8", "bRe2")
	c := NewController(WithID(id), WithPosition(board, chess.White), WithLogger(nil))

	testutil.AssertEqual(t, c.ID(), id)
	testutil.AssertEqual(t, c.Status(), Status{Kind: Check, Colour: chess.White})

	// The controller owns a copy of the position.
	board.Remove(chess.MustParseSquare("e2"))
	testutil.AssertEqual(t, len(c.BoardSnapshot()), 3)
}

func TestController_LegalMovesInitialPawn(t *testing.T) {
	c := NewController()
	testutil.AssertSquares(t, c.LegalMoves(chess.MustParseSquare("e2")), testutil.Squares("e3", "e4"))
}

func TestActivate_Transitions(t *testing.T) {
	tests := []struct {
		name        string
		activations []string
		want        Outcome
		wantSel     string // "" means no selection
		wantHistory int
	}{
		{"select own piece", []string{"e2"}, Selected, "e2", 0},
		{"empty square without selection", []string{"e4"}, Rejected, "", 0},
		{"enemy piece without selection", []string{"e7"}, Rejected, "", 0},
		{"same square deselects", []string{"e2", "e2"}, Deselected, "", 0},
		{"legal destination moves", []string{"e2", "e4"}, Moved, "", 1},
		{"illegal destination deselects", []string{"e2", "e5"}, Deselected, "", 0},
		{"enemy non-target deselects", []string{"e2", "e7"}, Deselected, "", 0},
		{"other own piece reselects", []string{"e2", "g1"}, Selected, "g1", 0},
		{"own piece blocked still selectable", []string{"a1"}, Selected, "a1", 0},
		{"wrong turn after move", []string{"e2", "e4", "d2"}, Rejected, "", 1},
		{"black replies", []string{"e2", "e4", "e7", "e5"}, Moved, "", 2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := NewController()
			res := activateAll(t, c, tt.activations...)

			testutil.AssertEqual(t, res.Outcome, tt.want, "outcome")
			sel, ok := c.Selection()
			if tt.wantSel == "" {
				testutil.AssertFalse(t, ok, "selection should be cleared, got %s", sel)
			} else {
				testutil.AssertTrue(t, ok, "selection expected")
				testutil.AssertEqual(t, sel, chess.MustParseSquare(tt.wantSel))
			}
			testutil.AssertEqual(t, len(c.History()), tt.wantHistory, "history length")
		})
	}
}

func TestActivate_OffBoard(t *testing.T) {
	c := NewController()
	res := c.Activate(chess.Sq(8, 8))
	testutil.AssertEqual(t, res.Outcome, Rejected)

	activateAll(t, c, "e2")
	res = c.Activate(chess.Sq(4, -1))
	testutil.AssertEqual(t, res.Outcome, Deselected)
	testutil.AssertEqual(t, len(c.BoardSnapshot()), 32)
}

func TestActivate_MovedResult(t *testing.T) {
	c := NewController()
	res := activateAll(t, c, "g1", "f3")

	testutil.AssertEqual(t, res.Outcome, Moved)
	testutil.AssertEqual(t, res.Notation, "W: N g1 -> f3")
	testutil.AssertEqual(t, res.Status, Status{Kind: InProgress})
	testutil.AssertEqual(t, res.Move.Class, chess.QuietMove)
	testutil.AssertEqual(t, c.Turn(), chess.Black)
	testutil.AssertEqual(t, c.StatusText(), "Black's Turn")
	testutil.AssertEqual(t, c.History(), []string{"W: N g1 -> f3"})
}

func TestActivate_FoolsMate(t *testing.T) {
	c := NewController()
	res := activateAll(t, c, "f2", "f3", "e7", "e5", "g2", "g4", "d8", "h4")

	testutil.AssertEqual(t, res.Outcome, Moved)
	testutil.AssertEqual(t, res.Status, Status{Kind: Checkmate, Colour: chess.Black})
	testutil.AssertEqual(t, c.StatusText(), "Checkmate! Black wins.")
	testutil.AssertEqual(t, c.History(), []string{
		"W: P f2 -> f3",
		"B: P e7 -> e5",
		"W: P g2 -> g4",
		"B: Q d8 -> h4",
	})

	// Nothing is accepted after the game ends.
	res = c.Activate(chess.MustParseSquare("e1"))
	testutil.AssertEqual(t, res.Outcome, Rejected)
	_, selected := c.Selection()
	testutil.AssertFalse(t, selected, "selection after mate")

	_, err := c.Play(chess.MustParseSquare("e1"), chess.MustParseSquare("f2"))
	testutil.AssertErrorIs(t, err, chesserrors.ErrGameOver)
}

func TestActivate_CheckWithBlockAvailable(t *testing.T) {
	board := testutil.MustBoard(t, "wKe1", "bRa1", "wNc3", "bKe8")
	c := NewController(WithPosition(board, chess.White))

	testutil.AssertEqual(t, c.Status(), Status{Kind: Check, Colour: chess.White})
	testutil.AssertEqual(t, c.StatusText(), "White's Turn")

	// A move that ignores the check is not a legal destination.
	res := activateAll(t, c, "c3", "e4")
	testutil.AssertEqual(t, res.Outcome, Deselected)

	res = activateAll(t, c, "c3", "d1")
	testutil.AssertEqual(t, res.Outcome, Moved)
	testutil.AssertEqual(t, res.Status, Status{Kind: InProgress})
}

func TestActivate_EnPassant(t *testing.T) {
	c := NewController()
	playMoves(t, c, "a2a3", "d7d5", "a3a4", "d5d4", "e2e4")

	res := activateAll(t, c, "d4", "e3")
	testutil.AssertEqual(t, res.Outcome, Moved)
	testutil.AssertEqual(t, res.Notation, "B: P d4 -> e3")
	testutil.AssertEqual(t, res.Move.Class, chess.EnPassantCapture)
	testutil.AssertEqual(t, res.Move.CapturedAt, chess.MustParseSquare("e4"))

	snap := c.BoardSnapshot()
	_, e4 := snap[chess.MustParseSquare("e4")]
	testutil.AssertFalse(t, e4, "white pawn on e4 removed")
	pawn, e3 := snap[chess.MustParseSquare("e3")]
	testutil.AssertTrue(t, e3, "black pawn on e3")
	testutil.AssertEqual(t, pawn.Colour, chess.Black)
	testutil.AssertEqual(t, len(snap), 31)
}

func TestActivate_EnPassantWindowIsOnePly(t *testing.T) {
	c := NewController()
	playMoves(t, c, "a2a3", "d7d5", "a3a4", "d5d4", "e2e4", "h7h6", "h2h3")

	testutil.AssertSquares(t, c.LegalMoves(chess.MustParseSquare("d4")), testutil.Squares("d3"))
}

func TestActivate_Castling(t *testing.T) {
	tests := []struct {
		name         string
		placements   []string
		toMove       chess.Colour
		king, target string
		rookFrom     string
		rookTo       string
		wantClass    chess.MoveClass
		wantNotation string
	}{
		{
			name:         "white kingside",
			placements:   []string{"wKe1", "wRh1", "bKe8"},
			toMove:       chess.White,
			king:         "e1",
			target:       "g1",
			rookFrom:     "h1",
			rookTo:       "f1",
			wantClass:    chess.KingsideCastle,
			wantNotation: "W: K e1 -> g1",
		},
		{
			name:         "black queenside",
			placements:   []string{"wKe1", "bKe8", "bRa8"},
			toMove:       chess.Black,
			king:         "e8",
			target:       "c8",
			rookFrom:     "a8",
			rookTo:       "d8",
			wantClass:    chess.QueensideCastle,
			wantNotation: "B: K e8 -> c8",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := NewController(WithPosition(testutil.MustBoard(t, tt.placements...), tt.toMove))
			res := activateAll(t, c, tt.king, tt.target)

			testutil.AssertEqual(t, res.Outcome, Moved)
			testutil.AssertEqual(t, res.Notation, tt.wantNotation)
			testutil.AssertEqual(t, res.Move.Class, tt.wantClass)

			snap := c.BoardSnapshot()
			king := snap[chess.MustParseSquare(tt.target)]
			rook := snap[chess.MustParseSquare(tt.rookTo)]
			testutil.AssertEqual(t, king.Kind, chess.King)
			testutil.AssertTrue(t, king.HasMoved, "king moved")
			testutil.AssertEqual(t, rook.Kind, chess.Rook)
			testutil.AssertTrue(t, rook.HasMoved, "rook moved")
			_, left := snap[chess.MustParseSquare(tt.rookFrom)]
			testutil.AssertFalse(t, left, "rook left its corner")
		})
	}
}

func TestActivate_Promotion(t *testing.T) {
	board := testutil.MustBoard(t, "wKe1+", "wPa7", "bKh7+", "bNb8")
	c := NewController(WithPosition(board, chess.White))

	res := activateAll(t, c, "a7", "b8")
	testutil.AssertEqual(t, res.Outcome, Moved)
	testutil.AssertEqual(t, res.Notation, "W: P a7 -> b8")
	testutil.AssertTrue(t, res.Move.Promoted, "promoted")
	testutil.AssertEqual(t, res.Move.Class, chess.CaptureMove)

	queen := c.BoardSnapshot()[chess.MustParseSquare("b8")]
	testutil.AssertEqual(t, queen, chess.Piece{Colour: chess.White, Kind: chess.Queen, HasMoved: true})
}

func TestActivate_Stalemate(t *testing.T) {
	board := testutil.MustBoard(t, "wKg6+", "wQe7+", "bKh8+")
	c := NewController(WithPosition(board, chess.White))

	res := activateAll(t, c, "e7", "f7")
	testutil.AssertEqual(t, res.Status, Status{Kind: Stalemate})
	testutil.AssertEqual(t, c.StatusText(), "Stalemate!")
	testutil.AssertEqual(t, c.Activate(chess.MustParseSquare("h8")).Outcome, Rejected)
}

func TestController_Highlights(t *testing.T) {
	c := NewController()
	testutil.AssertSquares(t, c.Highlights(), nil)

	activateAll(t, c, "b1")
	testutil.AssertSquares(t, c.Highlights(), testutil.Squares("a3", "c3", "b1"))
}

func TestController_HistoryIsACopy(t *testing.T) {
	c := NewController()
	playMoves(t, c, "e2e4")

	h := c.History()
	h[0] = "changed"
	testutil.AssertEqual(t, c.History(), []string{"W: P e2 -> e4"})
	testutil.AssertEqual(t, len(c.Moves()), 1)
}

func TestController_RecentHistory(t *testing.T) {
	c := NewController()
	playMoves(t, c, "g1f3", "g8f6", "f3g1", "f6g8", "b1c3")

	testutil.AssertEqual(t, c.RecentHistory(2), []string{"B: N f6 -> g8", "W: N b1 -> c3"})
	testutil.AssertEqual(t, len(c.RecentHistory(20)), 5)
	testutil.AssertEqual(t, len(c.RecentHistory(0)), 0)
}

func TestPlay_Illegal(t *testing.T) {
	c := NewController()

	_, err := c.Play(chess.MustParseSquare("e2"), chess.MustParseSquare("e5"))
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)

	var gameErr *chesserrors.GameError
	if !errors.As(err, &gameErr) {
		t.Fatalf("error %v is not a *GameError", err)
	}
	testutil.AssertEqual(t, gameErr.GameID, c.ID())
	testutil.AssertEqual(t, gameErr.PlyNum, 1)
	testutil.AssertEqual(t, gameErr.Square, "e5")

	// Moving the opponent's piece is refused too.
	_, err = c.Play(chess.MustParseSquare("e7"), chess.MustParseSquare("e5"))
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)
	testutil.AssertEqual(t, len(c.History()), 0)
}

func TestController_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := NewController(WithLogger(zap.New(core)))

	playMoves(t, c, "f2f3", "e7e5", "g2g4", "d8h4")

	moves := logs.FilterMessage("move applied").All()
	testutil.AssertEqual(t, len(moves), 4)
	testutil.AssertEqual(t, moves[3].ContextMap()["notation"], "B: Q d8 -> h4")
	testutil.AssertEqual(t, moves[0].ContextMap()["game_id"], c.ID().String())

	status := logs.FilterMessage("status changed").All()
	testutil.AssertEqual(t, len(status), 1)
	testutil.AssertEqual(t, status[0].Level, zapcore.InfoLevel)
}
