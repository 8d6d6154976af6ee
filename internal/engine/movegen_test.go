package engine

import (
	"math/rand"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestGenerate_PawnMoves(t *testing.T) {
	tests := []struct {
		name       string
		placements []string
		from       string
		want       []string
	}{
		{"initial double step", nil, "e2", []string{"e3", "e4"}},
		{"black initial double step", nil, "d7", []string{"d6", "d5"}},
		{"moved pawn single step only", []string{"wPe3"}, "e3", []string{"e4"}},
		{"blocked directly", []string{"wPe2", "bNe3"}, "e2", nil},
		{"double step blocked", []string{"wPe2", "bNe4"}, "e2", []string{"e3"}},
		{"captures both sides", []string{"wPe4", "bPd5", "bNf5"}, "e4", []string{"e5", "d5", "f5"}},
		{"no capture of own piece", []string{"wPe4", "wNd5"}, "e4", []string{"e5"}},
		{"edge file", []string{"wPa4", "bPb5"}, "a4", []string{"a5", "b5"}},
		{"last rank has no push", []string{"wPe8+"}, "e8", nil},
		{"en passant", []string{"wPe5", "bPd5^"}, "e5", []string{"e6", "d6"}},
		{"black en passant", []string{"bPd4", "wPe4^"}, "d4", []string{"d3", "e3"}},
		{"no en passant without double jump", []string{"wPe5", "bPd5"}, "e5", []string{"e6"}},
		{"no en passant against a piece", []string{"wPe5", "bNd5"}, "e5", []string{"e6"}},
		{"no en passant onto occupied square", []string{"wPe5", "bPd5^", "wNd6"}, "e5", []string{"e6"}},
		{"no en passant against own pawn", []string{"wPe5", "wPd5^"}, "e5", []string{"e6"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var board *chess.Board
			if tt.placements == nil {
				board = chess.NewInitialBoard()
			} else {
				board = testutil.MustBoard(t, tt.placements...)
			}
			got := Generate(board, chess.MustParseSquare(tt.from))
			testutil.AssertSquares(t, got, testutil.Squares(tt.want...), "Generate(%s)", tt.from)
		})
	}
}

func TestGenerate_PieceMoves(t *testing.T) {
	tests := []struct {
		name       string
		placements []string
		from       string
		want       []string
	}{
		{"knight in corner", []string{"wNa1"}, "a1", []string{"b3", "c2"}},
		{"knight blocked by own piece", []string{"wNa1", "wPc2"}, "a1", []string{"b3"}},
		{"knight captures", []string{"wNa1", "bPc2"}, "a1", []string{"b3", "c2"}},
		{"knight jumps over pieces", []string{"wNb1", "wPa2", "wPb2", "wPc2", "wPd2"}, "b1", []string{"a3", "c3"}},
		{"king in the open", []string{"wKe1+"}, "e1", []string{"d1", "d2", "e2", "f2", "f1"}},
		{"king captures and is blocked", []string{"wKe1+", "bPe2", "wPd2"}, "e1", []string{"d1", "e2", "f2", "f1"}},
		{
			"rook ray stops at blockers",
			[]string{"wRd4", "wPd6", "bPg4"},
			"d4",
			[]string{"d5", "d3", "d2", "d1", "c4", "b4", "a4", "e4", "f4", "g4"},
		},
		{
			"bishop ray stops at blockers",
			[]string{"wBc1", "wPb2", "bNf4"},
			"c1",
			[]string{"d2", "e3", "f4"},
		},
		{"bishop boxed in at start", nil, "c1", nil},
		{
			"queen combines both",
			[]string{"wQa1", "wPa2", "wPb2", "bNc1"},
			"a1",
			[]string{"b1", "c1"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var board *chess.Board
			if tt.placements == nil {
				board = chess.NewInitialBoard()
			} else {
				board = testutil.MustBoard(t, tt.placements...)
			}
			got := Generate(board, chess.MustParseSquare(tt.from))
			testutil.AssertSquares(t, got, testutil.Squares(tt.want...), "Generate(%s)", tt.from)
		})
	}
}

func TestGenerate_QueenOnEmptyBoard(t *testing.T) {
	board := testutil.MustBoard(t, "wQd4")
	if got := len(Generate(board, chess.MustParseSquare("d4"))); got != 27 {
		t.Errorf("len(Generate(d4)) = %d, want 27", got)
	}
}

func TestGenerate_EmptyAndOffBoard(t *testing.T) {
	board := chess.NewInitialBoard()
	if got := Generate(board, chess.MustParseSquare("e4")); got != nil {
		t.Errorf("Generate(empty e4) = %v, want nil", got)
	}
	if got := Generate(board, chess.Sq(8, 0)); got != nil {
		t.Errorf("Generate(off board) = %v, want nil", got)
	}
	if got := Generate(board, chess.Sq(-1, 3)); got != nil {
		t.Errorf("Generate(off board) = %v, want nil", got)
	}
}

// randomBoard scatters n random pieces (no kings) over the board.
func randomBoard(rng *rand.Rand, n int) *chess.Board {
	board := chess.NewBoard()
	for board.Len() < n {
		sq := chess.Sq(rng.Intn(chess.BoardSize), rng.Intn(chess.BoardSize))
		if !board.IsEmpty(sq) {
			continue
		}
		p := chess.NewPiece(chess.Colour(rng.Intn(2)), chess.PieceKind(rng.Intn(5)))
		p.HasMoved = rng.Intn(2) == 0
		board.Set(sq, p)
	}
	return board
}

func TestGenerate_DestinationsOnBoardAndUnique(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		board := randomBoard(rng, 2+rng.Intn(20))
		for _, from := range board.Squares() {
			seen := make(map[chess.Square]bool)
			for _, to := range Generate(board, from) {
				if !to.Valid() {
					t.Fatalf("Generate(%s) produced off-board %v", from, to)
				}
				if seen[to] {
					t.Fatalf("Generate(%s) produced %s twice", from, to)
				}
				seen[to] = true
			}
		}
	}
}

func TestGenerate_SlidingRaysStopAtFirstPiece(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	dirsByKind := map[chess.PieceKind][]offset{
		chess.Bishop: diagonalDirs,
		chess.Rook:   straightDirs,
		chess.Queen:  queenDirs,
	}

	for i := 0; i < 200; i++ {
		board := randomBoard(rng, 4+rng.Intn(16))
		for _, from := range board.Squares() {
			piece, _ := board.Get(from)
			dirs, ok := dirsByKind[piece.Kind]
			if !ok {
				continue
			}

			var want []chess.Square
			for _, dir := range dirs {
				for to := from.Offset(dir[0], dir[1]); to.Valid(); to = to.Offset(dir[0], dir[1]) {
					other, occupied := board.Get(to)
					if occupied {
						if other.Colour != piece.Colour {
							want = append(want, to)
						}
						break
					}
					want = append(want, to)
				}
			}
			testutil.AssertSquares(t, Generate(board, from), want, "Generate(%s %s)", piece, from)
		}
	}
}
