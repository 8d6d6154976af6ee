package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// WouldSelfCheck reports whether moving the piece on from to to would leave
// mover's king attacked. The move is played on a copy of the board, so the
// caller's board is never touched and the query can be repeated freely.
func WouldSelfCheck(board *chess.Board, from, to chess.Square, mover chess.Colour) bool {
	testBoard := Simulate(board, from, to)

	kingSq, ok := testBoard.FindKing(mover)
	if !ok {
		return false
	}
	return IsSquareAttacked(testBoard, kingSq, mover.Opposite())
}

// Simulate returns a copy of board with the piece on from moved to to.
// Ordinary and en passant captures are removed; castling rooks and piece
// flags are left alone since check detection only needs the geometry.
func Simulate(board *chess.Board, from, to chess.Square) *chess.Board {
	testBoard := board.Copy()

	piece, ok := testBoard.Remove(from)
	if !ok {
		return testBoard
	}

	// Capture
	testBoard.Remove(to)

	// En passant: a diagonal pawn move onto an empty square takes the pawn beside it.
	if piece.Kind == chess.Pawn && from.File != to.File && board.IsEmpty(to) {
		testBoard.Remove(chess.Sq(to.File, from.Rank))
	}

	testBoard.Set(to, piece)
	return testBoard
}
