package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsInCheck returns true if the given colour's king is in check.
// A board without that king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := board.FindKing(colour)
	if !ok {
		return false // No king found
	}
	return IsSquareAttacked(board, kingSq, colour.Opposite())
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
//
// Pawns and kings are tested geometrically. Every other attacker delegates to
// Generate; that never reaches the castling code, which only runs for kings,
// so the two functions cannot recurse into each other.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	if !sq.Valid() {
		return false
	}
	attacked := false
	board.ForEach(func(from chess.Square, piece chess.Piece) bool {
		if piece.Colour == byColour && attacks(board, from, piece, sq) {
			attacked = true
		}
		return !attacked
	})
	return attacked
}

// attacks reports whether piece, standing on from, attacks target.
func attacks(board *chess.Board, from chess.Square, piece chess.Piece, target chess.Square) bool {
	switch piece.Kind {
	case chess.Pawn:
		files, _ := from.Delta(target)
		return target.Rank == from.Rank+piece.Colour.Forward() && files == 1

	case chess.King:
		df, dr := from.Delta(target)
		return df <= 1 && dr <= 1 && (df != 0 || dr != 0)

	default:
		for _, to := range Generate(board, from) {
			if to == target {
				return true
			}
		}
		return false
	}
}
