package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsCheckmate reports whether no piece of colour has a legal move.
//
// It does not look at check on its own: when it holds, IsInCheck tells
// checkmate (king attacked) from stalemate (king safe).
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return !HasLegalMoves(board, colour)
}

// IsStalemate returns true if colour is not in check and has no legal move.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}
