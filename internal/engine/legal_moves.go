package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalMoves returns the destinations of the piece on from that do not leave
// its own king in check.
func LegalMoves(board *chess.Board, from chess.Square) []chess.Square {
	piece, ok := board.Get(from)
	if !ok {
		return nil
	}

	pseudo := Generate(board, from)
	legal := make([]chess.Square, 0, len(pseudo))
	for _, to := range pseudo {
		if !WouldSelfCheck(board, from, to, piece.Colour) {
			legal = append(legal, to)
		}
	}
	return legal
}

// IsLegalMove reports whether from -> to is among the legal moves of the piece on from.
func IsLegalMove(board *chess.Board, from, to chess.Square) bool {
	for _, sq := range LegalMoves(board, from) {
		if sq == to {
			return true
		}
	}
	return false
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	found := false
	board.ForEach(func(from chess.Square, piece chess.Piece) bool {
		if piece.Colour != colour {
			return true
		}
		for _, to := range Generate(board, from) {
			if !WouldSelfCheck(board, from, to, colour) {
				found = true
				return false
			}
		}
		return true
	})
	return found
}

// AllLegalMoves returns the legal moves of every piece of colour, keyed by origin.
// Pieces without a legal move are omitted.
func AllLegalMoves(board *chess.Board, colour chess.Colour) map[chess.Square][]chess.Square {
	all := make(map[chess.Square][]chess.Square)
	for _, from := range board.Squares() {
		piece, _ := board.Get(from)
		if piece.Colour != colour {
			continue
		}
		if moves := LegalMoves(board, from); len(moves) > 0 {
			all[from] = moves
		}
	}
	return all
}
