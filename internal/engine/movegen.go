// Package engine provides chess move generation, attack detection and legality checks.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// offset is a (file, rank) step.
type offset [2]int

var (
	knightOffsets = []offset{{2, 1}, {1, 2}, {-1, 2}, {-2, 1}, {-2, -1}, {-1, -2}, {1, -2}, {2, -1}}
	kingOffsets   = []offset{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}

	diagonalDirs = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	straightDirs = []offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	queenDirs    = append(append([]offset{}, straightDirs...), diagonalDirs...)
)

// Generate returns the pseudo-legal destinations of the piece on from.
// Moves that would leave the mover's own king in check are included; use
// LegalMoves to filter them. An empty or off-board square yields nil.
func Generate(board *chess.Board, from chess.Square) []chess.Square {
	piece, ok := board.Get(from)
	if !ok {
		return nil
	}

	var moves []chess.Square
	switch piece.Kind {
	case chess.Pawn:
		moves = pawnMoves(board, from, piece)
	case chess.Knight:
		moves = stepMoves(board, from, piece, knightOffsets)
	case chess.Bishop:
		moves = slidingMoves(board, from, piece, diagonalDirs)
	case chess.Rook:
		moves = slidingMoves(board, from, piece, straightDirs)
	case chess.Queen:
		moves = slidingMoves(board, from, piece, queenDirs)
	case chess.King:
		moves = stepMoves(board, from, piece, kingOffsets)
		moves = append(moves, castlingMoves(board, from, piece)...)
	}
	return moves
}

// isEnemy reports whether sq holds a piece of the other colour.
func isEnemy(board *chess.Board, sq chess.Square, colour chess.Colour) bool {
	p, ok := board.Get(sq)
	return ok && p.Colour != colour
}

// pawnMoves generates pushes, captures and en passant captures for a pawn.
func pawnMoves(board *chess.Board, from chess.Square, pawn chess.Piece) []chess.Square {
	var moves []chess.Square
	dir := pawn.Colour.Forward()

	// Forward move
	one := from.Offset(0, dir)
	if one.Valid() && board.IsEmpty(one) {
		moves = append(moves, one)

		// Double push needs both squares clear
		if !pawn.HasMoved {
			two := from.Offset(0, 2*dir)
			if two.Valid() && board.IsEmpty(two) {
				moves = append(moves, two)
			}
		}
	}

	// Captures
	for _, df := range []int{-1, 1} {
		target := from.Offset(df, dir)
		if !target.Valid() {
			continue
		}
		if !board.IsEmpty(target) {
			if isEnemy(board, target, pawn.Colour) {
				moves = append(moves, target)
			}
			continue
		}

		// En passant: the victim sits beside the pawn, on the target's file.
		beside := from.Offset(df, 0)
		victim, ok := board.Get(beside)
		if ok && victim.Kind == chess.Pawn && victim.Colour != pawn.Colour && victim.JustDoubleJumped {
			moves = append(moves, target)
		}
	}
	return moves
}

// stepMoves generates single-step moves from a fixed offset table (knight, king).
func stepMoves(board *chess.Board, from chess.Square, piece chess.Piece, offsets []offset) []chess.Square {
	moves := make([]chess.Square, 0, len(offsets))
	for _, o := range offsets {
		to := from.Offset(o[0], o[1])
		if !to.Valid() {
			continue
		}
		if board.IsEmpty(to) || isEnemy(board, to, piece.Colour) {
			moves = append(moves, to)
		}
	}
	return moves
}

// slidingMoves casts a ray along each direction until it leaves the board or
// meets a piece. An enemy blocker is a capture; a friendly one is not.
func slidingMoves(board *chess.Board, from chess.Square, piece chess.Piece, dirs []offset) []chess.Square {
	var moves []chess.Square
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.Valid() {
			if !board.IsEmpty(to) {
				if isEnemy(board, to, piece.Colour) {
					moves = append(moves, to)
				}
				break // Blocked
			}
			moves = append(moves, to)
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}
