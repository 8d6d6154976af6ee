package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Board files used by castling.
const (
	KingFile          = 4
	KingsideRookFile  = 7
	QueensideRookFile = 0
	KingsideKingFile  = 6
	QueensideKingFile = 2
	KingsideRookTo    = 5
	QueensideRookTo   = 3
)

// castleSide describes one castling option relative to the king's home square.
type castleSide struct {
	rookFile int
	kingTo   int
}

var castleSides = []castleSide{
	{rookFile: KingsideRookFile, kingTo: KingsideKingFile},
	{rookFile: QueensideRookFile, kingTo: QueensideKingFile},
}

// castlingMoves returns the castling destinations available to an unmoved king.
// Nothing is offered while the king is attacked.
func castlingMoves(board *chess.Board, from chess.Square, king chess.Piece) []chess.Square {
	if king.HasMoved {
		return nil
	}
	rank := king.Colour.HomeRank()
	if from != chess.Sq(KingFile, rank) {
		return nil
	}

	opponent := king.Colour.Opposite()
	if IsSquareAttacked(board, from, opponent) {
		return nil
	}

	var moves []chess.Square
	for _, side := range castleSides {
		if canCastle(board, from, king, side, opponent) {
			moves = append(moves, chess.Sq(side.kingTo, rank))
		}
	}
	return moves
}

// canCastle checks the rook, the squares between king and rook, and the safety
// of every square the king crosses or lands on.
func canCastle(board *chess.Board, from chess.Square, king chess.Piece, side castleSide, opponent chess.Colour) bool {
	rank := from.Rank

	rook, ok := board.Get(chess.Sq(side.rookFile, rank))
	if !ok || rook.Kind != chess.Rook || rook.Colour != king.Colour || rook.HasMoved {
		return false
	}

	dir := 1
	if side.rookFile < from.File {
		dir = -1
	}
	for file := from.File + dir; file != side.rookFile; file += dir {
		if !board.IsEmpty(chess.Sq(file, rank)) {
			return false
		}
	}

	for file := from.File + dir; ; file += dir {
		if IsSquareAttacked(board, chess.Sq(file, rank), opponent) {
			return false
		}
		if file == side.kingTo {
			break
		}
	}
	return true
}

// IsCastle reports whether a king move from -> to is a castling move.
func IsCastle(piece chess.Piece, from, to chess.Square) bool {
	files, ranks := from.Delta(to)
	return piece.Kind == chess.King && ranks == 0 && files == 2
}

// CastlingRookSquares returns where the rook starts and ends for a castling
// king move onto to.
func CastlingRookSquares(to chess.Square) (rookFrom, rookTo chess.Square) {
	if to.File == KingsideKingFile {
		return chess.Sq(KingsideRookFile, to.Rank), chess.Sq(KingsideRookTo, to.Rank)
	}
	return chess.Sq(QueensideRookFile, to.Rank), chess.Sq(QueensideRookTo, to.Rank)
}
