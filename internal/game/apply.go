package game

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// applyMove plays from -> to on the board and records what happened.
// The caller must have checked the move with engine.LegalMoves; apart from the
// mover existing, nothing is validated here.
func applyMove(board *chess.Board, from, to chess.Square) (chess.Move, bool) {
	piece, ok := board.Get(from)
	if !ok {
		return chess.Move{}, false
	}
	move := chess.Move{From: from, To: to, Piece: piece, Class: chess.QuietMove}

	switch {
	case engine.IsCastle(piece, from, to):
		applyCastle(board, &move)
	case piece.Kind == chess.Pawn && from.File != to.File && board.IsEmpty(to):
		applyEnPassant(board, &move)
	default:
		if captured, ok := board.Remove(to); ok {
			move.Class = chess.CaptureMove
			move.Captured = captured
			move.CapturedAt = to
		}
	}

	board.Remove(from)
	clearDoubleJumps(board)

	piece.HasMoved = true
	if _, ranks := from.Delta(to); piece.Kind == chess.Pawn && ranks == 2 {
		piece.JustDoubleJumped = true
	}

	// Promotion is always to a queen.
	if piece.Kind == chess.Pawn && to.Rank == piece.Colour.PromotionRank() {
		piece.Kind = chess.Queen
		move.Promoted = true
		move.PromotedTo = chess.Queen
	}

	board.Set(to, piece)
	return move, true
}

// applyCastle relocates the rook that goes with a castling king move.
func applyCastle(board *chess.Board, move *chess.Move) {
	rookFrom, rookTo := engine.CastlingRookSquares(move.To)
	if move.To.File == engine.KingsideKingFile {
		move.Class = chess.KingsideCastle
	} else {
		move.Class = chess.QueensideCastle
	}

	rook, ok := board.Remove(rookFrom)
	if !ok {
		return
	}
	rook.HasMoved = true
	board.Set(rookTo, rook)
}

// applyEnPassant removes the pawn captured en passant. It stands beside the
// mover's start square, on the destination file.
func applyEnPassant(board *chess.Board, move *chess.Move) {
	victimSq := chess.Sq(move.To.File, move.From.Rank)
	victim, ok := board.Remove(victimSq)
	if !ok {
		return
	}
	move.Class = chess.EnPassantCapture
	move.Captured = victim
	move.CapturedAt = victimSq
}

// clearDoubleJumps closes every en passant window; the mover sets its own
// flag again afterwards if it double-jumped.
func clearDoubleJumps(board *chess.Board) {
	var jumped []chess.Square
	board.ForEach(func(sq chess.Square, p chess.Piece) bool {
		if p.JustDoubleJumped {
			jumped = append(jumped, sq)
		}
		return true
	})
	for _, sq := range jumped {
		p, _ := board.Get(sq)
		p.JustDoubleJumped = false
		board.Set(sq, p)
	}
}
