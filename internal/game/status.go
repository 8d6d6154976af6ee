package game

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// StatusKind is the state of play after the latest move.
type StatusKind int

const (
	InProgress StatusKind = iota
	Check
	Checkmate
	Stalemate
)

// String returns the name of the status kind.
func (k StatusKind) String() string {
	switch k {
	case InProgress:
		return "InProgress"
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	}
	return "Unknown"
}

// Status is the game status seen by the side to move.
//
// For Check, Colour is the side in check. For Checkmate, Colour is the
// winner. It is unused for InProgress and Stalemate.
type Status struct {
	Kind   StatusKind
	Colour chess.Colour
}

// String returns the text shown to players.
func (s Status) String() string {
	switch s.Kind {
	case Check:
		return fmt.Sprintf("%s is in check", s.Colour)
	case Checkmate:
		return fmt.Sprintf("Checkmate! %s wins.", s.Colour)
	case Stalemate:
		return "Stalemate!"
	}
	return "In progress"
}

// IsOver reports whether the game has ended.
func (s Status) IsOver() bool {
	return s.Kind == Checkmate || s.Kind == Stalemate
}

// Evaluate computes the status for toMove, the side about to play.
func Evaluate(board *chess.Board, toMove chess.Colour) Status {
	inCheck := engine.IsInCheck(board, toMove)
	if engine.IsCheckmate(board, toMove) {
		if inCheck {
			return Status{Kind: Checkmate, Colour: toMove.Opposite()}
		}
		return Status{Kind: Stalemate}
	}
	if inCheck {
		return Status{Kind: Check, Colour: toMove}
	}
	return Status{Kind: InProgress}
}
