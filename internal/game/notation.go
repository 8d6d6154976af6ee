package game

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Notation renders a move record such as "W: P e2 -> e4".
// The piece letter is the mover before any promotion.
func Notation(m chess.Move) string {
	return fmt.Sprintf("%c: %c %s -> %s", m.Piece.Colour.Letter(), m.Piece.Kind.Letter(), m.From, m.To)
}
