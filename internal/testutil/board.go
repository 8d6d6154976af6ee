// Package testutil provides shared test utilities for the chess rules engine.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// ParsePlacement parses one placement such as "wKe1", "bPd5^" or "wRh1+".
//
// The first letter is the colour (w/b), the second the piece letter, then the
// square. A trailing '+' marks the piece as moved; '^' marks a pawn that has
// just made its double step. Pawns standing off their starting rank are always
// marked as moved.
func ParsePlacement(spec string) (chess.Square, chess.Piece, error) {
	if len(spec) < 4 {
		return chess.Square{}, chess.Piece{}, fmt.Errorf("placement %q too short", spec)
	}

	var colour chess.Colour
	switch spec[0] {
	case 'w':
		colour = chess.White
	case 'b':
		colour = chess.Black
	default:
		return chess.Square{}, chess.Piece{}, fmt.Errorf("placement %q: bad colour %q", spec, spec[0])
	}

	kind, ok := kindFromLetter(spec[1])
	if !ok {
		return chess.Square{}, chess.Piece{}, fmt.Errorf("placement %q: bad piece %q", spec, spec[1])
	}

	sq, err := chess.ParseSquare(spec[2:4])
	if err != nil {
		return chess.Square{}, chess.Piece{}, fmt.Errorf("placement %q: %w", spec, err)
	}

	piece := chess.NewPiece(colour, kind)
	switch suffix := spec[4:]; suffix {
	case "":
	case "+":
		piece.HasMoved = true
	case "^":
		piece.HasMoved = true
		piece.JustDoubleJumped = true
	default:
		return chess.Square{}, chess.Piece{}, fmt.Errorf("placement %q: bad suffix %q", spec, suffix)
	}

	if kind == chess.Pawn && sq.Rank != colour.HomeRank()+colour.Forward() {
		piece.HasMoved = true
	}
	return sq, piece, nil
}

// MustBoard builds a board from placements, failing the test on bad input.
func MustBoard(t testing.TB, placements ...string) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	for _, spec := range placements {
		sq, piece, err := ParsePlacement(spec)
		if err != nil {
			t.Fatalf("MustBoard: %v", err)
		}
		if !b.IsEmpty(sq) {
			t.Fatalf("MustBoard: square %s placed twice", sq)
		}
		b.Set(sq, piece)
	}
	return b
}

func kindFromLetter(c byte) (chess.PieceKind, bool) {
	for k := chess.Pawn; k <= chess.King; k++ {
		if k.Letter() == c {
			return k, true
		}
	}
	return 0, false
}

// FEN renders a position for comparison against external move generators.
// Castling rights come from the unmoved flags of kings and rooks on their home
// squares, and the en passant square from a pawn that just double-jumped.
func FEN(b *chess.Board, toMove chess.Colour) string {
	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < chess.BoardSize; file++ {
			p, ok := b.Get(chess.Sq(file, rank))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprintf(&sb, "%d", empty)
				empty = 0
			}
			letter := p.Kind.Letter()
			if p.Colour == chess.Black {
				letter += 'a' - 'A'
			}
			sb.WriteByte(letter)
		}
		if empty > 0 {
			fmt.Fprintf(&sb, "%d", empty)
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	side := "w"
	if toMove == chess.Black {
		side = "b"
	}
	fmt.Fprintf(&sb, " %s %s %s 0 1", side, castlingRights(b), enPassantTarget(b))
	return sb.String()
}

func castlingRights(b *chess.Board) string {
	var rights strings.Builder
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		rank := colour.HomeRank()
		king, ok := b.Get(chess.Sq(4, rank))
		if !ok || king.Kind != chess.King || king.Colour != colour || king.HasMoved {
			continue
		}
		for _, side := range []struct {
			file   int
			letter byte
		}{{7, 'K'}, {0, 'Q'}} {
			rook, ok := b.Get(chess.Sq(side.file, rank))
			if !ok || rook.Kind != chess.Rook || rook.Colour != colour || rook.HasMoved {
				continue
			}
			letter := side.letter
			if colour == chess.Black {
				letter += 'a' - 'A'
			}
			rights.WriteByte(letter)
		}
	}
	if rights.Len() == 0 {
		return "-"
	}
	return rights.String()
}

func enPassantTarget(b *chess.Board) string {
	target := "-"
	b.ForEach(func(sq chess.Square, p chess.Piece) bool {
		if p.Kind == chess.Pawn && p.JustDoubleJumped {
			target = sq.Offset(0, -p.Colour.Forward()).String()
			return false
		}
		return true
	})
	return target
}
