// Package chess provides core chess types and operations.
package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Letter returns the single letter used for the colour in move records.
func (c Colour) Letter() byte {
	if c == White {
		return 'W'
	}
	return 'B'
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (for pawn direction).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank the colour starts on.
func (c Colour) HomeRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PromotionRank returns the farthest rank for the colour's pawns.
func (c Colour) PromotionRank() int {
	return c.Opposite().HomeRank()
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is a piece as it sits on the board. Its square is the board key,
// never a field, so the two cannot disagree.
type Piece struct {
	Colour Colour
	Kind   PieceKind

	// HasMoved becomes true the first time the piece is relocated.
	HasMoved bool

	// JustDoubleJumped is true only for a pawn whose latest move, made on the
	// immediately preceding ply, was a two-rank advance.
	JustDoubleJumped bool
}

// NewPiece returns an unmoved piece.
func NewPiece(colour Colour, kind PieceKind) Piece {
	return Piece{Colour: colour, Kind: kind}
}

// W creates an unmoved white piece.
func W(kind PieceKind) Piece {
	return NewPiece(White, kind)
}

// B creates an unmoved black piece.
func B(kind PieceKind) Piece {
	return NewPiece(Black, kind)
}

// String returns a short description such as "White Knight".
func (p Piece) String() string {
	return p.Colour.String() + " " + p.Kind.String()
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	FileBase = 'a'
	RankBase = '1'
)

// Square is a board coordinate. File 0 is the a-file, rank 0 is White's back rank.
type Square struct {
	File int
	Rank int
}

// Sq is shorthand for Square{File: file, Rank: rank}.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square df files and dr ranks away. The result may be off the board.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return string([]byte{byte(FileBase + s.File), byte(RankBase + s.Rank)})
}

// Delta returns the absolute file and rank distances between s and o.
func (s Square) Delta(o Square) (files, ranks int) {
	files, ranks = o.File-s.File, o.Rank-s.Rank
	if files < 0 {
		files = -files
	}
	if ranks < 0 {
		ranks = -ranks
	}
	return files, ranks
}

// Less orders squares rank first, then file (a1, b1, ... h8).
func (s Square) Less(o Square) bool {
	if s.Rank != o.Rank {
		return s.Rank < o.Rank
	}
	return s.File < o.File
}

// ParseSquare converts an algebraic square name such as "e4" into a Square.
func ParseSquare(name string) (Square, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) != 2 {
		return Square{}, errors.Wrapf(errors.ErrInvalidSquare, "%q", name)
	}
	sq := Square{File: int(name[0]) - FileBase, Rank: int(name[1]) - RankBase}
	if !sq.Valid() {
		return Square{}, errors.Wrapf(errors.ErrInvalidSquare, "%q", name)
	}
	return sq, nil
}

// MustParseSquare is like ParseSquare but panics on bad input.
// It is intended for constants and tests.
func MustParseSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}
