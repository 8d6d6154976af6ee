package chess

import (
	"sort"

	"golang.org/x/exp/maps"
)

// Board is the occupancy relation from square to piece. At most one piece
// occupies a square and only on-board squares are ever stored.
type Board struct {
	pieces map[Square]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{pieces: make(map[Square]Piece, 32)}
}

// NewInitialBoard creates a board holding the standard 32-piece setup.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	// Clear the board first
	b.pieces = make(map[Square]Piece, 32)

	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.pieces[Sq(file, 0)] = W(backRank[file])
		b.pieces[Sq(file, 1)] = W(Pawn)
		b.pieces[Sq(file, 6)] = B(Pawn)
		b.pieces[Sq(file, 7)] = B(backRank[file])
	}
}

// Get returns the piece on sq and whether the square is occupied.
// Off-board squares are always empty.
func (b *Board) Get(sq Square) (Piece, bool) {
	p, ok := b.pieces[sq]
	return p, ok
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	_, ok := b.pieces[sq]
	return !ok
}

// Set places a piece on sq, replacing any occupant. Off-board squares are ignored.
func (b *Board) Set(sq Square, p Piece) {
	if !sq.Valid() {
		return
	}
	b.pieces[sq] = p
}

// Remove clears sq and returns the piece that was there, if any.
func (b *Board) Remove(sq Square) (Piece, bool) {
	p, ok := b.pieces[sq]
	if ok {
		delete(b.pieces, sq)
	}
	return p, ok
}

// Len returns the number of pieces on the board.
func (b *Board) Len() int {
	return len(b.pieces)
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{pieces: make(map[Square]Piece, len(b.pieces))}
	for sq, p := range b.pieces {
		newBoard.pieces[sq] = p
	}
	return newBoard
}

// Squares returns the occupied squares in a1..h8 order.
func (b *Board) Squares() []Square {
	squares := maps.Keys(b.pieces)
	sort.Slice(squares, func(i, j int) bool { return squares[i].Less(squares[j]) })
	return squares
}

// ForEach calls fn for every occupied square in no particular order, stopping
// early when fn returns false. fn must not add or remove pieces.
func (b *Board) ForEach(fn func(sq Square, p Piece) bool) {
	for sq, p := range b.pieces {
		if !fn(sq, p) {
			return
		}
	}
}

// Snapshot returns a copy of the occupancy relation for read-only use by callers.
func (b *Board) Snapshot() map[Square]Piece {
	snap := make(map[Square]Piece, len(b.pieces))
	for sq, p := range b.pieces {
		snap[sq] = p
	}
	return snap
}

// FindKing finds the king of the given colour on the board.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for sq, p := range b.pieces {
		if p.Kind == King && p.Colour == colour {
			return sq, true
		}
	}
	return Square{}, false
}
