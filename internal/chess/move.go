package chess

// MoveClass classifies an applied move by its side effects on the board.
type MoveClass int

const (
	QuietMove        MoveClass = iota // Relocation onto an empty square
	CaptureMove                       // Destination occupant removed
	EnPassantCapture                  // Pawn beside the mover removed
	KingsideCastle                    // King two files towards the h-rook
	QueensideCastle                   // King two files towards the a-rook
)

// String returns a short name for the move class.
func (c MoveClass) String() string {
	switch c {
	case QuietMove:
		return "quiet"
	case CaptureMove:
		return "capture"
	case EnPassantCapture:
		return "en passant"
	case KingsideCastle:
		return "kingside castle"
	case QueensideCastle:
		return "queenside castle"
	}
	return "unknown"
}

// Move records one move after it has been applied to a board.
type Move struct {
	From Square
	To   Square

	// The piece as it stood before moving.
	Piece Piece

	Class MoveClass

	// The captured piece and where it stood; only set for captures.
	Captured   Piece
	CapturedAt Square

	// Set when a pawn reached the last rank.
	Promoted   bool
	PromotedTo PieceKind
}

// IsCapture reports whether the move removed an enemy piece.
func (m Move) IsCapture() bool {
	return m.Class == CaptureMove || m.Class == EnPassantCapture
}

// IsCastle reports whether the move was a castling king move.
func (m Move) IsCastle() bool {
	return m.Class == KingsideCastle || m.Class == QueensideCastle
}
