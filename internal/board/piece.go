package board

// Side represents the color of a piece or player.
type Side uint8

const (
	White Side = iota
	Black
	NoSide Side = 2
)

// Other returns the opposite side.
func (s Side) Other() Side {
	return s ^ 1
}

// Forward returns the y step a pawn of this side advances by.
// White starts on rows 0-1 and moves toward row 7.
func (s Side) Forward() int {
	if s == White {
		return 1
	}
	return -1
}

// BackRank returns the row holding this side's king and rooks at the start.
func (s Side) BackRank() int {
	if s == White {
		return 0
	}
	return 7
}

// PromotionRank returns the farthest row for this side's pawns.
func (s Side) PromotionRank() int {
	return s.Other().BackRank()
}

// String returns the side name.
func (s Side) String() string {
	switch s {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoSide"
	}
}

// Kind represents the type of a chess piece.
type Kind uint8

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoKind Kind = 6
)

// PromotionKinds lists the kinds a pawn may become, in picker order.
var PromotionKinds = []Kind{Queen, Rook, Bishop, Knight}

// String returns the piece kind name.
func (k Kind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the diagram character for the kind (lowercase).
func (k Kind) Char() byte {
	chars := []byte{'p', 'n', 'b', 'r', 'q', 'k', ' '}
	if k > NoKind {
		return ' '
	}
	return chars[k]
}

// CanBeCaptured reports whether a piece of this kind is ever a capture target.
// Kings are never captured; the game ends at checkmate first.
func (k Kind) CanBeCaptured() bool {
	return k != King && k != NoKind
}

// CanPromoteTo reports whether a pawn may be replaced by this kind.
func (k Kind) CanPromoteTo() bool {
	for _, pk := range PromotionKinds {
		if pk == k {
			return true
		}
	}
	return false
}

// Piece is the occupant of a cell. The zero value of Kind is Pawn,
// so empty cells hold NoPiece rather than Piece{}.
type Piece struct {
	Kind  Kind
	Side  Side
	Moved bool
}

// NoPiece marks an empty cell.
var NoPiece = Piece{Kind: NoKind, Side: NoSide}

// NewPiece creates an unmoved piece.
func NewPiece(k Kind, s Side) Piece {
	if k >= NoKind || s >= NoSide {
		return NoPiece
	}
	return Piece{Kind: k, Side: s}
}

// IsNone returns true for the empty-cell marker.
func (p Piece) IsNone() bool {
	return p.Kind >= NoKind
}

// String returns the diagram character for the piece.
// Uppercase for white, lowercase for black.
func (p Piece) String() string {
	if p.IsNone() {
		return " "
	}
	c := p.Kind.Char()
	if p.Side == White {
		c -= 'a' - 'A'
	}
	return string(c)
}

// PieceFromChar converts a diagram character to an unmoved Piece.
func PieceFromChar(c byte) Piece {
	side := White
	if c >= 'a' && c <= 'z' {
		side = Black
		c -= 'a' - 'A'
	}
	switch c {
	case 'P':
		return NewPiece(Pawn, side)
	case 'N':
		return NewPiece(Knight, side)
	case 'B':
		return NewPiece(Bishop, side)
	case 'R':
		return NewPiece(Rook, side)
	case 'Q':
		return NewPiece(Queen, side)
	case 'K':
		return NewPiece(King, side)
	default:
		return NoPiece
	}
}
