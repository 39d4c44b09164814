package board

import (
	"fmt"
	"strings"
)

// StartLayout is the diagram of the starting arrangement.
const StartLayout = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// DefaultSurface is the pixel size used for boards built from diagrams.
const DefaultSurface = 640.0

// ParseLayout builds a board from a diagram in FEN placement notation:
// eight rows separated by '/', row 7 first, uppercase for white.
func ParseLayout(placement string) (*Board, error) {
	b, err := NewBoard(DefaultSurface, DefaultSurface)
	if err != nil {
		return nil, err
	}
	if err := b.LoadLayout(placement); err != nil {
		return nil, err
	}
	return b, nil
}

// MustParseLayout is ParseLayout for diagrams known to be valid.
func MustParseLayout(placement string) *Board {
	b, err := ParseLayout(placement)
	if err != nil {
		panic(err)
	}
	return b
}

// LoadLayout replaces the board's occupants with those of the diagram.
// Pawns off their start row and kings or rooks off their home cells are
// created as already moved; everything else is unmoved.
func (b *Board) LoadLayout(placement string) error {
	rows := strings.Split(strings.TrimSpace(placement), "/")
	if len(rows) != Size {
		return fmt.Errorf("invalid layout: need 8 rows, got %d", len(rows))
	}

	b.Clear()
	for i, rowStr := range rows {
		y := Size - 1 - i // diagrams start from row 7
		x := 0

		for _, c := range rowStr {
			if x > Size-1 {
				b.Clear()
				return fmt.Errorf("too many cells in row %d", y)
			}

			if c >= '1' && c <= '8' {
				x += int(c - '0')
				continue
			}

			piece := PieceFromChar(byte(c))
			if piece.IsNone() {
				b.Clear()
				return fmt.Errorf("invalid piece character: %c", c)
			}
			p := P(x, y)
			piece.Moved = !onHomeCell(piece, p)
			b.Set(p, piece)
			x++
		}

		if x != Size {
			b.Clear()
			return fmt.Errorf("invalid number of cells in row %d: got %d", y, x)
		}
	}
	return nil
}

// onHomeCell reports whether a piece could still be unmoved at p.
func onHomeCell(piece Piece, p Pos) bool {
	switch piece.Kind {
	case Pawn:
		return p.Y == piece.Side.BackRank()+piece.Side.Forward()
	case King:
		return p == P(4, piece.Side.BackRank())
	case Rook:
		return p.Y == piece.Side.BackRank() && (p.X == 0 || p.X == Size-1)
	default:
		return true
	}
}

// Layout returns the board's diagram in FEN placement notation.
func (b *Board) Layout() string {
	var sb strings.Builder
	for y := Size - 1; y >= 0; y-- {
		empty := 0
		for x := 0; x < Size; x++ {
			pc := b.Cells[y][x].Piece
			if pc.IsNone() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if y > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// MovedCells lists the cells whose occupants carry the moved flag.
func (b *Board) MovedCells() []Pos {
	var out []Pos
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			pc := b.Cells[y][x].Piece
			if !pc.IsNone() && pc.Moved {
				out = append(out, P(x, y))
			}
		}
	}
	return out
}

// SetMovedCells resets every moved flag, then sets it on the given cells.
func (b *Board) SetMovedCells(moved []Pos) {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			b.Cells[y][x].Piece.Moved = false
		}
	}
	for _, p := range moved {
		if c := b.Cell(p); c != nil && !c.IsEmpty() {
			c.Piece.Moved = true
		}
	}
}
