package board

import (
	"errors"
	"strings"
)

// ErrNoSurface is returned when the board has no drawable area to lay
// its cells out on.
var ErrNoSurface = errors.New("board: rendering surface unavailable")

// Placement puts one piece on one cell of a fresh board.
type Placement struct {
	Side   Side
	Kind   Kind
	Coords Pos
}

// StandardLayout is the initial arrangement: white on rows 0-1, black on rows 6-7.
var StandardLayout = standardLayout()

func standardLayout() []Placement {
	backRank := [Size]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	layout := make([]Placement, 0, 32)
	for _, side := range []Side{White, Black} {
		back := side.BackRank()
		pawns := back + side.Forward()
		for x := 0; x < Size; x++ {
			layout = append(layout, Placement{Side: side, Kind: Pawn, Coords: P(x, pawns)})
		}
		for x, k := range backRank {
			layout = append(layout, Placement{Side: side, Kind: k, Coords: P(x, back)})
		}
	}
	return layout
}

// Board is the 8x8 grid of cells, stored row-major as Cells[y][x].
type Board struct {
	Cells  [Size][Size]Cell
	Width  float64
	Height float64
}

// NewBoard lays out an empty grid over a surface of the given pixel size.
func NewBoard(width, height float64) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrNoSurface
	}

	b := &Board{Width: width, Height: height}
	cellW := width / Size
	cellH := height / Size

	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			startX := cellW * float64(x)
			startY := cellH * float64(y)
			b.Cells[y][x] = Cell{
				Pos:   P(x, y),
				Light: (x+y)%2 == 0,
				Rect: Rect{
					StartX: startX,
					StartY: startY,
					EndX:   startX + cellW,
					EndY:   startY + cellH,
				},
				Piece: NoPiece,
			}
		}
	}
	return b, nil
}

// NewStandardBoard creates a board with the initial arrangement in place.
func NewStandardBoard(width, height float64) (*Board, error) {
	b, err := NewBoard(width, height)
	if err != nil {
		return nil, err
	}
	b.PlaceInitialPieces(StandardLayout)
	return b, nil
}

// PlaceInitialPieces puts unmoved pieces on the cells named by layout.
func (b *Board) PlaceInitialPieces(layout []Placement) {
	for _, pl := range layout {
		if !pl.Coords.IsValid() {
			continue
		}
		b.Set(pl.Coords, NewPiece(pl.Kind, pl.Side))
	}
}

// Clear empties every cell.
func (b *Board) Clear() {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			b.Cells[y][x].Piece = NoPiece
		}
	}
}

// Cell returns the cell at p, or nil off the board.
func (b *Board) Cell(p Pos) *Cell {
	if !p.IsValid() {
		return nil
	}
	return &b.Cells[p.Y][p.X]
}

// PieceAt returns the occupant of p, or NoPiece if empty or off the board.
func (b *Board) PieceAt(p Pos) Piece {
	if !p.IsValid() {
		return NoPiece
	}
	return b.Cells[p.Y][p.X].Piece
}

// IsEmpty returns true if p is on the board and unoccupied.
func (b *Board) IsEmpty(p Pos) bool {
	return p.IsValid() && b.Cells[p.Y][p.X].Piece.IsNone()
}

// Set replaces the occupant of p.
func (b *Board) Set(p Pos, piece Piece) {
	if !p.IsValid() {
		return
	}
	b.Cells[p.Y][p.X].Piece = piece
}

// Remove empties p and returns what was there.
func (b *Board) Remove(p Pos) Piece {
	piece := b.PieceAt(p)
	b.Set(p, NoPiece)
	return piece
}

// Move relocates the occupant of from to to, marking it moved.
// Whatever stood on to is overwritten.
func (b *Board) Move(from, to Pos) Piece {
	piece := b.Remove(from)
	piece.Moved = true
	b.Set(to, piece)
	return piece
}

// CellAt maps pixel coordinates on the rendering surface to a grid position.
func (b *Board) CellAt(px, py float64) (Pos, bool) {
	if px < 0 || py < 0 || px >= b.Width || py >= b.Height {
		return NoPos, false
	}
	x := int(px / (b.Width / Size))
	y := int(py / (b.Height / Size))
	p := P(x, y)
	return p, p.IsValid()
}

// FindKing returns the cell of side's king, or NoPos if there is none.
func (b *Board) FindKing(side Side) Pos {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			pc := b.Cells[y][x].Piece
			if pc.Kind == King && pc.Side == side {
				return P(x, y)
			}
		}
	}
	return NoPos
}

// Occupied returns the positions of all of side's pieces in row-major order.
func (b *Board) Occupied(side Side) []Pos {
	var out []Pos
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			pc := b.Cells[y][x].Piece
			if !pc.IsNone() && pc.Side == side {
				out = append(out, P(x, y))
			}
		}
	}
	return out
}

// Clone creates a deep copy of the board.
func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}

// String returns an ASCII diagram, row 7 at the top.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  +-----------------+\n")
	for y := Size - 1; y >= 0; y-- {
		sb.WriteByte('1' + byte(y))
		sb.WriteString(" | ")
		for x := 0; x < Size; x++ {
			pc := b.Cells[y][x].Piece
			if pc.IsNone() {
				sb.WriteByte('.')
			} else {
				sb.WriteString(pc.String())
			}
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("  +-----------------+\n")
	sb.WriteString("    a b c d e f g h\n")
	return sb.String()
}
