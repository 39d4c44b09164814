// Package board implements the cell-based chess board and its rules:
// per-piece reach, legality filtering, attack maps, check and checkmate.
package board

import "fmt"

// Size is the number of cells along each side of the board.
const Size = 8

// Pos addresses a cell by column x and row y, both 0-7.
// Row 0 is the first row drawn from the board's rendering origin.
type Pos struct {
	X, Y int
}

// NoPos is returned where no cell applies.
var NoPos = Pos{X: -1, Y: -1}

// P is shorthand for Pos{x, y}.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// IsValid returns true if the position lies on the board.
func (p Pos) IsValid() bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

// Add returns the position offset by (dx, dy).
func (p Pos) Add(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// String returns the algebraic name of the cell (e.g., "e1" for (4,0)).
func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+p.X, '1'+p.Y)
}

// ParsePos parses an algebraic cell name (e.g., "e4") into a Pos.
func ParsePos(s string) (Pos, error) {
	if len(s) != 2 {
		return NoPos, fmt.Errorf("invalid cell: %s", s)
	}

	x := int(s[0] - 'a')
	y := int(s[1] - '1')
	p := Pos{X: x, Y: y}
	if !p.IsValid() {
		return NoPos, fmt.Errorf("invalid cell: %s", s)
	}
	return p, nil
}

// MustPos is ParsePos for literals known to be valid.
func MustPos(s string) Pos {
	p, err := ParsePos(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Rect is a cell's pixel bounds on the rendering surface.
type Rect struct {
	StartX, StartY float64
	EndX, EndY     float64
}

// Contains returns true if the pixel lies within the bounds, edges included.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.StartX && px <= r.EndX && py >= r.StartY && py <= r.EndY
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.EndX - r.StartX
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.EndY - r.StartY
}

// Cell is one of the 64 board positions. Color and geometry are fixed at
// board creation; only the occupant changes.
type Cell struct {
	Pos   Pos
	Light bool
	Rect  Rect
	Piece Piece
}

// IsEmpty returns true if no piece occupies the cell.
func (c *Cell) IsEmpty() bool {
	return c.Piece.IsNone()
}
