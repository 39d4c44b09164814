package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/game"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	LegalMoveColor color.RGBA
	CaptureColor   color.RGBA
	CastlingColor  color.RGBA
	CheckColor     color.RGBA
	Background     color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{240, 217, 181, 255}, // tan
		DarkSquare:     color.RGBA{181, 136, 99, 255},  // brown
		SelectedSquare: color.RGBA{247, 247, 105, 180},
		LegalMoveColor: color.RGBA{130, 151, 105, 200},
		CaptureColor:   color.RGBA{200, 80, 60, 210},
		CastlingColor:  color.RGBA{90, 140, 220, 220},
		CheckColor:     color.RGBA{255, 100, 100, 180},
		Background:     color.RGBA{40, 44, 52, 255},
	}
}

// Renderer draws the board, its highlights and pieces. Cell geometry comes
// from the board's own pixel rectangles, scaled for HiDPI.
type Renderer struct {
	sprites *SpriteManager
	theme   *Theme
	scale   float64
}

// NewRenderer creates a renderer for cells of squareSize logical pixels.
func NewRenderer(squareSize int) *Renderer {
	return &Renderer{
		sprites: NewSpriteManager(squareSize, 3.0),
		theme:   DefaultTheme(),
		scale:   1.0,
	}
}

// SetScale sets the HiDPI scale factor for rendering.
func (r *Renderer) SetScale(scale float64) {
	r.scale = scale
}

// cellBounds returns the screen rectangle of a cell.
func (r *Renderer) cellBounds(b *board.Board, p board.Pos) (x, y, w, h float32, ok bool) {
	c := b.Cell(p)
	if c == nil {
		return 0, 0, 0, 0, false
	}
	s := r.scale
	return float32(c.Rect.StartX * s), float32(c.Rect.StartY * s),
		float32(c.Rect.Width() * s), float32(c.Rect.Height() * s), true
}

func (r *Renderer) fillCell(screen *ebiten.Image, b *board.Board, p board.Pos, c color.RGBA) {
	if x, y, w, h, ok := r.cellBounds(b, p); ok {
		vector.DrawFilledRect(screen, x, y, w, h, c, false)
	}
}

// DrawBoard draws the cells and their coordinate labels.
func (r *Renderer) DrawBoard(screen *ebiten.Image, b *board.Board) {
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			c := r.theme.DarkSquare
			if b.Cells[y][x].Light {
				c = r.theme.LightSquare
			}
			r.fillCell(screen, b, board.P(x, y), c)
		}
	}
	r.drawCoordinates(screen, b)
}

// drawCoordinates labels rows along the left edge and files along the last row.
func (r *Renderer) drawCoordinates(screen *ebiten.Image, b *board.Board) {
	face := GetScaledFace(coordFontSize)
	if face == nil {
		return
	}
	for i := 0; i < board.Size; i++ {
		row := b.Cells[i][0]
		c := r.labelColor(row.Light)
		drawTextAt(screen, string(rune('1'+i)), face, int(row.Rect.StartX)+3, int(row.Rect.StartY)+2, c, alignTopLeft)

		col := b.Cells[board.Size-1][i]
		w, h := MeasureText("a", face)
		lx := int(col.Rect.EndX - (w/UIScale + 3))
		ly := int(col.Rect.EndY - (h/UIScale + 2))
		drawTextAt(screen, string(rune('a'+i)), face, lx, ly, r.labelColor(col.Light), alignTopLeft)
	}
}

// labels take the opposite cell color
func (r *Renderer) labelColor(light bool) color.RGBA {
	if light {
		return r.theme.DarkSquare
	}
	return r.theme.LightSquare
}

// DrawSelection highlights the selected cell.
func (r *Renderer) DrawSelection(screen *ebiten.Image, b *board.Board, selected board.Pos) {
	if selected.IsValid() {
		r.fillCell(screen, b, selected, r.theme.SelectedSquare)
	}
}

// DrawHighlights marks the legal destinations of the selected piece: dots
// for moves, rings for captures and an inset frame for castling.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, b *board.Board, h game.Highlights) {
	for _, p := range h.Moves {
		if x, y, w, hh, ok := r.cellBounds(b, p); ok {
			vector.DrawFilledCircle(screen, x+w/2, y+hh/2, w*0.15, r.theme.LegalMoveColor, true)
		}
	}
	for _, p := range h.Captures {
		if x, y, w, hh, ok := r.cellBounds(b, p); ok {
			vector.StrokeCircle(screen, x+w/2, y+hh/2, w*0.44, w*0.07, r.theme.CaptureColor, true)
		}
	}
	for _, p := range h.Castlings {
		if x, y, w, hh, ok := r.cellBounds(b, p); ok {
			inset := w * 0.08
			vector.StrokeRect(screen, x+inset, y+inset, w-2*inset, hh-2*inset, w*0.05, r.theme.CastlingColor, false)
		}
	}
}

// DrawCheck highlights the cell of a king in check.
func (r *Renderer) DrawCheck(screen *ebiten.Image, b *board.Board, king board.Pos) {
	if king.IsValid() {
		r.fillCell(screen, b, king, r.theme.CheckColor)
	}
}

// DrawPieces draws all pieces, offset by any running shake animation.
func (r *Renderer) DrawPieces(screen *ebiten.Image, b *board.Board, anims *AnimationManager) {
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			p := board.P(x, y)
			piece := b.PieceAt(p)
			if piece.IsNone() {
				continue
			}
			sx, sy, w, _, _ := r.cellBounds(b, p)
			offset := anims.ShakeOffset(p) * r.scale
			r.sprites.DrawPiece(screen, piece, float64(sx)+offset, float64(sy), float64(w), 1)
		}
	}
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

// Sprites returns the sprite manager.
func (r *Renderer) Sprites() *SpriteManager {
	return r.sprites
}
