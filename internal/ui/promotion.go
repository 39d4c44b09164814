package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/game"
)

// promotionKeys are keyboard shortcuts for the picker.
var promotionKeys = map[ebiten.Key]board.Kind{
	ebiten.KeyQ: board.Queen,
	ebiten.KeyR: board.Rook,
	ebiten.KeyB: board.Bishop,
	ebiten.KeyN: board.Knight,
}

// PromotionPicker is the modal strip of candidate pieces shown over the
// promotion cell. It cannot be dismissed without a choice.
type PromotionPicker struct {
	visible  bool
	req      game.PromotionRequest
	x, y     int // logical top-left of the strip
	cell     int
	hovered  int
	onChoose func(board.Kind)
}

// NewPromotionPicker creates a hidden picker that reports choices to onChoose.
func NewPromotionPicker(onChoose func(board.Kind)) *PromotionPicker {
	return &PromotionPicker{hovered: -1, onChoose: onChoose}
}

// Show opens the picker for req.
func (pp *PromotionPicker) Show(req game.PromotionRequest) {
	pp.visible = true
	pp.req = req
	pp.hovered = -1
	pp.cell = SquareSize
	pp.x, pp.y = pickerOrigin(req.AnchorX, req.AnchorY, len(req.Candidates), pp.cell, BoardSize)
}

// Hide closes the picker.
func (pp *PromotionPicker) Hide() {
	pp.visible = false
}

// IsVisible returns true if the picker is open.
func (pp *PromotionPicker) IsVisible() bool {
	return pp.visible
}

// pickerOrigin centres a strip of n cells on the anchor and keeps it
// inside a boardSize square.
func pickerOrigin(anchorX, anchorY float64, n, cell, boardSize int) (x, y int) {
	x = int(anchorX) - n*cell/2
	y = int(anchorY) - cell/2
	x = clamp(x, 0, boardSize-n*cell)
	y = clamp(y, 0, boardSize-cell)
	return x, y
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// candidateAt returns the index of the candidate under (mx, my), or -1.
func (pp *PromotionPicker) candidateAt(mx, my int) int {
	if my < pp.y || my >= pp.y+pp.cell || mx < pp.x {
		return -1
	}
	i := (mx - pp.x) / pp.cell
	if i >= len(pp.req.Candidates) {
		return -1
	}
	return i
}

// Update handles clicks and shortcuts. Returns true if a choice was made.
func (pp *PromotionPicker) Update(input *InputHandler) bool {
	if !pp.visible {
		return false
	}

	for key, kind := range promotionKeys {
		if IsKeyJustPressed(key) {
			return pp.choose(kind)
		}
	}

	mx, my := input.MousePosition()
	pp.hovered = pp.candidateAt(mx, my)
	if input.IsLeftJustPressed() && pp.hovered >= 0 {
		return pp.choose(pp.req.Candidates[pp.hovered])
	}
	return false
}

func (pp *PromotionPicker) choose(kind board.Kind) bool {
	if !kind.CanPromoteTo() {
		return false
	}
	pp.Hide()
	if pp.onChoose != nil {
		pp.onChoose(kind)
	}
	return true
}

// AnyButtonHovered returns true if a candidate is under the pointer.
func (pp *PromotionPicker) AnyButtonHovered() bool {
	return pp.visible && pp.hovered >= 0
}

// Draw renders the dimmed board and the candidate strip.
func (pp *PromotionPicker) Draw(screen *ebiten.Image, r *Renderer) {
	if !pp.visible {
		return
	}

	vector.DrawFilledRect(screen, 0, 0, scaleF(BoardSize), scaleF(BoardSize), color.RGBA{0, 0, 0, 120}, false)

	n := len(pp.req.Candidates)
	vector.DrawFilledRect(screen, scaleF(pp.x), scaleF(pp.y), scaleF(n*pp.cell), scaleF(pp.cell), modalBg, false)
	vector.StrokeRect(screen, scaleF(pp.x), scaleF(pp.y), scaleF(n*pp.cell), scaleF(pp.cell), scaleF(2), accentColor, false)

	for i, kind := range pp.req.Candidates {
		cx := pp.x + i*pp.cell
		if i == pp.hovered {
			vector.DrawFilledRect(screen, scaleF(cx), scaleF(pp.y), scaleF(pp.cell), scaleF(pp.cell), widgetHoverBg, false)
		}
		r.Sprites().DrawPiece(screen, board.NewPiece(kind, pp.req.Side),
			scaleD(cx), scaleD(pp.y), scaleD(pp.cell), 1)
	}
}
