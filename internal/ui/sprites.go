package ui

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/hailam/chessboard/internal/board"
)

//go:embed assets/pieces/*.svg
var pieceAssets embed.FS

// SpriteManager rasterises the embedded piece art once and draws it at any size.
type SpriteManager struct {
	pieces     map[board.Piece]*ebiten.Image
	renderSize int
}

// NewSpriteManager renders every piece at size * oversample pixels so
// that scaled-down drawing stays sharp on HiDPI screens.
func NewSpriteManager(size int, oversample float64) *SpriteManager {
	sm := &SpriteManager{
		pieces:     make(map[board.Piece]*ebiten.Image),
		renderSize: int(float64(size) * oversample),
	}
	sm.loadPieces()
	return sm
}

// pieceAsset names the SVG for a piece, e.g. "assets/pieces/wN.svg".
func pieceAsset(p board.Piece) string {
	prefix := 'w'
	if p.Side == board.Black {
		prefix = 'b'
	}
	return fmt.Sprintf("assets/pieces/%c%c.svg", prefix, p.Kind.Char()-'a'+'A')
}

// loadPieces loads all piece sprites from embedded SVG files.
func (sm *SpriteManager) loadPieces() {
	for _, side := range []board.Side{board.White, board.Black} {
		for k := board.Pawn; k <= board.King; k++ {
			piece := board.NewPiece(k, side)
			img, err := rasterizeSVG(pieceAsset(piece), sm.renderSize)
			if err != nil {
				log.Printf("Failed to load piece sprite %v: %v", piece, err)
				continue
			}
			sm.pieces[piece] = img
		}
	}
}

func rasterizeSVG(path string, size int) (*ebiten.Image, error) {
	data, err := pieceAssets.ReadFile(path)
	if err != nil {
		return nil, err
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)
	return ebiten.NewImageFromImage(rgba), nil
}

// DrawPiece draws p into the square with top-left (x, y) and side size,
// all in screen pixels. The moved flag does not affect the art.
func (sm *SpriteManager) DrawPiece(screen *ebiten.Image, p board.Piece, x, y, size float64, alpha float32) {
	if p.IsNone() {
		return
	}
	sprite := sm.pieces[board.NewPiece(p.Kind, p.Side)]
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	scale := size / float64(sprite.Bounds().Dx())
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(alpha)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}
