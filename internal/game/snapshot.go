package game

import (
	"fmt"

	"github.com/hailam/chessboard/internal/board"
)

// Snapshot is the serialisable state of a game in progress.
type Snapshot struct {
	Layout string      `json:"layout"`
	Moved  []board.Pos `json:"moved,omitempty"`
	Side   board.Side  `json:"side"`
	Ply    int         `json:"ply"`
	// Promotion is the cell of a pawn still waiting for its new kind.
	Promotion *board.Pos `json:"promotion,omitempty"`
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Layout: g.board.Layout(),
		Moved:  g.board.MovedCells(),
		Side:   g.side,
		Ply:    g.ply,
	}
	if g.pending != nil {
		cell := g.pending.Cell
		s.Promotion = &cell
	}
	return s
}

// Restore replaces the current state with a snapshot. The board is left
// untouched when the snapshot is rejected. A restored checkmate marks the
// game over without notifying; a restored pending promotion is requested
// again.
func (g *Game) Restore(s Snapshot) error {
	if s.Side != board.White && s.Side != board.Black {
		return fmt.Errorf("%w: side %d", ErrInvalidSnapshot, s.Side)
	}

	b, err := board.NewBoard(g.width, g.height)
	if err != nil {
		return err
	}
	if err := b.LoadLayout(s.Layout); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	for _, side := range []board.Side{board.White, board.Black} {
		if !b.FindKing(side).IsValid() {
			return fmt.Errorf("%w: %v king missing", ErrInvalidSnapshot, side)
		}
	}
	b.SetMovedCells(s.Moved)

	var promotion *board.Pos
	if s.Promotion != nil {
		// The pawn belongs to the side that moved last.
		pc := b.PieceAt(*s.Promotion)
		if pc.Kind != board.Pawn || pc.Side != s.Side || s.Promotion.Y != s.Side.PromotionRank() {
			return fmt.Errorf("%w: no pawn to promote on %v", ErrInvalidSnapshot, *s.Promotion)
		}
		promotion = s.Promotion
	}

	g.board = b
	g.reset()
	g.side = s.Side
	g.ply = s.Ply

	if promotion != nil {
		g.checks = board.FindChecks(g.board, g.side)
		g.requestPromotion(*promotion, s.Side)
		return nil
	}
	g.evaluate(false)
	return nil
}
