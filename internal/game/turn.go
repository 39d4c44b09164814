package game

import (
	"fmt"
	"log"

	"github.com/hailam/chessboard/internal/board"
)

// SelectOrAct handles a click at pixel coordinates on the board surface.
// Clicks outside the board are ignored.
func (g *Game) SelectOrAct(px, py float64) {
	pos, ok := g.board.CellAt(px, py)
	if !ok {
		return
	}
	g.Select(pos)
}

// Select drives the selection cycle for one grid cell. With nothing
// selected, an own piece becomes the selection. With a piece selected, a
// legal destination executes the move and anything else is treated as a
// fresh selection. Input is ignored while a promotion is pending and after
// the game has ended.
func (g *Game) Select(pos board.Pos) {
	if g.over || g.pending != nil || !pos.IsValid() {
		return
	}

	if g.selected.IsValid() {
		from := g.selected
		if c, ok := g.legal.CastlingTo(pos); ok {
			g.clearSelection()
			g.executeCastling(c)
			return
		}
		if g.legal.Allows(pos) {
			g.clearSelection()
			g.executeMove(from, pos)
			return
		}
	}

	g.selectCell(pos)
}

func (g *Game) selectCell(pos board.Pos) {
	piece := g.board.PieceAt(pos)
	if piece.IsNone() || piece.Side != g.side {
		g.clearSelection()
		return
	}
	g.selected = pos
	g.legal = board.LegalMoves(g.board, pos)
}

func (g *Game) clearSelection() {
	g.selected = board.NoPos
	g.legal = board.Moves{}
}

// executeMove relocates a piece, reporting any capture before the captured
// piece is removed. A pawn reaching the far row suspends the turn.
func (g *Game) executeMove(from, to board.Pos) {
	mover := g.board.PieceAt(from)
	if target := g.board.PieceAt(to); !target.IsNone() && target.Side != mover.Side {
		log.Printf("[MOVE] %v %v takes %v on %v", mover.Side, mover.Kind, target.Kind, to)
		if g.handlers.OnCapture != nil {
			g.handlers.OnCapture(target, mover)
		}
		g.board.Remove(to)
	}

	g.board.Move(from, to)
	log.Printf("[MOVE] %v %v %v-%v", mover.Side, mover.Kind, from, to)

	if mover.Kind == board.Pawn && to.Y == mover.Side.PromotionRank() {
		g.requestPromotion(to, mover.Side)
		return
	}
	g.finishTurn()
}

// executeCastling moves king and rook together, then ends the turn.
func (g *Game) executeCastling(c board.Castling) {
	g.board.ApplyCastling(c)
	log.Printf("[MOVE] %v castles %v-%v", g.side, c.KingFrom, c.KingTo)
	g.finishTurn()
}

func (g *Game) requestPromotion(cell board.Pos, side board.Side) {
	rect := g.board.Cell(cell).Rect
	req := PromotionRequest{
		Side:       side,
		Cell:       cell,
		Candidates: append([]board.Kind(nil), board.PromotionKinds...),
		AnchorX:    rect.StartX + rect.Width()/2,
		AnchorY:    rect.StartY + rect.Height()/2,
	}
	g.pending = &req
	log.Printf("[MOVE] %v pawn promotes on %v, awaiting choice", side, cell)
	if g.handlers.OnPromotionNeeded != nil {
		g.handlers.OnPromotionNeeded(req)
	}
}

// ResumeWithPromotion replaces the waiting pawn with kind and completes
// the suspended turn.
func (g *Game) ResumeWithPromotion(kind board.Kind) error {
	if g.pending == nil {
		return ErrNoPromotionPending
	}
	if !containsKind(g.pending.Candidates, kind) {
		return fmt.Errorf("%w: %v", ErrInvalidPromotion, kind)
	}

	req := *g.pending
	g.pending = nil
	g.board.Set(req.Cell, board.Piece{Kind: kind, Side: req.Side, Moved: true})
	log.Printf("[MOVE] %v pawn on %v becomes %v", req.Side, req.Cell, kind)
	g.finishTurn()
	return nil
}

// finishTurn hands the move to the other side and re-evaluates check.
func (g *Game) finishTurn() {
	g.ply++
	g.side = g.side.Other()
	if g.handlers.OnSideChanged != nil {
		g.handlers.OnSideChanged(g.side)
	}
	g.evaluate(true)
}

// evaluate recomputes check for the side to move and ends the game on
// checkmate. notify controls whether OnGameEnd fires.
func (g *Game) evaluate(notify bool) {
	g.checks = board.FindChecks(g.board, g.side)
	if len(g.checks) == 0 {
		return
	}
	log.Printf("[GAME] %v is in check", g.side)
	if board.HasLegalMove(g.board, g.side) {
		return
	}

	g.over = true
	g.winner = g.side.Other()
	log.Printf("[GAME] Checkmate, %v wins", g.winner)
	if notify && g.handlers.OnGameEnd != nil {
		g.handlers.OnGameEnd(g.winner)
	}
}

func containsKind(kinds []board.Kind, k board.Kind) bool {
	for _, c := range kinds {
		if c == k {
			return true
		}
	}
	return false
}
