// Package game runs a two-player match on top of the board rules: it owns
// the board, tracks whose turn it is, drives the select-then-act input
// cycle and reports turn events to the surrounding UI.
package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/hailam/chessboard/internal/board"
)

var (
	// ErrNoPromotionPending is returned by ResumeWithPromotion when no
	// pawn is waiting for a promotion choice.
	ErrNoPromotionPending = errors.New("game: no promotion pending")

	// ErrInvalidPromotion is returned when the chosen kind is not one of
	// the offered candidates.
	ErrInvalidPromotion = errors.New("game: invalid promotion kind")

	// ErrInvalidSnapshot is returned when a saved game cannot be restored.
	ErrInvalidSnapshot = errors.New("game: invalid snapshot")
)

// StartingSide moves first.
const StartingSide = board.White

// Handlers are the notifications a game sends to its surroundings.
// Any of them may be nil.
type Handlers struct {
	// OnSideChanged fires once per completed turn with the side now to move.
	OnSideChanged func(side board.Side)
	// OnCapture fires before the captured piece leaves the board.
	OnCapture func(captured, by board.Piece)
	// OnGameEnd fires once, on checkmate.
	OnGameEnd func(winner board.Side)
	// OnPromotionNeeded asks for a promotion choice. The turn stays open
	// until ResumeWithPromotion is called.
	OnPromotionNeeded func(req PromotionRequest)
}

// PromotionRequest describes a pawn waiting to be replaced.
type PromotionRequest struct {
	Side       board.Side
	Cell       board.Pos
	Candidates []board.Kind
	// AnchorX and AnchorY are the pixel centre of the promotion cell.
	AnchorX, AnchorY float64
}

// Highlights is what renderers need to mark the current selection.
type Highlights struct {
	Selected  board.Pos
	Moves     []board.Pos
	Captures  []board.Pos
	Castlings []board.Pos
	// Checked is the cell of the king in check, or board.NoPos.
	Checked board.Pos
}

// Game is one match between two local players.
type Game struct {
	board    *board.Board
	width    float64
	height   float64
	handlers Handlers

	side     board.Side
	selected board.Pos
	legal    board.Moves
	checks   []board.Check
	pending  *PromotionRequest
	over     bool
	winner   board.Side
	ply      int
}

// New creates a game in the starting position on a surface of the given size.
func New(width, height float64, h Handlers) (*Game, error) {
	b, err := board.NewStandardBoard(width, height)
	if err != nil {
		return nil, fmt.Errorf("create board: %w", err)
	}
	g := &Game{
		board:    b,
		width:    width,
		height:   height,
		handlers: h,
	}
	g.reset()
	return g, nil
}

// SetHandlers replaces the notification handlers.
func (g *Game) SetHandlers(h Handlers) {
	g.handlers = h
}

// Board returns the board. Callers must not mutate it.
func (g *Game) Board() *board.Board {
	return g.board
}

// SideToMove returns the side whose turn it is.
func (g *Game) SideToMove() board.Side {
	return g.side
}

// Selected returns the selected cell, or board.NoPos.
func (g *Game) Selected() board.Pos {
	return g.selected
}

// LegalMoves returns the legal destinations of the selected piece.
func (g *Game) LegalMoves() board.Moves {
	return g.legal
}

// Checks returns the attacks on the side to move.
func (g *Game) Checks() []board.Check {
	return g.checks
}

// InCheck returns true if the side to move is in check.
func (g *Game) InCheck() bool {
	return len(g.checks) > 0
}

// IsOver returns true once a checkmate has ended the game.
func (g *Game) IsOver() bool {
	return g.over
}

// Winner returns the winning side, or board.NoSide while the game runs.
func (g *Game) Winner() board.Side {
	return g.winner
}

// Ply returns the number of completed turns.
func (g *Game) Ply() int {
	return g.ply
}

// PendingPromotion returns the open promotion request, if any.
func (g *Game) PendingPromotion() (PromotionRequest, bool) {
	if g.pending == nil {
		return PromotionRequest{}, false
	}
	return *g.pending, true
}

// Highlights returns the cells renderers should mark.
func (g *Game) Highlights() Highlights {
	h := Highlights{
		Selected: g.selected,
		Moves:    g.legal.Moves,
		Captures: g.legal.Captures,
		Checked:  board.NoPos,
	}
	for _, c := range g.legal.Castlings {
		h.Castlings = append(h.Castlings, c.KingTo)
	}
	if len(g.checks) > 0 {
		h.Checked = g.checks[0].King
	}
	return h
}

// Restart puts the game back into its starting state.
func (g *Game) Restart() {
	g.board.Clear()
	g.board.PlaceInitialPieces(board.StandardLayout)
	g.reset()
	log.Printf("[GAME] Restarted")
}

func (g *Game) reset() {
	g.side = StartingSide
	g.selected = board.NoPos
	g.legal = board.Moves{}
	g.pending = nil
	g.over = false
	g.winner = board.NoSide
	g.ply = 0
	g.checks = board.FindChecks(g.board, g.side)
}
