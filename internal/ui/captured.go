package ui

import (
	"sort"

	"github.com/hailam/chessboard/internal/board"
)

// CapturedTrays holds the pieces each side has taken, indexed by the
// capturing side.
type CapturedTrays [2][]board.Piece

// Add records that by took captured.
func (t *CapturedTrays) Add(captured, by board.Piece) {
	if by.Side > board.Black {
		return
	}
	t[by.Side] = append(t[by.Side], board.NewPiece(captured.Kind, captured.Side))
	sortTray(t[by.Side])
}

// Reset empties both trays.
func (t *CapturedTrays) Reset() {
	t[board.White] = nil
	t[board.Black] = nil
}

// Material returns the summed piece values in side's tray.
func (t *CapturedTrays) Material(side board.Side) int {
	total := 0
	for _, p := range t[side] {
		total += pieceValue[p.Kind]
	}
	return total
}

var pieceValue = map[board.Kind]int{
	board.Pawn:   1,
	board.Knight: 3,
	board.Bishop: 3,
	board.Rook:   5,
	board.Queen:  9,
}

// capturedFromBoard rebuilds the trays for a restored game by comparing
// the pieces left on b against the starting set. A promoted pawn shows up
// as a missing pawn and an extra piece, so surplus kinds are ignored.
func capturedFromBoard(b *board.Board) CapturedTrays {
	var remaining [2]map[board.Kind]int
	for _, side := range []board.Side{board.White, board.Black} {
		remaining[side] = make(map[board.Kind]int)
		for _, p := range b.Occupied(side) {
			remaining[side][b.PieceAt(p).Kind]++
		}
	}

	start := [2]map[board.Kind]int{make(map[board.Kind]int), make(map[board.Kind]int)}
	for _, pl := range board.StandardLayout {
		start[pl.Side][pl.Kind]++
	}

	var trays CapturedTrays
	for _, side := range []board.Side{board.White, board.Black} {
		for k := board.Pawn; k < board.King; k++ {
			for n := start[side][k] - remaining[side][k]; n > 0; n-- {
				taker := side.Other()
				trays[taker] = append(trays[taker], board.NewPiece(k, side))
			}
		}
	}
	sortTray(trays[board.White])
	sortTray(trays[board.Black])
	return trays
}

// sortTray orders pieces by value, most valuable first.
func sortTray(tray []board.Piece) {
	sort.SliceStable(tray, func(i, j int) bool {
		return pieceValue[tray[i].Kind] > pieceValue[tray[j].Kind]
	})
}
