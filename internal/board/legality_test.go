package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var sortCells = cmpopts.SortSlices(func(a, b Pos) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
})

var emptyAsNil = cmpopts.EquateEmpty()

func cells(names ...string) []Pos {
	out := make([]Pos, 0, len(names))
	for _, n := range names {
		out = append(out, MustPos(n))
	}
	return out
}

func TestLegalMoves(t *testing.T) {
	tests := []struct {
		name     string
		layout   string
		from     string
		moves    []Pos
		captures []Pos
	}{
		{
			name:   "pawn double step from start",
			layout: StartLayout,
			from:   "e2",
			moves:  cells("e3", "e4"),
		},
		{
			name:   "pawn blocked in front",
			layout: "4k3/8/8/8/8/4n3/4P3/4K3",
			from:   "e2",
		},
		{
			name:   "pawn blocked two ahead",
			layout: "4k3/8/8/8/4n3/8/4P3/4K3",
			from:   "e2",
			moves:  cells("e3"),
		},
		{
			name:     "pawn captures diagonally only",
			layout:   "4k3/8/8/8/8/3p1N2/4P3/4K3",
			from:     "e2",
			moves:    cells("e3", "e4"),
			captures: cells("d3"),
		},
		{
			name:   "moved pawn single step",
			layout: "4k3/8/8/8/8/4P3/8/4K3",
			from:   "e3",
			moves:  cells("e4"),
		},
		{
			name:   "black pawn moves down",
			layout: StartLayout,
			from:   "d7",
			moves:  cells("d6", "d5"),
		},
		{
			name:   "knight from corner",
			layout: StartLayout,
			from:   "b1",
			moves:  cells("a3", "c3"),
		},
		{
			name:     "rook stops at first occupant",
			layout:   "4k3/8/8/8/1p1R2P1/8/8/4K3",
			from:     "d4",
			moves:    cells("c4", "e4", "f4", "d5", "d6", "d7", "d8", "d3", "d2", "d1"),
			captures: cells("b4"),
		},
		{
			name:     "bishop diagonals",
			layout:   "4k3/8/5r2/8/8/8/1B6/K7",
			from:     "b2",
			moves:    cells("c1", "a3", "c3", "d4", "e5"),
			captures: cells("f6"),
		},
		{
			name:   "king is never a capture target",
			layout: "k7/8/8/8/8/8/8/R3K3",
			from:   "a1",
			moves: cells(
				"b1", "c1", "d1",
				"a2", "a3", "a4", "a5", "a6", "a7",
			),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := MustParseLayout(tc.layout)
			got := LegalMoves(b, MustPos(tc.from))
			if diff := cmp.Diff(tc.moves, got.Moves, sortCells, emptyAsNil); diff != "" {
				t.Errorf("moves mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.captures, got.Captures, sortCells, emptyAsNil); diff != "" {
				t.Errorf("captures mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPinnedPiece(t *testing.T) {
	t.Run("rook slides along the pin", func(t *testing.T) {
		b := MustParseLayout("k3r3/8/8/8/8/8/4R3/4K3")
		got := LegalMoves(b, MustPos("e2"))
		if diff := cmp.Diff(cells("e3", "e4", "e5", "e6", "e7"), got.Moves, sortCells); diff != "" {
			t.Errorf("moves mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(cells("e8"), got.Captures); diff != "" {
			t.Errorf("captures mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("pinned knight cannot move", func(t *testing.T) {
		b := MustParseLayout("k3r3/8/8/8/8/8/4N3/4K3")
		if got := LegalMoves(b, MustPos("e2")); !got.IsEmpty() {
			t.Errorf("pinned knight has moves %+v", got)
		}
	})

	t.Run("diagonal pin keeps capture of pinner", func(t *testing.T) {
		b := MustParseLayout("k7/8/8/8/7b/8/5B2/4K3")
		got := LegalMoves(b, MustPos("f2"))
		if diff := cmp.Diff(cells("g3"), got.Moves); diff != "" {
			t.Errorf("moves mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(cells("h4"), got.Captures); diff != "" {
			t.Errorf("captures mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestCheckConstraint(t *testing.T) {
	t.Run("single check allows block or capture only", func(t *testing.T) {
		b := MustParseLayout("k3r3/8/8/8/R7/8/8/4K3")
		got := LegalMoves(b, MustPos("a4"))
		if diff := cmp.Diff(cells("e4"), got.Moves); diff != "" {
			t.Errorf("moves mismatch (-want +got):\n%s", diff)
		}
		if len(got.Captures) != 0 {
			t.Errorf("unexpected captures %v", got.Captures)
		}

		king := LegalMoves(b, MustPos("e1"))
		if diff := cmp.Diff(cells("d1", "f1", "d2", "f2"), king.Moves, sortCells); diff != "" {
			t.Errorf("king moves mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("check by knight must be captured", func(t *testing.T) {
		b := MustParseLayout("k7/8/8/8/8/3n4/8/R3KB2")
		rook := LegalMoves(b, MustPos("a1"))
		if rook.HasDestinations() {
			t.Errorf("rook cannot block a knight: %+v", rook)
		}
		bishop := LegalMoves(b, MustPos("f1"))
		if diff := cmp.Diff(cells("d3"), bishop.Captures); diff != "" {
			t.Errorf("bishop captures mismatch (-want +got):\n%s", diff)
		}
		if len(bishop.Moves) != 0 {
			t.Errorf("bishop moves %v, want none", bishop.Moves)
		}
	})

	t.Run("double check leaves only the king", func(t *testing.T) {
		b := MustParseLayout("k3r3/8/8/8/8/3n4/8/R3K3")
		if got := LegalMoves(b, MustPos("a1")); !got.IsEmpty() {
			t.Errorf("rook has moves under double check: %+v", got)
		}
		if got := LegalMoves(b, MustPos("e1")); !got.HasDestinations() {
			t.Error("king has no escape under double check")
		}
	})
}

func TestKingSafety(t *testing.T) {
	t.Run("cannot step along the attacking line", func(t *testing.T) {
		b := MustParseLayout("k3r3/8/8/8/8/8/8/4K3")
		got := LegalMoves(b, MustPos("e1"))
		for _, p := range got.Moves {
			if p.X == 4 {
				t.Errorf("king may move to %v on the rook's file", p)
			}
		}
	})

	t.Run("cannot capture a defended piece", func(t *testing.T) {
		b := MustParseLayout("k7/8/8/8/8/3r4/3q4/4K3")
		got := LegalMoves(b, MustPos("e1"))
		if got.IsCapture(MustPos("d2")) {
			t.Error("king captures a defended queen")
		}
	})

	t.Run("kings never touch", func(t *testing.T) {
		b := MustParseLayout("8/8/8/8/8/4k3/8/4K3")
		got := LegalMoves(b, MustPos("e1"))
		for _, p := range got.Moves {
			if p.Y == 1 {
				t.Errorf("king may move next to the enemy king on %v", p)
			}
		}
	})
}

func TestCastling(t *testing.T) {
	kingTos := func(m Moves) []Pos {
		var out []Pos
		for _, c := range m.Castlings {
			out = append(out, c.KingTo)
		}
		return out
	}

	tests := []struct {
		name   string
		layout string
		from   string
		want   []Pos
	}{
		{"both sides open", "r3k2r/8/8/8/8/8/8/R3K2R", "e1", cells("c1", "g1")},
		{"black both sides", "r3k2r/8/8/8/8/8/8/R3K2R", "e8", cells("c8", "g8")},
		{"path occupied", "r3k2r/8/8/8/8/8/8/RN2K1NR", "e1", nil},
		{"crossed cell attacked", "r3kr2/8/8/8/8/8/8/R3K2R", "e1", cells("c1")},
		{"destination attacked", "r3k1r1/8/8/8/8/8/8/R3K2R", "e1", cells("c1")},
		{"rook-only cell attacked is fine", "1r2k3/8/8/8/8/8/8/R3K3", "e1", cells("c1")},
		{"moved rook", "r3k2r/8/8/8/8/8/8/R3K1R1", "e1", cells("c1")},
		{"enemy rook is no partner", "4k3/8/8/8/8/8/8/r3K3", "e1", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := MustParseLayout(tc.layout)
			got := kingTos(LegalMoves(b, MustPos(tc.from)))
			if diff := cmp.Diff(tc.want, got, sortCells, emptyAsNil); diff != "" {
				t.Errorf("castling mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("moved king", func(t *testing.T) {
		b := MustParseLayout("4k3/8/8/8/8/8/8/R3K2R")
		king := b.Cell(MustPos("e1"))
		king.Piece.Moved = true
		if got := LegalMoves(b, MustPos("e1")); len(got.Castlings) != 0 {
			t.Errorf("moved king offered castling %+v", got.Castlings)
		}
	})

	t.Run("apply moves both pieces", func(t *testing.T) {
		b := MustParseLayout("4k3/8/8/8/8/8/8/R3K2R")
		c, ok := LegalMoves(b, MustPos("e1")).CastlingTo(MustPos("g1"))
		if !ok {
			t.Fatal("kingside castling not offered")
		}
		b.ApplyCastling(c)
		if got := b.Layout(); got != "4k3/8/8/8/8/8/8/R4RK1" {
			t.Errorf("layout after castling = %q", got)
		}
		if !b.PieceAt(MustPos("g1")).Moved || !b.PieceAt(MustPos("f1")).Moved {
			t.Error("castled pieces not marked moved")
		}
	})
}

// TestFilteredCellsInvariants walks every piece in a handful of crowded
// layouts and checks the properties every filtered destination must have.
func TestFilteredCellsInvariants(t *testing.T) {
	layouts := []string{
		StartLayout,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R",
		"k3r3/8/8/8/R7/8/8/4K3",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8",
	}

	for _, layout := range layouts {
		b := MustParseLayout(layout)
		for _, side := range []Side{White, Black} {
			for _, from := range b.Occupied(side) {
				m := LegalMoves(b, from)
				for _, p := range m.Moves {
					if !b.IsEmpty(p) {
						t.Errorf("%s: move %v->%v lands on an occupant", layout, from, p)
					}
					if !rayClear(b, from, p) {
						t.Errorf("%s: move %v->%v passes an occupant", layout, from, p)
					}
				}
				for _, p := range m.Captures {
					target := b.PieceAt(p)
					if target.Kind == King {
						t.Errorf("%s: %v captures a king on %v", layout, from, p)
					}
					if target.IsNone() || target.Side == side {
						t.Errorf("%s: %v captures non-enemy on %v", layout, from, p)
					}
					if !rayClear(b, from, p) {
						t.Errorf("%s: capture %v->%v passes an occupant", layout, from, p)
					}
				}
			}
		}
	}
}

// rayClear reports whether the straight cells strictly between from and to
// are empty. Knight jumps have none.
func rayClear(b *Board, from, to Pos) bool {
	dx, dy := to.X-from.X, to.Y-from.Y
	if dx != 0 && dy != 0 && abs(dx) != abs(dy) {
		return true
	}
	sx, sy := sign(dx), sign(dy)
	for p := from.Add(sx, sy); p != to; p = p.Add(sx, sy) {
		if !b.IsEmpty(p) {
			return false
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
