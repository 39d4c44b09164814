package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCheckmate(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		side   Side
		want   bool
	}{
		// White rook on a8, black king boxed in by its own pawns.
		{"back rank mate", "R6k/6pp/8/8/8/8/8/K7", Black, true},
		{"mating rook removed", "7k/6pp/8/8/8/8/8/K7", Black, false},
		// The king can take the undefended rook.
		{"king captures attacker", "6Rk/8/8/8/8/8/8/K7", Black, false},
		// Queen on g7 defended by the king on g6.
		{"queen and king mate", "7k/6Q1/6K1/8/8/8/8/8", Black, true},
		// Same, but a black rook on a7 can take the queen.
		{"ally captures attacker", "7k/r5Q1/6K1/8/8/8/8/8", Black, false},
		// Back rank mate that a bishop on c4 can block on g8.
		{"ally blocks", "R6k/6pp/8/8/2b5/8/8/K7", Black, false},
		{"starting position", StartLayout, White, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := ParseLayout(tc.layout)
			if err != nil {
				t.Fatalf("ParseLayout(%q): %v", tc.layout, err)
			}
			if got := IsCheckmate(b, tc.side); got != tc.want {
				t.Log(b)
				t.Errorf("IsCheckmate(%v) = %v, want %v", tc.side, got, tc.want)
			}
		})
	}
}

func TestFindChecks(t *testing.T) {
	sortPos := cmpopts.SortSlices(func(a, b Pos) bool {
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	t.Run("rook on open file", func(t *testing.T) {
		b := MustParseLayout("k3r3/8/8/8/8/8/8/4K3")
		checks := FindChecks(b, White)
		want := []Check{{
			Attacker: MustPos("e8"),
			King:     MustPos("e1"),
			Blocks: []Pos{
				MustPos("e7"), MustPos("e6"), MustPos("e5"),
				MustPos("e4"), MustPos("e3"), MustPos("e2"),
			},
		}}
		if diff := cmp.Diff(want, checks); diff != "" {
			t.Errorf("FindChecks mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("knight has no blocking cells", func(t *testing.T) {
		b := MustParseLayout("k7/8/8/8/8/3n4/8/4K3")
		checks := FindChecks(b, White)
		if len(checks) != 1 {
			t.Fatalf("got %d checks, want 1", len(checks))
		}
		if len(checks[0].Blocks) != 0 {
			t.Errorf("knight check has blocks %v", checks[0].Blocks)
		}
	})

	t.Run("double check", func(t *testing.T) {
		b := MustParseLayout("k3r3/8/8/8/8/3n4/8/4K3")
		checks := FindChecks(b, White)
		attackers := make([]Pos, 0, len(checks))
		for _, c := range checks {
			attackers = append(attackers, c.Attacker)
		}
		want := []Pos{MustPos("d3"), MustPos("e8")}
		if diff := cmp.Diff(want, attackers, sortPos); diff != "" {
			t.Errorf("attackers mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("blocked line is no check", func(t *testing.T) {
		b := MustParseLayout("k3r3/8/8/4p3/8/8/8/4K3")
		if InCheck(b, White) {
			t.Error("InCheck = true through a blocker")
		}
	})
}

// TestBlocksLieBetween checks that every blocking cell is on the straight
// line strictly between attacker and king.
func TestBlocksLieBetween(t *testing.T) {
	layouts := []string{
		"k6q/8/8/8/8/8/8/K7",
		"k7/8/8/8/8/8/8/K6r",
		"k7/8/8/8/b7/8/8/3K4",
		"k7/8/8/8/8/8/2p5/3K4",
	}

	for _, layout := range layouts {
		b := MustParseLayout(layout)
		for _, c := range FindChecks(b, White) {
			dx, dy := sign(c.King.X-c.Attacker.X), sign(c.King.Y-c.Attacker.Y)
			p := c.Attacker
			for i, blk := range c.Blocks {
				p = p.Add(dx, dy)
				if blk != p {
					t.Errorf("%s: block %d = %v, want %v", layout, i, blk, p)
				}
				if !b.IsEmpty(blk) {
					t.Errorf("%s: block %v is occupied", layout, blk)
				}
			}
			if len(c.Blocks) > 0 && p.Add(dx, dy) != c.King {
				t.Errorf("%s: blocks %v stop short of king %v", layout, c.Blocks, c.King)
			}
		}
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
