package board

// Ray is an ordered run of cells leading away from a piece in one direction.
type Ray []Pos

// Castling describes one castling option of a king.
type Castling struct {
	RookFrom Pos
	KingFrom Pos
	RookTo   Pos
	KingTo   Pos
	Dir      int // -1 toward column 0, +1 toward column 7
}

// Reach is the raw geometric reach of a piece, before any legality pass.
// Rays run to the board edge; obstruction is applied by the filters.
type Reach struct {
	Moves     []Ray
	Captures  []Ray
	Castlings []Castling
}

type offset struct{ dx, dy int }

var (
	diagonals  = []offset{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	orthogonal = []offset{{-1, 0}, {1, 0}, {0, 1}, {0, -1}}
	allLines   = append(append([]offset{}, diagonals...), orthogonal...)
)

var knightJumps = []offset{
	{1, 2}, {-1, 2}, {2, 1}, {2, -1},
	{-2, 1}, {-2, -1}, {1, -2}, {-1, -2},
}

type reachFunc func(b *Board, from Pos, piece Piece) Reach

// reachers maps each kind to its reach function.
var reachers = [NoKind]reachFunc{
	Pawn:   pawnReach,
	Knight: knightReach,
	Bishop: bishopReach,
	Rook:   rookReach,
	Queen:  queenReach,
	King:   kingReach,
}

// ReachFrom returns the raw reach of the piece standing on from.
func ReachFrom(b *Board, from Pos) Reach {
	piece := b.PieceAt(from)
	if piece.IsNone() {
		return Reach{}
	}
	return reachers[piece.Kind](b, from, piece)
}

// slide walks from the origin in one direction up to the board edge.
func slide(from Pos, d offset) Ray {
	var ray Ray
	for p := from.Add(d.dx, d.dy); p.IsValid(); p = p.Add(d.dx, d.dy) {
		ray = append(ray, p)
	}
	return ray
}

func slideAll(from Pos, dirs []offset) []Ray {
	rays := make([]Ray, 0, len(dirs))
	for _, d := range dirs {
		if ray := slide(from, d); len(ray) > 0 {
			rays = append(rays, ray)
		}
	}
	return rays
}

// steps builds one single-cell ray per offset that stays on the board.
func steps(from Pos, offs []offset) []Ray {
	rays := make([]Ray, 0, len(offs))
	for _, o := range offs {
		if p := from.Add(o.dx, o.dy); p.IsValid() {
			rays = append(rays, Ray{p})
		}
	}
	return rays
}

func pawnReach(_ *Board, from Pos, piece Piece) Reach {
	fwd := piece.Side.Forward()
	var r Reach

	var advance Ray
	if one := from.Add(0, fwd); one.IsValid() {
		advance = append(advance, one)
		if two := from.Add(0, 2*fwd); !piece.Moved && two.IsValid() {
			advance = append(advance, two)
		}
	}
	if len(advance) > 0 {
		r.Moves = []Ray{advance}
	}
	r.Captures = steps(from, []offset{{-1, fwd}, {1, fwd}})
	return r
}

func knightReach(_ *Board, from Pos, _ Piece) Reach {
	rays := steps(from, knightJumps)
	return Reach{Moves: rays, Captures: rays}
}

func bishopReach(_ *Board, from Pos, _ Piece) Reach {
	rays := slideAll(from, diagonals)
	return Reach{Moves: rays, Captures: rays}
}

func rookReach(_ *Board, from Pos, _ Piece) Reach {
	rays := slideAll(from, orthogonal)
	return Reach{Moves: rays, Captures: rays}
}

func queenReach(_ *Board, from Pos, _ Piece) Reach {
	rays := slideAll(from, allLines)
	return Reach{Moves: rays, Captures: rays}
}

func kingReach(b *Board, from Pos, piece Piece) Reach {
	rays := steps(from, allLines)
	return Reach{
		Moves:     rays,
		Captures:  rays,
		Castlings: castlingCandidates(b, from, piece),
	}
}

// castlingCandidates walks from an unmoved king toward each end of its row.
// The first piece met must be an unmoved rook of the same side standing
// beyond the king's destination.
func castlingCandidates(b *Board, from Pos, king Piece) []Castling {
	if king.Moved {
		return nil
	}

	var out []Castling
	for _, dir := range []int{-1, 1} {
		kingTo := from.Add(2*dir, 0)
		if !kingTo.IsValid() {
			continue
		}
		for p := from.Add(dir, 0); p.IsValid(); p = p.Add(dir, 0) {
			pc := b.PieceAt(p)
			if pc.IsNone() {
				continue
			}
			if pc.Kind == Rook && pc.Side == king.Side && !pc.Moved && (p.X-kingTo.X)*dir > 0 {
				out = append(out, Castling{
					RookFrom: p,
					KingFrom: from,
					RookTo:   from.Add(dir, 0),
					KingTo:   kingTo,
					Dir:      dir,
				})
			}
			break
		}
	}
	return out
}
