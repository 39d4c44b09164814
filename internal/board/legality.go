package board

// Moves is the legal result for one selected piece.
type Moves struct {
	Moves     []Pos
	Captures  []Pos
	Castlings []Castling
}

// HasDestinations returns true if there is any legal move or capture.
func (m Moves) HasDestinations() bool {
	return len(m.Moves) > 0 || len(m.Captures) > 0
}

// IsEmpty returns true if nothing at all is legal, castling included.
func (m Moves) IsEmpty() bool {
	return !m.HasDestinations() && len(m.Castlings) == 0
}

// Allows returns true if to is a legal move or capture destination.
func (m Moves) Allows(to Pos) bool {
	return containsPos(m.Moves, to) || containsPos(m.Captures, to)
}

// IsCapture returns true if to is a legal capture destination.
func (m Moves) IsCapture(to Pos) bool {
	return containsPos(m.Captures, to)
}

// CastlingTo returns the castling option whose king lands on to.
func (m Moves) CastlingTo(to Pos) (Castling, bool) {
	for _, c := range m.Castlings {
		if c.KingTo == to {
			return c, true
		}
	}
	return Castling{}, false
}

// Priority limits filtered destinations to a fixed set of cells.
// A nil Priority allows every cell; an empty non-nil one allows none.
type Priority map[Pos]bool

// NewPriority creates a Priority admitting exactly the given cells.
func NewPriority(cells ...Pos) Priority {
	pr := make(Priority, len(cells))
	for _, c := range cells {
		pr[c] = true
	}
	return pr
}

// Allows returns true if p passes the restriction.
func (pr Priority) Allows(p Pos) bool {
	return pr == nil || pr[p]
}

// Intersect returns the cells admitted by both restrictions.
func (pr Priority) Intersect(other Priority) Priority {
	if pr == nil {
		return other
	}
	if other == nil {
		return pr
	}
	out := make(Priority)
	for p := range pr {
		if other[p] {
			out[p] = true
		}
	}
	return out
}

// FilterMoves walks each ray from the selected cell and keeps the empty
// cells before the first occupied one, which ends the ray.
func FilterMoves(b *Board, from Pos, rays []Ray, priority Priority) []Pos {
	var out []Pos
	for _, ray := range rays {
		for _, p := range ray {
			if !b.IsEmpty(p) {
				break
			}
			if priority.Allows(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

// FilterCaptures walks each ray and keeps the first occupant if it is an
// enemy that can be captured. A friendly piece or a king ends the ray
// with no capture.
func FilterCaptures(b *Board, from Pos, rays []Ray, priority Priority) []Pos {
	side := b.PieceAt(from).Side
	var out []Pos
	for _, ray := range rays {
		for _, p := range ray {
			target := b.PieceAt(p)
			if target.IsNone() {
				continue
			}
			if target.Side != side && target.Kind.CanBeCaptured() && priority.Allows(p) {
				out = append(out, p)
			}
			break
		}
	}
	return out
}

// LegalMoves returns every legal destination of the piece on from,
// regardless of whose turn it is.
func LegalMoves(b *Board, from Pos) Moves {
	piece := b.PieceAt(from)
	if piece.IsNone() {
		return Moves{}
	}

	reach := ReachFrom(b, from)
	if piece.Kind == King {
		return kingMoves(b, from, piece, reach)
	}

	movePr, capturePr, ok := checkPriority(FindChecks(b, piece.Side))
	if !ok {
		return Moves{}
	}
	pinMove, pinCapture, ok := pinPriority(b, from, piece.Side)
	if !ok {
		return Moves{}
	}
	movePr = movePr.Intersect(pinMove)
	capturePr = capturePr.Intersect(pinCapture)

	return Moves{
		Moves:    FilterMoves(b, from, reach.Moves, movePr),
		Captures: FilterCaptures(b, from, reach.Captures, capturePr),
	}
}

// checkPriority turns the active checks into move and capture restrictions.
// Under double check no piece but the king may move, reported as !ok.
func checkPriority(checks []Check) (moves, captures Priority, ok bool) {
	switch len(checks) {
	case 0:
		return nil, nil, true
	case 1:
		return NewPriority(checks[0].Blocks...), NewPriority(checks[0].Attacker), true
	default:
		return nil, nil, false
	}
}

// pinPriority traces the attacks that would reach side's king if the piece
// on from stepped away. More than one such attacker leaves no legal move;
// exactly one restricts the piece to blocking or capturing it.
func pinPriority(b *Board, from Pos, side Side) (moves, captures Priority, ok bool) {
	active := make(map[Pos]bool)
	for _, c := range FindChecks(b, side) {
		active[c.Attacker] = true
	}

	var exposed []Check
	for _, c := range findChecks(b, side, from) {
		if !active[c.Attacker] {
			exposed = append(exposed, c)
		}
	}

	switch len(exposed) {
	case 0:
		return nil, nil, true
	case 1:
		return NewPriority(exposed[0].Blocks...), NewPriority(exposed[0].Attacker), true
	default:
		return nil, nil, false
	}
}

// kingMoves applies the king-safety pass: every candidate attacked by an
// enemy piece, computed with the king's own cell vacated, is dropped.
func kingMoves(b *Board, from Pos, king Piece, reach Reach) Moves {
	enemy := Attacks(b, king.Side.Other(), from)
	safe := func(cells []Pos) []Pos {
		var out []Pos
		for _, p := range cells {
			if !enemy.IsAttacked(p) {
				out = append(out, p)
			}
		}
		return out
	}

	var castlings []Castling
	for _, c := range reach.Castlings {
		if castlingPathSafe(b, c, enemy) {
			castlings = append(castlings, c)
		}
	}

	return Moves{
		Moves:     safe(FilterMoves(b, from, reach.Moves, nil)),
		Captures:  safe(FilterCaptures(b, from, reach.Captures, nil)),
		Castlings: castlings,
	}
}
