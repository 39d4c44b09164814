package board

// AttackMap holds, for every cell, the origins of one side's pieces that
// could capture into it this turn.
type AttackMap [Size][Size][]Pos

// At returns the attackers of p.
func (m *AttackMap) At(p Pos) []Pos {
	if !p.IsValid() {
		return nil
	}
	return m[p.Y][p.X]
}

// IsAttacked returns true if any piece attacks p.
func (m *AttackMap) IsAttacked(p Pos) bool {
	return len(m.At(p)) > 0
}

// Attacks computes side's attack map from scratch. Cells listed in ignore
// are treated as empty, so a king about to step off its cell does not
// shadow the cells behind it.
//
// A ray stops at the first occupied cell whichever side holds it, and that
// cell counts as attacked: a defended piece cannot be taken by a king.
func Attacks(b *Board, side Side, ignore ...Pos) *AttackMap {
	m := &AttackMap{}
	skip := func(p Pos) bool {
		for _, ig := range ignore {
			if ig == p {
				return true
			}
		}
		return false
	}

	for _, from := range b.Occupied(side) {
		if skip(from) {
			continue
		}
		for _, ray := range ReachFrom(b, from).Captures {
			for _, p := range ray {
				m[p.Y][p.X] = append(m[p.Y][p.X], from)
				if !b.IsEmpty(p) && !skip(p) {
					break
				}
			}
		}
	}
	return m
}
