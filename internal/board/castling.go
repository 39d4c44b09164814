package board

// castlingPathSafe checks every cell the king crosses or lands on: each
// must be empty and free of enemy attack. The king's current cell is not
// examined.
func castlingPathSafe(b *Board, c Castling, enemy *AttackMap) bool {
	if c.Dir != -1 && c.Dir != 1 {
		return false
	}
	for p := c.KingFrom.Add(c.Dir, 0); p.IsValid(); p = p.Add(c.Dir, 0) {
		if !b.IsEmpty(p) || enemy.IsAttacked(p) {
			return false
		}
		if p == c.KingTo {
			return true
		}
	}
	return false
}

// ApplyCastling moves king and rook together and marks both moved.
func (b *Board) ApplyCastling(c Castling) {
	king := b.Remove(c.KingFrom)
	rook := b.Remove(c.RookFrom)
	king.Moved = true
	rook.Moved = true
	b.Set(c.KingTo, king)
	b.Set(c.RookTo, rook)
}

func containsPos(cells []Pos, p Pos) bool {
	for _, c := range cells {
		if c == p {
			return true
		}
	}
	return false
}
