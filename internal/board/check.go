package board

// Check records one attack on a king.
type Check struct {
	Attacker Pos
	King     Pos
	// Blocks are the cells strictly between attacker and king, in order
	// from the attacker. Empty for knight, pawn and adjacent attacks.
	Blocks []Pos
}

// FindChecks returns every attack on side's king. More than one entry
// means a double check, which only a king move can answer.
func FindChecks(b *Board, side Side) []Check {
	return findChecks(b, side, NoPos)
}

// findChecks scans every enemy capture ray for contact with side's king,
// treating the cell at ignore as empty.
func findChecks(b *Board, side Side, ignore Pos) []Check {
	king := b.FindKing(side)
	if !king.IsValid() {
		return nil
	}

	var checks []Check
	for _, from := range b.Occupied(side.Other()) {
		for _, ray := range ReachFrom(b, from).Captures {
			var between []Pos
			for _, p := range ray {
				if p == ignore || b.IsEmpty(p) {
					between = append(between, p)
					continue
				}
				if p == king {
					checks = append(checks, Check{Attacker: from, King: king, Blocks: between})
				}
				break
			}
		}
	}
	return checks
}

// InCheck returns true if side's king is attacked.
func InCheck(b *Board, side Side) bool {
	return len(FindChecks(b, side)) > 0
}

// IsCheckmate returns true if side's king is attacked and neither the
// king nor any other piece of side has a move or capture that resolves it.
// Castling never counts as a resolution.
func IsCheckmate(b *Board, side Side) bool {
	if !InCheck(b, side) {
		return false
	}
	return !HasLegalMove(b, side)
}

// HasLegalMove returns true if any of side's pieces has a legal move or capture.
func HasLegalMove(b *Board, side Side) bool {
	for _, from := range b.Occupied(side) {
		if LegalMoves(b, from).HasDestinations() {
			return true
		}
	}
	return false
}
