package board

// LegalMoves returns the subset of PseudoLegalMoves(pos) that do not leave
// the mover's own king attacked. It generates candidates and tests each by
// making the move on a clone and checking the resulting position, rather
// than attempting to reason about pins directly.
func (pos *Position) LegalMoves() []Move {
	side := pos.sideToMove
	candidates := pos.PseudoLegalMoves()
	legal := make([]Move, 0, len(candidates))
	for _, mv := range candidates {
		next := pos.MakeMove(mv)
		if !next.IsAttacked(next.KingSquare(side), side) {
			legal = append(legal, mv)
		}
	}
	return legal
}

// InCheck reports whether the side to move's king is currently attacked.
func (pos *Position) InCheck() bool {
	return pos.IsAttacked(pos.KingSquare(pos.sideToMove), pos.sideToMove)
}
