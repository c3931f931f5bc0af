package board

import "github.com/estalpaert/cheess/position"

var allDirs = [8]direction{dirN, dirS, dirE, dirW, dirNE, dirNW, dirSE, dirSW}

// PseudoLegalMoves generates every move available to the side to move,
// respecting piece movement rules but without checking whether the mover's
// own king ends up in check. Use LegalMoves to additionally filter those
// out.
func (pos *Position) PseudoLegalMoves() []Move {
	var moves []Move
	side := pos.sideToMove
	for _, sq := range pos.colors[sideIndex(side)].squares() {
		p, _, _ := pos.Piece(sq)
		switch p {
		case PiecePawn:
			pos.pawnMovesFrom(sq, side, &moves)
		case PieceKnight:
			pos.knightMovesFrom(sq, side, &moves)
		case PieceBishop:
			pos.slidingMovesFrom(sq, side, diagonalDirs[:], &moves)
		case PieceRook:
			pos.slidingMovesFrom(sq, side, orthogonalDirs[:], &moves)
		case PieceQueen:
			pos.slidingMovesFrom(sq, side, allDirs[:], &moves)
		case PieceKing:
			pos.kingMovesFrom(sq, side, &moves)
		}
	}
	return moves
}

func (pos *Position) pawnMovesFrom(sq position.Square, side Side, moves *[]Move) {
	promoteOrPlain := func(to position.Square, capture bool) {
		if position.PromotionCandidate(sq, side) {
			for _, promo := range PawnPromoteCandidates {
				*moves = append(*moves, Move{From: sq, To: to, Promote: promo, IsCapture: capture})
			}
			return
		}
		*moves = append(*moves, Move{From: sq, To: to, IsCapture: capture})
	}

	occ := pos.occupied()

	if front, ok := position.Front(sq, side); ok && !occ.has(front) {
		promoteOrPlain(front, false)
		if position.DoublePushCandidate(sq, side) {
			if dbl, ok := position.DoublePush(sq, side); ok && !occ.has(dbl) {
				*moves = append(*moves, Move{From: sq, To: dbl})
			}
		}
	}

	epTarget, hasEP := pos.EnPassantTarget()
	opponent := pos.colors[sideIndex(side.Opposite())]
	for _, to := range []func(position.Square, Side) (position.Square, bool){position.FrontLeft, position.FrontRight} {
		dst, ok := to(sq, side)
		if !ok {
			continue
		}
		if opponent.has(dst) {
			promoteOrPlain(dst, true)
		} else if hasEP && dst == epTarget {
			*moves = append(*moves, Move{From: sq, To: dst, IsCapture: true, IsEnPassant: true})
		}
	}
}

func (pos *Position) knightMovesFrom(sq position.Square, side Side, moves *[]Move) {
	f, r := sq.File(), sq.Rank()
	own := pos.colors[sideIndex(side)]
	opponent := pos.colors[sideIndex(side.Opposite())]
	for _, off := range knightOffsets {
		to, ok := position.SquareFromCoordinates(f+off[0], r+off[1])
		if !ok || own.has(to) {
			continue
		}
		*moves = append(*moves, Move{From: sq, To: to, IsCapture: opponent.has(to)})
	}
}

func (pos *Position) slidingMovesFrom(sq position.Square, side Side, dirs []direction, moves *[]Move) {
	own := pos.colors[sideIndex(side)]
	opponent := pos.colors[sideIndex(side.Opposite())]
	for _, dir := range dirs {
		cur := sq
		for {
			next, ok := step(cur, dir)
			if !ok || own.has(next) {
				break
			}
			*moves = append(*moves, Move{From: sq, To: next, IsCapture: opponent.has(next)})
			cur = next
			if opponent.has(next) {
				break
			}
		}
	}
}

func (pos *Position) kingMovesFrom(sq position.Square, side Side, moves *[]Move) {
	own := pos.colors[sideIndex(side)]
	opponent := pos.colors[sideIndex(side.Opposite())]
	for _, dir := range allDirs {
		to, ok := step(sq, dir)
		if !ok || own.has(to) {
			continue
		}
		*moves = append(*moves, Move{From: sq, To: to, IsCapture: opponent.has(to)})
	}
	pos.castlingMovesFrom(sq, side, moves)
}

func (pos *Position) castlingMovesFrom(kingSq position.Square, side Side, moves *[]Move) {
	if pos.IsAttacked(kingSq, side) {
		return
	}
	occ := pos.occupied()

	tryCastle := func(right CastlingRights, kingTo position.Square, pathEmpty, pathSafe [2]position.Square, extraEmpty position.Square) {
		if !pos.castling.Has(right) {
			return
		}
		if occ.has(pathEmpty[0]) || occ.has(pathEmpty[1]) {
			return
		}
		if extraEmpty.IsValid() && occ.has(extraEmpty) {
			return
		}
		if pos.IsAttacked(pathSafe[0], side) || pos.IsAttacked(pathSafe[1], side) {
			return
		}
		*moves = append(*moves, Move{From: kingSq, To: kingTo, IsCastle: true})
	}

	if side == SideWhite {
		tryCastle(WhiteKingside, position.G1,
			[2]position.Square{position.F1, position.G1}, [2]position.Square{position.F1, position.G1}, position.NoSquare)
		tryCastle(WhiteQueenside, position.C1,
			[2]position.Square{position.B1, position.C1}, [2]position.Square{position.C1, position.D1}, position.D1)
	} else {
		tryCastle(BlackKingside, position.G8,
			[2]position.Square{position.F8, position.G8}, [2]position.Square{position.F8, position.G8}, position.NoSquare)
		tryCastle(BlackQueenside, position.C8,
			[2]position.Square{position.B8, position.C8}, [2]position.Square{position.C8, position.D8}, position.D8)
	}
}
