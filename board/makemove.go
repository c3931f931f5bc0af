package board

import "github.com/estalpaert/cheess/position"

// MakeMove applies mv to a clone of pos and returns the clone; pos itself
// is never mutated. The mover is assumed to be pos.SideToMove()'s piece at
// mv.From; callers are expected to only ever pass moves drawn from
// PseudoLegalMoves/LegalMoves.
func (pos *Position) MakeMove(mv Move) *Position {
	next := pos.Clone()
	mover := pos.sideToMove
	opponent := mover.Opposite()

	victimPiece, victimSide, hadVictim := pos.Piece(mv.To)
	if hadVictim && victimPiece == PieceKing {
		// Defensive no-op: a pseudo-legal-but-illegal king capture leaves
		// the position otherwise untouched, so the legality filter can
		// detect and discard the move.
		next.sideToMove = opponent
		return next
	}

	moverPiece, _, _ := pos.Piece(mv.From)

	resetClock := hadVictim || moverPiece == PiecePawn

	next.clearSquare(mv.To)
	next.clearSquare(mv.From)

	if moverPiece == PieceKing && abs(int(mv.To)-int(mv.From)) == 2 {
		next.castleRook(mover, mv.To)
		next.castling = next.castling.Clear(ForSide(mover))
	} else {
		if moverPiece == PieceKing {
			next.castling = next.castling.Clear(ForSide(mover))
		}
		if moverPiece == PieceRook {
			next.stripRookCastlingRight(mv.From)
		}
		if victimSide == opponent && (mv.To == position.A1 || mv.To == position.H1 || mv.To == position.A8 || mv.To == position.H8) {
			next.stripRookCastlingRight(mv.To)
		}

		if moverPiece == PiecePawn {
			if epTarget, ok := pos.EnPassantTarget(); ok && mv.To == epTarget {
				behind, _ := position.Back(mv.To, mover)
				next.clearSquare(behind)
				resetClock = true
			}
		}

		placed := moverPiece
		if mv.Promote != PieceUnknown {
			placed = mv.Promote
		}
		next.SetPiece(mv.To, placed, mover)
	}

	next.epTarget = position.NoSquare
	if moverPiece == PiecePawn {
		if dbl, ok := position.DoublePush(mv.From, mover); ok && dbl == mv.To {
			if hasAdjacentOpposingPawn(next, mv.To, mover) {
				if front, ok := position.Front(mv.From, mover); ok {
					next.epTarget = front
				}
			}
		}
	}

	if resetClock {
		next.halfMoveClock = 0
	} else {
		next.halfMoveClock++
	}
	if mover == SideBlack {
		next.fullMoveClock++
	}
	next.sideToMove = opponent
	return next
}

func hasAdjacentOpposingPawn(pos *Position, sq position.Square, mover Side) bool {
	opponent := mover.Opposite()
	pawns := pos.bitmapOf(PiecePawn, opponent)
	if left, ok := position.Left(sq, mover); ok && pawns.has(left) {
		return true
	}
	if right, ok := position.Right(sq, mover); ok && pawns.has(right) {
		return true
	}
	return false
}

func (pos *Position) castleRook(side Side, kingTo position.Square) {
	var rookFrom, rookTo position.Square
	switch kingTo {
	case position.G1:
		rookFrom, rookTo = position.H1, position.F1
	case position.C1:
		rookFrom, rookTo = position.A1, position.D1
	case position.G8:
		rookFrom, rookTo = position.H8, position.F8
	case position.C8:
		rookFrom, rookTo = position.A8, position.D8
	}
	pos.clearSquare(rookFrom)
	pos.SetPiece(kingTo, PieceKing, side)
	pos.SetPiece(rookTo, PieceRook, side)
}

func (pos *Position) stripRookCastlingRight(homeCorner position.Square) {
	switch homeCorner {
	case position.A1:
		pos.castling = pos.castling.Clear(WhiteQueenside)
	case position.H1:
		pos.castling = pos.castling.Clear(WhiteKingside)
	case position.A8:
		pos.castling = pos.castling.Clear(BlackQueenside)
	case position.H8:
		pos.castling = pos.castling.Clear(BlackKingside)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
