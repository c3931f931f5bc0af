package board

import "github.com/estalpaert/cheess/position"

// direction is one of the eight compass directions, expressed as an
// absolute board direction (independent of whichever side is actually to
// move) via the position package's side-relative stepping functions
// called in the fixed White frame of reference.
type direction int

const (
	dirN direction = iota
	dirS
	dirE
	dirW
	dirNE
	dirNW
	dirSE
	dirSW
)

var orthogonalDirs = [4]direction{dirN, dirS, dirE, dirW}
var diagonalDirs = [4]direction{dirNE, dirNW, dirSE, dirSW}

func step(sq position.Square, dir direction) (position.Square, bool) {
	switch dir {
	case dirN:
		return position.Front(sq, position.SideWhite)
	case dirS:
		return position.Back(sq, position.SideWhite)
	case dirE:
		return position.Right(sq, position.SideWhite)
	case dirW:
		return position.Left(sq, position.SideWhite)
	case dirNE:
		return position.FrontRight(sq, position.SideWhite)
	case dirNW:
		return position.FrontLeft(sq, position.SideWhite)
	case dirSE:
		return position.BackRight(sq, position.SideWhite)
	case dirSW:
		return position.BackLeft(sq, position.SideWhite)
	default:
		return 0, false
	}
}

// pawnAttackDirs returns the two diagonal directions along which a pawn
// attacking a defenderSide piece would sit, i.e. defenderSide's own two
// forward diagonals.
func pawnAttackDirs(defenderSide Side) [2]direction {
	if defenderSide == SideBlack {
		return [2]direction{dirSE, dirSW}
	}
	return [2]direction{dirNE, dirNW}
}

// IsAttacked reports whether any piece of the side opposite defenderSide
// attacks sq. It fans out in the eight directions from sq, stopping each
// ray at the first occupied square.
//
// IsAttacked reports a square behind an en-passant target as attacked
// regardless of the attacking piece's kind, reproducing the literal
// (slightly over-broad) behaviour of the system this generator is
// modelled on rather than "fixing" it; the over-approximation only ever
// matters adjacent to an en-passant target and is harmless there.
func (pos *Position) IsAttacked(sq position.Square, defenderSide Side) bool {
	if ep, ok := pos.EnPassantTarget(); ok {
		if behind, ok := position.Back(sq, defenderSide); ok && behind == ep {
			return true
		}
	}

	attacker := defenderSide.Opposite()
	pawnDirs := pawnAttackDirs(defenderSide)

	for _, dir := range orthogonalDirs {
		if pos.rayHits(sq, dir, attacker, false, false) {
			return true
		}
	}
	for _, dir := range diagonalDirs {
		isPawnDir := dir == pawnDirs[0] || dir == pawnDirs[1]
		if pos.rayHits(sq, dir, attacker, true, isPawnDir) {
			return true
		}
	}
	return pos.knightAttacks(sq, attacker)
}

// rayHits walks from sq in direction dir until it leaves the board or hits
// a piece. diagonal distinguishes bishop/queen rays from rook/queen rays;
// isPawnDir (only meaningful when diagonal) marks whether a pawn standing
// on the first square of this ray would be attacking sq.
func (pos *Position) rayHits(sq position.Square, dir direction, attacker Side, diagonal, isPawnDir bool) bool {
	cur := sq
	for i := 0; ; i++ {
		next, ok := step(cur, dir)
		if !ok {
			return false
		}
		cur = next
		p, s, occupied := pos.Piece(cur)
		if !occupied {
			continue
		}
		if s != attacker {
			return false // own piece blocks the ray
		}
		first := i == 0
		switch p {
		case PieceQueen:
			return true
		case PieceRook:
			return !diagonal
		case PieceBishop:
			return diagonal
		case PieceKing:
			return first
		case PiecePawn:
			return diagonal && first && isPawnDir
		default:
			return false // knight blocks without attacking along this ray
		}
	}
}

var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

func (pos *Position) knightAttacks(sq position.Square, attacker Side) bool {
	f, r := sq.File(), sq.Rank()
	knights := pos.bitmapOf(PieceKnight, attacker)
	for _, off := range knightOffsets {
		nsq, ok := position.SquareFromCoordinates(f+off[0], r+off[1])
		if !ok {
			continue
		}
		if knights.has(nsq) {
			return true
		}
	}
	return false
}
