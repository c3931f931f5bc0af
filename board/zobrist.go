package board

// Zobrist-style structural hashing, grounded in the teacher's
// zobristConstantPiece/zobristConstantCastleRights/zobristConstantEnPassant
// tables (board/constant.go), reseeded deterministically so hashes are
// stable across process runs.

var (
	zobristPiece      [2][6][64]uint64
	zobristCastling   [16]uint64
	zobristEnPassant  [64]uint64
	zobristSideToMove uint64
	zobristHalfMove   [101]uint64
)

// zobristSeeder is a xorshift64* stream used only to fill the zobrist
// tables below at package init; its output never needs to be
// cryptographically or statistically strong, only stable across runs.
type zobristSeeder struct {
	s uint64
}

func (z *zobristSeeder) next() uint64 {
	z.s ^= z.s >> 12
	z.s ^= z.s << 25
	z.s ^= z.s >> 27
	return z.s * 2685821657736338717
}

func init() {
	r := &zobristSeeder{s: 0x9E3779B97F4A7C15}
	for s := 0; s < 2; s++ {
		for p := 0; p < 6; p++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[s][p][sq] = r.next()
			}
		}
	}
	for i := range zobristCastling {
		zobristCastling[i] = r.next()
	}
	for i := range zobristEnPassant {
		zobristEnPassant[i] = r.next()
	}
	zobristSideToMove = r.next()
	for i := range zobristHalfMove {
		zobristHalfMove[i] = r.next()
	}
}

func sideIndex(s Side) int {
	if s == SideBlack {
		return 1
	}
	return 0
}

func pieceIndex(p Piece) int {
	return int(p) - 1
}

// Hash returns a structural hash of the position, used as the
// repetition-detection key (TTKey builds the transposition-table key on top
// of it). The half-move clock is deliberately not mixed in so that positions
// identical for chess purposes collide regardless of how close they are to a
// fifty-move claim.
func (pos *Position) Hash() uint64 {
	var h uint64
	for s := 0; s < 2; s++ {
		for p := 0; p < 6; p++ {
			bm := pos.pieces[p] & pos.colors[s]
			for _, sq := range bm.squares() {
				h ^= zobristPiece[s][p][sq]
			}
		}
	}
	h ^= zobristCastling[pos.castling]
	if pos.epTarget.IsValid() {
		h ^= zobristEnPassant[pos.epTarget]
	}
	if pos.sideToMove == SideWhite {
		h ^= zobristSideToMove
	}
	return h
}

// TTKey returns the transposition-table key for pos: the structural hash
// plus the half-move clock, clamped to the table's 0..100 range. Mixing
// the clock in here (and only here) keeps repetition keys clock-agnostic
// while still letting the transposition table distinguish a position close
// to a fifty-move claim from the same position earlier in the game.
func (pos *Position) TTKey() uint64 {
	clamped := pos.halfMoveClock
	if clamped > 100 {
		clamped = 100
	}
	return pos.Hash() ^ zobristHalfMove[clamped]
}
