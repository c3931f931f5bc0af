package board

import (
	"math/bits"

	"github.com/estalpaert/cheess/position"
)

// bitmap is a 64-bit set of squares, one bit per position.Square.
type bitmap uint64

func squareMask(sq position.Square) bitmap {
	return bitmap(1) << uint(sq)
}

func (bm bitmap) has(sq position.Square) bool {
	return bm&squareMask(sq) != 0
}

func (bm *bitmap) set(sq position.Square) {
	*bm |= squareMask(sq)
}

func (bm *bitmap) clear(sq position.Square) {
	*bm &^= squareMask(sq)
}

// popCount returns the number of set bits.
func (bm bitmap) popCount() int {
	return bits.OnesCount64(uint64(bm))
}

// lsb returns the lowest-indexed set square. Callers must not call this on
// an empty bitmap.
func (bm bitmap) lsb() position.Square {
	return position.Square(bits.TrailingZeros64(uint64(bm)))
}

// squares returns every set square in ascending order.
func (bm bitmap) squares() []position.Square {
	sqs := make([]position.Square, 0, bm.popCount())
	for bm != 0 {
		sq := bm.lsb()
		sqs = append(sqs, sq)
		bm &= bm - 1
	}
	return sqs
}

// rankMask is indexed by rank (0-based); halfMask is built from it.
var rankMask [8]bitmap

// halfMask[White] is ranks 1-4, a side's own half of the board; halfMask[Black]
// is ranks 5-8. Used by the evaluator's space term to tell which side of the
// board a piece sits on without per-square rank arithmetic at the call site.
var halfMask [2]bitmap

// centerMask marks the four central squares d4, e4, d5, e5.
var centerMask bitmap

// CenterSquares lists the four central squares used by space evaluation,
// derived from centerMask.
var CenterSquares []position.Square

func init() {
	for f := 0; f < 8; f++ {
		for r := 0; r < 8; r++ {
			sq, _ := position.SquareFromCoordinates(f, r)
			rankMask[r].set(sq)
		}
	}
	for r := 0; r < 4; r++ {
		halfMask[sideIndex(SideWhite)] |= rankMask[r]
	}
	for r := 4; r < 8; r++ {
		halfMask[sideIndex(SideBlack)] |= rankMask[r]
	}
	for _, sq := range []position.Square{position.D4, position.E4, position.D5, position.E5} {
		centerMask.set(sq)
	}
	CenterSquares = centerMask.squares()
}

// OnOwnHalf reports whether sq lies on s's own half of the board: ranks 1-4
// for White, ranks 5-8 for Black.
func OnOwnHalf(sq position.Square, s Side) bool {
	return halfMask[sideIndex(s)].has(sq)
}
