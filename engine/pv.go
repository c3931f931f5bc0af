package engine

import (
	"fmt"
	"strings"

	"github.com/estalpaert/cheess/board"
)

// mateScore is the sentinel magnitude reported when a line ends in
// checkmate, from the root side-to-move's perspective.
const mateScore int32 = 100000

// PrincipalVariation is the immutable result of a search: the ordered line
// of moves the engine expects to be played, its score from the root side
// to move's perspective, and whether that score represents a forced mate.
type PrincipalVariation struct {
	moves    []board.Move
	score    int32
	mateFlag bool
}

func newPrincipalVariation(moves []board.Move, score int32, mate bool) PrincipalVariation {
	return PrincipalVariation{moves: moves, score: score, mateFlag: mate}
}

// Moves returns the line's moves in play order.
func (pv PrincipalVariation) Moves() []board.Move {
	return pv.moves
}

// Len returns the number of moves in the line.
func (pv PrincipalVariation) Len() int {
	return len(pv.moves)
}

// Score returns the line's evaluation from the root side-to-move's
// perspective. If Mate is true its magnitude equals the mate sentinel.
func (pv PrincipalVariation) Score() int32 {
	return pv.score
}

// Mate reports whether this line ends in forced checkmate.
func (pv PrincipalVariation) Mate() bool {
	return pv.mateFlag
}

// String renders the line as "CHECKMATE [ m1 m2 ... ]" when mate, otherwise
// a signed score (explicit '+' for non-negative) followed by the move list.
func (pv PrincipalVariation) String() string {
	var b strings.Builder
	if pv.mateFlag {
		b.WriteString("CHECKMATE")
	} else if pv.score >= 0 {
		fmt.Fprintf(&b, "+%d", pv.score)
	} else {
		fmt.Fprintf(&b, "%d", pv.score)
	}
	b.WriteString(" [ ")
	for _, mv := range pv.moves {
		b.WriteString(mv.UCI())
		b.WriteByte(' ')
	}
	b.WriteByte(']')
	return b.String()
}
