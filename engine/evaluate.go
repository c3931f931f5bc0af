package engine

import (
	"github.com/estalpaert/cheess/board"
	"github.com/estalpaert/cheess/position"
)

// materialValue mirrors the original system's getMaterialScore table. King
// is deliberately absent since it cannot be captured in a legal position
// and therefore never contributes to material balance.
var materialValue = map[board.Piece]int32{
	board.PiecePawn:   100,
	board.PieceKnight: 300,
	board.PieceBishop: 300,
	board.PieceRook:   500,
	board.PieceQueen:  900,
}

const (
	spaceHalfBonus   int32 = 10
	spaceCenterBonus int32 = 50
)

var isCenterSquare = func() map[position.Square]bool {
	m := make(map[position.Square]bool, len(board.CenterSquares))
	for _, sq := range board.CenterSquares {
		m[sq] = true
	}
	return m
}()

// Evaluate returns the static score of pos from the perspective of the
// side to move: material difference plus a small space/centre-occupation
// term, mirroring the original system's getMaterialScore/getSpaceScore.
// There is deliberately nothing else here -- no piece-square tables, no
// pawn structure, no king safety -- this engine does not carry the richer
// PST-based evaluation a stronger engine would.
func (e *Engine) Evaluate(pos *board.Position) int32 {
	mover := pos.SideToMove()
	var material, space int32
	for sq := position.A1; sq <= position.H8; sq++ {
		p, s, ok := pos.Piece(sq)
		if !ok {
			continue
		}
		sign := int32(1)
		if s != mover {
			sign = -1
		}
		material += sign * materialValue[p]

		if !board.OnOwnHalf(sq, s) {
			space += sign * spaceHalfBonus
		}
		if isCenterSquare[sq] {
			space += sign * spaceCenterBonus
		}
	}
	return material + space
}
