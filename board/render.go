package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/estalpaert/cheess/position"
)

var (
	lightSquare = color.New(color.BgHiWhite, color.FgBlack)
	darkSquare  = color.New(color.BgGreen, color.FgBlack)
)

// Draw renders pos as a colour terminal board, alternating light/dark
// square backgrounds via github.com/fatih/color.
func (pos *Position) Draw() string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&b, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			sq, _ := position.SquareFromCoordinates(file, rank)
			p, s, ok := pos.Piece(sq)
			sym := " "
			if ok {
				sym = p.SymbolUnicode(s, false)
			}
			sq2 := lightSquare
			if (file+rank)%2 == 0 {
				sq2 = darkSquare
			}
			b.WriteString(sq2.Sprintf(" %s ", sym))
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a  b  c  d  e  f  g  h")
	return b.String()
}

// DebugString summarizes the non-board state for interactive debugging.
func (pos *Position) DebugString() string {
	ep := "-"
	if sq, ok := pos.EnPassantTarget(); ok {
		ep = sq.String()
	}
	return fmt.Sprintf("side: %s\ncastling: %s\nep: %s\nhalf: %d\nfull: %d",
		pos.SideToMove(), pos.Castling(), ep, pos.HalfMoveClock(), pos.FullMoveClock())
}
