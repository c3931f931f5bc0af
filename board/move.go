package board

import "github.com/estalpaert/cheess/position"

// Move is a single ply: a source and destination square, and an optional
// promotion piece kind. The capture/en-passant/castle flags are set by the
// generator purely for display and move-ordering; MakeMove re-derives
// everything it needs from board content instead of trusting them.
type Move struct {
	From, To    position.Square
	Promote     Piece
	IsCapture   bool
	IsEnPassant bool
	IsCastle    bool
}

func (m Move) String() string {
	return m.UCI()
}

// UCI renders the move as four or five characters: from-square, to-square,
// and an optional lowercase promotion letter.
func (m Move) UCI() string {
	s := m.From.String() + m.To.String()
	if m.Promote != PieceUnknown {
		s += m.Promote.SymbolFEN(SideBlack)
	}
	return s
}

// Algebra renders a short, human-readable form used by debug output. It is
// not strict Standard Algebraic Notation (it never disambiguates between
// two pieces able to reach the same square), which is acceptable since it
// is only ever used for logging, never parsed back.
func (m Move) Algebra(p Piece) string {
	if m.IsCastle {
		if m.To.File() == 6 {
			return "O-O"
		}
		return "O-O-O"
	}
	s := p.SymbolAlgebra(SideWhite)
	if m.IsCapture {
		s += "x"
	}
	s += m.To.String()
	if m.Promote != PieceUnknown {
		s += "=" + m.Promote.SymbolFEN(SideWhite)
	}
	return s
}

// FromUCI parses a move string as produced by UCI. It does not validate
// that the move is legal, or even pseudo-legal, in any position — only
// that it is syntactically well-formed.
func FromUCI(s string) (Move, bool) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, false
	}
	from, ok := position.SquareFromName(s[0:2])
	if !ok {
		return Move{}, false
	}
	to, ok := position.SquareFromName(s[2:4])
	if !ok {
		return Move{}, false
	}
	mv := Move{From: from, To: to}
	if len(s) == 5 {
		switch s[4] {
		case 'n':
			mv.Promote = PieceKnight
		case 'b':
			mv.Promote = PieceBishop
		case 'r':
			mv.Promote = PieceRook
		case 'q':
			mv.Promote = PieceQueen
		default:
			return Move{}, false
		}
	}
	return mv, true
}
