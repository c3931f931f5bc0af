package board

// CastlingRights is a 4-bit flag set tracking which castling moves are
// still available. Bits may be combined with union (|), intersection (&),
// and complement (&^).
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// CastlingRightsWhite and CastlingRightsBlack are the two-bit unions
// belonging to each colour.
const (
	CastlingRightsWhite = WhiteKingside | WhiteQueenside
	CastlingRightsBlack = BlackKingside | BlackQueenside
	CastlingRightsNone  = CastlingRights(0)
	CastlingRightsAll   = CastlingRightsWhite | CastlingRightsBlack
)

// Has reports whether every bit in want is present in c.
func (c CastlingRights) Has(want CastlingRights) bool {
	return c&want == want
}

// Clear returns c with the bits in remove cleared.
func (c CastlingRights) Clear(remove CastlingRights) CastlingRights {
	return c &^ remove
}

// ForSide returns the two-bit union of castling rights belonging to s.
func ForSide(s Side) CastlingRights {
	if s == SideBlack {
		return CastlingRightsBlack
	}
	return CastlingRightsWhite
}

// Kingside and Queenside return the single-bit right belonging to s.
func Kingside(s Side) CastlingRights {
	if s == SideBlack {
		return BlackKingside
	}
	return WhiteKingside
}

func Queenside(s Side) CastlingRights {
	if s == SideBlack {
		return BlackQueenside
	}
	return WhiteQueenside
}

func (c CastlingRights) String() string {
	var out [4]byte
	n := 0
	if c.Has(WhiteKingside) {
		out[n] = 'K'
		n++
	}
	if c.Has(WhiteQueenside) {
		out[n] = 'Q'
		n++
	}
	if c.Has(BlackKingside) {
		out[n] = 'k'
		n++
	}
	if c.Has(BlackQueenside) {
		out[n] = 'q'
		n++
	}
	if n == 0 {
		return "-"
	}
	return string(out[:n])
}
