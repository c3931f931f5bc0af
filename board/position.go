package board

import (
	"github.com/estalpaert/cheess/position"
)

// DefaultStartingPositionFEN is the FEN for the standard starting position.
var DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is the mutable game-state aggregate: six disjoint piece
// bitboards, two disjoint colour bitboards, side to move, castling rights,
// an optional en-passant target square, and the half-move/full-move
// clocks.
type Position struct {
	pieces [6]bitmap // indexed by pieceIndex(Piece)
	colors [2]bitmap // indexed by sideIndex(Side)

	sideToMove    Side
	castling      CastlingRights
	epTarget      position.Square
	halfMoveClock uint16
	fullMoveClock uint32
}

type positionConfig struct {
	fen string
}

// Option configures NewPosition.
type Option func(*positionConfig)

// WithFEN sets the starting FEN for NewPosition; the default is the
// standard starting position.
func WithFEN(fen string) Option {
	return func(cfg *positionConfig) {
		cfg.fen = fen
	}
}

// NewPosition constructs a Position, by default the standard starting
// position.
func NewPosition(opts ...Option) (*Position, error) {
	cfg := &positionConfig{fen: DefaultStartingPositionFEN}
	for _, o := range opts {
		o(cfg)
	}
	return UnmarshalFEN(cfg.fen)
}

// Clone returns an independent copy of pos. All search lookahead operates
// on clones; MakeMove never mutates the caller's position in place.
func (pos *Position) Clone() *Position {
	cp := *pos
	return &cp
}

// SideToMove, Castling, EnPassantTarget, and HalfMoveClock are plain
// projections of the invariant-bearing state.
func (pos *Position) SideToMove() Side            { return pos.sideToMove }
func (pos *Position) Castling() CastlingRights    { return pos.castling }
func (pos *Position) EnPassantTarget() (position.Square, bool) {
	return pos.epTarget, pos.epTarget.IsValid()
}
func (pos *Position) HalfMoveClock() uint16   { return pos.halfMoveClock }
func (pos *Position) FullMoveClock() uint32   { return pos.fullMoveClock }

// Piece returns the piece occupying sq, if any.
func (pos *Position) Piece(sq position.Square) (Piece, Side, bool) {
	var s Side
	switch {
	case pos.colors[sideIndex(SideWhite)].has(sq):
		s = SideWhite
	case pos.colors[sideIndex(SideBlack)].has(sq):
		s = SideBlack
	default:
		return PieceUnknown, SideUnknown, false
	}
	for p := PiecePawn; p <= PieceKing; p++ {
		if pos.pieces[pieceIndex(p)].has(sq) {
			return p, s, true
		}
	}
	return PieceUnknown, SideUnknown, false
}

// SetPiece places piece p of side s on sq, first clearing whatever
// occupied the square.
func (pos *Position) SetPiece(sq position.Square, p Piece, s Side) {
	pos.clearSquare(sq)
	if p == PieceUnknown {
		return
	}
	pos.pieces[pieceIndex(p)].set(sq)
	pos.colors[sideIndex(s)].set(sq)
}

func (pos *Position) clearSquare(sq position.Square) {
	for i := range pos.pieces {
		pos.pieces[i].clear(sq)
	}
	pos.colors[0].clear(sq)
	pos.colors[1].clear(sq)
}

func (pos *Position) occupied() bitmap {
	return pos.colors[0] | pos.colors[1]
}

func (pos *Position) bitmapOf(p Piece, s Side) bitmap {
	return pos.pieces[pieceIndex(p)] & pos.colors[sideIndex(s)]
}

// KingSquare returns the square of s's king.
func (pos *Position) KingSquare(s Side) position.Square {
	return pos.bitmapOf(PieceKing, s).lsb()
}
