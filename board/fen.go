package board

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/estalpaert/cheess/position"
)

// ErrInvalidFEN is returned by UnmarshalFEN for any malformed FEN string.
var ErrInvalidFEN = errors.New("invalid fen")

// UnmarshalFEN parses a FEN string into a Position.
func UnmarshalFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("%w: expected 6 fields, got %d", ErrInvalidFEN, len(fields))
	}

	pos := &Position{epTarget: position.NoSquare}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: expected 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}
	for i, row := range ranks {
		rank := 7 - i
		file := 0
		for _, c := range row {
			if file > 7 {
				return nil, fmt.Errorf("%w: rank %d overflows", ErrInvalidFEN, rank+1)
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			p, s, ok := pieceFromFEN(c)
			if !ok {
				return nil, fmt.Errorf("%w: unknown symbol %q", ErrInvalidFEN, c)
			}
			sq, _ := position.SquareFromCoordinates(file, rank)
			pos.SetPiece(sq, p, s)
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("%w: rank %d has %d files", ErrInvalidFEN, rank+1, file)
		}
	}

	switch fields[1] {
	case "w":
		pos.sideToMove = SideWhite
	case "b":
		pos.sideToMove = SideBlack
	default:
		return nil, fmt.Errorf("%w: invalid side to move %q", ErrInvalidFEN, fields[1])
	}

	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				pos.castling |= WhiteKingside
			case 'Q':
				pos.castling |= WhiteQueenside
			case 'k':
				pos.castling |= BlackKingside
			case 'q':
				pos.castling |= BlackQueenside
			default:
				return nil, fmt.Errorf("%w: invalid castling rights %q", ErrInvalidFEN, fields[2])
			}
		}
	}

	if fields[3] != "-" {
		sq, ok := position.SquareFromName(fields[3])
		if !ok {
			return nil, fmt.Errorf("%w: invalid en-passant target %q", ErrInvalidFEN, fields[3])
		}
		pos.epTarget = sq
	}

	half, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid half-move clock %q", ErrInvalidFEN, fields[4])
	}
	if half < 0 || half > math.MaxUint16 {
		half = 0 // clamp rather than reject, per this implementation's resolution of the open question
	}
	pos.halfMoveClock = uint16(half)

	full, err := strconv.Atoi(fields[5])
	if err != nil || full < 0 {
		return nil, fmt.Errorf("%w: invalid full-move clock %q", ErrInvalidFEN, fields[5])
	}
	pos.fullMoveClock = uint32(full)

	return pos, nil
}

func pieceFromFEN(c rune) (Piece, Side, bool) {
	s := SideWhite
	lower := c
	if c >= 'a' && c <= 'z' {
		s = SideBlack
	} else {
		lower = c + ('a' - 'A')
	}
	switch lower {
	case 'p':
		return PiecePawn, s, true
	case 'n':
		return PieceKnight, s, true
	case 'b':
		return PieceBishop, s, true
	case 'r':
		return PieceRook, s, true
	case 'q':
		return PieceQueen, s, true
	case 'k':
		return PieceKing, s, true
	default:
		return PieceUnknown, SideUnknown, false
	}
}

// FEN renders pos back to a FEN string.
func (pos *Position) FEN() string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq, _ := position.SquareFromCoordinates(file, rank)
			p, s, ok := pos.Piece(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprintf(&b, "%d", empty)
				empty = 0
			}
			b.WriteString(p.SymbolFEN(s))
		}
		if empty > 0 {
			fmt.Fprintf(&b, "%d", empty)
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}

	b.WriteByte(' ')
	if pos.sideToMove == SideWhite {
		b.WriteByte('w')
	} else {
		b.WriteByte('b')
	}

	b.WriteByte(' ')
	b.WriteString(pos.castling.String())

	b.WriteByte(' ')
	if ep, ok := pos.EnPassantTarget(); ok {
		b.WriteString(ep.String())
	} else {
		b.WriteByte('-')
	}

	fmt.Fprintf(&b, " %d %d", pos.halfMoveClock, pos.fullMoveClock)
	return b.String()
}
