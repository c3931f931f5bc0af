// Package position defines the board-independent square coordinate system
// and the side-relative stepping geometry the board package builds its
// attack detection and move generation on top of.
package position

import (
	"errors"
)

// ErrInvalidNotation represents an invalid algebraic-notation string.
var ErrInvalidNotation = errors.New("invalid notation")

// Square is an index into the 8x8 board, 0 (a1) through 63 (h8), increasing
// first by file then by rank.
type Square int8

// NoSquare is the sentinel value for "no square", used for an absent
// en-passant target.
const NoSquare Square = -1

// Named squares, file-major within each rank.
const (
	A1, B1, C1, D1, E1, F1, G1, H1 Square = iota*8 + 0, iota*8 + 1, iota*8 + 2, iota*8 + 3, iota*8 + 4, iota*8 + 5, iota*8 + 6, iota*8 + 7
	A2, B2, C2, D2, E2, F2, G2, H2
	A3, B3, C3, D3, E3, F3, G3, H3
	A4, B4, C4, D4, E4, F4, G4, H4
	A5, B5, C5, D5, E5, F5, G5, H5
	A6, B6, C6, D6, E6, F6, G6, H6
	A7, B7, C7, D7, E7, F7, G7, H7
	A8, B8, C8, D8, E8, F8, G8, H8
)

// File returns the file (0 = a, 7 = h) of the square.
func (s Square) File() int {
	return int(s) % 8
}

// Rank returns the rank (0 = rank 1, 7 = rank 8) of the square.
func (s Square) Rank() int {
	return int(s) / 8
}

// IsValid reports whether s is a real board square.
func (s Square) IsValid() bool {
	return s >= 0 && s <= H8
}

// SquareFromCoordinates builds a Square from a zero-based file and rank. The
// second return value is false if either coordinate is out of range.
func SquareFromCoordinates(file, rank int) (Square, bool) {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return 0, false
	}
	return Square(rank*8 + file), true
}

// SquareFromName parses a two-character algebraic square name such as "e4".
func SquareFromName(n string) (Square, bool) {
	if len(n) != 2 {
		return 0, false
	}
	file := int(n[0] - 'a')
	rank := int(n[1] - '1')
	return SquareFromCoordinates(file, rank)
}

// NewSquareFromNotation is equivalent to SquareFromName but returns the
// ErrInvalidNotation sentinel on failure, matching the error-returning
// constructors used elsewhere in this package family.
func NewSquareFromNotation(n string) (Square, error) {
	sq, ok := SquareFromName(n)
	if !ok {
		return 0, ErrInvalidNotation
	}
	return sq, nil
}

// String renders the square in algebraic notation, e.g. "e4". An invalid
// square renders as the empty string.
func (s Square) String() string {
	if !s.IsValid() {
		return ""
	}
	return string(rune('a'+s.File())) + string(rune('1'+s.Rank()))
}
