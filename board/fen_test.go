package board

import "testing"

func TestFENRoundTrip(t *testing.T) {
	t.Parallel()
	fens := []string{
		DefaultStartingPositionFEN,
		"r3k2r/1bppqppp/p1n2n2/2b1p3/B3P3/2NP1N2/1PP2PPP/R1BQ1RK1 b kq - 2 10",
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
		"8/5kBp/3p3P/5pb1/8/5P2/4R2K/3r4 b - - 8 52",
		"4k1R1/7Q/4p3/8/1n3p2/3B4/1P3PP1/6K1 b - - 4 41",
	}

	for _, fen := range fens {
		fen := fen
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			pos, err := UnmarshalFEN(fen)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := pos.FEN(); got != fen {
				t.Errorf("unexpected FEN round-trip: got=%s want=%s", got, fen)
			}
		})
	}
}

func TestFENRejectsMalformedInput(t *testing.T) {
	t.Parallel()
	fens := []string{
		"",
		"invalid fen",
		"8/3Rn3/5Q2/p5kp/2B1P3/2P3bP/PP3R2/7K badside - - 1 38",
		"8/3Rn3/5Q2/p5kp/2B1P3/2P3bP/PP3R2/7K b badcastlingrights - 1 38",
		"8/3Rn3/badboard/p5kp/2B1P3/2P3bP/PP3R2/7K b - - 1 38",
		"8/8/8/8/8/8/8 w - - 1 0",                   // only 7 ranks
		"7k/8/8/8/8/8/8/7K w - - 1 0 extrasegment",  // extra field
		"8/3Rn3/5Q2/p5kp/2B1P3/2P3bP/PP3R2/7K b - - notanumber 38",
		"8/3Rn3/5Q2/p5kp/2B1P3/2P3bP/PP3R2/7K b - - 1 -5",
	}

	for _, fen := range fens {
		fen := fen
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			if _, err := UnmarshalFEN(fen); err == nil {
				t.Error("expected an error, got nil")
			}
		})
	}
}

func TestFENClampsNegativeHalfMoveClock(t *testing.T) {
	t.Parallel()
	pos, err := UnmarshalFEN("8/8/4pB2/3pPkQ1/b7/1p6/3N1P1K/8 b - - -5 59")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pos.HalfMoveClock() != 0 {
		t.Errorf("expected a negative half-move clock to clamp to 0, got %d", pos.HalfMoveClock())
	}
}
