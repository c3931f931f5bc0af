package board

import (
	"testing"

	"github.com/estalpaert/cheess/position"
)

func mustPosition(t *testing.T, fen string) *Position {
	t.Helper()
	pos, err := UnmarshalFEN(fen)
	if err != nil {
		t.Fatalf("unexpected error parsing %q: %v", fen, err)
	}
	return pos
}

func TestLegalMoves_StandardOpening(t *testing.T) {
	t.Parallel()
	pos := mustPosition(t, DefaultStartingPositionFEN)

	got := len(pos.LegalMoves())
	if got != 20 {
		t.Errorf("unexpected legal move count: got=%d want=20", got)
	}
	if pos.IsAttacked(pos.KingSquare(SideWhite), SideWhite) {
		t.Error("white king should not be attacked in the starting position")
	}
}

func TestLegalMoves_FoolsMate(t *testing.T) {
	t.Parallel()
	pos := mustPosition(t, DefaultStartingPositionFEN)
	for _, uci := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		mv, ok := FromUCI(uci)
		if !ok {
			t.Fatalf("unexpected malformed move %q", uci)
		}
		pos = pos.MakeMove(mv)
	}

	if len(pos.LegalMoves()) != 0 {
		t.Error("expected no legal moves after fool's mate")
	}
	if !pos.IsAttacked(pos.KingSquare(SideWhite), SideWhite) {
		t.Error("expected white king to be attacked after fool's mate")
	}
}

func TestLegalMoves_EnPassant(t *testing.T) {
	t.Parallel()
	pos := mustPosition(t, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")

	mv, ok := FromUCI("e5d6")
	if !ok {
		t.Fatal("unexpected malformed move")
	}

	found := false
	for _, candidate := range pos.LegalMoves() {
		if candidate.UCI() == mv.UCI() {
			found = true
		}
	}
	if !found {
		t.Fatal("expected e5d6 to be a legal move")
	}

	next := pos.MakeMove(mv)
	if _, _, ok := next.Piece(position.D5); ok {
		t.Error("expected the captured black pawn to be removed from d5")
	}
	if next.HalfMoveClock() != 0 {
		t.Errorf("expected half-move clock to reset on capture: got=%d", next.HalfMoveClock())
	}
}

func TestLegalMoves_KingsideCastling(t *testing.T) {
	t.Parallel()
	pos := mustPosition(t, "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")

	mv, ok := FromUCI("e1g1")
	if !ok {
		t.Fatal("unexpected malformed move")
	}

	found := false
	for _, candidate := range pos.LegalMoves() {
		if candidate.UCI() == mv.UCI() {
			found = true
		}
	}
	if !found {
		t.Fatal("expected e1g1 (kingside castle) to be a legal move")
	}

	next := pos.MakeMove(mv)
	p, s, ok := next.Piece(position.F1)
	if !ok || p != PieceRook || s != SideWhite {
		t.Error("expected the white rook to land on f1")
	}
	if next.Castling().Has(WhiteKingside) || next.Castling().Has(WhiteQueenside) {
		t.Error("expected both white castling rights to be stripped after castling")
	}
}

func TestPieceBitboardsDisjoint(t *testing.T) {
	t.Parallel()
	pos := mustPosition(t, DefaultStartingPositionFEN)

	for _, mv := range pos.PseudoLegalMoves() {
		next := pos.MakeMove(mv)
		var seen bitmap
		for _, p := range next.pieces {
			if seen&p != 0 {
				t.Fatalf("piece bitboards overlap after %s", mv)
			}
			seen |= p
		}
		if next.colors[0]&next.colors[1] != 0 {
			t.Fatalf("colour bitboards overlap after %s", mv)
		}
	}
}

func TestLegalMovesSubsetOfPseudoLegal(t *testing.T) {
	t.Parallel()
	pos := mustPosition(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")

	pseudo := make(map[Move]bool)
	for _, mv := range pos.PseudoLegalMoves() {
		pseudo[mv] = true
	}
	for _, mv := range pos.LegalMoves() {
		if !pseudo[mv] {
			t.Fatalf("legal move %s is not pseudo-legal", mv)
		}
		next := pos.MakeMove(mv)
		if next.IsAttacked(next.KingSquare(pos.SideToMove()), pos.SideToMove()) {
			t.Fatalf("legal move %s leaves the mover's king in check", mv)
		}
	}
}

func TestPawnPromotionCarriesPromotionKind(t *testing.T) {
	t.Parallel()
	pos := mustPosition(t, "7k/P7/8/8/8/8/8/K7 w - - 0 1")

	promotions := 0
	for _, mv := range pos.LegalMoves() {
		if mv.From == position.A7 {
			promotions++
			if mv.Promote != PieceKnight && mv.Promote != PieceBishop &&
				mv.Promote != PieceRook && mv.Promote != PieceQueen {
				t.Errorf("promotion move %s carries invalid promotion kind %s", mv, mv.Promote)
			}
		}
	}
	if promotions != 4 {
		t.Errorf("expected 4 promotion candidates, got %d", promotions)
	}
}

func TestEnPassantTargetSetOnlyWhenCaptureIsPossible(t *testing.T) {
	t.Parallel()

	// No black pawn adjacent to d4: double push must not set an ep target.
	pos := mustPosition(t, "4k3/8/8/8/8/8/PPPPPPPP/4K3 w - - 0 1")
	mv, ok := FromUCI("d2d4")
	if !ok {
		t.Fatal("unexpected malformed move")
	}
	next := pos.MakeMove(mv)
	if _, ok := next.EnPassantTarget(); ok {
		t.Error("expected no en-passant target without an adjacent opposing pawn")
	}

	// Black pawn on c4 sits beside the landing square: ep target must be set.
	pos = mustPosition(t, "4k3/8/8/8/2p5/8/PPPPPPPP/4K3 w - - 0 1")
	next = pos.MakeMove(mv)
	sq, ok := next.EnPassantTarget()
	if !ok || sq != position.D3 {
		t.Errorf("expected en-passant target d3, got %v (ok=%v)", sq, ok)
	}
}

func TestMoveRoundTripsThroughUCI(t *testing.T) {
	t.Parallel()
	for _, uci := range []string{"e2e4", "e7e8q", "a7a8n", "g1f3"} {
		mv, ok := FromUCI(uci)
		if !ok {
			t.Fatalf("unexpected malformed move %q", uci)
		}
		reparsed, ok := FromUCI(mv.UCI())
		if !ok || reparsed != mv {
			t.Errorf("round-trip mismatch for %q: got %q", uci, mv.UCI())
		}
	}
}
