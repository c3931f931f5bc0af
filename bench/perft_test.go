package bench

import (
	"fmt"
	"testing"
)

func TestPerft(t *testing.T) {
	t.Parallel()

	// Results obtained from https://www.chessprogramming.org/Perft_Results.
	tests := map[string][]struct {
		depth     int
		wantNodes uint64
		onlyNodes bool
		wantCap   uint64
		wantEnp   uint64
		wantCas   uint64
		wantPro   uint64
	}{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1": {
			{depth: 0, wantNodes: 1},
			{depth: 1, wantNodes: 20},
			{depth: 2, wantNodes: 400},
			{depth: 3, wantNodes: 8_902, wantCap: 34},
			{depth: 4, wantNodes: 197_281, wantCap: 1_576},
			{depth: 5, wantNodes: 4_865_609, wantCap: 82_719, wantEnp: 258},
		},
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1": {
			{depth: 2, wantNodes: 2039, wantCap: 351, wantEnp: 1, wantCas: 91},
			{depth: 3, wantNodes: 97862, wantCap: 17102, wantEnp: 45, wantCas: 3162},
		},
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8": {
			{depth: 1, wantNodes: 44, onlyNodes: true},
			{depth: 2, wantNodes: 1_486, onlyNodes: true},
		},
	}

	for fen, constraints := range tests {
		fen := fen
		for _, tt := range constraints {
			tt := tt
			t.Run(fmt.Sprintf("perft(%d): %s", tt.depth, fen), func(t *testing.T) {
				t.Parallel()
				c, err := Perft(tt.depth, fen, false, nil)
				if err != nil {
					t.Fatal("unexpected error:", err)
				}

				if c.Nodes != tt.wantNodes {
					t.Errorf("unexpected nodes: got=%d want=%d", c.Nodes, tt.wantNodes)
				}
				if !tt.onlyNodes {
					if c.Captures != tt.wantCap {
						t.Errorf("unexpected captures: got=%d want=%d", c.Captures, tt.wantCap)
					}
					if c.EnPassant != tt.wantEnp {
						t.Errorf("unexpected en passant: got=%d want=%d", c.EnPassant, tt.wantEnp)
					}
					if c.Castles != tt.wantCas {
						t.Errorf("unexpected castles: got=%d want=%d", c.Castles, tt.wantCas)
					}
					if c.Promotions != tt.wantPro {
						t.Errorf("unexpected promotions: got=%d want=%d", c.Promotions, tt.wantPro)
					}
				}
			})
		}
	}
}
