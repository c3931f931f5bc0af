package position

import "testing"

func TestNewSquareFromNotation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		notation string
		want     Square
		wantErr  bool
	}{
		{name: "ok 1", notation: "e4", want: E4},
		{name: "ok 2", notation: "h8", want: H8},
		{name: "ok 3", notation: "a1", want: A1},
		{name: "bad 1", notation: "", wantErr: true},
		{name: "bad 2", notation: "a", wantErr: true},
		{name: "bad 3", notation: "4", wantErr: true},
		{name: "bad 4", notation: "m4", wantErr: true},
		{name: "bad 5", notation: "e9", wantErr: true},
		{name: "bad 6", notation: "e0", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewSquareFromNotation(tt.notation)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected an error for notation %q", tt.notation)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("unexpected result: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestSquareStringRoundTrip(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"a1", "e4", "h8", "d5"} {
		sq, ok := SquareFromName(name)
		if !ok {
			t.Fatalf("unexpected parse failure for %q", name)
		}
		if got := sq.String(); got != name {
			t.Errorf("unexpected round-trip: got=%q want=%q", got, name)
		}
	}
}

func TestStepFileWrapDetection(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		sq       Square
		side     Side
		fn       func(Square, Side) (Square, bool)
		wantWrap bool
		want     Square
	}{
		{name: "right from a-file stays on board", sq: A4, side: SideWhite, fn: Right, want: B4},
		{name: "right from h-file wraps off board", sq: H4, side: SideWhite, fn: Right, wantWrap: true},
		{name: "left from a-file wraps off board", sq: A4, side: SideWhite, fn: Left, wantWrap: true},
		{name: "black right mirrors white left", sq: H4, side: SideBlack, fn: Right, want: G4},
		{name: "front-right diagonal off the h-file wraps", sq: H4, side: SideWhite, fn: FrontRight, wantWrap: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := tt.fn(tt.sq, tt.side)
			if tt.wantWrap {
				if ok {
					t.Errorf("expected wraparound to report not-ok, got square=%v", got)
				}
				return
			}
			if !ok {
				t.Fatalf("unexpected wraparound reported for %v from %v", tt.sq, tt.side)
			}
			if got != tt.want {
				t.Errorf("unexpected destination: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestStepRankWrapDetection(t *testing.T) {
	t.Parallel()
	if _, ok := Front(A8, SideWhite); ok {
		t.Error("expected stepping off the top rank to report not-ok")
	}
	if _, ok := Back(A1, SideWhite); ok {
		t.Error("expected stepping off the bottom rank to report not-ok")
	}
	if got, ok := Front(A1, SideWhite); !ok || got != A2 {
		t.Errorf("unexpected front step: got=%v ok=%v", got, ok)
	}
}

func TestPromotionAndDoublePushCandidates(t *testing.T) {
	t.Parallel()
	if !PromotionCandidate(A7, SideWhite) {
		t.Error("expected a7 to be a White promotion candidate")
	}
	if PromotionCandidate(A6, SideWhite) {
		t.Error("expected a6 not to be a White promotion candidate")
	}
	if !PromotionCandidate(A2, SideBlack) {
		t.Error("expected a2 to be a Black promotion candidate")
	}
	if !DoublePushCandidate(E2, SideWhite) {
		t.Error("expected e2 to be a White double-push candidate")
	}
	if !DoublePushCandidate(E7, SideBlack) {
		t.Error("expected e7 to be a Black double-push candidate")
	}
	if DoublePushCandidate(E3, SideWhite) {
		t.Error("expected e3 not to be a White double-push candidate")
	}
}

func TestOppositeSide(t *testing.T) {
	t.Parallel()
	if SideWhite.Opposite() != SideBlack {
		t.Error("expected White's opposite to be Black")
	}
	if SideBlack.Opposite() != SideWhite {
		t.Error("expected Black's opposite to be White")
	}
}
