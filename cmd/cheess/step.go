package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/estalpaert/cheess/board"
)

func step(fen string) error {
	log.Println("============ step")
	var (
		timesLegalMoves []time.Duration
		timesMakeMove   []time.Duration
		timesState      []time.Duration
	)
	pos, err := board.UnmarshalFEN(fen)
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(1))

stepLoop:
	for n := 0; n < 5000; n++ {
		t1 := time.Now()
		mvs := pos.LegalMoves()
		t2 := time.Now()
		timesLegalMoves = append(timesLegalMoves, t2.Sub(t1))
		if len(mvs) == 0 {
			return fmt.Errorf("unexpected move exhaustion: state=%s", pos.State())
		}
		mv := mvs[rng.Intn(len(mvs))]

		t1 = time.Now()
		pos = pos.MakeMove(mv)
		t2 = time.Now()
		timesMakeMove = append(timesMakeMove, t2.Sub(t1))

		t1 = time.Now()
		st := pos.State()
		t2 = time.Now()
		timesState = append(timesState, t2.Sub(t1))

		fmt.Printf("\n===== [#%d] %s\n", n/2+1, mv)
		fmt.Println(pos.Draw())
		fmt.Println(pos.FEN())
		fmt.Println(pos.DebugString())
		switch {
		case !st.IsRunning():
			break stepLoop
		default:
			<-time.Tick(10 * time.Millisecond)
		}
	}

	avg := func(ds []time.Duration) time.Duration {
		var s time.Duration
		for _, d := range ds {
			s += d
		}
		return time.Duration(s.Seconds() / float64(len(ds)) * float64(time.Second))
	}

	fmt.Println()
	fmt.Println(pos.State())
	fmt.Println("legalmoves:", avg(timesLegalMoves))
	fmt.Println("makemove:", avg(timesMakeMove))
	fmt.Println("state:", avg(timesState))
	return nil
}
