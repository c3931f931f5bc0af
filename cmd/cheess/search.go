package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/estalpaert/cheess/board"
	"github.com/estalpaert/cheess/engine"
)

func search(fen string, movetimeSeconds int) error {
	log.Println("============ search")
	pos, err := board.UnmarshalFEN(fen)
	if err != nil {
		return err
	}
	e := engine.NewEngine()

	fmt.Println(pos.Draw())
	fmt.Println(pos.FEN())
	fmt.Println(pos.DebugString())

	var history []board.Move
	for pos.State().IsRunning() {
		pv := e.PV(context.Background(), pos, time.Duration(movetimeSeconds)*time.Second)
		if pv.Len() == 0 {
			break
		}
		mv := pv.Moves()[0]
		pos = pos.MakeMove(mv)
		history = append(history, mv)

		fmt.Printf("\n>>> %s\n", mv)
		fmt.Println(pv)
		fmt.Println(pos.FEN())
		fmt.Println(pos.Draw())
	}

	finalState := pos.State()
	if finalState.IsDraw() {
		log.Println("=============== game ended in a draw:", finalState)
	} else {
		log.Println("=============== game ended:", finalState)
	}
	fmt.Println(pos.FEN())
	dumpHistory(history)

	return nil
}

func dumpHistory(mvs []board.Move) {
	for i, mv := range mvs {
		if i%2 == 0 {
			fmt.Printf("%d.", i/2+1)
		}
		fmt.Printf("%s ", mv)
	}
	fmt.Println()
}
