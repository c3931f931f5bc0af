package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/estalpaert/cheess/board"
)

func movegen(fen string, draw bool) error {
	log.Println("============ movegen")
	pos, err := board.UnmarshalFEN(fen)
	if err != nil {
		return err
	}
	fmt.Println("to move:", pos.SideToMove())
	fmt.Println(pos.DebugString())
	fmt.Println(pos.Draw())
	fmt.Println(pos.State())
	dumpMoves(pos)

	if draw {
		for _, mv := range pos.LegalMoves() {
			next := pos.MakeMove(mv)
			fmt.Println(mv)
			fmt.Println(next.Draw())
			fmt.Println(next.FEN())
		}
	}
	return nil
}

func dumpMoves(pos *board.Position) {
	mvs := pos.LegalMoves()
	for i, mv := range mvs {
		p, _, _ := pos.Piece(mv.From)
		fmt.Printf("option %*d: [%s] [%s] %s => %s (cap=%v) (enp=%v) (cas=%v) (pro=%s)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv.UCI(), mv.Algebra(p), mv.From, mv.To, mv.IsCapture, mv.IsEnPassant, mv.IsCastle, mv.Promote.SymbolFEN(board.SideWhite))
	}
}
