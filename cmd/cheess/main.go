package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/estalpaert/cheess/board"
	"github.com/estalpaert/cheess/uci"
)

const (
	exitOK  = 0
	exitErr = 1
)

var (
	movegenRun  = flag.Bool("movegen", false, "run movegen mode")
	movegenDraw = flag.Bool("movegen.draw", false, "draw applied moves in movegen mode")

	stepRun = flag.Bool("step", false, "run step mode")

	searchRun      = flag.Bool("search", false, "run search mode")
	searchMovetime = flag.Int("search.movetime", 5, "search movetime in seconds in search mode")

	perftRun      = flag.Bool("perft", false, "run perft mode")
	perftDepth    = flag.Int("perft.depth", 5, "perft depth in perft mode")
	perftParallel = flag.Bool("perft.parallel", true, "fan the perft root moves out across goroutines")
)

func main() {
	flag.Parse()

	if err := realMain(flag.Args()); err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain(args []string) error {
	fen := board.DefaultStartingPositionFEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}

	switch {
	case *movegenRun:
		return movegen(fen, *movegenDraw)
	case *stepRun:
		return step(fen)
	case *searchRun:
		return search(fen, *searchMovetime)
	case *perftRun:
		return perft(fen, *perftDepth, *perftParallel)
	default:
		return uci.NewInterface().Run()
	}
}
