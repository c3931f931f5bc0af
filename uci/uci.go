// Package uci is a text I/O dispatcher speaking the standard chess-engine
// UCI protocol. It builds positions through the board package
// (NewPosition, UnmarshalFEN, FromUCI, MakeMove) and drives the engine
// package's NewEngine, Engine.PV, Engine.NewGame, and Engine.SetHashSize --
// it has no search or move-generation logic of its own.
package uci

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/estalpaert/cheess/board"
	"github.com/estalpaert/cheess/engine"
)

const (
	EngineName    = "Cheess Engine"
	EngineVersion = "1"
	EngineAuthor  = "Elias Stalpaert"
)

const (
	minHashMB     = 128
	defaultHashMB = 2000
	maxHashMB     = 2000
)

type options struct {
	hashMB uint64
}

var defaultOptions = options{hashMB: defaultHashMB}

// Interface drives one UCI session over stdin/stdout.
type Interface struct {
	pos     *board.Position
	engine  *engine.Engine
	options options

	engineRunning bool
	engineCancel  context.CancelFunc
}

func NewInterface() *Interface {
	return &Interface{options: defaultOptions}
}

func (i *Interface) Run() error {
	ctx := context.Background()
	i.reset()

	reader := bufio.NewReader(os.Stdin)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		args := strings.Split(line, " ")
		switch args[0] {
		case "uci":
			i.commandUCI()
		case "ucinewgame":
			i.reset()
		case "isready":
			i.commandReady()
		case "setoption":
			i.commandSetOption(args[1:])
		case "position":
			i.commandPosition(args[1:])
		case "d":
			i.commandDraw()
		case "go":
			i.commandGo(ctx, args[1:])
		case "stop":
			i.commandStop()
		case "quit":
			return nil
		}
	}
}

func (i *Interface) commandUCI() {
	i.println(fmt.Sprintf("id name %s %s", EngineName, EngineVersion))
	i.println(fmt.Sprintf("id author %s", EngineAuthor))
	i.println(fmt.Sprintf("option name Hash type spin default %d min %d max %d", defaultHashMB, minHashMB, maxHashMB))
	i.println("uciok")
}

func (i *Interface) commandReady() {
	i.println("readyok")
}

func (i *Interface) commandSetOption(args []string) {
	if len(args) < 4 || args[0] != "name" || args[2] != "value" {
		return
	}
	name, valueStr := strings.ToLower(args[1]), args[3]
	if name != "hash" {
		return
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		return
	}
	if value < minHashMB {
		value = minHashMB
	}
	if value > maxHashMB {
		value = maxHashMB
	}
	i.options.hashMB = value
	if i.engine != nil {
		i.engine.SetHashSize(value << 20)
	}
}

func (i *Interface) commandPosition(args []string) {
	if i.engineRunning || len(args) == 0 {
		return
	}

	var fen string
	rest := args[1:]
	switch args[0] {
	case "fen":
		end := len(rest)
		for idx, a := range rest {
			if a == "moves" {
				end = idx
				break
			}
		}
		fen = strings.Join(rest[:end], " ")
	case "startpos":
		fen = board.DefaultStartingPositionFEN
	default:
		return
	}

	pos, err := board.UnmarshalFEN(fen)
	if err != nil {
		return
	}

	movesIdx := -1
	for idx, a := range rest {
		if a == "moves" {
			movesIdx = idx
			break
		}
	}
	if movesIdx >= 0 {
		for _, uciMove := range rest[movesIdx+1:] {
			mv, ok := board.FromUCI(uciMove)
			if !ok {
				return
			}
			pos = pos.MakeMove(mv)
		}
	}

	i.pos = pos
}

func (i *Interface) commandDraw() {
	if i.pos == nil {
		return
	}
	i.println(i.pos.Draw())
}

func (i *Interface) commandGo(ctx context.Context, args []string) {
	if i.pos == nil {
		return
	}

	timeBudget := parseTimeBudget(i.pos.SideToMove(), args)

	go func() {
		engineCtx, cancel := context.WithCancel(ctx)
		i.engineCancel = cancel
		i.engineRunning = true
		defer cancel()

		pv := i.engine.PV(engineCtx, i.pos, timeBudget)

		i.engineRunning = false
		if pv.Len() == 0 {
			return
		}
		i.println(fmt.Sprintf("bestmove %s", pv.Moves()[0].UCI()))
	}()
}

// parseTimeBudget pulls movetime, or this side's remaining clock time, out
// of a "go" command's arguments.
func parseTimeBudget(side board.Side, args []string) time.Duration {
	var wtime, btime, movetime time.Duration
	for idx := 0; idx+1 < len(args); idx += 2 {
		value, err := strconv.ParseInt(args[idx+1], 10, 64)
		if err != nil {
			continue
		}
		d := time.Duration(value) * time.Millisecond
		switch args[idx] {
		case "movetime":
			movetime = d
		case "wtime":
			wtime = d
		case "btime":
			btime = d
		}
	}
	if movetime > 0 {
		return movetime
	}
	if side == board.SideBlack {
		return btime
	}
	return wtime
}

func (i *Interface) commandStop() {
	if i.engineRunning && i.engineCancel != nil {
		i.engineCancel()
	}
}

func (i *Interface) reset() {
	i.commandStop()
	pos, _ := board.NewPosition()
	i.pos = pos
	if i.engine == nil {
		i.engine = engine.NewEngine(
			engine.WithHashSize(i.options.hashMB<<20),
			engine.WithLogger(i.println),
		)
		return
	}
	i.engine.NewGame()
}

func (i *Interface) println(a ...any) {
	fmt.Fprintln(os.Stdout, a...)
}
