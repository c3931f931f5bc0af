package engine

import (
	"context"
	"strings"
	"time"

	"github.com/estalpaert/cheess/board"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// negInfinity is a sentinel below any real evaluation, used to seed the
// best-score tracking inside negamax.
const negInfinity int32 = -1 << 30

// rootAlpha and rootBeta are the bounds the iterative-deepening loop opens
// every depth with.
const (
	rootAlpha int32 = -150000
	rootBeta  int32 = 100000
)

// PV drives iterative deepening over pos: the fixed depth schedule 0..5 in
// full, then escalating depth while the score remains negative (an attempt
// to search past a loss into a claimed draw), capped at MaxSearchDepth. A
// non-zero timeBudget is divided by expectedGameMoves into a per-move time
// slice that can cut the schedule short once depth 1 has returned a move.
func (e *Engine) PV(ctx context.Context, pos *board.Position, timeBudget time.Duration) PrincipalVariation {
	e.nodes = 0
	startTime := time.Now()
	slice := movetimeSlice(timeBudget)

	cancel := e.clock.start(ctx, slice)
	defer cancel()

	var line []board.Move
	var score int32
	mate := false

	for d := uint8(0); ; d++ {
		if d > 1 && e.clock.doneByMovetime() {
			break
		}
		if d > fixedDepthSchedule && (score >= 0 || d > MaxSearchDepth) {
			break
		}

		candidateLine, candidateScore := e.negamax(pos, d, rootAlpha, rootBeta)
		line = candidateLine
		score = candidateScore
		e.logProgress(d, score, line, startTime)

		if abs(score) == mateScore {
			mate = true
			break
		}
	}

	return newPrincipalVariation(reverseMoves(line), score, mate)
}

// negamax returns the best line found from pos (in reverse-of-play order,
// deepest move first) together with its score from pos's side to move's
// perspective.
func (e *Engine) negamax(pos *board.Position, depth uint8, alpha, beta int32) ([]board.Move, int32) {
	e.nodes++

	legal := pos.LegalMoves()
	if len(legal) == 0 {
		if pos.InCheck() {
			return nil, -mateScore
		}
		return nil, 0
	}
	if depth == 0 {
		return nil, e.Evaluate(pos)
	}

	if ttMove, ok := e.tt.get(pos); ok {
		for i, mv := range legal {
			if mv == ttMove {
				ordered := make([]board.Move, 0, len(legal))
				ordered = append(ordered, mv)
				for j := len(legal) - 1; j >= 0; j-- {
					if j != i {
						ordered = append(ordered, legal[j])
					}
				}
				legal = ordered
				break
			}
		}
	}

	var bestLine []board.Move
	var bestMove board.Move
	haveBest := false
	bestScore := negInfinity

	for _, mv := range legal {
		next := pos.MakeMove(mv)
		count := e.rep.register(next)
		childLine, childScore := e.negamax(next, depth-1, -beta, -alpha)
		score := -childScore
		if score < 0 && (next.HalfMoveClock() >= 100 || count >= 3) {
			score = 0
		}
		e.rep.unregister(next)

		if score > bestScore {
			bestScore = score
			bestMove = mv
			bestLine = childLine
			haveBest = true
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}

	if haveBest {
		e.tt.set(pos, bestMove)
	}

	line := make([]board.Move, len(bestLine)+1)
	copy(line, bestLine)
	line[len(bestLine)] = bestMove
	return line, bestScore
}

func reverseMoves(mvs []board.Move) []board.Move {
	out := make([]board.Move, len(mvs))
	for i, mv := range mvs {
		out[len(mvs)-1-i] = mv
	}
	return out
}

func (e *Engine) logProgress(depth uint8, score int32, line []board.Move, startTime time.Time) {
	elapsed := time.Since(startTime)
	printer := message.NewPrinter(language.English)
	uci := make([]string, len(line))
	for i, mv := range line {
		uci[len(line)-1-i] = mv.UCI()
	}
	e.logger(printer.Sprintf("info depth %d score %s time %d nodes %d nps %.0f pv %s",
		depth, formatScoreUCI(score), elapsed.Milliseconds(), e.nodes,
		float64(e.nodes)/(elapsed+time.Millisecond).Seconds(), strings.Join(uci, " ")))
}

func formatScoreUCI(score int32) string {
	if score == mateScore {
		return "mate 1"
	}
	if score == -mateScore {
		return "mate -1"
	}
	return message.NewPrinter(language.English).Sprintf("cp %d", score)
}
