// Package bench provides perft (performance test / move-generator
// correctness counting) over the board package, grounded in the teacher's
// own bench/perft.go.
package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/estalpaert/cheess/board"
)

// Counts tallies a perft run's leaf statistics.
type Counts struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

// Perft counts the leaf nodes reachable from fen at depth, optionally
// fanning the root moves out over goroutines, and streams a line per root
// move plus a final summary line to out (which may be nil).
func Perft(depth int, fen string, parallel bool, out chan string) (Counts, error) {
	pos, err := board.UnmarshalFEN(fen)
	if err != nil {
		return Counts{}, err
	}

	var c Counts
	start := time.Now()
	if parallel {
		runPerftParallel(pos, depth, true, out, &c)
	} else {
		runPerft(pos, depth, true, out, &c)
	}
	elapsed := time.Since(start)

	if out != nil {
		out <- message.NewPrinter(language.English).
			Sprintf("d=%d nodes=%d rate=%dn/s cap=%d enp=%d cas=%d pro=%d chk=%d (%.3fs elapsed)",
				depth, c.Nodes, int(float64(c.Nodes)/elapsed.Seconds()), c.Captures, c.EnPassant, c.Castles, c.Promotions, c.Checks, elapsed.Seconds())
	}
	return c, nil
}

func runPerft(pos *board.Position, d int, root bool, out chan string, c *Counts) uint64 {
	if d == 0 {
		atomic.AddUint64(&c.Nodes, 1)
		return 1
	}

	var sum uint64
	for _, mv := range pos.LegalMoves() {
		next := pos.MakeMove(mv)
		var child uint64
		if d == 1 {
			child = 1
			tallyLeaf(c, mv, next)
		} else {
			child = runPerft(next, d-1, false, out, c)
		}
		if root && out != nil {
			out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
		}
		sum += child
	}
	return sum
}

// runPerftParallel fans the root moves (only) out across goroutines; the
// remainder of the tree is walked sequentially within each goroutine.
func runPerftParallel(pos *board.Position, d int, root bool, out chan string, c *Counts) uint64 {
	if d == 0 {
		atomic.AddUint64(&c.Nodes, 1)
		return 1
	}
	if !root {
		return runPerft(pos, d, false, out, c)
	}

	moves := pos.LegalMoves()
	children := make([]uint64, len(moves))
	var wg sync.WaitGroup
	for i, mv := range moves {
		i, mv := i, mv
		wg.Add(1)
		go func() {
			defer wg.Done()
			next := pos.MakeMove(mv)
			var child uint64
			if d == 1 {
				child = 1
				tallyLeaf(c, mv, next)
			} else {
				child = runPerft(next, d-1, false, out, c)
			}
			children[i] = child
		}()
	}
	wg.Wait()

	var sum uint64
	for i, mv := range moves {
		if out != nil {
			out <- fmt.Sprintf("%s: %d", mv.UCI(), children[i])
		}
		sum += children[i]
	}
	return sum
}

func tallyLeaf(c *Counts, mv board.Move, next *board.Position) {
	atomic.AddUint64(&c.Nodes, 1)
	if mv.IsCapture {
		atomic.AddUint64(&c.Captures, 1)
	}
	if mv.IsEnPassant {
		atomic.AddUint64(&c.EnPassant, 1)
	}
	if mv.IsCastle {
		atomic.AddUint64(&c.Castles, 1)
	}
	if mv.Promote != board.PieceUnknown {
		atomic.AddUint64(&c.Promotions, 1)
	}
	if next.InCheck() {
		atomic.AddUint64(&c.Checks, 1)
	}
}
