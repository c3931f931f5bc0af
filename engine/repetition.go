package engine

import "github.com/estalpaert/cheess/board"

// repetitionMap counts, during a single search, how many times each
// position hash has been reached along the current line. Go's zero-value
// map semantics mean an unseen key reads as 0 for free.
type repetitionMap map[uint64]int

func newRepetitionMap() repetitionMap {
	return make(repetitionMap)
}

// register increments the occurrence count for pos and returns the new
// count, used by the search to decide whether to claim a draw.
func (m repetitionMap) register(pos *board.Position) int {
	key := pos.Hash()
	m[key]++
	return m[key]
}

// unregister backtracks a register call.
func (m repetitionMap) unregister(pos *board.Position) {
	key := pos.Hash()
	m[key]--
	if m[key] <= 0 {
		delete(m, key)
	}
}
