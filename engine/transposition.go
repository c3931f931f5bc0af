package engine

import "github.com/estalpaert/cheess/board"

// bytesPerEntry mirrors the teacher's hash-sizing arithmetic: a hash table
// entry is costed at 40 bytes when turning a byte budget into an entry
// capacity cap.
const bytesPerEntry = 40

const (
	minHashSizeBytes     = 128 << 20
	defaultHashSizeBytes = 2000 << 20
	maxHashSizeBytes     = 2000 << 20
)

// transpositionTable records the best move found so far for a position,
// keyed by its structural hash, for move ordering on subsequent visits. It
// intentionally carries none of the teacher's EntryType/age/depth bookkeeping:
// just enough to move one move to the front of the candidate list.
type transpositionTable struct {
	entries map[uint64]board.Move
	cap     int
}

func newTranspositionTable(sizeBytes uint64) *transpositionTable {
	t := &transpositionTable{}
	t.resize(sizeBytes)
	return t
}

// resize changes the capacity cap without evicting existing entries;
// eviction is implicit because set silently drops once the table is full.
func (t *transpositionTable) resize(sizeBytes uint64) {
	sizeBytes = max(min(sizeBytes, uint64(maxHashSizeBytes)), uint64(minHashSizeBytes))
	t.cap = int(sizeBytes / bytesPerEntry)
	if t.entries == nil {
		t.entries = make(map[uint64]board.Move)
	}
}

func (t *transpositionTable) clear() {
	t.entries = make(map[uint64]board.Move)
}

func (t *transpositionTable) get(pos *board.Position) (board.Move, bool) {
	mv, ok := t.entries[pos.TTKey()]
	return mv, ok
}

func (t *transpositionTable) set(pos *board.Position, mv board.Move) {
	key := pos.TTKey()
	if _, exists := t.entries[key]; !exists && len(t.entries) >= t.cap {
		return
	}
	t.entries[key] = mv
}
