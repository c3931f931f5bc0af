package engine

import "fmt"

// DefaultLogger prints search progress to stdout, matching the teacher's
// own default.
func DefaultLogger(a ...any) {
	fmt.Println(a...)
}

type engineConfig struct {
	hashSizeBytes uint64
	logger        func(...any)
}

// Option configures an Engine at construction time.
type Option func(*engineConfig)

// WithLogger overrides the engine's progress logger.
func WithLogger(logger func(...any)) Option {
	return func(c *engineConfig) { c.logger = logger }
}

// WithHashSize sets the transposition table's byte budget.
func WithHashSize(bytes uint64) Option {
	return func(c *engineConfig) { c.hashSizeBytes = bytes }
}

// Engine is a single-threaded, synchronous search engine: a transposition
// table and repetition map persist across PV calls within a game, cleared
// only by NewGame.
type Engine struct {
	tt     *transpositionTable
	rep    repetitionMap
	clock  *clock
	logger func(...any)
	nodes  uint32
}

// NewEngine constructs an Engine, defaulting to a 2GB transposition table
// and a fmt.Println logger.
func NewEngine(opts ...Option) *Engine {
	cfg := &engineConfig{hashSizeBytes: defaultHashSizeBytes, logger: DefaultLogger}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Engine{
		tt:     newTranspositionTable(cfg.hashSizeBytes),
		rep:    newRepetitionMap(),
		clock:  newClock(),
		logger: cfg.logger,
	}
}

// NewGame clears the transposition table and repetition map so a fresh
// game does not inherit stale ordering hints or occurrence counts.
func (e *Engine) NewGame() {
	e.tt.clear()
	e.rep = newRepetitionMap()
}

// SetHashSize resizes the transposition table's capacity cap in bytes,
// clamped to [128MB, 2000MB]. Existing entries are not evicted.
func (e *Engine) SetHashSize(bytes uint64) {
	e.tt.resize(bytes)
}
