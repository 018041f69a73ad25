package game

import (
	"github.com/rs/zerolog"
)

// Engine is the rules engine. It owns the matrix, the bag and at most one
// falling piece (the cursor), and is driven synchronously by a single caller.
type Engine struct {
	Config Config
	matrix Matrix
	bag    *Bag
	cursor *Piece // nil while no piece is falling
	over   bool
	log    zerolog.Logger
	onLock func(Piece) // Callback after every lock with the locked piece
}

// Option customises an Engine at construction.
type Option func(*Engine)

// WithSource replaces the random source feeding the bag.
func WithSource(src Source) Option {
	return func(e *Engine) {
		e.bag = NewBag(src)
	}
}

// WithLogger sets the logger used for engine debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// NewEngine creates an engine with a blank matrix, an empty bag and no cursor.
func NewEngine(config Config, opts ...Option) *Engine {
	e := &Engine{
		Config: config,
		matrix: NewMatrix(),
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.bag == nil {
		e.bag = NewBag(NewSource(config.Seed))
	}
	return e
}

// OnLock sets a callback invoked after every lock with the locked piece.
func (e *Engine) OnLock(fn func(Piece)) {
	e.onLock = fn
}

// Cursor returns the falling piece, if any.
func (e *Engine) Cursor() (Piece, bool) {
	if e.cursor == nil {
		return Piece{}, false
	}
	return *e.cursor, true
}

// Matrix returns a copy of the playing field.
func (e *Engine) Matrix() Matrix {
	return e.matrix
}

// Occupied reports whether the matrix cell at c is filled. Panics if c is out
// of range.
func (e *Engine) Occupied(c Coordinate) bool {
	return e.matrix.Occupied(c)
}

// Next returns the kind the next Spawn will use.
func (e *Engine) Next() Kind {
	return e.bag.Peek()
}

// GameOver reports whether the stack has topped out.
func (e *Engine) GameOver() bool {
	return e.over
}

// Spawn takes the next kind from the bag and makes it the cursor. Spawning
// over an existing cursor is a caller bug and panics. If the new piece would
// collide the game ends and ErrTopOut is returned.
func (e *Engine) Spawn() error {
	if e.over {
		return ErrTopOut
	}
	if e.cursor != nil {
		panic("game: spawn while a piece is still falling")
	}
	refill := e.bag.Len() == 0
	p := SpawnPiece(e.bag.Next())
	if refill {
		e.log.Debug().Msg("bag refilled")
	}
	if e.matrix.IsClipping(p) {
		e.over = true
		e.log.Debug().Stringer("kind", p.Kind).Msg("top out on spawn")
		return ErrTopOut
	}
	e.cursor = &p
	e.log.Debug().Stringer("kind", p.Kind).Int("x", p.Position.X).Int("y", p.Position.Y).Msg("spawned")
	return nil
}

// Lock writes the cursor's cells into the matrix and clears the cursor.
// Locking without a cursor, or with a cursor that is not placeable, is a
// caller bug and panics.
func (e *Engine) Lock() {
	if e.cursor == nil {
		panic("game: lock without a falling piece")
	}
	p := *e.cursor
	if !e.matrix.IsPlaceable(p) {
		panic("game: lock of a piece that is not placeable")
	}
	cells, _ := p.Cells()
	for _, c := range cells {
		e.matrix.Set(c, true)
	}
	e.cursor = nil
	e.log.Debug().Stringer("kind", p.Kind).Stringer("rotation", p.Rotation).
		Int("x", p.Position.X).Int("y", p.Position.Y).Msg("locked")

	if e.onLock != nil {
		e.onLock(p)
	}
}

// ClearLines removes every full row and returns how many were removed.
func (e *Engine) ClearLines() int {
	n := e.matrix.ClearFullRows()
	if n > 0 {
		e.log.Debug().Int("rows", n).Msg("lines cleared")
	}
	return n
}

// Reset starts a new game with a blank matrix, keeping the bag and its source.
func (e *Engine) Reset() {
	e.matrix = NewMatrix()
	e.cursor = nil
	e.over = false
	e.log.Debug().Msg("reset")
}
