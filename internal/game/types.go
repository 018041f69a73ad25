package game

import (
	"errors"
	"fmt"
	"time"
)

// Matrix dimensions. Row 0 is the bottom row; "down" decreases Y.
const (
	Width  = 10
	Height = 20
)

var (
	// ErrBlocked is returned when a move, rotation or tick would collide.
	// The engine state is left exactly as it was.
	ErrBlocked = errors.New("game: action blocked")

	// ErrTopOut is returned when a new piece cannot enter the matrix or a
	// piece comes to rest above the ceiling. The game is over afterwards.
	ErrTopOut = errors.New("game: top out")
)

// Offset is a signed 2D displacement. It is never bounds-checked.
type Offset struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns o translated by d.
func (o Offset) Add(d Offset) Offset {
	return Offset{X: o.X + d.X, Y: o.Y + d.Y}
}

// Coordinate is an absolute cell position inside the matrix.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// InBounds reports whether c addresses a real matrix cell.
func (c Coordinate) InBounds() bool {
	return c.X >= 0 && c.X < Width && c.Y >= 0 && c.Y < Height
}

// Direction is a horizontal movement direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// delta returns the one-cell offset for the direction.
func (d Direction) delta() Offset {
	switch d {
	case DirLeft:
		return Offset{X: -1}
	case DirRight:
		return Offset{X: 1}
	default:
		panic(fmt.Sprintf("game: invalid direction %d", int(d)))
	}
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Spin is a rotation direction.
type Spin int

const (
	Clockwise Spin = iota
	CounterClockwise
)

// down is the gravity step.
var down = Offset{Y: -1}

// Config holds the tunable parameters of a game session.
type Config struct {
	Seed     uint64        `json:"seed"`      // 0 picks a time-based seed
	TickRate time.Duration `json:"tick_rate"` // Gravity interval, owned by the caller
}

// DefaultConfig returns a sensible default game configuration.
func DefaultConfig() Config {
	return Config{
		Seed:     0,
		TickRate: 500 * time.Millisecond,
	}
}
