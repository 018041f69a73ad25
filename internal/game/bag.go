package game

import (
	"math/rand/v2"
	"time"
)

// Source yields uniformly distributed integers in [0, n). *rand.Rand from
// math/rand/v2 satisfies it; tests substitute a deterministic one.
type Source interface {
	IntN(n int) int
}

// NewSource returns a PCG-backed source. A zero seed is replaced by one
// derived from the clock.
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Bag hands out kinds in shuffled runs of seven, each run a permutation of
// all kinds.
type Bag struct {
	queue []Kind
	src   Source
}

// NewBag returns an empty bag drawing its shuffles from src.
func NewBag(src Source) *Bag {
	return &Bag{
		queue: make([]Kind, 0, len(AllKinds)),
		src:   src,
	}
}

// Len returns the number of kinds left before the next refill.
func (b *Bag) Len() int {
	return len(b.queue)
}

// Refill loads a fresh Fisher-Yates shuffle of all kinds. Calling it on a
// non-empty bag is a caller bug and panics.
func (b *Bag) Refill() {
	if len(b.queue) != 0 {
		panic("game: refill of a non-empty bag")
	}
	b.queue = append(b.queue, AllKinds[:]...)
	for i := len(b.queue) - 1; i > 0; i-- {
		j := b.src.IntN(i + 1)
		b.queue[i], b.queue[j] = b.queue[j], b.queue[i]
	}
}

// Next pops the next kind, refilling first when the bag is empty.
func (b *Bag) Next() Kind {
	if len(b.queue) == 0 {
		b.Refill()
	}
	k := b.queue[0]
	b.queue = b.queue[1:]
	return k
}

// Peek returns the kind Next would return, refilling first when empty.
func (b *Bag) Peek() Kind {
	if len(b.queue) == 0 {
		b.Refill()
	}
	return b.queue[0]
}
