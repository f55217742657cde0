package game

import "math/rand/v2"

// Randomizer names accepted by Config.
const (
	RandomizerBag     = "bag"
	RandomizerUniform = "uniform"
	RandomizerFixed   = "fixed"
)

// Randomizer picks the catalog index of the next piece.
type Randomizer interface {
	Next() int
}

// Bag deals every index once, in shuffled order, before reshuffling.
type Bag struct {
	rng  *rand.Rand
	n    int
	next []int
}

func NewBag(n int, rng *rand.Rand) *Bag {
	return &Bag{rng: rng, n: n}
}

func (b *Bag) Next() int {
	if len(b.next) == 0 {
		bag := make([]int, b.n)
		for i := range bag {
			bag[i] = i
		}
		b.rng.Shuffle(len(bag), func(i, j int) {
			bag[i], bag[j] = bag[j], bag[i]
		})
		b.next = bag
	}

	piece := b.next[0]
	b.next = b.next[1:]
	return piece
}

// Uniform draws every index independently.
type Uniform struct {
	rng *rand.Rand
	n   int
}

func NewUniform(n int, rng *rand.Rand) *Uniform {
	return &Uniform{rng: rng, n: n}
}

func (u *Uniform) Next() int {
	return u.rng.IntN(u.n)
}

// Fixed always returns the same index.
type Fixed int

func (f Fixed) Next() int {
	return int(f)
}

func newRandomizer(cfg Config, n int) Randomizer {
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	switch cfg.Randomizer {
	case RandomizerUniform:
		return NewUniform(n, rng)
	case RandomizerFixed:
		return Fixed(cfg.Piece)
	default:
		return NewBag(n, rng)
	}
}
