// Package sampler draws cards uniformly at random from tier pools.
//
// A Sampler never modifies the pools it draws from. Draws are independent from
// each other: only the cards picked inside a single DrawMany call are distinct.
package sampler

import (
	crand "crypto/rand"
	"encoding/binary"
	mrand "math/rand"
	"math/rand/v2"
	"time"

	"github.com/arcanaland/boosterbox/internal/card"
)

// Sampler draws cards with an injected random source.
type Sampler struct {
	rng    *rand.Rand
	legacy *mrand.Rand
}

// New creates a sampler around rng. Tests pass a seeded generator.
func New(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng, legacy: mrand.New(source{rng})}
}

// source lets math/rand consumers share the sampler's generator.
type source struct{ rng *rand.Rand }

func (s source) Int63() int64   { return s.rng.Int64() }
func (s source) Uint64() uint64 { return s.rng.Uint64() }
func (source) Seed(int64)       {}

// NewDefault creates a sampler seeded from crypto/rand, falling back to the
// clock if the system entropy source fails.
func NewDefault() *Sampler {
	return New(rand.New(rand.NewPCG(newSeed(), newSeed())))
}

func newSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}

// Source exposes the generator as a math/rand value for libraries that
// still take one, such as weighted choosers.
func (s *Sampler) Source() *mrand.Rand {
	return s.legacy
}

// Float64 returns a uniform value in [0,1).
func (s *Sampler) Float64() float64 {
	return s.rng.Float64()
}

// DrawOne returns one card from pool, with replacement. It reports false when
// the pool is empty.
func (s *Sampler) DrawOne(pool []*card.Card) (*card.Card, bool) {
	if len(pool) == 0 {
		return nil, false
	}
	return pool[s.rng.IntN(len(pool))], true
}

// DrawMany returns up to n distinct cards from pool. The result is shorter than
// n when the pool runs out.
func (s *Sampler) DrawMany(pool []*card.Card, n int) []*card.Card {
	if n <= 0 || len(pool) == 0 {
		return []*card.Card{}
	}

	work := make([]*card.Card, len(pool))
	copy(work, pool)

	selected := make([]*card.Card, 0, min(n, len(work)))
	for i := 0; i < n && len(work) > 0; i++ {
		idx := s.rng.IntN(len(work))
		selected = append(selected, work[idx])
		// Swap-remove keeps the remaining cards equally likely
		work[idx] = work[len(work)-1]
		work = work[:len(work)-1]
	}
	return selected
}

// DrawFirst draws one card from the first non-empty pool, in order. It reports
// false when every pool is empty.
func (s *Sampler) DrawFirst(pools ...[]*card.Card) (*card.Card, bool) {
	for _, pool := range pools {
		if len(pool) > 0 {
			return s.DrawOne(pool)
		}
	}
	return nil, false
}

// Shuffle permutes cards in place.
func (s *Sampler) Shuffle(cards []*card.Card) {
	s.rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}
