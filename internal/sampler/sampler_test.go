package sampler_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/arcanaland/boosterbox/internal/card"
	"github.com/arcanaland/boosterbox/internal/sampler"
)

func newSampler(seed uint64) *sampler.Sampler {
	return sampler.New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func makePool(n int) []*card.Card {
	pool := make([]*card.Card, n)
	for i := range pool {
		// Same value for every card: distinctness must be by identity
		pool[i] = &card.Card{ID: "OP14-001", Rarity: "C"}
	}
	return pool
}

func contains(pool []*card.Card, c *card.Card) bool {
	for _, p := range pool {
		if p == c {
			return true
		}
	}
	return false
}

func TestDrawOne(t *testing.T) {
	s := newSampler(1)
	if c, ok := s.DrawOne(nil); ok || c != nil {
		t.Fatalf("empty pool should report false, got %v", c)
	}

	pool := makePool(5)
	for i := 0; i < 100; i++ {
		c, ok := s.DrawOne(pool)
		if !ok || !contains(pool, c) {
			t.Fatalf("draw %d returned a card outside the pool", i)
		}
	}
	if len(pool) != 5 {
		t.Fatal("DrawOne must not remove cards from the pool")
	}
}

func TestDrawManyDistinct(t *testing.T) {
	for _, k := range []int{0, 1, 5, 19, 20} {
		t.Run(fmt.Sprintf("k=%d", k), func(t *testing.T) {
			s := newSampler(uint64(k) + 7)
			pool := makePool(20)
			original := append([]*card.Card(nil), pool...)

			got := s.DrawMany(pool, k)
			if len(got) != k {
				t.Fatalf("expected %d cards, got %d", k, len(got))
			}
			seen := map[*card.Card]bool{}
			for _, c := range got {
				if seen[c] {
					t.Fatal("DrawMany returned the same card twice")
				}
				seen[c] = true
				if !contains(pool, c) {
					t.Fatal("DrawMany returned a card outside the pool")
				}
			}
			for i := range pool {
				if pool[i] != original[i] {
					t.Fatal("DrawMany modified the source pool")
				}
			}
		})
	}
}

func TestDrawManyShortPool(t *testing.T) {
	s := newSampler(3)
	pool := makePool(3)
	if got := s.DrawMany(pool, 7); len(got) != 3 {
		t.Fatalf("expected the whole pool (3 cards), got %d", len(got))
	}
	if got := s.DrawMany(nil, 7); len(got) != 0 {
		t.Fatalf("expected no cards from an empty pool, got %d", len(got))
	}
	if got := s.DrawMany(pool, -1); len(got) != 0 {
		t.Fatalf("negative count should draw nothing, got %d", len(got))
	}
}

func TestDrawManyUniform(t *testing.T) {
	s := newSampler(42)
	pool := makePool(4)
	counts := map[*card.Card]int{}
	const n = 20000
	for i := 0; i < n; i++ {
		for _, c := range s.DrawMany(pool, 2) {
			counts[c]++
		}
	}
	// Each card is picked in half of the draws
	for i, c := range pool {
		freq := float64(counts[c]) / n
		if freq < 0.47 || freq > 0.53 {
			t.Errorf("card %d picked with frequency %.3f, want ~0.5", i, freq)
		}
	}
}

func TestDrawFirst(t *testing.T) {
	s := newSampler(5)
	a := makePool(0)
	b := makePool(2)
	c := makePool(3)

	got, ok := s.DrawFirst(a, b, c)
	if !ok || !contains(b, got) {
		t.Fatal("expected a draw from the first non-empty pool")
	}
	if _, ok := s.DrawFirst(a, nil); ok {
		t.Fatal("expected false when every pool is empty")
	}
}

func TestShuffleKeepsCards(t *testing.T) {
	s := newSampler(9)
	pool := makePool(24)
	shuffled := append([]*card.Card(nil), pool...)
	s.Shuffle(shuffled)
	for _, c := range pool {
		if !contains(shuffled, c) {
			t.Fatal("shuffle lost a card")
		}
	}
}

func TestNewDefault(t *testing.T) {
	s := sampler.NewDefault()
	if f := s.Float64(); f < 0 || f >= 1 {
		t.Fatalf("Float64 out of range: %f", f)
	}
}

func TestSourceFollowsSeed(t *testing.T) {
	a, b := newSampler(21), newSampler(21)
	for i := 0; i < 8; i++ {
		if x, y := a.Source().Int63(), b.Source().Int63(); x != y || x < 0 {
			t.Fatalf("draw %d: got %d and %d from equal seeds", i, x, y)
		}
	}
}
