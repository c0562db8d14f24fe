package pack_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/arcanaland/boosterbox/internal/card"
	"github.com/arcanaland/boosterbox/internal/pack"
	"github.com/arcanaland/boosterbox/internal/rarity"
	"github.com/arcanaland/boosterbox/internal/sampler"
)

var (
	plainRare   = pack.Chain{rarity.Rare}
	upgradeSR   = pack.Chain{rarity.SuperRare, rarity.Rare}
	upgradeHit  = pack.Chain{rarity.Hit, rarity.SuperRare, rarity.Rare}
	seededDraws = 50000
)

func chainFrequencies(t *testing.T, policy *pack.SlotPolicy) map[string]float64 {
	t.Helper()
	s := sampler.New(rand.New(rand.NewPCG(17, 71)))
	counts := map[string]int{}
	for i := 0; i < seededDraws; i++ {
		chain := policy.Chain(s)
		switch {
		case slices.Equal(chain, plainRare):
			counts["rare"]++
		case slices.Equal(chain, upgradeSR):
			counts["sr"]++
		case slices.Equal(chain, upgradeHit):
			counts["hit"]++
		default:
			t.Fatalf("unexpected chain %v", chain)
		}
	}
	freqs := map[string]float64{}
	for k, v := range counts {
		freqs[k] = float64(v) / float64(seededDraws)
	}
	return freqs
}

func near(got, want float64) bool {
	return got > want-0.01 && got < want+0.01
}

func TestPossibleHitSlotWeights(t *testing.T) {
	policy, err := pack.PossibleHitSlot(0.05)
	if err != nil {
		t.Fatal(err)
	}
	f := chainFrequencies(t, policy)
	if !near(f["rare"], 0.95) || !near(f["hit"], 0.015) || !near(f["sr"], 0.035) {
		t.Fatalf("unexpected frequencies: %v", f)
	}
}

func TestPossibleHitSlotBounds(t *testing.T) {
	never, err := pack.PossibleHitSlot(0)
	if err != nil {
		t.Fatal(err)
	}
	if f := chainFrequencies(t, never); f["rare"] != 1 {
		t.Fatalf("chance 0 should always draw a plain rare: %v", f)
	}

	always, err := pack.PossibleHitSlot(1)
	if err != nil {
		t.Fatal(err)
	}
	f := chainFrequencies(t, always)
	if f["rare"] != 0 || !near(f["hit"], 0.30) || !near(f["sr"], 0.70) {
		t.Fatalf("chance 1 should always upgrade: %v", f)
	}

	for _, bad := range []float64{-0.1, 1.01} {
		if _, err := pack.PossibleHitSlot(bad); err == nil {
			t.Errorf("expected error for chance %v", bad)
		}
	}
}

func TestWeightedHitSlotWeights(t *testing.T) {
	policy, err := pack.WeightedHitSlot()
	if err != nil {
		t.Fatal(err)
	}
	f := chainFrequencies(t, policy)
	if f["rare"] != 0 || !near(f["hit"], 0.33) || !near(f["sr"], 0.67) {
		t.Fatalf("unexpected frequencies: %v", f)
	}
}

func TestChainDrawFallback(t *testing.T) {
	rare := &card.Card{ID: "OP14-050", Rarity: "R"}
	sr := &card.Card{ID: "OP14-051", Rarity: "SR"}
	s := sampler.New(rand.New(rand.NewPCG(1, 1)))

	tiers := rarity.Classify([]*card.Card{rare})
	if c, ok := upgradeHit.Draw(s, tiers); !ok || c != rare {
		t.Fatalf("expected fallback to the rare, got %v", c)
	}

	tiers = rarity.Classify([]*card.Card{rare, sr})
	if c, ok := upgradeHit.Draw(s, tiers); !ok || c != sr {
		t.Fatalf("expected the super rare ahead of the rare, got %v", c)
	}

	if _, ok := upgradeHit.Draw(s, rarity.Classify(nil)); ok {
		t.Fatal("expected no card from an empty pool")
	}
}

func TestSlotPolicyNeedsWeight(t *testing.T) {
	if _, err := pack.NewSlotPolicy("empty"); err == nil {
		t.Fatal("expected error for a policy without choices")
	}
}
