package pack

import (
	"fmt"

	"github.com/mroth/weightedrand/v2"

	"github.com/arcanaland/boosterbox/internal/card"
	"github.com/arcanaland/boosterbox/internal/rarity"
	"github.com/arcanaland/boosterbox/internal/sampler"
)

// Chain is an ordered list of tiers tried in turn until one is non-empty.
type Chain []rarity.Tier

// Draw picks one card from the first non-empty tier of the chain.
func (c Chain) Draw(s *sampler.Sampler, t rarity.Tiers) (*card.Card, bool) {
	pools := make([][]*card.Card, len(c))
	for i, tier := range c {
		pools[i] = t.Pool(tier)
	}
	return s.DrawFirst(pools...)
}

func (c Chain) String() string {
	return fmt.Sprint([]rarity.Tier(c))
}

// Fallback chains shared by the slot templates.
var (
	rareChain   = Chain{rarity.Rare}
	srChain     = Chain{rarity.SuperRare, rarity.Rare}
	hitChain    = Chain{rarity.Hit, rarity.SuperRare, rarity.Rare}
	boxHitChain = Chain{rarity.Hit, rarity.SuperRare}
	leaderChain = Chain{rarity.Leader, rarity.Common}
	secretChain = Chain{rarity.SecretRare}
)

// Slot weights are expressed in basis points.
const (
	weightScale  = 10000
	hitShare     = 30 // percent of upgrades drawn from the hit pool
	weightedHits = 3300
)

// SlotPolicy picks a fallback chain by weight, then draws from it.
type SlotPolicy struct {
	name    string
	chooser *weightedrand.Chooser[Chain, int]
}

// NewSlotPolicy builds a policy from weighted chains. At least one weight must be
// positive.
func NewSlotPolicy(name string, choices ...weightedrand.Choice[Chain, int]) (*SlotPolicy, error) {
	chooser, err := weightedrand.NewChooser(choices...)
	if err != nil {
		return nil, fmt.Errorf("slot policy %s: %w", name, err)
	}
	return &SlotPolicy{name: name, chooser: chooser}, nil
}

// PossibleHitSlot is a rare slot that upgrades with probability upgradeChance.
// An upgrade comes from the hit pool 30% of the time and from the super rares
// otherwise.
func PossibleHitSlot(upgradeChance float64) (*SlotPolicy, error) {
	if upgradeChance < 0 || upgradeChance > 1 {
		return nil, fmt.Errorf("invalid upgrade chance %v: must be between 0 and 1", upgradeChance)
	}
	upgraded := int(upgradeChance*float64(weightScale) + 0.5)
	fromHits := upgraded * hitShare / 100

	return NewSlotPolicy("possible-hit",
		weightedrand.NewChoice(rareChain, weightScale-upgraded),
		weightedrand.NewChoice(hitChain, fromHits),
		weightedrand.NewChoice(srChain, upgraded-fromHits),
	)
}

// WeightedHitSlot is always upgraded: 33% from the hit pool, otherwise a super
// rare.
func WeightedHitSlot() (*SlotPolicy, error) {
	return NewSlotPolicy("weighted-hit",
		weightedrand.NewChoice(hitChain, weightedHits),
		weightedrand.NewChoice(srChain, weightScale-weightedHits),
	)
}

// Chain returns the chain the policy selects for one slot.
func (p *SlotPolicy) Chain(s *sampler.Sampler) Chain {
	return p.chooser.PickSource(s.Source())
}

// Draw fills one slot.
func (p *SlotPolicy) Draw(s *sampler.Sampler, t rarity.Tiers) (*card.Card, bool) {
	return p.Chain(s).Draw(s, t)
}

func (p *SlotPolicy) String() string {
	return p.name
}
