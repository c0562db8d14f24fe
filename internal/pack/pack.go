// Package pack assembles booster packs from a card catalog.
//
// A Generator filters the catalog to the configured sets, classifies the pool
// into rarity tiers and fills slot templates from those tiers. Tiers are
// recomputed on every call and the catalog is never modified. Every card in a
// result is a pointer taken from the catalog.
//
// Generation never fails. When a tier runs dry the affected slot falls back
// along its chain, and when the whole chain is empty the slot is left out, so a
// small catalog produces shorter packs rather than an error.
package pack

import (
	"fmt"

	"github.com/arcanaland/boosterbox/internal/card"
	"github.com/arcanaland/boosterbox/internal/catalog"
	"github.com/arcanaland/boosterbox/internal/rarity"
	"github.com/arcanaland/boosterbox/internal/sampler"
)

const (
	PackSize        = 12
	PacksPerBox     = 24
	PrereleasePacks = 6

	CommonsPerPack = 7
)

// DefaultUpgradeChance is the chance that the second rare of a leader or
// double-rare prerelease pack is upgraded.
const DefaultUpgradeChance = 0.05

// Kind identifies a pack archetype.
type Kind string

const (
	Booster    Kind = "booster"
	LeaderPack Kind = "leader"
	DoubleRare Kind = "double-rare"
	HitPack    Kind = "hit"
)

// Pack is one opened pack. Cards may repeat across packs.
type Pack struct {
	Kind  Kind         `json:"kind"`
	Cards []*card.Card `json:"cards"`
}

func (p *Pack) add(cards ...*card.Card) {
	for _, c := range cards {
		if c != nil {
			p.Cards = append(p.Cards, c)
		}
	}
}

// addDraw appends the result of a single-slot draw when it produced a card.
func (p *Pack) addDraw(c *card.Card, ok bool) {
	if ok {
		p.add(c)
	}
}

// Full reports whether the pack holds its nominal number of cards.
func (p Pack) Full() bool {
	return len(p.Cards) == PackSize
}

// Flatten concatenates packs in order.
func Flatten(packs []Pack) []*card.Card {
	n := 0
	for _, p := range packs {
		n += len(p.Cards)
	}
	out := make([]*card.Card, 0, n)
	for _, p := range packs {
		out = append(out, p.Cards...)
	}
	return out
}

// Options configures a Generator.
type Options struct {
	Sets          []string
	UpgradeChance float64
}

// DefaultOptions opens OP14/EB04 packs with the standard upgrade chance.
func DefaultOptions() Options {
	return Options{
		Sets:          catalog.DefaultSets,
		UpgradeChance: DefaultUpgradeChance,
	}
}

// Generator opens boxes and prerelease kits.
type Generator struct {
	sampler     *sampler.Sampler
	sets        []string
	possibleHit *SlotPolicy
	weightedHit *SlotPolicy
}

// NewGenerator creates a generator drawing with s.
func NewGenerator(s *sampler.Sampler, opts Options) (*Generator, error) {
	if s == nil {
		s = sampler.NewDefault()
	}
	if len(opts.Sets) == 0 {
		opts.Sets = catalog.DefaultSets
	}

	possibleHit, err := PossibleHitSlot(opts.UpgradeChance)
	if err != nil {
		return nil, err
	}
	weightedHit, err := WeightedHitSlot()
	if err != nil {
		return nil, err
	}

	return &Generator{
		sampler:     s,
		sets:        opts.Sets,
		possibleHit: possibleHit,
		weightedHit: weightedHit,
	}, nil
}

// Pool filters the catalog down to the configured sets.
func (g *Generator) Pool(cards []*card.Card) []*card.Card {
	return catalog.FilterBySets(cards, g.sets...)
}

// Tiers classifies the filtered pool.
func (g *Generator) Tiers(cards []*card.Card) rarity.Tiers {
	return rarity.Classify(g.Pool(cards))
}

// Mode selects what a Generator opens.
type Mode string

const (
	ModeBox        Mode = "box"
	ModePrerelease Mode = "prerelease"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeBox, ModePrerelease:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode %q (expected box or prerelease)", s)
}

// Open generates the packs for a mode.
func (g *Generator) Open(mode Mode, cards []*card.Card) []Pack {
	if mode == ModePrerelease {
		return g.PrereleasePacks(cards)
	}
	return g.BoxPacks(cards)
}
