package pack

import (
	"github.com/arcanaland/boosterbox/internal/card"
	"github.com/arcanaland/boosterbox/internal/rarity"
)

const packsPerArchetype = 2

// Prerelease opens a six-pack prerelease kit and returns every card in pack
// order.
func (g *Generator) Prerelease(cards []*card.Card) []*card.Card {
	return Flatten(g.PrereleasePacks(cards))
}

// PrereleasePacks opens two leader packs, two double-rare packs and two hit
// packs, in that order.
//
// Only the hit packs guarantee an upgraded slot. The other four each upgrade
// their second rare independently with the configured chance, so a kit can
// land a third hit with luck. There is no cap or floor beyond that.
func (g *Generator) PrereleasePacks(cards []*card.Card) []Pack {
	t := g.Tiers(cards)

	packs := make([]Pack, 0, PrereleasePacks)
	for i := 0; i < packsPerArchetype; i++ {
		packs = append(packs, g.leaderPack(t))
	}
	for i := 0; i < packsPerArchetype; i++ {
		packs = append(packs, g.doubleRarePack(t))
	}
	for i := 0; i < packsPerArchetype; i++ {
		packs = append(packs, g.hitPack(t))
	}
	return packs
}

// leaderPack: 7 C, 2 UC, 1 L (a common when no leader exists), 1 R, 1 possible hit.
func (g *Generator) leaderPack(t rarity.Tiers) Pack {
	p := g.basePack(LeaderPack, t, 2)
	p.addDraw(leaderChain.Draw(g.sampler, t))
	p.addDraw(rareChain.Draw(g.sampler, t))
	p.addDraw(g.possibleHit.Draw(g.sampler, t))
	return p
}

// doubleRarePack: 7 C, 3 UC, 1 R, 1 possible hit.
func (g *Generator) doubleRarePack(t rarity.Tiers) Pack {
	p := g.basePack(DoubleRare, t, 3)
	p.addDraw(rareChain.Draw(g.sampler, t))
	p.addDraw(g.possibleHit.Draw(g.sampler, t))
	return p
}

// hitPack: 7 C, 3 UC, 1 R, 1 weighted hit.
func (g *Generator) hitPack(t rarity.Tiers) Pack {
	p := g.basePack(HitPack, t, 3)
	p.addDraw(rareChain.Draw(g.sampler, t))
	p.addDraw(g.weightedHit.Draw(g.sampler, t))
	return p
}

func (g *Generator) basePack(kind Kind, t rarity.Tiers, uncommons int) Pack {
	p := Pack{Kind: kind, Cards: make([]*card.Card, 0, PackSize)}
	p.add(g.sampler.DrawMany(t.Pool(rarity.Common), CommonsPerPack)...)
	p.add(g.sampler.DrawMany(t.Pool(rarity.Uncommon), uncommons)...)
	return p
}
