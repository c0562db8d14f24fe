package pack

import (
	"github.com/arcanaland/boosterbox/internal/card"
	"github.com/arcanaland/boosterbox/internal/rarity"
)

const (
	boxUncommonsPerPack = 3
	boxSuperRares       = 7
	boxLeaders          = 7
)

// Box opens a 24-pack box and returns every card in pack order.
func (g *Generator) Box(cards []*card.Card) []*card.Card {
	return Flatten(g.BoxPacks(cards))
}

// BoxPacks opens a 24-pack box.
//
// The two upper slots of every pack are dealt from pools allocated once for the
// whole box: the leader pool (slot 11) and the secondary rare pool (slot 12).
// Commons and uncommons are drawn fresh for each pack.
func (g *Generator) BoxPacks(cards []*card.Card) []Pack {
	t := g.Tiers(cards)

	secondary := g.secondarySlots(t)
	leaders := g.leaderSlots(t)
	g.sampler.Shuffle(secondary)
	g.sampler.Shuffle(leaders)

	packs := make([]Pack, 0, PacksPerBox)
	for i := 0; i < PacksPerBox; i++ {
		p := Pack{Kind: Booster, Cards: make([]*card.Card, 0, PackSize)}
		p.add(g.sampler.DrawMany(t.Pool(rarity.Common), CommonsPerPack)...)
		p.add(g.sampler.DrawMany(t.Pool(rarity.Uncommon), boxUncommonsPerPack)...)
		p.add(slotAt(leaders, i), slotAt(secondary, i))
		packs = append(packs, p)
	}
	return packs
}

// secondarySlots allocates the box's slot-12 cards: one secret rare, seven super
// rares, one hit, then rares up to one per pack. The rares are drawn
// independently of the leader pool, so the same rare may appear in both.
func (g *Generator) secondarySlots(t rarity.Tiers) []*card.Card {
	slots := make([]*card.Card, 0, PacksPerBox)

	// The secret rare draw is with replacement against the rest of the box.
	if c, ok := secretChain.Draw(g.sampler, t); ok {
		slots = append(slots, c)
	}
	slots = append(slots, g.sampler.DrawMany(t.Pool(rarity.SuperRare), boxSuperRares)...)

	// The hit slot counts against the 24 even when nothing can fill it.
	hit, _ := boxHitChain.Draw(g.sampler, t)
	slots = append(slots, hit)

	return append(slots, g.sampler.DrawMany(t.Pool(rarity.Rare), PacksPerBox-len(slots))...)
}

// leaderSlots allocates the box's slot-11 cards: seven leaders, then rares.
func (g *Generator) leaderSlots(t rarity.Tiers) []*card.Card {
	slots := make([]*card.Card, 0, PacksPerBox)
	slots = append(slots, g.sampler.DrawMany(t.Pool(rarity.Leader), boxLeaders)...)
	return append(slots, g.sampler.DrawMany(t.Pool(rarity.Rare), PacksPerBox-len(slots))...)
}

func slotAt(slots []*card.Card, i int) *card.Card {
	if i < len(slots) {
		return slots[i]
	}
	return nil
}
