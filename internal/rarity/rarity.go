// Package rarity partitions a card pool into the tiers packs are built from.
//
// Membership is decided by the rarity code and the id. Alternate-art cards are
// kept out of every regular tier and only show up in the hit pool, whatever
// their rarity code says.
package rarity

import (
	"strings"

	"github.com/arcanaland/boosterbox/internal/card"
)

// Tier names one partition of a classified pool.
type Tier int

const (
	Common Tier = iota
	Uncommon
	Rare
	SuperRare
	SecretRare
	Leader
	Hit
)

var tierNames = map[Tier]string{
	Common:     "common",
	Uncommon:   "uncommon",
	Rare:       "rare",
	SuperRare:  "super-rare",
	SecretRare: "secret-rare",
	Leader:     "leader",
	Hit:        "hit",
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return "unknown"
}

// AllTiers lists every tier in display order.
var AllTiers = []Tier{Common, Uncommon, Rare, SuperRare, SecretRare, Leader, Hit}

// IsCommon matches any rarity containing C that is neither SEC nor UC.
func IsCommon(c *card.Card) bool {
	return strings.Contains(c.Rarity, card.Common) &&
		!strings.Contains(c.Rarity, card.SecretRare) &&
		!strings.Contains(c.Rarity, card.Uncommon) &&
		!card.IsAlternateArt(c)
}

func IsUncommon(c *card.Card) bool {
	return strings.Contains(c.Rarity, card.Uncommon) && !card.IsAlternateArt(c)
}

func IsRare(c *card.Card) bool {
	return c.Rarity == card.Rare && !card.IsAlternateArt(c)
}

func IsSuperRare(c *card.Card) bool {
	return c.Rarity == card.SuperRare && !card.IsAlternateArt(c)
}

func IsSecretRare(c *card.Card) bool {
	return c.Rarity == card.SecretRare && !card.IsAlternateArt(c)
}

func IsLeader(c *card.Card) bool {
	return c.Rarity == card.Leader && !card.IsAlternateArt(c)
}

// InHitPool matches every alternate art plus SEC, TR and SP cards. Regular SECs
// are both secret rares and hits.
func InHitPool(c *card.Card) bool {
	return card.IsHit(c)
}

var predicates = map[Tier]func(*card.Card) bool{
	Common:     IsCommon,
	Uncommon:   IsUncommon,
	Rare:       IsRare,
	SuperRare:  IsSuperRare,
	SecretRare: IsSecretRare,
	Leader:     IsLeader,
	Hit:        InHitPool,
}

// Tiers holds one classification of a pool.
type Tiers struct {
	pools map[Tier][]*card.Card
}

// Classify partitions the pool. The result is computed fresh on every call and
// the input slice is never modified.
func Classify(pool []*card.Card) Tiers {
	t := Tiers{pools: make(map[Tier][]*card.Card, len(AllTiers))}
	for _, tier := range AllTiers {
		t.pools[tier] = filter(pool, predicates[tier])
	}
	return t
}

// Pool returns the cards of one tier. Callers must not modify the slice.
func (t Tiers) Pool(tier Tier) []*card.Card {
	return t.pools[tier]
}

// Counts returns the size of every tier.
func (t Tiers) Counts() map[Tier]int {
	counts := make(map[Tier]int, len(AllTiers))
	for _, tier := range AllTiers {
		counts[tier] = len(t.pools[tier])
	}
	return counts
}

func filter(pool []*card.Card, keep func(*card.Card) bool) []*card.Card {
	out := make([]*card.Card, 0)
	for _, c := range pool {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
