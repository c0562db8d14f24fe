package pack

import (
	"github.com/arcanaland/boosterbox/internal/card"
)

// Stats counts the notable pulls of a result.
type Stats struct {
	Hits int `json:"hits"` // alternate arts, SEC, TR and SP
	SRs  int `json:"srs"`  // super rares not already counted as hits
}

// Summarize counts hits and super rares in cards.
func Summarize(cards []*card.Card) Stats {
	var s Stats
	for _, c := range cards {
		if c == nil {
			continue
		}
		if card.IsHit(c) {
			s.Hits++
		} else if c.Rarity == card.SuperRare {
			s.SRs++
		}
	}
	return s
}
