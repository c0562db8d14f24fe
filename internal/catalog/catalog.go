package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/arcanaland/boosterbox/internal/card"
)

// DefaultSets are the set tags the simulator opens packs from.
var DefaultSets = []string{"OP14", "EB04"}

// Catalog represents a loaded card catalog
type Catalog struct {
	Path  string
	Cards []*card.Card

	// Lookup by id
	byID map[string]*card.Card
}

// Load reads a JSON array of cards from disk
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog: %w", err)
	}

	cards, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}

	c := New(cards)
	c.Path = path
	return c, nil
}

// Decode parses the catalog wire format. A JSON null decodes to an empty catalog.
func Decode(data []byte) ([]*card.Card, error) {
	var cards []*card.Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, err
	}

	// Drop null entries so downstream code never sees a nil card
	out := cards[:0]
	for _, c := range cards {
		if c != nil {
			out = append(out, c)
		}
	}
	return out, nil
}

// New indexes an in-memory card list. The first card wins on duplicate ids.
func New(cards []*card.Card) *Catalog {
	c := &Catalog{
		Cards: cards,
		byID:  make(map[string]*card.Card, len(cards)),
	}
	for _, cd := range cards {
		if _, ok := c.byID[cd.ID]; !ok {
			c.byID[cd.ID] = cd
		}
	}
	return c
}

// Lookup gets a card by its catalog id
func (c *Catalog) Lookup(id string) (*card.Card, error) {
	if c == nil {
		return nil, fmt.Errorf("card not found: %s", id)
	}
	cd, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("card not found: %s", id)
	}
	return cd, nil
}

// Len returns the number of cards in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Cards)
}

// FilterBySet restricts the catalog to the default sets.
func FilterBySet(cards []*card.Card) []*card.Card {
	return FilterBySets(cards, DefaultSets...)
}

// FilterBySets returns the cards whose id starts with, or whose set label
// contains, one of the tags. Catalog order is kept and the returned slice shares
// the catalog's card pointers. A nil or empty catalog yields an empty slice.
func FilterBySets(cards []*card.Card, tags ...string) []*card.Card {
	out := make([]*card.Card, 0)
	for _, c := range cards {
		if c == nil {
			continue
		}
		if matchesAny(c, tags) {
			out = append(out, c)
		}
	}
	return out
}

func matchesAny(c *card.Card, tags []string) bool {
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		if strings.HasPrefix(c.ID, tag) || strings.Contains(c.CardSet, tag) {
			return true
		}
	}
	return false
}
