package validator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arcanaland/boosterbox/internal/card"
	"github.com/arcanaland/boosterbox/internal/catalog"
	"github.com/arcanaland/boosterbox/internal/rarity"
)

// Tier sizes below which a box can come out short.
const (
	minBoxCommons   = 168
	minBoxUncommons = 72
	minBoxRares     = 23
)

var knownRarities = map[string]bool{
	card.Common:     true,
	card.Uncommon:   true,
	card.Rare:       true,
	card.SuperRare:  true,
	card.SecretRare: true,
	card.Leader:     true,
	card.Treasure:   true,
	card.Special:    true,
}

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	CatalogPath string
	ImageDir    string
	Sets        []string
	Results     ValidationResults

	cards []*card.Card
}

func NewValidator(catalogPath string) *Validator {
	return &Validator{
		CatalogPath: catalogPath,
		Sets:        catalog.DefaultSets,
		Results:     ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.validateCatalogFile(); err != nil {
		return v.Results, err
	}

	v.validateIDs()
	v.validateRarities()
	v.validateSetPool()
	v.validateImages()

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

// validateCatalogFile checks that the catalog exists and parses
func (v *Validator) validateCatalogFile() error {
	if _, err := os.Stat(v.CatalogPath); os.IsNotExist(err) {
		return fmt.Errorf("catalog not found: %s", v.CatalogPath)
	}

	c, err := catalog.Load(v.CatalogPath)
	if err != nil {
		return err
	}
	v.cards = c.Cards

	if len(v.cards) == 0 {
		v.errorf("catalog %s contains no cards", v.CatalogPath)
	}
	return nil
}

// validateIDs checks for missing and duplicate ids
func (v *Validator) validateIDs() {
	seen := make(map[string]int)
	for i, c := range v.cards {
		if c.ID == "" {
			v.errorf("card #%d has no id", i+1)
			continue
		}
		seen[c.ID]++
	}

	var dups []string
	for id, n := range seen {
		if n > 1 {
			dups = append(dups, fmt.Sprintf("%s (%d times)", id, n))
		}
	}
	sort.Strings(dups)
	for _, d := range dups {
		v.errorf("duplicate card id: %s", d)
	}
}

// validateRarities checks that every card has a rarity code we can classify
func (v *Validator) validateRarities() {
	unknown := make(map[string]int)
	for _, c := range v.cards {
		if c.Rarity == "" {
			v.errorf("card %s has no rarity", c.ID)
			continue
		}
		if !knownRarities[c.Rarity] {
			unknown[c.Rarity]++
		}
	}

	codes := make([]string, 0, len(unknown))
	for code := range unknown {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		v.warnf("unknown rarity code %q on %d cards (matched by substring rules only)", code, unknown[code])
	}
}

// validateSetPool checks that the simulated sets can fill complete packs
func (v *Validator) validateSetPool() {
	pool := catalog.FilterBySets(v.cards, v.Sets...)
	if len(pool) == 0 {
		v.warnf("no cards match sets %s; every pack will be empty", strings.Join(v.Sets, ", "))
		return
	}

	counts := rarity.Classify(pool).Counts()
	minimums := map[rarity.Tier]int{
		rarity.Common:     minBoxCommons,
		rarity.Uncommon:   minBoxUncommons,
		rarity.Rare:       minBoxRares,
		rarity.SuperRare:  1,
		rarity.SecretRare: 1,
		rarity.Leader:     1,
		rarity.Hit:        1,
	}
	for _, tier := range rarity.AllTiers {
		if counts[tier] < minimums[tier] {
			v.warnf("only %d %s cards in the pool (%d needed for a full box); packs may come out short",
				counts[tier], tier, minimums[tier])
		}
	}
}

// validateImages checks that each pool card has a local image or an absolute
// remote URL
func (v *Validator) validateImages() {
	if v.ImageDir == "" {
		return
	}
	if _, err := os.Stat(v.ImageDir); os.IsNotExist(err) {
		v.warnf("image directory not found: %s", v.ImageDir)
		return
	}

	missing := 0
	for _, c := range catalog.FilterBySets(v.cards, v.Sets...) {
		local := filepath.Join(v.ImageDir, card.ImageKey(c)+".png")
		if _, err := os.Stat(local); err == nil {
			continue
		}
		if card.RemoteImage(c) == "" {
			missing++
		}
	}
	if missing > 0 {
		v.warnf("%d cards have neither a local image nor an absolute imageUrl", missing)
	}
}
