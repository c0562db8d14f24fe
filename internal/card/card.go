package card

import (
	"regexp"
	"strings"
)

// Rarity codes used by the catalog.
const (
	Common     = "C"
	Uncommon   = "UC"
	Rare       = "R"
	SuperRare  = "SR"
	SecretRare = "SEC"
	Leader     = "L"
	Treasure   = "TR"
	Special    = "SP"
)

// Card represents a single catalog entry
type Card struct {
	ID        string `json:"id"`      // Catalog key, e.g. OP14-001 or OP14-001_p1
	Name      string `json:"name"`    // Display name
	Rarity    string `json:"rarity"`  // C, UC, R, SR, SEC, L, TR, SP
	CardSet   string `json:"cardSet"` // Originating product label
	Color     string `json:"color,omitempty"`
	Type      string `json:"type,omitempty"`
	Category  string `json:"category,omitempty"`
	Attribute string `json:"attribute,omitempty"`
	Power     string `json:"power,omitempty"`
	Counter   string `json:"counter,omitempty"`
	Cost      string `json:"cost,omitempty"`
	Effect    string `json:"effect,omitempty"`
	Trigger   string `json:"trigger,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
}

var (
	unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)
	parallelSuffix = regexp.MustCompile(`(?i)_p\d+$`)
)

// IsAlternateArt reports whether the id marks a parallel print. The id, not the
// rarity field, decides this.
func IsAlternateArt(c *Card) bool {
	return strings.Contains(c.ID, "_p") || strings.HasSuffix(c.ID, "*")
}

// IsHit reports whether the card counts as a hit: alternate art, secret rare,
// treasure rare or special.
func IsHit(c *Card) bool {
	if IsAlternateArt(c) {
		return true
	}
	switch c.Rarity {
	case SecretRare, Treasure, Special:
		return true
	}
	return false
}

// IsShiny reports whether the card gets the foil highlight when displayed.
func IsShiny(c *Card) bool {
	switch c.Rarity {
	case SuperRare, SecretRare, Special, Treasure:
		return true
	}
	return IsAlternateArt(c)
}

// ImageKey returns the id with every character outside [A-Za-z0-9_-] replaced by
// an underscore. Local card images are stored under this name.
func ImageKey(c *Card) string {
	return unsafeKeyChars.ReplaceAllString(c.ID, "_")
}

// RemoteImage returns the image URL when it is absolute, or an empty string.
func RemoteImage(c *Card) string {
	if strings.HasPrefix(c.ImageURL, "http") {
		return c.ImageURL
	}
	return ""
}

// BaseID strips a trailing _p<digits> parallel suffix.
func BaseID(c *Card) string {
	return parallelSuffix.ReplaceAllString(c.ID, "")
}
