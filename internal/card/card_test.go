package card_test

import (
	"testing"

	"github.com/arcanaland/boosterbox/internal/card"
)

func TestIsAlternateArt(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"OP14-001", false},
		{"OP14-001_p1", true},
		{"OP14-001_p", true},
		{"EB04-010*", true},
		{"EB04-010*x", false},
	}
	for _, tt := range tests {
		c := &card.Card{ID: tt.id, Rarity: card.SuperRare}
		if got := card.IsAlternateArt(c); got != tt.want {
			t.Errorf("IsAlternateArt(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestIsHit(t *testing.T) {
	tests := []struct {
		c    card.Card
		want bool
	}{
		{card.Card{ID: "OP14-001", Rarity: card.SecretRare}, true},
		{card.Card{ID: "OP14-002", Rarity: card.Treasure}, true},
		{card.Card{ID: "OP14-003", Rarity: card.Special}, true},
		{card.Card{ID: "OP14-004_p1", Rarity: card.Common}, true},
		{card.Card{ID: "OP14-005", Rarity: card.SuperRare}, false},
		{card.Card{ID: "OP14-006", Rarity: card.Leader}, false},
	}
	for _, tt := range tests {
		if got := card.IsHit(&tt.c); got != tt.want {
			t.Errorf("IsHit(%s/%s) = %v, want %v", tt.c.ID, tt.c.Rarity, got, tt.want)
		}
	}
}

func TestIsShiny(t *testing.T) {
	if !card.IsShiny(&card.Card{ID: "OP14-005", Rarity: card.SuperRare}) {
		t.Error("super rare should be shiny")
	}
	if card.IsShiny(&card.Card{ID: "OP14-005", Rarity: card.Rare}) {
		t.Error("plain rare should not be shiny")
	}
	if !card.IsShiny(&card.Card{ID: "OP14-005*", Rarity: card.Rare}) {
		t.Error("alternate art should be shiny")
	}
}

func TestImageKey(t *testing.T) {
	tests := map[string]string{
		"OP14-001":    "OP14-001",
		"OP14-001_p1": "OP14-001_p1",
		"EB04-010*":   "EB04-010_",
		"ST 01/02":    "ST_01_02",
	}
	for id, want := range tests {
		if got := card.ImageKey(&card.Card{ID: id}); got != want {
			t.Errorf("ImageKey(%q) = %q, want %q", id, got, want)
		}
	}
}

func TestRemoteImage(t *testing.T) {
	if got := card.RemoteImage(&card.Card{ImageURL: "https://example.com/a.png"}); got != "https://example.com/a.png" {
		t.Errorf("absolute url dropped: %q", got)
	}
	if got := card.RemoteImage(&card.Card{ImageURL: "/cards/a.png"}); got != "" {
		t.Errorf("relative url should be ignored, got %q", got)
	}
}

func TestBaseID(t *testing.T) {
	tests := map[string]string{
		"OP14-001":     "OP14-001",
		"OP14-001_p1":  "OP14-001",
		"OP14-001_P12": "OP14-001",
		"OP14-001_p":   "OP14-001_p",
		"EB04-010*":    "EB04-010*",
	}
	for id, want := range tests {
		if got := card.BaseID(&card.Card{ID: id}); got != want {
			t.Errorf("BaseID(%q) = %q, want %q", id, got, want)
		}
	}
}
