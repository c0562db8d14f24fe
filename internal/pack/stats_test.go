package pack_test

import (
	"testing"

	"github.com/arcanaland/boosterbox/internal/card"
	"github.com/arcanaland/boosterbox/internal/pack"
)

func TestSummarize(t *testing.T) {
	cards := []*card.Card{
		{ID: "OP14-001_p1", Rarity: "SR"},
		{ID: "OP14-002*", Rarity: "R"},
		{ID: "OP14-003", Rarity: "SEC"},
		{ID: "OP14-004", Rarity: "SR"},
		{ID: "OP14-005", Rarity: "SR"},
		{ID: "OP14-006", Rarity: "SR"},
		{ID: "OP14-007", Rarity: "C"},
		{ID: "OP14-008", Rarity: "C"},
		nil,
	}
	got := pack.Summarize(cards)
	if got.Hits != 3 || got.SRs != 3 {
		t.Fatalf("expected 3 hits and 3 SRs, got %+v", got)
	}
}

func TestSummarizeTreasureAndSpecial(t *testing.T) {
	got := pack.Summarize([]*card.Card{
		{ID: "OP14-120", Rarity: "TR"},
		{ID: "OP14-121", Rarity: "SP"},
		{ID: "OP14-122", Rarity: "L"},
	})
	if got.Hits != 2 || got.SRs != 0 {
		t.Fatalf("unexpected stats %+v", got)
	}
	if empty := pack.Summarize(nil); empty != (pack.Stats{}) {
		t.Fatalf("expected zero stats, got %+v", empty)
	}
}
