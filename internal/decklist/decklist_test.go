package decklist_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arcanaland/boosterbox/internal/card"
	"github.com/arcanaland/boosterbox/internal/decklist"
)

func TestExportGroupsParallels(t *testing.T) {
	mihawk := &card.Card{ID: "OP14-001"}
	cards := []*card.Card{
		mihawk,
		{ID: "OP14-020"},
		{ID: "OP14-001_p1"},
		mihawk,
		{ID: "EB04-010*"},
		{ID: "OP14-020_p2"},
		nil,
	}

	got := decklist.Export(cards)
	want := "3xOP14-001\n2xOP14-020\n1xEB04-010*"
	if got != want {
		t.Fatalf("unexpected decklist:\n%s\nwant:\n%s", got, want)
	}
}

func TestBuildEmpty(t *testing.T) {
	if entries := decklist.Build(nil); len(entries) != 0 {
		t.Fatalf("expected no entries, got %v", entries)
	}
	if got := decklist.Export(nil); got != "" {
		t.Fatalf("expected empty export, got %q", got)
	}
}

func TestQR(t *testing.T) {
	text := decklist.Export([]*card.Card{{ID: "OP14-001"}, {ID: "OP14-002"}})
	art, err := decklist.QR(text)
	if err != nil {
		t.Fatalf("QR: %v", err)
	}
	if len(strings.Split(strings.TrimSpace(art), "\n")) < 10 {
		t.Fatalf("QR art looks too small:\n%s", art)
	}

	png, err := decklist.QRPNG(text, 128)
	if err != nil {
		t.Fatalf("QRPNG: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Fatal("QRPNG did not return a PNG image")
	}
}
