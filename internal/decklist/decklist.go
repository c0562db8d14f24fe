// Package decklist turns a generated result into an importable decklist.
package decklist

import (
	"fmt"
	"strings"

	qr "github.com/skip2/go-qrcode"

	"github.com/arcanaland/boosterbox/internal/card"
)

// Entry is one decklist line.
type Entry struct {
	BaseID string `json:"id"`
	Count  int    `json:"count"`
}

func (e Entry) String() string {
	return fmt.Sprintf("%dx%s", e.Count, e.BaseID)
}

// Build groups cards by base id (parallel suffix removed) in first-seen order.
func Build(cards []*card.Card) []Entry {
	var entries []Entry
	index := make(map[string]int)
	for _, c := range cards {
		if c == nil {
			continue
		}
		id := card.BaseID(c)
		if i, ok := index[id]; ok {
			entries[i].Count++
			continue
		}
		index[id] = len(entries)
		entries = append(entries, Entry{BaseID: id, Count: 1})
	}
	return entries
}

// Format renders entries as <count>x<baseId> lines.
func Format(entries []Entry) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
	}
	return strings.Join(lines, "\n")
}

// Export is Build followed by Format.
func Export(cards []*card.Card) string {
	return Format(Build(cards))
}

// QR renders text as a QR code made of terminal block characters.
func QR(text string) (string, error) {
	code, err := qr.New(text, qr.Low)
	if err != nil {
		return "", fmt.Errorf("error encoding QR code: %w", err)
	}
	return code.ToSmallString(false), nil
}

// QRPNG encodes text as a square PNG image of the given size in pixels.
func QRPNG(text string, size int) ([]byte, error) {
	png, err := qr.Encode(text, qr.Low, size)
	if err != nil {
		return nil, fmt.Errorf("error encoding QR code: %w", err)
	}
	return png, nil
}
