package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	colorize "github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/boosterbox/internal/card"
	"github.com/arcanaland/boosterbox/internal/pack"
)

var (
	altArtStyle = colorize.New(colorize.FgHiMagenta, colorize.Bold)
	shinyStyle  = colorize.New(colorize.FgHiYellow, colorize.Bold)
	plainStyle  = colorize.New(colorize.FgHiWhite)
	dimStyle    = colorize.New(colorize.FgHiBlack)
	titleStyle  = colorize.New(colorize.FgCyan, colorize.Bold)
)

// terminalWidth returns the width of stdout, or 80 when it is not a terminal
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// sortedByID returns a copy of cards ordered by id
func sortedByID(cards []*card.Card) []*card.Card {
	sorted := make([]*card.Card, len(cards))
	copy(sorted, cards)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

// cardLabel formats one grid cell, padded to width
func cardLabel(c *card.Card, width int) string {
	text := fmt.Sprintf("%s %s", c.ID, c.Rarity)
	if pad := width - len(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}

	switch {
	case card.IsAlternateArt(c):
		return altArtStyle.Sprint(text)
	case card.IsShiny(c):
		return shinyStyle.Sprint(text)
	default:
		return plainStyle.Sprint(text)
	}
}

// printGrid prints the cards sorted by id in as many columns as fit
func printGrid(cards []*card.Card, title string) {
	sorted := sortedByID(cards)

	cellWidth := 0
	for _, c := range sorted {
		if n := len(c.ID) + 1 + len(c.Rarity); n > cellWidth {
			cellWidth = n
		}
	}
	cellWidth += 2

	columns := (terminalWidth() - 2) / cellWidth
	if columns < 1 {
		columns = 1
	}

	fmt.Println()
	fmt.Println(titleStyle.Sprintf("%s (%d)", title, len(sorted)))
	fmt.Println(dimStyle.Sprint(strings.Repeat("─", min(columns*cellWidth, terminalWidth()))))

	for i, c := range sorted {
		if i%columns == 0 {
			fmt.Print("  ")
		}
		fmt.Print(cardLabel(c, cellWidth))
		if i%columns == columns-1 || i == len(sorted)-1 {
			fmt.Println()
		}
	}
	fmt.Println()
}

// printPacks lists every pack in opening order
func printPacks(packs []pack.Pack) {
	for i, p := range packs {
		header := fmt.Sprintf("Pack %d · %s (%d cards)", i+1, p.Kind, len(p.Cards))
		if !p.Full() {
			header += " [short]"
		}
		fmt.Println(colorize.CyanString("%s", header))

		labels := make([]string, len(p.Cards))
		for j, c := range p.Cards {
			labels[j] = cardLabel(c, 0)
		}
		fmt.Printf("  %s\n", strings.Join(labels, dimStyle.Sprint(" · ")))
	}
	fmt.Println()
}

// printStats prints the hit and super rare counters
func printStats(stats pack.Stats) {
	fmt.Println(colorize.CyanString("Hits (AA/SEC/SP): ") + shinyStyle.Sprintf("%d", stats.Hits) +
		dimStyle.Sprint("  |  ") +
		colorize.CyanString("SRs: ") + altArtStyle.Sprintf("%d", stats.SRs))
}
