package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/boosterbox/internal/ansiart"
	"github.com/arcanaland/boosterbox/internal/card"
	"github.com/arcanaland/boosterbox/internal/catalog"
	"github.com/arcanaland/boosterbox/internal/config"
)

const (
	artWidth  = 30
	artHeight = 21
)

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display information about a specific card with ANSI art",
	Long: `Show displays the details of a card with ANSI terminal art.

The card image is looked up in the image directory (image_dir in the config,
or --image-dir) as <id>.png, with characters outside [A-Za-z0-9_-] in the id
replaced by underscores. When there is no local image the card's remote image
URL is printed instead; images are never downloaded.

Examples:
  boosterbox show OP14-001
  boosterbox show OP14-001_p1 --image-dir ./cards`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cardID := args[0]

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		catalogPath := cfg.Catalog
		if path := flagString(cmd, "catalog"); path != "" {
			catalogPath = path
		}
		imageDir := cfg.ImageDir
		if dir := flagString(cmd, "image-dir"); dir != "" {
			imageDir = dir
		}

		cat, err := catalog.Load(catalogPath)
		if err != nil {
			return fmt.Errorf("error loading catalog: %w", err)
		}

		c, err := cat.Lookup(cardID)
		if err != nil {
			return fmt.Errorf("error getting card: %w", err)
		}

		var art string
		if noArt, _ := cmd.Flags().GetBool("no-art"); !noArt {
			art, err = cardArt(imageDir, c)
			if err != nil {
				colorize.Yellow("Could not render card art: %v", err)
			}
		}

		displayCard(c, art)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().String("image-dir", "", "Directory holding card images (defaults to the configured image_dir)")
	showCmd.Flags().Bool("no-art", false, "Skip the ANSI art")
}

func flagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

// findCardImage returns the local image for a card, if any
func findCardImage(imageDir string, c *card.Card) (string, bool) {
	if imageDir == "" {
		return "", false
	}
	key := card.ImageKey(c)
	for _, ext := range []string{".png", ".jpg", ".jpeg", ".gif"} {
		path := filepath.Join(imageDir, key+ext)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// cardArt renders the card's local image, using the ANSI cache
func cardArt(imageDir string, c *card.Card) (string, error) {
	path, ok := findCardImage(imageDir, c)
	if !ok {
		return "", nil
	}
	return ansiart.Cached(filepath.Join(config.GetCacheDir(), "ansi_cache"), path, artWidth, artHeight)
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

// colorStyle maps a card colour to a terminal colour; multicolour cards use
// the first
func colorStyle(cardColor string) *colorize.Color {
	first := strings.Fields(strings.ReplaceAll(cardColor, "/", " "))
	if len(first) == 0 {
		return plainStyle
	}
	switch first[0] {
	case "Red":
		return colorize.New(colorize.FgRed)
	case "Blue":
		return colorize.New(colorize.FgBlue)
	case "Green":
		return colorize.New(colorize.FgGreen)
	case "Purple":
		return colorize.New(colorize.FgMagenta)
	case "Yellow":
		return colorize.New(colorize.FgYellow)
	default:
		return dimStyle
	}
}

// cardInfoLines builds the text column of the detail view
func cardInfoLines(c *card.Card, textWidth int) []string {
	label := func(name string) string { return colorize.CyanString("%-9s", name+":") }

	lines := []string{
		label("Card") + cardLabel(c, 0) + " " + colorize.HiWhiteString("%s", c.Name),
		label("Set") + colorize.HiWhiteString("%s", c.CardSet),
		label("Color") + colorStyle(c.Color).Sprint(c.Color),
	}

	for _, field := range []struct{ name, value string }{
		{"Type", c.Type},
		{"Category", c.Category},
		{"Attribute", c.Attribute},
		{"Cost", c.Cost},
		{"Power", c.Power},
		{"Counter", c.Counter},
	} {
		if field.value != "" && field.value != "-" {
			lines = append(lines, label(field.name)+colorize.HiWhiteString("%s", field.value))
		}
	}

	for _, block := range []struct{ name, text string }{
		{"Effect", c.Effect},
		{"Trigger", c.Trigger},
	} {
		if block.text == "" || block.text == "-" {
			continue
		}
		lines = append(lines, "", colorize.CyanString("%s:", block.name))
		lines = append(lines, wrapText(block.text, textWidth)...)
	}

	if url := card.RemoteImage(c); url != "" {
		lines = append(lines, "", label("Image")+dimStyle.Sprint(url))
	}
	return lines
}

// displayCard prints the ANSI art on the left and the card details on the right
func displayCard(c *card.Card, ansiArt string) {
	var ansiLines []string
	if ansiArt != "" {
		ansiLines = strings.Split(strings.TrimSuffix(ansiArt, "\n"), "\n")
	}
	maxAnsiWidth := 0
	for _, line := range ansiLines {
		if w := len([]rune(ansiart.Strip(line))); w > maxAnsiWidth {
			maxAnsiWidth = w
		}
	}

	spacing := 4
	infoStartCol := maxAnsiWidth + spacing
	if maxAnsiWidth == 0 {
		infoStartCol = 0
	}

	infoWidth := terminalWidth() - infoStartCol - 2
	if infoWidth < 20 {
		infoWidth = 20
	}
	infoLines := cardInfoLines(c, infoWidth)

	fmt.Println()
	for i := 0; i < max(len(ansiLines), len(infoLines)); i++ {
		fmt.Print("  ")
		if i < len(ansiLines) {
			fmt.Print(ansiLines[i])
			fmt.Print(strings.Repeat(" ", infoStartCol-len([]rune(ansiart.Strip(ansiLines[i])))))
		} else {
			fmt.Print(strings.Repeat(" ", infoStartCol))
		}
		if i < len(infoLines) {
			fmt.Print(infoLines[i])
		}
		fmt.Println()
	}
	fmt.Println()
}
