package cmd

import (
	"fmt"
	"os"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/boosterbox/internal/decklist"
	"github.com/arcanaland/boosterbox/internal/pack"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [box|prerelease]",
	Short: "Open packs and export the pulls as a decklist",
	Long: `Export opens a box (default) or a prerelease kit and prints the pulls as a
decklist: one "<count>x<id>" line per card, with parallel prints counted
under their base id.

Examples:
  boosterbox export
  boosterbox export prerelease --out pool.txt
  boosterbox export prerelease --qr`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(pack.ModeBox), string(pack.ModePrerelease)},
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := pack.ModeBox
		if len(args) == 1 {
			m, err := pack.ParseMode(args[0])
			if err != nil {
				return err
			}
			mode = m
		}

		s, err := newSession(cmd)
		if err != nil {
			return err
		}

		cards := pack.Flatten(s.generator.Open(mode, s.catalog.Cards))
		if len(cards) == 0 {
			return fmt.Errorf("no cards from sets %v in %s", s.config.Sets, s.catalog.Path)
		}
		text := decklist.Export(cards)

		outPath, _ := cmd.Flags().GetString("out")
		if outPath != "" {
			if err := os.WriteFile(outPath, []byte(text+"\n"), 0644); err != nil {
				return fmt.Errorf("error writing decklist: %w", err)
			}
			colorize.Green("Decklist written to %s", outPath)
		} else {
			fmt.Println(text)
		}

		if withQR, _ := cmd.Flags().GetBool("qr"); withQR {
			art, err := decklist.QR(text)
			if err != nil {
				// The decklist itself was already delivered
				colorize.Yellow("Could not render QR code: %v", err)
				return nil
			}
			fmt.Print(art)
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("out", "o", "", "Write the decklist to a file instead of stdout")
	exportCmd.Flags().Bool("qr", false, "Also print the decklist as a QR code")
}
