package cmd

import (
	"encoding/json"
	"os"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/boosterbox/internal/pack"
	"github.com/arcanaland/boosterbox/internal/server"
)

// boxCmd represents the box command
var boxCmd = &cobra.Command{
	Use:   "box",
	Short: "Open a full 24-pack booster box",
	Long: `Box opens 24 packs of 12 cards. Each pack holds 7 commons, 3 uncommons,
a leader-or-rare slot and a rare-or-better slot. The upper slots are dealt
from pools allocated once for the whole box: 7 leaders, 7 super rares, one
secret rare and one hit, the rest filled with rares.

Examples:
  boosterbox box
  boosterbox box --packs
  boosterbox box --catalog ./one_piece_cards.json --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOpen(cmd, pack.ModeBox)
	},
}

// prereleaseCmd represents the prerelease command
var prereleaseCmd = &cobra.Command{
	Use:   "prerelease",
	Short: "Open a 6-pack prerelease kit",
	Long: `Prerelease opens two leader packs, two double-rare packs and two hit packs.
Hit packs always carry an upgraded slot; the other packs upgrade their second
rare with a small chance (upgrade_chance in the config, 5% by default).

Examples:
  boosterbox prerelease
  boosterbox prerelease --packs`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOpen(cmd, pack.ModePrerelease)
	},
}

func init() {
	for _, c := range []*cobra.Command{boxCmd, prereleaseCmd} {
		c.Flags().Bool("packs", false, "List cards pack by pack instead of as one sorted grid")
		c.Flags().Bool("json", false, "Print the result as JSON")
		RootCmd.AddCommand(c)
	}
}

func runOpen(cmd *cobra.Command, mode pack.Mode) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	packs := s.generator.Open(mode, s.catalog.Cards)
	cards := pack.Flatten(packs)
	stats := pack.Summarize(cards)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(server.OpenResponse{
			Mode:         mode,
			Cards:        cards,
			Packs:        packs,
			Stats:        stats,
			Notification: server.Notification(mode),
		})
	}

	if len(cards) == 0 {
		colorize.Yellow("No cards from sets %v in %s.", s.config.Sets, s.catalog.Path)
		return nil
	}

	if byPack, _ := cmd.Flags().GetBool("packs"); byPack {
		printPacks(packs)
	} else {
		printGrid(cards, gridTitle(mode))
	}
	printStats(stats)
	colorize.Green("%s", server.Notification(mode))
	return nil
}

func gridTitle(mode pack.Mode) string {
	if mode == pack.ModePrerelease {
		return "Prerelease pool"
	}
	return "Box contents"
}
