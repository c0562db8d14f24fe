package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/boosterbox/internal/catalog"
	"github.com/arcanaland/boosterbox/internal/config"
	"github.com/arcanaland/boosterbox/internal/pack"
	"github.com/arcanaland/boosterbox/internal/sampler"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "boosterbox",
	Short: "Booster box and prerelease simulator",
	Long: `Boosterbox simulates opening booster packs of the One Piece Card Game.
It opens a full 24-pack box or a 6-pack prerelease kit from a card catalog,
using the rarity distribution of the physical product, and exports the
result as a decklist.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().StringP("catalog", "c", "", "Path to the card catalog JSON (defaults to the configured catalog)")
	RootCmd.PersistentFlags().StringSlice("sets", nil, "Set tags to open packs from (defaults to the configured sets)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// session bundles what a generating command needs
type session struct {
	config    *config.Config
	catalog   *catalog.Catalog
	generator *pack.Generator
}

// newSession loads the config and catalog and builds a generator, honouring
// the --catalog and --sets flags
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if path, _ := cmd.Flags().GetString("catalog"); path != "" {
		cfg.Catalog = path
	}
	if sets, _ := cmd.Flags().GetStringSlice("sets"); len(sets) > 0 {
		cfg.Sets = sets
	}

	c, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("error loading catalog: %w", err)
	}

	g, err := pack.NewGenerator(sampler.NewDefault(), pack.Options{
		Sets:          cfg.Sets,
		UpgradeChance: cfg.UpgradeChance,
	})
	if err != nil {
		return nil, err
	}

	return &session{config: cfg, catalog: c, generator: g}, nil
}
