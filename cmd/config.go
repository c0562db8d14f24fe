package cmd

import (
	"fmt"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/boosterbox/internal/catalog"
	"github.com/arcanaland/boosterbox/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the boosterbox configuration",
	Long:  `Commands for managing the configuration file and data directories.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the config file and data directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir := config.GetDataDir()

		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return fmt.Errorf("error creating data directory: %w", err)
		}
		fmt.Println("Data directory initialized at:", dataDir)

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}
		fmt.Println("Config file initialized at:", config.GetConfigFilePath())

		if _, err := os.Stat(cfg.Catalog); os.IsNotExist(err) {
			colorize.Yellow("No catalog at %s yet.", cfg.Catalog)
			fmt.Println("Copy your card catalog there or run 'boosterbox config set-catalog <path>'.")
		}
		return nil
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		row := func(name, value string) {
			fmt.Println(colorize.CyanString("%-16s", name) + colorize.HiWhiteString("%s", value))
		}
		row("config file", config.GetConfigFilePath())
		row("catalog", cfg.Catalog)
		row("image_dir", cfg.ImageDir)
		row("sets", strings.Join(cfg.Sets, ", "))
		row("upgrade_chance", fmt.Sprintf("%.2f", cfg.UpgradeChance))
		row("listen", cfg.Listen)
		row("allowed_origins", strings.Join(cfg.AllowedOrigins, ", "))
		row("cache", config.GetCacheDir())
		return nil
	},
}

// configSetCatalogCmd represents the config set-catalog command
var configSetCatalogCmd = &cobra.Command{
	Use:   "set-catalog [path]",
	Short: "Set the default card catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		// Try to load the catalog to make sure it's valid
		c, err := catalog.Load(path)
		if err != nil {
			return fmt.Errorf("not a valid catalog: %w", err)
		}

		if err := config.SetCatalog(path); err != nil {
			return fmt.Errorf("error setting catalog: %w", err)
		}

		fmt.Printf("Default catalog set to: %s (%d cards)\n", path, c.Len())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCatalogCmd)
}
