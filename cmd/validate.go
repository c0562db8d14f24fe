package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/boosterbox/internal/config"
	"github.com/arcanaland/boosterbox/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a card catalog",
	Long: `Validate checks that a card catalog can be used to open packs.
It reports malformed entries as errors, and unknown rarity codes, missing
images and tiers too small for a full box as warnings.

Without a path the configured catalog is validated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flagPath := flagString(cmd, "catalog")
		if len(args) == 1 {
			flagPath = args[0]
		}

		catalogPath, err := config.GetCatalogPath(flagPath)
		if err != nil {
			return err
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		v := validator.NewValidator(catalogPath)
		v.Sets = cfg.Sets
		if sets, _ := cmd.Flags().GetStringSlice("sets"); len(sets) > 0 {
			v.Sets = sets
		}
		v.ImageDir = cfg.ImageDir

		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		// Display validation results
		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			fmt.Printf("✅ Catalog '%s' is valid.\n", catalogPath)
		} else {
			fmt.Printf("❌ Catalog '%s' has %d validation errors:\n", catalogPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		if len(results.Errors) > 0 {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
