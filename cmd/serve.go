package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arcanaland/boosterbox/internal/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve pack generation over HTTP",
	Long: `Serve starts a JSON API for web front ends:

  GET  /api/box            open a 24-pack box
  GET  /api/prerelease     open a 6-pack prerelease kit
  GET  /api/cards/{id}     card details
  POST /api/decklist       {"ids": [...]} -> decklist text
  POST /api/decklist/qr    {"ids": [...]} -> decklist QR code (PNG)
  GET  /cards/{key}.png    card images from image_dir`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}

		addr := s.config.Listen
		if listen := flagString(cmd, "listen"); listen != "" {
			addr = listen
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		h := server.NewHandlers(s.catalog, s.generator, s.config.ImageDir)
		return server.Run(ctx, h, server.Options{
			Addr:           addr,
			AllowedOrigins: s.config.AllowedOrigins,
		})
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", "", "Address to listen on (defaults to the configured listen address)")
}
