package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/madeinoz67/partshub-sub000/internal/service"
	"github.com/madeinoz67/partshub-sub000/pkg/view"
)

var (
	servePort    string
	serveBackend string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the diagram HTTP service",
	Long: `Start the HTTP service that renders component diagrams on demand.

Records are fetched from the inventory backend and rendered to SVG:

  GET /api/components/:id/symbol.svg?zoom=1.5
  GET /api/components/:id/footprint.svg?view=bottom&dimensions=1

Configuration comes from the environment (PORT, ENV, BACKEND_URL,
READ_TIMEOUT, WRITE_TIMEOUT); the flags below override it.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (overrides PORT)")
	serveCmd.Flags().StringVar(&serveBackend, "backend", "", "inventory backend base URL (overrides BACKEND_URL)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := service.Load()
	if servePort != "" {
		cfg.Port = servePort
	}
	if serveBackend != "" {
		cfg.BackendURL = serveBackend
	}

	app := service.New(cfg, view.NewHTTPSource(cfg.BackendURL))

	addr := ":" + cfg.Port
	log.Printf("[SERVE] Diagram service listening on %s (env: %s, backend: %s)",
		addr, cfg.Environment, cfg.BackendURL)
	if err := app.Listen(addr); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
