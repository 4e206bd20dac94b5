package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/madeinoz67/partshub-sub000/pkg/view"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "partviz",
	Short: "PartsHub diagram tools - render symbols and footprints as SVG",
	Long: `partviz renders electronic component records as SVG diagrams:
  - Schematic symbols with pins classified onto body sides
  - PCB footprints with pads, drills, and measurement overlays

Records come from PartsHub JSON exports or straight from KiCad
library files (.kicad_sym, .kicad_mod).

Examples:
  partviz symbol ne555.json                   # Symbol SVG to stdout
  partviz footprint --view bottom soic8.json  # Mirrored bottom view
  partviz info Package_SO.kicad_mod           # Summarize a record
  partviz serve --port 3000                   # Run the HTTP service`,
	Version: "0.9.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			view.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
