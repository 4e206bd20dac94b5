package cmd

import (
	"github.com/spf13/cobra"

	"github.com/madeinoz67/partshub-sub000/pkg/geom"
	"github.com/madeinoz67/partshub-sub000/pkg/schematic"
	"github.com/madeinoz67/partshub-sub000/pkg/view"
)

var (
	symZoom  float64
	symTheme string
	symPart  string
	symOut   string
)

var symbolCmd = &cobra.Command{
	Use:   "symbol <record.json|library.kicad_sym>",
	Short: "Render a schematic symbol diagram",
	Long: `Render the schematic symbol diagram for a component record as SVG.

Pins are classified onto the body sides by name and electrical type
(power on top, ground on the bottom, inputs left, the rest right).

Examples:
  partviz symbol ne555.json
  partviz symbol --zoom 2 --theme light -o ne555.svg ne555.json
  partviz symbol --part NE555 Timer.kicad_sym`,
	Args: cobra.ExactArgs(1),
	RunE: runSymbol,
}

func init() {
	rootCmd.AddCommand(symbolCmd)
	symbolCmd.Flags().Float64Var(&symZoom, "zoom", 1.0, "zoom factor (0.5 to 3.0)")
	symbolCmd.Flags().StringVar(&symTheme, "theme", "dark", "color theme (dark or light)")
	symbolCmd.Flags().StringVar(&symPart, "part", "", "symbol name inside a multi-symbol library")
	symbolCmd.Flags().StringVarP(&symOut, "out", "o", "", "output file (default stdout)")
}

func runSymbol(cmd *cobra.Command, args []string) error {
	rec, err := loadSymbol(args[0], symPart)
	if err != nil {
		return err
	}

	opts := schematic.DefaultRenderOptions()
	if symTheme == "light" {
		opts.Theme = schematic.ThemeLight
	}

	zoom := geom.Clamp(symZoom, view.ZoomMin, view.ZoomMax)
	return writeOutput(schematic.GenerateSVG(rec, opts, zoom), symOut)
}
