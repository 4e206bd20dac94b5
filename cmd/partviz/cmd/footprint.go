package cmd

import (
	"github.com/spf13/cobra"

	"github.com/madeinoz67/partshub-sub000/pkg/footprint"
	"github.com/madeinoz67/partshub-sub000/pkg/geom"
	"github.com/madeinoz67/partshub-sub000/pkg/svg"
	"github.com/madeinoz67/partshub-sub000/pkg/view"
)

var (
	fpZoom       float64
	fpTheme      string
	fpView       string
	fpDimensions bool
	fpNumbers    bool
	fpOut        string
)

var footprintCmd = &cobra.Command{
	Use:   "footprint <record.json|footprint.kicad_mod>",
	Short: "Render a PCB footprint diagram",
	Long: `Render the PCB footprint diagram for a component record as SVG.

Pads scale to fit a fixed canvas; the bottom view keeps the same
geometry but dashes the body outline and hollows the pin-1 marker.
Records that carry backend-rendered markup are sanitized and
emitted as-is.

Examples:
  partviz footprint soic8.json
  partviz footprint --view bottom --dimensions soic8.json
  partviz footprint --zoom 1.5 -o out.svg Package_SO.kicad_mod`,
	Args: cobra.ExactArgs(1),
	RunE: runFootprint,
}

func init() {
	rootCmd.AddCommand(footprintCmd)
	footprintCmd.Flags().Float64Var(&fpZoom, "zoom", 1.0, "zoom factor (0.5 to 3.0)")
	footprintCmd.Flags().StringVar(&fpTheme, "theme", "dark", "color theme (dark or light)")
	footprintCmd.Flags().StringVar(&fpView, "view", "top", "board side to draw (top or bottom)")
	footprintCmd.Flags().BoolVar(&fpDimensions, "dimensions", false, "draw the measurement overlay")
	footprintCmd.Flags().BoolVar(&fpNumbers, "numbers", true, "draw pad number labels")
	footprintCmd.Flags().StringVarP(&fpOut, "out", "o", "", "output file (default stdout)")
}

func runFootprint(cmd *cobra.Command, args []string) error {
	rec, err := loadFootprint(args[0])
	if err != nil {
		return err
	}

	if rec.PrecomputedSVG != "" {
		return writeOutput([]byte(svg.Sanitize(rec.PrecomputedSVG)), fpOut)
	}

	opts := footprint.DefaultRenderOptions()
	opts.Mode = footprint.ParseViewMode(fpView)
	opts.ShowDimensions = fpDimensions
	opts.ShowPadNumbers = fpNumbers
	if fpTheme == "light" {
		opts.Theme = footprint.ThemeLight
	}

	zoom := geom.Clamp(fpZoom, view.ZoomMin, view.ZoomMax)
	return writeOutput(footprint.GenerateSVG(rec, opts, zoom), fpOut)
}
