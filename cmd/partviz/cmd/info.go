package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/madeinoz67/partshub-sub000/pkg/footprint"
	"github.com/madeinoz67/partshub-sub000/pkg/geom"
	"github.com/madeinoz67/partshub-sub000/pkg/kicad"
	"github.com/madeinoz67/partshub-sub000/pkg/part"
	"github.com/madeinoz67/partshub-sub000/pkg/schematic"
)

var infoCmd = &cobra.Command{
	Use:   "info <record>",
	Short: "Show component record information",
	Long: `Display a summary of a component record without rendering it.

For symbols: pin count, side classification, and diagram geometry.
For footprints: pad counts by type, extents, and fit scale.

The record kind is taken from the file extension; JSON records are
probed for pads to tell footprints from symbols.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	path := args[0]
	switch strings.ToLower(filepath.Ext(path)) {
	case ".kicad_sym":
		records, err := kicad.ParseSymbolLibFile(path)
		if err != nil {
			return fmt.Errorf("error parsing symbol library: %w", err)
		}
		for i := range records {
			if i > 0 {
				fmt.Println()
			}
			showSymbolInfo(&records[i], path)
		}
		return nil
	case ".kicad_mod":
		rec, err := kicad.ParseFootprintFile(path)
		if err != nil {
			return fmt.Errorf("error parsing footprint: %w", err)
		}
		showFootprintInfo(rec, path)
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	// A pads array marks the record as a footprint
	var probe struct {
		Pads []json.RawMessage `json:"pads"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("error parsing record: %w", err)
	}
	if len(probe.Pads) > 0 {
		rec, err := part.DecodeFootprint(data)
		if err != nil {
			return err
		}
		showFootprintInfo(rec, path)
		return nil
	}

	rec, err := part.DecodeSymbol(data)
	if err != nil {
		return err
	}
	showSymbolInfo(rec, path)
	return nil
}

func showSymbolInfo(rec *part.SymbolRecord, filename string) {
	fmt.Printf("Symbol: %s\n", recordID(rec.Library, rec.Part))
	fmt.Printf("File: %s\n", filename)
	if rec.Reference != "" {
		fmt.Printf("Reference: %s\n", rec.Reference)
	}
	fmt.Println()

	fmt.Println("Pins:")
	fmt.Printf("  Total: %d\n", len(rec.Pins))
	groups := schematic.Classify(rec.Pins)
	for _, side := range geom.Sides {
		pins := groups.Side(side)
		if len(pins) == 0 {
			continue
		}
		labels := make([]string, len(pins))
		for i, pin := range pins {
			if pin.Name != "" {
				labels[i] = fmt.Sprintf("%s (%s)", pin.Number, pin.Name)
			} else {
				labels[i] = pin.Number
			}
		}
		fmt.Printf("  %-7s %s\n", side.String()+":", strings.Join(labels, ", "))
	}
	fmt.Println()

	lay := schematic.ComputeLayout(rec)
	fmt.Println("Diagram:")
	fmt.Printf("  Body: %.0f x %.0f\n", lay.Body.Width(), lay.Body.Height())
	fmt.Printf("  Canvas: %.0f x %.0f\n", lay.Canvas.Width, lay.Canvas.Height)

	showExtra(rec.Extra)
}

func showFootprintInfo(rec *part.FootprintRecord, filename string) {
	fmt.Printf("Footprint: %s\n", recordID(rec.Library, rec.Part))
	fmt.Printf("File: %s\n", filename)
	if rec.Reference != "" {
		fmt.Printf("Reference: %s\n", rec.Reference)
	}
	fmt.Println()

	fmt.Println("Pads:")
	fmt.Printf("  Total: %d\n", len(rec.Pads))
	counts := make(map[part.PadType]int)
	drilled := 0
	for _, pad := range rec.Pads {
		counts[pad.Type]++
		if pad.HasDrill() {
			drilled++
		}
	}
	for _, t := range []part.PadType{
		part.PadSMD, part.PadThruHole, part.PadNPThruHole,
		part.PadConnect, part.PadAperture,
	} {
		if counts[t] > 0 {
			fmt.Printf("  %s: %d\n", t, counts[t])
		}
	}
	if drilled > 0 {
		fmt.Printf("  Drilled: %d\n", drilled)
	}
	fmt.Println()

	lay := footprint.ComputeLayout(rec)
	fmt.Println("Diagram:")
	if lay.Empty {
		fmt.Println("  No pads; placeholder only")
	} else {
		fmt.Printf("  Pad extents: %.2f x %.2f mm\n", lay.PadBounds.Width(), lay.PadBounds.Height())
		fmt.Printf("  Body clearance: %.0f mm\n", footprint.BodyPadding(rec.Part))
		fmt.Printf("  Fit scale: %.2f\n", lay.Scale)
	}

	if len(rec.Dimensions) > 0 {
		fmt.Println()
		fmt.Println("Dimensions:")
		keys := make([]string, 0, len(rec.Dimensions))
		for k := range rec.Dimensions {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("  %s: %.2f mm\n", k, rec.Dimensions[k])
		}
	}

	showExtra(rec.Extra)
}

func showExtra(extra map[string]any) {
	if len(extra) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Properties:")
	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %s: %v\n", k, extra[k])
	}
}
