package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/madeinoz67/partshub-sub000/pkg/kicad"
	"github.com/madeinoz67/partshub-sub000/pkg/part"
)

// loadSymbol reads a symbol record from a PartsHub JSON export or a
// KiCad symbol library. Libraries may hold several symbols; partName
// picks one, and an empty partName takes the first.
func loadSymbol(path, partName string) (*part.SymbolRecord, error) {
	if strings.EqualFold(filepath.Ext(path), ".kicad_sym") {
		records, err := kicad.ParseSymbolLibFile(path)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, fmt.Errorf("no symbols found in %s", path)
		}
		if partName == "" {
			return &records[0], nil
		}
		for i := range records {
			if records[i].Part == partName {
				return &records[i], nil
			}
		}
		return nil, fmt.Errorf("symbol '%s' not found in %s", partName, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return part.DecodeSymbol(data)
}

// loadFootprint reads a footprint record from a PartsHub JSON export or
// a KiCad footprint file.
func loadFootprint(path string) (*part.FootprintRecord, error) {
	if strings.EqualFold(filepath.Ext(path), ".kicad_mod") {
		return kicad.ParseFootprintFile(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return part.DecodeFootprint(data)
}

// writeOutput sends rendered markup to a file, or stdout when out is
// empty.
func writeOutput(data []byte, out string) error {
	if out == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// recordID formats the Library:Part identity, dropping the colon when
// the record has no library.
func recordID(library, name string) string {
	if library == "" {
		return name
	}
	return library + ":" + name
}
