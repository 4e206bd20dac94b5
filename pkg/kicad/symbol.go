package kicad

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/madeinoz67/partshub-sub000/pkg/geom"
	"github.com/madeinoz67/partshub-sub000/pkg/part"
)

// electricalByKicad maps KiCad pin electrical types onto record types.
// KiCad's free, no_connect, and unspecified all collapse to
// unspecified.
var electricalByKicad = map[string]part.ElectricalType{
	"input":          part.Input,
	"output":         part.Output,
	"bidirectional":  part.Bidirectional,
	"tri_state":      part.TriState,
	"passive":        part.Passive,
	"power_in":       part.PowerIn,
	"power_out":      part.PowerOut,
	"open_collector": part.OpenCollector,
	"open_emitter":   part.OpenEmitter,
}

// ParseSymbolLib reads a .kicad_sym symbol library and extracts one
// record per top-level symbol.
func ParseSymbolLib(r io.Reader) ([]part.SymbolRecord, error) {
	nodes, err := parse(r)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("empty file or no valid s-expressions found")
	}

	root := nodes[0]
	if root.Name != "kicad_symbol_lib" {
		return nil, fmt.Errorf("not a KiCad symbol library: expected 'kicad_symbol_lib', got '%s'", root.Name)
	}

	symNodes := root.Children("symbol")
	records := make([]part.SymbolRecord, 0, len(symNodes))
	for _, symNode := range symNodes {
		records = append(records, symbolRecord(symNode))
	}
	return records, nil
}

// ParseSymbolLibFile reads and parses a .kicad_sym file.
func ParseSymbolLibFile(filename string) ([]part.SymbolRecord, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ParseSymbolLib(file)
}

// symbolRecord maps one (symbol ...) definition to a record. Pins may
// sit directly on the symbol or inside nested unit symbols; duplicate
// numbers from alternate body styles keep the first occurrence.
func symbolRecord(node *Node) part.SymbolRecord {
	rec := part.SymbolRecord{}

	id, _ := node.Arg(0)
	rec.Library, rec.Part = splitLibID(id)

	for _, prop := range node.Children("property") {
		key, _ := prop.Arg(0)
		value, _ := prop.Arg(1)
		switch {
		case key == "Reference":
			rec.Reference = value
		case value == "" || strings.HasPrefix(key, "ki_"):
			// editor bookkeeping, skip
		default:
			if rec.Extra == nil {
				rec.Extra = make(map[string]any)
			}
			rec.Extra[key] = value
		}
	}

	seen := make(map[string]bool)
	collect := func(owner *Node) {
		for _, pinNode := range owner.Children("pin") {
			pin := pinFromNode(pinNode)
			if seen[pin.Number] {
				continue
			}
			seen[pin.Number] = true
			rec.Pins = append(rec.Pins, pin)
		}
	}
	collect(node)
	for _, unit := range node.Children("symbol") {
		collect(unit)
	}

	return rec
}

// pinFromNode maps a (pin ...) node. Format:
//
//	(pin power_in line (at 0 12.7 270) (length 2.54)
//	    (name "VCC" (effects ...))
//	    (number "8" (effects ...)))
func pinFromNode(n *Node) part.Pin {
	pin := part.Pin{Electrical: part.Unspecified}

	if etype, ok := n.Arg(0); ok {
		if mapped, known := electricalByKicad[etype]; known {
			pin.Electrical = mapped
		}
	}
	if at := n.Child("at"); at != nil {
		x, okX := at.Float(0)
		y, okY := at.Float(1)
		if okX && okY {
			pin.Position = &geom.Point{X: x, Y: y}
		}
	}
	if name := n.Child("name"); name != nil {
		v, _ := name.Arg(0)
		pin.Name = pinDisplayName(v)
	}
	if num := n.Child("number"); num != nil {
		pin.Number, _ = num.Arg(0)
	}

	return pin
}

// pinDisplayName strips KiCad text markup: "~" alone means unnamed,
// "~{RST}" draws RST with an overbar.
func pinDisplayName(s string) string {
	if s == "~" {
		return ""
	}
	if strings.HasPrefix(s, "~{") && strings.HasSuffix(s, "}") {
		return s[2 : len(s)-1]
	}
	return s
}
