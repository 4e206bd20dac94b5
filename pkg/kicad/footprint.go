package kicad

import (
	"fmt"
	"io"
	"os"

	"github.com/madeinoz67/partshub-sub000/pkg/geom"
	"github.com/madeinoz67/partshub-sub000/pkg/part"
)

// ParseFootprint reads a .kicad_mod footprint and extracts its pad
// list. Both the KiCad 6+ 'footprint' root and the legacy 'module'
// root are accepted.
func ParseFootprint(r io.Reader) (*part.FootprintRecord, error) {
	nodes, err := parse(r)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("empty file or no valid s-expressions found")
	}

	root := nodes[0]
	if root.Name != "footprint" && root.Name != "module" {
		return nil, fmt.Errorf("not a KiCad footprint: expected 'footprint', got '%s'", root.Name)
	}

	rec := &part.FootprintRecord{}

	id, _ := root.Arg(0)
	rec.Library, rec.Part = splitLibID(id)

	// Reference designator: KiCad 6 writes (fp_text reference "U1" ...),
	// KiCad 8 writes (property "Reference" "U1" ...).
	for _, text := range root.Children("fp_text") {
		if kind, _ := text.Arg(0); kind == "reference" {
			rec.Reference, _ = text.Arg(1)
		}
	}
	for _, prop := range root.Children("property") {
		if key, _ := prop.Arg(0); key == "Reference" {
			rec.Reference, _ = prop.Arg(1)
		}
	}

	extra := make(map[string]any)
	if descr := root.Child("descr"); descr != nil {
		if v, ok := descr.Arg(0); ok && v != "" {
			extra["description"] = v
		}
	}
	if tags := root.Child("tags"); tags != nil {
		if v, ok := tags.Arg(0); ok && v != "" {
			extra["tags"] = v
		}
	}
	if len(extra) > 0 {
		rec.Extra = extra
	}

	padNodes := root.Children("pad")
	rec.Pads = make([]part.Pad, 0, len(padNodes))
	for _, padNode := range padNodes {
		rec.Pads = append(rec.Pads, padFromNode(padNode))
	}

	return rec, nil
}

// ParseFootprintFile reads and parses a .kicad_mod file.
func ParseFootprintFile(filename string) (*part.FootprintRecord, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ParseFootprint(file)
}

// padFromNode maps a (pad ...) node. Format:
//
//	(pad "1" smd roundrect (at -2.7 -1.9) (size 1.55 0.6)
//	    (layers "F.Cu" "F.Paste" "F.Mask"))
func padFromNode(n *Node) part.Pad {
	pad := part.Pad{
		Type:  part.PadSMD,
		Shape: part.ShapeRect,
		Size:  part.DefaultPadSize,
	}

	pad.Number, _ = n.Arg(0)
	if t, ok := n.Arg(1); ok {
		pad.Type = padTypeFromKicad(t)
	}
	if s, ok := n.Arg(2); ok {
		pad.Shape = padShapeFromKicad(s)
	}
	if at := n.Child("at"); at != nil {
		x, okX := at.Float(0)
		y, okY := at.Float(1)
		if okX && okY {
			pad.Position = geom.Point{X: x, Y: y}
		}
	}
	if size := n.Child("size"); size != nil {
		if w, ok := size.Float(0); ok && w > 0 {
			pad.Size = geom.Size{Width: w, Height: w}
		}
		if h, ok := size.Float(1); ok && h > 0 {
			pad.Size.Height = h
		}
	}
	if drill := n.Child("drill"); drill != nil {
		// (drill 0.8), (drill oval 0.6 1.2), (drill 0.8 (offset ...))
		for i := range drill.Values {
			if d, ok := drill.Float(i); ok && d > 0 {
				pad.Drill = d
				break
			}
		}
	}

	return pad
}

func padTypeFromKicad(s string) part.PadType {
	switch s {
	case "thru_hole":
		return part.PadThruHole
	case "np_thru_hole":
		return part.PadNPThruHole
	case "connect":
		return part.PadConnect
	}
	return part.PadSMD
}

// padShapeFromKicad folds the KiCad shape set onto the three rendered
// outlines: roundrect, trapezoid, and custom pads all draw as
// rectangles.
func padShapeFromKicad(s string) part.PadShape {
	switch s {
	case "circle":
		return part.ShapeCircle
	case "oval":
		return part.ShapeOval
	}
	return part.ShapeRect
}
