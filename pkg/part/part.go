// Package part defines the pin/pad data records consumed by the diagram
// generators. Records arrive as JSON from the inventory backend; all
// tolerant decoding and defaulting happens here, at the adapter
// boundary, so the layout engines and renderers can assume well-formed
// values.
package part

import (
	"fmt"

	"github.com/madeinoz67/partshub-sub000/pkg/geom"
)

// ElectricalType is the electrical role of a symbol pin.
type ElectricalType string

const (
	Input         ElectricalType = "input"
	Output        ElectricalType = "output"
	Bidirectional ElectricalType = "bidirectional"
	TriState      ElectricalType = "tri_state"
	Passive       ElectricalType = "passive"
	PowerIn       ElectricalType = "power_in"
	PowerOut      ElectricalType = "power_out"
	OpenCollector ElectricalType = "open_collector"
	OpenEmitter   ElectricalType = "open_emitter"
	Unspecified   ElectricalType = "unspecified"
)

// PadType is the physical mounting technology of a footprint pad.
type PadType string

const (
	PadSMD        PadType = "smd"
	PadThruHole   PadType = "thru_hole"
	PadNPThruHole PadType = "np_thru_hole"
	PadConnect    PadType = "connect"
	PadAperture   PadType = "aperture"
)

// PadShape is the copper outline drawn for a pad.
type PadShape string

const (
	ShapeRect   PadShape = "rect"
	ShapeCircle PadShape = "circle"
	ShapeOval   PadShape = "oval"
)

// Pin is a named electrical terminal of a schematic symbol.
// Position is optional; symbol layout assigns coordinates from the
// classifier buckets, so most records omit it.
type Pin struct {
	Number     string         `json:"number"`
	Name       string         `json:"name"`
	Electrical ElectricalType `json:"electricalType"`
	Position   *geom.Point    `json:"position,omitempty"`
}

// Pad is a physical copper contact of a PCB footprint. Unlike Pin, the
// position is authoritative: footprint layout never invents pad
// coordinates. A Drill of zero means no drill hole.
type Pad struct {
	Number   string     `json:"number"`
	Type     PadType    `json:"type"`
	Size     geom.Size  `json:"size"`
	Drill    float64    `json:"drill,omitempty"`
	Shape    PadShape   `json:"shape"`
	Position geom.Point `json:"position"`
}

// HasDrill reports whether the pad renders a drill bore.
func (p Pad) HasDrill() bool {
	return p.Drill > 0
}

// Bounds returns the rectangle covered by the pad copper.
func (p Pad) Bounds() geom.Rect {
	return geom.RectAround(p.Position, p.Size)
}

// SymbolRecord is the logical pin list for one component, as served by
// the inventory backend.
type SymbolRecord struct {
	Library   string         `json:"libraryName"`
	Part      string         `json:"partName"`
	Reference string         `json:"referenceDesignator"`
	Pins      []Pin          `json:"pins"`
	Extra     map[string]any `json:"extraProperties,omitempty"`
}

// FootprintRecord is the physical pad list for one component.
// PrecomputedSVG, when present, carries backend-rendered markup that the
// viewer serves (after sanitizing) instead of generating a diagram.
type FootprintRecord struct {
	Library        string             `json:"libraryName"`
	Part           string             `json:"partName"`
	Reference      string             `json:"referenceDesignator"`
	Pads           []Pad              `json:"pads"`
	Dimensions     map[string]float64 `json:"dimensions,omitempty"`
	Extra          map[string]any     `json:"extraProperties,omitempty"`
	PrecomputedSVG string             `json:"precomputedSvg,omitempty"`
}

// PadBounds returns the tight bounding box over all pad extents
// (position ± half size). Empty records yield an empty rect.
func (r *FootprintRecord) PadBounds() geom.Rect {
	bounds := geom.NewRect()
	for _, pad := range r.Pads {
		bounds.ExpandRect(pad.Bounds())
	}
	return bounds
}

// PinByNumber returns a lookup map over the record's pins. Duplicate
// numbers resolve to the last occurrence.
func (r *SymbolRecord) PinByNumber() map[string]Pin {
	m := make(map[string]Pin, len(r.Pins))
	for _, pin := range r.Pins {
		m[pin.Number] = pin
	}
	return m
}

// Validate reports invariant violations that decoding tolerates but
// callers may want to reject, currently duplicate pin numbers.
func (r *SymbolRecord) Validate() error {
	return checkDuplicates("pin", pinNumbers(r.Pins))
}

// Validate reports duplicate pad numbers.
func (r *FootprintRecord) Validate() error {
	nums := make([]string, len(r.Pads))
	for i, pad := range r.Pads {
		nums[i] = pad.Number
	}
	return checkDuplicates("pad", nums)
}

func pinNumbers(pins []Pin) []string {
	nums := make([]string, len(pins))
	for i, pin := range pins {
		nums[i] = pin.Number
	}
	return nums
}

func checkDuplicates(kind string, numbers []string) error {
	seen := make(map[string]bool, len(numbers))
	for _, n := range numbers {
		if seen[n] {
			return fmt.Errorf("duplicate %s number %q", kind, n)
		}
		seen[n] = true
	}
	return nil
}
