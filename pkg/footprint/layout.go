// Package footprint generates physical land-pattern diagrams for
// components. Pad coordinates come from the record in millimeters; the
// layout fits them into a fixed canvas and the renderer draws the board,
// pads, drills, and measurement annotations as an ordered op list.
package footprint

import (
	"strings"

	"github.com/madeinoz67/partshub-sub000/pkg/geom"
	"github.com/madeinoz67/partshub-sub000/pkg/part"
)

// The canvas is fixed; content is scaled to fit inside it.
const (
	ViewWidth  = 500.0
	ViewHeight = 400.0

	contentMargin = 40.0
)

// BodyPadding returns the cosmetic clearance between the pad bounding
// box and the drawn body outline, chosen by package family. It never
// affects pad placement.
func BodyPadding(partName string) float64 {
	name := strings.ToUpper(partName)
	switch {
	case strings.Contains(name, "QFP") || strings.Contains(name, "SOP"):
		return 20
	case strings.Contains(name, "BGA"):
		return 10
	case strings.Contains(name, "DIP"):
		return 25
	default:
		return 15
	}
}

// Layout maps board space (millimeters) onto the canvas. When Empty is
// set no mapping was computed and only the placeholder may be drawn.
type Layout struct {
	PadBounds geom.Rect
	Body      geom.Rect
	Scale     float64
	Offset    geom.Point
	Empty     bool
}

// ComputeLayout fits the record's pads into the canvas. The pad
// bounding box is padded per package family, then uniformly scaled so
// the body plus margin fills the canvas, centered. Records without pads
// short-circuit to an empty layout with no arithmetic performed.
func ComputeLayout(rec *part.FootprintRecord) Layout {
	bounds := rec.PadBounds()
	if len(rec.Pads) == 0 || bounds.IsEmpty() {
		return Layout{Empty: true}
	}

	body := bounds.Outset(BodyPadding(rec.Part))
	scaleX := (ViewWidth - 2*contentMargin) / body.Width()
	scaleY := (ViewHeight - 2*contentMargin) / body.Height()
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}

	center := body.Center()
	offset := geom.Point{
		X: ViewWidth/2 - center.X*scale,
		Y: ViewHeight/2 - center.Y*scale,
	}
	return Layout{PadBounds: bounds, Body: body, Scale: scale, Offset: offset}
}

// Apply maps a board-space point onto the canvas.
func (l Layout) Apply(p geom.Point) geom.Point {
	return geom.Point{X: l.Offset.X + p.X*l.Scale, Y: l.Offset.Y + p.Y*l.Scale}
}

// Length scales a board-space length onto the canvas.
func (l Layout) Length(v float64) float64 {
	return v * l.Scale
}

// ApplyRect maps a board-space rectangle onto the canvas.
func (l Layout) ApplyRect(r geom.Rect) geom.Rect {
	return geom.Rect{Min: l.Apply(r.Min), Max: l.Apply(r.Max)}
}
