// Package svg models a rendered diagram as an ordered list of drawing
// operations and serializes it to SVG markup. Keeping the op list as a
// plain data structure lets the layout and render packages stay free of
// markup concerns and lets tests assert on draw order and styling
// without parsing XML.
package svg

import "github.com/madeinoz67/partshub-sub000/pkg/geom"

// Style carries the presentation attributes shared by all ops. Class is
// emitted as a class attribute so individual primitives stay
// identifiable in the output. Zero values are omitted from the markup.
type Style struct {
	Class       string
	Fill        string
	Stroke      string
	StrokeWidth float64
	Dash        string
	LineCap     string
	Opacity     float64
	FillOpacity float64
}

func (s Style) class() string { return s.Class }

// Op is one drawing operation. Ops are emitted strictly in slice order,
// back to front.
type Op interface {
	class() string
}

// Rect draws an axis-aligned rectangle. RX > 0 rounds the corners.
type Rect struct {
	X, Y, W, H float64
	RX         float64
	Style
}

// Circle draws a circle centered at (CX, CY).
type Circle struct {
	CX, CY, R float64
	Style
}

// Ellipse draws an axis-aligned ellipse.
type Ellipse struct {
	CX, CY, RX, RY float64
	Style
}

// Line draws a straight segment.
type Line struct {
	X1, Y1, X2, Y2 float64
	Style
}

// Polyline draws an open polygonal chain through Points.
type Polyline struct {
	Points []geom.Point
	Style
}

// Path draws an arbitrary path from SVG path data.
type Path struct {
	D string
	Style
}

// Text draws a text run anchored at (X, Y). Content is escaped during
// encoding, so untrusted strings are safe to place here.
type Text struct {
	X, Y     float64
	Content  string
	Size     float64
	Anchor   string
	Baseline string
	Weight   string
	Family   string
	Style
}

// Group nests ops under a shared transform, typically the
// translate+scale that maps millimeter coordinates onto the canvas.
type Group struct {
	Transform string
	Ops       []Op
	Style
}

// Stop is one color stop of a gradient, with Offset in percent.
type Stop struct {
	Offset  uint8
	Color   string
	Opacity float64
}

// Gradient is a linear gradient definition. Coordinates are percentages
// of the bounding box of the shape referencing it.
type Gradient struct {
	ID             string
	X1, Y1, X2, Y2 uint8
	Stops          []Stop
}

// Diagram is a complete drawing. Width and Height are the presentation
// size of the outer svg element; ViewW and ViewH define the viewBox the
// ops are laid out in.
type Diagram struct {
	Width, Height float64
	ViewW, ViewH  float64
	Gradients     []Gradient
	Ops           []Op
}

// Add appends ops in draw order.
func (d *Diagram) Add(ops ...Op) {
	d.Ops = append(d.Ops, ops...)
}

// ByClass returns every op whose class matches name, descending into
// groups depth-first.
func (d *Diagram) ByClass(name string) []Op {
	var out []Op
	collectClass(d.Ops, name, &out)
	return out
}

// CountClass reports how many ops carry the class name.
func (d *Diagram) CountClass(name string) int {
	return len(d.ByClass(name))
}

func collectClass(ops []Op, name string, out *[]Op) {
	for _, op := range ops {
		if op.class() == name {
			*out = append(*out, op)
		}
		if g, ok := op.(Group); ok {
			collectClass(g.Ops, name, out)
		}
	}
}
