package schematic

import (
	"fmt"
	"strings"

	"github.com/madeinoz67/partshub-sub000/pkg/geom"
	"github.com/madeinoz67/partshub-sub000/pkg/part"
	"github.com/madeinoz67/partshub-sub000/pkg/svg"
)

const (
	stubLength  = 20.0
	dotRadius   = 3.5
	numberBoxW  = 16.0
	numberBoxH  = 12.0
	gridSpacing = 20.0
)

// RenderOptions controls which layers the symbol renderer emits
type RenderOptions struct {
	Theme        Theme
	ShowGrid     bool
	ShowGlyph    bool
	ShowPinCount bool
}

// DefaultRenderOptions returns options with every layer enabled
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Theme:        ThemeDark,
		ShowGrid:     true,
		ShowGlyph:    true,
		ShowPinCount: true,
	}
}

// Render builds the op list for a laid-out symbol. Zoom scales the
// presentation size of the outer element only; op coordinates stay in
// canvas units.
func Render(rec *part.SymbolRecord, lay Layout, opts RenderOptions, zoom float64) *svg.Diagram {
	if zoom <= 0 {
		zoom = 1
	}
	colors := SymbolTheme(opts.Theme)
	d := &svg.Diagram{
		Width:  lay.Canvas.Width * zoom,
		Height: lay.Canvas.Height * zoom,
		ViewW:  lay.Canvas.Width,
		ViewH:  lay.Canvas.Height,
	}

	// Render in order (back to front)

	// 1. Background and grid texture
	renderBackground(d, lay, opts, colors)

	// Records without pins get a placeholder, still labeled with the
	// part identity.
	if len(rec.Pins) == 0 {
		renderPlaceholder(d, lay, colors)
		renderNameplate(d, rec, lay, colors)
		return d
	}

	// 2. Body with drop shadow
	renderBody(d, lay, colors)

	// 3. Decorative glyph picked from the part name
	if opts.ShowGlyph {
		renderGlyph(d, rec.Part, lay, colors)
	}

	// 4. Reference designator and part name
	renderNameplate(d, rec, lay, colors)

	// 5. Pins (stub, terminal dot, number box, name)
	for _, placed := range lay.Pins {
		renderPin(d, placed, colors)
	}

	// 6. Pin count annotation
	if opts.ShowPinCount {
		renderPinCount(d, len(rec.Pins), lay, colors)
	}
	return d
}

// GenerateSVG lays out, renders, and encodes a symbol record in one
// step. Equal inputs yield byte-identical output.
func GenerateSVG(rec *part.SymbolRecord, opts RenderOptions, zoom float64) []byte {
	lay := ComputeLayout(rec)
	return svg.Encode(Render(rec, lay, opts, zoom))
}

func renderBackground(d *svg.Diagram, lay Layout, opts RenderOptions, colors *SymbolColors) {
	d.Add(svg.Rect{
		X: 0, Y: 0, W: lay.Canvas.Width, H: lay.Canvas.Height,
		Style: svg.Style{Class: "background", Fill: colors.Background},
	})
	if !opts.ShowGrid {
		return
	}
	grid := svg.Style{Class: "grid", Stroke: colors.Grid, StrokeWidth: 0.5}
	for x := gridSpacing; x < lay.Canvas.Width; x += gridSpacing {
		d.Add(svg.Line{X1: x, Y1: 0, X2: x, Y2: lay.Canvas.Height, Style: grid})
	}
	for y := gridSpacing; y < lay.Canvas.Height; y += gridSpacing {
		d.Add(svg.Line{X1: 0, Y1: y, X2: lay.Canvas.Width, Y2: y, Style: grid})
	}
}

func renderPlaceholder(d *svg.Diagram, lay Layout, colors *SymbolColors) {
	center := lay.Body.Center()
	d.Add(svg.Circle{
		CX: center.X, CY: center.Y, R: 42,
		Style: svg.Style{Class: "placeholder", Stroke: colors.BodyStroke, StrokeWidth: 2, Fill: "none", Dash: "8,6"},
	})
	d.Add(svg.Text{
		X: center.X, Y: center.Y + 70,
		Content: "No pin data", Size: 14, Anchor: "middle",
		Family: colors.FontFamily,
		Style:  svg.Style{Class: "placeholder-label", Fill: colors.Annotation},
	})
}

func renderBody(d *svg.Diagram, lay Layout, colors *SymbolColors) {
	d.Add(svg.Rect{
		X: lay.Body.Min.X + 4, Y: lay.Body.Min.Y + 4,
		W: lay.Body.Width(), H: lay.Body.Height(), RX: 6,
		Style: svg.Style{Class: "body-shadow", Fill: colors.Shadow, Opacity: 0.6},
	})
	d.Add(svg.Rect{
		X: lay.Body.Min.X, Y: lay.Body.Min.Y,
		W: lay.Body.Width(), H: lay.Body.Height(), RX: 6,
		Style: svg.Style{Class: "body", Fill: colors.BodyFill, Stroke: colors.BodyStroke, StrokeWidth: 2},
	})
}

// renderGlyph draws a decorative hint of the component family in the
// body center: a zig-zag for resistors, parallel plates for capacitors,
// a crossed circle for everything else.
func renderGlyph(d *svg.Diagram, partName string, lay Layout, colors *SymbolColors) {
	c := lay.Body.Center()
	name := strings.ToLower(partName)
	stroke := svg.Style{Stroke: colors.Glyph, StrokeWidth: 2, Fill: "none", LineCap: "round"}

	switch {
	case strings.Contains(name, "resistor"):
		var p svg.PathBuilder
		p.MoveTo(c.X-40, c.Y).LineTo(c.X-28, c.Y).
			LineTo(c.X-21, c.Y-10).LineTo(c.X-7, c.Y+10).
			LineTo(c.X+7, c.Y-10).LineTo(c.X+21, c.Y+10).
			LineTo(c.X+28, c.Y).LineTo(c.X+40, c.Y)
		st := stroke
		st.Class = "glyph-resistor"
		d.Add(svg.Path{D: p.String(), Style: st})

	case strings.Contains(name, "capacitor"):
		st := stroke
		st.Class = "glyph-capacitor"
		d.Add(
			svg.Line{X1: c.X - 40, Y1: c.Y, X2: c.X - 8, Y2: c.Y, Style: st},
			svg.Line{X1: c.X - 8, Y1: c.Y - 18, X2: c.X - 8, Y2: c.Y + 18, Style: st},
			svg.Line{X1: c.X + 8, Y1: c.Y - 18, X2: c.X + 8, Y2: c.Y + 18, Style: st},
			svg.Line{X1: c.X + 8, Y1: c.Y, X2: c.X + 40, Y2: c.Y, Style: st},
		)

	default:
		st := stroke
		st.Class = "glyph-ic"
		d.Add(
			svg.Circle{CX: c.X, CY: c.Y, R: 24, Style: st},
			svg.Line{X1: c.X - 17, Y1: c.Y - 17, X2: c.X + 17, Y2: c.Y + 17, Style: st},
			svg.Line{X1: c.X - 17, Y1: c.Y + 17, X2: c.X + 17, Y2: c.Y - 17, Style: st},
		)
	}
}

func renderNameplate(d *svg.Diagram, rec *part.SymbolRecord, lay Layout, colors *SymbolColors) {
	center := lay.Body.Center()
	if rec.Reference != "" {
		d.Add(svg.Text{
			X: center.X, Y: lay.Body.Min.Y - 32,
			Content: rec.Reference, Size: 16, Anchor: "middle", Weight: "bold",
			Family: colors.FontFamily,
			Style:  svg.Style{Class: "refdes", Fill: colors.RefDes},
		})
	}
	d.Add(svg.Text{
		X: center.X, Y: lay.Body.Max.Y + 42,
		Content: rec.Part, Size: 14, Anchor: "middle",
		Family: colors.FontFamily,
		Style:  svg.Style{Class: "part-name", Fill: colors.PartName},
	})
}

func renderPin(d *svg.Diagram, placed PlacedPin, colors *SymbolColors) {
	dir := sideDirection(placed.Side)
	attach := placed.Attach
	outer := attach.Add(dir.Scale(stubLength))
	boxCenter := attach.Add(dir.Scale(stubLength / 2))

	d.Add(svg.Line{
		X1: attach.X, Y1: attach.Y, X2: outer.X, Y2: outer.Y,
		Style: svg.Style{Class: "pin-stub", Stroke: colors.Stub, StrokeWidth: 2},
	})
	d.Add(svg.Circle{
		CX: outer.X, CY: outer.Y, R: dotRadius,
		Style: svg.Style{Class: "pin-dot", Fill: colors.Dot},
	})
	d.Add(svg.Rect{
		X: boxCenter.X - numberBoxW/2, Y: boxCenter.Y - numberBoxH/2,
		W: numberBoxW, H: numberBoxH, RX: 2,
		Style: svg.Style{Class: "pin-number-box", Fill: colors.NumberFill, Stroke: colors.NumberEdge, StrokeWidth: 1},
	})
	d.Add(svg.Text{
		X: boxCenter.X, Y: boxCenter.Y,
		Content: placed.Pin.Number, Size: 8, Anchor: "middle", Baseline: "central",
		Family: colors.FontFamily,
		Style:  svg.Style{Class: "pin-number", Fill: colors.NumberText},
	})

	if placed.Pin.Name == "" {
		return
	}
	name := svg.Text{
		Content: placed.Pin.Name, Size: 9,
		Family: colors.FontFamily,
		Style:  svg.Style{Class: "pin-name", Fill: colors.PinName},
	}
	// Name sits just inside the body, on the side the stub leaves from.
	switch placed.Side {
	case geom.SideLeft:
		name.X, name.Y = attach.X+8, attach.Y
		name.Anchor, name.Baseline = "start", "central"
	case geom.SideRight:
		name.X, name.Y = attach.X-8, attach.Y
		name.Anchor, name.Baseline = "end", "central"
	case geom.SideTop:
		name.X, name.Y = attach.X, attach.Y+16
		name.Anchor = "middle"
	case geom.SideBottom:
		name.X, name.Y = attach.X, attach.Y-10
		name.Anchor = "middle"
	}
	d.Add(name)
}

func renderPinCount(d *svg.Diagram, count int, lay Layout, colors *SymbolColors) {
	d.Add(svg.Text{
		X: 12, Y: lay.Canvas.Height - 12,
		Content: fmt.Sprintf("%d pins", count), Size: 10, Anchor: "start",
		Family: colors.FontFamily,
		Style:  svg.Style{Class: "pin-count", Fill: colors.Annotation},
	})
}

func sideDirection(side geom.Side) geom.Point {
	switch side {
	case geom.SideLeft:
		return geom.Point{X: -1, Y: 0}
	case geom.SideRight:
		return geom.Point{X: 1, Y: 0}
	case geom.SideTop:
		return geom.Point{X: 0, Y: -1}
	default:
		return geom.Point{X: 0, Y: 1}
	}
}
