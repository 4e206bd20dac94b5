package footprint

import (
	"fmt"
	"math"

	"github.com/madeinoz67/partshub-sub000/pkg/geom"
	"github.com/madeinoz67/partshub-sub000/pkg/part"
	"github.com/madeinoz67/partshub-sub000/pkg/svg"
)

// ViewMode selects which board side the footprint is drawn from.
type ViewMode int

const (
	ViewTop ViewMode = iota
	ViewBottom
)

func (m ViewMode) String() string {
	if m == ViewBottom {
		return "bottom"
	}
	return "top"
}

// ParseViewMode maps a query or flag value to a view mode. Anything
// that is not "bottom" means top.
func ParseViewMode(s string) ViewMode {
	if s == "bottom" {
		return ViewBottom
	}
	return ViewTop
}

// RenderOptions controls the optional layers of the footprint renderer
type RenderOptions struct {
	Theme          Theme
	Mode           ViewMode
	ShowDimensions bool
	ShowPadNumbers bool
}

// DefaultRenderOptions returns the viewer defaults: top view, pad
// numbers on, measurement overlay off.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Theme: ThemeDark, Mode: ViewTop, ShowPadNumbers: true}
}

const padMetalGradient = "pad-metal"

// Render builds the op list for a laid-out footprint. Zoom scales the
// presentation size of the outer element only.
func Render(rec *part.FootprintRecord, lay Layout, opts RenderOptions, zoom float64) *svg.Diagram {
	if zoom <= 0 {
		zoom = 1
	}
	colors := FootprintTheme(opts.Theme)
	d := &svg.Diagram{
		Width:  ViewWidth * zoom,
		Height: ViewHeight * zoom,
		ViewW:  ViewWidth,
		ViewH:  ViewHeight,
	}

	// Render in order (back to front)

	// 1. Board surface and texture
	renderBoard(d, colors)

	// Records without pads get a placeholder and nothing else.
	if lay.Empty {
		renderPlaceholder(d, colors)
		return d
	}

	d.Gradients = append(d.Gradients, svg.Gradient{
		ID: padMetalGradient, X1: 0, Y1: 0, X2: 0, Y2: 100,
		Stops: []svg.Stop{
			{Offset: 0, Color: colors.PadBright, Opacity: 1},
			{Offset: 100, Color: colors.PadDark, Opacity: 1},
		},
	})

	// 2. Millimeter measurement grid
	if opts.ShowDimensions {
		renderGrid(d, lay, colors)
	}

	// 3. Body outline, corner ticks, pin-1 marker
	renderBody(d, lay, opts.Mode, colors)

	// 4. Pads with drill holes
	for _, pad := range rec.Pads {
		renderPad(d, lay, pad, colors)
	}

	// 5. Pad number labels
	if opts.ShowPadNumbers {
		for _, pad := range rec.Pads {
			renderPadNumber(d, lay, pad, colors)
		}
	}

	// 6. Overall dimension annotations
	if opts.ShowDimensions {
		renderDimensions(d, lay, colors)
	}

	// 7. Fixed 5 mm scale reference
	renderScaleBar(d, lay, colors)
	return d
}

// GenerateSVG lays out, renders, and encodes a footprint record in one
// step. Equal inputs yield byte-identical output.
func GenerateSVG(rec *part.FootprintRecord, opts RenderOptions, zoom float64) []byte {
	lay := ComputeLayout(rec)
	return svg.Encode(Render(rec, lay, opts, zoom))
}

func renderBoard(d *svg.Diagram, colors *FootprintColors) {
	d.Add(svg.Rect{
		X: 0, Y: 0, W: ViewWidth, H: ViewHeight,
		Style: svg.Style{Class: "board", Fill: colors.Board},
	})
	texture := svg.Style{Class: "board-texture", Stroke: colors.Texture, StrokeWidth: 1}
	for y := 25.0; y < ViewHeight; y += 25 {
		d.Add(svg.Line{X1: 0, Y1: y, X2: ViewWidth, Y2: y, Style: texture})
	}
}

func renderPlaceholder(d *svg.Diagram, colors *FootprintColors) {
	d.Add(svg.Circle{
		CX: ViewWidth / 2, CY: ViewHeight / 2, R: 42,
		Style: svg.Style{Class: "placeholder", Stroke: colors.Silk, StrokeWidth: 2, Fill: "none", Dash: "8,6"},
	})
	d.Add(svg.Text{
		X: ViewWidth / 2, Y: ViewHeight/2 + 70,
		Content: "No pad data", Size: 14, Anchor: "middle",
		Family: colors.FontFamily,
		Style:  svg.Style{Class: "placeholder-label", Fill: colors.Annotation},
	})
}

// renderGrid draws millimeter rules across the content region, heavier
// every 5 mm. Lines sit on integer board coordinates so they read as a
// true measurement grid regardless of scale.
func renderGrid(d *svg.Diagram, lay Layout, colors *FootprintColors) {
	region := lay.Body.Outset(contentMargin / lay.Scale)
	minor := svg.Style{Class: "grid-minor", Stroke: colors.GridMinor, StrokeWidth: 0.5}
	major := svg.Style{Class: "grid-major", Stroke: colors.GridMajor, StrokeWidth: 1}

	top := lay.Apply(region.Min).Y
	bottom := lay.Apply(region.Max).Y
	for x := int(math.Ceil(region.Min.X)); float64(x) <= region.Max.X; x++ {
		cx := lay.Apply(geom.Point{X: float64(x)}).X
		style := minor
		if x%5 == 0 {
			style = major
		}
		d.Add(svg.Line{X1: cx, Y1: top, X2: cx, Y2: bottom, Style: style})
	}
	left := lay.Apply(region.Min).X
	right := lay.Apply(region.Max).X
	for y := int(math.Ceil(region.Min.Y)); float64(y) <= region.Max.Y; y++ {
		cy := lay.Apply(geom.Point{Y: float64(y)}).Y
		style := minor
		if y%5 == 0 {
			style = major
		}
		d.Add(svg.Line{X1: left, Y1: cy, X2: right, Y2: cy, Style: style})
	}
}

func renderBody(d *svg.Diagram, lay Layout, mode ViewMode, colors *FootprintColors) {
	body := lay.ApplyRect(lay.Body)

	outline := svg.Style{Class: "body-outline", Stroke: colors.Silk, StrokeWidth: 1.5, Fill: "none"}
	if mode == ViewBottom {
		outline.Dash = "6,4"
	}
	d.Add(svg.Rect{X: body.Min.X, Y: body.Min.Y, W: body.Width(), H: body.Height(), Style: outline})

	const tick = 9.0
	tickStyle := svg.Style{Class: "corner-tick", Stroke: colors.Silk, StrokeWidth: 2}
	corners := []struct{ x, y, dx, dy float64 }{
		{body.Min.X, body.Min.Y, 1, 1},
		{body.Max.X, body.Min.Y, -1, 1},
		{body.Min.X, body.Max.Y, 1, -1},
		{body.Max.X, body.Max.Y, -1, -1},
	}
	for _, c := range corners {
		d.Add(
			svg.Line{X1: c.x, Y1: c.y, X2: c.x + c.dx*tick, Y2: c.y, Style: tickStyle},
			svg.Line{X1: c.x, Y1: c.y, X2: c.x, Y2: c.y + c.dy*tick, Style: tickStyle},
		)
	}

	// Pin-1 sits by the top-left corner: filled from the top, hollow
	// when seen from the bottom.
	marker := svg.Circle{CX: body.Min.X + 14, CY: body.Min.Y + 14, R: 5}
	if mode == ViewBottom {
		marker.Style = svg.Style{Class: "pin1-marker", Stroke: colors.Pin1, StrokeWidth: 1.5, Fill: "none"}
	} else {
		marker.Style = svg.Style{Class: "pin1-marker", Fill: colors.Pin1}
	}
	d.Add(marker)
}

func renderPad(d *svg.Diagram, lay Layout, pad part.Pad, colors *FootprintColors) {
	center := lay.Apply(pad.Position)
	w := lay.Length(pad.Size.Width)
	h := lay.Length(pad.Size.Height)
	metal := "url(#" + padMetalGradient + ")"

	switch pad.Shape {
	case part.ShapeCircle, part.ShapeOval:
		d.Add(svg.Ellipse{
			CX: center.X, CY: center.Y, RX: w / 2, RY: h / 2,
			Style: svg.Style{Class: "pad-round", Fill: metal, Stroke: colors.PadEdge, StrokeWidth: 1},
		})
		d.Add(svg.Ellipse{
			CX: center.X - w*0.08, CY: center.Y - h*0.16, RX: w * 0.26, RY: h * 0.16,
			Style: svg.Style{Class: "pad-shine", Fill: colors.Shine, FillOpacity: 0.35},
		})
	default:
		rx := 0.18 * math.Min(w, h)
		d.Add(svg.Rect{
			X: center.X - w/2, Y: center.Y - h/2, W: w, H: h, RX: rx,
			Style: svg.Style{Class: "pad-rect", Fill: metal, Stroke: colors.PadEdge, StrokeWidth: 1},
		})
		d.Add(svg.Rect{
			X: center.X - w*0.38, Y: center.Y - h*0.40, W: w * 0.76, H: h * 0.30, RX: rx * 0.8,
			Style: svg.Style{Class: "pad-shine", Fill: colors.Shine, FillOpacity: 0.35},
		})
	}

	if pad.HasDrill() {
		r := lay.Length(pad.Drill) / 2
		d.Add(svg.Circle{
			CX: center.X, CY: center.Y, R: r * 1.35,
			Style: svg.Style{Class: "drill-shadow", Fill: colors.DrillShadow},
		})
		d.Add(svg.Circle{
			CX: center.X, CY: center.Y, R: r,
			Style: svg.Style{Class: "drill-bore", Fill: colors.DrillBore},
		})
		d.Add(svg.Circle{
			CX: center.X - r*0.3, CY: center.Y - r*0.3, R: r * 0.22,
			Style: svg.Style{Class: "drill-highlight", Fill: colors.DrillHighlight, FillOpacity: 0.6},
		})
	}
}

func renderPadNumber(d *svg.Diagram, lay Layout, pad part.Pad, colors *FootprintColors) {
	center := lay.Apply(pad.Position)
	d.Add(svg.Circle{
		CX: center.X, CY: center.Y, R: 8,
		Style: svg.Style{Class: "pad-number-disc", Fill: colors.NumberFill, Stroke: colors.NumberEdge, StrokeWidth: 1, Opacity: 0.85},
	})
	d.Add(svg.Text{
		X: center.X, Y: center.Y,
		Content: pad.Number, Size: 9, Anchor: "middle", Baseline: "central",
		Family: colors.FontFamily,
		Style:  svg.Style{Class: "pad-number", Fill: colors.NumberText},
	})
}

func renderDimensions(d *svg.Diagram, lay Layout, colors *FootprintColors) {
	body := lay.ApplyRect(lay.Body)
	line := svg.Style{Class: "dim-line", Stroke: colors.Dimension, StrokeWidth: 1}
	tick := svg.Style{Class: "dim-tick", Stroke: colors.Dimension, StrokeWidth: 1}

	// Width leader under the body
	y := body.Max.Y + 18
	d.Add(
		svg.Line{X1: body.Min.X, Y1: y, X2: body.Max.X, Y2: y, Style: line},
		svg.Line{X1: body.Min.X, Y1: y - 5, X2: body.Min.X, Y2: y + 5, Style: tick},
		svg.Line{X1: body.Max.X, Y1: y - 5, X2: body.Max.X, Y2: y + 5, Style: tick},
	)
	d.Add(svg.Text{
		X: body.Center().X, Y: y + 15,
		Content: fmt.Sprintf("%.2f mm", lay.Body.Width()), Size: 11, Anchor: "middle",
		Family: colors.FontFamily,
		Style:  svg.Style{Class: "dim-label", Fill: colors.Dimension},
	})

	// Height leader beside the body, label rotated to read upward
	x := body.Max.X + 18
	d.Add(
		svg.Line{X1: x, Y1: body.Min.Y, X2: x, Y2: body.Max.Y, Style: line},
		svg.Line{X1: x - 5, Y1: body.Min.Y, X2: x + 5, Y2: body.Min.Y, Style: tick},
		svg.Line{X1: x - 5, Y1: body.Max.Y, X2: x + 5, Y2: body.Max.Y, Style: tick},
	)
	midY := body.Center().Y
	d.Add(svg.Group{
		Transform: fmt.Sprintf("rotate(-90 %.2f %.2f)", x+15, midY),
		Ops: []svg.Op{svg.Text{
			X: x + 15, Y: midY,
			Content: fmt.Sprintf("%.2f mm", lay.Body.Height()), Size: 11, Anchor: "middle",
			Family: colors.FontFamily,
			Style:  svg.Style{Class: "dim-label", Fill: colors.Dimension},
		}},
	})
}

func renderScaleBar(d *svg.Diagram, lay Layout, colors *FootprintColors) {
	length := lay.Length(5)
	x0, y0 := 20.0, ViewHeight-20
	bar := svg.Style{Class: "scale-bar", Stroke: colors.ScaleBar, StrokeWidth: 2}
	d.Add(
		svg.Line{X1: x0, Y1: y0, X2: x0 + length, Y2: y0, Style: bar},
		svg.Line{X1: x0, Y1: y0 - 4, X2: x0, Y2: y0 + 4, Style: bar},
		svg.Line{X1: x0 + length, Y1: y0 - 4, X2: x0 + length, Y2: y0 + 4, Style: bar},
	)
	d.Add(svg.Text{
		X: x0 + length/2, Y: y0 - 8,
		Content: "5 mm", Size: 10, Anchor: "middle",
		Family: colors.FontFamily,
		Style:  svg.Style{Class: "scale-label", Fill: colors.Annotation},
	})
}
