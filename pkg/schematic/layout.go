package schematic

import (
	"math"

	"github.com/madeinoz67/partshub-sub000/pkg/geom"
	"github.com/madeinoz67/partshub-sub000/pkg/part"
)

// Layout constants. The body grows with pin count between fixed bounds;
// the canvas adds room for stubs and labels around it.
const (
	PinSpacing = 25.0

	minBodyWidth  = 180.0
	maxBodyWidth  = 250.0
	minBodyHeight = 120.0
	heightReserve = 40.0

	canvasPadding = 60.0
	labelMarginW  = 100.0
	labelMarginH  = 80.0

	pinRowOffset = 30.0
	edgeInset    = 30.0
)

// PlacedPin is a classified pin with its attachment point on the body
// edge. The renderer draws the stub outward from Attach.
type PlacedPin struct {
	Pin    part.Pin
	Side   geom.Side
	Attach geom.Point
}

// Layout is the computed geometry for one symbol diagram.
type Layout struct {
	Canvas geom.Size
	Body   geom.Rect
	Groups PinGroups
	Pins   []PlacedPin
}

// ComputeLayout derives the symbol geometry from a record. The result
// depends only on the record contents, so repeated calls agree exactly.
func ComputeLayout(rec *part.SymbolRecord) Layout {
	groups := Classify(rec.Pins)
	n := float64(len(rec.Pins))

	bodyW := geom.Clamp(n*8, minBodyWidth, maxBodyWidth)
	rows := math.Ceil(n / 2)
	bodyH := math.Max(minBodyHeight, rows*PinSpacing+heightReserve)

	canvas := geom.Size{
		Width:  bodyW + 2*canvasPadding + labelMarginW,
		Height: bodyH + 2*canvasPadding + labelMarginH,
	}
	bodyMin := geom.Point{
		X: (canvas.Width - bodyW) / 2,
		Y: (canvas.Height - bodyH) / 2,
	}
	body := geom.Rect{
		Min: bodyMin,
		Max: geom.Point{X: bodyMin.X + bodyW, Y: bodyMin.Y + bodyH},
	}

	lay := Layout{Canvas: canvas, Body: body, Groups: groups}
	for _, side := range geom.Sides {
		lay.placeSide(side, groups.Side(side))
	}
	return lay
}

// placeSide assigns attachment points along one body edge. Left and
// right pins stack downward one spacing slot apart; top and bottom pins
// spread evenly across the inset edge width, with a lone pin centered.
func (l *Layout) placeSide(side geom.Side, pins []part.Pin) {
	for i, pin := range pins {
		var attach geom.Point
		switch side {
		case geom.SideLeft:
			attach = geom.Point{
				X: l.Body.Min.X,
				Y: l.Body.Min.Y + pinRowOffset + float64(i)*PinSpacing,
			}
		case geom.SideRight:
			attach = geom.Point{
				X: l.Body.Max.X,
				Y: l.Body.Min.Y + pinRowOffset + float64(i)*PinSpacing,
			}
		case geom.SideTop:
			attach = geom.Point{X: l.spreadX(i, len(pins)), Y: l.Body.Min.Y}
		case geom.SideBottom:
			attach = geom.Point{X: l.spreadX(i, len(pins)), Y: l.Body.Max.Y}
		}
		l.Pins = append(l.Pins, PlacedPin{Pin: pin, Side: side, Attach: attach})
	}
}

// spreadX distributes index i of count pins across the body width minus
// the edge insets. The divisor is guarded so a single pin cannot divide
// by zero; that pin lands on the body center instead.
func (l *Layout) spreadX(i, count int) float64 {
	if count == 1 {
		return l.Body.Center().X
	}
	span := l.Body.Width() - 2*edgeInset
	step := span / math.Max(1, float64(count-1))
	return l.Body.Min.X + edgeInset + float64(i)*step
}
