package svg

import (
	"bytes"
	"fmt"
	"strings"

	ajsvg "github.com/ajstarks/svgo/float"
)

// coordDecimals fixes the printed precision of every coordinate so that
// encoding the same diagram always yields identical bytes.
const coordDecimals = 2

// Encode serializes the diagram to SVG markup. The output is a pure
// function of the diagram: encoding the same value twice produces
// byte-identical results.
func Encode(d *Diagram) []byte {
	var buf bytes.Buffer
	canvas := ajsvg.New(&buf)
	canvas.Decimals = coordDecimals

	viewBox := fmt.Sprintf(`viewBox="0 0 %s %s"`, fmtCoord(d.ViewW), fmtCoord(d.ViewH))
	canvas.Start(d.Width, d.Height, viewBox)

	if len(d.Gradients) > 0 {
		canvas.Def()
		for _, g := range d.Gradients {
			stops := make([]ajsvg.Offcolor, len(g.Stops))
			for i, s := range g.Stops {
				stops[i] = ajsvg.Offcolor{Offset: s.Offset, Color: s.Color, Opacity: s.Opacity}
			}
			canvas.LinearGradient(g.ID, g.X1, g.Y1, g.X2, g.Y2, stops)
		}
		canvas.DefEnd()
	}

	encodeOps(canvas, d.Ops)
	canvas.End()
	return buf.Bytes()
}

func encodeOps(canvas *ajsvg.SVG, ops []Op) {
	for _, op := range ops {
		switch v := op.(type) {
		case Rect:
			if v.RX > 0 {
				canvas.Roundrect(v.X, v.Y, v.W, v.H, v.RX, v.RX, opAttrs(v.Style)...)
			} else {
				canvas.Rect(v.X, v.Y, v.W, v.H, opAttrs(v.Style)...)
			}
		case Circle:
			canvas.Circle(v.CX, v.CY, v.R, opAttrs(v.Style)...)
		case Ellipse:
			canvas.Ellipse(v.CX, v.CY, v.RX, v.RY, opAttrs(v.Style)...)
		case Line:
			canvas.Line(v.X1, v.Y1, v.X2, v.Y2, opAttrs(v.Style)...)
		case Polyline:
			xs := make([]float64, len(v.Points))
			ys := make([]float64, len(v.Points))
			for i, p := range v.Points {
				xs[i] = p.X
				ys[i] = p.Y
			}
			canvas.Polyline(xs, ys, opAttrs(v.Style)...)
		case Path:
			canvas.Path(v.D, opAttrs(v.Style)...)
		case Text:
			canvas.Text(v.X, v.Y, v.Content, textAttrs(v)...)
		case Group:
			attrs := opAttrs(v.Style)
			if v.Transform != "" {
				attrs = append([]string{fmt.Sprintf(`transform=%q`, v.Transform)}, attrs...)
			}
			canvas.Group(attrs...)
			encodeOps(canvas, v.Ops)
			canvas.Gend()
		}
	}
}

// opAttrs renders a Style as svgo attribute strings. Strings containing
// "=" pass through as raw attributes; the rest are folded into a single
// style attribute by svgo.
func opAttrs(st Style) []string {
	var attrs []string
	if st.Class != "" {
		attrs = append(attrs, fmt.Sprintf(`class=%q`, st.Class))
	}
	if s := styleDecl(st); s != "" {
		attrs = append(attrs, s)
	}
	return attrs
}

func textAttrs(t Text) []string {
	var decl []string
	if t.Size > 0 {
		decl = append(decl, fmt.Sprintf("font-size:%spx", fmtCoord(t.Size)))
	}
	if t.Family != "" {
		decl = append(decl, "font-family:"+t.Family)
	}
	if t.Weight != "" {
		decl = append(decl, "font-weight:"+t.Weight)
	}
	if t.Anchor != "" {
		decl = append(decl, "text-anchor:"+t.Anchor)
	}
	if t.Baseline != "" {
		decl = append(decl, "dominant-baseline:"+t.Baseline)
	}
	if s := styleDecl(t.Style); s != "" {
		decl = append(decl, s)
	}

	var attrs []string
	if t.Class != "" {
		attrs = append(attrs, fmt.Sprintf(`class=%q`, t.Class))
	}
	if len(decl) > 0 {
		attrs = append(attrs, strings.Join(decl, ";"))
	}
	return attrs
}

func styleDecl(st Style) string {
	var decl []string
	if st.Fill != "" {
		decl = append(decl, "fill:"+st.Fill)
	}
	if st.Stroke != "" {
		decl = append(decl, "stroke:"+st.Stroke)
	}
	if st.StrokeWidth > 0 {
		decl = append(decl, "stroke-width:"+fmtCoord(st.StrokeWidth))
	}
	if st.Dash != "" {
		decl = append(decl, "stroke-dasharray:"+st.Dash)
	}
	if st.LineCap != "" {
		decl = append(decl, "stroke-linecap:"+st.LineCap)
	}
	if st.Opacity > 0 {
		decl = append(decl, "opacity:"+fmtCoord(st.Opacity))
	}
	if st.FillOpacity > 0 {
		decl = append(decl, "fill-opacity:"+fmtCoord(st.FillOpacity))
	}
	return strings.Join(decl, ";")
}
