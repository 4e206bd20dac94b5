package svg

import (
	"bytes"
	"strings"
	"testing"
)

func testDiagram() *Diagram {
	d := &Diagram{Width: 490, Height: 420, ViewW: 490, ViewH: 420}
	d.Gradients = []Gradient{{
		ID: "pad-metal", X1: 0, Y1: 0, X2: 0, Y2: 100,
		Stops: []Stop{
			{Offset: 0, Color: "#e8e8e8", Opacity: 1},
			{Offset: 100, Color: "#9a9a9a", Opacity: 1},
		},
	}}
	d.Add(
		Rect{X: 0, Y: 0, W: 490, H: 420, Style: Style{Class: "background", Fill: "#1a1a2e"}},
		Group{Transform: "translate(45 60) scale(2.5)", Ops: []Op{
			Circle{CX: 2, CY: 2, R: 0.5, Style: Style{Class: "drill-bore", Fill: "#0d0d14"}},
			Line{X1: 0, Y1: 0, X2: 4, Y2: 0, Style: Style{Class: "grid-minor", Stroke: "#2c2c44", StrokeWidth: 0.05}},
		}},
		Text{X: 245, Y: 30, Content: "NE555", Size: 16, Anchor: "middle", Weight: "bold",
			Family: "monospace", Style: Style{Class: "part-name", Fill: "#e0e0e0"}},
	)
	return d
}

func TestEncodeDeterministic(t *testing.T) {
	d := testDiagram()
	first := Encode(d)
	second := Encode(d)
	if !bytes.Equal(first, second) {
		t.Error("Encode() produced different bytes for the same diagram")
	}
}

func TestEncodeStructure(t *testing.T) {
	out := string(Encode(testDiagram()))

	for _, want := range []string{
		`viewBox="0 0 490 420"`,
		`class="background"`,
		`class="drill-bore"`,
		`<linearGradient id="pad-metal"`,
		`transform="translate(45 60) scale(2.5)"`,
		`text-anchor:middle`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestEncodeEscapesText(t *testing.T) {
	d := &Diagram{Width: 10, Height: 10, ViewW: 10, ViewH: 10}
	d.Add(Text{X: 0, Y: 0, Content: `<script>alert(1)</script>`, Size: 10})
	out := string(Encode(d))

	if strings.Contains(out, "<script") {
		t.Error("hostile text content emitted unescaped")
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Error("hostile text content not entity-escaped")
	}
}

func TestByClassDescendsGroups(t *testing.T) {
	d := testDiagram()
	if got := d.CountClass("drill-bore"); got != 1 {
		t.Errorf("CountClass(drill-bore) = %d, want 1", got)
	}
	if got := d.CountClass("grid-minor"); got != 1 {
		t.Errorf("CountClass(grid-minor) = %d, want 1", got)
	}
	if got := d.CountClass("missing"); got != 0 {
		t.Errorf("CountClass(missing) = %d, want 0", got)
	}
}

func TestPathBuilder(t *testing.T) {
	var p PathBuilder
	got := p.MoveTo(0, 7.5).LineTo(10, 7.5).LineTo(15, 0).Close().String()
	want := "M 0 7.5 L 10 7.5 L 15 0 Z"
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

func TestSanitizeStripsScript(t *testing.T) {
	hostile := `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10">` +
		`<script>alert(1)</script>` +
		`<rect x="0" y="0" width="5" height="5" fill="#ff0000" onclick="alert(2)"/>` +
		`<a href="javascript:alert(3)"><circle cx="1" cy="1" r="1"/></a>` +
		`</svg>`
	out := Sanitize(hostile)

	if strings.Contains(out, "<script") || strings.Contains(out, "alert(1)") {
		t.Errorf("script survived sanitization: %q", out)
	}
	if strings.Contains(out, "onclick") {
		t.Errorf("event handler survived sanitization: %q", out)
	}
	if strings.Contains(out, "javascript:") {
		t.Errorf("javascript URI survived sanitization: %q", out)
	}
	if !strings.Contains(out, "<rect") {
		t.Errorf("benign rect removed by sanitization: %q", out)
	}
	if !strings.Contains(out, "<circle") {
		t.Errorf("benign circle removed by sanitization: %q", out)
	}
}

func TestSanitizeKeepsPresentation(t *testing.T) {
	in := `<svg viewBox="0 0 10 10"><rect x="1" y="1" width="4" height="4" ` +
		`fill="#00ff00" stroke-width="0.5" style="opacity:0.8"/></svg>`
	out := Sanitize(in)

	for _, want := range []string{"fill=", "stroke-width=", "opacity", "0.8"} {
		if !strings.Contains(out, want) {
			t.Errorf("sanitized output missing %q: %q", want, out)
		}
	}
}

func TestSanitizeBlocksStyleURLs(t *testing.T) {
	in := `<svg><rect width="4" height="4" style="fill:url(http://evil.example/x)"/></svg>`
	out := Sanitize(in)
	if strings.Contains(out, "url(") {
		t.Errorf("style URL survived sanitization: %q", out)
	}
}
