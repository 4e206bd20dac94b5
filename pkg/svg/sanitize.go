package svg

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitize strips active content from untrusted SVG markup so it can be
// inlined into a page. Script elements, event handler attributes, and
// URI-bearing attributes are removed; drawing elements and presentation
// attributes pass through. Element and attribute names come back
// lowercased by the HTML tokenizer, which the browser's parser adjusts
// again when the markup is injected inline.
func Sanitize(markup string) string {
	return sanitizer.Sanitize(markup)
}

var sanitizer = newSVGPolicy()

// safeStyleValue admits color, length, and font values but no quotes,
// backslashes, or scheme separators.
var safeStyleValue = regexp.MustCompile(`^[a-zA-Z0-9 #.,()%\-_]*$`)

func newSVGPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"svg", "g", "defs", "title", "desc", "symbol",
		"rect", "circle", "ellipse", "line", "polyline", "polygon",
		"path", "text", "tspan",
		"lineargradient", "radialgradient", "stop",
		"clippath", "pattern", "marker",
	)

	p.AllowAttrs(
		"id", "class",
		"x", "y", "x1", "y1", "x2", "y2", "cx", "cy", "r", "rx", "ry",
		"dx", "dy", "width", "height", "viewbox", "preserveaspectratio",
		"transform", "d", "points", "offset",
		"fill", "fill-opacity", "fill-rule",
		"stroke", "stroke-width", "stroke-dasharray", "stroke-linecap",
		"stroke-linejoin", "stroke-miterlimit", "stroke-opacity",
		"opacity", "stop-color", "stop-opacity",
		"font-size", "font-family", "font-weight", "font-style",
		"text-anchor", "dominant-baseline", "letter-spacing",
		"gradientunits", "gradienttransform", "patternunits",
		"clip-path", "clip-rule", "vector-effect",
		"xmlns", "version", "role", "aria-label",
	).Globally()

	p.AllowAttrs("style").Globally()
	p.AllowStyles(
		"fill", "stroke", "stroke-width", "stroke-dasharray",
		"stroke-linecap", "stroke-linejoin", "opacity", "fill-opacity",
		"stroke-opacity", "font-size", "font-family", "font-weight",
		"text-anchor", "dominant-baseline",
	).MatchingHandler(safeStyleProperty).Globally()

	return p
}

// safeStyleProperty rejects style values that could trigger resource
// loads or script evaluation.
func safeStyleProperty(value string) bool {
	lower := strings.ToLower(value)
	if strings.Contains(lower, "url(") || strings.Contains(lower, "expression") {
		return false
	}
	return safeStyleValue.MatchString(value)
}
