package svg

import (
	"strconv"
	"strings"
)

// PathBuilder accumulates SVG path data using absolute commands.
type PathBuilder struct {
	b strings.Builder
}

// MoveTo starts a new subpath at (x, y).
func (p *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	p.cmd('M', x, y)
	return p
}

// LineTo draws a segment to (x, y).
func (p *PathBuilder) LineTo(x, y float64) *PathBuilder {
	p.cmd('L', x, y)
	return p
}

// Close closes the current subpath.
func (p *PathBuilder) Close() *PathBuilder {
	if p.b.Len() > 0 {
		p.b.WriteByte(' ')
	}
	p.b.WriteByte('Z')
	return p
}

// String returns the accumulated path data.
func (p *PathBuilder) String() string {
	return p.b.String()
}

func (p *PathBuilder) cmd(c byte, x, y float64) {
	if p.b.Len() > 0 {
		p.b.WriteByte(' ')
	}
	p.b.WriteByte(c)
	p.b.WriteByte(' ')
	p.b.WriteString(fmtCoord(x))
	p.b.WriteByte(' ')
	p.b.WriteString(fmtCoord(y))
}

func fmtCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
