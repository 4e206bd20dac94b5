// Package geom provides the 2D value types shared by the symbol and
// footprint layout engines: points, sizes, rectangles, and the side
// enum used to place pins around a symbol body.
package geom

// Point represents a 2D coordinate in diagram units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the sum of two points.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Scale returns the point scaled by a factor.
func (p Point) Scale(factor float64) Point {
	return Point{X: p.X * factor, Y: p.Y * factor}
}

// Size represents width/height dimensions.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Rect represents a rectangular region as min/max corners.
type Rect struct {
	Min Point // Top-left corner
	Max Point // Bottom-right corner
}

// NewRect returns an empty rectangle ready for Expand calls.
// The sentinel corners make the first Expand define both corners.
func NewRect() Rect {
	return Rect{
		Min: Point{X: 1e9, Y: 1e9},
		Max: Point{X: -1e9, Y: -1e9},
	}
}

// RectAround returns the rectangle covering center ± half of size.
func RectAround(center Point, size Size) Rect {
	hw := size.Width / 2
	hh := size.Height / 2
	return Rect{
		Min: Point{X: center.X - hw, Y: center.Y - hh},
		Max: Point{X: center.X + hw, Y: center.Y + hh},
	}
}

// IsEmpty reports whether the rectangle contains no area.
func (r Rect) IsEmpty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

// Expand grows the rectangle to include a point.
func (r *Rect) Expand(p Point) {
	if p.X < r.Min.X {
		r.Min.X = p.X
	}
	if p.Y < r.Min.Y {
		r.Min.Y = p.Y
	}
	if p.X > r.Max.X {
		r.Max.X = p.X
	}
	if p.Y > r.Max.Y {
		r.Max.Y = p.Y
	}
}

// ExpandRect grows the rectangle to include another rectangle.
func (r *Rect) ExpandRect(other Rect) {
	if !other.IsEmpty() {
		r.Expand(other.Min)
		r.Expand(other.Max)
	}
}

// Contains reports whether a point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{
		X: (r.Min.X + r.Max.X) / 2,
		Y: (r.Min.Y + r.Max.Y) / 2,
	}
}

// Outset returns a copy grown by the given amount on every side.
func (r Rect) Outset(amount float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X - amount, Y: r.Min.Y - amount},
		Max: Point{X: r.Max.X + amount, Y: r.Max.Y + amount},
	}
}

// Side identifies one edge of a symbol body. Pins are bucketed onto
// sides during classification and stacked along them during layout.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
)

// Sides lists all sides in classifier bucket order.
var Sides = [4]Side{SideTop, SideBottom, SideLeft, SideRight}

// String returns the lowercase side name.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Horizontal reports whether pins on this side run along the top or
// bottom edge (spread horizontally rather than stacked vertically).
func (s Side) Horizontal() bool {
	return s == SideTop || s == SideBottom
}

// Clamp limits v to the inclusive range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
