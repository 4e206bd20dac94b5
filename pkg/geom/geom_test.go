package geom

import "testing"

func TestRectExpand(t *testing.T) {
	r := NewRect()
	if !r.IsEmpty() {
		t.Fatal("new rect should be empty")
	}

	r.Expand(Point{X: 10, Y: 20})
	r.Expand(Point{X: -5, Y: 40})

	if r.Min.X != -5 || r.Min.Y != 20 {
		t.Errorf("Min = %+v, want {-5 20}", r.Min)
	}
	if r.Max.X != 10 || r.Max.Y != 40 {
		t.Errorf("Max = %+v, want {10 40}", r.Max)
	}
	if r.Width() != 15 {
		t.Errorf("Width() = %v, want 15", r.Width())
	}
	if r.Height() != 20 {
		t.Errorf("Height() = %v, want 20", r.Height())
	}
}

func TestRectExpandRectIgnoresEmpty(t *testing.T) {
	r := NewRect()
	r.Expand(Point{X: 1, Y: 1})

	r.ExpandRect(NewRect())
	if r.Min.X != 1 || r.Max.X != 1 {
		t.Errorf("empty rect changed bounds: %+v", r)
	}
}

func TestRectAround(t *testing.T) {
	r := RectAround(Point{X: 10, Y: 10}, Size{Width: 4, Height: 2})
	want := Rect{Min: Point{X: 8, Y: 9}, Max: Point{X: 12, Y: 11}}
	if r != want {
		t.Errorf("RectAround = %+v, want %+v", r, want)
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{Min: Point{X: 0, Y: 0}, Max: Point{X: 10, Y: 20}}
	c := r.Center()
	if c.X != 5 || c.Y != 10 {
		t.Errorf("Center() = %+v, want {5 10}", c)
	}
}

func TestRectOutset(t *testing.T) {
	r := Rect{Min: Point{X: 5, Y: 5}, Max: Point{X: 10, Y: 10}}
	o := r.Outset(2)
	if o.Min.X != 3 || o.Max.Y != 12 {
		t.Errorf("Outset(2) = %+v", o)
	}
}

func TestSideString(t *testing.T) {
	tests := []struct {
		side Side
		want string
	}{
		{SideLeft, "left"},
		{SideRight, "right"},
		{SideTop, "top"},
		{SideBottom, "bottom"},
		{Side(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.side.String(); got != tt.want {
			t.Errorf("Side(%d).String() = %q, want %q", tt.side, got, tt.want)
		}
	}
}

func TestSideHorizontal(t *testing.T) {
	if !SideTop.Horizontal() || !SideBottom.Horizontal() {
		t.Error("top/bottom should be horizontal")
	}
	if SideLeft.Horizontal() || SideRight.Horizontal() {
		t.Error("left/right should not be horizontal")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0.5, 0.5, 3.0, 0.5},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
