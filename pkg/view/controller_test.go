package view

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/madeinoz67/partshub-sub000/pkg/geom"
	"github.com/madeinoz67/partshub-sub000/pkg/part"
)

func symbolSource() *StaticSource {
	return &StaticSource{
		Symbols: map[string]*part.SymbolRecord{
			"NE555": {
				Part:      "NE555",
				Reference: "U1",
				Pins: []part.Pin{
					{Number: "1", Name: "GND", Electrical: part.PowerOut},
					{Number: "8", Name: "VCC", Electrical: part.PowerIn},
				},
			},
		},
	}
}

func footprintSource(precomputed string) *StaticSource {
	return &StaticSource{
		Footprints: map[string]*part.FootprintRecord{
			"SOIC": {
				Part: "SOIC-8",
				Pads: []part.Pad{
					{Number: "1", Shape: part.ShapeRect, Size: geom.Size{Width: 1.5, Height: 0.6}, Position: geom.Point{X: -2.7, Y: 0}},
					{Number: "2", Shape: part.ShapeRect, Size: geom.Size{Width: 1.5, Height: 0.6}, Position: geom.Point{X: 2.7, Y: 0}},
				},
				PrecomputedSVG: precomputed,
			},
		},
	}
}

func TestControllerStartsIdle(t *testing.T) {
	c := NewController(KindSymbol, symbolSource())
	snap := c.Current()
	if snap.Phase != PhaseIdle {
		t.Errorf("Phase = %v, want idle", snap.Phase)
	}
	if snap.State != DefaultViewState() {
		t.Errorf("State = %+v, want defaults", snap.State)
	}
}

func TestLoadRendersSymbol(t *testing.T) {
	c := NewController(KindSymbol, symbolSource())
	snap := c.Load(context.Background(), "NE555")

	if snap.Phase != PhaseRendered {
		t.Fatalf("Phase = %v, want rendered", snap.Phase)
	}
	if snap.ComponentID != "NE555" {
		t.Errorf("ComponentID = %q", snap.ComponentID)
	}
	out := string(snap.SVG)
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "NE555") {
		t.Errorf("markup missing expected content: %q", out[:min(120, len(out))])
	}
}

func TestLoadNotFound(t *testing.T) {
	c := NewController(KindSymbol, symbolSource())
	snap := c.Load(context.Background(), "UNKNOWN")

	if snap.Phase != PhaseNoData {
		t.Errorf("Phase = %v, want no-data", snap.Phase)
	}
	if snap.SVG != nil {
		t.Error("SVG should be empty for missing records")
	}
	if snap.ErrMessage != "" {
		t.Errorf("ErrMessage = %q, want empty", snap.ErrMessage)
	}
}

type failingSource struct{ err error }

func (s *failingSource) Symbol(context.Context, string) (*part.SymbolRecord, error) {
	return nil, s.err
}

func (s *failingSource) Footprint(context.Context, string) (*part.FootprintRecord, error) {
	return nil, s.err
}

func TestLoadFetchFailure(t *testing.T) {
	c := NewController(KindSymbol, &failingSource{err: errors.New("connection refused")})
	snap := c.Load(context.Background(), "NE555")

	if snap.Phase != PhaseError {
		t.Fatalf("Phase = %v, want error", snap.Phase)
	}
	if !strings.Contains(snap.ErrMessage, "connection refused") {
		t.Errorf("ErrMessage = %q", snap.ErrMessage)
	}
}

func TestViewUpdatesReRender(t *testing.T) {
	c := NewController(KindFootprint, footprintSource(""))
	first := c.Load(context.Background(), "SOIC")
	if first.Phase != PhaseRendered {
		t.Fatalf("Phase = %v, want rendered", first.Phase)
	}
	if strings.Contains(string(first.SVG), "dim-line") {
		t.Fatal("dimensions drawn before toggle")
	}

	withDims := c.ToggleDimensions()
	if withDims.Phase != PhaseRendered {
		t.Fatalf("Phase after toggle = %v, want rendered", withDims.Phase)
	}
	if !strings.Contains(string(withDims.SVG), "dim-line") {
		t.Error("dimension overlay missing after toggle")
	}
	if bytes.Equal(first.SVG, withDims.SVG) {
		t.Error("markup unchanged after view state change")
	}

	zoomed := c.ZoomIn()
	if bytes.Equal(withDims.SVG, zoomed.SVG) {
		t.Error("markup unchanged after zoom")
	}
	if zoomed.State.Zoom != 1.2 {
		t.Errorf("Zoom = %v, want 1.2", zoomed.State.Zoom)
	}
}

func TestViewUpdateBeforeLoadDoesNotRender(t *testing.T) {
	c := NewController(KindFootprint, footprintSource(""))
	snap := c.ZoomIn()
	if snap.Phase != PhaseIdle {
		t.Errorf("Phase = %v, want idle", snap.Phase)
	}
	if snap.SVG != nil {
		t.Error("no markup should exist before a load")
	}
	if snap.State.Zoom != 1.2 {
		t.Errorf("Zoom = %v, want 1.2 (state still advances)", snap.State.Zoom)
	}
}

func TestPrecomputedMarkupSanitized(t *testing.T) {
	hostile := `<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script>` +
		`<rect width="4" height="4" onload="alert(2)" fill="#fff"/></svg>`
	c := NewController(KindFootprint, footprintSource(hostile))
	snap := c.Load(context.Background(), "SOIC")

	if snap.Phase != PhaseRendered {
		t.Fatalf("Phase = %v, want rendered", snap.Phase)
	}
	out := string(snap.SVG)
	if strings.Contains(out, "<script") || strings.Contains(out, "onload") {
		t.Errorf("hostile markup survived: %q", out)
	}
	if !strings.Contains(out, "<rect") {
		t.Errorf("benign markup dropped: %q", out)
	}
}

type gatedSource struct {
	entered chan string
	release chan struct{}
	slow    map[string]bool
	symbols map[string]*part.SymbolRecord
}

func (s *gatedSource) Symbol(ctx context.Context, id string) (*part.SymbolRecord, error) {
	if s.slow[id] {
		s.entered <- id
		<-s.release
	}
	rec, ok := s.symbols[id]
	if !ok {
		return nil, ErrNotFound
	}
	return rec, nil
}

func (s *gatedSource) Footprint(ctx context.Context, id string) (*part.FootprintRecord, error) {
	return nil, ErrNotFound
}

func TestStaleLoadDiscarded(t *testing.T) {
	src := &gatedSource{
		entered: make(chan string, 1),
		release: make(chan struct{}),
		slow:    map[string]bool{"OLD": true},
		symbols: map[string]*part.SymbolRecord{
			"OLD": {Part: "OLD-PART"},
			"NEW": {Part: "NEW-PART"},
		},
	}
	c := NewController(KindSymbol, src)

	done := make(chan Snapshot, 1)
	go func() { done <- c.Load(context.Background(), "OLD") }()
	<-src.entered

	newSnap := c.Load(context.Background(), "NEW")
	if newSnap.Phase != PhaseRendered || newSnap.ComponentID != "NEW" {
		t.Fatalf("newer load = %v/%q, want rendered NEW", newSnap.Phase, newSnap.ComponentID)
	}

	close(src.release)
	oldSnap := <-done
	if oldSnap.ComponentID != "NEW" {
		t.Errorf("stale load returned %q, want current NEW", oldSnap.ComponentID)
	}

	cur := c.Current()
	if cur.Phase != PhaseRendered || cur.ComponentID != "NEW" {
		t.Errorf("final state = %v/%q, want rendered NEW", cur.Phase, cur.ComponentID)
	}
	if !strings.Contains(string(cur.SVG), "NEW-PART") {
		t.Error("final markup is not the newer record")
	}
}
