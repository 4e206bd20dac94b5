package view

import (
	"math"
	"testing"

	"github.com/madeinoz67/partshub-sub000/pkg/footprint"
)

func TestZoomRoundTrip(t *testing.T) {
	s := DefaultViewState()
	for i := 0; i < 5; i++ {
		s = s.ZoomIn()
	}
	if want := math.Pow(1.2, 5); math.Abs(s.Zoom-want) > 1e-9 {
		t.Errorf("after five zoom-ins Zoom = %v, want %v", s.Zoom, want)
	}
	for i := 0; i < 5; i++ {
		s = s.ZoomOut()
	}
	if math.Abs(s.Zoom-1.0) > 1e-9 {
		t.Errorf("after round trip Zoom = %v, want 1.0", s.Zoom)
	}
}

func TestZoomInClamped(t *testing.T) {
	s := DefaultViewState().ClampZoom(2.8)
	s = s.ZoomIn()
	if s.Zoom != ZoomMax {
		t.Errorf("Zoom = %v, want clamped %v", s.Zoom, ZoomMax)
	}
	if s = s.ZoomIn(); s.Zoom != ZoomMax {
		t.Errorf("Zoom moved past ceiling: %v", s.Zoom)
	}
}

func TestZoomOutClamped(t *testing.T) {
	s := DefaultViewState().ClampZoom(0.55)
	s = s.ZoomOut()
	if s.Zoom != ZoomMin {
		t.Errorf("Zoom = %v, want clamped %v", s.Zoom, ZoomMin)
	}
	if s = s.ZoomOut(); s.Zoom != ZoomMin {
		t.Errorf("Zoom moved past floor: %v", s.Zoom)
	}
}

func TestResetZoom(t *testing.T) {
	s := DefaultViewState().ZoomIn().ZoomIn().ResetZoom()
	if s.Zoom != 1.0 {
		t.Errorf("Zoom = %v, want 1.0", s.Zoom)
	}
}

func TestClampZoom(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{10, 3.0},
		{0.1, 0.5},
		{2, 2},
		{math.NaN(), 1.0},
	}
	for _, tt := range tests {
		if got := DefaultViewState().ClampZoom(tt.in).Zoom; got != tt.want {
			t.Errorf("ClampZoom(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestToggles(t *testing.T) {
	s := DefaultViewState()
	if s.Mode != footprint.ViewTop || s.ShowDimensions || !s.ShowPadNumbers {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	s = s.ToggleMode()
	if s.Mode != footprint.ViewBottom {
		t.Errorf("Mode = %v, want bottom", s.Mode)
	}
	s = s.ToggleDimensions()
	if !s.ShowDimensions {
		t.Error("ShowDimensions not toggled on")
	}
	s = s.TogglePadNumbers()
	if s.ShowPadNumbers {
		t.Error("ShowPadNumbers not toggled off")
	}
}

func TestTransitionsDoNotMutate(t *testing.T) {
	s := DefaultViewState()
	_ = s.ZoomIn()
	_ = s.ToggleMode()
	if s.Zoom != 1.0 || s.Mode != footprint.ViewTop {
		t.Errorf("original state mutated: %+v", s)
	}
}
