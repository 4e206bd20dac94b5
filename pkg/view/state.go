// Package view drives diagram generation for a single viewer instance:
// it owns the presentation state, fetches records from a source, and
// arbitrates concurrent loads so the newest identifier always wins.
package view

import (
	"math"

	"github.com/madeinoz67/partshub-sub000/pkg/footprint"
)

// Zoom bounds and step factor.
const (
	ZoomMin  = 0.5
	ZoomMax  = 3.0
	zoomStep = 1.2
)

// ViewState is the immutable presentation state of one diagram viewer.
// Transitions return a new value rather than mutating in place.
type ViewState struct {
	Zoom           float64
	Mode           footprint.ViewMode
	ShowDimensions bool
	ShowPadNumbers bool
}

// DefaultViewState returns the initial viewer state: unity zoom, top
// view, pad numbers on, measurement overlay off.
func DefaultViewState() ViewState {
	return ViewState{Zoom: 1.0, Mode: footprint.ViewTop, ShowPadNumbers: true}
}

// ZoomIn steps the zoom up by one factor, capped at ZoomMax.
func (s ViewState) ZoomIn() ViewState {
	s.Zoom = math.Min(s.Zoom*zoomStep, ZoomMax)
	return s
}

// ZoomOut steps the zoom down by one factor, floored at ZoomMin.
func (s ViewState) ZoomOut() ViewState {
	s.Zoom = math.Max(s.Zoom/zoomStep, ZoomMin)
	return s
}

// ResetZoom returns to unity zoom.
func (s ViewState) ResetZoom() ViewState {
	s.Zoom = 1.0
	return s
}

// ClampZoom forces an arbitrary zoom value into the legal range. Used
// when zoom arrives from the outside (query parameters, flags).
func (s ViewState) ClampZoom(zoom float64) ViewState {
	if math.IsNaN(zoom) {
		zoom = 1.0
	}
	s.Zoom = math.Min(math.Max(zoom, ZoomMin), ZoomMax)
	return s
}

// ToggleMode flips between the top and bottom board views.
func (s ViewState) ToggleMode() ViewState {
	if s.Mode == footprint.ViewTop {
		s.Mode = footprint.ViewBottom
	} else {
		s.Mode = footprint.ViewTop
	}
	return s
}

// ToggleDimensions flips the measurement overlay.
func (s ViewState) ToggleDimensions() ViewState {
	s.ShowDimensions = !s.ShowDimensions
	return s
}

// TogglePadNumbers flips the pad number labels.
func (s ViewState) TogglePadNumbers() ViewState {
	s.ShowPadNumbers = !s.ShowPadNumbers
	return s
}
