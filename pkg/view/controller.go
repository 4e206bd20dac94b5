package view

import (
	"context"
	"errors"
	"sync"

	"github.com/madeinoz67/partshub-sub000/pkg/footprint"
	"github.com/madeinoz67/partshub-sub000/pkg/part"
	"github.com/madeinoz67/partshub-sub000/pkg/schematic"
	"github.com/madeinoz67/partshub-sub000/pkg/svg"
)

// Phase is the lifecycle state of a controller.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseNoData
	PhaseError
	PhaseRendered
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseNoData:
		return "no-data"
	case PhaseError:
		return "error"
	case PhaseRendered:
		return "rendered"
	}
	return "unknown"
}

// DiagramKind selects which diagram a controller renders.
type DiagramKind int

const (
	KindSymbol DiagramKind = iota
	KindFootprint
)

// Snapshot is a copy of the controller state at one instant. SVG is a
// private copy the caller may keep.
type Snapshot struct {
	Phase       Phase
	ComponentID string
	State       ViewState
	SVG         []byte
	ErrMessage  string
}

// Controller owns one diagram viewer: the current record, its view
// state, and the rendered markup. Methods are safe for concurrent use.
// Concurrent loads are arbitrated by a monotonically increasing token
// compared when each fetch resolves, so the newest identifier wins
// regardless of response order.
type Controller struct {
	mu     sync.Mutex
	kind   DiagramKind
	source RecordSource

	phase  Phase
	id     string
	state  ViewState
	token  uint64
	cancel context.CancelFunc

	symbol    *part.SymbolRecord
	footprint *part.FootprintRecord
	svg       []byte
	errMsg    string
}

// NewController builds an idle controller over a record source.
func NewController(kind DiagramKind, source RecordSource) *Controller {
	return &Controller{kind: kind, source: source, state: DefaultViewState()}
}

// Load fetches the record for id and renders it. The call blocks for
// the fetch. If a newer Load starts before this one resolves, this
// result is discarded and the method returns the newer state. The
// previous fetch's context is cancelled as a courtesy, but correctness
// rests on the token comparison, not on cancellation.
func (c *Controller) Load(ctx context.Context, id string) Snapshot {
	c.mu.Lock()
	c.token++
	token := c.token
	c.id = id
	c.phase = PhaseLoading
	c.errMsg = ""
	if c.cancel != nil {
		c.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.mu.Unlock()

	Logger().Debug("loading record", "id", id, "token", token)

	var (
		sym *part.SymbolRecord
		fp  *part.FootprintRecord
		err error
	)
	switch c.kind {
	case KindSymbol:
		sym, err = c.source.Symbol(fetchCtx, id)
	case KindFootprint:
		fp, err = c.source.Footprint(fetchCtx, id)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.token {
		Logger().Warn("discarding stale fetch result", "id", id, "token", token, "current", c.token)
		return c.snapshotLocked()
	}

	switch {
	case errors.Is(err, ErrNotFound):
		c.phase = PhaseNoData
		c.symbol, c.footprint, c.svg = nil, nil, nil
	case err != nil:
		Logger().Warn("fetch failed", "id", id, "error", err)
		c.phase = PhaseError
		c.errMsg = err.Error()
		c.symbol, c.footprint, c.svg = nil, nil, nil
	default:
		c.symbol, c.footprint = sym, fp
		c.phase = PhaseRendered
		c.renderLocked()
	}
	return c.snapshotLocked()
}

// UpdateView applies a state transition and, when a record is on
// screen, re-runs the full render pipeline with the new state.
func (c *Controller) UpdateView(transition func(ViewState) ViewState) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = transition(c.state)
	if c.phase == PhaseRendered {
		c.renderLocked()
	}
	return c.snapshotLocked()
}

// ZoomIn steps the zoom up and re-renders.
func (c *Controller) ZoomIn() Snapshot { return c.UpdateView(ViewState.ZoomIn) }

// ZoomOut steps the zoom down and re-renders.
func (c *Controller) ZoomOut() Snapshot { return c.UpdateView(ViewState.ZoomOut) }

// ResetZoom returns to unity zoom and re-renders.
func (c *Controller) ResetZoom() Snapshot { return c.UpdateView(ViewState.ResetZoom) }

// ToggleMode flips the board side and re-renders.
func (c *Controller) ToggleMode() Snapshot { return c.UpdateView(ViewState.ToggleMode) }

// ToggleDimensions flips the measurement overlay and re-renders.
func (c *Controller) ToggleDimensions() Snapshot { return c.UpdateView(ViewState.ToggleDimensions) }

// TogglePadNumbers flips the pad labels and re-renders.
func (c *Controller) TogglePadNumbers() Snapshot { return c.UpdateView(ViewState.TogglePadNumbers) }

// Current returns a copy of the controller state.
func (c *Controller) Current() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// renderLocked regenerates the markup from the held record and view
// state. Footprint records carrying precomputed backend markup are
// sanitized and served as-is instead of being generated.
func (c *Controller) renderLocked() {
	switch c.kind {
	case KindSymbol:
		c.svg = schematic.GenerateSVG(c.symbol, schematic.DefaultRenderOptions(), c.state.Zoom)
	case KindFootprint:
		if c.footprint.PrecomputedSVG != "" {
			c.svg = []byte(svg.Sanitize(c.footprint.PrecomputedSVG))
			return
		}
		opts := footprint.DefaultRenderOptions()
		opts.Mode = c.state.Mode
		opts.ShowDimensions = c.state.ShowDimensions
		opts.ShowPadNumbers = c.state.ShowPadNumbers
		c.svg = footprint.GenerateSVG(c.footprint, opts, c.state.Zoom)
	}
}

func (c *Controller) snapshotLocked() Snapshot {
	snap := Snapshot{
		Phase:       c.phase,
		ComponentID: c.id,
		State:       c.state,
		ErrMessage:  c.errMsg,
	}
	if len(c.svg) > 0 {
		snap.SVG = append([]byte(nil), c.svg...)
	}
	return snap
}
