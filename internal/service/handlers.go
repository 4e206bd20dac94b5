package service

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/madeinoz67/partshub-sub000/pkg/footprint"
	"github.com/madeinoz67/partshub-sub000/pkg/geom"
	"github.com/madeinoz67/partshub-sub000/pkg/schematic"
	"github.com/madeinoz67/partshub-sub000/pkg/svg"
	"github.com/madeinoz67/partshub-sub000/pkg/view"
)

// Handler serves rendered diagrams for inventory components.
type Handler struct {
	source view.RecordSource
}

func NewHandler(source view.RecordSource) *Handler {
	return &Handler{source: source}
}

// SymbolSVG renders the schematic symbol diagram for one component.
// GET /api/components/:id/symbol.svg?zoom=1.5&theme=light
func (h *Handler) SymbolSVG(c fiber.Ctx) error {
	rec, err := h.source.Symbol(c.Context(), c.Params("id"))
	if err != nil {
		return diagramError(c, err)
	}

	opts := schematic.DefaultRenderOptions()
	if c.Query("theme") == "light" {
		opts.Theme = schematic.ThemeLight
	}

	c.Set("Content-Type", "image/svg+xml")
	return c.Send(schematic.GenerateSVG(rec, opts, parseZoom(c.Query("zoom"))))
}

// FootprintSVG renders the PCB footprint diagram for one component.
// Records carrying backend-rendered markup are sanitized and served
// as-is; view options only apply to generated diagrams.
// GET /api/components/:id/footprint.svg?zoom=2&view=bottom&dimensions=1&numbers=0
func (h *Handler) FootprintSVG(c fiber.Ctx) error {
	rec, err := h.source.Footprint(c.Context(), c.Params("id"))
	if err != nil {
		return diagramError(c, err)
	}

	if rec.PrecomputedSVG != "" {
		c.Set("Content-Type", "image/svg+xml")
		return c.SendString(svg.Sanitize(rec.PrecomputedSVG))
	}

	opts := footprint.DefaultRenderOptions()
	opts.Mode = footprint.ParseViewMode(c.Query("view"))
	opts.ShowDimensions = parseBool(c.Query("dimensions"), opts.ShowDimensions)
	opts.ShowPadNumbers = parseBool(c.Query("numbers"), opts.ShowPadNumbers)
	if c.Query("theme") == "light" {
		opts.Theme = footprint.ThemeLight
	}

	c.Set("Content-Type", "image/svg+xml")
	return c.Send(footprint.GenerateSVG(rec, opts, parseZoom(c.Query("zoom"))))
}

// diagramError maps source failures onto HTTP statuses: a missing
// record is a 404, anything else means the backend is unreachable or
// misbehaving.
func diagramError(c fiber.Ctx, err error) error {
	if errors.Is(err, view.ErrNotFound) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "component not found"})
	}
	log.Printf("[DIAGRAM] fetch error: %v", err)
	return c.Status(http.StatusBadGateway).JSON(fiber.Map{"error": "backend fetch failed"})
}

// parseZoom reads a zoom query value, clamped to the viewer range.
// Missing or malformed values mean unity zoom.
func parseZoom(raw string) float64 {
	if raw == "" {
		return 1.0
	}
	zoom, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(zoom) {
		return 1.0
	}
	return geom.Clamp(zoom, view.ZoomMin, view.ZoomMax)
}

func parseBool(raw string, defaultVal bool) bool {
	if raw == "" {
		return defaultVal
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultVal
	}
	return v
}
