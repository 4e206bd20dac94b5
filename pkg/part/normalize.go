package part

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/madeinoz67/partshub-sub000/pkg/geom"
)

// DefaultPadSize substitutes for missing or malformed pad sizes so a
// bad record still renders something visible.
var DefaultPadSize = geom.Size{Width: 1, Height: 1}

// DecodeSymbol parses a backend symbol record.
func DecodeSymbol(data []byte) (*SymbolRecord, error) {
	var rec SymbolRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decoding symbol record: %w", err)
	}
	return &rec, nil
}

// DecodeFootprint parses a backend footprint record.
func DecodeFootprint(data []byte) (*FootprintRecord, error) {
	var rec FootprintRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decoding footprint record: %w", err)
	}
	return &rec, nil
}

// UnmarshalJSON folds unknown electrical types to Unspecified.
func (t *ElectricalType) UnmarshalJSON(data []byte) error {
	s, err := decodeToken(data)
	if err != nil {
		return err
	}
	switch ElectricalType(s) {
	case Input, Output, Bidirectional, TriState, Passive,
		PowerIn, PowerOut, OpenCollector, OpenEmitter, Unspecified:
		*t = ElectricalType(s)
	default:
		*t = Unspecified
	}
	return nil
}

// UnmarshalJSON folds unknown pad types to PadSMD.
func (t *PadType) UnmarshalJSON(data []byte) error {
	s, err := decodeToken(data)
	if err != nil {
		return err
	}
	switch PadType(s) {
	case PadSMD, PadThruHole, PadNPThruHole, PadConnect, PadAperture:
		*t = PadType(s)
	default:
		*t = PadSMD
	}
	return nil
}

// UnmarshalJSON maps common shape aliases and folds unknowns to rect.
func (s *PadShape) UnmarshalJSON(data []byte) error {
	tok, err := decodeToken(data)
	if err != nil {
		return err
	}
	switch tok {
	case "circle", "round":
		*s = ShapeCircle
	case "oval":
		*s = ShapeOval
	default:
		*s = ShapeRect
	}
	return nil
}

// decodeToken lowercases a JSON string and normalizes separators so
// "Power-In" and "power_in" decode to the same constant.
func decodeToken(data []byte) (string, error) {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return "", err
	}
	raw = strings.ToLower(strings.TrimSpace(raw))
	raw = strings.ReplaceAll(raw, "-", "_")
	raw = strings.ReplaceAll(raw, " ", "_")
	return raw, nil
}

// UnmarshalJSON accepts the size and drill shapes seen in the wild:
// size as a {width,height} object, a "WxH" string, a [w,h] array, or a
// bare number for square pads; drill as a number or numeric string.
// Malformed values degrade to defaults instead of failing the record.
func (p *Pad) UnmarshalJSON(data []byte) error {
	type alias struct {
		Number   string          `json:"number"`
		Type     PadType         `json:"type"`
		Size     json.RawMessage `json:"size"`
		Drill    json.RawMessage `json:"drill"`
		Shape    PadShape        `json:"shape"`
		Position geom.Point      `json:"position"`
	}
	var aux alias
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("decoding pad: %w", err)
	}
	p.Number = aux.Number
	p.Type = aux.Type
	p.Shape = aux.Shape
	p.Position = aux.Position
	p.Size = decodeSize(aux.Size)
	p.Drill = decodeDrill(aux.Drill)
	if aux.Type == "" {
		p.Type = PadSMD
	}
	if aux.Shape == "" {
		p.Shape = ShapeRect
	}
	return nil
}

func decodeSize(raw json.RawMessage) geom.Size {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return DefaultPadSize
	}

	var obj struct {
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return geom.Size{Width: sanitizeDim(obj.Width), Height: sanitizeDim(obj.Height)}
	}

	var arr []float64
	if err := json.Unmarshal(raw, &arr); err == nil {
		switch len(arr) {
		case 0:
			return DefaultPadSize
		case 1:
			d := sanitizeDim(arr[0])
			return geom.Size{Width: d, Height: d}
		default:
			return geom.Size{Width: sanitizeDim(arr[0]), Height: sanitizeDim(arr[1])}
		}
	}

	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		d := sanitizeDim(num)
		return geom.Size{Width: d, Height: d}
	}

	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return parseSizeString(str)
	}
	return DefaultPadSize
}

// parseSizeString handles "WxH" with any of x, X, or * as separator.
// A single number means a square pad.
func parseSizeString(s string) geom.Size {
	s = strings.TrimSpace(s)
	sep := strings.IndexAny(s, "xX*")
	if sep < 0 {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return DefaultPadSize
		}
		d := sanitizeDim(v)
		return geom.Size{Width: d, Height: d}
	}
	w, errW := strconv.ParseFloat(strings.TrimSpace(s[:sep]), 64)
	h, errH := strconv.ParseFloat(strings.TrimSpace(s[sep+1:]), 64)
	if errW != nil {
		w = 0
	}
	if errH != nil {
		h = 0
	}
	return geom.Size{Width: sanitizeDim(w), Height: sanitizeDim(h)}
}

func decodeDrill(raw json.RawMessage) float64 {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0
	}
	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		return sanitizeDrill(num)
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			return 0
		}
		return sanitizeDrill(v)
	}
	return 0
}

// sanitizeDim rejects nonpositive and non-finite dimensions. The !(v > 0)
// form also catches NaN.
func sanitizeDim(v float64) float64 {
	if !(v > 0) || math.IsInf(v, 1) {
		return 1
	}
	return v
}

func sanitizeDrill(v float64) float64 {
	if !(v > 0) || math.IsInf(v, 1) {
		return 0
	}
	return v
}
