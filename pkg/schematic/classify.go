// Package schematic generates logical symbol diagrams for components.
// Pins are classified onto the four body sides by name and electrical
// role, laid out on a fixed grid, and rendered as an ordered op list
// ready for SVG encoding.
package schematic

import (
	"strings"

	"github.com/madeinoz67/partshub-sub000/pkg/geom"
	"github.com/madeinoz67/partshub-sub000/pkg/part"
)

// PinGroups holds the classified pins per body side. Within each group
// the pins keep their record order.
type PinGroups struct {
	Top    []part.Pin
	Bottom []part.Pin
	Left   []part.Pin
	Right  []part.Pin
}

// Side returns the group for one body side.
func (g *PinGroups) Side(s geom.Side) []part.Pin {
	switch s {
	case geom.SideTop:
		return g.Top
	case geom.SideBottom:
		return g.Bottom
	case geom.SideLeft:
		return g.Left
	default:
		return g.Right
	}
}

// Total reports the number of classified pins.
func (g *PinGroups) Total() int {
	return len(g.Top) + len(g.Bottom) + len(g.Left) + len(g.Right)
}

// SideFor picks the body side a pin attaches to. Rules apply in order,
// first match wins: power rails go top, grounds bottom, clocks and
// inputs left, everything else right. Name matches are case-insensitive
// substring tests.
func SideFor(pin part.Pin) geom.Side {
	name := strings.ToLower(pin.Name)
	switch {
	case containsAny(name, "vcc", "vdd", "power") || pin.Electrical == part.PowerIn:
		return geom.SideTop
	case containsAny(name, "gnd", "vss") || pin.Electrical == part.PowerOut:
		return geom.SideBottom
	case containsAny(name, "clk", "clock", "in") || pin.Electrical == part.Input:
		return geom.SideLeft
	default:
		return geom.SideRight
	}
}

// Classify groups pins by body side.
func Classify(pins []part.Pin) PinGroups {
	var groups PinGroups
	for _, pin := range pins {
		switch SideFor(pin) {
		case geom.SideTop:
			groups.Top = append(groups.Top, pin)
		case geom.SideBottom:
			groups.Bottom = append(groups.Bottom, pin)
		case geom.SideLeft:
			groups.Left = append(groups.Left, pin)
		default:
			groups.Right = append(groups.Right, pin)
		}
	}
	return groups
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
