package kicad

import (
	"strings"
	"testing"

	"github.com/madeinoz67/partshub-sub000/pkg/part"
	"github.com/madeinoz67/partshub-sub000/pkg/schematic"
)

const timerLib = `(kicad_symbol_lib
	(version 20211014)
	(generator kicad_symbol_editor)
	(symbol "Timer:NE555" (in_bom yes) (on_board yes)
		(property "Reference" "U" (at 0 0 0))
		(property "Value" "NE555" (at 0 0 0))
		(property "Datasheet" "https://www.ti.com/lit/ds/symlink/ne555.pdf" (at 0 0 0))
		(property "ki_keywords" "timer" (at 0 0 0))
		(symbol "NE555_1_1"
			(rectangle (start -7.62 10.16) (end 7.62 -10.16))
			(pin power_in line (at 0 12.7 270) (length 2.54)
				(name "VCC" (effects (font (size 1.27 1.27))))
				(number "8" (effects (font (size 1.27 1.27))))
			)
			(pin power_in line (at 0 -12.7 90) (length 2.54)
				(name "GND")
				(number "1")
			)
			(pin output line (at 10.16 0 180) (length 2.54)
				(name "OUT")
				(number "3")
			)
			(pin input line (at -10.16 2.54 0) (length 2.54)
				(name "~{RESET}")
				(number "4")
			)
			(pin passive line (at -10.16 -2.54 0) (length 2.54)
				(name "~")
				(number "5")
			)
		)
		(symbol "NE555_1_2"
			(pin output line (at 10.16 0 180) (length 2.54)
				(name "ALT_OUT")
				(number "3")
			)
		)
	)
	(symbol "Timer:LM555" (in_bom yes) (on_board yes)
		(property "Reference" "U" (at 0 0 0))
	)
)`

func TestParseSymbolLib(t *testing.T) {
	records, err := ParseSymbolLib(strings.NewReader(timerLib))
	if err != nil {
		t.Fatalf("ParseSymbolLib: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	rec := records[0]
	if rec.Library != "Timer" || rec.Part != "NE555" {
		t.Errorf("identity = %q/%q, want Timer/NE555", rec.Library, rec.Part)
	}
	if rec.Reference != "U" {
		t.Errorf("reference = %q, want U", rec.Reference)
	}
	if len(rec.Pins) != 5 {
		t.Fatalf("got %d pins, want 5", len(rec.Pins))
	}

	byNum := rec.PinByNumber()
	if pin := byNum["8"]; pin.Name != "VCC" || pin.Electrical != part.PowerIn {
		t.Errorf("pin 8 = %+v, want VCC power_in", pin)
	}
	if pin := byNum["8"]; pin.Position == nil || pin.Position.Y != 12.7 {
		t.Errorf("pin 8 position = %+v, want y 12.7", pin.Position)
	}
	if pin := byNum["4"]; pin.Name != "RESET" {
		t.Errorf("pin 4 name = %q, want overbar markup stripped", pin.Name)
	}
	if pin := byNum["5"]; pin.Name != "" {
		t.Errorf("pin 5 name = %q, want empty for ~", pin.Name)
	}

	// Alternate body style repeats pin 3; the first definition wins.
	if pin := byNum["3"]; pin.Name != "OUT" {
		t.Errorf("pin 3 name = %q, want OUT", pin.Name)
	}
	if err := rec.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	if records[1].Part != "LM555" {
		t.Errorf("second record part = %q, want LM555", records[1].Part)
	}
}

func TestParseSymbolLibExtraProperties(t *testing.T) {
	records, err := ParseSymbolLib(strings.NewReader(timerLib))
	if err != nil {
		t.Fatalf("ParseSymbolLib: %v", err)
	}

	extra := records[0].Extra
	if extra["Value"] != "NE555" {
		t.Errorf("Extra[Value] = %v, want NE555", extra["Value"])
	}
	if _, ok := extra["Datasheet"]; !ok {
		t.Error("Datasheet property should be kept")
	}
	if _, ok := extra["ki_keywords"]; ok {
		t.Error("ki_ properties should be skipped")
	}
	if _, ok := extra["Reference"]; ok {
		t.Error("Reference should not leak into Extra")
	}
}

func TestParseSymbolLibUnknownElectrical(t *testing.T) {
	input := `(kicad_symbol_lib
		(symbol "X:Y"
			(pin no_connect line (at 0 0 0) (name "NC") (number "1"))
			(pin somefuturetype line (at 0 0 0) (name "Z") (number "2"))
		)
	)`

	records, err := ParseSymbolLib(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseSymbolLib: %v", err)
	}
	for _, pin := range records[0].Pins {
		if pin.Electrical != part.Unspecified {
			t.Errorf("pin %s electrical = %q, want unspecified", pin.Number, pin.Electrical)
		}
	}
}

func TestParseSymbolLibWrongRoot(t *testing.T) {
	if _, err := ParseSymbolLib(strings.NewReader(`(kicad_sch (version 1))`)); err == nil {
		t.Error("expected error for wrong root node")
	}
	if _, err := ParseSymbolLib(strings.NewReader(``)); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestParsedSymbolRenders(t *testing.T) {
	records, err := ParseSymbolLib(strings.NewReader(timerLib))
	if err != nil {
		t.Fatalf("ParseSymbolLib: %v", err)
	}

	markup := string(schematic.GenerateSVG(&records[0], schematic.DefaultRenderOptions(), 1.0))
	if !strings.Contains(markup, "NE555") {
		t.Error("rendered symbol should carry the part name")
	}
	if !strings.Contains(markup, "VCC") {
		t.Error("rendered symbol should carry pin names")
	}
}
