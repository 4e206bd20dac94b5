package kicad

import (
	"strings"
	"testing"
)

func TestParseNodeTree(t *testing.T) {
	input := `(footprint "Test:Pad"
		(layer "F.Cu")
		(pad "1" smd rect (at -2.7 -1.9 90) (size 1.55 0.6))
		(pad "2" smd rect (at 2.7 1.9) (size 1.55 0.6))
	)`

	nodes, err := parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("got %d top-level nodes, want 1", len(nodes))
	}

	root := nodes[0]
	if root.Name != "footprint" {
		t.Errorf("root name = %q, want footprint", root.Name)
	}
	if id, ok := root.Arg(0); !ok || id != "Test:Pad" {
		t.Errorf("root arg 0 = %q, %v", id, ok)
	}
	if layer := root.Child("layer"); layer == nil {
		t.Error("Child(layer) = nil")
	}
	pads := root.Children("pad")
	if len(pads) != 2 {
		t.Fatalf("got %d pad children, want 2", len(pads))
	}

	at := pads[0].Child("at")
	if at == nil {
		t.Fatal("first pad has no at node")
	}
	if x, ok := at.Float(0); !ok || x != -2.7 {
		t.Errorf("at x = %v, %v; want -2.7", x, ok)
	}
	if angle, ok := at.Float(2); !ok || angle != 90 {
		t.Errorf("at angle = %v, %v; want 90", angle, ok)
	}
	if _, ok := at.Float(3); ok {
		t.Error("Float past the last value should report !ok")
	}
}

func TestParseSkipsComments(t *testing.T) {
	input := "# header comment\n(node (child 1) # trailing\n)"

	nodes, err := parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(nodes) != 1 || nodes[0].Name != "node" {
		t.Fatalf("unexpected nodes: %+v", nodes)
	}
}

func TestParseUnbalanced(t *testing.T) {
	if _, err := parse(strings.NewReader(`(foo (bar)`)); err == nil {
		t.Error("expected error for unbalanced parens")
	}
}

func TestFlagForms(t *testing.T) {
	input := `(root
		(pin hide (name "A"))
		(pin (hide yes) (name "B"))
		(pin (hide no) (name "C"))
		(pin (name "D"))
	)`

	nodes, err := parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	pins := nodes[0].Children("pin")
	if len(pins) != 4 {
		t.Fatalf("got %d pins, want 4", len(pins))
	}

	want := []bool{true, true, false, false}
	for i, pin := range pins {
		if got := pin.Flag("hide"); got != want[i] {
			name, _ := pin.Child("name").Arg(0)
			t.Errorf("pin %s: Flag(hide) = %v, want %v", name, got, want[i])
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`"plain"`, "plain"},
		{`"a b"`, "a b"},
		{`"say \"hi\""`, `say "hi"`},
		{`"back\\slash"`, `back\slash`},
		{`"tab\there"`, "tab\there"},
		{`bare`, "bare"},
		{`""`, ""},
	}
	for _, tt := range tests {
		if got := unquote(tt.in); got != tt.want {
			t.Errorf("unquote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitLibID(t *testing.T) {
	if lib, name := splitLibID("Timer:NE555"); lib != "Timer" || name != "NE555" {
		t.Errorf("splitLibID(Timer:NE555) = %q, %q", lib, name)
	}
	if lib, name := splitLibID("NE555"); lib != "" || name != "NE555" {
		t.Errorf("splitLibID(NE555) = %q, %q", lib, name)
	}
}
