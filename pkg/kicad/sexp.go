// Package kicad reads KiCad library files into part records. Symbol
// libraries (.kicad_sym) and footprints (.kicad_mod) share one
// S-expression surface; the grammar here parses that surface into a
// generic node tree and the extractors in symbol.go and footprint.go
// walk it. Nodes the extractors do not recognize are skipped, never
// errors, so files from newer KiCad releases keep loading.
package kicad

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// sexpLexer tokenizes KiCad S-expressions. Atoms cover symbols and
// numbers alike; numeric interpretation happens at extraction time so
// values like 3V3 or F.Cu never mis-tokenize.
var sexpLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[\s]+`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},
	{Name: "Atom", Pattern: `[^()"\s]+`},
})

var sexpParser = participle.MustBuild[document](
	participle.Lexer(sexpLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.UseLookahead(2),
)

// document is a sequence of top-level expressions.
type document struct {
	Nodes []*Node `parser:"@@*"`
}

// Node is a parenthesized expression: a name followed by values.
// Example: (at -2.54 0 90)
type Node struct {
	Name   string   `parser:"LParen @Atom"`
	Values []*Value `parser:"@@* RParen"`
}

// Value is one element of a node: a quoted string, a bare atom, or a
// nested node.
type Value struct {
	Str  *string `parser:"  @String"`
	Atom *string `parser:"| @Atom"`
	Node *Node   `parser:"| @@"`
}

// parse reads every top-level expression from r.
func parse(r io.Reader) ([]*Node, error) {
	doc, err := sexpParser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return doc.Nodes, nil
}

// Arg returns the positional value at index i as a string, with quoted
// strings unescaped. Nested nodes yield ok=false.
func (n *Node) Arg(i int) (string, bool) {
	if i < 0 || i >= len(n.Values) {
		return "", false
	}
	v := n.Values[i]
	switch {
	case v.Str != nil:
		return unquote(*v.Str), true
	case v.Atom != nil:
		return *v.Atom, true
	}
	return "", false
}

// Float returns the positional value at index i as a float64.
func (n *Node) Float(i int) (float64, bool) {
	s, ok := n.Arg(i)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Child returns the first nested node with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, v := range n.Values {
		if v.Node != nil && v.Node.Name == name {
			return v.Node
		}
	}
	return nil
}

// Children returns all nested nodes with the given name.
func (n *Node) Children(name string) []*Node {
	var nodes []*Node
	for _, v := range n.Values {
		if v.Node != nil && v.Node.Name == name {
			nodes = append(nodes, v.Node)
		}
	}
	return nodes
}

// Flag reports whether the node carries a boolean marker, either as a
// bare atom (KiCad 6: "hide") or as a yes/no child (KiCad 7+:
// "(hide yes)").
func (n *Node) Flag(name string) bool {
	for _, v := range n.Values {
		if v.Atom != nil && *v.Atom == name {
			return true
		}
	}
	if c := n.Child(name); c != nil {
		val, _ := c.Arg(0)
		return val == "yes"
	}
	return false
}

// unquote strips surrounding quotes and resolves the escape sequences
// KiCad writes into string tokens.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			i++
			switch s[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				b.WriteByte(s[i])
			}
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// splitLibID splits a "Library:Part" identifier. Identifiers without a
// colon carry no library name.
func splitLibID(id string) (library, name string) {
	if i := strings.IndexByte(id, ':'); i >= 0 {
		return id[:i], id[i+1:]
	}
	return "", id
}
