package schematic

// Theme selects a color scheme for symbol rendering
type Theme int

const (
	// ThemeDark is a dark background theme (navy background, light strokes)
	ThemeDark Theme = iota
	// ThemeLight is a light background theme (paper background, dark strokes)
	ThemeLight
)

// SymbolColors defines the color scheme for rendering symbol elements
type SymbolColors struct {
	// Background and grid
	Background string
	Grid       string

	// Body
	BodyFill   string
	BodyStroke string
	Shadow     string

	// Decorative glyph
	Glyph string

	// Text
	RefDes     string
	PartName   string
	Annotation string

	// Pins
	Stub       string
	Dot        string
	NumberFill string
	NumberEdge string
	NumberText string
	PinName    string

	FontFamily string
}

// SymbolTheme returns the color scheme for the given theme
func SymbolTheme(theme Theme) *SymbolColors {
	if theme == ThemeLight {
		return &SymbolColors{
			Background: "#fafaf5",
			Grid:       "#e4e4da",
			BodyFill:   "#fffbe6",
			BodyStroke: "#84141f",
			Shadow:     "#c8c8be",
			Glyph:      "#84141f",
			RefDes:     "#84141f",
			PartName:   "#333333",
			Annotation: "#8a8a80",
			Stub:       "#556270",
			Dot:        "#b8860b",
			NumberFill: "#ffffff",
			NumberEdge: "#556270",
			NumberText: "#333333",
			PinName:    "#1f5f5b",
			FontFamily: "monospace",
		}
	}
	return &SymbolColors{
		Background: "#1a1a2e",
		Grid:       "#232342",
		BodyFill:   "#16213e",
		BodyStroke: "#4fc3f7",
		Shadow:     "#0d0d18",
		Glyph:      "#4fc3f7",
		RefDes:     "#e94560",
		PartName:   "#e0e0e0",
		Annotation: "#6c7293",
		Stub:       "#b0b8d0",
		Dot:        "#ffd166",
		NumberFill: "#0f3460",
		NumberEdge: "#b0b8d0",
		NumberText: "#e0e0e0",
		PinName:    "#a8dadc",
		FontFamily: "monospace",
	}
}
