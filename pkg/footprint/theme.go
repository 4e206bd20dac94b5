package footprint

// Theme selects a color scheme for footprint rendering
type Theme int

const (
	// ThemeDark is a dark solder-mask look
	ThemeDark Theme = iota
	// ThemeLight is a brighter solder-mask look for light pages
	ThemeLight
)

// FootprintColors defines the color scheme for rendering board elements
type FootprintColors struct {
	// Board surface
	Board   string
	Texture string

	// Measurement grid
	GridMinor string
	GridMajor string

	// Silkscreen
	Silk string
	Pin1 string

	// Pads
	PadBright string
	PadDark   string
	PadEdge   string
	Shine     string

	// Drills
	DrillShadow    string
	DrillBore      string
	DrillHighlight string

	// Labels and annotations
	NumberFill string
	NumberEdge string
	NumberText string
	Dimension  string
	ScaleBar   string
	Annotation string

	FontFamily string
}

// FootprintTheme returns the color scheme for the given theme
func FootprintTheme(theme Theme) *FootprintColors {
	if theme == ThemeLight {
		return &FootprintColors{
			Board:          "#2e8b57",
			Texture:        "#37a266",
			GridMinor:      "#3fae6f",
			GridMajor:      "#56c286",
			Silk:           "#fdf6e3",
			Pin1:           "#e74c3c",
			PadBright:      "#fafaf2",
			PadDark:        "#b8b8a8",
			PadEdge:        "#7d7d6e",
			Shine:          "#ffffff",
			DrillShadow:    "#2c2c2c",
			DrillBore:      "#121212",
			DrillHighlight: "#ffffff",
			NumberFill:     "#1f3a53",
			NumberEdge:     "#fdf6e3",
			NumberText:     "#ffffff",
			Dimension:      "#f4d03f",
			ScaleBar:       "#fdf6e3",
			Annotation:     "#d5e8dc",
			FontFamily:     "monospace",
		}
	}
	return &FootprintColors{
		Board:          "#15432c",
		Texture:        "#1a5236",
		GridMinor:      "#1f5c3d",
		GridMajor:      "#2a7050",
		Silk:           "#e8d44d",
		Pin1:           "#ff5252",
		PadBright:      "#e8e8e8",
		PadDark:        "#9a9a9a",
		PadEdge:        "#62625a",
		Shine:          "#ffffff",
		DrillShadow:    "#1f1f1f",
		DrillBore:      "#0a0a0a",
		DrillHighlight: "#ffffff",
		NumberFill:     "#263238",
		NumberEdge:     "#eceff1",
		NumberText:     "#ffffff",
		Dimension:      "#ffd54f",
		ScaleBar:       "#eceff1",
		Annotation:     "#9ab8a6",
		FontFamily:     "monospace",
	}
}
