package colour

import "fmt"

// Category is the semantic role a colour plays within a palette.
type Category string

const (
	CategoryPrimary   Category = "primary"
	CategorySecondary Category = "secondary"
	CategoryAccent    Category = "accent"
	CategoryNeutral   Category = "neutral"
)

// AccessibilityInfo summarises a colour's contrast against the pure white
// and pure black references.
type AccessibilityInfo struct {
	ContrastWithWhite float64   `json:"contrastWithWhite"`
	ContrastWithBlack float64   `json:"contrastWithBlack"`
	WCAGLevel         WCAGLevel `json:"wcagLevel"`
}

// Color is an immutable colour value carrying three mutually consistent
// representations (hex, RGB, HSL) plus derived metadata. Constructors
// derive every representation eagerly; there is no lazy or partial state.
//
// The JSON field names and nesting are frozen for compatibility with the
// persistence and export layers.
type Color struct {
	Hex           string            `json:"hex"`
	RGB           RGB               `json:"rgb"`
	HSL           HSL               `json:"hsl"`
	Name          string            `json:"name"`
	Category      Category          `json:"category"`
	Usage         string            `json:"usage"`
	Accessibility AccessibilityInfo `json:"accessibility"`
}

// Reference colours used by the scorer and the accessibility summary.
var (
	white = RGB{R: 255, G: 255, B: 255}
	black = RGB{R: 0, G: 0, B: 0}
)

// NewColorFromRGB constructs a Color from an RGB value, deriving the hex
// and HSL representations and all metadata immediately.
func NewColorFromRGB(rgb RGB) Color {
	hsl := RGBToHSL(rgb)
	cw := ContrastRatio(rgb, white)
	cb := ContrastRatio(rgb, black)

	// The colour's standalone WCAG level is its best achievable text
	// contrast against either reference.
	best := cw
	if cb > best {
		best = cb
	}

	category := categorise(hsl)

	return Color{
		Hex:      rgb.Hex(),
		RGB:      rgb,
		HSL:      hsl,
		Name:     nameFor(hsl),
		Category: category,
		Usage:    usageFor(category),
		Accessibility: AccessibilityInfo{
			ContrastWithWhite: cw,
			ContrastWithBlack: cb,
			WCAGLevel:         LevelForRatio(best),
		},
	}
}

// NewColorFromHex constructs a Color from a hex string.
// Returns ErrInvalidFormat for malformed input.
func NewColorFromHex(hex string) (Color, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return Color{}, err
	}
	return NewColorFromRGB(rgb), nil
}

// NewColorFromHSL constructs a Color from an HSL value.
// Returns ErrOutOfRange if any component is outside its domain.
func NewColorFromHSL(hsl HSL) (Color, error) {
	rgb, err := HSLToRGB(hsl)
	if err != nil {
		return Color{}, err
	}
	return NewColorFromRGB(rgb), nil
}

// ParseColors converts a list of hex strings into Colors, rejecting the
// whole input on the first malformed value. Validation happens once at
// ingress; the engine never sees loosely-typed colour data.
func ParseColors(hexes []string) ([]Color, error) {
	colors := make([]Color, 0, len(hexes))
	for i, h := range hexes {
		c, err := NewColorFromHex(h)
		if err != nil {
			return nil, fmt.Errorf("colour %d: %w", i+1, err)
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// categorise assigns a palette role from saturation and lightness.
// Near-greys are neutral, vivid mid-lightness colours are accents,
// darker saturated colours read as primary, the rest as secondary.
func categorise(hsl HSL) Category {
	switch {
	case hsl.S < 12 || hsl.L < 5 || hsl.L > 95:
		return CategoryNeutral
	case hsl.S >= 70 && hsl.L >= 35 && hsl.L <= 65:
		return CategoryAccent
	case hsl.L <= 50:
		return CategoryPrimary
	default:
		return CategorySecondary
	}
}

// usageFor returns the free-text usage hint for a category.
func usageFor(c Category) string {
	switch c {
	case CategoryPrimary:
		return "Main brand colour, headers and prominent UI elements"
	case CategorySecondary:
		return "Supporting surfaces, secondary buttons and highlights"
	case CategoryAccent:
		return "Calls to action, links and interactive states"
	default:
		return "Backgrounds, borders and body text"
	}
}

// hueNames maps hue ranges to base colour names. Ranges are half-open
// [from, to) degrees; the final range wraps to 360.
var hueNames = []struct {
	to   int
	name string
}{
	{15, "Red"},
	{45, "Orange"},
	{70, "Yellow"},
	{165, "Green"},
	{200, "Cyan"},
	{260, "Blue"},
	{290, "Purple"},
	{345, "Pink"},
	{360, "Red"},
}

// nameFor derives a deterministic human-readable name from HSL.
func nameFor(hsl HSL) string {
	// Achromatic colours are named by lightness alone.
	if hsl.S < 12 {
		switch {
		case hsl.L < 5:
			return "Black"
		case hsl.L > 95:
			return "White"
		case hsl.L < 40:
			return "Dark Grey"
		case hsl.L > 70:
			return "Light Grey"
		default:
			return "Grey"
		}
	}

	base := "Red"
	for _, hn := range hueNames {
		if hsl.H < hn.to {
			base = hn.name
			break
		}
	}

	switch {
	case hsl.L < 30:
		return "Dark " + base
	case hsl.L > 75:
		return "Light " + base
	case hsl.S < 40:
		return "Muted " + base
	default:
		return base
	}
}
