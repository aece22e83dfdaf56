package colour

import (
	"encoding/json"
	"fmt"
)

// Palette represents an ordered collection of colours.
type Palette struct {
	Colors []Color
}

// NewPalette creates a new Palette with the given colours.
func NewPalette(colors []Color) *Palette {
	return &Palette{Colors: colors}
}

// NewPaletteFromHex builds a palette from hex strings, validating each at
// ingress.
func NewPaletteFromHex(hexes []string) (*Palette, error) {
	colors, err := ParseColors(hexes)
	if err != nil {
		return nil, err
	}
	return NewPalette(colors), nil
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colors)
}

// ToHex returns the palette colours as hex strings.
func (p *Palette) ToHex() []string {
	hexes := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		hexes[i] = c.Hex
	}
	return hexes
}

// ToRGBSlice returns the palette colours as RGB values.
func (p *Palette) ToRGBSlice() []RGB {
	rgbs := make([]RGB, len(p.Colors))
	for i, c := range p.Colors {
		rgbs[i] = c.RGB
	}
	return rgbs
}

// PaletteJSON is the serialised palette document shape.
type PaletteJSON struct {
	Count  int     `json:"count"`
	Colors []Color `json:"colors"`
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	return json.MarshalIndent(PaletteJSON{
		Count:  len(p.Colors),
		Colors: p.Colors,
	}, "", "  ")
}

// String returns a human-readable representation of the palette.
func (p *Palette) String() string {
	if len(p.Colors) == 0 {
		return "Empty palette"
	}

	result := fmt.Sprintf("Palette with %d colours:\n", len(p.Colors))
	for i, c := range p.Colors {
		result += fmt.Sprintf("  %2d: %s (%s) %s\n", i+1, c.Hex, c.RGB.String(), c.Name)
	}
	return result
}

// Get returns the colour at the specified index.
// Returns an error if the index is out of bounds.
func (p *Palette) Get(index int) (Color, error) {
	if index < 0 || index >= len(p.Colors) {
		return Color{}, fmt.Errorf("index out of bounds: %d (palette has %d colours)", index, len(p.Colors))
	}
	return p.Colors[index], nil
}

// All returns an iterator over all colours in the palette.
func (p *Palette) All() func(func(int, Color) bool) {
	return func(yield func(int, Color) bool) {
		for i, c := range p.Colors {
			if !yield(i, c) {
				return
			}
		}
	}
}
