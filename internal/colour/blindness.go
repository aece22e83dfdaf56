package colour

import (
	"fmt"
	"math"
)

// ColorBlindnessType enumerates the supported colour vision deficiencies.
// The set is closed: each type maps to exactly one transform.
type ColorBlindnessType string

const (
	// Protanopia is the absence of red cone response.
	Protanopia ColorBlindnessType = "protanopia"

	// Deuteranopia is the absence of green cone response.
	Deuteranopia ColorBlindnessType = "deuteranopia"

	// Tritanopia is the absence of blue cone response.
	Tritanopia ColorBlindnessType = "tritanopia"

	// Achromatopsia is total colour blindness (pure greyscale vision).
	Achromatopsia ColorBlindnessType = "achromatopsia"
)

// ColorBlindnessTypes returns the supported deficiency types in a fixed
// order: the dichromatic deficiencies first, achromatopsia last.
func ColorBlindnessTypes() []ColorBlindnessType {
	return []ColorBlindnessType{Protanopia, Deuteranopia, Tritanopia, Achromatopsia}
}

// ParseColorBlindnessType validates a deficiency name.
func ParseColorBlindnessType(s string) (ColorBlindnessType, error) {
	for _, t := range ColorBlindnessTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: unknown deficiency type %q (valid: protanopia, deuteranopia, tritanopia, achromatopsia)", ErrInvalidFormat, s)
}

// blindnessMatrix is a 3x3 RGB-domain transform applied row-major to the
// input channels.
type blindnessMatrix [3][3]float64

// Dichromatic simulation matrices after Vienot, Brettel & Mollon (1999),
// in the commonly used RGB-domain approximation. Each matrix attenuates
// the missing cone's contribution and redistributes it across the
// remaining channels.
var blindnessMatrices = map[ColorBlindnessType]blindnessMatrix{
	Protanopia: {
		{0.567, 0.433, 0.000},
		{0.558, 0.442, 0.000},
		{0.000, 0.242, 0.758},
	},
	Deuteranopia: {
		{0.625, 0.375, 0.000},
		{0.700, 0.300, 0.000},
		{0.000, 0.300, 0.700},
	},
	Tritanopia: {
		{0.950, 0.050, 0.000},
		{0.000, 0.433, 0.567},
		{0.000, 0.475, 0.525},
	},
}

// Simulate produces the dichromatic (or achromatic) approximation of a
// colour as seen with the given deficiency. The result is always a valid
// Color: output channels are clamped to [0,255], which is documented
// saturation behaviour rather than an error. Unknown types return the
// input unchanged.
func Simulate(c Color, t ColorBlindnessType) Color {
	if t == Achromatopsia {
		return NewColorFromRGB(desaturate(c.RGB))
	}

	m, ok := blindnessMatrices[t]
	if !ok {
		return c
	}

	r := float64(c.RGB.R)
	g := float64(c.RGB.G)
	b := float64(c.RGB.B)

	return NewColorFromRGB(RGB{
		R: clampChannel(m[0][0]*r + m[0][1]*g + m[0][2]*b),
		G: clampChannel(m[1][0]*r + m[1][1]*g + m[1][2]*b),
		B: clampChannel(m[2][0]*r + m[2][1]*g + m[2][2]*b),
	})
}

// desaturate converts a colour to greyscale using luminance weighting so
// perceived brightness is preserved. All three output channels are equal.
func desaturate(rgb RGB) RGB {
	grey := clampChannel(0.299*float64(rgb.R) + 0.587*float64(rgb.G) + 0.114*float64(rgb.B))
	return RGB{R: grey, G: grey, B: grey}
}

// clampChannel rounds and saturates a channel value into [0,255].
func clampChannel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
