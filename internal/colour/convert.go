// Package colour implements the colour science and accessibility engine:
// colour space conversion, WCAG contrast analysis, colour-blindness
// simulation, accessibility scoring, dominant colour extraction and
// harmonic palette synthesis.
package colour

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sentinel errors for the conversion boundary. Callers test with errors.Is.
var (
	// ErrInvalidFormat indicates a malformed hex colour string.
	ErrInvalidFormat = errors.New("invalid colour format")

	// ErrOutOfRange indicates a channel value outside its valid domain.
	ErrOutOfRange = errors.New("value out of range")
)

// RGB represents a colour as 8-bit red, green and blue channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a lowercase hex string (e.g. "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// HSL represents a colour as hue in degrees [0,360) and saturation and
// lightness as integer percentages [0,100].
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// String returns the HSL colour as a string in the format "hsl(h, s%, l%)".
func (hsl HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", hsl.H, hsl.S, hsl.L)
}

// HexToRGB parses a 6-digit hex colour string into an RGB value.
// The string may carry an optional leading "#" and is case-insensitive.
// Returns ErrInvalidFormat for anything that is not exactly 6 hex digits
// after stripping the prefix.
func HexToRGB(hex string) (RGB, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("%w: %q (expected 6 hex digits)", ErrInvalidFormat, hex)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidFormat, hex)
	}

	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// RGBToHex formats integer channel values as a lowercase 6-digit hex string.
// Returns ErrOutOfRange if any channel is outside [0,255]; channels are
// never silently clamped at this boundary.
func RGBToHex(r, g, b int) (string, error) {
	for _, c := range [3]struct {
		name  string
		value int
	}{{"r", r}, {"g", g}, {"b", b}} {
		if c.value < 0 || c.value > 255 {
			return "", fmt.Errorf("%w: channel %s=%d (valid: 0-255)", ErrOutOfRange, c.name, c.value)
		}
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}.Hex(), nil
}

// RGBToHSL converts an RGB colour to HSL using the standard max/min channel
// algorithm. Hue is rounded to the nearest degree in [0,360), saturation and
// lightness to the nearest integer percentage. Achromatic colours report
// hue and saturation of exactly 0.
func RGBToHSL(rgb RGB) HSL {
	h, s, l := rgbToHSLFloat(rgb)
	hi := int(math.Round(h)) % 360
	return HSL{
		H: hi,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// HSLToRGB converts an HSL colour back to RGB. Round-tripping an RGB value
// through RGBToHSL and back may differ by up to 1 per channel due to integer
// rounding; that tolerance is part of the contract.
// Returns ErrOutOfRange if hue is outside [0,360) or a percentage is
// outside [0,100].
func HSLToRGB(hsl HSL) (RGB, error) {
	if hsl.H < 0 || hsl.H >= 360 {
		return RGB{}, fmt.Errorf("%w: hue %d (valid: 0-359)", ErrOutOfRange, hsl.H)
	}
	if hsl.S < 0 || hsl.S > 100 {
		return RGB{}, fmt.Errorf("%w: saturation %d (valid: 0-100)", ErrOutOfRange, hsl.S)
	}
	if hsl.L < 0 || hsl.L > 100 {
		return RGB{}, fmt.Errorf("%w: lightness %d (valid: 0-100)", ErrOutOfRange, hsl.L)
	}
	return hslToRGBFloat(float64(hsl.H), float64(hsl.S)/100.0, float64(hsl.L)/100.0), nil
}

// rgbToHSLFloat converts RGB to HSL colour space without rounding.
// Returns hue (0-360), saturation (0-1), lightness (0-1).
func rgbToHSLFloat(rgb RGB) (h, s, l float64) {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	// Lightness.
	l = (maxVal + minVal) / 2.0

	// Achromatic.
	if delta == 0 {
		s = 0
		h = 0
		return
	}

	// Saturation.
	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	// Hue.
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	h *= 60
	return
}

// hslToRGBFloat converts HSL to RGB colour space.
// h is hue (0-360), s is saturation (0-1), l is lightness (0-1).
func hslToRGBFloat(h, s, l float64) RGB {
	if s == 0 {
		// Achromatic (grey).
		v := uint8(math.Round(l * 255))
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	r := hueToChannel(p, q, h+120)
	g := hueToChannel(p, q, h)
	b := hueToChannel(p, q, h-120)

	return RGB{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
	}
}

// hueToChannel is a helper for HSL to RGB conversion.
func hueToChannel(p, q, t float64) float64 {
	// Normalise t to 0-360 range.
	for t < 0 {
		t += 360
	}
	for t >= 360 {
		t -= 360
	}

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}

// wrapHue normalises a hue angle, possibly negative, into [0,360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
