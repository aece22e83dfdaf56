package colour

// Harmonic synthesis constants.
const (
	// maxHarmonySeeds is the number of dominant colours considered.
	maxHarmonySeeds = 3

	// maxHarmonyColors caps the size of the synthesised palette.
	maxHarmonyColors = 5

	// analogousSaturationScale damps analogous variants so they support
	// rather than compete with the seed.
	analogousSaturationScale = 0.8
)

// Harmonise derives a small harmonious palette from up to three dominant
// colours using hue rotation in HSL space. For each seed it emits the seed
// itself, its complement (+180°) and two analogous variants (±30° at 0.8×
// saturation), truncating the result to five colours. Hue arithmetic wraps
// modulo 360 in both directions.
//
// The synthesiser makes no accessibility judgement; callers re-score the
// result with Score.
func Harmonise(colors []Color) []Color {
	if len(colors) == 0 {
		return []Color{}
	}
	seeds := colors
	if len(seeds) > maxHarmonySeeds {
		seeds = seeds[:maxHarmonySeeds]
	}

	palette := make([]Color, 0, maxHarmonyColors)
	emit := func(c Color) bool {
		if len(palette) >= maxHarmonyColors {
			return false
		}
		palette = append(palette, c)
		return true
	}

	for _, seed := range seeds {
		h, s, l := rgbToHSLFloat(seed.RGB)

		if !emit(seed) {
			break
		}
		if !emit(rotated(h+180, s, l)) {
			break
		}
		if !emit(rotated(h+30, s*analogousSaturationScale, l)) {
			break
		}
		if !emit(rotated(h-30, s*analogousSaturationScale, l)) {
			break
		}
	}

	return palette
}

// rotated builds a Color from float HSL components, wrapping the hue into
// [0,360).
func rotated(h, s, l float64) Color {
	return NewColorFromRGB(hslToRGBFloat(wrapHue(h), s, l))
}
