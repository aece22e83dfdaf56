package colour

import (
	"fmt"
	"math"
)

// distinguishableDistance is the minimum RGB Euclidean distance at which
// two colours are considered visually distinct. Pairs above this distance
// that collapse below it under a simulated deficiency make a palette
// colour-blindness incompatible.
const distinguishableDistance = 40.0

// emptyScoreRecommendation is the fixed recommendation returned for an
// empty colour set.
const emptyScoreRecommendation = "No colors to analyze"

// AccessibilityScore aggregates the contrast checks for a colour set.
// It is computed fresh from the set each time and never partially updated.
// The JSON field names are frozen for compatibility with the persistence
// and export layers.
type AccessibilityScore struct {
	OverallScore             WCAGLevel       `json:"overallScore"`
	ContrastRatios           []ContrastCheck `json:"contrastRatios"`
	ColorBlindnessCompatible bool            `json:"colorBlindnessCompatible"`
	Recommendations          []string        `json:"recommendations"`
	PassedChecks             int             `json:"passedChecks"`
	TotalChecks              int             `json:"totalChecks"`
}

// Score evaluates a colour set against the WCAG contrast thresholds.
//
// The comparison set is every unordered pair of input colours plus every
// colour against the pure white and pure black references. Comparisons of
// a colour with itself and duplicates of already-evaluated pairs are
// skipped, so a set containing white or black does not double-count its
// reference checks. A single colour therefore yields exactly two checks
// (vs white, vs black).
//
// An empty set is a defined result: zero checks, vacuously compatible,
// and a fixed recommendation.
func Score(colors []Color) AccessibilityScore {
	score := AccessibilityScore{
		OverallScore:             LevelAAA,
		ContrastRatios:           []ContrastCheck{},
		ColorBlindnessCompatible: true,
		Recommendations:          []string{},
	}

	if len(colors) == 0 {
		score.Recommendations = append(score.Recommendations, emptyScoreRecommendation)
		return score
	}

	whiteRef := NewColorFromRGB(white)
	blackRef := NewColorFromRGB(black)

	seen := make(map[string]bool)
	evaluate := func(a, b Color) {
		if a.Hex == b.Hex {
			return
		}
		key := pairKey(a.Hex, b.Hex)
		if seen[key] {
			return
		}
		seen[key] = true

		check := CheckContrast(a, b)
		score.ContrastRatios = append(score.ContrastRatios, check)
		score.TotalChecks++
		if check.Readable {
			score.PassedChecks++
		} else {
			score.Recommendations = append(score.Recommendations,
				fmt.Sprintf("Increase contrast between %s (%s) and %s (%s): ratio %.2f is below the AA minimum of %.1f:1",
					a.Name, a.Hex, b.Name, b.Hex, check.Ratio, ThresholdAA))
		}
		if check.Level.rank() < score.OverallScore.rank() {
			score.OverallScore = check.Level
		}
	}

	// Unordered pairs in input order first, then each colour against the
	// white and black references. Recommendation order follows evaluation
	// order.
	for i := 0; i < len(colors); i++ {
		for j := i + 1; j < len(colors); j++ {
			evaluate(colors[i], colors[j])
		}
	}
	for _, c := range colors {
		evaluate(c, whiteRef)
		evaluate(c, blackRef)
	}

	score.ColorBlindnessCompatible = colorBlindnessCompatible(colors)
	if !score.ColorBlindnessCompatible {
		score.Recommendations = append(score.Recommendations,
			"Some colours become indistinguishable under colour-blindness simulation; vary lightness as well as hue")
	}

	return score
}

// colorBlindnessCompatible reports whether every originally-distinguishable
// pair of colours remains distinguishable under all four simulated
// deficiencies.
func colorBlindnessCompatible(colors []Color) bool {
	for _, t := range ColorBlindnessTypes() {
		simulated := make([]Color, len(colors))
		for i, c := range colors {
			simulated[i] = Simulate(c, t)
		}

		for i := 0; i < len(colors); i++ {
			for j := i + 1; j < len(colors); j++ {
				if rgbDistance(colors[i].RGB, colors[j].RGB) < distinguishableDistance {
					// Already close in normal vision; not a regression.
					continue
				}
				if rgbDistance(simulated[i].RGB, simulated[j].RGB) < distinguishableDistance {
					return false
				}
			}
		}
	}
	return true
}

// rgbDistance is the plain Euclidean distance between two colours in RGB
// space.
func rgbDistance(a, b RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// pairKey builds an order-independent key for an unordered colour pair.
func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}
