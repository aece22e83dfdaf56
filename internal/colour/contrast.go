package colour

import "math"

// WCAG 2.1 contrast thresholds. These encode the normative spec and are
// deliberately not configurable.
const (
	// ThresholdAAA is the minimum contrast ratio for WCAG AAA normal text.
	ThresholdAAA = 7.0

	// ThresholdAA is the minimum contrast ratio for WCAG AA normal text.
	ThresholdAA = 4.5
)

// WCAGLevel classifies a contrast ratio against the WCAG 2.1 thresholds.
type WCAGLevel string

const (
	LevelAAA  WCAGLevel = "AAA"
	LevelAA   WCAGLevel = "AA"
	LevelFail WCAGLevel = "FAIL"
)

// rank orders levels for worst-of aggregation: AAA > AA > FAIL.
func (l WCAGLevel) rank() int {
	switch l {
	case LevelAAA:
		return 2
	case LevelAA:
		return 1
	default:
		return 0
	}
}

// Meets reports whether the level satisfies the required level.
// AAA implies AA.
func (l WCAGLevel) Meets(required WCAGLevel) bool {
	return l.rank() >= required.rank()
}

// Luminance calculates the relative luminance of a colour according to
// WCAG 2.0. Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef
func Luminance(rgb RGB) float64 {
	rf := gammaCorrect(float64(rgb.R) / 255.0)
	gf := gammaCorrect(float64(rgb.G) / 255.0)
	bf := gammaCorrect(float64(rgb.B) / 255.0)

	return 0.2126*rf + 0.7152*gf + 0.0722*bf
}

// gammaCorrect applies sRGB gamma decoding to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according
// to WCAG 2.0. Returns a value between 1 and 21, where 21 is maximum
// contrast (black vs white). Symmetric in its arguments.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef
func ContrastRatio(a, b RGB) float64 {
	l1 := Luminance(a)
	l2 := Luminance(b)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// LevelForRatio classifies a contrast ratio: AAA at 7:1, AA at 4.5:1,
// FAIL below that.
func LevelForRatio(ratio float64) WCAGLevel {
	switch {
	case ratio >= ThresholdAAA:
		return LevelAAA
	case ratio >= ThresholdAA:
		return LevelAA
	default:
		return LevelFail
	}
}

// IsTextReadable reports whether foreground text on the given background
// meets or exceeds the required WCAG level.
func IsTextReadable(fg, bg RGB, required WCAGLevel) bool {
	return LevelForRatio(ContrastRatio(fg, bg)).Meets(required)
}

// ContrastCheck records the contrast relationship between two colours.
// It is always derived via CheckContrast and never mutated afterwards.
type ContrastCheck struct {
	Color1   string    `json:"color1"`
	Color2   string    `json:"color2"`
	Ratio    float64   `json:"ratio"`
	Level    WCAGLevel `json:"level"`
	Readable bool      `json:"readable"`
}

// CheckContrast computes the contrast ratio between two colours and
// classifies it against the WCAG thresholds. Readable means the pair is
// usable for normal text at AA or better.
func CheckContrast(a, b Color) ContrastCheck {
	ratio := ContrastRatio(a.RGB, b.RGB)
	level := LevelForRatio(ratio)
	return ContrastCheck{
		Color1:   a.Hex,
		Color2:   b.Hex,
		Ratio:    ratio,
		Level:    level,
		Readable: level.Meets(LevelAA),
	}
}
