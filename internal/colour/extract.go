package colour

import (
	"fmt"
	"image"
)

// Extractor defines the interface for colour extraction algorithms.
type Extractor interface {
	// Extract extracts a colour palette from an image.
	// The count parameter specifies the number of colours to extract.
	Extract(img image.Image, count int) (*Palette, error)
}

// Algorithm represents the colour extraction algorithm type.
type Algorithm string

const (
	// AlgorithmDominant extracts the most frequent colours using a
	// quantised histogram with perceptual merging.
	AlgorithmDominant Algorithm = "dominant"

	// AlgorithmKMeans uses k-means clustering for colour extraction.
	AlgorithmKMeans Algorithm = "kmeans"
)

// ValidAlgorithms returns a list of valid algorithm names.
func ValidAlgorithms() []Algorithm {
	return []Algorithm{AlgorithmDominant, AlgorithmKMeans}
}

// IsValidAlgorithm checks if the given algorithm name is valid.
func IsValidAlgorithm(alg Algorithm) bool {
	for _, valid := range ValidAlgorithms() {
		if alg == valid {
			return true
		}
	}
	return false
}

// NewExtractor creates a new Extractor based on the specified algorithm.
func NewExtractor(alg Algorithm) (Extractor, error) {
	switch alg {
	case AlgorithmDominant:
		return NewDominantExtractor(DefaultSampleOptions()), nil
	case AlgorithmKMeans:
		return NewKMeansExtractor(), nil
	default:
		return nil, fmt.Errorf("unknown algorithm: %s (valid algorithms: %v)", alg, ValidAlgorithms())
	}
}

// ExtractorConfig holds configuration for colour extraction.
type ExtractorConfig struct {
	Algorithm  Algorithm
	ColorCount int
}

// DefaultExtractorConfig returns the default extractor configuration.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		Algorithm:  AlgorithmDominant,
		ColorCount: 8,
	}
}

// Validate validates the extractor configuration.
func (c ExtractorConfig) Validate() error {
	if !IsValidAlgorithm(c.Algorithm) {
		return fmt.Errorf("invalid algorithm: %s", c.Algorithm)
	}
	if c.ColorCount < 1 {
		return fmt.Errorf("colour count must be at least 1, got %d", c.ColorCount)
	}
	if c.ColorCount > 256 {
		return fmt.Errorf("colour count too large: %d (maximum: 256)", c.ColorCount)
	}
	return nil
}

// SampleOptions controls pixel sampling for extraction. The zero value is
// not useful; start from DefaultSampleOptions.
type SampleOptions struct {
	// Quality is the sampling stride: 1 visits every pixel, n visits
	// every nth pixel. A speed/accuracy trade-off, not a correctness knob.
	Quality int

	// AlphaThreshold is the minimum alpha (0-255) for a pixel to count
	// as visible.
	AlphaThreshold uint8

	// SkipNearWhite excludes pixels with all channels at or above 246,
	// which are usually canvas background rather than palette content.
	SkipNearWhite bool

	// SkipNearBlack excludes pixels with all channels at or below 8.
	SkipNearBlack bool
}

// DefaultSampleOptions returns the default sampling configuration.
// Near-white and near-black exclusion are both enabled by default.
func DefaultSampleOptions() SampleOptions {
	return SampleOptions{
		Quality:        10,
		AlphaThreshold: 125,
		SkipNearWhite:  true,
		SkipNearBlack:  true,
	}
}

// Validate checks the sampling configuration.
func (o SampleOptions) Validate() error {
	if o.Quality < 1 {
		return fmt.Errorf("quality must be at least 1, got %d", o.Quality)
	}
	if o.Quality > 100 {
		return fmt.Errorf("quality too large: %d (maximum: 100)", o.Quality)
	}
	return nil
}

const (
	nearWhiteFloor = 246
	nearBlackCeil  = 8
)

// samplePixels walks the image in scanline order at the configured stride
// and returns the qualifying pixels as 8-bit RGB values. Transparent and
// (optionally) near-white/near-black pixels are skipped.
func samplePixels(img image.Image, opts SampleOptions) []RGB {
	bounds := img.Bounds()
	stride := opts.Quality
	if stride < 1 {
		stride = 1
	}

	var pixels []RGB
	index := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			index++
			if (index-1)%stride != 0 {
				continue
			}

			r16, g16, b16, a16 := img.At(x, y).RGBA()
			if uint8(a16>>8) < opts.AlphaThreshold {
				continue
			}

			r := uint8(r16 >> 8)
			g := uint8(g16 >> 8)
			b := uint8(b16 >> 8)

			if opts.SkipNearWhite && r >= nearWhiteFloor && g >= nearWhiteFloor && b >= nearWhiteFloor {
				continue
			}
			if opts.SkipNearBlack && r <= nearBlackCeil && g <= nearBlackCeil && b <= nearBlackCeil {
				continue
			}

			pixels = append(pixels, RGB{R: r, G: g, B: b})
		}
	}

	return pixels
}
