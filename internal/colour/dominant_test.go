package colour

import (
	"image"
	"image/color"
	"testing"
)

// quadrantImage builds a size x size test image divided into four solid
// quadrants.
func quadrantImage(size int, topLeft, topRight, bottomLeft, bottomRight color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	half := size / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			switch {
			case x < half && y < half:
				img.SetRGBA(x, y, topLeft)
			case x >= half && y < half:
				img.SetRGBA(x, y, topRight)
			case x < half:
				img.SetRGBA(x, y, bottomLeft)
			default:
				img.SetRGBA(x, y, bottomRight)
			}
		}
	}
	return img
}

func solidImage(size int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestExtractDominantQuadrants(t *testing.T) {
	img := quadrantImage(40,
		color.RGBA{R: 255, A: 255},
		color.RGBA{G: 255, A: 255},
		color.RGBA{B: 255, A: 255},
		color.RGBA{R: 255, G: 255, A: 255},
	)

	opts := DefaultSampleOptions()
	opts.Quality = 1
	extractor := NewDominantExtractor(opts)

	result, err := extractor.ExtractDominant(img, 8)
	if err != nil {
		t.Fatalf("ExtractDominant error: %v", err)
	}

	if len(result.DominantColors) != 4 {
		t.Fatalf("got %d dominant colours, want 4 (primaries must not merge)", len(result.DominantColors))
	}

	// Each quadrant contributes exactly a quarter of the pixels.
	for _, ec := range result.DominantColors {
		if ec.Frequency != 400 {
			t.Errorf("colour %s frequency = %d, want 400", ec.Color.Hex, ec.Frequency)
		}
	}

	found := make(map[string]bool)
	for _, ec := range result.DominantColors {
		found[ec.Color.Hex] = true
	}
	for _, want := range []string{"#ff0000", "#00ff00", "#0000ff", "#ffff00"} {
		if !found[want] {
			t.Errorf("dominant colours missing %s (got %v)", want, result.DominantColors)
		}
	}

	// Frequency-weighted average of the four primaries.
	if result.AverageColor.Hex != "#808040" {
		t.Errorf("AverageColor = %s, want #808040", result.AverageColor.Hex)
	}
}

func TestExtractDominantTransparentImage(t *testing.T) {
	img := solidImage(16, color.RGBA{R: 200, G: 100, B: 50, A: 0})

	opts := DefaultSampleOptions()
	opts.Quality = 1
	result, err := NewDominantExtractor(opts).ExtractDominant(img, 5)
	if err != nil {
		t.Fatalf("ExtractDominant error: %v", err)
	}

	if len(result.DominantColors) != 0 {
		t.Errorf("got %d dominant colours from a transparent image, want 0", len(result.DominantColors))
	}
	// Mid-grey sentinel, not a division by zero.
	if result.AverageColor.Hex != "#808080" {
		t.Errorf("AverageColor = %s, want #808080", result.AverageColor.Hex)
	}
}

func TestExtractDominantSkipsBackgroundPixels(t *testing.T) {
	// White canvas with a red band; near-white exclusion should leave only
	// the red cluster.
	img := solidImage(20, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	for y := 0; y < 20; y++ {
		for x := 0; x < 5; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}

	opts := DefaultSampleOptions()
	opts.Quality = 1
	result, err := NewDominantExtractor(opts).ExtractDominant(img, 5)
	if err != nil {
		t.Fatalf("ExtractDominant error: %v", err)
	}

	if len(result.DominantColors) != 1 {
		t.Fatalf("got %d dominant colours, want 1 (white canvas excluded)", len(result.DominantColors))
	}
	if result.DominantColors[0].Color.Hex != "#c81e1e" {
		t.Errorf("dominant colour = %s, want #c81e1e", result.DominantColors[0].Color.Hex)
	}
}

func TestExtractDominantMergesCloseColors(t *testing.T) {
	// Two barely different greens must fold into one frequency-weighted
	// cluster rather than bucketing by exact value.
	img := quadrantImage(20,
		color.RGBA{R: 40, G: 160, B: 60, A: 255},
		color.RGBA{R: 44, G: 164, B: 64, A: 255},
		color.RGBA{R: 40, G: 160, B: 60, A: 255},
		color.RGBA{R: 44, G: 164, B: 64, A: 255},
	)

	opts := DefaultSampleOptions()
	opts.Quality = 1
	result, err := NewDominantExtractor(opts).ExtractDominant(img, 5)
	if err != nil {
		t.Fatalf("ExtractDominant error: %v", err)
	}

	if len(result.DominantColors) != 1 {
		t.Fatalf("got %d clusters, want 1 merged cluster", len(result.DominantColors))
	}

	merged := result.DominantColors[0]
	if merged.Frequency != 400 {
		t.Errorf("merged frequency = %d, want 400", merged.Frequency)
	}
	// Equal weights: the representative is the midpoint.
	if merged.Color.Hex != "#2aa23e" {
		t.Errorf("merged colour = %s, want #2aa23e", merged.Color.Hex)
	}
}

func TestExtractDominantStrideReducesSamples(t *testing.T) {
	img := solidImage(30, color.RGBA{R: 60, G: 90, B: 120, A: 255})

	full := DefaultSampleOptions()
	full.Quality = 1
	strided := DefaultSampleOptions()
	strided.Quality = 9

	fullResult, err := NewDominantExtractor(full).ExtractDominant(img, 3)
	if err != nil {
		t.Fatalf("ExtractDominant error: %v", err)
	}
	stridedResult, err := NewDominantExtractor(strided).ExtractDominant(img, 3)
	if err != nil {
		t.Fatalf("ExtractDominant error: %v", err)
	}

	if fullResult.SampledPixels != 900 {
		t.Errorf("full sampling visited %d pixels, want 900", fullResult.SampledPixels)
	}
	if stridedResult.SampledPixels != 100 {
		t.Errorf("stride 9 visited %d pixels, want 100", stridedResult.SampledPixels)
	}

	// Same solid colour either way.
	if stridedResult.DominantColors[0].Color.Hex != "#3c5a78" {
		t.Errorf("strided dominant = %s, want #3c5a78", stridedResult.DominantColors[0].Color.Hex)
	}
}

func TestExtractDominantRanksByFrequency(t *testing.T) {
	// Three quarters blue, one quarter orange.
	img := quadrantImage(40,
		color.RGBA{R: 30, G: 60, B: 200, A: 255},
		color.RGBA{R: 30, G: 60, B: 200, A: 255},
		color.RGBA{R: 30, G: 60, B: 200, A: 255},
		color.RGBA{R: 230, G: 140, B: 20, A: 255},
	)

	opts := DefaultSampleOptions()
	opts.Quality = 1
	result, err := NewDominantExtractor(opts).ExtractDominant(img, 2)
	if err != nil {
		t.Fatalf("ExtractDominant error: %v", err)
	}

	if len(result.DominantColors) != 2 {
		t.Fatalf("got %d clusters, want 2", len(result.DominantColors))
	}
	if result.DominantColors[0].Color.Hex != "#1e3cc8" {
		t.Errorf("top colour = %s, want #1e3cc8", result.DominantColors[0].Color.Hex)
	}
	if result.DominantColors[0].Frequency <= result.DominantColors[1].Frequency {
		t.Errorf("frequencies not descending: %d then %d",
			result.DominantColors[0].Frequency, result.DominantColors[1].Frequency)
	}
}

func TestExtractDominantInvalidInput(t *testing.T) {
	opts := DefaultSampleOptions()
	extractor := NewDominantExtractor(opts)

	if _, err := extractor.ExtractDominant(nil, 5); err == nil {
		t.Error("expected error for nil image")
	}

	img := solidImage(4, color.RGBA{R: 10, G: 200, B: 10, A: 255})
	if _, err := extractor.ExtractDominant(img, 0); err == nil {
		t.Error("expected error for zero colour count")
	}
	if _, err := extractor.ExtractDominant(img, 257); err == nil {
		t.Error("expected error for colour count above 256")
	}

	bad := SampleOptions{Quality: 0}
	if _, err := NewDominantExtractor(bad).ExtractDominant(img, 5); err == nil {
		t.Error("expected error for invalid quality")
	}
}
