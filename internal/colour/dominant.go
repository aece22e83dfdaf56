package colour

import (
	"fmt"
	"image"
	"math"
	"sort"
)

// mergeThreshold is the perceptual distance below which two sampled
// colours fold into the same cluster. Tunable heuristic, not a
// standardised colour-difference formula.
const mergeThreshold = 60.0

// ExtractedColor is a colour candidate with the number of sampled pixels
// that produced it. Frequency and the running RGB average change only
// during the clustering merge pass; the value is immutable afterwards.
type ExtractedColor struct {
	Color     Color `json:"color"`
	Frequency int   `json:"frequency"`
}

// ExtractionResult holds the outcome of dominant colour extraction.
type ExtractionResult struct {
	DominantColors []ExtractedColor `json:"dominantColors"`
	AverageColor   Color            `json:"averageColor"`
	SampledPixels  int              `json:"sampledPixels"`
}

// DominantExtractor extracts the most frequent colours from an image by
// building a histogram of exact 8-bit values and merging perceptually
// close entries.
type DominantExtractor struct {
	opts SampleOptions
}

// NewDominantExtractor creates a DominantExtractor with the given sampling
// options.
func NewDominantExtractor(opts SampleOptions) *DominantExtractor {
	return &DominantExtractor{opts: opts}
}

// Extract implements the Extractor interface, returning the top colours as
// a plain palette.
func (e *DominantExtractor) Extract(img image.Image, count int) (*Palette, error) {
	result, err := e.ExtractDominant(img, count)
	if err != nil {
		return nil, err
	}

	colors := make([]Color, len(result.DominantColors))
	for i, ec := range result.DominantColors {
		colors[i] = ec.Color
	}
	return NewPalette(colors), nil
}

// ExtractDominant samples the image, accumulates a frequency histogram,
// merges perceptually close colours and returns the top count clusters by
// frequency together with their frequency-weighted average colour.
//
// An image with zero qualifying pixels (fully transparent, or everything
// excluded by the sampling options) is a defined degenerate result: an
// empty dominant list and a mid-grey average colour.
func (e *DominantExtractor) ExtractDominant(img image.Image, count int) (*ExtractionResult, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if count < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", count)
	}
	if count > 256 {
		return nil, fmt.Errorf("colour count too large: %d (maximum: 256)", count)
	}
	if err := e.opts.Validate(); err != nil {
		return nil, err
	}

	pixels := samplePixels(img, e.opts)
	if len(pixels) == 0 {
		// Mid-grey sentinel rather than a division by zero.
		return &ExtractionResult{
			DominantColors: []ExtractedColor{},
			AverageColor:   NewColorFromRGB(RGB{R: 128, G: 128, B: 128}),
		}, nil
	}

	clusters := mergeClusters(histogram(pixels))

	// Sort descending by frequency. Stable so ties keep discovery order.
	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].freq > clusters[j].freq
	})
	if len(clusters) > count {
		clusters = clusters[:count]
	}

	result := &ExtractionResult{
		DominantColors: make([]ExtractedColor, len(clusters)),
		SampledPixels:  len(pixels),
	}

	var rSum, gSum, bSum, total float64
	for i, cl := range clusters {
		rgb := cl.average()
		result.DominantColors[i] = ExtractedColor{
			Color:     NewColorFromRGB(rgb),
			Frequency: cl.freq,
		}

		w := float64(cl.freq)
		rSum += float64(rgb.R) * w
		gSum += float64(rgb.G) * w
		bSum += float64(rgb.B) * w
		total += w
	}

	result.AverageColor = NewColorFromRGB(RGB{
		R: uint8(math.Round(rSum / total)),
		G: uint8(math.Round(gSum / total)),
		B: uint8(math.Round(bSum / total)),
	})

	return result, nil
}

// histogramEntry is a quantised colour with its pixel count, kept in
// discovery order.
type histogramEntry struct {
	rgb  RGB
	freq int
}

// histogram counts exact 8-bit colour occurrences, preserving the order in
// which colours were first seen.
func histogram(pixels []RGB) []histogramEntry {
	counts := make(map[RGB]int, len(pixels))
	order := make([]RGB, 0, 64)
	for _, p := range pixels {
		if counts[p] == 0 {
			order = append(order, p)
		}
		counts[p]++
	}

	entries := make([]histogramEntry, len(order))
	for i, rgb := range order {
		entries[i] = histogramEntry{rgb: rgb, freq: counts[rgb]}
	}
	return entries
}

// cluster accumulates perceptually close colours. The representative is
// the frequency-weighted running average of everything merged in.
type cluster struct {
	rSum, gSum, bSum float64
	freq             int
}

func (c *cluster) absorb(rgb RGB, freq int) {
	w := float64(freq)
	c.rSum += float64(rgb.R) * w
	c.gSum += float64(rgb.G) * w
	c.bSum += float64(rgb.B) * w
	c.freq += freq
}

func (c *cluster) average() RGB {
	w := float64(c.freq)
	return RGB{
		R: uint8(math.Round(c.rSum / w)),
		G: uint8(math.Round(c.gSum / w)),
		B: uint8(math.Round(c.bSum / w)),
	}
}

// mergeClusters folds histogram entries into clusters. Entries are visited
// in discovery order; each is merged into the first existing cluster whose
// running average is perceptually close, or starts a new cluster.
func mergeClusters(entries []histogramEntry) []*cluster {
	var clusters []*cluster

	for _, entry := range entries {
		merged := false
		for _, cl := range clusters {
			if perceptualDistance(cl.average(), entry.rgb) < mergeThreshold {
				cl.absorb(entry.rgb, entry.freq)
				merged = true
				break
			}
		}
		if !merged {
			cl := &cluster{}
			cl.absorb(entry.rgb, entry.freq)
			clusters = append(clusters, cl)
		}
	}

	return clusters
}

// perceptualDistance is a redmean-weighted Euclidean distance: channel
// weights shift with the mean red value to cheaply approximate perceptual
// difference across the sRGB gamut.
func perceptualDistance(a, b RGB) float64 {
	rMean := (float64(a.R) + float64(b.R)) / 2.0
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)

	wr := 2.0 + rMean/256.0
	wg := 4.0
	wb := 2.0 + (255.0-rMean)/256.0

	return math.Sqrt(wr*dr*dr + wg*dg*dg + wb*db*db)
}
