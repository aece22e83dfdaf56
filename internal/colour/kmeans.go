package colour

import (
	"fmt"
	"image"
	"math"
	"math/rand"
)

// KMeansExtractor implements colour extraction using k-means clustering.
// It is an alternative to the dominant-colour extractor for images where
// frequency ranking over-represents large flat regions.
type KMeansExtractor struct {
	maxIterations int
	convergence   float64
	opts          SampleOptions
}

// NewKMeansExtractor creates a KMeansExtractor with default settings.
func NewKMeansExtractor() *KMeansExtractor {
	return &KMeansExtractor{
		maxIterations: 20,
		convergence:   2.0,
		opts:          DefaultSampleOptions(),
	}
}

// Extract extracts colours from an image using k-means clustering.
func (e *KMeansExtractor) Extract(img image.Image, count int) (*Palette, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if count < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", count)
	}
	if count > 256 {
		return nil, fmt.Errorf("colour count too large: %d (maximum: 256)", count)
	}

	pixels := samplePixels(img, e.opts)
	if len(pixels) == 0 {
		return NewPalette([]Color{}), nil
	}

	// Collect unique colours; if the request exceeds what the image has,
	// return them all without clustering.
	seen := make(map[RGB]bool)
	unique := make([]RGB, 0, len(pixels))
	for _, p := range pixels {
		if !seen[p] {
			seen[p] = true
			unique = append(unique, p)
		}
	}
	if count >= len(unique) {
		colors := make([]Color, len(unique))
		for i, rgb := range unique {
			colors[i] = NewColorFromRGB(rgb)
		}
		return NewPalette(colors), nil
	}

	centroids := e.cluster(pixels, count)

	colors := make([]Color, len(centroids))
	for i, c := range centroids {
		colors[i] = NewColorFromRGB(RGB{
			R: uint8(math.Round(c.r)),
			G: uint8(math.Round(c.g)),
			B: uint8(math.Round(c.b)),
		})
	}
	return NewPalette(colors), nil
}

// centroid is a point in RGB space.
type centroid struct {
	r, g, b float64
}

func (c centroid) distance(other centroid) float64 {
	dr := c.r - other.r
	dg := c.g - other.g
	db := c.b - other.b
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func toCentroid(rgb RGB) centroid {
	return centroid{r: float64(rgb.R), g: float64(rgb.G), b: float64(rgb.B)}
}

// cluster runs k-means over the sampled pixels and returns the final
// centroid positions.
func (e *KMeansExtractor) cluster(pixels []RGB, k int) []centroid {
	points := make([]centroid, len(pixels))
	for i, p := range pixels {
		points[i] = toCentroid(p)
	}

	centroids := initialCentroids(points, k)
	assignments := make([]int, len(points))

	for iter := 0; iter < e.maxIterations; iter++ {
		changed := 0
		for i, point := range points {
			nearest := nearestCentroid(point, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}

		// Converged when under 1% of assignments moved.
		if float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		next := recalculate(points, assignments, k)

		totalMovement := 0.0
		for i := range centroids {
			totalMovement += centroids[i].distance(next[i])
		}
		centroids = next

		if totalMovement/float64(k) < e.convergence {
			break
		}
	}

	return centroids
}

// initialCentroids seeds clustering with k-means++: each subsequent
// centroid is drawn with probability proportional to its squared distance
// from the nearest existing centroid.
func initialCentroids(points []centroid, k int) []centroid {
	if len(points) == 0 || k == 0 {
		return []centroid{}
	}

	centroids := make([]centroid, 0, k)
	centroids = append(centroids, points[rand.Intn(len(points))])

	for len(centroids) < k {
		distances := make([]float64, len(points))
		total := 0.0
		for i, point := range points {
			minDist := math.MaxFloat64
			for _, c := range centroids {
				if d := point.distance(c); d < minDist {
					minDist = d
				}
			}
			distances[i] = minDist * minDist
			total += distances[i]
		}

		if total == 0 {
			// Remaining points coincide with existing centroids; nudge a
			// duplicate so the requested count is still met.
			last := centroids[len(centroids)-1]
			centroids = append(centroids, centroid{r: last.r + 0.1, g: last.g + 0.1, b: last.b + 0.1})
			continue
		}

		target := rand.Float64() * total
		cumulative := 0.0
		for i, d := range distances {
			cumulative += d
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}

	return centroids
}

func nearestCentroid(point centroid, centroids []centroid) int {
	minDist := math.MaxFloat64
	nearest := 0
	for i, c := range centroids {
		if d := point.distance(c); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

func recalculate(points []centroid, assignments []int, k int) []centroid {
	sums := make([]centroid, k)
	counts := make([]int, k)

	for i, point := range points {
		c := assignments[i]
		sums[c].r += point.r
		sums[c].g += point.g
		sums[c].b += point.b
		counts[c]++
	}

	centroids := make([]centroid, k)
	for i := range k {
		if counts[i] > 0 {
			centroids[i] = centroid{
				r: sums[i].r / float64(counts[i]),
				g: sums[i].g / float64(counts[i]),
				b: sums[i].b / float64(counts[i]),
			}
		} else {
			// Empty cluster: reseed from a random point.
			centroids[i] = points[rand.Intn(len(points))]
		}
	}
	return centroids
}
