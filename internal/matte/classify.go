package matte

import (
	"image"
	"slices"

	"github.com/muesli/clusters"
	"gonum.org/v1/gonum/floats"

	"github.com/ironsheep/sprite-tools/internal/imaging"
)

// Background holds the two checkerboard tones, ordered by luminance.
type Background struct {
	Dark  imaging.RGB `json:"dark"`
	Light imaging.RGB `json:"light"`
}

// DefaultBackground is returned when no grey-like pixels can be sampled.
var DefaultBackground = Background{
	Dark:  imaging.RGB{80, 80, 80},
	Light: imaging.RGB{110, 110, 110},
}

// Nearest returns the tone closer to c and the distance to it.
// Ties go to the dark tone.
func (b Background) Nearest(c imaging.RGB) (imaging.RGB, float64) {
	d1 := c.Distance(b.Dark)
	d2 := c.Distance(b.Light)
	if d1 <= d2 {
		return b.Dark, d1
	}
	return b.Light, d2
}

const (
	greyMaxSpread = 10

	// Mid greys first; dark borders would otherwise dominate the sample.
	greyLumLo = 60.0
	greyLumHi = 210.0

	// Widened range used when the first pass samples too little.
	greyWideLumLo = 35.0
	greyWideLumHi = 220.0

	minSampleShare = 0.08

	histogramBits  = 6
	minSeedSpacing = 10.0
	seedShift      = 24.0

	maxIterations   = 12
	minClusterShare = 0.01
	maxClusterShare = 0.99
	convergeDelta   = 0.5
)

// ClassifyBackground finds the two checkerboard tones used in a composite.
//
// Grey-like pixels (channel spread <= 10, luminance in [60,210], widened to
// [35,220] when fewer than 8% of pixels qualify) are sampled. The two most
// frequent, sufficiently distinct colours of a 6-bit histogram seed a 2-means
// refinement of at most 12 iterations, which stops early when a cluster holds
// under 1% or over 99% of the samples or when neither centroid moves by 0.5.
func ClassifyBackground(img *image.NRGBA) Background {
	b := img.Bounds()
	total := b.Dx() * b.Dy()

	exact, n := greySamples(img, greyLumLo, greyLumHi)
	if n == 0 || float64(n) < minSampleShare*float64(total) {
		exact, n = greySamples(img, greyWideLumLo, greyWideLumHi)
	}
	if n == 0 {
		debugf("background: no grey samples, using defaults")
		return DefaultBackground
	}

	obs := weightedObservations(exact)
	seed1, seed2 := histogramSeeds(obs)
	c1, c2 := refine(obs, float64(n), seed1, seed2)

	dark := imaging.RGB{c1[0], c1[1], c1[2]}
	light := imaging.RGB{c2[0], c2[1], c2[2]}
	if dark.Luminance() > light.Luminance() {
		dark, light = light, dark
	}
	debugf("background: %d samples, dark=%s light=%s", n, dark.Hex(), light.Hex())
	return Background{Dark: dark, Light: light}
}

// greySamples counts the exact colours of grey-like pixels.
func greySamples(img *image.NRGBA, lumLo, lumHi float64) (map[[3]uint8]int, int) {
	b := img.Bounds()
	counts := make(map[[3]uint8]int)
	n := 0
	for y := 0; y < b.Dy(); y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < b.Dx(); x++ {
			r, g, bl := row[x*4], row[x*4+1], row[x*4+2]
			if imaging.Spread(r, g, bl) > greyMaxSpread {
				continue
			}
			lum := imaging.Luminance(r, g, bl)
			if lum < lumLo || lum > lumHi {
				continue
			}
			counts[[3]uint8{r, g, bl}]++
			n++
		}
	}
	return counts, n
}

// sample is one distinct colour weighted by how many pixels carry it.
// Clustering distinct colours with weights gives the same centroids as
// clustering every pixel, at a fraction of the cost.
type sample struct {
	key    [3]uint8
	coords clusters.Coordinates
	weight float64
}

// Coordinates implements clusters.Observation.
func (s sample) Coordinates() clusters.Coordinates {
	return s.coords
}

// Distance implements clusters.Observation (squared Euclidean distance).
func (s sample) Distance(point clusters.Coordinates) float64 {
	return s.coords.Distance(point)
}

// weightedObservations converts colour counts into observations in a fixed
// order so the floating point sums are reproducible.
func weightedObservations(counts map[[3]uint8]int) []sample {
	out := make([]sample, 0, len(counts))
	for key, n := range counts {
		out = append(out, sample{
			key:    key,
			coords: clusters.Coordinates{float64(key[0]), float64(key[1]), float64(key[2])},
			weight: float64(n),
		})
	}
	slices.SortFunc(out, func(a, b sample) int {
		return compareKeys(a.key, b.key)
	})
	return out
}

// histogramSeeds picks the two starting centroids from a quantised histogram.
func histogramSeeds(obs []sample) ([]float64, []float64) {
	type bucket struct {
		key   [3]uint8
		count float64
	}
	hist := make(map[[3]uint8]float64)
	for _, o := range obs {
		q := [3]uint8{
			imaging.Quantize(o.key[0], histogramBits),
			imaging.Quantize(o.key[1], histogramBits),
			imaging.Quantize(o.key[2], histogramBits),
		}
		hist[q] += o.weight
	}
	buckets := make([]bucket, 0, len(hist))
	for k, c := range hist {
		buckets = append(buckets, bucket{key: k, count: c})
	}
	slices.SortFunc(buckets, func(a, b bucket) int {
		if a.count != b.count {
			if a.count > b.count {
				return -1
			}
			return 1
		}
		return compareKeys(a.key, b.key)
	})

	toVec := func(k [3]uint8) []float64 {
		return []float64{float64(k[0]), float64(k[1]), float64(k[2])}
	}

	seed1 := toVec(buckets[0].key)
	for _, bk := range buckets[1:] {
		c := toVec(bk.key)
		if floats.Distance(c, seed1, 2) >= minSeedSpacing {
			return seed1, c
		}
	}
	seed2 := make([]float64, 3)
	copy(seed2, seed1)
	floats.AddConst(seedShift, seed2)
	return seed1, seed2
}

// refine runs the bounded 2-means loop.
func refine(obs []sample, total float64, c1, c2 []float64) ([]float64, []float64) {
	points := make(clusters.Observations, len(obs))
	for i, o := range obs {
		points[i] = o
	}

	for iter := 0; iter < maxIterations; iter++ {
		cc := clusters.Clusters{
			{Center: clusters.Coordinates(c1)},
			{Center: clusters.Coordinates(c2)},
		}
		for _, p := range points {
			cc[cc.Nearest(p)].Append(p)
		}

		share := weightOf(cc[0].Observations) / total
		if share < minClusterShare || share > maxClusterShare {
			debugf("background: cluster imbalance %.3f after %d iterations", share, iter)
			break
		}

		nc1 := weightedCenter(cc[0].Observations)
		nc2 := weightedCenter(cc[1].Observations)
		converged := floats.Distance(nc1, c1, 2) < convergeDelta &&
			floats.Distance(nc2, c2, 2) < convergeDelta
		c1, c2 = nc1, nc2
		if converged {
			debugf("background: converged after %d iterations", iter+1)
			break
		}
	}
	return c1, c2
}

func weightOf(obs clusters.Observations) float64 {
	w := 0.0
	for _, o := range obs {
		w += o.(sample).weight
	}
	return w
}

// weightedCenter returns the weighted mean of a non-empty cluster.
func weightedCenter(obs clusters.Observations) []float64 {
	sum := make([]float64, 3)
	w := 0.0
	for _, o := range obs {
		s := o.(sample)
		floats.AddScaled(sum, s.weight, s.coords)
		w += s.weight
	}
	floats.Scale(1/w, sum)
	return sum
}

func compareKeys(a, b [3]uint8) int {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}
	return 0
}
