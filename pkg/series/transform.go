package series

import (
	"math"
	"sort"

	"github.com/matzehuels/dataplot/pkg/errors"
)

// maxBuckets caps how many histogram buckets Bin will emit, occupied or
// not. The limit is far beyond anything a chart can show.
const maxBuckets = 1 << 20

// DivideX returns a copy of s with every X value divided by div.
// A divisor of 1 returns s unchanged.
func DivideX(s Series, div float64) Series {
	if div == 1 {
		return s
	}
	points := make([]Point, len(s.Points))
	for i, p := range s.Points {
		p.X /= div
		points[i] = p
	}
	return Series{Name: s.Name, Points: points}
}

// SortY returns a copy of s with points ordered by ascending Y and X
// replaced by the new rank (0-based). The original X-Y pairing is
// discarded, so sorting only makes sense when no explicit X column is in
// use; the order among equal Y values is preserved.
func SortY(s Series) Series {
	points := make([]Point, len(s.Points))
	copy(points, s.Points)
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Y < points[j].Y
	})
	for i := range points {
		points[i].X = float64(i)
	}
	return Series{Name: s.Name, Points: points}
}

// Bin replaces s with a histogram of its Y values.
//
// Bucket i covers the half-open interval [i*width, (i+1)*width); a value
// lands in the bucket whose left edge is floor(y/width)*width. Emitted
// points run contiguously from the lowest to the highest occupied bucket,
// including empty buckets in between, with X the bucket center and Y the
// occupancy count. The counts always sum to len(s.Points). A Y range that
// would span more than maxBuckets buckets is rejected.
func Bin(s Series, width float64) (Series, error) {
	if width <= 0 {
		return Series{}, errors.New(errors.ErrCodeUsage, "histogram bin width must be positive, got %g", width)
	}
	if len(s.Points) == 0 {
		return Series{Name: s.Name}, nil
	}

	// Check the occupied span in float space first: a huge Y value or a
	// tiny width would overflow the int conversion and allocate without
	// bound below.
	loF, hiF := math.Inf(1), math.Inf(-1)
	for _, p := range s.Points {
		i := math.Floor(p.Y / width)
		loF = math.Min(loF, i)
		hiF = math.Max(hiF, i)
	}
	if span := hiF - loF + 1; !(span <= maxBuckets) {
		return Series{}, errors.New(errors.ErrCodeUsage,
			"histogram would need %g buckets of width %g (limit %d); pick a larger bin size", span, width, maxBuckets)
	}
	// A lone extreme value keeps the span small but puts the bucket index
	// beyond what int can hold.
	if !(math.Abs(loF) <= math.MaxInt32 && math.Abs(hiF) <= math.MaxInt32) {
		return Series{}, errors.New(errors.ErrCodeUsage,
			"histogram bucket index out of range for bin size %g; pick a larger one", width)
	}

	counts := make(map[int]int)
	lo, hi := int(loF), int(hiF)
	for _, p := range s.Points {
		counts[int(math.Floor(p.Y/width))]++
	}

	points := make([]Point, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		center := (float64(i) + 0.5) * width
		points = append(points, Point{X: center, Y: float64(counts[i])})
	}
	return Series{Name: s.Name, Points: points}, nil
}
