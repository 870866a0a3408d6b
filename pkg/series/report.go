package series

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Summary holds simple aggregates of a series' Y values.
type Summary struct {
	Count  int
	Min    float64
	Max    float64
	Sum    float64
	Mean   float64
	Median float64
	StdDev float64
}

// Summarize computes a Summary of s's Y values.
// An empty series is an error; there is nothing to aggregate.
func Summarize(s Series) (Summary, error) {
	ys := s.Ys()
	if len(ys) == 0 {
		return Summary{}, fmt.Errorf("series %q has no points", s.Name)
	}

	data := stats.Float64Data(ys)
	min, err := data.Min()
	if err != nil {
		return Summary{}, err
	}
	max, err := data.Max()
	if err != nil {
		return Summary{}, err
	}
	sum, err := data.Sum()
	if err != nil {
		return Summary{}, err
	}
	mean, err := data.Mean()
	if err != nil {
		return Summary{}, err
	}
	median, err := data.Median()
	if err != nil {
		return Summary{}, err
	}
	stddev, err := data.StandardDeviation()
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Count:  len(ys),
		Min:    min,
		Max:    max,
		Sum:    sum,
		Mean:   mean,
		Median: median,
		StdDev: stddev,
	}, nil
}

// High returns the points of s whose Y value is strictly greater than
// threshold, in point order. The series itself is not modified.
func High(s Series, threshold float64) []Point {
	var out []Point
	for _, p := range s.Points {
		if p.Y > threshold {
			out = append(out, p)
		}
	}
	return out
}
