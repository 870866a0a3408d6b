package series

import (
	"math"
	"sort"
	"testing"
)

func fromYs(ys []float64) Series {
	s := Series{Name: "test"}
	for i, y := range ys {
		s.Points = append(s.Points, Point{X: float64(i), Y: y})
	}
	return s
}

func TestDivideX(t *testing.T) {
	s := Series{Points: []Point{{X: 10, Y: 1}, {X: 20, Y: 2}, {X: 30, Y: 3}}}
	got := DivideX(s, 10)

	wantX := []float64{1, 2, 3}
	for i, p := range got.Points {
		if p.X != wantX[i] {
			t.Errorf("point %d: X = %v, want %v", i, p.X, wantX[i])
		}
	}

	// Original untouched.
	if s.Points[0].X != 10 {
		t.Errorf("DivideX mutated its input: X = %v", s.Points[0].X)
	}
}

func TestDivideXByOneIsIdentity(t *testing.T) {
	s := Series{Points: []Point{{X: 7, Y: 1}}}
	got := DivideX(s, 1)
	if got.Points[0].X != 7 {
		t.Errorf("X = %v, want 7", got.Points[0].X)
	}
}

func TestSortY(t *testing.T) {
	s := fromYs([]float64{3.5, 1.2, 2.9, 0.4})
	got := SortY(s)

	if !sort.SliceIsSorted(got.Points, func(i, j int) bool {
		return got.Points[i].Y < got.Points[j].Y
	}) {
		t.Errorf("Y values not ascending: %+v", got.Points)
	}
	for i, p := range got.Points {
		if p.X != float64(i) {
			t.Errorf("point %d: X = %v, want rank %d", i, p.X, i)
		}
	}
	// Input order preserved.
	if s.Points[0].Y != 3.5 {
		t.Errorf("SortY mutated its input: Y = %v", s.Points[0].Y)
	}
}

func TestBin(t *testing.T) {
	s := fromYs([]float64{0.2, 0.9, 1.1, 1.8})
	got, err := Bin(s, 1.0)
	if err != nil {
		t.Fatalf("Bin: %v", err)
	}

	want := []Point{{X: 0.5, Y: 2}, {X: 1.5, Y: 2}}
	if len(got.Points) != len(want) {
		t.Fatalf("got %d buckets, want %d: %+v", len(got.Points), len(want), got.Points)
	}
	for i, p := range got.Points {
		if math.Abs(p.X-want[i].X) > 1e-12 || p.Y != want[i].Y {
			t.Errorf("bucket %d = (%v, %v), want (%v, %v)", i, p.X, p.Y, want[i].X, want[i].Y)
		}
	}
}

func TestBinCountsSumToInput(t *testing.T) {
	ys := []float64{-2.5, -0.1, 0, 0.5, 1.9, 2, 7.25, 7.3}
	got, err := Bin(fromYs(ys), 0.5)
	if err != nil {
		t.Fatalf("Bin: %v", err)
	}

	var total float64
	for _, p := range got.Points {
		total += p.Y
	}
	if int(total) != len(ys) {
		t.Errorf("bucket counts sum to %v, want %d", total, len(ys))
	}
}

func TestBinIncludesEmptyBuckets(t *testing.T) {
	got, err := Bin(fromYs([]float64{0.5, 2.5}), 1.0)
	if err != nil {
		t.Fatalf("Bin: %v", err)
	}

	want := []Point{{X: 0.5, Y: 1}, {X: 1.5, Y: 0}, {X: 2.5, Y: 1}}
	if len(got.Points) != len(want) {
		t.Fatalf("got %d buckets, want %d", len(got.Points), len(want))
	}
	for i, p := range got.Points {
		if math.Abs(p.X-want[i].X) > 1e-12 || p.Y != want[i].Y {
			t.Errorf("bucket %d = (%v, %v), want (%v, %v)", i, p.X, p.Y, want[i].X, want[i].Y)
		}
	}
}

func TestBinEdgeValueGoesRight(t *testing.T) {
	// Buckets are half-open: a Y exactly on an edge belongs to the bucket
	// to its right.
	got, err := Bin(fromYs([]float64{1.0}), 1.0)
	if err != nil {
		t.Fatalf("Bin: %v", err)
	}
	if len(got.Points) != 1 || got.Points[0].X != 1.5 {
		t.Errorf("got %+v, want single bucket centered at 1.5", got.Points)
	}
}

func TestBinRejectsExcessiveSpan(t *testing.T) {
	tests := []struct {
		name  string
		ys    []float64
		width float64
	}{
		{"extreme outlier", []float64{0.5, 1e300}, 1.0},
		{"single extreme value", []float64{1e300}, 1.0},
		{"tiny width over wide range", []float64{0, 1e9}, 1e-6},
		{"nan value", []float64{0.5, math.NaN()}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Bin(fromYs(tt.ys), tt.width); err == nil {
				t.Error("Bin should reject a bucket span beyond the limit")
			}
		})
	}
}

func TestBinRejectsNonPositiveWidth(t *testing.T) {
	for _, w := range []float64{0, -1} {
		if _, err := Bin(fromYs([]float64{1}), w); err == nil {
			t.Errorf("Bin(width=%v) should fail", w)
		}
	}
}

func TestBinEmptySeries(t *testing.T) {
	got, err := Bin(Series{Name: "empty"}, 1.0)
	if err != nil {
		t.Fatalf("Bin: %v", err)
	}
	if len(got.Points) != 0 {
		t.Errorf("got %d buckets, want 0", len(got.Points))
	}
}
