package series

import (
	"testing"

	"github.com/matzehuels/dataplot/pkg/extract"
)

func TestBuilderColumnSelection(t *testing.T) {
	// Tokens for "time=12.3 seq=4 ttl=64 rtt=0.534".
	rec := extract.Record{Ord: 0, Line: "time=12.3 seq=4 ttl=64 rtt=0.534", Tokens: []float64{12.3, 4, 64, 0.534}}

	b := NewBuilder("ping.log", 1, 3)
	if !b.Add(rec) {
		t.Fatal("Add should accept a record with enough tokens")
	}

	s := b.Series()
	if len(s.Points) != 1 {
		t.Fatalf("got %d points, want 1", len(s.Points))
	}
	if s.Points[0].X != 4 {
		t.Errorf("X = %v, want 4", s.Points[0].X)
	}
	if s.Points[0].Y != 0.534 {
		t.Errorf("Y = %v, want 0.534", s.Points[0].Y)
	}
	if s.Points[0].Line != rec.Line {
		t.Errorf("Line = %q, want %q", s.Points[0].Line, rec.Line)
	}
}

func TestBuilderRowIndexFallback(t *testing.T) {
	b := NewBuilder("f", -1, 0)
	for i := 0; i < 3; i++ {
		b.Add(extract.Record{Ord: i, Tokens: []float64{float64(10 + i)}})
	}

	s := b.Series()
	wantX := []float64{0, 1, 2}
	if len(s.Points) != 3 {
		t.Fatalf("got %d points, want 3", len(s.Points))
	}
	for i, p := range s.Points {
		if p.X != wantX[i] {
			t.Errorf("point %d: X = %v, want %v", i, p.X, wantX[i])
		}
	}
}

func TestBuilderRowIndexSkipsLeaveNoGaps(t *testing.T) {
	// A tokenless line between good ones still consumes a scanner ordinal;
	// the fallback X must stay dense regardless.
	b := NewBuilder("f", -1, 0)
	b.Add(extract.Record{Ord: 0, Tokens: []float64{10}})
	b.Add(extract.Record{Ord: 1, Line: "nope here", Tokens: nil})
	b.Add(extract.Record{Ord: 2, Tokens: []float64{20}})
	b.Add(extract.Record{Ord: 3, Tokens: []float64{30}})

	s := b.Series()
	wantX := []float64{0, 1, 2}
	if len(s.Points) != 3 {
		t.Fatalf("got %d points, want 3", len(s.Points))
	}
	for i, p := range s.Points {
		if p.X != wantX[i] {
			t.Errorf("point %d: X = %v, want %v", i, p.X, wantX[i])
		}
	}
	if b.Skipped() != 1 {
		t.Errorf("Skipped = %d, want 1", b.Skipped())
	}
}

func TestBuilderSkipsShortRecords(t *testing.T) {
	tests := []struct {
		name   string
		xcol   int
		ycol   int
		tokens []float64
		want   bool
	}{
		{"exactly enough for ycol", -1, 1, []float64{1, 2}, true},
		{"one short of ycol", -1, 2, []float64{1, 2}, false},
		{"exactly enough for xcol", 2, 0, []float64{1, 2, 3}, true},
		{"one short of xcol", 3, 0, []float64{1, 2, 3}, false},
		{"empty token list", -1, 0, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder("f", tt.xcol, tt.ycol)
			got := b.Add(extract.Record{Tokens: tt.tokens})
			if got != tt.want {
				t.Errorf("Add = %v, want %v", got, tt.want)
			}
			wantSkipped := 0
			if !tt.want {
				wantSkipped = 1
			}
			if b.Skipped() != wantSkipped {
				t.Errorf("Skipped = %d, want %d", b.Skipped(), wantSkipped)
			}
		})
	}
}
