// Package series builds and transforms named (x, y) data series.
//
// One series is produced per input file. The Builder consumes extraction
// records and applies the column-selection rules; the transform functions
// ([DivideX], [SortY], [Bin]) reshape a built series and the report helpers
// ([Summarize], [High]) derive side-channel output without altering it.
package series

import "github.com/matzehuels/dataplot/pkg/extract"

// Point is a single plotted value. Line keeps the source line so reports
// can show context for notable values.
type Point struct {
	X    float64
	Y    float64
	Line string
}

// Series is one file's plotted data.
type Series struct {
	Name   string
	Points []Point
}

// Builder assembles a Series from extraction records.
//
// Column indices are 0-based into the record's token list. An X column of
// -1 selects the point's position in the series instead (the row-index
// fallback), counting from 0 per file.
// Records with too few tokens for the configured columns are skipped, not
// errors; the skip count is available via Skipped.
type Builder struct {
	name    string
	xcol    int
	ycol    int
	points  []Point
	skipped int
}

// NewBuilder creates a Builder for a series with the given name and
// column configuration.
func NewBuilder(name string, xcol, ycol int) *Builder {
	return &Builder{name: name, xcol: xcol, ycol: ycol}
}

// Add consumes one record. It returns false when the record was skipped
// because its token list is too short for the configured columns.
// The boundary case of exactly enough tokens succeeds.
func (b *Builder) Add(rec extract.Record) bool {
	need := b.ycol + 1
	if b.xcol >= 0 && b.xcol+1 > need {
		need = b.xcol + 1
	}
	if len(rec.Tokens) < need {
		b.skipped++
		return false
	}

	// The row-index fallback counts plotted points, not scanned lines,
	// so skipped records leave no gaps in X.
	x := float64(len(b.points))
	if b.xcol >= 0 {
		x = rec.Tokens[b.xcol]
	}
	b.points = append(b.points, Point{X: x, Y: rec.Tokens[b.ycol], Line: rec.Line})
	return true
}

// Skipped returns the number of records dropped for lacking tokens.
func (b *Builder) Skipped() int {
	return b.skipped
}

// Series returns the assembled series.
func (b *Builder) Series() Series {
	return Series{Name: b.name, Points: b.points}
}

// Xs returns the X values of s in point order.
func (s Series) Xs() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.X
	}
	return out
}

// Ys returns the Y values of s in point order.
func (s Series) Ys() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Y
	}
	return out
}
