// Package render composes data series into a chart and encodes it.
//
// It is the adapter between the extraction pipeline and gonum/plot: series
// come in as plain (x, y) values plus style strings, and out comes a file
// (format inferred from the extension) or an in-memory image for the HTTP
// preview mode.
package render

import (
	"bytes"
	"fmt"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/dataplot/pkg/errors"
	"github.com/matzehuels/dataplot/pkg/series"
)

// Options control chart composition. Style strings are cycled when there
// are more series than characters.
type Options struct {
	Colors   string  // one color code per series
	Shapes   string  // one marker code per series
	AddStyle string  // extra line style applied to all series
	Legend   string  // legend position, e.g. "upper left"
	XLog     bool    // logarithmic X axis
	YLog     bool    // logarithmic Y axis
	YMin     float64 // explicit Y range; both zero = automatic
	YMax     float64
	Bar      bool    // draw bars instead of markers
	Alpha    float64 // opacity in (0, 1]
	Width    float64 // figure width in inches
	Height   float64 // figure height in inches
}

// barWidth is the total horizontal space shared by the bars of one record
// position across all series.
const barWidth = vg.Length(12)

// Compose builds a chart from the given series.
// Style or legend strings that do not parse are configuration errors.
func Compose(list []series.Series, opts Options) (*plot.Plot, error) {
	p := plot.New()

	anchor, err := parseLegend(opts.Legend)
	if err != nil {
		return nil, err
	}
	p.Legend.Top = anchor.top
	p.Legend.Left = anchor.left

	if opts.XLog || opts.YLog {
		if err := checkLogScale(list, opts); err != nil {
			return nil, err
		}
	}
	if opts.XLog {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	if opts.YLog {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	if opts.YMin != 0 || opts.YMax != 0 {
		p.Y.Min = opts.YMin
		p.Y.Max = opts.YMax
	}

	if opts.Bar {
		if err := addBars(p, list, opts); err != nil {
			return nil, err
		}
		return p, nil
	}

	for i, s := range list {
		if err := addSeries(p, s, i, opts); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// checkLogScale rejects data a log axis cannot draw. gonum/plot panics on
// non-positive values at save time; surfacing them here names the series
// instead. Note the row-index fallback starts at X = 0, which --xlog can
// never plot.
func checkLogScale(list []series.Series, opts Options) error {
	for _, s := range list {
		for _, pt := range s.Points {
			if opts.XLog && pt.X <= 0 {
				return errors.New(errors.ErrCodeUsage,
					"series %q: X value %g is not positive; --xlog needs an X column with positive values", s.Name, pt.X)
			}
			if opts.YLog && pt.Y <= 0 {
				return errors.New(errors.ErrCodeUsage,
					"series %q: Y value %g is not positive; --ylog needs positive values", s.Name, pt.Y)
			}
		}
	}
	return nil
}

// addSeries adds one series as markers, optionally with a connecting line.
func addSeries(p *plot.Plot, s series.Series, i int, opts Options) error {
	col, err := colorAt(opts.Colors, i, opts.Alpha)
	if err != nil {
		return err
	}
	gl, err := glyphAt(opts.Shapes, i)
	if err != nil {
		return err
	}
	dashes, withLine, err := dashesFor(opts.AddStyle)
	if err != nil {
		return err
	}

	xys := make(plotter.XYs, len(s.Points))
	for j, pt := range s.Points {
		xys[j].X = pt.X
		xys[j].Y = pt.Y
	}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("series %q: %w", s.Name, err)
	}
	scatter.GlyphStyle.Color = col
	scatter.GlyphStyle.Shape = gl.shape
	scatter.GlyphStyle.Radius = gl.radius
	p.Add(scatter)

	if !withLine {
		p.Legend.Add(s.Name, scatter)
		return nil
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("series %q: %w", s.Name, err)
	}
	line.LineStyle.Color = col
	line.LineStyle.Dashes = dashes
	p.Add(line)
	p.Legend.Add(s.Name, line, scatter)
	return nil
}

// addBars renders every series as a grouped bar chart. Bars are placed by
// record position; the X tick labels come from the X values of the longest
// series, so histogram output labels bars with bucket centers.
func addBars(p *plot.Plot, list []series.Series, opts Options) error {
	w := barWidth / vg.Length(max(len(list), 1))

	var labels []string
	for i, s := range list {
		col, err := colorAt(opts.Colors, i, opts.Alpha)
		if err != nil {
			return err
		}

		bars, err := plotter.NewBarChart(plotter.Values(s.Ys()), w)
		if err != nil {
			return fmt.Errorf("series %q: %w", s.Name, err)
		}
		bars.Color = col
		bars.LineStyle.Width = 0
		bars.Offset = w*vg.Length(i) - barWidth/2
		p.Add(bars)
		p.Legend.Add(s.Name, bars)

		if len(s.Points) > len(labels) {
			labels = labels[:0]
			for _, pt := range s.Points {
				labels = append(labels, strconv.FormatFloat(pt.X, 'g', -1, 64))
			}
		}
	}
	p.NominalX(labels...)
	return nil
}

// WriteFile saves the chart to path, inferring the image format from the
// file extension (.png, .svg, .pdf, .jpg and friends). Unsupported
// extensions and unwritable paths surface as errors.
func WriteFile(p *plot.Plot, opts Options, path string) error {
	w := vg.Length(opts.Width) * vg.Inch
	h := vg.Length(opts.Height) * vg.Inch
	if err := p.Save(w, h, path); err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "write %s", path)
	}
	return nil
}

// Encode renders the chart to bytes in the given format ("png", "svg", ...).
func Encode(p *plot.Plot, opts Options, format string) ([]byte, error) {
	w := vg.Length(opts.Width) * vg.Inch
	h := vg.Length(opts.Height) * vg.Inch
	wt, err := p.WriterTo(w, h, format)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "encode %s", format)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "encode %s", format)
	}
	return buf.Bytes(), nil
}
