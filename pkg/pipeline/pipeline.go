// Package pipeline wires extraction, transforms, and rendering into the
// single pass executed per invocation.
//
// The pipeline is a straight line: for each input file, read lines, filter,
// extract numeric tokens, select X/Y columns, apply the configured
// transforms, and collect one series. At the end the accumulated series are
// composed into a chart and written out.
package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dataplot/pkg/errors"
	"github.com/matzehuels/dataplot/pkg/extract"
	"github.com/matzehuels/dataplot/pkg/observability"
	"github.com/matzehuels/dataplot/pkg/render"
	"github.com/matzehuels/dataplot/pkg/series"
)

// FileReport carries the side-channel output for one input file: the points
// above the --print-high threshold and, when requested, the Y statistics.
type FileReport struct {
	Name    string
	Skipped int
	High    []series.Point
	Summary *series.Summary
}

// Result is the outcome of a pipeline run.
type Result struct {
	Series  []series.Series
	Reports []FileReport
}

// Runner executes the pipeline. It is stateless apart from the logger;
// one Runner can serve many runs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a Runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Collect runs extraction and transforms over all input files and returns
// the resulting series without rendering anything. A file that cannot be
// read aborts the run.
func (r *Runner) Collect(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	filter, err := extract.NewFilter(opts.Filter)
	if err != nil {
		return nil, err
	}
	tok, err := extract.NewTokenizer(opts.NumRegex)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, path := range opts.Files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s, report, err := r.processFile(ctx, path, filter, tok, opts)
		if err != nil {
			return nil, err
		}
		result.Series = append(result.Series, s)
		result.Reports = append(result.Reports, report)
	}
	return result, nil
}

// Run executes the full pipeline: collect all series, compose the chart,
// and write the output image.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	result, err := r.Collect(ctx, opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Outfile, len(result.Series))

	p, err := render.Compose(result.Series, renderOptions(opts))
	if err == nil {
		err = render.WriteFile(p, renderOptions(opts), opts.Outfile)
	}
	observability.Pipeline().OnRenderComplete(ctx, opts.Outfile, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.Logger.Info("wrote chart",
		"out", opts.Outfile,
		"series", len(result.Series),
		"duration", time.Since(start).Round(time.Millisecond))
	return result, nil
}

// processFile extracts and transforms one file's series.
func (r *Runner) processFile(ctx context.Context, path string, filter *extract.Filter, tok *extract.Tokenizer, opts Options) (series.Series, FileReport, error) {
	start := time.Now()
	observability.Pipeline().OnFileStart(ctx, path)

	s, skipped, err := r.extractFile(path, filter, tok, opts)
	observability.Pipeline().OnFileComplete(ctx, path, len(s.Points), skipped, time.Since(start), err)
	if err != nil {
		return series.Series{}, FileReport{}, err
	}

	r.Logger.Debug("extracted series",
		"file", path,
		"points", len(s.Points),
		"skipped", skipped)

	s = series.DivideX(s, opts.XDiv)
	if opts.Sort {
		s = series.SortY(s)
	}

	report := FileReport{Name: path, Skipped: skipped}
	if opts.PrintHigh != 0 {
		report.High = series.High(s, opts.PrintHigh)
	}
	if opts.PrintStats {
		if sum, err := series.Summarize(s); err == nil {
			report.Summary = &sum
		} else {
			r.Logger.Warn("no statistics", "file", path, "err", err)
		}
	}

	// Histogram replaces the point list; reports above refer to the raw
	// Y values, so binning happens last.
	if opts.HistBin > 0 {
		s, err = series.Bin(s, opts.HistBin)
		if err != nil {
			return series.Series{}, FileReport{}, err
		}
	}
	return s, report, nil
}

// extractFile scans one file into a series.
func (r *Runner) extractFile(path string, filter *extract.Filter, tok *extract.Tokenizer, opts Options) (series.Series, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return series.Series{}, 0, errors.Wrap(errors.ErrCodeFileRead, err, "read %s", path)
	}
	defer f.Close()

	b := series.NewBuilder(path, opts.XCol, opts.YCol)
	sc := extract.NewScanner(f, filter, tok)
	for sc.Scan() {
		rec := sc.Record()
		if opts.Verbosity >= 2 {
			r.Logger.Debug("tokens", "file", path, "line", rec.Ord, "values", rec.Tokens)
		}
		if !b.Add(rec) {
			r.Logger.Debug("ignoring short line", "file", path, "text", rec.Line)
		}
	}
	if err := sc.Err(); err != nil {
		return series.Series{}, 0, errors.Wrap(errors.ErrCodeFileRead, err, "read %s", path)
	}
	return b.Series(), b.Skipped(), nil
}

// renderOptions projects pipeline options onto the renderer's options.
func renderOptions(o Options) render.Options {
	return render.Options{
		Colors:   o.Colors,
		Shapes:   o.Shapes,
		AddStyle: o.AddStyle,
		Legend:   o.Legend,
		XLog:     o.XLog,
		YLog:     o.YLog,
		YMin:     o.YMin,
		YMax:     o.YMax,
		Bar:      o.Bar,
		Alpha:    o.Alpha,
		Width:    o.FigW,
		Height:   o.FigH,
	}
}

// Encode renders the collected series to an in-memory image in the given
// format. Used by the HTTP preview mode.
func Encode(result *Result, opts Options, format string) ([]byte, error) {
	p, err := render.Compose(result.Series, renderOptions(opts))
	if err != nil {
		return nil, err
	}
	return render.Encode(p, renderOptions(opts), format)
}
