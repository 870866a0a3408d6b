package pipeline

import (
	"github.com/matzehuels/dataplot/pkg/errors"
	"github.com/matzehuels/dataplot/pkg/extract"
)

// Options is the full configuration of one pipeline run. It is assembled
// once at startup (flags layered over config-file defaults) and treated as
// read-only afterwards.
type Options struct {
	Files   []string // input files, one series each
	Outfile string   // output image path; format from extension

	// Extraction
	XCol     int    // token index for X, -1 = row index
	YCol     int    // token index for Y
	Filter   string // line filter regex; empty = all lines
	NumRegex string // number pattern; empty = extract.DefaultNumberPattern

	// Transforms
	XDiv    float64 // divide X values by this
	Sort    bool    // sort Y ascending, X becomes rank
	HistBin float64 // histogram bin width; 0 = disabled

	// Style
	Colors   string
	Shapes   string
	AddStyle string
	Legend   string
	XLog     bool
	YLog     bool
	YMin     float64
	YMax     float64
	Bar      bool
	Alpha    float64
	FigW     float64 // inches at 100 dpi
	FigH     float64

	// Reports
	PrintHigh  float64 // print points with Y above this; 0 = disabled
	PrintStats bool

	Verbosity int // 0 info, 1 debug, 2+ adds per-line token dumps
}

// Defaults returns the documented default configuration.
func Defaults() Options {
	return Options{
		Outfile: "out.png",
		XCol:    -1,
		YCol:    1,
		XDiv:    1,
		Colors:  "rbyg",
		Shapes:  "o",
		Legend:  "upper left",
		Alpha:   1,
		FigW:    15,
		FigH:    5,
	}
}

// Validate checks the configuration before any file is opened, so that
// usage errors never leave a partial output behind.
func (o *Options) Validate() error {
	if len(o.Files) == 0 {
		return errors.New(errors.ErrCodeUsage, "no input files given")
	}
	if o.YCol < 0 {
		return errors.New(errors.ErrCodeUsage, "--ycol must be >= 0, got %d", o.YCol)
	}
	if o.XCol < -1 {
		return errors.New(errors.ErrCodeUsage, "--xcol must be >= -1, got %d", o.XCol)
	}
	if o.XDiv == 0 {
		return errors.New(errors.ErrCodeUsage, "--xdiv must be non-zero")
	}
	if o.HistBin < 0 {
		return errors.New(errors.ErrCodeUsage, "--hist bin size must be positive, got %g", o.HistBin)
	}
	if o.Alpha <= 0 || o.Alpha > 1 {
		return errors.New(errors.ErrCodeUsage, "--alpha must be in (0, 1], got %g", o.Alpha)
	}
	if o.FigW <= 0 || o.FigH <= 0 {
		return errors.New(errors.ErrCodeUsage, "figure dimensions must be positive, got %gx%g", o.FigW, o.FigH)
	}
	if o.Colors == "" {
		return errors.New(errors.ErrCodeUsage, "--colors must not be empty")
	}
	if o.Shapes == "" {
		return errors.New(errors.ErrCodeUsage, "--shapes must not be empty")
	}

	// Compile patterns early; a broken regex is a usage error.
	if _, err := extract.NewFilter(o.Filter); err != nil {
		return err
	}
	if _, err := extract.NewTokenizer(o.NumRegex); err != nil {
		return err
	}
	return nil
}
