// Package cli implements the dataplot command-line interface.
//
// The root command is the whole tool: it extracts numeric series from the
// given logfiles and renders them as a chart. A serve subcommand exposes
// the same pipeline as a live HTTP preview, and completion generates shell
// completions.
//
// # Logging
//
// All commands support --verbose (-v, repeatable) for debug-level logging.
// Loggers are passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dataplot/pkg/buildinfo"
	"github.com/matzehuels/dataplot/pkg/config"
	"github.com/matzehuels/dataplot/pkg/pipeline"
)

// Execute runs the dataplot CLI with the given base context and returns an
// error if any command fails.
func Execute(ctx context.Context) error {
	var verbosity int

	opts := pipeline.Defaults()
	root := &cobra.Command{
		Use:   "dataplot [flags] FILES...",
		Short: "Plot numeric series extracted from text logfiles",
		Long: `dataplot extracts numeric series from free-form text logfiles and renders
them as a chart. Each input file becomes one series: lines are optionally
filtered by regex, numbers are pulled out of each line, X and Y columns are
selected, and the result is drawn to an image (format inferred from the
output extension).`,
		Example: `  # RTT over time from a ping log (Y defaults to the second number per line)
  dataplot -f "icmp_seq" -y 3 ping.log

  # Two files as sorted latency curves
  dataplot --sort -a - server1.log server2.log

  # Latency distribution as a bar histogram
  dataplot --hist 0.5 --bar -y 3 ping.log`,
		Version:       buildinfo.Version,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true, // main prints the user-facing message once
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbosity > 0 {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfig(cmd, &opts); err != nil {
				return err
			}
			opts.Files = args
			opts.Verbosity = verbosity
			return runPlot(cmd.Context(), opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase logging verbosity (repeatable)")
	addPlotFlags(root, &opts)
	root.Flags().StringVarP(&opts.Outfile, "outfile", "o", opts.Outfile,
		"output image; PNG, JPG, SVG, PDF and others, chosen by extension")

	root.AddCommand(newServeCmd(&verbosity))
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}

// addPlotFlags registers the extraction, transform, and style flags shared
// by the root and serve commands. The flags write through to opts.
func addPlotFlags(cmd *cobra.Command, opts *pipeline.Options) {
	f := cmd.Flags()

	f.IntVarP(&opts.XCol, "xcol", "x", opts.XCol, "X column index (0-based); -1 = row index")
	f.IntVarP(&opts.YCol, "ycol", "y", opts.YCol, "Y column index (0-based); use -v to inspect columns first")
	f.StringVarP(&opts.Filter, "filter", "f", opts.Filter, "only use lines matching this regex")
	f.StringVar(&opts.NumRegex, "num-regex", opts.NumRegex, "pattern for numeric tokens (default matches decimal/scientific literals)")

	f.Float64Var(&opts.XDiv, "xdiv", opts.XDiv, "divide X values by N")
	f.BoolVar(&opts.Sort, "sort", opts.Sort, "sort Y values; only makes sense without --xcol")
	f.Float64Var(&opts.HistBin, "hist", opts.HistBin, "plot a histogram of Y values with the given bin size")

	f.StringVarP(&opts.Colors, "colors", "c", opts.Colors, "colors, one character per series (try rbyg)")
	f.StringVarP(&opts.Shapes, "shapes", "s", opts.Shapes, "dot shapes (try oO.,+x)")
	f.StringVarP(&opts.AddStyle, "addstyle", "a", opts.AddStyle, "additional style for all series (use -a - to add lines)")
	f.StringVar(&opts.Legend, "legend", opts.Legend, "legend position (e.g. \"upper left\")")
	f.BoolVar(&opts.XLog, "xlog", opts.XLog, "use logscale for X")
	f.BoolVar(&opts.YLog, "ylog", opts.YLog, "use logscale for Y")
	f.Float64Var(&opts.YMin, "ymin", opts.YMin, "set Y range minimum")
	f.Float64Var(&opts.YMax, "ymax", opts.YMax, "set Y range maximum")
	f.BoolVar(&opts.Bar, "bar", opts.Bar, "draw bars instead of markers")
	f.Float64Var(&opts.Alpha, "alpha", opts.Alpha, "marker opacity in (0, 1]")
	f.Float64Var(&opts.FigW, "fig-width", opts.FigW, "width of output image in inches at 100 dpi")
	f.Float64Var(&opts.FigH, "fig-height", opts.FigH, "height of output image in inches at 100 dpi")

	f.Float64Var(&opts.PrintHigh, "print-high", opts.PrintHigh, "print lines with Y values higher than N")
	f.BoolVar(&opts.PrintStats, "print-stats", opts.PrintStats, "print statistics of all Y values per series")
}

// applyConfig layers config-file defaults under the flags the user did not
// set. A missing config file is fine; an unparseable one aborts the run.
func applyConfig(cmd *cobra.Command, opts *pipeline.Options) error {
	path, err := config.Path()
	if err != nil {
		return nil // no home directory, no config
	}
	file, err := config.Load(path)
	if err != nil {
		return err
	}
	file.Apply(opts, cmd.Flags().Changed)
	return nil
}
