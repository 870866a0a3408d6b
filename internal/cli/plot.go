package cli

import (
	"context"
	"fmt"

	"github.com/matzehuels/dataplot/pkg/pipeline"
)

// runPlot executes the extraction-and-plot pipeline and prints the
// requested reports.
func runPlot(ctx context.Context, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner := pipeline.NewRunner(logger)
	result, err := runner.Run(ctx, opts)
	if err != nil {
		return err
	}

	printReports(result, opts)

	var points int
	for _, s := range result.Series {
		points += len(s.Points)
	}
	prog.done(fmt.Sprintf("Plotted %d file(s), %d points → %s", len(result.Series), points, opts.Outfile))
	return nil
}

// printReports writes the high-value and statistics reports to stdout.
// Logs go to stderr, so report output survives shell redirection.
func printReports(result *pipeline.Result, opts pipeline.Options) {
	for _, rep := range result.Reports {
		if opts.PrintHigh != 0 && len(rep.High) > 0 {
			printHigh(rep.Name, rep.High, opts.PrintHigh)
		}
		if rep.Summary != nil {
			printStats(rep.Name, *rep.Summary)
		}
	}
}
