package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dataplot/pkg/pipeline"
)

// shutdownTimeout bounds graceful server shutdown on SIGINT.
const shutdownTimeout = 5 * time.Second

// newServeCmd creates the serve command: a live HTTP preview that re-runs
// the extraction pipeline on every request, so refreshing the browser
// re-plots growing logfiles.
func newServeCmd(verbosity *int) *cobra.Command {
	opts := pipeline.Defaults()
	var listen string

	cmd := &cobra.Command{
		Use:   "serve [flags] FILES...",
		Short: "Serve a live-updating plot over HTTP",
		Long: `serve starts an HTTP server that extracts and plots the input files anew
on every request. Useful for watching logfiles that are still growing:
refresh the browser and the chart catches up.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfig(cmd, &opts); err != nil {
				return err
			}
			opts.Files = args
			opts.Verbosity = *verbosity
			if err := opts.Validate(); err != nil {
				return err
			}
			return runServe(cmd.Context(), opts, listen)
		},
	}

	addPlotFlags(cmd, &opts)
	cmd.Flags().StringVar(&listen, "listen", ":8080", "address to listen on")

	return cmd
}

// runServe blocks serving the preview until ctx is canceled.
func runServe(ctx context.Context, opts pipeline.Options, listen string) error {
	logger := loggerFromContext(ctx)
	runner := pipeline.NewRunner(logger)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, indexPage, opts.Outfile)
	})
	r.Get("/plot.png", func(w http.ResponseWriter, req *http.Request) {
		data, err := renderPNG(req.Context(), runner, opts)
		if err != nil {
			logger.Error("render failed", "err", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		if _, err := w.Write(data); err != nil {
			logger.Debug("client went away", "err", err)
		}
	})

	srv := &http.Server{Addr: listen, Handler: r}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	logger.Info("serving live plot", "addr", listen, "files", len(opts.Files))

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}

// renderPNG runs the pipeline and encodes the chart in memory.
func renderPNG(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options) ([]byte, error) {
	result, err := runner.Collect(ctx, opts)
	if err != nil {
		// A file that vanished mid-serve is a request error, not fatal.
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("input disappeared: %w", err)
		}
		return nil, err
	}
	return pipeline.Encode(result, opts, "png")
}

// indexPage embeds the chart and refreshes it periodically.
const indexPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="5">
<title>dataplot — %s</title>
<style>body { margin: 1rem; font-family: sans-serif; } img { max-width: 100%%; }</style>
</head>
<body>
<img src="/plot.png" alt="plot">
</body>
</html>
`
