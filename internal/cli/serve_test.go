package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/dataplot/pkg/pipeline"
)

func TestRenderPNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.log")
	if err := os.WriteFile(path, []byte("1 2\n2 4\n3 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := pipeline.Defaults()
	opts.Files = []string{path}
	opts.XCol = 0
	opts.YCol = 1
	opts.FigW = 4
	opts.FigH = 3

	data, err := renderPNG(context.Background(), pipeline.NewRunner(nil), opts)
	if err != nil {
		t.Fatalf("renderPNG: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("renderPNG did not produce a PNG")
	}
}

func TestRenderPNGMissingInput(t *testing.T) {
	opts := pipeline.Defaults()
	opts.Files = []string{filepath.Join(t.TempDir(), "absent.log")}

	if _, err := renderPNG(context.Background(), pipeline.NewRunner(nil), opts); err == nil {
		t.Error("renderPNG should fail when the input is missing")
	}
}
