package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dataplot/pkg/pipeline"
)

func TestAddPlotFlagsDefaults(t *testing.T) {
	opts := pipeline.Defaults()
	cmd := &cobra.Command{Use: "test"}
	addPlotFlags(cmd, &opts)

	tests := []struct {
		flag string
		want string
	}{
		{"xcol", "-1"},
		{"ycol", "1"},
		{"colors", "rbyg"},
		{"shapes", "o"},
		{"legend", "upper left"},
		{"xdiv", "1"},
		{"alpha", "1"},
		{"fig-width", "15"},
		{"fig-height", "5"},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			f := cmd.Flags().Lookup(tt.flag)
			if f == nil {
				t.Fatalf("flag --%s not registered", tt.flag)
			}
			if f.DefValue != tt.want {
				t.Errorf("--%s default = %q, want %q", tt.flag, f.DefValue, tt.want)
			}
		})
	}
}

func TestAddPlotFlagsWriteThrough(t *testing.T) {
	opts := pipeline.Defaults()
	cmd := &cobra.Command{Use: "test"}
	addPlotFlags(cmd, &opts)

	if err := cmd.Flags().Parse([]string{"-x", "2", "-y", "4", "--sort", "--hist", "0.5"}); err != nil {
		t.Fatal(err)
	}

	if opts.XCol != 2 {
		t.Errorf("XCol = %d, want 2", opts.XCol)
	}
	if opts.YCol != 4 {
		t.Errorf("YCol = %d, want 4", opts.YCol)
	}
	if !opts.Sort {
		t.Error("Sort should be set")
	}
	if opts.HistBin != 0.5 {
		t.Errorf("HistBin = %v, want 0.5", opts.HistBin)
	}
}

func TestApplyConfigLayersUnderFlags(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "dataplot"), 0o755); err != nil {
		t.Fatal(err)
	}
	content := "colors = \"kcm\"\nlegend = \"lower right\"\n"
	if err := os.WriteFile(filepath.Join(dir, "dataplot", "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := pipeline.Defaults()
	cmd := &cobra.Command{Use: "test"}
	addPlotFlags(cmd, &opts)
	if err := cmd.Flags().Parse([]string{"--legend", "upper right"}); err != nil {
		t.Fatal(err)
	}

	if err := applyConfig(cmd, &opts); err != nil {
		t.Fatalf("applyConfig: %v", err)
	}

	if opts.Colors != "kcm" {
		t.Errorf("Colors = %q, want config value kcm", opts.Colors)
	}
	if opts.Legend != "upper right" {
		t.Errorf("Legend = %q, want flag value to win", opts.Legend)
	}
}

func TestApplyConfigMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	opts := pipeline.Defaults()
	cmd := &cobra.Command{Use: "test"}
	addPlotFlags(cmd, &opts)

	if err := applyConfig(cmd, &opts); err != nil {
		t.Errorf("applyConfig with no config file: %v", err)
	}
	if opts.Colors != "rbyg" {
		t.Errorf("Colors = %q, want untouched default", opts.Colors)
	}
}
