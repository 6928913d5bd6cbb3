package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/opencode-ai/namuplot/internal/render"
	"github.com/opencode-ai/namuplot/themes"
	"github.com/spf13/cobra"
)

var (
	examplesOut    string
	examplesFormat string
	examplesWidth  int
	examplesHeight int
	examplesKinds  []string
)

func init() {
	rootCmd.AddCommand(examplesCmd)

	examplesCmd.Flags().StringVarP(&examplesOut, "out", "o", "", "output directory (default from config)")
	examplesCmd.Flags().StringVar(&examplesFormat, "format", "", "image format: png or svg (default from config)")
	examplesCmd.Flags().IntVar(&examplesWidth, "width", 0, "image width in pixels (default from config)")
	examplesCmd.Flags().IntVar(&examplesHeight, "height", 0, "image height in pixels (default from config)")
	examplesCmd.Flags().StringSliceVar(&examplesKinds, "kind", nil, "chart kinds to render (line, bar, swatch)")
}

var examplesCmd = &cobra.Command{
	Use:   "examples [theme...]",
	Short: "Render example charts for each theme",
	Long: `Render example charts for each theme.

Every selected theme is applied in turn and a line chart, a bar chart and a
palette swatch are written to <out>/<theme>/. A manifest.json describing the
run is written to <out>. Without theme names every available theme is used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}
		opts, err := examplesOptionsFromFlags(args)
		if err != nil {
			return err
		}
		return runExamples(cmd.Context(), cmd.OutOrStdout(), reg, opts)
	},
}

type examplesRun struct {
	render.Options
	render.ExamplesOptions
}

func examplesOptionsFromFlags(names []string) (examplesRun, error) {
	cfg := GetConfig().Render

	run := examplesRun{
		Options: render.Options{
			Width:  cfg.Width,
			Height: cfg.Height,
		},
		ExamplesOptions: render.ExamplesOptions{
			OutDir: cfg.OutDir,
			Names:  names,
		},
	}

	format := cfg.Format
	if examplesFormat != "" {
		format = examplesFormat
	}
	parsed, err := render.ParseFormat(strings.ToLower(format))
	if err != nil {
		return examplesRun{}, err
	}
	run.Format = parsed

	if examplesOut != "" {
		run.OutDir = examplesOut
	}
	if examplesWidth > 0 {
		run.Width = examplesWidth
	}
	if examplesHeight > 0 {
		run.Height = examplesHeight
	}

	for _, k := range examplesKinds {
		kind, err := parseKind(k)
		if err != nil {
			return examplesRun{}, err
		}
		run.Kinds = append(run.Kinds, kind)
	}
	return run, nil
}

func parseKind(s string) (render.Kind, error) {
	for _, kind := range render.Kinds() {
		if string(kind) == strings.ToLower(strings.TrimSpace(s)) {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unknown chart kind %q", s)
}

func runExamples(ctx context.Context, out io.Writer, reg *themes.Registry, run examplesRun) error {
	if ctx == nil {
		ctx = context.Background()
	}
	renderer, err := render.New(run.Options)
	if err != nil {
		return err
	}

	report := startProgress(fmt.Sprintf("Rendering examples to %s", run.OutDir))
	opts := run.ExamplesOptions
	opts.OnTheme = func(entry render.ManifestTheme) {
		report.Theme(entry.Name, strings.Join(entry.Files, " "))
	}
	manifest, err := renderer.Examples(ctx, reg, opts)
	if err != nil {
		report.Fail(err)
		return err
	}
	report.Done()

	if IsJSONOutput() || IsJSONLOutput() {
		if IsJSONLOutput() {
			return WriteOutput(out, manifest.Themes)
		}
		return WriteOutput(out, manifest)
	}

	rows := make([][]string, 0, len(manifest.Themes))
	for _, entry := range manifest.Themes {
		rows = append(rows, []string{
			entry.Name,
			strconv.Itoa(len(entry.Files)),
			strings.Join(entry.Files, ", "),
		})
	}
	if err := writeTable(out, []string{"THEME", "FILES", "PATHS"}, rows); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nRun %s written to %s\n", manifest.RunID, run.OutDir)
	return nil
}
