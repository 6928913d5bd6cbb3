package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/opencode-ai/namuplot/internal/swatch"
	"github.com/opencode-ai/namuplot/style"
	"github.com/opencode-ai/namuplot/themes"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	showParams   bool
	exportFormat string
	exportOut    string
)

func init() {
	rootCmd.AddCommand(themesCmd)
	themesCmd.AddCommand(themesListCmd)
	themesCmd.AddCommand(themesShowCmd)
	themesCmd.AddCommand(themesExportCmd)

	themesShowCmd.Flags().BoolVar(&showParams, "params", false, "also print every style attribute")
	themesExportCmd.Flags().StringVar(&exportFormat, "format", "yaml", "export format (yaml, json, xlsx)")
	themesExportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout; required for xlsx)")
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Inspect chart themes",
}

var themesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available themes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}
		return listThemes(cmd.OutOrStdout(), reg)
	},
}

var themesShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show a theme's palette",
	Long:  "Show a theme's color roles. Without a name the configured default theme is shown.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}
		name := GetConfig().Theme.Default
		if len(args) == 1 {
			name = args[0]
		}
		theme, err := reg.Get(name)
		if err != nil {
			return err
		}
		return showTheme(cmd.OutOrStdout(), theme)
	},
}

var themesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export theme definitions or a swatch workbook",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}
		return exportThemes(cmd.OutOrStdout(), reg, exportFormat, exportOut)
	},
}

// ThemeSummary is the JSON form of a theme.
type ThemeSummary struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Source      string            `json:"source"`
	Colors      map[string]string `json:"colors"`
	Style       map[string]any    `json:"style,omitempty"`
}

func summarize(theme themes.Theme, withStyle bool) ThemeSummary {
	def := theme.Definition()
	summary := ThemeSummary{
		Name:        def.Name,
		Description: def.Description,
		Source:      def.Source,
		Colors:      def.Colors,
	}
	if withStyle {
		summary.Style = def.Style
	}
	return summary
}

func listThemes(out io.Writer, reg *themes.Registry) error {
	if IsJSONOutput() || IsJSONLOutput() {
		summaries := make([]ThemeSummary, 0, reg.Len())
		for _, theme := range reg.All() {
			summaries = append(summaries, summarize(theme, false))
		}
		return WriteOutput(out, summaries)
	}

	defaultName := GetConfig().Theme.Default
	rows := make([][]string, 0, reg.Len())
	for name, theme := range reg.All() {
		rows = append(rows, []string{
			name,
			formatYesNo(name == defaultName),
			theme.Source(),
			theme.Description(),
		})
	}
	return writeTable(out, []string{"NAME", "DEFAULT", "SOURCE", "DESCRIPTION"}, rows)
}

func showTheme(out io.Writer, theme themes.Theme) error {
	if IsJSONOutput() || IsJSONLOutput() {
		return WriteOutput(out, summarize(theme, true))
	}

	if err := swatch.Terminal(out, theme, colorEnabled()); err != nil {
		return err
	}
	if !showParams {
		return nil
	}

	fmt.Fprintln(out)
	params := theme.Params()
	rows := make([][]string, 0, len(style.Keys()))
	for _, key := range style.Keys() {
		value, err := params.Get(key)
		if err != nil {
			return err
		}
		rows = append(rows, []string{key, formatValue(value)})
	}
	return writeTable(out, []string{"KEY", "VALUE"}, rows)
}

func formatValue(value any) string {
	switch v := value.(type) {
	case []string:
		return strings.Join(v, ", ")
	case bool:
		return formatYesNo(v)
	default:
		return fmt.Sprint(v)
	}
}

func exportThemes(out io.Writer, reg *themes.Registry, format, path string) error {
	report := startProgress(fmt.Sprintf("Exporting %d themes as %s", reg.Len(), format))

	var err error
	switch format {
	case "xlsx":
		if path == "" {
			err = fmt.Errorf("--out is required for xlsx export")
			break
		}
		err = swatch.WriteWorkbook(reg, path)
	case "yaml", "json":
		err = writeDefinitions(out, reg, format, path)
	default:
		err = fmt.Errorf("unsupported export format %q (want yaml, json or xlsx)", format)
	}

	if err != nil {
		report.Fail(err)
		return err
	}
	for name, theme := range reg.All() {
		report.Theme(name, theme.Source())
	}
	report.Done()
	return nil
}

type definitionFile struct {
	Themes []themes.Definition `yaml:"themes" json:"themes"`
}

func writeDefinitions(out io.Writer, reg *themes.Registry, format, path string) error {
	doc := definitionFile{Themes: make([]themes.Definition, 0, reg.Len())}
	for _, theme := range reg.All() {
		doc.Themes = append(doc.Themes, theme.Definition())
	}

	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		defer f.Close()
		out = f
	}

	if format == "json" {
		return WriteOutput(out, doc)
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
