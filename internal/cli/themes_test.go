package cli

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opencode-ai/namuplot/themes"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// withFlags resets the output flags for one test.
func withFlags(t *testing.T, asJSON, asJSONL bool) {
	t.Helper()
	prevJSON, prevJSONL, prevNoProgress, prevParams := jsonOutput, jsonlOutput, noProgress, showParams
	jsonOutput, jsonlOutput, noProgress = asJSON, asJSONL, true
	t.Cleanup(func() {
		jsonOutput, jsonlOutput, noProgress, showParams = prevJSON, prevJSONL, prevNoProgress, prevParams
	})
}

func TestListThemesTable(t *testing.T) {
	withFlags(t, false, false)

	var out bytes.Buffer
	require.NoError(t, listThemes(&out, themes.Default()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "NAME"))
	require.True(t, strings.HasPrefix(lines[1], "light"))
	require.Contains(t, lines[1], "yes")
	require.Contains(t, lines[1], "builtin")
	require.True(t, strings.HasPrefix(lines[2], "dark"))
	require.Contains(t, lines[2], "no")
}

func TestListThemesJSONL(t *testing.T) {
	withFlags(t, false, true)

	var out bytes.Buffer
	require.NoError(t, listThemes(&out, themes.Default()))

	var names []string
	scanner := bufio.NewScanner(&out)
	for scanner.Scan() {
		var summary ThemeSummary
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &summary))
		require.Len(t, summary.Colors, len(themes.Roles()))
		require.Empty(t, summary.Style)
		names = append(names, summary.Name)
	}
	require.NoError(t, scanner.Err())
	require.Equal(t, []string{"light", "dark"}, names)
}

func TestShowThemeJSON(t *testing.T) {
	withFlags(t, true, false)

	theme, err := themes.Get("dark")
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, showTheme(&out, theme))

	var summary ThemeSummary
	require.NoError(t, json.Unmarshal(out.Bytes(), &summary))
	require.Equal(t, "dark", summary.Name)
	require.Equal(t, "builtin", summary.Source)
	require.Equal(t, theme.Color(themes.RoleBackground), summary.Colors["background"])
	require.Equal(t, theme.Color(themes.RoleBackground), summary.Style["axes.facecolor"])
	require.Equal(t, true, summary.Style["axes.grid"])
}

func TestShowThemeParams(t *testing.T) {
	withFlags(t, false, false)
	showParams = true

	theme, err := themes.Get("light")
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, showTheme(&out, theme))

	text := out.String()
	require.Contains(t, text, "light")
	require.Contains(t, text, theme.Color(themes.RoleA))
	require.Contains(t, text, "KEY")
	require.Contains(t, text, "axes.prop_cycle")
	require.Contains(t, text, "grid.linestyle")
}

func TestExportYAMLRebuildsRegistry(t *testing.T) {
	withFlags(t, false, false)

	var out bytes.Buffer
	require.NoError(t, exportThemes(&out, themes.Default(), "yaml", ""))

	defs, err := themes.ParseDefinitions(out.Bytes())
	require.NoError(t, err)
	reg, err := themes.NewRegistry(defs...)
	require.NoError(t, err)
	require.Equal(t, themes.Available(), reg.Available())

	for name, theme := range themes.Default().All() {
		rebuilt, err := reg.Get(name)
		require.NoError(t, err)
		require.True(t, theme.Params().Equal(rebuilt.Params()), "params differ for %s", name)
	}
}

func TestExportJSONToFile(t *testing.T) {
	withFlags(t, false, false)

	path := filepath.Join(t.TempDir(), "themes.json")
	var out bytes.Buffer
	require.NoError(t, exportThemes(&out, themes.Default(), "json", path))
	require.Zero(t, out.Len())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc definitionFile
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Themes, 2)
	require.Equal(t, "light", doc.Themes[0].Name)
}

func TestExportWorkbook(t *testing.T) {
	withFlags(t, false, false)

	var out bytes.Buffer
	err := exportThemes(&out, themes.Default(), "xlsx", "")
	require.ErrorContains(t, err, "--out is required")

	path := filepath.Join(t.TempDir(), "themes.xlsx")
	require.NoError(t, exportThemes(&out, themes.Default(), "xlsx", path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	require.Equal(t, []string{"light", "dark"}, f.GetSheetList())
}

func TestExportUnsupportedFormat(t *testing.T) {
	withFlags(t, false, false)

	var out bytes.Buffer
	err := exportThemes(&out, themes.Default(), "toml", "")
	require.ErrorContains(t, err, `unsupported export format "toml"`)
}

func TestInitConfigRejectsBothJSONModes(t *testing.T) {
	withFlags(t, true, true)

	err := initConfig(appViper)
	require.ErrorContains(t, err, "mutually exclusive")
}
