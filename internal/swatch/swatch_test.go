package swatch

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opencode-ai/namuplot/themes"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestLabelColor(t *testing.T) {
	tests := map[string]string{
		"#FFFFFF": "#000000",
		"#FFC66D": "#000000",
		"#000000": "#FFFFFF",
		"#1C1D1F": "#FFFFFF",
		"bogus":   "#000000",
	}
	for bg, want := range tests {
		if got := LabelColor(bg); got != want {
			t.Fatalf("LabelColor(%q) = %q, want %q", bg, got, want)
		}
	}
}

func TestTerminalPlain(t *testing.T) {
	theme, err := themes.Get("light")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Terminal(&buf, theme, false))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, len(themes.Roles())+1)
	require.True(t, strings.HasPrefix(lines[0], "light"))
	require.Contains(t, lines[1], "text")
	require.Contains(t, lines[1], theme.Colors().Text)
	require.NotContains(t, buf.String(), "\x1b[", "plain output must not contain escape codes")
}

func TestWorkbook(t *testing.T) {
	f, err := Workbook(themes.Default())
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, themes.Available(), f.GetSheetList())

	dark, err := themes.Get("dark")
	require.NoError(t, err)

	role, err := f.GetCellValue("dark", "A2")
	require.NoError(t, err)
	require.Equal(t, string(themes.RoleText), role)

	hex, err := f.GetCellValue("dark", "B3")
	require.NoError(t, err)
	require.Equal(t, dark.Colors().Background, hex)
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palettes.xlsx")
	require.NoError(t, WriteWorkbook(themes.Default(), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	require.Len(t, f.GetSheetList(), 2)
}

func TestWorkbookRequiresThemes(t *testing.T) {
	empty, err := themes.NewRegistry()
	require.NoError(t, err)
	_, err = Workbook(empty)
	require.Error(t, err)
}

func definition(name string) themes.Definition {
	return themes.Definition{
		Name: name,
		Colors: map[string]string{
			"text":       "#212529",
			"background": "#FFFFFF",
			"gray":       "#ADB5BD",
			"major":      "#000000",
			"minor":      "#6C757D",
			"a":          "#00A495",
			"b":          "#0275D8",
			"c":          "#F0AD4E",
			"d":          "#D9534F",
			"e":          "#6F42C1",
		},
	}
}

func TestWorkbookKeepsThemeNamedLikeDefaultSheet(t *testing.T) {
	tests := map[string][]string{
		"default name first":  {"Sheet1", "dark"},
		"default name second": {"dark", "Sheet1"},
	}
	for name, order := range tests {
		t.Run(name, func(t *testing.T) {
			defs := make([]themes.Definition, 0, len(order))
			for _, n := range order {
				defs = append(defs, definition(n))
			}
			reg, err := themes.NewRegistry(defs...)
			require.NoError(t, err)

			f, err := Workbook(reg)
			require.NoError(t, err)
			defer f.Close()

			require.Equal(t, order, f.GetSheetList())
			for _, n := range order {
				role, err := f.GetCellValue(n, "A2")
				require.NoError(t, err)
				require.Equal(t, string(themes.RoleText), role)
			}
		})
	}
}

func TestWorkbookRejectsSheetNameCollision(t *testing.T) {
	reg, err := themes.NewRegistry(definition("Dark"), definition("dark"))
	require.NoError(t, err)

	_, err = Workbook(reg)
	require.ErrorContains(t, err, "same sheet")
}
