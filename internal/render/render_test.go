package render

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opencode-ai/namuplot/style"
	"github.com/opencode-ai/namuplot/themes"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte("\x89PNG")

func newRenderer(t *testing.T, format Format) *Renderer {
	t.Helper()
	r, err := New(Options{Format: format, Width: 320, Height: 200})
	require.NoError(t, err)
	return r
}

func TestNewValidatesOptions(t *testing.T) {
	_, err := New(Options{Format: "gif", Width: 10, Height: 10})
	require.Error(t, err)

	_, err = New(Options{Format: FormatPNG})
	require.Error(t, err)

	r, err := New(Options{Width: 10, Height: 10})
	require.NoError(t, err)
	require.Equal(t, FormatPNG, r.Format())
}

func TestRenderEveryKind(t *testing.T) {
	t.Cleanup(style.Reset)
	r := newRenderer(t, FormatPNG)

	theme, err := themes.Use("dark")
	require.NoError(t, err)

	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, r.Render(&buf, kind, theme))
			require.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic), "expected PNG output")
		})
	}

	require.Error(t, r.Render(&bytes.Buffer{}, Kind("pie"), theme))
}

func TestRenderSVGUsesThemeColors(t *testing.T) {
	r := newRenderer(t, FormatSVG)
	theme, err := themes.Get("light")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderWith(&buf, KindBar, theme, theme.Params()))

	out := buf.String()
	require.Contains(t, out, "<svg")
	require.Contains(t, out, style.Color(theme.Colors().A).String(), "first bar should use the first cycle color")
}

func TestExamplesWritesEveryTheme(t *testing.T) {
	t.Cleanup(style.Reset)
	r := newRenderer(t, FormatPNG)
	out := t.TempDir()
	before := style.Current()

	manifest, err := r.Examples(context.Background(), themes.Default(), ExamplesOptions{OutDir: out})
	require.NoError(t, err)
	require.NotEmpty(t, manifest.RunID)
	require.Len(t, manifest.Themes, len(themes.Available()))

	for i, name := range themes.Available() {
		require.Equal(t, name, manifest.Themes[i].Name)
		require.Len(t, manifest.Themes[i].Files, len(Kinds()))
		for _, rel := range manifest.Themes[i].Files {
			data, err := os.ReadFile(filepath.Join(out, filepath.FromSlash(rel)))
			require.NoError(t, err)
			require.True(t, bytes.HasPrefix(data, pngMagic), "%s is not a PNG", rel)
		}
	}

	raw, err := os.ReadFile(filepath.Join(out, ManifestFile))
	require.NoError(t, err)
	var decoded Manifest
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, manifest.RunID, decoded.RunID)

	require.True(t, style.Current().Equal(before), "Examples must restore the previous style")
}

func TestExamplesSubset(t *testing.T) {
	r := newRenderer(t, FormatSVG)
	out := t.TempDir()

	manifest, err := r.Examples(context.Background(), themes.Default(), ExamplesOptions{
		OutDir: out,
		Names:  []string{"dark"},
		Kinds:  []Kind{KindSwatch},
	})
	require.NoError(t, err)
	require.Len(t, manifest.Themes, 1)
	require.Equal(t, []string{"dark/swatch.svg"}, manifest.Themes[0].Files)

	_, err = os.Stat(filepath.Join(out, "light"))
	require.True(t, os.IsNotExist(err), "light should not be rendered")
}

func TestExamplesReportsEachTheme(t *testing.T) {
	r := newRenderer(t, FormatSVG)

	var reported []ManifestTheme
	manifest, err := r.Examples(context.Background(), themes.Default(), ExamplesOptions{
		OutDir: t.TempDir(),
		Kinds:  []Kind{KindLine},
		OnTheme: func(entry ManifestTheme) {
			reported = append(reported, entry)
		},
	})
	require.NoError(t, err)
	require.Equal(t, manifest.Themes, reported)
}

func TestExamplesErrors(t *testing.T) {
	r := newRenderer(t, FormatPNG)

	_, err := r.Examples(context.Background(), themes.Default(), ExamplesOptions{OutDir: t.TempDir(), Names: []string{"neon"}})
	require.ErrorIs(t, err, themes.ErrThemeNotFound)

	_, err = r.Examples(context.Background(), nil, ExamplesOptions{OutDir: t.TempDir()})
	require.Error(t, err)

	_, err = r.Examples(context.Background(), themes.Default(), ExamplesOptions{})
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Examples(ctx, themes.Default(), ExamplesOptions{OutDir: t.TempDir()})
	require.ErrorIs(t, err, context.Canceled)
}

func TestExamplesRejectsPathLikeNames(t *testing.T) {
	light, err := themes.Get("light")
	require.NoError(t, err)

	raw := make(map[string]string)
	for role, value := range light.Colors().Map() {
		raw[string(role)] = value
	}
	reg, err := themes.NewRegistry(themes.Definition{Name: "../escape", Colors: raw})
	require.NoError(t, err)

	_, err = newRenderer(t, FormatPNG).Examples(context.Background(), reg, ExamplesOptions{OutDir: t.TempDir()})
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "directory name"))
}
