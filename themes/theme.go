// Package themes provides named chart themes and applies them to the
// process-wide chart style.
//
// Typical use generates one chart per theme:
//
//	for name, theme := range themes.IterUse() {
//		graph := chart.Chart{Series: series}
//		style.Current().Apply(&graph)
//		// render graph to name + ".png"; theme.Colors().Major is available
//		// for manual color references
//	}
//
// IterUse mutates shared state, so only one loop may run at a time. Context
// applies a theme for the duration of a callback and restores the previous
// style afterwards.
package themes

import (
	"fmt"
	"sort"
	"strings"

	"github.com/opencode-ai/namuplot/style"
)

// Definition is the declarative form of a theme, as read from YAML.
type Definition struct {
	Name        string            `yaml:"name" json:"name"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
	Colors      map[string]string `yaml:"colors" json:"colors"`
	Style       map[string]any    `yaml:"style,omitempty" json:"style,omitempty"`
	Source      string            `yaml:"-" json:"-"` // file path or "builtin"
}

// DefinitionError describes why a definition could not become a theme.
type DefinitionError struct {
	Theme  string
	Source string
	Field  string
	Err    error
}

func (e *DefinitionError) Error() string {
	var b strings.Builder
	b.WriteString("theme")
	if e.Theme != "" {
		fmt.Fprintf(&b, " %q", e.Theme)
	}
	if e.Source != "" {
		fmt.Fprintf(&b, " (%s)", e.Source)
	}
	fmt.Fprintf(&b, " %s: %v", e.Field, e.Err)
	return b.String()
}

func (e *DefinitionError) Unwrap() error {
	return e.Err
}

// Theme is an immutable named bundle of colors and style attributes.
// Accessors return copies.
type Theme struct {
	name        string
	description string
	source      string
	colors      Colors
	params      style.Params
}

// Name returns the mode identifier.
func (t Theme) Name() string { return t.name }

// Description returns the optional human description.
func (t Theme) Description() string { return t.description }

// Source returns the file the theme was loaded from, or "builtin".
func (t Theme) Source() string { return t.source }

// Colors returns the theme's role colors.
func (t Theme) Colors() Colors { return t.colors }

// Params returns a copy of the theme's style attributes.
func (t Theme) Params() style.Params { return t.params.Clone() }

// Color returns the color for a role, or "" for an unknown role.
func (t Theme) Color(r Role) string {
	c, _ := t.colors.Get(r)
	return c
}

// Definition returns a definition that rebuilds this theme, with every
// style key spelled out.
func (t Theme) Definition() Definition {
	colors := make(map[string]string, len(Roles()))
	for role, value := range t.colors.Map() {
		colors[string(role)] = value
	}
	params := make(map[string]any, len(style.Keys()))
	for _, key := range style.Keys() {
		value, _ := t.params.Get(key)
		params[key] = value
	}
	return Definition{
		Name:        t.name,
		Description: t.description,
		Colors:      colors,
		Style:       params,
		Source:      t.source,
	}
}

func newTheme(def Definition) (Theme, error) {
	name := strings.TrimSpace(def.Name)
	fail := func(field string, err error) (Theme, error) {
		return Theme{}, &DefinitionError{Theme: name, Source: def.Source, Field: field, Err: err}
	}
	if name == "" {
		return fail("name", fmt.Errorf("name is required"))
	}

	colors, err := colorsFromMap(def.Colors)
	if err != nil {
		return fail("colors", err)
	}

	params := paramsFor(colors)
	keys := make([]string, 0, len(def.Style))
	for key := range def.Style {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := params.Set(key, def.Style[key]); err != nil {
			return fail("style", err)
		}
	}
	if err := params.Validate(); err != nil {
		return fail("style", err)
	}

	return Theme{
		name:        name,
		description: strings.TrimSpace(def.Description),
		source:      def.Source,
		colors:      colors,
		params:      params,
	}, nil
}

// paramsFor derives the full style from a palette. Definitions may override
// individual keys afterwards.
func paramsFor(c Colors) style.Params {
	return style.Params{
		FigureFaceColor:  c.Background,
		FigureEdgeColor:  c.Background,
		SaveFigFaceColor: c.Background,
		SaveFigEdgeColor: c.Background,

		AxesFaceColor:  c.Background,
		AxesEdgeColor:  c.Text,
		AxesLabelColor: c.Text,
		AxesTitleColor: c.Text,
		TextColor:      c.Text,
		XTickColor:     c.Text,
		YTickColor:     c.Text,

		Grid:          true,
		GridColor:     c.Text,
		GridAlpha:     0.30,
		GridLineStyle: style.LineSolid,
		GridLineWidth: 0.8,

		SpinesTop:   false,
		SpinesRight: false,

		LineWidth:  2.0,
		MarkerSize: 6,
		ColorCycle: c.Cycle(),

		// Nanum fonts first; DejaVu Sans is the fallback everywhere.
		FontFamily: "sans-serif",
		FontSansSerif: []string{
			"NanumBarunGothicOTF",
			"NanumBarunGothic",
			"NanumGothic",
			"Apple SD Gothic Neo",
			"Malgun Gothic",
			"DejaVu Sans",
		},

		LegendFrame:        false,
		UnicodeMinus:       false,
		FormatterUseOffset: false,
		FormatterLimits:    [2]int{-4, 5},
		ErrorbarCapsize:    2.0,

		PatchEdgeColor: c.Gray,
		FlierEdgeColor: c.Gray,
	}
}
