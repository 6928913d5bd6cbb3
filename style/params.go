// Package style holds chart style attributes and the process-wide defaults
// that go-chart renderers read from.
//
// A Params value is a complete description of how a chart should look:
// figure and axes colors, grid, lines, color cycle, fonts. Params can be
// installed globally with Update, or for a bounded section with Push/With,
// which always restore the previous defaults.
package style

import (
	"errors"
	"fmt"
	"slices"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrUnsupportedKey is returned when a style key is not known.
	ErrUnsupportedKey = errors.New("unsupported style key")
	// ErrInvalidValue is returned when a style value has the wrong type or range.
	ErrInvalidValue = errors.New("invalid style value")
)

// LineStyle is a stroke pattern for lines and grid lines.
type LineStyle string

const (
	LineSolid   LineStyle = "-"
	LineDashed  LineStyle = "--"
	LineDotted  LineStyle = ":"
	LineDashDot LineStyle = "-."
)

// DashArray returns the go-chart dash pattern for the line style, scaled by width.
func (s LineStyle) DashArray(width float64) []float64 {
	if width <= 0 {
		width = 1
	}
	switch s {
	case LineDashed:
		return []float64{3.7 * width, 1.6 * width}
	case LineDotted:
		return []float64{width, 1.65 * width}
	case LineDashDot:
		return []float64{6.4 * width, 1.6 * width, width, 1.6 * width}
	default:
		return nil
	}
}

func (s LineStyle) valid() bool {
	switch s {
	case LineSolid, LineDashed, LineDotted, LineDashDot:
		return true
	}
	return false
}

// Params is the full set of style attributes for a chart.
type Params struct {
	FigureFaceColor  string
	FigureEdgeColor  string
	SaveFigFaceColor string
	SaveFigEdgeColor string

	AxesFaceColor  string
	AxesEdgeColor  string
	AxesLabelColor string
	AxesTitleColor string
	TextColor      string
	XTickColor     string
	YTickColor     string

	Grid          bool
	GridColor     string
	GridAlpha     float64
	GridLineStyle LineStyle
	GridLineWidth float64

	SpinesTop   bool
	SpinesRight bool

	LineWidth  float64
	MarkerSize float64
	ColorCycle []string

	FontFamily    string
	FontSansSerif []string

	LegendFrame        bool
	UnicodeMinus       bool
	FormatterUseOffset bool
	FormatterLimits    [2]int
	ErrorbarCapsize    float64

	PatchEdgeColor string
	FlierEdgeColor string
}

// Default returns the baseline style used before any theme is applied.
func Default() Params {
	return Params{
		FigureFaceColor:    "#FFFFFF",
		FigureEdgeColor:    "#FFFFFF",
		SaveFigFaceColor:   "#FFFFFF",
		SaveFigEdgeColor:   "#FFFFFF",
		AxesFaceColor:      "#FFFFFF",
		AxesEdgeColor:      "#000000",
		AxesLabelColor:     "#000000",
		AxesTitleColor:     "#000000",
		TextColor:          "#000000",
		XTickColor:         "#000000",
		YTickColor:         "#000000",
		Grid:               false,
		GridColor:          "#B0B0B0",
		GridAlpha:          1,
		GridLineStyle:      LineSolid,
		GridLineWidth:      0.8,
		SpinesTop:          true,
		SpinesRight:        true,
		LineWidth:          1.5,
		MarkerSize:         6,
		ColorCycle:         []string{"#1F77B4", "#FF7F0E", "#2CA02C", "#D62728", "#9467BD"},
		FontFamily:         "sans-serif",
		FontSansSerif:      []string{"DejaVu Sans"},
		LegendFrame:        true,
		UnicodeMinus:       true,
		FormatterUseOffset: true,
		FormatterLimits:    [2]int{-5, 6},
		ErrorbarCapsize:    0,
		PatchEdgeColor:     "#000000",
		FlierEdgeColor:     "#000000",
	}
}

// Clone returns a deep copy of p.
func (p Params) Clone() Params {
	out := p
	out.ColorCycle = slices.Clone(p.ColorCycle)
	out.FontSansSerif = slices.Clone(p.FontSansSerif)
	return out
}

// Validate checks colors, ranges and enumerations.
func (p Params) Validate() error {
	for _, f := range fields {
		if err := f.check(&p); err != nil {
			return fmt.Errorf("%s: %w", f.key, err)
		}
	}
	return nil
}

// Equal reports whether p and other describe the same style.
func (p Params) Equal(other Params) bool {
	return len(p.Diff(other)) == 0
}

// Diff returns the keys whose values differ between p and other, in key order.
func (p Params) Diff(other Params) []string {
	var keys []string
	for _, f := range fields {
		if !f.equal(&p, &other) {
			keys = append(keys, f.key)
		}
	}
	return keys
}

// Get returns the value stored under a string key.
func (p Params) Get(key string) (any, error) {
	f, ok := fieldIndex[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKey, key)
	}
	return f.get(&p), nil
}

// Set stores a value under a string key. Values decoded from YAML or JSON
// (float64, int, []any) are accepted and converted.
func (p *Params) Set(key string, value any) error {
	f, ok := fieldIndex[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedKey, key)
	}
	if err := f.set(p, value); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

// Keys returns every supported style key in stable order.
func Keys() []string {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.key
	}
	return keys
}

// ValidColor reports whether s is a "#rgb" or "#rrggbb" hex color.
func ValidColor(s string) bool {
	if (len(s) != 4 && len(s) != 7) || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		if !isHexDigit(r) {
			return false
		}
	}
	_, err := colorful.Hex(s)
	return err == nil
}

func isHexDigit(r rune) bool {
	return '0' <= r && r <= '9' || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F'
}
