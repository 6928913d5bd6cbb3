// Package render draws sample charts with go-chart so every theme can be
// previewed.
package render

import (
	"fmt"
	"io"
	"math"

	"github.com/opencode-ai/namuplot/style"
	"github.com/opencode-ai/namuplot/themes"
	chart "github.com/wcharczuk/go-chart/v2"
)

// Format is an output image format.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPNG, FormatSVG:
		return Format(s), nil
	}
	return "", fmt.Errorf("unsupported format %q (want png or svg)", s)
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

func (f Format) provider() chart.RendererProvider {
	if f == FormatSVG {
		return chart.SVG
	}
	return chart.PNG
}

// Kind is a sample chart type.
type Kind string

const (
	KindLine   Kind = "line"
	KindBar    Kind = "bar"
	KindSwatch Kind = "swatch"
)

// Kinds returns every chart kind in render order.
func Kinds() []Kind {
	return []Kind{KindLine, KindBar, KindSwatch}
}

// Options configures a Renderer.
type Options struct {
	Format Format
	Width  int
	Height int
}

// Renderer draws sample charts.
type Renderer struct {
	opts Options
}

// New validates opts and returns a Renderer.
func New(opts Options) (*Renderer, error) {
	if opts.Format == "" {
		opts.Format = FormatPNG
	}
	if _, err := ParseFormat(string(opts.Format)); err != nil {
		return nil, err
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", opts.Width, opts.Height)
	}
	return &Renderer{opts: opts}, nil
}

// Format returns the output format.
func (r *Renderer) Format() Format {
	return r.opts.Format
}

// Render draws a chart using the process-wide style, as installed by
// themes.Use or themes.IterUse. The theme supplies colors that are
// referenced directly, such as the major reference line.
func (r *Renderer) Render(w io.Writer, kind Kind, theme themes.Theme) error {
	return r.RenderWith(w, kind, theme, style.Current())
}

// RenderWith draws a chart using explicit style params.
func (r *Renderer) RenderWith(w io.Writer, kind Kind, theme themes.Theme, p style.Params) error {
	switch kind {
	case KindLine:
		return r.line(w, theme, p)
	case KindBar:
		return r.bar(w, theme, p)
	case KindSwatch:
		return r.swatch(w, theme, p)
	}
	return fmt.Errorf("unknown chart kind %q", kind)
}

func (r *Renderer) line(w io.Writer, theme themes.Theme, p style.Params) error {
	const points = 50
	xs := make([]float64, points)
	for i := range xs {
		xs[i] = float64(i) / 4
	}

	series := make([]chart.Series, 0, len(p.ColorCycle)+1)
	for i := range p.ColorCycle {
		ys := make([]float64, points)
		for j, x := range xs {
			ys[j] = math.Sin(x+float64(i)*0.6) * (1 + float64(i)*0.25)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("series %d", i+1),
			XValues: xs,
			YValues: ys,
		})
	}
	series = append(series, chart.ContinuousSeries{
		Name:    "baseline",
		XValues: []float64{xs[0], xs[len(xs)-1]},
		YValues: []float64{0, 0},
		Style: chart.Style{
			StrokeColor:     style.Color(theme.Colors().Major),
			StrokeWidth:     p.LineWidth / 2,
			StrokeDashArray: style.LineDashed.DashArray(1),
		},
	})

	graph := chart.Chart{
		Title:  theme.Name() + " / line",
		Width:  r.opts.Width,
		Height: r.opts.Height,
		XAxis:  chart.XAxis{Name: "x"},
		YAxis:  chart.YAxis{Name: "y"},
		Series: series,
	}
	p.Apply(&graph)
	graph.Elements = []chart.Renderable{chart.Legend(&graph, p.LegendStyle())}

	return graph.Render(r.opts.Format.provider(), w)
}

func (r *Renderer) bar(w io.Writer, theme themes.Theme, p style.Params) error {
	bars := make([]chart.Value, 0, len(p.ColorCycle))
	for i := range p.ColorCycle {
		bars = append(bars, chart.Value{
			Label: string(rune('A' + i)),
			Value: float64(3 + (i*7)%5),
		})
	}

	graph := chart.BarChart{
		Title:    theme.Name() + " / bar",
		Width:    r.opts.Width,
		Height:   r.opts.Height,
		BarWidth: barWidth(r.opts.Width, len(bars)),
		Bars:     bars,
	}
	p.ApplyBar(&graph)

	return graph.Render(r.opts.Format.provider(), w)
}

func (r *Renderer) swatch(w io.Writer, theme themes.Theme, p style.Params) error {
	colors := theme.Colors()
	roles := themes.Roles()
	bars := make([]chart.Value, 0, len(roles))
	for _, role := range roles {
		c, _ := colors.Get(role)
		bars = append(bars, chart.Value{
			Label: string(role),
			Value: 1,
			Style: chart.Style{
				FillColor:   style.Color(c),
				StrokeColor: style.Color(colors.Gray),
				StrokeWidth: 1,
			},
		})
	}

	graph := chart.BarChart{
		Title:    theme.Name() + " / palette",
		Width:    r.opts.Width,
		Height:   r.opts.Height,
		BarWidth: barWidth(r.opts.Width, len(bars)),
		YAxis:    chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: 1}},
		Bars:     bars,
	}
	p.ApplyBar(&graph)
	graph.YAxis.Style.Hidden = true
	graph.YAxis.GridMajorStyle.Hidden = true

	return graph.Render(r.opts.Format.provider(), w)
}

func barWidth(width, bars int) int {
	if bars == 0 {
		return 0
	}
	bw := width / (bars * 2)
	return max(bw, 4)
}
