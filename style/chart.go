package style

import (
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Color converts a hex color to a go-chart color. Invalid input yields
// transparent; Params.Validate rejects such values before they get here.
func Color(hex string) drawing.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return drawing.ColorTransparent
	}
	r, g, b := c.RGB255()
	return drawing.Color{R: r, G: g, B: b, A: 255}
}

// Palette adapts Params to go-chart's ColorPalette.
type Palette struct {
	p Params
}

var _ chart.ColorPalette = Palette{}

// Palette returns a go-chart color palette backed by a copy of p.
func (p Params) Palette() Palette {
	return Palette{p: p.Clone()}
}

func (cp Palette) BackgroundColor() drawing.Color       { return Color(cp.p.FigureFaceColor) }
func (cp Palette) BackgroundStrokeColor() drawing.Color { return Color(cp.p.FigureEdgeColor) }
func (cp Palette) CanvasColor() drawing.Color           { return Color(cp.p.AxesFaceColor) }
func (cp Palette) CanvasStrokeColor() drawing.Color     { return cp.p.canvasStroke() }
func (cp Palette) AxisStrokeColor() drawing.Color       { return Color(cp.p.AxesEdgeColor) }
func (cp Palette) TextColor() drawing.Color             { return Color(cp.p.TextColor) }

func (cp Palette) GetSeriesColor(index int) drawing.Color {
	return Color(cp.p.CycleColor(index))
}

// CycleColor returns the color-cycle entry for the i-th series.
func (p Params) CycleColor(i int) string {
	if len(p.ColorCycle) == 0 {
		return p.TextColor
	}
	if i < 0 {
		i = -i
	}
	return p.ColorCycle[i%len(p.ColorCycle)]
}

// go-chart strokes the whole canvas box, so hidden top/right spines are
// drawn in the face color instead.
func (p Params) canvasStroke() drawing.Color {
	if p.SpinesTop && p.SpinesRight {
		return Color(p.AxesEdgeColor)
	}
	return Color(p.AxesFaceColor)
}

// BackgroundStyle is the figure background.
func (p Params) BackgroundStyle() chart.Style {
	return chart.Style{
		FillColor:   Color(p.FigureFaceColor),
		StrokeColor: Color(p.FigureEdgeColor),
	}
}

// CanvasStyle is the plotting area inside the axes.
func (p Params) CanvasStyle() chart.Style {
	return chart.Style{
		FillColor:   Color(p.AxesFaceColor),
		StrokeColor: p.canvasStroke(),
		StrokeWidth: 1,
	}
}

// XAxisStyle styles the x axis line and tick labels.
func (p Params) XAxisStyle() chart.Style {
	return chart.Style{
		StrokeColor: Color(p.AxesEdgeColor),
		StrokeWidth: 1,
		FontColor:   Color(p.XTickColor),
	}
}

// YAxisStyle styles the y axis line and tick labels.
func (p Params) YAxisStyle() chart.Style {
	return chart.Style{
		StrokeColor: Color(p.AxesEdgeColor),
		StrokeWidth: 1,
		FontColor:   Color(p.YTickColor),
	}
}

// AxisNameStyle styles axis labels.
func (p Params) AxisNameStyle() chart.Style {
	return chart.Style{FontColor: Color(p.AxesLabelColor)}
}

// TitleStyle styles the chart title.
func (p Params) TitleStyle() chart.Style {
	return chart.Style{FontColor: Color(p.AxesTitleColor)}
}

// GridStyle styles major grid lines. It is hidden when the grid is off.
func (p Params) GridStyle() chart.Style {
	alpha := uint8(math.Round(p.GridAlpha * 255))
	return chart.Style{
		Hidden:          !p.Grid,
		StrokeColor:     Color(p.GridColor).WithAlpha(alpha),
		StrokeWidth:     p.GridLineWidth,
		StrokeDashArray: p.GridLineStyle.DashArray(p.GridLineWidth),
	}
}

// SeriesStyle styles the i-th data series from the color cycle.
func (p Params) SeriesStyle(i int) chart.Style {
	c := Color(p.CycleColor(i))
	return chart.Style{
		StrokeColor: c,
		StrokeWidth: p.LineWidth,
		DotColor:    c,
		DotWidth:    p.MarkerSize / 2,
	}
}

// BarStyle styles the i-th bar: cycle fill with the patch edge color.
func (p Params) BarStyle(i int) chart.Style {
	return chart.Style{
		FillColor:   Color(p.CycleColor(i)),
		StrokeColor: Color(p.PatchEdgeColor),
		StrokeWidth: 1,
	}
}

// LegendStyle styles the legend box. Without a frame the border takes the
// figure color.
func (p Params) LegendStyle() chart.Style {
	s := chart.Style{
		FillColor:   Color(p.FigureFaceColor),
		FontColor:   Color(p.TextColor),
		StrokeColor: Color(p.AxesEdgeColor),
	}
	if !p.LegendFrame {
		s.StrokeColor = Color(p.FigureFaceColor)
	}
	return s
}

// ValueFormatter formats numeric tick values. Values outside the formatter
// limits use scientific notation; negative values use U+2212 when
// unicode minus is on.
func (p Params) ValueFormatter() chart.ValueFormatter {
	limits := p.FormatterLimits
	unicodeMinus := p.UnicodeMinus
	return func(v any) string {
		f, ok := numeric(v)
		if !ok {
			return fmt.Sprint(v)
		}
		var text string
		abs := math.Abs(f)
		switch {
		case f == 0:
			text = "0.00"
		case limits != [2]int{} && (abs < math.Pow10(limits[0]) || abs >= math.Pow10(limits[1])):
			text = fmt.Sprintf("%.2e", f)
		default:
			text = fmt.Sprintf("%.2f", f)
		}
		if unicodeMinus {
			text = strings.ReplaceAll(text, "-", "−")
		}
		return text
	}
}

func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// Apply styles a chart and every continuous or time series in it whose
// style is unset.
func (p Params) Apply(c *chart.Chart) {
	c.Background = p.BackgroundStyle()
	c.Canvas = p.CanvasStyle()
	c.ColorPalette = p.Palette()
	c.TitleStyle = p.TitleStyle()

	c.XAxis.Style = p.XAxisStyle()
	c.XAxis.NameStyle = p.AxisNameStyle()
	c.XAxis.GridMajorStyle = p.GridStyle()
	c.XAxis.GridMinorStyle = chart.Style{Hidden: true}

	c.YAxis.Style = p.YAxisStyle()
	c.YAxis.NameStyle = p.AxisNameStyle()
	c.YAxis.GridMajorStyle = p.GridStyle()
	c.YAxis.GridMinorStyle = chart.Style{Hidden: true}
	if c.YAxis.ValueFormatter == nil {
		c.YAxis.ValueFormatter = p.ValueFormatter()
	}

	for i, s := range c.Series {
		switch series := s.(type) {
		case chart.ContinuousSeries:
			if series.Style.IsZero() {
				series.Style = p.SeriesStyle(i)
			}
			c.Series[i] = series
		case chart.TimeSeries:
			if series.Style.IsZero() {
				series.Style = p.SeriesStyle(i)
			}
			c.Series[i] = series
		}
	}
}

// ApplyBar styles a bar chart and every bar whose style is unset.
func (p Params) ApplyBar(c *chart.BarChart) {
	c.Background = p.BackgroundStyle()
	c.Canvas = p.CanvasStyle()
	c.ColorPalette = p.Palette()
	c.TitleStyle = p.TitleStyle()
	c.XAxis = p.XAxisStyle()
	c.YAxis.Style = p.YAxisStyle()
	c.YAxis.NameStyle = p.AxisNameStyle()
	c.YAxis.GridMajorStyle = p.GridStyle()
	if c.YAxis.ValueFormatter == nil {
		c.YAxis.ValueFormatter = p.ValueFormatter()
	}
	for i := range c.Bars {
		if c.Bars[i].Style.IsZero() {
			c.Bars[i].Style = p.BarStyle(i)
		}
	}
}
