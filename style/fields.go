package style

import (
	"fmt"
	"math"
	"slices"
)

// field binds a string key to one Params attribute.
type field struct {
	key   string
	get   func(*Params) any
	set   func(*Params, any) error
	check func(*Params) error
	equal func(a, b *Params) bool
}

func colorField(key string, ptr func(*Params) *string) field {
	return field{
		key: key,
		get: func(p *Params) any { return *ptr(p) },
		set: func(p *Params, v any) error {
			s, err := toColor(v)
			if err != nil {
				return err
			}
			*ptr(p) = s
			return nil
		},
		check: func(p *Params) error {
			if !ValidColor(*ptr(p)) {
				return fmt.Errorf("%w: %q is not a hex color", ErrInvalidValue, *ptr(p))
			}
			return nil
		},
		equal: func(a, b *Params) bool { return *ptr(a) == *ptr(b) },
	}
}

func boolField(key string, ptr func(*Params) *bool) field {
	return field{
		key: key,
		get: func(p *Params) any { return *ptr(p) },
		set: func(p *Params, v any) error {
			b, ok := v.(bool)
			if !ok {
				return fmt.Errorf("%w: want bool, got %T", ErrInvalidValue, v)
			}
			*ptr(p) = b
			return nil
		},
		check: func(*Params) error { return nil },
		equal: func(a, b *Params) bool { return *ptr(a) == *ptr(b) },
	}
}

func floatField(key string, min, max float64, ptr func(*Params) *float64) field {
	return field{
		key: key,
		get: func(p *Params) any { return *ptr(p) },
		set: func(p *Params, v any) error {
			f, err := toFloat(v)
			if err != nil {
				return err
			}
			*ptr(p) = f
			return nil
		},
		check: func(p *Params) error {
			f := *ptr(p)
			if math.IsNaN(f) || f < min || f > max {
				return fmt.Errorf("%w: %v outside [%v, %v]", ErrInvalidValue, f, min, max)
			}
			return nil
		},
		equal: func(a, b *Params) bool { return *ptr(a) == *ptr(b) },
	}
}

var fields = []field{
	colorField("figure.facecolor", func(p *Params) *string { return &p.FigureFaceColor }),
	colorField("figure.edgecolor", func(p *Params) *string { return &p.FigureEdgeColor }),
	colorField("savefig.facecolor", func(p *Params) *string { return &p.SaveFigFaceColor }),
	colorField("savefig.edgecolor", func(p *Params) *string { return &p.SaveFigEdgeColor }),
	colorField("axes.facecolor", func(p *Params) *string { return &p.AxesFaceColor }),
	colorField("axes.edgecolor", func(p *Params) *string { return &p.AxesEdgeColor }),
	colorField("axes.labelcolor", func(p *Params) *string { return &p.AxesLabelColor }),
	colorField("axes.titlecolor", func(p *Params) *string { return &p.AxesTitleColor }),
	colorField("text.color", func(p *Params) *string { return &p.TextColor }),
	colorField("xtick.color", func(p *Params) *string { return &p.XTickColor }),
	colorField("ytick.color", func(p *Params) *string { return &p.YTickColor }),
	boolField("axes.grid", func(p *Params) *bool { return &p.Grid }),
	colorField("grid.color", func(p *Params) *string { return &p.GridColor }),
	floatField("grid.alpha", 0, 1, func(p *Params) *float64 { return &p.GridAlpha }),
	{
		key: "grid.linestyle",
		get: func(p *Params) any { return string(p.GridLineStyle) },
		set: func(p *Params, v any) error {
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("%w: want string, got %T", ErrInvalidValue, v)
			}
			if !LineStyle(s).valid() {
				return fmt.Errorf("%w: unknown line style %q", ErrInvalidValue, s)
			}
			p.GridLineStyle = LineStyle(s)
			return nil
		},
		check: func(p *Params) error {
			if !p.GridLineStyle.valid() {
				return fmt.Errorf("%w: unknown line style %q", ErrInvalidValue, p.GridLineStyle)
			}
			return nil
		},
		equal: func(a, b *Params) bool { return a.GridLineStyle == b.GridLineStyle },
	},
	floatField("grid.linewidth", 0, 100, func(p *Params) *float64 { return &p.GridLineWidth }),
	boolField("axes.spines.top", func(p *Params) *bool { return &p.SpinesTop }),
	boolField("axes.spines.right", func(p *Params) *bool { return &p.SpinesRight }),
	floatField("lines.linewidth", 0, 100, func(p *Params) *float64 { return &p.LineWidth }),
	floatField("lines.markersize", 0, 100, func(p *Params) *float64 { return &p.MarkerSize }),
	{
		key: "axes.prop_cycle",
		get: func(p *Params) any { return slices.Clone(p.ColorCycle) },
		set: func(p *Params, v any) error {
			list, err := toStrings(v)
			if err != nil {
				return err
			}
			for _, c := range list {
				if !ValidColor(c) {
					return fmt.Errorf("%w: %q is not a hex color", ErrInvalidValue, c)
				}
			}
			p.ColorCycle = list
			return nil
		},
		check: func(p *Params) error {
			if len(p.ColorCycle) == 0 {
				return fmt.Errorf("%w: color cycle is empty", ErrInvalidValue)
			}
			for _, c := range p.ColorCycle {
				if !ValidColor(c) {
					return fmt.Errorf("%w: %q is not a hex color", ErrInvalidValue, c)
				}
			}
			return nil
		},
		equal: func(a, b *Params) bool { return slices.Equal(a.ColorCycle, b.ColorCycle) },
	},
	{
		key: "font.family",
		get: func(p *Params) any { return p.FontFamily },
		set: func(p *Params, v any) error {
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("%w: want string, got %T", ErrInvalidValue, v)
			}
			p.FontFamily = s
			return nil
		},
		check: func(p *Params) error {
			if p.FontFamily == "" {
				return fmt.Errorf("%w: font family is empty", ErrInvalidValue)
			}
			return nil
		},
		equal: func(a, b *Params) bool { return a.FontFamily == b.FontFamily },
	},
	{
		key: "font.sans-serif",
		get: func(p *Params) any { return slices.Clone(p.FontSansSerif) },
		set: func(p *Params, v any) error {
			list, err := toStrings(v)
			if err != nil {
				return err
			}
			p.FontSansSerif = list
			return nil
		},
		check: func(*Params) error { return nil },
		equal: func(a, b *Params) bool { return slices.Equal(a.FontSansSerif, b.FontSansSerif) },
	},
	boolField("legend.frameon", func(p *Params) *bool { return &p.LegendFrame }),
	boolField("axes.unicode_minus", func(p *Params) *bool { return &p.UnicodeMinus }),
	boolField("axes.formatter.useoffset", func(p *Params) *bool { return &p.FormatterUseOffset }),
	{
		key: "axes.formatter.limits",
		get: func(p *Params) any { return p.FormatterLimits },
		set: func(p *Params, v any) error {
			pair, err := toIntPair(v)
			if err != nil {
				return err
			}
			p.FormatterLimits = pair
			return nil
		},
		check: func(p *Params) error {
			if p.FormatterLimits[0] > p.FormatterLimits[1] {
				return fmt.Errorf("%w: formatter limits %v are reversed", ErrInvalidValue, p.FormatterLimits)
			}
			return nil
		},
		equal: func(a, b *Params) bool { return a.FormatterLimits == b.FormatterLimits },
	},
	floatField("errorbar.capsize", 0, 100, func(p *Params) *float64 { return &p.ErrorbarCapsize }),
	colorField("patch.edgecolor", func(p *Params) *string { return &p.PatchEdgeColor }),
	colorField("boxplot.flierprops.markeredgecolor", func(p *Params) *string { return &p.FlierEdgeColor }),
}

var fieldIndex = func() map[string]field {
	index := make(map[string]field, len(fields))
	for _, f := range fields {
		index[f.key] = f
	}
	return index
}()

func toColor(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: want color string, got %T", ErrInvalidValue, v)
	}
	if !ValidColor(s) {
		return "", fmt.Errorf("%w: %q is not a hex color", ErrInvalidValue, s)
	}
	return s, nil
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%w: want number, got %T", ErrInvalidValue, v)
	}
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%w: %v is not an integer", ErrInvalidValue, n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: want integer, got %T", ErrInvalidValue, v)
	}
}

func toStrings(v any) ([]string, error) {
	switch list := v.(type) {
	case []string:
		return slices.Clone(list), nil
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: want string list item, got %T", ErrInvalidValue, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: want string list, got %T", ErrInvalidValue, v)
	}
}

func toIntPair(v any) ([2]int, error) {
	switch pair := v.(type) {
	case [2]int:
		return pair, nil
	case []int:
		if len(pair) != 2 {
			return [2]int{}, fmt.Errorf("%w: want 2 integers, got %d", ErrInvalidValue, len(pair))
		}
		return [2]int{pair[0], pair[1]}, nil
	case []any:
		if len(pair) != 2 {
			return [2]int{}, fmt.Errorf("%w: want 2 integers, got %d", ErrInvalidValue, len(pair))
		}
		lo, err := toInt(pair[0])
		if err != nil {
			return [2]int{}, err
		}
		hi, err := toInt(pair[1])
		if err != nil {
			return [2]int{}, err
		}
		return [2]int{lo, hi}, nil
	default:
		return [2]int{}, fmt.Errorf("%w: want integer pair, got %T", ErrInvalidValue, v)
	}
}
