package themes

import (
	"fmt"
	"iter"
	"slices"

	"github.com/opencode-ai/namuplot/internal/logging"
	"github.com/opencode-ai/namuplot/style"
)

// Use applies a theme to the process-wide style and returns it.
func (r *Registry) Use(name string) (Theme, error) {
	theme, err := r.Get(name)
	if err != nil {
		return Theme{}, err
	}
	if err := apply(theme); err != nil {
		return Theme{}, err
	}
	return theme, nil
}

// IterUse applies each theme in registry order and yields it. The caller
// must finish drawing with one theme before advancing, since the next step
// overwrites the process-wide style. Each call starts a new pass.
//
// Registered themes are validated when the registry is built, so applying
// one cannot fail. If it does anyway the iterator panics with the error
// rather than ending the pass early.
func (r *Registry) IterUse() iter.Seq2[string, Theme] {
	return r.iterUse(r.order)
}

// IterUseNames is IterUse restricted to the given names, in the given
// order. Unknown names fail before anything is applied. With no names it
// behaves like IterUse.
func (r *Registry) IterUseNames(names ...string) (iter.Seq2[string, Theme], error) {
	if len(names) == 0 {
		return r.IterUse(), nil
	}
	for _, name := range names {
		if _, err := r.Get(name); err != nil {
			return nil, err
		}
	}
	return r.iterUse(names), nil
}

func (r *Registry) iterUse(names []string) iter.Seq2[string, Theme] {
	names = slices.Clone(names)
	return func(yield func(string, Theme) bool) {
		for _, name := range names {
			theme := r.themes[name]
			if err := apply(theme); err != nil {
				panic(fmt.Errorf("apply theme %q: %w", name, err))
			}
			if !yield(name, theme) {
				return
			}
		}
	}
}

// Context applies a theme while fn runs and restores the previous style
// afterwards, including when fn fails or panics.
func (r *Registry) Context(name string, fn func(Theme) error) error {
	theme, err := r.Get(name)
	if err != nil {
		return err
	}
	return style.With(theme.params, func() error {
		return fn(theme)
	})
}

// ToParams returns an isolated copy of a theme's style attributes.
func (r *Registry) ToParams(name string) (style.Params, error) {
	theme, err := r.Get(name)
	if err != nil {
		return style.Params{}, err
	}
	return theme.Params(), nil
}

func apply(theme Theme) error {
	logger := logging.Component("themes")
	if event := logger.Debug(); event.Enabled() {
		event.
			Str("theme", theme.name).
			Strs("changed", style.Current().Diff(theme.params)).
			Msg("applying theme")
	}
	return style.Update(theme.params)
}
