package themes

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"sort"
	"strings"
)

var (
	// ErrThemeNotFound is returned when a theme name is not registered.
	ErrThemeNotFound = errors.New("theme not found")
	// ErrDuplicateTheme is returned when two definitions share a name.
	ErrDuplicateTheme = errors.New("duplicate theme name")
)

// Registry is an ordered, read-only set of themes.
type Registry struct {
	order  []string
	themes map[string]Theme
}

// NewRegistry builds themes from definitions, keeping their order. It fails
// on the first invalid or duplicate definition.
func NewRegistry(defs ...Definition) (*Registry, error) {
	r := &Registry{
		order:  make([]string, 0, len(defs)),
		themes: make(map[string]Theme, len(defs)),
	}
	for _, def := range defs {
		theme, err := newTheme(def)
		if err != nil {
			return nil, err
		}
		if _, exists := r.themes[theme.name]; exists {
			return nil, &DefinitionError{Theme: theme.name, Source: def.Source, Field: "name", Err: ErrDuplicateTheme}
		}
		r.themes[theme.name] = theme
		r.order = append(r.order, theme.name)
	}
	return r, nil
}

// Available returns the registered names in registry order.
func (r *Registry) Available() []string {
	return slices.Clone(r.order)
}

// Len returns the number of registered themes.
func (r *Registry) Len() int {
	return len(r.order)
}

// Get returns the theme with exactly this name.
func (r *Registry) Get(name string) (Theme, error) {
	theme, ok := r.themes[name]
	if !ok {
		sorted := slices.Clone(r.order)
		sort.Strings(sorted)
		return Theme{}, fmt.Errorf("%w: %q (available: %s)", ErrThemeNotFound, name, strings.Join(sorted, ", "))
	}
	return theme, nil
}

// All iterates the registered themes in order without applying them.
func (r *Registry) All() iter.Seq2[string, Theme] {
	return func(yield func(string, Theme) bool) {
		for _, name := range r.order {
			if !yield(name, r.themes[name]) {
				return
			}
		}
	}
}
