package themes

import (
	"iter"
	"sync"

	"github.com/opencode-ai/namuplot/style"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry of builtin themes. It is built once and
// never modified. It panics if the bundled definitions are invalid.
func Default() *Registry {
	defaultOnce.Do(func() {
		defs, err := LoadBuiltinDefinitions()
		if err != nil {
			panic(err)
		}
		reg, err := NewRegistry(defs...)
		if err != nil {
			panic(err)
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}

// Available returns the builtin theme names in order.
func Available() []string { return Default().Available() }

// Get returns a builtin theme.
func Get(name string) (Theme, error) { return Default().Get(name) }

// Use applies a builtin theme to the process-wide style.
func Use(name string) (Theme, error) { return Default().Use(name) }

// IterUse applies each builtin theme in turn. See Registry.IterUse.
func IterUse() iter.Seq2[string, Theme] { return Default().IterUse() }

// IterUseNames applies the named builtin themes in turn.
func IterUseNames(names ...string) (iter.Seq2[string, Theme], error) {
	return Default().IterUseNames(names...)
}

// Context applies a builtin theme while fn runs.
func Context(name string, fn func(Theme) error) error { return Default().Context(name, fn) }

// ToParams returns a copy of a builtin theme's style attributes.
func ToParams(name string) (style.Params, error) { return Default().ToParams(name) }
