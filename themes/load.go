package themes

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// document is a theme file: either a `themes:` list or a single theme at
// the top level.
type document struct {
	Themes     []Definition `yaml:"themes"`
	Definition `yaml:",inline"`
}

// ParseDefinitions decodes theme definitions from YAML.
func ParseDefinitions(data []byte) ([]Definition, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	single := strings.TrimSpace(doc.Name) != "" || len(doc.Colors) > 0 || len(doc.Style) > 0
	switch {
	case len(doc.Themes) > 0 && single:
		return nil, fmt.Errorf("theme file mixes a themes list with top-level theme fields")
	case len(doc.Themes) > 0:
		return doc.Themes, nil
	case single:
		return []Definition{doc.Definition}, nil
	default:
		return nil, fmt.Errorf("theme file defines no themes")
	}
}

// LoadBuiltinDefinitions returns the definitions bundled with namuplot.
func LoadBuiltinDefinitions() ([]Definition, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("read builtin themes: %w", err)
	}

	var defs []Definition
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := builtinFS.ReadFile("builtin/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read builtin themes %s: %w", entry.Name(), err)
		}
		parsed, err := ParseDefinitions(data)
		if err != nil {
			return nil, fmt.Errorf("parse builtin themes %s: %w", entry.Name(), err)
		}
		for i := range parsed {
			parsed[i].Source = "builtin"
		}
		defs = append(defs, parsed...)
	}
	return defs, nil
}

// LoadDefinitions reads definitions from a single file.
func LoadDefinitions(path string) ([]Definition, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("theme path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read themes %s: %w", path, err)
	}

	defs, err := ParseDefinitions(data)
	if err != nil {
		return nil, fmt.Errorf("parse themes %s: %w", path, err)
	}
	for i := range defs {
		defs[i].Source = path
	}
	return defs, nil
}

// LoadDefinitionsFromDir reads every .yaml/.yml file in dir, sorted by file
// name. A missing directory yields no definitions.
func LoadDefinitionsFromDir(dir string) ([]Definition, error) {
	if strings.TrimSpace(dir) == "" {
		return []Definition{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Definition{}, nil
		}
		return nil, fmt.Errorf("read themes dir %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	defs := make([]Definition, 0, len(names))
	for _, name := range names {
		parsed, err := LoadDefinitions(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		defs = append(defs, parsed...)
	}
	return defs, nil
}

// SearchPaths returns theme directories in precedence order.
func SearchPaths(projectDir string) []string {
	paths := make([]string, 0, 3)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".namuplot", "themes"))
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "namuplot", "themes"))
	}

	paths = append(paths, filepath.Join(string(filepath.Separator), "usr", "share", "namuplot", "themes"))
	return paths
}

// LoadFromSearchPaths builds a registry from the extra directories, the
// search paths and the builtins, in that precedence order. The first
// definition of a name wins. Builtin names keep their builtin position even
// when overridden; other themes follow in discovery order.
func LoadFromSearchPaths(projectDir string, extraDirs ...string) (*Registry, error) {
	dirs := append(append([]string{}, extraDirs...), SearchPaths(projectDir)...)

	seen := make(map[string]Definition)
	discovered := make([]string, 0)
	for _, dir := range dirs {
		defs, err := LoadDefinitionsFromDir(dir)
		if err != nil {
			return nil, err
		}
		for _, def := range defs {
			name := strings.TrimSpace(def.Name)
			if _, exists := seen[name]; exists {
				continue
			}
			seen[name] = def
			discovered = append(discovered, name)
		}
	}

	builtins, err := LoadBuiltinDefinitions()
	if err != nil {
		return nil, err
	}

	ordered := make([]Definition, 0, len(builtins)+len(discovered))
	builtinNames := make(map[string]struct{}, len(builtins))
	for _, def := range builtins {
		name := strings.TrimSpace(def.Name)
		builtinNames[name] = struct{}{}
		if override, ok := seen[name]; ok {
			ordered = append(ordered, override)
			continue
		}
		ordered = append(ordered, def)
	}
	for _, name := range discovered {
		if _, ok := builtinNames[name]; ok {
			continue
		}
		ordered = append(ordered, seen[name])
	}

	return NewRegistry(ordered...)
}
