package render

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/opencode-ai/namuplot/internal/logging"
	"github.com/opencode-ai/namuplot/style"
	"github.com/opencode-ai/namuplot/themes"
)

// ManifestFile is the name of the index written next to the examples.
const ManifestFile = "manifest.json"

// ExamplesOptions selects what Examples renders.
type ExamplesOptions struct {
	OutDir string
	Names  []string // empty means every theme
	Kinds  []Kind   // empty means every kind

	// OnTheme, if set, is called after each theme's files are written.
	OnTheme func(ManifestTheme)
}

// Manifest records one Examples run.
type Manifest struct {
	RunID       string          `json:"run_id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Format      Format          `json:"format"`
	Width       int             `json:"width"`
	Height      int             `json:"height"`
	Themes      []ManifestTheme `json:"themes"`
}

// ManifestTheme lists the files written for one theme, relative to OutDir.
type ManifestTheme struct {
	Name  string   `json:"name"`
	Files []string `json:"files"`
}

// Examples applies each selected theme in turn and renders every chart kind
// into OutDir/<theme>/<kind>.<ext>. The process-wide style in effect before
// the call is restored afterwards.
func (r *Renderer) Examples(ctx context.Context, reg *themes.Registry, opts ExamplesOptions) (*Manifest, error) {
	if reg == nil {
		return nil, fmt.Errorf("theme registry is required")
	}
	if strings.TrimSpace(opts.OutDir) == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	kinds := opts.Kinds
	if len(kinds) == 0 {
		kinds = Kinds()
	}

	seq, err := reg.IterUseNames(opts.Names...)
	if err != nil {
		return nil, err
	}

	scope, err := style.Push(style.Current())
	if err != nil {
		return nil, err
	}
	defer scope.Restore()

	logger := logging.Component("render")
	manifest := &Manifest{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Format:      r.opts.Format,
		Width:       r.opts.Width,
		Height:      r.opts.Height,
	}

	for name, theme := range seq {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
			return nil, fmt.Errorf("theme name %q cannot be used as a directory name", name)
		}

		dir := filepath.Join(opts.OutDir, name)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}

		entry := ManifestTheme{Name: name}
		for _, kind := range kinds {
			rel := filepath.Join(name, string(kind)+r.opts.Format.Ext())
			if err := r.renderFile(filepath.Join(opts.OutDir, rel), kind, theme); err != nil {
				return nil, fmt.Errorf("render %s %s: %w", name, kind, err)
			}
			entry.Files = append(entry.Files, filepath.ToSlash(rel))
		}
		manifest.Themes = append(manifest.Themes, entry)
		if opts.OnTheme != nil {
			opts.OnTheme(entry)
		}

		logger.Info().
			Str("theme", name).
			Int("files", len(entry.Files)).
			Msg("rendered examples")
	}

	if err := writeManifest(filepath.Join(opts.OutDir, ManifestFile), manifest); err != nil {
		return nil, err
	}
	return manifest, nil
}

func (r *Renderer) renderFile(path string, kind Kind, theme themes.Theme) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.Render(f, kind, theme); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeManifest(path string, manifest *Manifest) error {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
