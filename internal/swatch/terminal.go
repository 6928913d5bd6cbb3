// Package swatch presents theme palettes outside of charts: colored rows in
// the terminal and filled cells in a spreadsheet.
package swatch

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/opencode-ai/namuplot/themes"
)

const swatchWidth = 8

// LabelColor returns black or white, whichever reads better on bg.
func LabelColor(bg string) string {
	c, err := colorful.Hex(bg)
	if err != nil {
		return "#000000"
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#FFFFFF"
}

// Terminal writes one row per color role. With color enabled each row
// starts with a block painted in the role's color.
func Terminal(w io.Writer, theme themes.Theme, color bool) error {
	renderer := lipgloss.NewRenderer(w)
	colors := theme.Colors()

	header := renderer.NewStyle().Bold(true)
	if !color {
		header = renderer.NewStyle()
	}
	title := theme.Name()
	if d := theme.Description(); d != "" {
		title += " - " + d
	}
	if _, err := fmt.Fprintln(w, header.Render(title)); err != nil {
		return err
	}

	for _, role := range themes.Roles() {
		value, _ := colors.Get(role)
		block := strings.Repeat(" ", swatchWidth)
		if color {
			block = renderer.NewStyle().
				Background(lipgloss.Color(value)).
				Foreground(lipgloss.Color(LabelColor(value))).
				Render(padRight(string(role), swatchWidth))
		}
		if _, err := fmt.Fprintf(w, "%s  %-10s %s\n", block, role, value); err != nil {
			return err
		}
	}
	return nil
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
