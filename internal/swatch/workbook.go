package swatch

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/namuplot/themes"
	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// Workbook builds a spreadsheet with one sheet per theme. Each row holds a
// role name, its hex value and a cell filled with that color.
func Workbook(reg *themes.Registry) (*excelize.File, error) {
	if reg == nil || reg.Len() == 0 {
		return nil, fmt.Errorf("no themes to export")
	}

	f := excelize.NewFile()
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}

	// Sheet names are case-insensitive. The first theme takes over the
	// default sheet so no sheet is ever deleted.
	seen := make(map[string]string, reg.Len())
	for name, theme := range reg.All() {
		key := strings.ToLower(name)
		if prev, ok := seen[key]; ok {
			f.Close()
			return nil, fmt.Errorf("themes %q and %q map to the same sheet", prev, name)
		}
		first := len(seen) == 0
		seen[key] = name

		if err := addSheet(f, name, first); err != nil {
			f.Close()
			return nil, err
		}
		if err := writeSheet(f, name, theme, headerStyle); err != nil {
			f.Close()
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

func addSheet(f *excelize.File, name string, first bool) error {
	if first {
		if err := f.SetSheetName(defaultSheet, name); err != nil {
			return fmt.Errorf("rename sheet to %q: %w", name, err)
		}
		return nil
	}
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %q: %w", name, err)
	}
	return nil
}

func writeSheet(f *excelize.File, name string, theme themes.Theme, headerStyle int) error {

	headers := []string{"Role", "Hex", "Swatch"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(name, cell, h); err != nil {
			return fmt.Errorf("write header %q: %w", h, err)
		}
	}
	if err := f.SetCellStyle(name, "A1", "C1", headerStyle); err != nil {
		return fmt.Errorf("style header: %w", err)
	}
	if err := f.SetColWidth(name, "A", "C", 14); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	colors := theme.Colors()
	for i, role := range themes.Roles() {
		row := i + 2
		value, _ := colors.Get(role)

		if err := f.SetCellValue(name, fmt.Sprintf("A%d", row), string(role)); err != nil {
			return err
		}
		if err := f.SetCellValue(name, fmt.Sprintf("B%d", row), value); err != nil {
			return err
		}

		fill, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{value}},
			Font: &excelize.Font{Color: LabelColor(value)},
		})
		if err != nil {
			return fmt.Errorf("create fill for %s/%s: %w", name, role, err)
		}
		cell := fmt.Sprintf("C%d", row)
		if err := f.SetCellValue(name, cell, value); err != nil {
			return err
		}
		if err := f.SetCellStyle(name, cell, cell, fill); err != nil {
			return fmt.Errorf("fill %s/%s: %w", name, role, err)
		}
	}
	return nil
}

// WriteWorkbook builds the workbook and saves it to path.
func WriteWorkbook(reg *themes.Registry, path string) error {
	f, err := Workbook(reg)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}
