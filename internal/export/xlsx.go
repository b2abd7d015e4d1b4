package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/gradebook/internal/table"
)

// Sheet pairs a sheet name with the table it holds.
type Sheet struct {
	Name  string
	Table *table.Table
}

// WriteXLSX writes one workbook with a sheet per table: typically the
// full gradebook first, then one sheet per section.
func WriteXLSX(w io.Writer, sheets []Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("no sheets to write")
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			// Reuse the default sheet for the first table.
			if err := f.SetSheetName("Sheet1", s.Name); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			return fmt.Errorf("new sheet %q: %w", s.Name, err)
		}
		if err := writeSheet(f, s.Name, s.Table); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, t *table.Table) error {
	header := append([]string{t.IndexName()}, t.Columns()...)
	for col, name := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("sheet %q header: %w", sheet, err)
		}
	}

	for ri, key := range t.Keys() {
		cell, err := excelize.CoordinatesToCellName(1, ri+2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, key); err != nil {
			return fmt.Errorf("sheet %q row %q: %w", sheet, key, err)
		}
		for ci, c := range t.Columns() {
			cell, err := excelize.CoordinatesToCellName(ci+2, ri+2)
			if err != nil {
				return err
			}
			v := t.Get(key, c)
			var cellVal any
			switch {
			case v.IsMissing():
				continue
			case v.IsNumber():
				cellVal = v.Float()
			default:
				cellVal = v.String()
			}
			if err := f.SetCellValue(sheet, cell, cellVal); err != nil {
				return fmt.Errorf("sheet %q row %q: %w", sheet, key, err)
			}
		}
	}
	return nil
}
