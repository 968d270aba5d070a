package render

import (
	"fmt"
	"os"
	"path/filepath"

	"decochanges/core/diff"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the Excel workbook.
const (
	SheetIncremented = "Existing Decorations"
	SheetAdded       = "New Decorations"
)

const tableStyle = "TableStyleLight1"

// Excel writes the report as an xlsx workbook at path, creating parent
// directories as needed. One sheet per non-empty group; an empty report
// still produces a workbook so callers can decide beforehand whether to
// render at all.
func Excel(path string, report *diff.Report) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	sheets := 0
	if len(report.Incremented) > 0 {
		if err := writeIncrementedSheet(f, report); err != nil {
			return fmt.Errorf("failed to build sheet %q: %w", SheetIncremented, err)
		}
		sheets++
	}
	if len(report.Added) > 0 {
		if err := writeAddedSheet(f, report); err != nil {
			return fmt.Errorf("failed to build sheet %q: %w", SheetAdded, err)
		}
		sheets++
	}

	// Drop the implicit default sheet once real sheets exist.
	if sheets > 0 {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("failed to drop default sheet: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save Excel output: %w", err)
	}
	return nil
}

func writeIncrementedSheet(f *excelize.File, report *diff.Report) error {
	headers := []string{"Decoration", "Added", "Total"}
	rows := make([][]any, 0, len(report.Incremented))
	for _, e := range sortedByName(report.Incremented) {
		rows = append(rows, []any{e.Name, e.Delta, e.NewQuantity})
	}

	if err := writeSheet(f, SheetIncremented, "ExistingDecorations", headers, rows); err != nil {
		return err
	}

	// Totals two rows below the data, summed by Excel itself.
	totalsRow := len(rows) + 3
	if err := f.SetCellValue(SheetIncremented, cell(1, totalsRow), "Total number added:"); err != nil {
		return err
	}
	if err := f.SetCellFormula(SheetIncremented, cell(2, totalsRow), fmt.Sprintf("SUM(B2:B%d)", len(rows)+1)); err != nil {
		return err
	}
	return f.SetCellFormula(SheetIncremented, cell(3, totalsRow), fmt.Sprintf("SUM(C2:C%d)", len(rows)+1))
}

func writeAddedSheet(f *excelize.File, report *diff.Report) error {
	headers := []string{"Decoration", "Amount"}
	rows := make([][]any, 0, len(report.Added))
	for _, e := range sortedByName(report.Added) {
		rows = append(rows, []any{e.Name, e.Quantity})
	}

	if err := writeSheet(f, SheetAdded, "NewDecorations", headers, rows); err != nil {
		return err
	}

	totalsRow := len(rows) + 3
	if err := f.SetCellValue(SheetAdded, cell(1, totalsRow), "Total number added:"); err != nil {
		return err
	}
	if err := f.SetCellFormula(SheetAdded, cell(2, totalsRow), fmt.Sprintf("SUM(B2:B%d)", len(rows)+1)); err != nil {
		return err
	}
	if err := f.SetCellValue(SheetAdded, cell(1, totalsRow+1), "Total number added variations:"); err != nil {
		return err
	}
	return f.SetCellFormula(SheetAdded, cell(2, totalsRow+1), fmt.Sprintf("COUNTA(A2:A%d)", len(rows)+1))
}

// writeSheet creates a sheet with a header row, data rows, an autofiltered
// table, a frozen header and auto-sized columns.
func writeSheet(f *excelize.File, sheet, tableName string, headers []string, rows [][]any) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	widths := make([]int, len(headers))
	for col, header := range headers {
		if err := f.SetCellValue(sheet, cell(col+1, 1), header); err != nil {
			return err
		}
		widths[col] = len(header)
	}

	for row, values := range rows {
		for col, value := range values {
			if err := f.SetCellValue(sheet, cell(col+1, row+2), value); err != nil {
				return err
			}
			if l := len(fmt.Sprint(value)); l > widths[col] {
				widths[col] = l
			}
		}
	}

	tableRange := fmt.Sprintf("%s:%s", cell(1, 1), cell(len(headers), len(rows)+1))
	showStripes := false
	if err := f.AddTable(sheet, &excelize.Table{
		Range:          tableRange,
		Name:           tableName,
		StyleName:      tableStyle,
		ShowRowStripes: &showStripes,
	}); err != nil {
		return err
	}

	for col, width := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		// Leave room for the filter dropdown.
		if err := f.SetColWidth(sheet, name, name, float64(width+6)); err != nil {
			return err
		}
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func cell(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		// Callers only pass small positive coordinates.
		panic(err)
	}
	return name
}
