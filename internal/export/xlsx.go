package export

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/Rana718/fakebank/internal/bank"
)

// exportToXLSX writes one sheet per table into a single workbook using the
// stream writer, which keeps rows out of the in-memory cell model.
func exportToXLSX(ctx context.Context, dir string, tables []bank.Table) (map[string]string, error) {
	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	files := make(map[string]string, len(tables))
	for i, t := range tables {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), t.Name); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(t.Name); err != nil {
			return nil, fmt.Errorf("failed to add sheet %s: %w", t.Name, err)
		}
		if err := writeSheet(f, t, header); err != nil {
			return nil, fmt.Errorf("failed to write sheet %s: %w", t.Name, err)
		}
		files[t.Name] = WorkbookFile
	}

	if err := f.SaveAs(filepath.Join(dir, WorkbookFile)); err != nil {
		return nil, fmt.Errorf("failed to save workbook: %w", err)
	}
	return files, nil
}

func writeSheet(f *excelize.File, t bank.Table, headerStyle int) error {
	sw, err := f.NewStreamWriter(t.Name)
	if err != nil {
		return err
	}

	head := make([]any, len(t.Columns))
	for i, name := range t.ColumnNames() {
		head[i] = excelize.Cell{StyleID: headerStyle, Value: name}
	}
	if err := sw.SetRow("A1", head); err != nil {
		return err
	}

	for r, row := range t.Rows {
		cells := make([]any, len(t.Columns))
		for i, col := range t.Columns {
			cells[i] = sheetValue(col, row[i])
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, cells); err != nil {
			return err
		}
	}
	return sw.Flush()
}

// sheetValue keeps counts and amounts numeric; everything else is the
// text rendering shared with the CSV output.
func sheetValue(col bank.Column, v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case int:
		return x
	case decimal.Decimal:
		return x.InexactFloat64()
	default:
		return col.Format(v)
	}
}
