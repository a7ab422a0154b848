// Package workbook reads Excel workbooks into raw, headerless grids.
package workbook

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"payslip/internal/domain/sheet"
)

type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

// Read returns every worksheet in workbook order. Text cells stay strings so
// leading zeros in account numbers survive; other cells are parsed as
// numbers where possible.
func (r *Reader) Read(src io.Reader) ([]sheet.Named, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	names := f.GetSheetList()
	out := make([]sheet.Named, 0, len(names))
	for _, name := range names {
		rows, err := readSheet(f, name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		out = append(out, sheet.Named{Name: name, Rows: rows})
	}
	return out, nil
}

func readSheet(f *excelize.File, name string) (sheet.RawSheet, error) {
	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	grid := make(sheet.RawSheet, len(rows))
	for r, row := range rows {
		cells := make([]any, len(row))
		for c, value := range row {
			if value == "" {
				continue
			}
			ref, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, err
			}
			kind, err := f.GetCellType(name, ref)
			if err != nil {
				return nil, err
			}
			switch kind {
			case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
				cells[c] = sheet.TextCell(value)
			default:
				cells[c] = sheet.Cell(value)
			}
		}
		grid[r] = cells
	}
	return grid, nil
}
