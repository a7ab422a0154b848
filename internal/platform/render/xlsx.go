package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"payslip/internal/domain/payroll"
)

const slipSheet = "Phiếu Lương"

const (
	colorYellow      = "FFFF00"
	colorLightYellow = "FFFFCC"
	colorOrange      = "FFC000"
	colorLightBlue   = "DAEEF3"
	colorLightGreen  = "E2EFDA"
	colorRed         = "FF0000"
)

type Spreadsheet struct{}

func NewSpreadsheet() *Spreadsheet {
	return &Spreadsheet{}
}

func (s *Spreadsheet) Format() string { return payroll.FormatXLSX }

func (s *Spreadsheet) Render(slip payroll.Slip, period payroll.Period) (payroll.Document, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", slipSheet); err != nil {
		return payroll.Document{}, err
	}
	w := &sheetWriter{f: f}
	w.layout(BuildLayout(slip, period))
	if w.err != nil {
		return payroll.Document{}, fmt.Errorf("build spreadsheet: %w", w.err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return payroll.Document{}, fmt.Errorf("write spreadsheet: %w", err)
	}
	return payroll.Document{ContentType: payroll.ContentTypeXLSX, Data: buf.Bytes()}, nil
}

// sheetWriter keeps the first error so the layout code reads top to bottom.
type sheetWriter struct {
	f      *excelize.File
	err    error
	styles map[string]int
}

type cellStyle struct {
	bold      bool
	italic    bool
	size      float64
	color     string
	fill      string
	border    bool
	alignment string
}

func (w *sheetWriter) style(cs cellStyle) int {
	key := fmt.Sprintf("%+v", cs)
	if id, ok := w.styles[key]; ok {
		return id
	}
	st := &excelize.Style{
		Font: &excelize.Font{Bold: cs.bold, Italic: cs.italic, Size: cs.size, Color: cs.color},
	}
	if cs.fill != "" {
		st.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{cs.fill}}
	}
	if cs.border {
		st.Border = []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		}
	}
	if cs.alignment != "" {
		st.Alignment = &excelize.Alignment{Horizontal: cs.alignment, Vertical: "center"}
	}
	id, err := w.f.NewStyle(st)
	if err != nil {
		w.fail(err)
		return 0
	}
	if w.styles == nil {
		w.styles = map[string]int{}
	}
	w.styles[key] = id
	return id
}

func (w *sheetWriter) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

func (w *sheetWriter) set(cell, value string, cs cellStyle) {
	if w.err != nil {
		return
	}
	if err := w.f.SetCellValue(slipSheet, cell, value); err != nil {
		w.fail(err)
		return
	}
	if err := w.f.SetCellStyle(slipSheet, cell, cell, w.style(cs)); err != nil {
		w.fail(err)
	}
}

// merge joins from..to and styles the whole range so borders run across it.
func (w *sheetWriter) merge(from, to, value string, cs cellStyle) {
	if w.err != nil {
		return
	}
	if err := w.f.MergeCell(slipSheet, from, to); err != nil {
		w.fail(err)
		return
	}
	if err := w.f.SetCellValue(slipSheet, from, value); err != nil {
		w.fail(err)
		return
	}
	if err := w.f.SetCellStyle(slipSheet, from, to, w.style(cs)); err != nil {
		w.fail(err)
	}
}

func (w *sheetWriter) layout(l Layout) {
	for col, width := range map[string]float64{"A": 8, "B": 20, "C": 25, "D": 25, "E": 25} {
		if err := w.f.SetColWidth(slipSheet, col, col, width); err != nil {
			w.fail(err)
		}
	}

	header := cellStyle{bold: true, size: 11, fill: colorYellow, border: true}
	plain := cellStyle{size: 10, border: true}
	label := cellStyle{size: 10, fill: colorLightBlue, border: true}
	figure := cellStyle{size: 10, fill: colorLightGreen, border: true, alignment: "right"}
	total := cellStyle{size: 10, fill: colorLightYellow, border: true, alignment: "right"}
	net := cellStyle{bold: true, size: 12, color: colorRed, fill: colorYellow, border: true, alignment: "center"}
	note := cellStyle{italic: true, size: 9}

	w.merge("A1", "E1", l.Title, cellStyle{bold: true, size: 16, color: colorRed, alignment: "center"})

	row := 3
	for _, info := range l.Info {
		w.set(cellName("A", row), info.Label, header)
		w.set(cellName("B", row), info.Value, plain)
		w.set(cellName("C", row), info.SideLabel, header)
		w.merge(cellName("D", row), cellName("E", row), info.SideValue, plain)
		row++
	}

	row++
	tableHeader := cellStyle{bold: true, size: 11, fill: colorOrange, border: true, alignment: "center"}
	w.set(cellName("A", row), l.NoHeader, tableHeader)
	w.merge(cellName("B", row), cellName("C", row), l.IncomeHeader, tableHeader)
	w.merge(cellName("D", row), cellName("E", row), l.DeductionHeader, tableHeader)

	row++
	for _, line := range l.Lines {
		w.set(cellName("A", row), line.No, cellStyle{size: 10, fill: colorLightBlue, border: true, alignment: "center"})
		w.set(cellName("B", row), line.IncomeLabel, label)
		w.set(cellName("C", row), line.IncomeAmount, figure)
		w.set(cellName("D", row), line.DeductionLabel, label)
		w.set(cellName("E", row), line.DeductionAmount, figure)
		row++
	}

	w.set(cellName("A", row), "", plain)
	w.set(cellName("B", row), l.TotalIncomeLabel, header)
	w.set(cellName("C", row), l.TotalIncome, total)
	w.set(cellName("D", row), l.TotalDeductionsLabel, header)
	w.set(cellName("E", row), l.TotalDeductions, total)

	row++
	w.merge(cellName("A", row), cellName("D", row), l.NetLabel, net)
	w.set(cellName("E", row), l.Net, cellStyle{bold: true, size: 12, color: colorRed, fill: colorLightYellow, border: true, alignment: "right"})

	row += 2
	for _, text := range l.Footer {
		w.merge(cellName("A", row), cellName("E", row), text, note)
		row++
	}
}

func cellName(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
