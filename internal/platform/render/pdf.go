package render

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"

	"payslip/internal/domain/payroll"
	"payslip/internal/domain/translit"
)

const unicodeFamily = "slip"

type rgb struct{ r, g, b int }

var (
	pdfYellow      = rgb{255, 255, 0}
	pdfLightYellow = rgb{255, 255, 204}
	pdfOrange      = rgb{255, 192, 0}
	pdfLightBlue   = rgb{218, 238, 243}
	pdfLightGreen  = rgb{226, 239, 218}
	pdfWhite       = rgb{255, 255, 255}
)

// PDF renders A4 slips. Without a TrueType font the core Helvetica font is
// used and all text is transliterated to ASCII.
type PDF struct {
	font []byte
}

// NewPDF loads the font at fontPath when one is given.
func NewPDF(fontPath string) (*PDF, error) {
	if fontPath == "" {
		return &PDF{}, nil
	}
	data, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("read pdf font: %w", err)
	}
	return &PDF{font: data}, nil
}

func (p *PDF) Format() string { return payroll.FormatPDF }

func (p *PDF) Unicode() bool { return len(p.font) > 0 }

func (p *PDF) Render(slip payroll.Slip, period payroll.Period) (payroll.Document, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 10)

	family := "Helvetica"
	text := translit.ToASCII
	if p.Unicode() {
		pdf.AddUTF8FontFromBytes(unicodeFamily, "", p.font)
		pdf.AddUTF8FontFromBytes(unicodeFamily, "B", p.font)
		pdf.AddUTF8FontFromBytes(unicodeFamily, "I", p.font)
		family = unicodeFamily
		text = func(s string) string { return s }
	}
	pdf.AddPage()

	l := BuildLayout(slip, period)
	cell := func(w, h float64, s, align string, fill rgb) {
		pdf.SetFillColor(fill.r, fill.g, fill.b)
		pdf.CellFormat(w, h, text(s), "1", 0, align, true, 0, "")
	}

	pdf.SetFont(family, "B", 16)
	pdf.SetTextColor(255, 0, 0)
	pdf.CellFormat(0, 10, text(l.Title), "", 1, "C", false, 0, "")
	pdf.Ln(4)
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont(family, "", 9)
	for _, info := range l.Info {
		cell(35, 7, info.Label, "L", pdfYellow)
		cell(50, 7, info.Value, "L", pdfWhite)
		cell(40, 7, info.SideLabel, "L", pdfYellow)
		cell(50, 7, info.SideValue, "L", pdfWhite)
		pdf.Ln(-1)
	}
	pdf.Ln(5)

	pdf.SetFont(family, "B", 10)
	cell(15, 8, l.NoHeader, "C", pdfOrange)
	cell(80, 8, l.IncomeHeader, "C", pdfOrange)
	cell(80, 8, l.DeductionHeader, "C", pdfOrange)
	pdf.Ln(-1)

	pdf.SetFont(family, "", 9)
	for _, line := range l.Lines {
		cell(15, 7, line.No, "C", pdfLightBlue)
		cell(45, 7, line.IncomeLabel, "L", pdfLightBlue)
		cell(35, 7, line.IncomeAmount, "R", pdfLightGreen)
		cell(45, 7, line.DeductionLabel, "L", pdfLightBlue)
		cell(35, 7, line.DeductionAmount, "R", pdfLightGreen)
		pdf.Ln(-1)
	}
	cell(15, 7, "", "C", pdfWhite)
	cell(45, 7, l.TotalIncomeLabel, "L", pdfYellow)
	cell(35, 7, l.TotalIncome, "R", pdfLightYellow)
	cell(45, 7, l.TotalDeductionsLabel, "L", pdfYellow)
	cell(35, 7, l.TotalDeductions, "R", pdfLightYellow)
	pdf.Ln(9)

	pdf.SetFont(family, "B", 11)
	pdf.SetTextColor(255, 0, 0)
	cell(140, 9, l.NetLabel, "C", pdfYellow)
	cell(35, 9, l.Net, "R", pdfLightYellow)
	pdf.Ln(-1)
	pdf.SetTextColor(0, 0, 0)

	pdf.Ln(8)
	pdf.SetFont(family, "I", 8)
	for _, line := range l.Footer {
		pdf.MultiCell(0, 4, text(line), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return payroll.Document{}, fmt.Errorf("write pdf: %w", err)
	}
	return payroll.Document{ContentType: payroll.ContentTypePDF, Data: buf.Bytes()}, nil
}
