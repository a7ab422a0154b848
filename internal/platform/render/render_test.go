package render

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"payslip/internal/domain/payroll"
)

func sampleSlip() payroll.Slip {
	return payroll.Slip{
		FullName:        "Nguyễn Văn A",
		AgreedSalary:    5_000_000,
		BaseSalary:      4_000_000,
		BankAccount:     "0011",
		BankName:        "Vietcombank",
		ActualSalary:    5_000_000,
		SocialInsurance: 1_000_000,
		UnionFee:        50_000,
		IncomeTax:       200_000,
		TotalDeductions: 1_250_000,
		TotalIncome:     5_000_000,
		NetPay:          3_750_000,
	}
}

func TestBuildLayout(t *testing.T) {
	l := BuildLayout(sampleSlip(), payroll.Period{Month: 3, Year: 2024})

	assert.Equal(t, "PHIẾU LƯƠNG THÁNG 3 NĂM 2024", l.Title)
	require.Len(t, l.Info, 5)
	assert.Equal(t, "Nguyễn Văn A", l.Info[0].Value)
	assert.Equal(t, "5.000.000", l.Info[1].Value)
	assert.Equal(t, "4.000.000", l.Info[3].Value)
	assert.Equal(t, "Vietcombank", l.Info[4].SideValue)

	require.Len(t, l.Lines, 6)
	assert.Equal(t, "1.000.000", l.Lines[0].DeductionAmount)
	assert.Equal(t, "50.000", l.Lines[1].DeductionAmount)
	assert.Equal(t, "200.000", l.Lines[2].DeductionAmount)
	for _, line := range l.Lines[3:] {
		assert.Empty(t, line.IncomeAmount)
		assert.Empty(t, line.DeductionAmount)
	}
	assert.Equal(t, "1.250.000", l.TotalDeductions)
	assert.Equal(t, "3.750.000", l.Net)
	assert.Len(t, l.Footer, 3)
}

func TestSpreadsheetRender(t *testing.T) {
	r := NewSpreadsheet()
	assert.Equal(t, payroll.FormatXLSX, r.Format())

	doc, err := r.Render(sampleSlip(), payroll.Period{Month: 3, Year: 2024})
	require.NoError(t, err)
	assert.Equal(t, payroll.ContentTypeXLSX, doc.ContentType)

	f, err := excelize.OpenReader(bytes.NewReader(doc.Data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{slipSheet}, f.GetSheetList())

	read := func(cell string) string {
		v, err := f.GetCellValue(slipSheet, cell)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "PHIẾU LƯƠNG THÁNG 3 NĂM 2024", read("A1"))
	assert.Equal(t, "Họ tên:", read("A3"))
	assert.Equal(t, "Nguyễn Văn A", read("B3"))
	assert.Equal(t, "Vietcombank", read("D7"))
	assert.Equal(t, "Các Khoản Thu Nhập", read("B9"))
	assert.Equal(t, "5.000.000", read("C10"))
	assert.Equal(t, "BHXH", read("D10"))
	assert.Equal(t, "1.250.000", read("E16"))
	assert.Equal(t, "Tổng Số Tiền Lương Thực Nhận", read("A17"))
	assert.Equal(t, "3.750.000", read("E17"))

	merged, err := f.GetMergeCells(slipSheet)
	require.NoError(t, err)
	assert.NotEmpty(t, merged)

	width, err := f.GetColWidth(slipSheet, "B")
	require.NoError(t, err)
	assert.Equal(t, float64(20), width)
}

func TestPDFRenderTransliterates(t *testing.T) {
	r, err := NewPDF("")
	require.NoError(t, err)
	assert.False(t, r.Unicode())
	assert.Equal(t, payroll.FormatPDF, r.Format())

	doc, err := r.Render(sampleSlip(), payroll.Period{Month: 3, Year: 2024})
	require.NoError(t, err)
	assert.Equal(t, payroll.ContentTypePDF, doc.ContentType)
	assert.True(t, bytes.HasPrefix(doc.Data, []byte("%PDF-")))
}

func TestNewPDFMissingFont(t *testing.T) {
	_, err := NewPDF(filepath.Join(t.TempDir(), "missing.ttf"))
	assert.Error(t, err)
}
