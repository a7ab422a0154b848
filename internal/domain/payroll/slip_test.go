package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payslip/internal/domain/sheet"
)

func TestComputeSlipMapsColumns(t *testing.T) {
	info := sheet.Record{
		"Họ tên":                 " Nguyễn Văn A ",
		"Số tài khoản ngân hàng": float64(1234567890123),
		"Mở tại Ngân hàng":       "Vietcombank",
		"Số tài khoản phụ":       "999",
	}
	infoCols := []string{"Họ tên", "Số tài khoản ngân hàng", "Mở tại Ngân hàng", "Số tài khoản phụ"}
	salary := sheet.Record{
		"HỌ TÊN": "nguyễn văn a",
		"Thuế TNCN - Tổng thu nhập chịu thuế": float64(9_999_999),
		"Thuế TNCN - Tổng Thu Nhập":           float64(5_000_000),
		"Lương cơ bản":                        "4.000.000",
		"Người lao động phải nộp - Tổng cộng": float64(1_000_000),
		"Kinh phí công đoàn - Phí đoàn viên":  float64(50_000),
		"Thuế TNCN phải nộp - Tr":             float64(1),
		"Thuế TNCN phải nộp":                  float64(200_000),
	}
	salaryCols := []string{
		"HỌ TÊN",
		"Thuế TNCN - Tổng thu nhập chịu thuế",
		"Thuế TNCN - Tổng Thu Nhập",
		"Lương cơ bản",
		"Người lao động phải nộp - Tổng cộng",
		"Kinh phí công đoàn - Phí đoàn viên",
		"Thuế TNCN phải nộp - Tr",
		"Thuế TNCN phải nộp",
	}

	slip := ComputeSlip(Input{
		Employee:        info,
		EmployeeColumns: infoCols,
		Salary:          salary,
		SalaryColumns:   salaryCols,
		NameColumn:      "Họ tên",
	})

	assert.Equal(t, "Nguyễn Văn A", slip.FullName)
	assert.Equal(t, "1234567890123", slip.BankAccount)
	assert.Equal(t, "Vietcombank", slip.BankName)
	assert.Equal(t, float64(5_000_000), slip.AgreedSalary)
	assert.Equal(t, float64(5_000_000), slip.ActualSalary)
	assert.Equal(t, float64(4_000_000), slip.BaseSalary)
	assert.Equal(t, float64(1_000_000), slip.SocialInsurance)
	assert.Equal(t, float64(50_000), slip.UnionFee)
	assert.Equal(t, float64(200_000), slip.IncomeTax)
	assert.Equal(t, float64(1_250_000), slip.TotalDeductions)
	assert.Equal(t, float64(5_000_000), slip.TotalIncome)
	assert.Equal(t, float64(3_750_000), slip.NetPay)
}

func TestComputeSlipFallbackTier(t *testing.T) {
	info := sheet.Record{
		"Số tài khoản ngân hàng": nil,
		"Số tài khoản":           "0011",
		"Ngân hàng":              "ACB",
	}
	salary := sheet.Record{"Phí đoàn viên": float64(30_000)}

	slip := ComputeSlip(Input{
		Employee:        info,
		EmployeeColumns: []string{"Số tài khoản ngân hàng", "Số tài khoản", "Ngân hàng"},
		Salary:          salary,
		SalaryColumns:   []string{"Phí đoàn viên"},
	})

	assert.Equal(t, "0011", slip.BankAccount)
	assert.Equal(t, "ACB", slip.BankName)
	assert.Equal(t, float64(30_000), slip.UnionFee)
	assert.Empty(t, slip.FullName)
}

func TestComputeSlipWithoutSalary(t *testing.T) {
	slip := ComputeSlip(Input{
		Employee:        sheet.Record{"Họ tên": "B"},
		EmployeeColumns: []string{"Họ tên"},
		NameColumn:      "Họ tên",
	})

	require.Equal(t, "B", slip.FullName)
	assert.Zero(t, slip.ActualSalary)
	assert.Zero(t, slip.TotalDeductions)
	assert.Zero(t, slip.NetPay)
}

func TestComputeSlipUnparseableNumber(t *testing.T) {
	slip := ComputeSlip(Input{
		Employee:      sheet.Record{},
		Salary:        sheet.Record{"Lương cơ bản": "n/a"},
		SalaryColumns: []string{"Lương cơ bản"},
	})
	assert.Zero(t, slip.BaseSalary)
}
