// Package render draws salary slips as spreadsheets and PDF documents. Both
// formats share one fixed layout.
package render

import (
	"fmt"

	"payslip/internal/domain/payroll"
)

type InfoRow struct {
	Label     string
	Value     string
	SideLabel string
	SideValue string
}

type LineRow struct {
	No              string
	IncomeLabel     string
	IncomeAmount    string
	DeductionLabel  string
	DeductionAmount string
}

type Layout struct {
	Title           string
	Info            []InfoRow
	NoHeader        string
	IncomeHeader    string
	DeductionHeader string
	Lines           []LineRow

	TotalIncomeLabel     string
	TotalIncome          string
	TotalDeductionsLabel string
	TotalDeductions      string

	NetLabel string
	Net      string
	Footer   []string
}

var footer = []string{
	"Anh/Chị vui lòng kiểm tra lại thông tin trên phiếu lương. Mọi thắc mắc vui lòng liên hệ Phòng HCNS trong vòng",
	"24 giờ (kể từ thời điểm nhận được thông báo này) để được giải quyết.",
	"Quá thời hạn trên, thông tin trên phiếu lương sẽ được xem là chính xác và không có khiếu nại. Trân trọng cảm ơn!",
}

// BuildLayout fills the template for one slip. Only the first three lines
// of each column carry figures.
func BuildLayout(slip payroll.Slip, period payroll.Period) Layout {
	amount := payroll.FormatAmount
	return Layout{
		Title: fmt.Sprintf("PHIẾU LƯƠNG THÁNG %d NĂM %d", period.Month, period.Year),
		Info: []InfoRow{
			{"Họ tên:", slip.FullName, "Ngày công chuẩn:", ""},
			{"Lương thỏa thuận:", amount(slip.AgreedSalary), "Ngày công thực tế:", ""},
			{"% Lương Thử việc:", "", "Nghỉ phép:", ""},
			{"Lương đóng:", amount(slip.BaseSalary), "Tổng giờ tăng ca:", ""},
			{"Số tài khoản:", slip.BankAccount, "Tên ngân hàng:", slip.BankName},
		},
		NoHeader:        "STT",
		IncomeHeader:    "Các Khoản Thu Nhập",
		DeductionHeader: "Các Khoản Trừ Vào Lương",
		Lines: []LineRow{
			{"1", "Lương thực tế", amount(slip.ActualSalary), "BHXH", amount(slip.SocialInsurance)},
			{"2", "Phép năm", "", "Đoàn phí", amount(slip.UnionFee)},
			{"3", "Lương tăng ca", "", "Thuế Thu Nhập Cá Nhân", amount(slip.IncomeTax)},
			{"4", "Lương bổ sung", "", "Tạm Ứng", ""},
			{"5", "Giữ xe", "", "Tiền phạt", ""},
			{"6", "Công tác phí", "", "Khác", ""},
		},
		TotalIncomeLabel:     "Tổng Cộng Thu Nhập",
		TotalIncome:          amount(slip.TotalIncome),
		TotalDeductionsLabel: "Tổng Cộng Khoản Trừ",
		TotalDeductions:      amount(slip.TotalDeductions),
		NetLabel:             "Tổng Số Tiền Lương Thực Nhận",
		Net:                  amount(slip.NetPay),
		Footer:               footer,
	}
}
