package payroll

import "strings"

type source int

const (
	fromEmployee source = iota
	fromSalary
)

// predicate is evaluated against a lowercased column name.
type predicate func(col string) bool

func all(words ...string) predicate {
	return func(col string) bool {
		for _, w := range words {
			if !strings.Contains(col, w) {
				return false
			}
		}
		return true
	}
}

func none(words ...string) predicate {
	return func(col string) bool {
		for _, w := range words {
			if strings.Contains(col, w) {
				return false
			}
		}
		return true
	}
}

func and(ps ...predicate) predicate {
	return func(col string) bool {
		for _, p := range ps {
			if !p(col) {
				return false
			}
		}
		return true
	}
}

func or(ps ...predicate) predicate {
	return func(col string) bool {
		for _, p := range ps {
			if p(col) {
				return true
			}
		}
		return false
	}
}

// fieldRule binds a slip field to the column that feeds it. Tiers are tried
// in order; a later tier only runs while the field is still unset.
type fieldRule struct {
	name    string
	source  source
	tiers   []predicate
	numeric bool
	assign  func(s *Slip, text string, amount float64)
}

var slipRules = []fieldRule{
	{
		name:   "bankAccount",
		source: fromEmployee,
		tiers: []predicate{
			all("số tài khoản", "ngân hàng"),
			all("số tài khoản"),
		},
		assign: func(s *Slip, text string, _ float64) { s.BankAccount = text },
	},
	{
		name:   "bankName",
		source: fromEmployee,
		tiers: []predicate{
			or(all("tại ngân hàng"), all("ngân hàng", "chi nhánh")),
			and(all("ngân hàng"), none("số")),
		},
		assign: func(s *Slip, text string, _ float64) { s.BankName = text },
	},
	{
		name:    "totalIncome",
		source:  fromSalary,
		tiers:   []predicate{and(all("thuế tncn", "tổng thu nhập"), none("chưa", "chịu", "tính", "bao gồm"))},
		numeric: true,
		assign: func(s *Slip, _ string, amount float64) {
			s.AgreedSalary = amount
			s.ActualSalary = amount
		},
	},
	{
		name:    "baseSalary",
		source:  fromSalary,
		tiers:   []predicate{all("lương cơ bản")},
		numeric: true,
		assign:  func(s *Slip, _ string, amount float64) { s.BaseSalary = amount },
	},
	{
		name:    "socialInsurance",
		source:  fromSalary,
		tiers:   []predicate{and(or(all("người lao động phải nộp"), all("nld phải nộp")), all("tổng cộng"))},
		numeric: true,
		assign:  func(s *Slip, _ string, amount float64) { s.SocialInsurance = amount },
	},
	{
		name:   "unionFee",
		source: fromSalary,
		tiers: []predicate{
			all("kinh phí công đoàn", "phí đoàn viên"),
			all("phí đoàn viên"),
		},
		numeric: true,
		assign:  func(s *Slip, _ string, amount float64) { s.UnionFee = amount },
	},
	{
		name:    "incomeTax",
		source:  fromSalary,
		tiers:   []predicate{and(all("thuế tncn phải nộp"), none("tr", "%"))},
		numeric: true,
		assign:  func(s *Slip, _ string, amount float64) { s.IncomeTax = amount },
	},
}
