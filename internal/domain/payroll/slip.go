package payroll

import (
	"strings"

	"payslip/internal/domain/sheet"
)

// Input carries one employee row and its matched salary row, if any, along
// with the column order of the tables they came from.
type Input struct {
	Employee        sheet.Record
	EmployeeColumns []string
	Salary          sheet.Record
	SalaryColumns   []string
	NameColumn      string
}

// ComputeSlip maps the two records onto the fixed slip schema and derives
// the totals. A nil salary record leaves every salary figure at zero.
func ComputeSlip(in Input) Slip {
	var slip Slip
	if in.NameColumn != "" {
		slip.FullName = strings.TrimSpace(sheet.String(in.Employee[in.NameColumn]))
	}

	set := make(map[string]bool, len(slipRules))
	for _, rule := range slipRules {
		rec, cols := in.Employee, in.EmployeeColumns
		if rule.source == fromSalary {
			rec, cols = in.Salary, in.SalaryColumns
		}
		if rec == nil {
			continue
		}
		for _, tier := range rule.tiers {
			if set[rule.name] {
				break
			}
			col, ok := firstMatch(rec, cols, tier)
			if !ok {
				continue
			}
			if rule.numeric {
				amount, _ := sheet.Number(rec[col])
				rule.assign(&slip, "", amount)
				set[rule.name] = amount != 0
			} else {
				text := strings.TrimSpace(sheet.String(rec[col]))
				rule.assign(&slip, text, 0)
				set[rule.name] = text != ""
			}
		}
	}

	applyTotals(&slip)
	return slip
}

func firstMatch(rec sheet.Record, cols []string, p predicate) (string, bool) {
	for _, col := range cols {
		if sheet.IsEmpty(rec[col]) {
			continue
		}
		if p(strings.ToLower(col)) {
			return col, true
		}
	}
	return "", false
}
