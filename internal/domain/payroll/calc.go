package payroll

import "math"

// ComputePayroll starts gross at income, adds earnings, sums deductions and
// returns what is left as net.
func ComputePayroll(income float64, inputs []InputLine) (gross, deductions, net float64) {
	gross = income
	for _, input := range inputs {
		switch input.Type {
		case ElementTypeEarning:
			gross += input.Amount
		case ElementTypeDeduction:
			deductions += input.Amount
		}
	}
	net = gross - deductions
	return gross, deductions, net
}

// ComputeTotals derives the slip totals. Total income is the actual salary alone.
// Sums that overflow are clamped to the largest finite amount.
func ComputeTotals(social, union, tax, actual float64) (totalDeductions, totalIncome, netPay float64) {
	totalIncome, totalDeductions, _ = ComputePayroll(actual, []InputLine{
		{Type: ElementTypeDeduction, Amount: social},
		{Type: ElementTypeDeduction, Amount: union},
		{Type: ElementTypeDeduction, Amount: tax},
	})
	totalIncome, totalDeductions = clamp(totalIncome), clamp(totalDeductions)
	return totalDeductions, totalIncome, clamp(totalIncome - totalDeductions)
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	}
	return v
}

func applyTotals(slip *Slip) {
	slip.TotalDeductions, slip.TotalIncome, slip.NetPay = ComputeTotals(
		slip.SocialInsurance, slip.UnionFee, slip.IncomeTax, slip.ActualSalary)
}
