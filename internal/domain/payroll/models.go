package payroll

import "time"

// Slip is the fixed-schema summary of one employee's pay for one period.
// AgreedSalary and ActualSalary come from the same column.
type Slip struct {
	FullName        string  `json:"fullName"`
	AgreedSalary    float64 `json:"agreedSalary"`
	BaseSalary      float64 `json:"baseSalary"`
	BankAccount     string  `json:"bankAccount"`
	BankName        string  `json:"bankName"`
	ActualSalary    float64 `json:"actualSalary"`
	SocialInsurance float64 `json:"socialInsurance"`
	UnionFee        float64 `json:"unionFee"`
	IncomeTax       float64 `json:"incomeTax"`
	TotalDeductions float64 `json:"totalDeductions"`
	TotalIncome     float64 `json:"totalIncome"`
	NetPay          float64 `json:"netPay"`
}

type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func CurrentPeriod(now time.Time) Period {
	return Period{Month: int(now.Month()), Year: now.Year()}
}

// Resolve fills zero fields from now and checks the range.
func (p Period) Resolve(now time.Time) (Period, error) {
	if p.Month == 0 {
		p.Month = int(now.Month())
	}
	if p.Year == 0 {
		p.Year = now.Year()
	}
	if p.Month < 1 || p.Month > 12 || p.Year < 1900 || p.Year > 9999 {
		return Period{}, ErrInvalidPeriod
	}
	return p, nil
}

type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Renderer turns a slip into a downloadable document.
type Renderer interface {
	Format() string
	Render(slip Slip, period Period) (Document, error)
}

type InputLine struct {
	Type   string
	Amount float64
}
