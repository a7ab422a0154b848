package payroll

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// FormatAmount rounds to a whole unit and groups thousands with dots.
// Zero and non-finite values render as an empty cell.
func FormatAmount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	d := decimal.NewFromFloat(v).Round(0)
	if d.IsZero() {
		return ""
	}
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	digits := d.String()
	var b strings.Builder
	b.WriteString(sign)
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte('.')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Filename builds the download name for one slip. An empty name falls back
// to the row position.
func Filename(name string, position int, period Period, ext string) string {
	clean := sanitize(name)
	if clean == "" {
		clean = fmt.Sprintf("NhanVien_%d", position)
	}
	return fmt.Sprintf("PhieuLuong_%s_Thang%d_%d.%s", clean, period.Month, period.Year, ext)
}

func sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '_' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
