// Package sheet turns raw, headerless spreadsheet grids into named tables and
// locates semantic columns in them.
package sheet

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// RawSheet is a grid read verbatim from one worksheet. Cells hold nil,
// string or float64.
type RawSheet [][]any

// Named pairs a raw grid with the worksheet name it came from.
type Named struct {
	Name string
	Rows RawSheet
}

// Record maps a column name to nil, string or float64.
type Record map[string]any

type Table struct {
	Columns []string
	Rows    []Record
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// SemanticColumns is the externally visible column list: placeholders,
// blanks and numeric names are left out.
func (t *Table) SemanticColumns() []string {
	if t == nil {
		return []string{}
	}
	out := make([]string, 0, len(t.Columns))
	for _, col := range t.Columns {
		if IsSemanticColumn(col) {
			out = append(out, col)
		}
	}
	return out
}

// IsEmpty reports whether a cell carries no value.
func IsEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	case float64:
		return math.IsNaN(x)
	}
	return false
}

// String renders a cell the way it reads in the sheet. Whole numbers lose
// their fractional part so account numbers and ids survive.
func String(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		if math.IsNaN(x) {
			return ""
		}
		if x == math.Trunc(x) && math.Abs(x) < 1e15 {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return ""
}

// Number coerces a cell to float64. Strings may carry thousands separators
// ("1.234.567" or "1,234,567").
func Number(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, false
		}
		return x, true
	case string:
		return parseNumber(x)
	}
	return 0, false
}

func parseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f, true
	}
	for _, sep := range []string{".", ","} {
		if strings.Count(s, sep) < 1 || !groupedBy(s, sep) {
			continue
		}
		if f, err := strconv.ParseFloat(strings.ReplaceAll(s, sep, ""), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

// groupedBy reports whether every separator-delimited group after the first
// has exactly three digits.
func groupedBy(s, sep string) bool {
	parts := strings.Split(strings.TrimPrefix(s, "-"), sep)
	if len(parts) < 2 || len(parts[0]) == 0 || len(parts[0]) > 3 {
		return false
	}
	for i, p := range parts {
		if i > 0 && len(p) != 3 {
			return false
		}
		if !isDigits(p) {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// isNumeric reports whether text parses as a plain number.
func isNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// Cell normalizes a value read from a workbook: blank text becomes nil,
// numeric text becomes float64 and other text is NFC-normalized.
func Cell(raw string) any {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return f
	}
	return norm.NFC.String(raw)
}

// TextCell keeps a value the workbook stores as text, so leading zeros in
// account numbers survive.
func TextCell(raw string) any {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return norm.NFC.String(raw)
}
