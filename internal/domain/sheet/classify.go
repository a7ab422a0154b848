package sheet

import "strings"

var (
	NameKeywords  = []string{"họ tên", "ho ten", "tên nhân viên"}
	EmailKeywords = []string{"email", "mail", "e-mail"}
)

var placeholderPrefixes = []string{"_", "Unnamed", "Col_"}

// IsSemanticColumn rejects synthesized placeholders, blank names and names
// that are just numbers.
func IsSemanticColumn(name string) bool {
	s := strings.TrimSpace(name)
	if s == "" || s == "nan" || s == "NaN" {
		return false
	}
	for _, prefix := range placeholderPrefixes {
		if strings.HasPrefix(s, prefix) {
			return false
		}
	}
	return !isNumeric(s)
}

// FindColumn returns the first column whose lowercased name contains a
// keyword. Keywords are tried in order; a later keyword is only consulted
// when no column matched any earlier one.
func FindColumn(t *Table, keywords []string) (string, bool) {
	if t == nil {
		return "", false
	}
	for _, keyword := range keywords {
		kw := strings.ToLower(keyword)
		for _, col := range t.Columns {
			if strings.Contains(strings.ToLower(col), kw) {
				return col, true
			}
		}
	}
	return "", false
}

func FindNameColumn(t *Table) (string, bool) {
	return FindColumn(t, NameKeywords)
}

func FindEmailColumn(t *Table) (string, bool) {
	return FindColumn(t, EmailKeywords)
}

// EmailOf returns the trimmed address stored in column, or "" when the value
// does not look like an address.
func EmailOf(rec Record, column string) string {
	if column == "" {
		return ""
	}
	value := strings.TrimSpace(String(rec[column]))
	if !strings.Contains(value, "@") {
		return ""
	}
	return value
}

// NameKey is the join key between the two sheets.
func NameKey(v any) string {
	return strings.ToLower(strings.TrimSpace(String(v)))
}
