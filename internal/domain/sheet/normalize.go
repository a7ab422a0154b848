package sheet

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindEmployeeInfo
	KindSalary
)

const (
	headerScanRows    = 5
	placeholderPrefix = "Unnamed"
	identifierMarker  = "STT"
)

var (
	employeeSheetKeywords = []string{"thông tin", "thong tin"}
	salarySheetKeywords   = []string{"lương", "luong"}

	employeeHeaderMarkers = []string{"Họ tên", "STT"}
	salaryHeaderMarkers   = []string{"HỌ TÊN", "HO TEN", "NHÂN VIÊN"}
)

// Classify maps a worksheet name onto the role it plays in the workbook.
func Classify(sheetName string) Kind {
	name := strings.ToLower(norm.NFC.String(sheetName))
	if containsAny(name, employeeSheetKeywords) {
		return KindEmployeeInfo
	}
	if containsAny(name, salarySheetKeywords) {
		return KindSalary
	}
	return KindUnknown
}

// Normalize recovers a named table from a headerless grid. Grids whose hint
// is not recognized, or whose header cannot be found in the first rows, come
// back with positional column names and every non-empty row.
func Normalize(raw RawSheet, hint string) Table {
	kind := Classify(hint)
	if kind == KindUnknown {
		return passthrough(raw)
	}

	headerRow := findHeaderRow(raw, kind)
	if headerRow < 0 {
		return passthrough(raw)
	}

	width := gridWidth(raw)
	top := padRow(raw[headerRow], width)
	sub := make([]any, width)
	if headerRow+1 < len(raw) {
		sub = padRow(raw[headerRow+1], width)
	}
	names := mergeHeaders(top, sub)

	start := headerRow + 2
	if start < len(raw) && isIndexRow(raw[start]) {
		start++
	}

	keep := make([]int, 0, len(names))
	for i, name := range names {
		if !isPlaceholder(name) {
			keep = append(keep, i)
		}
	}
	columns := uniqueNames(pick(names, keep))

	rows := make([]Record, 0, len(raw))
	for r := start; r < len(raw); r++ {
		cells := padRow(raw[r], width)
		rec := make(Record, len(columns))
		empty := true
		for j, idx := range keep {
			rec[columns[j]] = cells[idx]
			if !IsEmpty(cells[idx]) {
				empty = false
			}
		}
		if !empty {
			rows = append(rows, rec)
		}
	}

	table := Table{Columns: columns, Rows: rows}
	filterIdentifier(&table)
	return table
}

func passthrough(raw RawSheet) Table {
	width := gridWidth(raw)
	columns := make([]string, width)
	for i := range columns {
		columns[i] = strconv.Itoa(i)
	}
	rows := make([]Record, 0, len(raw))
	for _, line := range raw {
		cells := padRow(line, width)
		rec := make(Record, width)
		for i, col := range columns {
			rec[col] = cells[i]
		}
		rows = append(rows, rec)
	}
	return Table{Columns: columns, Rows: rows}
}

func findHeaderRow(raw RawSheet, kind Kind) int {
	limit := min(headerScanRows, len(raw))
	for i := 0; i < limit; i++ {
		joined := joinRow(raw[i])
		switch kind {
		case KindEmployeeInfo:
			if containsAny(joined, employeeHeaderMarkers) {
				return i
			}
		case KindSalary:
			if containsAny(strings.ToUpper(joined), salaryHeaderMarkers) {
				return i
			}
		}
	}
	return -1
}

// mergeHeaders folds a two-level header into one name per column. The top
// level behaves like a merged cell: its text carries to the right until a new
// top-level text appears.
func mergeHeaders(top, sub []any) []string {
	names := make([]string, len(top))
	lastTop := ""
	for i := range top {
		main := headerText(top[i])
		child := headerText(sub[i])
		if main != "" {
			lastTop = main
		}
		switch {
		case main != "" && child != "":
			names[i] = main + " - " + child
		case child != "" && lastTop != "":
			names[i] = lastTop + " - " + child
		case child != "":
			names[i] = child
		case main != "":
			names[i] = main
		default:
			names[i] = placeholderName(i)
		}
	}
	return names
}

// headerText is the text a header cell contributes, or "" for blanks,
// auto-generated names and bare numbers.
func headerText(v any) string {
	if _, ok := v.(float64); ok {
		return ""
	}
	s := strings.TrimSpace(String(v))
	if s == "" || strings.HasPrefix(s, placeholderPrefix) || isNumeric(s) {
		return ""
	}
	return norm.NFC.String(s)
}

func placeholderName(i int) string {
	return fmt.Sprintf("_Col_%d", i)
}

func isPlaceholder(name string) bool {
	rest, ok := strings.CutPrefix(name, "_Col_")
	return ok && isDigits(rest)
}

// isIndexRow detects the decorative "1 2 3 ..." row some templates put under
// the header.
func isIndexRow(row []any) bool {
	seen := 0
	for _, v := range row {
		if IsEmpty(v) {
			continue
		}
		if !isDigits(strings.ReplaceAll(String(v), ".", "")) {
			return false
		}
		seen++
		if seen == 3 {
			break
		}
	}
	return seen > 0
}

func filterIdentifier(t *Table) {
	idCol := ""
	for _, col := range t.Columns {
		if strings.Contains(strings.ToUpper(col), identifierMarker) {
			idCol = col
			break
		}
	}
	if idCol == "" {
		return
	}
	kept := t.Rows[:0]
	for _, rec := range t.Rows {
		n, ok := Number(rec[idCol])
		if !ok || n < 1 {
			continue
		}
		rec[idCol] = n
		kept = append(kept, rec)
	}
	t.Rows = kept
}

func uniqueNames(names []string) []string {
	seen := make(map[string]int, len(names))
	out := make([]string, len(names))
	for i, name := range names {
		n := seen[name]
		seen[name] = n + 1
		if n == 0 {
			out[i] = name
			continue
		}
		candidate := fmt.Sprintf("%s.%d", name, n)
		for seen[candidate] > 0 {
			n++
			candidate = fmt.Sprintf("%s.%d", name, n)
		}
		seen[candidate] = 1
		out[i] = candidate
	}
	return out
}

func pick(names []string, idx []int) []string {
	out := make([]string, len(idx))
	for i, j := range idx {
		out[i] = names[j]
	}
	return out
}

func gridWidth(raw RawSheet) int {
	width := 0
	for _, row := range raw {
		width = max(width, len(row))
	}
	return width
}

func padRow(row []any, width int) []any {
	if len(row) >= width {
		return row[:width]
	}
	out := make([]any, width)
	copy(out, row)
	return out
}

func joinRow(row []any) string {
	parts := make([]string, 0, len(row))
	for _, v := range row {
		parts = append(parts, String(v))
	}
	return norm.NFC.String(strings.Join(parts, " "))
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
