// Package directory holds the employee tables from the last upload and
// answers lookups against them by row position.
package directory

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"payslip/internal/domain/sheet"
)

// Directory is an immutable snapshot of one upload.
type Directory struct {
	info   *sheet.Table
	salary *sheet.Table

	infoColumns   []string
	salaryColumns []string

	nameColumn       string
	emailColumn      string
	salaryNameColumn string

	salaryByName map[string]int
	employees    []Summary
}

// Build derives the column lists, the employee list and the salary join
// index. salary may be nil.
func Build(info, salary *sheet.Table) *Directory {
	if info == nil {
		info = &sheet.Table{}
	}
	d := &Directory{
		info:          info,
		salary:        salary,
		infoColumns:   info.SemanticColumns(),
		salaryColumns: salary.SemanticColumns(),
		salaryByName:  map[string]int{},
		employees:     []Summary{},
	}
	d.nameColumn, _ = sheet.FindNameColumn(info)
	d.emailColumn, _ = sheet.FindEmailColumn(info)

	if salary != nil {
		d.salaryNameColumn, _ = sheet.FindNameColumn(salary)
		if d.salaryNameColumn != "" {
			for i, rec := range salary.Rows {
				key := sheet.NameKey(rec[d.salaryNameColumn])
				if key == "" {
					continue
				}
				if _, seen := d.salaryByName[key]; !seen {
					d.salaryByName[key] = i
				}
			}
		}
	}

	if d.nameColumn != "" {
		for i, rec := range info.Rows {
			name := strings.TrimSpace(sheet.String(rec[d.nameColumn]))
			if name == "" {
				continue
			}
			d.employees = append(d.employees, Summary{
				Index: i,
				Name:  name,
				Email: sheet.EmailOf(rec, d.emailColumn),
			})
		}
	}
	return d
}

func (d *Directory) Len() int                { return d.info.Len() }
func (d *Directory) InfoColumns() []string   { return d.infoColumns }
func (d *Directory) SalaryColumns() []string { return d.salaryColumns }
func (d *Directory) Employees() []Summary    { return d.employees }
func (d *Directory) NameColumn() string      { return d.nameColumn }
func (d *Directory) HasSalary() bool         { return d.salary != nil }

// AllColumns returns the full declaration-ordered column lists, placeholders
// included.
func (d *Directory) AllColumns() (info, salary []string) {
	info = d.info.Columns
	if d.salary != nil {
		salary = d.salary.Columns
	}
	return info, salary
}

func (d *Directory) Employee(i int) (sheet.Record, error) {
	if i < 0 || i >= d.info.Len() {
		return nil, ErrEmployeeNotFound
	}
	return d.info.Rows[i], nil
}

// SalaryFor returns the first salary row whose name matches employee i
// after trimming and lowercasing. A missing match is not an error.
func (d *Directory) SalaryFor(i int) (sheet.Record, error) {
	rec, err := d.Employee(i)
	if err != nil {
		return nil, err
	}
	if d.salary == nil || d.nameColumn == "" || d.salaryNameColumn == "" {
		return nil, nil
	}
	key := sheet.NameKey(rec[d.nameColumn])
	if key == "" {
		return nil, nil
	}
	j, ok := d.salaryByName[key]
	if !ok {
		return nil, nil
	}
	return d.salary.Rows[j], nil
}

// EmailFor returns the address on row i, or "" when the row has none.
func (d *Directory) EmailFor(i int) (string, error) {
	rec, err := d.Employee(i)
	if err != nil {
		return "", err
	}
	return sheet.EmailOf(rec, d.emailColumn), nil
}

func (d *Directory) NameFor(i int) (string, error) {
	rec, err := d.Employee(i)
	if err != nil {
		return "", err
	}
	if d.nameColumn == "" {
		return "", nil
	}
	return strings.TrimSpace(sheet.String(rec[d.nameColumn])), nil
}

// Detail lists the semantic, non-empty values of row i and of its matched
// salary row.
func (d *Directory) Detail(i int) (Detail, error) {
	rec, err := d.Employee(i)
	if err != nil {
		return Detail{}, err
	}
	out := Detail{Index: i, Info: fields(rec, d.infoColumns)}
	salary, err := d.SalaryFor(i)
	if err != nil {
		return Detail{}, err
	}
	if salary != nil {
		out.Salary = fields(salary, d.salaryColumns)
	}
	return out, nil
}

// Search matches term case-insensitively as a substring of the given
// columns, or of every semantic column when none are given. Unknown
// columns are ignored.
func (d *Directory) Search(term string, columns []string) ([]Detail, error) {
	needle := strings.ToLower(norm.NFC.String(strings.TrimSpace(term)))
	if needle == "" {
		return nil, ErrEmptySearchTerm
	}
	cols := d.infoColumns
	if len(columns) > 0 {
		cols = d.knownColumns(columns)
	}

	var results []Detail
	for i, rec := range d.info.Rows {
		if !matches(rec, cols, needle) {
			continue
		}
		detail, err := d.Detail(i)
		if err != nil {
			return nil, err
		}
		results = append(results, detail)
	}
	if len(results) == 0 {
		return nil, ErrNoResults
	}
	return results, nil
}

func (d *Directory) knownColumns(requested []string) []string {
	known := make(map[string]bool, len(d.info.Columns))
	for _, col := range d.info.Columns {
		known[col] = true
	}
	out := make([]string, 0, len(requested))
	for _, col := range requested {
		col = norm.NFC.String(col)
		if known[col] {
			out = append(out, col)
		}
	}
	return out
}

func matches(rec sheet.Record, cols []string, needle string) bool {
	for _, col := range cols {
		v := rec[col]
		if sheet.IsEmpty(v) {
			continue
		}
		if strings.Contains(strings.ToLower(sheet.String(v)), needle) {
			return true
		}
	}
	return false
}

func fields(rec sheet.Record, cols []string) []Field {
	out := make([]Field, 0, len(cols))
	for _, col := range cols {
		v := rec[col]
		if sheet.IsEmpty(v) {
			continue
		}
		out = append(out, Field{Column: col, Value: sheet.String(v)})
	}
	return out
}
