// Package payslip runs the upload, lookup, export and send flows on top of
// the employee directory.
package payslip

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"payslip/internal/domain/directory"
	"payslip/internal/domain/payroll"
	"payslip/internal/domain/sheet"
)

type Service struct {
	store     *directory.Store
	reader    WorkbookReader
	renderers map[string]payroll.Renderer
	mailer    Mailer
	recorder  Recorder
	logger    *slog.Logger
	now       func() time.Time
}

type Option func(*Service)

func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(store *directory.Store, reader WorkbookReader, mailer Mailer, renderers []payroll.Renderer, opts ...Option) *Service {
	s := &Service{
		store:     store,
		reader:    reader,
		renderers: make(map[string]payroll.Renderer, len(renderers)),
		mailer:    mailer,
		recorder:  noopRecorder{},
		logger:    slog.Default(),
		now:       time.Now,
	}
	for _, r := range renderers {
		s.renderers[r.Format()] = r
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Upload reads a workbook and, when it holds an employee information sheet,
// replaces the directory and every email status. On failure the previous
// upload stays in place.
func (s *Service) Upload(ctx context.Context, filename string, r io.Reader) (UploadResult, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
	default:
		return UploadResult{}, ErrUnsupportedFile
	}

	sheets, err := s.reader.Read(r)
	if err != nil {
		return UploadResult{}, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}

	var info, salary *sheet.Table
	for _, ws := range sheets {
		switch sheet.Classify(ws.Name) {
		case sheet.KindEmployeeInfo:
			t := sheet.Normalize(ws.Rows, ws.Name)
			info = &t
		case sheet.KindSalary:
			t := sheet.Normalize(ws.Rows, ws.Name)
			salary = &t
		}
	}
	if info == nil {
		return UploadResult{}, ErrNoEmployeeSheet
	}

	dir := directory.Build(info, salary)
	s.store.Replace(dir)

	s.logger.InfoContext(ctx, "workbook uploaded",
		"file", filename,
		"rows", dir.Len(),
		"employees", len(dir.Employees()),
		"salarySheet", dir.HasSalary(),
	)

	return UploadResult{
		Message:        fmt.Sprintf("Đã upload thành công file: %s", filename),
		InfoColumns:    dir.InfoColumns(),
		SalaryColumns:  dir.SalaryColumns(),
		Employees:      dir.Employees(),
		TotalEmployees: len(dir.Employees()),
	}, nil
}

// Columns returns empty lists before the first upload.
func (s *Service) Columns() ColumnsResult {
	dir, err := s.store.Current()
	if err != nil {
		return ColumnsResult{InfoColumns: []string{}, SalaryColumns: []string{}, Employees: []directory.Summary{}}
	}
	return ColumnsResult{
		InfoColumns:   dir.InfoColumns(),
		SalaryColumns: dir.SalaryColumns(),
		Employees:     dir.Employees(),
	}
}

func (s *Service) Lookup(index int) (LookupResult, error) {
	dir, err := s.store.Current()
	if err != nil {
		return LookupResult{}, err
	}
	detail, err := dir.Detail(index)
	if err != nil {
		return LookupResult{}, err
	}
	if st, ok := s.store.Status(index); ok {
		detail.EmailStatus = &st
	}
	slip, err := s.slip(dir, index)
	if err != nil {
		return LookupResult{}, err
	}
	return LookupResult{Detail: detail, Slip: slip}, nil
}

func (s *Service) Search(term string, fields []string) (SearchResult, error) {
	dir, err := s.store.Current()
	if err != nil {
		return SearchResult{}, err
	}
	results, err := dir.Search(term, fields)
	if err != nil {
		return SearchResult{}, err
	}
	statuses := s.store.Statuses()
	for i := range results {
		if st, ok := statuses[results[i].Index]; ok {
			results[i].EmailStatus = &st
		}
	}
	return SearchResult{Results: results, Count: len(results)}, nil
}

func (s *Service) slip(dir *directory.Directory, index int) (payroll.Slip, error) {
	employee, err := dir.Employee(index)
	if err != nil {
		return payroll.Slip{}, err
	}
	salary, err := dir.SalaryFor(index)
	if err != nil {
		return payroll.Slip{}, err
	}
	infoCols, salaryCols := dir.AllColumns()
	return payroll.ComputeSlip(payroll.Input{
		Employee:        employee,
		EmployeeColumns: infoCols,
		Salary:          salary,
		SalaryColumns:   salaryCols,
		NameColumn:      dir.NameColumn(),
	}), nil
}

func (s *Service) period(p payroll.Period) (payroll.Period, error) {
	return p.Resolve(s.now())
}
