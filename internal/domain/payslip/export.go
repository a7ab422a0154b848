package payslip

import (
	"archive/zip"
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"payslip/internal/domain/directory"
	"payslip/internal/domain/payroll"
)

// renderWorkers bounds how many slips a bulk export renders at once.
const renderWorkers = 4

// Export renders the slip of one row.
func (s *Service) Export(index int, format string, period payroll.Period) (payroll.Document, error) {
	dir, err := s.store.Current()
	if err != nil {
		return payroll.Document{}, err
	}
	period, err = s.period(period)
	if err != nil {
		return payroll.Document{}, err
	}
	renderer, err := s.renderer(format)
	if err != nil {
		return payroll.Document{}, err
	}
	return s.render(dir, renderer, index, period)
}

// ExportBulk renders each requested row into one zip archive. An empty list
// means every row. Rows that fail are reported and skipped. Archive entries
// keep the request order.
func (s *Service) ExportBulk(indices []int, format string, period payroll.Period) (BulkExport, error) {
	dir, err := s.store.Current()
	if err != nil {
		return BulkExport{}, err
	}
	period, err = s.period(period)
	if err != nil {
		return BulkExport{}, err
	}
	renderer, err := s.renderer(format)
	if err != nil {
		return BulkExport{}, err
	}
	if len(indices) == 0 {
		indices = allRows(dir)
	}

	docs := make([]payroll.Document, len(indices))
	errs := make([]error, len(indices))
	var g errgroup.Group
	g.SetLimit(renderWorkers)
	for i, index := range indices {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					errs[i] = fmt.Errorf("render row %d: %v", index, r)
					err = errs[i]
				}
			}()
			docs[i], errs[i] = s.render(dir, renderer, index, period)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Warn("bulk export render failed", "error", err)
	}

	var (
		buf    bytes.Buffer
		result BulkExport
		used   = map[string]bool{}
	)
	zw := zip.NewWriter(&buf)
	for i, index := range indices {
		if errs[i] != nil {
			result.Failed = append(result.Failed, ExportFailure{Index: index, Error: errs[i].Error()})
			continue
		}
		doc := docs[i]
		name := doc.Filename
		if used[name] {
			ext := filepath.Ext(name)
			name = fmt.Sprintf("%s_%d%s", strings.TrimSuffix(name, ext), index, ext)
		}
		used[name] = true

		w, err := zw.Create(name)
		if err != nil {
			return BulkExport{}, fmt.Errorf("add %s to archive: %w", name, err)
		}
		if _, err := w.Write(doc.Data); err != nil {
			return BulkExport{}, fmt.Errorf("add %s to archive: %w", name, err)
		}
		result.Exported++
	}
	if err := zw.Close(); err != nil {
		return BulkExport{}, fmt.Errorf("close archive: %w", err)
	}
	if result.Exported == 0 {
		return result, ErrNothingExported
	}

	result.Document = payroll.Document{
		Filename:    fmt.Sprintf("PhieuLuong_Thang%d_%d.zip", period.Month, period.Year),
		ContentType: payroll.ContentTypeZip,
		Data:        buf.Bytes(),
	}
	return result, nil
}

func (s *Service) renderer(format string) (payroll.Renderer, error) {
	r, ok := s.renderers[strings.ToLower(strings.TrimSpace(format))]
	if !ok {
		return nil, payroll.ErrUnsupportedFormat
	}
	return r, nil
}

func (s *Service) render(dir *directory.Directory, renderer payroll.Renderer, index int, period payroll.Period) (payroll.Document, error) {
	slip, err := s.slip(dir, index)
	if err != nil {
		return payroll.Document{}, err
	}
	if slip.FullName == "" {
		slip.FullName = fmt.Sprintf("NhanVien_%d", index)
	}
	doc, err := renderer.Render(slip, period)
	if err != nil {
		return payroll.Document{}, fmt.Errorf("render %s: %w", renderer.Format(), err)
	}
	doc.Filename = payroll.Filename(slip.FullName, index, period, renderer.Format())
	s.recorder.RecordDocument(renderer.Format())
	return doc, nil
}

func allRows(dir *directory.Directory) []int {
	out := make([]int, dir.Len())
	for i := range out {
		out[i] = i
	}
	return out
}
