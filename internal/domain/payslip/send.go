package payslip

import (
	"context"
	"errors"
	"fmt"

	"payslip/internal/domain/directory"
	"payslip/internal/domain/payroll"
)

// Send renders one slip and mails it to the row's address. Every attempt on
// an existing row leaves an email status behind, successful or not.
func (s *Service) Send(ctx context.Context, index int, format string, period payroll.Period) (SendResult, error) {
	dir, err := s.store.Current()
	if err != nil {
		return SendResult{}, err
	}
	period, err = s.period(period)
	if err != nil {
		return SendResult{}, err
	}
	renderer, err := s.renderer(format)
	if err != nil {
		return SendResult{}, err
	}
	return s.send(ctx, dir, renderer, index, period)
}

// SendBulk sends to each row in turn. A failure on one row never stops the
// rest. An empty list means every row.
func (s *Service) SendBulk(ctx context.Context, indices []int, format string, period payroll.Period) (BulkSendResult, error) {
	dir, err := s.store.Current()
	if err != nil {
		return BulkSendResult{}, err
	}
	period, err = s.period(period)
	if err != nil {
		return BulkSendResult{}, err
	}
	renderer, err := s.renderer(format)
	if err != nil {
		return BulkSendResult{}, err
	}
	if len(indices) == 0 {
		indices = allRows(dir)
	}

	out := BulkSendResult{Results: make([]SendResult, 0, len(indices))}
	for _, index := range indices {
		res, err := s.send(ctx, dir, renderer, index, period)
		if err != nil {
			res.Index = index
			res.Success = false
			res.Message = err.Error()
			out.FailCount++
		} else {
			out.SuccessCount++
		}
		out.Results = append(out.Results, res)
	}
	s.logger.InfoContext(ctx, "bulk send finished",
		"requested", len(indices),
		"succeeded", out.SuccessCount,
		"failed", out.FailCount,
	)
	return out, nil
}

func (s *Service) send(ctx context.Context, dir *directory.Directory, renderer payroll.Renderer, index int, period payroll.Period) (SendResult, error) {
	name, err := dir.NameFor(index)
	if err != nil {
		return SendResult{Index: index}, err
	}
	email, err := dir.EmailFor(index)
	if err != nil {
		return SendResult{Index: index}, err
	}
	res := SendResult{Index: index, Name: name, Email: email}

	err = s.deliver(ctx, dir, renderer, index, name, email, period)
	status := directory.EmailStatus{
		Attempted: true,
		Succeeded: err == nil,
		Timestamp: s.now(),
		Month:     period.Month,
		Year:      period.Year,
	}
	if err != nil {
		status.Message = err.Error()
		s.logger.WarnContext(ctx, "payslip email failed", "index", index, "error", err)
	} else {
		status.Message = fmt.Sprintf("Đã gửi tới %s", email)
	}
	s.store.RecordStatus(dir, index, status)
	s.recorder.RecordEmail(err == nil)

	res.Success = err == nil
	res.Message = status.Message
	return res, err
}

func (s *Service) deliver(ctx context.Context, dir *directory.Directory, renderer payroll.Renderer, index int, name, email string, period payroll.Period) error {
	if email == "" {
		return ErrNoEmail
	}
	doc, err := s.render(dir, renderer, index, period)
	if err != nil {
		return err
	}
	if name == "" {
		name = fmt.Sprintf("NhanVien_%d", index)
	}
	msg := Message{
		To:      email,
		Subject: fmt.Sprintf("Phiếu lương tháng %d/%d", period.Month, period.Year),
		Body: fmt.Sprintf("Kính gửi %s,\n\nĐính kèm là phiếu lương tháng %d năm %d của bạn.\n\nTrân trọng.",
			name, period.Month, period.Year),
		Attachment: &Attachment{
			Filename:    doc.Filename,
			ContentType: doc.ContentType,
			Data:        doc.Data,
		},
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		if errors.Is(err, ErrNotConfigured) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	return nil
}
