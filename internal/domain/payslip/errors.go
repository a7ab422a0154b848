package payslip

import "errors"

var (
	ErrUnsupportedFile = errors.New("only Excel workbooks (.xlsx, .xlsm) are supported")
	ErrInvalidWorkbook = errors.New("workbook could not be read")
	ErrNoEmployeeSheet = errors.New("workbook has no employee information sheet")
	ErrNoEmail         = errors.New("employee has no email address")
	ErrNotConfigured   = errors.New("email transport is not configured")
	ErrSendFailed      = errors.New("email could not be sent")
	ErrNothingExported = errors.New("no documents could be exported")
	ErrInvalidSettings = errors.New("invalid email settings")
)
