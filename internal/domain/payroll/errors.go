package payroll

import "errors"

var (
	ErrInvalidPeriod     = errors.New("month must be 1-12 and year 1900-9999")
	ErrUnsupportedFormat = errors.New("unsupported document format")
)
