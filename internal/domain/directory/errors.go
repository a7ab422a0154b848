package directory

import "errors"

var (
	ErrNoData           = errors.New("no workbook has been uploaded yet")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrNoResults        = errors.New("no employees match the search term")
	ErrEmptySearchTerm  = errors.New("search term is required")
)
