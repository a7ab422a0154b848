package payroll

const (
	ElementTypeEarning   = "earning"
	ElementTypeDeduction = "deduction"

	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"

	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
	ContentTypeZip  = "application/zip"
)
