package payslip

import (
	"payslip/internal/domain/directory"
	"payslip/internal/domain/payroll"
)

type UploadResult struct {
	Message        string              `json:"message"`
	InfoColumns    []string            `json:"infoColumns"`
	SalaryColumns  []string            `json:"salaryColumns"`
	Employees      []directory.Summary `json:"employees"`
	TotalEmployees int                 `json:"totalEmployees"`
}

type ColumnsResult struct {
	InfoColumns   []string            `json:"infoColumns"`
	SalaryColumns []string            `json:"salaryColumns"`
	Employees     []directory.Summary `json:"employees"`
}

type LookupResult struct {
	directory.Detail
	Slip payroll.Slip `json:"slip"`
}

type SearchResult struct {
	Results []directory.Detail `json:"results"`
	Count   int                `json:"count"`
}

type ExportFailure struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

type BulkExport struct {
	Document payroll.Document
	Exported int
	Failed   []ExportFailure
}

type SendResult struct {
	Index   int    `json:"index"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type BulkSendResult struct {
	SuccessCount int          `json:"successCount"`
	FailCount    int          `json:"failCount"`
	Results      []SendResult `json:"results"`
}

// SettingsView is what callers see of the transport settings. The password
// itself is never returned.
type SettingsView struct {
	Host        string `json:"host"`
	Port        int    `json:"port"`
	Username    string `json:"username"`
	From        string `json:"from"`
	UseTLS      bool   `json:"useTls"`
	PasswordSet bool   `json:"passwordSet"`
	Configured  bool   `json:"configured"`
}
