package payslip

import (
	"context"
	"io"

	"payslip/internal/domain/sheet"
)

// WorkbookReader returns every worksheet of a workbook as a raw grid, in
// workbook order.
type WorkbookReader interface {
	Read(r io.Reader) ([]sheet.Named, error)
}

type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Message struct {
	To         string
	Subject    string
	Body       string
	Attachment *Attachment
}

type EmailSettings struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	From     string `json:"from"`
	UseTLS   bool   `json:"useTls"`
}

// Mailer delivers one message. Settings can be swapped at runtime.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
	Settings() EmailSettings
	Configure(settings EmailSettings) error
}

// Recorder receives counts of rendered documents and send attempts.
type Recorder interface {
	RecordDocument(format string)
	RecordEmail(succeeded bool)
}

type noopRecorder struct{}

func (noopRecorder) RecordDocument(string) {}
func (noopRecorder) RecordEmail(bool)      {}
