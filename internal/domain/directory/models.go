package directory

import "time"

type Summary struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Field is one column/value pair, kept in column order.
type Field struct {
	Column string `json:"column"`
	Value  string `json:"value"`
}

type EmailStatus struct {
	Attempted bool      `json:"attempted"`
	Succeeded bool      `json:"succeeded"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Month     int       `json:"month"`
	Year      int       `json:"year"`
}

type Detail struct {
	Index       int          `json:"index"`
	Info        []Field      `json:"info"`
	Salary      []Field      `json:"salary,omitempty"`
	EmailStatus *EmailStatus `json:"emailStatus,omitempty"`
}
