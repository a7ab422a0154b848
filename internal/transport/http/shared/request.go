package shared

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// DecodeJSON reads a JSON body into dst. An empty body leaves dst untouched.
func DecodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// PathIndex reads a non-negative integer URL parameter.
func PathIndex(r *http.Request, v *Validator, name string) int {
	raw := strings.TrimSpace(chi.URLParam(r, name))
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		v.Add(name, "must be a non-negative integer")
		return -1
	}
	return n
}

// QueryInt reads an optional integer query parameter. Missing means zero.
func QueryInt(r *http.Request, v *Validator, name string) int {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		v.Add(name, "must be an integer")
		return 0
	}
	return n
}

// Period validates an optional month and year pair. Zero means "current".
func Period(v *Validator, month, year int) {
	v.Range("month", month, 1, 12, "must be between 1 and 12")
	v.Range("year", year, 1900, 9999, "must be between 1900 and 9999")
}
