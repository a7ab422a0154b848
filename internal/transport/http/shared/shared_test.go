package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorSortsIssues(t *testing.T) {
	v := NewValidator()
	v.Add("year", "bad")
	v.Add("month", "bad")
	v.Required("format", " ", "required")

	issues := v.Issues()
	require.Len(t, issues, 3)
	assert.Equal(t, "format", issues[0].Field)
	assert.Equal(t, "month", issues[1].Field)
	assert.Equal(t, "year", issues[2].Field)
}

func TestPeriodRanges(t *testing.T) {
	v := NewValidator()
	Period(v, 0, 0)
	assert.False(t, v.HasIssues())

	Period(v, 13, 1800)
	assert.Len(t, v.Issues(), 2)
}

func TestDecodeJSONEmptyBody(t *testing.T) {
	var dst struct{ A int }
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	require.NoError(t, DecodeJSON(req, &dst))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{"))
	assert.Error(t, DecodeJSON(req, &dst))
}

func TestPathIndexAndQueryInt(t *testing.T) {
	r := chi.NewRouter()
	var index, month int
	var rejected bool
	r.Get("/employees/{index}", func(w http.ResponseWriter, req *http.Request) {
		v := NewValidator()
		index = PathIndex(req, v, "index")
		month = QueryInt(req, v, "month")
		rejected = v.HasIssues()
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/employees/3?month=4", nil))
	assert.Equal(t, 3, index)
	assert.Equal(t, 4, month)
	assert.False(t, rejected)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/employees/abc?month=x", nil))
	assert.True(t, rejected)
}

type structPayload struct {
	Indices []int  `json:"indices" validate:"dive,min=0"`
	Month   int    `json:"month" validate:"omitempty,min=1,max=12"`
	From    string `json:"from" validate:"omitempty,email"`
	Format  string `json:"format" validate:"required,oneof=xlsx pdf"`
}

func TestStructUsesJSONNames(t *testing.T) {
	v := NewValidator()
	v.Struct(structPayload{Indices: []int{1, -2}, Month: 13, From: "nope", Format: "doc"})

	fields := map[string]string{}
	for _, issue := range v.Issues() {
		fields[issue.Field] = issue.Reason
	}
	assert.Equal(t, "must be at least 0", fields["indices[1]"])
	assert.Equal(t, "must be at most 12", fields["month"])
	assert.Equal(t, "must be an email address", fields["from"])
	assert.Equal(t, "must be one of: xlsx pdf", fields["format"])

	ok := NewValidator()
	ok.Struct(structPayload{Format: "pdf"})
	assert.False(t, ok.HasIssues())
}
