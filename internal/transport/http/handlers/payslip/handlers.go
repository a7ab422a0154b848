package paysliphandler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"payslip/internal/domain/directory"
	"payslip/internal/domain/payroll"
	"payslip/internal/domain/payslip"
	"payslip/internal/platform/requestctx"
	"payslip/internal/transport/http/api"
	"payslip/internal/transport/http/middleware"
	"payslip/internal/transport/http/shared"
)

var formats = []string{payroll.FormatXLSX, payroll.FormatPDF}

// UploadCounter is told about every accepted workbook.
type UploadCounter interface {
	RecordUpload()
}

// Limits caps request bodies. Uploads get their own, larger allowance.
type Limits struct {
	Body   int64
	Upload int64
}

type Handler struct {
	Service *payslip.Service
	Limits  Limits
	Uploads UploadCounter
	Logger  *slog.Logger
}

func NewHandler(service *payslip.Service, limits Limits, uploads UploadCounter, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{Service: service, Limits: limits, Uploads: uploads, Logger: logger}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.BodyLimit(h.Limits.Upload)).Post("/upload", h.handleUpload)

	r.Group(func(r chi.Router) {
		r.Use(middleware.BodyLimit(h.Limits.Body))
		r.Get("/columns", h.handleColumns)
		r.Post("/search", h.handleSearch)
		r.Route("/employees/{index}", func(r chi.Router) {
			r.Get("/", h.handleLookup)
			r.Get("/export/{format}", h.handleExport)
			r.Post("/send", h.handleSend)
		})
		r.Post("/export/{format}", h.handleExportBulk)
		r.Post("/send", h.handleSendBulk)
		r.Get("/email/settings", h.handleGetSettings)
		r.Put("/email/settings", h.handleUpdateSettings)
	})
}

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			api.Fail(w, http.StatusRequestEntityTooLarge, "payload_too_large", "workbook is too large", reqID)
			return
		}
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "multipart form with a file field is required", reqID)
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "Không có file được chọn", reqID)
		return
	}
	defer file.Close()
	if strings.TrimSpace(header.Filename) == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "Không có file được chọn", reqID)
		return
	}

	res, err := h.Service.Upload(r.Context(), header.Filename, file)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if h.Uploads != nil {
		h.Uploads.RecordUpload()
	}
	h.Logger.InfoContext(r.Context(), "workbook accepted",
		"operator", requestctx.GetOperator(r.Context()),
		"file", header.Filename,
		"bytes", header.Size,
	)
	api.Success(w, res, reqID)
}

func (h *Handler) handleColumns(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Service.Columns(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleLookup(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	v := shared.NewValidator()
	index := shared.PathIndex(r, v, "index")
	if v.Reject(w, reqID) {
		return
	}
	res, err := h.Service.Lookup(index)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, res, reqID)
}

type searchRequest struct {
	SearchTerm   string   `json:"searchTerm"`
	SearchFields []string `json:"searchFields"`
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload searchRequest
	if err := shared.DecodeJSON(r, &payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	res, err := h.Service.Search(payload.SearchTerm, payload.SearchFields)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, res, reqID)
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	v := shared.NewValidator()
	index := shared.PathIndex(r, v, "index")
	format := chi.URLParam(r, "format")
	v.Enum("format", format, formats, "must be xlsx or pdf")
	month := shared.QueryInt(r, v, "month")
	year := shared.QueryInt(r, v, "year")
	shared.Period(v, month, year)
	if v.Reject(w, reqID) {
		return
	}

	doc, err := h.Service.Export(index, format, payroll.Period{Month: month, Year: year})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Attachment(w, doc.Filename, doc.ContentType, doc.Data)
}

type bulkRequest struct {
	Indices []int  `json:"indices" validate:"dive,min=0"`
	Format  string `json:"format" validate:"oneof=xlsx pdf"`
	Month   int    `json:"month" validate:"omitempty,min=1,max=12"`
	Year    int    `json:"year" validate:"omitempty,min=1900,max=9999"`
}

func (h *Handler) decodeBulk(w http.ResponseWriter, r *http.Request, format string) (bulkRequest, bool) {
	reqID := middleware.GetRequestID(r.Context())
	var payload bulkRequest
	if err := shared.DecodeJSON(r, &payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return payload, false
	}
	if format != "" {
		payload.Format = format
	}
	payload.Format = normalizeFormat(payload.Format)
	v := shared.NewValidator()
	v.Struct(payload)
	if v.Reject(w, reqID) {
		return payload, false
	}
	return payload, true
}

func (h *Handler) handleExportBulk(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodeBulk(w, r, chi.URLParam(r, "format"))
	if !ok {
		return
	}
	res, err := h.Service.ExportBulk(payload.Indices, payload.Format, payroll.Period{Month: payload.Month, Year: payload.Year})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("X-Exported-Count", strconv.Itoa(res.Exported))
	if len(res.Failed) > 0 {
		failed := make([]string, 0, len(res.Failed))
		for _, f := range res.Failed {
			failed = append(failed, strconv.Itoa(f.Index))
		}
		w.Header().Set("X-Failed-Indices", strings.Join(failed, ","))
	}
	api.Attachment(w, res.Document.Filename, res.Document.ContentType, res.Document.Data)
}

type sendRequest struct {
	Format string `json:"format" validate:"oneof=xlsx pdf"`
	Month  int    `json:"month" validate:"omitempty,min=1,max=12"`
	Year   int    `json:"year" validate:"omitempty,min=1900,max=9999"`
}

func (h *Handler) handleSend(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	v := shared.NewValidator()
	index := shared.PathIndex(r, v, "index")
	var payload sendRequest
	if err := shared.DecodeJSON(r, &payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	payload.Format = normalizeFormat(payload.Format)
	v.Struct(payload)
	if v.Reject(w, reqID) {
		return
	}

	res, err := h.Service.Send(r.Context(), index, payload.Format, payroll.Period{Month: payload.Month, Year: payload.Year})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, res, reqID)
}

func (h *Handler) handleSendBulk(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodeBulk(w, r, "")
	if !ok {
		return
	}
	res, err := h.Service.SendBulk(r.Context(), payload.Indices, payload.Format, payroll.Period{Month: payload.Month, Year: payload.Year})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.Logger.InfoContext(r.Context(), "bulk send requested",
		"operator", requestctx.GetOperator(r.Context()),
		"succeeded", res.SuccessCount,
		"failed", res.FailCount,
	)
	api.Success(w, res, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Service.EmailSettings(), middleware.GetRequestID(r.Context()))
}

type settingsRequest struct {
	Host     string `json:"host" validate:"omitempty,hostname_rfc1123|ip"`
	Port     int    `json:"port" validate:"omitempty,min=1,max=65535"`
	Username string `json:"username"`
	Password string `json:"password"`
	From     string `json:"from" validate:"omitempty,email"`
	UseTLS   *bool  `json:"useTls"`
}

func (h *Handler) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload settingsRequest
	if err := shared.DecodeJSON(r, &payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	payload.Host = strings.TrimSpace(payload.Host)
	payload.From = strings.TrimSpace(payload.From)
	v := shared.NewValidator()
	v.Struct(payload)
	if v.Reject(w, reqID) {
		return
	}
	useTLS := true
	if payload.UseTLS != nil {
		useTLS = *payload.UseTLS
	}
	res, err := h.Service.UpdateEmailSettings(payslip.EmailSettings{
		Host:     payload.Host,
		Port:     payload.Port,
		Username: payload.Username,
		Password: payload.Password,
		From:     payload.From,
		UseTLS:   useTLS,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, res, reqID)
}

// normalizeFormat defaults to PDF and ignores case.
func normalizeFormat(format string) string {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		return payroll.FormatPDF
	}
	return format
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	reqID := middleware.GetRequestID(r.Context())
	status, code := classify(err)
	if status == http.StatusInternalServerError {
		h.Logger.ErrorContext(r.Context(), "payslip request failed", "err", err, "path", r.URL.Path)
		api.Fail(w, status, code, "internal error", reqID)
		return
	}
	api.Fail(w, status, code, err.Error(), reqID)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, directory.ErrNoData):
		return http.StatusConflict, "no_data"
	case errors.Is(err, directory.ErrEmployeeNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, directory.ErrNoResults):
		return http.StatusNotFound, "no_results"
	case errors.Is(err, directory.ErrEmptySearchTerm),
		errors.Is(err, payroll.ErrInvalidPeriod),
		errors.Is(err, payroll.ErrUnsupportedFormat),
		errors.Is(err, payslip.ErrInvalidSettings):
		return http.StatusBadRequest, "invalid_payload"
	case errors.Is(err, payslip.ErrUnsupportedFile),
		errors.Is(err, payslip.ErrInvalidWorkbook),
		errors.Is(err, payslip.ErrNoEmployeeSheet):
		return http.StatusBadRequest, "invalid_workbook"
	case errors.Is(err, payslip.ErrNoEmail):
		return http.StatusUnprocessableEntity, "no_email"
	case errors.Is(err, payslip.ErrNothingExported):
		return http.StatusUnprocessableEntity, "nothing_exported"
	case errors.Is(err, payslip.ErrSendFailed), errors.Is(err, payslip.ErrNotConfigured):
		return http.StatusBadGateway, "email_failed"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
