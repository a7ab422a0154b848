package authhandler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"payslip/internal/domain/auth"
	"payslip/internal/platform/requestctx"
	"payslip/internal/transport/http/api"
	"payslip/internal/transport/http/middleware"
	"payslip/internal/transport/http/shared"
)

type Handler struct {
	Auth   *auth.Service
	Logger *slog.Logger
}

func NewHandler(service *auth.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{Auth: service, Logger: logger}
}

// RegisterRoutes mounts the public auth routes. They must sit outside
// RequireUser.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.HandleLogin)
	r.Get("/auth/session", h.HandleSession)
}

type loginRequest struct {
	Password string `json:"password" validate:"required"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	var payload loginRequest
	if err := shared.DecodeJSON(r, &payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	v := shared.NewValidator()
	v.Struct(payload)
	if v.Reject(w, reqID) {
		return
	}

	token, err := h.Auth.Login(payload.Password)
	switch {
	case errors.Is(err, auth.ErrAuthDisabled):
		api.Fail(w, http.StatusNotFound, "auth_disabled", "authentication is not enabled", reqID)
		return
	case errors.Is(err, auth.ErrInvalidCredentials):
		h.Logger.WarnContext(r.Context(), "operator login rejected", "requestId", reqID)
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", reqID)
		return
	case err != nil:
		h.Logger.ErrorContext(r.Context(), "issue token failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "token_error", "failed to issue token", reqID)
		return
	}
	api.Success(w, token, reqID)
}

type sessionResponse struct {
	AuthEnabled   bool       `json:"authEnabled"`
	Authenticated bool       `json:"authenticated"`
	Operator      string     `json:"operator,omitempty"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
}

// HandleSession tells the front end whether it needs to show a login form.
func (h *Handler) HandleSession(w http.ResponseWriter, r *http.Request) {
	res := sessionResponse{AuthEnabled: h.Auth.Enabled()}
	if user, ok := middleware.GetUser(r.Context()); ok {
		res.Authenticated = true
		res.Operator = strings.TrimSpace(user.Operator)
		if !user.ExpiresAt.IsZero() {
			exp := user.ExpiresAt
			res.ExpiresAt = &exp
		}
	}
	api.Success(w, res, requestctx.GetRequestID(r.Context()))
}
