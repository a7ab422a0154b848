package authhandler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"payslip/internal/domain/auth"
	"payslip/internal/transport/http/middleware"
)

func newRouter(t *testing.T, password string) (http.Handler, *auth.Service) {
	t.Helper()
	svc, err := auth.NewService(password, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Auth(svc))
	NewHandler(svc, nil).RegisterRoutes(r)
	return r, svc
}

func post(router http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLogin(t *testing.T) {
	router, _ := newRouter(t, "Sup3rSecret")

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{name: "valid password", body: `{"password":"Sup3rSecret"}`, status: http.StatusOK},
		{name: "wrong password", body: `{"password":"nope"}`, status: http.StatusUnauthorized},
		{name: "missing password", body: `{}`, status: http.StatusBadRequest},
		{name: "malformed body", body: `{`, status: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := post(router, "/auth/login", tc.body)
			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestLoginDisabled(t *testing.T) {
	router, _ := newRouter(t, "")

	rec := post(router, "/auth/login", `{"password":"anything"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestSessionWithToken(t *testing.T) {
	router, svc := newRouter(t, "Sup3rSecret")
	token, err := svc.Login("Sup3rSecret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	req.Header.Set("Authorization", "Bearer "+token.Token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env struct {
		Data sessionResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !env.Data.AuthEnabled || !env.Data.Authenticated {
		t.Fatalf("unexpected session: %+v", env.Data)
	}
	if env.Data.Operator != auth.OperatorName {
		t.Fatalf("expected operator %q, got %q", auth.OperatorName, env.Data.Operator)
	}
	if env.Data.ExpiresAt == nil {
		t.Fatal("expected expiry")
	}
}

func TestSessionAnonymous(t *testing.T) {
	router, _ := newRouter(t, "Sup3rSecret")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/session", nil))

	if !strings.Contains(rec.Body.String(), `"authenticated":false`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
