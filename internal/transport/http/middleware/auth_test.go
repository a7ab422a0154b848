package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"payslip/internal/domain/auth"
	"payslip/internal/platform/requestctx"
)

func newAuthService(t *testing.T) *auth.Service {
	t.Helper()
	svc, err := auth.NewService("pw", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("auth service: %v", err)
	}
	return svc
}

func TestAuthMiddlewareSetsUser(t *testing.T) {
	svc := newAuthService(t)
	tok, err := svc.Login("pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	called := false
	handler := Auth(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		user, ok := GetUser(r.Context())
		if !ok {
			t.Fatal("expected user in context")
		}
		if user.Operator != auth.OperatorName {
			t.Fatalf("unexpected user: %+v", user)
		}
		if requestctx.GetOperator(r.Context()) != auth.OperatorName {
			t.Fatal("expected operator in request context")
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if !called {
		t.Fatal("expected handler to run")
	}
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	handler := Auth(newAuthService(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUser(r.Context()); ok {
			t.Fatal("did not expect user in context")
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	handler.ServeHTTP(httptest.NewRecorder(), req)
}

func TestRequireUser(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	RequireUser(true)(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	RequireUser(false)(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected open route, got %d", rec.Code)
	}
}
