package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"payslip/internal/transport/http/api"
)

// Expired windows are swept once this many keys are tracked.
const sweepAfter = 1024

type window struct {
	used  int
	until time.Time
}

// limiter is a fixed-window counter per key.
type limiter struct {
	mu      sync.Mutex
	quota   int
	span    time.Duration
	key     func(*http.Request) string
	now     func() time.Time
	windows map[string]*window
}

func newLimiter(quota int, span time.Duration, key func(*http.Request) string) *limiter {
	return &limiter{
		quota:   quota,
		span:    span,
		key:     key,
		now:     time.Now,
		windows: make(map[string]*window),
	}
}

// take counts one request for key and reports what is left of its window.
func (l *limiter) take(key string) (left int, resetIn time.Duration, ok bool) {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.windows) >= sweepAfter {
		for k, w := range l.windows {
			if !now.Before(w.until) {
				delete(l.windows, k)
			}
		}
	}
	w := l.windows[key]
	if w == nil || !now.Before(w.until) {
		w = &window{until: now.Add(l.span)}
		l.windows[key] = w
	}
	w.used++
	return max(l.quota-w.used, 0), w.until.Sub(now), w.used <= l.quota
}

// admit writes the quota headers and answers 429 once the window is spent.
func (l *limiter) admit(w http.ResponseWriter, r *http.Request) bool {
	if l.quota <= 0 {
		return true
	}
	key := l.key(r)
	left, resetIn, ok := l.take(key)
	secs := int((resetIn + time.Second - 1) / time.Second)

	h := w.Header()
	h.Set("X-RateLimit-Limit", strconv.Itoa(l.quota))
	h.Set("X-RateLimit-Remaining", strconv.Itoa(left))
	h.Set("X-RateLimit-Reset", strconv.Itoa(secs))
	if ok {
		return true
	}
	h.Set("Retry-After", strconv.Itoa(max(secs, 1)))
	slog.Warn("rate limit exceeded", "key", key, "method", r.Method, "path", r.URL.Path, "limit", l.quota)
	api.Fail(w, http.StatusTooManyRequests, "rate_limited", "too many requests", GetRequestID(r.Context()))
	return false
}

func (l *limiter) wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l.admit(w, r) {
			next.ServeHTTP(w, r)
		}
	})
}

// RateLimit allows limit requests per window for each signed-in operator,
// or for each client address when nobody is signed in.
func RateLimit(limit int, span time.Duration) func(http.Handler) http.Handler {
	return newLimiter(limit, span, operatorKey).wrap
}

// SensitiveMutationRateLimit adds tighter quotas for login attempts, keyed by
// address, and for upload, send and settings writes, keyed by operator.
func SensitiveMutationRateLimit(baseLimit int, span time.Duration) func(http.Handler) http.Handler {
	byRoute := map[routeClass]*limiter{
		routeLogin:    newLimiter(max(baseLimit/4, 1), span, addressKey),
		routeMutation: newLimiter(max(baseLimit/2, 1), span, operatorKey),
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if l := byRoute[classify(r)]; l != nil && !l.admit(w, r) {
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func operatorKey(r *http.Request) string {
	if user, ok := GetUser(r.Context()); ok && user.Operator != "" {
		return "operator:" + user.Operator
	}
	return addressKey(r)
}

// addressKey is the peer address. Forwarding headers are not trusted.
func addressKey(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

type routeClass int

const (
	routeOther routeClass = iota
	routeLogin
	routeMutation
)

var classes = map[string]routeClass{
	"/auth/login":     routeLogin,
	"/upload":         routeMutation,
	"/send":           routeMutation,
	"/email/settings": routeMutation,
}

func classify(r *http.Request) routeClass {
	if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions {
		return routeOther
	}
	path := "/" + strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/v1"), "/")
	if c, ok := classes[path]; ok {
		return c
	}
	if strings.HasPrefix(path, "/employees/") && strings.HasSuffix(path, "/send") {
		return routeMutation
	}
	return routeOther
}
