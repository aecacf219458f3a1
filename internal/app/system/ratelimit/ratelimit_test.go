package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddleware_ThrottlesAfterBurst(t *testing.T) {
	l := New(Config{RPS: 0.5, Burst: 2}, zaptest.NewLogger(t))
	defer l.Stop()
	h := l.Middleware(okHandler())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
		if i == 2 {
			assert.Equal(t, "2", rec.Header().Get("Retry-After"))
			assert.JSONEq(t, `{"detail":"Request was throttled."}`, rec.Body.String())
		}
	}

	assert.Equal(t, []int{200, 200, 429}, codes)
}

func TestMiddleware_PerClient(t *testing.T) {
	l := New(Config{RPS: 0.1, Burst: 1}, nil)
	defer l.Stop()
	h := l.Middleware(okHandler())

	for _, addr := range []string{"10.0.0.1:1", "10.0.0.2:1"} {
		req := httptest.NewRequest(http.MethodGet, "/api/teams", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, addr)
	}
	assert.Equal(t, 2, l.Clients())
}

func TestMiddleware_DisabledPassesThrough(t *testing.T) {
	l := New(Config{RPS: 0}, nil)
	defer l.Stop()
	h := l.Middleware(okHandler())

	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, 0, l.Clients())
}

func TestSweep_RemovesIdleClients(t *testing.T) {
	l := New(Config{RPS: 1, Burst: 1, CleanupInterval: time.Minute}, nil)
	defer l.Stop()

	l.Allow("a")
	l.sweep(time.Now().Add(3 * time.Minute))

	assert.Equal(t, 0, l.Clients())
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded first hop", map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"}, "9.9.9.9:1", "1.2.3.4"},
		{"real ip", map[string]string{"X-Real-IP": " 4.4.4.4 "}, "9.9.9.9:1", "4.4.4.4"},
		{"remote addr", nil, "9.9.9.9:1234", "9.9.9.9"},
		{"remote addr without port", nil, "9.9.9.9", "9.9.9.9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, ClientIP(req))
		})
	}
}
