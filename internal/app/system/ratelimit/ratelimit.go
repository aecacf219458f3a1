// internal/app/system/ratelimit/ratelimit.go
package ratelimit

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dalemusser/octofit/internal/app/system/respond"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Config sets the per-client token bucket. RPS <= 0 disables limiting.
type Config struct {
	RPS             float64
	Burst           int
	CleanupInterval time.Duration
}

type client struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// Limiter keeps one token bucket per client IP. It is safe for concurrent use.
type Limiter struct {
	cfg Config
	log *zap.Logger

	mu      sync.Mutex
	clients map[string]*client

	stop chan struct{}
	once sync.Once
}

// New starts a Limiter with a background sweep of idle clients.
// Call Stop to end the sweep.
func New(cfg Config, log *zap.Logger) *Limiter {
	if cfg.Burst < 1 {
		cfg.Burst = 1
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = 5 * time.Minute
	}
	if log == nil {
		log = zap.NewNop()
	}
	l := &Limiter{
		cfg:     cfg,
		log:     log,
		clients: make(map[string]*client),
		stop:    make(chan struct{}),
	}
	if l.Enabled() {
		go l.sweepLoop()
	}
	return l
}

// Enabled reports whether requests are limited at all.
func (l *Limiter) Enabled() bool { return l.cfg.RPS > 0 }

// Stop ends the background sweep. Safe to call more than once.
func (l *Limiter) Stop() {
	l.once.Do(func() { close(l.stop) })
}

// Allow consumes a token for key.
func (l *Limiter) Allow(key string) bool {
	if !l.Enabled() {
		return true
	}
	return l.get(key).Allow()
}

// Clients returns the number of tracked clients.
func (l *Limiter) Clients() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

func (l *Limiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rate.Limit(l.cfg.RPS), l.cfg.Burst)}
		l.clients[key] = c
	}
	c.lastAccess = time.Now()
	return c.limiter
}

func (l *Limiter) sweepLoop() {
	t := time.NewTicker(l.cfg.CleanupInterval)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			l.sweep(time.Now())
		case <-l.stop:
			return
		}
	}
}

// sweep drops clients idle for more than two cleanup intervals.
func (l *Limiter) sweep(now time.Time) {
	ttl := 2 * l.cfg.CleanupInterval
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, c := range l.clients {
		if now.Sub(c.lastAccess) > ttl {
			delete(l.clients, key)
		}
	}
}

// Middleware answers 429 with Retry-After once a client's bucket is empty.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	if !l.Enabled() {
		return next
	}
	retryAfter := strconv.Itoa(int(math.Max(1, math.Ceil(1/l.cfg.RPS))))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := ClientIP(r)
		if !l.Allow(ip) {
			l.log.Warn("rate limit exceeded",
				zap.String("client_ip", ip),
				zap.String("path", r.URL.Path))
			w.Header().Set("Retry-After", retryAfter)
			respond.Throttled(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClientIP extracts the client IP from an HTTP request.
// X-Forwarded-For (first hop) and X-Real-IP win over RemoteAddr.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if ip := strings.TrimSpace(strings.Split(xff, ",")[0]); ip != "" {
			return ip
		}
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr might not have a port
		return r.RemoteAddr
	}
	return ip
}
