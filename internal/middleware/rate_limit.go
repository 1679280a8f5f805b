package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"log/slog"

	"golang.org/x/time/rate"

	"github.com/Yorfad/PROVIAL-sub003/internal/config"
)

type cliente struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipLimiter throttles panel and patrol clients per source IP. Entries for
// IPs idle longer than the configured TTL are evicted by a background
// sweep.
type ipLimiter struct {
	mu       sync.Mutex
	clientes map[string]*cliente
	rps      rate.Limit
	burst    int
	ttl      time.Duration
}

// Limit builds the middleware from the HTTP config section.
func Limit(cfg config.HttpConfig, logger *slog.Logger) func(http.Handler) http.Handler {
	l := &ipLimiter{
		clientes: make(map[string]*cliente),
		rps:      rate.Limit(cfg.RateLimitRPS),
		burst:    cfg.RateLimitBurst,
		ttl:      cfg.RateLimitTTL,
	}
	go l.sweep()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				// Proxies may hand us a bare IP without a port.
				ip = r.RemoteAddr
			}

			if !l.allow(ip) {
				logger.Warn("rate limit exceeded",
					slog.String("ip", ip),
					slog.String("path", r.URL.Path))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (l *ipLimiter) allow(ip string) bool {
	l.mu.Lock()
	c, ok := l.clientes[ip]
	if !ok {
		c = &cliente{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clientes[ip] = c
	}
	c.lastSeen = time.Now()
	l.mu.Unlock()

	return c.limiter.Allow()
}

func (l *ipLimiter) sweep() {
	for range time.Tick(time.Minute) {
		l.mu.Lock()
		for ip, c := range l.clientes {
			if time.Since(c.lastSeen) > l.ttl {
				delete(l.clientes, ip)
			}
		}
		l.mu.Unlock()
	}
}
