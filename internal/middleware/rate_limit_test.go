package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"log/slog"

	"github.com/Yorfad/PROVIAL-sub003/internal/config"
	"github.com/Yorfad/PROVIAL-sub003/internal/middleware"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestLimit_RechazaSobreBurst(t *testing.T) {
	t.Parallel()

	cfg := config.HttpConfig{
		RateLimitRPS:   1,
		RateLimitBurst: 3,
		RateLimitTTL:   time.Minute,
	}
	handler := middleware.Limit(cfg, newTestLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/situaciones-persistentes/activas", nil)
		req.RemoteAddr = "10.0.0.7:5555"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	for i, code := range codes[:3] {
		if code != http.StatusOK {
			t.Errorf("request %d = %d, want 200 within burst", i, code)
		}
	}
	for i, code := range codes[3:] {
		if code != http.StatusTooManyRequests {
			t.Errorf("request %d = %d, want 429 past burst", i+3, code)
		}
	}
}

func TestLimit_AislaPorIP(t *testing.T) {
	t.Parallel()

	cfg := config.HttpConfig{
		RateLimitRPS:   1,
		RateLimitBurst: 1,
		RateLimitTTL:   time.Minute,
	}
	handler := middleware.Limit(cfg, newTestLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := send("10.0.0.1:1000"); code != http.StatusOK {
		t.Fatalf("first ip = %d, want 200", code)
	}
	if code := send("10.0.0.1:1000"); code != http.StatusTooManyRequests {
		t.Fatalf("first ip repeat = %d, want 429", code)
	}
	// A different client keeps its own budget.
	if code := send("10.0.0.2:1000"); code != http.StatusOK {
		t.Fatalf("second ip = %d, want 200", code)
	}
}
