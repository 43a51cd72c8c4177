package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func newRateLimitedHandler(t *testing.T, limit int) (http.Handler, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	config := RateLimitConfig{
		RequestsPerWindow: limit,
		Window:            time.Minute,
		KeyPrefix:         "test_rate_limit",
	}

	handler := RateLimitMiddleware(client, config, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	return handler, mr
}

func doRateLimitedRequest(handler http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware_AllowsWithinLimit(t *testing.T) {
	handler, _ := newRateLimitedHandler(t, 3)

	for i := 0; i < 3; i++ {
		w := doRateLimitedRequest(handler, "10.0.0.1:1234")
		if w.Code != http.StatusOK {
			t.Fatalf("Request %d: expected 200, got %d", i+1, w.Code)
		}
	}
}

func TestRateLimitMiddleware_BlocksOverLimit(t *testing.T) {
	handler, _ := newRateLimitedHandler(t, 2)

	doRateLimitedRequest(handler, "10.0.0.1:1234")
	doRateLimitedRequest(handler, "10.0.0.1:1234")

	w := doRateLimitedRequest(handler, "10.0.0.1:1234")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("Expected 429, got %d", w.Code)
	}
	if w.Header().Get("X-RateLimit-Remaining") != "0" {
		t.Errorf("Expected remaining 0, got %q", w.Header().Get("X-RateLimit-Remaining"))
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("Expected Retry-After header")
	}
}

func TestRateLimitMiddleware_TracksClientsSeparately(t *testing.T) {
	handler, _ := newRateLimitedHandler(t, 1)

	doRateLimitedRequest(handler, "10.0.0.1:1234")

	w := doRateLimitedRequest(handler, "10.0.0.2:1234")
	if w.Code != http.StatusOK {
		t.Errorf("Second client should not be limited, got %d", w.Code)
	}
}

func TestRateLimitMiddleware_WindowResets(t *testing.T) {
	handler, mr := newRateLimitedHandler(t, 1)

	doRateLimitedRequest(handler, "10.0.0.1:1234")

	w := doRateLimitedRequest(handler, "10.0.0.1:1234")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("Expected 429 before window reset, got %d", w.Code)
	}

	mr.FastForward(2 * time.Minute)

	w = doRateLimitedRequest(handler, "10.0.0.1:1234")
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 after window reset, got %d", w.Code)
	}
}

func TestRateLimitMiddleware_FailsOpenOnRedisError(t *testing.T) {
	handler, mr := newRateLimitedHandler(t, 1)

	mr.Close()

	w := doRateLimitedRequest(handler, "10.0.0.1:1234")
	if w.Code != http.StatusOK {
		t.Errorf("Expected request to pass when redis is down, got %d", w.Code)
	}
}

func TestRateLimitMiddleware_RemainingHeaderDecrements(t *testing.T) {
	handler, _ := newRateLimitedHandler(t, 3)

	w := doRateLimitedRequest(handler, "10.0.0.1:1234")
	if w.Header().Get("X-RateLimit-Remaining") != "2" {
		t.Errorf("Expected remaining 2, got %q", w.Header().Get("X-RateLimit-Remaining"))
	}

	w = doRateLimitedRequest(handler, "10.0.0.1:1234")
	if w.Header().Get("X-RateLimit-Remaining") != "1" {
		t.Errorf("Expected remaining 1, got %q", w.Header().Get("X-RateLimit-Remaining"))
	}
}
