package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/time/rate"
)

func TestWriteRateLimit(t *testing.T) {
	limiter := rate.NewLimiter(0, 1) // single token, no refill
	handler := WriteRateLimit(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(method string) int {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(method, "/api/news", nil))
		return rec.Code
	}

	if code := do(http.MethodPost); code != http.StatusOK {
		t.Errorf("first POST = %d, want 200", code)
	}
	if code := do(http.MethodPost); code != http.StatusTooManyRequests {
		t.Errorf("second POST = %d, want 429", code)
	}
	// Reads are never limited.
	for i := 0; i < 3; i++ {
		if code := do(http.MethodGet); code != http.StatusOK {
			t.Errorf("GET %d = %d, want 200", i, code)
		}
	}
}
