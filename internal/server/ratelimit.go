package server

import (
	nethttp "net/http"

	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/tolko/rp-reports/internal/conf"
	"golang.org/x/time/rate"
)

const (
	defaultWriteRPM   = 120
	defaultWriteBurst = 10
)

func newWriteLimiter(c *conf.Concurrency) *rate.Limiter {
	rpm := int32(defaultWriteRPM)
	burst := int32(defaultWriteBurst)
	if c != nil {
		if c.Rpm > 0 {
			rpm = c.Rpm
		}
		if c.Burst > 0 {
			burst = c.Burst
		}
	}
	return rate.NewLimiter(rate.Limit(float64(rpm)/60.0), int(burst))
}

// WriteRateLimit bounds mutating requests; reads pass through untouched.
func WriteRateLimit(limiter *rate.Limiter) http.FilterFunc {
	return func(next nethttp.Handler) nethttp.Handler {
		return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			if r.Method != nethttp.MethodGet && !limiter.Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(nethttp.StatusTooManyRequests)
				w.Write([]byte(`{"message":"too many requests"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
