package data

import (
	"context"
	"database/sql/driver"
	stderrors "errors"
	"fmt"
	"net"
	"testing"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
)

func TestUpstreamErr(t *testing.T) {
	l := log.NewHelper(log.DefaultLogger)

	unavailable := []struct {
		name string
		err  error
	}{
		{"deadline exceeded", context.DeadlineExceeded},
		{"bad connection", driver.ErrBadConn},
		{"wrapped deadline", fmt.Errorf("query: %w", context.DeadlineExceeded)},
		{"network error", &net.OpError{Op: "dial", Err: stderrors.New("connection refused")}},
	}
	for _, tt := range unavailable {
		t.Run(tt.name, func(t *testing.T) {
			err := upstreamErr(l, "list mentions", tt.err)
			if !errors.IsServiceUnavailable(err) {
				t.Fatalf("upstreamErr(%v) = %v, want ServiceUnavailable", tt.err, err)
			}
			if errors.Reason(err) != "UPSTREAM_UNAVAILABLE" {
				t.Errorf("reason = %q, want UPSTREAM_UNAVAILABLE", errors.Reason(err))
			}
		})
	}

	t.Run("nil passes through", func(t *testing.T) {
		if err := upstreamErr(l, "list mentions", nil); err != nil {
			t.Errorf("upstreamErr(nil) = %v, want nil", err)
		}
	})

	t.Run("ordinary error wraps with the operation", func(t *testing.T) {
		cause := stderrors.New("syntax error")
		err := upstreamErr(l, "list mentions", cause)
		if errors.IsServiceUnavailable(err) {
			t.Fatalf("upstreamErr(%v) = %v, want plain wrap", cause, err)
		}
		if !stderrors.Is(err, cause) {
			t.Errorf("wrapped error lost its cause: %v", err)
		}
	})
}
