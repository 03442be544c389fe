package httpserver

import (
	"context"
	"net/http"
	"time"
)

// ReadinessTimeout bounds a single Ready call.
const ReadinessTimeout = 2 * time.Second

// Check reports whether a dependency is usable.
type Check func(ctx context.Context) error

// Liveness answers 200 "ALIVE" while the process serves requests.
func Liveness() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ALIVE"))
	}
}

// Ready runs checks in order within ReadinessTimeout and returns the first
// failure.
func Ready(ctx context.Context, checks ...Check) error {
	ctx, cancel := context.WithTimeout(ctx, ReadinessTimeout)
	defer cancel()

	for _, check := range checks {
		if err := check(ctx); err != nil {
			return err
		}
	}
	return nil
}
