package ratelimiter

import (
	"net/http"
	"strconv"

	"github.com/dmitrymomot/ideabloom/pkg/clientip"
)

// KeyFunc extracts the bucket key from a request.
type KeyFunc func(r *http.Request) string

// ByClientIP keys requests by client IP, preferring the value stored by
// clientip.Middleware.
func ByClientIP(r *http.Request) string {
	if ip := clientip.FromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.FromRequest(r)
}

// LimitedFunc writes the response for a denied request.
type LimitedFunc func(w http.ResponseWriter, r *http.Request, res *Result)

// ErrorFunc is told about a store failure. The request is let through
// afterwards.
type ErrorFunc func(r *http.Request, err error)

type middlewareOptions struct {
	onLimited LimitedFunc
	onError   ErrorFunc
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareOptions)

// WithOnLimited replaces the default 429 response.
func WithOnLimited(fn LimitedFunc) MiddlewareOption {
	return func(o *middlewareOptions) { o.onLimited = fn }
}

// WithOnError reports store failures to fn.
func WithOnError(fn ErrorFunc) MiddlewareOption {
	return func(o *middlewareOptions) { o.onError = fn }
}

// Middleware takes one token per request from bucket.
func Middleware(bucket *Bucket, keyFunc KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	o := &middlewareOptions{
		onLimited: func(w http.ResponseWriter, _ *http.Request, _ *Result) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		},
	}
	for _, opt := range opts {
		opt(o)
	}
	if keyFunc == nil {
		keyFunc = ByClientIP
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res, err := bucket.Allow(r.Context(), keyFunc(r))
			if err != nil {
				if o.onError != nil {
					o.onError(r, err)
				}
				next.ServeHTTP(w, r)
				return
			}

			SetHeaders(w, res)
			if !res.Allowed() {
				o.onLimited(w, r, res)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SetHeaders writes X-RateLimit-* headers, plus Retry-After when res is denied.
func SetHeaders(w http.ResponseWriter, res *Result) {
	h := w.Header()
	h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
	h.Set("X-RateLimit-Remaining", strconv.Itoa(max(res.Remaining, 0)))
	h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))
	if !res.Allowed() {
		secs := int64(res.RetryAfter().Seconds() + 0.999)
		h.Set("Retry-After", strconv.FormatInt(max(secs, 1), 10))
	}
}
