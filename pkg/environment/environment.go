// Package environment carries the deployment environment of the process
// through configuration and request contexts.
package environment

import (
	"context"
	"net/http"
	"strings"
)

// Environment names a deployment stage.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Parse maps a configuration value to an Environment. Short aliases ("dev",
// "stage", "prod") are accepted; anything unrecognised is Development.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "production", "prod":
		return Production
	case "staging", "stage":
		return Staging
	default:
		return Development
	}
}

// String implements fmt.Stringer.
func (e Environment) String() string { return string(e) }

// UnmarshalText lets config loaders decode APP_ENV directly into an Environment.
func (e *Environment) UnmarshalText(text []byte) error {
	*e = Parse(string(text))
	return nil
}

type contextKey struct{}

// WithContext returns a copy of ctx carrying env.
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext returns the environment stored in ctx, or "" when absent.
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(contextKey{}).(Environment)
	return env
}

// IsProduction reports whether ctx carries the production environment.
func IsProduction(ctx context.Context) bool {
	return FromContext(ctx) == Production
}

// IsDevelopment reports whether ctx carries the development environment.
func IsDevelopment(ctx context.Context) bool {
	return FromContext(ctx) == Development
}

// Middleware stores env in every request context.
func Middleware(env Environment) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), env)))
		})
	}
}
