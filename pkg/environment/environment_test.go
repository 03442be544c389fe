package environment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/ideabloom/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := map[string]environment.Environment{
		"production":   environment.Production,
		"PROD":         environment.Production,
		" staging ":    environment.Staging,
		"stage":        environment.Staging,
		"development":  environment.Development,
		"dev":          environment.Development,
		"":             environment.Development,
		"qa-cluster-7": environment.Development,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, want, environment.Parse(in))

			var env environment.Environment
			assert.NoError(t, env.UnmarshalText([]byte(in)))
			assert.Equal(t, want, env)
		})
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, environment.FromContext(context.Background()))

	ctx := environment.WithContext(context.Background(), environment.Production)
	assert.Equal(t, environment.Production, environment.FromContext(ctx))
	assert.True(t, environment.IsProduction(ctx))
	assert.False(t, environment.IsDevelopment(ctx))
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got environment.Environment
	h := environment.Middleware(environment.Staging)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = environment.FromContext(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, environment.Staging, got)
}
