package namer_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ideabloom/handler"
	"github.com/dmitrymomot/ideabloom/modules/namer"
	"github.com/dmitrymomot/ideabloom/pkg/logger"
	"github.com/dmitrymomot/ideabloom/pkg/namegen"
	"github.com/dmitrymomot/ideabloom/pkg/ratelimiter"
)

func text(format string, args ...any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, format, args...)
		return err
	})
}

func fakeViews() *namer.Views {
	return &namer.Views{
		Page: func(p namer.PageParams) templ.Component {
			names := make([]string, len(p.Candidates))
			for i, c := range p.Candidates {
				names[i] = c.Name
			}
			return text("<page industry=%q styles=%d names=%q>", p.Form.Industry, len(p.Styles), strings.Join(names, "|"))
		},
		Results: func(p namer.ResultsParams) templ.Component {
			return text(`<div id="results" data-style="%s" data-count="%d"></div>`, p.Style, len(p.Candidates))
		},
		Toast: func(p namer.ToastParams) templ.Component {
			return text(`<div class="toast toast-%s">%s %s</div>`, p.Type, p.Title, p.Message)
		},
	}
}

func newService(t *testing.T, opts ...namer.Option) http.Handler {
	t.Helper()
	gen := namegen.New(nil, namegen.NewSeededPicker(7))
	opts = append([]namer.Option{namer.WithLogger(logger.Discard())}, opts...)
	return namer.NewService(namer.Config{}, gen, fakeViews(), opts...).Handle()
}

func decodeNames(t *testing.T, body io.Reader) namer.NamesResponse {
	t.Helper()
	var env struct {
		Data namer.NamesResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(body).Decode(&env))
	return env.Data
}

func TestService_Index(t *testing.T) {
	t.Parallel()
	h := newService(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?industry=Food", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Equal(t, `<page industry="Food" styles=4 names="">`, w.Body.String())
}

func TestService_Generate(t *testing.T) {
	t.Parallel()

	t.Run("datastar patches results and toast", func(t *testing.T) {
		t.Parallel()
		h := newService(t)

		r := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(`{"industry":"tech","style":"quirky"}`))
		r.Header.Set("Datastar-Request", "true")
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")
		body := w.Body.String()
		assert.Equal(t, 2, strings.Count(body, "datastar-patch-elements"))
		assert.Contains(t, body, "#results")
		assert.Contains(t, body, `data-style="quirky" data-count="8"`)
		assert.Contains(t, body, "#toast-container")
		assert.Contains(t, body, "prepend")
		assert.Contains(t, body, "Names Generated!")
		assert.Contains(t, body, "Check out your new project name suggestions")
	})

	t.Run("form post renders full page", func(t *testing.T) {
		t.Parallel()
		h := newService(t)

		form := url.Values{"industry": {"health"}, "style": {"professional"}}
		r := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `industry="health"`)
		start := strings.Index(body, `names="`) + len(`names="`)
		names := strings.Split(body[start:strings.LastIndex(body, `"`)], "|")
		assert.Len(t, names, namegen.BatchSize)
	})

	t.Run("invalid style reaches error handler", func(t *testing.T) {
		t.Parallel()
		var got error
		h := newService(t, namer.WithErrorHandler(func(ctx handler.Context, err error) {
			got = err
			ctx.ResponseWriter().WriteHeader(http.StatusUnprocessableEntity)
		}))

		r := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(`{"style":"gothic"}`))
		r.Header.Set("Datastar-Request", "true")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var verr handler.ValidationError
		require.ErrorAs(t, got, &verr)
		assert.True(t, verr.Has("style"))
	})
}

func TestService_NamesAPI(t *testing.T) {
	t.Parallel()

	t.Run("query", func(t *testing.T) {
		t.Parallel()
		h := newService(t)

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/names?industry=tech&theme=app&style=professional", nil))

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeNames(t, w.Body)
		assert.Equal(t, "professional", resp.Style)
		require.Len(t, resp.Names, namegen.BatchSize)
		require.Len(t, resp.Handles, namegen.BatchSize)
		for i, name := range resp.Names {
			assert.NotEmpty(t, strings.TrimSpace(name))
			assert.Equal(t, namer.NameHandle(name), resp.Handles[i])
		}
	})

	t.Run("json body defaults to modern", func(t *testing.T) {
		t.Parallel()
		h := newService(t)

		r := httptest.NewRequest(http.MethodPost, "/api/names", strings.NewReader(`{"theme":"blog"}`))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeNames(t, w.Body)
		assert.Equal(t, "modern", resp.Style)
		assert.Len(t, resp.Names, namegen.BatchSize)
	})

	t.Run("validation error", func(t *testing.T) {
		t.Parallel()
		h := newService(t)

		body := fmt.Sprintf(`{"industry":%q,"style":"gothic"}`, strings.Repeat("a", namer.MaxFieldLength+1))
		r := httptest.NewRequest(http.MethodPost, "/api/names", strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var env handler.JSONResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&env))
		require.NotNil(t, env.Error)
		assert.Equal(t, "validation_error", env.Error.Code)
		assert.Equal(t, []string{"must be at most 200 characters"}, env.Error.Details["industry"])
		assert.Equal(t, []string{"must be one of: modern, quirky, professional, creative"}, env.Error.Details["style"])
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()
		h := newService(t)

		r := httptest.NewRequest(http.MethodPost, "/api/names", strings.NewReader(`{"industry":`))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "bad_request")
	})
}

func TestService_Styles(t *testing.T) {
	t.Parallel()
	h := newService(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/styles", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[
		{"value":"modern","label":"Modern & Sleek"},
		{"value":"quirky","label":"Fun & Quirky"},
		{"value":"professional","label":"Professional"},
		{"value":"creative","label":"Creative & Artistic"}
	]}`, w.Body.String())
}

func TestService_RateLimit(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithSweepInterval(0))
	t.Cleanup(store.Close)
	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Hour})
	require.NoError(t, err)
	h := newService(t, namer.WithRateLimiter(bucket))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/names", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/names", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "too_many_requests")

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code, "page is not limited")
}

func TestService_RateLimitStoreFailure(t *testing.T) {
	t.Parallel()

	bucket, err := ratelimiter.NewBucket(failingStore{}, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Hour})
	require.NoError(t, err)

	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, nil))
	h := newService(t, namer.WithRateLimiter(bucket), namer.WithLogger(log))

	for range 3 {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/names", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	r := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(`{"industry":"tech"}`))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 4, strings.Count(logs.String(), "rate limit store failed"))
	assert.Contains(t, logs.String(), "ratelimit_store_error")
	assert.Contains(t, logs.String(), "redis down")
}

type failingStore struct{}

func (failingStore) ConsumeTokens(context.Context, string, int, ratelimiter.Config) (int, time.Time, error) {
	return 0, time.Time{}, errors.Join(ratelimiter.ErrStoreUnavailable, errors.New("redis down"))
}

func TestService_UIDelay(t *testing.T) {
	t.Parallel()

	gen := namegen.New(nil, namegen.NewSeededPicker(1))
	h := namer.NewService(namer.Config{UIDelay: time.Hour}, gen, fakeViews(),
		namer.WithLogger(logger.Discard()),
	).Handle()

	t.Run("cancelled datastar request returns early", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		r := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(`{}`)).WithContext(ctx)
		r.Header.Set("Datastar-Request", "true")
		w := httptest.NewRecorder()

		start := time.Now()
		h.ServeHTTP(w, r)
		assert.Less(t, time.Since(start), 5*time.Second)
		assert.Empty(t, w.Body.String())
	})

	t.Run("form post is not delayed", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader("industry=food"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()

		start := time.Now()
		h.ServeHTTP(w, r)
		assert.Less(t, time.Since(start), 5*time.Second)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestNameHandle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"NovaHub", "nova-hub"},
		{"Bouncy Panda", "bouncy-panda"},
		{"innovative Tech", "innovative-tech"},
		{"Привет", "project"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, namer.NameHandle(tt.name))
		})
	}
}
