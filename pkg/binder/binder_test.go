package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ideabloom/pkg/binder"
	"github.com/dmitrymomot/ideabloom/pkg/namegen"
)

type request struct {
	Industry string   `json:"industry" form:"industry" query:"industry"`
	Theme    string   `json:"theme" form:"theme" query:"theme"`
	Count    int      `json:"count" form:"count" query:"count"`
	Tags     []string `json:"tags" form:"tags" query:"tags"`
	Debug    *bool    `json:"debug" form:"debug" query:"debug"`
	Internal string   `json:"-" form:"-" query:"-"`
}

func TestQuery(t *testing.T) {
	t.Parallel()

	t.Run("binds tagged fields", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/?industry=tech&theme=blog&count=3&tags=a&tags=b&debug=on&internal=x", nil)

		var req request
		require.NoError(t, binder.Query()(r, &req))
		assert.Equal(t, "tech", req.Industry)
		assert.Equal(t, "blog", req.Theme)
		assert.Equal(t, 3, req.Count)
		assert.Equal(t, []string{"a", "b"}, req.Tags)
		require.NotNil(t, req.Debug)
		assert.True(t, *req.Debug)
		assert.Empty(t, req.Internal)
	})

	t.Run("missing values keep zero values", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		var req request
		require.NoError(t, binder.Query()(r, &req))
		assert.Equal(t, request{}, req)
	})

	t.Run("invalid int", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/?count=many", nil)

		var req request
		err := binder.Query()(r, &req)
		assert.ErrorIs(t, err, binder.ErrInvalidQuery)
	})

	t.Run("text unmarshaler", func(t *testing.T) {
		t.Parallel()
		type styled struct {
			Style namegen.Style `query:"style"`
		}
		r := httptest.NewRequest(http.MethodGet, "/?style=Quirky", nil)

		var req styled
		require.NoError(t, binder.Query()(r, &req))
		assert.Equal(t, namegen.Quirky, req.Style)

		r = httptest.NewRequest(http.MethodGet, "/?style=loud", nil)
		assert.ErrorIs(t, binder.Query()(r, &req), binder.ErrInvalidQuery)
	})

	t.Run("non struct target", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/?industry=x", nil)

		var s string
		err := binder.Query()(r, &s)
		assert.ErrorIs(t, err, binder.ErrInvalidTarget)
		assert.ErrorIs(t, err, binder.ErrInvalidQuery)
	})
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("urlencoded", func(t *testing.T) {
		t.Parallel()
		body := url.Values{"industry": {"food\x00"}, "theme": {"store"}, "count": {"2"}}
		r := httptest.NewRequest(http.MethodPost, "/?industry=ignored", strings.NewReader(body.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var req request
		require.NoError(t, binder.Form()(r, &req))
		assert.Equal(t, "food", req.Industry)
		assert.Equal(t, "store", req.Theme)
		assert.Equal(t, 2, req.Count)
	})

	t.Run("multipart", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("industry", "health"))
		require.NoError(t, mw.WriteField("tags", "x"))
		require.NoError(t, mw.WriteField("tags", "y"))
		require.NoError(t, mw.Close())

		r := httptest.NewRequest(http.MethodPost, "/", &buf)
		r.Header.Set("Content-Type", mw.FormDataContentType())

		var req request
		require.NoError(t, binder.Form()(r, &req))
		assert.Equal(t, "health", req.Industry)
		assert.Equal(t, []string{"x", "y"}, req.Tags)
	})

	t.Run("not applicable", func(t *testing.T) {
		t.Parallel()
		cases := map[string]*http.Request{
			"get":  httptest.NewRequest(http.MethodGet, "/?industry=x", nil),
			"json": jsonRequest(`{"industry":"x"}`),
		}
		for name, r := range cases {
			var req request
			assert.ErrorIs(t, binder.Form()(r, &req), binder.ErrBinderNotApplicable, name)
		}
	})
}

func jsonRequest(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		var req request
		require.NoError(t, binder.JSON()(jsonRequest(`{"industry":"tech\u0007","theme":"app","tags":["a"]}`), &req))
		assert.Equal(t, "tech", req.Industry)
		assert.Equal(t, "app", req.Theme)
		assert.Equal(t, []string{"a"}, req.Tags)
	})

	t.Run("charset parameter", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"theme":"game"}`))
		r.Header.Set("Content-Type", "application/json; charset=utf-8")

		var req request
		require.NoError(t, binder.JSON()(r, &req))
		assert.Equal(t, "game", req.Theme)
	})

	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"industry":`},
		{"unknown field", `{"mascot":"otter"}`},
		{"wrong type", `{"count":"three"}`},
		{"trailing data", `{"theme":"a"} {"theme":"b"}`},
		{"empty", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var req request
			assert.ErrorIs(t, binder.JSON()(jsonRequest(tt.body), &req), binder.ErrInvalidJSON)
		})
	}

	t.Run("too large", func(t *testing.T) {
		t.Parallel()
		body := `{"industry":"` + strings.Repeat("a", binder.DefaultMaxJSONSize) + `"}`
		var req request
		assert.ErrorIs(t, binder.JSON()(jsonRequest(body), &req), binder.ErrInvalidJSON)
	})

	t.Run("not applicable", func(t *testing.T) {
		t.Parallel()
		form := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("industry=x"))
		form.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		ds := jsonRequest(`{"industry":"x"}`)
		ds.Header.Set("Datastar-Request", "true")

		cases := map[string]*http.Request{
			"get":      httptest.NewRequest(http.MethodGet, "/", nil),
			"form":     form,
			"datastar": ds,
		}
		for name, r := range cases {
			var req request
			assert.ErrorIs(t, binder.JSON()(r, &req), binder.ErrBinderNotApplicable, name)
		}
	})
}

func TestSignals(t *testing.T) {
	t.Parallel()

	t.Run("post body", func(t *testing.T) {
		t.Parallel()
		r := jsonRequest(`{"industry":"finance","theme":"blog"}`)
		r.Header.Set("Datastar-Request", "true")

		var req request
		require.NoError(t, binder.Signals()(r, &req))
		assert.Equal(t, "finance", req.Industry)
		assert.Equal(t, "blog", req.Theme)
	})

	t.Run("get query", func(t *testing.T) {
		t.Parallel()
		q := url.Values{"datastar": {`{"theme":"social"}`}}
		r := httptest.NewRequest(http.MethodGet, "/?"+q.Encode(), nil)

		var req request
		require.NoError(t, binder.Signals()(r, &req))
		assert.Equal(t, "social", req.Theme)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		r := jsonRequest(`{"industry":`)
		r.Header.Set("Datastar-Request", "true")

		var req request
		assert.ErrorIs(t, binder.Signals()(r, &req), binder.ErrInvalidSignals)
	})

	t.Run("too large", func(t *testing.T) {
		t.Parallel()
		r := jsonRequest(`{"industry":"` + strings.Repeat("a", binder.DefaultMaxJSONSize) + `"}`)
		r.Header.Set("Datastar-Request", "true")

		var req request
		err := binder.Signals()(r, &req)
		assert.ErrorIs(t, err, binder.ErrInvalidSignals)
		assert.Contains(t, err.Error(), "request body too large")
		assert.Empty(t, req.Industry)
	})

	t.Run("not applicable", func(t *testing.T) {
		t.Parallel()
		var req request
		assert.ErrorIs(t, binder.Signals()(jsonRequest(`{}`), &req), binder.ErrBinderNotApplicable)
	})
}
