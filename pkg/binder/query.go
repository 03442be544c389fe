package binder

import "net/http"

// Query binds URL query parameters to fields tagged with `query:"name"`.
// Fields without a tag use the lowercased field name; `query:"-"` skips a field.
// Query is always applicable, so it never returns ErrBinderNotApplicable.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrInvalidQuery)
	}
}
