package binder

import (
	"fmt"
	"net/http"
)

// DefaultMaxMemory is the memory limit for parsing multipart forms.
const DefaultMaxMemory = 10 << 20

// Form binds application/x-www-form-urlencoded and multipart/form-data values
// to fields tagged with `form:"name"`. Requests without a form body are not
// applicable. Query parameters are not merged in; chain Query for that.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !hasBody(r) {
			return ErrBinderNotApplicable
		}

		switch mediaType(r) {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			return bindToStruct(v, "form", sanitizeValues(r.PostForm), ErrInvalidForm)

		case "multipart/form-data":
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values := map[string][]string{}
			if r.MultipartForm != nil {
				values = r.MultipartForm.Value
			}
			return bindToStruct(v, "form", sanitizeValues(values), ErrInvalidForm)

		default:
			return ErrBinderNotApplicable
		}
	}
}
