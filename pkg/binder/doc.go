// Package binder decodes HTTP request data into typed request structs.
//
// Each binder has the signature func(*http.Request, any) error and handles a
// single source:
//
//   - Query reads URL query parameters using `query` tags.
//   - Form reads urlencoded and multipart form values using `form` tags.
//   - JSON decodes an application/json body using `json` tags.
//   - Signals decodes DataStar signals (query for GET, body otherwise) using `json` tags.
//
// A binder that does not apply to the incoming request returns
// ErrBinderNotApplicable so the caller can try the next one. handler.Wrap
// skips such binders, which makes it possible to serve JSON clients, DataStar
// and plain HTML forms from the same route:
//
//	type GenerateRequest struct {
//	    Industry string `json:"industry" form:"industry" query:"industry"`
//	    Style    string `json:"style"    form:"style"    query:"style"`
//	}
//
//	r.Post("/generate", handler.Wrap(h,
//	    handler.WithBinders[GenerateRequest](
//	        binder.Signals(),
//	        binder.JSON(),
//	        binder.Form(),
//	    ),
//	))
//
// String values bound from bodies are stripped of control characters other
// than tab and newline.
package binder
