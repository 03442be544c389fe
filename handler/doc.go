// Package handler provides typed HTTP handlers with pluggable request binding
// and responses that adapt to the client.
//
// A HandlerFunc receives a Context and a bound request value and returns a
// Response. Wrap turns it into an http.HandlerFunc:
//
//	type GenerateRequest struct {
//		Industry string `json:"industry" form:"industry"`
//		Style    string `json:"style" form:"style"`
//	}
//
//	func generate(ctx handler.Context, req GenerateRequest) handler.Response {
//		names := gen.Generate(toRequest(req))
//		return handler.JSON(names)
//	}
//
//	r.Post("/api/names", handler.Wrap(generate,
//		handler.WithBinders[GenerateRequest](binder.JSON(), binder.Form()),
//		handler.WithErrorHandler[GenerateRequest](errHandler),
//	))
//
// Binders run in order; a binder returning binder.ErrBinderNotApplicable is
// skipped. Any other binder error, a nil Response, or a Render error is passed
// to the ErrorHandler.
//
// # Responses
//
// JSON and JSONError write the {"data": ..., "error": ...} envelope. Templ and
// TemplMulti render templ components as HTML for regular requests and as
// DataStar element patches over SSE when IsDataStar reports true.
//
// # Errors
//
// Return HTTPError values (ErrBadRequest, ErrTooManyRequests, ...) or a
// ValidationError to control status codes. NewErrorHandler builds an
// ErrorHandler that logs the failure and answers with JSON, a DataStar toast
// or a full error page depending on the request.
package handler
