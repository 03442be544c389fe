package handler

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/ideabloom/pkg/binder"
)

// HandlerFunc handles a request of type R bound from the incoming HTTP request.
type HandlerFunc[R any] func(ctx Context, req R) Response

// Response writes itself to the client.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// ResponseFunc adapts a plain function to Response.
type ResponseFunc func(w http.ResponseWriter, r *http.Request) error

// Render implements Response.
func (f ResponseFunc) Render(w http.ResponseWriter, r *http.Request) error { return f(w, r) }

// Error returns a Response that hands err to the error handler.
func Error(err error) Response {
	return ResponseFunc(func(http.ResponseWriter, *http.Request) error { return err })
}

// Bind decodes request data into v.
type Bind func(r *http.Request, v any) error

// ErrorHandler reports a binding, handler or rendering failure to the client.
type ErrorHandler func(ctx Context, err error)

// Decorator wraps a HandlerFunc. The first decorator passed to WithDecorators
// is the outermost.
type Decorator[R any] func(HandlerFunc[R]) HandlerFunc[R]

// WrapOption configures Wrap.
type WrapOption[R any] func(*wrapConfig[R])

type wrapConfig[R any] struct {
	binders      []Bind
	errorHandler ErrorHandler
	decorators   []Decorator[R]
}

// WithBinders appends binders that are applied in order.
func WithBinders[R any](binders ...Bind) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		c.binders = append(c.binders, binders...)
	}
}

// WithErrorHandler replaces the default plain-text error handler.
func WithErrorHandler[R any](h ErrorHandler) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithDecorators appends decorators around the handler.
func WithDecorators[R any](decorators ...Decorator[R]) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

func defaultErrorHandler(ctx Context, err error) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		http.Error(ctx.ResponseWriter(), httpErr.Message(), httpErr.Code)
		return
	}
	var valErr ValidationError
	if errors.As(err, &valErr) {
		http.Error(ctx.ResponseWriter(), err.Error(), http.StatusUnprocessableEntity)
		return
	}
	http.Error(ctx.ResponseWriter(), http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Wrap converts h into an http.HandlerFunc.
func Wrap[R any](h HandlerFunc[R], opts ...WrapOption[R]) http.HandlerFunc {
	cfg := &wrapConfig[R]{errorHandler: defaultErrorHandler}
	for _, opt := range opts {
		opt(cfg)
	}

	final := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		final = cfg.decorators[i](final)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := NewContext(w, r)

		var req R
		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				if errors.Is(err, binder.ErrBinderNotApplicable) {
					continue
				}
				cfg.errorHandler(ctx, bindError(err))
				return
			}
		}

		resp := final(ctx, req)
		if resp == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}

// bindError attaches the HTTP status a binder failure maps to.
func bindError(err error) error {
	if errors.Is(err, binder.ErrUnsupportedMediaType) {
		return errors.Join(ErrUnsupportedMediaType, err)
	}
	return errors.Join(ErrBadRequest, err)
}
