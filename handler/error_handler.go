package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/ideabloom/pkg/environment"
	"github.com/dmitrymomot/ideabloom/pkg/logger"
	"github.com/dmitrymomot/ideabloom/pkg/requestid"
)

// ErrorPageParams is passed to ErrorHandlerConfig.ErrorPage.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams is passed to ErrorHandlerConfig.ErrorToast.
type ErrorToastParams struct {
	Message   string
	Type      string // "error" or "warning"
	RequestID string
}

// ErrorHandlerConfig holds the components NewErrorHandler renders.
type ErrorHandlerConfig struct {
	// ErrorPage renders a full page for regular browser requests.
	ErrorPage func(ErrorPageParams) templ.Component
	// ErrorToast renders a toast patched into the page for DataStar requests.
	ErrorToast func(ErrorToastParams) templ.Component
	// ToastTarget defaults to "#toast-container".
	ToastTarget string
	// ToastMode defaults to PatchPrepend.
	ToastMode datastar.ElementPatchMode
}

type errorInfo struct {
	status  int
	message string
}

func (i errorInfo) level() slog.Level {
	if i.status < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}

func (i errorInfo) toastType() string {
	if i.status < http.StatusInternalServerError {
		return "warning"
	}
	return "error"
}

func classifyError(err error) errorInfo {
	var valErr ValidationError
	if errors.As(err, &valErr) {
		return errorInfo{status: http.StatusUnprocessableEntity, message: validationMessage(valErr)}
	}
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return errorInfo{status: httpErr.Code, message: httpErr.Message()}
	}
	return errorInfo{
		status:  http.StatusInternalServerError,
		message: "An error occurred processing your request",
	}
}

func validationMessage(e ValidationError) string {
	var msgs []string
	for field, list := range e {
		for _, m := range list {
			msgs = append(msgs, field+": "+m)
		}
	}
	if len(msgs) == 0 {
		return "Validation failed"
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}

// NewErrorHandler returns an ErrorHandler that logs err and answers with a
// JSON envelope for API clients, a toast patch for DataStar requests, or an
// error page otherwise. A nil log uses slog.Default.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}
	log = log.With(logger.Component("error_handler"))

	return func(ctx Context, err error) {
		r := ctx.Request()
		w := ctx.ResponseWriter()
		reqID := requestid.FromContext(r.Context())
		info := classifyError(err)
		if info.status >= http.StatusInternalServerError && environment.IsDevelopment(r.Context()) {
			info.message = err.Error()
		}

		log.LogAttrs(r.Context(), info.level(), "request failed",
			logger.Error(err),
			slog.Int("status_code", info.status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("datastar", IsDataStar(r)),
		)

		var renderErr error
		switch {
		case WantsJSON(r):
			renderErr = JSONError(err).Render(w, r)

		case IsDataStar(r):
			if cfg.ErrorToast == nil {
				http.Error(w, info.message, info.status)
				break
			}
			toast := cfg.ErrorToast(ErrorToastParams{
				Message:   info.message,
				Type:      info.toastType(),
				RequestID: reqID,
			})
			renderErr = datastar.NewSSE(w, r).PatchElementTempl(toast,
				datastar.WithSelector(cfg.ToastTarget),
				datastar.WithMode(cfg.ToastMode),
			)

		case cfg.ErrorPage != nil:
			page := cfg.ErrorPage(ErrorPageParams{
				Error:      info.message,
				StatusCode: info.status,
				RequestID:  reqID,
				RetryURL:   r.URL.Path,
			})
			renderErr = renderHTML(w, r, info.status, page)

		default:
			http.Error(w, info.message, info.status)
		}

		if renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.Error(renderErr),
				logger.Event("render_error"),
			)
		}
	}
}
