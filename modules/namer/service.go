package namer

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/ideabloom/handler"
	"github.com/dmitrymomot/ideabloom/pkg/binder"
	"github.com/dmitrymomot/ideabloom/pkg/logger"
	"github.com/dmitrymomot/ideabloom/pkg/namegen"
	"github.com/dmitrymomot/ideabloom/pkg/ratelimiter"
	"github.com/dmitrymomot/ideabloom/pkg/slug"
)

// NamesResponse is the JSON body of the names API.
type NamesResponse struct {
	Names   []string `json:"names"`
	Handles []string `json:"handles"`
	Style   string   `json:"style"`
}

// Service serves the generator page, the generate action and the JSON API.
type Service struct {
	cfg          Config
	gen          *namegen.Generator
	views        *Views
	limiter      *ratelimiter.Bucket
	errorHandler handler.ErrorHandler
	log          *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRateLimiter limits generate and API requests per client IP.
func WithRateLimiter(b *ratelimiter.Bucket) Option {
	return func(s *Service) { s.limiter = b }
}

// WithErrorHandler sets the handler for browser-facing routes. API routes
// always answer with JSON.
func WithErrorHandler(h handler.ErrorHandler) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

// NewService returns a Service. views must provide every component.
func NewService(cfg Config, gen *namegen.Generator, views *Views, opts ...Option) *Service {
	s := &Service{
		cfg:   cfg,
		gen:   gen,
		views: views,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("namer"))
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{})
	}
	return s
}

// Handle returns the module router.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.index,
		handler.WithBinders[GenerateRequest](binder.Query()),
		handler.WithErrorHandler[GenerateRequest](s.errorHandler),
	))

	r.Group(func(r chi.Router) {
		if s.limiter != nil {
			r.Use(ratelimiter.Middleware(s.limiter, ratelimiter.ByClientIP,
				ratelimiter.WithOnLimited(func(w http.ResponseWriter, r *http.Request, _ *ratelimiter.Result) {
					s.errorHandler(handler.NewContext(w, r), handler.ErrTooManyRequests)
				}),
				ratelimiter.WithOnError(s.limiterFailed),
			))
		}
		r.Post("/generate", handler.Wrap(s.generate,
			handler.WithBinders[GenerateRequest](binder.Signals(), binder.JSON(), binder.Form()),
			handler.WithErrorHandler[GenerateRequest](s.errorHandler),
			handler.WithDecorators(uiDelay[GenerateRequest](s.cfg.UIDelay, s.log)),
		))
	})

	r.Route("/api", func(r chi.Router) {
		if s.limiter != nil {
			r.Use(ratelimiter.Middleware(s.limiter, ratelimiter.ByClientIP,
				ratelimiter.WithOnLimited(func(w http.ResponseWriter, r *http.Request, _ *ratelimiter.Result) {
					_ = handler.JSONError(handler.ErrTooManyRequests).Render(w, r)
				}),
				ratelimiter.WithOnError(s.limiterFailed),
			))
		}
		names := handler.Wrap(s.names,
			handler.WithBinders[GenerateRequest](binder.Query(), binder.JSON(), binder.Form()),
			handler.WithErrorHandler[GenerateRequest](jsonErrorHandler),
		)
		r.Get("/names", names)
		r.Post("/names", names)
		r.Get("/styles", handler.Wrap(s.styles))
	})

	return r
}

func (s *Service) index(_ handler.Context, req GenerateRequest) handler.Response {
	if validateRequest(req) != nil {
		req = GenerateRequest{}
	}
	return handler.Templ(s.views.Page(PageParams{
		Form:   req,
		Styles: styleOptions(),
	}))
}

func (s *Service) generate(ctx handler.Context, req GenerateRequest) handler.Response {
	if err := validateRequest(req); err != nil {
		return handler.Error(err)
	}
	candidates, style := s.run(ctx, req)

	if !handler.IsDataStar(ctx.Request()) {
		return handler.Templ(s.views.Page(PageParams{
			Form:       req,
			Styles:     styleOptions(),
			Candidates: candidates,
		}))
	}

	return handler.TemplMulti(
		handler.Patch(s.views.Results(ResultsParams{Candidates: candidates, Style: style.String()}),
			handler.WithTarget("#"+ResultsID),
			handler.WithPatchMode(handler.PatchOuter),
		),
		handler.Patch(s.views.Toast(ToastParams{
			Title:   "Names Generated!",
			Message: "Check out your new project name suggestions",
			Type:    "success",
		}),
			handler.WithTarget("#"+ToastContainerID),
			handler.WithPatchMode(handler.PatchPrepend),
		),
	)
}

func (s *Service) names(ctx handler.Context, req GenerateRequest) handler.Response {
	if err := validateRequest(req); err != nil {
		return handler.JSONError(err)
	}
	candidates, style := s.run(ctx, req)

	resp := NamesResponse{
		Names:   make([]string, len(candidates)),
		Handles: make([]string, len(candidates)),
		Style:   style.String(),
	}
	for i, c := range candidates {
		resp.Names[i] = c.Name
		resp.Handles[i] = c.Handle
	}
	return handler.JSON(resp)
}

func (s *Service) styles(handler.Context, struct{}) handler.Response {
	return handler.JSON(styleOptions())
}

func (s *Service) run(ctx handler.Context, req GenerateRequest) ([]Candidate, namegen.Style) {
	nreq := req.toNamegen()
	names := s.gen.Generate(nreq)

	candidates := make([]Candidate, len(names))
	for i, name := range names {
		candidates[i] = Candidate{Name: name, Handle: NameHandle(name)}
	}

	s.log.DebugContext(ctx, "names generated",
		logger.Style(nreq.Style.String()),
		logger.Count(len(candidates)),
		slog.Bool("industry_set", req.Industry != ""),
		slog.Bool("theme_set", req.Theme != ""),
	)
	return candidates, nreq.Style
}

// NameHandle returns the URL-safe handle for a generated name. Names with no
// ASCII letters or digits get "project".
func NameHandle(name string) string {
	if h := slug.Make(name, slug.SplitCamel(true), slug.MaxLength(64)); h != "" {
		return h
	}
	return "project"
}

func styleOptions() []StyleOption {
	styles := namegen.Styles()
	opts := make([]StyleOption, len(styles))
	for i, st := range styles {
		opts[i] = StyleOption{Value: st.String(), Label: st.Label()}
	}
	return opts
}

// limiterFailed logs a rate limit store failure. The request is served
// unlimited.
func (s *Service) limiterFailed(r *http.Request, err error) {
	s.log.WarnContext(r.Context(), "rate limit store failed, request not limited",
		logger.Error(err),
		logger.Event("ratelimit_store_error"),
	)
}

func jsonErrorHandler(ctx handler.Context, err error) {
	_ = handler.JSONError(err).Render(ctx.ResponseWriter(), ctx.Request())
}

// uiDelay holds browser requests for d before the handler runs. A cancelled
// request context ends the wait with an empty response.
func uiDelay[R any](d time.Duration, log *slog.Logger) handler.Decorator[R] {
	return func(next handler.HandlerFunc[R]) handler.HandlerFunc[R] {
		if d <= 0 {
			return next
		}
		return func(ctx handler.Context, req R) handler.Response {
			if !handler.IsDataStar(ctx.Request()) {
				return next(ctx, req)
			}

			t := time.NewTimer(d)
			defer t.Stop()
			select {
			case <-t.C:
				return next(ctx, req)
			case <-ctx.Done():
				log.DebugContext(ctx, "client left during ui delay", logger.Error(ctx.Err()))
				return handler.ResponseFunc(func(http.ResponseWriter, *http.Request) error { return nil })
			}
		}
	}
}
