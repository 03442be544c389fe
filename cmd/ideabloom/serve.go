package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/ideabloom/handler"
	"github.com/dmitrymomot/ideabloom/modules/namer"
	"github.com/dmitrymomot/ideabloom/pkg/clientip"
	"github.com/dmitrymomot/ideabloom/pkg/config"
	"github.com/dmitrymomot/ideabloom/pkg/environment"
	"github.com/dmitrymomot/ideabloom/pkg/httpserver"
	"github.com/dmitrymomot/ideabloom/pkg/logger"
	"github.com/dmitrymomot/ideabloom/pkg/namegen"
	"github.com/dmitrymomot/ideabloom/pkg/ratelimiter"
	"github.com/dmitrymomot/ideabloom/pkg/redis"
	"github.com/dmitrymomot/ideabloom/pkg/requestid"
	"github.com/dmitrymomot/ideabloom/web/views"
)

// appConfig holds process-wide settings.
type appConfig struct {
	Env      environment.Environment `env:"APP_ENV" envDefault:"development"`
	Name     string                  `env:"APP_NAME" envDefault:"ideabloom"`
	LogLevel string                  `env:"LOG_LEVEL"`
}

type serveConfig struct {
	app   appConfig
	http  httpserver.Config
	namer namer.Config
	redis redis.Config
}

// loadServeConfig seeds the environment from envFiles, in order, and then
// loads every config section.
func loadServeConfig(envFiles ...string) (serveConfig, error) {
	var cfg serveConfig
	if len(envFiles) > 0 {
		if err := config.LoadEnv(envFiles...); err != nil {
			return cfg, err
		}
	}
	if err := config.Load(&cfg.app); err != nil {
		return cfg, err
	}
	if err := config.Load(&cfg.http); err != nil {
		return cfg, err
	}
	if err := config.Load(&cfg.namer); err != nil {
		return cfg, err
	}
	if err := config.Load(&cfg.redis); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newServeCmd() *cobra.Command {
	var envFiles []string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web generator",
		Long: "Run the web generator and JSON API. Settings are read from the environment\n" +
			"and an optional .env file (APP_*, HTTP_*, NAMEGEN_*, REDIS_*).",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadServeConfig(envFiles...)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringSliceVar(&envFiles, "env-file", nil, "extra .env files to load; earlier files win")
	return cmd
}

func runServe(ctx context.Context, cfg serveConfig) error {
	log := logger.New(
		logger.WithEnvironment(cfg.app.Env, cfg.app.Name),
		logger.WithLevelName(cfg.app.LogLevel),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
		),
	)

	bank, err := cfg.namer.WordBank()
	if err != nil {
		log.ErrorContext(ctx, "failed to load word bank", logger.Error(err), slog.String("path", cfg.namer.WordBankPath))
		return err
	}

	srvOpts := []httpserver.Option{httpserver.WithLogger(log)}
	var (
		store  ratelimiter.Store
		checks []httpserver.Check
	)
	if cfg.redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.redis)
		if err != nil {
			log.ErrorContext(ctx, "failed to connect to redis", logger.Error(err))
			return err
		}
		store = ratelimiter.NewRedisStore(client, cfg.app.Name+":ratelimit:")
		checks = append(checks, redis.Healthcheck(client))
		srvOpts = append(srvOpts, httpserver.WithShutdownHook(func(context.Context) error {
			return client.Close()
		}))
		log.InfoContext(ctx, "rate limits stored in redis")
	} else {
		mem := ratelimiter.NewMemoryStore()
		store = mem
		srvOpts = append(srvOpts, httpserver.WithShutdownHook(func(ctx context.Context) error {
			log.InfoContext(ctx, "rate limit store closed", slog.Int("tracked_clients", mem.Len()))
			mem.Close()
			return nil
		}))
	}

	bucket, err := ratelimiter.NewBucket(store, cfg.namer.RateLimit())
	if err != nil {
		return err
	}

	router := newRouter(log, cfg.app.Env, namegen.New(bank, nil), cfg.namer, bucket, checks...)
	return httpserver.New(cfg.http, srvOpts...).Run(ctx, router)
}

// newRouter assembles middleware, health endpoints and the namer module.
func newRouter(
	log *slog.Logger,
	env environment.Environment,
	gen *namegen.Generator,
	cfg namer.Config,
	bucket *ratelimiter.Bucket,
	checks ...httpserver.Check,
) http.Handler {
	errorHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
		ErrorPage:  views.ErrorPage,
		ErrorToast: views.ErrorToast,
	})

	svc := namer.NewService(cfg, gen, &namer.Views{
		Page:    views.Page,
		Results: views.Results,
		Toast:   views.Toast,
	},
		namer.WithLogger(log),
		namer.WithRateLimiter(bucket),
		namer.WithErrorHandler(errorHandler),
	)

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware,
		environment.Middleware(env),
		accessLog(log),
		middleware.Recoverer,
	)

	// Set before Mount so the module router inherits both.
	r.NotFound(errorRoute(errorHandler, handler.ErrNotFound))
	r.MethodNotAllowed(errorRoute(errorHandler, handler.ErrMethodNotAllowed))

	r.Get("/healthz", httpserver.Liveness())
	r.Get("/readyz", readiness(errorHandler, checks...))
	r.Mount("/", svc.Handle())

	return r
}

// errorRoute answers every request with err through eh.
func errorRoute(eh handler.ErrorHandler, err error) http.HandlerFunc {
	return handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.Error(err)
	}, handler.WithErrorHandler[struct{}](eh))
}

// readiness answers "READY" once every check passes, or 503 through eh.
func readiness(eh handler.ErrorHandler, checks ...httpserver.Check) http.HandlerFunc {
	return handler.Wrap(func(ctx handler.Context, _ struct{}) handler.Response {
		if err := httpserver.Ready(ctx, checks...); err != nil {
			return handler.Error(errors.Join(handler.ErrServiceUnavailable, err))
		}
		return handler.ResponseFunc(func(w http.ResponseWriter, _ *http.Request) error {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, err := io.WriteString(w, "READY")
			return err
		})
	}, handler.WithErrorHandler[struct{}](eh))
}

// accessLog logs one line per request at info level, or warn for 5xx.
func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	log = log.With(logger.Component("http"))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			level := slog.LevelInfo
			if status >= http.StatusInternalServerError {
				level = slog.LevelWarn
			}
			log.LogAttrs(r.Context(), level, "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
