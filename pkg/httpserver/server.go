// Package httpserver runs an http.Handler until the context is cancelled or
// the process receives SIGINT/SIGTERM, then shuts it down gracefully.
package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrymomot/ideabloom/pkg/logger"
)

var (
	ErrStart          = errors.New("failed to start HTTP server")
	ErrShutdown       = errors.New("failed to shutdown HTTP server gracefully")
	ErrAlreadyRunning = errors.New("server already running")
)

// Config is loaded from HTTP_* environment variables.
type Config struct {
	Addr              string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Option customises a Server.
type Option func(*Server)

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithListener serves on l instead of listening on Config.Addr.
func WithListener(l net.Listener) Option {
	return func(s *Server) { s.listener = l }
}

// WithShutdownHook registers fn to run after the server stopped accepting
// requests, for example to close a Redis client.
func WithShutdownHook(fn func(context.Context) error) Option {
	return func(s *Server) {
		if fn != nil {
			s.hooks = append(s.hooks, fn)
		}
	}
}

// Server wraps http.Server with signal-aware graceful shutdown.
type Server struct {
	cfg      Config
	log      *slog.Logger
	listener net.Listener
	hooks    []func(context.Context) error

	mu       sync.Mutex
	srv      *http.Server
	shutdown sync.Once
	ready    chan struct{}
}

// New returns a Server for cfg. Zero timeouts leave the http.Server default.
func New(cfg Config, opts ...Option) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	s := &Server{cfg: cfg, log: logger.Discard(), ready: make(chan struct{})}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ready is closed once the server is accepting connections.
func (s *Server) Ready() <-chan struct{} { return s.ready }

// Addr returns the bound address once Ready is closed.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.cfg.Addr
}

// Run serves handler and blocks until ctx is done, a termination signal
// arrives, Shutdown is called or the listener fails.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, ErrAlreadyRunning)
	}
	ln := s.listener
	if ln == nil {
		var err error
		if ln, err = net.Listen("tcp", s.cfg.Addr); err != nil {
			s.mu.Unlock()
			return errors.Join(ErrStart, err)
		}
		s.listener = ln
	}
	s.srv = &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
		ReadTimeout:       s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}
	srv := s.srv
	s.mu.Unlock()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	s.log.InfoContext(ctx, "http server started", slog.String("addr", ln.Addr().String()))
	close(s.ready)

	var runErr error
	select {
	case <-ctx.Done():
		s.log.Info("http server stopping", logger.Event("shutdown"))
		if err := s.Shutdown(context.WithoutCancel(ctx)); err != nil {
			return err
		}
		runErr = <-errCh
	case runErr = <-errCh:
	}

	if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
		return errors.Join(ErrStart, runErr)
	}
	return nil
}

// Shutdown stops the server within Config.ShutdownTimeout and runs the
// shutdown hooks. Only the first call has an effect.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	var errs []error
	s.shutdown.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs = append(errs, err)
		}
		for _, hook := range s.hooks {
			if err := hook(ctx); err != nil {
				errs = append(errs, err)
			}
		}
		s.log.Info("http server stopped")
	})

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrShutdown}, errs...)...)
	}
	return nil
}
