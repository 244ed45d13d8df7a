package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"emppayroll/internal/domain/auth"
	"emppayroll/internal/domain/registration"
	"emppayroll/internal/platform/config"
	"emppayroll/internal/platform/emplist"
	"emppayroll/internal/platform/httpserver"
	"emppayroll/internal/platform/metrics"
	"emppayroll/internal/transport/http/api"
	dashboardhandler "emppayroll/internal/transport/http/handlers/dashboard"
	loginhandler "emppayroll/internal/transport/http/handlers/login"
	registrationhandler "emppayroll/internal/transport/http/handlers/registration"
	"emppayroll/internal/transport/http/middleware"
	"emppayroll/internal/transport/http/views"
)

// App is the payroll UI: login, registration and dashboard views over the
// EmpList backend.
type App struct {
	Config   config.Config
	Router   http.Handler
	Registry *registration.Registry
	Metrics  *metrics.Collector
	Views    *views.Views
	Backend  *emplist.Client

	logger zerolog.Logger
}

func New(cfg config.Config, logger zerolog.Logger) (*App, error) {
	authenticator, err := auth.NewAuthenticator(cfg.LoginUsername, cfg.LoginPasswordHash, cfg.LoginPassword)
	if err != nil {
		return nil, err
	}
	secret := cfg.SessionSecret
	if secret == "" {
		secret, err = randomSecret()
		if err != nil {
			return nil, err
		}
		logger.Warn().Msg("SESSION_SECRET not set; sessions will not survive a restart")
	}

	app := &App{
		Config:   cfg,
		Registry: registration.NewRegistry(cfg.FormIdleTTL, logger),
		Metrics:  metrics.New(),
		Views:    views.New(cfg.ViewFallbackDelay, logger),
		Backend:  emplist.New(cfg.BackendURL, cfg.BackendTimeout),
		logger:   logger,
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger, app.Metrics))
	router.Use(middleware.Recoverer(logger))
	router.Use(middleware.SecureHeaders(cfg.IsProduction()))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Session(secret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := app.Backend.Ping(ctx); err != nil {
			http.Error(w, "backend not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			snapshot := app.Metrics.Snapshot()
			snapshot["mountedForms"] = app.Registry.Len()
			api.WriteJSON(w, http.StatusOK, snapshot)
		})
	}
	router.Handle("/assets/*", views.Assets())

	router.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute, middleware.WithRejectHandler(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "Too many requests. Please wait a moment and try again.", http.StatusTooManyRequests)
		})))

		loginhandler.NewHandler(authenticator, app.Views.Login, secret, cfg.SessionTTL, cfg.IsProduction()).RegisterRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession)
			registrationhandler.NewHandler(app.Registry, app.Backend, app.Views.Registration, app.Metrics).RegisterRoutes(r)
			dashboardhandler.NewHandler(app.Backend, app.Views.Dashboard).RegisterRoutes(r)
		})
	})

	app.Router = router
	return app, nil
}

// Run serves the UI and sweeps idle forms until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		a.Registry.Run(gctx, sweepInterval(a.Config.FormIdleTTL))
		return nil
	})
	group.Go(func() error {
		return httpserver.Serve(gctx, "ui", a.Config.Addr, a.Router, a.logger)
	})
	return group.Wait()
}

func sweepInterval(ttl time.Duration) time.Duration {
	interval := ttl / 4
	if interval < time.Second {
		return time.Second
	}
	return interval
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
