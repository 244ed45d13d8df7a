package emplistapp

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"emppayroll/internal/domain/audit"
	"emppayroll/internal/domain/emplist"
	"emppayroll/internal/platform/config"
	"emppayroll/internal/platform/db"
	"emppayroll/internal/platform/httpserver"
	"emppayroll/internal/platform/metrics"
	audithandler "emppayroll/internal/transport/http/handlers/audit"
	emplisthandler "emppayroll/internal/transport/http/handlers/emplist"
	"emppayroll/internal/transport/http/middleware"
)

// App is the EmpList REST backend.
type App struct {
	Config  config.Config
	Store   emplist.Store
	Audit   audit.Recorder
	Router  http.Handler
	Metrics *metrics.Collector

	logger zerolog.Logger
	close  func()
}

// New picks the Postgres store when DATABASE_URL is set, migrating it first,
// and the in-memory store otherwise.
func New(ctx context.Context, cfg config.Config, logger zerolog.Logger) (*App, error) {
	app := &App{Config: cfg, Metrics: metrics.New(), logger: logger, close: func() {}}

	if cfg.DatabaseURL != "" {
		pool, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		app.Store = emplist.NewPGStore(pool)
		app.Audit = audit.New(pool)
		app.close = pool.Close
		logger.Info().Msg("emplist using postgres store")
	} else {
		app.Store = emplist.NewMemoryStore()
		app.Audit = audit.NewMemoryLog()
		logger.Warn().Msg("DATABASE_URL not set; emplist records are kept in memory")
	}

	app.Router = newRouter(app.Store, app.Audit, app.Metrics, cfg, logger)
	return app, nil
}

func newRouter(store emplist.Store, recorder audit.Recorder, collector *metrics.Collector, cfg config.Config, logger zerolog.Logger) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger, collector))
	router.Use(middleware.Recoverer(logger))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			http.Error(w, "store not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	emplisthandler.NewHandler(store, recorder).RegisterRoutes(router)
	audithandler.NewHandler(recorder).RegisterRoutes(router)
	return router
}

func (a *App) Run(ctx context.Context) error {
	return httpserver.Serve(ctx, "emplist", a.Config.BackendAddr, a.Router, a.logger)
}

func (a *App) Close() {
	a.close()
}
