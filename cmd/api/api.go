package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/farxc/cnpj_registry/internal/logger"
	"github.com/farxc/cnpj_registry/internal/store"
)

const component = "API"

type companyLookup interface {
	Lookup(ctx context.Context, raw string) (*store.CompanyDocument, error)
}

type application struct {
	config   config
	lookup   companyLookup
	loads    loadHistoryReader
	limiter  *rateLimiter
	logger   *logger.Logger
	gatherer prometheus.Gatherer
}

type config struct {
	addr           string
	requestTimeout time.Duration
	db             dbConfig
	log            logConfig
	rateLimit      rateLimitConfig
}

type dbConfig struct {
	addr         string
	maxOpenConns int
	maxIdleConns int
	maxIdleTime  string
}

type logConfig struct {
	level  string
	format string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  app.logger.Base(),
		NoColor: true,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	// Cancels the request context once the timeout elapses so in-flight
	// registry queries are abandoned.
	r.Use(middleware.Timeout(app.config.requestTimeout))

	r.Handle("/metrics", promhttp.HandlerFor(app.gatherer, promhttp.HandlerOpts{}))

	// Lookups hit the registry and are rate limited per client when enabled.
	lookups := func(r chi.Router) {
		if app.limiter != nil {
			r.Use(app.limiter.middleware)
		}
	}

	r.Group(func(r chi.Router) {
		lookups(r)
		r.Post("/", app.handleLegacyLookup)
	})

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)
		r.Head("/health", app.healthCheckHandler)
		r.Route("/companies", func(r chi.Router) {
			lookups(r)
			r.Get("/{cnpj}", app.handleGetCompany)
		})
		r.Get("/loads", app.handleGetLoadHistory)
	})

	return r
}

// run serves mux until ctx is cancelled, then drains in-flight requests.
func (app *application) run(ctx context.Context, mux http.Handler) error {
	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 120,
		ReadTimeout:  time.Second * 40,
		IdleTimeout:  time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(component, "Server started on %s", app.config.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(component, "Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
