package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	branddb "github.com/xw1nchester/brand-management-backend/internal/brand/db"
	brandhandler "github.com/xw1nchester/brand-management-backend/internal/brand/handler"
	brandservice "github.com/xw1nchester/brand-management-backend/internal/brand/service"
	chaindb "github.com/xw1nchester/brand-management-backend/internal/chain/db"
	chainhandler "github.com/xw1nchester/brand-management-backend/internal/chain/handler"
	chainservice "github.com/xw1nchester/brand-management-backend/internal/chain/service"
	"github.com/xw1nchester/brand-management-backend/internal/config"
	"github.com/xw1nchester/brand-management-backend/internal/metrics"
	zonedb "github.com/xw1nchester/brand-management-backend/internal/zone/db"
	zoneservice "github.com/xw1nchester/brand-management-backend/internal/zone/service"
	pgclient "github.com/xw1nchester/brand-management-backend/pkg/client/postgresql"
	pgtx "github.com/xw1nchester/brand-management-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"

	_ "github.com/xw1nchester/brand-management-backend/docs"
)

type App struct {
	HTTPServer *http.Server
	pool       *pgxpool.Pool
	log        *zap.Logger
}

func NewApp(log *zap.Logger, cfg config.Config) *App {
	pool, err := pgclient.NewClient(context.TODO(), cfg.PostgreSQL)
	if err != nil {
		log.Fatal(err.Error())
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		metrics.NewPoolStatsCollector(pool),
	)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      NewRouter(log, cfg, pool, registry),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		HTTPServer: srv,
		pool:       pool,
		log:        log,
	}
}

// NewRouter wires repositories, services and handlers on top of db.
// db is also used as the transaction starter.
func NewRouter(log *zap.Logger, cfg config.Config, db pgclient.Client, registry *prometheus.Registry) http.Handler {
	router := chi.NewRouter()

	router.Use(
		RequestIDMiddleware,
		LoggingMiddleware(log),
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.HTTPServer.AllowedOrigins,
			AllowedMethods:   cfg.HTTPServer.AllowedMethods,
			AllowedHeaders:   cfg.HTTPServer.AllowedHeaders,
			ExposedHeaders:   []string{middleware.RequestIDHeader},
			AllowCredentials: cfg.HTTPServer.AllowCredentials,
		}),
		middleware.Recoverer,
	)

	if cfg.Metrics.Enabled {
		router.Use(metrics.NewHTTP(registry).Middleware)
		router.Handle(cfg.Metrics.Path, promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))
	}

	if cfg.Swagger.Enabled {
		router.Get("/swagger/*", httpSwagger.Handler())
	}

	txManager := pgtx.NewPgManager(db)

	chainService := chainservice.New(chaindb.New(db, log), log)
	zoneService := zoneservice.New(zonedb.New(db, log), log)
	brandService := brandservice.New(branddb.New(db, log), chainService, zoneService, txManager, log)

	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", PingHandler)

		log.Info("register chain handlers")

		chainhandler.New(chainService, log).Register(r)

		log.Info("register brand handlers")

		brandhandler.New(brandService, log).Register(r)
	})

	return router
}

func (a *App) MustRun() {
	a.log.Info("starting server", zap.String("addr", a.HTTPServer.Addr))

	if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic("failed to start server: " + err.Error())
	}
}

// Shutdown stops accepting requests, waits for in-flight ones and closes the pool.
func (a *App) Shutdown(ctx context.Context) error {
	defer a.pool.Close()

	return a.HTTPServer.Shutdown(ctx)
}

// @Tags		other
// @Success	200	{string}	string
// @Router		/ping [get]
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}
