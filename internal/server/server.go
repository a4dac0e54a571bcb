// Package server wires configuration, providers, services, pregeneration and
// the HTTP surface into a runnable process.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	appgames "cricket-bingo-service/internal/app/games"
	appplayers "cricket-bingo-service/internal/app/players"
	"cricket-bingo-service/internal/config"
	httpserver "cricket-bingo-service/internal/http"
	"cricket-bingo-service/internal/http/handlers"
	"cricket-bingo-service/internal/http/middleware"
	"cricket-bingo-service/internal/logging"
	"cricket-bingo-service/internal/metrics"
	"cricket-bingo-service/internal/pregen"
	"cricket-bingo-service/internal/providers"
	"cricket-bingo-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg            config.Config
	logger         *slog.Logger
	metrics        *metrics.Recorder
	store          *store.MemoryStore
	pools          *poolLoader
	gamesService   *appgames.Service
	playersService *appplayers.Service
	httpServer     httpServer
	metricsServer  httpServer
	pregen         Pregenerator
	metricsStop    func(context.Context) error
}

// New constructs a server with default provider and pregeneration wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DataProvider) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	if provider == nil {
		provider = newProviderFactory(logger).build(cfg)
	}

	memoryStore := store.NewMemoryStore()
	pools := &poolLoader{
		provider:     provider,
		providerName: normalizeProviderName(cfg.Provider),
		store:        memoryStore,
		logger:       logger,
		metrics:      recorder,
	}

	snaps := buildSnapshots(cfg)
	gameSvc := appgames.NewService(memoryStore, snaps.store, snaps.writer, logger, recorder)
	playerSvc := appplayers.NewService(memoryStore)

	var pg Pregenerator
	if cfg.Pregen.Enabled {
		pg = pregen.New(gameSvc, logger, recorder, cfg.Pregen.Interval, cfg.Pregen.FutureDays)
	}

	httpSrv := buildHTTPServer(cfg, gameSvc, playerSvc, pools, logger, recorder, pg)

	return &Server{
		cfg:            cfg,
		logger:         logger,
		metrics:        recorder,
		store:          memoryStore,
		pools:          pools,
		gamesService:   gameSvc,
		playersService: playerSvc,
		httpServer:     httpSrv,
		metricsServer:  metricsSrv,
		pregen:         pg,
		metricsStop:    metricsShutdown,
	}
}

func buildHTTPServer(cfg config.Config, gameSvc *appgames.Service, playerSvc *appplayers.Service, pools *poolLoader, logger *slog.Logger, recorder *metrics.Recorder, pg Pregenerator) httpServer {
	var statusFn func() pregen.Status
	if pg != nil {
		statusFn = pg.Status
	}

	handler := handlers.NewHandler(gameSvc, playerSvc, logger, statusFn)
	var admin *handlers.AdminHandler
	if cfg.Snapshots.AdminToken != "" {
		admin = handlers.NewAdminHandler(gameSvc, pools, cfg.Snapshots.AdminToken, logger)
	}
	router := httpserver.NewRouter(handler, admin)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run loads the data pools, starts pregeneration and the HTTP server, then
// waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()

	if err := s.pools.RefreshPools(ctx); err != nil {
		logging.Error(s.logger, "initial pool load failed", err)
	}

	s.startServer(stop)
	if s.pregen != nil {
		s.pregen.Start(ctx)
	}

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if s.pregen != nil {
		if err := s.pregen.Stop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Error("failed to stop pregen", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// normalizeProviderName returns a lower-cased provider name for metrics/logs.
func normalizeProviderName(raw string) string {
	if raw == "" {
		return "fixture"
	}
	return strings.ToLower(raw)
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
