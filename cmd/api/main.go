package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"go-calc-store/internal/calculator"
	"go-calc-store/internal/config"
	"go-calc-store/internal/observability"
	"go-calc-store/internal/server"
)

func main() {

	ctx := context.Background()

	// Config
	if err := loadDotEnv(); err != nil {
		panic(err)
	}
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Logger
	if err := observability.InitLogger(cfg.LogLevel); err != nil {
		panic(err)
	}
	defer observability.SyncLogger()

	// Tracing, metrics and OTLP logs
	shutdown, err := initTelemetry(ctx, cfg)
	if err != nil {
		panic(err)
	}
	defer shutdown(ctx)

	// Sessions
	sessions := calculator.NewRegistry(cfg.MaxSessions)
	if err := calculator.RegisterSessionGauge(prometheus.DefaultRegisterer, sessions); err != nil {
		panic(err)
	}

	// Router
	router := server.NewRouter(server.Deps{
		Sessions: sessions,
		Limits:   calculator.Limits{
			MaxGlyphs:    cfg.MaxGlyphs,
			MaxBodyBytes: cfg.MaxBodyBytes,
		},
		Gatherer: prometheus.DefaultGatherer,
	})

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	go func() {
		observability.Logger.Info("server started",
			zap.String("addr", cfg.Addr),
			zap.Bool("otlp_enabled", cfg.OTLPEnabled),
			zap.Int("max_sessions", cfg.MaxSessions),
			zap.Int("max_glyphs", cfg.MaxGlyphs),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			panic(err)
		}
	}()

	waitForShutdown(srv, cfg.ShutdownTimeout)
}

func waitForShutdown(srv *http.Server, timeout time.Duration) {

	stop := make(chan os.Signal, 1)

	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		observability.Logger.Error("server shutdown", zap.Error(err))
	}
}
