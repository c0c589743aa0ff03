// Package main is the entrypoint for the greeting API server.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/chanthorn/first/internal/config"
	"github.com/chanthorn/first/internal/lib/logger/sl"
	"github.com/chanthorn/first/internal/metrics"
	"github.com/chanthorn/first/internal/router"
	"github.com/chanthorn/first/internal/server"
	"github.com/chanthorn/first/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", sl.Err(err))
		os.Exit(1)
	}

	logger := initLogger(cfg)

	routerCfg := router.Config{
		AppName:            cfg.AppName,
		HSTS:               cfg.IsProduction(),
		CORSAllowedOrigins: cfg.GetCORSAllowedOrigins(),
		MaxRequestBodySize: cfg.MaxRequestBodySize,
		Logger:             logger,
		Greeter:            service.NewGreetingService(),
	}

	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		routerCfg.Recorder = metrics.New(reg)
		routerCfg.Gatherer = reg
	}

	readiness := server.NewReadiness()
	routerCfg.Readiness = readiness

	srv := server.New(
		router.New(routerCfg),
		readiness,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	// Restore default signal handling once draining starts so a second
	// SIGINT terminates immediately.
	srv.OnShutdown("signal handler", func(context.Context) error {
		stop()
		return nil
	})

	logger.Info("starting server",
		"app", cfg.AppName,
		"addr", srv.Addr(),
		"env", cfg.AppEnv,
		"metrics", cfg.MetricsEnabled,
	)

	if err := srv.Run(ctx); err != nil {
		logger.Error("server error", sl.Err(err))
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: sl.ParseLevel(cfg.LogLevel),
	}

	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h).With("app", cfg.AppName)
	slog.SetDefault(logger)

	return logger
}
