// cmd/match-api/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"internship-matcher/internal/api"
	"internship-matcher/internal/common/camunda"
	"internship-matcher/internal/common/config"
	"internship-matcher/internal/common/logger"
	"internship-matcher/internal/common/observability"
	"internship-matcher/internal/matching"
	"internship-matcher/internal/repository"
	"internship-matcher/internal/seed"
	cms "internship-matcher/internal/workers/matching/compute-match-score"
	fim "internship-matcher/internal/workers/matching/find-internship-matches"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "console")
		bootLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.NewWithOutput(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting internship matcher",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
		zap.String("storage", cfg.Storage.Driver),
	)

	obs := observability.NewNoop()
	if cfg.Metrics.Enabled {
		obs = observability.New(cfg.App.Name)
	}
	defer obs.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Record store ---
	store, err := repository.Open(ctx, cfg, log)
	if err != nil {
		zapLog.Fatal("record store failed", zap.Error(err))
	}
	defer store.Close()
	zapLog.Info("Record store ready", zap.String("driver", store.Driver))

	if cfg.Matching.SeedOnStartup {
		candidates, internships, err := seed.Apply(ctx, store)
		if err != nil {
			zapLog.Fatal("seeding failed", zap.Error(err))
		}
		zapLog.Info("Seeded sample records",
			zap.Int("candidates", candidates),
			zap.Int("internships", internships),
		)
	}

	engine := matching.Default
	if entries := cfg.Matching.RegionEntries(); entries != nil {
		engine = matching.NewEngine(matching.NewRegionTable(entries))
		zapLog.Info("Using configured region table", zap.Int("cities", len(entries)))
	}

	readiness := map[string]api.ReadinessCheck{
		"storage": store.Ping,
	}

	// --- Workflow workers ---
	if cfg.Camunda.Enabled {
		zeebe, err := camunda.Dial(ctx, cfg.Camunda, log)
		if err != nil {
			zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
		}
		defer func() {
			if err := zeebe.Close(); err != nil {
				zapLog.Error("Error closing Zeebe client", zap.Error(err))
			}
		}()
		readiness["zeebe"] = zeebe.HealthCheck

		scoreHandler, err := cms.NewHandler(cms.HandlerOptions{AppConfig: cfg, Store: store, Engine: engine, Obs: obs, Logger: log})
		if err != nil {
			zapLog.Fatal("worker setup failed", zap.String("taskType", cms.TaskType), zap.Error(err))
		}
		zeebe.StartWorker(cms.TaskType, config.GetWorkerConfig(cfg, cms.TaskType), scoreHandler.Handle)

		matchHandler, err := fim.NewHandler(fim.HandlerOptions{AppConfig: cfg, Store: store, Engine: engine, Obs: obs, Logger: log})
		if err != nil {
			zapLog.Fatal("worker setup failed", zap.String("taskType", fim.TaskType), zap.Error(err))
		}
		zeebe.StartWorker(fim.TaskType, config.GetWorkerConfig(cfg, fim.TaskType), matchHandler.Handle)
	}

	// --- HTTP API ---
	server := api.NewServer(api.Options{
		Store:     store,
		Engine:    engine,
		Matching:  cfg.Matching,
		Metrics:   cfg.Metrics,
		Logger:    log,
		Obs:       obs,
		Readiness: readiness,
	})
	httpServer := api.NewHTTPServer(cfg.Server, server.Handler())

	go func() {
		zapLog.Info("API listening", zap.String("address", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Error("API server failed", zap.Error(err))
			stop()
		}
	}()

	// --- Graceful Shutdown ---
	<-ctx.Done()
	zapLog.Info("Shutdown signal received, draining requests...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down API server", zap.Error(err))
	}

	zapLog.Info("Internship matcher stopped gracefully")
}
