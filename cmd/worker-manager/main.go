// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"internship-matcher/internal/common/camunda"
	"internship-matcher/internal/common/config"
	"internship-matcher/internal/common/logger"
	"internship-matcher/internal/common/observability"
	"internship-matcher/internal/matching"
	"internship-matcher/internal/repository"
	"internship-matcher/internal/seed"

	cms "internship-matcher/internal/workers/matching/compute-match-score"
	fim "internship-matcher/internal/workers/matching/find-internship-matches"
)

// worker-manager runs only the workflow workers, without the REST surface.
// It shares the record store with match-api when both point at redis or postgres.
func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "console")
		bootLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.NewWithOutput(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...", zap.String("storage", cfg.Storage.Driver))

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Init Zeebe Client with retry ---
	zeebe, err := camunda.Dial(ctx, cfg.Camunda, log)
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	// --- Init record store ---
	store, err := repository.Open(ctx, cfg, log)
	if err != nil {
		zapLog.Fatal("record store failed", zap.Error(err))
	}
	defer store.Close()

	if store.Driver == config.DriverMemory && cfg.Matching.SeedOnStartup {
		if _, _, err := seed.Apply(ctx, store); err != nil {
			zapLog.Fatal("seeding failed", zap.Error(err))
		}
	}

	engine := matching.Default
	if entries := cfg.Matching.RegionEntries(); entries != nil {
		engine = matching.NewEngine(matching.NewRegionTable(entries))
	}

	// --- Register workers ---
	started := 0

	if wcfg := config.GetWorkerConfig(cfg, cms.TaskType); wcfg.Enabled {
		handler, err := cms.NewHandler(cms.HandlerOptions{AppConfig: cfg, Store: store, Engine: engine, Obs: obs, Logger: log})
		if err != nil {
			zapLog.Fatal("worker setup failed", zap.String("taskType", cms.TaskType), zap.Error(err))
		}
		if zeebe.StartWorker(cms.TaskType, wcfg, handler.Handle) {
			started++
		}
	}

	if wcfg := config.GetWorkerConfig(cfg, fim.TaskType); wcfg.Enabled {
		handler, err := fim.NewHandler(fim.HandlerOptions{AppConfig: cfg, Store: store, Engine: engine, Obs: obs, Logger: log})
		if err != nil {
			zapLog.Fatal("worker setup failed", zap.String("taskType", fim.TaskType), zap.Error(err))
		}
		if zeebe.StartWorker(fim.TaskType, wcfg, handler.Handle) {
			started++
		}
	}

	zapLog.Info("Workers registered", zap.Int("count", started))

	// --- Health & Metrics Server ---
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusOK, map[string]string{"status": "healthy"})
	})
	mux.HandleFunc("GET /ready", func(w http.ResponseWriter, r *http.Request) {
		checkCtx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		if err := store.Ping(checkCtx); err != nil {
			writeStatus(w, http.StatusServiceUnavailable, map[string]string{"status": "not_ready", "storage": err.Error()})
			return
		}
		if err := zeebe.HealthCheck(checkCtx); err != nil {
			writeStatus(w, http.StatusServiceUnavailable, map[string]string{"status": "not_ready", "zeebe": err.Error()})
			return
		}
		writeStatus(w, http.StatusOK, map[string]string{"status": "ready"})
	})
	if cfg.Metrics.Enabled {
		mux.Handle("GET "+cfg.Metrics.Path, promhttp.Handler())
	}

	healthServer := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		zapLog.Info("Health/Metrics server listening", zap.String("address", healthServer.Addr))
		if err := healthServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
			stop()
		}
	}()

	// --- Graceful Shutdown ---
	<-ctx.Done()
	zapLog.Info("Shutdown signal received, stopping workers...")

	if err := zeebe.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()
	if err := healthServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down health server", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped")
}

func writeStatus(w http.ResponseWriter, status int, body map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
