package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskibarqy/waterpolo-pbp/internal/app"
	"github.com/riskibarqy/waterpolo-pbp/internal/config"
	"github.com/riskibarqy/waterpolo-pbp/internal/observability"
	"github.com/riskibarqy/waterpolo-pbp/internal/platform/logging"
	"github.com/riskibarqy/waterpolo-pbp/internal/platform/metrics"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.New(cfg.AppEnv, cfg.LogLevel)
	logging.SetDefault(logger)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	telemetry, err := observability.StartTelemetry(cfg, logger)
	if err != nil {
		logger.Error("start telemetry", "error", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown telemetry", "error", err)
		}
	}()

	recorder := metrics.NewRecorder()
	metricsSrv, err := observability.StartMetricsServer(cfg, recorder, logger)
	if err != nil {
		logger.Error("start metrics server", "error", err)
		return 1
	}
	defer func() {
		if err := observability.StopMetricsServer(metricsSrv, logger, 5*time.Second); err != nil {
			logger.Error("stop metrics server", "error", err)
		}
	}()

	ingest, err := app.NewIngest(ctx, cfg, logger, recorder)
	if err != nil {
		logger.Error("build ingest", "error", err)
		return 1
	}
	defer ingest.Close()

	reports, err := ingest.Run(ctx)
	failedGames := 0
	for _, report := range reports {
		failedGames += len(report.Failures)
	}
	logger.Info("ingest finished", "leagues", len(reports), "failed_games", failedGames)

	if err != nil {
		logger.Error("ingest failed", "error", err)
		return 1
	}
	return 0
}
