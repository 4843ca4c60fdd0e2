package observability

import (
	"context"
	"errors"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/riskibarqy/waterpolo-pbp/internal/config"
	"github.com/riskibarqy/waterpolo-pbp/internal/platform/logging"
	"github.com/riskibarqy/waterpolo-pbp/internal/platform/metrics"
)

// NewMetricsMux serves the recorder on /metrics and the runtime profiles under
// /debug/pprof/.
func NewMetricsMux(recorder *metrics.Recorder) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", recorder.Handler())
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	return mux
}

func StartMetricsServer(cfg config.Config, recorder *metrics.Recorder, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if !cfg.MetricsEnabled {
		logger.Info("metrics server disabled", "reason", "METRICS_ENABLED=false")
		return nil, nil
	}
	if recorder == nil {
		return nil, errors.New("metrics recorder is required")
	}

	srv := &http.Server{
		Addr:              cfg.MetricsAddr,
		Handler:           NewMetricsMux(recorder),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("metrics server starting", "addr", cfg.MetricsAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()

	return srv, nil
}

func StopMetricsServer(srv *http.Server, logger *logging.Logger, timeout time.Duration) error {
	if srv == nil {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	logger.Info("metrics server stopped")

	return nil
}
