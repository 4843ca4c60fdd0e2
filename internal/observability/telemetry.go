package observability

import (
	"context"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/grafana/pyroscope-go"
	"github.com/riskibarqy/waterpolo-pbp/internal/config"
	"github.com/riskibarqy/waterpolo-pbp/internal/platform/logging"
	"github.com/uptrace/uptrace-go/uptrace"
)

// Telemetry owns the tracing exporter and the profiler of one ingest run.
// Either may be off; Shutdown is safe in every case.
type Telemetry struct {
	logger   *logging.Logger
	tracing  bool
	profiler *pyroscope.Profiler
}

// StartTelemetry turns on Uptrace tracing and Pyroscope profiling as configured.
// Profiles are tagged with the selected leagues so runs can be told apart.
func StartTelemetry(cfg config.Config, logger *logging.Logger) (*Telemetry, error) {
	if logger == nil {
		logger = logging.Default()
	}
	t := &Telemetry{logger: logger}

	switch {
	case !cfg.UptraceEnabled:
		logger.Info("uptrace disabled", "reason", "UPTRACE_ENABLED=false")
	case strings.TrimSpace(cfg.UptraceDSN) == "":
		logger.Info("uptrace disabled", "reason", "UPTRACE_DSN empty")
	default:
		uptrace.ConfigureOpentelemetry(
			uptrace.WithDSN(cfg.UptraceDSN),
			uptrace.WithServiceName(cfg.ServiceName),
			uptrace.WithServiceVersion(cfg.ServiceVersion),
			uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		)
		t.tracing = true
		logger.Info("uptrace enabled", "service_name", cfg.ServiceName, "environment", cfg.AppEnv)
	}

	if !cfg.PyroscopeEnabled {
		logger.Info("pyroscope disabled", "reason", "PYROSCOPE_ENABLED=false")
		return t, nil
	}

	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName:   cfg.PyroscopeAppName,
		ServerAddress:     cfg.PyroscopeServerAddress,
		AuthToken:         cfg.PyroscopeAuthToken,
		BasicAuthUser:     cfg.PyroscopeBasicAuthUser,
		BasicAuthPassword: cfg.PyroscopeBasicAuthPassword,
		UploadRate:        cfg.PyroscopeUploadRate,
		Tags:              profileTags(cfg),
		// Ingest is a batch job: heap in use matters less than what it allocates.
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileGoroutines,
		},
	})
	if err != nil {
		return nil, crerr.CombineErrors(crerr.Wrap(err, "start pyroscope"), t.Shutdown(context.Background()))
	}
	t.profiler = profiler
	logger.Info("pyroscope enabled", "server_address", cfg.PyroscopeServerAddress, "application", cfg.PyroscopeAppName)

	return t, nil
}

func profileTags(cfg config.Config) map[string]string {
	tags := map[string]string{
		"env":     cfg.AppEnv,
		"service": cfg.ServiceName,
		"sink":    cfg.Sink,
	}
	if len(cfg.Leagues) > 0 {
		tags["leagues"] = strings.Join(cfg.Leagues, ",")
	}
	return tags
}

// Shutdown stops the profiler and flushes pending spans.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}

	var err error
	if t.profiler != nil {
		if stopErr := t.profiler.Stop(); stopErr != nil {
			err = crerr.CombineErrors(err, crerr.Wrap(stopErr, "stop pyroscope"))
		}
		t.profiler = nil
	}
	if t.tracing {
		if flushErr := uptrace.Shutdown(ctx); flushErr != nil {
			err = crerr.CombineErrors(err, crerr.Wrap(flushErr, "shutdown uptrace"))
		}
		t.tracing = false
	}
	return err
}
