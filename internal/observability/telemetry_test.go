package observability

import (
	"context"
	"testing"

	"github.com/riskibarqy/waterpolo-pbp/internal/config"
	"github.com/riskibarqy/waterpolo-pbp/internal/platform/logging"
)

func TestStartTelemetry_Disabled(t *testing.T) {
	cfg := config.Config{
		ServiceName:    "waterpolo-pbp",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	telemetry, err := StartTelemetry(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("start telemetry: %v", err)
	}
	if telemetry.tracing || telemetry.profiler != nil {
		t.Fatalf("expected tracing and profiling off, got %+v", telemetry)
	}
	if err := telemetry.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown telemetry: %v", err)
	}
}

func TestStartTelemetry_TracingWithoutDSNStaysOff(t *testing.T) {
	telemetry, err := StartTelemetry(config.Config{UptraceEnabled: true, ServiceName: "waterpolo-pbp"}, nil)
	if err != nil {
		t.Fatalf("start telemetry: %v", err)
	}
	if telemetry.tracing {
		t.Fatal("tracing enabled without a dsn")
	}
}

func TestTelemetry_ShutdownNil(t *testing.T) {
	var telemetry *Telemetry
	if err := telemetry.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown nil telemetry: %v", err)
	}
}

func TestProfileTags(t *testing.T) {
	tags := profileTags(config.Config{
		AppEnv:      config.EnvProd,
		ServiceName: "waterpolo-pbp",
		Sink:        config.SinkCSV,
		Leagues:     []string{"LEN", "EC"},
	})
	if tags["leagues"] != "LEN,EC" || tags["sink"] != config.SinkCSV || tags["env"] != config.EnvProd {
		t.Fatalf("unexpected tags: %v", tags)
	}
	if _, ok := profileTags(config.Config{})["leagues"]; ok {
		t.Fatal("leagues tag set without selected leagues")
	}
}
