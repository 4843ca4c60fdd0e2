package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/waterpolo-pbp/internal/config"
	"github.com/riskibarqy/waterpolo-pbp/internal/platform/logging"
	"github.com/riskibarqy/waterpolo-pbp/internal/platform/metrics"
)

func TestMetricsMux_ServesRecorder(t *testing.T) {
	t.Parallel()

	recorder := metrics.NewRecorder()
	recorder.GameOutcome("linked")

	srv := httptest.NewServer(NewMetricsMux(recorder))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("get metrics: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	buf := new(strings.Builder)
	if _, err := io.Copy(buf, resp.Body); err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(buf.String(), `waterpolo_ingest_games_total{outcome="linked"} 1`) {
		t.Fatalf("games counter missing from exposition:\n%s", buf.String())
	}
}

func TestStartMetricsServer_Disabled(t *testing.T) {
	t.Parallel()

	srv, err := StartMetricsServer(config.Config{}, nil, logging.NewNop())
	if err != nil {
		t.Fatalf("start metrics server: %v", err)
	}
	if srv != nil {
		t.Fatalf("expected no server when disabled")
	}
	if err := StopMetricsServer(srv, nil, time.Second); err != nil {
		t.Fatalf("stop nil server: %v", err)
	}
}
