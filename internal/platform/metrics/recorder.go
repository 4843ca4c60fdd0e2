package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	defaultNamespace = "waterpolo"
	defaultSubsystem = "ingest"
)

// Recorder exposes the ingestion counters. A nil *Recorder is a valid no-op.
type Recorder struct {
	registry *prometheus.Registry

	gamesProcessed  *prometheus.CounterVec
	actionsWritten  prometheus.Counter
	draftsDropped   *prometheus.CounterVec
	mapWarnings     *prometheus.CounterVec
	entityUpserts   *prometheus.CounterVec
	gameDuration    prometheus.Histogram
	circuitState    *prometheus.GaugeVec
	providerLatency *prometheus.HistogramVec
}

type Option func(*options)

type options struct {
	namespace string
	subsystem string
	registry  *prometheus.Registry
}

func WithNamespace(namespace string) Option {
	return func(o *options) { o.namespace = namespace }
}

func WithRegistry(registry *prometheus.Registry) Option {
	return func(o *options) { o.registry = registry }
}

func NewRecorder(opts ...Option) *Recorder {
	o := options{
		namespace: defaultNamespace,
		subsystem: defaultSubsystem,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = prometheus.NewRegistry()
	}

	auto := promauto.With(o.registry)
	return &Recorder{
		registry: o.registry,
		gamesProcessed: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Subsystem: o.subsystem,
			Name:      "games_total",
			Help:      "Games seen by the orchestrator, by outcome",
		}, []string{"outcome"}),
		actionsWritten: auto.NewCounter(prometheus.CounterOpts{
			Namespace: o.namespace,
			Subsystem: o.subsystem,
			Name:      "actions_written_total",
			Help:      "Canonical actions handed to the sink",
		}),
		draftsDropped: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Subsystem: o.subsystem,
			Name:      "drafts_dropped_total",
			Help:      "Raw events or drafts dropped during mapping, by reason",
		}, []string{"reason"}),
		mapWarnings: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Subsystem: o.subsystem,
			Name:      "mapping_warnings_total",
			Help:      "Drafts kept with a degraded mapping, by reason",
		}, []string{"reason"}),
		entityUpserts: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Subsystem: o.subsystem,
			Name:      "entity_upserts_total",
			Help:      "First-time identity upserts performed by the entity resolver",
		}, []string{"entity"}),
		gameDuration: auto.NewHistogram(prometheus.HistogramOpts{
			Namespace: o.namespace,
			Subsystem: o.subsystem,
			Name:      "game_duration_seconds",
			Help:      "Wall time spent on one game's action pipeline",
			Buckets:   prometheus.DefBuckets,
		}),
		circuitState: auto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: o.namespace,
			Subsystem: o.subsystem,
			Name:      "provider_circuit_open",
			Help:      "1 when the provider circuit breaker is open",
		}, []string{"provider"}),
		providerLatency: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: o.namespace,
			Subsystem: o.subsystem,
			Name:      "provider_request_seconds",
			Help:      "Provider request latency by endpoint",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
}

func (r *Recorder) GameOutcome(outcome string) {
	if r == nil {
		return
	}
	r.gamesProcessed.WithLabelValues(outcome).Inc()
}

func (r *Recorder) ActionsWritten(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.actionsWritten.Add(float64(n))
}

func (r *Recorder) DraftDropped(reason string) {
	if r == nil {
		return
	}
	r.draftsDropped.WithLabelValues(reason).Inc()
}

// MappingWarning counts a draft that was kept but mapped incompletely, such
// as an unknown flag sub-code.
func (r *Recorder) MappingWarning(reason string) {
	if r == nil {
		return
	}
	r.mapWarnings.WithLabelValues(reason).Inc()
}

func (r *Recorder) EntityUpserted(entity string) {
	if r == nil {
		return
	}
	r.entityUpserts.WithLabelValues(entity).Inc()
}

func (r *Recorder) ObserveGame(d time.Duration) {
	if r == nil {
		return
	}
	r.gameDuration.Observe(d.Seconds())
}

func (r *Recorder) CircuitOpen(provider string, open bool) {
	if r == nil {
		return
	}
	v := 0.0
	if open {
		v = 1
	}
	r.circuitState.WithLabelValues(provider).Set(v)
}

func (r *Recorder) ObserveProvider(endpoint string, d time.Duration) {
	if r == nil {
		return
	}
	r.providerLatency.WithLabelValues(endpoint).Observe(d.Seconds())
}

func (r *Recorder) Gatherer() prometheus.Gatherer {
	if r == nil {
		return prometheus.NewRegistry()
	}
	return r.registry
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.Gatherer(), promhttp.HandlerOpts{})
}
