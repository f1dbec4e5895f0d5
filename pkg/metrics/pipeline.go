package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "profassist"

const (
	OutcomeResolved = "resolved"
	OutcomeCached   = "cached"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeCanceled = "canceled"
)

// Pipeline collects resolution metrics. A nil *Pipeline is valid and records
// nothing, so components can be built without a registry in tests.
type Pipeline struct {
	cacheLookups     *prometheus.CounterVec
	outcomes         *prometheus.CounterVec
	upstreamFailures *prometheus.CounterVec
	upstreamLatency  *prometheus.HistogramVec
	reviewsFlagged   prometheus.Counter
	cacheEntries     prometheus.Gauge
}

func NewPipeline(reg prometheus.Registerer) *Pipeline {
	factory := promauto.With(reg)

	return &Pipeline{
		cacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Result cache lookups by result (hit, miss).",
		}, []string{"result"}),
		outcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resolutions_total",
			Help:      "Professor resolutions by outcome.",
		}, []string{"outcome"}),
		upstreamFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_failures_total",
			Help:      "Absorbed upstream failures by operation.",
		}, []string{"operation"}),
		upstreamLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_duration_seconds",
			Help:      "Latency of upstream calls by operation.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"operation"}),
		reviewsFlagged: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reviews_flagged_total",
			Help:      "Reviews dropped by moderation.",
		}),
		cacheEntries: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cache_entries",
			Help:      "Professor records held in the result cache.",
		}),
	}
}

func (p *Pipeline) CacheHit() {
	if p == nil {
		return
	}

	p.cacheLookups.WithLabelValues("hit").Inc()
}

func (p *Pipeline) CacheMiss() {
	if p == nil {
		return
	}

	p.cacheLookups.WithLabelValues("miss").Inc()
}

func (p *Pipeline) CacheSize(n int) {
	if p == nil {
		return
	}

	p.cacheEntries.Set(float64(n))
}

func (p *Pipeline) Outcome(outcome string) {
	if p == nil {
		return
	}

	p.outcomes.WithLabelValues(outcome).Inc()
}

func (p *Pipeline) UpstreamFailure(operation string) {
	if p == nil {
		return
	}

	p.upstreamFailures.WithLabelValues(operation).Inc()
}

func (p *Pipeline) ObserveUpstream(operation string, started time.Time) {
	if p == nil {
		return
	}

	p.upstreamLatency.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

func (p *Pipeline) ReviewFlagged() {
	if p == nil {
		return
	}

	p.reviewsFlagged.Inc()
}
