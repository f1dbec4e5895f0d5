package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"profassist/pkg/metrics"
)

func TestPipeline(t *testing.T) {
	rq := require.New(t)

	reg := prometheus.NewRegistry()
	p := metrics.NewPipeline(reg)

	p.CacheHit()
	p.CacheMiss()
	p.CacheMiss()
	p.CacheSize(3)
	p.Outcome(metrics.OutcomeNotFound)
	p.UpstreamFailure("search")
	p.ReviewFlagged()
	p.ObserveUpstream("search", time.Now())

	families, err := reg.Gather()
	rq.NoError(err)
	rq.Len(families, 6)

	count, err := testutil.GatherAndCount(reg, "profassist_cache_lookups_total")
	rq.NoError(err)
	rq.Equal(2, count)

	count, err = testutil.GatherAndCount(reg, "profassist_reviews_flagged_total")
	rq.NoError(err)
	rq.Equal(1, count)
}

func TestPipelineNil(t *testing.T) {
	var p *metrics.Pipeline

	require.NotPanics(t, func() {
		p.CacheHit()
		p.CacheMiss()
		p.CacheSize(1)
		p.Outcome(metrics.OutcomeResolved)
		p.UpstreamFailure("fetch")
		p.ObserveUpstream("fetch", time.Now())
		p.ReviewFlagged()
	})
}
