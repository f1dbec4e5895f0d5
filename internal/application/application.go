// Package application wires the service together and runs it until the
// context is canceled.
package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"golang.org/x/sync/errgroup"

	"profassist/internal/config"
	"profassist/internal/domain/entity"
	"profassist/internal/domain/service/moderation"
	"profassist/internal/domain/service/professor"
	"profassist/internal/domain/service/summary"
	"profassist/internal/infrastructure/cache"
	"profassist/internal/infrastructure/claude"
	"profassist/internal/infrastructure/ratemyprof"
	"profassist/internal/server"
	"profassist/internal/worker"
	"profassist/pkg/application/modules"
	"profassist/pkg/contextx"
	"profassist/pkg/httpx"
	"profassist/pkg/logx"
	"profassist/pkg/metrics"
)

const Name = "profassist"

func Run(ctx context.Context, cfg config.Config, version string) error {
	log := contextx.LoggerFromContextOrDefault(ctx).With(
		slog.String(logx.FieldAppName, Name),
		slog.String(logx.FieldAppVersion, version),
	)
	ctx = contextx.WithLogger(ctx, log)

	registry := metrics.NewRegistry()
	pipelineMetrics := metrics.NewPipeline(registry)

	// 1. Upstream clients
	site := ratemyprof.NewClient(cfg.RateMyProf.GraphQLURL, upstreamHTTPClient(cfg.RateMyProf.LogFieldMaxLen))

	var (
		classifier moderation.Classifier
		generator  summary.Generator
	)

	if c := claude.New(claude.Options{
		APIKey:     cfg.Anthropic.APIKey,
		Model:      cfg.Anthropic.Model,
		Timeout:    cfg.Anthropic.Timeout,
		HTTPClient: upstreamHTTPClient(cfg.RateMyProf.LogFieldMaxLen),
	}); c != nil {
		classifier, generator = c, c
		log.Info("model backend configured", slog.String("model", c.Model()))
	} else {
		log.Warn("ANTHROPIC_API_KEY not set, moderation and summaries disabled")
	}

	// 2. Pipeline
	school := entity.School{ID: cfg.RateMyProf.SchoolID, Name: cfg.RateMyProf.SchoolName}
	resultCache := cache.NewResultCache()

	moderator := moderation.NewFilter(classifier).
		WithTimeout(cfg.Anthropic.Timeout).
		WithParallel(cfg.Pipeline.ModerationParallel).
		WithMetrics(pipelineMetrics)

	summarizer := summary.NewSummarizer(generator).
		WithTimeout(cfg.Anthropic.Timeout).
		WithMetrics(pipelineMetrics)

	professorService := professor.NewService(site, resultCache, moderator, summarizer, school).
		WithUpstreamTimeout(cfg.RateMyProf.Timeout).
		WithMetrics(pipelineMetrics)

	// 3. HTTP API
	api := server.NewServer(
		server.NewProfessorServer(professorService),
		server.NewHealthServer(school.Name, summarizer.Configured()),
	)

	httpServer := &http.Server{
		Addr:         cfg.HTTP.ListenAddress,
		Handler:      server.NewRouter(api, cfg.HTTP.LogFieldMaxLen),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	// 4. Modules
	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)

	modules.ProbeServer{
		Name:          Name,
		Version:       version,
		ListenAddress: cfg.Probe.ListenAddress,
		School:        school.Name,
		Upstreams: map[string]bool{
			"ratemyprof": cfg.RateMyProf.GraphQLURL != "",
			"claude":     summarizer.Configured(),
		},
		// The review site is the one backend resolution cannot do without.
		Ready: func() bool {
			return ctx.Err() == nil && cfg.RateMyProf.GraphQLURL != ""
		},
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
		Gatherer:      registry,
	}.Run(ctx, g)

	keepAlive := worker.NewKeepAlive().
		WithInterval(cfg.KeepAlive.Interval).
		WithCache(resultCache).
		WithMetrics(pipelineMetrics)

	modules.Worker{Name: "keepalive"}.Run(ctx, g, keepAlive)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

// upstreamHTTPClient logs outbound calls at debug with credentials masked.
func upstreamHTTPClient(logFieldMaxLen int) *http.Client {
	return &http.Client{
		Transport: httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithLogFieldMaxLen(logFieldMaxLen),
			httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			httpx.WithLevel(slog.LevelDebug),
		),
	}
}
