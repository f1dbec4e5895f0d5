// Package professor resolves a free-text professor name to one assembled
// record: search, match, fetch reviews, sanitize, moderate, summarize, cache.
package professor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/singleflight"

	"profassist/internal/domain"
	"profassist/internal/domain/entity"
	"profassist/internal/domain/service/matcher"
	"profassist/internal/domain/service/review"
	"profassist/internal/infrastructure/cache"
	"profassist/pkg/contextx"
	"profassist/pkg/errcodes"
	"profassist/pkg/logx"
	"profassist/pkg/metrics"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	// ReviewCount is how many of the most recent reviews are fetched.
	ReviewCount            = 5
	DefaultUpstreamTimeout = 10 * time.Second

	opSearch = "search"
	opFetch  = "fetch_reviews"
)

type ReviewSite interface {
	SearchTeachers(ctx context.Context, name, schoolID string) ([]entity.Candidate, error)
	FetchRatings(ctx context.Context, teacherID string, count int) ([]entity.RawReview, error)
}

type ResultCache interface {
	Get(key string) (entity.Professor, bool)
	Put(key string, professor entity.Professor)
	Len() int
}

type Moderator interface {
	Keep(ctx context.Context, reviews []entity.Review) []entity.Review
}

type Summarizer interface {
	Summarize(ctx context.Context, texts []string) string
}

type Service struct {
	site       ReviewSite
	cache      ResultCache
	moderator  Moderator
	summarizer Summarizer
	school     entity.School

	upstreamTimeout time.Duration
	metrics         *metrics.Pipeline

	group   singleflight.Group
	mu      sync.Mutex
	flights map[string]*flight
	seq     uint64
}

// flight is the shared context of one in-progress resolution. It is canceled
// once every caller waiting on it has gone away.
type flight struct {
	call    string
	ctx     context.Context //nolint:containedctx
	cancel  context.CancelFunc
	waiters int
}

func NewService(
	site ReviewSite,
	resultCache ResultCache,
	moderator Moderator,
	summarizer Summarizer,
	school entity.School,
) *Service {
	return &Service{
		site:            site,
		cache:           resultCache,
		moderator:       moderator,
		summarizer:      summarizer,
		school:          school,
		upstreamTimeout: DefaultUpstreamTimeout,
		flights:         make(map[string]*flight),
	}
}

func (s *Service) WithUpstreamTimeout(timeout time.Duration) *Service {
	if timeout > 0 {
		s.upstreamTimeout = timeout
	}

	return s
}

func (s *Service) WithMetrics(m *metrics.Pipeline) *Service {
	s.metrics = m
	return s
}

func (s *Service) School() entity.School {
	return s.school
}

// Resolve returns the record for name. It fails with InvalidProfessorName for
// a blank name, ProfessorNotFound when no rated candidate matches both first
// and last name, or the context error when ctx ends first. Every other
// upstream problem degrades instead of failing.
func (s *Service) Resolve(ctx context.Context, name string) (entity.Professor, error) {
	if strings.TrimSpace(name) == "" {
		s.metrics.Outcome(metrics.OutcomeInvalid)
		return entity.Professor{}, domain.NewError(errcodes.InvalidProfessorName, "Professor name is required.")
	}

	key := cache.NormalizeKey(name)

	if professor, ok := s.cache.Get(key); ok {
		s.metrics.CacheHit()
		s.metrics.Outcome(metrics.OutcomeCached)
		logger(ctx).Info("cache hit", slog.String(logx.FieldQuery, name))

		return professor, nil
	}

	s.metrics.CacheMiss()

	return s.wait(ctx, name, key, s.join(ctx, key))
}

// wait runs or shares the call of flight f and leaves f when done. Each flight
// has its own singleflight key, so a caller that reaches DoChan after f landed
// starts a private call on f's context instead of sharing a newer flight.
func (s *Service) wait(ctx context.Context, name, key string, f *flight) (entity.Professor, error) {
	ch := s.group.DoChan(f.call, func() (any, error) {
		defer s.land(key, f)

		return s.resolve(f.ctx, name, key)
	})

	select {
	case res := <-ch:
		s.leave(key, f)

		if res.Err != nil {
			return entity.Professor{}, res.Err
		}

		return res.Val.(entity.Professor), nil //nolint:forcetypeassert
	case <-ctx.Done():
		s.leave(key, f)
		s.metrics.Outcome(metrics.OutcomeCanceled)

		return entity.Professor{}, fmt.Errorf("resolve %q: %w", name, ctx.Err())
	}
}

// join registers the caller on the flight for key, creating it if needed.
// The flight context keeps the caller's values (logger, trace id) but not its
// cancellation.
func (s *Service) join(ctx context.Context, key string) *flight {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flights[key]
	if !ok {
		s.seq++

		fctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		f = &flight{
			call:   key + "#" + strconv.FormatUint(s.seq, 10),
			ctx:    fctx,
			cancel: cancel,
		}
		s.flights[key] = f
	}

	f.waiters++

	return f
}

// leave drops the caller from f and abandons the flight when nobody waits.
func (s *Service) leave(key string, f *flight) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f.waiters--
	if f.waiters > 0 {
		return
	}

	f.cancel()
	s.group.Forget(f.call)

	if s.flights[key] == f {
		delete(s.flights, key)
	}
}

// land unregisters a finished flight so the next miss starts a fresh one.
func (s *Service) land(key string, f *flight) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.flights[key] == f {
		delete(s.flights, key)
	}
}

func (s *Service) resolve(ctx context.Context, name, key string) (entity.Professor, error) {
	if professor, ok := s.cache.Get(key); ok {
		return professor, nil
	}

	candidate, ok := s.search(ctx, name)

	if err := ctx.Err(); err != nil {
		return entity.Professor{}, fmt.Errorf("search: %w", err)
	}

	if !ok {
		s.metrics.Outcome(metrics.OutcomeNotFound)

		return entity.Professor{}, domain.NewError(
			errcodes.ProfessorNotFound,
			fmt.Sprintf("No professor found for '%s' at %s.", name, s.school.Name),
		)
	}

	logger(ctx).Info(
		"professor found",
		slog.String(logx.FieldProfessor, candidate.FullName()),
		slog.Int(logx.FieldNumRatings, candidate.NumRatings),
	)

	raws := s.fetchReviews(ctx, candidate.ID)
	clean := review.SanitizeAll(raws)
	kept := s.moderator.Keep(ctx, clean)
	summary := s.summarizer.Summarize(ctx, lo.Map(kept, func(r entity.Review, _ int) string {
		return r.Text
	}))

	professor := Assemble(candidate, summary, kept)

	if err := ctx.Err(); err != nil {
		return entity.Professor{}, fmt.Errorf("assemble: %w", err)
	}

	s.cache.Put(key, professor)
	s.metrics.CacheSize(s.cache.Len())
	s.metrics.Outcome(metrics.OutcomeResolved)

	return professor, nil
}

// search reports false both for "no confident match" and for a failed search.
func (s *Service) search(ctx context.Context, name string) (entity.Candidate, bool) {
	ctx, cancel := context.WithTimeout(ctx, s.upstreamTimeout)
	defer cancel()

	start := time.Now()

	candidates, err := s.site.SearchTeachers(ctx, stripQuotes(name), s.school.ID)

	s.metrics.ObserveUpstream(opSearch, start)

	if err != nil {
		if !errors.Is(err, context.Canceled) {
			s.metrics.UpstreamFailure(opSearch)
		}

		logger(ctx).Error(
			"professor search failed",
			slog.String(logx.FieldOperation, opSearch),
			slog.String(logx.FieldQuery, name),
			slog.String(logx.FieldSchool, s.school.ID),
			logx.Error(err),
		)

		return entity.Candidate{}, false
	}

	candidate, ok := matcher.Match(name, candidates)
	if !ok {
		logger(ctx).Info(
			"no confident match",
			slog.String(logx.FieldQuery, name),
			slog.Int(logx.FieldCandidates, len(candidates)),
		)
	}

	return candidate, ok
}

// fetchReviews degrades to no reviews on failure.
func (s *Service) fetchReviews(ctx context.Context, teacherID string) []entity.RawReview {
	ctx, cancel := context.WithTimeout(ctx, s.upstreamTimeout)
	defer cancel()

	start := time.Now()

	raws, err := s.site.FetchRatings(ctx, teacherID, ReviewCount)

	s.metrics.ObserveUpstream(opFetch, start)

	if err != nil {
		if !errors.Is(err, context.Canceled) {
			s.metrics.UpstreamFailure(opFetch)
		}

		logger(ctx).Error(
			"review fetch failed",
			slog.String(logx.FieldOperation, opFetch),
			slog.String(logx.FieldProfessorID, teacherID),
			logx.Error(err),
		)

		return nil
	}

	return raws
}

// Assemble builds the record for a matched candidate. Optional averages are
// kept only when the site reported them; a negative would-take-again
// percentage means unknown.
func Assemble(c entity.Candidate, summary string, reviews []entity.Review) entity.Professor {
	p := entity.Professor{
		Name:       c.FullName(),
		Rating:     round1(lo.FromPtr(c.Rating)),
		NumRatings: c.NumRatings,
		Summary:    summary,
		Reviews:    reviews,
	}

	if p.Reviews == nil {
		p.Reviews = []entity.Review{}
	}

	if c.Difficulty != nil {
		p.Difficulty = lo.ToPtr(round1(*c.Difficulty))
	}

	if c.WouldTakeAgainPercent != nil && *c.WouldTakeAgainPercent >= 0 {
		p.WouldTakeAgain = lo.ToPtr(round1(*c.WouldTakeAgainPercent))
	}

	if c.Department != "" {
		p.Department = lo.ToPtr(c.Department)
	}

	return p
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func stripQuotes(name string) string {
	return strings.ReplaceAll(name, `"`, "")
}
