// Package moderation drops abusive reviews using an external text classifier.
//
// The filter fails open: when the classifier is not configured, times out or
// answers anything but "YES", the review is kept.
package moderation

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"profassist/internal/domain/entity"
	"profassist/pkg/contextx"
	"profassist/pkg/logx"
	"profassist/pkg/metrics"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	// MaxInputRunes bounds the text sent to the classifier.
	MaxInputRunes = 512

	// Instruction is the fixed classification contract with the model.
	Instruction = "You are a content moderator. Reply with only 'YES' if the text contains hate speech, " +
		"personal attacks, slurs, or clearly inappropriate content. Reply with only 'NO' otherwise."

	logTextRunes    = 60
	defaultParallel = 5

	operation = "moderation"
)

// Classifier answers a moderation instruction for a text sample.
type Classifier interface {
	Classify(ctx context.Context, instruction, text string) (string, error)
}

type Filter struct {
	classifier Classifier
	timeout    time.Duration
	parallel   int
	metrics    *metrics.Pipeline
}

// NewFilter builds a filter. A nil classifier means moderation is not
// configured and every text is accepted.
func NewFilter(classifier Classifier) *Filter {
	return &Filter{
		classifier: classifier,
		parallel:   defaultParallel,
	}
}

// WithTimeout bounds every classifier call. Zero leaves only the caller's
// deadline in effect.
func (f *Filter) WithTimeout(timeout time.Duration) *Filter {
	f.timeout = timeout
	return f
}

// WithParallel caps how many reviews are checked at once.
func (f *Filter) WithParallel(n int) *Filter {
	if n > 0 {
		f.parallel = n
	}

	return f
}

func (f *Filter) WithMetrics(m *metrics.Pipeline) *Filter {
	f.metrics = m
	return f
}

func (f *Filter) Configured() bool {
	return f.classifier != nil
}

// IsAbusive never fails: any classifier problem counts as "not abusive".
func (f *Filter) IsAbusive(ctx context.Context, text string) bool {
	if f.classifier == nil {
		return false
	}

	return f.classify(ctx, text)
}

// Keep checks the reviews concurrently and returns the accepted ones in their
// input order.
func (f *Filter) Keep(ctx context.Context, reviews []entity.Review) []entity.Review {
	if f.classifier == nil || len(reviews) == 0 {
		return reviews
	}

	abusive := make([]bool, len(reviews))

	var g errgroup.Group

	g.SetLimit(f.parallel)

	for i, r := range reviews {
		g.Go(func() error {
			abusive[i] = f.classify(ctx, r.Text)
			return nil
		})
	}

	_ = g.Wait() //nolint:errcheck // workers never return an error

	kept := make([]entity.Review, 0, len(reviews))

	for i, r := range reviews {
		if !abusive[i] {
			kept = append(kept, r)
		}
	}

	return kept
}

func (f *Filter) classify(ctx context.Context, text string) bool {
	if f.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	start := time.Now()

	answer, err := f.classifier.Classify(ctx, Instruction, lo.Substring(text, 0, MaxInputRunes))

	f.metrics.ObserveUpstream(operation, start)

	if err != nil {
		f.metrics.UpstreamFailure(operation)
		logger(ctx).Warn(
			"abuse detection failed",
			slog.String(logx.FieldOperation, operation),
			logx.Truncated(logx.FieldText, text, logTextRunes),
			logx.Error(err),
		)

		return false
	}

	if strings.ToUpper(strings.TrimSpace(answer)) != "YES" {
		return false
	}

	f.metrics.ReviewFlagged()
	logger(ctx).Info("review flagged as abusive", logx.Truncated(logx.FieldText, text, logTextRunes))

	return true
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(ctx context.Context, instruction, text string) (string, error)

func (f ClassifierFunc) Classify(ctx context.Context, instruction, text string) (string, error) {
	return f(ctx, instruction, text)
}
