// Package summary writes a short neutral synopsis of a professor's reviews.
package summary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"profassist/pkg/contextx"
	"profassist/pkg/logx"
	"profassist/pkg/metrics"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	// Instruction is the fixed style contract with the generation model.
	Instruction = `You are a helpful assistant that summarizes Rate My Professor reviews for University of Washington Tacoma professors.

Given a list of student reviews, write a 2-3 sentence summary that:
- Highlights the professor's main strengths mentioned by students
- Mentions any consistent complaints or weaknesses
- Notes teaching style if mentioned (e.g. lecture-heavy, project-based, etc.)
- Stays neutral and factual; do not exaggerate positives or negatives
- Is written for a student deciding whether to take this professor

Keep the summary under 60 words. Do not use bullet points. Write in plain paragraph form.`

	// MaxTokens bounds the generated summary.
	MaxTokens = 150

	NoReviews = "No reviews available to summarize."

	operation = "summary"
)

// Generator produces free text for a system instruction and a user message.
type Generator interface {
	Generate(ctx context.Context, instruction, message string, maxTokens int) (string, error)
}

type Summarizer struct {
	generator Generator
	timeout   time.Duration
	metrics   *metrics.Pipeline
}

// NewSummarizer builds a summarizer. A nil generator means generation is not
// configured and the fallback text is always used.
func NewSummarizer(generator Generator) *Summarizer {
	return &Summarizer{generator: generator}
}

func (s *Summarizer) WithTimeout(timeout time.Duration) *Summarizer {
	s.timeout = timeout
	return s
}

func (s *Summarizer) WithMetrics(m *metrics.Pipeline) *Summarizer {
	s.metrics = m
	return s
}

func (s *Summarizer) Configured() bool {
	return s.generator != nil
}

// Summarize always returns a non-empty string.
func (s *Summarizer) Summarize(ctx context.Context, texts []string) string {
	if s.generator == nil || len(texts) == 0 {
		return Fallback(len(texts))
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()

	text, err := s.generator.Generate(ctx, Instruction, Prompt(texts), MaxTokens)

	s.metrics.ObserveUpstream(operation, start)

	if err != nil {
		s.metrics.UpstreamFailure(operation)
		logger(ctx).Warn(
			"summarization failed",
			slog.String(logx.FieldOperation, operation),
			slog.Int(logx.FieldReviews, len(texts)),
			logx.Error(err),
		)

		return Fallback(len(texts))
	}

	text = strings.TrimSpace(text)
	if text == "" {
		s.metrics.UpstreamFailure(operation)
		logger(ctx).Warn("summarization returned no text", slog.Int(logx.FieldReviews, len(texts)))

		return Fallback(len(texts))
	}

	return text
}

// Prompt numbers and quotes the review texts for the generator.
func Prompt(texts []string) string {
	var sb strings.Builder

	sb.WriteString("Here are the student reviews:\n\n")

	for i, t := range texts {
		if i > 0 {
			sb.WriteByte('\n')
		}

		fmt.Fprintf(&sb, "%d. \"%s\"", i+1, t)
	}

	sb.WriteString("\n\nPlease summarize these reviews.")

	return sb.String()
}

// Fallback is the deterministic summary used when generation is unavailable.
func Fallback(count int) string {
	if count == 0 {
		return NoReviews
	}

	noun := "reviews"
	if count == 1 {
		noun = "review"
	}

	return fmt.Sprintf(
		"Based on %d student %s from Rate My Professor. See individual reviews below for details.",
		count, noun,
	)
}
