package summary_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"profassist/internal/domain/service/summary"
)

type fakeGenerator struct {
	text  string
	err   error
	calls int

	instruction string
	message     string
	maxTokens   int
}

func (f *fakeGenerator) Generate(_ context.Context, instruction, message string, maxTokens int) (string, error) {
	f.calls++
	f.instruction = instruction
	f.message = message
	f.maxTokens = maxTokens

	return f.text, f.err
}

func TestSummarize(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	t.Run("Generated text is trimmed", func(*testing.T) {
		gen := &fakeGenerator{text: "  Clear lecturer with hard exams.\n"}

		got := summary.NewSummarizer(gen).Summarize(ctx, []string{"Great lectures", "Tough exams"})

		rq.Equal("Clear lecturer with hard exams.", got)
		rq.Equal(summary.Instruction, gen.instruction)
		rq.Equal(summary.MaxTokens, gen.maxTokens)
		rq.Equal("Here are the student reviews:\n\n1. \"Great lectures\"\n2. \"Tough exams\"\n\nPlease summarize these reviews.", gen.message)
	})

	t.Run("No texts skip the generator", func(*testing.T) {
		gen := &fakeGenerator{text: "unused"}

		rq.Equal(summary.NoReviews, summary.NewSummarizer(gen).Summarize(ctx, nil))
		rq.Zero(gen.calls)
	})

	t.Run("Not configured", func(*testing.T) {
		rq.Equal(
			"Based on 2 student reviews from Rate My Professor. See individual reviews below for details.",
			summary.NewSummarizer(nil).Summarize(ctx, []string{"a", "b"}),
		)
		rq.Equal(summary.NoReviews, summary.NewSummarizer(nil).Summarize(ctx, []string{}))
	})

	t.Run("Generator failure falls back", func(*testing.T) {
		gen := &fakeGenerator{err: errors.New("529 overloaded")}

		got := summary.NewSummarizer(gen).Summarize(ctx, []string{"only one"})

		rq.Contains(got, "1 student review ")
		rq.NotContains(got, "reviews")
	})

	t.Run("Blank generation falls back", func(*testing.T) {
		gen := &fakeGenerator{text: "   "}

		rq.Contains(summary.NewSummarizer(gen).Summarize(ctx, []string{"a", "b", "c"}), "3 student reviews")
	})

	t.Run("Timeout falls back", func(*testing.T) {
		gen := generatorFunc(func(ctx context.Context) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		})

		got := summary.NewSummarizer(gen).WithTimeout(10*time.Millisecond).Summarize(ctx, []string{"a"})

		rq.Equal(summary.Fallback(1), got)
	})
}

type generatorFunc func(ctx context.Context) (string, error)

func (f generatorFunc) Generate(ctx context.Context, _, _ string, _ int) (string, error) {
	return f(ctx)
}

func TestFallback(t *testing.T) {
	rq := require.New(t)

	rq.Equal(summary.NoReviews, summary.Fallback(0))
	rq.Equal("Based on 1 student review from Rate My Professor. See individual reviews below for details.", summary.Fallback(1))
	rq.Equal("Based on 5 student reviews from Rate My Professor. See individual reviews below for details.", summary.Fallback(5))

	for n := range 10 {
		rq.NotEmpty(summary.Fallback(n))
	}
}
