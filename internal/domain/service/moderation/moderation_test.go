package moderation_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"profassist/internal/domain/entity"
	"profassist/internal/domain/service/moderation"
)

type fakeClassifier struct {
	mu     sync.Mutex
	calls  []string
	answer func(text string) (string, error)
}

func (f *fakeClassifier) Classify(_ context.Context, instruction, text string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, text)
	f.mu.Unlock()

	if instruction != moderation.Instruction {
		return "", errors.New("unexpected instruction")
	}

	return f.answer(text)
}

func reviews(texts ...string) []entity.Review {
	return lo.Map(texts, func(t string, _ int) entity.Review { return entity.Review{Text: t} })
}

func texts(rs []entity.Review) []string {
	return lo.Map(rs, func(r entity.Review, _ int) string { return r.Text })
}

func TestIsAbusive(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	testCases := []struct {
		name   string
		answer string
		err    error
		want   bool
	}{
		{name: "Yes", answer: "YES", want: true},
		{name: "Yes with noise", answer: "  yes\n", want: true},
		{name: "No", answer: "NO", want: false},
		{name: "Unexpected grammar", answer: "Yes, it is abusive.", want: false},
		{name: "Empty answer", answer: "", want: false},
		{name: "Classifier failure", err: errors.New("503 overloaded"), want: false},
		{name: "Timeout", err: context.DeadlineExceeded, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			classifier := &fakeClassifier{answer: func(string) (string, error) { return tc.answer, tc.err }}

			rq.Equal(tc.want, moderation.NewFilter(classifier).IsAbusive(ctx, "some text"))
		})
	}
}

func TestIsAbusiveNotConfigured(t *testing.T) {
	rq := require.New(t)

	filter := moderation.NewFilter(nil)

	rq.False(filter.Configured())
	rq.False(filter.IsAbusive(context.Background(), "anything"))
}

func TestIsAbusiveTruncatesInput(t *testing.T) {
	rq := require.New(t)

	classifier := &fakeClassifier{answer: func(string) (string, error) { return "NO", nil }}
	long := strings.Repeat("ж", moderation.MaxInputRunes+100)

	moderation.NewFilter(classifier).IsAbusive(context.Background(), long)

	rq.Len(classifier.calls, 1)
	rq.Equal(moderation.MaxInputRunes, len([]rune(classifier.calls[0])))
}

func TestIsAbusiveTimeout(t *testing.T) {
	rq := require.New(t)

	classifier := moderation.ClassifierFunc(func(ctx context.Context, _, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})

	start := time.Now()
	abusive := moderation.NewFilter(classifier).
		WithTimeout(20*time.Millisecond).
		IsAbusive(context.Background(), "slow")

	rq.False(abusive)
	rq.Less(time.Since(start), time.Second)
}

func TestKeep(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	classifier := &fakeClassifier{answer: func(text string) (string, error) {
		switch {
		case strings.HasPrefix(text, "bad"):
			return "YES", nil
		case strings.HasPrefix(text, "err"):
			return "", errors.New("boom")
		default:
			// Delay the early reviews so completions arrive out of order.
			if text == "good 1" {
				time.Sleep(30 * time.Millisecond)
			}

			return "NO", nil
		}
	}}

	kept := moderation.NewFilter(classifier).
		WithParallel(5).
		Keep(ctx, reviews("good 1", "bad 1", "good 2", "err 1", "bad 2", "good 3"))

	rq.Equal([]string{"good 1", "good 2", "err 1", "good 3"}, texts(kept))
	rq.Len(classifier.calls, 6)
}

func TestKeepNotConfigured(t *testing.T) {
	rq := require.New(t)

	in := reviews("a", "b")

	rq.Equal(in, moderation.NewFilter(nil).Keep(context.Background(), in))
}

func TestKeepRunsConcurrently(t *testing.T) {
	rq := require.New(t)

	var (
		mu      sync.Mutex
		running int
		peak    int
	)

	classifier := moderation.ClassifierFunc(func(context.Context, string, string) (string, error) {
		mu.Lock()
		running++
		peak = max(peak, running)
		mu.Unlock()

		time.Sleep(20 * time.Millisecond)

		mu.Lock()
		running--
		mu.Unlock()

		return "NO", nil
	})

	kept := moderation.NewFilter(classifier).
		WithParallel(2).
		Keep(context.Background(), reviews("a", "b", "c", "d", "e"))

	rq.Len(kept, 5)
	rq.Equal(2, peak)
}
