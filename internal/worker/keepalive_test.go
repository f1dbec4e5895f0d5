package worker_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"profassist/internal/worker"
	"profassist/pkg/contextx"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

type fixedSize int

func (s fixedSize) Len() int { return int(s) }

func TestKeepAlive(t *testing.T) {
	rq := require.New(t)

	var out syncBuffer

	ctx := contextx.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&out, nil)))
	ctx, cancel := context.WithCancel(ctx)

	done := make(chan error, 1)

	go func() {
		done <- worker.NewKeepAlive().
			WithInterval(5 * time.Millisecond).
			WithCache(fixedSize(3)).
			Run(ctx)
	}()

	rq.Eventually(func() bool {
		return strings.Count(out.String(), "keep alive ping") >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		rq.ErrorIs(err, context.Canceled)
	case <-time.After(time.Second):
		rq.Fail("keep alive did not stop")
	}

	rq.Contains(out.String(), "cache-entries=3")
}

func TestKeepAliveIgnoresBadInterval(t *testing.T) {
	rq := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rq.ErrorIs(worker.NewKeepAlive().WithInterval(0).WithInterval(-time.Second).Run(ctx), context.Canceled)
}
