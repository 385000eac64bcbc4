package tasks

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	apperrors "hackathon-portal-backend/internal/errors"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastQueue(retries int) *Queue {
	return NewQueue(Options{
		Workers:         2,
		QueueSize:       8,
		MaxRetries:      retries,
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
		TaskTimeout:     time.Second,
	})
}

func closeQueue(t *testing.T, q *Queue) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, q.Close(ctx))
}

func TestQueueRunsTasks(t *testing.T) {
	q := fastQueue(0)
	var ran atomic.Int32

	for i := 0; i < 5; i++ {
		require.NoError(t, q.Enqueue(Task{Name: "count", Run: func(ctx context.Context) error {
			ran.Add(1)
			return nil
		}}))
	}
	closeQueue(t, q)

	assert.Equal(t, int32(5), ran.Load())
}

func TestQueueRetriesThenSucceeds(t *testing.T) {
	q := fastQueue(3)
	var attempts atomic.Int32
	failed := false

	require.NoError(t, q.Enqueue(Task{
		Name: "flaky",
		Run: func(ctx context.Context) error {
			if attempts.Add(1) < 3 {
				return errors.New("temporary")
			}
			return nil
		},
		OnFailure: func(ctx context.Context, err error) { failed = true },
	}))
	closeQueue(t, q)

	assert.Equal(t, int32(3), attempts.Load())
	assert.False(t, failed)
}

func TestQueueInvokesFailureHookAfterLastAttempt(t *testing.T) {
	q := fastQueue(2)
	var attempts atomic.Int32
	var (
		mu      sync.Mutex
		hookErr error
		calls   int
	)
	boom := errors.New("sheet unavailable")

	require.NoError(t, q.Enqueue(Task{
		Name: "always-fails",
		Run: func(ctx context.Context) error {
			attempts.Add(1)
			return boom
		},
		OnFailure: func(ctx context.Context, err error) {
			mu.Lock()
			defer mu.Unlock()
			calls++
			hookErr = err
		},
	}))
	closeQueue(t, q)

	assert.Equal(t, int32(3), attempts.Load(), "one attempt plus two retries")
	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, hookErr, boom)
}

func TestQueuePermanentErrorIsNotRetried(t *testing.T) {
	q := fastQueue(5)
	var attempts atomic.Int32
	hooked := make(chan error, 1)

	require.NoError(t, q.Enqueue(Task{
		Name: "bad-input",
		Run: func(ctx context.Context) error {
			attempts.Add(1)
			return backoff.Permanent(errors.New("invalid"))
		},
		OnFailure: func(ctx context.Context, err error) { hooked <- err },
	}))
	closeQueue(t, q)

	assert.Equal(t, int32(1), attempts.Load())
	assert.EqualError(t, <-hooked, "invalid")
}

func TestQueueRecoversPanics(t *testing.T) {
	q := fastQueue(3)
	hooked := make(chan error, 1)

	require.NoError(t, q.Enqueue(Task{
		Name:      "panics",
		Run:       func(ctx context.Context) error { panic("nil map") },
		OnFailure: func(ctx context.Context, err error) { hooked <- err },
	}))
	closeQueue(t, q)

	assert.Contains(t, (<-hooked).Error(), "nil map")
}

func TestQueueRejectsAfterClose(t *testing.T) {
	q := fastQueue(0)
	closeQueue(t, q)

	err := q.Enqueue(Task{Name: "late", Run: func(ctx context.Context) error { return nil }})
	assert.ErrorIs(t, err, apperrors.ErrQueueClosed)
	assert.NoError(t, q.Close(context.Background()), "close is idempotent")
}

func TestQueueDropsWhenFull(t *testing.T) {
	q := NewQueue(Options{Workers: 1, QueueSize: 1, TaskTimeout: time.Second})
	release := make(chan struct{})
	started := make(chan struct{})

	require.NoError(t, q.Enqueue(Task{Name: "blocker", Run: func(ctx context.Context) error {
		close(started)
		<-release
		return nil
	}}))
	<-started
	require.NoError(t, q.Enqueue(Task{Name: "buffered", Run: func(ctx context.Context) error { return nil }}))

	err := q.Enqueue(Task{Name: "dropped", Run: func(ctx context.Context) error { return nil }})
	assert.ErrorIs(t, err, apperrors.ErrQueueFull)

	close(release)
	closeQueue(t, q)
}
