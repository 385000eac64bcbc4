package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"hackathon-portal-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeApplier struct {
	calls   int32
	applied bool
	err     error
	lastNow atomic.Value
}

func (f *fakeApplier) ApplyDueSchedule(_ context.Context, now time.Time) (*models.Settings, bool, error) {
	atomic.AddInt32(&f.calls, 1)
	f.lastNow.Store(now)
	if f.err != nil {
		return nil, false, f.err
	}
	return &models.Settings{Enabled: true}, f.applied, nil
}

func TestRunOncePassesClock(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	f := &fakeApplier{applied: true}
	r := NewRegistrationScheduler(f, time.Minute)
	r.now = func() time.Time { return fixed }

	r.RunOnce(context.Background())

	assert.Equal(t, int32(1), atomic.LoadInt32(&f.calls))
	assert.Equal(t, fixed, f.lastNow.Load())
}

func TestRunOnceSurvivesErrors(t *testing.T) {
	f := &fakeApplier{err: errors.New("store down")}
	r := NewRegistrationScheduler(f, time.Minute)

	assert.NotPanics(t, func() { r.RunOnce(context.Background()) })
	assert.Equal(t, int32(1), atomic.LoadInt32(&f.calls))
}

func TestStartRunsImmediatelyAndRepeats(t *testing.T) {
	f := &fakeApplier{}
	r := NewRegistrationScheduler(f, 50*time.Millisecond)

	require.NoError(t, r.Start())
	require.NoError(t, r.Start(), "second start is a no-op")

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&f.calls) >= 2 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, r.Shutdown())
	require.NoError(t, r.Shutdown())

	after := atomic.LoadInt32(&f.calls)
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt32(&f.calls), "no ticks after shutdown")
}

func TestDefaultInterval(t *testing.T) {
	r := NewRegistrationScheduler(&fakeApplier{}, 0)
	assert.Equal(t, time.Minute, r.interval)
	assert.Equal(t, 30*time.Second, r.timeout)
}
