package workflow

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fastPolicy(attempts int) RetryPolicy {
	return RetryPolicy{
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
		MaxAttempts:     attempts,
	}
}

func TestRetrySucceedsAfterTransientFailures(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), fastPolicy(3), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 3, calls)
}

func TestRetryExhaustsAttempts(t *testing.T) {
	calls := 0
	sentinel := errors.New("still broken")
	err := Retry(context.Background(), fastPolicy(3), func(ctx context.Context) error {
		calls++
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)
	require.Equal(t, 3, calls)
}

func TestRetryStopsOnNonRetriable(t *testing.T) {
	calls := 0
	cause := errors.New("job not found")
	err := Retry(context.Background(), fastPolicy(3), func(ctx context.Context) error {
		calls++
		return NonRetriable(cause)
	})
	require.ErrorIs(t, err, cause)
	require.True(t, IsNonRetriable(err))
	require.Equal(t, 1, calls)
}

func TestRetryHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Retry(ctx, RetryPolicy{InitialInterval: time.Minute, MaxAttempts: 3}, func(ctx context.Context) error {
		calls++
		cancel()
		return errors.New("transient")
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, calls)
}

func TestCauseUnwrapsToInnermost(t *testing.T) {
	root := errors.New("disk full")
	wrapped := NonRetriable(fmt.Errorf("activity: %w", fmt.Errorf("rpc: %w", root)))
	require.Equal(t, root, Cause(wrapped))
}

func TestHeartbeatMonitorExpiresOnSilence(t *testing.T) {
	ctx, monitor := NewHeartbeatMonitor(context.Background(), 20*time.Millisecond)
	defer monitor.Stop()

	select {
	case <-ctx.Done():
		require.True(t, TimedOut(ctx))
	case <-time.After(time.Second):
		t.Fatal("monitor never expired")
	}
}

func TestHeartbeatMonitorBeatKeepsContextAlive(t *testing.T) {
	ctx, monitor := NewHeartbeatMonitor(context.Background(), 40*time.Millisecond)
	defer monitor.Stop()

	for i := 0; i < 5; i++ {
		time.Sleep(15 * time.Millisecond)
		monitor.Beat()
	}
	require.NoError(t, ctx.Err())

	monitor.Stop()
	// After Stop the timer is disarmed; the context stays alive.
	time.Sleep(60 * time.Millisecond)
	require.NoError(t, ctx.Err())
}
