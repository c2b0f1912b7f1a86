package workflow

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrHeartbeatTimeout is the cancellation cause set when a supervised
// activity goes silent for longer than its heartbeat timeout. The activity
// attempt is cancelled (and retried by the caller's policy); the workflow
// itself survives.
var ErrHeartbeatTimeout = errors.New("activity heartbeat timeout")

// HeartbeatMonitor cancels a derived context when Beat is not called within
// the timeout. Streaming activities beat once per received frame, so
// silence on the stream — not total runtime — is what trips the monitor.
type HeartbeatMonitor struct {
	timeout time.Duration
	cancel  context.CancelCauseFunc

	mu    sync.Mutex
	timer *time.Timer
	done  bool
}

// NewHeartbeatMonitor derives a context from parent that is cancelled with
// ErrHeartbeatTimeout if Beat is not called within timeout. Stop must be
// called when the activity finishes to release the timer.
func NewHeartbeatMonitor(parent context.Context, timeout time.Duration) (context.Context, *HeartbeatMonitor) {
	ctx, cancel := context.WithCancelCause(parent)
	m := &HeartbeatMonitor{
		timeout: timeout,
		cancel:  cancel,
	}
	m.timer = time.AfterFunc(timeout, func() {
		cancel(ErrHeartbeatTimeout)
	})
	return ctx, m
}

// Beat resets the silence clock. Safe to call after Stop (no-op).
func (m *HeartbeatMonitor) Beat() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.done {
		return
	}
	m.timer.Reset(m.timeout)
}

// Stop disarms the monitor. The derived context is left alone — the caller
// cancels it through its parent as usual.
func (m *HeartbeatMonitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.done {
		return
	}
	m.done = true
	m.timer.Stop()
}

// TimedOut reports whether ctx was cancelled by a heartbeat expiry.
func TimedOut(ctx context.Context) bool {
	return errors.Is(context.Cause(ctx), ErrHeartbeatTimeout)
}
