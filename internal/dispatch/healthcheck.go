package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/conductor-ci/conductor/internal/agentmanager"
	"github.com/conductor-ci/conductor/internal/metrics"
	"github.com/conductor-ci/conductor/internal/repositories"
	"github.com/conductor-ci/conductor/internal/types"
	"github.com/conductor-ci/conductor/internal/websocket"
	"github.com/conductor-ci/conductor/internal/workflow"
)

const (
	// pingTimeout bounds the scheduled ping/ack round-trip.
	pingTimeout = 5 * time.Second

	// reconnectTimeout bounds the user-initiated reconnect ping.
	reconnectTimeout = 10 * time.Second

	// offlineThreshold is the number of consecutive failed pings after
	// which an agent is marked offline and its schedules are paused.
	offlineThreshold = 3
)

// HealthChecker is the per-agent health-check workflow body fired every 30
// seconds: ping over the stream, await the HEARTBEAT ack, and track the
// consecutive-failure counter.
type HealthChecker struct {
	agents  repositories.AgentRepository
	manager *agentmanager.Manager
	engine  *workflow.Engine
	hub     *websocket.Hub
	logger  *zap.Logger
}

// NewHealthChecker creates a HealthChecker.
func NewHealthChecker(
	agents repositories.AgentRepository,
	manager *agentmanager.Manager,
	engine *workflow.Engine,
	hub *websocket.Hub,
	logger *zap.Logger,
) *HealthChecker {
	return &HealthChecker{
		agents:  agents,
		manager: manager,
		engine:  engine,
		hub:     hub,
		logger:  logger.Named("healthcheck"),
	}
}

// Task adapts Run to the workflow.AgentTask signature used by the engine.
func (h *HealthChecker) Task() workflow.AgentTask {
	return func(ctx context.Context, agentID uuid.UUID) {
		h.Run(ctx, agentID)
	}
}

// Run executes one health-check firing. Returns true when the agent
// answered the ping in time.
func (h *HealthChecker) Run(ctx context.Context, agentID uuid.UUID) bool {
	agent, err := h.agents.GetByID(ctx, agentID)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			h.logger.Error("failed to load agent", zap.String("agent_id", agentID.String()), zap.Error(err))
		}
		return false
	}
	if agent.Status != string(types.AgentStatusActive) {
		return false
	}

	if err := h.ping(ctx, agentID, pingTimeout); err != nil {
		h.recordFailure(ctx, agentID, err)
		return false
	}

	if err := h.agents.UpdateStatus(ctx, agentID, types.AgentStatusActive, 0, time.Now().UTC()); err != nil {
		h.logger.Warn("failed to record successful ping",
			zap.String("agent_id", agentID.String()),
			zap.Error(err),
		)
	}
	return true
}

// Reconnect is the user-initiated liveness probe: one synchronous ping with
// a longer timeout, bypassing the schedule. On success the agent returns to
// active and its schedules resume.
func (h *HealthChecker) Reconnect(ctx context.Context, agentID uuid.UUID) error {
	if _, err := h.agents.GetByID(ctx, agentID); err != nil {
		return fmt.Errorf("healthcheck: reconnect: %w", err)
	}

	if err := h.ping(ctx, agentID, reconnectTimeout); err != nil {
		return fmt.Errorf("healthcheck: reconnect ping: %w", err)
	}

	if err := h.agents.UpdateStatus(ctx, agentID, types.AgentStatusActive, 0, time.Now().UTC()); err != nil {
		return fmt.Errorf("healthcheck: reconnect status: %w", err)
	}
	if err := h.engine.ResumeAgentSchedules(ctx, agentID); err != nil {
		return fmt.Errorf("healthcheck: resume schedules: %w", err)
	}

	h.publishStatus(agentID, types.AgentStatusActive, 0)
	h.logger.Info("agent reconnected", zap.String("agent_id", agentID.String()))
	return nil
}

// ping sends a HEALTH_CHECK_PING over the stream and awaits the inbound
// HEARTBEAT acknowledging it. The waiter is registered before the send so
// a fast ack cannot be missed.
func (h *HealthChecker) ping(ctx context.Context, agentID uuid.UUID, timeout time.Duration) error {
	ack := h.manager.AwaitHeartbeat(agentID)

	if err := h.manager.SendPing(agentID); err != nil {
		return err
	}

	select {
	case <-ack:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("no heartbeat from agent %s within %s", agentID, timeout)
	case <-ctx.Done():
		return ctx.Err()
	}
}

// recordFailure increments the consecutive-failure counter and flips the
// agent offline (pausing both its schedules) at the threshold.
func (h *HealthChecker) recordFailure(ctx context.Context, agentID uuid.UUID, cause error) {
	failures, err := h.agents.IncrementFailures(ctx, agentID)
	if err != nil {
		h.logger.Error("failed to increment failure counter",
			zap.String("agent_id", agentID.String()),
			zap.Error(err),
		)
		return
	}

	metrics.HealthCheckFailures.Inc()
	h.logger.Warn("health check failed",
		zap.String("agent_id", agentID.String()),
		zap.Int("consecutive_failures", failures),
		zap.Error(cause),
	)

	if failures < offlineThreshold {
		return
	}

	if err := h.agents.UpdateStatus(ctx, agentID, types.AgentStatusOffline, failures, time.Now().UTC()); err != nil {
		h.logger.Error("failed to mark agent offline",
			zap.String("agent_id", agentID.String()),
			zap.Error(err),
		)
		return
	}

	// Pausing stops both the dispatch and health-check schedules; the
	// persisted binding survives so reconnect (or registration) resumes
	// them.
	h.engine.PauseAgentSchedules(agentID)
	metrics.AgentsOffline.Inc()
	h.publishStatus(agentID, types.AgentStatusOffline, failures)

	h.logger.Warn("agent marked offline, schedules paused",
		zap.String("agent_id", agentID.String()),
		zap.Int("consecutive_failures", failures),
	)
}

// publishStatus announces an agent liveness transition to UI subscribers.
func (h *HealthChecker) publishStatus(agentID uuid.UUID, status types.AgentStatus, failures int) {
	h.hub.Publish("agent:"+agentID.String(), websocket.Message{
		Type:  websocket.MsgAgentStatus,
		Topic: "agent:" + agentID.String(),
		Payload: map[string]any{
			"agent_id":             agentID.String(),
			"status":               string(status),
			"consecutive_failures": failures,
		},
	})
}
