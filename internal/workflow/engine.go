// Package workflow adapts gocron into the durable-workflow primitives the
// dispatch engine consumes: per-agent periodic schedules that can be
// created, paused, and resumed; bounded retries with exponential backoff;
// and heartbeat supervision for long-running streaming activities.
//
// Each agent owns exactly two schedules — queue dispatch and health check —
// identified by gocron tags derived from the agent ID. Schedules run in
// singleton mode: if a firing is still running when the next tick arrives,
// the new execution is skipped. Bindings are persisted so a server restart
// rebuilds the schedules for every agent that has ever been active.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/conductor-ci/conductor/internal/db"
	"github.com/conductor-ci/conductor/internal/repositories"
)

const (
	// DispatchInterval is the cadence of the per-agent queue dispatch
	// schedule.
	DispatchInterval = time.Minute

	// HealthCheckInterval is the cadence of the per-agent health check
	// schedule.
	HealthCheckInterval = 30 * time.Second
)

// AgentTask is one firing of a per-agent schedule. Implementations must be
// self-contained: errors are handled (and logged) inside, never returned to
// the timer.
type AgentTask func(ctx context.Context, agentID uuid.UUID)

// Engine owns the gocron scheduler and the persisted schedule bindings.
// The zero value is not usable — create instances with NewEngine, call
// SetHandlers, then Start.
type Engine struct {
	cron     gocron.Scheduler
	bindings repositories.ScheduleBindingRepository
	logger   *zap.Logger

	dispatch    AgentTask
	healthCheck AgentTask

	// baseCtx is captured at Start and handed to task firings so they stop
	// cleanly on server shutdown.
	baseCtx context.Context
}

// NewEngine creates and configures a new Engine. Call Start to begin firing.
func NewEngine(bindings repositories.ScheduleBindingRepository, logger *zap.Logger) (*Engine, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("workflow: failed to create gocron scheduler: %w", err)
	}
	return &Engine{
		cron:     s,
		bindings: bindings,
		logger:   logger.Named("workflow"),
		baseCtx:  context.Background(),
	}, nil
}

// SetHandlers wires the dispatch and health-check task bodies. Must be
// called before Start — the engine has no default behavior.
func (e *Engine) SetHandlers(dispatch, healthCheck AgentTask) {
	e.dispatch = dispatch
	e.healthCheck = healthCheck
}

// Start rebuilds the schedules for every persisted binding and starts the
// underlying gocron scheduler. Should be called once at server startup,
// after the database connection is established.
func (e *Engine) Start(ctx context.Context) error {
	if e.dispatch == nil || e.healthCheck == nil {
		return errors.New("workflow: handlers not set")
	}
	e.baseCtx = ctx

	bindings, err := e.bindings.List(ctx)
	if err != nil {
		return fmt.Errorf("workflow: failed to load schedule bindings: %w", err)
	}

	for i := range bindings {
		agentID := bindings[i].AgentID
		if err := e.addAgentJobs(ctx, agentID); err != nil {
			e.logger.Error("failed to rebuild agent schedules",
				zap.String("agent_id", agentID.String()),
				zap.Error(err),
			)
		}
	}

	e.logger.Info("workflow engine started", zap.Int("agents_scheduled", len(bindings)))
	e.cron.Start()
	return nil
}

// Stop gracefully shuts down the scheduler, waiting for any currently
// running task functions to complete before returning.
func (e *Engine) Stop() error {
	if err := e.cron.Shutdown(); err != nil {
		return fmt.Errorf("workflow: shutdown error: %w", err)
	}
	e.logger.Info("workflow engine stopped")
	return nil
}

// dispatchTag and healthTag identify an agent's two gocron jobs.
func dispatchTag(agentID uuid.UUID) string { return "dispatch:" + agentID.String() }
func healthTag(agentID uuid.UUID) string   { return "health:" + agentID.String() }

// EnsureAgentSchedules creates (or re-creates) both schedules for an agent
// and persists the binding. Idempotent: existing jobs for the agent are
// removed first, so calling it on every reconnect is safe.
//
// Called from the registration post-commit hook and the reconnect endpoint.
func (e *Engine) EnsureAgentSchedules(ctx context.Context, agentID uuid.UUID) error {
	e.removeAgentJobs(agentID)
	if err := e.addAgentJobs(ctx, agentID); err != nil {
		return err
	}

	binding := &db.ScheduleBinding{
		AgentID:               agentID,
		QueueScheduleID:       dispatchTag(agentID),
		HealthCheckScheduleID: healthTag(agentID),
	}
	if err := e.bindings.Upsert(ctx, binding); err != nil {
		return fmt.Errorf("workflow: persist binding for agent %s: %w", agentID, err)
	}

	e.logger.Info("agent schedules ensured", zap.String("agent_id", agentID.String()))
	return nil
}

// PauseAgentSchedules stops both of an agent's schedules without touching
// the persisted binding, so a later resume (or restart) re-creates them.
// Called when an agent crosses the offline threshold.
func (e *Engine) PauseAgentSchedules(agentID uuid.UUID) {
	e.removeAgentJobs(agentID)
	e.logger.Info("agent schedules paused", zap.String("agent_id", agentID.String()))
}

// ResumeAgentSchedules re-creates both schedules for an agent whose binding
// already exists. Called by the reconnect endpoint after a successful ping.
func (e *Engine) ResumeAgentSchedules(ctx context.Context, agentID uuid.UUID) error {
	return e.EnsureAgentSchedules(ctx, agentID)
}

// RemoveAgentSchedules tears down the schedules and deletes the binding.
// Called when an agent is deleted.
func (e *Engine) RemoveAgentSchedules(ctx context.Context, agentID uuid.UUID) error {
	e.removeAgentJobs(agentID)
	if err := e.bindings.DeleteByAgent(ctx, agentID); err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("workflow: delete binding for agent %s: %w", agentID, err)
	}
	e.logger.Info("agent schedules removed", zap.String("agent_id", agentID.String()))
	return nil
}

// addAgentJobs registers the two gocron jobs for an agent. Singleton mode
// guarantees a firing never overlaps its predecessor for the same agent.
func (e *Engine) addAgentJobs(ctx context.Context, agentID uuid.UUID) error {
	_, err := e.cron.NewJob(
		gocron.DurationJob(DispatchInterval),
		gocron.NewTask(func(id uuid.UUID) {
			e.dispatch(e.baseCtx, id)
		}, agentID),
		gocron.WithTags(dispatchTag(agentID)),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("workflow: schedule dispatch for agent %s: %w", agentID, err)
	}

	_, err = e.cron.NewJob(
		gocron.DurationJob(HealthCheckInterval),
		gocron.NewTask(func(id uuid.UUID) {
			e.healthCheck(e.baseCtx, id)
		}, agentID),
		gocron.WithTags(healthTag(agentID)),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("workflow: schedule health check for agent %s: %w", agentID, err)
	}

	return nil
}

// removeAgentJobs drops both gocron jobs for an agent, if present.
func (e *Engine) removeAgentJobs(agentID uuid.UUID) {
	e.cron.RemoveByTags(dispatchTag(agentID), healthTag(agentID))
}
