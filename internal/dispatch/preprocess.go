// Package dispatch implements the periodic workflows that drive agents:
// the per-agent preprocess step that recovers orphans and claims queued
// work, the dispatch workflow that spawns job executions, the job-execution
// workflow itself, and the health-check workflow that tracks liveness.
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
)

// OrphanCutoff is how long an in-progress job may go untouched before the
// preprocess step treats it as orphaned and returns it to its queue.
const OrphanCutoff = 5 * time.Minute

// PreprocessResult is the outcome of one preprocess invocation. JobID is
// set only when a job was claimed for the agent.
type PreprocessResult struct {
	JobID     *uuid.UUID
	QueueType types.QueueType
	OrgID     *uuid.UUID
}

// Claimed reports whether this invocation claimed a job.
func (r PreprocessResult) Claimed() bool { return r.JobID != nil }

// ExecutionLiveness reports whether a job's execution workflow is
// currently running in this process. Orphan reconciliation consults it so
// a job driven by a live manual-dispatch workflow is not stolen back into
// its queue.
type ExecutionLiveness interface {
	IsRunning(jobID uuid.UUID) bool
}

// Preprocessor is the workhorse of dispatch (one activity per firing):
// for one agent it recovers orphans, heartbeats an in-progress job, or
// claims the next queued job.
type Preprocessor struct {
	agents   repositories.AgentRepository
	jobs     repositories.JobRepository
	pauses   repositories.QueuePauseRepository
	manager  *agentmanager.Manager
	liveness ExecutionLiveness
	logger   *zap.Logger
}

// NewPreprocessor creates a Preprocessor.
func NewPreprocessor(
	agents repositories.AgentRepository,
	jobs repositories.JobRepository,
	pauses repositories.QueuePauseRepository,
	manager *agentmanager.Manager,
	liveness ExecutionLiveness,
	logger *zap.Logger,
) *Preprocessor {
	return &Preprocessor{
		agents:   agents,
		jobs:     jobs,
		pauses:   pauses,
		manager:  manager,
		liveness: liveness,
		logger:   logger.Named("preprocess"),
	}
}

// Run executes the preprocess steps in order:
//
//  1. Load the agent; inactive agents short-circuit.
//  2. Orphan reconciliation — one transaction, fatal on error (the engine
//     retries the whole activity).
//  3. In-progress heartbeat — if the agent still owns a job, ping it and
//     stop; one agent never runs two jobs.
//  4. Queue selection — rework before backlog, skipping paused queues,
//     claiming atomically.
func (p *Preprocessor) Run(ctx context.Context, agentID uuid.UUID) (PreprocessResult, error) {
	agent, err := p.agents.GetByID(ctx, agentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return PreprocessResult{}, nil
		}
		return PreprocessResult{}, fmt.Errorf("preprocess: load agent: %w", err)
	}
	if agent.Status != string(types.AgentStatusActive) {
		return PreprocessResult{}, nil
	}
	orgID := agent.OrgID

	// Step 2: orphan reconciliation. Jobs claimed by this agent whose
	// workflow died, or jobs untouched past the cutoff, go back to the
	// tail of their provenance queue.
	cutoff := time.Now().UTC().Add(-OrphanCutoff)
	var skip func(uuid.UUID) bool
	if p.liveness != nil {
		skip = p.liveness.IsRunning
	}
	recovered, err := p.jobs.RecoverOrphans(ctx, orgID, agentID, cutoff, skip)
	if err != nil {
		return PreprocessResult{}, fmt.Errorf("preprocess: orphan reconciliation: %w", err)
	}
	if len(recovered) > 0 {
		metrics.OrphansRecovered.Add(float64(len(recovered)))
	}
	for i := range recovered {
		p.logger.Warn("orphaned job returned to queue",
			zap.String("job_id", recovered[i].ID.String()),
			zap.String("queue_type", recovered[i].QueueType),
			zap.Int("position", recovered[i].OrderInQueue),
			zap.String("agent_id", agentID.String()),
		)
	}

	// Step 3: in-progress heartbeat. After recovery this finds the jobs
	// whose execution is still live (recovery leaves those in progress),
	// plus any job claimed between steps.
	inProgress, err := p.jobs.InProgressByAgent(ctx, agentID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return PreprocessResult{}, fmt.Errorf("preprocess: in-progress lookup: %w", err)
	}
	if inProgress != nil {
		// Stream write failure is non-fatal — the job keeps running and
		// the health-check workflow owns liveness decisions.
		if err := p.manager.SendPing(agentID); err != nil {
			p.logger.Warn("failed to ping agent with in-progress job",
				zap.String("agent_id", agentID.String()),
				zap.String("job_id", inProgress.ID.String()),
				zap.Error(err),
			)
		}
		if err := p.agents.Heartbeat(ctx, agentID, time.Now().UTC()); err != nil {
			p.logger.Warn("failed to touch agent liveness",
				zap.String("agent_id", agentID.String()),
				zap.Error(err),
			)
		}
		return PreprocessResult{OrgID: &orgID}, nil
	}

	// Step 4: queue selection, rework strictly before backlog.
	for _, queue := range types.DispatchQueues {
		paused, err := p.pauses.IsPaused(ctx, orgID, queue)
		if err != nil {
			return PreprocessResult{}, fmt.Errorf("preprocess: pause flag for %s: %w", queue, err)
		}
		if paused {
			continue
		}

		job, err := p.jobs.ClaimNext(ctx, orgID, queue, agentID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				continue
			}
			return PreprocessResult{}, fmt.Errorf("preprocess: claim from %s: %w", queue, err)
		}

		metrics.JobsClaimed.WithLabelValues(string(queue)).Inc()
		p.logger.Info("job claimed",
			zap.String("job_id", job.ID.String()),
			zap.Int("version", job.Version),
			zap.String("queue_type", string(queue)),
			zap.String("agent_id", agentID.String()),
		)
		return PreprocessResult{JobID: &job.ID, QueueType: queue, OrgID: &orgID}, nil
	}

	return PreprocessResult{OrgID: &orgID}, nil
}
