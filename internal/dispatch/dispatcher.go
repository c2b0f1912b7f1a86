package dispatch

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/conductor-ci/conductor/internal/types"
	"github.com/conductor-ci/conductor/internal/workflow"
)

const (
	// preprocessTimeout bounds one preprocess activity attempt.
	preprocessTimeout = time.Minute

	// preprocessRetryAttempts is the maximum number of preprocess activity attempts.
	preprocessRetryAttempts = 3
)

// DispatchResult summarizes one firing of the dispatch workflow.
type DispatchResult struct {
	Processed bool
	JobID     *uuid.UUID
	QueueType types.QueueType
}

// Dispatcher is the short-lived per-agent workflow body fired every minute:
// run preprocess, and if it claimed a job, run the child job-execution
// workflow to completion.
type Dispatcher struct {
	pre    *Preprocessor
	exec   *JobExecutor
	logger *zap.Logger
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(pre *Preprocessor, exec *JobExecutor, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		pre:    pre,
		exec:   exec,
		logger: logger.Named("dispatcher"),
	}
}

// Task adapts Run to the workflow.AgentTask signature used by the engine.
func (d *Dispatcher) Task() workflow.AgentTask {
	return func(ctx context.Context, agentID uuid.UUID) {
		d.Run(ctx, agentID)
	}
}

// Run executes one dispatch firing for an agent.
//
// Preprocess runs with a one-minute timeout and up to three attempts with
// exponential backoff. A claimed job spawns the child job-execution
// workflow with the deterministic ID job-execution-<job_id>; child-start
// failure (already started, engine unavailable) is logged but does not
// poison the parent — next minute's firing reconciles via orphan detection.
func (d *Dispatcher) Run(ctx context.Context, agentID uuid.UUID) DispatchResult {
	var result PreprocessResult

	retry := workflow.RetryPolicy{
		InitialInterval: time.Second,
		MaxInterval:     30 * time.Second,
		MaxAttempts:     preprocessRetryAttempts,
	}
	err := workflow.Retry(ctx, retry, func(ctx context.Context) error {
		attemptCtx, cancel := context.WithTimeout(ctx, preprocessTimeout)
		defer cancel()
		var err error
		result, err = d.pre.Run(attemptCtx, agentID)
		return err
	})
	if err != nil {
		d.logger.Error("preprocess failed after retries",
			zap.String("agent_id", agentID.String()),
			zap.Error(err),
		)
		return DispatchResult{Processed: false}
	}

	if !result.Claimed() {
		return DispatchResult{Processed: false}
	}

	jobID := *result.JobID
	if err := d.exec.Execute(ctx, jobID, *result.OrgID, result.QueueType, agentID); err != nil {
		d.logger.Error("job execution workflow failed",
			zap.String("workflow_id", childWorkflowID(jobID)),
			zap.String("job_id", jobID.String()),
			zap.String("agent_id", agentID.String()),
			zap.Error(err),
		)
	}

	return DispatchResult{Processed: true, JobID: &jobID, QueueType: result.QueueType}
}

// childWorkflowID is the deterministic job-execution workflow identifier —
// derived from the job ID alone, so every version of a job shares it.
func childWorkflowID(jobID uuid.UUID) string {
	return "job-execution-" + jobID.String()
}
