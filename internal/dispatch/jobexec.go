package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/conductor-ci/conductor/internal/agentclient"
	"github.com/conductor-ci/conductor/internal/agentmanager"
	"github.com/conductor-ci/conductor/internal/db"
	"github.com/conductor-ci/conductor/internal/logsink"
	"github.com/conductor-ci/conductor/internal/metrics"
	"github.com/conductor-ci/conductor/internal/repositories"
	"github.com/conductor-ci/conductor/internal/types"
	"github.com/conductor-ci/conductor/internal/workflow"
	proto "github.com/conductor-ci/conductor/proto"
)

const (
	// ExecutionTimeout caps a job-execution workflow end to end.
	ExecutionTimeout = 2 * time.Hour

	// RunTimeout caps a single run of the workflow. A run that exceeds it
	// fails the job; the run is not restarted.
	RunTimeout = time.Hour

	// ExecuteHeartbeatTimeout is the maximum silence tolerated on the
	// execute log stream. Every received log frame resets the clock.
	ExecuteHeartbeatTimeout = 5 * time.Minute

	// cleanupTimeout bounds the terminal cleanup_workspace call, which runs
	// on a fresh context because the workflow context may already be dead.
	cleanupTimeout = 30 * time.Second
)

// ErrAlreadyStarted is returned when a job-execution workflow with the same
// deterministic ID is already in flight.
var ErrAlreadyStarted = errors.New("job execution already started")

// errCancelled marks a user- or engine-initiated cancellation.
var errCancelled = errors.New("job execution cancelled")

// JobExecutor drives one claimed job through execute → verify → PR →
// cleanup via activities that call the agent.
type JobExecutor struct {
	jobs       repositories.JobRepository
	agents     repositories.AgentRepository
	activities repositories.ActivityRepository
	manager    *agentmanager.Manager
	dialer     agentclient.Dialer
	sink       *logsink.Sink
	logger     *zap.Logger

	mu      sync.Mutex
	running map[string]context.CancelCauseFunc // keyed by workflow ID
}

// NewJobExecutor creates a JobExecutor.
func NewJobExecutor(
	jobs repositories.JobRepository,
	agents repositories.AgentRepository,
	activities repositories.ActivityRepository,
	manager *agentmanager.Manager,
	dialer agentclient.Dialer,
	sink *logsink.Sink,
	logger *zap.Logger,
) *JobExecutor {
	return &JobExecutor{
		jobs:       jobs,
		agents:     agents,
		activities: activities,
		manager:    manager,
		dialer:     dialer,
		sink:       sink,
		logger:     logger.Named("jobexec"),
	}
}

// IsRunning reports whether a job-execution workflow for the job is
// currently in flight in this process. Preprocess uses it to exempt live
// executions from orphan reconciliation.
func (e *JobExecutor) IsRunning(jobID uuid.UUID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.running[childWorkflowID(jobID)]
	return ok
}

// Cancel signals the running execution for a job, if any. The workflow
// reacts by sending CancelJob to the agent, running cleanup, and marking
// the job failed with a cancellation marker.
func (e *JobExecutor) Cancel(jobID uuid.UUID) bool {
	e.mu.Lock()
	cancel, ok := e.running[childWorkflowID(jobID)]
	e.mu.Unlock()
	if ok {
		cancel(errCancelled)
	}
	return ok
}

// Execute runs the job-execution workflow for one claimed job. The
// deterministic workflow ID enforces one in-flight execution per job:
// a duplicate start returns ErrAlreadyStarted.
func (e *JobExecutor) Execute(ctx context.Context, jobID, orgID uuid.UUID, queue types.QueueType, agentID uuid.UUID) error {
	wfID := childWorkflowID(jobID)

	cancelCtx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	e.mu.Lock()
	if e.running == nil {
		e.running = make(map[string]context.CancelCauseFunc)
	}
	if _, exists := e.running[wfID]; exists {
		e.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrAlreadyStarted, wfID)
	}
	e.running[wfID] = cancel
	e.mu.Unlock()
	defer func() {
		e.mu.Lock()
		delete(e.running, wfID)
		e.mu.Unlock()
	}()

	execCtx, execCancel := context.WithTimeout(cancelCtx, ExecutionTimeout)
	defer execCancel()
	runCtx, runCancel := context.WithTimeout(execCtx, RunTimeout)
	defer runCancel()

	logger := e.logger.With(
		zap.String("workflow_id", wfID),
		zap.String("job_id", jobID.String()),
		zap.String("agent_id", agentID.String()),
	)

	job, err := e.jobs.Latest(runCtx, jobID, orgID)
	if err != nil {
		return fmt.Errorf("jobexec: load job: %w", err)
	}

	agent, err := e.agents.GetByID(runCtx, agentID)
	if err != nil {
		return fmt.Errorf("jobexec: load agent: %w", err)
	}

	client, err := e.dialer.Dial(runCtx, agent.Hostname, agent.Port)
	if err != nil {
		e.finish(job, types.JobStatusFailed, "execution could not reach agent: "+workflow.Cause(err).Error())
		return fmt.Errorf("jobexec: dial agent: %w", err)
	}
	defer client.Close()

	// Announce the assignment on the stream so the agent can prepare its
	// workspace before the ExecuteJob RPC lands. Best-effort.
	if err := e.manager.SendTaskAssignment(agentID, &proto.TaskAssignment{
		JobId:     jobID.String(),
		QueueType: string(queue),
	}); err != nil {
		logger.Warn("task assignment announce failed", zap.Error(err))
	}

	// cleanup_workspace always runs, even on failure or cancellation, on a
	// fresh context — the workflow context may already be cancelled.
	defer func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), cleanupTimeout)
		defer cleanupCancel()
		if err := client.CleanupWorkspace(cleanupCtx, jobID.String()); err != nil {
			logger.Warn("workspace cleanup failed", zap.Error(err))
		}
	}()

	// ─── Activity 1: execute_job (streaming) ─────────────────────────────

	err = workflow.Retry(runCtx, workflow.DefaultActivityRetry, func(ctx context.Context) error {
		return e.runExecuteActivity(ctx, client, job, logger)
	})
	if err != nil {
		return e.fail(cancelCtx, client, job, "code generation", err, logger)
	}

	// ─── Activity 2: run_verification ────────────────────────────────────

	var verification *proto.RunVerificationResponse
	err = workflow.Retry(runCtx, workflow.DefaultActivityRetry, func(ctx context.Context) error {
		resp, err := client.RunVerification(ctx, jobID.String())
		if err != nil {
			return classifyRPCError(err)
		}
		verification = resp
		return nil
	})
	if err != nil {
		return e.fail(cancelCtx, client, job, "verification", err, logger)
	}

	if err := e.jobs.UpdateFields(runCtx, job.ID, job.Version, map[string]any{
		"code_verification_logs": verification.Logs,
	}); err != nil {
		logger.Warn("failed to persist verification logs", zap.Error(err))
	}
	if !verification.Passed {
		return e.fail(cancelCtx, client, job, "verification", errors.New("verification did not pass"), logger)
	}

	// ─── Activity 3: create_pr (only with a repo and green verification) ─

	if job.RepoID != nil {
		var pr *proto.CreatePRResponse
		err = workflow.Retry(runCtx, workflow.DefaultActivityRetry, func(ctx context.Context) error {
			resp, err := client.CreatePR(ctx, &proto.CreatePRRequest{
				JobId:  jobID.String(),
				RepoId: job.RepoID.String(),
				Branch: prBranch(job),
				Title:  job.Name,
				Body:   prBody(job),
			})
			if err != nil {
				return classifyRPCError(err)
			}
			if !resp.Success {
				return fmt.Errorf("agent rejected pr creation: %s", resp.Message)
			}
			pr = resp
			return nil
		})
		if err != nil {
			return e.fail(cancelCtx, client, job, "pr creation", err, logger)
		}

		if err := e.jobs.UpdateFields(runCtx, job.ID, job.Version, map[string]any{
			"pr_link": pr.PrLink,
		}); err != nil {
			logger.Warn("failed to persist pr link", zap.Error(err))
		}
		job.PRLink = pr.PrLink
	}

	// ─── Terminal: mark completed ────────────────────────────────────────

	e.finish(job, types.JobStatusCompleted, "execution completed"+prSuffix(job))
	logger.Info("job execution completed")
	return nil
}

// runExecuteActivity performs one attempt of the streaming execute
// activity. A framework-level heartbeat fires on every received log frame;
// silence past ExecuteHeartbeatTimeout cancels this attempt (retriable).
func (e *JobExecutor) runExecuteActivity(ctx context.Context, client agentclient.Client, job *db.Job, logger *zap.Logger) error {
	hbCtx, monitor := workflow.NewHeartbeatMonitor(ctx, ExecuteHeartbeatTimeout)
	defer monitor.Stop()

	req := &proto.ExecuteJobRequest{
		JobId:  job.ID.String(),
		Prompt: job.Prompt,
	}
	if job.RepoID != nil {
		req.RepoId = job.RepoID.String()
	}

	err := client.ExecuteJob(hbCtx, req, func(msg *proto.LogMessage) {
		monitor.Beat()
		if err := e.sink.AppendFrame(ctx, job.ID, job.Version, job.OrgID, msg); err != nil {
			logger.Warn("failed to persist log frame", zap.Error(err))
		}
	})
	if err != nil {
		if workflow.TimedOut(hbCtx) {
			// The attempt went silent — retriable, like the engine
			// cancelling an activity on heartbeat_timeout expiry.
			return fmt.Errorf("%w after %s", workflow.ErrHeartbeatTimeout, ExecuteHeartbeatTimeout)
		}
		return classifyRPCError(err)
	}
	return nil
}

// fail handles a terminal activity failure: on cancellation it tells the
// agent to stop first, then records the innermost cause on the job and in
// the activity audit log.
func (e *JobExecutor) fail(ctx context.Context, client agentclient.Client, job *db.Job, stage string, err error, logger *zap.Logger) error {
	cause := workflow.Cause(err)

	if errors.Is(context.Cause(ctx), errCancelled) {
		cancelCtx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
		defer cancel()
		if cerr := client.CancelJob(cancelCtx, job.ID.String()); cerr != nil {
			logger.Warn("cancel job rpc failed", zap.Error(cerr))
		}
		e.finish(job, types.JobStatusFailed, "execution cancelled during "+stage)
		logger.Info("job execution cancelled", zap.String("stage", stage))
		return fmt.Errorf("jobexec: cancelled during %s", stage)
	}

	e.finish(job, types.JobStatusFailed, stage+" failed: "+cause.Error())
	logger.Error("job execution failed",
		zap.String("stage", stage),
		zap.Error(err),
	)
	return fmt.Errorf("jobexec: %s: %w", stage, err)
}

// finish writes the terminal state: status, cleared queue assignment and
// agent, a timestamped updates line, an activity audit row, and a status
// broadcast. Runs on a fresh context so it works after cancellation.
func (e *JobExecutor) finish(job *db.Job, terminal types.JobStatus, line string) {
	ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
	defer cancel()

	stamped := time.Now().UTC().Format(time.RFC3339) + " " + line
	updates := job.Updates
	if updates != "" && !strings.HasSuffix(updates, "\n") {
		updates += "\n"
	}
	updates += stamped + "\n"

	if err := e.jobs.UpdateFields(ctx, job.ID, job.Version, map[string]any{
		"status":         terminal,
		"queue_type":     types.QueueNone,
		"order_in_queue": -1,
		"agent_id":       nil,
		"updates":        updates,
	}); err != nil {
		e.logger.Error("failed to write terminal job state",
			zap.String("job_id", job.ID.String()),
			zap.String("status", string(terminal)),
			zap.Error(err),
		)
	}

	activity := &db.Activity{
		JobID:     job.ID,
		OrgID:     job.OrgID,
		Name:      "job_execution",
		Summary:   line,
		CreatedBy: job.UpdatedBy,
		UpdatedBy: job.UpdatedBy,
	}
	if err := e.activities.Create(ctx, activity); err != nil {
		e.logger.Warn("failed to write execution activity",
			zap.String("job_id", job.ID.String()),
			zap.Error(err),
		)
	}

	metrics.JobsFinished.WithLabelValues(string(terminal)).Inc()
	e.sink.PublishStatus(job.ID, string(terminal), line)
}

// classifyRPCError maps permanent gRPC failures to non-retriable errors so
// the retry loop stops burning attempts on them.
func classifyRPCError(err error) error {
	switch status.Code(err) {
	case codes.NotFound, codes.Unauthenticated, codes.InvalidArgument, codes.FailedPrecondition:
		return workflow.NonRetriable(err)
	default:
		return err
	}
}

// prBranch derives the deterministic branch name for a job's pull request.
func prBranch(job *db.Job) string {
	short := strings.ReplaceAll(job.ID.String(), "-", "")[:12]
	return fmt.Sprintf("conductor/job-%s-v%d", short, job.Version)
}

// prBody builds the PR description from the job's prompt and comment trail.
func prBody(job *db.Job) string {
	var b strings.Builder
	b.WriteString("Automated change generated for job ")
	b.WriteString(job.ID.String())
	b.WriteString(".\n\nPrompt:\n")
	b.WriteString(job.Prompt)
	return b.String()
}

// prSuffix renders the PR link for the terminal updates line, if present.
func prSuffix(job *db.Job) string {
	if job.PRLink == "" {
		return ""
	}
	return ", pr: " + job.PRLink
}
