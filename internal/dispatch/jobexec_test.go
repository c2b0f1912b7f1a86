package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/conductor-ci/conductor/internal/agentclient"
	"github.com/conductor-ci/conductor/internal/agentmanager"
	"github.com/conductor-ci/conductor/internal/db"
	"github.com/conductor-ci/conductor/internal/logsink"
	"github.com/conductor-ci/conductor/internal/repositories"
	"github.com/conductor-ci/conductor/internal/types"
	"github.com/conductor-ci/conductor/internal/websocket"
	proto "github.com/conductor-ci/conductor/proto"
)

// fakeAgentClient scripts the agent-side RPC surface for executor tests.
type fakeAgentClient struct {
	logs         []*proto.LogMessage
	executeErr   error
	executeGate  chan struct{} // when non-nil, ExecuteJob blocks until closed
	verification *proto.RunVerificationResponse
	pr           *proto.CreatePRResponse

	cancelled bool
	cleaned   bool
}

func (f *fakeAgentClient) ExecuteJob(ctx context.Context, req *proto.ExecuteJobRequest, onLog agentclient.LogFunc) error {
	if f.executeGate != nil {
		select {
		case <-f.executeGate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	for _, msg := range f.logs {
		onLog(msg)
	}
	return f.executeErr
}

func (f *fakeAgentClient) CancelJob(ctx context.Context, jobID string) error {
	f.cancelled = true
	return nil
}

func (f *fakeAgentClient) RunVerification(ctx context.Context, jobID string) (*proto.RunVerificationResponse, error) {
	if f.verification == nil {
		return &proto.RunVerificationResponse{Passed: true}, nil
	}
	return f.verification, nil
}

func (f *fakeAgentClient) CreatePR(ctx context.Context, req *proto.CreatePRRequest) (*proto.CreatePRResponse, error) {
	if f.pr == nil {
		return &proto.CreatePRResponse{Success: true, PrLink: "https://git.example/pr/1"}, nil
	}
	return f.pr, nil
}

func (f *fakeAgentClient) CleanupWorkspace(ctx context.Context, jobID string) error {
	f.cleaned = true
	return nil
}

func (f *fakeAgentClient) HealthCheck(ctx context.Context, agentID string) error { return nil }
func (f *fakeAgentClient) Close() error                                          { return nil }

// fakeDialer hands out one scripted client regardless of address.
type fakeDialer struct {
	client *fakeAgentClient
	err    error
}

func (f *fakeDialer) Dial(ctx context.Context, host string, port int) (agentclient.Client, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.client, nil
}

type execFixture struct {
	jobs       repositories.JobRepository
	agents     repositories.AgentRepository
	activities repositories.ActivityRepository
	client     *fakeAgentClient
	executor   *JobExecutor
	orgID      uuid.UUID
	agentID    uuid.UUID
}

func newExecFixture(t *testing.T) *execFixture {
	t.Helper()
	gdb := db.NewTest(t)
	logger := zap.NewNop()
	hub := websocket.NewHub()

	f := &execFixture{
		jobs:       repositories.NewJobRepository(gdb),
		agents:     repositories.NewAgentRepository(gdb),
		activities: repositories.NewActivityRepository(gdb),
		client:     &fakeAgentClient{},
		orgID:      uuid.New(),
	}

	agent := &db.Agent{
		OrgID:    f.orgID,
		Name:     "agent",
		Hostname: "127.0.0.1",
		Port:     7070,
		Status:   string(types.AgentStatusActive),
	}
	require.NoError(t, f.agents.Create(context.Background(), agent))
	f.agentID = agent.ID

	sink := logsink.New(f.jobs, hub, logger)
	f.executor = NewJobExecutor(
		f.jobs, f.agents, f.activities,
		agentmanager.New(logger),
		&fakeDialer{client: f.client},
		sink, logger,
	)
	return f
}

// claimJob creates a queued job with a repo and claims it for the fixture
// agent, mirroring what preprocess does before Execute runs.
func (f *execFixture) claimJob(t *testing.T) *db.Job {
	t.Helper()
	ctx := context.Background()
	creator := uuid.New()
	repoID := uuid.New()

	job := &db.Job{
		OrgID:                f.orgID,
		Name:                 "add retries to the uploader",
		Status:               string(types.JobStatusQueued),
		Priority:             string(types.PriorityMedium),
		QueueType:            string(types.QueueNone),
		OrderInQueue:         -1,
		Source:               "api",
		Prompt:               "add retries to the uploader",
		SourceMetadata:       "{}",
		RepoID:               &repoID,
		UserAcceptanceStatus: string(types.AcceptanceNotReviewed),
		UserComments:         "[]",
		CreatedBy:            creator,
		UpdatedBy:            creator,
	}
	require.NoError(t, f.jobs.Create(ctx, job))
	require.NoError(t, f.jobs.InsertAtTail(ctx, job.ID, f.orgID, types.QueueBacklog))

	claimed, err := f.jobs.ClaimNext(ctx, f.orgID, types.QueueBacklog, f.agentID)
	require.NoError(t, err)
	return claimed
}

func TestExecuteHappyPath(t *testing.T) {
	f := newExecFixture(t)
	ctx := context.Background()

	f.client.logs = []*proto.LogMessage{
		{Level: proto.LogLevel_LOG_LEVEL_INFO, Message: "analyzing repo", Stage: "generate", Timestamp: timestamppb.Now()},
		{Level: proto.LogLevel_LOG_LEVEL_INFO, Message: "writing patch", Stage: "generate", Timestamp: timestamppb.Now()},
	}
	f.client.verification = &proto.RunVerificationResponse{Passed: true, Logs: "all checks green"}

	job := f.claimJob(t)
	require.NoError(t, f.executor.Execute(ctx, job.ID, f.orgID, types.QueueBacklog, f.agentID))

	final, err := f.jobs.Latest(ctx, job.ID, f.orgID)
	require.NoError(t, err)
	require.Equal(t, string(types.JobStatusCompleted), final.Status)
	require.Equal(t, string(types.QueueNone), final.QueueType)
	require.Nil(t, final.AgentID)
	require.Equal(t, "all checks green", final.CodeVerificationLogs)
	require.Equal(t, "https://git.example/pr/1", final.PRLink)
	require.Contains(t, final.Updates, "execution completed")

	logs, err := f.jobs.GetLogs(ctx, job.ID, job.Version)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	require.Equal(t, "analyzing repo", logs[0].Message)

	require.True(t, f.client.cleaned, "cleanup_workspace must always run")

	activities, err := f.activities.ListByJob(ctx, job.ID, f.orgID)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	require.Equal(t, "job_execution", activities[0].Name)
}

func TestExecuteVerificationFailureMarksJobFailed(t *testing.T) {
	f := newExecFixture(t)
	ctx := context.Background()

	f.client.verification = &proto.RunVerificationResponse{Passed: false, Logs: "2 tests failing"}

	job := f.claimJob(t)
	err := f.executor.Execute(ctx, job.ID, f.orgID, types.QueueBacklog, f.agentID)
	require.Error(t, err)

	final, lerr := f.jobs.Latest(ctx, job.ID, f.orgID)
	require.NoError(t, lerr)
	require.Equal(t, string(types.JobStatusFailed), final.Status)
	require.Equal(t, string(types.QueueNone), final.QueueType)
	require.Contains(t, final.Updates, "verification")
	require.Empty(t, final.PRLink, "no PR on failed verification")
	require.True(t, f.client.cleaned, "cleanup_workspace must run on failure")
}

func TestExecuteExtractsInnermostCause(t *testing.T) {
	f := newExecFixture(t)
	ctx := context.Background()

	rootCause := errors.New("workspace disk full")
	f.client.executeErr = rootCause

	job := f.claimJob(t)
	err := f.executor.Execute(ctx, job.ID, f.orgID, types.QueueBacklog, f.agentID)
	require.Error(t, err)

	final, lerr := f.jobs.Latest(ctx, job.ID, f.orgID)
	require.NoError(t, lerr)
	require.Equal(t, string(types.JobStatusFailed), final.Status)
	// The innermost cause string, not the retry/engine wrapping, lands in
	// the updates trail.
	require.Contains(t, final.Updates, "workspace disk full")
	require.NotContains(t, final.Updates, "attempts failed")
}

func TestExecuteRejectsDuplicateWorkflowID(t *testing.T) {
	f := newExecFixture(t)
	ctx := context.Background()

	gate := make(chan struct{})
	f.client.executeGate = gate

	job := f.claimJob(t)

	done := make(chan error, 1)
	go func() {
		done <- f.executor.Execute(ctx, job.ID, f.orgID, types.QueueBacklog, f.agentID)
	}()

	// Wait until the first execution is registered and blocked in the
	// execute activity.
	require.Eventually(t, func() bool {
		f.executor.mu.Lock()
		_, running := f.executor.running[childWorkflowID(job.ID)]
		f.executor.mu.Unlock()
		return running
	}, time.Second, 10*time.Millisecond)

	err := f.executor.Execute(ctx, job.ID, f.orgID, types.QueueBacklog, f.agentID)
	require.ErrorIs(t, err, ErrAlreadyStarted)

	close(gate)
	require.NoError(t, <-done)
}

func TestCancelWithNothingRunning(t *testing.T) {
	f := newExecFixture(t)
	require.False(t, f.executor.Cancel(uuid.New()))
}
