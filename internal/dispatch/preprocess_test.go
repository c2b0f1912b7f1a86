package dispatch

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/conductor-ci/conductor/internal/agentmanager"
	"github.com/conductor-ci/conductor/internal/db"
	"github.com/conductor-ci/conductor/internal/repositories"
	"github.com/conductor-ci/conductor/internal/types"
)

// fakeLiveness marks a set of job IDs as having a live execution workflow.
type fakeLiveness struct {
	mu      sync.Mutex
	running map[uuid.UUID]bool
}

func (f *fakeLiveness) IsRunning(jobID uuid.UUID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.running[jobID]
}

func (f *fakeLiveness) set(jobID uuid.UUID, running bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.running == nil {
		f.running = make(map[uuid.UUID]bool)
	}
	f.running[jobID] = running
}

type preprocessFixture struct {
	gdb      *gorm.DB
	agents   repositories.AgentRepository
	jobs     repositories.JobRepository
	pauses   repositories.QueuePauseRepository
	manager  *agentmanager.Manager
	liveness *fakeLiveness
	pre      *Preprocessor
	orgID    uuid.UUID
}

func newPreprocessFixture(t *testing.T) *preprocessFixture {
	t.Helper()
	gdb := db.NewTest(t)
	logger := zap.NewNop()

	f := &preprocessFixture{
		gdb:      gdb,
		agents:   repositories.NewAgentRepository(gdb),
		jobs:     repositories.NewJobRepository(gdb),
		pauses:   repositories.NewQueuePauseRepository(gdb),
		manager:  agentmanager.New(logger),
		liveness: &fakeLiveness{},
		orgID:    uuid.New(),
	}
	f.pre = NewPreprocessor(f.agents, f.jobs, f.pauses, f.manager, f.liveness, logger)
	return f
}

func (f *preprocessFixture) createAgent(t *testing.T, status types.AgentStatus) *db.Agent {
	t.Helper()
	agent := &db.Agent{
		OrgID:    f.orgID,
		Name:     "agent",
		Hostname: "host-" + uuid.NewString()[:8],
		Status:   string(status),
	}
	require.NoError(t, f.agents.Create(context.Background(), agent))
	return agent
}

func (f *preprocessFixture) enqueueJob(t *testing.T, name string, queue types.QueueType) *db.Job {
	t.Helper()
	ctx := context.Background()
	creator := uuid.New()
	job := &db.Job{
		OrgID:                f.orgID,
		Name:                 name,
		Status:               string(types.JobStatusQueued),
		Priority:             string(types.PriorityMedium),
		QueueType:            string(types.QueueNone),
		OrderInQueue:         -1,
		Source:               "api",
		Prompt:               "prompt",
		SourceMetadata:       "{}",
		UserAcceptanceStatus: string(types.AcceptanceNotReviewed),
		UserComments:         "[]",
		CreatedBy:            creator,
		UpdatedBy:            creator,
	}
	require.NoError(t, f.jobs.Create(ctx, job))
	require.NoError(t, f.jobs.InsertAtTail(ctx, job.ID, f.orgID, queue))
	return job
}

func TestPreprocessInactiveAgentDoesNothing(t *testing.T) {
	f := newPreprocessFixture(t)
	agent := f.createAgent(t, types.AgentStatusOffline)
	f.enqueueJob(t, "j1", types.QueueBacklog)

	result, err := f.pre.Run(context.Background(), agent.ID)
	require.NoError(t, err)
	require.False(t, result.Claimed())
	require.Nil(t, result.OrgID)
}

func TestPreprocessClaimsBacklogHead(t *testing.T) {
	f := newPreprocessFixture(t)
	agent := f.createAgent(t, types.AgentStatusActive)
	j1 := f.enqueueJob(t, "j1", types.QueueBacklog)
	f.enqueueJob(t, "j2", types.QueueBacklog)

	result, err := f.pre.Run(context.Background(), agent.ID)
	require.NoError(t, err)
	require.True(t, result.Claimed())
	require.Equal(t, j1.ID, *result.JobID)
	require.Equal(t, types.QueueBacklog, result.QueueType)
	require.Equal(t, f.orgID, *result.OrgID)
}

func TestPreprocessReworkHasStrictPriority(t *testing.T) {
	f := newPreprocessFixture(t)
	agent := f.createAgent(t, types.AgentStatusActive)
	f.enqueueJob(t, "backlog-job", types.QueueBacklog)
	rework := f.enqueueJob(t, "rework-job", types.QueueRework)

	result, err := f.pre.Run(context.Background(), agent.ID)
	require.NoError(t, err)
	require.True(t, result.Claimed())
	require.Equal(t, rework.ID, *result.JobID)
	require.Equal(t, types.QueueRework, result.QueueType)
}

func TestPreprocessSkipsPausedQueue(t *testing.T) {
	f := newPreprocessFixture(t)
	ctx := context.Background()
	agent := f.createAgent(t, types.AgentStatusActive)
	f.enqueueJob(t, "rework-job", types.QueueRework)
	backlog := f.enqueueJob(t, "backlog-job", types.QueueBacklog)

	require.NoError(t, f.pauses.SetPaused(ctx, f.orgID, types.QueueRework, true))

	result, err := f.pre.Run(ctx, agent.ID)
	require.NoError(t, err)
	require.True(t, result.Claimed())
	require.Equal(t, backlog.ID, *result.JobID)

	// Both paused: nothing is claimed.
	require.NoError(t, f.pauses.SetPaused(ctx, f.orgID, types.QueueBacklog, true))
	f.enqueueJob(t, "another", types.QueueBacklog)

	agent2 := f.createAgent(t, types.AgentStatusActive)
	result, err = f.pre.Run(ctx, agent2.ID)
	require.NoError(t, err)
	require.False(t, result.Claimed())
}

func TestPreprocessNeverClaimsSecondJobForBusyAgent(t *testing.T) {
	f := newPreprocessFixture(t)
	ctx := context.Background()
	agent := f.createAgent(t, types.AgentStatusActive)
	f.enqueueJob(t, "j1", types.QueueBacklog)
	f.enqueueJob(t, "j2", types.QueueBacklog)

	first, err := f.pre.Run(ctx, agent.ID)
	require.NoError(t, err)
	require.True(t, first.Claimed())

	// The claimed job's execution workflow is alive (e.g. a manual
	// dispatch in flight), so the second run must take the heartbeat path
	// instead of reclaiming the job or claiming another one.
	f.liveness.set(*first.JobID, true)
	second, err := f.pre.Run(ctx, agent.ID)
	require.NoError(t, err)
	require.False(t, second.Claimed())
	require.NotNil(t, second.OrgID)

	inProgress, err := f.jobs.InProgressByAgent(ctx, agent.ID)
	require.NoError(t, err)
	require.Equal(t, *first.JobID, inProgress.ID)
}

func TestPreprocessRecoversStaleOrphanThenClaims(t *testing.T) {
	f := newPreprocessFixture(t)
	ctx := context.Background()

	// Another agent claimed a job, then vanished.
	deadAgent := f.createAgent(t, types.AgentStatusActive)
	j1 := f.enqueueJob(t, "j1", types.QueueBacklog)
	claimed, err := f.jobs.ClaimNext(ctx, f.orgID, types.QueueBacklog, deadAgent.ID)
	require.NoError(t, err)
	require.Equal(t, j1.ID, claimed.ID)

	stale := time.Now().UTC().Add(-10 * time.Minute)
	require.NoError(t, f.gdb.Model(&db.Job{}).
		Where("id = ? AND version = ?", claimed.ID, claimed.Version).
		UpdateColumn("updated_at", stale).Error)

	// A different agent's preprocess recovers the orphan and claims it.
	agent := f.createAgent(t, types.AgentStatusActive)
	result, err := f.pre.Run(ctx, agent.ID)
	require.NoError(t, err)
	require.True(t, result.Claimed())
	require.Equal(t, j1.ID, *result.JobID)
	require.Equal(t, types.QueueBacklog, result.QueueType)

	reclaimed, err := f.jobs.InProgressByAgent(ctx, agent.ID)
	require.NoError(t, err)
	require.Equal(t, agent.ID, *reclaimed.AgentID)
}

func TestPreprocessRecoversOwnOrphanBeforeClaiming(t *testing.T) {
	f := newPreprocessFixture(t)
	ctx := context.Background()

	agent := f.createAgent(t, types.AgentStatusActive)
	j1 := f.enqueueJob(t, "j1", types.QueueBacklog)
	_, err := f.jobs.ClaimNext(ctx, f.orgID, types.QueueBacklog, agent.ID)
	require.NoError(t, err)

	// Simulate the claiming workflow dying: the job is still assigned to
	// this agent with a fresh timestamp. The agent's own preprocess resets
	// it to queued and immediately reclaims it — the job is never lost.
	result, err := f.pre.Run(ctx, agent.ID)
	require.NoError(t, err)
	require.True(t, result.Claimed())
	require.Equal(t, j1.ID, *result.JobID)
}
