package dispatch

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/conductor-ci/conductor/internal/agentmanager"
	"github.com/conductor-ci/conductor/internal/db"
	"github.com/conductor-ci/conductor/internal/logsink"
	"github.com/conductor-ci/conductor/internal/repositories"
	"github.com/conductor-ci/conductor/internal/types"
	"github.com/conductor-ci/conductor/internal/websocket"
)

type dispatcherFixture struct {
	*preprocessFixture
	client     *fakeAgentClient
	dispatcher *Dispatcher
}

func newDispatcherFixture(t *testing.T) *dispatcherFixture {
	t.Helper()
	pre := newPreprocessFixture(t)
	logger := zap.NewNop()

	client := &fakeAgentClient{}
	sink := logsink.New(pre.jobs, websocket.NewHub(), logger)
	executor := NewJobExecutor(
		pre.jobs,
		pre.agents,
		repositories.NewActivityRepository(pre.gdb),
		agentmanager.New(logger),
		&fakeDialer{client: client},
		sink,
		logger,
	)

	return &dispatcherFixture{
		preprocessFixture: pre,
		client:            client,
		dispatcher:        NewDispatcher(pre.pre, executor, logger),
	}
}

func TestDispatchFiringsDrainBacklogInOrder(t *testing.T) {
	f := newDispatcherFixture(t)
	ctx := context.Background()

	agent := f.createAgent(t, types.AgentStatusActive)
	j1 := f.enqueueJob(t, "j1", types.QueueBacklog)
	j2 := f.enqueueJob(t, "j2", types.QueueBacklog)
	j3 := f.enqueueJob(t, "j3", types.QueueBacklog)

	expected := []uuid.UUID{j1.ID, j2.ID, j3.ID}
	for i, want := range expected {
		result := f.dispatcher.Run(ctx, agent.ID)
		require.True(t, result.Processed, "firing %d claimed nothing", i)
		require.Equal(t, want, *result.JobID, "firing %d broke FIFO order", i)
	}

	// A fourth firing finds an empty queue.
	result := f.dispatcher.Run(ctx, agent.ID)
	require.False(t, result.Processed)

	for _, id := range expected {
		job, err := f.jobs.Latest(ctx, id, f.orgID)
		require.NoError(t, err)
		require.Equal(t, string(types.JobStatusCompleted), job.Status)
		require.Equal(t, string(types.QueueNone), job.QueueType)
		require.Equal(t, -1, job.OrderInQueue)
	}
}

func TestDispatchClaimsReworkBeforeBacklog(t *testing.T) {
	f := newDispatcherFixture(t)
	ctx := context.Background()

	agent := f.createAgent(t, types.AgentStatusActive)
	f.enqueueJob(t, "b1", types.QueueBacklog)
	f.enqueueJob(t, "b2", types.QueueBacklog)

	// An unrelated finished job comes back as rework and preempts the
	// backlog on the next firing.
	rework := f.enqueueJob(t, "jr", types.QueueRework)

	result := f.dispatcher.Run(ctx, agent.ID)
	require.True(t, result.Processed)
	require.Equal(t, rework.ID, *result.JobID)
	require.Equal(t, types.QueueRework, result.QueueType)
}

func TestDispatchReportsNothingForIdleAgent(t *testing.T) {
	f := newDispatcherFixture(t)
	agent := f.createAgent(t, types.AgentStatusActive)

	result := f.dispatcher.Run(context.Background(), agent.ID)
	require.False(t, result.Processed)
	require.Nil(t, result.JobID)
}

// Scenario: orphan recovery end to end. An agent claims a job and dies;
// after the cutoff a later firing on another agent re-dispatches it.
func TestDispatchRedispatchesOrphan(t *testing.T) {
	f := newDispatcherFixture(t)
	ctx := context.Background()

	dead := f.createAgent(t, types.AgentStatusActive)
	job := f.enqueueJob(t, "doomed", types.QueueBacklog)
	claimed, err := f.jobs.ClaimNext(ctx, f.orgID, types.QueueBacklog, dead.ID)
	require.NoError(t, err)

	require.NoError(t, f.gdb.Model(&db.Job{}).
		Where("id = ? AND version = ?", claimed.ID, claimed.Version).
		UpdateColumn("updated_at", time.Now().UTC().Add(-10*time.Minute)).Error)

	survivor := f.createAgent(t, types.AgentStatusActive)
	result := f.dispatcher.Run(ctx, survivor.ID)
	require.True(t, result.Processed)
	require.Equal(t, job.ID, *result.JobID)

	final, err := f.jobs.Latest(ctx, job.ID, f.orgID)
	require.NoError(t, err)
	require.Equal(t, string(types.JobStatusCompleted), final.Status)
}
