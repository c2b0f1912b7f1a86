package repositories

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/conductor-ci/conductor/internal/db"
	"github.com/conductor-ci/conductor/internal/types"
)

func newJobRepo(t *testing.T) (*gormJobRepository, *gorm.DB) {
	t.Helper()
	gdb := db.NewTest(t)
	return &gormJobRepository{db: gdb}, gdb
}

// createQueuedJob creates a job and appends it to the given queue.
func createQueuedJob(t *testing.T, repo *gormJobRepository, orgID uuid.UUID, name string, queue types.QueueType) *db.Job {
	t.Helper()
	ctx := context.Background()
	creator := uuid.New()

	job := &db.Job{
		OrgID:                orgID,
		Name:                 name,
		Status:               string(types.JobStatusQueued),
		Priority:             string(types.PriorityMedium),
		QueueType:            string(types.QueueNone),
		OrderInQueue:         -1,
		Source:               "api",
		Prompt:               "prompt for " + name,
		SourceMetadata:       "{}",
		UserAcceptanceStatus: string(types.AcceptanceNotReviewed),
		UserComments:         "[]",
		CreatedBy:            creator,
		UpdatedBy:            creator,
	}
	require.NoError(t, repo.Create(ctx, job))
	require.NoError(t, repo.InsertAtTail(ctx, job.ID, orgID, queue))

	reloaded, err := repo.Latest(ctx, job.ID, orgID)
	require.NoError(t, err)
	return reloaded
}

// queuedPositions returns the order_in_queue values of the queued
// latest-version rows of (org, queue), sorted ascending.
func queuedPositions(t *testing.T, repo *gormJobRepository, orgID uuid.UUID, queue types.QueueType) []int {
	t.Helper()
	var jobs []db.Job
	err := repo.db.
		Scopes(latestOnly).
		Where("org_id = ? AND status = ? AND queue_type = ?", orgID, types.JobStatusQueued, queue).
		Order("order_in_queue ASC").
		Find(&jobs).Error
	require.NoError(t, err)

	positions := make([]int, len(jobs))
	for i := range jobs {
		positions[i] = jobs[i].OrderInQueue
	}
	return positions
}

// requireContiguous asserts the positions form the exact range [0, n-1].
func requireContiguous(t *testing.T, positions []int) {
	t.Helper()
	for i, p := range positions {
		require.Equal(t, i, p, "positions must be the contiguous range [0, n-1], got %v", positions)
	}
}

func TestInsertAtTailAssignsContiguousPositions(t *testing.T) {
	repo, _ := newJobRepo(t)
	orgID := uuid.New()

	for i := 0; i < 5; i++ {
		job := createQueuedJob(t, repo, orgID, fmt.Sprintf("job-%d", i), types.QueueBacklog)
		require.Equal(t, i, job.OrderInQueue)
		require.Equal(t, string(types.QueueBacklog), job.QueueType)
	}

	requireContiguous(t, queuedPositions(t, repo, orgID, types.QueueBacklog))

	// Queues of different orgs and types are independent.
	otherOrg := uuid.New()
	job := createQueuedJob(t, repo, otherOrg, "other-org", types.QueueBacklog)
	require.Equal(t, 0, job.OrderInQueue)

	rework := createQueuedJob(t, repo, orgID, "rework-0", types.QueueRework)
	require.Equal(t, 0, rework.OrderInQueue)
}

func TestClaimNextPopsHeadAndShifts(t *testing.T) {
	repo, _ := newJobRepo(t)
	ctx := context.Background()
	orgID := uuid.New()
	agentID := uuid.New()

	j1 := createQueuedJob(t, repo, orgID, "j1", types.QueueBacklog)
	createQueuedJob(t, repo, orgID, "j2", types.QueueBacklog)
	createQueuedJob(t, repo, orgID, "j3", types.QueueBacklog)

	claimed, err := repo.ClaimNext(ctx, orgID, types.QueueBacklog, agentID)
	require.NoError(t, err)
	require.Equal(t, j1.ID, claimed.ID)
	require.Equal(t, string(types.JobStatusInProgress), claimed.Status)
	require.NotNil(t, claimed.AgentID)
	require.Equal(t, agentID, *claimed.AgentID)
	require.Equal(t, -1, claimed.OrderInQueue)
	// queue_type survives as provenance for orphan recovery.
	require.Equal(t, string(types.QueueBacklog), claimed.QueueType)

	requireContiguous(t, queuedPositions(t, repo, orgID, types.QueueBacklog))
	require.Len(t, queuedPositions(t, repo, orgID, types.QueueBacklog), 2)
}

func TestClaimNextEmptyQueue(t *testing.T) {
	repo, _ := newJobRepo(t)
	_, err := repo.ClaimNext(context.Background(), uuid.New(), types.QueueBacklog, uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestClaimNextConcurrentAgentsNeverShareAJob(t *testing.T) {
	repo, _ := newJobRepo(t)
	ctx := context.Background()
	orgID := uuid.New()

	const jobCount = 8
	for i := 0; i < jobCount; i++ {
		createQueuedJob(t, repo, orgID, fmt.Sprintf("job-%d", i), types.QueueBacklog)
	}

	var mu sync.Mutex
	claims := make(map[uuid.UUID]uuid.UUID) // job -> agent

	var wg sync.WaitGroup
	for a := 0; a < 4; a++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			agentID := uuid.New()
			for {
				job, err := repo.ClaimNext(ctx, orgID, types.QueueBacklog, agentID)
				if err != nil {
					return
				}
				mu.Lock()
				_, dup := claims[job.ID]
				require.False(t, dup, "job %s claimed twice", job.ID)
				claims[job.ID] = agentID
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Len(t, claims, jobCount)
	require.Empty(t, queuedPositions(t, repo, orgID, types.QueueBacklog))
}

func TestMoveToPositionIsAPermutation(t *testing.T) {
	repo, _ := newJobRepo(t)
	ctx := context.Background()
	orgID := uuid.New()

	var jobs []*db.Job
	for i := 0; i < 4; i++ {
		jobs = append(jobs, createQueuedJob(t, repo, orgID, fmt.Sprintf("job-%d", i), types.QueueBacklog))
	}

	// Move the tail to the head.
	final, err := repo.MoveToPosition(ctx, jobs[3].ID, orgID, 0)
	require.NoError(t, err)
	require.Equal(t, 0, final)

	moved, err := repo.Latest(ctx, jobs[3].ID, orgID)
	require.NoError(t, err)
	require.Equal(t, 0, moved.OrderInQueue)
	requireContiguous(t, queuedPositions(t, repo, orgID, types.QueueBacklog))

	// Position beyond the tail is clamped to n-1.
	final, err = repo.MoveToPosition(ctx, jobs[3].ID, orgID, 99)
	require.NoError(t, err)
	require.Equal(t, 3, final)
	requireContiguous(t, queuedPositions(t, repo, orgID, types.QueueBacklog))

	// Moving to the current position is a no-op.
	final, err = repo.MoveToPosition(ctx, jobs[3].ID, orgID, 3)
	require.NoError(t, err)
	require.Equal(t, 3, final)

	// Non-queued jobs cannot be moved.
	_, err = repo.ClaimNext(ctx, orgID, types.QueueBacklog, uuid.New())
	require.NoError(t, err)
	claimedID := jobs[0].ID
	_, err = repo.MoveToPosition(ctx, claimedID, orgID, 1)
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestMoveToPositionRandomized(t *testing.T) {
	repo, _ := newJobRepo(t)
	ctx := context.Background()
	orgID := uuid.New()

	const n = 6
	var jobs []*db.Job
	for i := 0; i < n; i++ {
		jobs = append(jobs, createQueuedJob(t, repo, orgID, fmt.Sprintf("job-%d", i), types.QueueBacklog))
	}

	// Deterministic pseudo-random walk over (job, position) pairs. After
	// every move the queue must remain the same set with positions [0, n-1].
	state := uint32(42)
	for iter := 0; iter < 100; iter++ {
		state = state*1664525 + 1013904223
		jobIdx := int(state>>16) % n
		state = state*1664525 + 1013904223
		pos := int(state>>16) % (n + 2) // occasionally out of range, exercising the clamp

		_, err := repo.MoveToPosition(ctx, jobs[jobIdx].ID, orgID, pos)
		require.NoError(t, err)

		positions := queuedPositions(t, repo, orgID, types.QueueBacklog)
		require.Len(t, positions, n)
		requireContiguous(t, positions)
	}
}

func TestRemoveFromQueueReprioritizesRemainder(t *testing.T) {
	repo, _ := newJobRepo(t)
	ctx := context.Background()
	orgID := uuid.New()

	createQueuedJob(t, repo, orgID, "j1", types.QueueBacklog)
	j2 := createQueuedJob(t, repo, orgID, "j2", types.QueueBacklog)
	createQueuedJob(t, repo, orgID, "j3", types.QueueBacklog)

	require.NoError(t, repo.RemoveFromQueue(ctx, j2.ID, orgID, true))

	removed, err := repo.Latest(ctx, j2.ID, orgID)
	require.NoError(t, err)
	require.Equal(t, -1, removed.OrderInQueue)
	require.Equal(t, string(types.QueueNone), removed.QueueType)

	positions := queuedPositions(t, repo, orgID, types.QueueBacklog)
	require.Len(t, positions, 2)
	requireContiguous(t, positions)
}

func TestRecoverOrphansReturnsJobToProvenanceQueueTail(t *testing.T) {
	repo, gdb := newJobRepo(t)
	ctx := context.Background()
	orgID := uuid.New()
	agentID := uuid.New()

	j1 := createQueuedJob(t, repo, orgID, "j1", types.QueueBacklog)
	createQueuedJob(t, repo, orgID, "j2", types.QueueBacklog)

	claimed, err := repo.ClaimNext(ctx, orgID, types.QueueBacklog, agentID)
	require.NoError(t, err)
	require.Equal(t, j1.ID, claimed.ID)

	// Backdate updated_at past the orphan cutoff.
	stale := time.Now().UTC().Add(-10 * time.Minute)
	require.NoError(t, gdb.Model(&db.Job{}).
		Where("id = ? AND version = ?", claimed.ID, claimed.Version).
		UpdateColumn("updated_at", stale).Error)

	recovered, err := repo.RecoverOrphans(ctx, orgID, uuid.New(), time.Now().UTC().Add(-5*time.Minute), nil)
	require.NoError(t, err)
	require.Len(t, recovered, 1)
	require.Equal(t, j1.ID, recovered[0].ID)

	reloaded, err := repo.Latest(ctx, j1.ID, orgID)
	require.NoError(t, err)
	require.Equal(t, string(types.JobStatusQueued), reloaded.Status)
	require.Nil(t, reloaded.AgentID)
	require.Equal(t, string(types.QueueBacklog), reloaded.QueueType)
	// Returned to the tail, behind the job that kept its position.
	require.Equal(t, 1, reloaded.OrderInQueue)
	requireContiguous(t, queuedPositions(t, repo, orgID, types.QueueBacklog))
}

func TestRecoverOrphansByAgentWithoutCutoff(t *testing.T) {
	repo, _ := newJobRepo(t)
	ctx := context.Background()
	orgID := uuid.New()
	agentID := uuid.New()

	createQueuedJob(t, repo, orgID, "j1", types.QueueBacklog)
	claimed, err := repo.ClaimNext(ctx, orgID, types.QueueBacklog, agentID)
	require.NoError(t, err)

	// Fresh updated_at, but claimed by the agent running preprocess — the
	// claiming workflow died, so the job is recovered immediately.
	recovered, err := repo.RecoverOrphans(ctx, orgID, agentID, time.Now().UTC().Add(-5*time.Minute), nil)
	require.NoError(t, err)
	require.Len(t, recovered, 1)
	require.Equal(t, claimed.ID, recovered[0].ID)
}

func TestInProgressByAgent(t *testing.T) {
	repo, _ := newJobRepo(t)
	ctx := context.Background()
	orgID := uuid.New()
	agentID := uuid.New()

	_, err := repo.InProgressByAgent(ctx, agentID)
	require.ErrorIs(t, err, ErrNotFound)

	createQueuedJob(t, repo, orgID, "j1", types.QueueBacklog)
	claimed, err := repo.ClaimNext(ctx, orgID, types.QueueBacklog, agentID)
	require.NoError(t, err)

	found, err := repo.InProgressByAgent(ctx, agentID)
	require.NoError(t, err)
	require.Equal(t, claimed.ID, found.ID)
}
