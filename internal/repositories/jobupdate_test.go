package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/conductor-ci/conductor/internal/db"
	"github.com/conductor-ci/conductor/internal/types"
)

func ptr[T any](v T) *T { return &v }

func TestApplyUserUpdateForbidsQueuedToInProgress(t *testing.T) {
	repo, _ := newJobRepo(t)
	ctx := context.Background()
	orgID := uuid.New()

	job := createQueuedJob(t, repo, orgID, "j1", types.QueueBacklog)

	_, err := repo.ApplyUserUpdate(ctx, job.ID, orgID, UserUpdate{
		Status:    ptr(types.JobStatusInProgress),
		UpdatedBy: uuid.New(),
	})
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestApplyUserUpdateInReviewRemovesFromQueue(t *testing.T) {
	repo, _ := newJobRepo(t)
	ctx := context.Background()
	orgID := uuid.New()

	j1 := createQueuedJob(t, repo, orgID, "j1", types.QueueBacklog)
	createQueuedJob(t, repo, orgID, "j2", types.QueueBacklog)

	updated, err := repo.ApplyUserUpdate(ctx, j1.ID, orgID, UserUpdate{
		Status:    ptr(types.JobStatusInReview),
		UpdatedBy: uuid.New(),
	})
	require.NoError(t, err)
	require.Equal(t, string(types.JobStatusInReview), updated.Status)
	require.Equal(t, string(types.QueueNone), updated.QueueType)
	require.Equal(t, -1, updated.OrderInQueue)

	// The job behind it moved up to position 0.
	positions := queuedPositions(t, repo, orgID, types.QueueBacklog)
	require.Len(t, positions, 1)
	requireContiguous(t, positions)
}

func TestApplyUserUpdateReworkPreemptsBacklog(t *testing.T) {
	repo, _ := newJobRepo(t)
	ctx := context.Background()
	orgID := uuid.New()

	// Two fresh backlog jobs and one completed job the user now wants
	// reworked.
	createQueuedJob(t, repo, orgID, "j1", types.QueueBacklog)
	createQueuedJob(t, repo, orgID, "j2", types.QueueBacklog)

	done := createQueuedJob(t, repo, orgID, "done", types.QueueBacklog)
	_, err := repo.ApplyUserUpdate(ctx, done.ID, orgID, UserUpdate{
		Status:    ptr(types.JobStatusCompleted),
		UpdatedBy: uuid.New(),
	})
	require.NoError(t, err)

	updated, err := repo.ApplyUserUpdate(ctx, done.ID, orgID, UserUpdate{
		AcceptanceStatus: ptr(types.AcceptanceAskedRework),
		UpdatedBy:        uuid.New(),
	})
	require.NoError(t, err)

	// Rework request writes a new version and enqueues it at rework/0.
	require.Equal(t, done.Version+1, updated.Version)
	require.Equal(t, string(types.JobStatusQueued), updated.Status)
	require.Equal(t, string(types.QueueRework), updated.QueueType)
	require.Equal(t, 0, updated.OrderInQueue)

	// The job now heads the rework queue, so a rework claim takes it.
	claimed, err := repo.ClaimNext(ctx, orgID, types.QueueRework, uuid.New())
	require.NoError(t, err)
	require.Equal(t, done.ID, claimed.ID)
}

func TestApplyUserUpdateReworkFromBacklogLeavesBacklogFirst(t *testing.T) {
	repo, _ := newJobRepo(t)
	ctx := context.Background()
	orgID := uuid.New()

	j1 := createQueuedJob(t, repo, orgID, "j1", types.QueueBacklog)
	createQueuedJob(t, repo, orgID, "j2", types.QueueBacklog)

	updated, err := repo.ApplyUserUpdate(ctx, j1.ID, orgID, UserUpdate{
		AcceptanceStatus: ptr(types.AcceptanceAskedRework),
		UpdatedBy:        uuid.New(),
	})
	require.NoError(t, err)
	require.Equal(t, string(types.QueueRework), updated.QueueType)
	require.Equal(t, 0, updated.OrderInQueue)

	// The backlog closed its gap.
	positions := queuedPositions(t, repo, orgID, types.QueueBacklog)
	require.Len(t, positions, 1)
	requireContiguous(t, positions)
}

func TestApplyUserUpdateReworkWithdrawnReturnsToBacklogTail(t *testing.T) {
	repo, _ := newJobRepo(t)
	ctx := context.Background()
	orgID := uuid.New()

	createQueuedJob(t, repo, orgID, "backlog-0", types.QueueBacklog)

	job := createQueuedJob(t, repo, orgID, "reworked", types.QueueBacklog)
	updated, err := repo.ApplyUserUpdate(ctx, job.ID, orgID, UserUpdate{
		AcceptanceStatus: ptr(types.AcceptanceAskedRework),
		UpdatedBy:        uuid.New(),
	})
	require.NoError(t, err)
	require.Equal(t, string(types.QueueRework), updated.QueueType)

	back, err := repo.ApplyUserUpdate(ctx, job.ID, orgID, UserUpdate{
		AcceptanceStatus: ptr(types.AcceptanceNotReviewed),
		UpdatedBy:        uuid.New(),
	})
	require.NoError(t, err)
	require.Equal(t, string(types.QueueBacklog), back.QueueType)
	require.Equal(t, 1, back.OrderInQueue) // tail, behind backlog-0
	require.Empty(t, queuedPositions(t, repo, orgID, types.QueueRework))
}

func TestApplyUserUpdateRetryWritesFreshVersionWithClearedLogs(t *testing.T) {
	repo, gdb := newJobRepo(t)
	ctx := context.Background()
	orgID := uuid.New()

	job := createQueuedJob(t, repo, orgID, "retryable", types.QueueBacklog)

	// Drive it to failed with populated logs and a rework verdict.
	_, err := repo.ApplyUserUpdate(ctx, job.ID, orgID, UserUpdate{
		Status:           ptr(types.JobStatusFailed),
		AcceptanceStatus: ptr(types.AcceptanceAskedRework),
		UpdatedBy:        uuid.New(),
	})
	require.NoError(t, err)

	latest, err := repo.Latest(ctx, job.ID, orgID)
	require.NoError(t, err)
	require.NoError(t, gdb.Model(&db.Job{}).
		Where("id = ? AND version = ?", latest.ID, latest.Version).
		Updates(map[string]any{
			"code_generation_logs":   "gen output",
			"code_verification_logs": "verify output",
			"status":                 types.JobStatusFailed,
			"queue_type":             types.QueueNone,
			"order_in_queue":         -1,
		}).Error)

	// Retry: re-enqueue into rework with one more comment.
	retried, err := repo.ApplyUserUpdate(ctx, job.ID, orgID, UserUpdate{
		Status:       ptr(types.JobStatusQueued),
		QueueType:    ptr(types.QueueRework),
		UserComments: []string{"please also handle the empty-input case"},
		UpdatedBy:    uuid.New(),
	})
	require.NoError(t, err)

	require.Greater(t, retried.Version, latest.Version)
	require.Empty(t, retried.CodeGenerationLogs)
	require.Empty(t, retried.CodeVerificationLogs)
	require.Equal(t, string(types.JobStatusQueued), retried.Status)
	require.Equal(t, string(types.QueueRework), retried.QueueType)
	require.Equal(t, 0, retried.OrderInQueue)
	require.Contains(t, retried.Updates, "please also handle the empty-input case")

	// The failed version is preserved as history.
	old, err := repo.GetVersion(ctx, job.ID, orgID, latest.Version)
	require.NoError(t, err)
	require.Equal(t, "gen output", old.CodeGenerationLogs)
}

func TestApplyUserUpdateRequeueDefaultsToBacklog(t *testing.T) {
	repo, _ := newJobRepo(t)
	ctx := context.Background()
	orgID := uuid.New()

	job := createQueuedJob(t, repo, orgID, "j1", types.QueueBacklog)
	_, err := repo.ApplyUserUpdate(ctx, job.ID, orgID, UserUpdate{
		Status:    ptr(types.JobStatusInReview),
		UpdatedBy: uuid.New(),
	})
	require.NoError(t, err)

	requeued, err := repo.ApplyUserUpdate(ctx, job.ID, orgID, UserUpdate{
		Status:    ptr(types.JobStatusQueued),
		UpdatedBy: uuid.New(),
	})
	require.NoError(t, err)
	require.Equal(t, string(types.QueueBacklog), requeued.QueueType)
	require.Equal(t, 0, requeued.OrderInQueue)
}

func TestApplyUserUpdatePromptChangeWritesNewVersion(t *testing.T) {
	repo, _ := newJobRepo(t)
	ctx := context.Background()
	orgID := uuid.New()

	job := createQueuedJob(t, repo, orgID, "j1", types.QueueBacklog)

	updated, err := repo.ApplyUserUpdate(ctx, job.ID, orgID, UserUpdate{
		Prompt:    ptr("a sharper prompt"),
		UpdatedBy: uuid.New(),
	})
	require.NoError(t, err)
	require.Equal(t, job.Version+1, updated.Version)
	require.Equal(t, "a sharper prompt", updated.Prompt)
	// The queue position carries over to the new version.
	require.Equal(t, job.OrderInQueue, updated.OrderInQueue)
	requireContiguous(t, queuedPositions(t, repo, orgID, types.QueueBacklog))
}

func TestArchiveRemovesQueuedJobAndReprioritizes(t *testing.T) {
	repo, _ := newJobRepo(t)
	ctx := context.Background()
	orgID := uuid.New()

	j1 := createQueuedJob(t, repo, orgID, "j1", types.QueueBacklog)
	createQueuedJob(t, repo, orgID, "j2", types.QueueBacklog)

	archived, err := repo.Archive(ctx, j1.ID, orgID, uuid.New())
	require.NoError(t, err)
	require.Equal(t, string(types.JobStatusArchived), archived.Status)
	require.Equal(t, string(types.QueueNone), archived.QueueType)

	positions := queuedPositions(t, repo, orgID, types.QueueBacklog)
	require.Len(t, positions, 1)
	requireContiguous(t, positions)

	// Archiving twice is an invalid state.
	_, err = repo.Archive(ctx, j1.ID, orgID, uuid.New())
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestClaimSpecificManualDispatch(t *testing.T) {
	repo, _ := newJobRepo(t)
	ctx := context.Background()
	orgID := uuid.New()
	agentID := uuid.New()

	createQueuedJob(t, repo, orgID, "head", types.QueueBacklog)
	target := createQueuedJob(t, repo, orgID, "target", types.QueueBacklog)

	claimed, err := repo.ClaimSpecific(ctx, target.ID, orgID, agentID)
	require.NoError(t, err)
	require.Equal(t, string(types.JobStatusInProgress), claimed.Status)
	require.Equal(t, agentID, *claimed.AgentID)
	require.Equal(t, -1, claimed.OrderInQueue)
	// Provenance retained for orphan recovery.
	require.Equal(t, string(types.QueueBacklog), claimed.QueueType)

	requireContiguous(t, queuedPositions(t, repo, orgID, types.QueueBacklog))

	// A second manual dispatch of the same job is rejected.
	_, err = repo.ClaimSpecific(ctx, target.ID, orgID, agentID)
	require.ErrorIs(t, err, ErrInvalidState)
}
