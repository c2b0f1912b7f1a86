package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/conductor-ci/conductor/internal/db"
	"github.com/conductor-ci/conductor/internal/types"
)

// -----------------------------------------------------------------------------
// Common
// -----------------------------------------------------------------------------

// ListOptions contains common pagination options for list queries.
type ListOptions struct {
	Limit  int
	Offset int
}

// -----------------------------------------------------------------------------
// OrgRepository
// -----------------------------------------------------------------------------

type OrgRepository interface {
	Create(ctx context.Context, org *db.Org) error
	GetByID(ctx context.Context, id uuid.UUID) (*db.Org, error)
}

// -----------------------------------------------------------------------------
// UserRepository
// -----------------------------------------------------------------------------

type UserRepository interface {
	Create(ctx context.Context, user *db.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*db.User, error)
	GetByEmail(ctx context.Context, email string) (*db.User, error)
}

// -----------------------------------------------------------------------------
// APIKeyRepository
// -----------------------------------------------------------------------------

type APIKeyRepository interface {
	Create(ctx context.Context, key *db.APIKey) error
	// GetByHash resolves a non-revoked key by its SHA-256 hex digest.
	// Registration is the hot caller — a miss means invalid credentials.
	GetByHash(ctx context.Context, hash string) (*db.APIKey, error)
	TouchLastUsed(ctx context.Context, id uuid.UUID, at time.Time) error
	Revoke(ctx context.Context, id, orgID uuid.UUID) error
	ListByOrg(ctx context.Context, orgID uuid.UUID) ([]db.APIKey, error)
}

// -----------------------------------------------------------------------------
// AgentRepository
// -----------------------------------------------------------------------------

type AgentRepository interface {
	Create(ctx context.Context, agent *db.Agent) error
	GetByID(ctx context.Context, id uuid.UUID) (*db.Agent, error)
	GetByOrgAndHostname(ctx context.Context, orgID uuid.UUID, hostname string) (*db.Agent, error)
	Update(ctx context.Context, agent *db.Agent) error

	// UpdateStatus updates only status, consecutive_failures, and
	// last_active_at in a single query. An active status always implies a
	// zero failure counter, so the two are written together.
	UpdateStatus(ctx context.Context, id uuid.UUID, status types.AgentStatus, failures int, lastActive time.Time) error

	// MarkStreamConnected records a fresh stream session: active status,
	// zero failures, and both liveness timestamps set to now.
	MarkStreamConnected(ctx context.Context, id uuid.UUID, at time.Time) error

	// Heartbeat refreshes last_active_at and resets the failure counter
	// without touching status.
	Heartbeat(ctx context.Context, id uuid.UUID, at time.Time) error

	// IncrementFailures bumps consecutive_failures by one and returns the
	// new value, atomically.
	IncrementFailures(ctx context.Context, id uuid.UUID) (int, error)

	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, orgID uuid.UUID, opts ListOptions) ([]db.Agent, int64, error)
}

// -----------------------------------------------------------------------------
// JobRepository — includes the queue model
// -----------------------------------------------------------------------------

// JobRepository owns the versioned job rows and the per-(org, queue) ordered
// lists. Every queue operation runs as a single transaction; on conflict the
// caller retries. Latest(id) hides the max-version projection so callers
// never touch the versioning scheme directly.
type JobRepository interface {
	// Create inserts a new version row (version 1 for fresh jobs, or a
	// pre-populated higher version for retries).
	Create(ctx context.Context, job *db.Job) error

	// Latest returns the highest-version row for a job within an org.
	Latest(ctx context.Context, id, orgID uuid.UUID) (*db.Job, error)

	// GetVersion returns a specific version row.
	GetVersion(ctx context.Context, id, orgID uuid.UUID, version int) (*db.Job, error)

	// Update saves all fields of an existing version row in place.
	Update(ctx context.Context, job *db.Job) error

	// UpdateFields updates a subset of columns on a specific version row.
	UpdateFields(ctx context.Context, id uuid.UUID, version int, fields map[string]any) error

	// List returns latest-version rows for an org, newest first.
	List(ctx context.Context, orgID uuid.UUID, opts ListOptions) ([]db.Job, int64, error)

	// ─── Queue model ─────────────────────────────────────────────────────────

	// NextPosition returns the number of latest-version queued rows in the
	// (org, queue) — i.e. the position a newly inserted job would take.
	NextPosition(ctx context.Context, orgID uuid.UUID, queue types.QueueType) (int, error)

	// ClaimNext atomically pops the head of the (org, queue): the row with
	// the minimum order_in_queue becomes in-progress and assigned to the
	// agent, its position is released, and every later row shifts down by
	// one. Returns ErrNotFound when the queue is empty.
	//
	// The claimed job keeps its queue_type as provenance so orphan recovery
	// can return it to the same queue.
	ClaimNext(ctx context.Context, orgID uuid.UUID, queue types.QueueType, agentID uuid.UUID) (*db.Job, error)

	// RemoveFromQueue takes a queued job out of its queue and shifts every
	// later row down by one. When clearQueue is true queue_type is also set
	// to "none" (terminal transitions); when false the queue_type survives
	// as provenance (manual /execute dispatch).
	RemoveFromQueue(ctx context.Context, id, orgID uuid.UUID, clearQueue bool) error

	// InsertAtTail appends the latest version of a job to the given queue,
	// setting status to queued, queue_type, and order_in_queue = tail.
	InsertAtTail(ctx context.Context, id, orgID uuid.UUID, queue types.QueueType) error

	// MoveToPosition moves a queued job to newPosition within its current
	// queue and rewrites order_in_queue as the contiguous range [0, n-1] in
	// one transaction. newPosition is clamped to [0, n-1]; the final
	// position is returned.
	MoveToPosition(ctx context.Context, id, orgID uuid.UUID, newPosition int) (int, error)

	// ─── Orchestrated transitions (single transaction each) ──────────────────

	// ApplyUserUpdate performs the user-driven update orchestration on the
	// latest version of a job: status and acceptance transitions with their
	// queue moves, field updates, and the retry path that writes a fresh
	// version with cleared logs. Returns the resulting latest version.
	//
	// ErrInvalidState is returned for the forbidden queued → in-progress
	// transition.
	ApplyUserUpdate(ctx context.Context, id, orgID uuid.UUID, update UserUpdate) (*db.Job, error)

	// Archive sets the latest version to archived, first removing it from
	// its queue (and reprioritizing the remainder) if it was queued.
	// ErrInvalidState if the job is already archived.
	Archive(ctx context.Context, id, orgID uuid.UUID, updatedBy uuid.UUID) (*db.Job, error)

	// ClaimSpecific is the manual dispatch path: it removes one specific
	// queued job from its queue (keeping queue_type as provenance),
	// reprioritizes the remainder, and assigns it in-progress to the agent.
	// ErrInvalidState if the job is not queued with a queue.
	ClaimSpecific(ctx context.Context, id, orgID, agentID uuid.UUID) (*db.Job, error)

	// ─── Recovery ────────────────────────────────────────────────────────────

	// RecoverOrphans finds all in-progress jobs in the org that either
	// belong to agentID or have not been touched since cutoff, and returns
	// each of them to the tail of its provenance queue (status queued,
	// agent cleared) in a single transaction. Candidates for which skip
	// returns true — jobs whose execution workflow is verifiably alive in
	// this process — are left untouched; pass nil to recover everything.
	// Returns the recovered jobs.
	RecoverOrphans(ctx context.Context, orgID, agentID uuid.UUID, cutoff time.Time, skip func(jobID uuid.UUID) bool) ([]db.Job, error)

	// InProgressByAgent returns the single in-progress latest-version job
	// assigned to the agent, or ErrNotFound.
	InProgressByAgent(ctx context.Context, agentID uuid.UUID) (*db.Job, error)

	// ─── Job logs ────────────────────────────────────────────────────────────

	AppendLogs(ctx context.Context, logs []db.JobLog) error
	GetLogs(ctx context.Context, jobID uuid.UUID, version int) ([]db.JobLog, error)
}

// -----------------------------------------------------------------------------
// ActivityRepository
// -----------------------------------------------------------------------------

type ActivityRepository interface {
	Create(ctx context.Context, activity *db.Activity) error
	GetByID(ctx context.Context, id, orgID uuid.UUID) (*db.Activity, error)
	ListByJob(ctx context.Context, jobID, orgID uuid.UUID) ([]db.Activity, error)
	ListByOrg(ctx context.Context, orgID uuid.UUID, opts ListOptions) ([]db.Activity, int64, error)

	// MarkRead upserts the per-user read flag for an activity.
	MarkRead(ctx context.Context, activityID, userID uuid.UUID) error
	ReadStatus(ctx context.Context, activityID, userID uuid.UUID) (types.ReadStatus, error)
}

// -----------------------------------------------------------------------------
// QueuePauseRepository
// -----------------------------------------------------------------------------

type QueuePauseRepository interface {
	// IsPaused reports the pause flag for (org, queue). A missing row reads
	// as not paused.
	IsPaused(ctx context.Context, orgID uuid.UUID, queue types.QueueType) (bool, error)
	SetPaused(ctx context.Context, orgID uuid.UUID, queue types.QueueType, paused bool) error
}

// -----------------------------------------------------------------------------
// ScheduleBindingRepository
// -----------------------------------------------------------------------------

type ScheduleBindingRepository interface {
	// Upsert records (or replaces) the schedule IDs bound to an agent.
	Upsert(ctx context.Context, binding *db.ScheduleBinding) error
	GetByAgent(ctx context.Context, agentID uuid.UUID) (*db.ScheduleBinding, error)
	DeleteByAgent(ctx context.Context, agentID uuid.UUID) error
	List(ctx context.Context) ([]db.ScheduleBinding, error)
}
