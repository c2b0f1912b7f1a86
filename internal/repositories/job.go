package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/conductor-ci/conductor/internal/db"
	"github.com/conductor-ci/conductor/internal/types"
)

// gormJobRepository is the GORM implementation of JobRepository.
type gormJobRepository struct {
	db *gorm.DB
}

// NewJobRepository returns a JobRepository backed by the provided *gorm.DB.
func NewJobRepository(db *gorm.DB) JobRepository {
	return &gormJobRepository{db: db}
}

// latestOnly restricts a jobs query to the highest-version row per job ID.
// Jobs are value objects keyed by (id, version); only the latest version
// participates in queues and dispatch.
func latestOnly(tx *gorm.DB) *gorm.DB {
	return tx.Where("version = (SELECT MAX(j2.version) FROM jobs j2 WHERE j2.id = jobs.id)")
}

// Create inserts a new job version row into the database.
func (r *gormJobRepository) Create(ctx context.Context, job *db.Job) error {
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return fmt.Errorf("jobs: create: %w", err)
	}
	return nil
}

// Latest retrieves the highest-version row of a job scoped to an org.
// Returns ErrNotFound if no record exists.
func (r *gormJobRepository) Latest(ctx context.Context, id, orgID uuid.UUID) (*db.Job, error) {
	var job db.Job
	err := r.db.WithContext(ctx).
		Where("id = ? AND org_id = ?", id, orgID).
		Order("version DESC").
		First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("jobs: latest: %w", err)
	}
	return &job, nil
}

// GetVersion retrieves a specific version row of a job.
func (r *gormJobRepository) GetVersion(ctx context.Context, id, orgID uuid.UUID, version int) (*db.Job, error) {
	var job db.Job
	err := r.db.WithContext(ctx).
		Where("id = ? AND org_id = ? AND version = ?", id, orgID, version).
		First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("jobs: get version: %w", err)
	}
	return &job, nil
}

// Update persists all fields of an existing job version row.
func (r *gormJobRepository) Update(ctx context.Context, job *db.Job) error {
	result := r.db.WithContext(ctx).Save(job)
	if result.Error != nil {
		return fmt.Errorf("jobs: update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateFields updates a subset of columns on a specific version row.
func (r *gormJobRepository) UpdateFields(ctx context.Context, id uuid.UUID, version int, fields map[string]any) error {
	result := r.db.WithContext(ctx).
		Model(&db.Job{}).
		Where("id = ? AND version = ?", id, version).
		Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("jobs: update fields: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns a paginated list of latest-version jobs for an org,
// ordered by creation time descending (most recent first).
func (r *gormJobRepository) List(ctx context.Context, orgID uuid.UUID, opts ListOptions) ([]db.Job, int64, error) {
	var jobs []db.Job
	var total int64

	if err := r.db.WithContext(ctx).
		Model(&db.Job{}).
		Scopes(latestOnly).
		Where("org_id = ?", orgID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("jobs: list count: %w", err)
	}

	if err := r.db.WithContext(ctx).
		Scopes(latestOnly).
		Where("org_id = ?", orgID).
		Limit(opts.Limit).
		Offset(opts.Offset).
		Order("created_at DESC").
		Find(&jobs).Error; err != nil {
		return nil, 0, fmt.Errorf("jobs: list: %w", err)
	}

	return jobs, total, nil
}

// -----------------------------------------------------------------------------
// Queue model
// -----------------------------------------------------------------------------

// NextPosition returns the count of latest-version queued rows in the
// (org, queue) pair — the position a newly appended job takes.
func (r *gormJobRepository) NextPosition(ctx context.Context, orgID uuid.UUID, queue types.QueueType) (int, error) {
	n, err := queueLength(r.db.WithContext(ctx), orgID, queue)
	if err != nil {
		return 0, fmt.Errorf("jobs: next position: %w", err)
	}
	return n, nil
}

// queueLength counts the queued latest-version rows of an (org, queue).
func queueLength(tx *gorm.DB, orgID uuid.UUID, queue types.QueueType) (int, error) {
	var total int64
	err := tx.Model(&db.Job{}).
		Scopes(latestOnly).
		Where("org_id = ? AND status = ? AND queue_type = ?", orgID, types.JobStatusQueued, queue).
		Count(&total).Error
	return int(total), err
}

// ClaimNext atomically pops the head of the (org, queue).
//
// The claim is a conditional UPDATE guarded on status = queued: under
// concurrent claimers only one UPDATE matches, the loser sees zero rows
// affected and re-reads the new head. The whole operation — head selection,
// claim, and position shift — runs in one transaction so the contiguous
// [0, n-1] invariant is never observable as violated.
func (r *gormJobRepository) ClaimNext(ctx context.Context, orgID uuid.UUID, queue types.QueueType, agentID uuid.UUID) (*db.Job, error) {
	var claimed *db.Job

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for attempt := 0; attempt < 3; attempt++ {
			var head db.Job
			err := tx.
				Scopes(latestOnly).
				Where("org_id = ? AND status = ? AND queue_type = ?", orgID, types.JobStatusQueued, queue).
				Order("order_in_queue ASC").
				First(&head).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNotFound
				}
				return fmt.Errorf("select head: %w", err)
			}

			removedPos := head.OrderInQueue
			now := time.Now().UTC()

			// queue_type is intentionally retained as provenance while the
			// job is in-progress — orphan recovery returns the job to the
			// tail of this queue.
			result := tx.Model(&db.Job{}).
				Where("id = ? AND version = ? AND status = ?", head.ID, head.Version, types.JobStatusQueued).
				Updates(map[string]any{
					"status":         types.JobStatusInProgress,
					"agent_id":       agentID,
					"order_in_queue": -1,
					"updated_at":     now,
				})
			if result.Error != nil {
				return fmt.Errorf("claim update: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				// Lost the race to a concurrent claimer — re-read the head.
				continue
			}

			if err := shiftDownAfter(tx, orgID, queue, removedPos); err != nil {
				return err
			}

			head.Status = string(types.JobStatusInProgress)
			head.AgentID = &agentID
			head.OrderInQueue = -1
			head.UpdatedAt = now
			claimed = &head
			return nil
		}
		return ErrConflict
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("jobs: claim next: %w", err)
	}
	return claimed, nil
}

// shiftDownAfter decrements order_in_queue by one for every queued
// latest-version row in (org, queue) positioned after removedPos.
func shiftDownAfter(tx *gorm.DB, orgID uuid.UUID, queue types.QueueType, removedPos int) error {
	err := tx.Model(&db.Job{}).
		Scopes(latestOnly).
		Where("org_id = ? AND status = ? AND queue_type = ? AND order_in_queue > ?",
			orgID, types.JobStatusQueued, queue, removedPos).
		UpdateColumn("order_in_queue", gorm.Expr("order_in_queue - 1")).Error
	if err != nil {
		return fmt.Errorf("shift positions: %w", err)
	}
	return nil
}

// RemoveFromQueue takes a queued job out of its queue and closes the gap.
// The caller advances status separately; this method only releases the
// position. clearQueue controls whether queue_type is reset to "none"
// (terminal transitions) or kept as provenance (dispatch paths).
func (r *gormJobRepository) RemoveFromQueue(ctx context.Context, id, orgID uuid.UUID, clearQueue bool) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		job, err := latestForUpdate(tx, id, orgID)
		if err != nil {
			return err
		}
		return removeFromQueueTx(tx, job, clearQueue)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("jobs: remove from queue: %w", err)
	}
	return nil
}

// removeFromQueueTx releases a job's queue position inside an open
// transaction and closes the gap. The loaded job row is mutated to match.
func removeFromQueueTx(tx *gorm.DB, job *db.Job, clearQueue bool) error {
	if job.OrderInQueue < 0 || job.QueueType == string(types.QueueNone) {
		// Not queued — nothing to release.
		if clearQueue && job.QueueType != string(types.QueueNone) {
			job.QueueType = string(types.QueueNone)
			return tx.Model(&db.Job{}).
				Where("id = ? AND version = ?", job.ID, job.Version).
				Update("queue_type", types.QueueNone).Error
		}
		return nil
	}

	queue := types.QueueType(job.QueueType)
	removedPos := job.OrderInQueue

	fields := map[string]any{"order_in_queue": -1}
	job.OrderInQueue = -1
	if clearQueue {
		fields["queue_type"] = types.QueueNone
		job.QueueType = string(types.QueueNone)
	}
	if err := tx.Model(&db.Job{}).
		Where("id = ? AND version = ?", job.ID, job.Version).
		Updates(fields).Error; err != nil {
		return fmt.Errorf("release position: %w", err)
	}

	return shiftDownAfter(tx, job.OrgID, queue, removedPos)
}

// InsertAtTail appends the latest version of a job to the given queue.
// The job becomes queued with order_in_queue = current queue length and its
// agent assignment is cleared.
func (r *gormJobRepository) InsertAtTail(ctx context.Context, id, orgID uuid.UUID, queue types.QueueType) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		job, err := latestForUpdate(tx, id, orgID)
		if err != nil {
			return err
		}
		return insertAtTailTx(tx, job, queue)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("jobs: insert at tail: %w", err)
	}
	return nil
}

// insertAtTailTx appends a job version to the given queue inside an open
// transaction. The loaded job row is mutated to match.
func insertAtTailTx(tx *gorm.DB, job *db.Job, queue types.QueueType) error {
	tail, err := queueLength(tx, job.OrgID, queue)
	if err != nil {
		return fmt.Errorf("tail position: %w", err)
	}

	if err := tx.Model(&db.Job{}).
		Where("id = ? AND version = ?", job.ID, job.Version).
		Updates(map[string]any{
			"status":         types.JobStatusQueued,
			"queue_type":     queue,
			"order_in_queue": tail,
			"agent_id":       nil,
		}).Error; err != nil {
		return err
	}

	job.Status = string(types.JobStatusQueued)
	job.QueueType = string(queue)
	job.OrderInQueue = tail
	job.AgentID = nil
	return nil
}

// MoveToPosition moves a queued job to newPosition within its queue and
// rewrites the whole queue as the contiguous range [0, n-1] in one
// transaction. newPosition is clamped to [0, n-1]. Returns the final
// position. ErrInvalidState if the job is not queued.
func (r *gormJobRepository) MoveToPosition(ctx context.Context, id, orgID uuid.UUID, newPosition int) (int, error) {
	final := -1
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		job, err := latestForUpdate(tx, id, orgID)
		if err != nil {
			return err
		}
		if job.Status != string(types.JobStatusQueued) || job.OrderInQueue < 0 {
			return ErrInvalidState
		}

		queue := types.QueueType(job.QueueType)

		var ordered []db.Job
		if err := tx.
			Scopes(latestOnly).
			Where("org_id = ? AND status = ? AND queue_type = ?", orgID, types.JobStatusQueued, queue).
			Order("order_in_queue ASC").
			Find(&ordered).Error; err != nil {
			return fmt.Errorf("load queue: %w", err)
		}

		// Remove the target, clamp, and re-insert.
		idx := -1
		for i := range ordered {
			if ordered[i].ID == job.ID && ordered[i].Version == job.Version {
				idx = i
				break
			}
		}
		if idx == -1 {
			return ErrNotFound
		}

		target := ordered[idx]
		rest := append(append([]db.Job{}, ordered[:idx]...), ordered[idx+1:]...)

		pos := newPosition
		if pos < 0 {
			pos = 0
		}
		if pos > len(rest) {
			pos = len(rest)
		}
		if pos == idx {
			final = idx
			return nil
		}

		reordered := append(append(append([]db.Job{}, rest[:pos]...), target), rest[pos:]...)
		for i := range reordered {
			if reordered[i].OrderInQueue == i {
				continue
			}
			if err := tx.Model(&db.Job{}).
				Where("id = ? AND version = ?", reordered[i].ID, reordered[i].Version).
				UpdateColumn("order_in_queue", i).Error; err != nil {
				return fmt.Errorf("rewrite position %d: %w", i, err)
			}
		}
		final = pos
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidState) {
			return -1, err
		}
		return -1, fmt.Errorf("jobs: move to position: %w", err)
	}
	return final, nil
}

// latestForUpdate loads the latest version row of a job inside a transaction.
func latestForUpdate(tx *gorm.DB, id, orgID uuid.UUID) (*db.Job, error) {
	var job db.Job
	err := tx.
		Where("id = ? AND org_id = ?", id, orgID).
		Order("version DESC").
		First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load latest: %w", err)
	}
	return &job, nil
}

// -----------------------------------------------------------------------------
// Recovery
// -----------------------------------------------------------------------------

// RecoverOrphans returns every orphaned in-progress job of the org to the
// tail of its provenance queue in a single transaction. A job is orphaned
// when it is assigned to agentID (the claiming workflow died with it) or
// when nothing has touched it since cutoff (its agent vanished). The skip
// callback exempts jobs whose execution workflow is still alive in this
// process — recovering those would double-run them.
func (r *gormJobRepository) RecoverOrphans(ctx context.Context, orgID, agentID uuid.UUID, cutoff time.Time, skip func(jobID uuid.UUID) bool) ([]db.Job, error) {
	var recovered []db.Job

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var orphans []db.Job
		if err := tx.
			Scopes(latestOnly).
			Where("org_id = ? AND status = ?", orgID, types.JobStatusInProgress).
			Where("agent_id = ? OR updated_at < ?", agentID, cutoff).
			Order("updated_at ASC").
			Find(&orphans).Error; err != nil {
			return fmt.Errorf("scan orphans: %w", err)
		}

		// Per-queue tails are computed once and advanced locally so a batch
		// of orphans lands in stable FIFO order behind the existing queue.
		tails := make(map[types.QueueType]int)

		for i := range orphans {
			job := &orphans[i]
			if skip != nil && skip(job.ID) {
				continue
			}

			queue := types.QueueType(job.QueueType)
			if queue == types.QueueNone || queue == "" {
				// A claim never clears queue_type, so this only happens for
				// rows written before that invariant held. Backlog is the
				// safe landing spot.
				queue = types.QueueBacklog
			}

			tail, ok := tails[queue]
			if !ok {
				var err error
				tail, err = queueLength(tx, orgID, queue)
				if err != nil {
					return fmt.Errorf("tail for %s: %w", queue, err)
				}
			}

			if err := tx.Model(&db.Job{}).
				Where("id = ? AND version = ?", job.ID, job.Version).
				Updates(map[string]any{
					"status":         types.JobStatusQueued,
					"agent_id":       nil,
					"queue_type":     queue,
					"order_in_queue": tail,
				}).Error; err != nil {
				return fmt.Errorf("requeue orphan %s: %w", job.ID, err)
			}
			tails[queue] = tail + 1

			job.Status = string(types.JobStatusQueued)
			job.AgentID = nil
			job.QueueType = string(queue)
			job.OrderInQueue = tail
			recovered = append(recovered, *job)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("jobs: recover orphans: %w", err)
	}
	return recovered, nil
}

// InProgressByAgent returns the in-progress latest-version job assigned to
// the agent. At most one exists by invariant; the lowest-ID row is returned
// if that invariant is ever violated so behavior stays deterministic.
func (r *gormJobRepository) InProgressByAgent(ctx context.Context, agentID uuid.UUID) (*db.Job, error) {
	var job db.Job
	err := r.db.WithContext(ctx).
		Scopes(latestOnly).
		Where("agent_id = ? AND status = ?", agentID, types.JobStatusInProgress).
		Order("id ASC").
		First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("jobs: in-progress by agent: %w", err)
	}
	return &job, nil
}

// -----------------------------------------------------------------------------
// Job logs
// -----------------------------------------------------------------------------

// AppendLogs inserts log lines in a single database call. Lines for one job
// arrive in stream order and are timestamped by the agent.
func (r *gormJobRepository) AppendLogs(ctx context.Context, logs []db.JobLog) error {
	if len(logs) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&logs).Error; err != nil {
		return fmt.Errorf("jobs: append logs: %w", err)
	}
	return nil
}

// GetLogs returns all log lines for one job version ordered by timestamp
// ascending, so the caller can replay execution order without sorting.
func (r *gormJobRepository) GetLogs(ctx context.Context, jobID uuid.UUID, version int) ([]db.JobLog, error) {
	var logs []db.JobLog
	if err := r.db.WithContext(ctx).
		Where("job_id = ? AND job_version = ?", jobID, version).
		Order("timestamp ASC").
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("jobs: get logs: %w", err)
	}
	return logs, nil
}
