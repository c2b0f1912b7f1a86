package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/conductor-ci/conductor/internal/db"
	"github.com/conductor-ci/conductor/internal/types"
)

// UserUpdate carries the fields a PUT /jobs/:id request may change. Nil
// pointers leave the field untouched. UserComments, when non-nil, replaces
// the full comment list — the retry predicate compares its length against
// the stored list.
type UserUpdate struct {
	Name             *string
	Description      *string
	Status           *types.JobStatus
	QueueType        *types.QueueType
	Priority         *types.JobPriority
	AcceptanceStatus *types.AcceptanceStatus
	UserComments     []string
	Prompt           *string
	RepoID           *uuid.UUID
	UpdatedBy        uuid.UUID
}

// ApplyUserUpdate performs the user-driven orchestration on the latest
// version of a job in one transaction:
//
//   - status → in-review (or a terminal status) removes a queued job from
//     its queue and reprioritizes the remainder;
//   - acceptance → reviewed_and_asked_rework moves the job to the rework
//     tail (leaving backlog first if it was queued there);
//   - acceptance back to not_reviewed while queued in rework moves the job
//     to the backlog tail;
//   - status → queued from anything else re-enqueues at the tail of the
//     requested queue (rework when acceptance asks for it, else backlog);
//   - a retry — re-enqueue into rework with a grown comment list — writes
//     a fresh version with cleared generation/verification logs.
//
// The forbidden queued → in-progress transition returns ErrInvalidState.
func (r *gormJobRepository) ApplyUserUpdate(ctx context.Context, id, orgID uuid.UUID, update UserUpdate) (*db.Job, error) {
	var result *db.Job

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		job, err := latestForUpdate(tx, id, orgID)
		if err != nil {
			return err
		}

		oldStatus := types.JobStatus(job.Status)
		oldAcceptance := types.AcceptanceStatus(job.UserAcceptanceStatus)

		if update.Status != nil && *update.Status == types.JobStatusInProgress && oldStatus == types.JobStatusQueued {
			// The dispatch engine owns this transition.
			return ErrInvalidState
		}

		oldComments := decodeComments(job.UserComments)
		newComments := oldComments
		if update.UserComments != nil {
			newComments = update.UserComments
		}

		newAcceptance := oldAcceptance
		if update.AcceptanceStatus != nil {
			newAcceptance = *update.AcceptanceStatus
		}

		promptChanged := update.Prompt != nil && *update.Prompt != job.Prompt
		repoChanged := update.RepoID != nil && (job.RepoID == nil || *job.RepoID != *update.RepoID)
		acceptanceToRework := newAcceptance == types.AcceptanceAskedRework && oldAcceptance != types.AcceptanceAskedRework
		acceptanceBack := newAcceptance == types.AcceptanceNotReviewed &&
			oldAcceptance == types.AcceptanceAskedRework &&
			oldStatus == types.JobStatusQueued

		// Resolve the queue a queued transition would land in: an explicit
		// queue_type wins, otherwise acceptance picks rework over backlog.
		targetQueue := types.QueueBacklog
		if newAcceptance == types.AcceptanceAskedRework {
			targetQueue = types.QueueRework
		}
		if update.QueueType != nil && *update.QueueType != types.QueueNone {
			targetQueue = *update.QueueType
		}

		isRetry := update.Status != nil && *update.Status == types.JobStatusQueued &&
			targetQueue == types.QueueRework &&
			len(newComments) > len(oldComments)

		// Versioning rule: prompt change, repo change, acceptance flipping
		// to asked_rework, and retries all write a fresh version row.
		// Old versions keep their fields as a historical snapshot; every
		// queue query projects the latest version only.
		work := job
		if promptChanged || repoChanged || acceptanceToRework || isRetry {
			next := *job
			next.Version = job.Version + 1
			next.CreatedAt = time.Time{}
			next.UpdatedAt = time.Time{}
			if isRetry {
				next.CodeGenerationLogs = ""
				next.CodeVerificationLogs = ""
			}
			if err := tx.Create(&next).Error; err != nil {
				return fmt.Errorf("write new version: %w", err)
			}
			work = &next
		}

		// Plain field updates apply to the (possibly new) latest version.
		if update.Name != nil {
			work.Name = *update.Name
		}
		if update.Description != nil {
			work.Description = *update.Description
		}
		if update.Priority != nil {
			work.Priority = string(*update.Priority)
		}
		if update.Prompt != nil {
			work.Prompt = *update.Prompt
		}
		if update.RepoID != nil {
			repoID := *update.RepoID
			work.RepoID = &repoID
		}
		work.UserAcceptanceStatus = string(newAcceptance)
		if update.UserComments != nil {
			work.UserComments = encodeComments(newComments)
		}
		work.UpdatedBy = update.UpdatedBy

		// ─── Queue transitions, in spec order ────────────────────────────

		if update.Status != nil {
			switch *update.Status {
			case types.JobStatusInReview, types.JobStatusCompleted, types.JobStatusFailed:
				if oldStatus == types.JobStatusQueued {
					if err := removeFromQueueTx(tx, work, true); err != nil {
						return err
					}
				}
				work.Status = string(*update.Status)
				work.AgentID = nil
				appendUpdate(work, "status changed to "+string(*update.Status))
			}
		}

		if acceptanceToRework {
			if types.JobStatus(work.Status) == types.JobStatusQueued &&
				work.QueueType == string(types.QueueBacklog) && work.OrderInQueue >= 0 {
				if err := removeFromQueueTx(tx, work, false); err != nil {
					return err
				}
			}
			if err := insertAtTailTx(tx, work, types.QueueRework); err != nil {
				return err
			}
			appendUpdate(work, "rework requested, queued in rework")
		} else if acceptanceBack {
			if err := removeFromQueueTx(tx, work, false); err != nil {
				return err
			}
			if err := insertAtTailTx(tx, work, types.QueueBacklog); err != nil {
				return err
			}
			appendUpdate(work, "rework withdrawn, returned to backlog")
		}

		if update.Status != nil && *update.Status == types.JobStatusQueued &&
			oldStatus != types.JobStatusQueued &&
			types.JobStatus(work.Status) != types.JobStatusQueued {
			if err := insertAtTailTx(tx, work, targetQueue); err != nil {
				return err
			}
			appendUpdate(work, "re-entered "+string(targetQueue)+" queue")
		}

		if isRetry {
			line := "retry requested"
			if len(newComments) > 0 {
				line = fmt.Sprintf("retry requested with comment: %q", newComments[len(newComments)-1])
			}
			appendUpdate(work, line)
		}

		if err := tx.Save(work).Error; err != nil {
			return fmt.Errorf("save: %w", err)
		}

		result = work
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidState) {
			return nil, err
		}
		return nil, fmt.Errorf("jobs: apply user update: %w", err)
	}
	return result, nil
}

// Archive sets the latest version to archived. A queued job leaves its
// queue first so positions stay contiguous.
func (r *gormJobRepository) Archive(ctx context.Context, id, orgID uuid.UUID, updatedBy uuid.UUID) (*db.Job, error) {
	var result *db.Job

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		job, err := latestForUpdate(tx, id, orgID)
		if err != nil {
			return err
		}
		if job.Status == string(types.JobStatusArchived) {
			return ErrInvalidState
		}

		if err := removeFromQueueTx(tx, job, true); err != nil {
			return err
		}

		job.Status = string(types.JobStatusArchived)
		job.AgentID = nil
		job.UpdatedBy = updatedBy
		appendUpdate(job, "job archived")

		if err := tx.Save(job).Error; err != nil {
			return fmt.Errorf("save: %w", err)
		}
		result = job
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidState) {
			return nil, err
		}
		return nil, fmt.Errorf("jobs: archive: %w", err)
	}
	return result, nil
}

// ClaimSpecific is the manual dispatch path: one specific queued job leaves
// its queue (provenance retained) and is assigned in-progress to the agent.
func (r *gormJobRepository) ClaimSpecific(ctx context.Context, id, orgID, agentID uuid.UUID) (*db.Job, error) {
	var result *db.Job

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		job, err := latestForUpdate(tx, id, orgID)
		if err != nil {
			return err
		}
		if job.Status != string(types.JobStatusQueued) ||
			job.QueueType == string(types.QueueNone) || job.OrderInQueue < 0 {
			return ErrInvalidState
		}

		if err := removeFromQueueTx(tx, job, false); err != nil {
			return err
		}

		job.Status = string(types.JobStatusInProgress)
		job.AgentID = &agentID
		appendUpdate(job, "manually dispatched to agent "+agentID.String())

		if err := tx.Save(job).Error; err != nil {
			return fmt.Errorf("save: %w", err)
		}
		result = job
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidState) {
			return nil, err
		}
		return nil, fmt.Errorf("jobs: claim specific: %w", err)
	}
	return result, nil
}

// appendUpdate appends one timestamped line to the job's human-readable
// updates trail.
func appendUpdate(job *db.Job, line string) {
	stamped := time.Now().UTC().Format(time.RFC3339) + " " + line + "\n"
	job.Updates += stamped
}

// decodeComments parses the stored JSON comment array. Corrupt data reads
// as empty rather than failing the whole update.
func decodeComments(raw string) []string {
	if raw == "" {
		return nil
	}
	var comments []string
	if err := json.Unmarshal([]byte(raw), &comments); err != nil {
		return nil
	}
	return comments
}

// encodeComments serializes the comment list back to its stored form.
func encodeComments(comments []string) string {
	if comments == nil {
		comments = []string{}
	}
	b, err := json.Marshal(comments)
	if err != nil {
		return "[]"
	}
	return string(b)
}
