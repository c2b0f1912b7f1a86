package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/conductor-ci/conductor/internal/db"
	"github.com/conductor-ci/conductor/internal/types"
)

// gormActivityRepository is the GORM implementation of ActivityRepository.
type gormActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository returns an ActivityRepository backed by the provided *gorm.DB.
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &gormActivityRepository{db: db}
}

// Create appends a new audit record. Activities are append-only — there is
// no update or delete path.
func (r *gormActivityRepository) Create(ctx context.Context, activity *db.Activity) error {
	if err := r.db.WithContext(ctx).Create(activity).Error; err != nil {
		return fmt.Errorf("activities: create: %w", err)
	}
	return nil
}

// GetByID retrieves an activity scoped to an org.
func (r *gormActivityRepository) GetByID(ctx context.Context, id, orgID uuid.UUID) (*db.Activity, error) {
	var activity db.Activity
	err := r.db.WithContext(ctx).
		First(&activity, "id = ? AND org_id = ?", id, orgID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("activities: get by id: %w", err)
	}
	return &activity, nil
}

// ListByJob returns all activities for a job in chronological order.
func (r *gormActivityRepository) ListByJob(ctx context.Context, jobID, orgID uuid.UUID) ([]db.Activity, error) {
	var activities []db.Activity
	if err := r.db.WithContext(ctx).
		Where("job_id = ? AND org_id = ?", jobID, orgID).
		Order("created_at ASC").
		Find(&activities).Error; err != nil {
		return nil, fmt.Errorf("activities: list by job: %w", err)
	}
	return activities, nil
}

// ListByOrg returns a paginated feed of the org's activities, newest first.
func (r *gormActivityRepository) ListByOrg(ctx context.Context, orgID uuid.UUID, opts ListOptions) ([]db.Activity, int64, error) {
	var activities []db.Activity
	var total int64

	if err := r.db.WithContext(ctx).
		Model(&db.Activity{}).
		Where("org_id = ?", orgID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("activities: list count: %w", err)
	}

	if err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Limit(opts.Limit).
		Offset(opts.Offset).
		Order("created_at DESC").
		Find(&activities).Error; err != nil {
		return nil, 0, fmt.Errorf("activities: list by org: %w", err)
	}

	return activities, total, nil
}

// MarkRead upserts the per-user read flag for an activity.
func (r *gormActivityRepository) MarkRead(ctx context.Context, activityID, userID uuid.UUID) error {
	row := db.ActivityReadStatus{
		ActivityID: activityID,
		UserID:     userID,
		Status:     string(types.ReadStatusRead),
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "activity_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("activities: mark read: %w", err)
	}
	return nil
}

// ReadStatus reports a user's read flag for an activity. A missing row
// reads as unread.
func (r *gormActivityRepository) ReadStatus(ctx context.Context, activityID, userID uuid.UUID) (types.ReadStatus, error) {
	var row db.ActivityReadStatus
	err := r.db.WithContext(ctx).
		First(&row, "activity_id = ? AND user_id = ?", activityID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.ReadStatusUnread, nil
		}
		return "", fmt.Errorf("activities: read status: %w", err)
	}
	return types.ReadStatus(row.Status), nil
}
