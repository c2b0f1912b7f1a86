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

// gormQueuePauseRepository is the GORM implementation of QueuePauseRepository.
type gormQueuePauseRepository struct {
	db *gorm.DB
}

// NewQueuePauseRepository returns a QueuePauseRepository backed by the provided *gorm.DB.
func NewQueuePauseRepository(db *gorm.DB) QueuePauseRepository {
	return &gormQueuePauseRepository{db: db}
}

// IsPaused reports the pause flag for (org, queue). Queues run by default —
// a missing row reads as not paused.
func (r *gormQueuePauseRepository) IsPaused(ctx context.Context, orgID uuid.UUID, queue types.QueueType) (bool, error) {
	var row db.QueuePause
	err := r.db.WithContext(ctx).
		First(&row, "org_id = ? AND queue_type = ?", orgID, queue).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("queue pauses: is paused: %w", err)
	}
	return row.IsPaused, nil
}

// SetPaused upserts the pause flag for (org, queue).
func (r *gormQueuePauseRepository) SetPaused(ctx context.Context, orgID uuid.UUID, queue types.QueueType, paused bool) error {
	row := db.QueuePause{
		OrgID:     orgID,
		QueueType: string(queue),
		IsPaused:  paused,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "org_id"}, {Name: "queue_type"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_paused", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("queue pauses: set paused: %w", err)
	}
	return nil
}
