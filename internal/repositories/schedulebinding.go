package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/conductor-ci/conductor/internal/db"
)

// gormScheduleBindingRepository is the GORM implementation of ScheduleBindingRepository.
type gormScheduleBindingRepository struct {
	db *gorm.DB
}

// NewScheduleBindingRepository returns a ScheduleBindingRepository backed by the provided *gorm.DB.
func NewScheduleBindingRepository(db *gorm.DB) ScheduleBindingRepository {
	return &gormScheduleBindingRepository{db: db}
}

// Upsert records (or replaces) the schedule IDs bound to an agent. It is
// called each time the agent's schedules are created: when an agent that
// was not active registers, and on a manual reconnect.
func (r *gormScheduleBindingRepository) Upsert(ctx context.Context, binding *db.ScheduleBinding) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "agent_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"queue_schedule_id", "health_check_schedule_id", "updated_at"}),
		}).
		Create(binding).Error
	if err != nil {
		return fmt.Errorf("schedule bindings: upsert: %w", err)
	}
	return nil
}

// GetByAgent retrieves the binding for an agent.
func (r *gormScheduleBindingRepository) GetByAgent(ctx context.Context, agentID uuid.UUID) (*db.ScheduleBinding, error) {
	var binding db.ScheduleBinding
	err := r.db.WithContext(ctx).
		First(&binding, "agent_id = ?", agentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("schedule bindings: get by agent: %w", err)
	}
	return &binding, nil
}

// DeleteByAgent removes the binding when the agent is deleted.
func (r *gormScheduleBindingRepository) DeleteByAgent(ctx context.Context, agentID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&db.ScheduleBinding{}, "agent_id = ?", agentID)
	if result.Error != nil {
		return fmt.Errorf("schedule bindings: delete by agent: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns every binding. Used at startup to rebuild the in-memory
// schedules after a server restart.
func (r *gormScheduleBindingRepository) List(ctx context.Context) ([]db.ScheduleBinding, error) {
	var bindings []db.ScheduleBinding
	if err := r.db.WithContext(ctx).Find(&bindings).Error; err != nil {
		return nil, fmt.Errorf("schedule bindings: list: %w", err)
	}
	return bindings, nil
}
