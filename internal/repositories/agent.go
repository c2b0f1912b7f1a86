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

// gormAgentRepository is the GORM implementation of AgentRepository.
type gormAgentRepository struct {
	db *gorm.DB
}

// NewAgentRepository returns an AgentRepository backed by the provided *gorm.DB.
func NewAgentRepository(db *gorm.DB) AgentRepository {
	return &gormAgentRepository{db: db}
}

// Create inserts a new agent record into the database.
func (r *gormAgentRepository) Create(ctx context.Context, agent *db.Agent) error {
	if err := r.db.WithContext(ctx).Create(agent).Error; err != nil {
		return fmt.Errorf("agents: create: %w", err)
	}
	return nil
}

// GetByID retrieves an agent by its UUID.
// Returns ErrNotFound if no record exists.
func (r *gormAgentRepository) GetByID(ctx context.Context, id uuid.UUID) (*db.Agent, error) {
	var agent db.Agent
	err := r.db.WithContext(ctx).First(&agent, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("agents: get by id: %w", err)
	}
	return &agent, nil
}

// GetByOrgAndHostname retrieves an agent by its registration key.
// Used during agent registration to detect reconnections and avoid creating
// duplicate records — (org_id, hostname) carries a unique index.
func (r *gormAgentRepository) GetByOrgAndHostname(ctx context.Context, orgID uuid.UUID, hostname string) (*db.Agent, error) {
	var agent db.Agent
	err := r.db.WithContext(ctx).
		First(&agent, "org_id = ? AND hostname = ?", orgID, hostname).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("agents: get by org and hostname: %w", err)
	}
	return &agent, nil
}

// Update persists all fields of an existing agent record.
func (r *gormAgentRepository) Update(ctx context.Context, agent *db.Agent) error {
	result := r.db.WithContext(ctx).Save(agent)
	if result.Error != nil {
		return fmt.Errorf("agents: update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateStatus updates the liveness columns in a single query. The status
// and failure counter always travel together so the "active implies zero
// failures" invariant cannot be broken by a partial write.
func (r *gormAgentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status types.AgentStatus, failures int, lastActive time.Time) error {
	if status == types.AgentStatusActive {
		failures = 0
	}
	result := r.db.WithContext(ctx).
		Model(&db.Agent{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":               status,
			"consecutive_failures": failures,
			"last_active_at":       lastActive,
		})
	if result.Error != nil {
		return fmt.Errorf("agents: update status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkStreamConnected records a fresh stream session for the agent.
func (r *gormAgentRepository) MarkStreamConnected(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&db.Agent{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":                   types.AgentStatusActive,
			"consecutive_failures":     0,
			"last_active_at":           at,
			"last_stream_connected_at": at,
		})
	if result.Error != nil {
		return fmt.Errorf("agents: mark stream connected: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Heartbeat refreshes last_active_at and resets the failure counter without
// touching status. Called on every HEARTBEAT frame — two columns only, to
// avoid write amplification on the full row.
func (r *gormAgentRepository) Heartbeat(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&db.Agent{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"last_active_at":       at,
			"consecutive_failures": 0,
		})
	if result.Error != nil {
		return fmt.Errorf("agents: heartbeat: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementFailures bumps consecutive_failures atomically and returns the
// new value. The read-back happens in the same transaction so two health
// checks racing cannot both observe the pre-increment count.
func (r *gormAgentRepository) IncrementFailures(ctx context.Context, id uuid.UUID) (int, error) {
	var failures int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&db.Agent{}).
			Where("id = ?", id).
			UpdateColumn("consecutive_failures", gorm.Expr("consecutive_failures + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		var agent db.Agent
		if err := tx.Select("consecutive_failures").First(&agent, "id = ?", id).Error; err != nil {
			return err
		}
		failures = agent.ConsecutiveFailures
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("agents: increment failures: %w", err)
	}
	return failures, nil
}

// Delete removes an agent record permanently. Agents are destroyed only by
// explicit delete; liveness transitions never remove the row.
func (r *gormAgentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&db.Agent{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("agents: delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns a paginated list of an org's agents and the total count.
func (r *gormAgentRepository) List(ctx context.Context, orgID uuid.UUID, opts ListOptions) ([]db.Agent, int64, error) {
	var agents []db.Agent
	var total int64

	if err := r.db.WithContext(ctx).
		Model(&db.Agent{}).
		Where("org_id = ?", orgID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("agents: list count: %w", err)
	}

	if err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Limit(opts.Limit).
		Offset(opts.Offset).
		Order("created_at ASC").
		Find(&agents).Error; err != nil {
		return nil, 0, fmt.Errorf("agents: list: %w", err)
	}

	return agents, total, nil
}
