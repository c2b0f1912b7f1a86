package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/conductor-ci/conductor/internal/db"
)

// gormAPIKeyRepository is the GORM implementation of APIKeyRepository.
type gormAPIKeyRepository struct {
	db *gorm.DB
}

// NewAPIKeyRepository returns an APIKeyRepository backed by the provided *gorm.DB.
func NewAPIKeyRepository(db *gorm.DB) APIKeyRepository {
	return &gormAPIKeyRepository{db: db}
}

// Create inserts a new API key record. Only the hash is persisted — the raw
// key is returned to the caller exactly once at creation time.
func (r *gormAPIKeyRepository) Create(ctx context.Context, key *db.APIKey) error {
	if err := r.db.WithContext(ctx).Create(key).Error; err != nil {
		return fmt.Errorf("api keys: create: %w", err)
	}
	return nil
}

// GetByHash resolves a non-revoked key by its SHA-256 hex digest.
// A miss translates to invalid credentials at the gRPC boundary.
func (r *gormAPIKeyRepository) GetByHash(ctx context.Context, hash string) (*db.APIKey, error) {
	var key db.APIKey
	err := r.db.WithContext(ctx).
		First(&key, "key_hash = ? AND revoked = ?", hash, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("api keys: get by hash: %w", err)
	}
	return &key, nil
}

// TouchLastUsed records the key's most recent successful use.
// Non-fatal for callers — a missed touch never blocks registration.
func (r *gormAPIKeyRepository) TouchLastUsed(ctx context.Context, id uuid.UUID, at time.Time) error {
	err := r.db.WithContext(ctx).
		Model(&db.APIKey{}).
		Where("id = ?", id).
		Update("last_used_at", at).Error
	if err != nil {
		return fmt.Errorf("api keys: touch last used: %w", err)
	}
	return nil
}

// Revoke marks a key unusable. Scoped by org so one tenant cannot revoke
// another tenant's key by guessing IDs.
func (r *gormAPIKeyRepository) Revoke(ctx context.Context, id, orgID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&db.APIKey{}).
		Where("id = ? AND org_id = ?", id, orgID).
		Update("revoked", true)
	if result.Error != nil {
		return fmt.Errorf("api keys: revoke: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByOrg returns all keys of an org, newest first, revoked included so
// the UI can show their history.
func (r *gormAPIKeyRepository) ListByOrg(ctx context.Context, orgID uuid.UUID) ([]db.APIKey, error) {
	var keys []db.APIKey
	if err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("created_at DESC").
		Find(&keys).Error; err != nil {
		return nil, fmt.Errorf("api keys: list by org: %w", err)
	}
	return keys, nil
}
