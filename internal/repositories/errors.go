package repositories

import "errors"

// ErrNotFound is returned by repository methods when the requested record
// does not exist in the database. Callers should check for this error
// explicitly using errors.Is to distinguish missing records from other
// database errors.
//
//	job, err := repo.Latest(ctx, id, orgID)
//	if errors.Is(err, repositories.ErrNotFound) {
//	    handle not found
//	}
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when an insert or update violates a unique
// constraint, or when a claim loses its retry budget to concurrent claimers.
var ErrConflict = errors.New("record already exists")

// ErrInvalidState is returned when an operation is applied to a record in a
// state that forbids it — e.g. reprioritizing a job that is not queued.
var ErrInvalidState = errors.New("invalid state for operation")
