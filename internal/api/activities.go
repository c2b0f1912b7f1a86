package api

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/conductor-ci/conductor/internal/db"
	"github.com/conductor-ci/conductor/internal/repositories"
)

// ActivityHandler serves the org's audit feed and the per-user read flags.
type ActivityHandler struct {
	repo   repositories.ActivityRepository
	logger *zap.Logger
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(repo repositories.ActivityRepository, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{
		repo:   repo,
		logger: logger.Named("activity_handler"),
	}
}

// activityResponse is the JSON representation of an activity record.
type activityResponse struct {
	ID         string `json:"id"`
	JobID      string `json:"job_id"`
	Name       string `json:"name"`
	Summary    string `json:"summary"`
	ReadStatus string `json:"read_status"`
	CreatedBy  string `json:"created_by"`
	CreatedAt  string `json:"created_at"`
}

func activityToResponse(a *db.Activity, readStatus string) activityResponse {
	return activityResponse{
		ID:         a.ID.String(),
		JobID:      a.JobID.String(),
		Name:       a.Name,
		Summary:    a.Summary,
		ReadStatus: readStatus,
		CreatedBy:  a.CreatedBy.String(),
		CreatedAt:  a.CreatedAt.UTC().String(),
	}
}

// listActivitiesResponse wraps a paginated list of activities.
type listActivitiesResponse struct {
	Items []activityResponse `json:"items"`
	Total int64              `json:"total"`
}

// List handles GET /api/v1/activities. Filters to one job with ?job_id=.
// Each item carries the caller's read status.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := identityFromCtx(r.Context())

	var activities []db.Activity
	var total int64
	var err error

	if jobID := r.URL.Query().Get("job_id"); jobID != "" {
		id, parseErr := parseUUIDString(jobID)
		if parseErr != nil {
			ErrBadRequest(w, "invalid job_id: must be a valid UUID")
			return
		}
		activities, err = h.repo.ListByJob(r.Context(), id, identity.OrgID)
		total = int64(len(activities))
	} else {
		activities, total, err = h.repo.ListByOrg(r.Context(), identity.OrgID, paginationOpts(r))
	}
	if err != nil {
		h.logger.Error("failed to list activities", zap.Error(err))
		ErrInternal(w)
		return
	}

	items := make([]activityResponse, len(activities))
	for i := range activities {
		status, err := h.repo.ReadStatus(r.Context(), activities[i].ID, identity.UserID)
		if err != nil {
			h.logger.Warn("failed to read activity status", zap.Error(err))
			status = "unread"
		}
		items[i] = activityToResponse(&activities[i], string(status))
	}
	Ok(w, listActivitiesResponse{Items: items, Total: total})
}

// GetByID handles GET /api/v1/activities/{id}.
func (h *ActivityHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	identity := identityFromCtx(r.Context())
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}

	activity, err := h.repo.GetByID(r.Context(), id, identity.OrgID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			ErrNotFound(w)
			return
		}
		h.logger.Error("failed to get activity", zap.String("id", id.String()), zap.Error(err))
		ErrInternal(w)
		return
	}

	status, err := h.repo.ReadStatus(r.Context(), activity.ID, identity.UserID)
	if err != nil {
		status = "unread"
	}
	Ok(w, activityToResponse(activity, string(status)))
}

// MarkRead handles POST /api/v1/activities/{id}/read.
func (h *ActivityHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	identity := identityFromCtx(r.Context())
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}

	if _, err := h.repo.GetByID(r.Context(), id, identity.OrgID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			ErrNotFound(w)
			return
		}
		h.logger.Error("failed to get activity for read mark", zap.String("id", id.String()), zap.Error(err))
		ErrInternal(w)
		return
	}

	if err := h.repo.MarkRead(r.Context(), id, identity.UserID); err != nil {
		h.logger.Error("failed to mark activity read", zap.String("id", id.String()), zap.Error(err))
		ErrInternal(w)
		return
	}
	NoContent(w)
}
