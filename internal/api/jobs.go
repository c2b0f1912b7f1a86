package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/conductor-ci/conductor/internal/db"
	"github.com/conductor-ci/conductor/internal/dispatch"
	"github.com/conductor-ci/conductor/internal/repositories"
	"github.com/conductor-ci/conductor/internal/types"
)

// JobHandler groups all job-related HTTP handlers. Creation and the
// user-driven transitions happen here; the in-progress transition belongs
// exclusively to the dispatch engine and is rejected with a 400.
type JobHandler struct {
	jobs       repositories.JobRepository
	agents     repositories.AgentRepository
	activities repositories.ActivityRepository
	executor   *dispatch.JobExecutor
	logger     *zap.Logger
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(
	jobs repositories.JobRepository,
	agents repositories.AgentRepository,
	activities repositories.ActivityRepository,
	executor *dispatch.JobExecutor,
	logger *zap.Logger,
) *JobHandler {
	return &JobHandler{
		jobs:       jobs,
		agents:     agents,
		activities: activities,
		executor:   executor,
		logger:     logger.Named("job_handler"),
	}
}

// -----------------------------------------------------------------------------
// Response types
// -----------------------------------------------------------------------------

// jobResponse is the JSON representation of a job version.
type jobResponse struct {
	ID                   string   `json:"id"`
	Version              int      `json:"version"`
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	Status               string   `json:"status"`
	Priority             string   `json:"priority"`
	QueueType            string   `json:"queue_type"`
	OrderInQueue         int      `json:"order_in_queue"`
	AgentID              *string  `json:"agent_id"`
	Source               string   `json:"source"`
	Prompt               string   `json:"prompt"`
	RepoID               *string  `json:"repo_id"`
	UserAcceptanceStatus string   `json:"user_acceptance_status"`
	UserComments         []string `json:"user_comments"`
	PRLink               string   `json:"pr_link"`
	ConfidenceScore      *float64 `json:"confidence_score"`
	Updates              string   `json:"updates"`
	CreatedAt            string   `json:"created_at"`
	UpdatedAt            string   `json:"updated_at"`
}

// jobToResponse converts a db.Job to a jobResponse.
func jobToResponse(j *db.Job) jobResponse {
	resp := jobResponse{
		ID:                   j.ID.String(),
		Version:              j.Version,
		Name:                 j.Name,
		Description:          j.Description,
		Status:               j.Status,
		Priority:             j.Priority,
		QueueType:            j.QueueType,
		OrderInQueue:         j.OrderInQueue,
		Source:               j.Source,
		Prompt:               j.Prompt,
		UserAcceptanceStatus: j.UserAcceptanceStatus,
		PRLink:               j.PRLink,
		ConfidenceScore:      j.ConfidenceScore,
		Updates:              j.Updates,
		CreatedAt:            j.CreatedAt.UTC().String(),
		UpdatedAt:            j.UpdatedAt.UTC().String(),
	}
	if j.AgentID != nil {
		s := j.AgentID.String()
		resp.AgentID = &s
	}
	if j.RepoID != nil {
		s := j.RepoID.String()
		resp.RepoID = &s
	}
	resp.UserComments = []string{}
	if j.UserComments != "" {
		_ = json.Unmarshal([]byte(j.UserComments), &resp.UserComments)
	}
	return resp
}

// jobLogResponse represents a single log line from a job execution.
type jobLogResponse struct {
	ID        string `json:"id"`
	Level     string `json:"level"`
	Stage     string `json:"stage"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// listJobsResponse wraps a paginated list of jobs.
type listJobsResponse struct {
	Items []jobResponse `json:"items"`
	Total int64         `json:"total"`
}

// -----------------------------------------------------------------------------
// Handlers
// -----------------------------------------------------------------------------

// createJobRequest is the JSON body expected by POST /api/v1/jobs.
type createJobRequest struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Prompt         string  `json:"prompt"`
	Source         string  `json:"source"`
	SourceMetadata string  `json:"source_metadata"`
	Priority       string  `json:"priority"`
	RepoID         *string `json:"repo_id"`
}

// Create handles POST /api/v1/jobs. The new job lands at the tail of the
// caller org's backlog. Name and description default to a prompt excerpt
// when omitted.
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := identityFromCtx(r.Context())

	var req createJobRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		ErrBadRequest(w, "prompt is required")
		return
	}

	name := req.Name
	if name == "" {
		name = promptExcerpt(req.Prompt, 60)
	}
	description := req.Description
	if description == "" {
		description = promptExcerpt(req.Prompt, 200)
	}
	source := req.Source
	if source == "" {
		source = "api"
	}
	priority := req.Priority
	if priority == "" {
		priority = string(types.PriorityMedium)
	}
	metadata := req.SourceMetadata
	if metadata == "" {
		metadata = "{}"
	}

	job := &db.Job{
		OrgID:       identity.OrgID,
		Name:        name,
		Description: description,
		// The row is created outside any queue and appended atomically
		// below, so a concurrent claim can never see a half-inserted head.
		Status:               string(types.JobStatusQueued),
		Priority:             priority,
		QueueType:            string(types.QueueNone),
		OrderInQueue:         -1,
		Source:               source,
		Prompt:               req.Prompt,
		SourceMetadata:       metadata,
		UserAcceptanceStatus: string(types.AcceptanceNotReviewed),
		UserComments:         "[]",
		CreatedBy:            identity.UserID,
		UpdatedBy:            identity.UserID,
	}
	if req.RepoID != nil {
		repoID, err := uuid.Parse(*req.RepoID)
		if err != nil {
			ErrBadRequest(w, "invalid repo_id: must be a valid UUID")
			return
		}
		job.RepoID = &repoID
	}

	if err := h.jobs.Create(r.Context(), job); err != nil {
		h.logger.Error("failed to create job", zap.Error(err))
		ErrInternal(w)
		return
	}
	if err := h.jobs.InsertAtTail(r.Context(), job.ID, identity.OrgID, types.QueueBacklog); err != nil {
		h.logger.Error("failed to enqueue job", zap.String("job_id", job.ID.String()), zap.Error(err))
		ErrInternal(w)
		return
	}

	created, err := h.jobs.Latest(r.Context(), job.ID, identity.OrgID)
	if err != nil {
		h.logger.Error("failed to reload created job", zap.String("job_id", job.ID.String()), zap.Error(err))
		ErrInternal(w)
		return
	}

	h.recordActivity(r.Context(), created, "job_created", "job created and queued in backlog", identity.UserID)
	Created(w, jobToResponse(created))
}

// List handles GET /api/v1/jobs. Returns latest versions only.
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := identityFromCtx(r.Context())
	opts := paginationOpts(r)

	jobs, total, err := h.jobs.List(r.Context(), identity.OrgID, opts)
	if err != nil {
		h.logger.Error("failed to list jobs", zap.Error(err))
		ErrInternal(w)
		return
	}

	items := make([]jobResponse, len(jobs))
	for i := range jobs {
		items[i] = jobToResponse(&jobs[i])
	}
	Ok(w, listJobsResponse{Items: items, Total: total})
}

// GetByID handles GET /api/v1/jobs/{id}. Returns the latest version, or a
// specific one with ?version=N.
func (h *JobHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	identity := identityFromCtx(r.Context())
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}

	var job *db.Job
	var err error
	if v := r.URL.Query().Get("version"); v != "" {
		version, convErr := strconv.Atoi(v)
		if convErr != nil || version < 1 {
			ErrBadRequest(w, "invalid version: must be a positive integer")
			return
		}
		job, err = h.jobs.GetVersion(r.Context(), id, identity.OrgID, version)
	} else {
		job, err = h.jobs.Latest(r.Context(), id, identity.OrgID)
	}
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			ErrNotFound(w)
			return
		}
		h.logger.Error("failed to get job", zap.String("id", id.String()), zap.Error(err))
		ErrInternal(w)
		return
	}

	Ok(w, jobToResponse(job))
}

// GetLogs handles GET /api/v1/jobs/{id}/logs. Logs belong to one job
// version; the latest version's series is returned unless ?version= says
// otherwise.
func (h *JobHandler) GetLogs(w http.ResponseWriter, r *http.Request) {
	identity := identityFromCtx(r.Context())
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}

	job, err := h.jobs.Latest(r.Context(), id, identity.OrgID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			ErrNotFound(w)
			return
		}
		h.logger.Error("failed to get job for logs", zap.String("id", id.String()), zap.Error(err))
		ErrInternal(w)
		return
	}

	version := job.Version
	if v := r.URL.Query().Get("version"); v != "" {
		if n, convErr := strconv.Atoi(v); convErr == nil && n >= 1 {
			version = n
		}
	}

	logs, err := h.jobs.GetLogs(r.Context(), id, version)
	if err != nil {
		h.logger.Error("failed to get job logs", zap.String("job_id", id.String()), zap.Error(err))
		ErrInternal(w)
		return
	}

	items := make([]jobLogResponse, len(logs))
	for i, l := range logs {
		items[i] = jobLogResponse{
			ID:        l.ID.String(),
			Level:     l.Level,
			Stage:     l.Stage,
			Message:   l.Message,
			Timestamp: l.Timestamp.UTC().String(),
		}
	}
	Ok(w, items)
}

// updateJobRequest is the JSON body expected by PUT /api/v1/jobs/{id}.
// All fields are optional — absent fields are left untouched.
type updateJobRequest struct {
	Name                 *string  `json:"name"`
	Description          *string  `json:"description"`
	Status               *string  `json:"status"`
	QueueType            *string  `json:"queue_type"`
	Priority             *string  `json:"priority"`
	UserAcceptanceStatus *string  `json:"user_acceptance_status"`
	UserComments         []string `json:"user_comments"`
	Prompt               *string  `json:"prompt"`
	RepoID               *string  `json:"repo_id"`
}

// Update handles PUT /api/v1/jobs/{id} — the orchestrated user-driven
// transition. The queued → in-progress transition is rejected; that move
// belongs to the dispatch engine.
func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity := identityFromCtx(r.Context())
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateJobRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	update := repositories.UserUpdate{
		Name:         req.Name,
		Description:  req.Description,
		UserComments: req.UserComments,
		Prompt:       req.Prompt,
		UpdatedBy:    identity.UserID,
	}
	if req.Status != nil {
		status := types.JobStatus(*req.Status)
		switch status {
		case types.JobStatusQueued, types.JobStatusInProgress, types.JobStatusInReview,
			types.JobStatusCompleted, types.JobStatusFailed:
			update.Status = &status
		default:
			ErrBadRequest(w, "invalid status")
			return
		}
	}
	if req.QueueType != nil {
		queue := types.QueueType(*req.QueueType)
		if queue != types.QueueBacklog && queue != types.QueueRework {
			ErrBadRequest(w, "invalid queue_type")
			return
		}
		update.QueueType = &queue
	}
	if req.Priority != nil {
		priority := types.JobPriority(*req.Priority)
		if priority != types.PriorityLow && priority != types.PriorityMedium && priority != types.PriorityHigh {
			ErrBadRequest(w, "invalid priority")
			return
		}
		update.Priority = &priority
	}
	if req.UserAcceptanceStatus != nil {
		acceptance := types.AcceptanceStatus(*req.UserAcceptanceStatus)
		switch acceptance {
		case types.AcceptanceNotReviewed, types.AcceptanceAccepted,
			types.AcceptanceAskedRework, types.AcceptanceRejected:
			update.AcceptanceStatus = &acceptance
		default:
			ErrBadRequest(w, "invalid user_acceptance_status")
			return
		}
	}
	if req.RepoID != nil {
		repoID, err := uuid.Parse(*req.RepoID)
		if err != nil {
			ErrBadRequest(w, "invalid repo_id: must be a valid UUID")
			return
		}
		update.RepoID = &repoID
	}

	job, err := h.jobs.ApplyUserUpdate(r.Context(), id, identity.OrgID, update)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			ErrNotFound(w)
		case errors.Is(err, repositories.ErrInvalidState):
			ErrBadRequest(w, "queued jobs are moved to in-progress by the dispatch engine, not this endpoint")
		default:
			h.logger.Error("failed to update job", zap.String("id", id.String()), zap.Error(err))
			ErrInternal(w)
		}
		return
	}

	h.recordActivity(r.Context(), job, "job_updated", "job updated", identity.UserID)
	Ok(w, jobToResponse(job))
}

// Archive handles DELETE /api/v1/jobs/{id}. A queued job leaves its queue
// first so positions stay contiguous; archiving an archived job is a 400.
func (h *JobHandler) Archive(w http.ResponseWriter, r *http.Request) {
	identity := identityFromCtx(r.Context())
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}

	job, err := h.jobs.Archive(r.Context(), id, identity.OrgID, identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			ErrNotFound(w)
		case errors.Is(err, repositories.ErrInvalidState):
			ErrBadRequest(w, "job is already archived")
		default:
			h.logger.Error("failed to archive job", zap.String("id", id.String()), zap.Error(err))
			ErrInternal(w)
		}
		return
	}

	h.recordActivity(r.Context(), job, "job_archived", "job archived", identity.UserID)
	Ok(w, jobToResponse(job))
}

// executeJobRequest is the JSON body expected by POST /api/v1/jobs/{id}/execute.
type executeJobRequest struct {
	AgentID string `json:"agent_id"`
}

// Execute handles POST /api/v1/jobs/{id}/execute — manual dispatch. Only
// valid for a queued job with a queue; the job leaves its queue, the
// remainder is reprioritized, and the execution workflow starts for the
// requested agent. Responds 202 — progress is reported on the job record.
func (h *JobHandler) Execute(w http.ResponseWriter, r *http.Request) {
	identity := identityFromCtx(r.Context())
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}

	var req executeJobRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	agentID, err := uuid.Parse(req.AgentID)
	if err != nil {
		ErrBadRequest(w, "invalid agent_id: must be a valid UUID")
		return
	}

	agent, err := h.agents.GetByID(r.Context(), agentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			ErrBadRequest(w, "agent not found")
			return
		}
		h.logger.Error("failed to load agent for execute", zap.Error(err))
		ErrInternal(w)
		return
	}
	if agent.OrgID != identity.OrgID {
		ErrNotFound(w)
		return
	}
	if agent.Status != string(types.AgentStatusActive) {
		ErrUnprocessable(w, "agent is not active")
		return
	}

	job, err := h.jobs.ClaimSpecific(r.Context(), id, identity.OrgID, agentID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			ErrNotFound(w)
		case errors.Is(err, repositories.ErrInvalidState):
			ErrBadRequest(w, "job must be queued with a queue to execute")
		default:
			h.logger.Error("failed to claim job for manual dispatch", zap.String("id", id.String()), zap.Error(err))
			ErrInternal(w)
		}
		return
	}

	queue := types.QueueType(job.QueueType)
	go func() {
		if err := h.executor.Execute(context.Background(), job.ID, identity.OrgID, queue, agentID); err != nil {
			h.logger.Error("manual job execution failed",
				zap.String("job_id", job.ID.String()),
				zap.String("agent_id", agentID.String()),
				zap.Error(err),
			)
		}
	}()

	h.recordActivity(r.Context(), job, "job_executed", "manual dispatch to agent "+agentID.String(), identity.UserID)
	Accepted(w, jobToResponse(job))
}

// reprioritizeRequest is the JSON body expected by POST /api/v1/jobs/{id}/reprioritize.
type reprioritizeRequest struct {
	Position int `json:"position"`
}

// Reprioritize handles POST /api/v1/jobs/{id}/reprioritize. Only valid for
// queued jobs; the position is clamped to [0, n-1] and the whole queue is
// rewritten contiguously in one transaction.
func (h *JobHandler) Reprioritize(w http.ResponseWriter, r *http.Request) {
	identity := identityFromCtx(r.Context())
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}

	var req reprioritizeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Position < 0 {
		ErrBadRequest(w, "position must be >= 0")
		return
	}

	final, err := h.jobs.MoveToPosition(r.Context(), id, identity.OrgID, req.Position)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			ErrNotFound(w)
		case errors.Is(err, repositories.ErrInvalidState):
			ErrBadRequest(w, "only queued jobs can be reprioritized")
		default:
			h.logger.Error("failed to reprioritize job", zap.String("id", id.String()), zap.Error(err))
			ErrInternal(w)
		}
		return
	}

	job, err := h.jobs.Latest(r.Context(), id, identity.OrgID)
	if err != nil {
		h.logger.Error("failed to reload reprioritized job", zap.String("id", id.String()), zap.Error(err))
		ErrInternal(w)
		return
	}

	h.recordActivity(r.Context(), job, "job_reprioritized",
		"moved to position "+strconv.Itoa(final), identity.UserID)
	Ok(w, jobToResponse(job))
}

// -----------------------------------------------------------------------------
// Internal helpers
// -----------------------------------------------------------------------------

// recordActivity writes the machine-readable audit row for a job event.
// Failures are logged, never surfaced — audit must not break the request.
func (h *JobHandler) recordActivity(ctx context.Context, job *db.Job, name, summary string, userID uuid.UUID) {
	activity := &db.Activity{
		JobID:     job.ID,
		OrgID:     job.OrgID,
		Name:      name,
		Summary:   summary,
		CreatedBy: userID,
		UpdatedBy: userID,
	}
	if err := h.activities.Create(ctx, activity); err != nil {
		h.logger.Warn("failed to record activity",
			zap.String("job_id", job.ID.String()),
			zap.String("name", name),
			zap.Error(err),
		)
	}
}

// promptExcerpt derives a display string from the prompt's first line.
func promptExcerpt(prompt string, max int) string {
	line := strings.TrimSpace(strings.SplitN(prompt, "\n", 2)[0])
	if len(line) > max {
		return line[:max-1] + "…"
	}
	return line
}

// parseUUID extracts and parses a UUID path parameter by name.
// Writes a 400 and returns false if the parameter is missing or malformed.
func parseUUID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, param)
	id, err := uuid.Parse(raw)
	if err != nil {
		ErrBadRequest(w, "invalid "+param+": must be a valid UUID")
		return uuid.UUID{}, false
	}
	return id, true
}

// paginationOpts reads limit and offset query parameters from the request.
// Defaults: limit=20, offset=0. Max limit is capped at 100.
func paginationOpts(r *http.Request) repositories.ListOptions {
	limit := 20
	offset := 0

	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > 100 {
		limit = 100
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	return repositories.ListOptions{Limit: limit, Offset: offset}
}
