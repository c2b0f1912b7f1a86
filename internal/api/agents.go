package api

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/conductor-ci/conductor/internal/agentmanager"
	"github.com/conductor-ci/conductor/internal/db"
	"github.com/conductor-ci/conductor/internal/dispatch"
	"github.com/conductor-ci/conductor/internal/repositories"
	"github.com/conductor-ci/conductor/internal/workflow"
)

// AgentHandler groups all agent-related HTTP handlers. Agents are created
// by gRPC registration, not here — the REST surface reads, renames,
// deletes, and reconnects them.
type AgentHandler struct {
	repo    repositories.AgentRepository
	manager *agentmanager.Manager
	health  *dispatch.HealthChecker
	engine  *workflow.Engine
	logger  *zap.Logger
}

// NewAgentHandler creates a new AgentHandler.
func NewAgentHandler(
	repo repositories.AgentRepository,
	manager *agentmanager.Manager,
	health *dispatch.HealthChecker,
	engine *workflow.Engine,
	logger *zap.Logger,
) *AgentHandler {
	return &AgentHandler{
		repo:    repo,
		manager: manager,
		health:  health,
		engine:  engine,
		logger:  logger.Named("agent_handler"),
	}
}

// agentResponse is the JSON representation of an agent returned by the API.
type agentResponse struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	Hostname              string  `json:"hostname"`
	IPAddress             string  `json:"ip_address"`
	Port                  int     `json:"port"`
	Status                string  `json:"status"`
	ConsecutiveFailures   int     `json:"consecutive_failures"`
	StreamConnected       bool    `json:"stream_connected"`
	LastActiveAt          *string `json:"last_active_at"`
	LastStreamConnectedAt *string `json:"last_stream_connected_at"`
	CreatedAt             string  `json:"created_at"`
}

// agentToResponse converts a db.Agent to an agentResponse. StreamConnected
// reflects the live in-memory registry, not the persisted status.
func (h *AgentHandler) agentToResponse(a *db.Agent) agentResponse {
	resp := agentResponse{
		ID:                  a.ID.String(),
		Name:                a.Name,
		Hostname:            a.Hostname,
		IPAddress:           a.IPAddress,
		Port:                a.Port,
		Status:              a.Status,
		ConsecutiveFailures: a.ConsecutiveFailures,
		StreamConnected:     h.manager.IsConnected(a.ID),
		CreatedAt:           a.CreatedAt.UTC().String(),
	}
	if a.LastActiveAt != nil {
		s := a.LastActiveAt.UTC().String()
		resp.LastActiveAt = &s
	}
	if a.LastStreamConnectedAt != nil {
		s := a.LastStreamConnectedAt.UTC().String()
		resp.LastStreamConnectedAt = &s
	}
	return resp
}

// listAgentsResponse wraps a paginated list of agents.
type listAgentsResponse struct {
	Items []agentResponse `json:"items"`
	Total int64           `json:"total"`
}

// List handles GET /api/v1/agents.
func (h *AgentHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := identityFromCtx(r.Context())
	opts := paginationOpts(r)

	agents, total, err := h.repo.List(r.Context(), identity.OrgID, opts)
	if err != nil {
		h.logger.Error("failed to list agents", zap.Error(err))
		ErrInternal(w)
		return
	}

	items := make([]agentResponse, len(agents))
	for i := range agents {
		items[i] = h.agentToResponse(&agents[i])
	}
	Ok(w, listAgentsResponse{Items: items, Total: total})
}

// GetByID handles GET /api/v1/agents/{id}.
func (h *AgentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	identity := identityFromCtx(r.Context())
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}

	agent, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			ErrNotFound(w)
			return
		}
		h.logger.Error("failed to get agent", zap.String("id", id.String()), zap.Error(err))
		ErrInternal(w)
		return
	}
	if agent.OrgID != identity.OrgID {
		ErrNotFound(w)
		return
	}

	Ok(w, h.agentToResponse(agent))
}

// updateAgentRequest is the JSON body expected by PATCH /api/v1/agents/{id}.
type updateAgentRequest struct {
	Name *string `json:"name"`
}

// Update handles PATCH /api/v1/agents/{id}. Only the display name is
// user-editable — everything else is owned by registration and liveness.
func (h *AgentHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity := identityFromCtx(r.Context())
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateAgentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	agent, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			ErrNotFound(w)
			return
		}
		h.logger.Error("failed to get agent for update", zap.String("id", id.String()), zap.Error(err))
		ErrInternal(w)
		return
	}
	if agent.OrgID != identity.OrgID {
		ErrNotFound(w)
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			ErrBadRequest(w, "name cannot be empty")
			return
		}
		agent.Name = *req.Name
	}

	if err := h.repo.Update(r.Context(), agent); err != nil {
		h.logger.Error("failed to update agent", zap.String("id", id.String()), zap.Error(err))
		ErrInternal(w)
		return
	}

	Ok(w, h.agentToResponse(agent))
}

// Delete handles DELETE /api/v1/agents/{id}. The agent's schedules and
// binding are torn down along with the record.
func (h *AgentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity := identityFromCtx(r.Context())
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}

	agent, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			ErrNotFound(w)
			return
		}
		h.logger.Error("failed to get agent for delete", zap.String("id", id.String()), zap.Error(err))
		ErrInternal(w)
		return
	}
	if agent.OrgID != identity.OrgID {
		ErrNotFound(w)
		return
	}

	if err := h.engine.RemoveAgentSchedules(r.Context(), id); err != nil {
		h.logger.Warn("failed to remove agent schedules", zap.String("id", id.String()), zap.Error(err))
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.logger.Error("failed to delete agent", zap.String("id", id.String()), zap.Error(err))
		ErrInternal(w)
		return
	}

	NoContent(w)
}

// Reconnect handles POST /api/v1/agents/{id}/reconnect — the user-initiated
// liveness probe that bypasses the schedule. One synchronous ping with a
// 10-second timeout; success returns the agent to active and resumes its
// schedules.
func (h *AgentHandler) Reconnect(w http.ResponseWriter, r *http.Request) {
	identity := identityFromCtx(r.Context())
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}

	agent, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			ErrNotFound(w)
			return
		}
		h.logger.Error("failed to get agent for reconnect", zap.String("id", id.String()), zap.Error(err))
		ErrInternal(w)
		return
	}
	if agent.OrgID != identity.OrgID {
		ErrNotFound(w)
		return
	}

	if err := h.health.Reconnect(r.Context(), id); err != nil {
		h.logger.Warn("agent reconnect failed", zap.String("id", id.String()), zap.Error(err))
		ErrUnprocessable(w, "agent did not respond to the reconnect ping")
		return
	}

	refreshed, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		ErrInternal(w)
		return
	}
	Ok(w, h.agentToResponse(refreshed))
}
