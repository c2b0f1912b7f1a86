package api

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/conductor-ci/conductor/internal/auth"
	"github.com/conductor-ci/conductor/internal/db"
	"github.com/conductor-ci/conductor/internal/repositories"
)

// APIKeyHandler manages the org's agent API keys. The raw key value is
// returned exactly once, in the create response — only the hash is stored.
type APIKeyHandler struct {
	repo   repositories.APIKeyRepository
	logger *zap.Logger
}

// NewAPIKeyHandler creates a new APIKeyHandler.
func NewAPIKeyHandler(repo repositories.APIKeyRepository, logger *zap.Logger) *APIKeyHandler {
	return &APIKeyHandler{
		repo:   repo,
		logger: logger.Named("apikey_handler"),
	}
}

// apiKeyResponse is the JSON representation of an API key. The raw value
// is intentionally excluded — it is only shown once at creation time via
// apiKeyCreateResponse.
type apiKeyResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Revoked    bool    `json:"revoked"`
	LastUsedAt *string `json:"last_used_at"`
	CreatedAt  string  `json:"created_at"`
}

// apiKeyCreateResponse extends apiKeyResponse with the raw key, shown only
// once at creation. The key cannot be recovered after this.
type apiKeyCreateResponse struct {
	apiKeyResponse
	Key string `json:"key"`
}

func apiKeyToResponse(k *db.APIKey) apiKeyResponse {
	resp := apiKeyResponse{
		ID:        k.ID.String(),
		Name:      k.Name,
		Revoked:   k.Revoked,
		CreatedAt: k.CreatedAt.UTC().String(),
	}
	if k.LastUsedAt != nil {
		s := k.LastUsedAt.UTC().String()
		resp.LastUsedAt = &s
	}
	return resp
}

// List handles GET /api/v1/api-keys.
func (h *APIKeyHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := identityFromCtx(r.Context())

	keys, err := h.repo.ListByOrg(r.Context(), identity.OrgID)
	if err != nil {
		h.logger.Error("failed to list api keys", zap.Error(err))
		ErrInternal(w)
		return
	}

	items := make([]apiKeyResponse, len(keys))
	for i := range keys {
		items[i] = apiKeyToResponse(&keys[i])
	}
	Ok(w, items)
}

// createAPIKeyRequest is the JSON body expected by POST /api/v1/api-keys.
type createAPIKeyRequest struct {
	Name string `json:"name"`
}

// Create handles POST /api/v1/api-keys.
func (h *APIKeyHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := identityFromCtx(r.Context())

	var req createAPIKeyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		ErrBadRequest(w, "name is required")
		return
	}

	raw, hash, err := auth.GenerateAPIKey()
	if err != nil {
		h.logger.Error("failed to generate api key", zap.Error(err))
		ErrInternal(w)
		return
	}

	key := &db.APIKey{
		OrgID:     identity.OrgID,
		Name:      req.Name,
		KeyHash:   hash,
		CreatedBy: identity.UserID,
	}
	if err := h.repo.Create(r.Context(), key); err != nil {
		h.logger.Error("failed to create api key", zap.Error(err))
		ErrInternal(w)
		return
	}

	Created(w, apiKeyCreateResponse{
		apiKeyResponse: apiKeyToResponse(key),
		Key:            raw,
	})
}

// Revoke handles DELETE /api/v1/api-keys/{id}.
func (h *APIKeyHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	identity := identityFromCtx(r.Context())
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.repo.Revoke(r.Context(), id, identity.OrgID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			ErrNotFound(w)
			return
		}
		h.logger.Error("failed to revoke api key", zap.String("id", id.String()), zap.Error(err))
		ErrInternal(w)
		return
	}
	NoContent(w)
}

// parseUUIDString parses a raw UUID string, returning an error if invalid.
// Used for query parameter parsing where parseUUID (path param) is not applicable.
func parseUUIDString(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}
