package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/conductor-ci/conductor/internal/repositories"
	"github.com/conductor-ci/conductor/internal/types"
)

// QueueHandler exposes the per-(org, queue) pause flags. Pausing a queue
// stops the preprocess step from claiming out of it; queued jobs keep their
// positions.
type QueueHandler struct {
	pauses repositories.QueuePauseRepository
	logger *zap.Logger
}

// NewQueueHandler creates a new QueueHandler.
func NewQueueHandler(pauses repositories.QueuePauseRepository, logger *zap.Logger) *QueueHandler {
	return &QueueHandler{
		pauses: pauses,
		logger: logger.Named("queue_handler"),
	}
}

// queueStatusResponse is the JSON shape of GET /queues/{queueType}/status.
type queueStatusResponse struct {
	QueueType string `json:"queue_type"`
	IsPaused  bool   `json:"is_paused"`
}

// Pause handles POST /api/v1/queues/{queueType}/pause.
func (h *QueueHandler) Pause(w http.ResponseWriter, r *http.Request) {
	h.setPaused(w, r, true)
}

// Resume handles POST /api/v1/queues/{queueType}/resume.
func (h *QueueHandler) Resume(w http.ResponseWriter, r *http.Request) {
	h.setPaused(w, r, false)
}

// Status handles GET /api/v1/queues/{queueType}/status.
func (h *QueueHandler) Status(w http.ResponseWriter, r *http.Request) {
	identity := identityFromCtx(r.Context())
	queue, ok := parseQueueType(w, r)
	if !ok {
		return
	}

	paused, err := h.pauses.IsPaused(r.Context(), identity.OrgID, queue)
	if err != nil {
		h.logger.Error("failed to read queue pause flag", zap.Error(err))
		ErrInternal(w)
		return
	}
	Ok(w, queueStatusResponse{QueueType: string(queue), IsPaused: paused})
}

func (h *QueueHandler) setPaused(w http.ResponseWriter, r *http.Request, paused bool) {
	identity := identityFromCtx(r.Context())
	queue, ok := parseQueueType(w, r)
	if !ok {
		return
	}

	if err := h.pauses.SetPaused(r.Context(), identity.OrgID, queue, paused); err != nil {
		h.logger.Error("failed to set queue pause flag",
			zap.String("queue_type", string(queue)),
			zap.Bool("paused", paused),
			zap.Error(err),
		)
		ErrInternal(w)
		return
	}

	h.logger.Info("queue pause flag changed",
		zap.String("org_id", identity.OrgID.String()),
		zap.String("queue_type", string(queue)),
		zap.Bool("paused", paused),
	)
	Ok(w, queueStatusResponse{QueueType: string(queue), IsPaused: paused})
}

// parseQueueType validates the {queueType} path parameter. Only the two
// claimable queues are addressable — "none" is a marker, not a queue.
func parseQueueType(w http.ResponseWriter, r *http.Request) (types.QueueType, bool) {
	raw := chi.URLParam(r, "queueType")
	queue := types.QueueType(raw)
	if queue != types.QueueBacklog && queue != types.QueueRework {
		ErrBadRequest(w, "invalid queue_type: must be \"backlog\" or \"rework\"")
		return "", false
	}
	return queue, true
}
