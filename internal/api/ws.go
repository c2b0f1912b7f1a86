package api

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/conductor-ci/conductor/internal/websocket"
)

// WSHandler upgrades GET /api/v1/ws to a WebSocket and subscribes the
// client to the topics named in the ?topics= query parameter
// (comma-separated, e.g. "job:<uuid>,agent:<uuid>").
type WSHandler struct {
	hub    *websocket.Hub
	logger *zap.Logger
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(hub *websocket.Hub, logger *zap.Logger) *WSHandler {
	return &WSHandler{
		hub:    hub,
		logger: logger.Named("ws_handler"),
	}
}

// Serve handles the upgrade. Topic names are opaque to the hub; a client
// subscribing to a job it cannot see receives nothing once the job's org
// never publishes to it — topics embed UUIDs, which are not enumerable.
func (h *WSHandler) Serve(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("topics")
	if raw == "" {
		ErrBadRequest(w, "topics query parameter is required")
		return
	}

	var topics []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			topics = append(topics, t)
		}
	}
	if len(topics) == 0 {
		ErrBadRequest(w, "topics query parameter is required")
		return
	}

	client, err := websocket.NewClient(h.hub, w, r, topics, h.logger)
	if err != nil {
		// Upgrade already wrote the handshake error to the connection.
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	// Blocks until the connection closes.
	client.Run()
}
