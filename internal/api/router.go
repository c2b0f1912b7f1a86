package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/conductor-ci/conductor/internal/agentmanager"
	"github.com/conductor-ci/conductor/internal/auth"
	"github.com/conductor-ci/conductor/internal/dispatch"
	"github.com/conductor-ci/conductor/internal/repositories"
	"github.com/conductor-ci/conductor/internal/websocket"
	"github.com/conductor-ci/conductor/internal/workflow"
)

// RouterConfig holds all dependencies needed to build the HTTP router.
// It is populated in main.go after all components are initialized and
// passed to NewRouter as a single struct to keep the constructor signature
// manageable as the number of dependencies grows.
type RouterConfig struct {
	JWTManager *auth.JWTManager
	Logger     *zap.Logger

	// Repositories — used directly by handlers; orchestrated transitions
	// live behind JobRepository.
	Jobs       repositories.JobRepository
	Agents     repositories.AgentRepository
	Activities repositories.ActivityRepository
	APIKeys    repositories.APIKeyRepository
	Pauses     repositories.QueuePauseRepository

	// Runtime components.
	Manager       *agentmanager.Manager
	Executor      *dispatch.JobExecutor
	HealthChecker *dispatch.HealthChecker
	Engine        *workflow.Engine
	Hub           *websocket.Hub
}

// NewRouter builds and returns the fully configured Chi router.
// All resource routes are registered under /api/v1 behind JWT auth;
// /healthz and /metrics are served unauthenticated for probes and scrapes.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// --- Global middleware ---
	// RequestID generates a unique ID for each request, used in logs and
	// response headers for tracing.
	r.Use(middleware.RequestID)

	// RealIP extracts the real client IP from X-Forwarded-For or X-Real-IP
	// headers when the server runs behind a reverse proxy.
	r.Use(middleware.RealIP)

	// RequestLogger logs every request with method, path, status and latency.
	r.Use(RequestLogger(cfg.Logger))

	// Recoverer catches panics in handlers, logs them, and returns a 500
	// instead of crashing the server.
	r.Use(middleware.Recoverer)

	// --- Initialize handlers ---
	jobHandler := NewJobHandler(cfg.Jobs, cfg.Agents, cfg.Activities, cfg.Executor, cfg.Logger)
	queueHandler := NewQueueHandler(cfg.Pauses, cfg.Logger)
	agentHandler := NewAgentHandler(cfg.Agents, cfg.Manager, cfg.HealthChecker, cfg.Engine, cfg.Logger)
	activityHandler := NewActivityHandler(cfg.Activities, cfg.Logger)
	apiKeyHandler := NewAPIKeyHandler(cfg.APIKeys, cfg.Logger)
	wsHandler := NewWSHandler(cfg.Hub, cfg.Logger)

	// --- Unauthenticated probes ---
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		Ok(w, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(Authenticate(cfg.JWTManager))

		// Jobs
		r.Post("/jobs", jobHandler.Create)
		r.Get("/jobs", jobHandler.List)
		r.Get("/jobs/{id}", jobHandler.GetByID)
		r.Put("/jobs/{id}", jobHandler.Update)
		r.Delete("/jobs/{id}", jobHandler.Archive)
		r.Get("/jobs/{id}/logs", jobHandler.GetLogs)
		r.Post("/jobs/{id}/execute", jobHandler.Execute)
		r.Post("/jobs/{id}/reprioritize", jobHandler.Reprioritize)

		// Queues
		r.Post("/queues/{queueType}/pause", queueHandler.Pause)
		r.Post("/queues/{queueType}/resume", queueHandler.Resume)
		r.Get("/queues/{queueType}/status", queueHandler.Status)

		// Agents
		r.Get("/agents", agentHandler.List)
		r.Get("/agents/{id}", agentHandler.GetByID)
		r.Patch("/agents/{id}", agentHandler.Update)
		r.Delete("/agents/{id}", agentHandler.Delete)
		r.Post("/agents/{id}/reconnect", agentHandler.Reconnect)

		// Activities
		r.Get("/activities", activityHandler.List)
		r.Get("/activities/{id}", activityHandler.GetByID)
		r.Post("/activities/{id}/read", activityHandler.MarkRead)

		// Live updates
		r.Get("/ws", wsHandler.Serve)

		// --- Admin-only routes ---
		r.Group(func(r chi.Router) {
			r.Use(RequireRole("admin"))

			r.Get("/api-keys", apiKeyHandler.List)
			r.Post("/api-keys", apiKeyHandler.Create)
			r.Delete("/api-keys/{id}", apiKeyHandler.Revoke)
		})
	})

	return r
}
