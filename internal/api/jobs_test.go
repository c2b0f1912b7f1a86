package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/conductor-ci/conductor/internal/agentclient"
	"github.com/conductor-ci/conductor/internal/agentmanager"
	"github.com/conductor-ci/conductor/internal/auth"
	"github.com/conductor-ci/conductor/internal/db"
	"github.com/conductor-ci/conductor/internal/dispatch"
	"github.com/conductor-ci/conductor/internal/logsink"
	"github.com/conductor-ci/conductor/internal/repositories"
	"github.com/conductor-ci/conductor/internal/types"
	"github.com/conductor-ci/conductor/internal/websocket"
	"github.com/conductor-ci/conductor/internal/workflow"
)

// unreachableDialer stands in for the agent network in handler tests —
// manual dispatch accepts the request before any RPC happens.
type unreachableDialer struct{}

func (unreachableDialer) Dial(ctx context.Context, host string, port int) (agentclient.Client, error) {
	return nil, errors.New("no agent in handler tests")
}

type apiFixture struct {
	router http.Handler
	token  string
	orgID  uuid.UUID
	userID uuid.UUID

	jobs   repositories.JobRepository
	agents repositories.AgentRepository
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gdb := db.NewTest(t)
	logger := zap.NewNop()

	jobs := repositories.NewJobRepository(gdb)
	agents := repositories.NewAgentRepository(gdb)
	activities := repositories.NewActivityRepository(gdb)
	apiKeys := repositories.NewAPIKeyRepository(gdb)
	pauses := repositories.NewQueuePauseRepository(gdb)
	bindings := repositories.NewScheduleBindingRepository(gdb)

	jwtMgr, err := auth.NewJWTManager("test-secret", "conductor-server")
	require.NoError(t, err)

	hub := websocket.NewHub()
	manager := agentmanager.New(logger)
	sink := logsink.New(jobs, hub, logger)

	engine, err := workflow.NewEngine(bindings, logger)
	require.NoError(t, err)

	executor := dispatch.NewJobExecutor(jobs, agents, activities, manager, unreachableDialer{}, sink, logger)
	health := dispatch.NewHealthChecker(agents, manager, engine, hub, logger)

	orgID, userID := uuid.New(), uuid.New()
	token, err := jwtMgr.IssueAccessToken(userID, orgID, "admin")
	require.NoError(t, err)

	router := NewRouter(RouterConfig{
		JWTManager:    jwtMgr,
		Logger:        logger,
		Jobs:          jobs,
		Agents:        agents,
		Activities:    activities,
		APIKeys:       apiKeys,
		Pauses:        pauses,
		Manager:       manager,
		Executor:      executor,
		HealthChecker: health,
		Engine:        engine,
		Hub:           hub,
	})

	return &apiFixture{
		router: router,
		token:  token,
		orgID:  orgID,
		userID: userID,
		jobs:   jobs,
		agents: agents,
	}
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Authorization", "Bearer "+f.token)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

// data decodes the {"data": ...} envelope into out.
func data(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func (f *apiFixture) createJob(t *testing.T, prompt string) jobResponse {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/api/v1/jobs", map[string]any{"prompt": prompt})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var job jobResponse
	data(t, rec, &job)
	return job
}

func TestAuthRequired(t *testing.T) {
	f := newAPIFixture(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateJobLandsAtBacklogTail(t *testing.T) {
	f := newAPIFixture(t)

	for i := 0; i < 3; i++ {
		job := f.createJob(t, fmt.Sprintf("task number %d", i))
		require.Equal(t, "queued", job.Status)
		require.Equal(t, "backlog", job.QueueType)
		require.Equal(t, i, job.OrderInQueue)
		require.NotEmpty(t, job.Name)
	}
}

func TestCreateJobRequiresPrompt(t *testing.T) {
	f := newAPIFixture(t)
	rec := f.do(t, http.MethodPost, "/api/v1/jobs", map[string]any{"prompt": "  "})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPutForbidsQueuedToInProgress(t *testing.T) {
	f := newAPIFixture(t)
	job := f.createJob(t, "do the thing")

	rec := f.do(t, http.MethodPut, "/api/v1/jobs/"+job.ID, map[string]any{"status": "in-progress"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPutReworkTransition(t *testing.T) {
	f := newAPIFixture(t)
	job := f.createJob(t, "original work")

	// Complete it, then ask for rework.
	rec := f.do(t, http.MethodPut, "/api/v1/jobs/"+job.ID, map[string]any{"status": "completed"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodPut, "/api/v1/jobs/"+job.ID, map[string]any{
		"user_acceptance_status": "reviewed_and_asked_rework",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated jobResponse
	data(t, rec, &updated)
	require.Equal(t, "queued", updated.Status)
	require.Equal(t, "rework", updated.QueueType)
	require.Equal(t, 0, updated.OrderInQueue)
	require.Greater(t, updated.Version, job.Version)
}

func TestRetryViaPutWritesFreshVersion(t *testing.T) {
	f := newAPIFixture(t)
	job := f.createJob(t, "needs a retry")

	rec := f.do(t, http.MethodPut, "/api/v1/jobs/"+job.ID, map[string]any{
		"status":                 "failed",
		"user_acceptance_status": "reviewed_and_asked_rework",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var failed jobResponse
	data(t, rec, &failed)

	rec = f.do(t, http.MethodPut, "/api/v1/jobs/"+job.ID, map[string]any{
		"status":        "queued",
		"queue_type":    "rework",
		"user_comments": []string{"please fix the edge case"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var retried jobResponse
	data(t, rec, &retried)
	require.Greater(t, retried.Version, failed.Version)
	require.Equal(t, "queued", retried.Status)
	require.Equal(t, "rework", retried.QueueType)
	require.Contains(t, retried.Updates, "please fix the edge case")
	require.Equal(t, []string{"please fix the edge case"}, retried.UserComments)
}

func TestReprioritizeClampsAndValidates(t *testing.T) {
	f := newAPIFixture(t)
	j1 := f.createJob(t, "first")
	f.createJob(t, "second")
	j3 := f.createJob(t, "third")

	// Move the tail far beyond the queue: clamped to n-1 (no-op here).
	rec := f.do(t, http.MethodPost, "/api/v1/jobs/"+j3.ID+"/reprioritize", map[string]any{"position": 99})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var moved jobResponse
	data(t, rec, &moved)
	require.Equal(t, 2, moved.OrderInQueue)

	// Move the tail to the head.
	rec = f.do(t, http.MethodPost, "/api/v1/jobs/"+j3.ID+"/reprioritize", map[string]any{"position": 0})
	require.Equal(t, http.StatusOK, rec.Code)
	data(t, rec, &moved)
	require.Equal(t, 0, moved.OrderInQueue)

	// Negative positions are rejected outright.
	rec = f.do(t, http.MethodPost, "/api/v1/jobs/"+j1.ID+"/reprioritize", map[string]any{"position": -1})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Non-queued jobs cannot be reprioritized.
	rec = f.do(t, http.MethodPut, "/api/v1/jobs/"+j1.ID, map[string]any{"status": "in-review"})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = f.do(t, http.MethodPost, "/api/v1/jobs/"+j1.ID+"/reprioritize", map[string]any{"position": 0})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestArchiveRemovesFromQueueAndRejectsDouble(t *testing.T) {
	f := newAPIFixture(t)
	j1 := f.createJob(t, "first")
	j2 := f.createJob(t, "second")

	rec := f.do(t, http.MethodDelete, "/api/v1/jobs/"+j1.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var archived jobResponse
	data(t, rec, &archived)
	require.Equal(t, "archived", archived.Status)
	require.Equal(t, "none", archived.QueueType)

	// The job behind it moved up.
	rec = f.do(t, http.MethodGet, "/api/v1/jobs/"+j2.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var second jobResponse
	data(t, rec, &second)
	require.Equal(t, 0, second.OrderInQueue)

	// Archiving twice is a 400.
	rec = f.do(t, http.MethodDelete, "/api/v1/jobs/"+j1.ID, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestManualExecute(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	agent := &db.Agent{
		OrgID:    f.orgID,
		Name:     "agent",
		Hostname: "127.0.0.1",
		Port:     7070,
		Status:   string(types.AgentStatusActive),
	}
	require.NoError(t, f.agents.Create(ctx, agent))

	job := f.createJob(t, "run me now")

	rec := f.do(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/execute", map[string]any{
		"agent_id": agent.ID.String(),
	})
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	var dispatched jobResponse
	data(t, rec, &dispatched)
	require.Equal(t, "in-progress", dispatched.Status)
	require.Equal(t, agent.ID.String(), *dispatched.AgentID)

	// Re-executing a job that is no longer queued is rejected. The
	// background execution may race to mark it failed; either way the job
	// is not queued, so the endpoint must refuse.
	require.Eventually(t, func() bool {
		rec := f.do(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/execute", map[string]any{
			"agent_id": agent.ID.String(),
		})
		return rec.Code == http.StatusBadRequest
	}, 2*time.Second, 50*time.Millisecond)
}

func TestManualExecuteRejectsInactiveAgent(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	agent := &db.Agent{
		OrgID:    f.orgID,
		Name:     "agent",
		Hostname: "127.0.0.1",
		Status:   string(types.AgentStatusOffline),
	}
	require.NoError(t, f.agents.Create(ctx, agent))

	job := f.createJob(t, "run me")
	rec := f.do(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/execute", map[string]any{
		"agent_id": agent.ID.String(),
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestQueuePauseEndpoints(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/queues/backlog/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var status queueStatusResponse
	data(t, rec, &status)
	require.False(t, status.IsPaused)

	rec = f.do(t, http.MethodPost, "/api/v1/queues/backlog/pause", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/queues/backlog/status", nil)
	data(t, rec, &status)
	require.True(t, status.IsPaused)

	rec = f.do(t, http.MethodPost, "/api/v1/queues/backlog/resume", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = f.do(t, http.MethodGet, "/api/v1/queues/backlog/status", nil)
	data(t, rec, &status)
	require.False(t, status.IsPaused)

	// Unknown queue names are rejected.
	rec = f.do(t, http.MethodPost, "/api/v1/queues/urgent/pause", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetJobSpecificVersion(t *testing.T) {
	f := newAPIFixture(t)
	job := f.createJob(t, "versioned")

	rec := f.do(t, http.MethodPut, "/api/v1/jobs/"+job.ID, map[string]any{"prompt": "sharper prompt"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodGet, "/api/v1/jobs/"+job.ID, nil)
	var latest jobResponse
	data(t, rec, &latest)
	require.Equal(t, job.Version+1, latest.Version)
	require.Equal(t, "sharper prompt", latest.Prompt)

	rec = f.do(t, http.MethodGet, "/api/v1/jobs/"+job.ID+"?version=1", nil)
	var v1 jobResponse
	data(t, rec, &v1)
	require.Equal(t, 1, v1.Version)
	require.Equal(t, "versioned", v1.Prompt)
}
