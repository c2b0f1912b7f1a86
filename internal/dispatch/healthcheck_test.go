package dispatch

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/conductor-ci/conductor/internal/agentmanager"
	"github.com/conductor-ci/conductor/internal/db"
	"github.com/conductor-ci/conductor/internal/repositories"
	"github.com/conductor-ci/conductor/internal/types"
	"github.com/conductor-ci/conductor/internal/websocket"
	"github.com/conductor-ci/conductor/internal/workflow"
)

type healthFixture struct {
	agents   repositories.AgentRepository
	bindings repositories.ScheduleBindingRepository
	engine   *workflow.Engine
	checker  *HealthChecker
	orgID    uuid.UUID
}

func newHealthFixture(t *testing.T) *healthFixture {
	t.Helper()
	gdb := db.NewTest(t)
	logger := zap.NewNop()

	agents := repositories.NewAgentRepository(gdb)
	bindings := repositories.NewScheduleBindingRepository(gdb)

	engine, err := workflow.NewEngine(bindings, logger)
	require.NoError(t, err)

	// Streamless manager: every ping fails, which is exactly what a blocked
	// or vanished agent looks like.
	manager := agentmanager.New(logger)
	checker := NewHealthChecker(agents, manager, engine, websocket.NewHub(), logger)

	return &healthFixture{
		agents:   agents,
		bindings: bindings,
		engine:   engine,
		checker:  checker,
		orgID:    uuid.New(),
	}
}

func (f *healthFixture) createAgent(t *testing.T, status types.AgentStatus) *db.Agent {
	t.Helper()
	agent := &db.Agent{
		OrgID:    f.orgID,
		Name:     "agent",
		Hostname: "host-" + uuid.NewString()[:8],
		Status:   string(status),
	}
	require.NoError(t, f.agents.Create(context.Background(), agent))
	return agent
}

func TestHealthCheckSkipsInactiveAgent(t *testing.T) {
	f := newHealthFixture(t)
	agent := f.createAgent(t, types.AgentStatusOffline)

	require.False(t, f.checker.Run(context.Background(), agent.ID))

	reloaded, err := f.agents.GetByID(context.Background(), agent.ID)
	require.NoError(t, err)
	require.Equal(t, 0, reloaded.ConsecutiveFailures)
}

func TestHealthCheckOfflineThreshold(t *testing.T) {
	f := newHealthFixture(t)
	ctx := context.Background()
	agent := f.createAgent(t, types.AgentStatusActive)

	// Two failures: still active, counter climbing.
	require.False(t, f.checker.Run(ctx, agent.ID))
	require.False(t, f.checker.Run(ctx, agent.ID))

	reloaded, err := f.agents.GetByID(ctx, agent.ID)
	require.NoError(t, err)
	require.Equal(t, string(types.AgentStatusActive), reloaded.Status)
	require.Equal(t, 2, reloaded.ConsecutiveFailures)

	// Third failure crosses the threshold: offline, schedules paused.
	require.False(t, f.checker.Run(ctx, agent.ID))

	reloaded, err = f.agents.GetByID(ctx, agent.ID)
	require.NoError(t, err)
	require.Equal(t, string(types.AgentStatusOffline), reloaded.Status)
	require.Equal(t, 3, reloaded.ConsecutiveFailures)

	// Offline is sticky: further runs short-circuit without incrementing.
	require.False(t, f.checker.Run(ctx, agent.ID))
	reloaded, err = f.agents.GetByID(ctx, agent.ID)
	require.NoError(t, err)
	require.Equal(t, 3, reloaded.ConsecutiveFailures)
}

func TestReconnectFailsWithoutStream(t *testing.T) {
	f := newHealthFixture(t)
	agent := f.createAgent(t, types.AgentStatusOffline)

	err := f.checker.Reconnect(context.Background(), agent.ID)
	require.Error(t, err)

	reloaded, gerr := f.agents.GetByID(context.Background(), agent.ID)
	require.NoError(t, gerr)
	require.Equal(t, string(types.AgentStatusOffline), reloaded.Status)
}

func TestActiveStatusImpliesZeroFailures(t *testing.T) {
	f := newHealthFixture(t)
	ctx := context.Background()
	agent := f.createAgent(t, types.AgentStatusActive)

	// Simulate two failed pings, then a successful status write: marking
	// the agent active must clear the counter even if the caller forgets.
	require.False(t, f.checker.Run(ctx, agent.ID))
	require.False(t, f.checker.Run(ctx, agent.ID))

	require.NoError(t, f.agents.UpdateStatus(ctx, agent.ID, types.AgentStatusActive, 99, time.Now().UTC()))

	reloaded, err := f.agents.GetByID(ctx, agent.ID)
	require.NoError(t, err)
	require.Equal(t, 0, reloaded.ConsecutiveFailures)
}
