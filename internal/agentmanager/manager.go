// Package agentmanager maintains the in-memory registry of connected agents.
//
// When an agent opens its AgentStream, the gRPC server binds the stream
// here. Dispatch and health-check workflows use the registry to push
// HEALTH_CHECK_PING and TASK_ASSIGNMENT frames to the correct agent over
// the open stream.
//
// All state is in-memory and intentionally non-persistent: if the server
// restarts, agents reconnect and re-register automatically via their
// reconnection loop. The persistent agent record (hostname, liveness
// counters, etc.) lives in the database and is managed by AgentRepository.
package agentmanager

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/timestamppb"

	proto "github.com/conductor-ci/conductor/proto"
)

// SessionState tracks the lifecycle of a stream session.
// Register creates sessions already bound, after the INIT frame has
// identified the agent; the unbound phase (stream open, INIT not yet
// received) passes in the stream handler before any session exists. A
// session is closed exactly once — either by unregister or by being replaced.
type SessionState int

const (
	SessionUnbound SessionState = iota
	SessionBound
	SessionClosed
)

// StreamSession wraps one agent's open bidirectional stream. Outbound
// writes are serialized by the write lock; the stream handler goroutine is
// the sole reader.
type StreamSession struct {
	// AgentID is the persistent UUID assigned to this agent by the server
	// on first registration and stored in the database.
	AgentID uuid.UUID

	// OrgID scopes the session — log frames for jobs of other orgs are
	// dropped by the stream handler.
	OrgID uuid.UUID

	// ConnectedAt is when this agent established the current stream.
	// Reset on every reconnect — not the same as the DB CreatedAt field.
	ConnectedAt time.Time

	// stream is the open server-side AgentStream for this agent. Frames
	// are pushed by calling stream.Send() under writeMu — the generated
	// stream is not safe for concurrent writes.
	stream proto.ConductorService_AgentStreamServer

	writeMu sync.Mutex

	mu    sync.Mutex
	state SessionState
	// closed is closed exactly once when the session leaves the registry,
	// letting the owning stream handler unblock and return.
	closed chan struct{}
}

// Closed returns a channel that is closed when the session is terminated
// (unregistered or replaced by a newer connection from the same agent).
func (s *StreamSession) Closed() <-chan struct{} {
	return s.closed
}

// close transitions the session to SessionClosed, idempotently.
func (s *StreamSession) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == SessionClosed {
		return
	}
	s.state = SessionClosed
	close(s.closed)
}

// send serializes one outbound frame onto the wire under the write lock.
func (s *StreamSession) send(msg *proto.AgentStreamMessage) error {
	s.mu.Lock()
	if s.state == SessionClosed {
		s.mu.Unlock()
		return fmt.Errorf("session for agent %s is closed", s.AgentID)
	}
	s.mu.Unlock()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.stream.Send(msg)
}

// Manager is the in-memory registry of currently connected agent sessions.
// It is safe for concurrent use by multiple goroutines (gRPC handlers and
// workflow activities run in separate goroutines).
//
// The zero value is not usable — create instances with New.
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*StreamSession

	// heartbeatWaiters holds one-shot channels signalled when a HEARTBEAT
	// frame arrives from the agent. Health checks register a waiter before
	// sending the ping and await it with a deadline.
	waiterMu         sync.Mutex
	heartbeatWaiters map[uuid.UUID][]chan struct{}

	logger *zap.Logger
}

// New creates a new Manager instance.
func New(logger *zap.Logger) *Manager {
	return &Manager{
		sessions:         make(map[uuid.UUID]*StreamSession),
		heartbeatWaiters: make(map[uuid.UUID][]chan struct{}),
		logger:           logger.Named("agentmanager"),
	}
}

// Register binds an agent's open stream into the registry and returns the
// session. If a session already exists for the agent (e.g. duplicate
// connection before the previous one timed out), the old one is closed and
// replaced, and a warning is logged.
//
// Called by the gRPC server once the INIT frame identifies the agent.
func (m *Manager) Register(agentID, orgID uuid.UUID, stream proto.ConductorService_AgentStreamServer) *StreamSession {
	session := &StreamSession{
		AgentID:     agentID,
		OrgID:       orgID,
		ConnectedAt: time.Now().UTC(),
		stream:      stream,
		state:       SessionBound,
		closed:      make(chan struct{}),
	}

	m.mu.Lock()
	prior, exists := m.sessions[agentID]
	m.sessions[agentID] = session
	m.mu.Unlock()

	if exists {
		// The agent reconnected before the server noticed the previous
		// connection was dead (e.g. after a network blip).
		m.logger.Warn("replacing existing agent stream session",
			zap.String("agent_id", agentID.String()),
		)
		prior.close()
	}

	m.logger.Info("agent stream connected",
		zap.String("agent_id", agentID.String()),
		zap.String("org_id", orgID.String()),
		zap.Int("total_connected", m.ConnectedCount()),
	)
	return session
}

// Unregister removes a session from the registry and closes it. A session
// that has already been replaced by a newer one is left untouched so a
// slow-dying old handler cannot kick out its successor.
func (m *Manager) Unregister(agentID uuid.UUID, session *StreamSession) {
	m.mu.Lock()
	current, exists := m.sessions[agentID]
	if exists && current == session {
		delete(m.sessions, agentID)
	}
	m.mu.Unlock()

	session.close()

	if exists && current == session {
		m.logger.Info("agent stream disconnected",
			zap.String("agent_id", agentID.String()),
			zap.Duration("session_duration", time.Since(session.ConnectedAt)),
			zap.Int("total_connected", m.ConnectedCount()),
		)
	}
}

// Get returns the live session for an agent, or nil if not connected.
func (m *Manager) Get(agentID uuid.UUID) *StreamSession {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[agentID]
}

// IsConnected reports whether an agent currently has a bound stream.
func (m *Manager) IsConnected(agentID uuid.UUID) bool {
	return m.Get(agentID) != nil
}

// ConnectedCount returns the number of currently bound sessions.
// Intended for metrics and health endpoints.
func (m *Manager) ConnectedCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// SendPing pushes a HEALTH_CHECK_PING frame to the agent.
// Returns an error if the agent is not connected or the write fails.
func (m *Manager) SendPing(agentID uuid.UUID) error {
	session := m.Get(agentID)
	if session == nil {
		return fmt.Errorf("agent %s is not connected", agentID)
	}
	msg := &proto.AgentStreamMessage{
		Frame: &proto.AgentStreamMessage_HealthCheckPing{
			HealthCheckPing: &proto.HealthCheckPing{SentAt: timestamppb.Now()},
		},
	}
	if err := session.send(msg); err != nil {
		return fmt.Errorf("failed to ping agent %s: %w", agentID, err)
	}
	return nil
}

// SendTaskAssignment pushes a TASK_ASSIGNMENT frame to the agent.
// The dispatch workflow uses this to announce a claimed job before the
// execute activity dials the agent's own RPC surface.
func (m *Manager) SendTaskAssignment(agentID uuid.UUID, task *proto.TaskAssignment) error {
	session := m.Get(agentID)
	if session == nil {
		return fmt.Errorf("agent %s is not connected", agentID)
	}
	msg := &proto.AgentStreamMessage{
		Frame: &proto.AgentStreamMessage_TaskAssignment{TaskAssignment: task},
	}
	if err := session.send(msg); err != nil {
		return fmt.Errorf("failed to send task %s to agent %s: %w", task.JobId, agentID, err)
	}

	m.logger.Info("task assignment sent",
		zap.String("job_id", task.JobId),
		zap.String("agent_id", agentID.String()),
	)
	return nil
}

// AwaitHeartbeat registers a one-shot waiter that is signalled on the next
// HEARTBEAT frame from the agent. Register the waiter before sending a
// ping so the ack cannot slip between send and wait.
func (m *Manager) AwaitHeartbeat(agentID uuid.UUID) <-chan struct{} {
	ch := make(chan struct{}, 1)
	m.waiterMu.Lock()
	m.heartbeatWaiters[agentID] = append(m.heartbeatWaiters[agentID], ch)
	m.waiterMu.Unlock()
	return ch
}

// NotifyHeartbeat signals all pending waiters for the agent. Called by the
// stream handler on every inbound HEARTBEAT frame.
func (m *Manager) NotifyHeartbeat(agentID uuid.UUID) {
	m.waiterMu.Lock()
	waiters := m.heartbeatWaiters[agentID]
	delete(m.heartbeatWaiters, agentID)
	m.waiterMu.Unlock()

	for _, ch := range waiters {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
