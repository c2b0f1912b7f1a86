package agentmanager

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	proto "github.com/conductor-ci/conductor/proto"
)

// fakeStream records sent frames. Recv is never called by the manager —
// the gRPC handler owns the read side.
type fakeStream struct {
	grpc.ServerStream

	mu   sync.Mutex
	sent []*proto.AgentStreamMessage
	err  error
}

func (f *fakeStream) Send(msg *proto.AgentStreamMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeStream) Recv() (*proto.AgentStreamRequest, error) {
	select {} // block forever; tests never read
}

func (f *fakeStream) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func TestRegisterAndPing(t *testing.T) {
	m := New(zap.NewNop())
	agentID, orgID := uuid.New(), uuid.New()
	stream := &fakeStream{}

	session := m.Register(agentID, orgID, stream)
	require.True(t, m.IsConnected(agentID))
	require.Equal(t, 1, m.ConnectedCount())
	require.Equal(t, orgID, session.OrgID)

	require.NoError(t, m.SendPing(agentID))
	require.Equal(t, 1, stream.sentCount())
	require.NotNil(t, stream.sent[0].GetHealthCheckPing())
}

func TestPingUnknownAgentFails(t *testing.T) {
	m := New(zap.NewNop())
	require.Error(t, m.SendPing(uuid.New()))
}

func TestRegisterReplacesExistingSession(t *testing.T) {
	m := New(zap.NewNop())
	agentID, orgID := uuid.New(), uuid.New()

	old := m.Register(agentID, orgID, &fakeStream{})
	replacement := m.Register(agentID, orgID, &fakeStream{})

	// The old session is closed; the registry holds the replacement.
	select {
	case <-old.Closed():
	case <-time.After(time.Second):
		t.Fatal("old session was not closed on replacement")
	}
	require.Equal(t, 1, m.ConnectedCount())
	require.Equal(t, replacement, m.Get(agentID))

	// Writes through the closed session fail.
	require.Error(t, old.send(&proto.AgentStreamMessage{}))
}

func TestUnregisterIgnoresStaleSession(t *testing.T) {
	m := New(zap.NewNop())
	agentID, orgID := uuid.New(), uuid.New()

	old := m.Register(agentID, orgID, &fakeStream{})
	current := m.Register(agentID, orgID, &fakeStream{})

	// The dying handler for the old session must not kick out its
	// successor.
	m.Unregister(agentID, old)
	require.True(t, m.IsConnected(agentID))
	require.Equal(t, current, m.Get(agentID))

	m.Unregister(agentID, current)
	require.False(t, m.IsConnected(agentID))
}

func TestSendTaskAssignment(t *testing.T) {
	m := New(zap.NewNop())
	agentID, orgID := uuid.New(), uuid.New()
	stream := &fakeStream{}
	m.Register(agentID, orgID, stream)

	task := &proto.TaskAssignment{JobId: uuid.NewString(), QueueType: "backlog"}
	require.NoError(t, m.SendTaskAssignment(agentID, task))
	require.Equal(t, 1, stream.sentCount())
	require.Equal(t, task.JobId, stream.sent[0].GetTaskAssignment().JobId)
}

func TestAwaitHeartbeatSignalsWaiters(t *testing.T) {
	m := New(zap.NewNop())
	agentID := uuid.New()

	ack := m.AwaitHeartbeat(agentID)
	m.NotifyHeartbeat(agentID)

	select {
	case <-ack:
	case <-time.After(time.Second):
		t.Fatal("waiter was not signalled")
	}

	// Waiters are one-shot: a second notify has no one to signal and must
	// not panic or block.
	m.NotifyHeartbeat(agentID)
}
