// Package agentclient wraps the agent-side gRPC surface behind one stable
// interface. Workflow activities depend on the interface, never on the
// generated stubs directly, so contract drift between server and agent
// fails at compile time in exactly one place.
package agentclient

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	proto "github.com/conductor-ci/conductor/proto"
)

// LogFunc receives each streamed log frame from ExecuteJob as it arrives.
type LogFunc func(msg *proto.LogMessage)

// Client is the stable contract for driving one agent. All methods honor
// context cancellation; ExecuteJob blocks until the agent closes the log
// stream or the context ends.
type Client interface {
	ExecuteJob(ctx context.Context, req *proto.ExecuteJobRequest, onLog LogFunc) error
	CancelJob(ctx context.Context, jobID string) error
	RunVerification(ctx context.Context, jobID string) (*proto.RunVerificationResponse, error)
	CreatePR(ctx context.Context, req *proto.CreatePRRequest) (*proto.CreatePRResponse, error)
	CleanupWorkspace(ctx context.Context, jobID string) error
	HealthCheck(ctx context.Context, agentID string) error
	Close() error
}

// Dialer opens a Client to an agent's advertised address. The dispatch
// workflows receive a Dialer so tests can substitute an in-memory agent.
type Dialer interface {
	Dial(ctx context.Context, host string, port int) (Client, error)
}

// grpcDialer is the production Dialer backed by a real gRPC connection.
type grpcDialer struct{}

// NewDialer returns the production gRPC Dialer.
func NewDialer() Dialer {
	return grpcDialer{}
}

// Dial opens a connection to the agent. Agents live on developer machines
// inside the org's network perimeter — transport security between server
// and agent is deployment-level (VPN/mesh), matching the stream direction.
func (grpcDialer) Dial(ctx context.Context, host string, port int) (Client, error) {
	addr := fmt.Sprintf("%s:%d", host, port)
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("agentclient: dial %s: %w", addr, err)
	}
	return &grpcClient{conn: conn, rpc: proto.NewAgentServiceClient(conn)}, nil
}

// grpcClient implements Client over a live connection.
type grpcClient struct {
	conn *grpc.ClientConn
	rpc  proto.AgentServiceClient
}

// ExecuteJob starts the job on the agent and pipes every log frame into
// onLog until the stream closes. A clean EOF means the agent finished the
// generation phase; any other stream error is returned to the caller.
func (c *grpcClient) ExecuteJob(ctx context.Context, req *proto.ExecuteJobRequest, onLog LogFunc) error {
	stream, err := c.rpc.ExecuteJob(ctx, req)
	if err != nil {
		return fmt.Errorf("agentclient: execute job %s: %w", req.JobId, err)
	}

	for {
		msg, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("agentclient: execute job %s: recv: %w", req.JobId, err)
		}
		if onLog != nil {
			onLog(msg)
		}
	}
}

func (c *grpcClient) CancelJob(ctx context.Context, jobID string) error {
	resp, err := c.rpc.CancelJob(ctx, &proto.CancelJobRequest{JobId: jobID})
	if err != nil {
		return fmt.Errorf("agentclient: cancel job %s: %w", jobID, err)
	}
	if !resp.Success {
		return fmt.Errorf("agentclient: cancel job %s: agent refused: %s", jobID, resp.Message)
	}
	return nil
}

func (c *grpcClient) RunVerification(ctx context.Context, jobID string) (*proto.RunVerificationResponse, error) {
	resp, err := c.rpc.RunVerification(ctx, &proto.RunVerificationRequest{JobId: jobID})
	if err != nil {
		return nil, fmt.Errorf("agentclient: run verification for job %s: %w", jobID, err)
	}
	return resp, nil
}

func (c *grpcClient) CreatePR(ctx context.Context, req *proto.CreatePRRequest) (*proto.CreatePRResponse, error) {
	resp, err := c.rpc.CreatePR(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("agentclient: create pr for job %s: %w", req.JobId, err)
	}
	return resp, nil
}

func (c *grpcClient) CleanupWorkspace(ctx context.Context, jobID string) error {
	if _, err := c.rpc.CleanupWorkspace(ctx, &proto.CleanupWorkspaceRequest{JobId: jobID}); err != nil {
		return fmt.Errorf("agentclient: cleanup workspace for job %s: %w", jobID, err)
	}
	return nil
}

func (c *grpcClient) HealthCheck(ctx context.Context, agentID string) error {
	resp, err := c.rpc.HealthCheck(ctx, &proto.AgentHealthCheckRequest{AgentId: agentID})
	if err != nil {
		return fmt.Errorf("agentclient: health check agent %s: %w", agentID, err)
	}
	if !resp.Success {
		return fmt.Errorf("agentclient: health check agent %s: agent reported unhealthy", agentID)
	}
	return nil
}

func (c *grpcClient) Close() error {
	return c.conn.Close()
}
