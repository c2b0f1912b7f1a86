// Package grpc implements the gRPC server that agents connect to.
//
// The server listens on a dedicated port (default: 9090) separate from the
// REST API port (8080). It implements the ConductorService defined in
// proto/agent.proto and acts as the bridge between connected agents and the
// rest of the server: it delegates stream lifecycle to agentmanager, log
// persistence to logsink, and record keeping to the repositories.
//
// Authentication: agents present their org-scoped API key — in the
// RegisterAgent body at registration time, and in the "x-api-key" metadata
// key when opening the AgentStream. Keys are resolved by SHA-256 digest.
package grpc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/conductor-ci/conductor/internal/agentmanager"
	"github.com/conductor-ci/conductor/internal/auth"
	"github.com/conductor-ci/conductor/internal/db"
	"github.com/conductor-ci/conductor/internal/logsink"
	"github.com/conductor-ci/conductor/internal/repositories"
	"github.com/conductor-ci/conductor/internal/types"
	"github.com/conductor-ci/conductor/internal/workflow"
	proto "github.com/conductor-ci/conductor/proto"
)

// apiKeyMetadataKey is the gRPC metadata key agents use to authenticate
// the AgentStream. Metadata in gRPC is the equivalent of HTTP headers.
const apiKeyMetadataKey = "x-api-key"

// Server is the gRPC server that handles agent connections.
// It wraps the generated UnimplementedConductorServiceServer to ensure
// forward compatibility when new RPCs are added to the proto.
type Server struct {
	proto.UnimplementedConductorServiceServer

	agentRepo  repositories.AgentRepository
	apiKeyRepo repositories.APIKeyRepository
	jobRepo    repositories.JobRepository
	manager    *agentmanager.Manager
	sink       *logsink.Sink
	engine     *workflow.Engine
	logger     *zap.Logger
	version    string
}

// New creates a new Server instance with the given dependencies.
func New(
	agentRepo repositories.AgentRepository,
	apiKeyRepo repositories.APIKeyRepository,
	jobRepo repositories.JobRepository,
	manager *agentmanager.Manager,
	sink *logsink.Sink,
	engine *workflow.Engine,
	logger *zap.Logger,
	version string,
) *Server {
	return &Server{
		agentRepo:  agentRepo,
		apiKeyRepo: apiKeyRepo,
		jobRepo:    jobRepo,
		manager:    manager,
		sink:       sink,
		engine:     engine,
		logger:     logger.Named("grpc"),
		version:    version,
	}
}

// ListenAndServe starts the gRPC server and blocks until the context is
// cancelled or a fatal error occurs.
//
// The caller is responsible for passing a context that is cancelled on
// shutdown (e.g. via signal handling in cmd/server/main.go).
func (s *Server) ListenAndServe(ctx context.Context, listenAddr string) error {
	lis, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return fmt.Errorf("grpc: failed to listen on %s: %w", listenAddr, err)
	}

	grpcServer := grpc.NewServer()
	proto.RegisterConductorServiceServer(grpcServer, s)

	// Shutdown goroutine: when the context is cancelled (server shutdown),
	// GracefulStop drains in-flight RPCs before closing connections.
	go func() {
		<-ctx.Done()
		s.logger.Info("grpc server shutting down gracefully")
		grpcServer.GracefulStop()
	}()

	s.logger.Info("grpc server listening", zap.String("addr", listenAddr))

	if err := grpcServer.Serve(lis); err != nil {
		return fmt.Errorf("grpc: server error: %w", err)
	}
	return nil
}

// ─── RegisterAgent ───────────────────────────────────────────────────────────

// RegisterAgent handles the initial agent registration RPC. The API key is
// hashed and resolved to an org; the agent record is then upserted on
// (org_id, hostname) so reconnecting agents reuse their record.
//
// If the agent was not previously active, the workflow engine is asked to
// create or resume its dispatch and health-check schedules. That hook runs
// after the registration write and its failure never fails the RPC — the
// agent will retry the hook implicitly on its next reconnect.
func (s *Server) RegisterAgent(ctx context.Context, req *proto.RegisterAgentRequest) (*proto.RegisterAgentResponse, error) {
	logger := s.logger.With(zap.String("hostname", req.Hostname))

	key, err := s.apiKeyRepo.GetByHash(ctx, auth.HashAPIKey(req.ApiKey))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, status.Error(codes.Unauthenticated, "invalid credentials")
		}
		logger.Error("failed to resolve api key", zap.Error(err))
		return nil, status.Error(codes.Internal, "registration failed")
	}

	if err := s.apiKeyRepo.TouchLastUsed(ctx, key.ID, time.Now().UTC()); err != nil {
		// Non-fatal: a missed touch never blocks registration.
		logger.Warn("failed to touch api key", zap.Error(err))
	}

	now := time.Now().UTC()
	priorStatus := types.AgentStatusOffline

	existing, err := s.agentRepo.GetByOrgAndHostname(ctx, key.OrgID, req.Hostname)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		logger.Error("failed to look up agent", zap.Error(err))
		return nil, status.Error(codes.Internal, "registration failed")
	}

	var agent *db.Agent
	if existing != nil {
		priorStatus = types.AgentStatus(existing.Status)

		existing.IPAddress = req.Ip
		existing.Port = int(req.Port)
		existing.Status = string(types.AgentStatusActive)
		existing.ConsecutiveFailures = 0
		existing.LastActiveAt = &now
		existing.LastStreamConnectedAt = &now

		if err := s.agentRepo.Update(ctx, existing); err != nil {
			logger.Error("failed to update agent record", zap.Error(err))
			return nil, status.Error(codes.Internal, "registration failed")
		}
		agent = existing
		logger.Info("agent re-registered",
			zap.String("agent_id", agent.ID.String()),
			zap.String("prior_status", string(priorStatus)),
		)
	} else {
		// First-time registration. Default display name is the hostname —
		// the user can rename it later via the REST API.
		agent = &db.Agent{
			OrgID:                 key.OrgID,
			Name:                  req.Hostname,
			Hostname:              req.Hostname,
			IPAddress:             req.Ip,
			Port:                  int(req.Port),
			Status:                string(types.AgentStatusActive),
			ConsecutiveFailures:   0,
			LastActiveAt:          &now,
			LastStreamConnectedAt: &now,
		}
		if err := s.agentRepo.Create(ctx, agent); err != nil {
			logger.Error("failed to create agent record", zap.Error(err))
			return nil, status.Error(codes.Internal, "registration failed")
		}
		logger.Info("agent registered for the first time", zap.String("agent_id", agent.ID.String()))
	}

	if priorStatus != types.AgentStatusActive {
		if err := s.engine.EnsureAgentSchedules(ctx, agent.ID); err != nil {
			logger.Warn("failed to ensure agent schedules — will retry on next reconnect",
				zap.String("agent_id", agent.ID.String()),
				zap.Error(err),
			)
		}
	}

	return &proto.RegisterAgentResponse{
		AgentId: agent.ID.String(),
		OrgId:   key.OrgID.String(),
		Success: true,
		Message: "registered",
	}, nil
}

// ─── HealthCheck ─────────────────────────────────────────────────────────────

// HealthCheck answers ad-hoc liveness probes from agents and deployment
// tooling. It also refreshes the agent's last_active timestamp when the
// probe carries a known agent ID.
func (s *Server) HealthCheck(ctx context.Context, req *proto.ServerHealthCheckRequest) (*proto.ServerHealthCheckResponse, error) {
	if req.AgentId != "" {
		if agentID, err := uuid.Parse(req.AgentId); err == nil {
			if err := s.agentRepo.Heartbeat(ctx, agentID, time.Now().UTC()); err != nil &&
				!errors.Is(err, repositories.ErrNotFound) {
				s.logger.Warn("failed to touch agent on health check",
					zap.String("agent_id", req.AgentId),
					zap.Error(err),
				)
			}
		}
	}
	return &proto.ServerHealthCheckResponse{
		Success:   true,
		Timestamp: timestamppb.Now(),
		Version:   s.version,
	}, nil
}

// ─── AgentStream ─────────────────────────────────────────────────────────────

// AgentStream is the persistent bidirectional channel per agent. The first
// inbound frame must be INIT, which binds the stream to an agent. After
// binding, the agent sends HEARTBEAT and LOG_MESSAGE frames; the server
// pushes HEALTH_CHECK_PING and TASK_ASSIGNMENT frames.
//
// The method blocks until the stream closes (agent disconnects, server
// shutdown, or the session is replaced by a newer connection), then cleans
// up the in-memory registration. Database liveness is owned by the
// health-check workflow — stream teardown does not mark the agent offline.
func (s *Server) AgentStream(stream proto.ConductorService_AgentStreamServer) error {
	ctx := stream.Context()

	key, err := s.authenticateStream(ctx)
	if err != nil {
		return err
	}

	// State: unbound until the INIT frame arrives.
	first, err := stream.Recv()
	if err != nil {
		return status.Error(codes.Aborted, "stream closed before init")
	}
	init := first.GetInit()
	if init == nil {
		return status.Error(codes.FailedPrecondition, "first frame must be INIT")
	}

	agentID, err := uuid.Parse(init.AgentId)
	if err != nil {
		return status.Error(codes.InvalidArgument, "invalid agent_id")
	}

	agent, err := s.agentRepo.GetByID(ctx, agentID)
	if err != nil {
		s.logger.Error("AgentStream: agent not found",
			zap.String("agent_id", init.AgentId),
			zap.Error(err),
		)
		return status.Error(codes.NotFound, "agent not found — call RegisterAgent first")
	}
	if agent.OrgID != key.OrgID {
		return status.Error(codes.PermissionDenied, "agent belongs to a different org")
	}

	if err := s.agentRepo.MarkStreamConnected(ctx, agentID, time.Now().UTC()); err != nil {
		s.logger.Warn("failed to mark stream connected",
			zap.String("agent_id", init.AgentId),
			zap.Error(err),
		)
	}

	// Bind the session. A previous session for the same agent is closed
	// and replaced.
	session := s.manager.Register(agentID, agent.OrgID, stream)
	defer s.manager.Unregister(agentID, session)

	// Reader goroutine: a dedicated goroutine owns Recv; frames are handed
	// to the select loop below so replacement (session.Closed) and context
	// cancellation interrupt promptly.
	frames := make(chan *proto.AgentStreamRequest)
	readErr := make(chan error, 1)
	go func() {
		for {
			frame, err := stream.Recv()
			if err != nil {
				readErr <- err
				return
			}
			select {
			case frames <- frame:
			case <-session.Closed():
				return
			}
		}
	}()

	for {
		select {
		case frame := <-frames:
			s.handleInboundFrame(ctx, session, frame)

		case err := <-readErr:
			if err != io.EOF {
				s.logger.Info("agent stream read ended",
					zap.String("agent_id", agentID.String()),
					zap.Error(err),
				)
			}
			return nil

		case <-session.Closed():
			// Replaced by a newer connection from the same agent.
			return nil

		case <-ctx.Done():
			return nil
		}
	}
}

// handleInboundFrame routes one agent → server frame.
func (s *Server) handleInboundFrame(ctx context.Context, session *agentmanager.StreamSession, frame *proto.AgentStreamRequest) {
	switch {
	case frame.GetHeartbeat() != nil:
		if err := s.agentRepo.Heartbeat(ctx, session.AgentID, time.Now().UTC()); err != nil {
			s.logger.Warn("failed to record heartbeat",
				zap.String("agent_id", session.AgentID.String()),
				zap.Error(err),
			)
		}
		s.manager.NotifyHeartbeat(session.AgentID)

	case frame.GetLog() != nil:
		s.handleLogFrame(ctx, session, frame.GetLog())

	case frame.GetInit() != nil:
		// Duplicate INIT after binding — ignored.
		s.logger.Warn("duplicate INIT frame ignored",
			zap.String("agent_id", session.AgentID.String()),
		)
	}
}

// handleLogFrame persists and broadcasts one LOG_MESSAGE frame. Frames for
// unknown jobs or jobs of another org are dropped silently — a misbehaving
// agent cannot probe for other tenants' job IDs through error responses.
func (s *Server) handleLogFrame(ctx context.Context, session *agentmanager.StreamSession, msg *proto.LogMessage) {
	jobID, err := uuid.Parse(msg.JobId)
	if err != nil {
		return
	}

	job, err := s.jobRepo.Latest(ctx, jobID, session.OrgID)
	if err != nil {
		// Unknown job or org mismatch: drop.
		return
	}

	if err := s.sink.AppendFrame(ctx, job.ID, job.Version, job.OrgID, msg); err != nil {
		s.logger.Warn("failed to persist streamed log",
			zap.String("job_id", msg.JobId),
			zap.Error(err),
		)
	}
}

// authenticateStream resolves the API key from stream metadata.
func (s *Server) authenticateStream(ctx context.Context) (*db.APIKey, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing metadata")
	}
	values := md.Get(apiKeyMetadataKey)
	if len(values) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing api key")
	}

	key, err := s.apiKeyRepo.GetByHash(ctx, auth.HashAPIKey(values[0]))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, status.Error(codes.Unauthenticated, "invalid credentials")
		}
		s.logger.Error("failed to resolve stream api key", zap.Error(err))
		return nil, status.Error(codes.Internal, "authentication failed")
	}
	return key, nil
}
