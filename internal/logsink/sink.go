// Package logsink persists streamed job logs and fans them out to live
// subscribers. Persistence to the store is authoritative; the websocket
// broadcast is best-effort (slow subscribers are dropped by the hub).
package logsink

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/conductor-ci/conductor/internal/db"
	"github.com/conductor-ci/conductor/internal/repositories"
	"github.com/conductor-ci/conductor/internal/websocket"
	proto "github.com/conductor-ci/conductor/proto"
)

// Sink appends structured log entries to a job's log series and broadcasts
// them to per-job subscribers. Entries are keyed by (job_id, job_version,
// org_id) so a new-version retry starts a fresh series.
type Sink struct {
	jobs   repositories.JobRepository
	hub    *websocket.Hub
	logger *zap.Logger
}

// New creates a Sink.
func New(jobs repositories.JobRepository, hub *websocket.Hub, logger *zap.Logger) *Sink {
	return &Sink{
		jobs:   jobs,
		hub:    hub,
		logger: logger.Named("logsink"),
	}
}

// AppendFrame persists one streamed LogMessage against a specific job
// version and broadcasts it. The caller has already verified org ownership.
func (s *Sink) AppendFrame(ctx context.Context, jobID uuid.UUID, version int, orgID uuid.UUID, frame *proto.LogMessage) error {
	ts := time.Now().UTC()
	if frame.Timestamp != nil {
		ts = frame.Timestamp.AsTime()
	}

	entry := db.JobLog{
		JobID:      jobID,
		JobVersion: version,
		OrgID:      orgID,
		Level:      levelString(frame.Level),
		Stage:      frame.Stage,
		Message:    frame.Message,
		Timestamp:  ts,
	}

	if err := s.jobs.AppendLogs(ctx, []db.JobLog{entry}); err != nil {
		return fmt.Errorf("logsink: %w", err)
	}

	s.broadcast(jobID, entry)
	return nil
}

// broadcast pushes the log line to live subscribers. Non-blocking — the hub
// drops the line for subscribers that cannot keep up.
func (s *Sink) broadcast(jobID uuid.UUID, entry db.JobLog) {
	s.hub.Publish("job:"+jobID.String(), websocket.Message{
		Type:  websocket.MsgJobLog,
		Topic: "job:" + jobID.String(),
		Payload: map[string]any{
			"job_id":    jobID.String(),
			"level":     entry.Level,
			"stage":     entry.Stage,
			"message":   entry.Message,
			"timestamp": entry.Timestamp.UTC().Format(time.RFC3339Nano),
		},
	})
}

// HasSubscribers reports whether anyone is live-tailing the job right now.
func (s *Sink) HasSubscribers(jobID uuid.UUID) bool {
	return s.hub.SubscriberCount("job:"+jobID.String()) > 0
}

// PublishStatus announces a job status transition to subscribers. Used by
// the execution workflow so the UI updates without polling.
func (s *Sink) PublishStatus(jobID uuid.UUID, status, detail string) {
	s.hub.Publish("job:"+jobID.String(), websocket.Message{
		Type:  websocket.MsgJobStatus,
		Topic: "job:" + jobID.String(),
		Payload: map[string]any{
			"job_id": jobID.String(),
			"status": status,
			"detail": detail,
		},
	})
}

// levelString maps the proto enum to the stored level label.
func levelString(level proto.LogLevel) string {
	switch level {
	case proto.LogLevel_LOG_LEVEL_DEBUG:
		return "debug"
	case proto.LogLevel_LOG_LEVEL_WARN:
		return "warn"
	case proto.LogLevel_LOG_LEVEL_ERROR:
		return "error"
	default:
		return "info"
	}
}
