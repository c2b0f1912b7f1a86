package logsink

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/conductor-ci/conductor/internal/db"
	"github.com/conductor-ci/conductor/internal/repositories"
	"github.com/conductor-ci/conductor/internal/types"
	"github.com/conductor-ci/conductor/internal/websocket"
	proto "github.com/conductor-ci/conductor/proto"
)

func newSinkFixture(t *testing.T) (*Sink, repositories.JobRepository, *db.Job) {
	t.Helper()
	gdb := db.NewTest(t)
	jobs := repositories.NewJobRepository(gdb)

	creator := uuid.New()
	job := &db.Job{
		OrgID:                uuid.New(),
		Name:                 "job",
		Status:               string(types.JobStatusInProgress),
		Priority:             string(types.PriorityMedium),
		QueueType:            string(types.QueueBacklog),
		OrderInQueue:         -1,
		Source:               "api",
		Prompt:               "prompt",
		SourceMetadata:       "{}",
		UserAcceptanceStatus: string(types.AcceptanceNotReviewed),
		UserComments:         "[]",
		CreatedBy:            creator,
		UpdatedBy:            creator,
	}
	require.NoError(t, jobs.Create(context.Background(), job))

	sink := New(jobs, websocket.NewHub(), zap.NewNop())
	return sink, jobs, job
}

func TestAppendFramePersistsInOrder(t *testing.T) {
	sink, jobs, job := newSinkFixture(t)
	ctx := context.Background()

	for _, msg := range []string{"first", "second", "third"} {
		frame := &proto.LogMessage{
			JobId:     job.ID.String(),
			Level:     proto.LogLevel_LOG_LEVEL_INFO,
			Message:   msg,
			Stage:     "generate",
			Timestamp: timestamppb.Now(),
		}
		require.NoError(t, sink.AppendFrame(ctx, job.ID, job.Version, job.OrgID, frame))
	}

	logs, err := jobs.GetLogs(ctx, job.ID, job.Version)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	require.Equal(t, "first", logs[0].Message)
	require.Equal(t, "third", logs[2].Message)
	require.Equal(t, "info", logs[0].Level)
	require.Equal(t, "generate", logs[0].Stage)
}

func TestNewVersionStartsFreshLogSeries(t *testing.T) {
	sink, jobs, job := newSinkFixture(t)
	ctx := context.Background()

	frame := &proto.LogMessage{
		JobId:     job.ID.String(),
		Level:     proto.LogLevel_LOG_LEVEL_ERROR,
		Message:   "old attempt",
		Timestamp: timestamppb.Now(),
	}
	require.NoError(t, sink.AppendFrame(ctx, job.ID, job.Version, job.OrgID, frame))

	// A retry writes version+1; its series starts empty.
	require.NoError(t, sink.AppendFrame(ctx, job.ID, job.Version+1, job.OrgID, &proto.LogMessage{
		JobId:     job.ID.String(),
		Level:     proto.LogLevel_LOG_LEVEL_INFO,
		Message:   "new attempt",
		Timestamp: timestamppb.Now(),
	}))

	oldLogs, err := jobs.GetLogs(ctx, job.ID, job.Version)
	require.NoError(t, err)
	require.Len(t, oldLogs, 1)
	require.Equal(t, "old attempt", oldLogs[0].Message)

	newLogs, err := jobs.GetLogs(ctx, job.ID, job.Version+1)
	require.NoError(t, err)
	require.Len(t, newLogs, 1)
	require.Equal(t, "new attempt", newLogs[0].Message)
}

func TestHasSubscribersReflectsHub(t *testing.T) {
	sink, _, job := newSinkFixture(t)
	require.False(t, sink.HasSubscribers(job.ID))
}
