package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// base contains the common fields shared by most models.
// ID uses UUID v7 (time-ordered) for efficient B-tree indexing and natural
// chronological ordering without a separate created_at sort. CreatedAt and
// UpdatedAt are managed automatically by GORM.
type base struct {
	ID        uuid.UUID `gorm:"type:text;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// BeforeCreate generates a new UUID v7 if the ID is not already set.
// This ensures every record has a valid time-ordered ID before insertion.
func (b *base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == (uuid.UUID{}) {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		b.ID = id
	}
	return nil
}

// -----------------------------------------------------------------------------
// Orgs, Users & API Keys
// -----------------------------------------------------------------------------

// Org is the tenant boundary. Every other row is scoped by OrgID.
type Org struct {
	base
	Name string `gorm:"not null;uniqueIndex"`
}

// User is a member of an org. Authentication happens outside this system —
// the REST layer only resolves a bearer token to {user_id, org_id, role}.
type User struct {
	base
	OrgID       uuid.UUID `gorm:"type:text;not null;index"`
	Email       string    `gorm:"uniqueIndex;not null"`
	DisplayName string    `gorm:"not null"`
	Role        string    `gorm:"not null;default:'member'"` // "admin" or "member"
}

// APIKey authenticates an agent to the gRPC surface. The raw key is never
// stored — only its SHA-256 hex digest, so registration can look keys up
// deterministically. The raw value is shown once at creation time.
type APIKey struct {
	base
	OrgID      uuid.UUID `gorm:"type:text;not null;index"`
	Name       string    `gorm:"not null"`
	KeyHash    string    `gorm:"not null;uniqueIndex"`
	Revoked    bool      `gorm:"not null;default:false"`
	LastUsedAt *time.Time
	CreatedBy  uuid.UUID `gorm:"type:text;not null"`
}

// -----------------------------------------------------------------------------
// Agents
// -----------------------------------------------------------------------------

// Agent represents a registered execution agent running on a remote machine.
// Registration upserts on (org_id, hostname), so reconnecting agents reuse
// their record instead of creating duplicates.
//
// Liveness rule: ConsecutiveFailures is reset to zero whenever the agent is
// marked active; three consecutive failed pings flip it to offline.
type Agent struct {
	base
	OrgID                 uuid.UUID `gorm:"type:text;not null;uniqueIndex:idx_agents_org_host"`
	Name                  string    `gorm:"not null"`
	Hostname              string    `gorm:"not null;uniqueIndex:idx_agents_org_host"`
	IPAddress             string    `gorm:"not null;default:''"`
	Port                  int       `gorm:"not null;default:0"`
	Status                string    `gorm:"not null;default:'offline'"` // "active", "idle", "offline"
	ConsecutiveFailures   int       `gorm:"not null;default:0"`
	LastActiveAt          *time.Time
	LastStreamConnectedAt *time.Time
}

// -----------------------------------------------------------------------------
// Jobs
// -----------------------------------------------------------------------------

// Job is a versioned record keyed by (id, version). Mutations update the
// latest version in place; a new version row is inserted when the prompt or
// repo changes, when acceptance flips to reviewed_and_asked_rework, or when
// the job re-enters the rework queue as a retry with new user comments.
//
// Queue bookkeeping: OrderInQueue is the sole ordering key inside an
// (org_id, queue_type) queue and is always -1 when the job is not queued.
// While in-progress the job keeps its QueueType as provenance so orphan
// recovery can return it to the right queue; terminal transitions clear it
// to "none".
type Job struct {
	ID        uuid.UUID `gorm:"type:text;primaryKey"`
	Version   int       `gorm:"primaryKey;not null;default:1"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	OrgID       uuid.UUID `gorm:"type:text;not null;index:idx_jobs_org_queue_order,priority:1"`
	Name        string    `gorm:"not null"`
	Description string    `gorm:"type:text;default:''"`

	Status       string `gorm:"not null;default:'queued'"`                                            // "queued", "in-progress", "in-review", "completed", "failed", "archived"
	Priority     string `gorm:"not null;default:'medium'"`                                            // "low", "medium", "high"
	QueueType    string `gorm:"not null;default:'backlog';index:idx_jobs_org_queue_order,priority:2"` // "backlog", "rework", "none"
	OrderInQueue int    `gorm:"not null;default:-1;index:idx_jobs_org_queue_order,priority:3"`

	AgentID *uuid.UUID `gorm:"type:text;index"`

	// User input that produced this job.
	Source         string `gorm:"not null;default:'api'"` // "api", "slack", "discord", ...
	Prompt         string `gorm:"type:text;not null"`
	SourceMetadata string `gorm:"type:text;default:'{}'"` // JSON, channel/thread context

	RepoID *uuid.UUID `gorm:"type:text"`

	UserAcceptanceStatus string `gorm:"not null;default:'not_reviewed'"`
	UserComments         string `gorm:"type:text;not null;default:'[]'"` // JSON array of strings

	CodeGenerationLogs   string `gorm:"type:text;default:''"`
	CodeVerificationLogs string `gorm:"type:text;default:''"`
	PRLink               string `gorm:"default:''"`
	ConfidenceScore      *float64

	// Updates is the free-form append-only audit trail shown to users.
	// Machine-readable audit lives in Activity rows.
	Updates string `gorm:"type:text;default:''"`

	CreatedBy uuid.UUID `gorm:"type:text;not null"`
	UpdatedBy uuid.UUID `gorm:"type:text;not null"`
}

// BeforeCreate assigns the job ID for first versions. Later versions reuse
// the existing ID with an incremented Version, so the hook must not clobber
// a pre-set ID.
func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == (uuid.UUID{}) {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		j.ID = id
	}
	if j.Version == 0 {
		j.Version = 1
	}
	return nil
}

// JobLog stores a structured log line streamed by an agent during job
// execution. Lines are keyed by (job_id, job_version, org_id) so a retry
// that writes a new job version starts a fresh log series.
type JobLog struct {
	base
	JobID      uuid.UUID `gorm:"type:text;not null;index:idx_job_logs_job_version,priority:1"`
	JobVersion int       `gorm:"not null;index:idx_job_logs_job_version,priority:2"`
	OrgID      uuid.UUID `gorm:"type:text;not null;index"`
	Level      string    `gorm:"not null"` // "debug", "info", "warn", "error"
	Stage      string    `gorm:"default:''"`
	Message    string    `gorm:"type:text;not null"`
	Timestamp  time.Time `gorm:"not null;index"`
}

// -----------------------------------------------------------------------------
// Activities
// -----------------------------------------------------------------------------

// Activity is an append-only audit record tied to a job. One row is written
// for every create/update/archive/execute/reprioritize event.
type Activity struct {
	base
	JobID              uuid.UUID `gorm:"type:text;not null;index"`
	OrgID              uuid.UUID `gorm:"type:text;not null;index"`
	Name               string    `gorm:"not null"`
	Summary            string    `gorm:"type:text;not null"`
	CodeGenerationLogs string    `gorm:"type:text;default:''"`
	VerificationLogs   string    `gorm:"type:text;default:''"`
	CreatedBy          uuid.UUID `gorm:"type:text;not null"`
	UpdatedBy          uuid.UUID `gorm:"type:text;not null"`
}

// ActivityReadStatus tracks per-user read/unread state for an activity.
type ActivityReadStatus struct {
	base
	ActivityID uuid.UUID `gorm:"type:text;not null;uniqueIndex:idx_activity_read_user"`
	UserID     uuid.UUID `gorm:"type:text;not null;uniqueIndex:idx_activity_read_user"`
	Status     string    `gorm:"not null;default:'unread'"` // "read", "unread"
}

// -----------------------------------------------------------------------------
// Queue pause flags & schedule bindings
// -----------------------------------------------------------------------------

// QueuePause holds the per-(org, queue) pause flag. Absence of a row means
// the queue is running (is_paused defaults to false).
type QueuePause struct {
	base
	OrgID     uuid.UUID `gorm:"type:text;not null;uniqueIndex:idx_queue_pause_org_queue"`
	QueueType string    `gorm:"not null;uniqueIndex:idx_queue_pause_org_queue"` // "backlog" or "rework"
	IsPaused  bool      `gorm:"not null;default:false"`
}

// ScheduleBinding maps an agent to its workflow-engine schedule IDs. A row
// exists iff the agent has ever been active. The IDs are opaque strings
// owned by the workflow engine.
type ScheduleBinding struct {
	base
	AgentID               uuid.UUID `gorm:"type:text;not null;uniqueIndex"`
	QueueScheduleID       string    `gorm:"not null"`
	HealthCheckScheduleID string    `gorm:"not null"`
}
