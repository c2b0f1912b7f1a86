// Package types defines the shared domain enumerations used across the
// server: job and agent lifecycle states, queue identifiers, and review
// outcomes. They are stored as plain strings in the database.
package types

// ─── Agent ───────────────────────────────────────────────────────────────────

// AgentStatus represents the current liveness state of an agent.
type AgentStatus string

const (
	AgentStatusActive  AgentStatus = "active"
	AgentStatusIdle    AgentStatus = "idle"
	AgentStatusOffline AgentStatus = "offline"
)

// ─── Job ─────────────────────────────────────────────────────────────────────

// JobStatus represents the current execution state of a job.
type JobStatus string

const (
	JobStatusQueued     JobStatus = "queued"
	JobStatusInProgress JobStatus = "in-progress"
	JobStatusInReview   JobStatus = "in-review"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
	JobStatusArchived   JobStatus = "archived"
)

// JobPriority is a coarse user-facing priority label. Ordering inside a
// queue is positional (OrderInQueue), not priority-based.
type JobPriority string

const (
	PriorityLow    JobPriority = "low"
	PriorityMedium JobPriority = "medium"
	PriorityHigh   JobPriority = "high"
)

// QueueType identifies which per-org queue a job belongs to. Rework is
// strictly prioritized over backlog during dispatch. QueueNone marks a job
// that is not (or no longer) associated with any queue.
type QueueType string

const (
	QueueBacklog QueueType = "backlog"
	QueueRework  QueueType = "rework"
	QueueNone    QueueType = "none"
)

// DispatchQueues lists the claimable queues in dispatch order.
var DispatchQueues = []QueueType{QueueRework, QueueBacklog}

// AcceptanceStatus captures the user's review verdict on a job's output.
type AcceptanceStatus string

const (
	AcceptanceNotReviewed AcceptanceStatus = "not_reviewed"
	AcceptanceAccepted    AcceptanceStatus = "reviewed_and_accepted"
	AcceptanceAskedRework AcceptanceStatus = "reviewed_and_asked_rework"
	AcceptanceRejected    AcceptanceStatus = "rejected"
)

// ─── Users ───────────────────────────────────────────────────────────────────

// UserRole represents the permission level of a user within an org.
type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleMember UserRole = "member"
)

// ─── Activities ──────────────────────────────────────────────────────────────

// ReadStatus tracks whether a user has seen an activity entry.
type ReadStatus string

const (
	ReadStatusRead   ReadStatus = "read"
	ReadStatusUnread ReadStatus = "unread"
)
