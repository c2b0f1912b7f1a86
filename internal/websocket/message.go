// Package websocket implements the real-time pub/sub hub that pushes server
// events to connected GUI clients. It uses gorilla/websocket under the hood
// and exposes a topic-based broadcast API consumed by the log sink, the
// dispatch workflows, and the gRPC stream handler.
//
// Topic naming convention:
//
//	job:<uuid>    — status transitions and streamed log lines for a job
//	agent:<uuid>  — liveness transitions for an agent
package websocket

// MessageType identifies the kind of event carried by a Message.
// The GUI uses this field to route the payload to the correct store update.
type MessageType string

const (
	// MsgJobStatus is sent when a job transitions between states
	// (queued → in-progress → in-review/completed/failed).
	MsgJobStatus MessageType = "job.status"

	// MsgJobLog is sent for each streamed log line during an active run.
	MsgJobLog MessageType = "job.log"

	// MsgAgentStatus is sent when an agent crosses the offline threshold
	// or is brought back by a manual reconnect.
	MsgAgentStatus MessageType = "agent.status"

	// MsgPing names a ping message type; the hub does not send it.
	// Connection keepalive uses WebSocket ping control frames (writePump).
	MsgPing MessageType = "ping"
)

// Message is the envelope for every WebSocket frame sent to clients.
// The GUI deserializes this struct and dispatches on Type.
//
// JSON example:
//
//	{"type":"job.log","topic":"job:018f...","payload":{"message":"..."}}
type Message struct {
	// Type identifies the kind of event so the client can route it correctly.
	Type MessageType `json:"type"`

	// Topic is the pub/sub channel this message was published on.
	// Clients use it to associate the update with the correct UI element.
	Topic string `json:"topic"`

	// Payload carries the event-specific data. The shape varies by Type:
	//   - job.status:   {"status":"in-progress","detail":"..."}
	//   - job.log:      {"level":"info","stage":"generate","message":"..."}
	//   - agent.status: {"status":"offline","consecutive_failures":3}
	//   - ping:         {} (empty)
	Payload any `json:"payload"`
}
