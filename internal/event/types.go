package event

import "time"

// Event is the interface that all events must implement.
type Event interface {
	// EventType returns a "category.action" identifier, e.g. "instruction.accepted".
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Event type identifiers.
const (
	TypeAuthorized            = "coordinator.authorized"
	TypeAuthorizationRejected = "coordinator.authorization_rejected"
	TypeInstructionAccepted   = "instruction.accepted"
	TypeInstructionRejected   = "instruction.rejected"
)

// baseEvent provides common fields for all events.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// -----------------------------------------------------------------------------
// Authorization Events
// -----------------------------------------------------------------------------

// AuthorizedEvent is emitted each time a coordinator accepts a token.
type AuthorizedEvent struct {
	baseEvent
	AgentID string
}

// NewAuthorizedEvent creates an AuthorizedEvent.
func NewAuthorizedEvent(agentID string) AuthorizedEvent {
	return AuthorizedEvent{
		baseEvent: newBaseEvent(TypeAuthorized),
		AgentID:   agentID,
	}
}

// AuthorizationRejectedEvent is emitted when a coordinator is offered a
// token that does not match. The offered token is never carried.
type AuthorizationRejectedEvent struct {
	baseEvent
	AgentID    string
	Authorized bool // authorization state after the rejection
}

// NewAuthorizationRejectedEvent creates an AuthorizationRejectedEvent.
func NewAuthorizationRejectedEvent(agentID string, authorized bool) AuthorizationRejectedEvent {
	return AuthorizationRejectedEvent{
		baseEvent:  newBaseEvent(TypeAuthorizationRejected),
		AgentID:    agentID,
		Authorized: authorized,
	}
}

// -----------------------------------------------------------------------------
// Instruction Events
// -----------------------------------------------------------------------------

// InstructionAcceptedEvent is emitted when an authorized coordinator
// acknowledges a task.
type InstructionAcceptedEvent struct {
	baseEvent
	AgentID string
	Task    string
}

// NewInstructionAcceptedEvent creates an InstructionAcceptedEvent.
func NewInstructionAcceptedEvent(agentID, task string) InstructionAcceptedEvent {
	return InstructionAcceptedEvent{
		baseEvent: newBaseEvent(TypeInstructionAccepted),
		AgentID:   agentID,
		Task:      task,
	}
}

// InstructionRejectedEvent is emitted when an unauthorized coordinator
// turns away an instruction. The task is discarded and not carried.
type InstructionRejectedEvent struct {
	baseEvent
	AgentID string
}

// NewInstructionRejectedEvent creates an InstructionRejectedEvent.
func NewInstructionRejectedEvent(agentID string) InstructionRejectedEvent {
	return InstructionRejectedEvent{
		baseEvent: newBaseEvent(TypeInstructionRejected),
		AgentID:   agentID,
	}
}
