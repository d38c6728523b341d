package coordinator

import "time"

// Outcome is the result of a single coordinator call. Every outcome is a
// normal return; none of them is an error.
type Outcome int

const (
	// OutcomeAccepted: an authorized coordinator acknowledged a task.
	OutcomeAccepted Outcome = iota
	// OutcomeRejectedUnauthorized: the coordinator is not authorized and discarded the task.
	OutcomeRejectedUnauthorized
	// OutcomeAuthorized: the token matched and the coordinator is authorized.
	OutcomeAuthorized
	// OutcomeRejectedBadToken: the token did not match; authorization is unchanged.
	OutcomeRejectedBadToken
)

// String returns the snake_case name used in logs and script output.
func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeRejectedUnauthorized:
		return "rejected_unauthorized"
	case OutcomeAuthorized:
		return "authorized"
	case OutcomeRejectedBadToken:
		return "rejected_bad_token"
	default:
		return "unknown"
	}
}

// OK reports whether the call succeeded (accepted or authorized).
func (o Outcome) OK() bool {
	return o == OutcomeAccepted || o == OutcomeAuthorized
}

// Notice is the observable record of one coordinator call.
type Notice struct {
	AgentID string
	Outcome Outcome
	// Message is the human-readable notice, prefixed with "[<AgentID>]".
	Message string
	// Task is set only for OutcomeAccepted.
	Task string
	Time time.Time
}

// String returns the notice message.
func (n Notice) String() string {
	return n.Message
}

// Status is a point-in-time snapshot of a coordinator.
type Status struct {
	ID         string
	Role       string
	Authorized bool
}
