// Package coordinator implements the AgentricAI core coordinator: a gate
// that only acknowledges tasks after it has been authorized.
//
// A [Coordinator] starts unauthorized. [Coordinator.Authorize] with the
// exact configured token moves it to authorized, and nothing moves it back.
// [Coordinator.ReceiveInstruction] acknowledges a task when authorized and
// rejects it otherwise. No task is executed or routed; acknowledgment is the
// whole of the work.
//
// Every call yields an [Outcome]:
//
//	c := coordinator.New()
//	c.ReceiveInstruction("deploy", nil) // OutcomeRejectedUnauthorized
//	c.Authorize("wrong-token")          // OutcomeRejectedBadToken
//	c.Authorize("AgentricAI")           // OutcomeAuthorized
//	c.ReceiveInstruction("deploy", nil) // OutcomeAccepted
//
// Outcomes are also logged through the configured logging.Logger and, when
// a bus is attached with [WithBus], published as events.
//
// The payload argument of ReceiveInstruction is inert: it is accepted so
// callers can pass auxiliary data, but the coordinator never inspects it.
package coordinator
