// Package event provides a pub-sub event bus that lets the CLI and the
// console observe coordinator decisions without the coordinator knowing
// who is listening.
//
// # Main Types
//
//   - [Event]: interface providing EventType() and Timestamp()
//   - [Bus]: synchronous pub-sub dispatcher, safe for concurrent use
//   - [Handler]: func(Event)
//
// # Event Categories
//
// Authorization:
//   - [AuthorizedEvent]: a token matched
//   - [AuthorizationRejectedEvent]: a token did not match
//
// Instructions:
//   - [InstructionAcceptedEvent]: an authorized coordinator acknowledged a task
//   - [InstructionRejectedEvent]: an unauthorized coordinator discarded a task
//
// # Usage
//
//	bus := event.NewBus()
//	bus.Subscribe(event.TypeInstructionAccepted, func(e event.Event) {
//	    accepted := e.(event.InstructionAcceptedEvent)
//	    fmt.Println("accepted", accepted.Task)
//	})
//
// Handlers run synchronously on the publishing goroutine. Publishing from
// inside a handler is allowed; the bus holds no lock while handlers run.
package event
