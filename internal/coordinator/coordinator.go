package coordinator

import (
	"crypto/subtle"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/AgentricAI/agentricai/internal/config"
	"github.com/AgentricAI/agentricai/internal/event"
	"github.com/AgentricAI/agentricai/internal/logging"
)

// Coordinator gates task acceptance behind a one-way authorization flag.
// It is safe for concurrent use.
type Coordinator struct {
	id    string
	role  string
	token []byte

	authorized atomic.Bool

	logger *logging.Logger
	bus    *event.Bus
	now    func() time.Time
}

// New creates an unauthorized Coordinator. Without options it uses
// DefaultID, DefaultRole and DefaultToken.
func New(opts ...Option) *Coordinator {
	o := options{
		id:    DefaultID,
		role:  DefaultRole,
		token: DefaultToken,
	}
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil {
		logger = logging.NopLogger()
	}

	return &Coordinator{
		id:     o.id,
		role:   o.role,
		token:  []byte(o.token),
		logger: logger.WithAgent(o.id),
		bus:    o.bus,
		now:    time.Now,
	}
}

// FromConfig creates a Coordinator from the coordinator config section.
// Options passed after cfg take precedence.
func FromConfig(cfg config.CoordinatorConfig, opts ...Option) *Coordinator {
	base := []Option{WithID(cfg.AgentID), WithRole(cfg.Role), WithToken(cfg.Token)}
	return New(append(base, opts...)...)
}

// ID returns the coordinator's fixed identity.
func (c *Coordinator) ID() string { return c.id }

// Role returns the coordinator's fixed role label.
func (c *Coordinator) Role() string { return c.role }

// Authorized reports whether Authorize has ever succeeded.
func (c *Coordinator) Authorized() bool { return c.authorized.Load() }

// Status returns a snapshot of the coordinator.
func (c *Coordinator) Status() Status {
	return Status{ID: c.id, Role: c.role, Authorized: c.Authorized()}
}

// Authorize authorizes the coordinator if token exactly matches the
// configured secret. A mismatch never revokes an earlier authorization.
func (c *Coordinator) Authorize(token string) Outcome {
	return c.AuthorizeNotice(token).Outcome
}

// AuthorizeNotice is Authorize, returning the full notice.
func (c *Coordinator) AuthorizeNotice(token string) Notice {
	if subtle.ConstantTimeCompare([]byte(token), c.token) == 1 {
		c.authorized.Store(true)
		n := c.notice(OutcomeAuthorized, "Authorized by AgentricAI.", "")
		c.logger.Info(n.Message, "outcome", n.Outcome.String())
		c.publish(event.NewAuthorizedEvent(c.id))
		return n
	}

	n := c.notice(OutcomeRejectedBadToken, "Invalid authorization token.", "")
	authorized := c.Authorized()
	c.logger.Warn(n.Message, "outcome", n.Outcome.String(), "authorized", authorized)
	c.publish(event.NewAuthorizationRejectedEvent(c.id, authorized))
	return n
}

// ReceiveInstruction acknowledges task if the coordinator is authorized and
// rejects it otherwise. payload is reserved for future use and is never
// read; any value, including nil, is accepted.
func (c *Coordinator) ReceiveInstruction(task string, payload any) Outcome {
	return c.ReceiveInstructionNotice(task, payload).Outcome
}

// ReceiveInstructionNotice is ReceiveInstruction, returning the full notice.
func (c *Coordinator) ReceiveInstructionNotice(task string, _ any) Notice {
	if !c.Authorized() {
		n := c.notice(OutcomeRejectedUnauthorized, "Unauthorized call. Only AgentricAI may delegate tasks.", "")
		c.logger.Warn(n.Message, "outcome", n.Outcome.String())
		c.publish(event.NewInstructionRejectedEvent(c.id))
		return n
	}

	n := c.notice(OutcomeAccepted, "Executing task: "+task, task)
	c.logger.Info(n.Message, "outcome", n.Outcome.String(), "task", task)
	c.publish(event.NewInstructionAcceptedEvent(c.id, task))
	return n
}

func (c *Coordinator) notice(outcome Outcome, text, task string) Notice {
	return Notice{
		AgentID: c.id,
		Outcome: outcome,
		Message: fmt.Sprintf("[%s] %s", c.id, text),
		Task:    task,
		Time:    c.now(),
	}
}

func (c *Coordinator) publish(e event.Event) {
	if c.bus != nil {
		c.bus.Publish(e)
	}
}
