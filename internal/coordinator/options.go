package coordinator

import (
	"github.com/AgentricAI/agentricai/internal/event"
	"github.com/AgentricAI/agentricai/internal/logging"
)

// Defaults applied by New when no option overrides them.
const (
	DefaultID    = "AgentricAI_001"
	DefaultRole  = "Core Coordinator & Dispatch Manager"
	DefaultToken = "AgentricAI"
)

type options struct {
	id     string
	role   string
	token  string
	logger *logging.Logger
	bus    *event.Bus
}

// Option configures a Coordinator.
type Option func(*options)

// WithID sets the coordinator's identity. Empty values are ignored.
func WithID(id string) Option {
	return func(o *options) {
		if id != "" {
			o.id = id
		}
	}
}

// WithRole sets the coordinator's descriptive role. Empty values are ignored.
func WithRole(role string) Option {
	return func(o *options) {
		if role != "" {
			o.role = role
		}
	}
}

// WithToken sets the secret Authorize compares against. Empty values are
// ignored so that an empty string can never authorize.
func WithToken(token string) Option {
	return func(o *options) {
		if token != "" {
			o.token = token
		}
	}
}

// WithLogger sets the logger notices are written to.
// If nil, notices are discarded.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithBus publishes an event for every notice on bus.
func WithBus(bus *event.Bus) Option {
	return func(o *options) { o.bus = bus }
}
