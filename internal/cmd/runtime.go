package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/AgentricAI/agentricai/internal/config"
	"github.com/AgentricAI/agentricai/internal/coordinator"
	apperrors "github.com/AgentricAI/agentricai/internal/errors"
	"github.com/AgentricAI/agentricai/internal/event"
	"github.com/AgentricAI/agentricai/internal/logging"
	"github.com/AgentricAI/agentricai/internal/tui/styles"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// runtime is the wiring shared by commands that drive a coordinator.
type runtime struct {
	cfg    *config.Config
	logger *logging.Logger
	bus    *event.Bus
	coord  *coordinator.Coordinator
}

// newRuntime loads the configuration and builds a coordinator with its
// logger and event bus.
func newRuntime(cmd *cobra.Command) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, apperrors.Wrap(err, "invalid configuration")
	}

	styles.SetColorMode(cfg.Output.Color, isTerminal(cmd.OutOrStdout()))

	logger, err := newLogger(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	bus := event.NewBus()
	bus.SetLogger(logger)
	if viper.GetBool("trace") {
		bus.SubscribeAll(traceEvents(cmd.ErrOrStderr()))
	}

	coord := coordinator.FromConfig(cfg.Coordinator,
		coordinator.WithLogger(logger.WithRole(cfg.Coordinator.Role)),
		coordinator.WithBus(bus),
	)

	return &runtime{cfg: cfg, logger: logger, bus: bus, coord: coord}, nil
}

// Close releases the log file, if any.
func (r *runtime) Close() error {
	return r.logger.Close()
}

// newLogger builds the logger described by cfg. Without a log directory,
// entries go to stderr.
func newLogger(cfg config.LoggingConfig, stderr io.Writer) (*logging.Logger, error) {
	if !cfg.Enabled {
		return logging.NopLogger(), nil
	}
	dir := cfg.ResolveDir()
	if dir == "" {
		return logging.NewLoggerWithWriter(stderr, cfg.Level), nil
	}
	logger, err := logging.NewLoggerWithRotation(dir, cfg.Level, cfg.Rotation())
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to open log in %s", dir)
	}
	return logger, nil
}

func traceEvents(w io.Writer) event.Handler {
	return func(e event.Event) {
		_, _ = fmt.Fprintf(w, "%s %s\n", e.Timestamp().Format("15:04:05.000"), styles.Muted.Render("event "+e.EventType()))
	}
}

// isTerminal reports whether w is a terminal.
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printNotice writes n styled by its outcome.
func printNotice(w io.Writer, n coordinator.Notice) {
	_, _ = fmt.Fprintln(w, styles.Notice(n.Outcome.String(), n.Message))
}
