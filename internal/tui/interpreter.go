package tui

import (
	"fmt"
	"strings"

	"github.com/AgentricAI/agentricai/internal/coordinator"
	"github.com/AgentricAI/agentricai/internal/script"
)

// Result is what one console line produced.
type Result struct {
	// Notice is set when the line reached the coordinator.
	Notice *coordinator.Notice
	// Info is plain text for status and help.
	Info string
	// Err is a usage problem; the coordinator was not called.
	Err error
	// Quit asks the console to exit.
	Quit bool
}

// HelpText lists the console commands.
const HelpText = `Commands:
  authorize <token>          offer a token (alias: auth)
  instruct <task> [context]  deliver a task; context may be JSON or YAML (alias: do)
  status                     show identity and authorization
  help                       show this help
  quit                       leave the console (alias: exit)

Arguments are trimmed of surrounding whitespace, so a token offered here
cannot begin or end with a space. Use a script or dispatch --token for that.`

// Execute interprets one console line against c. Blank lines produce an
// empty Result.
func Execute(c *coordinator.Coordinator, line string) Result {
	line = strings.TrimSpace(line)
	if line == "" {
		return Result{}
	}

	name, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(name) {
	case "authorize", "auth":
		if rest == "" {
			return Result{Err: fmt.Errorf("usage: authorize <token>")}
		}
		n := c.AuthorizeNotice(rest)
		return Result{Notice: &n}

	case "instruct", "do":
		if rest == "" {
			return Result{Err: fmt.Errorf("usage: instruct <task> [context]")}
		}
		task, raw, _ := strings.Cut(rest, " ")
		n := c.ReceiveInstructionNotice(task, script.ParseContext(raw))
		return Result{Notice: &n}

	case "status":
		s := c.Status()
		state := "unauthorized"
		if s.Authorized {
			state = "authorized"
		}
		return Result{Info: fmt.Sprintf("%s (%s): %s", s.ID, s.Role, state)}

	case "help", "?":
		return Result{Info: HelpText}

	case "quit", "exit":
		return Result{Quit: true}

	default:
		return Result{Err: fmt.Errorf("unknown command %q (try help)", name)}
	}
}
