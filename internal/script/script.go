// Package script replays a sequence of coordinator calls described in YAML.
//
// A script is a list of steps, each of which either offers a token or
// delivers an instruction:
//
//	steps:
//	  - instruct: deploy
//	    context: {env: prod}
//	  - authorize: wrong-token
//	  - authorize: AgentricAI
//	  - instruct: deploy
//
// Rejections are reported as step results, never as errors. Errors are
// reserved for malformed scripts and cancellation.
package script

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/AgentricAI/agentricai/internal/coordinator"
	"github.com/AgentricAI/agentricai/internal/errors"
	"gopkg.in/yaml.v3"
)

// Action names the coordinator call a step makes.
type Action string

// Step actions.
const (
	ActionAuthorize Action = "authorize"
	ActionInstruct  Action = "instruct"
)

const contextKey = "context"

// Step is one coordinator call.
type Step struct {
	Action Action
	// Value is the token for ActionAuthorize and the task for ActionInstruct.
	Value string
	// Context is the decoded auxiliary payload of an instruct step. It is
	// handed to the coordinator as-is.
	Context any
}

// Script is a parsed instruction script.
type Script struct {
	Steps []Step
}

// StepResult pairs a step with the notice the coordinator produced for it.
type StepResult struct {
	Step   int // 1-based
	Action Action
	Notice coordinator.Notice
}

type document struct {
	Steps []yaml.Node `yaml:"steps"`
}

// Parse decodes a script from r.
func Parse(r io.Reader) (*Script, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, errors.NewScriptError("script is empty", errors.ErrScriptInvalid)
		}
		return nil, errors.NewScriptError("cannot decode script", errors.Join(errors.ErrScriptInvalid, err))
	}
	if len(doc.Steps) == 0 {
		return nil, errors.NewScriptError("script has no steps", errors.ErrScriptInvalid)
	}

	s := &Script{Steps: make([]Step, 0, len(doc.Steps))}
	for i := range doc.Steps {
		step, err := parseStep(&doc.Steps[i])
		if err != nil {
			return nil, err.WithStep(i + 1)
		}
		s.Steps = append(s.Steps, step)
	}
	return s, nil
}

// ParseFile reads and parses the script at path.
func ParseFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open script %s", path)
	}
	defer func() { _ = f.Close() }()
	return Parse(f)
}

func parseStep(node *yaml.Node) (Step, *errors.ScriptError) {
	var fields map[string]yaml.Node
	if err := node.Decode(&fields); err != nil {
		return Step{}, errors.NewScriptError("step must be a mapping", errors.ErrScriptInvalid)
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var actions []Action
	for _, key := range keys {
		switch Action(key) {
		case ActionAuthorize, ActionInstruct:
			actions = append(actions, Action(key))
		default:
			if key != contextKey {
				return Step{}, errors.NewScriptError(fmt.Sprintf("unknown key %q", key), errors.ErrUnknownAction).
					WithAction(key)
			}
		}
	}

	switch len(actions) {
	case 0:
		return Step{}, errors.NewScriptError("step has no action", errors.ErrScriptInvalid)
	case 1:
	default:
		return Step{}, errors.NewScriptError("step sets both authorize and instruct", errors.ErrScriptInvalid)
	}

	action := actions[0]
	valueNode := fields[string(action)]
	if valueNode.Kind != yaml.ScalarNode || valueNode.Tag == "!!null" {
		return Step{}, errors.NewScriptError(fmt.Sprintf("%s value must be a string", action), errors.ErrScriptInvalid).
			WithAction(string(action))
	}

	step := Step{Action: action, Value: valueNode.Value}

	if ctxNode, ok := fields[contextKey]; ok {
		if action != ActionInstruct {
			return Step{}, errors.NewScriptError("context is only allowed on instruct steps", errors.ErrScriptInvalid).
				WithAction(string(action))
		}
		if err := ctxNode.Decode(&step.Context); err != nil {
			return Step{}, errors.NewScriptError("cannot decode context", errors.Join(errors.ErrScriptInvalid, err)).
				WithAction(string(action))
		}
	}

	return step, nil
}

// Run executes the steps of s against c in order. It stops before the next
// step once ctx is done and returns the results gathered so far together
// with an error matching errors.ErrCanceled.
func Run(ctx context.Context, c *coordinator.Coordinator, s *Script) ([]StepResult, error) {
	results := make([]StepResult, 0, len(s.Steps))
	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return results, errors.NewScriptError("script canceled", errors.Join(errors.ErrCanceled, err)).
				WithStep(i + 1).
				WithAction(string(step.Action))
		}

		var n coordinator.Notice
		switch step.Action {
		case ActionAuthorize:
			n = c.AuthorizeNotice(step.Value)
		case ActionInstruct:
			n = c.ReceiveInstructionNotice(step.Value, step.Context)
		default:
			return results, errors.NewScriptError(fmt.Sprintf("unknown action %q", step.Action), errors.ErrUnknownAction).
				WithStep(i + 1).
				WithAction(string(step.Action))
		}

		results = append(results, StepResult{Step: i + 1, Action: step.Action, Notice: n})
	}
	return results, nil
}

// ParseContext decodes raw as JSON or YAML for use as an instruction
// context. Text that does not decode is returned unchanged, and empty text
// yields nil.
func ParseContext(raw string) any {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}
