package script

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/AgentricAI/agentricai/internal/coordinator"
	"github.com/AgentricAI/agentricai/internal/errors"
)

const scenario = `
steps:
  - instruct: deploy
    context: {env: prod}
  - authorize: wrong-token
  - authorize: AgentricAI
  - instruct: deploy
`

func TestParse(t *testing.T) {
	s, err := Parse(strings.NewReader(scenario))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []struct {
		action Action
		value  string
	}{
		{ActionInstruct, "deploy"},
		{ActionAuthorize, "wrong-token"},
		{ActionAuthorize, "AgentricAI"},
		{ActionInstruct, "deploy"},
	}
	if len(s.Steps) != len(want) {
		t.Fatalf("len(Steps) = %d, want %d", len(s.Steps), len(want))
	}
	for i, w := range want {
		if s.Steps[i].Action != w.action || s.Steps[i].Value != w.value {
			t.Errorf("Steps[%d] = %+v, want %s %q", i, s.Steps[i], w.action, w.value)
		}
	}

	ctx, ok := s.Steps[0].Context.(map[string]any)
	if !ok || ctx["env"] != "prod" {
		t.Errorf("Steps[0].Context = %#v, want map with env=prod", s.Steps[0].Context)
	}
	if s.Steps[3].Context != nil {
		t.Errorf("Steps[3].Context = %#v, want nil", s.Steps[3].Context)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  error
		wantStep int
	}{
		{"empty input", "", errors.ErrScriptInvalid, 0},
		{"no steps", "steps: []\n", errors.ErrScriptInvalid, 0},
		{"not yaml", "steps: [\n", errors.ErrScriptInvalid, 0},
		{"step not a mapping", "steps:\n  - deploy\n", errors.ErrScriptInvalid, 1},
		{"no action", "steps:\n  - context: {a: 1}\n", errors.ErrScriptInvalid, 1},
		{"both actions", "steps:\n  - authorize: x\n    instruct: y\n", errors.ErrScriptInvalid, 1},
		{"unknown key", "steps:\n  - authorize: AgentricAI\n  - revoke: now\n", errors.ErrUnknownAction, 2},
		{"non-scalar task", "steps:\n  - instruct: [a, b]\n", errors.ErrScriptInvalid, 1},
		{"null token", "steps:\n  - authorize:\n", errors.ErrScriptInvalid, 1},
		{"context on authorize", "steps:\n  - authorize: x\n    context: {a: 1}\n", errors.ErrScriptInvalid, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("Parse() expected error")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}

			var scriptErr *errors.ScriptError
			if !errors.As(err, &scriptErr) {
				t.Fatalf("Parse() error type = %T, want *ScriptError", err)
			}
			if scriptErr.Step != tt.wantStep {
				t.Errorf("Step = %d, want %d", scriptErr.Step, tt.wantStep)
			}
		})
	}
}

func TestParse_UnknownKeysReportedInOrder(t *testing.T) {
	input := "steps:\n  - zeta: 1\n    instruct: deploy\n    alpha: 2\n    mid: 3\n"

	for i := 0; i < 20; i++ {
		_, err := Parse(strings.NewReader(input))

		var scriptErr *errors.ScriptError
		if !errors.As(err, &scriptErr) {
			t.Fatalf("Parse() error type = %T, want *ScriptError", err)
		}
		if scriptErr.Action != "alpha" {
			t.Fatalf("Action = %q, want alpha", scriptErr.Action)
		}
	}
}

func TestParseFile_Missing(t *testing.T) {
	path := t.TempDir() + "/missing.yaml"
	_, err := ParseFile(path)
	if err == nil {
		t.Fatal("ParseFile() expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ParseFile() error = %v, want fs.ErrNotExist", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("ParseFile() error %q should name the file", err)
	}
}

func TestRun_Scenario(t *testing.T) {
	s, err := Parse(strings.NewReader(scenario))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	c := coordinator.New()

	results, err := Run(context.Background(), c, s)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []coordinator.Outcome{
		coordinator.OutcomeRejectedUnauthorized,
		coordinator.OutcomeRejectedBadToken,
		coordinator.OutcomeAuthorized,
		coordinator.OutcomeAccepted,
	}
	if len(results) != len(want) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(want))
	}
	for i, w := range want {
		if results[i].Step != i+1 {
			t.Errorf("results[%d].Step = %d, want %d", i, results[i].Step, i+1)
		}
		if results[i].Notice.Outcome != w {
			t.Errorf("results[%d].Outcome = %v, want %v", i, results[i].Notice.Outcome, w)
		}
	}
	if !strings.Contains(results[3].Notice.Message, "deploy") {
		t.Errorf("acknowledgment %q should contain the task", results[3].Notice.Message)
	}
	if !c.Authorized() {
		t.Error("coordinator should be authorized after the script")
	}
}

func TestRun_Canceled(t *testing.T) {
	s, err := Parse(strings.NewReader(scenario))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := Run(ctx, coordinator.New(), s)
	if !errors.Is(err, errors.ErrCanceled) {
		t.Errorf("Run() error = %v, want ErrCanceled", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, should also match context.Canceled", err)
	}
	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
}

func TestRun_UnknownAction(t *testing.T) {
	s := &Script{Steps: []Step{{Action: ActionAuthorize, Value: "AgentricAI"}, {Action: "revoke"}}}

	results, err := Run(context.Background(), coordinator.New(), s)
	if !errors.Is(err, errors.ErrUnknownAction) {
		t.Errorf("Run() error = %v, want ErrUnknownAction", err)
	}
	if len(results) != 1 {
		t.Errorf("len(results) = %d, want 1", len(results))
	}
}

func TestParseContext(t *testing.T) {
	if got := ParseContext(""); got != nil {
		t.Errorf("ParseContext(\"\") = %#v, want nil", got)
	}

	m, ok := ParseContext(`{"env": "prod", "replicas": 3}`).(map[string]any)
	if !ok {
		t.Fatal("JSON object should decode to a map")
	}
	if m["env"] != "prod" || m["replicas"] != 3 {
		t.Errorf("decoded map = %#v", m)
	}

	if got := ParseContext("{unclosed"); got != "{unclosed" {
		t.Errorf("undecodable text should be returned as-is, got %#v", got)
	}
	if got := ParseContext("just words"); got != "just words" {
		t.Errorf("plain text = %#v, want the string", got)
	}
}
