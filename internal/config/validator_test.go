package config

import (
	"errors"
	"strings"
	"testing"

	apperrors "github.com/AgentricAI/agentricai/internal/errors"
)

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{
		Field:   "test.field",
		Value:   123,
		Message: "must be greater than zero",
	}

	expected := "test.field: must be greater than zero (got: 123)"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	t.Run("empty errors", func(t *testing.T) {
		var errs ValidationErrors
		if errs.Error() != "" {
			t.Errorf("Error() for empty = %q, want empty string", errs.Error())
		}
	})

	t.Run("single error", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "test.field", Value: 123, Message: "is invalid"},
		}
		expected := "test.field: is invalid (got: 123)"
		if errs.Error() != expected {
			t.Errorf("Error() = %q, want %q", errs.Error(), expected)
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "field1", Value: "bad", Message: "is invalid"},
			{Field: "field2", Value: -1, Message: "must be positive"},
		}
		result := errs.Error()
		if !strings.Contains(result, "2 validation errors") {
			t.Errorf("Error() should mention 2 errors: %s", result)
		}
		if !strings.Contains(result, "field1") || !strings.Contains(result, "field2") {
			t.Errorf("Error() should mention both fields: %s", result)
		}
	})

	t.Run("matches ErrConfigInvalid", func(t *testing.T) {
		var err error = ValidationErrors{{Field: "x", Message: "bad"}}
		if !errors.Is(err, apperrors.ErrConfigInvalid) {
			t.Error("ValidationErrors should match ErrConfigInvalid")
		}
	})
}

func TestConfig_Validate_DefaultConfig(t *testing.T) {
	if errs := Default().Validate(); len(errs) != 0 {
		t.Errorf("default config should be valid, got: %v", ValidationErrors(errs))
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantField string
	}{
		{
			name:      "empty agent id",
			modify:    func(c *Config) { c.Coordinator.AgentID = "" },
			wantField: "coordinator.agent_id",
		},
		{
			name:      "agent id with brackets",
			modify:    func(c *Config) { c.Coordinator.AgentID = "agent]x" },
			wantField: "coordinator.agent_id",
		},
		{
			name:      "blank role",
			modify:    func(c *Config) { c.Coordinator.Role = "   " },
			wantField: "coordinator.role",
		},
		{
			name:      "empty token",
			modify:    func(c *Config) { c.Coordinator.Token = "" },
			wantField: "coordinator.token",
		},
		{
			name:      "unknown log level",
			modify:    func(c *Config) { c.Logging.Level = "verbose" },
			wantField: "logging.level",
		},
		{
			name:      "zero max size",
			modify:    func(c *Config) { c.Logging.MaxSizeMB = 0 },
			wantField: "logging.max_size_mb",
		},
		{
			name:      "oversized max size",
			modify:    func(c *Config) { c.Logging.MaxSizeMB = 5000 },
			wantField: "logging.max_size_mb",
		},
		{
			name:      "negative backups",
			modify:    func(c *Config) { c.Logging.MaxBackups = -1 },
			wantField: "logging.max_backups",
		},
		{
			name:      "unknown color mode",
			modify:    func(c *Config) { c.Output.Color = "rainbow" },
			wantField: "output.color",
		},
		{
			name:      "zero history",
			modify:    func(c *Config) { c.Console.HistoryLimit = 0 },
			wantField: "console.history_limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			errs := cfg.Validate()
			if len(errs) != 1 {
				t.Fatalf("expected 1 validation error, got %d: %v", len(errs), ValidationErrors(errs))
			}
			if errs[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", errs[0].Field, tt.wantField)
			}
		})
	}
}

func TestConfig_Validate_AcceptsUppercaseLevel(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "WARN"
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("uppercase level should be accepted, got: %v", ValidationErrors(errs))
	}
}
