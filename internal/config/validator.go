package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	apperrors "github.com/AgentricAI/agentricai/internal/errors"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "logging.max_size_mb")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// Unwrap lets callers match any validation failure with ErrConfigInvalid.
func (e ValidationErrors) Unwrap() error {
	return apperrors.ErrConfigInvalid
}

// agentIDRegex keeps identifiers printable inside "[<id>]" notice prefixes.
var agentIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidColorModes returns the list of valid output.color values
func ValidColorModes() []string {
	return []string{"auto", "always", "never"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateCoordinator()...)
	errors = append(errors, c.validateLogging()...)
	errors = append(errors, c.validateOutput()...)
	errors = append(errors, c.validateConsole()...)

	return errors
}

func (c *Config) validateCoordinator() []ValidationError {
	var errors []ValidationError

	if !agentIDRegex.MatchString(c.Coordinator.AgentID) {
		errors = append(errors, ValidationError{
			Field:   "coordinator.agent_id",
			Value:   c.Coordinator.AgentID,
			Message: "must start with a letter or digit and contain only letters, digits, '_', '.' or '-'",
		})
	}

	if strings.TrimSpace(c.Coordinator.Role) == "" {
		errors = append(errors, ValidationError{
			Field:   "coordinator.role",
			Value:   c.Coordinator.Role,
			Message: "must not be empty",
		})
	}

	// An empty token would let an empty string authorize.
	if c.Coordinator.Token == "" {
		errors = append(errors, ValidationError{
			Field:   "coordinator.token",
			Value:   "",
			Message: "must not be empty",
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.Logging.MaxSizeMB <= 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be positive",
		})
	}

	const maxLogSizeMB = 1000
	if c.Logging.MaxSizeMB > maxLogSizeMB {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: fmt.Sprintf("exceeds maximum of %dMB", maxLogSizeMB),
		})
	}

	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errors
}

func (c *Config) validateOutput() []ValidationError {
	if c.Output.Color == "" || slices.Contains(ValidColorModes(), c.Output.Color) {
		return nil
	}
	return []ValidationError{{
		Field:   "output.color",
		Value:   c.Output.Color,
		Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidColorModes(), ", ")),
	}}
}

func (c *Config) validateConsole() []ValidationError {
	var errors []ValidationError

	const maxHistory = 10000
	if c.Console.HistoryLimit <= 0 || c.Console.HistoryLimit > maxHistory {
		errors = append(errors, ValidationError{
			Field:   "console.history_limit",
			Value:   c.Console.HistoryLimit,
			Message: fmt.Sprintf("must be between 1 and %d", maxHistory),
		})
	}

	return errors
}
