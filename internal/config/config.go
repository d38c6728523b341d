package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/AgentricAI/agentricai/internal/logging"
	"github.com/spf13/viper"
)

// Config represents the complete agentricai configuration
type Config struct {
	Coordinator CoordinatorConfig `mapstructure:"coordinator" yaml:"coordinator"`
	Logging     LoggingConfig     `mapstructure:"logging" yaml:"logging"`
	Output      OutputConfig      `mapstructure:"output" yaml:"output"`
	Console     ConsoleConfig     `mapstructure:"console" yaml:"console"`
}

// CoordinatorConfig fixes the coordinator's identity and the secret it
// accepts. All three values are read once at construction.
type CoordinatorConfig struct {
	// AgentID identifies the coordinator in every notice (default: "AgentricAI_001")
	AgentID string `mapstructure:"agent_id" yaml:"agent_id"`
	// Role is a descriptive label (default: "Core Coordinator & Dispatch Manager")
	Role string `mapstructure:"role" yaml:"role"`
	// Token is the exact, case-sensitive secret Authorize must receive (default: "AgentricAI").
	// Prefer setting it via AGENTRICAI_COORDINATOR_TOKEN over writing it to a file.
	Token string `mapstructure:"token" yaml:"token"`
}

// LoggingConfig controls structured logging
type LoggingConfig struct {
	// Enabled controls whether notices are logged at all (default: true)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level" yaml:"level"`
	// Dir is where agentricai.log is written. Empty means stderr.
	Dir string `mapstructure:"dir" yaml:"dir"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	// MaxBackups is the number of rotated log files to keep (default: 3)
	MaxBackups int `mapstructure:"max_backups" yaml:"max_backups"`
	// Compress gzips rotated log files (default: false)
	Compress bool `mapstructure:"compress" yaml:"compress"`
}

// OutputConfig controls how notices are printed
type OutputConfig struct {
	// Color is "auto", "always" or "never" (default: "auto")
	Color string `mapstructure:"color" yaml:"color"`
}

// ConsoleConfig controls the interactive console
type ConsoleConfig struct {
	// HistoryLimit caps how many notices the console keeps on screen (default: 200)
	HistoryLimit int `mapstructure:"history_limit" yaml:"history_limit"`
}

// Default identity and secret, matching the coordinator package defaults.
const (
	DefaultAgentID = "AgentricAI_001"
	DefaultRole    = "Core Coordinator & Dispatch Manager"
	DefaultToken   = "AgentricAI"
)

// Rotation converts the logging settings into a logging.RotationConfig.
func (c *LoggingConfig) Rotation() logging.RotationConfig {
	return logging.RotationConfig{
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		Compress:   c.Compress,
	}
}

// ResolveDir expands a leading ~ in Dir. An empty Dir stays empty.
func (c *LoggingConfig) ResolveDir() string {
	path := c.Dir
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return path
}

// Redacted returns a copy of the config with the token masked, for display.
func (c Config) Redacted() Config {
	if c.Coordinator.Token != "" {
		c.Coordinator.Token = strings.Repeat("*", 8)
	}
	return c
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Coordinator: CoordinatorConfig{
			AgentID: DefaultAgentID,
			Role:    DefaultRole,
			Token:   DefaultToken,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			Dir:        "", // stderr
			MaxSizeMB:  10,
			MaxBackups: 3,
			Compress:   false,
		},
		Output: OutputConfig{
			Color: "auto",
		},
		Console: ConsoleConfig{
			HistoryLimit: 200,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("coordinator.agent_id", defaults.Coordinator.AgentID)
	viper.SetDefault("coordinator.role", defaults.Coordinator.Role)
	viper.SetDefault("coordinator.token", defaults.Coordinator.Token)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viper.SetDefault("logging.compress", defaults.Logging.Compress)

	viper.SetDefault("output.color", defaults.Output.Color)

	viper.SetDefault("console.history_limit", defaults.Console.HistoryLimit)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration, falling back to defaults if it
// cannot be loaded.
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "agentricai")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".agentricai"
	}
	return filepath.Join(home, ".config", "agentricai")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
