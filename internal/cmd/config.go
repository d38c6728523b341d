package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/AgentricAI/agentricai/internal/config"
	apperrors "github.com/AgentricAI/agentricai/internal/errors"
	"github.com/AgentricAI/agentricai/internal/tui/styles"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify AgentricAI configuration",
	Long: `View or modify AgentricAI configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  agentricai config set coordinator.agent_id AgentricAI_002
  agentricai config set logging.level debug

Valid keys:
  coordinator.agent_id  - Coordinator identity shown in every notice
  coordinator.role      - Descriptive role label
  logging.enabled       - Write log entries (true/false)
  logging.level         - Options: debug, info, warn, error
  logging.dir           - Log directory (empty for stderr)
  logging.max_size_mb   - Log size in MB before rotation
  logging.max_backups   - Rotated log files to keep
  logging.compress      - Gzip rotated logs (true/false)
  output.color          - Options: auto, always, never
  console.history_limit - Lines of history the console keeps

The token is deliberately not settable here; use AGENTRICAI_COORDINATOR_TOKEN.`,
	Args: exactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/agentricai/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

// settableKeys maps each key accepted by config set to its value type.
var settableKeys = map[string]string{
	"coordinator.agent_id":  "string",
	"coordinator.role":      "string",
	"logging.enabled":       "bool",
	"logging.level":         "string",
	"logging.dir":           "string",
	"logging.max_size_mb":   "int",
	"logging.max_backups":   "int",
	"logging.compress":      "bool",
	"output.color":          "string",
	"console.history_limit": "int",
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		_, _ = fmt.Fprintf(out, "# Config file: %s\n", viper.ConfigFileUsed())
	} else {
		_, _ = fmt.Fprintf(out, "# Config file: (none - using defaults)\n")
	}

	data, err := yaml.Marshal(cfg.Redacted())
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}
	_, _ = out.Write(data)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	keyType, ok := settableKeys[key]
	if !ok {
		return apperrors.NewValidationError("unknown configuration key").WithField(key)
	}

	// Validate the value based on type
	var typedValue any
	switch keyType {
	case "string":
		typedValue = value
	case "bool":
		if value != "true" && value != "false" {
			return apperrors.NewValidationError("expected true or false").WithField(key).WithValue(value)
		}
		typedValue = value == "true"
	case "int":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return apperrors.NewValidationError("expected integer").WithField(key).WithValue(value).WithCause(err)
		}
		typedValue = intVal
	}

	previous := viper.Get(key)
	viper.Set(key, typedValue)
	if _, err := config.Load(); err != nil {
		viper.Set(key, previous)
		return apperrors.NewValidationError("rejected by validation").WithField(key).WithValue(value).WithCause(err)
	}

	// Ensure config directory exists
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = config.ConfigFile()
	}
	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := writeConfigKey(configFile, key, typedValue); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, styles.SuccessMsg.Render(fmt.Sprintf("Set %s = %v", key, typedValue)))
	_, _ = fmt.Fprintf(out, "Config saved to %s\n", configFile)

	return nil
}

// writeConfigKey sets one dotted key in the YAML file at path, keeping
// every other value already in the file. Defaults and environment values
// are never written.
func writeConfigKey(path, key string, value any) error {
	doc := make(map[string]any)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return err
		}
		if doc == nil {
			doc = make(map[string]any)
		}
	case !os.IsNotExist(err):
		return err
	}

	parts := strings.Split(key, ".")
	node := doc
	for _, part := range parts[:len(parts)-1] {
		child, ok := node[part].(map[string]any)
		if !ok {
			child = make(map[string]any)
			node[part] = child
		}
		node = child
	}
	node[parts[len(parts)-1]] = value

	out, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0644)
}

// defaultConfigContent is written by config init.
const defaultConfigContent = `# AgentricAI Configuration

# Coordinator identity. The token is best supplied through the
# AGENTRICAI_COORDINATOR_TOKEN environment variable instead of this file.
coordinator:
  agent_id: AgentricAI_001
  role: Core Coordinator & Dispatch Manager

# Structured JSON logging
logging:
  enabled: true
  # Options: debug, info, warn, error
  level: info
  # Directory for agentricai.log; empty writes to stderr
  dir: ""
  max_size_mb: 10
  max_backups: 3
  compress: false

# Terminal output
output:
  # Options: auto, always, never
  color: auto

# Interactive console
console:
  history_limit: 200
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configFile := viper.GetString("config")
	if configFile == "" {
		configFile = config.ConfigFile()
	}

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'agentricai config set' to modify values", configFile)
	}

	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configFile, []byte(defaultConfigContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, styles.SuccessMsg.Render("Created config file at "+configFile))
	_, _ = fmt.Fprintln(out, "Edit this file to customize AgentricAI's behavior.")

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configFile := config.ConfigFile()

	if viper.ConfigFileUsed() != "" {
		_, _ = fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		_, _ = fmt.Fprintf(out, "Default path: %s (not created)\n", configFile)
	}

	// Also show config search paths
	_, _ = fmt.Fprintln(out, "\nSearch paths:")
	_, _ = fmt.Fprintf(out, "  1. %s\n", configFile)
	_, _ = fmt.Fprintf(out, "  2. $HOME/.config/agentricai/config.yaml\n")
	_, _ = fmt.Fprintf(out, "  3. ./config.yaml (current directory)\n")
	_, _ = fmt.Fprintf(out, "\nEnvironment variables: AGENTRICAI_* (e.g., %s)\n",
		"AGENTRICAI_"+strings.ToUpper(strings.ReplaceAll("coordinator.token", ".", "_")))

	return nil
}
