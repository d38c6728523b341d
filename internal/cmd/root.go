package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/AgentricAI/agentricai/internal/config"
	apperrors "github.com/AgentricAI/agentricai/internal/errors"
	"github.com/AgentricAI/agentricai/internal/tui/styles"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "agentricai",
	Short: "AgentricAI core coordinator",
	Long: `AgentricAI is the core coordinator and dispatch manager. It acknowledges
tasks only after it has been authorized with the AgentricAI token.

Rejected calls are normal outcomes and never make a command fail.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		reportError(rootCmd.ErrOrStderr(), cmd, err)
	}
	return err
}

// reportError prints err labelled with its severity. Invalid input gets the
// command's usage line; errors from outside internal/errors get a help hint.
func reportError(w io.Writer, cmd *cobra.Command, err error) {
	severity := apperrors.GetSeverity(err)
	style := styles.ErrorMsg
	if severity <= apperrors.SeverityWarning {
		style = styles.WarningMsg
	}
	_, _ = fmt.Fprintln(w, style.Render(fmt.Sprintf("%s: %s", severity, err)))

	if cmd == nil {
		cmd = rootCmd
	}
	switch {
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		_, _ = fmt.Fprintf(w, "Usage: %s\n", cmd.UseLine())
	case !apperrors.IsUserFacing(err):
		_, _ = fmt.Fprintf(w, "Run '%s --help' for usage.\n", cmd.CommandPath())
	}
}

// exactArgs is cobra.ExactArgs reporting a ValidationError.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return apperrors.NewValidationError(err.Error()).WithField("args")
		}
		return nil
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/agentricai/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("color", "", "color output: auto, always, never")
	rootCmd.PersistentFlags().Bool("trace", false, "print every coordinator event to stderr")
	bindFlags()
}

// bindFlags ties the global flags to their viper keys.
func bindFlags() {
	flags := rootCmd.PersistentFlags()
	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("output.color", flags.Lookup("color"))
	_ = viper.BindPFlag("trace", flags.Lookup("trace"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/agentricai")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("AGENTRICAI")
	// Replace dots with underscores for nested keys in env vars
	// e.g., AGENTRICAI_COORDINATOR_TOKEN for coordinator.token
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
