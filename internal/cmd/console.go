package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/AgentricAI/agentricai/internal/config"
	"github.com/AgentricAI/agentricai/internal/coordinator"
	"github.com/AgentricAI/agentricai/internal/logging"
	"github.com/AgentricAI/agentricai/internal/tui"
	"github.com/AgentricAI/agentricai/internal/watch"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Drive a long-lived coordinator interactively",
	Long: `Drive a long-lived coordinator interactively.

On a terminal this opens a full-screen console. Otherwise commands are read
from stdin one per line, which makes the console scriptable:

  printf 'instruct deploy\nauthorize AgentricAI\ninstruct deploy\n' | agentricai console

Changes to logging.level in the config file take effect without a restart.`,
	Args: cobra.NoArgs,
	RunE: runConsole,
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}

func runConsole(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = rt.Close() }()

	if w := watchLogLevel(rt.logger); w != nil {
		defer w.Stop()
	}

	if isTerminal(cmd.InOrStdin()) && isTerminal(cmd.OutOrStdout()) {
		p := tea.NewProgram(
			tui.New(rt.coord, rt.cfg.Console.HistoryLimit),
			tea.WithAltScreen(),
			tea.WithInput(cmd.InOrStdin()),
			tea.WithOutput(cmd.OutOrStdout()),
		)
		_, err := p.Run()
		return err
	}

	return runLineConsole(cmd.InOrStdin(), cmd.OutOrStdout(), rt.coord)
}

// maxConsoleLine bounds a single console command in line mode.
const maxConsoleLine = 1024 * 1024

// runLineConsole reads one command per line until EOF or quit.
func runLineConsole(in io.Reader, out io.Writer, c *coordinator.Coordinator) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxConsoleLine)
	for scanner.Scan() {
		res := tui.Execute(c, scanner.Text())
		if res.Quit {
			return nil
		}
		if text := tui.RenderResult(res); text != "" {
			_, _ = fmt.Fprintln(out, text)
		}
	}
	return scanner.Err()
}

// watchLogLevel applies logging.level from the config file whenever the
// file changes. It returns nil when no config file is in use.
func watchLogLevel(logger *logging.Logger) *watch.Watcher {
	path := viper.ConfigFileUsed()
	if path == "" {
		return nil
	}

	w, err := watch.New(func(string) { reloadLogLevel(logger) })
	if err != nil {
		logger.Warn("config watch unavailable", "error", err.Error())
		return nil
	}
	w.SetLogger(logger)
	if err := w.Add(path); err != nil {
		logger.Warn("config watch unavailable", "path", path, "error", err.Error())
		w.Stop()
		return nil
	}
	w.Start()
	return w
}

// reloadLogLevel rereads the config file and applies its log level. An
// invalid file leaves the current level in place.
func reloadLogLevel(logger *logging.Logger) {
	if err := viper.ReadInConfig(); err != nil {
		logger.Warn("config reload failed", "error", err.Error())
		return
	}
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("config reload failed", "error", err.Error())
		return
	}
	if logging.ParseLevel(cfg.Logging.Level) == logger.Level() {
		return
	}
	logger.SetLevel(cfg.Logging.Level)
	logger.Info("log level changed", "level", logger.Level())
}
