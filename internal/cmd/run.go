package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/AgentricAI/agentricai/internal/script"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <script.yaml>",
	Short: "Replay an instruction script against a fresh coordinator",
	Long: `Replay an instruction script against a fresh coordinator.

A script lists steps, each either an authorize or an instruct call:

  steps:
    - instruct: deploy
      context: {env: prod}
    - authorize: AgentricAI
    - instruct: deploy

Use "-" to read the script from stdin.`,
	Args: exactArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runScript(cmd *cobra.Command, args []string) error {
	var (
		s   *script.Script
		err error
	)
	if args[0] == "-" {
		s, err = script.Parse(cmd.InOrStdin())
	} else {
		s, err = script.ParseFile(args[0])
	}
	if err != nil {
		return err
	}

	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = rt.Close() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	results, err := script.Run(ctx, rt.coord, s)

	out := cmd.OutOrStdout()
	accepted := 0
	for _, r := range results {
		_, _ = fmt.Fprintf(out, "%3d  ", r.Step)
		printNotice(out, r.Notice)
		if r.Notice.Outcome.OK() {
			accepted++
		}
	}
	_, _ = fmt.Fprintf(out, "%d of %d steps succeeded\n", accepted, len(results))

	return err
}
