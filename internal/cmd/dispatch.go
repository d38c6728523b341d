package cmd

import (
	"github.com/AgentricAI/agentricai/internal/script"
	"github.com/spf13/cobra"
)

var dispatchCmd = &cobra.Command{
	Use:   "dispatch <task>",
	Short: "Deliver one task to a fresh coordinator",
	Long: `Deliver one task to a fresh coordinator.

With --token the coordinator is offered that token first. Without it the
coordinator stays unauthorized and the task is rejected. Either way the
notices are printed and the command succeeds.

Examples:
  agentricai dispatch deploy --token AgentricAI
  agentricai dispatch deploy --token AgentricAI --context '{"env": "prod"}'`,
	Args: exactArgs(1),
	RunE: runDispatch,
}

var (
	dispatchToken   string
	dispatchContext string
)

func init() {
	rootCmd.AddCommand(dispatchCmd)
	dispatchCmd.Flags().StringVar(&dispatchToken, "token", "", "authorization token to offer before the task")
	dispatchCmd.Flags().StringVar(&dispatchContext, "context", "", "auxiliary context as JSON or YAML (never inspected)")
}

func runDispatch(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = rt.Close() }()

	out := cmd.OutOrStdout()
	if cmd.Flags().Changed("token") {
		printNotice(out, rt.coord.AuthorizeNotice(dispatchToken))
	}
	printNotice(out, rt.coord.ReceiveInstructionNotice(args[0], script.ParseContext(dispatchContext)))

	return nil
}
