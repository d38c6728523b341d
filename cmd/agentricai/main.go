package main

import (
	"os"

	"github.com/AgentricAI/agentricai/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
