// Package logging provides structured logging for the agentricai coordinator.
//
// Every accept/reject decision the coordinator makes is recorded as a JSON
// line through [Logger], which wraps log/slog. Child loggers carry the
// agent's identity so entries from several coordinators can be told apart.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger("/var/log/agentricai", "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.WithAgent("AgentricAI_001").Info("instruction accepted", "task", "deploy")
//
// Output:
//
//	{"time":"...","level":"INFO","msg":"instruction accepted","agent_id":"AgentricAI_001","task":"deploy"}
//
// # Log Rotation
//
// Long-running consoles should rotate:
//
//	logger, err := logging.NewLoggerWithRotation(dir, "INFO", logging.RotationConfig{
//	    MaxSizeMB:  10,
//	    MaxBackups: 3,
//	    Compress:   true,
//	})
//
// Rotated files are named agentricai.log.1, agentricai.log.2, and so on,
// where .1 is the most recent.
//
// # Runtime Level Changes
//
// [Logger.SetLevel] adjusts the level of a logger and all of its children,
// which the console uses to apply config file edits without restarting.
//
// # Testing
//
// Use [NopLogger] to discard output, or [NewLoggerWithWriter] with a
// bytes.Buffer to assert on emitted entries.
package logging
