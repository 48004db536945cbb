package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "code-explainer",
		Short: "Explain source code with a large language model",
		Long: `code-explainer serves an HTTP API and web UI that forwards a code snippet
to a language model and returns a structured explanation.

Server configuration is read from environment variables (SERVER_PORT, PROVIDER,
OPENAI_API_KEY, GEMINI_API_KEY, HISTORY_DRIVER, LOG_LEVEL, ...).`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	root.AddCommand(
		newServeCmd(),
		newExplainCmd(),
		newBenchCmd(),
	)
	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
