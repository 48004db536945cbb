package cli

import (
	"fmt"
	"net/http"
	"time"

	"github.com/kdduha/code-explainer/internal/bench"
	"github.com/kdduha/code-explainer/internal/client"
	"github.com/spf13/cobra"
)

func newBenchCmd() *cobra.Command {
	var (
		server      string
		concurrency int
		timeout     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "bench <dir>",
		Short: "Send every file in a directory to the server and report latency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(server, &http.Client{Timeout: timeout})

			start := time.Now()
			results, err := bench.Run(cmd.Context(), c, args[0], concurrency)
			if err != nil {
				return err
			}
			bench.PrintMarkdown(cmd.OutOrStdout(), results)
			fmt.Fprintf(cmd.OutOrStdout(), "\nTotal wall time: %v\n", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
	cmd.Flags().StringVarP(&server, "server", "s", defaultServer, "server base URL")
	cmd.Flags().IntVarP(&concurrency, "concurrency", "c", 4, "max requests in flight")
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "per-request timeout")
	return cmd
}
