package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/kdduha/code-explainer/internal/bench"
	"github.com/kdduha/code-explainer/internal/client"
	"github.com/kdduha/code-explainer/internal/presentation"
	"github.com/spf13/cobra"
)

const defaultServer = "http://localhost:5000"

type explainOptions struct {
	server   string
	language string
	width    int
	timeout  time.Duration
}

func newExplainCmd() *cobra.Command {
	opts := explainOptions{}
	cmd := &cobra.Command{
		Use:   "explain [file|-]",
		Short: "Explain a source file using a running server",
		Long: `Reads code from a file (or stdin when the argument is "-" or omitted),
submits it to the server and prints the rendered explanation.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return runExplain(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), path, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.server, "server", "s", defaultServer, "server base URL")
	cmd.Flags().StringVarP(&opts.language, "language", "l", "", "language of the snippet (guessed from the file extension when empty)")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 100, "render width")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 2*time.Minute, "request timeout")
	return cmd
}

func runExplain(ctx context.Context, stdin io.Reader, out io.Writer, path string, opts explainOptions) error {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	language := opts.language
	if language == "" && path != "-" {
		language = bench.LanguageForFile(path)
	}

	c := client.New(opts.server, &http.Client{Timeout: opts.timeout})
	session := presentation.NewSession(c)
	v := session.Submit(ctx, string(raw), language)

	fmt.Fprintln(out, presentation.Render(v, opts.width))
	if v.State == presentation.StateError {
		return fmt.Errorf("%s", v.Err.Message)
	}
	return nil
}
