package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moodbite/moodbite/internal/eventlog"
	"github.com/moodbite/moodbite/internal/server"
)

// LogsOptions holds flags for the logs command.
type LogsOptions struct {
	*RootOptions
	Tail int
}

// NewLogsCommand creates the logs command.
func NewLogsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LogsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the server activity log",
		Long: `Show the server activity log.

Entries are printed most recent first. The log is bounded to the 50 most
recent entries; --tail narrows the output further.

Example:
  moodbite logs --tail 10`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogs(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Tail, "tail", 0, "show at most this many entries (0 = all)")

	return cmd
}

func runLogs(opts *LogsOptions, cmd *cobra.Command) error {
	return withServer(opts.RootOptions, cmd, func(ctx context.Context, srv *server.Server, out *OutputFormatter) error {
		entries := srv.Events().Entries()
		if opts.Tail > 0 && opts.Tail < len(entries) {
			entries = entries[:opts.Tail]
		}

		if out.Format == "json" {
			if werr := out.Success(entries); werr != nil {
				return WrapExitError(ExitCommandError, "writing output", werr)
			}
			return nil
		}
		for _, e := range entries {
			fmt.Fprintln(out.Writer, formatLogEntry(e))
		}
		return nil
	})
}

func formatLogEntry(e eventlog.Entry) string {
	return fmt.Sprintf("[%s] %s", e.Timestamp.Format("15:04:05"), e.Message)
}
