package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moodbite/moodbite/internal/server"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "stats",
		Short:         "Show the dashboard stats",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(rootOpts, cmd)
		},
	}

	return cmd
}

func runStats(opts *RootOptions, cmd *cobra.Command) error {
	return withServer(opts, cmd, func(ctx context.Context, srv *server.Server, out *OutputFormatter) error {
		stats, err := srv.Stats(ctx)
		if err != nil {
			return reportRequestError(out, err)
		}

		if out.Format == "json" {
			if werr := out.Success(stats); werr != nil {
				return WrapExitError(ExitCommandError, "writing output", werr)
			}
			return nil
		}
		fmt.Fprintf(out.Writer, "Daily revenue: %v\n", stats.DailyRevenue)
		fmt.Fprintf(out.Writer, "Category split: %v\n", stats.Categories)
		return nil
	})
}
