package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moodbite/moodbite/internal/server"
)

// NewSuggestCommand creates the suggest command.
func NewSuggestCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "suggest",
		Short:         "Suggest catalog entries for the current time of day",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(rootOpts, cmd)
		},
	}

	return cmd
}

func runSuggest(opts *RootOptions, cmd *cobra.Command) error {
	return withServer(opts, cmd, func(ctx context.Context, srv *server.Server, out *OutputFormatter) error {
		result, err := srv.Suggest(ctx)
		if err != nil {
			return reportRequestError(out, err)
		}

		if out.Format == "json" {
			if werr := out.Success(result); werr != nil {
				return WrapExitError(ExitCommandError, "writing output", werr)
			}
			return nil
		}
		fmt.Fprintln(out.Writer, result.Message)
		for _, item := range result.Items {
			fmt.Fprintln(out.Writer, formatMenuItem(item))
		}
		return nil
	})
}
