package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moodbite/moodbite/internal/server"
)

// NewRecommendCommand creates the recommend command.
func NewRecommendCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend <mood>",
		Short: "Recommend catalog entries for a mood",
		Long: `Recommend catalog entries for a mood.

Matching is case-insensitive and returns at most three items in catalog
order. A mood no item carries yields an empty recommendation.

Example:
  moodbite recommend Happy`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommend(rootOpts, cmd, args[0])
		},
	}

	return cmd
}

func runRecommend(opts *RootOptions, cmd *cobra.Command, mood string) error {
	return withServer(opts, cmd, func(ctx context.Context, srv *server.Server, out *OutputFormatter) error {
		result, err := srv.Recommend(ctx, server.RecommendRequest{Mood: mood})
		if err != nil {
			return reportRequestError(out, err)
		}

		if out.Format == "json" {
			if werr := out.Success(result); werr != nil {
				return WrapExitError(ExitCommandError, "writing output", werr)
			}
			return nil
		}
		if len(result.Recommendations) == 0 {
			fmt.Fprintf(out.Writer, "Nothing on the menu matches %q today.\n", mood)
			return nil
		}
		for _, item := range result.Recommendations {
			fmt.Fprintln(out.Writer, formatMenuItem(item))
		}
		return nil
	})
}
